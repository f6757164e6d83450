// Package ui provides the visual styling for the promptforge wizard.
// Light and dark palettes with auto-detection from the terminal.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f6f5f4")
	LightForeground = lipgloss.Color("#1f2430")
	LightPrimary    = lipgloss.Color("#5a32a3") // Purple
	LightAccent     = lipgloss.Color("#d97706") // Amber
	LightSecondary  = lipgloss.Color("#e8e4ea")
	LightMuted      = lipgloss.Color("#8a8f98")
	LightBorder     = lipgloss.Color("#d9d4dd")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#16121f")
	DarkForeground = lipgloss.Color("#f2f0f5")
	DarkPrimary    = lipgloss.Color("#b392f0") // Light purple
	DarkAccent     = lipgloss.Color("#fbbf24") // Amber
	DarkSecondary  = lipgloss.Color("#241d33")
	DarkMuted      = lipgloss.Color("#6b7280")
	DarkBorder     = lipgloss.Color("#3b3350")
	DarkCard       = lipgloss.Color("#1e1829")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#4caf50")
	Warning     = lipgloss.Color("#FFC107")
	Info        = lipgloss.Color("#2196F3")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeByName resolves a config theme name. "auto" and unknown names
// fall through to terminal detection.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme guesses light vs dark from the terminal environment.
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"; low background indexes
	// mean a dark terminal.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("FORGE_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds all the styled components.
type Styles struct {
	Theme Theme

	// Layout
	App     lipgloss.Style
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Interactive
	Prompt    lipgloss.Style
	MenuKey   lipgloss.Style
	MenuLabel lipgloss.Style
	Selected  lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Notice  lipgloss.Style

	// Components
	Card    lipgloss.Style
	Badge   lipgloss.Style
	Divider lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		MenuLabel: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Selected: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		Notice: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Italic(true),

		Card: lipgloss.NewStyle().
			Background(theme.Card).
			Foreground(theme.Foreground).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		Badge: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// DefaultStyles returns styles with the auto-detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// Logo returns the promptforge ASCII banner.
func Logo(s Styles) string {
	logo := `
  ___                      _   ___
 | _ \_ _ ___ _ __  _ __ | |_| __|__ _ _ __ _ ___
 |  _/ '_/ _ \ '  \| '_ \|  _| _/ _ \ '_/ _` + "`" + ` / -_)
 |_| |_| \___/_|_|_| .__/ \__|_|\___/_| \__, \___|
                   |_|                  |___/
`
	return s.Title.Foreground(s.Theme.Primary).Render(logo)
}

// RenderDivider returns a horizontal divider of the given width.
func (s Styles) RenderDivider(width int) string {
	return s.Divider.Render(strings.Repeat("─", width))
}
