package ui

import (
	"fmt"
	"strings"
)

// MenuItem renders one "key) label" menu line.
func (s Styles) MenuItem(key, label string) string {
	return fmt.Sprintf("  %s %s", s.MenuKey.Render(key+")"), s.MenuLabel.Render(label))
}

// KeyHints renders a footer line of "key action" pairs separated by
// dots, e.g. "b back · h home · q quit".
func (s Styles) KeyHints(pairs ...[2]string) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, s.MenuKey.Render(p[0])+" "+s.Muted.Render(p[1]))
	}
	return s.Footer.Render(strings.Join(parts, s.Muted.Render(" · ")))
}

// ProgressBar renders a fixed-width bar for questionnaire progress.
// current is the number of completed steps out of total.
func (s Styles) ProgressBar(current, total, width int) string {
	if width < 4 {
		width = 4
	}
	inner := width - 2
	filled := 0
	if total > 0 {
		filled = inner * current / total
		if filled > inner {
			filled = inner
		}
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", inner-filled)
	return s.Muted.Render("[") + s.Prompt.Render(bar) + s.Muted.Render("]")
}

// TitleBar renders a page title with a counter badge on the right,
// e.g. "Questionnaire" + "3/10".
func (s Styles) TitleBar(title, badge string) string {
	if badge == "" {
		return s.Title.Render(title)
	}
	return s.Title.Render(title) + " " + s.Badge.Render(badge)
}
