package wizard

import (
	"fmt"
	"strings"
	"time"

	"promptforge/cmd/forge/ui"
	"promptforge/internal/session"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Starting promptforge..."
	}

	var sb strings.Builder
	sb.WriteString(m.renderPage())

	if m.notice != "" {
		sb.WriteString("\n" + m.styles.Notice.Render(m.notice) + "\n")
	}
	if m.errMsg != "" {
		sb.WriteString("\n" + m.styles.Error.Render(m.errMsg) + "\n")
	}

	sb.WriteString("\n" + m.input.View() + "\n")
	sb.WriteString(m.renderHints())
	return sb.String()
}

func (m Model) renderPage() string {
	if m.settings != nil {
		return m.renderSettingsFlow()
	}

	switch m.machine.Page() {
	case session.PageMainMenu:
		return m.renderMainMenu()
	case session.PageCategorySelect:
		return m.renderCategorySelect()
	case session.PageSubcategorySelect:
		return m.renderSubcategorySelect()
	case session.PageQuestionnaire:
		return m.renderQuestionnaire()
	case session.PageResult:
		return m.renderResult()
	case session.PageSettings:
		return m.renderSettingsMenu()
	case session.PageHistory, session.PageStats, session.PageReadme, session.PageGuide:
		return m.viewport.View()
	default:
		return ""
	}
}

func (m Model) renderMainMenu() string {
	var sb strings.Builder
	sb.WriteString(ui.Logo(m.styles))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("Interactive prompt builder") + "\n\n")

	sb.WriteString(m.styles.MenuItem("s", "Start building a prompt") + "\n")
	sb.WriteString(m.styles.MenuItem("h", "History") + "\n")
	sb.WriteString(m.styles.MenuItem("st", "Stats") + "\n")
	sb.WriteString(m.styles.MenuItem("set", "Settings") + "\n")
	sb.WriteString(m.styles.MenuItem("r", "Readme") + "\n")
	sb.WriteString(m.styles.MenuItem("g", "Guide") + "\n")
	sb.WriteString(m.styles.MenuItem("q", "Quit") + "\n")
	return sb.String()
}

func (m Model) renderCategorySelect() string {
	var sb strings.Builder
	sb.WriteString(m.styles.TitleBar("Choose a category", "") + "\n\n")
	for i, cat := range m.deps.Catalog.Categories() {
		sb.WriteString(m.styles.MenuItem(fmt.Sprintf("%d", i+1), cat.Name))
		if cat.Description != "" {
			sb.WriteString("  " + m.styles.Muted.Render(cat.Description))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderSubcategorySelect() string {
	cat := m.machine.Category()
	var sb strings.Builder
	sb.WriteString(m.styles.TitleBar(cat.Name, "") + "\n\n")
	for i, sub := range cat.Subcategories {
		sb.WriteString(m.styles.MenuItem(fmt.Sprintf("%d", i+1), sub) + "\n")
	}
	return sb.String()
}

func (m Model) renderQuestionnaire() string {
	questions := m.machine.Questions()
	idx := m.machine.Index()
	total := len(questions)

	var sb strings.Builder
	badge := fmt.Sprintf("%d/%d", idx+1, total)
	sb.WriteString(m.styles.TitleBar("Questionnaire", badge) + "\n")
	sb.WriteString(m.styles.ProgressBar(idx, total, 32) + "\n\n")

	if idx < total {
		sb.WriteString(m.styles.Bold.Render(questions[idx]) + "\n")
	}
	sb.WriteString(m.styles.Muted.Render("Answer, or press enter to leave it blank.") + "\n")

	if m.showHelp {
		sb.WriteString("\n" + m.renderHelp())
	}
	return sb.String()
}

func (m Model) renderHelp() string {
	lines := []string{
		"b / back     previous question (clears its answer)",
		"n / next     advance without answering",
		"sk / skip    mark skipped and advance",
		"r / restart  start this questionnaire over",
		"h / home     back to the main menu",
		"q / quit     exit",
	}
	return m.styles.Card.Render(strings.Join(lines, "\n"))
}

func (m Model) renderResult() string {
	var sb strings.Builder
	title := fmt.Sprintf("%s / %s", m.machine.Category().Name, m.machine.Subcategory())
	sb.WriteString(m.styles.TitleBar("Generated prompt", "") + " " + m.styles.Subtitle.Render(title) + "\n\n")
	sb.WriteString(m.viewport.View())
	return sb.String()
}

func (m Model) renderSettingsMenu() string {
	var sb strings.Builder
	sb.WriteString(m.styles.TitleBar("Settings", "") + "\n\n")
	sb.WriteString(m.styles.MenuItem("1", "Add a custom category") + "\n")
	sb.WriteString(m.styles.MenuItem("2", "Load questions from a file") + "\n")
	sb.WriteString(m.styles.MenuItem("3", "View a prompt template") + "\n")
	sb.WriteString(m.styles.MenuItem("4", "Manage saved catalogs") + "\n")
	return sb.String()
}

func (m Model) renderSettingsFlow() string {
	var sb strings.Builder
	sb.WriteString(m.styles.TitleBar("Settings", "") + "\n\n")

	f := m.settings
	if f.mode == settingsViewTemplate && f.step == 2 {
		sb.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("Template for %s/%s", f.category, f.subcategory)) + "\n\n")
		sb.WriteString(m.styles.Card.Render(f.template) + "\n\n")
		sb.WriteString(m.styles.Muted.Render("Press enter to go back.") + "\n")
		return sb.String()
	}

	if f.mode == settingsAddCategory && f.step == 2 && len(f.questions) > 0 {
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d question(s) so far.", len(f.questions))) + "\n")
	}
	sb.WriteString(m.styles.Bold.Render(m.settingsPrompt()) + "\n")
	sb.WriteString(m.styles.Muted.Render("Type cancel to abort.") + "\n")
	return sb.String()
}

// renderHistory builds the history page content for the viewport.
func (m Model) renderHistory() string {
	var sb strings.Builder
	sb.WriteString(m.styles.TitleBar("History", "") + "\n\n")

	if m.deps.History == nil {
		sb.WriteString(m.styles.Muted.Render("History is disabled.") + "\n")
		return sb.String()
	}
	if m.histErr != nil {
		sb.WriteString(m.styles.Error.Render("Could not load history.") + "\n")
		return sb.String()
	}
	if len(m.histEntries) == 0 {
		sb.WriteString(m.styles.Muted.Render("Nothing here yet. Generate a prompt first.") + "\n")
		return sb.String()
	}

	for i, e := range m.histEntries {
		header := fmt.Sprintf("%d. %s / %s", i+1, e.Category, e.Subcategory)
		meta := fmt.Sprintf("%s · %d words · %d chars",
			e.CreatedAt.Local().Format("2006-01-02 15:04"), e.WordCount, e.CharCount)
		sb.WriteString(m.styles.Bold.Render(header) + "\n")
		sb.WriteString("   " + m.styles.Muted.Render(meta) + "\n")
		sb.WriteString("   " + m.styles.Body.Render(firstLine(e.Prompt, 80)) + "\n\n")
	}
	sb.WriteString(m.styles.Muted.Render("Press enter to return home.") + "\n")
	return sb.String()
}

// renderStats builds the stats page content for the viewport.
func (m Model) renderStats() string {
	t := m.deps.Tracker
	var sb strings.Builder
	sb.WriteString(m.styles.TitleBar("Session stats", "") + "\n\n")

	sb.WriteString(fmt.Sprintf("  Prompts generated  %s\n", m.styles.Bold.Render(fmt.Sprintf("%d", t.Generated()))))
	sb.WriteString(fmt.Sprintf("  Copied / saved     %s\n", m.styles.Bold.Render(fmt.Sprintf("%d / %d", t.Copied(), t.Saved()))))
	sb.WriteString(fmt.Sprintf("  Questions answered %s\n", m.styles.Bold.Render(fmt.Sprintf("%d (%d skipped)", t.Answered(), t.Skipped()))))
	sb.WriteString(fmt.Sprintf("  Completion rate    %s\n", m.styles.Bold.Render(fmt.Sprintf("%d%%", t.CompletionRate()))))
	sb.WriteString(fmt.Sprintf("  Session length     %s\n", m.styles.Bold.Render(t.Elapsed().Round(time.Second).String())))

	if byCat := t.ByCategory(); len(byCat) > 0 {
		sb.WriteString("\n" + m.styles.Subtitle.Render("By category") + "\n")
		for _, row := range byCat {
			sb.WriteString(fmt.Sprintf("  %-10s %d\n", row.Category, row.Count))
		}
	}
	sb.WriteString("\n" + m.styles.Muted.Render("Press enter to return home.") + "\n")
	return sb.String()
}

// renderHints picks the footer key hints for the current page.
func (m Model) renderHints() string {
	if m.settings != nil {
		return m.styles.KeyHints([2]string{"cancel", "abort"}, [2]string{"esc", "quit"})
	}
	switch m.machine.Page() {
	case session.PageMainMenu:
		return m.styles.KeyHints([2]string{"s", "start"}, [2]string{"q", "quit"})
	case session.PageCategorySelect:
		return m.styles.KeyHints([2]string{"h", "home"}, [2]string{"q", "quit"})
	case session.PageSubcategorySelect:
		return m.styles.KeyHints([2]string{"b", "back"}, [2]string{"h", "home"}, [2]string{"q", "quit"})
	case session.PageQuestionnaire:
		return m.styles.KeyHints([2]string{"sk", "skip"}, [2]string{"b", "back"}, [2]string{"?", "help"})
	case session.PageResult:
		// Copy is offered only while it is still possible: once per
		// prompt, and only when a clipboard backend exists.
		var hints [][2]string
		if !m.machine.Copied() && m.deps.Clip.Available() {
			hints = append(hints, [2]string{"c", "copy"})
		}
		hints = append(hints, [2]string{"s", "save"}, [2]string{"r", "restart"}, [2]string{"h", "home"}, [2]string{"q", "quit"})
		return m.styles.KeyHints(hints...)
	default:
		return m.styles.KeyHints([2]string{"enter", "home"}, [2]string{"q", "quit"})
	}
}

// firstLine truncates a prompt to a single preview line.
func firstLine(s string, max int) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if r := []rune(s); len(r) > max {
		s = string(r[:max-1]) + "…"
	}
	return s
}
