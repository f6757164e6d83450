package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"promptforge/internal/logging"
	"promptforge/internal/session"
)

// Update implements tea.Model. A panic anywhere below lands the user
// back on the main menu instead of tearing down the terminal.
func (m Model) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			logging.Get(logging.CategorySession).Error("recovered from panic: %v", r)
			m.machine.Reset()
			m.settings = nil
			m.errMsg = "Something went wrong; returned to the main menu."
			m.input.SetValue("")
			model, cmd = m, nil
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			logging.Session("wizard quit via %s", msg.String())
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit(m.input.Value())
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			// Scroll long pages (result, history, readme, guide).
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}
	}

	var tiCmd tea.Cmd
	m.input, tiCmd = m.input.Update(msg)
	return m, tiCmd
}

// resize lays out the viewport and input for the current terminal
// size and rebuilds the markdown renderer at the new wrap width.
func (m *Model) resize() {
	contentHeight := m.height - 8
	if contentHeight < 3 {
		contentHeight = 3
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, contentHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = contentHeight
	}
	m.input.Width = m.width - 4

	wrap := m.width - 4
	if wrap < 20 {
		wrap = 20
	}
	m.renderer, _ = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	m.refreshViewport()
}

// submit routes one line of input: settings sub-flows first, then the
// navigation machine.
func (m Model) submit(value string) (tea.Model, tea.Cmd) {
	m.input.SetValue("")
	m.notice = ""
	m.errMsg = ""
	m.showHelp = false

	if m.settings != nil {
		m.handleSettingsInput(value)
		return m, nil
	}

	before := m.machine.Page()
	ev := m.machine.Handle(value)

	switch ev.Kind {
	case session.EventQuit:
		logging.Session("wizard quit from %s", before)
		return m, tea.Quit

	case session.EventInvalid:
		m.errMsg = "Unrecognized choice. Type ? for help."

	case session.EventNotice:
		m.notice = ev.Notice

	case session.EventHelp:
		m.showHelp = true

	case session.EventGenerated:
		m.notice = ev.Notice
		m.recordGeneration()

	case session.EventCopy:
		m.copyPrompt()

	case session.EventSave:
		m.savePrompt()

	case session.EventSettingsOption:
		m.startSettingsFlow(ev.Option)
	}

	if m.machine.Page() != before {
		m.onPageEnter()
	}
	m.refreshViewport()
	return m, nil
}

// onPageEnter runs page entry effects: loading history entries, resetting
// scroll position.
func (m *Model) onPageEnter() {
	m.viewport.GotoTop()
	if m.machine.Page() == session.PageHistory {
		m.loadHistory()
	}
}

func (m *Model) loadHistory() {
	m.histEntries = nil
	m.histErr = nil
	if m.deps.History == nil {
		return
	}
	entries, err := m.deps.History.Recent(context.Background(), 10)
	if err != nil {
		logging.HistoryError("failed to load history: %v", err)
		m.histErr = err
		return
	}
	m.histEntries = entries
}

// recordGeneration persists the new prompt and updates the session
// counters. Storage failures are reported but never block the result.
func (m *Model) recordGeneration() {
	cat := m.machine.Category()
	answered := m.machine.AnsweredCount()
	skipped := m.machine.SkippedCount()

	m.deps.Tracker.RecordGeneration(cat.Key, answered, skipped)

	if m.deps.History != nil {
		_, err := m.deps.History.Add(context.Background(),
			cat.Key, m.machine.Subcategory(), m.machine.Prompt(), m.machine.Answers(), skipped)
		if err != nil {
			logging.HistoryError("failed to record prompt: %v", err)
			m.errMsg = "Prompt generated, but saving it to history failed."
		}
	}
}

// copyPrompt runs the clipboard copy and commits it on the machine only
// when the write succeeded, so a failed copy can be retried.
func (m *Model) copyPrompt() {
	if !m.deps.Clip.Available() {
		m.errMsg = "Clipboard is not available on this system; use save instead."
		return
	}
	err := m.deps.Clip.CopyWithMetadata(
		m.machine.Category().Key, m.machine.Subcategory(), m.machine.Prompt())
	if err != nil {
		logging.Clipboard("copy failed: %v", err)
		m.errMsg = "Copy failed. Is a clipboard utility installed?"
		return
	}
	m.machine.MarkCopied()
	m.deps.Tracker.RecordCopy()
	m.notice = "Prompt copied to clipboard."
}

func (m *Model) savePrompt() {
	path, err := m.deps.Saver.Save(
		m.machine.Category().Key, m.machine.Subcategory(), m.machine.Prompt())
	if err != nil {
		logging.StorageError("save failed: %v", err)
		m.errMsg = fmt.Sprintf("Save failed: %v", err)
		return
	}
	m.deps.Tracker.RecordSave()
	m.notice = fmt.Sprintf("Prompt saved to %s", path)
}

// refreshViewport rebuilds the scrollable content for pages that use
// the viewport.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	switch m.machine.Page() {
	case session.PageResult:
		m.viewport.SetContent(m.renderMarkdown(m.machine.Prompt()))
	case session.PageReadme:
		m.viewport.SetContent(m.renderMarkdown(readmeContent))
	case session.PageGuide:
		m.viewport.SetContent(m.renderMarkdown(guideContent))
	case session.PageHistory:
		m.viewport.SetContent(m.renderHistory())
	case session.PageStats:
		m.viewport.SetContent(m.renderStats())
	}
}

// renderMarkdown renders through glamour, falling back to plain text
// when the renderer is unavailable or chokes.
func (m *Model) renderMarkdown(content string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			logging.Get(logging.CategorySession).Error("markdown render panic: %v", r)
			out = content
		}
	}()
	if m.renderer == nil {
		return content
	}
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}
