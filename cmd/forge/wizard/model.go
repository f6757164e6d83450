// Package wizard provides the interactive TUI for promptforge.
// The wizard is split across multiple files:
//   - model.go: Types, construction, Init (this file)
//   - update.go: Update loop and event handling
//   - view.go: Rendering functions
//   - settings.go: Settings sub-flows (custom catalogs)
//   - content.go: Readme and guide text
package wizard

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"promptforge/cmd/forge/ui"
	"promptforge/internal/catalog"
	"promptforge/internal/clipboard"
	"promptforge/internal/config"
	"promptforge/internal/generator"
	"promptforge/internal/history"
	"promptforge/internal/logging"
	"promptforge/internal/save"
	"promptforge/internal/session"
	"promptforge/internal/stats"
)

// Deps carries the collaborators the wizard operates on. Everything is
// injected so tests can run the model headless.
type Deps struct {
	Config  *config.Config
	DataDir string
	Catalog *catalog.Catalog
	History *history.Store // optional; nil disables history
	Saver   *save.Saver
	Clip    *clipboard.Writer
	Tracker *stats.Tracker
}

// Model is the bubbletea model for the wizard.
type Model struct {
	machine *session.Machine
	deps    Deps

	input    textinput.Model
	viewport viewport.Model
	styles   ui.Styles
	renderer *glamour.TermRenderer

	width  int
	height int
	ready  bool

	// Transient feedback shown above the input line.
	notice   string
	errMsg   string
	showHelp bool

	// Active settings sub-flow, nil when none.
	settings *settingsFlow

	// History entries loaded when the history page was entered.
	histEntries []history.Entry
	histErr     error
}

// NewModel builds the wizard model from its collaborators.
func NewModel(deps Deps) Model {
	gen := generator.New(deps.Catalog)
	machine := session.New(deps.Catalog, gen)

	input := textinput.New()
	input.Placeholder = "type a choice and press enter"
	input.Prompt = "> "
	input.CharLimit = 500
	input.Focus()

	styles := ui.NewStyles(ui.ThemeByName(deps.Config.Theme))

	return Model{
		machine: machine,
		deps:    deps,
		input:   input,
		styles:  styles,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Run starts the wizard program and blocks until it exits.
func Run(deps Deps) error {
	logging.Boot("starting wizard")
	p := tea.NewProgram(NewModel(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
