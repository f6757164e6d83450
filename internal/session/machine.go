// Package session implements the page-based navigation state machine
// that drives the wizard. The machine is pure state + string matching:
// it owns the current page, the active category/subcategory, and the
// in-progress answer set, and maps (page, input) to the next page plus
// an event for the caller to act on.
//
// The machine performs no I/O. Rendering, clipboard, saving, and
// history are the caller's job, triggered by the returned events.
package session

import (
	"strings"

	"promptforge/internal/catalog"
	"promptforge/internal/generator"
	"promptforge/internal/logging"
)

// Page identifies one screen of the wizard.
type Page int

const (
	PageMainMenu Page = iota
	PageReadme
	PageGuide
	PageCategorySelect
	PageSubcategorySelect
	PageQuestionnaire
	PageResult
	PageHistory
	PageSettings
	PageStats
)

// String returns the page name for logs.
func (p Page) String() string {
	switch p {
	case PageMainMenu:
		return "main_menu"
	case PageReadme:
		return "readme"
	case PageGuide:
		return "guide"
	case PageCategorySelect:
		return "category_select"
	case PageSubcategorySelect:
		return "subcategory_select"
	case PageQuestionnaire:
		return "questionnaire"
	case PageResult:
		return "result"
	case PageHistory:
		return "history"
	case PageSettings:
		return "settings"
	case PageStats:
		return "stats"
	default:
		return "unknown"
	}
}

// EventKind is the closed set of machine outputs.
type EventKind int

const (
	// EventNone: state may have changed, nothing else to do.
	EventNone EventKind = iota
	// EventInvalid: input not recognized; re-prompt on the same page.
	EventInvalid
	// EventNotice: show a transient message, state as per the event.
	EventNotice
	// EventHelp: show the navigation help text.
	EventHelp
	// EventQuit: terminate the session.
	EventQuit
	// EventGenerated: a prompt was just generated; Prompt() holds it.
	EventGenerated
	// EventCopy: the user asked to copy the generated prompt.
	EventCopy
	// EventSave: the user asked to save the generated prompt.
	EventSave
	// EventSettingsOption: the user picked a settings menu option.
	EventSettingsOption
)

// Event is what Handle returns to the caller.
type Event struct {
	Kind   EventKind
	Notice string
	// Option is set for EventSettingsOption (1-based menu option).
	Option int
}

// Machine is the navigation state machine. It is owned and mutated by
// a single control loop; it is not safe for concurrent use and does
// not need to be.
type Machine struct {
	catalog *catalog.Catalog
	gen     *generator.Generator

	page        Page
	category    catalog.Category
	subcategory string
	questions   []string
	index       int
	answers     map[int]string
	skipped     map[int]bool
	prompt      string
	copied      bool
}

// New creates a machine at the main menu. Dependencies are injected;
// the machine never reaches for globals.
func New(cat *catalog.Catalog, gen *generator.Generator) *Machine {
	return &Machine{
		catalog: cat,
		gen:     gen,
		page:    PageMainMenu,
		answers: make(map[int]string),
		skipped: make(map[int]bool),
	}
}

// Page returns the current page.
func (m *Machine) Page() Page { return m.page }

// Category returns the active category.
func (m *Machine) Category() catalog.Category { return m.category }

// Subcategory returns the active subcategory key.
func (m *Machine) Subcategory() string { return m.subcategory }

// Questions returns the active question list.
func (m *Machine) Questions() []string { return m.questions }

// Index returns the current question index.
func (m *Machine) Index() int { return m.index }

// Prompt returns the most recently generated prompt.
func (m *Machine) Prompt() string { return m.prompt }

// Copied reports whether the current prompt was copied already; the
// result page narrows its menu to the secondary choice after a copy.
func (m *Machine) Copied() bool { return m.copied }

// MarkCopied commits a copy of the current prompt. The caller confirms
// the clipboard write succeeded before committing, so a failed copy
// leaves the result page free to retry.
func (m *Machine) MarkCopied() { m.copied = true }

// Answers returns a copy of the answer set.
func (m *Machine) Answers() map[int]string {
	out := make(map[int]string, len(m.answers))
	for k, v := range m.answers {
		out[k] = v
	}
	return out
}

// AnsweredCount returns how many questions have recorded answers.
func (m *Machine) AnsweredCount() int { return len(m.answers) }

// SkippedCount returns how many questions were deliberately skipped.
func (m *Machine) SkippedCount() int { return len(m.skipped) }

// Reset returns the machine to the main menu, dropping any in-progress
// questionnaire. Used by the top-level loop after an unexpected error.
func (m *Machine) Reset() {
	m.page = PageMainMenu
	m.clearQuestionnaire()
	m.prompt = ""
	m.copied = false
}

// Handle maps one line of user input to a transition. Input comparison
// is case-insensitive; single-letter shortcuts resolve identically to
// their full words. Invalid input never mutates state.
func (m *Machine) Handle(input string) Event {
	input = strings.TrimSpace(input)

	var ev Event
	switch m.page {
	case PageMainMenu:
		ev = m.handleMainMenu(input)
	case PageReadme, PageGuide:
		ev = m.handleInfoPage(input)
	case PageCategorySelect:
		ev = m.handleCategorySelect(input)
	case PageSubcategorySelect:
		ev = m.handleSubcategorySelect(input)
	case PageQuestionnaire:
		ev = m.handleQuestionnaire(input)
	case PageResult:
		ev = m.handleResult(input)
	case PageHistory, PageStats:
		ev = m.handleReturnPage(input)
	case PageSettings:
		ev = m.handleSettings(input)
	default:
		// Defensive fallback, not a designed transition.
		logging.SessionDebug("unknown page %d, resetting to main menu", m.page)
		m.page = PageMainMenu
		ev = Event{Kind: EventNone}
	}

	logging.SessionDebug("page=%s input=%q -> kind=%d", m.page, input, ev.Kind)
	return ev
}

func (m *Machine) handleMainMenu(input string) Event {
	switch normalize(input) {
	case "start", "s":
		m.page = PageCategorySelect
	case "readme", "r":
		m.page = PageReadme
	case "guide", "g":
		m.page = PageGuide
	case "history", "h":
		m.page = PageHistory
	case "settings", "set":
		m.page = PageSettings
	case "stats", "st":
		m.page = PageStats
	case "quit", "q":
		return Event{Kind: EventQuit}
	default:
		return Event{Kind: EventInvalid}
	}
	return Event{Kind: EventNone}
}

// handleInfoPage covers the readme and guide pages: quit exits,
// anything else returns home.
func (m *Machine) handleInfoPage(input string) Event {
	if cmd := normalize(input); cmd == "quit" || cmd == "q" {
		return Event{Kind: EventQuit}
	}
	m.page = PageMainMenu
	return Event{Kind: EventNone}
}

func (m *Machine) handleCategorySelect(input string) Event {
	switch normalize(input) {
	case "quit", "q":
		return Event{Kind: EventQuit}
	case "home", "h":
		m.page = PageMainMenu
		return Event{Kind: EventNone}
	}

	cat, ok := m.catalog.Category(input)
	if !ok {
		return Event{Kind: EventInvalid}
	}
	m.category = cat
	m.page = PageSubcategorySelect
	return Event{Kind: EventNone}
}

func (m *Machine) handleSubcategorySelect(input string) Event {
	switch normalize(input) {
	case "quit", "q":
		return Event{Kind: EventQuit}
	case "home", "h":
		m.page = PageMainMenu
		return Event{Kind: EventNone}
	case "back", "b":
		m.page = PageCategorySelect
		return Event{Kind: EventNone}
	}

	sub, ok := m.catalog.Subcategory(m.category, input)
	if !ok {
		return Event{Kind: EventInvalid}
	}
	m.subcategory = sub
	m.beginQuestionnaire()
	return Event{Kind: EventNone}
}

// beginQuestionnaire resets the answer set and loads the question list
// for the active pair.
func (m *Machine) beginQuestionnaire() {
	m.clearQuestionnaire()
	m.questions = m.gen.Questions(m.category.Key, m.subcategory)
	m.page = PageQuestionnaire
	logging.Session("questionnaire started: %s/%s (%d questions)", m.category.Key, m.subcategory, len(m.questions))

	// Empty question lists cannot happen through the fallback policy,
	// but an empty user catalog entry would leave nothing to ask.
	if len(m.questions) == 0 {
		m.finishQuestionnaire()
	}
}

func (m *Machine) clearQuestionnaire() {
	m.answers = make(map[int]string)
	m.skipped = make(map[int]bool)
	m.index = 0
	m.questions = nil
}

func (m *Machine) handleQuestionnaire(input string) Event {
	// Commands take priority over answer text.
	switch normalize(input) {
	case "quit", "q":
		return Event{Kind: EventQuit}
	case "home", "h":
		m.page = PageMainMenu
		return Event{Kind: EventNone}
	case "restart", "r":
		keep := m.questions
		m.clearQuestionnaire()
		m.questions = keep
		return Event{Kind: EventNotice, Notice: "Questionnaire restarted."}
	case "back", "b":
		if m.index > 0 {
			m.index--
			delete(m.answers, m.index)
			delete(m.skipped, m.index)
			return Event{Kind: EventNone}
		}
		m.page = PageSubcategorySelect
		return Event{Kind: EventNone}
	case "next", "n":
		return m.advance(Event{Kind: EventNone})
	case "skip", "sk":
		m.skipped[m.index] = true
		return m.advance(Event{Kind: EventNotice, Notice: "Question skipped."})
	case "help", "?":
		return Event{Kind: EventHelp}
	}

	// Free-text answer. Only non-empty text is recorded, but the index
	// always advances.
	if trimmed := strings.TrimSpace(input); trimmed != "" {
		m.answers[m.index] = trimmed
	}
	return m.advance(Event{Kind: EventNone})
}

// advance moves to the next question, finishing the questionnaire when
// the index passes the end of the list.
func (m *Machine) advance(ev Event) Event {
	m.index++
	if m.index >= len(m.questions) {
		m.finishQuestionnaire()
		return Event{Kind: EventGenerated, Notice: ev.Notice}
	}
	return ev
}

func (m *Machine) finishQuestionnaire() {
	m.prompt = m.gen.Generate(m.category.Key, m.subcategory, m.answers)
	m.copied = false
	m.page = PageResult
	logging.Session("prompt generated for %s/%s", m.category.Key, m.subcategory)
}

func (m *Machine) handleResult(input string) Event {
	switch normalize(input) {
	case "copy", "c":
		if m.copied {
			return Event{Kind: EventInvalid}
		}
		return Event{Kind: EventCopy}
	case "save", "s":
		return Event{Kind: EventSave}
	case "restart", "r":
		keep := m.questions
		m.clearQuestionnaire()
		m.questions = keep
		m.page = PageQuestionnaire
		return Event{Kind: EventNotice, Notice: "Questionnaire restarted."}
	case "home", "h":
		m.page = PageMainMenu
		return Event{Kind: EventNone}
	case "quit", "q":
		return Event{Kind: EventQuit}
	default:
		return Event{Kind: EventInvalid}
	}
}

// handleReturnPage covers pages that only return home or quit.
func (m *Machine) handleReturnPage(input string) Event {
	if cmd := normalize(input); cmd == "quit" || cmd == "q" {
		return Event{Kind: EventQuit}
	}
	m.page = PageMainMenu
	return Event{Kind: EventNone}
}

func (m *Machine) handleSettings(input string) Event {
	switch cmd := normalize(input); cmd {
	case "quit", "q":
		return Event{Kind: EventQuit}
	case "home", "h", "back", "b":
		m.page = PageMainMenu
		return Event{Kind: EventNone}
	case "1", "add":
		return Event{Kind: EventSettingsOption, Option: 1}
	case "2", "upload":
		return Event{Kind: EventSettingsOption, Option: 2}
	case "3", "template":
		return Event{Kind: EventSettingsOption, Option: 3}
	case "4", "manage":
		return Event{Kind: EventSettingsOption, Option: 4}
	default:
		return Event{Kind: EventInvalid}
	}
}

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
