package wizard

import (
	"fmt"
	"strings"

	"promptforge/internal/catalog"
	"promptforge/internal/logging"
)

// settingsMode identifies which settings sub-flow is running.
type settingsMode int

const (
	settingsAddCategory settingsMode = iota + 1
	settingsUploadQuestions
	settingsViewTemplate
	settingsManageCatalogs
)

// settingsFlow is a small step-based wizard layered over the settings
// page. While active it captures all input; "cancel" aborts at any
// step.
type settingsFlow struct {
	mode settingsMode
	step int

	// Collected across steps.
	name        string
	subcats     []string
	category    string
	subcategory string
	questions   []string
	template    string
}

// startSettingsFlow begins the sub-flow for a settings menu option.
func (m *Model) startSettingsFlow(option int) {
	switch option {
	case 1:
		m.settings = &settingsFlow{mode: settingsAddCategory}
	case 2:
		m.settings = &settingsFlow{mode: settingsUploadQuestions}
	case 3:
		m.settings = &settingsFlow{mode: settingsViewTemplate}
	case 4:
		m.settings = &settingsFlow{mode: settingsManageCatalogs}
	default:
		m.errMsg = "Unknown settings option."
	}
}

// settingsPrompt returns the question for the current step.
func (m *Model) settingsPrompt() string {
	f := m.settings
	if f == nil {
		return ""
	}
	switch f.mode {
	case settingsAddCategory:
		switch f.step {
		case 0:
			return "Name for the new category?"
		case 1:
			return "Subcategories, comma-separated?"
		case 2:
			return fmt.Sprintf("Enter questions for %q one per line; blank line to finish.", f.name)
		case 3:
			return "Prompt template (must contain {answers_summary}); blank for the generic one."
		}
	case settingsUploadQuestions:
		switch f.step {
		case 0:
			return "Which category?"
		case 1:
			return "Which subcategory?"
		case 2:
			return "Path to a text file with one question per line?"
		}
	case settingsViewTemplate:
		switch f.step {
		case 0:
			return "Which category?"
		case 1:
			return "Which subcategory?"
		}
	case settingsManageCatalogs:
		return "Type a catalog name to delete it, or blank to go back."
	}
	return ""
}

// handleSettingsInput advances the active sub-flow by one step.
func (m *Model) handleSettingsInput(input string) {
	f := m.settings
	trimmed := strings.TrimSpace(input)
	if strings.EqualFold(trimmed, "cancel") {
		m.settings = nil
		m.notice = "Cancelled."
		return
	}

	switch f.mode {
	case settingsAddCategory:
		m.stepAddCategory(trimmed)
	case settingsUploadQuestions:
		m.stepUploadQuestions(trimmed)
	case settingsViewTemplate:
		m.stepViewTemplate(trimmed)
	case settingsManageCatalogs:
		m.stepManageCatalogs(trimmed)
	}
}

func (m *Model) stepAddCategory(input string) {
	f := m.settings
	switch f.step {
	case 0:
		if input == "" {
			m.errMsg = "Category name cannot be empty."
			return
		}
		f.name = input
		f.step = 1
	case 1:
		for _, part := range strings.Split(input, ",") {
			if sub := strings.TrimSpace(strings.ToLower(part)); sub != "" {
				f.subcats = append(f.subcats, strings.ReplaceAll(sub, " ", "_"))
			}
		}
		if len(f.subcats) == 0 {
			m.errMsg = "Need at least one subcategory."
			return
		}
		f.step = 2
	case 2:
		if input != "" {
			f.questions = append(f.questions, input)
			if len(f.questions) >= catalog.MaxUserQuestions {
				m.notice = fmt.Sprintf("Question limit of %d reached.", catalog.MaxUserQuestions)
				f.step = 3
			}
			return
		}
		if len(f.questions) == 0 {
			m.errMsg = "Need at least one question."
			return
		}
		f.step = 3
	case 3:
		f.template = input
		m.finishAddCategory()
	}
}

// finishAddCategory persists the new category as a user catalog file
// and merges it into the live catalog.
func (m *Model) finishAddCategory() {
	f := m.settings
	key := strings.ReplaceAll(strings.ToLower(f.name), " ", "_")
	tpl := f.template
	if tpl == "" {
		tpl = catalog.GenericTemplate()
	}

	questions := make(map[string][]string, len(f.subcats))
	templates := make(map[string]string, len(f.subcats))
	for _, sub := range f.subcats {
		questions[sub] = f.questions
		templates[sub] = tpl
	}
	uc := &catalog.UserCatalog{
		Categories: []catalog.Category{{
			Key:           key,
			Name:          f.name,
			Description:   "User-defined category",
			Subcategories: f.subcats,
		}},
		Questions: map[string]map[string][]string{key: questions},
		Templates: map[string]map[string]string{key: templates},
	}

	dir := catalog.CatalogsDir(m.deps.DataDir)
	path, err := catalog.SaveUserCatalog(dir, key, uc)
	if err != nil {
		logging.CatalogWarn("failed to save user catalog: %v", err)
		m.errMsg = fmt.Sprintf("Could not save the catalog: %v", err)
		m.settings = nil
		return
	}
	m.deps.Catalog.Merge(uc)
	m.notice = fmt.Sprintf("Category %q added (%s).", f.name, path)
	m.settings = nil
}

func (m *Model) stepUploadQuestions(input string) {
	f := m.settings
	switch f.step {
	case 0:
		cat, ok := m.deps.Catalog.Category(input)
		if !ok {
			m.errMsg = "No such category."
			return
		}
		f.category = cat.Key
		f.step = 1
	case 1:
		cat, _ := m.deps.Catalog.Category(f.category)
		sub, ok := m.deps.Catalog.Subcategory(cat, input)
		if !ok {
			m.errMsg = "No such subcategory."
			return
		}
		f.subcategory = sub
		f.step = 2
	case 2:
		qs, err := catalog.LoadQuestionsFile(input)
		if err != nil {
			m.errMsg = fmt.Sprintf("Could not load questions: %v", err)
			return
		}
		uc := &catalog.UserCatalog{
			Questions: map[string]map[string][]string{
				f.category: {f.subcategory: qs},
			},
		}
		dir := catalog.CatalogsDir(m.deps.DataDir)
		if _, err := catalog.SaveUserCatalog(dir, f.category+"_"+f.subcategory, uc); err != nil {
			logging.CatalogWarn("failed to save uploaded questions: %v", err)
			m.errMsg = fmt.Sprintf("Could not save the questions: %v", err)
			m.settings = nil
			return
		}
		m.deps.Catalog.Merge(uc)
		m.notice = fmt.Sprintf("Loaded %d questions for %s/%s.", len(qs), f.category, f.subcategory)
		m.settings = nil
	}
}

func (m *Model) stepViewTemplate(input string) {
	f := m.settings
	switch f.step {
	case 0:
		cat, ok := m.deps.Catalog.Category(input)
		if !ok {
			m.errMsg = "No such category."
			return
		}
		f.category = cat.Key
		f.step = 1
	case 1:
		cat, _ := m.deps.Catalog.Category(f.category)
		sub, ok := m.deps.Catalog.Subcategory(cat, input)
		if !ok {
			m.errMsg = "No such subcategory."
			return
		}
		f.template = m.deps.Catalog.ResolveTemplate(f.category, sub)
		f.subcategory = sub
		f.step = 2
		// Step 2 renders the template read-only; any input leaves.
	case 2:
		m.settings = nil
	}
}

func (m *Model) stepManageCatalogs(input string) {
	if input == "" {
		m.settings = nil
		return
	}
	dir := catalog.CatalogsDir(m.deps.DataDir)
	if err := catalog.DeleteUserCatalog(dir, input); err != nil {
		m.errMsg = fmt.Sprintf("Could not delete %q: %v", input, err)
		return
	}
	m.notice = fmt.Sprintf("Deleted catalog %q. Restart to drop its content from this session.", input)
	m.settings = nil
}
