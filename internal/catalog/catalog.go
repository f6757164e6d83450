// Package catalog supplies the category taxonomy, question lists, and
// prompt templates that drive the questionnaire wizard.
//
// Lookups never fail: the Resolver applies a fixed generic question list
// and a generic template whenever a (category, subcategory) pair is
// absent. This fallback-over-failure policy is deliberate - the
// questionnaire must always be completable.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"promptforge/internal/logging"
)

// Category is one top-level content category.
type Category struct {
	Key           string   `yaml:"key"`
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Subcategories []string `yaml:"subcategories"`
}

// Catalog holds the merged built-in and user-defined content.
// All reads go through the accessor methods; the internal maps are
// replaced wholesale on reload, never mutated in place.
type Catalog struct {
	mu         sync.RWMutex
	categories []Category
	questions  map[string]map[string][]string
	templates  map[string]map[string]string
}

// New returns a catalog populated with the built-in content.
func New() *Catalog {
	return &Catalog{
		categories: builtinCategories(),
		questions:  builtinQuestions(),
		templates:  builtinTemplates(),
	}
}

// Categories returns the taxonomy in menu order: built-ins first,
// then user-defined categories sorted by key.
func (c *Catalog) Categories() []Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category resolves a user selection to a category. Selection may be a
// 1-based index ("2") or a case-insensitive key or display name.
func (c *Catalog) Category(selection string) (Category, bool) {
	cats := c.Categories()
	selection = strings.TrimSpace(strings.ToLower(selection))
	if selection == "" {
		return Category{}, false
	}
	if idx, ok := parseIndex(selection, len(cats)); ok {
		return cats[idx], true
	}
	for _, cat := range cats {
		if strings.ToLower(cat.Key) == selection || strings.ToLower(cat.Name) == selection {
			return cat, true
		}
	}
	return Category{}, false
}

// Subcategory resolves a selection within a category, by 1-based index
// or case-insensitive name.
func (c *Catalog) Subcategory(cat Category, selection string) (string, bool) {
	selection = strings.TrimSpace(strings.ToLower(selection))
	if selection == "" {
		return "", false
	}
	if idx, ok := parseIndex(selection, len(cat.Subcategories)); ok {
		return cat.Subcategories[idx], true
	}
	for _, sub := range cat.Subcategories {
		if strings.ToLower(sub) == selection {
			return sub, true
		}
	}
	return "", false
}

// Questions returns the ordered question list for a pair.
// The boolean reports whether the pair exists in the catalog.
func (c *Catalog) Questions(category, subcategory string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	subs, ok := c.questions[category]
	if !ok {
		return nil, false
	}
	qs, ok := subs[subcategory]
	if !ok || len(qs) == 0 {
		return nil, false
	}
	out := make([]string, len(qs))
	copy(out, qs)
	return out, true
}

// Template returns the prompt template for a pair.
// The boolean reports whether the pair exists in the catalog.
func (c *Catalog) Template(category, subcategory string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	subs, ok := c.templates[category]
	if !ok {
		return "", false
	}
	tpl, ok := subs[subcategory]
	if !ok || tpl == "" {
		return "", false
	}
	return tpl, true
}

// Merge folds a user catalog into this one. User questions and
// templates override built-ins for the same pair; new categories are
// appended after the built-ins.
func (c *Catalog) Merge(uc *UserCatalog) {
	c.mu.Lock()
	defer c.mu.Unlock()

	known := make(map[string]int, len(c.categories))
	for i, cat := range c.categories {
		known[cat.Key] = i
	}

	var added []Category
	for _, cat := range uc.Categories {
		if cat.Key == "" || len(cat.Subcategories) == 0 {
			logging.CatalogWarn("skipping user category %q: missing key or subcategories", cat.Name)
			continue
		}
		if idx, ok := known[cat.Key]; ok {
			c.categories[idx] = cat
		} else {
			added = append(added, cat)
		}
	}
	sort.Slice(added, func(i, j int) bool { return added[i].Key < added[j].Key })
	c.categories = append(c.categories, added...)

	for cat, subs := range uc.Questions {
		if c.questions[cat] == nil {
			c.questions[cat] = make(map[string][]string)
		}
		for sub, qs := range subs {
			if len(qs) == 0 {
				continue
			}
			if len(qs) > MaxUserQuestions {
				logging.CatalogWarn("truncating %s/%s user questions to %d", cat, sub, MaxUserQuestions)
				qs = qs[:MaxUserQuestions]
			}
			c.questions[cat][sub] = qs
		}
	}

	for cat, subs := range uc.Templates {
		if c.templates[cat] == nil {
			c.templates[cat] = make(map[string]string)
		}
		for sub, tpl := range subs {
			if tpl == "" {
				continue
			}
			c.templates[cat][sub] = tpl
		}
	}

	logging.Catalog("merged user catalog: %d categories, %d question sets", len(uc.Categories), len(uc.Questions))
}

// ReplaceFrom swaps in the content of another catalog. The hot-reload
// watcher builds a fresh catalog and installs it here so readers
// holding this pointer see the new data atomically.
func (c *Catalog) ReplaceFrom(other *Catalog) {
	other.mu.RLock()
	categories := other.categories
	questions := other.questions
	templates := other.templates
	other.mu.RUnlock()

	c.mu.Lock()
	c.categories = categories
	c.questions = questions
	c.templates = templates
	c.mu.Unlock()
}

// MaxUserQuestions caps user-supplied question lists, matching the
// upload limit of the settings flow.
const MaxUserQuestions = 50

func parseIndex(s string, n int) (int, bool) {
	if len(s) == 0 || len(s) > 2 {
		return 0, false
	}
	idx := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		idx = idx*10 + int(r-'0')
	}
	if idx < 1 || idx > n {
		return 0, false
	}
	return idx - 1, true
}
