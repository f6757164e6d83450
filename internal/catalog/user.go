package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"promptforge/internal/logging"
)

// UserCatalog is the YAML shape of a user-supplied catalog file.
// Files live under <data-dir>/catalogs/*.yaml and are merged over the
// built-ins at startup and on change.
type UserCatalog struct {
	Categories []Category                     `yaml:"categories"`
	Questions  map[string]map[string][]string `yaml:"questions"`
	Templates  map[string]map[string]string   `yaml:"templates"`
}

// CatalogsDir returns the user catalogs directory inside the data dir.
func CatalogsDir(dataDir string) string {
	return filepath.Join(dataDir, "catalogs")
}

// LoadUserCatalogs reads every *.yaml / *.yml file in dir in name order
// and merges them into the catalog. A missing dir is not an error.
// A malformed file is skipped with a warning; one bad file must not
// take down the rest.
func (c *Catalog) LoadUserCatalogs(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read catalogs dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		uc, err := loadUserCatalogFile(path)
		if err != nil {
			logging.CatalogWarn("skipping catalog file %s: %v", name, err)
			continue
		}
		c.Merge(uc)
	}
	return nil
}

func loadUserCatalogFile(path string) (*UserCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	var uc UserCatalog
	if err := yaml.Unmarshal(data, &uc); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	return &uc, nil
}

// SaveUserCatalog writes a user catalog to <catalogs-dir>/<name>.yaml.
// Used by the settings flow when the user defines custom categories.
func SaveUserCatalog(dir, name string, uc *UserCatalog) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create catalogs dir: %w", err)
	}
	data, err := yaml.Marshal(uc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal catalog: %w", err)
	}
	path := filepath.Join(dir, sanitizeFileName(name)+".yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write catalog: %w", err)
	}
	return path, nil
}

// DeleteUserCatalog removes a saved user catalog file by name.
func DeleteUserCatalog(dir, name string) error {
	path := filepath.Join(dir, sanitizeFileName(name)+".yaml")
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete catalog: %w", err)
	}
	return nil
}

// LoadQuestionsFile reads a plain text file with one question per line,
// for the settings "upload questions" flow. Blank lines are skipped and
// the list is capped at MaxUserQuestions.
func LoadQuestionsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read questions file: %w", err)
	}
	var qs []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		qs = append(qs, line)
		if len(qs) == MaxUserQuestions {
			break
		}
	}
	if len(qs) == 0 {
		return nil, fmt.Errorf("no questions found in %s", path)
	}
	return qs, nil
}

func sanitizeFileName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "catalog"
	}
	return b.String()
}
