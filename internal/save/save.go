// Package save writes generated prompts to disk as plain text files
// named <category>_<subcategory>_<timestamp>.txt under the configured
// output directory.
package save

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"promptforge/internal/logging"
)

const fileTimestampLayout = "20060102_150405"

// Saver writes prompt files into a fixed output directory.
type Saver struct {
	dir   string
	clock func() time.Time
}

// Option configures a Saver.
type Option func(*Saver)

// WithClock overrides the timestamp source used in file names.
func WithClock(clock func() time.Time) Option {
	return func(s *Saver) { s.clock = clock }
}

// New creates a Saver for the given output directory. The directory is
// created lazily on the first save.
func New(dir string, opts ...Option) *Saver {
	s := &Saver{dir: dir, clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the output directory.
func (s *Saver) Dir() string { return s.dir }

// Save writes the prompt and returns the path of the created file.
func (s *Saver) Save(category, subcategory, prompt string) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s_%s.txt",
		sanitize(category), sanitize(subcategory), s.clock().Format(fileTimestampLayout))
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, []byte(prompt), 0644); err != nil {
		return "", fmt.Errorf("failed to write prompt file: %w", err)
	}
	logging.Storage("saved prompt to %s", path)
	return path, nil
}

// sanitize keeps file names portable: lowercase, with anything outside
// [a-z0-9_-] collapsed to underscores.
func sanitize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "prompt"
	}
	return b.String()
}
