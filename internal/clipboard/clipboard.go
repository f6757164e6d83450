// Package clipboard copies generated prompts to the system clipboard,
// decorated with a small metadata header so a pasted prompt carries its
// provenance.
package clipboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"promptforge/internal/logging"
)

// writeAll is swappable so tests never touch the real clipboard.
var writeAll = clipboard.WriteAll

// Writer copies prompts to the system clipboard.
type Writer struct {
	clock       func() time.Time
	write       func(string) error
	unsupported bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithClock overrides the timestamp used in the metadata header.
func WithClock(clock func() time.Time) Option {
	return func(w *Writer) { w.clock = clock }
}

// WithWriteFunc replaces the platform clipboard backend. An injected
// backend counts as available; a nil fn marks the clipboard
// unavailable. Tests use both forms.
func WithWriteFunc(fn func(string) error) Option {
	return func(w *Writer) {
		w.write = fn
		w.unsupported = fn == nil
	}
}

// New creates a clipboard Writer backed by the platform clipboard.
func New(opts ...Option) *Writer {
	w := &Writer{
		clock:       time.Now,
		write:       func(text string) error { return writeAll(text) },
		unsupported: clipboard.Unsupported,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Available reports whether a clipboard backend exists on this system.
// Headless Linux without xclip/xsel is the common failure.
func (w *Writer) Available() bool {
	return !w.unsupported
}

// Copy writes the raw prompt to the clipboard.
func (w *Writer) Copy(prompt string) error {
	if w.write == nil {
		return fmt.Errorf("no clipboard backend available")
	}
	if err := w.write(prompt); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	logging.Clipboard("copied %d chars", len(prompt))
	return nil
}

// CopyWithMetadata writes the prompt prefixed with a comment header
// naming the category, subcategory, and generation time.
func (w *Writer) CopyWithMetadata(category, subcategory, prompt string) error {
	var sb strings.Builder
	sb.WriteString("# Generated Prompt\n")
	sb.WriteString("# Category: " + category + "\n")
	sb.WriteString("# Subcategory: " + subcategory + "\n")
	sb.WriteString("# Generated: " + w.clock().Format("2006-01-02 15:04:05") + "\n\n")
	sb.WriteString(prompt)
	return w.Copy(sb.String())
}
