// Package stats tracks per-session usage: how many prompts were
// generated, for which categories, and how thoroughly questionnaires
// were answered. Lifetime numbers come from the history store; this
// package only covers the running session.
package stats

import (
	"sort"
	"time"
)

// Tracker accumulates counters for one wizard session. It is mutated
// from the single control loop and needs no locking.
type Tracker struct {
	startedAt  time.Time
	generated  int
	copied     int
	saved      int
	answered   int
	skipped    int
	byCategory map[string]int
	clock      func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source. Tests freeze it.
func WithClock(clock func() time.Time) Option {
	return func(t *Tracker) { t.clock = clock }
}

// NewTracker starts a tracker at the current time.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		byCategory: make(map[string]int),
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.startedAt = t.clock()
	return t
}

// RecordGeneration notes one completed questionnaire.
func (t *Tracker) RecordGeneration(category string, answered, skipped int) {
	t.generated++
	t.answered += answered
	t.skipped += skipped
	t.byCategory[category]++
}

// RecordCopy notes one clipboard copy.
func (t *Tracker) RecordCopy() { t.copied++ }

// RecordSave notes one file save.
func (t *Tracker) RecordSave() { t.saved++ }

// Generated returns the number of prompts generated this session.
func (t *Tracker) Generated() int { return t.generated }

// Copied returns the number of clipboard copies this session.
func (t *Tracker) Copied() int { return t.copied }

// Saved returns the number of file saves this session.
func (t *Tracker) Saved() int { return t.saved }

// Answered returns the total answered questions this session.
func (t *Tracker) Answered() int { return t.answered }

// Skipped returns the total skipped questions this session.
func (t *Tracker) Skipped() int { return t.skipped }

// Elapsed returns how long the session has been running.
func (t *Tracker) Elapsed() time.Duration {
	return t.clock().Sub(t.startedAt)
}

// CategoryCount is one row of the per-category breakdown.
type CategoryCount struct {
	Category string
	Count    int
}

// ByCategory returns the per-category generation counts, highest
// first, ties broken by name.
func (t *Tracker) ByCategory() []CategoryCount {
	out := make([]CategoryCount, 0, len(t.byCategory))
	for cat, n := range t.byCategory {
		out = append(out, CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// CompletionRate returns answered / (answered + skipped) as a
// percentage, or 0 when nothing was asked yet.
func (t *Tracker) CompletionRate() int {
	total := t.answered + t.skipped
	if total == 0 {
		return 0
	}
	return t.answered * 100 / total
}
