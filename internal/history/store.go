// Package history persists generated prompts to a local SQLite
// database so past sessions can be browsed, searched, and summarized.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"promptforge/internal/logging"
)

// DefaultLimit is the retention cap: only the most recent entries are
// kept, older ones are pruned on insert.
const DefaultLimit = 50

// storedTimeLayout is RFC 3339 with fixed-width nanoseconds so that
// lexicographic order on the column matches chronological order.
const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one stored prompt. Answers keeps the full question-index to
// answer-text map the prompt was generated from, so a past run can be
// inspected or re-created.
type Entry struct {
	ID          string
	Category    string
	Subcategory string
	Prompt      string
	Answers     map[int]string
	WordCount   int
	CharCount   int
	Answered    int
	Skipped     int
	CreatedAt   time.Time
}

// Stats is the aggregate view of the store.
type Stats struct {
	Total      int
	ByCategory map[string]int
	AvgWords   int
	First      time.Time
	Last       time.Time
}

// Store is a SQLite-backed prompt history. Safe for use from a single
// process; the busy timeout covers concurrent CLI invocations.
type Store struct {
	db    *sql.DB
	limit int
	clock func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLimit overrides the retention cap. A non-positive limit disables
// pruning.
func WithLimit(n int) Option {
	return func(s *Store) { s.limit = n }
}

// WithClock overrides the timestamp source. Tests freeze it.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// Open opens (or creates) the history database at path.
func Open(path string, opts ...Option) (*Store, error) {
	timer := logging.StartTimer(logging.CategoryStorage, "history.Open")
	defer timer.Stop()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.StorageError("failed to set busy_timeout: %v", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.StorageError("failed to set journal_mode=WAL: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		logging.StorageError("failed to set synchronous=NORMAL: %v", err)
	}

	s := &Store{db: db, limit: DefaultLimit, clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	logging.Storage("history store opened at %s (limit %d)", path, s.limit)
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS prompts (
		id TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		subcategory TEXT NOT NULL,
		prompt TEXT NOT NULL,
		answers TEXT NOT NULL DEFAULT '{}',
		word_count INTEGER NOT NULL,
		char_count INTEGER NOT NULL,
		answered INTEGER NOT NULL DEFAULT 0,
		skipped INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_prompts_created ON prompts(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_prompts_category ON prompts(category);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize history schema: %w", err)
	}

	// Databases created before the answers column existed get it added
	// in place; the error for an already-present column is ignored.
	if _, err := s.db.Exec(`ALTER TABLE prompts ADD COLUMN answers TEXT NOT NULL DEFAULT '{}'`); err == nil {
		logging.Storage("history schema upgraded with answers column")
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add stores a prompt with its answer set and prunes entries beyond
// the retention cap. Word and character counts are derived here so
// every caller records them consistently; the answered count is the
// size of the answer set.
func (s *Store) Add(ctx context.Context, category, subcategory, prompt string, answers map[int]string, skipped int) (Entry, error) {
	if answers == nil {
		answers = map[int]string{}
	}
	e := Entry{
		ID:          uuid.NewString(),
		Category:    category,
		Subcategory: subcategory,
		Prompt:      prompt,
		Answers:     answers,
		WordCount:   len(strings.Fields(prompt)),
		CharCount:   len(prompt),
		Answered:    len(answers),
		Skipped:     skipped,
		CreatedAt:   s.clock().UTC(),
	}

	answersJSON, err := json.Marshal(e.Answers)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to encode answers: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO prompts (id, category, subcategory, prompt, answers, word_count, char_count, answered, skipped, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Category, e.Subcategory, e.Prompt, string(answersJSON), e.WordCount, e.CharCount, e.Answered, e.Skipped,
		e.CreatedAt.Format(storedTimeLayout))
	if err != nil {
		return Entry{}, fmt.Errorf("failed to store prompt: %w", err)
	}

	if s.limit > 0 {
		if err := s.prune(ctx); err != nil {
			logging.StorageError("history prune failed: %v", err)
		}
	}
	logging.History("stored prompt %s for %s/%s (%d words)", e.ID, category, subcategory, e.WordCount)
	return e, nil
}

// prune deletes everything older than the newest limit entries.
func (s *Store) prune(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM prompts WHERE id NOT IN (
			SELECT id FROM prompts ORDER BY created_at DESC, id LIMIT ?
		)`, s.limit)
	return err
}

// Recent returns up to n entries, most recent first. n <= 0 means all
// retained entries.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		n = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, subcategory, prompt, answers, word_count, char_count, answered, skipped, created_at
		FROM prompts ORDER BY created_at DESC, id LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Search returns entries whose prompt text, category, or subcategory
// contains the query, most recent first.
func (s *Store) Search(ctx context.Context, query string) ([]Entry, error) {
	pattern := "%" + strings.TrimSpace(query) + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, subcategory, prompt, answers, word_count, char_count, answered, skipped, created_at
		FROM prompts
		WHERE prompt LIKE ? OR category LIKE ? OR subcategory LIKE ?
		ORDER BY created_at DESC, id`, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search history: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ByCategory returns entries for one category, most recent first.
func (s *Store) ByCategory(ctx context.Context, category string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, subcategory, prompt, answers, word_count, char_count, answered, skipped, created_at
		FROM prompts WHERE category = ? ORDER BY created_at DESC, id`, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Get returns a single entry by ID.
func (s *Store) Get(ctx context.Context, id string) (Entry, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, category, subcategory, prompt, answers, word_count, char_count, answered, skipped, created_at
		FROM prompts WHERE id = ?`, id)
	var e Entry
	var answersJSON, createdAt string
	err := row.Scan(&e.ID, &e.Category, &e.Subcategory, &e.Prompt, &answersJSON, &e.WordCount, &e.CharCount, &e.Answered, &e.Skipped, &createdAt)
	if err == sql.ErrNoRows {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to load entry: %w", err)
	}
	e.Answers = decodeAnswers(answersJSON)
	e.CreatedAt, _ = parseStoredTime(createdAt)
	return e, true, nil
}

// Delete removes one entry by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM prompts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

// Clear removes all entries.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM prompts`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	logging.History("history cleared")
	return nil
}

// Stats aggregates the retained entries.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	st := Stats{ByCategory: make(map[string]int)}

	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(AVG(word_count), 0),
		       COALESCE(MIN(created_at), ''), COALESCE(MAX(created_at), '')
		FROM prompts`)
	var avg float64
	var first, last sql.NullString
	if err := row.Scan(&st.Total, &avg, &first, &last); err != nil {
		return Stats{}, fmt.Errorf("failed to aggregate history: %w", err)
	}
	st.AvgWords = int(avg)
	if first.Valid && first.String != "" {
		if t, err := parseStoredTime(first.String); err == nil {
			st.First = t
		}
	}
	if last.Valid && last.String != "" {
		if t, err := parseStoredTime(last.String); err == nil {
			st.Last = t
		}
	}

	rows, err := s.db.QueryContext(ctx, `SELECT category, COUNT(*) FROM prompts GROUP BY category`)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to aggregate categories: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var cat string
		var count int
		if err := rows.Scan(&cat, &count); err != nil {
			return Stats{}, fmt.Errorf("failed to scan category count: %w", err)
		}
		st.ByCategory[cat] = count
	}
	return st, rows.Err()
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var out []Entry
	for rows.Next() {
		var e Entry
		var answersJSON, createdAt string
		if err := rows.Scan(&e.ID, &e.Category, &e.Subcategory, &e.Prompt, &answersJSON, &e.WordCount, &e.CharCount, &e.Answered, &e.Skipped, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.Answers = decodeAnswers(answersJSON)
		e.CreatedAt, _ = parseStoredTime(createdAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

// decodeAnswers reads back the stored answer map, tolerating entries
// written before the column existed.
func decodeAnswers(s string) map[int]string {
	out := map[int]string{}
	if s == "" {
		return out
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		logging.HistoryError("malformed answers column: %v", err)
		return map[int]string{}
	}
	return out
}

// parseStoredTime reads back a created_at value, tolerating the looser
// formats older databases may contain.
func parseStoredTime(s string) (time.Time, error) {
	for _, layout := range []string{storedTimeLayout, time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}
