package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// database/sql keeps a connection opener goroutine per pool.
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

// tickingClock returns a clock that advances one second per call, so
// insert order and created_at order agree deterministically.
func tickingClock() func() time.Time {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
}

func openTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{WithClock(tickingClock())}, opts...)
	s, err := Open(filepath.Join(t.TempDir(), "history.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func TestAddAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	e1, err := s.Add(ctx, "code", "web_app", "Build a web app prompt", map[int]string{0: "a task tracker", 2: "small teams"}, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, e1.ID)
	assert.Equal(t, 5, e1.WordCount)
	assert.Equal(t, len("Build a web app prompt"), e1.CharCount)
	assert.Equal(t, 2, e1.Answered, "answered count follows the answer set")

	_, err = s.Add(ctx, "image", "fantasy", "Paint a dragon", nil, 0)
	require.NoError(t, err)

	entries, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "image", entries[0].Category, "most recent first")
	assert.Equal(t, "code", entries[1].Category)
}

func TestAnswersRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	answers := map[int]string{0: "the main goal", 3: "dark mode", 7: "REST only"}
	added, err := s.Add(ctx, "code", "web_app", "full prompt text", answers, 1)
	require.NoError(t, err)
	assert.Equal(t, answers, added.Answers)

	got, found, err := s.Get(ctx, added.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, answers, got.Answers)
	assert.Equal(t, 3, got.Answered)
	assert.Equal(t, 1, got.Skipped)

	recent, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, answers, recent[0].Answers)

	t.Run("nil answer set stores empty", func(t *testing.T) {
		added, err := s.Add(ctx, "code", "web_app", "unanswered", nil, 0)
		require.NoError(t, err)
		got, found, err := s.Get(ctx, added.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Empty(t, got.Answers)
		assert.Zero(t, got.Answered)
	})
}

func TestRecentHonorsCount(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := s.Add(ctx, "text", "blog", "prompt", nil, 0)
		require.NoError(t, err)
	}

	entries, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	all, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestRetentionPrunesOldest(t *testing.T) {
	s := openTestStore(t, WithLimit(3))
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		e, err := s.Add(ctx, "music", "edm", "beat prompt", nil, 0)
		require.NoError(t, err)
		ids = append(ids, e.ID)
	}

	entries, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	_, found, err := s.Get(ctx, ids[0])
	require.NoError(t, err)
	assert.False(t, found, "oldest entry must be pruned")

	_, found, err = s.Get(ctx, ids[4])
	require.NoError(t, err)
	assert.True(t, found, "newest entry must survive")
}

func TestSearch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Add(ctx, "code", "backend", "Design a REST API for invoicing", nil, 0)
	require.NoError(t, err)
	_, err = s.Add(ctx, "video", "tutorial", "Record a cooking lesson", nil, 0)
	require.NoError(t, err)

	t.Run("matches prompt text", func(t *testing.T) {
		got, err := s.Search(ctx, "REST API")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "backend", got[0].Subcategory)
	})

	t.Run("matches category", func(t *testing.T) {
		got, err := s.Search(ctx, "video")
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("no match", func(t *testing.T) {
		got, err := s.Search(ctx, "zebra")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestByCategory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, cat := range []string{"code", "code", "image"} {
		_, err := s.Add(ctx, cat, "sub", "prompt", nil, 0)
		require.NoError(t, err)
	}

	got, err := s.ByCategory(ctx, "code")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeleteAndClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	e, err := s.Add(ctx, "text", "fiction", "a short story seed", nil, 1)
	require.NoError(t, err)
	_, err = s.Add(ctx, "text", "fiction", "another seed", nil, 1)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, e.ID))
	_, found, err := s.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Clear(ctx))
	entries, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		st, err := s.Stats(ctx)
		require.NoError(t, err)
		assert.Zero(t, st.Total)
		assert.Empty(t, st.ByCategory)
	})

	_, err := s.Add(ctx, "code", "script", "one two three four", nil, 0)
	require.NoError(t, err)
	_, err = s.Add(ctx, "code", "debug", "one two", nil, 0)
	require.NoError(t, err)
	_, err = s.Add(ctx, "image", "meme", "one two three", nil, 0)
	require.NoError(t, err)

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Total)
	assert.Equal(t, 2, st.ByCategory["code"])
	assert.Equal(t, 1, st.ByCategory["image"])
	assert.Equal(t, 3, st.AvgWords)
	assert.False(t, st.First.IsZero())
	assert.False(t, st.Last.IsZero())
	assert.True(t, !st.Last.Before(st.First))
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "history.db")
	s, err := Open(path, WithClock(tickingClock()))
	require.NoError(t, err)
	require.NoError(t, s.Close())
}
