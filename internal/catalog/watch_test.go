package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnYamlWrite(t *testing.T) {
	dir := t.TempDir()

	var reloads atomic.Int32
	w, err := NewWatcher(dir, func() { reloads.Add(1) })
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("questions: {}\n"), 0644))

	// Debounce is 500ms with a 100ms sweep; well within 3s.
	deadline := time.Now().Add(3 * time.Second)
	for reloads.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	assert.Positive(t, reloads.Load(), "expected a reload after a yaml write")
}

func TestWatcherIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()

	var reloads atomic.Int32
	w, err := NewWatcher(dir, func() { reloads.Add(1) })
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	time.Sleep(time.Second)
	assert.Zero(t, reloads.Load())
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir(), func() {})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	w.Stop()
	w.Stop()
}

func TestWatcherToleratesMissingDir(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "absent"), func() {})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	w.Stop()
}
