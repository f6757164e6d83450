package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataDir(t *testing.T) {
	t.Run("env override wins", func(t *testing.T) {
		t.Setenv("FORGE_DATA_DIR", "/tmp/forge-test")
		assert.Equal(t, "/tmp/forge-test", DataDir())
	})

	t.Run("defaults under home", func(t *testing.T) {
		t.Setenv("FORGE_DATA_DIR", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".promptforge"), DataDir())
	})
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	cfg := Default()
	cfg.Theme = "dark"
	cfg.HistoryLimit = 25
	cfg.Logging.DebugMode = true

	require.NoError(t, cfg.Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.Theme)
	assert.Equal(t, 25, loaded.HistoryLimit)
	assert.True(t, loaded.Logging.DebugMode)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte(`{"theme": "light"}`), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "generated_prompts", cfg.OutputDir)
	assert.Equal(t, 50, cfg.HistoryLimit)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMalformedFileErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("{not json"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}
