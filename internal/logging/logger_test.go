package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetState clears the package state between tests, since the logger
// is process-global by design.
func resetState() {
	CloseAll()
	configMu.Lock()
	config = loggingConfig{}
	configLoaded = false
	logLevel = LevelInfo
	configMu.Unlock()
	logsDir = ""
	dataDir = ""
}

func initWithConfig(t *testing.T, configJSON string) string {
	t.Helper()
	resetState()
	t.Cleanup(resetState)

	dir := t.TempDir()
	if configJSON != "" {
		if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(configJSON), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
	}
	if err := Initialize(dir); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return dir
}

func TestDebugModeWritesCategoryFiles(t *testing.T) {
	dir := initWithConfig(t, `{"logging": {"debug_mode": true, "level": "debug"}}`)

	Session("page transition test")
	Catalog("catalog load test")
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	if err != nil {
		t.Fatalf("logs dir missing: %v", err)
	}
	found := map[string]bool{}
	for _, e := range entries {
		for _, cat := range []string{"session", "catalog"} {
			if strings.Contains(e.Name(), cat) {
				found[cat] = true
			}
		}
	}
	if !found["session"] || !found["catalog"] {
		t.Fatalf("expected session and catalog log files, got %v", entries)
	}
}

func TestProductionModeIsSilent(t *testing.T) {
	dir := initWithConfig(t, "")

	Session("should go nowhere")
	History("also nowhere")

	if _, err := os.Stat(filepath.Join(dir, "logs")); !os.IsNotExist(err) {
		t.Fatalf("logs dir should not exist in production mode")
	}
}

func TestCategoryToggle(t *testing.T) {
	initWithConfig(t, `{"logging": {"debug_mode": true, "level": "debug",
		"categories": {"session": false, "catalog": true}}}`)

	if IsCategoryEnabled(CategorySession) {
		t.Fatalf("session category should be disabled")
	}
	if !IsCategoryEnabled(CategoryCatalog) {
		t.Fatalf("catalog category should be enabled")
	}
	if !IsCategoryEnabled(CategoryHistory) {
		t.Fatalf("unlisted categories default to enabled")
	}
}

func TestLevelFiltersDebug(t *testing.T) {
	dir := initWithConfig(t, `{"logging": {"debug_mode": true, "level": "warn"}}`)

	SessionDebug("filtered")
	Session("also filtered, info below warn")
	CatalogWarn("kept")
	CloseAll()

	logs := filepath.Join(dir, "logs")
	entries, err := os.ReadDir(logs)
	if err != nil {
		t.Fatalf("logs dir missing: %v", err)
	}
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(logs, e.Name()))
		if err != nil {
			t.Fatalf("failed to read %s: %v", e.Name(), err)
		}
		content := string(data)
		if strings.Contains(content, "filtered") {
			t.Fatalf("messages below the level must be dropped: %s", content)
		}
	}
}

func TestTimerLogsAtDebug(t *testing.T) {
	initWithConfig(t, `{"logging": {"debug_mode": true, "level": "debug"}}`)

	timer := StartTimer(CategoryGenerator, "generate")
	if d := timer.Stop(); d < 0 {
		t.Fatalf("elapsed time should be non-negative")
	}
}
