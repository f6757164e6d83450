// Package config holds the promptforge user configuration.
// Config lives at <data-dir>/config.json; the data dir defaults to
// ~/.promptforge and can be overridden with FORGE_DATA_DIR.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all promptforge configuration.
type Config struct {
	// Theme selects the color scheme: auto, light, or dark.
	Theme string `json:"theme"`

	// OutputDir is where saved prompts are written.
	// Relative paths are resolved against the working directory.
	OutputDir string `json:"output_dir"`

	// HistoryLimit caps how many generated prompts are retained.
	HistoryLimit int `json:"history_limit"`

	// Logging controls the categorized debug logger.
	Logging LoggingConfig `json:"logging"`
}

// LoggingConfig mirrors logging's view of the config file.
type LoggingConfig struct {
	DebugMode  bool            `json:"debug_mode"`
	Categories map[string]bool `json:"categories,omitempty"`
	Level      string          `json:"level"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Theme:        "auto",
		OutputDir:    "generated_prompts",
		HistoryLimit: 50,
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

// DataDir returns the promptforge data directory.
// FORGE_DATA_DIR overrides the default of ~/.promptforge.
func DataDir() string {
	if dir := os.Getenv("FORGE_DATA_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Last resort: keep data next to the binary's working directory.
		return ".promptforge"
	}
	return filepath.Join(home, ".promptforge")
}

// Path returns the config file path inside the given data dir.
func Path(dataDir string) string {
	return filepath.Join(dataDir, "config.json")
}

// Load reads config.json from the data dir. A missing file is not an
// error: defaults are returned so a fresh install works untouched.
func Load(dataDir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(dataDir))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config to <data-dir>/config.json, creating the
// data dir if needed.
func (c *Config) Save(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dataDir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyDefaults fills zero-valued fields after a partial config file.
func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = "auto"
	}
	if c.OutputDir == "" {
		c.OutputDir = "generated_prompts"
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = 50
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
