package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"promptforge/cmd/forge/wizard"
	"promptforge/internal/catalog"
	"promptforge/internal/clipboard"
	"promptforge/internal/config"
	"promptforge/internal/history"
	"promptforge/internal/logging"
	"promptforge/internal/save"
	"promptforge/internal/stats"
)

var (
	// Global flags
	verbose bool
	dataDir string

	// Logger for non-interactive commands
	logger *zap.Logger
)

// rootCmd launches the interactive wizard when run without arguments.
var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "promptforge - guided prompt builder for AI tools",
	Long: `promptforge builds detailed, structured prompts through a guided
questionnaire: pick a category and subcategory, answer a short series
of questions, and get a prompt assembled from a purpose-built template.

Run without arguments to start the interactive wizard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The wizard has its own UI; skip the zap logger for it.
		if cmd.Use == "forge" && cmd.CalledAs() == "forge" {
			return nil
		}
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWizard()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.promptforge)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataDir applies the --data-dir flag over the environment and
// default.
func resolveDataDir() string {
	if dataDir != "" {
		return dataDir
	}
	return config.DataDir()
}

// runWizard wires the collaborators and starts the TUI.
func runWizard() error {
	dir := resolveDataDir()

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	logging.Initialize(dir)
	defer logging.CloseAll()

	cat := catalog.New()
	catalogsDir := catalog.CatalogsDir(dir)
	if err := cat.LoadUserCatalogs(catalogsDir); err != nil {
		logging.CatalogWarn("failed to load user catalogs: %v", err)
	}

	// Hot-reload user catalogs edited while the wizard runs. Reload
	// rebuilds from the built-ins so deletions take effect too.
	watcher, err := catalog.NewWatcher(catalogsDir, func() {
		fresh := catalog.New()
		if err := fresh.LoadUserCatalogs(catalogsDir); err != nil {
			logging.CatalogWarn("catalog reload failed: %v", err)
			return
		}
		cat.ReplaceFrom(fresh)
	})
	if err == nil {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := watcher.Start(ctx); err == nil {
			defer watcher.Stop()
		}
	} else {
		logging.CatalogWarn("catalog watcher unavailable: %v", err)
	}

	hist, err := history.Open(filepath.Join(dir, "history.db"), history.WithLimit(cfg.HistoryLimit))
	if err != nil {
		logging.StorageError("history unavailable: %v", err)
		hist = nil
	} else {
		defer hist.Close()
	}

	tracker := stats.NewTracker()
	err = wizard.Run(wizard.Deps{
		Config:  cfg,
		DataDir: dir,
		Catalog: cat,
		History: hist,
		Saver:   save.New(cfg.OutputDir),
		Clip:    clipboard.New(),
		Tracker: tracker,
	})

	// Best-effort recap once the terminal is back to normal.
	fmt.Print(sessionSummary(tracker))
	return err
}

// sessionSummary formats the recap printed after the wizard exits.
func sessionSummary(t *stats.Tracker) string {
	var sb strings.Builder
	sb.WriteString("\nSession summary\n")
	sb.WriteString(fmt.Sprintf("  Prompts generated  %d\n", t.Generated()))
	sb.WriteString(fmt.Sprintf("  Copied / saved     %d / %d\n", t.Copied(), t.Saved()))
	sb.WriteString(fmt.Sprintf("  Completion rate    %d%%\n", t.CompletionRate()))
	sb.WriteString(fmt.Sprintf("  Session length     %s\n", t.Elapsed().Round(time.Second)))
	return sb.String()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
