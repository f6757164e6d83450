package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promptforge/internal/catalog"
	"promptforge/internal/clipboard"
	"promptforge/internal/config"
	"promptforge/internal/generator"
	"promptforge/internal/history"
	"promptforge/internal/save"
)

var (
	genCategory    string
	genSubcategory string
	genAnswers     []string
	genSave        bool
	genCopy        bool
	genNoHistory   bool
)

// generateCmd builds a prompt non-interactively, for scripting.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a prompt without the interactive wizard",
	Long: `Generates a prompt from flags instead of the questionnaire.

Answers are given as index=text pairs against the subcategory's
question list (see 'forge categories' for the questions):

  forge generate -c code -s web_app \
      -a "0=a task tracker" -a "2=small teams"`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genCategory, "category", "c", "", "category key (required)")
	generateCmd.Flags().StringVarP(&genSubcategory, "subcategory", "s", "", "subcategory key (required)")
	generateCmd.Flags().StringArrayVarP(&genAnswers, "answer", "a", nil, "answer as index=text; repeatable")
	generateCmd.Flags().BoolVar(&genSave, "save", false, "also save the prompt to the output dir")
	generateCmd.Flags().BoolVar(&genCopy, "copy", false, "also copy the prompt to the clipboard")
	generateCmd.Flags().BoolVar(&genNoHistory, "no-history", false, "do not record the prompt in history")
	_ = generateCmd.MarkFlagRequired("category")
	_ = generateCmd.MarkFlagRequired("subcategory")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dir := resolveDataDir()
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	cat := catalog.New()
	if err := cat.LoadUserCatalogs(catalog.CatalogsDir(dir)); err != nil {
		logger.Warn("failed to load user catalogs", zap.Error(err))
	}

	resolved, ok := cat.Category(genCategory)
	if !ok {
		return fmt.Errorf("unknown category %q", genCategory)
	}
	sub, ok := cat.Subcategory(resolved, genSubcategory)
	if !ok {
		return fmt.Errorf("unknown subcategory %q in %s", genSubcategory, resolved.Key)
	}

	answers, err := parseAnswers(genAnswers)
	if err != nil {
		return err
	}

	gen := generator.New(cat)
	prompt := gen.Generate(resolved.Key, sub, answers)
	fmt.Println(prompt)

	if !genNoHistory {
		hist, err := history.Open(filepath.Join(dir, "history.db"), history.WithLimit(cfg.HistoryLimit))
		if err != nil {
			logger.Warn("history unavailable", zap.Error(err))
		} else {
			defer hist.Close()
			if _, err := hist.Add(context.Background(), resolved.Key, sub, prompt, answers, 0); err != nil {
				logger.Warn("failed to record prompt", zap.Error(err))
			}
		}
	}

	if genSave {
		path, err := save.New(cfg.OutputDir).Save(resolved.Key, sub, prompt)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Saved to", path)
	}

	if genCopy {
		if err := clipboard.New().CopyWithMetadata(resolved.Key, sub, prompt); err != nil {
			logger.Warn("clipboard copy failed", zap.Error(err))
			fmt.Fprintln(cmd.ErrOrStderr(), "Copy failed:", err)
		}
	}
	return nil
}

// parseAnswers turns repeated index=text flags into an answer set.
func parseAnswers(raw []string) (map[int]string, error) {
	answers := make(map[int]string, len(raw))
	for _, pair := range raw {
		idxStr, text, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("answer %q is not in index=text form", pair)
		}
		idx, err := strconv.Atoi(strings.TrimSpace(idxStr))
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("answer %q has an invalid index", pair)
		}
		if text = strings.TrimSpace(text); text != "" {
			answers[idx] = text
		}
	}
	return answers, nil
}
