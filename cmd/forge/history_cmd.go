package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"promptforge/internal/config"
	"promptforge/internal/history"
)

var (
	histLimit  int
	histSearch string
	histFull   bool
)

// historyCmd inspects the stored prompt history.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently generated prompts",
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all stored prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Clear(context.Background()); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the stored prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		st, err := store.Stats(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Total prompts: %d\n", st.Total)
		if st.Total == 0 {
			return nil
		}
		fmt.Printf("Average words: %d\n", st.AvgWords)
		fmt.Printf("First: %s\n", st.First.Local().Format("2006-01-02 15:04"))
		fmt.Printf("Last:  %s\n", st.Last.Local().Format("2006-01-02 15:04"))
		fmt.Println("By category:")
		for cat, n := range st.ByCategory {
			fmt.Printf("  %-10s %d\n", cat, n)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&histLimit, "limit", "n", 10, "number of entries to show")
	historyCmd.Flags().StringVar(&histSearch, "search", "", "filter by text, category, or subcategory")
	historyCmd.Flags().BoolVar(&histFull, "full", false, "print full prompts instead of previews")
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyStatsCmd)
}

func openHistory() (*history.Store, error) {
	dir := resolveDataDir()
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	return history.Open(filepath.Join(dir, "history.db"), history.WithLimit(cfg.HistoryLimit))
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	var entries []history.Entry
	if histSearch != "" {
		entries, err = store.Search(ctx, histSearch)
	} else {
		entries, err = store.Recent(ctx, histLimit)
	}
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No prompts in history.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %s/%s  %d words\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Category, e.Subcategory, e.WordCount)
		if histFull {
			fmt.Println(e.Prompt)
			fmt.Println(strings.Repeat("-", 60))
		}
	}
	return nil
}
