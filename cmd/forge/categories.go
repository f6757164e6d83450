package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promptforge/internal/catalog"
)

var categoriesQuestions bool

// categoriesCmd lists the available taxonomy, including user catalogs.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories and subcategories",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.New()
		if err := cat.LoadUserCatalogs(catalog.CatalogsDir(resolveDataDir())); err != nil {
			logger.Warn("failed to load user catalogs", zap.Error(err))
		}

		for _, c := range cat.Categories() {
			fmt.Printf("%s (%s)\n", c.Name, c.Key)
			if c.Description != "" {
				fmt.Printf("  %s\n", c.Description)
			}
			for _, sub := range c.Subcategories {
				fmt.Printf("  - %s\n", sub)
				if categoriesQuestions {
					for i, q := range cat.ResolveQuestions(c.Key, sub) {
						fmt.Printf("      %d. %s\n", i, q)
					}
				}
			}
		}
		return nil
	},
}

func init() {
	categoriesCmd.Flags().BoolVarP(&categoriesQuestions, "questions", "q", false, "also list each subcategory's questions")
}
