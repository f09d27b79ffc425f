package cli

import (
	"fmt"

	"adhkar-cli/internal/catalog"
	"adhkar-cli/internal/model"

	"github.com/spf13/cobra"
)

type categorySummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ArabicTitle string `json:"arabicTitle"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count"`
}

func summarizeCategory(cat model.Category) categorySummary {
	return categorySummary{
		ID:          cat.ID,
		Title:       cat.Title,
		ArabicTitle: cat.ArabicTitle,
		Description: cat.Description,
		Count:       len(cat.Adhkar),
	}
}

func newCategoriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Browse adhkar categories",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out []categorySummary
			for _, cat := range catalog.Default().Categories() {
				out = append(out, summarizeCategory(cat))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"categories": out}})
		},
	}

	show := &cobra.Command{
		Use:   "show <category-id>",
		Short: "Show one category with all of its adhkar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, ok := catalog.Default().FindCategory(args[0])
			if !ok {
				return fmt.Errorf("unknown category: %q (run `adhkar categories list`)", args[0])
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"category": cat}})
		},
	}

	cmd.AddCommand(list)
	cmd.AddCommand(show)
	return cmd
}
