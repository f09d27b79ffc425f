package cli

import (
	"fmt"

	"adhkar-cli/internal/catalog"

	"github.com/spf13/cobra"
)

type dhikrSummary struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
	Repeat   int    `json:"repeat,omitempty"`
	Arabic   string `json:"arabic"`
}

func newAdhkarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adhkar",
		Short: "Inspect individual adhkar",
	}

	list := &cobra.Command{
		Use:   "list <category-id>",
		Short: "List the adhkar of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, ok := catalog.Default().FindCategory(args[0])
			if !ok {
				return fmt.Errorf("unknown category: %q (run `adhkar categories list`)", args[0])
			}
			out := make([]dhikrSummary, 0, len(cat.Adhkar))
			for i, d := range cat.Adhkar {
				out = append(out, dhikrSummary{
					ID:       d.ID,
					Position: i + 1,
					Repeat:   d.Repeat,
					Arabic:   d.Arabic,
				})
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"category": cat.ID,
				"adhkar":   out,
			}})
		},
	}

	show := &cobra.Command{
		Use:   "show <category-id> <dhikr-id>",
		Short: "Show one dhikr in full",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, i, ok := catalog.Default().FindDhikr(args[0], args[1])
			if !ok {
				return fmt.Errorf("unknown dhikr: %q in category %q", args[1], args[0])
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"category": args[0],
				"position": i + 1,
				"dhikr":    d,
			}})
		},
	}

	cmd.AddCommand(list)
	cmd.AddCommand(show)
	return cmd
}
