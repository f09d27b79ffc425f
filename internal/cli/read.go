package cli

import (
	"github.com/spf13/cobra"
)

func newReadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "read [category-id] [dhikr-id]",
		Short: "Open the reader in the TUI",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var categoryID, dhikrID string
			if len(args) > 0 {
				categoryID = args[0]
			}
			if len(args) > 1 {
				dhikrID = args[1]
			}
			return runTUI(app, categoryID, dhikrID)
		},
	}
}
