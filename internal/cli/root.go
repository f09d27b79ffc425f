package cli

import (
	"os"
	"strings"

	"adhkar-cli/internal/format"
	"adhkar-cli/internal/store"
	"adhkar-cli/internal/tui"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string

	log zerolog.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{log: newLogger()}

	cmd := &cobra.Command{
		Use:          "adhkar",
		Short:        "Daily adhkar reader + personal notes (TUI and CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  adhkar

  # Open the reader directly
  adhkar read morning

  # Direct category lookup (shortcut for: adhkar read morning)
  adhkar morning

  # Scriptable commands
  adhkar categories list
  adhkar notes add "remember to give thanks"
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app, "", "")
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("ADHKAR_DIR", ""), "Path to the data dir (default: user config dir)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("ADHKAR_FORMAT", "json"), "Output format (json)")

	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newAdhkarCmd(app))
	cmd.AddCommand(newReadCmd(app))
	cmd.AddCommand(newNotesCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// newLogger builds the diagnostic logger. Silent unless ADHKAR_DEBUG_LOG
// names a file to append to.
func newLogger() zerolog.Logger {
	path := strings.TrimSpace(os.Getenv("ADHKAR_DEBUG_LOG"))
	if path == "" {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Str("component", "cli").Logger()
}

func runTUI(app *App, categoryID, dhikrID string) error {
	s, err := openStore(app)
	if err != nil {
		return err
	}
	return tui.Run(tui.Options{
		Store:      s,
		CategoryID: categoryID,
		DhikrID:    dhikrID,
	})
}

func openStore(app *App) (store.Store, error) {
	dir := app.Dir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, err
		}
		dir = d
		app.Dir = dir
	}
	return store.Store{Dir: dir}, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}
