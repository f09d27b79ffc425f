package cli

import (
	"fmt"
	"strings"

	"adhkar-cli/internal/model"

	"github.com/spf13/cobra"
)

func newNotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage personal notes",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return err
			}
			notes, err := s.ListNotes(cmd.Context())
			if err != nil {
				app.log.Error().Err(err).Msg("notes list failed")
				return err
			}
			if notes == nil {
				notes = []model.Note{}
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"notes": notes}})
		},
	}

	add := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(args[0])
			if text == "" {
				return fmt.Errorf("note text is empty")
			}
			if len([]rune(text)) > model.MaxNoteLen {
				return fmt.Errorf("note text exceeds %d characters", model.MaxNoteLen)
			}
			s, err := openStore(app)
			if err != nil {
				return err
			}
			note, err := s.CreateNote(cmd.Context(), text)
			if err != nil {
				app.log.Error().Err(err).Msg("notes add failed")
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"note": note}})
		},
	}

	edit := &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Replace the text of a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(args[1])
			if text == "" {
				return fmt.Errorf("note text is empty")
			}
			if len([]rune(text)) > model.MaxNoteLen {
				return fmt.Errorf("note text exceeds %d characters", model.MaxNoteLen)
			}
			s, err := openStore(app)
			if err != nil {
				return err
			}
			if err := s.UpdateNote(cmd.Context(), args[0], text); err != nil {
				app.log.Error().Err(err).Str("id", args[0]).Msg("notes edit failed")
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"id": args[0]}})
		},
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return err
			}
			if err := s.DeleteNote(cmd.Context(), args[0]); err != nil {
				app.log.Error().Err(err).Str("id", args[0]).Msg("notes rm failed")
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"id": args[0]}})
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Delete all notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return err
			}
			if err := s.ClearNotes(cmd.Context()); err != nil {
				app.log.Error().Err(err).Msg("notes clear failed")
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"cleared": true}})
		},
	}

	cmd.AddCommand(list)
	cmd.AddCommand(add)
	cmd.AddCommand(edit)
	cmd.AddCommand(rm)
	cmd.AddCommand(clear)
	return cmd
}
