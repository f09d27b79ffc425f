package tui

import (
	"adhkar-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configure the interactive app.
type Options struct {
	Store store.Store

	// CategoryID/DhikrID open the reader (or a category) directly instead of
	// restoring the last screen.
	CategoryID string
	DhikrID    string
}

func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference()
	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
