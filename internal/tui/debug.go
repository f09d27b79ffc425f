package tui

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// newDebugLogger returns the opt-in TUI debug logger. It stays silent unless
// ADHKAR_TUI_DEBUG_LOG names a file to append to; the TUI owns the terminal,
// so logging to stdout/stderr is never an option here.
func newDebugLogger() zerolog.Logger {
	path := strings.TrimSpace(os.Getenv("ADHKAR_TUI_DEBUG_LOG"))
	if path == "" {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Str("component", "tui").Logger()
}
