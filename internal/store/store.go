// Package store persists everything the app writes on-device: personal
// notes, settings and the last TUI screen. Notes and settings live as JSON
// blobs in a small string-keyed sqlite table; TUI state is a plain JSON
// file because it is disposable.
package store

import (
	"os"
	"path/filepath"
	"strings"
)

// Store locates the data directory. It is a value type; all methods are
// safe to call on a copy.
type Store struct {
	Dir string
}

// DefaultDir resolves the data directory: ADHKAR_DIR if set, otherwise
// <user config dir>/adhkar.
func DefaultDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("ADHKAR_DIR")); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "adhkar"), nil
}

// Ensure creates the data directory if missing.
func (s Store) Ensure() error {
	if strings.TrimSpace(s.Dir) == "" {
		return os.ErrInvalid
	}
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) kvPath() string {
	return filepath.Join(s.Dir, "kv.sqlite")
}
