package store

import (
	"context"
	"encoding/json"
	"errors"

	"adhkar-cli/internal/model"
)

const settingsKey = "settings"

// LoadSettings returns the persisted settings, or the defaults when none
// were saved yet or the blob is unreadable.
func (s Store) LoadSettings(ctx context.Context) (model.Settings, error) {
	b, err := s.Get(ctx, settingsKey)
	if errors.Is(err, ErrKeyNotFound) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return model.DefaultSettings(), err
	}
	var st model.Settings
	if err := json.Unmarshal(b, &st); err != nil {
		return model.DefaultSettings(), nil
	}
	return st, nil
}

// SaveSettings persists the settings.
func (s Store) SaveSettings(ctx context.Context, st model.Settings) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.Set(ctx, settingsKey, b)
}
