package store

import (
	"context"
	"testing"

	"adhkar-cli/internal/model"
)

func TestSettingsDefaults(t *testing.T) {
	t.Parallel()

	s := testStore(t)
	st, err := s.LoadSettings(context.Background())
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if st != model.DefaultSettings() {
		t.Fatalf("fresh settings = %+v, want defaults", st)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Parallel()

	s := testStore(t)
	ctx := context.Background()

	want := model.Settings{RemindersEnabled: true, PulsesEnabled: false}
	if err := s.SaveSettings(ctx, want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got, err := s.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got != want {
		t.Fatalf("settings = %+v, want %+v", got, want)
	}
}

func TestSettingsMalformedBlobReadsDefaults(t *testing.T) {
	t.Parallel()

	s := testStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "settings", []byte("nope")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got != model.DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults", got)
	}
}
