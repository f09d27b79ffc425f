package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCategoryAccentsCoverCatalogCategories(t *testing.T) {
	for _, id := range []string{"morning", "evening", "sleep"} {
		if _, ok := categoryAccents[id]; !ok {
			t.Errorf("no accent for category %q", id)
		}
	}
}

func TestCategoryFillColorFollowsAccent(t *testing.T) {
	for dark, pick := range map[bool]func(lipgloss.AdaptiveColor) string{
		false: func(c lipgloss.AdaptiveColor) string { return c.Light },
		true:  func(c lipgloss.AdaptiveColor) string { return c.Dark },
	} {
		lipgloss.SetHasDarkBackground(dark)
		for id, accent := range categoryAccents {
			if got, want := categoryFillColor(id), pick(accent); got != want {
				t.Errorf("dark=%v category %q: fill = %q, want accent %q", dark, id, got, want)
			}
		}
		// Unknown categories fall back to the default accent.
		if got := categoryFillColor("nope"); got != pick(ac("27", "62")) {
			t.Errorf("dark=%v fallback fill = %q", dark, got)
		}
	}
}
