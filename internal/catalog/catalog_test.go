package catalog

import (
	"testing"

	"adhkar-cli/internal/model"
)

func TestDefaultCatalogShape(t *testing.T) {
	t.Parallel()

	cats := Default().Categories()
	if len(cats) != 3 {
		t.Fatalf("categories = %d, want 3", len(cats))
	}

	wantCounts := map[string]int{"morning": 30, "evening": 3, "sleep": 5}
	for _, cat := range cats {
		want, ok := wantCounts[cat.ID]
		if !ok {
			t.Fatalf("unexpected category %q", cat.ID)
		}
		if got := len(cat.Adhkar); got != want {
			t.Errorf("category %q has %d items, want %d", cat.ID, got, want)
		}
		if cat.Title == "" || cat.ArabicTitle == "" {
			t.Errorf("category %q missing titles", cat.ID)
		}
	}
}

func TestDefaultCatalogIDsUnique(t *testing.T) {
	t.Parallel()

	seenCat := map[string]bool{}
	for _, cat := range Default().Categories() {
		if seenCat[cat.ID] {
			t.Fatalf("duplicate category id %q", cat.ID)
		}
		seenCat[cat.ID] = true

		seen := map[string]bool{}
		for _, d := range cat.Adhkar {
			if d.ID == "" {
				t.Fatalf("category %q has item with empty id", cat.ID)
			}
			if seen[d.ID] {
				t.Fatalf("duplicate item id %q in category %q", d.ID, cat.ID)
			}
			seen[d.ID] = true
			if d.Arabic == "" {
				t.Errorf("item %q has no arabic text", d.ID)
			}
		}
	}
}

func TestFindCategory(t *testing.T) {
	t.Parallel()

	c := Default()
	if _, ok := c.FindCategory("morning"); !ok {
		t.Fatal("morning not found")
	}
	if _, ok := c.FindCategory("  evening  "); !ok {
		t.Fatal("expected surrounding whitespace to be trimmed")
	}
	if _, ok := c.FindCategory("midnight"); ok {
		t.Fatal("found a category that does not exist")
	}
}

func TestFindDhikr(t *testing.T) {
	t.Parallel()

	c := Default()

	d, i, ok := c.FindDhikr("sleep", "sleep-3")
	if !ok {
		t.Fatal("sleep-3 not found")
	}
	if i != 2 {
		t.Errorf("index = %d, want 2", i)
	}
	if d.Repeat != 33 {
		t.Errorf("repeat = %d, want 33", d.Repeat)
	}

	if _, _, ok := c.FindDhikr("sleep", "morning-1"); ok {
		t.Error("found an item from another category")
	}
	if _, _, ok := c.FindDhikr("nope", "sleep-1"); ok {
		t.Error("found an item in a missing category")
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	t.Parallel()

	c := New([]model.Category{{ID: "a"}, {ID: "b"}})
	got := c.Categories()
	got[0] = model.Category{ID: "mutated"}
	if _, ok := c.FindCategory("a"); !ok {
		t.Fatal("mutating the returned slice leaked into the catalog")
	}
}

func TestHasCounter(t *testing.T) {
	t.Parallel()

	cases := []struct {
		repeat int
		want   bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{100, true},
	}
	for _, tc := range cases {
		d := model.Dhikr{ID: "x", Repeat: tc.repeat}
		if got := d.HasCounter(); got != tc.want {
			t.Errorf("repeat=%d: HasCounter() = %v, want %v", tc.repeat, got, tc.want)
		}
	}
}
