package catalog

import (
	"strings"

	"adhkar-cli/internal/model"
)

// Catalog is the read-only set of adhkar categories. It is built once at
// process start and shared by every screen; no component may mutate it.
type Catalog struct {
	categories []model.Category
}

var defaultCatalog = &Catalog{categories: adhkarData}

// Default returns the compiled-in catalog.
func Default() *Catalog { return defaultCatalog }

// New builds a catalog from the given categories. Used by tests that need a
// small fixture instead of the full compiled-in data.
func New(categories []model.Category) *Catalog {
	return &Catalog{categories: categories}
}

// Categories returns the categories in display order. The returned slice is a
// copy; the category values share the underlying (immutable) item slices.
func (c *Catalog) Categories() []model.Category {
	out := make([]model.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// FindCategory resolves a category by id.
func (c *Catalog) FindCategory(id string) (model.Category, bool) {
	id = strings.TrimSpace(id)
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return model.Category{}, false
}

// FindDhikr resolves a dhikr within a category and returns its index.
func (c *Catalog) FindDhikr(categoryID, dhikrID string) (model.Dhikr, int, bool) {
	cat, ok := c.FindCategory(categoryID)
	if !ok {
		return model.Dhikr{}, -1, false
	}
	dhikrID = strings.TrimSpace(dhikrID)
	for i, d := range cat.Adhkar {
		if d.ID == dhikrID {
			return d, i, true
		}
	}
	return model.Dhikr{}, -1, false
}
