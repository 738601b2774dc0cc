package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MenuItem is a purchasable item with its unit price
type MenuItem struct {
	Name  string
	Price decimal.Decimal
}

// Catalog is the immutable menu, ordered by price and then name.
// Display index i (1-based) maps to the same item for the catalog's lifetime.
type Catalog struct {
	items []MenuItem
}

// NewCatalog copies items and sorts the copy by (price, name).
func NewCatalog(items []MenuItem) *Catalog {
	sorted := make([]MenuItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := sorted[i].Price.Cmp(sorted[j].Price); c != 0 {
			return c < 0
		}
		return sorted[i].Name < sorted[j].Name
	})
	return &Catalog{items: sorted}
}

// Len returns the number of items on the menu
func (c *Catalog) Len() int {
	return len(c.items)
}

// At returns the item shown at the 1-based display index.
func (c *Catalog) At(index int) (*MenuItem, bool) {
	if index < 1 || index > len(c.items) {
		return nil, false
	}
	return &c.items[index-1], true
}

// Items returns a copy of the menu in display order
func (c *Catalog) Items() []MenuItem {
	out := make([]MenuItem, len(c.items))
	copy(out, c.items)
	return out
}
