package models

import "time"

// Catalog record types. Items and their categories share the items
// collection and are told apart by the Type marker.
const (
	CatalogTypeItem     = "item"
	CatalogTypeCategory = "category"
)

// CatalogEntry is a reusable catalog record: either a priced line-item
// definition (Type "item") or a named grouping (Type "category").
type CatalogEntry struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit,omitempty"`
	Price     float64   `json:"price,omitempty"`
	Category  string    `json:"category,omitempty"`
	SortOrder int       `json:"sortOrder,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
