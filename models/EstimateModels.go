package models

import "time"

// Estimate statuses. Draft is the default for new estimates and is always
// restored on duplication.
const (
	StatusDraft     = "draft"
	StatusSent      = "sent"
	StatusAccepted  = "accepted"
	StatusCompleted = "completed"
)

// Units of measure for line items.
const (
	UnitArea   = "m2"  // square metre
	UnitLinear = "lm"  // linear metre
	UnitPiece  = "pc"  // piece
	UnitSet    = "set" // kit
)

// LineItem is one priced unit of work or material inside an estimate.
// Total is a cache of Quantity*Price and is owned by the calculator.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
	Total    float64 `json:"total"`
}

// Estimate is a single customer quote document. Total, Discount and
// FinalTotal are persisted redundantly and recomputed on every save.
type Estimate struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Object     string     `json:"object"`
	Address    string     `json:"address"`
	Rooms      int        `json:"rooms"`
	Area       float64    `json:"area"`
	Perimeter  float64    `json:"perimeter"`
	Height     float64    `json:"height"`
	Status     string     `json:"status"`
	Date       string     `json:"date"`
	Items      []LineItem `json:"items"`
	Notes      string     `json:"notes"`
	Total      float64    `json:"total"`
	Discount   float64    `json:"discount"`
	FinalTotal float64    `json:"finalTotal"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
