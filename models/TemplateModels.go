package models

// TemplateItem is a line-item definition inside a template. Quantity is
// intentionally absent; it is derived from the estimate's metrics when the
// template is applied.
type TemplateItem struct {
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Price float64 `json:"price"`
}

// Template is a named, reusable bundle of line-item definitions used to seed
// a new estimate's items.
type Template struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Items    []TemplateItem `json:"items"`
}
