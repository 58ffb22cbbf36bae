package models

import "time"

// ExportVersion tags every export document so future format changes can be
// detected on import.
const ExportVersion = 1

// Export kinds. "all" bundles every collection into one document.
const (
	KindEstimates = "estimates"
	KindItems     = "items"
	KindTemplates = "templates"
	KindAll       = "all"
)

// ExportDocument is the serialized form of one or more collections. Legacy
// exports were bare JSON arrays; those are still accepted on import via
// structural sniffing, but everything written today carries the Kind tag.
type ExportDocument struct {
	Version    int            `json:"version"`
	ExportedAt time.Time      `json:"exportedAt"`
	Kind       string         `json:"kind"`
	Estimates  []Estimate     `json:"estimates,omitempty"`
	Items      []CatalogEntry `json:"items,omitempty"`
	Templates  []Template     `json:"templates,omitempty"`
}

// ImportSummary reports what an import actually wrote. When an import aborts
// midway the counts reflect records already upserted before the failure.
type ImportSummary struct {
	Kind      string `json:"kind"`
	Estimates int    `json:"estimates"`
	Items     int    `json:"items"`
	Templates int    `json:"templates"`
}
