package services

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"estimator/models"
	"estimator/storage"
	"estimator/utils"
)

// ErrUnrecognizedImport is returned when a payload is neither a tagged export
// document nor a JSON array whose records look like estimates or catalog
// items.
var ErrUnrecognizedImport = errors.New("unrecognized import format")

// BuildExport serializes one collection (or all three) into a single tagged
// document with a version and an export timestamp.
func BuildExport(d *sql.DB, kind string) (*models.ExportDocument, error) {
	switch kind {
	case "":
		kind = models.KindAll
	case models.KindEstimates, models.KindItems, models.KindTemplates, models.KindAll:
	default:
		return nil, fmt.Errorf("unknown export kind %q", kind)
	}

	doc := &models.ExportDocument{
		Version:    models.ExportVersion,
		ExportedAt: time.Now().UTC(),
		Kind:       kind,
	}

	if kind == models.KindEstimates || kind == models.KindAll {
		if err := loadCollection(d, storage.CollectionEstimates, &doc.Estimates); err != nil {
			return nil, err
		}
	}
	if kind == models.KindItems || kind == models.KindAll {
		if err := loadCollection(d, storage.CollectionItems, &doc.Items); err != nil {
			return nil, err
		}
	}
	if kind == models.KindTemplates || kind == models.KindAll {
		if err := loadCollection(d, storage.CollectionTemplates, &doc.Templates); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func loadCollection(d *sql.DB, collection string, out interface{}) error {
	records, err := storage.GetAll(d, collection)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// ImportJSON accepts either a tagged export document or a legacy bare JSON
// array. Arrays are classified by structural sniffing: records carrying
// items+name+object are estimates, records carrying name+unit+price are
// catalog items. Records are upserted one at a time; a mid-stream failure
// leaves the records already written in place, which the summary reflects.
func ImportJSON(d *sql.DB, payload []byte) (*models.ImportSummary, error) {
	trimmed := strings.TrimSpace(string(payload))
	if trimmed == "" {
		return nil, ErrUnrecognizedImport
	}

	if strings.HasPrefix(trimmed, "{") {
		var doc models.ExportDocument
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnrecognizedImport, err)
		}
		if doc.Kind == "" && doc.Estimates == nil && doc.Items == nil && doc.Templates == nil {
			return nil, ErrUnrecognizedImport
		}
		return importDocument(d, &doc)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognizedImport, err)
	}
	if len(records) == 0 {
		return &models.ImportSummary{Kind: models.KindAll}, nil
	}

	kind, err := ClassifyRecord(records[0])
	if err != nil {
		return nil, err
	}

	doc := &models.ExportDocument{Kind: kind}
	raw, _ := json.Marshal(records)
	switch kind {
	case models.KindEstimates:
		if err := json.Unmarshal(raw, &doc.Estimates); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnrecognizedImport, err)
		}
	case models.KindItems:
		if err := json.Unmarshal(raw, &doc.Items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnrecognizedImport, err)
		}
	}
	return importDocument(d, doc)
}

// ClassifyRecord sniffs the shape of one serialized record and reports which
// collection it belongs to.
func ClassifyRecord(record json.RawMessage) (string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(record, &fields); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnrecognizedImport, err)
	}

	has := func(key string) bool {
		_, ok := fields[key]
		return ok
	}

	switch {
	case has("items") && has("name") && has("object"):
		return models.KindEstimates, nil
	case has("name") && has("unit") && has("price"):
		return models.KindItems, nil
	default:
		return "", ErrUnrecognizedImport
	}
}

func importDocument(d *sql.DB, doc *models.ExportDocument) (*models.ImportSummary, error) {
	summary := &models.ImportSummary{Kind: doc.Kind}
	if summary.Kind == "" {
		summary.Kind = models.KindAll
	}

	for i := range doc.Estimates {
		e := doc.Estimates[i]
		if e.ID == "" {
			e.ID = utils.NewID()
		}
		for j := range e.Items {
			if e.Items[j].ID == "" {
				e.Items[j].ID = utils.NewID()
			}
		}
		if e.Status == "" {
			e.Status = models.StatusDraft
		}
		ApplyTotals(&e)
		if err := storage.Put(d, storage.CollectionEstimates, e.ID, e); err != nil {
			return summary, err
		}
		summary.Estimates++
	}

	for i := range doc.Items {
		item := doc.Items[i]
		if item.ID == "" {
			item.ID = utils.NewID()
		}
		if item.Type == "" {
			// Legacy records predate the type marker and active flag.
			item.Type = models.CatalogTypeItem
			item.Active = true
		}
		if err := storage.Put(d, storage.CollectionItems, item.ID, item); err != nil {
			return summary, err
		}
		summary.Items++
	}

	for i := range doc.Templates {
		tpl := doc.Templates[i]
		if tpl.ID == "" {
			tpl.ID = utils.NewID()
		}
		if err := storage.Put(d, storage.CollectionTemplates, tpl.ID, tpl); err != nil {
			return summary, err
		}
		summary.Templates++
	}

	return summary, nil
}
