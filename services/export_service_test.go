package services

import (
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"estimator/models"
	"estimator/storage"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestClassifyRecord(t *testing.T) {
	estimate := json.RawMessage(`{"id":"e1","name":"Quote","object":"Apartment","items":[]}`)
	kind, err := ClassifyRecord(estimate)
	if err != nil {
		t.Fatalf("ClassifyRecord(estimate): %v", err)
	}
	if kind != models.KindEstimates {
		t.Errorf("kind = %q, want %q", kind, models.KindEstimates)
	}

	item := json.RawMessage(`{"name":"Canvas","unit":"m2","price":610}`)
	kind, err = ClassifyRecord(item)
	if err != nil {
		t.Fatalf("ClassifyRecord(item): %v", err)
	}
	if kind != models.KindItems {
		t.Errorf("kind = %q, want %q", kind, models.KindItems)
	}

	if _, err := ClassifyRecord(json.RawMessage(`{"foo":1}`)); !errors.Is(err, ErrUnrecognizedImport) {
		t.Errorf("ClassifyRecord(unknown) err = %v, want ErrUnrecognizedImport", err)
	}
}

func TestImportLegacyEstimateArray(t *testing.T) {
	d := openTestDB(t)

	payload := []byte(`[{"name":"Quote 1","object":"Apartment","items":[{"name":"Canvas","unit":"m2","quantity":20,"price":610}],"discount":10}]`)
	summary, err := ImportJSON(d, payload)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if summary.Kind != models.KindEstimates {
		t.Errorf("Kind = %q, want %q", summary.Kind, models.KindEstimates)
	}
	if summary.Estimates != 1 {
		t.Errorf("Estimates = %d, want 1", summary.Estimates)
	}

	records, err := storage.GetAll(d, storage.CollectionEstimates)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("stored estimates = %d, want 1", len(records))
	}

	var e models.Estimate
	if err := json.Unmarshal(records[0], &e); err != nil {
		t.Fatalf("decode stored estimate: %v", err)
	}
	if e.ID == "" {
		t.Error("imported estimate got no id")
	}
	if e.Items[0].ID == "" {
		t.Error("imported line item got no id")
	}
	if e.Status != models.StatusDraft {
		t.Errorf("Status = %q, want draft", e.Status)
	}
	// Totals are recomputed on import, never trusted from the payload.
	if e.Total != 12200 {
		t.Errorf("Total = %v, want 12200", e.Total)
	}
	if e.FinalTotal != 10980 {
		t.Errorf("FinalTotal = %v, want 10980", e.FinalTotal)
	}
}

func TestImportLegacyItemArray(t *testing.T) {
	d := openTestDB(t)

	payload := []byte(`[{"name":"MSD canvas","unit":"m2","price":610},{"name":"Harpoon","unit":"lm","price":310}]`)
	summary, err := ImportJSON(d, payload)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if summary.Items != 2 {
		t.Errorf("Items = %d, want 2", summary.Items)
	}

	records, err := storage.GetAll(d, storage.CollectionItems)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("stored items = %d, want 2", len(records))
	}

	var entry models.CatalogEntry
	if err := json.Unmarshal(records[0], &entry); err != nil {
		t.Fatalf("decode stored item: %v", err)
	}
	if entry.Type != models.CatalogTypeItem {
		t.Errorf("Type = %q, want item", entry.Type)
	}
	if !entry.Active {
		t.Error("legacy item should default to active")
	}
}

func TestImportUnrecognized(t *testing.T) {
	d := openTestDB(t)

	for _, payload := range []string{
		``,
		`not json`,
		`[{"foo":1}]`,
		`{"foo":1}`,
	} {
		if _, err := ImportJSON(d, []byte(payload)); !errors.Is(err, ErrUnrecognizedImport) {
			t.Errorf("ImportJSON(%q) err = %v, want ErrUnrecognizedImport", payload, err)
		}
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	d := openTestDB(t)

	e := models.Estimate{
		ID:     "est-1",
		Name:   "Quote 1",
		Object: "Apartment",
		Status: models.StatusSent,
		Items: []models.LineItem{
			{ID: "li-1", Name: "Canvas", Unit: models.UnitArea, Quantity: 20, Price: 610},
		},
	}
	ApplyTotals(&e)
	if err := storage.Put(d, storage.CollectionEstimates, e.ID, e); err != nil {
		t.Fatalf("Put: %v", err)
	}

	doc, err := BuildExport(d, models.KindAll)
	if err != nil {
		t.Fatalf("BuildExport: %v", err)
	}
	if doc.Version != models.ExportVersion {
		t.Errorf("Version = %d, want %d", doc.Version, models.ExportVersion)
	}
	if len(doc.Estimates) != 1 {
		t.Fatalf("exported estimates = %d, want 1", len(doc.Estimates))
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal export: %v", err)
	}

	// Re-importing a tagged export updates in place via the preserved ids.
	summary, err := ImportJSON(d, payload)
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if summary.Estimates != 1 {
		t.Errorf("Estimates = %d, want 1", summary.Estimates)
	}

	n, err := storage.Count(d, storage.CollectionEstimates)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("estimate count after re-import = %d, want 1", n)
	}
}

func TestBuildExportSingleCollection(t *testing.T) {
	d := openTestDB(t)

	item := models.CatalogEntry{ID: "item-1", Type: models.CatalogTypeItem, Name: "Canvas", Unit: models.UnitArea, Price: 610, Active: true}
	if err := storage.Put(d, storage.CollectionItems, item.ID, item); err != nil {
		t.Fatalf("Put: %v", err)
	}

	doc, err := BuildExport(d, models.KindItems)
	if err != nil {
		t.Fatalf("BuildExport: %v", err)
	}
	if doc.Kind != models.KindItems {
		t.Errorf("Kind = %q, want items", doc.Kind)
	}
	if len(doc.Items) != 1 {
		t.Errorf("exported items = %d, want 1", len(doc.Items))
	}
	if doc.Estimates != nil {
		t.Errorf("estimates should be omitted, got %d", len(doc.Estimates))
	}
}
