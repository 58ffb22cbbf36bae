package repository

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

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

func TestSaveEstimateRequiresName(t *testing.T) {
	d := openTestDB(t)

	e := &models.Estimate{Name: "   "}
	if err := SaveEstimate(d, e); !errors.Is(err, ErrNameRequired) {
		t.Errorf("SaveEstimate(blank name) err = %v, want ErrNameRequired", err)
	}

	n, err := storage.Count(d, storage.CollectionEstimates)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Errorf("rejected save still wrote %d records", n)
	}
}

func TestSaveEstimateDefaults(t *testing.T) {
	d := openTestDB(t)

	e := &models.Estimate{
		Name:  "Quote",
		Items: []models.LineItem{{Name: "Canvas", Unit: models.UnitArea, Quantity: 20, Price: 610}},
	}
	if err := SaveEstimate(d, e); err != nil {
		t.Fatalf("SaveEstimate: %v", err)
	}

	if e.ID == "" {
		t.Error("no id assigned")
	}
	if e.Status != models.StatusDraft {
		t.Errorf("Status = %q, want draft", e.Status)
	}
	if e.Date == "" {
		t.Error("no date assigned")
	}
	if e.Items[0].ID == "" {
		t.Error("line item got no id")
	}
	if e.Total != 12200 || e.FinalTotal != 12200 {
		t.Errorf("totals = %v/%v, want 12200/12200", e.Total, e.FinalTotal)
	}
	if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
		t.Error("timestamps not stamped")
	}
}

func TestSaveEstimatePreservesCreatedAt(t *testing.T) {
	d := openTestDB(t)

	e := &models.Estimate{Name: "Quote"}
	if err := SaveEstimate(d, e); err != nil {
		t.Fatalf("SaveEstimate: %v", err)
	}
	created := e.CreatedAt

	time.Sleep(10 * time.Millisecond)
	e.Name = "Quote v2"
	if err := SaveEstimate(d, e); err != nil {
		t.Fatalf("second SaveEstimate: %v", err)
	}

	if !e.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt changed on update: %v -> %v", created, e.CreatedAt)
	}
	if !e.UpdatedAt.After(created) {
		t.Errorf("UpdatedAt = %v, want after %v", e.UpdatedAt, created)
	}
}

func TestListEstimatesOrder(t *testing.T) {
	d := openTestDB(t)

	for _, name := range []string{"first", "second", "third"} {
		e := &models.Estimate{Name: name}
		if err := SaveEstimate(d, e); err != nil {
			t.Fatalf("SaveEstimate(%s): %v", name, err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	estimates, err := ListEstimates(d)
	if err != nil {
		t.Fatalf("ListEstimates: %v", err)
	}
	if len(estimates) != 3 {
		t.Fatalf("len = %d, want 3", len(estimates))
	}
	if estimates[0].Name != "third" || estimates[2].Name != "first" {
		t.Errorf("order = %s,%s,%s, want third,second,first",
			estimates[0].Name, estimates[1].Name, estimates[2].Name)
	}
}

func TestGetEstimateMissing(t *testing.T) {
	d := openTestDB(t)

	if _, err := GetEstimate(d, "nope"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetEstimate(missing) err = %v, want ErrNotFound", err)
	}
}

func TestDeleteEstimateAbsent(t *testing.T) {
	d := openTestDB(t)

	if err := DeleteEstimate(d, "never-existed"); err != nil {
		t.Errorf("DeleteEstimate(absent) = %v, want nil", err)
	}
}

func TestDuplicateEstimate(t *testing.T) {
	d := openTestDB(t)

	original := &models.Estimate{
		Name:      "Quote",
		Object:    "House",
		Address:   "12 Main St",
		Rooms:     3,
		Area:      42.5,
		Perimeter: 28,
		Status:    models.StatusAccepted,
		Discount:  5,
		Items: []models.LineItem{
			{Name: "Canvas", Unit: models.UnitArea, Quantity: 42.5, Price: 610},
			{Name: "Harpoon", Unit: models.UnitLinear, Quantity: 28, Price: 310},
		},
	}
	if err := SaveEstimate(d, original); err != nil {
		t.Fatalf("SaveEstimate: %v", err)
	}

	dup, err := DuplicateEstimate(d, original.ID)
	if err != nil {
		t.Fatalf("DuplicateEstimate: %v", err)
	}

	if dup.ID == original.ID {
		t.Error("duplicate shares the original id")
	}
	if dup.Status != models.StatusDraft {
		t.Errorf("Status = %q, want draft", dup.Status)
	}
	if dup.Name != original.Name || dup.Object != original.Object || dup.Address != original.Address {
		t.Error("descriptive fields not carried over")
	}
	if dup.Area != original.Area || dup.Perimeter != original.Perimeter || dup.Discount != original.Discount {
		t.Error("measurements not carried over")
	}
	if len(dup.Items) != len(original.Items) {
		t.Fatalf("items = %d, want %d", len(dup.Items), len(original.Items))
	}
	for i := range dup.Items {
		if dup.Items[i].ID == original.Items[i].ID {
			t.Errorf("item %d shares the original id", i)
		}
		if dup.Items[i].Name != original.Items[i].Name {
			t.Errorf("item %d name mismatch", i)
		}
	}
	if dup.FinalTotal != original.FinalTotal {
		t.Errorf("FinalTotal = %v, want %v", dup.FinalTotal, original.FinalTotal)
	}

	// Both records persist independently.
	n, err := storage.Count(d, storage.CollectionEstimates)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}
