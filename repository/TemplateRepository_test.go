package repository

import (
	"errors"
	"testing"

	"estimator/models"
	"estimator/storage"
)

func TestSaveTemplateRequiresName(t *testing.T) {
	d := openTestDB(t)

	if err := SaveTemplate(d, &models.Template{}); !errors.Is(err, ErrNameRequired) {
		t.Errorf("SaveTemplate(no name) err = %v, want ErrNameRequired", err)
	}
}

func TestApplyTemplateSeedsQuantities(t *testing.T) {
	d := openTestDB(t)

	tpl := &models.Template{
		Name:     "Harpoon ceiling",
		Category: "core",
		Items: []models.TemplateItem{
			{Name: "Canvas", Unit: models.UnitArea, Price: 610},
			{Name: "Harpoon profile", Unit: models.UnitLinear, Price: 310},
			{Name: "Corner kit", Unit: models.UnitPiece, Price: 150},
		},
	}
	if err := SaveTemplate(d, tpl); err != nil {
		t.Fatalf("SaveTemplate: %v", err)
	}

	e := &models.Estimate{Name: "Quote", Area: 20, Perimeter: 18}
	if err := SaveEstimate(d, e); err != nil {
		t.Fatalf("SaveEstimate: %v", err)
	}

	applied, err := ApplyTemplate(d, tpl.ID, e.ID)
	if err != nil {
		t.Fatalf("ApplyTemplate: %v", err)
	}

	if len(applied.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(applied.Items))
	}
	wantQty := []float64{20, 18, 1}
	for i, q := range wantQty {
		if applied.Items[i].Quantity != q {
			t.Errorf("item %d quantity = %v, want %v", i, applied.Items[i].Quantity, q)
		}
		if applied.Items[i].ID == "" {
			t.Errorf("item %d got no id", i)
		}
		if applied.Items[i].Category != "core" {
			t.Errorf("item %d category = %q, want core", i, applied.Items[i].Category)
		}
	}

	// 20*610 + 18*310 + 1*150
	if applied.Total != 17930 {
		t.Errorf("Total = %v, want 17930", applied.Total)
	}

	// Applying saves the estimate, so a fresh read sees the items.
	stored, err := GetEstimate(d, e.ID)
	if err != nil {
		t.Fatalf("GetEstimate: %v", err)
	}
	if len(stored.Items) != 3 {
		t.Errorf("stored items = %d, want 3", len(stored.Items))
	}
}

func TestApplyTemplateMissing(t *testing.T) {
	d := openTestDB(t)

	e := &models.Estimate{Name: "Quote"}
	if err := SaveEstimate(d, e); err != nil {
		t.Fatalf("SaveEstimate: %v", err)
	}

	if _, err := ApplyTemplate(d, "missing", e.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("ApplyTemplate(missing template) err = %v, want ErrNotFound", err)
	}
}
