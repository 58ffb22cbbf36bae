package services

import (
	"testing"

	"estimator/models"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name string
		item models.LineItem
		want float64
	}{
		{"simple", models.LineItem{Quantity: 2, Price: 100}, 200},
		{"fractional", models.LineItem{Quantity: 2.5, Price: 610}, 1525},
		{"zero quantity", models.LineItem{Quantity: 0, Price: 100}, 0},
		{"negative quantity", models.LineItem{Quantity: -3, Price: 100}, 0},
		{"negative price", models.LineItem{Quantity: 3, Price: -100}, 0},
		{"both negative", models.LineItem{Quantity: -3, Price: -100}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineTotal(tt.item); got != tt.want {
				t.Errorf("LineTotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubtotalEmpty(t *testing.T) {
	if got := Subtotal(nil); got != 0 {
		t.Errorf("Subtotal(nil) = %v, want 0", got)
	}
	if got := Subtotal([]models.LineItem{}); got != 0 {
		t.Errorf("Subtotal(empty) = %v, want 0", got)
	}
}

func TestComputeTotals(t *testing.T) {
	items := []models.LineItem{
		{Quantity: 2, Price: 100},
		{Quantity: 1, Price: 50},
	}

	totals := ComputeTotals(items, 10)
	if totals.Subtotal != 250 {
		t.Errorf("Subtotal = %v, want 250", totals.Subtotal)
	}
	if totals.DiscountAmount != 25 {
		t.Errorf("DiscountAmount = %v, want 25", totals.DiscountAmount)
	}
	if totals.FinalTotal != 225 {
		t.Errorf("FinalTotal = %v, want 225", totals.FinalTotal)
	}
}

func TestComputeTotalsNoDiscount(t *testing.T) {
	items := []models.LineItem{{Quantity: 4, Price: 310}}
	totals := ComputeTotals(items, 0)
	if totals.FinalTotal != 1240 {
		t.Errorf("FinalTotal = %v, want 1240", totals.FinalTotal)
	}
	if totals.DiscountAmount != 0 {
		t.Errorf("DiscountAmount = %v, want 0", totals.DiscountAmount)
	}
}

func TestComputeTotalsDiscountOverHundred(t *testing.T) {
	// The discount is not range-checked; over 100 percent yields a
	// negative final total.
	items := []models.LineItem{{Quantity: 1, Price: 100}}
	totals := ComputeTotals(items, 150)
	if totals.FinalTotal != -50 {
		t.Errorf("FinalTotal = %v, want -50", totals.FinalTotal)
	}
}

func TestApplyTotals(t *testing.T) {
	e := &models.Estimate{
		Discount: 10,
		Items: []models.LineItem{
			{Quantity: 2, Price: 100, Total: 999},
			{Quantity: 1, Price: 50},
		},
		Total:      999,
		FinalTotal: 999,
	}

	ApplyTotals(e)

	if e.Items[0].Total != 200 {
		t.Errorf("item total = %v, want 200", e.Items[0].Total)
	}
	if e.Total != 250 {
		t.Errorf("Total = %v, want 250", e.Total)
	}
	if e.FinalTotal != 225 {
		t.Errorf("FinalTotal = %v, want 225", e.FinalTotal)
	}
}
