package services

import "estimator/models"

// Totals is the derived monetary view of a line-item list plus discount.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalTotal     float64 `json:"finalTotal"`
}

// LineTotal computes quantity*price for one line item. A negative (or unset)
// quantity or price counts as zero, so a half-filled row never produces a
// negative charge and the calculator never fails.
func LineTotal(item models.LineItem) float64 {
	qty := item.Quantity
	if qty < 0 {
		qty = 0
	}
	price := item.Price
	if price < 0 {
		price = 0
	}
	return qty * price
}

// Subtotal sums line totals over the item list. An empty list sums to 0.
func Subtotal(items []models.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += LineTotal(item)
	}
	return sum
}

// ComputeTotals derives subtotal, discount amount and final total in one
// pass. The discount is a percentage and is deliberately not range-checked;
// estimates are human-entered and the UI owns validation.
func ComputeTotals(items []models.LineItem, discount float64) Totals {
	subtotal := Subtotal(items)
	discountAmount := subtotal * (discount / 100)
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		FinalTotal:     subtotal - discountAmount,
	}
}

// ApplyTotals recomputes the estimate's cached totals in place, including the
// per-line Total caches. There is no incremental path: every mutation runs a
// full pass over the item list.
func ApplyTotals(e *models.Estimate) {
	for i := range e.Items {
		e.Items[i].Total = LineTotal(e.Items[i])
	}
	t := ComputeTotals(e.Items, e.Discount)
	e.Total = t.Subtotal
	e.FinalTotal = t.FinalTotal
}
