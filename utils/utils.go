package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a fresh record id. Ids are generated at creation and never
// reused.
func NewID() string {
	return uuid.NewString()
}

// FormatMoney renders a monetary value with exactly two decimal places. The
// calculator itself never rounds; this is presentation only.
func FormatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
