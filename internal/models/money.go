package models

import (
	"fmt"
	"math"
)

// Cents converts a major-unit decimal amount into minor units.
// Amounts are stored and sent to processors in minor units only.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Major converts a minor-unit amount back into major units for API responses.
func Major(cents int64) float64 {
	return float64(cents) / 100
}

// FormatAmount renders a minor-unit amount with two decimals for receipts
// and emails.
func FormatAmount(cents int64) string {
	return fmt.Sprintf("%.2f", Major(cents))
}
