package service

import (
	"fmt"
	"math/rand"
	"time"
)

// Subscription tiers granted by completed subscription payments
const (
	TierBasic        = "basic"
	TierProfessional = "professional"
	TierResearch     = "research"
)

// Entitlement windows always run one month from completion
const entitlementMonths = 1

// TierForAmount maps a minor-unit payment amount to a subscription tier.
// Boundaries are inclusive on the lower tier.
func TierForAmount(amountCents int64) string {
	switch {
	case amountCents <= 50000:
		return TierBasic
	case amountCents <= 150000:
		return TierProfessional
	default:
		return TierResearch
	}
}

const invoiceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewInvoiceNumber generates an invoice number of the form
// INV-<year>-<5 random upper alphanumerics>.
func NewInvoiceNumber(now time.Time) string {
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = invoiceAlphabet[rand.Intn(len(invoiceAlphabet))]
	}

	return fmt.Sprintf("INV-%d-%s", now.Year(), string(suffix))
}
