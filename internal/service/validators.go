package service

import (
	"fmt"
	"strings"
	"time"
)

// ValidateAmountCents checks that a minor-unit amount is positive
func ValidateAmountCents(amountCents int64) error {
	if amountCents <= 0 {
		return fmt.Errorf("invalid amount: must be greater than 0")
	}

	return nil
}

// ValidateEmail checks an email address for basic shape. The processors and
// the mail relay do the real validation; this only rejects obvious garbage.
func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return fmt.Errorf("invalid email address")
	}

	return nil
}

// PeriodStart resolves a reporting period name to its starting instant
// relative to now. Supported periods: day, week, month, year.
func PeriodStart(period string, now time.Time) (time.Time, error) {
	switch period {
	case "day":
		return now.AddDate(0, 0, -1), nil
	case "week":
		return now.AddDate(0, 0, -7), nil
	case "", "month":
		return now.AddDate(0, -1, 0), nil
	case "year":
		return now.AddDate(-1, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("invalid period %q: must be day, week, month or year", period)
	}
}
