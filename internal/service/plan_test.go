package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTierForAmount(t *testing.T) {
	tests := []struct {
		name        string
		amountCents int64
		want        string
	}{
		{"small amount", 1000, TierBasic},
		{"basic upper bound", 50000, TierBasic},
		{"just above basic", 50100, TierProfessional},
		{"professional upper bound", 150000, TierProfessional},
		{"just above professional", 150100, TierResearch},
		{"large amount", 1000000, TierResearch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TierForAmount(tt.amountCents))
		})
	}
}

func TestNewInvoiceNumber(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^INV-2024-[A-Z0-9]{5}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		number := NewInvoiceNumber(now)
		assert.Regexp(t, pattern, number)
		seen[number] = true
	}

	// 36^5 possibilities; 50 draws colliding down to one value would mean
	// the generator is broken.
	assert.Greater(t, len(seen), 1)
}
