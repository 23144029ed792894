package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctechrnd/payments-backend/internal/models"
)

func newPendingWalletDonation(orderRef string) *models.Donation {
	now := time.Now()
	return &models.Donation{
		ID:            uuid.New(),
		DonorName:     "Jane Doe",
		DonorEmail:    "jane@example.com",
		AmountCents:   2500,
		Currency:      "usd",
		Method:        models.PaymentMethodPayPal,
		Status:        models.TransactionStatusPending,
		OrderRef:      &orderRef,
		TaxDeductible: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestDonationRepository_MarkCompletedByOrder(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	repo := NewDonationRepository(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPendingWalletDonation("ORDER-1")))

	won, err := repo.MarkCompletedByOrder(ctx, "ORDER-1", "CAP-1")
	require.NoError(t, err)
	assert.True(t, won, "first capture should win")

	won, err = repo.MarkCompletedByOrder(ctx, "ORDER-1", "CAP-2")
	require.NoError(t, err)
	assert.False(t, won, "repeat capture should lose")

	stored, err := repo.FindByOrderRef(ctx, "ORDER-1")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCompleted, stored.Status)
	require.NotNil(t, stored.TransactionRef)
	assert.Equal(t, "CAP-1", *stored.TransactionRef, "losing capture must not overwrite the transaction ref")
}

func TestDonationRepository_Leaderboard(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	repo := NewDonationRepository(database)
	ctx := context.Background()

	big := newPendingWalletDonation("ORDER-BIG")
	big.AmountCents = 10000
	require.NoError(t, repo.Create(ctx, big))
	_, err := repo.MarkCompletedByOrder(ctx, "ORDER-BIG", "CAP-BIG")
	require.NoError(t, err)

	anon := newPendingWalletDonation("ORDER-ANON")
	anon.DonorName = "Hidden"
	anon.DonorEmail = "hidden@example.com"
	anon.Anonymous = true
	require.NoError(t, repo.Create(ctx, anon))
	_, err = repo.MarkCompletedByOrder(ctx, "ORDER-ANON", "CAP-ANON")
	require.NoError(t, err)

	entries, err := repo.Leaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1, "anonymous donors are excluded")
	assert.Equal(t, "Jane Doe", entries[0].DonorName)
	assert.Equal(t, int64(10000), entries[0].TotalCents)
}
