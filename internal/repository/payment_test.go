package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctechrnd/payments-backend/internal/models"
)

func newPendingPayment(intentRef string) *models.Payment {
	now := time.Now()
	return &models.Payment{
		ID:          uuid.New(),
		UserID:      "user-1",
		ProductID:   "plan-std",
		ProductType: models.ProductTypeSubscription,
		AmountCents: 9900,
		Currency:    "usd",
		Status:      models.TransactionStatusPending,
		Method:      models.PaymentMethodStripe,
		IntentRef:   intentRef,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestPaymentRepository_MarkCompleted(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	repo := NewPaymentRepository(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPendingPayment("pi_mark_1")))

	won, err := repo.MarkCompleted(ctx, "pi_mark_1")
	require.NoError(t, err)
	assert.True(t, won, "first transition should win")

	won, err = repo.MarkCompleted(ctx, "pi_mark_1")
	require.NoError(t, err)
	assert.False(t, won, "repeat transition should lose")

	stored, err := repo.FindByIntentRef(ctx, "pi_mark_1")
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCompleted, stored.Status)
}

func TestPaymentRepository_FindByIntentRefAndUser(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	repo := NewPaymentRepository(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPendingPayment("pi_owner_1")))

	payment, err := repo.FindByIntentRefAndUser(ctx, "pi_owner_1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "pi_owner_1", payment.IntentRef)

	_, err = repo.FindByIntentRefAndUser(ctx, "pi_owner_1", "user-2")
	assert.True(t, errors.Is(err, models.ErrNotFound), "other users must not see the payment")
}

func TestPaymentRepository_ListByUser(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	repo := NewPaymentRepository(database)
	ctx := context.Background()

	for _, ref := range []string{"pi_list_1", "pi_list_2", "pi_list_3"} {
		require.NoError(t, repo.Create(ctx, newPendingPayment(ref)))
	}

	payments, err := repo.ListByUser(ctx, "user-1", 2, 0)
	require.NoError(t, err)
	assert.Len(t, payments, 2)

	total, err := repo.CountByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
