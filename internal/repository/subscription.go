package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ctechrnd/payments-backend/internal/db"
	"github.com/ctechrnd/payments-backend/internal/models"
)

// SubscriptionRepository defines the interface for subscription data access
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *models.Subscription) error
	FindByRef(ctx context.Context, subscriptionRef string) (*models.Subscription, error)
	// MarkCancelledByRef transitions an active subscription to cancelled.
	MarkCancelledByRef(ctx context.Context, subscriptionRef string) (bool, error)
}

type subscriptionRepository struct {
	db db.Querier
}

// NewSubscriptionRepository creates a new SubscriptionRepository
func NewSubscriptionRepository(q db.Querier) SubscriptionRepository {
	return &subscriptionRepository{db: q}
}

// Create inserts a new subscription row
func (r *subscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, user_id, plan_id, plan_name, status,
			subscription_ref, amount_cents, billing_cycle, start_date, end_date,
			payment_method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		sub.ID,
		sub.UserID,
		sub.PlanID,
		sub.PlanName,
		sub.Status,
		sub.SubscriptionRef,
		sub.AmountCents,
		sub.BillingCycle,
		sub.StartDate,
		sub.EndDate,
		sub.Method,
		sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

// FindByRef retrieves a subscription by its external processor reference
func (r *subscriptionRepository) FindByRef(ctx context.Context, subscriptionRef string) (*models.Subscription, error) {
	query := `
		SELECT id, user_id, plan_id, plan_name, status, subscription_ref,
		       amount_cents, billing_cycle, start_date, end_date, payment_method,
		       created_at, updated_at
		FROM subscriptions
		WHERE subscription_ref = $1
	`

	var sub models.Subscription
	err := r.db.QueryRowContext(ctx, query, subscriptionRef).Scan(
		&sub.ID,
		&sub.UserID,
		&sub.PlanID,
		&sub.PlanName,
		&sub.Status,
		&sub.SubscriptionRef,
		&sub.AmountCents,
		&sub.BillingCycle,
		&sub.StartDate,
		&sub.EndDate,
		&sub.Method,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find subscription by ref: %w", err)
	}

	return &sub, nil
}

// MarkCancelledByRef performs the conditional active -> cancelled transition
func (r *subscriptionRepository) MarkCancelledByRef(ctx context.Context, subscriptionRef string) (bool, error) {
	query := `
		UPDATE subscriptions
		SET status = $1, updated_at = NOW()
		WHERE subscription_ref = $2 AND status = $3
	`

	result, err := r.db.ExecContext(ctx, query,
		models.SubscriptionStatusCancelled, subscriptionRef, models.SubscriptionStatusActive)
	if err != nil {
		return false, fmt.Errorf("failed to mark subscription cancelled: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}
