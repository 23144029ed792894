package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ctechrnd/payments-backend/internal/db"
	"github.com/ctechrnd/payments-backend/internal/models"
)

// UserRepository exposes the externally owned users table. This service only
// reads contact details and writes the entitlement window.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	GrantSubscription(ctx context.Context, userID, tier string, start, end time.Time) error
}

type userRepository struct {
	db db.Querier
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(q db.Querier) UserRepository {
	return &userRepository{db: q}
}

// FindByID retrieves a user by id
func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, name, email, COALESCE(subscription_tier, ''),
		       subscription_start_date, subscription_end_date
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.SubscriptionTier,
		&user.SubscriptionStart,
		&user.SubscriptionEnd,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}

	return &user, nil
}

// GrantSubscription updates the user's entitlement tier and window
func (r *userRepository) GrantSubscription(ctx context.Context, userID, tier string, start, end time.Time) error {
	query := `
		UPDATE users
		SET subscription_tier = $2,
		    subscription_start_date = $3,
		    subscription_end_date = $4,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, userID, tier, start, end)
	if err != nil {
		return fmt.Errorf("failed to grant subscription: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}

	return nil
}
