package repository

import (
	"context"
	"fmt"

	"github.com/ctechrnd/payments-backend/internal/db"
	"github.com/ctechrnd/payments-backend/internal/models"
	"github.com/google/uuid"
)

// RefundRepository defines the interface for refund data access
type RefundRepository interface {
	Create(ctx context.Context, refund *models.Refund) error
	ListByPayment(ctx context.Context, paymentID uuid.UUID) ([]models.Refund, error)
}

type refundRepository struct {
	db db.Querier
}

// NewRefundRepository creates a new RefundRepository
func NewRefundRepository(q db.Querier) RefundRepository {
	return &refundRepository{db: q}
}

// Create inserts a new refund row
func (r *refundRepository) Create(ctx context.Context, refund *models.Refund) error {
	query := `
		INSERT INTO refunds (id, payment_id, amount_cents, reason, status,
			refund_ref, completed_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		refund.ID,
		refund.PaymentID,
		refund.AmountCents,
		refund.Reason,
		refund.Status,
		refund.RefundRef,
		refund.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create refund: %w", err)
	}

	return nil
}

// ListByPayment returns all refunds recorded against a payment
func (r *refundRepository) ListByPayment(ctx context.Context, paymentID uuid.UUID) ([]models.Refund, error) {
	query := `
		SELECT id, payment_id, amount_cents, COALESCE(reason, ''), status,
		       refund_ref, completed_at
		FROM refunds
		WHERE payment_id = $1
		ORDER BY completed_at
	`

	rows, err := r.db.QueryContext(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list refunds: %w", err)
	}
	defer rows.Close()

	var refunds []models.Refund
	for rows.Next() {
		var rf models.Refund
		if err := rows.Scan(&rf.ID, &rf.PaymentID, &rf.AmountCents, &rf.Reason,
			&rf.Status, &rf.RefundRef, &rf.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan refund: %w", err)
		}
		refunds = append(refunds, rf)
	}

	return refunds, rows.Err()
}
