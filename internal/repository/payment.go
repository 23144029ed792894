// Package repository provides data access layer implementations for the
// payments backend.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ctechrnd/payments-backend/internal/db"
	"github.com/ctechrnd/payments-backend/internal/models"
	"github.com/google/uuid"
)

// PaymentStats aggregates payment activity for a reporting period
type PaymentStats struct {
	TotalTransactions     int64
	CompletedTransactions int64
	TotalRevenueCents     int64
	AverageCents          int64
	MinAmountCents        int64
	MaxAmountCents        int64
	UniqueCustomers       int64
}

// MethodStat breaks activity down by payment method
type MethodStat struct {
	Method     string
	Count      int64
	TotalCents int64
}

// ProductStat breaks revenue down by product type
type ProductStat struct {
	ProductType  string
	SalesCount   int64
	RevenueCents int64
}

// PaymentRepository defines the interface for payment data access
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByIntentRef(ctx context.Context, intentRef string) (*models.Payment, error)
	FindByIntentRefAndUser(ctx context.Context, intentRef, userID string) (*models.Payment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Payment, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	// MarkCompleted transitions a pending payment to completed. The returned
	// bool reports whether this caller won the transition; a false result
	// means another writer already moved the payment out of pending.
	MarkCompleted(ctx context.Context, intentRef string) (bool, error)
	MarkFailed(ctx context.Context, intentRef string) error
	// MarkRefunded transitions a completed payment to refunded.
	MarkRefunded(ctx context.Context, id uuid.UUID) (bool, error)
	Stats(ctx context.Context, since time.Time) (*PaymentStats, error)
	MethodStats(ctx context.Context, since time.Time) ([]MethodStat, error)
	ProductStats(ctx context.Context, since time.Time) ([]ProductStat, error)
}

type paymentRepository struct {
	db db.Querier
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(q db.Querier) PaymentRepository {
	return &paymentRepository{db: q}
}

const paymentColumns = `id, user_id, product_id, product_type, amount_cents,
	       currency, status, payment_method, intent_ref, created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }) (*models.Payment, error) {
	var p models.Payment
	var productID sql.NullString
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&productID,
		&p.ProductType,
		&p.AmountCents,
		&p.Currency,
		&p.Status,
		&p.Method,
		&p.IntentRef,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ProductID = productID.String
	return &p, nil
}

// Create inserts a new payment row
func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (id, user_id, product_id, product_type, amount_cents,
			currency, status, payment_method, intent_ref, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.UserID,
		payment.ProductID,
		payment.ProductType,
		payment.AmountCents,
		payment.Currency,
		payment.Status,
		payment.Method,
		payment.IntentRef,
		payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

// FindByIntentRef retrieves a payment by its processor intent reference
func (r *paymentRepository) FindByIntentRef(ctx context.Context, intentRef string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE intent_ref = $1`

	payment, err := scanPayment(r.db.QueryRowContext(ctx, query, intentRef))
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find payment by intent ref: %w", err)
	}

	return payment, nil
}

// FindByIntentRefAndUser retrieves a payment scoped to the requesting user
func (r *paymentRepository) FindByIntentRefAndUser(ctx context.Context, intentRef, userID string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE intent_ref = $1 AND user_id = $2`

	payment, err := scanPayment(r.db.QueryRowContext(ctx, query, intentRef, userID))
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find payment by intent ref and user: %w", err)
	}

	return payment, nil
}

// FindByID retrieves a payment by its UUID
func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	payment, err := scanPayment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find payment by id: %w", err)
	}

	return payment, nil
}

// ListByUser returns a page of the user's payments, newest first
func (r *paymentRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, *p)
	}

	return payments, rows.Err()
}

// CountByUser returns the user's total payment count
func (r *paymentRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM payments WHERE user_id = $1`, userID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return total, nil
}

// MarkCompleted performs the conditional pending -> completed transition.
// The rows-affected count decides the winner between the synchronous
// confirmation path and webhook delivery for the same intent.
func (r *paymentRepository) MarkCompleted(ctx context.Context, intentRef string) (bool, error) {
	query := `
		UPDATE payments
		SET status = $1, updated_at = NOW()
		WHERE intent_ref = $2 AND status = $3
	`

	result, err := r.db.ExecContext(ctx, query,
		models.TransactionStatusCompleted, intentRef, models.TransactionStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to mark payment completed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}

// MarkFailed transitions a pending payment to failed
func (r *paymentRepository) MarkFailed(ctx context.Context, intentRef string) error {
	query := `
		UPDATE payments
		SET status = $1, updated_at = NOW()
		WHERE intent_ref = $2 AND status = $3
	`

	_, err := r.db.ExecContext(ctx, query,
		models.TransactionStatusFailed, intentRef, models.TransactionStatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark payment failed: %w", err)
	}

	return nil
}

// MarkRefunded performs the conditional completed -> refunded transition
func (r *paymentRepository) MarkRefunded(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE payments
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	result, err := r.db.ExecContext(ctx, query,
		models.TransactionStatusRefunded, id, models.TransactionStatusCompleted)
	if err != nil {
		return false, fmt.Errorf("failed to mark payment refunded: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}

// Stats aggregates payment activity since the given instant
func (r *paymentRepository) Stats(ctx context.Context, since time.Time) (*PaymentStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COALESCE(SUM(amount_cents) FILTER (WHERE status = 'completed'), 0),
			COALESCE(AVG(amount_cents) FILTER (WHERE status = 'completed'), 0)::BIGINT,
			COALESCE(MIN(amount_cents), 0),
			COALESCE(MAX(amount_cents), 0),
			COUNT(DISTINCT user_id)
		FROM payments
		WHERE created_at >= $1
	`

	var stats PaymentStats
	err := r.db.QueryRowContext(ctx, query, since).Scan(
		&stats.TotalTransactions,
		&stats.CompletedTransactions,
		&stats.TotalRevenueCents,
		&stats.AverageCents,
		&stats.MinAmountCents,
		&stats.MaxAmountCents,
		&stats.UniqueCustomers,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payment stats: %w", err)
	}

	return &stats, nil
}

// MethodStats aggregates completed payments per method since the given instant
func (r *paymentRepository) MethodStats(ctx context.Context, since time.Time) ([]MethodStat, error) {
	query := `
		SELECT payment_method, COUNT(*), COALESCE(SUM(amount_cents), 0)
		FROM payments
		WHERE status = 'completed' AND created_at >= $1
		GROUP BY payment_method
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate method stats: %w", err)
	}
	defer rows.Close()

	var stats []MethodStat
	for rows.Next() {
		var s MethodStat
		if err := rows.Scan(&s.Method, &s.Count, &s.TotalCents); err != nil {
			return nil, fmt.Errorf("failed to scan method stat: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// ProductStats aggregates completed revenue per product type since the given instant
func (r *paymentRepository) ProductStats(ctx context.Context, since time.Time) ([]ProductStat, error) {
	query := `
		SELECT product_type, COUNT(*), COALESCE(SUM(amount_cents), 0)
		FROM payments
		WHERE status = 'completed' AND created_at >= $1
		GROUP BY product_type
		ORDER BY SUM(amount_cents) DESC
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate product stats: %w", err)
	}
	defer rows.Close()

	var stats []ProductStat
	for rows.Next() {
		var s ProductStat
		if err := rows.Scan(&s.ProductType, &s.SalesCount, &s.RevenueCents); err != nil {
			return nil, fmt.Errorf("failed to scan product stat: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}
