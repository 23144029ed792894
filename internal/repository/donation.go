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

// DonationSummary aggregates all completed donations
type DonationSummary struct {
	TotalDonations  int64
	TotalCents      int64
	AverageCents    int64
	LargestCents    int64
	UniqueDonors    int64
	PublicDonations int64
}

// LeaderboardEntry is a public donor ranked by lifetime total
type LeaderboardEntry struct {
	LastDonation  time.Time
	DonorName     string
	TotalCents    int64
	DonationCount int64
}

// DailyDonationStat buckets completed donations per day
type DailyDonationStat struct {
	Date         string
	Count        int64
	TotalCents   int64
	AverageCents int64
}

// DonationRepository defines the interface for donation data access
type DonationRepository interface {
	Create(ctx context.Context, donation *models.Donation) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Donation, error)
	FindByOrderRef(ctx context.Context, orderRef string) (*models.Donation, error)
	// MarkCompletedByOrder transitions a pending wallet donation to completed
	// and records the processor transaction id. The returned bool reports
	// whether this caller won the transition.
	MarkCompletedByOrder(ctx context.Context, orderRef, transactionRef string) (bool, error)
	MarkRefundedByOrder(ctx context.Context, orderRef string) error
	Summary(ctx context.Context) (*DonationSummary, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	DailyStats(ctx context.Context, since time.Time) ([]DailyDonationStat, error)
	MethodStats(ctx context.Context, since time.Time) ([]MethodStat, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Donation, error)
	TotalByUser(ctx context.Context, userID string) (int64, error)
}

type donationRepository struct {
	db db.Querier
}

// NewDonationRepository creates a new DonationRepository
func NewDonationRepository(q db.Querier) DonationRepository {
	return &donationRepository{db: q}
}

const donationColumns = `id, user_id, donor_name, donor_email, amount_cents, currency,
	       payment_method, status, order_ref, charge_ref, transaction_ref,
	       message, anonymous, tax_deductible, created_at, updated_at`

func scanDonation(row interface{ Scan(...any) error }) (*models.Donation, error) {
	var d models.Donation
	var message sql.NullString
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.DonorName,
		&d.DonorEmail,
		&d.AmountCents,
		&d.Currency,
		&d.Method,
		&d.Status,
		&d.OrderRef,
		&d.ChargeRef,
		&d.TransactionRef,
		&message,
		&d.Anonymous,
		&d.TaxDeductible,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.Message = message.String
	return &d, nil
}

// Create inserts a new donation row
func (r *donationRepository) Create(ctx context.Context, donation *models.Donation) error {
	query := `
		INSERT INTO donations (id, user_id, donor_name, donor_email, amount_cents,
			currency, payment_method, status, order_ref, charge_ref, transaction_ref,
			message, anonymous, tax_deductible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, ''), $13, $14, $15, $15)
	`

	_, err := r.db.ExecContext(ctx, query,
		donation.ID,
		donation.UserID,
		donation.DonorName,
		donation.DonorEmail,
		donation.AmountCents,
		donation.Currency,
		donation.Method,
		donation.Status,
		donation.OrderRef,
		donation.ChargeRef,
		donation.TransactionRef,
		donation.Message,
		donation.Anonymous,
		donation.TaxDeductible,
		donation.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create donation: %w", err)
	}

	return nil
}

// FindByID retrieves a donation by its UUID
func (r *donationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE id = $1`

	donation, err := scanDonation(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find donation by id: %w", err)
	}

	return donation, nil
}

// FindByOrderRef retrieves a donation by its wallet-processor order id
func (r *donationRepository) FindByOrderRef(ctx context.Context, orderRef string) (*models.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE order_ref = $1`

	donation, err := scanDonation(r.db.QueryRowContext(ctx, query, orderRef))
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find donation by order ref: %w", err)
	}

	return donation, nil
}

// MarkCompletedByOrder performs the conditional pending -> completed
// transition keyed by the order reference, recording the capture id.
func (r *donationRepository) MarkCompletedByOrder(ctx context.Context, orderRef, transactionRef string) (bool, error) {
	query := `
		UPDATE donations
		SET status = $1, transaction_ref = $2, updated_at = NOW()
		WHERE order_ref = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		models.TransactionStatusCompleted, transactionRef, orderRef, models.TransactionStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to mark donation completed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected == 1, nil
}

// MarkRefundedByOrder transitions a completed wallet donation to refunded
func (r *donationRepository) MarkRefundedByOrder(ctx context.Context, orderRef string) error {
	query := `
		UPDATE donations
		SET status = $1, updated_at = NOW()
		WHERE order_ref = $2 AND status = $3
	`

	_, err := r.db.ExecContext(ctx, query,
		models.TransactionStatusRefunded, orderRef, models.TransactionStatusCompleted)
	if err != nil {
		return fmt.Errorf("failed to mark donation refunded: %w", err)
	}

	return nil
}

// Summary aggregates all completed donations
func (r *donationRepository) Summary(ctx context.Context) (*DonationSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(amount_cents), 0),
			COALESCE(AVG(amount_cents), 0)::BIGINT,
			COALESCE(MAX(amount_cents), 0),
			COUNT(DISTINCT donor_email),
			COUNT(*) FILTER (WHERE anonymous = FALSE)
		FROM donations
		WHERE status = 'completed'
	`

	var summary DonationSummary
	err := r.db.QueryRowContext(ctx, query).Scan(
		&summary.TotalDonations,
		&summary.TotalCents,
		&summary.AverageCents,
		&summary.LargestCents,
		&summary.UniqueDonors,
		&summary.PublicDonations,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate donation summary: %w", err)
	}

	return &summary, nil
}

// Leaderboard ranks non-anonymous completed donors by lifetime total
func (r *donationRepository) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	query := `
		SELECT MIN(donor_name), COALESCE(SUM(amount_cents), 0), COUNT(*), MAX(created_at)
		FROM donations
		WHERE status = 'completed' AND anonymous = FALSE
		GROUP BY donor_email
		ORDER BY SUM(amount_cents) DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	defer rows.Close()

	var leaderboard []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.DonorName, &e.TotalCents, &e.DonationCount, &e.LastDonation); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		leaderboard = append(leaderboard, e)
	}

	return leaderboard, rows.Err()
}

// DailyStats buckets completed donations per day since the given instant
func (r *donationRepository) DailyStats(ctx context.Context, since time.Time) ([]DailyDonationStat, error) {
	query := `
		SELECT
			TO_CHAR(DATE_TRUNC('day', created_at), 'YYYY-MM-DD'),
			COUNT(*),
			COALESCE(SUM(amount_cents), 0),
			COALESCE(AVG(amount_cents), 0)::BIGINT
		FROM donations
		WHERE status = 'completed' AND created_at >= $1
		GROUP BY DATE_TRUNC('day', created_at)
		ORDER BY DATE_TRUNC('day', created_at) DESC
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily donation stats: %w", err)
	}
	defer rows.Close()

	var stats []DailyDonationStat
	for rows.Next() {
		var s DailyDonationStat
		if err := rows.Scan(&s.Date, &s.Count, &s.TotalCents, &s.AverageCents); err != nil {
			return nil, fmt.Errorf("failed to scan daily donation stat: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// MethodStats aggregates completed donations per method since the given instant
func (r *donationRepository) MethodStats(ctx context.Context, since time.Time) ([]MethodStat, error) {
	query := `
		SELECT payment_method, COUNT(*), COALESCE(SUM(amount_cents), 0)
		FROM donations
		WHERE status = 'completed' AND created_at >= $1
		GROUP BY payment_method
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate donation method stats: %w", err)
	}
	defer rows.Close()

	var stats []MethodStat
	for rows.Next() {
		var s MethodStat
		if err := rows.Scan(&s.Method, &s.Count, &s.TotalCents); err != nil {
			return nil, fmt.Errorf("failed to scan donation method stat: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// ListByUser returns a page of the user's completed donations, newest first
func (r *donationRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Donation, error) {
	query := `SELECT ` + donationColumns + `
		FROM donations
		WHERE user_id = $1 AND status = 'completed'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	defer rows.Close()

	var donations []models.Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan donation: %w", err)
		}
		donations = append(donations, *d)
	}

	return donations, rows.Err()
}

// TotalByUser sums the user's completed donations
func (r *donationRepository) TotalByUser(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM donations WHERE user_id = $1 AND status = 'completed'`,
		userID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to total donations: %w", err)
	}
	return total, nil
}
