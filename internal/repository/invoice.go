package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ctechrnd/payments-backend/internal/db"
	"github.com/ctechrnd/payments-backend/internal/models"
	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice data access
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	FindByPayment(ctx context.Context, paymentID uuid.UUID) (*models.Invoice, error)
}

type invoiceRepository struct {
	db db.Querier
}

// NewInvoiceRepository creates a new InvoiceRepository
func NewInvoiceRepository(q db.Querier) InvoiceRepository {
	return &invoiceRepository{db: q}
}

// Create inserts a new invoice row
func (r *invoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	query := `
		INSERT INTO invoices (id, invoice_number, payment_id, user_id,
			amount_cents, total_cents, status, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		invoice.ID,
		invoice.InvoiceNumber,
		invoice.PaymentID,
		invoice.UserID,
		invoice.AmountCents,
		invoice.TotalCents,
		invoice.Status,
		invoice.IssuedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	return nil
}

// FindByPayment retrieves the invoice issued for a payment
func (r *invoiceRepository) FindByPayment(ctx context.Context, paymentID uuid.UUID) (*models.Invoice, error) {
	query := `
		SELECT id, invoice_number, payment_id, user_id, amount_cents,
		       total_cents, status, issued_at
		FROM invoices
		WHERE payment_id = $1
	`

	var inv models.Invoice
	err := r.db.QueryRowContext(ctx, query, paymentID).Scan(
		&inv.ID,
		&inv.InvoiceNumber,
		&inv.PaymentID,
		&inv.UserID,
		&inv.AmountCents,
		&inv.TotalCents,
		&inv.Status,
		&inv.IssuedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice by payment: %w", err)
	}

	return &inv, nil
}
