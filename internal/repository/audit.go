package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ctechrnd/payments-backend/internal/db"
	"github.com/ctechrnd/payments-backend/internal/models"
)

// AuditLogRepository defines the interface for append-only payment logging
type AuditLogRepository interface {
	Write(ctx context.Context, entry *models.AuditLogEntry) error
}

type auditLogRepository struct {
	db db.Querier
}

// NewAuditLogRepository creates a new AuditLogRepository
func NewAuditLogRepository(q db.Querier) AuditLogRepository {
	return &auditLogRepository{db: q}
}

// Write appends an audit record. Callers treat failures as non-fatal.
func (r *auditLogRepository) Write(ctx context.Context, entry *models.AuditLogEntry) error {
	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal audit metadata: %w", err)
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO payment_logs (action, source, transaction_ref, metadata, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
	`

	_, err = r.db.ExecContext(ctx, query,
		entry.Action,
		entry.Source,
		entry.TransactionRef,
		metadata,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}

	return nil
}
