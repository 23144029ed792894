package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ctechrnd/payments-backend/internal/db"
	"github.com/ctechrnd/payments-backend/internal/models"
	"github.com/lib/pq"
)

// EventRepository defines the interface for webhook event storage
type EventRepository interface {
	// Insert stores an inbound event keyed by its external event id.
	// Returns models.ErrDuplicateEvent when the id was already recorded,
	// which is the deduplication signal for webhook redelivery.
	Insert(ctx context.Context, event *models.ProcessorEvent) error
	MarkProcessed(ctx context.Context, eventID string) error
}

type eventRepository struct {
	db db.Querier
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(q db.Querier) EventRepository {
	return &eventRepository{db: q}
}

// Insert stores an inbound webhook event
func (r *eventRepository) Insert(ctx context.Context, event *models.ProcessorEvent) error {
	query := `
		INSERT INTO payment_events (event_id, event_type, source, transaction_ref,
			payload, status, received_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		event.EventID,
		event.EventType,
		event.Source,
		event.TransactionRef,
		event.Payload,
		event.Status,
		event.ReceivedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return models.ErrDuplicateEvent
		}
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return nil
}

// MarkProcessed promotes an event to processed once handling completed
func (r *eventRepository) MarkProcessed(ctx context.Context, eventID string) error {
	query := `
		UPDATE payment_events
		SET status = $1, processed_at = NOW()
		WHERE event_id = $2
	`

	_, err := r.db.ExecContext(ctx, query, models.EventStatusProcessed, eventID)
	if err != nil {
		return fmt.Errorf("failed to mark event processed: %w", err)
	}

	return nil
}
