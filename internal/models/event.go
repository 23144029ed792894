package models

import "time"

// EventStatus represents the processing state of a stored webhook event
type EventStatus string

const (
	EventStatusReceived  EventStatus = "received"
	EventStatusProcessed EventStatus = "processed"
)

// ProcessorEvent is a webhook notification persisted for deduplication and
// audit. Rows are inserted on arrival, promoted to processed after handling,
// and never deleted.
type ProcessorEvent struct {
	ReceivedAt     time.Time   `db:"received_at"`
	ProcessedAt    *time.Time  `db:"processed_at"`
	EventID        string      `db:"event_id"`
	EventType      string      `db:"event_type"`
	Source         string      `db:"source"`
	TransactionRef string      `db:"transaction_ref"`
	Payload        []byte      `db:"payload"`
	Status         EventStatus `db:"status"`
}

// AuditLogEntry is an append-only record of a payment action. Writes are
// best effort and must never fail the request that produced them.
type AuditLogEntry struct {
	CreatedAt      time.Time      `db:"created_at"`
	Metadata       map[string]any `db:"metadata"`
	Action         string         `db:"action"`
	Source         string         `db:"source"`
	TransactionRef string         `db:"transaction_ref"`
	ID             int64          `db:"id"`
}

// IdempotencyKey tracks processed requests to prevent duplicate transactions
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	RequestPath    string    `db:"request_path"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
}
