package models

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents the state of a subscription entitlement
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// Subscription is the entitlement created when a subscription-type payment
// completes, or when a recurring donation is set up.
type Subscription struct {
	CreatedAt       time.Time          `db:"created_at"`
	UpdatedAt       time.Time          `db:"updated_at"`
	StartDate       time.Time          `db:"start_date"`
	EndDate         *time.Time         `db:"end_date"`
	UserID          *string            `db:"user_id"`
	PlanID          string             `db:"plan_id"`
	PlanName        string             `db:"plan_name"`
	Status          SubscriptionStatus `db:"status"`
	SubscriptionRef string             `db:"subscription_ref"`
	BillingCycle    string             `db:"billing_cycle"`
	Method          PaymentMethod      `db:"payment_method"`
	AmountCents     int64              `db:"amount_cents"`
	ID              uuid.UUID          `db:"id"`
}

// InvoiceStatus represents the state of an issued invoice
type InvoiceStatus string

const (
	InvoiceStatusIssued InvoiceStatus = "issued"
	InvoiceStatusPaid   InvoiceStatus = "paid"
	InvoiceStatusVoid   InvoiceStatus = "void"
)

// Invoice is issued once per completed payment and is immutable except for
// its status.
type Invoice struct {
	IssuedAt      time.Time     `db:"issued_at"`
	InvoiceNumber string        `db:"invoice_number"`
	UserID        string        `db:"user_id"`
	Status        InvoiceStatus `db:"status"`
	AmountCents   int64         `db:"amount_cents"`
	TotalCents    int64         `db:"total_cents"`
	ID            uuid.UUID     `db:"id"`
	PaymentID     uuid.UUID     `db:"payment_id"`
}

// Refund records a full or partial refund against a payment
type Refund struct {
	CompletedAt time.Time `db:"completed_at"`
	Reason      string    `db:"reason"`
	Status      string    `db:"status"`
	RefundRef   string    `db:"refund_ref"`
	AmountCents int64     `db:"amount_cents"`
	ID          uuid.UUID `db:"id"`
	PaymentID   uuid.UUID `db:"payment_id"`
}

// User is the externally owned identity this service grants entitlements to.
// Only the subscription window columns are ever written here.
type User struct {
	SubscriptionStart *time.Time `db:"subscription_start_date"`
	SubscriptionEnd   *time.Time `db:"subscription_end_date"`
	ID                string     `db:"id"`
	Name              string     `db:"name"`
	Email             string     `db:"email"`
	SubscriptionTier  string     `db:"subscription_tier"`
}
