package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod identifies the external processor a transaction runs through
type PaymentMethod string

const (
	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodPayPal PaymentMethod = "paypal"
)

// TransactionStatus represents the lifecycle state of a payment or donation
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Payment represents a product purchase processed through the card processor
type Payment struct {
	CreatedAt   time.Time         `db:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at"`
	UserID      string            `db:"user_id"`
	ProductID   string            `db:"product_id"`
	ProductType string            `db:"product_type"`
	Currency    string            `db:"currency"`
	Status      TransactionStatus `db:"status"`
	Method      PaymentMethod     `db:"payment_method"`
	IntentRef   string            `db:"intent_ref"`
	AmountCents int64             `db:"amount_cents"`
	ID          uuid.UUID         `db:"id"`
}

// ProductTypeSubscription marks payments that grant a subscription tier
const ProductTypeSubscription = "subscription"

// Donation represents a one-off contribution from a donor, processed either
// synchronously via the card processor or via a wallet-processor order that
// is captured after donor approval.
type Donation struct {
	CreatedAt      time.Time         `db:"created_at"`
	UpdatedAt      time.Time         `db:"updated_at"`
	UserID         *string           `db:"user_id"`
	OrderRef       *string           `db:"order_ref"`
	ChargeRef      *string           `db:"charge_ref"`
	TransactionRef *string           `db:"transaction_ref"`
	DonorName      string            `db:"donor_name"`
	DonorEmail     string            `db:"donor_email"`
	Currency       string            `db:"currency"`
	Message        string            `db:"message"`
	Status         TransactionStatus `db:"status"`
	Method         PaymentMethod     `db:"payment_method"`
	AmountCents    int64             `db:"amount_cents"`
	Anonymous      bool              `db:"anonymous"`
	TaxDeductible  bool              `db:"tax_deductible"`
	ID             uuid.UUID         `db:"id"`
}
