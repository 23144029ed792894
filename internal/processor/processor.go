// Package processor contains the clients for the external payment
// processors: a card processor (Stripe) and a redirect-based wallet
// processor (PayPal). Services depend on the interfaces here, never on the
// SDKs directly.
package processor

import (
	"context"
	"net/http"
)

// CardIntent is a processor-side payment intent
type CardIntent struct {
	ID           string
	ClientSecret string
	Status       string
	Currency     string
	AmountCents  int64
}

// CardIntentSucceeded is the processor status that allows confirmation
const CardIntentSucceeded = "succeeded"

// CreateIntentParams describes a new payment intent
type CreateIntentParams struct {
	Metadata     map[string]string
	Currency     string
	Description  string
	ReceiptEmail string
	AmountCents  int64
}

// CardCharge is an immediately captured card charge
type CardCharge struct {
	ID     string
	Status string
}

// ChargeParams describes a synchronous card charge
type ChargeParams struct {
	Metadata     map[string]string
	Currency     string
	SourceToken  string
	Description  string
	ReceiptEmail string
	AmountCents  int64
}

// CardRefund is a processor-side refund
type CardRefund struct {
	ID     string
	Status string
}

// RecurringParams describes a new recurring billing subscription
type RecurringParams struct {
	Email       string
	Name        string
	Currency    string
	Interval    string // month or year
	Description string
	AmountCents int64
	IntervalQty int64
}

// RecurringSubscription is a processor-side recurring subscription
type RecurringSubscription struct {
	ID           string
	CustomerID   string
	ClientSecret string
}

// CardEvent is a verified webhook event from the card processor
type CardEvent struct {
	ID        string
	Type      string
	ObjectRef string // id of the object the event concerns
	IntentRef string // payment intent the object belongs to, when present
	Payload   []byte
}

// CardProcessor is the client for the card-based processor API
type CardProcessor interface {
	CreateIntent(ctx context.Context, params CreateIntentParams) (*CardIntent, error)
	GetIntent(ctx context.Context, id string) (*CardIntent, error)
	Charge(ctx context.Context, params ChargeParams) (*CardCharge, error)
	Refund(ctx context.Context, intentRef string, amountCents int64, reason string) (*CardRefund, error)
	CreateRecurring(ctx context.Context, params RecurringParams) (*RecurringSubscription, error)
	CancelSubscription(ctx context.Context, subscriptionRef string) error
	// VerifyEvent checks the webhook signature and decodes the event.
	// An error means the payload must be rejected, not acknowledged.
	VerifyEvent(payload []byte, signatureHeader string) (*CardEvent, error)
}

// WalletOrder is a processor-side order awaiting donor approval
type WalletOrder struct {
	ID          string
	Status      string
	ApprovalURL string
}

// WalletOrderParams describes a new wallet order
type WalletOrderParams struct {
	Currency    string
	Description string
	PayerEmail  string
	AmountCents int64
}

// WalletCapture is the result of capturing an approved order
type WalletCapture struct {
	OrderID       string
	TransactionID string
	Status        string
}

// WalletCaptureCompleted is the processor status signalling a final capture
const WalletCaptureCompleted = "COMPLETED"

// WalletEvent is a verified webhook event from the wallet processor
type WalletEvent struct {
	ID       string
	Type     string
	OrderRef string
	Resource string // resource id (capture id)
	Payload  []byte
}

// WalletProcessor is the client for the redirect-based wallet processor API
type WalletProcessor interface {
	CreateOrder(ctx context.Context, params WalletOrderParams) (*WalletOrder, error)
	CaptureOrder(ctx context.Context, orderID string) (*WalletCapture, error)
	// VerifyEvent validates the webhook signature against the processor and
	// decodes the event. An error means the payload must be rejected.
	VerifyEvent(ctx context.Context, req *http.Request, payload []byte) (*WalletEvent, error)
}
