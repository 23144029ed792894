package service

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/ctechrnd/payments-backend/internal/models"
	"github.com/ctechrnd/payments-backend/internal/repository"
)

// PaymentManager handles card payment operations
type PaymentManager interface {
	CreateIntent(ctx context.Context, input CreateIntentInput) (*CreateIntentResult, error)
	Confirm(ctx context.Context, intentID, userID string) (*models.Payment, string, error)
	History(ctx context.Context, userID string, limit, offset int) ([]models.Payment, int64, error)
	Details(ctx context.Context, ref string) (*PaymentDetails, error)
	Refund(ctx context.Context, paymentID uuid.UUID, reason string, partialAmount float64) (*models.Refund, error)
	Statistics(ctx context.Context, period string) (*StatisticsResult, error)
	Receipt(ctx context.Context, paymentID uuid.UUID) ([]byte, error)
}

// DonationManager handles one-off and recurring donation operations
type DonationManager interface {
	Create(ctx context.Context, input CreateDonationInput) (*CreateDonationResult, error)
	Capture(ctx context.Context, orderID string) (*models.Donation, error)
	Summary(ctx context.Context) (*repository.DonationSummary, error)
	Leaderboard(ctx context.Context, limit int) ([]repository.LeaderboardEntry, error)
	Statistics(ctx context.Context, period string) (*DonationStatistics, error)
	ForUser(ctx context.Context, userID string, limit, offset int) ([]models.Donation, int64, error)
	CreateRecurring(ctx context.Context, input RecurringDonationInput) (*RecurringDonationResult, error)
	CancelRecurring(ctx context.Context, subscriptionRef string) error
	Receipt(ctx context.Context, donationID uuid.UUID) ([]byte, error)
}

// WebhookHandler reconciles processor webhook deliveries
type WebhookHandler interface {
	HandleCardEvent(ctx context.Context, payload []byte, signatureHeader string) error
	HandleWalletEvent(ctx context.Context, req *http.Request, payload []byte) error
}

// Notifier delivers receipt emails. Delivery failures are logged by
// callers and never surfaced to API clients.
type Notifier interface {
	SendPaymentConfirmation(email, name string, payment *models.Payment, invoiceNumber string) error
	SendDonationThanks(donation *models.Donation) error
}

// Ensure concrete types implement interfaces
var (
	_ PaymentManager  = (*PaymentService)(nil)
	_ DonationManager = (*DonationService)(nil)
	_ WebhookHandler  = (*WebhookService)(nil)
)
