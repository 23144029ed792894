package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ctechrnd/payments-backend/internal/db"
	"github.com/ctechrnd/payments-backend/internal/models"
	"github.com/ctechrnd/payments-backend/internal/notify"
	"github.com/ctechrnd/payments-backend/internal/processor"
	"github.com/ctechrnd/payments-backend/internal/repository"
)

// DonationService orchestrates one-off and recurring donations across the
// card processor (synchronous charge) and the wallet processor
// (redirect-approve-capture).
type DonationService struct {
	db       *db.DB
	store    repository.Store
	card     processor.CardProcessor
	wallet   processor.WalletProcessor
	notifier Notifier
	logger   *slog.Logger
	baseURL  string
}

// NewDonationService creates a new DonationService
func NewDonationService(
	database *db.DB,
	card processor.CardProcessor,
	wallet processor.WalletProcessor,
	notifier Notifier,
	logger *slog.Logger,
	baseURL string,
) *DonationService {
	return &DonationService{
		db:       database,
		store:    repository.NewStore(database),
		card:     card,
		wallet:   wallet,
		notifier: notifier,
		logger:   logger,
		baseURL:  baseURL,
	}
}

// CreateDonationInput describes a new donation
type CreateDonationInput struct {
	UserID        *string
	DonorName     string
	DonorEmail    string
	Currency      string
	Method        string
	Message       string
	SourceToken   string
	Amount        float64
	Anonymous     bool
	TaxDeductible bool
}

// CreateDonationResult carries the donation state and, for the wallet path,
// the approval URL the donor must visit.
type CreateDonationResult struct {
	Donation    *models.Donation
	OrderID     string
	ApprovalURL string
}

// Create starts a donation. The card method charges synchronously and
// completes in one call; the wallet method creates an order that stays
// pending until the donor approves it and Capture runs.
func (s *DonationService) Create(ctx context.Context, input CreateDonationInput) (*CreateDonationResult, error) {
	amountCents := models.Cents(input.Amount)
	if err := s.validateCreate(input, amountCents); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = "usd"
	}

	switch models.PaymentMethod(input.Method) {
	case models.PaymentMethodPayPal:
		return s.createWalletDonation(ctx, input, amountCents, currency)
	case models.PaymentMethodStripe:
		return s.createCardDonation(ctx, input, amountCents, currency)
	default:
		return nil, &ServiceError{
			Code:    ErrCodeInvalidPaymentMethod,
			Message: fmt.Sprintf("unsupported payment method %q", input.Method),
		}
	}
}

func (s *DonationService) createWalletDonation(ctx context.Context, input CreateDonationInput, amountCents int64, currency string) (*CreateDonationResult, error) {
	order, err := s.wallet.CreateOrder(ctx, processor.WalletOrderParams{
		AmountCents: amountCents,
		Currency:    currency,
		Description: "Donation",
		PayerEmail:  input.DonorEmail,
	})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeProcessorError,
			Message: "failed to create donation order",
			Err:     err,
		}
	}

	donation := s.newDonation(input, amountCents, currency, models.PaymentMethodPayPal, models.TransactionStatusPending)
	donation.OrderRef = &order.ID

	if err := s.store.Donations.Create(ctx, donation); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to record donation: %v", err),
		}
	}

	s.audit(ctx, "donation_order_created", order.ID, map[string]any{
		"donationId":  donation.ID.String(),
		"amountCents": amountCents,
	})

	return &CreateDonationResult{
		Donation:    donation,
		OrderID:     order.ID,
		ApprovalURL: order.ApprovalURL,
	}, nil
}

func (s *DonationService) createCardDonation(ctx context.Context, input CreateDonationInput, amountCents int64, currency string) (*CreateDonationResult, error) {
	charge, err := s.card.Charge(ctx, processor.ChargeParams{
		AmountCents:  amountCents,
		Currency:     currency,
		SourceToken:  input.SourceToken,
		Description:  "Donation",
		ReceiptEmail: input.DonorEmail,
		Metadata: map[string]string{
			"donorName": input.DonorName,
		},
	})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeProcessorError,
			Message: "failed to charge donation",
			Err:     err,
		}
	}

	donation := s.newDonation(input, amountCents, currency, models.PaymentMethodStripe, models.TransactionStatusCompleted)
	donation.ChargeRef = &charge.ID

	if err := s.store.Donations.Create(ctx, donation); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to record donation: %v", err),
		}
	}

	if err := s.notifier.SendDonationThanks(donation); err != nil {
		s.logger.Warn("thank-you email failed", "donationId", donation.ID, "error", err)
	}

	s.audit(ctx, "donation_completed", charge.ID, map[string]any{
		"donationId":  donation.ID.String(),
		"amountCents": amountCents,
	})

	return &CreateDonationResult{Donation: donation}, nil
}

func (s *DonationService) newDonation(input CreateDonationInput, amountCents int64, currency string, method models.PaymentMethod, status models.TransactionStatus) *models.Donation {
	now := time.Now()
	return &models.Donation{
		ID:            uuid.New(),
		UserID:        input.UserID,
		DonorName:     input.DonorName,
		DonorEmail:    input.DonorEmail,
		AmountCents:   amountCents,
		Currency:      currency,
		Method:        method,
		Status:        status,
		Message:       input.Message,
		Anonymous:     input.Anonymous,
		TaxDeductible: input.TaxDeductible,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Capture finalizes an approved wallet donation. Repeat captures and the
// race against webhook delivery are resolved by the conditional transition;
// only the winner sends the thank-you email.
func (s *DonationService) Capture(ctx context.Context, orderID string) (*models.Donation, error) {
	if orderID == "" {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidInput,
			Message: "orderId is required",
		}
	}

	donation, err := s.store.Donations.FindByOrderRef(ctx, orderID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodeDonationNotFound,
				Message: "donation not found",
			}
		}
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to look up donation: %v", err),
		}
	}

	if donation.Status != models.TransactionStatusPending {
		return donation, nil
	}

	capture, err := s.wallet.CaptureOrder(ctx, orderID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeProcessorError,
			Message: "failed to capture donation order",
			Err:     err,
		}
	}

	if capture.Status != processor.WalletCaptureCompleted {
		return nil, &ServiceError{
			Code:    ErrCodeCaptureIncomplete,
			Message: fmt.Sprintf("capture status is %s", capture.Status),
		}
	}

	donation, won, err := s.settleByOrder(ctx, orderID, capture.TransactionID)
	if err != nil {
		return nil, err
	}

	if won {
		s.finishDonation(ctx, donation)
	}

	return donation, nil
}

// settleByOrder runs the wallet completion transition inside a database
// transaction.
func (s *DonationService) settleByOrder(ctx context.Context, orderRef, transactionRef string) (*models.Donation, bool, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, false, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to start transaction: %v", err),
		}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	txStore := repository.NewStore(tx)

	donation, won, err := s.performCapture(ctx, txStore, orderRef, transactionRef)
	if err != nil {
		return nil, false, err
	}

	if err := tx.Commit(); err != nil {
		return nil, false, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	return donation, won, nil
}

// performCapture contains the core wallet settlement logic
func (s *DonationService) performCapture(
	ctx context.Context,
	store repository.Store,
	orderRef, transactionRef string,
) (*models.Donation, bool, error) {
	won, err := store.Donations.MarkCompletedByOrder(ctx, orderRef, transactionRef)
	if err != nil {
		return nil, false, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to complete donation: %v", err),
		}
	}

	donation, err := store.Donations.FindByOrderRef(ctx, orderRef)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, false, &ServiceError{
				Code:    ErrCodeDonationNotFound,
				Message: "donation not found",
			}
		}
		return nil, false, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to look up donation: %v", err),
		}
	}

	return donation, won, nil
}

// finishDonation runs the non-transactional side effects after a won
// capture: the audit record and the thank-you email. Both are best effort.
func (s *DonationService) finishDonation(ctx context.Context, donation *models.Donation) {
	ref := donation.ID.String()
	if donation.OrderRef != nil {
		ref = *donation.OrderRef
	}
	s.audit(ctx, "donation_completed", ref, map[string]any{
		"donationId":  donation.ID.String(),
		"amountCents": donation.AmountCents,
	})

	if err := s.notifier.SendDonationThanks(donation); err != nil {
		s.logger.Warn("thank-you email failed", "donationId", donation.ID, "error", err)
	}
}

// Summary aggregates all completed donations
func (s *DonationService) Summary(ctx context.Context) (*repository.DonationSummary, error) {
	summary, err := s.store.Donations.Summary(ctx)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to aggregate donations: %v", err),
		}
	}

	return summary, nil
}

// Leaderboard returns the top non-anonymous donors ordered by total given
func (s *DonationService) Leaderboard(ctx context.Context, limit int) ([]repository.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	entries, err := s.store.Donations.Leaderboard(ctx, limit)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to build leaderboard: %v", err),
		}
	}

	return entries, nil
}

// DonationStatistics buckets donation activity for a reporting period
type DonationStatistics struct {
	Since    time.Time
	Period   string
	Daily    []repository.DailyDonationStat
	ByMethod []repository.MethodStat
}

// Statistics aggregates donation activity for the named period
func (s *DonationService) Statistics(ctx context.Context, period string) (*DonationStatistics, error) {
	since, err := PeriodStart(period, time.Now())
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidInput,
			Message: err.Error(),
		}
	}
	if period == "" {
		period = "month"
	}

	daily, err := s.store.Donations.DailyStats(ctx, since)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to aggregate daily donations: %v", err),
		}
	}

	byMethod, err := s.store.Donations.MethodStats(ctx, since)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to aggregate donation methods: %v", err),
		}
	}

	return &DonationStatistics{
		Since:    since,
		Period:   period,
		Daily:    daily,
		ByMethod: byMethod,
	}, nil
}

// ForUser returns a page of a user's completed donations plus their
// lifetime total.
func (s *DonationService) ForUser(ctx context.Context, userID string, limit, offset int) ([]models.Donation, int64, error) {
	if userID == "" {
		return nil, 0, &ServiceError{
			Code:    ErrCodeInvalidInput,
			Message: "userId is required",
		}
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	donations, err := s.store.Donations.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to list donations: %v", err),
		}
	}

	total, err := s.store.Donations.TotalByUser(ctx, userID)
	if err != nil {
		return nil, 0, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to total donations: %v", err),
		}
	}

	return donations, total, nil
}

// RecurringDonationInput describes a new recurring donation
type RecurringDonationInput struct {
	UserID     *string
	DonorName  string
	DonorEmail string
	Currency   string
	Method     string
	Interval   string
	Amount     float64
}

// RecurringDonationResult carries the processor references for completing
// the first recurring charge.
type RecurringDonationResult struct {
	SubscriptionID string
	ClientSecret   string
}

// CreateRecurring sets up a recurring donation through the card processor
func (s *DonationService) CreateRecurring(ctx context.Context, input RecurringDonationInput) (*RecurringDonationResult, error) {
	amountCents := models.Cents(input.Amount)
	if err := ValidateAmountCents(amountCents); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidInput,
			Message: err.Error(),
		}
	}
	if err := ValidateEmail(input.DonorEmail); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidInput,
			Message: err.Error(),
		}
	}

	if models.PaymentMethod(input.Method) != models.PaymentMethodStripe {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidPaymentMethod,
			Message: "recurring donations require the card processor",
		}
	}

	currency := input.Currency
	if currency == "" {
		currency = "usd"
	}
	interval := input.Interval
	if interval == "" {
		interval = "month"
	}

	rec, err := s.card.CreateRecurring(ctx, processor.RecurringParams{
		Email:       input.DonorEmail,
		Name:        input.DonorName,
		AmountCents: amountCents,
		Currency:    currency,
		Interval:    interval,
		IntervalQty: 1,
		Description: "Recurring donation",
	})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeProcessorError,
			Message: "failed to create recurring donation",
			Err:     err,
		}
	}

	now := time.Now()
	sub := &models.Subscription{
		ID:              uuid.New(),
		UserID:          input.UserID,
		PlanID:          "recurring-donation",
		PlanName:        "Recurring Donation",
		Status:          models.SubscriptionStatusActive,
		SubscriptionRef: rec.ID,
		AmountCents:     amountCents,
		BillingCycle:    interval,
		StartDate:       now,
		Method:          models.PaymentMethodStripe,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.store.Subscriptions.Create(ctx, sub); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to record subscription: %v", err),
		}
	}

	s.audit(ctx, "recurring_donation_created", rec.ID, map[string]any{
		"subscriptionId": sub.ID.String(),
		"amountCents":    amountCents,
		"interval":       interval,
	})

	return &RecurringDonationResult{
		SubscriptionID: rec.ID,
		ClientSecret:   rec.ClientSecret,
	}, nil
}

// CancelRecurring cancels a recurring donation by its processor reference
func (s *DonationService) CancelRecurring(ctx context.Context, subscriptionRef string) error {
	if subscriptionRef == "" {
		return &ServiceError{
			Code:    ErrCodeInvalidInput,
			Message: "subscriptionId is required",
		}
	}

	if _, err := s.store.Subscriptions.FindByRef(ctx, subscriptionRef); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return &ServiceError{
				Code:    ErrCodeSubscriptionNotFound,
				Message: "subscription not found",
			}
		}
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to look up subscription: %v", err),
		}
	}

	if err := s.card.CancelSubscription(ctx, subscriptionRef); err != nil {
		return &ServiceError{
			Code:    ErrCodeProcessorError,
			Message: "failed to cancel recurring donation",
			Err:     err,
		}
	}

	if _, err := s.store.Subscriptions.MarkCancelledByRef(ctx, subscriptionRef); err != nil {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to mark subscription cancelled: %v", err),
		}
	}

	s.audit(ctx, "recurring_donation_cancelled", subscriptionRef, nil)

	return nil
}

// Receipt renders an HTML receipt for a donation, with a QR verification
// link back to this service.
func (s *DonationService) Receipt(ctx context.Context, donationID uuid.UUID) ([]byte, error) {
	donation, err := s.store.Donations.FindByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodeDonationNotFound,
				Message: "donation not found",
			}
		}
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to look up donation: %v", err),
		}
	}

	verifyURL := fmt.Sprintf("%s/api/donations/%s/receipt", s.baseURL, donation.ID)

	receipt, err := notify.DonationReceiptHTML(donation, verifyURL)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to render receipt: %v", err),
		}
	}

	return receipt, nil
}

func (s *DonationService) validateCreate(input CreateDonationInput, amountCents int64) error {
	if err := ValidateAmountCents(amountCents); err != nil {
		return &ServiceError{
			Code:    ErrCodeInvalidInput,
			Message: err.Error(),
		}
	}

	if input.DonorName == "" {
		return &ServiceError{
			Code:    ErrCodeInvalidInput,
			Message: "donor name is required",
		}
	}

	if err := ValidateEmail(input.DonorEmail); err != nil {
		return &ServiceError{
			Code:    ErrCodeInvalidInput,
			Message: err.Error(),
		}
	}

	return nil
}

func (s *DonationService) audit(ctx context.Context, action, ref string, metadata map[string]any) {
	entry := &models.AuditLogEntry{
		Action:         action,
		Source:         "donation_service",
		TransactionRef: ref,
		Metadata:       metadata,
		CreatedAt:      time.Now(),
	}

	if err := s.store.Audit.Write(ctx, entry); err != nil {
		s.logger.Warn("audit write failed", "action", action, "error", err)
	}
}
