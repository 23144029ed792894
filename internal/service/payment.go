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

// PaymentService orchestrates card payments: intent creation, confirmation
// with its settlement side effects, refunds, history and reporting.
type PaymentService struct {
	db       *db.DB
	store    repository.Store
	card     processor.CardProcessor
	notifier Notifier
	logger   *slog.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	database *db.DB,
	card processor.CardProcessor,
	notifier Notifier,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		db:       database,
		store:    repository.NewStore(database),
		card:     card,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateIntentInput describes a new card payment
type CreateIntentInput struct {
	UserID      string
	Email       string
	ProductID   string
	ProductType string
	Currency    string
	Amount      float64
}

// CreateIntentResult carries the processor references the client needs to
// complete the card flow.
type CreateIntentResult struct {
	IntentID     string
	ClientSecret string
	Currency     string
	AmountCents  int64
}

// CreateIntent registers a payment intent with the card processor and
// persists the pending payment keyed by the intent id.
func (s *PaymentService) CreateIntent(ctx context.Context, input CreateIntentInput) (*CreateIntentResult, error) {
	amountCents := models.Cents(input.Amount)
	if err := s.validateCreateIntent(input, amountCents); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = "usd"
	}

	intent, err := s.card.CreateIntent(ctx, processor.CreateIntentParams{
		AmountCents:  amountCents,
		Currency:     currency,
		Description:  fmt.Sprintf("Purchase of %s", input.ProductID),
		ReceiptEmail: input.Email,
		Metadata: map[string]string{
			"productId":   input.ProductID,
			"productType": input.ProductType,
			"userId":      input.UserID,
			"email":       input.Email,
		},
	})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeProcessorError,
			Message: "failed to create payment intent",
			Err:     err,
		}
	}

	now := time.Now()
	payment := &models.Payment{
		ID:          uuid.New(),
		UserID:      input.UserID,
		ProductID:   input.ProductID,
		ProductType: input.ProductType,
		AmountCents: amountCents,
		Currency:    currency,
		Status:      models.TransactionStatusPending,
		Method:      models.PaymentMethodStripe,
		IntentRef:   intent.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Payments.Create(ctx, payment); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to record payment: %v", err),
		}
	}

	s.audit(ctx, "payment_intent_created", intent.ID, map[string]any{
		"userId":      input.UserID,
		"productId":   input.ProductID,
		"amountCents": amountCents,
	})

	return &CreateIntentResult{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Currency:     currency,
		AmountCents:  amountCents,
	}, nil
}

// Confirm finalizes a pending payment after the client completed the card
// flow. Exactly one confirmation wins the pending to completed transition;
// repeat calls return the current state without re-running side effects.
// The second return value is the invoice number issued for the payment,
// empty when no invoice has been written yet.
func (s *PaymentService) Confirm(ctx context.Context, intentID, userID string) (*models.Payment, string, error) {
	if intentID == "" || userID == "" {
		return nil, "", &ServiceError{
			Code:    ErrCodeInvalidInput,
			Message: "paymentIntentId and userId are required",
		}
	}

	payment, err := s.store.Payments.FindByIntentRefAndUser(ctx, intentID, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, "", &ServiceError{
				Code:    ErrCodePaymentNotFound,
				Message: "payment not found",
			}
		}
		return nil, "", &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to look up payment: %v", err),
		}
	}

	if payment.Status != models.TransactionStatusPending {
		return payment, s.invoiceNumberFor(ctx, payment.ID), nil
	}

	intent, err := s.card.GetIntent(ctx, intentID)
	if err != nil {
		return nil, "", &ServiceError{
			Code:    ErrCodeProcessorError,
			Message: "failed to retrieve payment intent",
			Err:     err,
		}
	}

	if intent.Status != processor.CardIntentSucceeded {
		return nil, "", &ServiceError{
			Code:    ErrCodeProcessorNotSucceeded,
			Message: fmt.Sprintf("payment intent status is %s", intent.Status),
		}
	}

	payment, invoiceNumber, won, err := s.settleByIntent(ctx, intentID)
	if err != nil {
		return nil, "", err
	}

	if won {
		s.finishSettlement(ctx, payment, invoiceNumber)
	} else {
		// lost the transition to the webhook; the winner wrote the invoice
		invoiceNumber = s.invoiceNumberFor(ctx, payment.ID)
	}

	return payment, invoiceNumber, nil
}

// invoiceNumberFor resolves the invoice issued for a payment, empty when
// none exists yet.
func (s *PaymentService) invoiceNumberFor(ctx context.Context, paymentID uuid.UUID) string {
	invoice, err := s.store.Invoices.FindByPayment(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Warn("failed to look up invoice", "paymentId", paymentID, "error", err)
		}
		return ""
	}
	return invoice.InvoiceNumber
}

// settleByIntent runs the completion transition inside a database
// transaction. The processor has already been consulted by the caller; no
// network call happens between begin and commit.
func (s *PaymentService) settleByIntent(ctx context.Context, intentRef string) (*models.Payment, string, bool, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, "", false, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to start transaction: %v", err),
		}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	txStore := repository.NewStore(tx)

	payment, invoiceNumber, won, err := s.performSettle(ctx, txStore, intentRef)
	if err != nil {
		return nil, "", false, err
	}

	if err := tx.Commit(); err != nil {
		return nil, "", false, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	return payment, invoiceNumber, won, nil
}

// performSettle contains the core settlement business logic. The rows
// affected by the conditional update elect exactly one winner between the
// synchronous confirmation and webhook delivery; only the winner grants the
// entitlement and issues the invoice.
func (s *PaymentService) performSettle(
	ctx context.Context,
	store repository.Store,
	intentRef string,
) (*models.Payment, string, bool, error) {
	won, err := store.Payments.MarkCompleted(ctx, intentRef)
	if err != nil {
		return nil, "", false, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to complete payment: %v", err),
		}
	}

	payment, err := store.Payments.FindByIntentRef(ctx, intentRef)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, "", false, &ServiceError{
				Code:    ErrCodePaymentNotFound,
				Message: "payment not found",
			}
		}
		return nil, "", false, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to look up payment: %v", err),
		}
	}

	if !won {
		return payment, "", false, nil
	}

	now := time.Now()

	if payment.ProductType == models.ProductTypeSubscription {
		tier := TierForAmount(payment.AmountCents)
		start := now
		end := start.AddDate(0, entitlementMonths, 0)

		if err := store.Users.GrantSubscription(ctx, payment.UserID, tier, start, end); err != nil {
			if !errors.Is(err, models.ErrNotFound) {
				return nil, "", false, &ServiceError{
					Code:    ErrCodeInternalError,
					Message: fmt.Sprintf("failed to grant subscription: %v", err),
				}
			}
			s.logger.Warn("subscription payment for unknown user",
				"userId", payment.UserID,
				"intentRef", payment.IntentRef)
		}

		sub := &models.Subscription{
			ID:              uuid.New(),
			UserID:          &payment.UserID,
			PlanID:          payment.ProductID,
			PlanName:        tier,
			Status:          models.SubscriptionStatusActive,
			SubscriptionRef: payment.IntentRef,
			AmountCents:     payment.AmountCents,
			BillingCycle:    "month",
			StartDate:       start,
			EndDate:         &end,
			Method:          payment.Method,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := store.Subscriptions.Create(ctx, sub); err != nil {
			return nil, "", false, &ServiceError{
				Code:    ErrCodeInternalError,
				Message: fmt.Sprintf("failed to record subscription: %v", err),
			}
		}
	}

	invoiceNumber := NewInvoiceNumber(now)
	invoice := &models.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: invoiceNumber,
		PaymentID:     payment.ID,
		UserID:        payment.UserID,
		AmountCents:   payment.AmountCents,
		TotalCents:    payment.AmountCents,
		Status:        models.InvoiceStatusPaid,
		IssuedAt:      now,
	}
	if err := store.Invoices.Create(ctx, invoice); err != nil {
		return nil, "", false, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to issue invoice: %v", err),
		}
	}

	return payment, invoiceNumber, true, nil
}

// finishSettlement runs the non-transactional side effects of a won
// settlement: the audit record and the confirmation email. Both are best
// effort.
func (s *PaymentService) finishSettlement(ctx context.Context, payment *models.Payment, invoiceNumber string) {
	s.audit(ctx, "payment_completed", payment.IntentRef, map[string]any{
		"paymentId":     payment.ID.String(),
		"userId":        payment.UserID,
		"amountCents":   payment.AmountCents,
		"invoiceNumber": invoiceNumber,
	})

	user, err := s.store.Users.FindByID(ctx, payment.UserID)
	if err != nil {
		s.logger.Warn("skipping confirmation email, user lookup failed",
			"userId", payment.UserID,
			"error", err)
		return
	}

	if err := s.notifier.SendPaymentConfirmation(user.Email, user.Name, payment, invoiceNumber); err != nil {
		s.logger.Warn("confirmation email failed",
			"intentRef", payment.IntentRef,
			"error", err)
	}
}

// History returns a page of a user's payments plus the total count
func (s *PaymentService) History(ctx context.Context, userID string, limit, offset int) ([]models.Payment, int64, error) {
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

	payments, err := s.store.Payments.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to list payments: %v", err),
		}
	}

	total, err := s.store.Payments.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to count payments: %v", err),
		}
	}

	return payments, total, nil
}

// PaymentDetails merges the stored payment with the live processor view
type PaymentDetails struct {
	Payment         *models.Payment
	Refunds         []models.Refund
	ProcessorStatus string
}

// Details resolves a payment by processor intent reference or local id and
// enriches it with the live processor status when reachable.
func (s *PaymentService) Details(ctx context.Context, ref string) (*PaymentDetails, error) {
	payment, err := s.store.Payments.FindByIntentRef(ctx, ref)
	if err != nil && errors.Is(err, models.ErrNotFound) {
		if id, parseErr := uuid.Parse(ref); parseErr == nil {
			payment, err = s.store.Payments.FindByID(ctx, id)
		}
	}
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodePaymentNotFound,
				Message: "payment not found",
			}
		}
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to look up payment: %v", err),
		}
	}

	details := &PaymentDetails{Payment: payment}

	refunds, err := s.store.Refunds.ListByPayment(ctx, payment.ID)
	if err != nil {
		s.logger.Warn("failed to list refunds", "paymentId", payment.ID, "error", err)
	} else {
		details.Refunds = refunds
	}

	// Processor being unreachable must not hide the local record.
	if intent, err := s.card.GetIntent(ctx, payment.IntentRef); err != nil {
		s.logger.Warn("failed to retrieve live intent", "intentRef", payment.IntentRef, "error", err)
	} else {
		details.ProcessorStatus = intent.Status
	}

	return details, nil
}

// Refund refunds a completed payment, fully or partially. A full refund
// moves the payment to refunded; a partial refund records the refund but
// leaves the payment completed.
func (s *PaymentService) Refund(ctx context.Context, paymentID uuid.UUID, reason string, partialAmount float64) (*models.Refund, error) {
	payment, err := s.store.Payments.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodePaymentNotFound,
				Message: "payment not found",
			}
		}
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to look up payment: %v", err),
		}
	}

	if payment.Status != models.TransactionStatusCompleted {
		return nil, &ServiceError{
			Code:    ErrCodePaymentNotFound,
			Message: "payment not found or not refundable",
		}
	}

	amountCents := payment.AmountCents
	if partialAmount > 0 {
		amountCents = models.Cents(partialAmount)
	}
	if amountCents <= 0 || amountCents > payment.AmountCents {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidInput,
			Message: "refund amount must be positive and not exceed the payment amount",
		}
	}
	full := amountCents == payment.AmountCents

	cardRefund, err := s.card.Refund(ctx, payment.IntentRef, amountCents, reason)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeProcessorError,
			Message: "failed to refund payment",
			Err:     err,
		}
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to start transaction: %v", err),
		}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	txStore := repository.NewStore(tx)

	refund, err := s.performRefund(ctx, txStore, payment, cardRefund.ID, reason, amountCents, full)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	s.audit(ctx, "payment_refunded", payment.IntentRef, map[string]any{
		"paymentId":   payment.ID.String(),
		"amountCents": amountCents,
		"full":        full,
		"reason":      reason,
	})

	return refund, nil
}

// performRefund contains the core refund business logic
func (s *PaymentService) performRefund(
	ctx context.Context,
	store repository.Store,
	payment *models.Payment,
	refundRef, reason string,
	amountCents int64,
	full bool,
) (*models.Refund, error) {
	refund := &models.Refund{
		ID:          uuid.New(),
		PaymentID:   payment.ID,
		AmountCents: amountCents,
		Reason:      reason,
		Status:      "completed",
		RefundRef:   refundRef,
		CompletedAt: time.Now(),
	}

	if err := store.Refunds.Create(ctx, refund); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to record refund: %v", err),
		}
	}

	if full {
		if _, err := store.Payments.MarkRefunded(ctx, payment.ID); err != nil {
			return nil, &ServiceError{
				Code:    ErrCodeInternalError,
				Message: fmt.Sprintf("failed to mark payment refunded: %v", err),
			}
		}
	}

	return refund, nil
}

// StatisticsResult aggregates payment activity for a reporting period
type StatisticsResult struct {
	Since     time.Time
	Period    string
	Stats     *repository.PaymentStats
	ByMethod  []repository.MethodStat
	ByProduct []repository.ProductStat
}

// Statistics aggregates payment activity for the named period
func (s *PaymentService) Statistics(ctx context.Context, period string) (*StatisticsResult, error) {
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

	stats, err := s.store.Payments.Stats(ctx, since)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to aggregate payments: %v", err),
		}
	}

	byMethod, err := s.store.Payments.MethodStats(ctx, since)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to aggregate payment methods: %v", err),
		}
	}

	byProduct, err := s.store.Payments.ProductStats(ctx, since)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to aggregate product types: %v", err),
		}
	}

	return &StatisticsResult{
		Since:     since,
		Period:    period,
		Stats:     stats,
		ByMethod:  byMethod,
		ByProduct: byProduct,
	}, nil
}

// Receipt renders a PDF receipt for a payment
func (s *PaymentService) Receipt(ctx context.Context, paymentID uuid.UUID) ([]byte, error) {
	payment, err := s.store.Payments.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodePaymentNotFound,
				Message: "payment not found",
			}
		}
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to look up payment: %v", err),
		}
	}

	var invoice *models.Invoice
	if inv, err := s.store.Invoices.FindByPayment(ctx, payment.ID); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Warn("failed to look up invoice", "paymentId", payment.ID, "error", err)
		}
	} else {
		invoice = inv
	}

	payerName := payment.UserID
	if user, err := s.store.Users.FindByID(ctx, payment.UserID); err == nil {
		payerName = user.Name
	}

	pdf, err := notify.PaymentReceiptPDF(payment, invoice, payerName)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to render receipt: %v", err),
		}
	}

	return pdf, nil
}

func (s *PaymentService) validateCreateIntent(input CreateIntentInput, amountCents int64) error {
	if err := ValidateAmountCents(amountCents); err != nil {
		return &ServiceError{
			Code:    ErrCodeInvalidInput,
			Message: err.Error(),
		}
	}

	if input.UserID == "" {
		return &ServiceError{
			Code:    ErrCodeInvalidInput,
			Message: "userId is required",
		}
	}

	if input.Email != "" {
		if err := ValidateEmail(input.Email); err != nil {
			return &ServiceError{
				Code:    ErrCodeInvalidInput,
				Message: err.Error(),
			}
		}
	}

	return nil
}

func (s *PaymentService) audit(ctx context.Context, action, ref string, metadata map[string]any) {
	entry := &models.AuditLogEntry{
		Action:         action,
		Source:         "payment_service",
		TransactionRef: ref,
		Metadata:       metadata,
		CreatedAt:      time.Now(),
	}

	if err := s.store.Audit.Write(ctx, entry); err != nil {
		s.logger.Warn("audit write failed", "action", action, "error", err)
	}
}
