package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ctechrnd/payments-backend/internal/db"
	"github.com/ctechrnd/payments-backend/internal/models"
	"github.com/ctechrnd/payments-backend/internal/processor"
	"github.com/ctechrnd/payments-backend/internal/repository"
)

// WebhookService reconciles processor webhook deliveries against local
// state. Events are verified, deduplicated by processor event id, then
// dispatched through the same conditional transitions the synchronous
// paths use, so redelivery and races cannot duplicate side effects.
//
// Only signature failures propagate to the caller; once a payload is
// verified it is always acknowledged, and handler failures are logged for
// the processor to redeliver against the stored event record.
type WebhookService struct {
	store     repository.Store
	card      processor.CardProcessor
	wallet    processor.WalletProcessor
	payments  *PaymentService
	donations *DonationService
	logger    *slog.Logger
}

// NewWebhookService creates a new WebhookService
func NewWebhookService(
	database *db.DB,
	card processor.CardProcessor,
	wallet processor.WalletProcessor,
	payments *PaymentService,
	donations *DonationService,
	logger *slog.Logger,
) *WebhookService {
	return &WebhookService{
		store:     repository.NewStore(database),
		card:      card,
		wallet:    wallet,
		payments:  payments,
		donations: donations,
		logger:    logger,
	}
}

// Card processor event types this service reacts to
const (
	cardEventIntentSucceeded     = "payment_intent.succeeded"
	cardEventIntentFailed        = "payment_intent.payment_failed"
	cardEventChargeRefunded      = "charge.refunded"
	cardEventInvoicePaid         = "invoice.paid"
	cardEventSubscriptionDeleted = "customer.subscription.deleted"
)

// Wallet processor event types this service reacts to
const (
	walletEventCaptureCompleted = "PAYMENT.CAPTURE.COMPLETED"
	walletEventCaptureRefunded  = "PAYMENT.CAPTURE.REFUNDED"
)

// HandleCardEvent processes a card processor webhook delivery
func (s *WebhookService) HandleCardEvent(ctx context.Context, payload []byte, signatureHeader string) error {
	event, err := s.card.VerifyEvent(payload, signatureHeader)
	if err != nil {
		return &ServiceError{
			Code:    ErrCodeSignatureInvalid,
			Message: "webhook signature verification failed",
			Err:     err,
		}
	}

	if !s.recordEvent(ctx, event.ID, event.Type, "stripe", event.IntentRef, event.Payload) {
		return nil
	}

	if err := s.dispatchCardEvent(ctx, event); err != nil {
		s.logger.Error("card webhook handler failed",
			"eventId", event.ID,
			"type", event.Type,
			"error", err)
		return nil
	}

	s.markProcessed(ctx, event.ID)
	return nil
}

func (s *WebhookService) dispatchCardEvent(ctx context.Context, event *processor.CardEvent) error {
	switch event.Type {
	case cardEventIntentSucceeded:
		payment, invoiceNumber, won, err := s.payments.settleByIntent(ctx, event.IntentRef)
		if err != nil {
			return err
		}
		if won {
			s.payments.finishSettlement(ctx, payment, invoiceNumber)
		}
		return nil

	case cardEventIntentFailed:
		if err := s.store.Payments.MarkFailed(ctx, event.IntentRef); err != nil {
			return fmt.Errorf("failed to mark payment failed: %w", err)
		}
		return nil

	case cardEventChargeRefunded:
		payment, err := s.store.Payments.FindByIntentRef(ctx, event.IntentRef)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				s.logger.Warn("refund event for unknown payment", "intentRef", event.IntentRef)
				return nil
			}
			return fmt.Errorf("failed to look up payment: %w", err)
		}
		if _, err := s.store.Payments.MarkRefunded(ctx, payment.ID); err != nil {
			return fmt.Errorf("failed to mark payment refunded: %w", err)
		}
		s.audit(ctx, "payment_refunded_by_processor", event.IntentRef, map[string]any{
			"paymentId": payment.ID.String(),
			"eventId":   event.ID,
		})
		return nil

	case cardEventInvoicePaid:
		s.audit(ctx, "processor_invoice_paid", event.ObjectRef, map[string]any{
			"eventId": event.ID,
		})
		return nil

	case cardEventSubscriptionDeleted:
		if _, err := s.store.Subscriptions.MarkCancelledByRef(ctx, event.ObjectRef); err != nil {
			return fmt.Errorf("failed to cancel subscription: %w", err)
		}
		return nil

	default:
		s.logger.Debug("unhandled card event type", "type", event.Type, "eventId", event.ID)
		return nil
	}
}

// HandleWalletEvent processes a wallet processor webhook delivery. The
// request is needed alongside the payload because signature verification
// reads the transmission headers.
func (s *WebhookService) HandleWalletEvent(ctx context.Context, req *http.Request, payload []byte) error {
	event, err := s.wallet.VerifyEvent(ctx, req, payload)
	if err != nil {
		return &ServiceError{
			Code:    ErrCodeSignatureInvalid,
			Message: "webhook signature verification failed",
			Err:     err,
		}
	}

	if !s.recordEvent(ctx, event.ID, event.Type, "paypal", event.OrderRef, event.Payload) {
		return nil
	}

	if err := s.dispatchWalletEvent(ctx, event); err != nil {
		s.logger.Error("wallet webhook handler failed",
			"eventId", event.ID,
			"type", event.Type,
			"error", err)
		return nil
	}

	s.markProcessed(ctx, event.ID)
	return nil
}

func (s *WebhookService) dispatchWalletEvent(ctx context.Context, event *processor.WalletEvent) error {
	switch event.Type {
	case walletEventCaptureCompleted:
		donation, won, err := s.donations.settleByOrder(ctx, event.OrderRef, event.Resource)
		if err != nil {
			return err
		}
		if won {
			s.donations.finishDonation(ctx, donation)
		}
		return nil

	case walletEventCaptureRefunded:
		if err := s.store.Donations.MarkRefundedByOrder(ctx, event.OrderRef); err != nil {
			return fmt.Errorf("failed to mark donation refunded: %w", err)
		}
		return nil

	default:
		s.logger.Debug("unhandled wallet event type", "type", event.Type, "eventId", event.ID)
		return nil
	}
}

// recordEvent stores the event for deduplication and audit. It reports
// whether the event should be dispatched; duplicates and storage failures
// are acknowledged without dispatch.
func (s *WebhookService) recordEvent(ctx context.Context, eventID, eventType, source, transactionRef string, payload []byte) bool {
	record := &models.ProcessorEvent{
		EventID:        eventID,
		EventType:      eventType,
		Source:         source,
		TransactionRef: transactionRef,
		Payload:        payload,
		Status:         models.EventStatusReceived,
		ReceivedAt:     time.Now(),
	}

	if err := s.store.Events.Insert(ctx, record); err != nil {
		if errors.Is(err, models.ErrDuplicateEvent) {
			s.logger.Info("duplicate webhook event ignored", "eventId", eventID, "source", source)
		} else {
			s.logger.Error("failed to store webhook event", "eventId", eventID, "error", err)
		}
		return false
	}

	return true
}

func (s *WebhookService) markProcessed(ctx context.Context, eventID string) {
	if err := s.store.Events.MarkProcessed(ctx, eventID); err != nil {
		s.logger.Warn("failed to mark event processed", "eventId", eventID, "error", err)
	}
}

func (s *WebhookService) audit(ctx context.Context, action, ref string, metadata map[string]any) {
	entry := &models.AuditLogEntry{
		Action:         action,
		Source:         "webhook",
		TransactionRef: ref,
		Metadata:       metadata,
		CreatedAt:      time.Now(),
	}

	if err := s.store.Audit.Write(ctx, entry); err != nil {
		s.logger.Warn("audit write failed", "action", action, "error", err)
	}
}
