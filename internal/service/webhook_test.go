package service

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ctechrnd/payments-backend/internal/models"
	"github.com/ctechrnd/payments-backend/internal/processor"
	procmocks "github.com/ctechrnd/payments-backend/internal/processor/mocks"
	"github.com/ctechrnd/payments-backend/internal/repository"
	"github.com/ctechrnd/payments-backend/internal/repository/mocks"
)

func TestWebhookService_HandleCardEvent(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`{"id":"evt_1"}`)

	t.Run("signature failure is rejected and nothing is stored", func(t *testing.T) {
		mockCard := procmocks.NewMockCardProcessor(t)
		mockEvents := mocks.NewMockEventRepository(t)
		svc := &WebhookService{
			store:  repository.Store{Events: mockEvents},
			card:   mockCard,
			logger: testLogger(),
		}

		mockCard.On("VerifyEvent", payload, "bad-sig").
			Return(nil, fmt.Errorf("signature mismatch"))

		err := svc.HandleCardEvent(ctx, payload, "bad-sig")

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeSignatureInvalid, svcErr.Code)
		mockEvents.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("duplicate event id is acknowledged without reprocessing", func(t *testing.T) {
		mockCard := procmocks.NewMockCardProcessor(t)
		mockEvents := mocks.NewMockEventRepository(t)
		mockPayments := mocks.NewMockPaymentRepository(t)
		svc := &WebhookService{
			store:  repository.Store{Events: mockEvents, Payments: mockPayments},
			card:   mockCard,
			logger: testLogger(),
		}

		mockCard.On("VerifyEvent", payload, "sig").Return(&processor.CardEvent{
			ID:        "evt_1",
			Type:      cardEventIntentFailed,
			IntentRef: "pi_1",
			Payload:   payload,
		}, nil)
		mockEvents.On("Insert", ctx, mock.AnythingOfType("*models.ProcessorEvent")).
			Return(models.ErrDuplicateEvent)

		err := svc.HandleCardEvent(ctx, payload, "sig")

		require.NoError(t, err)
		mockPayments.AssertNotCalled(t, "MarkFailed", mock.Anything, mock.Anything)
		mockEvents.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything)
	})

	t.Run("failed intent marks the payment failed", func(t *testing.T) {
		mockCard := procmocks.NewMockCardProcessor(t)
		mockEvents := mocks.NewMockEventRepository(t)
		mockPayments := mocks.NewMockPaymentRepository(t)
		svc := &WebhookService{
			store:  repository.Store{Events: mockEvents, Payments: mockPayments},
			card:   mockCard,
			logger: testLogger(),
		}

		mockCard.On("VerifyEvent", payload, "sig").Return(&processor.CardEvent{
			ID:        "evt_2",
			Type:      cardEventIntentFailed,
			IntentRef: "pi_1",
			Payload:   payload,
		}, nil)
		mockEvents.On("Insert", ctx, mock.MatchedBy(func(e *models.ProcessorEvent) bool {
			return e.EventID == "evt_2" && e.Source == "stripe" && e.Status == models.EventStatusReceived
		})).Return(nil)
		mockPayments.On("MarkFailed", ctx, "pi_1").Return(nil)
		mockEvents.On("MarkProcessed", ctx, "evt_2").Return(nil)

		err := svc.HandleCardEvent(ctx, payload, "sig")

		require.NoError(t, err)
	})

	t.Run("subscription deletion cancels the local subscription", func(t *testing.T) {
		mockCard := procmocks.NewMockCardProcessor(t)
		mockEvents := mocks.NewMockEventRepository(t)
		mockSubs := mocks.NewMockSubscriptionRepository(t)
		svc := &WebhookService{
			store:  repository.Store{Events: mockEvents, Subscriptions: mockSubs},
			card:   mockCard,
			logger: testLogger(),
		}

		mockCard.On("VerifyEvent", payload, "sig").Return(&processor.CardEvent{
			ID:        "evt_3",
			Type:      cardEventSubscriptionDeleted,
			ObjectRef: "sub_1",
			Payload:   payload,
		}, nil)
		mockEvents.On("Insert", ctx, mock.AnythingOfType("*models.ProcessorEvent")).Return(nil)
		mockSubs.On("MarkCancelledByRef", ctx, "sub_1").Return(true, nil)
		mockEvents.On("MarkProcessed", ctx, "evt_3").Return(nil)

		err := svc.HandleCardEvent(ctx, payload, "sig")

		require.NoError(t, err)
	})

	t.Run("handler failure is still acknowledged", func(t *testing.T) {
		mockCard := procmocks.NewMockCardProcessor(t)
		mockEvents := mocks.NewMockEventRepository(t)
		mockPayments := mocks.NewMockPaymentRepository(t)
		svc := &WebhookService{
			store:  repository.Store{Events: mockEvents, Payments: mockPayments},
			card:   mockCard,
			logger: testLogger(),
		}

		mockCard.On("VerifyEvent", payload, "sig").Return(&processor.CardEvent{
			ID:        "evt_4",
			Type:      cardEventIntentFailed,
			IntentRef: "pi_1",
			Payload:   payload,
		}, nil)
		mockEvents.On("Insert", ctx, mock.AnythingOfType("*models.ProcessorEvent")).Return(nil)
		mockPayments.On("MarkFailed", ctx, "pi_1").Return(fmt.Errorf("db down"))

		err := svc.HandleCardEvent(ctx, payload, "sig")

		require.NoError(t, err)
		mockEvents.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything)
	})
}

func TestWebhookService_HandleWalletEvent(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`{"id":"WH-1"}`)

	t.Run("signature failure is rejected and nothing is stored", func(t *testing.T) {
		mockWallet := procmocks.NewMockWalletProcessor(t)
		mockEvents := mocks.NewMockEventRepository(t)
		svc := &WebhookService{
			store:  repository.Store{Events: mockEvents},
			wallet: mockWallet,
			logger: testLogger(),
		}

		req := httptest.NewRequest("POST", "/api/donations/webhook", nil)
		mockWallet.On("VerifyEvent", ctx, req, payload).
			Return(nil, fmt.Errorf("verification status FAILURE"))

		err := svc.HandleWalletEvent(ctx, req, payload)

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeSignatureInvalid, svcErr.Code)
		mockEvents.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("duplicate delivery is acknowledged without reprocessing", func(t *testing.T) {
		mockWallet := procmocks.NewMockWalletProcessor(t)
		mockEvents := mocks.NewMockEventRepository(t)
		mockDonations := mocks.NewMockDonationRepository(t)
		svc := &WebhookService{
			store:  repository.Store{Events: mockEvents, Donations: mockDonations},
			wallet: mockWallet,
			logger: testLogger(),
		}

		req := httptest.NewRequest("POST", "/api/donations/webhook", nil)
		mockWallet.On("VerifyEvent", ctx, req, payload).Return(&processor.WalletEvent{
			ID:       "WH-1",
			Type:     walletEventCaptureRefunded,
			OrderRef: "5O1",
			Payload:  payload,
		}, nil)
		mockEvents.On("Insert", ctx, mock.AnythingOfType("*models.ProcessorEvent")).
			Return(models.ErrDuplicateEvent)

		err := svc.HandleWalletEvent(ctx, req, payload)

		require.NoError(t, err)
		mockDonations.AssertNotCalled(t, "MarkRefundedByOrder", mock.Anything, mock.Anything)
	})

	t.Run("capture refund marks the donation refunded", func(t *testing.T) {
		mockWallet := procmocks.NewMockWalletProcessor(t)
		mockEvents := mocks.NewMockEventRepository(t)
		mockDonations := mocks.NewMockDonationRepository(t)
		svc := &WebhookService{
			store:  repository.Store{Events: mockEvents, Donations: mockDonations},
			wallet: mockWallet,
			logger: testLogger(),
		}

		req := httptest.NewRequest("POST", "/api/donations/webhook", nil)
		mockWallet.On("VerifyEvent", ctx, req, payload).Return(&processor.WalletEvent{
			ID:       "WH-2",
			Type:     walletEventCaptureRefunded,
			OrderRef: "5O1",
			Payload:  payload,
		}, nil)
		mockEvents.On("Insert", ctx, mock.MatchedBy(func(e *models.ProcessorEvent) bool {
			return e.EventID == "WH-2" && e.Source == "paypal"
		})).Return(nil)
		mockDonations.On("MarkRefundedByOrder", ctx, "5O1").Return(nil)
		mockEvents.On("MarkProcessed", ctx, "WH-2").Return(nil)

		err := svc.HandleWalletEvent(ctx, req, payload)

		require.NoError(t, err)
	})
}
