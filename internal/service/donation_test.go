package service

import (
	"context"
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

func TestDonationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("card donation completes in one call with one email", func(t *testing.T) {
		mockDonations := mocks.NewMockDonationRepository(t)
		mockAudit := mocks.NewMockAuditLogRepository(t)
		mockCard := procmocks.NewMockCardProcessor(t)
		notifier := &recordingNotifier{}
		svc := &DonationService{
			store:    repository.Store{Donations: mockDonations, Audit: mockAudit},
			card:     mockCard,
			notifier: notifier,
			logger:   testLogger(),
		}

		mockCard.On("Charge", ctx, mock.MatchedBy(func(p processor.ChargeParams) bool {
			return p.AmountCents == 2500 && p.SourceToken == "tok_visa"
		})).Return(&processor.CardCharge{ID: "ch_1", Status: "succeeded"}, nil)

		var created *models.Donation
		mockDonations.On("Create", ctx, mock.AnythingOfType("*models.Donation")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*models.Donation)
			}).
			Return(nil)
		mockAudit.On("Write", ctx, mock.AnythingOfType("*models.AuditLogEntry")).Return(nil)

		result, err := svc.Create(ctx, CreateDonationInput{
			DonorName:   "Jane Doe",
			DonorEmail:  "jane@example.com",
			Amount:      25.00,
			Method:      "stripe",
			SourceToken: "tok_visa",
		})

		require.NoError(t, err)
		assert.Empty(t, result.ApprovalURL)

		require.NotNil(t, created)
		assert.Equal(t, models.TransactionStatusCompleted, created.Status)
		require.NotNil(t, created.ChargeRef)
		assert.Equal(t, "ch_1", *created.ChargeRef)
		assert.Equal(t, 1, notifier.donations)
	})

	t.Run("wallet donation stays pending with approval url and no email", func(t *testing.T) {
		mockDonations := mocks.NewMockDonationRepository(t)
		mockAudit := mocks.NewMockAuditLogRepository(t)
		mockWallet := procmocks.NewMockWalletProcessor(t)
		notifier := &recordingNotifier{}
		svc := &DonationService{
			store:    repository.Store{Donations: mockDonations, Audit: mockAudit},
			wallet:   mockWallet,
			notifier: notifier,
			logger:   testLogger(),
		}

		mockWallet.On("CreateOrder", ctx, mock.MatchedBy(func(p processor.WalletOrderParams) bool {
			return p.AmountCents == 5000 && p.PayerEmail == "jane@example.com"
		})).Return(&processor.WalletOrder{
			ID:          "5O190127TN364715T",
			Status:      "CREATED",
			ApprovalURL: "https://www.sandbox.paypal.com/checkoutnow?token=5O1",
		}, nil)

		var created *models.Donation
		mockDonations.On("Create", ctx, mock.AnythingOfType("*models.Donation")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*models.Donation)
			}).
			Return(nil)
		mockAudit.On("Write", ctx, mock.AnythingOfType("*models.AuditLogEntry")).Return(nil)

		result, err := svc.Create(ctx, CreateDonationInput{
			DonorName:  "Jane Doe",
			DonorEmail: "jane@example.com",
			Amount:     50.00,
			Method:     "paypal",
		})

		require.NoError(t, err)
		assert.Equal(t, "5O190127TN364715T", result.OrderID)
		assert.Equal(t, "https://www.sandbox.paypal.com/checkoutnow?token=5O1", result.ApprovalURL)

		require.NotNil(t, created)
		assert.Equal(t, models.TransactionStatusPending, created.Status)
		require.NotNil(t, created.OrderRef)
		assert.Equal(t, "5O190127TN364715T", *created.OrderRef)
		assert.Equal(t, 0, notifier.donations)
	})

	t.Run("unsupported method", func(t *testing.T) {
		svc := &DonationService{logger: testLogger()}

		_, err := svc.Create(ctx, CreateDonationInput{
			DonorName:  "Jane Doe",
			DonorEmail: "jane@example.com",
			Amount:     10,
			Method:     "cheque",
		})

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeInvalidPaymentMethod, svcErr.Code)
	})

	t.Run("missing donor details", func(t *testing.T) {
		svc := &DonationService{logger: testLogger()}

		_, err := svc.Create(ctx, CreateDonationInput{Amount: 10, Method: "stripe"})

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeInvalidInput, svcErr.Code)
	})
}

func TestDonationService_Capture(t *testing.T) {
	ctx := context.Background()

	t.Run("donation not found", func(t *testing.T) {
		mockDonations := mocks.NewMockDonationRepository(t)
		svc := &DonationService{
			store:  repository.Store{Donations: mockDonations},
			logger: testLogger(),
		}

		mockDonations.On("FindByOrderRef", ctx, "missing").Return(nil, models.ErrNotFound)

		_, err := svc.Capture(ctx, "missing")

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeDonationNotFound, svcErr.Code)
	})

	t.Run("already completed returns current state without processor call", func(t *testing.T) {
		mockDonations := mocks.NewMockDonationRepository(t)
		mockWallet := procmocks.NewMockWalletProcessor(t)
		svc := &DonationService{
			store:  repository.Store{Donations: mockDonations},
			wallet: mockWallet,
			logger: testLogger(),
		}

		orderRef := "5O1"
		mockDonations.On("FindByOrderRef", ctx, orderRef).Return(&models.Donation{
			OrderRef: &orderRef,
			Status:   models.TransactionStatusCompleted,
		}, nil)

		donation, err := svc.Capture(ctx, orderRef)

		require.NoError(t, err)
		assert.Equal(t, models.TransactionStatusCompleted, donation.Status)
		mockWallet.AssertNotCalled(t, "CaptureOrder", mock.Anything, mock.Anything)
	})

	t.Run("incomplete capture keeps donation pending", func(t *testing.T) {
		mockDonations := mocks.NewMockDonationRepository(t)
		mockWallet := procmocks.NewMockWalletProcessor(t)
		svc := &DonationService{
			store:  repository.Store{Donations: mockDonations},
			wallet: mockWallet,
			logger: testLogger(),
		}

		orderRef := "5O1"
		mockDonations.On("FindByOrderRef", ctx, orderRef).Return(&models.Donation{
			OrderRef: &orderRef,
			Status:   models.TransactionStatusPending,
		}, nil)
		mockWallet.On("CaptureOrder", ctx, orderRef).
			Return(&processor.WalletCapture{OrderID: orderRef, Status: "PENDING"}, nil)

		_, err := svc.Capture(ctx, orderRef)

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeCaptureIncomplete, svcErr.Code)
		assert.Contains(t, svcErr.Message, "PENDING")
		mockDonations.AssertNotCalled(t, "MarkCompletedByOrder",
			mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDonationService_PerformCapture(t *testing.T) {
	ctx := context.Background()
	orderRef := "5O1"

	t.Run("winner completes the donation", func(t *testing.T) {
		mockDonations := mocks.NewMockDonationRepository(t)
		svc := &DonationService{logger: testLogger()}
		store := repository.Store{Donations: mockDonations}

		txnRef := "4TH55786XY1682839"
		mockDonations.On("MarkCompletedByOrder", ctx, orderRef, txnRef).Return(true, nil)
		mockDonations.On("FindByOrderRef", ctx, orderRef).Return(&models.Donation{
			OrderRef:       &orderRef,
			TransactionRef: &txnRef,
			Status:         models.TransactionStatusCompleted,
		}, nil)

		donation, won, err := svc.performCapture(ctx, store, orderRef, txnRef)

		require.NoError(t, err)
		assert.True(t, won)
		assert.Equal(t, models.TransactionStatusCompleted, donation.Status)
	})

	t.Run("loser reports no win", func(t *testing.T) {
		mockDonations := mocks.NewMockDonationRepository(t)
		svc := &DonationService{logger: testLogger()}
		store := repository.Store{Donations: mockDonations}

		mockDonations.On("MarkCompletedByOrder", ctx, orderRef, "t1").Return(false, nil)
		mockDonations.On("FindByOrderRef", ctx, orderRef).Return(&models.Donation{
			OrderRef: &orderRef,
			Status:   models.TransactionStatusCompleted,
		}, nil)

		_, won, err := svc.performCapture(ctx, store, orderRef, "t1")

		require.NoError(t, err)
		assert.False(t, won)
	})
}

func TestDonationService_CreateRecurring(t *testing.T) {
	ctx := context.Background()

	t.Run("requires the card processor", func(t *testing.T) {
		svc := &DonationService{logger: testLogger()}

		_, err := svc.CreateRecurring(ctx, RecurringDonationInput{
			DonorName:  "Jane Doe",
			DonorEmail: "jane@example.com",
			Amount:     10,
			Method:     "paypal",
		})

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeInvalidPaymentMethod, svcErr.Code)
	})

	t.Run("records the subscription", func(t *testing.T) {
		mockSubs := mocks.NewMockSubscriptionRepository(t)
		mockAudit := mocks.NewMockAuditLogRepository(t)
		mockCard := procmocks.NewMockCardProcessor(t)
		svc := &DonationService{
			store:  repository.Store{Subscriptions: mockSubs, Audit: mockAudit},
			card:   mockCard,
			logger: testLogger(),
		}

		mockCard.On("CreateRecurring", ctx, mock.MatchedBy(func(p processor.RecurringParams) bool {
			return p.AmountCents == 1000 && p.Interval == "month"
		})).Return(&processor.RecurringSubscription{
			ID:           "sub_1",
			CustomerID:   "cus_1",
			ClientSecret: "pi_secret",
		}, nil)

		mockSubs.On("Create", ctx, mock.MatchedBy(func(s *models.Subscription) bool {
			return s.SubscriptionRef == "sub_1" && s.Status == models.SubscriptionStatusActive
		})).Return(nil)
		mockAudit.On("Write", ctx, mock.AnythingOfType("*models.AuditLogEntry")).Return(nil)

		result, err := svc.CreateRecurring(ctx, RecurringDonationInput{
			DonorName:  "Jane Doe",
			DonorEmail: "jane@example.com",
			Amount:     10,
			Method:     "stripe",
		})

		require.NoError(t, err)
		assert.Equal(t, "sub_1", result.SubscriptionID)
		assert.Equal(t, "pi_secret", result.ClientSecret)
	})
}

func TestDonationService_CancelRecurring(t *testing.T) {
	ctx := context.Background()

	t.Run("subscription not found", func(t *testing.T) {
		mockSubs := mocks.NewMockSubscriptionRepository(t)
		svc := &DonationService{
			store:  repository.Store{Subscriptions: mockSubs},
			logger: testLogger(),
		}

		mockSubs.On("FindByRef", ctx, "sub_missing").Return(nil, models.ErrNotFound)

		err := svc.CancelRecurring(ctx, "sub_missing")

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, ErrCodeSubscriptionNotFound, svcErr.Code)
	})

	t.Run("cancels at the processor then locally", func(t *testing.T) {
		mockSubs := mocks.NewMockSubscriptionRepository(t)
		mockAudit := mocks.NewMockAuditLogRepository(t)
		mockCard := procmocks.NewMockCardProcessor(t)
		svc := &DonationService{
			store:  repository.Store{Subscriptions: mockSubs, Audit: mockAudit},
			card:   mockCard,
			logger: testLogger(),
		}

		mockSubs.On("FindByRef", ctx, "sub_1").Return(&models.Subscription{
			SubscriptionRef: "sub_1",
			Status:          models.SubscriptionStatusActive,
		}, nil)
		mockCard.On("CancelSubscription", ctx, "sub_1").Return(nil)
		mockSubs.On("MarkCancelledByRef", ctx, "sub_1").Return(true, nil)
		mockAudit.On("Write", ctx, mock.AnythingOfType("*models.AuditLogEntry")).Return(nil)

		err := svc.CancelRecurring(ctx, "sub_1")

		require.NoError(t, err)
	})
}
