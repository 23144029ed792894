package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ctechrnd/payments-backend/internal/models"
	"github.com/ctechrnd/payments-backend/internal/repository"
	"github.com/ctechrnd/payments-backend/internal/service"
	"github.com/ctechrnd/payments-backend/internal/service/mocks"
)

func TestCreateDonation_CardPath(t *testing.T) {
	mockDonations := mocks.NewMockDonationManager(t)
	handler := NewHandler(nil, mockDonations, nil, nil, testLogger())

	mockDonations.On("Create", mock.Anything, mock.MatchedBy(func(input service.CreateDonationInput) bool {
		return input.DonorName == "Jane Doe" &&
			input.Method == "stripe" &&
			input.UserID == nil
	})).Return(&service.CreateDonationResult{
		Donation: &models.Donation{
			ID:          uuid.New(),
			DonorName:   "Jane Doe",
			AmountCents: 2500,
			Currency:    "usd",
			Status:      models.TransactionStatusCompleted,
			Method:      models.PaymentMethodStripe,
		},
	}, nil)

	body := `{"donorName":"Jane Doe","donorEmail":"jane@example.com","currency":"usd","paymentMethod":"stripe","sourceToken":"tok_visa","amount":25}`
	req := httptest.NewRequest(http.MethodPost, "/api/donations/create", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CreateDonation(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
	assert.NotContains(t, rec.Body.String(), "approvalUrl")
}

func TestCreateDonation_WalletPathReturnsApprovalURL(t *testing.T) {
	mockDonations := mocks.NewMockDonationManager(t)
	handler := NewHandler(nil, mockDonations, nil, nil, testLogger())

	orderRef := "ORDER-123"
	mockDonations.On("Create", mock.Anything, mock.Anything).
		Return(&service.CreateDonationResult{
			Donation: &models.Donation{
				ID:          uuid.New(),
				DonorName:   "Jane Doe",
				AmountCents: 2500,
				Currency:    "usd",
				Status:      models.TransactionStatusPending,
				Method:      models.PaymentMethodPayPal,
				OrderRef:    &orderRef,
			},
			OrderID:     "ORDER-123",
			ApprovalURL: "https://www.sandbox.paypal.com/checkoutnow?token=ORDER-123",
		}, nil)

	body := `{"donorName":"Jane Doe","donorEmail":"jane@example.com","currency":"usd","paymentMethod":"paypal","amount":25}`
	req := httptest.NewRequest(http.MethodPost, "/api/donations/create", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CreateDonation(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ORDER-123", resp["orderId"])
	assert.Contains(t, resp["approvalUrl"], "checkoutnow")
}

func TestCreateDonation_AuthenticatedCallerLinked(t *testing.T) {
	mockDonations := mocks.NewMockDonationManager(t)
	handler := NewHandler(nil, mockDonations, nil, nil, testLogger())

	mockDonations.On("Create", mock.Anything, mock.MatchedBy(func(input service.CreateDonationInput) bool {
		return input.UserID != nil && *input.UserID == "user-1"
	})).Return(&service.CreateDonationResult{
		Donation: &models.Donation{ID: uuid.New(), Status: models.TransactionStatusCompleted},
	}, nil)

	body := `{"donorName":"Jane Doe","donorEmail":"jane@example.com","currency":"usd","paymentMethod":"stripe","sourceToken":"tok_visa","amount":25}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/donations/create", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()

	handler.CreateDonation(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCaptureDonation_NotFound(t *testing.T) {
	mockDonations := mocks.NewMockDonationManager(t)
	handler := NewHandler(nil, mockDonations, nil, nil, testLogger())

	mockDonations.On("Capture", mock.Anything, "ORDER-404").
		Return(nil, &service.ServiceError{Code: service.ErrCodeDonationNotFound, Message: "donation not found"})

	req := httptest.NewRequest(http.MethodPost, "/api/donations/capture",
		strings.NewReader(`{"orderId":"ORDER-404"}`))
	rec := httptest.NewRecorder()

	handler.CaptureDonation(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCaptureDonation_Success(t *testing.T) {
	mockDonations := mocks.NewMockDonationManager(t)
	handler := NewHandler(nil, mockDonations, nil, nil, testLogger())

	donationID := uuid.New()
	transactionRef := "4TH55786XY1682839"
	mockDonations.On("Capture", mock.Anything, "ORDER-123").
		Return(&models.Donation{
			ID:             donationID,
			DonorName:      "Jane Doe",
			AmountCents:    2500,
			Status:         models.TransactionStatusCompleted,
			Method:         models.PaymentMethodPayPal,
			TransactionRef: &transactionRef,
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/donations/capture",
		strings.NewReader(`{"orderId":"ORDER-123"}`))
	rec := httptest.NewRecorder()

	handler.CaptureDonation(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp captureDonationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, donationID.String(), resp.DonationID)
	assert.Equal(t, transactionRef, resp.TransactionID)
	assert.Equal(t, "completed", resp.Status)
}

func TestDonationSummary_Success(t *testing.T) {
	mockDonations := mocks.NewMockDonationManager(t)
	handler := NewHandler(nil, mockDonations, nil, nil, testLogger())

	mockDonations.On("Summary", mock.Anything).
		Return(&repository.DonationSummary{
			TotalDonations: 12,
			TotalCents:     120000,
			AverageCents:   10000,
			LargestCents:   50000,
			UniqueDonors:   8,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/donations/summary", nil)
	rec := httptest.NewRecorder()

	handler.DonationSummary(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 1200.0, resp["totalAmount"], 0.001)
	assert.InDelta(t, 12, resp["totalDonations"], 0.001)
}

func TestDonationReceipt_AnonymousMasking(t *testing.T) {
	mockDonations := mocks.NewMockDonationManager(t)
	handler := NewHandler(nil, mockDonations, nil, nil, testLogger())

	donationID := uuid.New()
	mockDonations.On("Receipt", mock.Anything, donationID).
		Return([]byte("<html><body>Anonymous Donor</body></html>"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/donations/"+donationID.String()+"/receipt", nil)
	req = mux.SetURLVars(req, map[string]string{"donationId": donationID.String()})
	rec := httptest.NewRecorder()

	handler.DonationReceipt(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Anonymous Donor")
}

func TestUserDonations_ForbiddenForOtherUser(t *testing.T) {
	mockDonations := mocks.NewMockDonationManager(t)
	handler := NewHandler(nil, mockDonations, nil, nil, testLogger())

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/donations/user/user-2", nil), "user-1")
	req = mux.SetURLVars(req, map[string]string{"userId": "user-2"})
	rec := httptest.NewRecorder()

	handler.UserDonations(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	mockDonations.AssertNotCalled(t, "ForUser")
}

func TestCancelRecurringDonation_NotFound(t *testing.T) {
	mockDonations := mocks.NewMockDonationManager(t)
	handler := NewHandler(nil, mockDonations, nil, nil, testLogger())

	mockDonations.On("CancelRecurring", mock.Anything, "sub_missing").
		Return(&service.ServiceError{Code: service.ErrCodeSubscriptionNotFound, Message: "subscription not found"})

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/donations/recurring/sub_missing/cancel", nil), "user-1")
	req = mux.SetURLVars(req, map[string]string{"subscriptionId": "sub_missing"})
	rec := httptest.NewRecorder()

	handler.CancelRecurringDonation(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelRecurringDonation_Success(t *testing.T) {
	mockDonations := mocks.NewMockDonationManager(t)
	handler := NewHandler(nil, mockDonations, nil, nil, testLogger())

	mockDonations.On("CancelRecurring", mock.Anything, "sub_1").Return(nil)

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/donations/recurring/sub_1/cancel", nil), "user-1")
	req = mux.SetURLVars(req, map[string]string{"subscriptionId": "sub_1"})
	rec := httptest.NewRecorder()

	handler.CancelRecurringDonation(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
}
