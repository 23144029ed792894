package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ctechrnd/payments-backend/internal/models"
	"github.com/ctechrnd/payments-backend/internal/service"
	"github.com/ctechrnd/payments-backend/internal/service/mocks"
)

func TestCreateIntent_Success(t *testing.T) {
	mockPayments := mocks.NewMockPaymentManager(t)
	handler := NewHandler(mockPayments, nil, nil, nil, testLogger())

	mockPayments.On("CreateIntent", mock.Anything, service.CreateIntentInput{
		UserID:      "user-1",
		Email:       "buyer@example.com",
		ProductID:   "prod-1",
		ProductType: "subscription",
		Currency:    "usd",
		Amount:      19.99,
	}).Return(&service.CreateIntentResult{
		IntentID:     "pi_123",
		ClientSecret: "pi_123_secret",
		Currency:     "usd",
		AmountCents:  1999,
	}, nil)

	body := `{"email":"buyer@example.com","productId":"prod-1","productType":"subscription","currency":"usd","amount":19.99}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/payments/create-intent", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()

	handler.CreateIntent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp createIntentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pi_123", resp.PaymentIntentID)
	assert.Equal(t, "pi_123_secret", resp.ClientSecret)
	assert.InDelta(t, 19.99, resp.Amount, 0.001)
}

func TestCreateIntent_InvalidBody(t *testing.T) {
	mockPayments := mocks.NewMockPaymentManager(t)
	handler := NewHandler(mockPayments, nil, nil, nil, testLogger())

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/payments/create-intent", strings.NewReader("{not json")), "user-1")
	rec := httptest.NewRecorder()

	handler.CreateIntent(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockPayments.AssertNotCalled(t, "CreateIntent")
}

func TestConfirmPayment_ServiceErrors(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     *service.ServiceError
		expectedStatus int
	}{
		{"not found", &service.ServiceError{Code: service.ErrCodePaymentNotFound, Message: "payment not found"}, http.StatusNotFound},
		{"not succeeded", &service.ServiceError{Code: service.ErrCodeProcessorNotSucceeded, Message: "payment status: requires_payment_method"}, http.StatusBadRequest},
		{"processor failure", &service.ServiceError{Code: service.ErrCodeProcessorError, Message: "card declined"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPayments := mocks.NewMockPaymentManager(t)
			handler := NewHandler(mockPayments, nil, nil, nil, testLogger())

			mockPayments.On("Confirm", mock.Anything, "pi_123", "user-1").
				Return(nil, "", tt.serviceErr)

			req := asUser(httptest.NewRequest(http.MethodPost, "/api/payments/confirm",
				strings.NewReader(`{"paymentIntentId":"pi_123"}`)), "user-1")
			rec := httptest.NewRecorder()

			handler.ConfirmPayment(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.serviceErr.Code, resp.Error)
			assert.Equal(t, tt.serviceErr.Message, resp.Message)
		})
	}
}

func TestConfirmPayment_Success(t *testing.T) {
	mockPayments := mocks.NewMockPaymentManager(t)
	handler := NewHandler(mockPayments, nil, nil, nil, testLogger())

	paymentID := uuid.New()
	mockPayments.On("Confirm", mock.Anything, "pi_123", "user-1").
		Return(&models.Payment{
			ID:          paymentID,
			UserID:      "user-1",
			IntentRef:   "pi_123",
			AmountCents: 1999,
			Currency:    "usd",
			Status:      models.TransactionStatusCompleted,
			Method:      models.PaymentMethodStripe,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}, "INV-2026-AB12C", nil)

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/payments/confirm",
		strings.NewReader(`{"paymentIntentId":"pi_123"}`)), "user-1")
	rec := httptest.NewRecorder()

	handler.ConfirmPayment(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp confirmPaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, paymentID.String(), resp.PaymentID)
	assert.Equal(t, "INV-2026-AB12C", resp.InvoiceNumber)
	assert.Equal(t, "completed", resp.Status)
}

func TestPaymentHistory_ForbiddenForOtherUser(t *testing.T) {
	mockPayments := mocks.NewMockPaymentManager(t)
	handler := NewHandler(mockPayments, nil, nil, nil, testLogger())

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/payments/history/user-2", nil), "user-1")
	req = mux.SetURLVars(req, map[string]string{"userId": "user-2"})
	rec := httptest.NewRecorder()

	handler.PaymentHistory(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	mockPayments.AssertNotCalled(t, "History")
}

func TestPaymentHistory_Success(t *testing.T) {
	mockPayments := mocks.NewMockPaymentManager(t)
	handler := NewHandler(mockPayments, nil, nil, nil, testLogger())

	mockPayments.On("History", mock.Anything, "user-1", 5, 0).
		Return([]models.Payment{
			{ID: uuid.New(), UserID: "user-1", IntentRef: "pi_1", AmountCents: 1000, Status: models.TransactionStatusCompleted},
		}, int64(1), nil)

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/payments/history/user-1?limit=5", nil), "user-1")
	req = mux.SetURLVars(req, map[string]string{"userId": "user-1"})
	rec := httptest.NewRecorder()

	handler.PaymentHistory(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
	assert.Contains(t, rec.Body.String(), "pi_1")
}

func TestRefundPayment_InvalidID(t *testing.T) {
	handler := NewHandler(mocks.NewMockPaymentManager(t), nil, nil, nil, testLogger())

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/payments/not-a-uuid/refund",
		strings.NewReader(`{"reason":"requested"}`)), "user-1")
	req = mux.SetURLVars(req, map[string]string{"paymentId": "not-a-uuid"})
	rec := httptest.NewRecorder()

	handler.RefundPayment(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRefundPayment_Success(t *testing.T) {
	mockPayments := mocks.NewMockPaymentManager(t)
	handler := NewHandler(mockPayments, nil, nil, nil, testLogger())

	paymentID := uuid.New()

	mockPayments.On("Refund", mock.Anything, paymentID, "requested by customer", 5.0).
		Return(&models.Refund{
			ID:          uuid.New(),
			PaymentID:   paymentID,
			RefundRef:   "re_1",
			AmountCents: 500,
			Status:      "completed",
			CompletedAt: time.Now(),
		}, nil)

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/payments/"+paymentID.String()+"/refund",
		strings.NewReader(`{"reason":"requested by customer","amount":5.0}`)), "user-1")
	req = mux.SetURLVars(req, map[string]string{"paymentId": paymentID.String()})
	rec := httptest.NewRecorder()

	handler.RefundPayment(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp refundResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "re_1", resp.RefundRef)
	assert.InDelta(t, 5.0, resp.Amount, 0.001)
}

func TestPaymentReceipt_ReturnsPDF(t *testing.T) {
	mockPayments := mocks.NewMockPaymentManager(t)
	handler := NewHandler(mockPayments, nil, nil, nil, testLogger())

	paymentID := uuid.New()
	mockPayments.On("Receipt", mock.Anything, paymentID).
		Return([]byte("%PDF-1.3 fake"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/payments/"+paymentID.String()+"/receipt", nil)
	req = mux.SetURLVars(req, map[string]string{"paymentId": paymentID.String()})
	rec := httptest.NewRecorder()

	handler.PaymentReceipt(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
}

func TestPaymentStatistics_InvalidPeriod(t *testing.T) {
	mockPayments := mocks.NewMockPaymentManager(t)
	handler := NewHandler(mockPayments, nil, nil, nil, testLogger())

	mockPayments.On("Statistics", mock.Anything, "fortnight").
		Return(nil, &service.ServiceError{Code: service.ErrCodeInvalidInput, Message: "unknown period"})

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/payments/stats?period=fortnight", nil), "user-1")
	rec := httptest.NewRecorder()

	handler.PaymentStatistics(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
