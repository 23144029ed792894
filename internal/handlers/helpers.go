package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ctechrnd/payments-backend/internal/models"
	"github.com/ctechrnd/payments-backend/internal/service"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// respondError maps service errors onto the HTTP surface. Anything that is
// not a ServiceError is an internal failure and surfaces no detail.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	svcErr := extractServiceError(err)
	if svcErr == nil {
		h.logger.Error("unexpected error", "error", err)
		h.respondJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   service.ErrCodeInternalError,
			Message: "internal error",
		})
		return
	}

	h.respondJSON(w, statusForCode(svcErr.Code), errorResponse{
		Error:   svcErr.Code,
		Message: svcErr.Message,
	})
}

func statusForCode(code string) int {
	switch code {
	case service.ErrCodeInvalidInput,
		service.ErrCodeInvalidPaymentMethod,
		service.ErrCodeProcessorError,
		service.ErrCodeProcessorNotSucceeded,
		service.ErrCodeCaptureIncomplete,
		service.ErrCodeSignatureInvalid:
		return http.StatusBadRequest
	case service.ErrCodePaymentNotFound,
		service.ErrCodeDonationNotFound,
		service.ErrCodeSubscriptionNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondJSON(w, http.StatusBadRequest, errorResponse{
			Error:   service.ErrCodeInvalidInput,
			Message: "invalid request body",
		})
		return false
	}
	return true
}

// Wire types. Persistence models carry db tags only; the JSON shape of the
// API is defined here.

type paymentResponse struct {
	ID              string  `json:"id"`
	PaymentIntentID string  `json:"paymentIntentId"`
	UserID          string  `json:"userId"`
	ProductID       string  `json:"productId"`
	ProductType     string  `json:"productType"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Status          string  `json:"status"`
	Method          string  `json:"paymentMethod"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

func toPaymentResponse(p *models.Payment) paymentResponse {
	return paymentResponse{
		ID:              p.ID.String(),
		PaymentIntentID: p.IntentRef,
		UserID:          p.UserID,
		ProductID:       p.ProductID,
		ProductType:     p.ProductType,
		Amount:          models.Major(p.AmountCents),
		Currency:        p.Currency,
		Status:          string(p.Status),
		Method:          string(p.Method),
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.Format(time.RFC3339),
	}
}

type donationResponse struct {
	ID            string  `json:"id"`
	DonorName     string  `json:"donorName"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	Method        string  `json:"paymentMethod"`
	Message       string  `json:"message,omitempty"`
	Anonymous     bool    `json:"anonymous"`
	TaxDeductible bool    `json:"taxDeductible"`
	CreatedAt     string  `json:"createdAt"`
}

func toDonationResponse(d *models.Donation) donationResponse {
	name := d.DonorName
	if d.Anonymous {
		name = "Anonymous Donor"
	}
	return donationResponse{
		ID:            d.ID.String(),
		DonorName:     name,
		Amount:        models.Major(d.AmountCents),
		Currency:      d.Currency,
		Status:        string(d.Status),
		Method:        string(d.Method),
		Message:       d.Message,
		Anonymous:     d.Anonymous,
		TaxDeductible: d.TaxDeductible,
		CreatedAt:     d.CreatedAt.Format(time.RFC3339),
	}
}

type refundResponse struct {
	ID          string  `json:"id"`
	PaymentID   string  `json:"paymentId"`
	RefundRef   string  `json:"refundId"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Reason      string  `json:"reason,omitempty"`
	CompletedAt string  `json:"completedAt"`
}

func toRefundResponse(r *models.Refund) refundResponse {
	return refundResponse{
		ID:          r.ID.String(),
		PaymentID:   r.PaymentID.String(),
		RefundRef:   r.RefundRef,
		Amount:      models.Major(r.AmountCents),
		Status:      r.Status,
		Reason:      r.Reason,
		CompletedAt: r.CompletedAt.Format(time.RFC3339),
	}
}
