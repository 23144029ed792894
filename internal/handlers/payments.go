package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ctechrnd/payments-backend/internal/middleware"
	"github.com/ctechrnd/payments-backend/internal/models"
	"github.com/ctechrnd/payments-backend/internal/service"
)

type createIntentRequest struct {
	Email       string  `json:"email"`
	ProductID   string  `json:"productId"`
	ProductType string  `json:"productType"`
	Currency    string  `json:"currency"`
	Amount      float64 `json:"amount"`
}

type createIntentResponse struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}

// CreateIntent handles POST /api/payments/create-intent
func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	caller := middleware.FromContext(r.Context())

	result, err := h.payments.CreateIntent(r.Context(), service.CreateIntentInput{
		UserID:      caller.UserID,
		Email:       req.Email,
		ProductID:   req.ProductID,
		ProductType: req.ProductType,
		Currency:    req.Currency,
		Amount:      req.Amount,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, createIntentResponse{
		PaymentIntentID: result.IntentID,
		ClientSecret:    result.ClientSecret,
		Amount:          models.Major(result.AmountCents),
		Currency:        result.Currency,
	})
}

type confirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
}

type confirmPaymentResponse struct {
	PaymentID     string `json:"paymentId"`
	InvoiceNumber string `json:"invoiceNumber"`
	Status        string `json:"status"`
}

// ConfirmPayment handles POST /api/payments/confirm
func (h *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req confirmPaymentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	caller := middleware.FromContext(r.Context())

	payment, invoiceNumber, err := h.payments.Confirm(r.Context(), req.PaymentIntentID, caller.UserID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, confirmPaymentResponse{
		PaymentID:     payment.ID.String(),
		InvoiceNumber: invoiceNumber,
		Status:        string(payment.Status),
	})
}

// PaymentHistory handles GET /api/payments/history/{userId}
func (h *Handler) PaymentHistory(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	caller := middleware.FromContext(r.Context())
	if caller.UserID != userID {
		h.respondJSON(w, http.StatusForbidden, errorResponse{
			Error:   "forbidden",
			Message: "cannot view another user's payments",
		})
		return
	}

	limit := queryInt(r, "limit", 0)
	offset := queryInt(r, "offset", 0)

	payments, total, err := h.payments.History(r.Context(), userID, limit, offset)
	if err != nil {
		h.respondError(w, err)
		return
	}

	items := make([]paymentResponse, 0, len(payments))
	for i := range payments {
		items = append(items, toPaymentResponse(&payments[i]))
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"payments": items,
		"total":    total,
	})
}

// PaymentDetails handles GET /api/payments/{paymentIntentId}
func (h *Handler) PaymentDetails(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["paymentIntentId"]

	details, err := h.payments.Details(r.Context(), ref)
	if err != nil {
		h.respondError(w, err)
		return
	}

	refunds := make([]refundResponse, 0, len(details.Refunds))
	for i := range details.Refunds {
		refunds = append(refunds, toRefundResponse(&details.Refunds[i]))
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"payment":         toPaymentResponse(details.Payment),
		"refunds":         refunds,
		"processorStatus": details.ProcessorStatus,
	})
}

type refundRequest struct {
	Reason string  `json:"reason"`
	Amount float64 `json:"amount"` // zero means full refund
}

// RefundPayment handles POST /api/payments/{paymentId}/refund
func (h *Handler) RefundPayment(w http.ResponseWriter, r *http.Request) {
	paymentID, err := uuid.Parse(mux.Vars(r)["paymentId"])
	if err != nil {
		h.respondJSON(w, http.StatusNotFound, errorResponse{
			Error:   service.ErrCodePaymentNotFound,
			Message: "payment not found",
		})
		return
	}

	var req refundRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	refund, err := h.payments.Refund(r.Context(), paymentID, req.Reason, req.Amount)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toRefundResponse(refund))
}

// PaymentStatistics handles GET /api/payments/stats
func (h *Handler) PaymentStatistics(w http.ResponseWriter, r *http.Request) {
	result, err := h.payments.Statistics(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	byMethod := make([]map[string]any, 0, len(result.ByMethod))
	for _, m := range result.ByMethod {
		byMethod = append(byMethod, map[string]any{
			"method": m.Method,
			"count":  m.Count,
			"total":  models.Major(m.TotalCents),
		})
	}
	byProduct := make([]map[string]any, 0, len(result.ByProduct))
	for _, p := range result.ByProduct {
		byProduct = append(byProduct, map[string]any{
			"productType": p.ProductType,
			"sales":       p.SalesCount,
			"revenue":     models.Major(p.RevenueCents),
		})
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"period": result.Period,
		"since":  result.Since.Format(time.RFC3339),
		"overall": map[string]any{
			"totalTransactions":     result.Stats.TotalTransactions,
			"completedTransactions": result.Stats.CompletedTransactions,
			"totalRevenue":          models.Major(result.Stats.TotalRevenueCents),
			"averageAmount":         models.Major(result.Stats.AverageCents),
			"minAmount":             models.Major(result.Stats.MinAmountCents),
			"maxAmount":             models.Major(result.Stats.MaxAmountCents),
			"uniqueCustomers":       result.Stats.UniqueCustomers,
		},
		"byMethod":  byMethod,
		"byProduct": byProduct,
	})
}

// PaymentReceipt handles GET /api/payments/{paymentId}/receipt
func (h *Handler) PaymentReceipt(w http.ResponseWriter, r *http.Request) {
	paymentID, err := uuid.Parse(mux.Vars(r)["paymentId"])
	if err != nil {
		h.respondJSON(w, http.StatusNotFound, errorResponse{
			Error:   service.ErrCodePaymentNotFound,
			Message: "payment not found",
		})
		return
	}

	pdf, err := h.payments.Receipt(r.Context(), paymentID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="receipt-%s.pdf"`, paymentID))
	if _, err := w.Write(pdf); err != nil {
		h.logger.Error("failed to write receipt", "error", err)
	}
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
