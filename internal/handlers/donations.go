package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ctechrnd/payments-backend/internal/middleware"
	"github.com/ctechrnd/payments-backend/internal/models"
	"github.com/ctechrnd/payments-backend/internal/service"
)

type createDonationRequest struct {
	DonorName     string  `json:"donorName"`
	DonorEmail    string  `json:"donorEmail"`
	Currency      string  `json:"currency"`
	Method        string  `json:"paymentMethod"`
	Message       string  `json:"message"`
	SourceToken   string  `json:"sourceToken"`
	Amount        float64 `json:"amount"`
	Anonymous     bool    `json:"anonymous"`
	TaxDeductible bool    `json:"taxDeductible"`
}

// CreateDonation handles POST /api/donations/create. Donations are open to
// anonymous callers; an authenticated caller is linked to the donation.
func (h *Handler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var req createDonationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	var userID *string
	if caller := middleware.FromContext(r.Context()); caller.Authenticated {
		userID = &caller.UserID
	}

	result, err := h.donations.Create(r.Context(), service.CreateDonationInput{
		UserID:        userID,
		DonorName:     req.DonorName,
		DonorEmail:    req.DonorEmail,
		Currency:      req.Currency,
		Method:        req.Method,
		Message:       req.Message,
		SourceToken:   req.SourceToken,
		Amount:        req.Amount,
		Anonymous:     req.Anonymous,
		TaxDeductible: req.TaxDeductible,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	response := map[string]any{
		"donation": toDonationResponse(result.Donation),
	}
	if result.OrderID != "" {
		response["orderId"] = result.OrderID
		response["approvalUrl"] = result.ApprovalURL
	}

	h.respondJSON(w, http.StatusCreated, response)
}

type captureDonationRequest struct {
	OrderID string `json:"orderId"`
}

type captureDonationResponse struct {
	DonationID    string `json:"donationId"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
}

// CaptureDonation handles POST /api/donations/capture
func (h *Handler) CaptureDonation(w http.ResponseWriter, r *http.Request) {
	var req captureDonationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	donation, err := h.donations.Capture(r.Context(), req.OrderID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	response := captureDonationResponse{
		DonationID: donation.ID.String(),
		Status:     string(donation.Status),
	}
	if donation.TransactionRef != nil {
		response.TransactionID = *donation.TransactionRef
	}

	h.respondJSON(w, http.StatusOK, response)
}

// DonationSummary handles GET /api/donations/summary
func (h *Handler) DonationSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.donations.Summary(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"totalDonations":  summary.TotalDonations,
		"totalAmount":     models.Major(summary.TotalCents),
		"averageAmount":   models.Major(summary.AverageCents),
		"largestAmount":   models.Major(summary.LargestCents),
		"uniqueDonors":    summary.UniqueDonors,
		"publicDonations": summary.PublicDonations,
	})
}

// DonationLeaderboard handles GET /api/donations/leaderboard
func (h *Handler) DonationLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.donations.Leaderboard(r.Context(), queryInt(r, "limit", 0))
	if err != nil {
		h.respondError(w, err)
		return
	}

	items := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		items = append(items, map[string]any{
			"donorName":     e.DonorName,
			"totalAmount":   models.Major(e.TotalCents),
			"donationCount": e.DonationCount,
			"lastDonation":  e.LastDonation.Format(time.RFC3339),
		})
	}

	h.respondJSON(w, http.StatusOK, map[string]any{"leaderboard": items})
}

// DonationStatistics handles GET /api/donations/statistics
func (h *Handler) DonationStatistics(w http.ResponseWriter, r *http.Request) {
	result, err := h.donations.Statistics(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	daily := make([]map[string]any, 0, len(result.Daily))
	for _, d := range result.Daily {
		daily = append(daily, map[string]any{
			"date":          d.Date,
			"count":         d.Count,
			"totalAmount":   models.Major(d.TotalCents),
			"averageAmount": models.Major(d.AverageCents),
		})
	}
	byMethod := make([]map[string]any, 0, len(result.ByMethod))
	for _, m := range result.ByMethod {
		byMethod = append(byMethod, map[string]any{
			"method": m.Method,
			"count":  m.Count,
			"total":  models.Major(m.TotalCents),
		})
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"period":   result.Period,
		"since":    result.Since.Format(time.RFC3339),
		"daily":    daily,
		"byMethod": byMethod,
	})
}

// UserDonations handles GET /api/donations/user/{userId}
func (h *Handler) UserDonations(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	caller := middleware.FromContext(r.Context())
	if caller.UserID != userID {
		h.respondJSON(w, http.StatusForbidden, errorResponse{
			Error:   "forbidden",
			Message: "cannot view another user's donations",
		})
		return
	}

	limit := queryInt(r, "limit", 0)
	offset := queryInt(r, "offset", 0)

	donations, totalCents, err := h.donations.ForUser(r.Context(), userID, limit, offset)
	if err != nil {
		h.respondError(w, err)
		return
	}

	items := make([]donationResponse, 0, len(donations))
	for i := range donations {
		items = append(items, toDonationResponse(&donations[i]))
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"donations":   items,
		"totalAmount": models.Major(totalCents),
	})
}

type recurringDonationRequest struct {
	DonorName  string  `json:"donorName"`
	DonorEmail string  `json:"donorEmail"`
	Currency   string  `json:"currency"`
	Method     string  `json:"paymentMethod"`
	Interval   string  `json:"interval"`
	Amount     float64 `json:"amount"`
}

// CreateRecurringDonation handles POST /api/donations/recurring/create
func (h *Handler) CreateRecurringDonation(w http.ResponseWriter, r *http.Request) {
	var req recurringDonationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	var userID *string
	if caller := middleware.FromContext(r.Context()); caller.Authenticated {
		userID = &caller.UserID
	}

	result, err := h.donations.CreateRecurring(r.Context(), service.RecurringDonationInput{
		UserID:     userID,
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		Currency:   req.Currency,
		Method:     req.Method,
		Interval:   req.Interval,
		Amount:     req.Amount,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]any{
		"subscriptionId": result.SubscriptionID,
		"clientSecret":   result.ClientSecret,
	})
}

// CancelRecurringDonation handles POST /api/donations/recurring/{subscriptionId}/cancel
func (h *Handler) CancelRecurringDonation(w http.ResponseWriter, r *http.Request) {
	subscriptionID := mux.Vars(r)["subscriptionId"]

	if err := h.donations.CancelRecurring(r.Context(), subscriptionID); err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"subscriptionId": subscriptionID,
		"status":         string(models.SubscriptionStatusCancelled),
	})
}

// DonationReceipt handles GET /api/donations/{donationId}/receipt
func (h *Handler) DonationReceipt(w http.ResponseWriter, r *http.Request) {
	donationID, err := uuid.Parse(mux.Vars(r)["donationId"])
	if err != nil {
		h.respondJSON(w, http.StatusNotFound, errorResponse{
			Error:   service.ErrCodeDonationNotFound,
			Message: "donation not found",
		})
		return
	}

	receipt, err := h.donations.Receipt(r.Context(), donationID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(receipt); err != nil {
		h.logger.Error("failed to write receipt", "error", err)
	}
}
