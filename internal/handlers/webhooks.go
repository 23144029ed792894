package handlers

import (
	"bytes"
	"io"
	"net/http"
)

// webhookBodyLimit guards against oversized processor payloads.
const webhookBodyLimit = 1 << 20

// CardWebhook handles POST /api/payments/webhook. The raw body is needed
// for signature verification, so it is read before any decoding.
func (h *Handler) CardWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, webhookBodyLimit))
	if err != nil {
		h.logger.Error("failed to read webhook body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.webhooks.HandleCardEvent(r.Context(), payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"received": true})
}

// WalletWebhook handles POST /api/donations/webhook. The body is restored
// after reading because the wallet processor's verification call consumes
// the request again.
func (h *Handler) WalletWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, webhookBodyLimit))
	if err != nil {
		h.logger.Error("failed to read webhook body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewReader(payload))

	err = h.webhooks.HandleWalletEvent(r.Context(), r, payload)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]bool{"received": true})
}
