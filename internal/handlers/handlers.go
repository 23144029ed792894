// Package handlers implements the HTTP API for payments and donations.
package handlers

import (
	"context"
	"log/slog"

	"github.com/ctechrnd/payments-backend/internal/service"
)

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Handler holds the service dependencies for all endpoints
type Handler struct {
	payments      service.PaymentManager
	donations     service.DonationManager
	webhooks      service.WebhookHandler
	healthChecker HealthChecker
	logger        *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	payments service.PaymentManager,
	donations service.DonationManager,
	webhooks service.WebhookHandler,
	healthChecker HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		payments:      payments,
		donations:     donations,
		webhooks:      webhooks,
		healthChecker: healthChecker,
		logger:        logger,
	}
}
