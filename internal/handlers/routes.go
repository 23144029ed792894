package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ctechrnd/payments-backend/internal/config"
	"github.com/ctechrnd/payments-backend/internal/db"
	"github.com/ctechrnd/payments-backend/internal/middleware"
	"github.com/ctechrnd/payments-backend/internal/notify"
	"github.com/ctechrnd/payments-backend/internal/processor"
	"github.com/ctechrnd/payments-backend/internal/repository"
	"github.com/ctechrnd/payments-backend/internal/service"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	card processor.CardProcessor,
	wallet processor.WalletProcessor,
	logger *slog.Logger,
) http.Handler {
	mailer := notify.NewMailer(cfg.SMTP, cfg.App, logger)

	paymentService := service.NewPaymentService(database, card, mailer, logger)
	donationService := service.NewDonationService(database, card, wallet, mailer, logger, cfg.App.BaseURL)
	webhookService := service.NewWebhookService(database, card, wallet, paymentService, donationService, logger)

	handler := NewHandler(paymentService, donationService, webhookService, database, logger)

	router := mux.NewRouter()
	router.HandleFunc("/health", handler.GetHealth).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// Webhooks authenticate by processor signature, receipts by resource id.
	api.HandleFunc("/payments/webhook", handler.CardWebhook).Methods(http.MethodPost)
	api.HandleFunc("/donations/webhook", handler.WalletWebhook).Methods(http.MethodPost)
	api.HandleFunc("/payments/{paymentId}/receipt", handler.PaymentReceipt).Methods(http.MethodGet)
	api.HandleFunc("/donations/{donationId}/receipt", handler.DonationReceipt).Methods(http.MethodGet)

	// Donations accept anonymous donors, so the one-off flow and the
	// public aggregates carry no auth.
	api.HandleFunc("/donations/create", handler.CreateDonation).Methods(http.MethodPost)
	api.HandleFunc("/donations/capture", handler.CaptureDonation).Methods(http.MethodPost)
	api.HandleFunc("/donations/summary", handler.DonationSummary).Methods(http.MethodGet)
	api.HandleFunc("/donations/leaderboard", handler.DonationLeaderboard).Methods(http.MethodGet)
	api.HandleFunc("/donations/statistics", handler.DonationStatistics).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(middleware.Auth(cfg.Auth.JWTSecret, logger))
	authed.HandleFunc("/payments/create-intent", handler.CreateIntent).Methods(http.MethodPost)
	authed.HandleFunc("/payments/confirm", handler.ConfirmPayment).Methods(http.MethodPost)
	authed.HandleFunc("/payments/stats", handler.PaymentStatistics).Methods(http.MethodGet)
	authed.HandleFunc("/payments/history/{userId}", handler.PaymentHistory).Methods(http.MethodGet)
	authed.HandleFunc("/payments/{paymentId}/refund", handler.RefundPayment).Methods(http.MethodPost)
	// Registered after the fixed-path payment routes so it cannot shadow them.
	authed.HandleFunc("/payments/{paymentIntentId}", handler.PaymentDetails).Methods(http.MethodGet)
	authed.HandleFunc("/donations/user/{userId}", handler.UserDonations).Methods(http.MethodGet)
	authed.HandleFunc("/donations/recurring/create", handler.CreateRecurringDonation).Methods(http.MethodPost)
	authed.HandleFunc("/donations/recurring/{subscriptionId}/cancel", handler.CancelRecurringDonation).Methods(http.MethodPost)

	idempotencyRepo := repository.NewIdempotencyRepository(database)

	var finalHandler http.Handler = router
	finalHandler = middleware.Idempotency(idempotencyRepo, logger)(finalHandler)

	return finalHandler
}
