package repository

import "github.com/ctechrnd/payments-backend/internal/db"

// Store bundles all repositories over a single Querier so services can run a
// group of writes inside one database transaction.
type Store struct {
	Payments      PaymentRepository
	Donations     DonationRepository
	Subscriptions SubscriptionRepository
	Invoices      InvoiceRepository
	Refunds       RefundRepository
	Events        EventRepository
	Users         UserRepository
	Audit         AuditLogRepository
}

// NewStore creates a Store whose repositories all share the given Querier,
// which may be a connection pool or an open transaction.
func NewStore(q db.Querier) Store {
	return Store{
		Payments:      NewPaymentRepository(q),
		Donations:     NewDonationRepository(q),
		Subscriptions: NewSubscriptionRepository(q),
		Invoices:      NewInvoiceRepository(q),
		Refunds:       NewRefundRepository(q),
		Events:        NewEventRepository(q),
		Users:         NewUserRepository(q),
		Audit:         NewAuditLogRepository(q),
	}
}
