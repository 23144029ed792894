package service

import (
	"io"
	"log/slog"

	"github.com/ctechrnd/payments-backend/internal/models"
)

// recordingNotifier counts delivery attempts without sending anything
type recordingNotifier struct {
	payments  int
	donations int
}

func (n *recordingNotifier) SendPaymentConfirmation(email, name string, payment *models.Payment, invoiceNumber string) error {
	n.payments++
	return nil
}

func (n *recordingNotifier) SendDonationThanks(donation *models.Donation) error {
	n.donations++
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
