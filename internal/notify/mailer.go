// Package notify delivers receipt emails over SMTP and renders payment and
// donation receipts. Delivery is best effort; callers log failures and
// never surface them to API clients.
package notify

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"github.com/ctechrnd/payments-backend/internal/config"
	"github.com/ctechrnd/payments-backend/internal/models"
)

// Mailer sends transactional email through a single SMTP relay
type Mailer struct {
	smtpCfg config.SMTPConfig
	appCfg  config.AppConfig
	logger  *slog.Logger
}

// NewMailer creates a new Mailer
func NewMailer(smtpCfg config.SMTPConfig, appCfg config.AppConfig, logger *slog.Logger) *Mailer {
	return &Mailer{
		smtpCfg: smtpCfg,
		appCfg:  appCfg,
		logger:  logger,
	}
}

// SendPaymentConfirmation emails the payer after a payment settles
func (m *Mailer) SendPaymentConfirmation(email, name string, payment *models.Payment, invoiceNumber string) error {
	body, err := renderPaymentConfirmation(paymentConfirmationData{
		Name:          name,
		Amount:        models.FormatAmount(payment.AmountCents),
		Currency:      strings.ToUpper(payment.Currency),
		TransactionID: payment.IntentRef,
		InvoiceNumber: invoiceNumber,
		Date:          time.Now().Format("January 2, 2006"),
		AccountURL:    fmt.Sprintf("%s/account/billing", m.appCfg.BaseURL),
		SupportEmail:  m.appCfg.SupportEmail,
	})
	if err != nil {
		return fmt.Errorf("render payment confirmation: %w", err)
	}

	return m.send(email, "Your payment confirmation", body)
}

// SendDonationThanks emails the donor after a donation completes
func (m *Mailer) SendDonationThanks(donation *models.Donation) error {
	body, err := renderDonationThanks(donationThanksData{
		FirstName:     firstName(donation.DonorName),
		Amount:        models.FormatAmount(donation.AmountCents),
		Currency:      strings.ToUpper(donation.Currency),
		ReceiptNumber: donationReceiptNumber(donation),
		Date:          time.Now().Format("January 2, 2006"),
		SupportEmail:  m.appCfg.SupportEmail,
	})
	if err != nil {
		return fmt.Errorf("render donation thanks: %w", err)
	}

	return m.send(donation.DonorEmail, "Thank you for your donation", body)
}

func (m *Mailer) send(to, subject, body string) error {
	var auth smtp.Auth
	if m.smtpCfg.Username != "" && m.smtpCfg.Password != "" {
		auth = smtp.PlainAuth("", m.smtpCfg.Username, m.smtpCfg.Password, m.smtpCfg.Host)
	}

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", m.smtpCfg.From, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	if err := smtp.SendMail(m.smtpCfg.Addr(), auth, m.smtpCfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}

	m.logger.Info("email sent", "to", to, "subject", subject)
	return nil
}

func firstName(full string) string {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "Friend"
	}
	return parts[0]
}

// donationReceiptNumber derives the receipt number shown on donor-facing
// documents from the donation id.
func donationReceiptNumber(donation *models.Donation) string {
	return fmt.Sprintf("RCP-%s", donation.ID)
}
