package notify

import (
	"bytes"
	"html/template"
)

type paymentConfirmationData struct {
	Name          string
	Amount        string
	Currency      string
	TransactionID string
	InvoiceNumber string
	Date          string
	AccountURL    string
	SupportEmail  string
}

var paymentConfirmationTmpl = template.Must(template.New("payment_confirmation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <h2>Payment received</h2>
  <p>Hi {{.Name}},</p>
  <p>We have received your payment. Thank you.</p>
  <table style="border-collapse: collapse; width: 100%;">
    <tr><td style="padding: 6px 12px 6px 0;"><strong>Amount</strong></td><td>{{.Amount}} {{.Currency}}</td></tr>
    <tr><td style="padding: 6px 12px 6px 0;"><strong>Transaction</strong></td><td>{{.TransactionID}}</td></tr>
    {{if .InvoiceNumber}}<tr><td style="padding: 6px 12px 6px 0;"><strong>Invoice</strong></td><td>{{.InvoiceNumber}}</td></tr>{{end}}
    <tr><td style="padding: 6px 12px 6px 0;"><strong>Date</strong></td><td>{{.Date}}</td></tr>
  </table>
  <p>You can review your payments any time in <a href="{{.AccountURL}}">your account</a>.</p>
  <p style="color: #777; font-size: 12px;">Questions? Contact us at {{.SupportEmail}}.</p>
</body>
</html>`))

func renderPaymentConfirmation(data paymentConfirmationData) (string, error) {
	var buf bytes.Buffer
	if err := paymentConfirmationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type donationThanksData struct {
	FirstName     string
	Amount        string
	Currency      string
	ReceiptNumber string
	Date          string
	SupportEmail  string
}

var donationThanksTmpl = template.Must(template.New("donation_thanks").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <h2>Thank you, {{.FirstName}}!</h2>
  <p>Your donation of <strong>{{.Amount}} {{.Currency}}</strong> was received on {{.Date}}.</p>
  <p>Your support keeps this work going. Keep this email for your records.</p>
  <table style="border-collapse: collapse;">
    <tr><td style="padding: 6px 12px 6px 0;"><strong>Receipt number</strong></td><td>{{.ReceiptNumber}}</td></tr>
  </table>
  <p style="color: #777; font-size: 12px;">Questions? Contact us at {{.SupportEmail}}.</p>
</body>
</html>`))

func renderDonationThanks(data donationThanksData) (string, error) {
	var buf bytes.Buffer
	if err := donationThanksTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
