package notify

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/ctechrnd/payments-backend/internal/models"
)

// PaymentReceiptPDF renders a PDF receipt for a payment. The invoice may be
// nil when none was issued yet.
func PaymentReceiptPDF(payment *models.Payment, invoice *models.Invoice, payerName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "Payment Receipt")
	pdf.Ln(16)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	if invoice != nil {
		row("Invoice", invoice.InvoiceNumber)
	}
	row("Payment ID", payment.ID.String())
	row("Transaction", payment.IntentRef)
	row("Billed to", payerName)
	row("Amount", fmt.Sprintf("%s %s", models.FormatAmount(payment.AmountCents), strings.ToUpper(payment.Currency)))
	row("Status", string(payment.Status))
	row("Date", payment.CreatedAt.Format("January 2, 2006"))

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.Cell(0, 6, "This receipt was generated automatically.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

type donationReceiptData struct {
	DonorName     string
	Amount        string
	Currency      string
	ReceiptNumber string
	Date          string
	Message       string
	QRDataURL     template.URL
	TaxDeductible bool
}

var donationReceiptTmpl = template.Must(template.New("donation_receipt").Parse(`<!DOCTYPE html>
<html>
<head><title>Donation Receipt {{.ReceiptNumber}}</title></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 640px; margin: 40px auto;">
  <h1 style="border-bottom: 2px solid #333; padding-bottom: 8px;">Donation Receipt</h1>
  <table style="border-collapse: collapse; width: 100%;">
    <tr><td style="padding: 8px 16px 8px 0;"><strong>Receipt number</strong></td><td>{{.ReceiptNumber}}</td></tr>
    <tr><td style="padding: 8px 16px 8px 0;"><strong>Donor</strong></td><td>{{.DonorName}}</td></tr>
    <tr><td style="padding: 8px 16px 8px 0;"><strong>Amount</strong></td><td>{{.Amount}} {{.Currency}}</td></tr>
    <tr><td style="padding: 8px 16px 8px 0;"><strong>Date</strong></td><td>{{.Date}}</td></tr>
    {{if .Message}}<tr><td style="padding: 8px 16px 8px 0;"><strong>Message</strong></td><td>{{.Message}}</td></tr>{{end}}
    {{if .TaxDeductible}}<tr><td style="padding: 8px 16px 8px 0;"><strong>Tax deductible</strong></td><td>This donation may be tax deductible. No goods or services were provided in exchange.</td></tr>{{end}}
  </table>
  <div style="margin-top: 32px;">
    <img src="{{.QRDataURL}}" alt="Verification QR code" width="160" height="160" />
    <p style="color: #777; font-size: 12px;">Scan to verify this receipt.</p>
  </div>
</body>
</html>`))

// DonationReceiptHTML renders an HTML receipt for a completed donation with
// a QR code linking back to the verification URL. Anonymous donations are
// masked.
func DonationReceiptHTML(donation *models.Donation, verifyURL string) ([]byte, error) {
	donorName := donation.DonorName
	if donation.Anonymous {
		donorName = "Anonymous Donor"
	}

	png, err := qrcode.Encode(verifyURL, qrcode.Medium, 160)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	data := donationReceiptData{
		DonorName:     donorName,
		Amount:        models.FormatAmount(donation.AmountCents),
		Currency:      strings.ToUpper(donation.Currency),
		ReceiptNumber: donationReceiptNumber(donation),
		Date:          donation.CreatedAt.Format("January 2, 2006"),
		Message:       donation.Message,
		TaxDeductible: donation.TaxDeductible,
		QRDataURL:     template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)),
	}

	var buf bytes.Buffer
	if err := donationReceiptTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}

	return buf.Bytes(), nil
}
