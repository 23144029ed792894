package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/plutov/paypal/v4"

	"github.com/ctechrnd/payments-backend/internal/models"
)

// PayPalClient implements WalletProcessor against the PayPal Orders API
type PayPalClient struct {
	client    *paypal.Client
	webhookID string
}

var _ WalletProcessor = (*PayPalClient)(nil)

// NewPayPalClient creates a PayPalClient and fetches an initial access token.
// mode selects the sandbox or live API base.
func NewPayPalClient(ctx context.Context, clientID, secret, mode, webhookID string) (*PayPalClient, error) {
	apiBase := paypal.APIBaseSandBox
	if mode == "live" {
		apiBase = paypal.APIBaseLive
	}

	c, err := paypal.NewClient(clientID, secret, apiBase)
	if err != nil {
		return nil, fmt.Errorf("paypal client: %w", err)
	}
	if _, err := c.GetAccessToken(ctx); err != nil {
		return nil, fmt.Errorf("paypal access token: %w", err)
	}

	return &PayPalClient{client: c, webhookID: webhookID}, nil
}

// CreateOrder creates a capture-intent order and returns the approval link.
// The orders API carries no payer block, so the donor email rides on the
// purchase unit's custom_id for reconciliation.
func (c *PayPalClient) CreateOrder(ctx context.Context, params WalletOrderParams) (*WalletOrder, error) {
	units := []paypal.PurchaseUnitRequest{
		{
			Amount: &paypal.PurchaseUnitAmount{
				Currency: strings.ToUpper(params.Currency),
				Value:    models.FormatAmount(params.AmountCents),
			},
			Description: params.Description,
			CustomID:    params.PayerEmail,
		},
	}

	source := &paypal.PaymentSource{
		Paypal: &paypal.PaymentSourcePaypal{
			ExperienceContext: paypal.PaymentSourcePaypalExperienceContext{
				ShippingPreference: string(paypal.ShippingPreferenceNoShipping),
				UserAction:         string(paypal.UserActionPayNow),
			},
		},
	}

	order, err := c.client.CreateOrder(ctx, paypal.OrderIntentCapture, units, source, nil)
	if err != nil {
		return nil, fmt.Errorf("paypal create order: %w", err)
	}

	return &WalletOrder{
		ID:          order.ID,
		Status:      order.Status,
		ApprovalURL: approvalLink(order.Links),
	}, nil
}

// CaptureOrder finalizes an approved order into a completed charge
func (c *PayPalClient) CaptureOrder(ctx context.Context, orderID string) (*WalletCapture, error) {
	resp, err := c.client.CaptureOrder(ctx, orderID, paypal.CaptureOrderRequest{})
	if err != nil {
		return nil, fmt.Errorf("paypal capture order: %w", err)
	}

	capture := &WalletCapture{
		OrderID: orderID,
		Status:  resp.Status,
	}
	for _, unit := range resp.PurchaseUnits {
		if unit.Payments == nil {
			continue
		}
		for _, c := range unit.Payments.Captures {
			capture.TransactionID = c.ID
			break
		}
	}

	return capture, nil
}

// VerifyEvent validates the webhook signature with the processor and decodes
// the event payload.
func (c *PayPalClient) VerifyEvent(ctx context.Context, req *http.Request, payload []byte) (*WalletEvent, error) {
	verification, err := c.client.VerifyWebhookSignature(ctx, req, c.webhookID)
	if err != nil {
		return nil, fmt.Errorf("paypal webhook verification: %w", err)
	}
	if verification.VerificationStatus != "SUCCESS" {
		return nil, fmt.Errorf("paypal webhook verification status: %s", verification.VerificationStatus)
	}

	return ParseWalletEvent(payload)
}

// ParseWalletEvent decodes an already verified wallet webhook payload
func ParseWalletEvent(payload []byte) (*WalletEvent, error) {
	var body struct {
		ID        string `json:"id"`
		EventType string `json:"event_type"`
		Resource  struct {
			ID                string `json:"id"`
			SupplementaryData struct {
				RelatedIDs struct {
					OrderID string `json:"order_id"`
				} `json:"related_ids"`
			} `json:"supplementary_data"`
		} `json:"resource"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("paypal webhook payload: %w", err)
	}
	if body.ID == "" || body.EventType == "" {
		return nil, fmt.Errorf("paypal webhook payload missing id or event_type")
	}

	return &WalletEvent{
		ID:       body.ID,
		Type:     body.EventType,
		OrderRef: body.Resource.SupplementaryData.RelatedIDs.OrderID,
		Resource: body.Resource.ID,
		Payload:  payload,
	}, nil
}

func approvalLink(links []paypal.Link) string {
	for _, link := range links {
		if link.Rel == "approve" {
			return link.Href
		}
	}
	return ""
}
