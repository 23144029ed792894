package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// StripeClient implements CardProcessor against the Stripe API
type StripeClient struct {
	api           *client.API
	webhookSecret string
}

var _ CardProcessor = (*StripeClient)(nil)

// NewStripeClient creates a StripeClient with the given credentials
func NewStripeClient(secretKey, webhookSecret string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeClient{
		api:           api,
		webhookSecret: webhookSecret,
	}
}

// CreateIntent creates a payment intent for client-side confirmation
func (c *StripeClient) CreateIntent(ctx context.Context, params CreateIntentParams) (*CardIntent, error) {
	piParams := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(params.AmountCents),
		Currency: stripe.String(strings.ToLower(params.Currency)),
	}
	piParams.Context = ctx
	if params.Description != "" {
		piParams.Description = stripe.String(params.Description)
	}
	if params.ReceiptEmail != "" {
		piParams.ReceiptEmail = stripe.String(params.ReceiptEmail)
	}
	for k, v := range params.Metadata {
		piParams.AddMetadata(k, v)
	}

	pi, err := c.api.PaymentIntents.New(piParams)
	if err != nil {
		return nil, fmt.Errorf("stripe create intent: %w", err)
	}

	return intentFromStripe(pi), nil
}

// GetIntent retrieves the authoritative state of a payment intent
func (c *StripeClient) GetIntent(ctx context.Context, id string) (*CardIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := c.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("stripe get intent: %w", err)
	}

	return intentFromStripe(pi), nil
}

func intentFromStripe(pi *stripe.PaymentIntent) *CardIntent {
	return &CardIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Currency:     strings.ToUpper(string(pi.Currency)),
		AmountCents:  pi.Amount,
	}
}

// Charge captures a card payment synchronously from a tokenized source
func (c *StripeClient) Charge(ctx context.Context, params ChargeParams) (*CardCharge, error) {
	chParams := &stripe.ChargeParams{
		Amount:   stripe.Int64(params.AmountCents),
		Currency: stripe.String(strings.ToLower(params.Currency)),
	}
	chParams.Context = ctx
	if params.Description != "" {
		chParams.Description = stripe.String(params.Description)
	}
	if params.ReceiptEmail != "" {
		chParams.ReceiptEmail = stripe.String(params.ReceiptEmail)
	}
	for k, v := range params.Metadata {
		chParams.AddMetadata(k, v)
	}
	if err := chParams.SetSource(params.SourceToken); err != nil {
		return nil, fmt.Errorf("stripe charge source: %w", err)
	}

	ch, err := c.api.Charges.New(chParams)
	if err != nil {
		return nil, fmt.Errorf("stripe charge: %w", err)
	}

	return &CardCharge{ID: ch.ID, Status: string(ch.Status)}, nil
}

// Refund refunds a captured intent, partially or in full
func (c *StripeClient) Refund(ctx context.Context, intentRef string, amountCents int64, reason string) (*CardRefund, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(intentRef),
		Amount:        stripe.Int64(amountCents),
	}
	params.Context = ctx
	if reason != "" {
		params.AddMetadata("reason", reason)
	}

	ref, err := c.api.Refunds.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe refund: %w", err)
	}

	return &CardRefund{ID: ref.ID, Status: string(ref.Status)}, nil
}

// CreateRecurring sets up a customer, a recurring price and an incomplete
// subscription to be activated by the first client-side payment.
func (c *StripeClient) CreateRecurring(ctx context.Context, params RecurringParams) (*RecurringSubscription, error) {
	custParams := &stripe.CustomerParams{
		Email: stripe.String(params.Email),
		Name:  stripe.String(params.Name),
	}
	custParams.Context = ctx

	cust, err := c.api.Customers.New(custParams)
	if err != nil {
		return nil, fmt.Errorf("stripe create customer: %w", err)
	}

	priceParams := &stripe.PriceParams{
		UnitAmount: stripe.Int64(params.AmountCents),
		Currency:   stripe.String(strings.ToLower(params.Currency)),
		Recurring: &stripe.PriceRecurringParams{
			Interval:      stripe.String(params.Interval),
			IntervalCount: stripe.Int64(params.IntervalQty),
		},
		ProductData: &stripe.PriceProductDataParams{
			Name: stripe.String(params.Description),
		},
	}
	priceParams.Context = ctx

	price, err := c.api.Prices.New(priceParams)
	if err != nil {
		return nil, fmt.Errorf("stripe create price: %w", err)
	}

	subParams := &stripe.SubscriptionParams{
		Customer: stripe.String(cust.ID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(price.ID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
		PaymentSettings: &stripe.SubscriptionPaymentSettingsParams{
			SaveDefaultPaymentMethod: stripe.String("on_subscription"),
		},
	}
	subParams.Context = ctx
	subParams.AddExpand("latest_invoice.payment_intent")

	sub, err := c.api.Subscriptions.New(subParams)
	if err != nil {
		return nil, fmt.Errorf("stripe create subscription: %w", err)
	}

	result := &RecurringSubscription{
		ID:         sub.ID,
		CustomerID: cust.ID,
	}
	if sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		result.ClientSecret = sub.LatestInvoice.PaymentIntent.ClientSecret
	}

	return result, nil
}

// CancelSubscription cancels a recurring subscription immediately
func (c *StripeClient) CancelSubscription(ctx context.Context, subscriptionRef string) error {
	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx

	if _, err := c.api.Subscriptions.Cancel(subscriptionRef, params); err != nil {
		return fmt.Errorf("stripe cancel subscription: %w", err)
	}

	return nil
}

// VerifyEvent checks the webhook signature and extracts the event
func (c *StripeClient) VerifyEvent(payload []byte, signatureHeader string) (*CardEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, c.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("stripe webhook verification: %w", err)
	}

	return cardEventFromStripe(event), nil
}

func cardEventFromStripe(event stripe.Event) *CardEvent {
	ce := &CardEvent{
		ID:      event.ID,
		Type:    string(event.Type),
		Payload: event.Data.Raw,
	}

	var object struct {
		ID            string `json:"id"`
		PaymentIntent string `json:"payment_intent"`
	}
	if err := json.Unmarshal(event.Data.Raw, &object); err == nil {
		ce.ObjectRef = object.ID
		ce.IntentRef = object.PaymentIntent
		if ce.IntentRef == "" {
			// payment_intent.* events carry the intent as the object itself
			ce.IntentRef = object.ID
		}
	}

	return ce
}
