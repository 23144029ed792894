package processor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/plutov/paypal/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWalletEvent(t *testing.T) {
	t.Run("capture completed event", func(t *testing.T) {
		payload := []byte(`{
			"id": "WH-58D329510W468432D-8HN650336L201105X",
			"event_type": "PAYMENT.CAPTURE.COMPLETED",
			"resource": {
				"id": "4TH55786XY1682839",
				"supplementary_data": {
					"related_ids": {"order_id": "5O190127TN364715T"}
				}
			}
		}`)

		event, err := ParseWalletEvent(payload)
		require.NoError(t, err)
		assert.Equal(t, "WH-58D329510W468432D-8HN650336L201105X", event.ID)
		assert.Equal(t, "PAYMENT.CAPTURE.COMPLETED", event.Type)
		assert.Equal(t, "5O190127TN364715T", event.OrderRef)
		assert.Equal(t, "4TH55786XY1682839", event.Resource)
	})

	t.Run("missing event type", func(t *testing.T) {
		_, err := ParseWalletEvent([]byte(`{"id": "WH-123"}`))
		assert.Error(t, err)
	})

	t.Run("malformed payload", func(t *testing.T) {
		_, err := ParseWalletEvent([]byte(`not json`))
		assert.Error(t, err)
	})
}

func TestApprovalLink(t *testing.T) {
	links := []paypal.Link{
		{Href: "https://api.sandbox.paypal.com/v2/checkout/orders/5O1", Rel: "self"},
		{Href: "https://www.sandbox.paypal.com/checkoutnow?token=5O1", Rel: "approve"},
	}

	assert.Equal(t, "https://www.sandbox.paypal.com/checkoutnow?token=5O1", approvalLink(links))
	assert.Empty(t, approvalLink(links[:1]))
}

func TestPayPalClient_CreateOrder(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/checkout/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "5O190127TN364715T",
			"status": "CREATED",
			"links": [
				{"href": "https://api.sandbox.paypal.com/v2/checkout/orders/5O1", "rel": "self"},
				{"href": "https://www.sandbox.paypal.com/checkoutnow?token=5O1", "rel": "approve"}
			]
		}`))
	}))
	defer server.Close()

	sdk, err := paypal.NewClient("client-id", "client-secret", server.URL)
	require.NoError(t, err)
	sdk.SetAccessToken("test-token")

	client := &PayPalClient{client: sdk}

	order, err := client.CreateOrder(context.Background(), WalletOrderParams{
		AmountCents: 2500,
		Currency:    "usd",
		Description: "Donation",
		PayerEmail:  "jane@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "5O190127TN364715T", order.ID)
	assert.Equal(t, "CREATED", order.Status)
	assert.Equal(t, "https://www.sandbox.paypal.com/checkoutnow?token=5O1", order.ApprovalURL)

	assert.Equal(t, "CAPTURE", gotBody["intent"])

	units, ok := gotBody["purchase_units"].([]any)
	require.True(t, ok)
	require.Len(t, units, 1)
	unit := units[0].(map[string]any)
	amount := unit["amount"].(map[string]any)
	assert.Equal(t, "USD", amount["currency_code"])
	assert.Equal(t, "25.00", amount["value"])
	assert.Equal(t, "jane@example.com", unit["custom_id"])

	source, ok := gotBody["payment_source"].(map[string]any)
	require.True(t, ok)
	expCtx := source["paypal"].(map[string]any)["experience_context"].(map[string]any)
	assert.Equal(t, "NO_SHIPPING", expCtx["shipping_preference"])
	assert.Equal(t, "PAY_NOW", expCtx["user_action"])
}
