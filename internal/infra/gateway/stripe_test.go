//go:build unit

package gateway

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"commission-tracker/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

const testWebhookSecret = "whsec_test_secret"

type fakeSessions struct {
	got     *stripe.CheckoutSessionParams
	session *stripe.CheckoutSession
	err     error
}

func (f *fakeSessions) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.got = params
	return f.session, f.err
}

func TestCreateCheckoutSession(t *testing.T) {
	purchaseID := uuid.New()
	sessions := &fakeSessions{session: &stripe.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/cs_test_1"}}
	gw := NewStripeGatewayWith(sessions, testWebhookSecret)

	got, err := gw.CreateCheckoutSession(context.Background(), commands.CheckoutRequest{
		AmountMinorUnits: 4999,
		Currency:         "eur",
		ProductName:      "Protezione Antivirus Premium",
		Description:      "Serial SN-0001",
		CustomerEmail:    "mario@example.com",
		SuccessURL:       "http://localhost:3000/purchase/abc/success",
		CancelURL:        "http://localhost:3000/purchase/abc/cancel",
		Reference:        purchaseID.String(),
	})

	require.NoError(t, err)
	assert.Equal(t, &commands.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/cs_test_1"}, got)

	p := sessions.got
	require.NotNil(t, p)
	assert.Equal(t, "payment", *p.Mode)
	assert.Equal(t, purchaseID.String(), *p.ClientReferenceID)
	assert.Equal(t, purchaseID.String(), p.Metadata[purchaseIDMetadataKey])
	require.Len(t, p.LineItems, 1)
	assert.Equal(t, int64(4999), *p.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, "eur", *p.LineItems[0].PriceData.Currency)
	assert.Equal(t, int64(1), *p.LineItems[0].Quantity)
	assert.Equal(t, "mario@example.com", *p.CustomerEmail)
}

func TestCreateCheckoutSession_Errors(t *testing.T) {
	t.Run("gateway error", func(t *testing.T) {
		gw := NewStripeGatewayWith(&fakeSessions{err: &stripe.Error{Msg: "card_declined"}}, testWebhookSecret)
		_, err := gw.CreateCheckoutSession(context.Background(), commands.CheckoutRequest{})
		assert.Error(t, err)
	})

	t.Run("session without url", func(t *testing.T) {
		gw := NewStripeGatewayWith(&fakeSessions{session: &stripe.CheckoutSession{ID: "cs_1"}}, testWebhookSecret)
		_, err := gw.CreateCheckoutSession(context.Background(), commands.CheckoutRequest{})
		assert.ErrorIs(t, err, ErrEmptySession)
	})
}

func signedEvent(t *testing.T, eventType string, session map[string]any) ([]byte, string) {
	t.Helper()
	raw, err := json.Marshal(session)
	require.NoError(t, err)

	payload, err := json.Marshal(map[string]any{
		"id":          "evt_test_1",
		"object":      "event",
		"type":        eventType,
		"api_version": "2020-08-27",
		"data":        map[string]any{"object": json.RawMessage(raw)},
	})
	require.NoError(t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})
	return signed.Payload, signed.Header
}

func TestParseEvent(t *testing.T) {
	purchaseID := uuid.New()
	gw := NewStripeGatewayWith(&fakeSessions{}, testWebhookSecret)

	tests := []struct {
		name     string
		typ      string
		session  map[string]any
		wantKind commands.PaymentEventKind
		wantID   uuid.UUID
	}{
		{
			name:     "completed and paid",
			typ:      "checkout.session.completed",
			session:  map[string]any{"id": "cs_1", "object": "checkout.session", "payment_status": "paid", "client_reference_id": purchaseID.String()},
			wantKind: commands.PaymentSucceeded,
			wantID:   purchaseID,
		},
		{
			name:     "completed but unpaid waits for async result",
			typ:      "checkout.session.completed",
			session:  map[string]any{"id": "cs_1", "object": "checkout.session", "payment_status": "unpaid", "client_reference_id": purchaseID.String()},
			wantKind: commands.PaymentIgnored,
			wantID:   purchaseID,
		},
		{
			name:     "async success falls back to metadata",
			typ:      "checkout.session.async_payment_succeeded",
			session:  map[string]any{"id": "cs_1", "object": "checkout.session", "metadata": map[string]string{"purchase_id": purchaseID.String()}},
			wantKind: commands.PaymentSucceeded,
			wantID:   purchaseID,
		},
		{
			name:     "expired",
			typ:      "checkout.session.expired",
			session:  map[string]any{"id": "cs_1", "object": "checkout.session", "client_reference_id": purchaseID.String()},
			wantKind: commands.PaymentFailed,
			wantID:   purchaseID,
		},
		{
			name:     "unrelated event",
			typ:      "customer.created",
			session:  map[string]any{"id": "cus_1", "object": "customer"},
			wantKind: commands.PaymentIgnored,
			wantID:   uuid.Nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, header := signedEvent(t, tt.typ, tt.session)

			ev, err := gw.ParseEvent(payload, header)

			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, ev.Kind)
			assert.Equal(t, tt.wantID, ev.PurchaseID)
			assert.Equal(t, tt.typ, ev.Type)
		})
	}
}

func TestParseEvent_BadSignature(t *testing.T) {
	payload, _ := signedEvent(t, "checkout.session.completed", map[string]any{"id": "cs_1"})
	gw := NewStripeGatewayWith(&fakeSessions{}, testWebhookSecret)

	_, err := gw.ParseEvent(payload, "t=1,v1=deadbeef")

	assert.ErrorIs(t, err, ErrInvalidSignature)
}
