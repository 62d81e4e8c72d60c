package gateway

import (
	"context"
	"encoding/json"
	"time"

	"commission-tracker/internal/pkg/config"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/pkg/metrics"
	"commission-tracker/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const purchaseIDMetadataKey = "purchase_id"

var (
	ErrInvalidSignature = errs.New("payment event signature verification failed")
	ErrMalformedEvent   = errs.New("payment event payload is malformed")
	ErrEmptySession     = errs.New("gateway returned a session without id or url")
)

// SessionCreator is the slice of the Stripe checkout session client in use.
type SessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type StripeGateway struct {
	sessions      SessionCreator
	webhookSecret string
}

var (
	_ commands.PaymentGateway     = (*StripeGateway)(nil)
	_ commands.PaymentEventParser = (*StripeGateway)(nil)
)

func NewStripeGateway(cfg config.PaymentConfig) *StripeGateway {
	sc := &client.API{}
	sc.Init(cfg.StripeSecretKey, nil)
	return NewStripeGatewayWith(sc.CheckoutSessions, cfg.StripeWebhookSecret)
}

func NewStripeGatewayWith(sessions SessionCreator, webhookSecret string) *StripeGateway {
	return &StripeGateway{sessions: sessions, webhookSecret: webhookSecret}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.AmountMinorUnits),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(req.ProductName),
						Description: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(req.Reference),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	params.Context = ctx
	params.AddMetadata(purchaseIDMetadataKey, req.Reference)

	start := time.Now()
	s, err := g.sessions.New(params)
	metrics.ObserveGatewayCall("create_checkout_session", err, time.Since(start))
	if err != nil {
		return nil, errs.Wrap(err, "stripe checkout session")
	}
	if s.ID == "" || s.URL == "" {
		return nil, ErrEmptySession
	}

	return &commands.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// ParseEvent verifies the Stripe-Signature header and maps checkout session
// events to payment outcomes. Unrelated event types come back as PaymentIgnored.
func (g *StripeGateway) ParseEvent(payload []byte, signature string) (commands.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return commands.PaymentEvent{}, errs.Mark(err, ErrInvalidSignature)
	}

	out := commands.PaymentEvent{
		ID:   event.ID,
		Type: string(event.Type),
		Kind: commands.PaymentIgnored,
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted,
		stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded,
		stripe.EventTypeCheckoutSessionAsyncPaymentFailed,
		stripe.EventTypeCheckoutSessionExpired:
	default:
		return out, nil
	}

	if event.Data == nil {
		return commands.PaymentEvent{}, ErrMalformedEvent
	}
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return commands.PaymentEvent{}, errs.Mark(err, ErrMalformedEvent)
	}

	out.SessionID = session.ID
	out.PurchaseID = purchaseReference(&session)

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		// Delayed methods complete the session unpaid and settle later.
		if session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
			out.Kind = commands.PaymentSucceeded
		}
	case stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded:
		out.Kind = commands.PaymentSucceeded
	case stripe.EventTypeCheckoutSessionAsyncPaymentFailed, stripe.EventTypeCheckoutSessionExpired:
		out.Kind = commands.PaymentFailed
	}
	return out, nil
}

func purchaseReference(s *stripe.CheckoutSession) uuid.UUID {
	ref := s.ClientReferenceID
	if ref == "" {
		ref = s.Metadata[purchaseIDMetadataKey]
	}
	id, err := uuid.Parse(ref)
	if err != nil {
		return uuid.Nil
	}
	return id
}
