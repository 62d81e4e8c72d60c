package commands

import (
	"context"

	"github.com/google/uuid"
)

// PaymentGateway creates hosted checkout sessions.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
}

// PaymentEventParser verifies and decodes a gateway notification.
type PaymentEventParser interface {
	ParseEvent(payload []byte, signature string) (PaymentEvent, error)
}

type CheckoutRequest struct {
	AmountMinorUnits int64
	Currency         string
	ProductName      string
	Description      string
	CustomerEmail    string
	SuccessURL       string
	CancelURL        string
	// Reference is echoed back by the gateway on every event for this session.
	Reference string
}

type CheckoutSession struct {
	ID  string
	URL string
}

type PaymentEventKind string

const (
	PaymentSucceeded PaymentEventKind = "succeeded"
	PaymentFailed    PaymentEventKind = "failed"
	PaymentIgnored   PaymentEventKind = "ignored"
)

// PaymentEvent is a verified gateway notification about one checkout session.
type PaymentEvent struct {
	ID         string
	Type       string
	Kind       PaymentEventKind
	SessionID  string
	PurchaseID uuid.UUID
}
