//go:build unit || e2e

package builder

import (
	"time"

	"commission-tracker/internal/domain/purchase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FlowBuilder walks a fresh flow forward to a requested state.
type FlowBuilder struct {
	Link     purchase.Link
	Offering purchase.ServiceOffering
	Info     purchase.ClientInfo
	Now      time.Time
}

func NewFlowBuilder() *FlowBuilder {
	price, _ := purchase.NewMoney(decimal.RequireFromString("49.99"))
	offering, _ := purchase.NewServiceOffering("antivirus", "Protezione Antivirus Premium", "", price)
	info, _ := purchase.NewClientInfo("Mario Rossi", "mario@example.com", "+39 333 0000000")
	return &FlowBuilder{
		Link: purchase.Link{
			SerialID:     uuid.New(),
			VendorID:     uuid.New(),
			Token:        "token-abc",
			SerialNumber: "SN-0001",
		},
		Offering: offering,
		Info:     info,
		Now:      time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *FlowBuilder) With(mutate func(*FlowBuilder)) *FlowBuilder {
	mutate(b)
	return b
}

func (b *FlowBuilder) Fresh() *purchase.Flow {
	return purchase.NewFlow(b.Link, b.Now)
}

func (b *FlowBuilder) EnteringInfo() *purchase.Flow {
	f := b.Fresh()
	must(f.SelectService(b.Offering, b.Now))
	return f
}

func (b *FlowBuilder) AwaitingPayment() *purchase.Flow {
	f := b.EnteringInfo()
	must(f.SubmitInfo(b.Info, b.Now))
	return f
}

func (b *FlowBuilder) CheckoutStarted() *purchase.Flow {
	f := b.AwaitingPayment()
	must(f.RecordCommit(uuid.New(), uuid.New(), b.Now))
	must(f.RecordCheckout(purchase.Checkout{SessionID: "cs_test_1", URL: "https://checkout.example/cs_test_1"}, b.Now))
	return f
}

func (b *FlowBuilder) SchedulingAppointment() *purchase.Flow {
	f := b.CheckoutStarted()
	must(f.ConfirmPayment(b.Now))
	return f
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
