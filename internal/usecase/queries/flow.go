package queries

import (
	"context"

	"commission-tracker/internal/domain/purchase"
	"commission-tracker/internal/pkg/money"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

type FlowQueries interface {
	Get(ctx context.Context, flowID uuid.UUID) (*FlowView, error)
}

type flowQueriesImpl struct {
	store shared.FlowStore
}

func NewFlowQueries(store shared.FlowStore) FlowQueries {
	return &flowQueriesImpl{store: store}
}

func (q *flowQueriesImpl) Get(ctx context.Context, flowID uuid.UUID) (*FlowView, error) {
	snap, inProgress, err := q.store.Peek(ctx, flowID)
	if err != nil {
		return nil, err
	}
	view := NewFlowView(snap, inProgress)
	return &view, nil
}

func NewFlowView(s purchase.Snapshot, inProgress bool) FlowView {
	v := FlowView{
		ID:         s.ID,
		State:      s.State.String(),
		InProgress: inProgress,
		UpdatedAt:  s.UpdatedAt,
	}
	if s.Service != nil {
		v.Service = &ServiceOfferingView{
			ID:           s.Service.ServiceID,
			Name:         s.Service.Name,
			Price:        s.Service.Price.Amount(),
			PriceDisplay: money.FormatEUR(s.Service.Price.Amount()),
		}
	}
	if s.Client != nil {
		v.ClientName = s.Client.Name()
		v.ClientEmail = s.Client.Email()
		v.ClientPhone = s.Client.Phone()
	}
	if s.Checkout != nil {
		v.CheckoutURL = s.Checkout.URL
	}
	if s.PurchaseID != uuid.Nil {
		id := s.PurchaseID
		v.PurchaseID = &id
	}
	if s.Appointment != nil {
		v.Appointment = s.Appointment.String()
	}
	return v
}
