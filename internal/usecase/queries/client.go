package queries

import (
	"context"

	"commission-tracker/internal/domain/purchase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClientQueries interface {
	// ListForVendor returns the vendor's clients that have at least one completed purchase.
	ListForVendor(ctx context.Context, vendorID uuid.UUID) (*VendorClientsView, error)
	// ListAll returns every client with its vendor, optionally filtered by appointment status.
	ListAll(ctx context.Context, status *purchase.AppointmentStatus) ([]ClientView, error)
}

type ClientReadStore interface {
	ListPaidByVendor(ctx context.Context, vendorID uuid.UUID) ([]ClientView, error)
	ListWithVendor(ctx context.Context, status *purchase.AppointmentStatus) ([]ClientView, error)
}

type clientQueriesImpl struct {
	readStore ClientReadStore
}

func NewClientQueries(readStore ClientReadStore) ClientQueries {
	return &clientQueriesImpl{readStore: readStore}
}

func (q *clientQueriesImpl) ListForVendor(ctx context.Context, vendorID uuid.UUID) (*VendorClientsView, error) {
	clients, err := q.readStore.ListPaidByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, c := range clients {
		total = total.Add(c.TotalCommission())
	}
	if clients == nil {
		clients = []ClientView{}
	}
	return &VendorClientsView{Clients: clients, TotalCommission: total}, nil
}

func (q *clientQueriesImpl) ListAll(ctx context.Context, status *purchase.AppointmentStatus) ([]ClientView, error) {
	clients, err := q.readStore.ListWithVendor(ctx, status)
	if err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []ClientView{}
	}
	return clients, nil
}
