package queries

import (
	"context"

	"commission-tracker/internal/domain/serial"

	"github.com/google/uuid"
)

type SerialQueries interface {
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]SerialView, error)
}

type SerialReadStore interface {
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]SerialView, error)
}

type serialQueriesImpl struct {
	readStore     SerialReadStore
	publicBaseURL string
}

func NewSerialQueries(readStore SerialReadStore, publicBaseURL string) SerialQueries {
	return &serialQueriesImpl{readStore: readStore, publicBaseURL: publicBaseURL}
}

func (q *serialQueriesImpl) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]SerialView, error) {
	serials, err := q.readStore.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	out := make([]SerialView, len(serials))
	for i, s := range serials {
		s.PurchaseURL = serial.PurchaseURL(q.publicBaseURL, s.LinkToken)
		out[i] = s
	}
	return out, nil
}
