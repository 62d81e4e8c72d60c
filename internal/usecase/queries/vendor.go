package queries

import (
	"context"

	"commission-tracker/internal/infra"
	"commission-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

type VendorQueries interface {
	ListWithCommissions(ctx context.Context) ([]VendorSummaryView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*VendorView, error)
}

type VendorReadStore interface {
	ListWithCommissions(ctx context.Context) ([]VendorSummaryView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*VendorView, error)
}

type vendorQueriesImpl struct {
	readStore VendorReadStore
}

func NewVendorQueries(readStore VendorReadStore) VendorQueries {
	return &vendorQueriesImpl{readStore: readStore}
}

func (q *vendorQueriesImpl) ListWithCommissions(ctx context.Context) ([]VendorSummaryView, error) {
	vendors, err := q.readStore.ListWithCommissions(ctx)
	if err != nil {
		return nil, err
	}
	if vendors == nil {
		vendors = []VendorSummaryView{}
	}
	return vendors, nil
}

func (q *vendorQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VendorView, error) {
	v, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsNotFound(err) {
			return nil, errs.ErrVendorNotFound
		}
		return nil, err
	}
	return v, nil
}
