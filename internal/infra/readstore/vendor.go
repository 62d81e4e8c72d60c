package readstore

import (
	"context"

	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/pgconv"
	"commission-tracker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VendorReadQueries interface {
	GetVendorByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vendors, error)
	ListVendorsWithCommissions(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListVendorsWithCommissionsRow, error)
}

type VendorReadStore struct {
	queries VendorReadQueries
	db      sqlc.DBTX
}

func NewVendorReadStore(queries VendorReadQueries, db sqlc.DBTX) *VendorReadStore {
	return &VendorReadStore{queries: queries, db: db}
}

var hundred = decimal.NewFromInt(100)

func (r *VendorReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VendorView, error) {
	row, err := r.queries.GetVendorByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find vendor", err)
	}
	view := toVendorView(row)
	return &view, nil
}

func (r *VendorReadStore) ListWithCommissions(ctx context.Context) ([]queries.VendorSummaryView, error) {
	rows, err := r.queries.ListVendorsWithCommissions(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vendors", err)
	}

	out := make([]queries.VendorSummaryView, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.VendorSummaryView{
			VendorView: toVendorView(sqlc.Vendors{
				ID:             row.ID,
				UserID:         row.UserID,
				Name:           row.Name,
				Email:          row.Email,
				Phone:          row.Phone,
				CommissionRate: row.CommissionRate,
				IsActive:       row.IsActive,
				CreatedAt:      row.CreatedAt,
			}),
			CompletedSales:  row.CompletedSales,
			TotalSales:      row.TotalSales,
			TotalCommission: row.TotalCommission,
		})
	}
	return out, nil
}

func toVendorView(row sqlc.Vendors) queries.VendorView {
	return queries.VendorView{
		ID:                row.ID,
		UserID:            pgconv.UUIDPtrFromPgtype(row.UserID),
		Name:              row.Name,
		Email:             row.Email,
		Phone:             pgconv.StringPtrFromPgtype(row.Phone),
		CommissionPercent: row.CommissionRate.Mul(hundred),
		IsActive:          row.IsActive,
		CreatedAt:         row.CreatedAt.Time,
	}
}
