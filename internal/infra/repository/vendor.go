package repository

import (
	"context"

	"commission-tracker/internal/domain/vendor"
	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VendorWriteQueries interface {
	CreateVendor(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVendorParams) (uuid.UUID, error)
	UpdateVendor(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVendorParams) (int64, error)
	SetVendorActive(ctx context.Context, db sqlc.DBTX, arg sqlc.SetVendorActiveParams) (int64, error)
	DeleteVendor(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type VendorRepository struct {
	queries VendorWriteQueries
}

func NewVendorRepository(queries VendorWriteQueries) *VendorRepository {
	return &VendorRepository{queries: queries}
}

func (r *VendorRepository) Create(ctx context.Context, tx sqlc.DBTX, v *vendor.Vendor) (uuid.UUID, error) {
	id, err := r.queries.CreateVendor(ctx, tx, sqlc.CreateVendorParams{
		ID:             v.ID(),
		UserID:         pgconv.UUIDPtrToPgtype(v.UserID()),
		Name:           v.Name().String(),
		Email:          v.Email().Value(),
		Phone:          optionalText(v.Phone()),
		CommissionRate: v.CommissionRate().Fraction(),
		IsActive:       v.IsActive(),
		CreatedBy:      pgconv.UUIDPtrToPgtype(v.CreatedBy()),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create vendor", err)
	}
	return id, nil
}

func (r *VendorRepository) Update(ctx context.Context, tx sqlc.DBTX, v *vendor.Vendor) error {
	n, err := r.queries.UpdateVendor(ctx, tx, sqlc.UpdateVendorParams{
		ID:             v.ID(),
		Name:           v.Name().String(),
		Email:          v.Email().Value(),
		Phone:          optionalText(v.Phone()),
		CommissionRate: v.CommissionRate().Fraction(),
	})
	return affectedOne("update vendor", n, err)
}

func (r *VendorRepository) SetActive(ctx context.Context, tx sqlc.DBTX, vendorID uuid.UUID, active bool) error {
	n, err := r.queries.SetVendorActive(ctx, tx, sqlc.SetVendorActiveParams{ID: vendorID, IsActive: active})
	return affectedOne("set vendor active", n, err)
}

func (r *VendorRepository) Delete(ctx context.Context, tx sqlc.DBTX, vendorID uuid.UUID) error {
	n, err := r.queries.DeleteVendor(ctx, tx, vendorID)
	return affectedOne("delete vendor", n, err)
}

func optionalText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgconv.StringToPgtype(s)
}

// affectedOne maps a zero-row write to NOT_FOUND.
func affectedOne(op string, n int64, err error) error {
	if err != nil {
		return infra.WrapRepoErr("failed to "+op, err)
	}
	if n == 0 {
		return infra.WrapRepoErr(op+": no matching row", nil, infra.KindNotFound)
	}
	return nil
}
