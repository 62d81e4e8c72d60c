package readstore

import (
	"context"

	"commission-tracker/internal/domain/purchase"
	"commission-tracker/internal/domain/vendor"
	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/pgconv"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CommandReadQueries interface {
	FindUnconsumedSerialByLink(ctx context.Context, db sqlc.DBTX, link string) (sqlc.FindUnconsumedSerialByLinkRow, error)
	FindClientBySerial(ctx context.Context, db sqlc.DBTX, serialID pgtype.UUID) (sqlc.Clients, error)
	GetPurchaseByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Purchases, error)
	GetVendorByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vendors, error)
}

// CommandReadStore serves the write side's lookups.
type CommandReadStore struct {
	queries CommandReadQueries
	db      sqlc.DBTX
}

func NewCommandReadStore(queries CommandReadQueries, db sqlc.DBTX) *CommandReadStore {
	return &CommandReadStore{queries: queries, db: db}
}

func (r *CommandReadStore) UnconsumedLinkByToken(ctx context.Context, token string) (*purchase.Link, error) {
	row, err := r.queries.FindUnconsumedSerialByLink(ctx, r.db, token)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to resolve purchase link", err)
	}
	return &purchase.Link{
		SerialID:     row.ID,
		VendorID:     row.VendorID,
		Token:        row.Link,
		SerialNumber: row.SerialNumber,
	}, nil
}

func (r *CommandReadStore) ClientBySerial(ctx context.Context, serialID uuid.UUID) (*shared.ClientSnapshot, error) {
	row, err := r.queries.FindClientBySerial(ctx, r.db, pgconv.UUIDToPgtype(serialID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find client by serial", err)
	}
	return &shared.ClientSnapshot{
		ID:       row.ID,
		SerialID: serialID,
		VendorID: row.VendorID,
		Name:     row.Name,
		Email:    row.Email,
	}, nil
}

func (r *CommandReadStore) PurchaseByID(ctx context.Context, id uuid.UUID) (*shared.PurchaseSnapshot, error) {
	row, err := r.queries.GetPurchaseByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find purchase", err)
	}

	paymentStatus, err := purchase.ParsePaymentStatus(row.PaymentStatus)
	if err != nil {
		return nil, infra.WrapRepoErr("unexpected payment status", err)
	}
	appointmentStatus, err := purchase.ParseAppointmentStatus(row.AppointmentStatus)
	if err != nil {
		return nil, infra.WrapRepoErr("unexpected appointment status", err)
	}

	return &shared.PurchaseSnapshot{
		ID:                row.ID,
		ClientID:          row.ClientID,
		SerialID:          pgconv.UUIDPtrFromPgtype(row.SerialID),
		VendorID:          row.VendorID,
		PaymentStatus:     paymentStatus,
		PaymentIntentID:   pgconv.StringPtrFromPgtype(row.PaymentIntentID),
		AppointmentStatus: appointmentStatus,
	}, nil
}

func (r *CommandReadStore) VendorByID(ctx context.Context, id uuid.UUID) (*vendor.Vendor, error) {
	row, err := r.queries.GetVendorByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find vendor", err)
	}
	return vendor.ReconstructVendor(
		row.ID,
		pgconv.UUIDPtrFromPgtype(row.UserID),
		row.Name,
		row.Email,
		pgconv.StringFromPgtype(row.Phone),
		row.CommissionRate,
		row.IsActive,
		row.CreatedAt.Time,
		pgconv.UUIDPtrFromPgtype(row.CreatedBy),
	), nil
}
