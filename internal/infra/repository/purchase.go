package repository

import (
	"context"
	"time"

	"commission-tracker/internal/domain/purchase"
	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/pgconv"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PurchaseWriteQueries interface {
	CreatePurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePurchaseParams) (uuid.UUID, error)
	SetPurchaseCheckoutSession(ctx context.Context, db sqlc.DBTX, arg sqlc.SetPurchaseCheckoutSessionParams) (int64, error)
	MarkPurchasePaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkPurchasePaidParams) (int64, error)
	MarkPurchasePaymentFailed(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	SetPurchaseAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.SetPurchaseAppointmentParams) (int64, error)
	UpdateAppointmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentStatusParams) (int64, error)
}

type PurchaseRepository struct {
	queries PurchaseWriteQueries
}

func NewPurchaseRepository(queries PurchaseWriteQueries) *PurchaseRepository {
	return &PurchaseRepository{queries: queries}
}

func (r *PurchaseRepository) Create(ctx context.Context, tx sqlc.DBTX, p shared.NewPurchase) (uuid.UUID, error) {
	id, err := r.queries.CreatePurchase(ctx, tx, sqlc.CreatePurchaseParams{
		ClientID:     p.ClientID,
		SerialID:     pgconv.UUIDToPgtype(p.SerialID),
		ServiceName:  p.Service.Name,
		ServicePrice: p.Service.Price.Amount(),
		VendorID:     p.VendorID,
	})
	if err != nil {
		// INSERT ... SELECT yields no row when the vendor is gone.
		return uuid.Nil, infra.WrapRepoErr("failed to create purchase", err)
	}
	return id, nil
}

func (r *PurchaseRepository) SetCheckoutSession(ctx context.Context, tx sqlc.DBTX, purchaseID uuid.UUID, sessionID string) error {
	n, err := r.queries.SetPurchaseCheckoutSession(ctx, tx, sqlc.SetPurchaseCheckoutSessionParams{
		ID:              purchaseID,
		PaymentIntentID: pgconv.StringToPgtype(sessionID),
	})
	return affectedOne("set purchase checkout session", n, err)
}

// MarkPaid reports false when the purchase was already completed.
func (r *PurchaseRepository) MarkPaid(ctx context.Context, tx sqlc.DBTX, purchaseID uuid.UUID, sessionID string) (bool, error) {
	var intent pgtype.Text
	if sessionID != "" {
		intent = pgconv.StringToPgtype(sessionID)
	}
	n, err := r.queries.MarkPurchasePaid(ctx, tx, sqlc.MarkPurchasePaidParams{PaymentIntentID: intent, ID: purchaseID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark purchase paid", err)
	}
	return n > 0, nil
}

// MarkPaymentFailed reports false when the purchase was no longer pending.
func (r *PurchaseRepository) MarkPaymentFailed(ctx context.Context, tx sqlc.DBTX, purchaseID uuid.UUID) (bool, error) {
	n, err := r.queries.MarkPurchasePaymentFailed(ctx, tx, purchaseID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark purchase payment failed", err)
	}
	return n > 0, nil
}

func (r *PurchaseRepository) SetAppointment(ctx context.Context, tx sqlc.DBTX, clientID uuid.UUID, at time.Time) error {
	n, err := r.queries.SetPurchaseAppointment(ctx, tx, sqlc.SetPurchaseAppointmentParams{
		ClientID:        clientID,
		AppointmentDate: pgconv.TimeToPgtype(at),
	})
	return affectedOne("set purchase appointment", n, err)
}

func (r *PurchaseRepository) UpdateAppointmentStatus(ctx context.Context, tx sqlc.DBTX, purchaseID uuid.UUID, status purchase.AppointmentStatus) error {
	n, err := r.queries.UpdateAppointmentStatus(ctx, tx, sqlc.UpdateAppointmentStatusParams{
		ID:                purchaseID,
		AppointmentStatus: string(status),
	})
	return affectedOne("update appointment status", n, err)
}
