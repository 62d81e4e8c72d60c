package commands

import (
	"context"
	"log/slog"

	"commission-tracker/internal/domain/purchase"
	"commission-tracker/internal/infra"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentCommands interface {
	UpdateStatus(ctx context.Context, purchaseID uuid.UUID, status string) error
}

type appointmentCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewAppointmentCommands(uow shared.UnitOfWork) AppointmentCommands {
	return &appointmentCommandsImpl{uow: uow}
}

func (c *appointmentCommandsImpl) UpdateStatus(ctx context.Context, purchaseID uuid.UUID, status string) error {
	parsed, err := purchase.ParseAppointmentStatus(status)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Purchases().UpdateAppointmentStatus(ctx, tx.DB(), purchaseID, parsed)
	})
	if err != nil {
		if infra.IsNotFound(err) {
			return errs.ErrPurchaseNotFound
		}
		return err
	}

	slog.Info("appointment status updated", "purchase_id", purchaseID, "status", parsed)
	return nil
}
