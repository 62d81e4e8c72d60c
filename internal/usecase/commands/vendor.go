package commands

import (
	"context"
	"log/slog"

	reqdto "commission-tracker/internal/handler/dto/request"
	"commission-tracker/internal/infra"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

type VendorCommands interface {
	Update(ctx context.Context, vendorID uuid.UUID, req reqdto.UpdateVendorRequest) error
	SetActive(ctx context.Context, vendorID uuid.UUID, active bool) error
	Delete(ctx context.Context, vendorID uuid.UUID) error
}

type vendorCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewVendorCommands(uow shared.UnitOfWork) VendorCommands {
	return &vendorCommandsImpl{uow: uow}
}

func (c *vendorCommandsImpl) Update(ctx context.Context, vendorID uuid.UUID, req reqdto.UpdateVendorRequest) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Reads().VendorByID(ctx, vendorID)
		if err != nil {
			return err
		}

		if err := v.UpdateProfile(req.ToDomain(v)); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		return tx.Vendors().Update(ctx, tx.DB(), v)
	})
	if err != nil {
		return mapVendorErr(err)
	}

	slog.Info("vendor updated", "vendor_id", vendorID)
	return nil
}

func (c *vendorCommandsImpl) SetActive(ctx context.Context, vendorID uuid.UUID, active bool) error {
	err := c.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Vendors().SetActive(ctx, tx.DB(), vendorID, active)
	})
	if err != nil {
		return mapVendorErr(err)
	}

	slog.Info("vendor activation changed", "vendor_id", vendorID, "active", active)
	return nil
}

// Delete removes the vendor; its serials, clients and purchases cascade.
func (c *vendorCommandsImpl) Delete(ctx context.Context, vendorID uuid.UUID) error {
	err := c.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Vendors().Delete(ctx, tx.DB(), vendorID)
	})
	if err != nil {
		return mapVendorErr(err)
	}

	slog.Info("vendor deleted", "vendor_id", vendorID)
	return nil
}

func mapVendorErr(err error) error {
	switch {
	case infra.IsNotFound(err):
		return errs.ErrVendorNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrEmailTaken
	}
	return err
}
