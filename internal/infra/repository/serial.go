package repository

import (
	"context"

	"commission-tracker/internal/domain/serial"
	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type SerialWriteQueries interface {
	CreateSerial(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSerialParams) (uuid.UUID, error)
	MarkSerialUsed(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type SerialRepository struct {
	queries SerialWriteQueries
}

func NewSerialRepository(queries SerialWriteQueries) *SerialRepository {
	return &SerialRepository{queries: queries}
}

func (r *SerialRepository) Create(ctx context.Context, tx sqlc.DBTX, s *serial.Serial) (uuid.UUID, error) {
	id, err := r.queries.CreateSerial(ctx, tx, sqlc.CreateSerialParams{
		ID:           s.ID(),
		SerialNumber: s.SerialNumber(),
		VendorID:     s.VendorID(),
		QrCode:       s.QRCode().DataURL,
		QrHash:       s.QRCode().Hash,
		Link:         s.LinkToken(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create serial", err)
	}
	return id, nil
}

func (r *SerialRepository) MarkConsumed(ctx context.Context, tx sqlc.DBTX, serialID uuid.UUID) error {
	n, err := r.queries.MarkSerialUsed(ctx, tx, serialID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark serial consumed", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("serial already consumed", nil, infra.KindConflict)
	}
	return nil
}
