package readstore

import (
	"context"

	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

type SerialReadQueries interface {
	ListSerialsByVendor(ctx context.Context, db sqlc.DBTX, vendorID uuid.UUID) ([]sqlc.Serials, error)
}

type SerialReadStore struct {
	queries SerialReadQueries
	db      sqlc.DBTX
}

func NewSerialReadStore(queries SerialReadQueries, db sqlc.DBTX) *SerialReadStore {
	return &SerialReadStore{queries: queries, db: db}
}

func (r *SerialReadStore) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]queries.SerialView, error) {
	rows, err := r.queries.ListSerialsByVendor(ctx, r.db, vendorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list serials", err)
	}

	out := make([]queries.SerialView, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.SerialView{
			ID:           row.ID,
			SerialNumber: row.SerialNumber,
			LinkToken:    row.Link,
			QRCode:       row.QrCode,
			QRHash:       row.QrHash,
			IsUsed:       row.IsUsed,
			CreatedAt:    row.CreatedAt.Time,
		})
	}
	return out, nil
}
