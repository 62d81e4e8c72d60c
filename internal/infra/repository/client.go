package repository

import (
	"context"

	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/pgconv"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClientWriteQueries interface {
	CreateClient(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateClientParams) (uuid.UUID, error)
}

type ClientRepository struct {
	queries ClientWriteQueries
}

func NewClientRepository(queries ClientWriteQueries) *ClientRepository {
	return &ClientRepository{queries: queries}
}

func (r *ClientRepository) Create(ctx context.Context, tx sqlc.DBTX, c shared.NewClient) (uuid.UUID, error) {
	id, err := r.queries.CreateClient(ctx, tx, sqlc.CreateClientParams{
		SerialID: pgconv.UUIDToPgtype(c.SerialID),
		VendorID: c.VendorID,
		Name:     c.Info.Name(),
		Email:    c.Info.Email(),
		Phone:    c.Info.Phone(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create client", err)
	}
	return id, nil
}
