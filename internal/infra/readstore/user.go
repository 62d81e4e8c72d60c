package readstore

import (
	"context"

	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/pgconv"
	"commission-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.FindUserByEmailRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.AuthorizedUserView{
		ID:           row.ID,
		Email:        row.Email,
		Role:         row.Role,
		IsActive:     row.IsActive,
		VendorID:     pgconv.UUIDPtrFromPgtype(row.VendorID),
		VendorActive: pgconv.BoolPtrFromPgtype(row.VendorIsActive),
	}, nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	view := &queries.AuthorizedUserView{
		ID:           row.ID,
		Email:        row.Email,
		Role:         row.Role,
		IsActive:     row.IsActive,
		VendorID:     pgconv.UUIDPtrFromPgtype(row.VendorID),
		VendorActive: pgconv.BoolPtrFromPgtype(row.VendorIsActive),
	}
	return view, row.PasswordHash, nil
}
