//go:build unit || e2e

package builder

import (
	"time"

	"commission-tracker/internal/domain/user"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	VendorID     *uuid.UUID
	VendorActive bool
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	vendorID := uuid.New()
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "vendor",
		VendorID:     &vendorID,
		VendorActive: true,
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role, time.Now()), nil
}

func (u *UserBuilder) BuildEmailRow() sqlc.FindUserByEmailRow {
	vendorID, vendorActive := u.vendorColumns()
	return sqlc.FindUserByEmailRow{
		ID:             u.ID,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Role:           u.Role,
		IsActive:       u.IsActive,
		VendorID:       vendorID,
		VendorIsActive: vendorActive,
	}
}

func (u *UserBuilder) BuildIDRow() sqlc.FindUserByIDRow {
	vendorID, vendorActive := u.vendorColumns()
	return sqlc.FindUserByIDRow{
		ID:             u.ID,
		Email:          u.Email,
		Role:           u.Role,
		IsActive:       u.IsActive,
		LastLogin:      pgtype.Timestamptz{},
		CreatedAt:      pgtype.Timestamptz{Time: time.Now(), Valid: true},
		VendorID:       vendorID,
		VendorIsActive: vendorActive,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	view := &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
		VendorID: u.VendorID,
	}
	if u.VendorID != nil {
		active := u.VendorActive
		view.VendorActive = &active
	}
	return view
}

func (u *UserBuilder) vendorColumns() (pgtype.UUID, pgtype.Bool) {
	if u.VendorID == nil {
		return pgtype.UUID{}, pgtype.Bool{}
	}
	return pgtype.UUID{Bytes: *u.VendorID, Valid: true}, pgtype.Bool{Bool: u.VendorActive, Valid: true}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsTechnician() *UserBuilder {
	u.Role = "technician"
	u.VendorID = nil
	return u
}

func (u *UserBuilder) WithVendorInactive() *UserBuilder {
	u.VendorActive = false
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}
