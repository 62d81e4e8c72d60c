//go:build unit || e2e

package builder

import (
	"time"

	"commission-tracker/internal/domain/vendor"
	sqlc "commission-tracker/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type VendorBuilder struct {
	ID                uuid.UUID
	UserID            *uuid.UUID
	Name              string
	Email             string
	Phone             string
	CommissionPercent decimal.Decimal
	IsActive          bool
}

func NewVendorBuilder() *VendorBuilder {
	userID := uuid.New()
	return &VendorBuilder{
		ID:                uuid.New(),
		UserID:            &userID,
		Name:              "Luca Bianchi",
		Email:             "luca@example.com",
		Phone:             "+39 333 1234567",
		CommissionPercent: decimal.NewFromInt(15),
		IsActive:          true,
	}
}

func (v *VendorBuilder) With(mutate func(*VendorBuilder)) *VendorBuilder {
	mutate(v)
	return v
}

func (v *VendorBuilder) BuildDomain() *vendor.Vendor {
	return vendor.ReconstructVendor(
		v.ID,
		v.UserID,
		v.Name,
		v.Email,
		v.Phone,
		v.CommissionPercent.Div(decimal.NewFromInt(100)),
		v.IsActive,
		time.Now(),
		nil,
	)
}

func (v *VendorBuilder) BuildInfra() sqlc.Vendors {
	var userID pgtype.UUID
	if v.UserID != nil {
		userID = pgtype.UUID{Bytes: *v.UserID, Valid: true}
	}
	var phone pgtype.Text
	if v.Phone != "" {
		phone = pgtype.Text{String: v.Phone, Valid: true}
	}
	return sqlc.Vendors{
		ID:             v.ID,
		UserID:         userID,
		Name:           v.Name,
		Email:          v.Email,
		Phone:          phone,
		CommissionRate: v.CommissionPercent.Div(decimal.NewFromInt(100)),
		IsActive:       v.IsActive,
		CreatedAt:      pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func (v *VendorBuilder) WithCommissionPercent(p int64) *VendorBuilder {
	v.CommissionPercent = decimal.NewFromInt(p)
	return v
}

func (v *VendorBuilder) AsInactive() *VendorBuilder {
	v.IsActive = false
	return v
}
