//go:build unit || e2e

package builder

import (
	reqdto "commission-tracker/internal/handler/dto/request"

	"github.com/shopspring/decimal"
)

type AuthBuilder struct {
	Email             string
	Password          string
	Name              string
	Phone             string
	CommissionPercent *decimal.Decimal
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
		Name:     "Negozio Bianchi",
		Phone:    "+39 02 1234567",
	}
}

func (a *AuthBuilder) WithCommissionPercent(p string) *AuthBuilder {
	d := decimal.RequireFromString(p)
	a.CommissionPercent = &d
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterVendorRequest {
	return reqdto.RegisterVendorRequest{
		Name:              a.Name,
		Email:             a.Email,
		Password:          a.Password,
		Phone:             a.Phone,
		CommissionPercent: a.CommissionPercent,
	}
}
