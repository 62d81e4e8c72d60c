package request

import (
	"commission-tracker/internal/domain/auth"
	"commission-tracker/internal/domain/vendor"

	"github.com/shopspring/decimal"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RegisterVendorRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"omitempty,max=50"`
	// CommissionPercent defaults to 15 when omitted.
	CommissionPercent *decimal.Decimal `json:"commission_percent,omitempty"`
}

func (r *RegisterVendorRequest) ToDomain() (auth.Credentials, vendor.Profile, error) {
	creds, err := auth.NewCredentials(r.Email, r.Password)
	if err != nil {
		return auth.Credentials{}, vendor.Profile{}, err
	}

	percent := vendor.DefaultCommissionPercent
	if r.CommissionPercent != nil {
		percent = *r.CommissionPercent
	}

	return creds, vendor.Profile{
		Name:              r.Name,
		Email:             r.Email,
		Phone:             r.Phone,
		CommissionPercent: percent,
	}, nil
}
