package request

import (
	"commission-tracker/internal/domain/vendor"
	"commission-tracker/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

// UpdateVendorRequest is a partial update; absent fields keep their value.
type UpdateVendorRequest struct {
	Name              *string          `json:"name" binding:"omitempty,max=200"`
	Email             *string          `json:"email" binding:"omitempty,email"`
	Phone             *string          `json:"phone" binding:"omitempty,max=50"`
	CommissionPercent *decimal.Decimal `json:"commission_percent,omitempty"`
}

func (r *UpdateVendorRequest) ToDomain(existing *vendor.Vendor) vendor.Profile {
	return vendor.Profile{
		Name:              patch.Coalesce(r.Name, existing.Name().String()),
		Email:             patch.Coalesce(r.Email, existing.Email().Value()),
		Phone:             patch.Coalesce(r.Phone, existing.Phone()),
		CommissionPercent: patch.Coalesce(r.CommissionPercent, existing.CommissionRate().Percent()),
	}
}

type SetVendorActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type CreateSerialRequest struct {
	SerialNumber string `json:"serial_number" binding:"required,max=100"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=scheduled completed cancelled"`
}
