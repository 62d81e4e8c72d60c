package response

import (
	"commission-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	VendorID *uuid.UUID `json:"vendor_id,omitempty"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

type RegisterResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	VendorID uuid.UUID `json:"vendor_id"`
}

func FromAuthorizedUser(v *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:       v.ID,
		Email:    v.Email,
		Role:     v.Role,
		VendorID: v.VendorID,
	}
}
