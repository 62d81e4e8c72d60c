package auth

import (
	"errors"

	"commission-tracker/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrVendorRequired     = errors.New("vendor principal requires a vendor id")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Principal is the resolved session identity attached to an authenticated request.
type Principal struct {
	userID   uuid.UUID
	role     user.Role
	vendorID *uuid.UUID
}

func NewPrincipal(userID uuid.UUID, role user.Role, vendorID *uuid.UUID) (Principal, error) {
	if role == user.RoleVendor && vendorID == nil {
		return Principal{}, ErrVendorRequired
	}
	if role != user.RoleVendor {
		vendorID = nil
	}
	return Principal{userID: userID, role: role, vendorID: vendorID}, nil
}

func (p Principal) UserID() uuid.UUID { return p.userID }
func (p Principal) Role() user.Role   { return p.role }

// VendorID is set only for vendor principals.
func (p Principal) VendorID() (uuid.UUID, bool) {
	if p.vendorID == nil {
		return uuid.Nil, false
	}
	return *p.vendorID, true
}

func (p Principal) IsTechnician() bool { return p.role == user.RoleTechnician }
