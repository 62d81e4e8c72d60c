package user

import "strings"

type Role string

const (
	RoleVendor     Role = "vendor"
	RoleTechnician Role = "technician"
)

func NewRole(s string) (Role, error) {
	switch r := Role(strings.TrimSpace(s)); r {
	case RoleVendor, RoleTechnician:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
