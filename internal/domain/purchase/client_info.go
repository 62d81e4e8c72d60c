package purchase

import (
	"strings"

	"commission-tracker/internal/domain/user"
)

const (
	msgRequired      = "required"
	msgInvalidFormat = "invalid format"
)

// ClientInfo is the contact data a client enters before paying.
type ClientInfo struct {
	name  string
	email string
	phone string
}

func NewClientInfo(name, email, phone string) (ClientInfo, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	verr := newValidationError()
	if name == "" {
		verr.add("name", msgRequired)
	}
	switch {
	case email == "":
		verr.add("email", msgRequired)
	case !user.IsEmailShaped(email):
		verr.add("email", msgInvalidFormat)
	}
	if phone == "" {
		verr.add("phone", msgRequired)
	}
	if err := verr.orNil(); err != nil {
		return ClientInfo{}, err
	}

	return ClientInfo{name: name, email: email, phone: phone}, nil
}

func (c ClientInfo) Name() string  { return c.name }
func (c ClientInfo) Email() string { return c.email }
func (c ClientInfo) Phone() string { return c.phone }
