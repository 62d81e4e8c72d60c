package password

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrTooShort         = errors.New("password too short")
)

const (
	DefaultCost = bcrypt.DefaultCost
	MinLength   = 6
)

func Validate(plain string) error {
	if plain == "" {
		return ErrInvalidPassword
	}
	if utf8.RuneCountInString(plain) < MinLength {
		return ErrTooShort
	}
	return nil
}

func HashPassword(plain string) (string, error) {
	if err := Validate(plain); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}

func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}
	return nil
}
