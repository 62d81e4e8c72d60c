//go:build unit

package password_test

import (
	"testing"

	"commission-tracker/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := password.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)

	assert.NoError(t, password.ComparePassword(hashed, "password123"))
	assert.ErrorIs(t, password.ComparePassword(hashed, "password124"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword("", "password123"), password.ErrInvalidPassword)
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, password.Validate(""), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Validate("12345"), password.ErrTooShort)
	assert.NoError(t, password.Validate("123456"))

	_, err := password.HashPassword("abc")
	assert.ErrorIs(t, err, password.ErrTooShort)
}
