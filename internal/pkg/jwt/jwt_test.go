//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-key-that-is-long-enough"

func TestService_RoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	svc := jwt.NewService(secret, 15*time.Minute, 24*time.Hour, clk)
	userID := uuid.New()

	access, err := svc.GenerateAccessToken(userID, user.RoleVendor)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(userID, user.RoleVendor)
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "vendor", claims.Role)
	assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	assert.Equal(t, clk.Now().Add(15*time.Minute), claims.ExpiresAt.Time)

	claims, err = svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
}

func TestService_Expiry(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	svc := jwt.NewService(secret, 15*time.Minute, 24*time.Hour, clk)

	token, err := svc.GenerateAccessToken(uuid.New(), user.RoleTechnician)
	require.NoError(t, err)

	clk.Add(14 * time.Minute)
	_, err = svc.ValidateToken(token)
	require.NoError(t, err)

	clk.Add(2 * time.Minute)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestService_RejectsForeignTokens(t *testing.T) {
	clk := clock.NewRealClock()
	svc := jwt.NewService(secret, time.Minute, time.Hour, clk)
	other := jwt.NewService("another-secret-key-that-is-long", time.Minute, time.Hour, clk)

	token, err := other.GenerateAccessToken(uuid.New(), user.RoleVendor)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
