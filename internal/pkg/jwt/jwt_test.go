package jwt

import (
	"testing"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret-key-for-jwt", "1h", "24h")
}

func TestJWTService_RefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, expiresAt, err := svc.GenerateRefreshToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	userID, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestJWTService_AccessTokenRejectedAsRefresh(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateAccessToken(42, "admin@example.com", user.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateRefreshToken_Garbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.ValidateRefreshToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_Revocation(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken(42)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestJWTService_RefreshTokenCookie(t *testing.T) {
	svc := newTestService()

	cookie := svc.RefreshTokenCookie("tok", 1700000000)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}
