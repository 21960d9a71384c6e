package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/user"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func newProtectedRouter(t *testing.T, jwtService jwt.Service, extra ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(AuthRequired(jwtService.JWTAuth()))
	for _, mw := range extra {
		r.Use(mw)
	}
	r.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
		actor, err := ActorFromContext(r.Context())
		require.NoError(t, err)
		w.Write([]byte(actor.Email))
	})
	return r
}

func doRequest(router http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_ValidAccessToken(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, "1h", "24h")
	router := newProtectedRouter(t, jwtService)

	token, _, err := jwtService.GenerateAccessToken(42, "admin@example.com", user.RoleAdmin)
	require.NoError(t, err)

	rec := doRequest(router, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@example.com", rec.Body.String())
}

func TestAuthRequired_MissingToken(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, "1h", "24h")
	router := newProtectedRouter(t, jwtService)

	rec := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_RefreshTokenRejected(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, "1h", "24h")
	router := newProtectedRouter(t, jwtService)

	// Refresh tokens must not pass as access tokens.
	token, _, err := jwtService.GenerateRefreshToken(42)
	require.NoError(t, err)

	rec := doRequest(router, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_WrongSecret(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, "1h", "24h")
	router := newProtectedRouter(t, jwtService)

	other := jwt.NewJWTService("some-other-secret", "1h", "24h")
	token, _, err := other.GenerateAccessToken(42, "admin@example.com", user.RoleAdmin)
	require.NoError(t, err)

	rec := doRequest(router, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireManagement_UnknownRole(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, "1h", "24h")
	router := newProtectedRouter(t, jwtService, RequireManagement)

	token, _, err := jwtService.GenerateAccessToken(42, "x@example.com", user.Role("viewer"))
	require.NoError(t, err)

	rec := doRequest(router, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireManagement_ScopedAdminAllowed(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, "1h", "24h")
	router := newProtectedRouter(t, jwtService, RequireManagement)

	token, _, err := jwtService.GenerateAccessToken(42, "in@example.com", user.RoleIndiaAdmin)
	require.NoError(t, err)

	rec := doRequest(router, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireGlobalAdmin(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, "1h", "24h")
	router := newProtectedRouter(t, jwtService, RequireGlobalAdmin)

	scoped, _, err := jwtService.GenerateAccessToken(42, "us@example.com", user.RoleUSAdmin)
	require.NoError(t, err)
	rec := doRequest(router, scoped)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	global, _, err := jwtService.GenerateAccessToken(1, "admin@example.com", user.RoleAdmin)
	require.NoError(t, err)
	rec = doRequest(router, global)
	assert.Equal(t, http.StatusOK, rec.Code)
}
