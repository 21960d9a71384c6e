package auth

import (
	"context"
	"testing"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/auth"
	"github.com/globepay-hr/payroll-backend-go/internal/domain/user"
	"github.com/globepay-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

// fakeUserRepo is an in-memory user.UserRepository.
type fakeUserRepo struct {
	byEmail map[string]user.User
	byID    map[int64]user.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]user.User),
		byID:    make(map[int64]user.User),
		nextID:  1,
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	if _, exists := f.byEmail[u.Email]; exists {
		return user.User{}, user.ErrUserEmailExists
	}
	u.ID = f.nextID
	f.nextID++
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func newTestAuthService(repo *fakeUserRepo) auth.AuthService {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(nil, repo, jwtService, nil)
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, role user.Role) user.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)
	u, err := repo.Create(context.Background(), user.User{Email: email, PasswordHash: &hashStr, Role: role})
	require.NoError(t, err)
	return u
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "password123", user.RoleAdmin)
	svc := newTestAuthService(repo)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "admin", resp.User.Role)
	assert.Equal(t, "Global Admin", resp.User.RoleDisplayName)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "password123", user.RoleAdmin)
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrongpassword",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_OAuthOnlyAccount(t *testing.T) {
	repo := newFakeUserRepo()
	_, err := repo.Create(context.Background(), user.User{Email: "sso@example.com", Role: user.RoleAdmin})
	require.NoError(t, err)
	svc := newTestAuthService(repo)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "sso@example.com",
		Password: "anything",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_SignUp_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	resp, err := svc.SignUp(context.Background(), auth.SignUpRequest{
		Email:    "fradmin@example.com",
		Password: "SecurePass123!",
		Role:     "france_admin",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "france_admin", resp.User.Role)

	stored, err := repo.GetByEmail(context.Background(), "fradmin@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("SecurePass123!")))
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "password123", user.RoleAdmin)
	svc := newTestAuthService(repo)

	_, err := svc.SignUp(context.Background(), auth.SignUpRequest{
		Email:    "admin@example.com",
		Password: "password123",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "password123", user.RoleAdmin)
	svc := newTestAuthService(repo)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
}

func TestAuthService_Refresh_RevokedToken(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "password123", user.RoleAdmin)
	svc := newTestAuthService(repo)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_Refresh_AccessTokenRejected(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "password123", user.RoleAdmin)
	svc := newTestAuthService(repo)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Me(t *testing.T) {
	repo := newFakeUserRepo()
	seeded := seedUser(t, repo, "in@example.com", "password123", user.RoleIndiaAdmin)
	svc := newTestAuthService(repo)

	resp, err := svc.Me(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "in@example.com", resp.Email)
	assert.Equal(t, "India Admin", resp.RoleDisplayName)
}
