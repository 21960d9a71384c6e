package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	SignUp(ctx context.Context, req SignUpRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID int64) (UserResponse, error)

	// GoogleRedirectURL starts the OAuth flow.
	GoogleRedirectURL(userAgent string) (url string, state string)
	// LoginWithGoogle completes the OAuth flow. The Google account's email
	// must belong to an existing admin; OAuth never provisions accounts.
	LoginWithGoogle(ctx context.Context, code string) (LoginResponse, error)
}
