package auth

import "context"

// AuthService defines authentication business logic.
type AuthService interface {
	// Login verifies email/password credentials and issues tokens.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWithGoogle exchanges a Google OAuth code for tokens.
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)

	// Refresh exchanges a refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes a refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// CreateUser provisions an account. Admin only.
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
}
