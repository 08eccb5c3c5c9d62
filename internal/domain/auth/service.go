package auth

import "context"

// AuthService handles first-party credential login and token rotation.
type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh rotates a refresh token into a new token pair
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error
}
