package auth

import (
	"context"
	"time"
)

type RefreshToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// RefreshTokenRepository persists issued refresh tokens so they can be
// revoked server-side.
type RefreshTokenRepository interface {
	// Store persists a newly issued refresh token
	Store(ctx context.Context, token RefreshToken) error

	// Get retrieves a stored refresh token
	Get(ctx context.Context, token string) (RefreshToken, error)

	// Revoke marks a refresh token revoked
	Revoke(ctx context.Context, token string) error

	// DeleteExpired removes tokens past their expiry; returns the number
	// deleted
	DeleteExpired(ctx context.Context) (int64, error)
}
