package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/auth"
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/database"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

// Store implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Store(ctx context.Context, token auth.RefreshToken) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (token, user_id, expires_at)
		VALUES ($1, $2, $3)
	`

	_, err := q.Exec(ctx, query, token.Token, token.UserID, token.ExpiresAt)
	return err
}

// Get implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Get(ctx context.Context, token string) (auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT token, user_id, expires_at, revoked_at, created_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var found auth.RefreshToken
	err := q.QueryRow(ctx, query, token).Scan(
		&found.Token,
		&found.UserID,
		&found.ExpiresAt,
		&found.RevokedAt,
		&found.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.RefreshToken{}, auth.ErrInvalidToken
		}
		return auth.RefreshToken{}, err
	}

	return found, nil
}

// Revoke implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE token = $1 AND revoked_at IS NULL
	`

	tag, err := q.Exec(ctx, query, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrInvalidToken
	}

	return nil
}

// DeleteExpired implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM refresh_tokens WHERE expires_at < NOW()`

	tag, err := q.Exec(ctx, query)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
