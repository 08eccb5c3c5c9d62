package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/worklens-hq/worklens-backend-go/internal/domain/auth"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/user"
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	user.UserRepository
	auth.RefreshTokenRepository
	jwtService jwt.Service
	now        func() time.Time
}

func NewAuthService(
	userRepo user.UserRepository,
	refreshTokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:         userRepo,
		RefreshTokenRepository: refreshTokenRepo,
		jwtService:             jwtService,
		now:                    time.Now,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	account, err := s.UserRepository.GetByEmailAny(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !account.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	return s.issueTokenPair(ctx, account)
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	stored, err := s.RefreshTokenRepository.Get(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get refresh token: %w", err)
	}

	if stored.RevokedAt != nil {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	if s.now().After(stored.ExpiresAt) {
		return auth.TokenResponse{}, auth.ErrTokenExpired
	}

	account, err := s.UserRepository.GetByIDAny(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if !account.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	// Rotate: the presented refresh token is single-use.
	if err := s.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return s.issueTokenPair(ctx, account)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := s.RefreshTokenRepository.Revoke(ctx, refreshToken); err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return nil
		}
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

func (s *AuthServiceImpl) issueTokenPair(ctx context.Context, account user.User) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(
		account.ID, account.Email, account.EmployeeID, account.CompanyID, account.Role,
	)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.RefreshTokenRepository.Store(ctx, auth.RefreshToken{
		Token:     refreshToken,
		UserID:    account.ID,
		ExpiresAt: time.Unix(refreshExpiresAt, 0),
		CreatedAt: s.now(),
	}); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	resp := auth.TokenResponse{
		AccessToken:           accessToken,
		ExpiresAt:             accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
		Role:                  string(account.Role),
	}
	if account.EmployeeID != nil {
		resp.EmployeeID = *account.EmployeeID
	}

	return resp, nil
}
