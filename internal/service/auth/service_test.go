package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/worklens-hq/worklens-backend-go/internal/domain/auth"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/user"
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/jwt"
)

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string, companyID string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id && u.CompanyID == companyID {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string, companyID string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.CompanyID == companyID {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmailAny(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByIDAny(_ context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) SetActive(_ context.Context, id string, companyID string, active bool) error {
	for i, u := range f.users {
		if u.ID == id && u.CompanyID == companyID {
			f.users[i].IsActive = active
			return nil
		}
	}
	return user.ErrUserNotFound
}

type fakeRefreshTokenRepo struct {
	tokens map[string]auth.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]auth.RefreshToken)}
}

func (f *fakeRefreshTokenRepo) Store(_ context.Context, token auth.RefreshToken) error {
	f.tokens[token.Token] = token
	return nil
}

func (f *fakeRefreshTokenRepo) Get(_ context.Context, token string) (auth.RefreshToken, error) {
	stored, ok := f.tokens[token]
	if !ok {
		return auth.RefreshToken{}, auth.ErrInvalidToken
	}
	return stored, nil
}

func (f *fakeRefreshTokenRepo) Revoke(_ context.Context, token string) error {
	stored, ok := f.tokens[token]
	if !ok || stored.RevokedAt != nil {
		return auth.ErrInvalidToken
	}
	now := time.Now()
	stored.RevokedAt = &now
	f.tokens[token] = stored
	return nil
}

func (f *fakeRefreshTokenRepo) DeleteExpired(_ context.Context) (int64, error) {
	var deleted int64
	for token, stored := range f.tokens {
		if stored.ExpiresAt.Before(time.Now()) {
			delete(f.tokens, token)
			deleted++
		}
	}
	return deleted, nil
}

func newTestAuthService(userRepo *fakeUserRepo, tokenRepo *fakeRefreshTokenRepo) *AuthServiceImpl {
	jwtService := jwt.NewJWTService("test-secret-key", "1h", "24h")
	return &AuthServiceImpl{
		UserRepository:         userRepo,
		RefreshTokenRepository: tokenRepo,
		jwtService:             jwtService,
		now:                    time.Now,
	}
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, active bool) user.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	employeeID := "e0000000-0000-0000-0000-000000000001"
	u := user.User{
		ID:           "a0000000-0000-0000-0000-000000000001",
		CompanyID:    "c0ffee00-0000-0000-0000-000000000001",
		EmployeeID:   &employeeID,
		Email:        email,
		PasswordHash: string(hash),
		Role:         user.RoleStaff,
		IsActive:     active,
	}
	repo.users = append(repo.users, u)
	return u
}

func TestLogin(t *testing.T) {
	userRepo := &fakeUserRepo{}
	tokenRepo := newFakeRefreshTokenRepo()
	seedUser(t, userRepo, "alice@example.com", "password123", true)
	svc := newTestAuthService(userRepo, tokenRepo)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "staff", resp.Role)
	assert.Equal(t, "e0000000-0000-0000-0000-000000000001", resp.EmployeeID)

	// Refresh token is persisted for revocation
	_, err = tokenRepo.Get(context.Background(), resp.RefreshToken)
	assert.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := &fakeUserRepo{}
	seedUser(t, userRepo, "alice@example.com", "password123", true)
	svc := newTestAuthService(userRepo, newFakeRefreshTokenRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(&fakeUserRepo{}, newFakeRefreshTokenRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	userRepo := &fakeUserRepo{}
	seedUser(t, userRepo, "alice@example.com", "password123", false)
	svc := newTestAuthService(userRepo, newFakeRefreshTokenRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, user.ErrUserInactive)
}

func TestRefresh_RotatesToken(t *testing.T) {
	userRepo := &fakeUserRepo{}
	tokenRepo := newFakeRefreshTokenRepo()
	seedUser(t, userRepo, "alice@example.com", "password123", true)
	svc := newTestAuthService(userRepo, tokenRepo)

	loginResp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshResp, err := svc.Refresh(context.Background(), loginResp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshResp.AccessToken)
	assert.NotEqual(t, loginResp.RefreshToken, refreshResp.RefreshToken)

	// The presented token is single-use
	old, err := tokenRepo.Get(context.Background(), loginResp.RefreshToken)
	require.NoError(t, err)
	assert.NotNil(t, old.RevokedAt)

	_, err = svc.Refresh(context.Background(), loginResp.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	userRepo := &fakeUserRepo{}
	seedUser(t, userRepo, "alice@example.com", "password123", true)
	svc := newTestAuthService(userRepo, newFakeRefreshTokenRepo())

	loginResp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), loginResp.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_GarbageToken(t *testing.T) {
	svc := newTestAuthService(&fakeUserRepo{}, newFakeRefreshTokenRepo())

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	userRepo := &fakeUserRepo{}
	tokenRepo := newFakeRefreshTokenRepo()
	seedUser(t, userRepo, "alice@example.com", "password123", true)
	svc := newTestAuthService(userRepo, tokenRepo)

	loginResp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), loginResp.RefreshToken))

	stored, err := tokenRepo.Get(context.Background(), loginResp.RefreshToken)
	require.NoError(t, err)
	assert.NotNil(t, stored.RevokedAt)

	// Logging out without a token is a no-op
	assert.NoError(t, svc.Logout(context.Background(), ""))
}
