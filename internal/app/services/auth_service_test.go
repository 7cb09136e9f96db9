package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
	pkgauth "github.com/asrivastava/codecampus/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) (AuthService, *pkgauth.JWTService) {
	t.Helper()
	stores := newTestStores()
	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:       "unit-test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "codecampus.test",
	})
	return NewAuthService(stores, jwtService, nil), jwtService
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		RegNumber: "21BCE1041",
		Username:  "alice",
		FullName:  "Alice Example",
		Email:     "alice@campus.test",
		Password:  "correct-horse-battery",
	}
}

func TestRegisterIssuesTokens(t *testing.T) {
	svc, jwtService := newTestAuthService(t)
	ctx := context.Background()

	tokens, err := svc.Register(ctx, registerRequest(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	require.NotNil(t, tokens.User)
	assert.Equal(t, string(models.RoleUser), tokens.User.Role)

	claims, err := jwtService.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice@campus.test", claims.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest(), nil)
	require.NoError(t, err)

	dup := registerRequest()
	dup.Username = "alice2"
	dup.RegNumber = "21BCE1042"
	_, err = svc.Register(ctx, dup, nil)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, registerRequest(), nil)
	require.NoError(t, err)

	tokens, err := svc.Login(ctx, &dto.LoginRequest{Email: "alice@campus.test", Password: "correct-horse-battery"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "alice@campus.test", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Unknown email reads the same as a wrong password
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@campus.test", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()
	tokens, err := svc.Register(ctx, registerRequest(), nil)
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, refreshed.RefreshToken)

	// The old refresh token was rotated out
	_, err = svc.RefreshToken(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestRefreshTokenUnknown(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.RefreshToken(context.Background(), "never-issued")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
