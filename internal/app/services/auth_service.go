package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/asrivastava/codecampus/internal/app/models"
	"github.com/asrivastava/codecampus/internal/app/models/dto"
	"github.com/asrivastava/codecampus/internal/app/repositories"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
	"github.com/asrivastava/codecampus/internal/pkg/auth"
	"github.com/asrivastava/codecampus/internal/pkg/filestorage"
	"github.com/asrivastava/codecampus/internal/pkg/logger"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest, avatar *multipart.FileHeader) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	stores     *repositories.Stores
	jwtService *auth.JWTService
	storage    filestorage.FileStorage
}

// NewAuthService creates a new AuthService
func NewAuthService(stores *repositories.Stores, jwtService *auth.JWTService, storage filestorage.FileStorage) AuthService {
	return &authServiceImpl{
		stores:     stores,
		jwtService: jwtService,
		storage:    storage,
	}
}

// Register creates a new account with the USER role and signs it in
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest, avatar *multipart.FileHeader) (*dto.TokenResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	avatarURL := ""
	if avatar != nil {
		avatarURL, err = s.storage.SaveFileWithPath(avatar, avatarDir)
		if err != nil {
			return nil, apperrors.NewDependencyError("failed to store avatar", err)
		}
	}

	user := &models.User{
		RegNumber: req.RegNumber,
		Username:  req.Username,
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  hashed,
		AvatarURL: avatarURL,
		RoleType:  models.RoleUser,
	}
	if err := s.stores.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Str("userId", user.ID.String()).Str("username", user.Username).Msg("User registered")
	return s.issueTokens(ctx, user)
}

// Login verifies credentials and issues a token pair. Unknown email and wrong
// password collapse into the same error.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.stores.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken exchanges a stored refresh token for a new pair. The old
// refresh token is rotated out.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	user, err := s.stores.Users.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}
	if err := s.stores.Users.SetRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	userResp := buildUserResponse(user)
	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		User:             &userResp,
	}, nil
}
