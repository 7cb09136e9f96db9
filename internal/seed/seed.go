package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appModels "github.com/asrivastava/codecampus/internal/app/models"
	appRepos "github.com/asrivastava/codecampus/internal/app/repositories"
	"github.com/asrivastava/codecampus/internal/config"
	"github.com/asrivastava/codecampus/internal/pkg/apperrors"
	pkgAuth "github.com/asrivastava/codecampus/internal/pkg/auth"
)

// CreateDefaultAdmin creates the bootstrap admin account if it doesn't exist.
// Skipped when no admin password is configured.
func CreateDefaultAdmin(ctx context.Context, stores *appRepos.Stores, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Password == "" {
		lgr.Info().Msg("No admin password configured, skipping admin seed")
		return nil
	}

	if _, err := stores.Users.GetByEmail(ctx, cfg.Admin.Email); err == nil {
		lgr.Debug().Str("email", cfg.Admin.Email).Msg("Admin account already present")
		return nil
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hashed, err := pkgAuth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		RegNumber: "ADMIN-0001",
		Username:  cfg.Admin.Username,
		FullName:  "CodeCampus Admin",
		Email:     cfg.Admin.Email,
		Password:  hashed,
		RoleType:  appModels.RoleAdmin,
	}

	if err := stores.Users.Create(ctx, admin); err != nil {
		// Racing instances may have seeded it between the lookup and the insert
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) || errors.Is(err, apperrors.ErrUsernameExists) {
			lgr.Debug().Msg("Admin account created concurrently")
			return nil
		}
		return err
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Default admin account created")
	return nil
}
