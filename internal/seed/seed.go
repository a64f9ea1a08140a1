package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/selim/groupdesk/internal/app/models"
	appRepos "github.com/selim/groupdesk/internal/app/repositories"
	"github.com/selim/groupdesk/internal/pkg/apperrors"
	"github.com/selim/groupdesk/internal/pkg/auth"
)

const defaultAdminEmail = "admin@groupdesk.app"

// CreateDefaultData creates the default admin user and starter centres
// if they don't exist yet. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	centreRepo := appRepos.NewCentreRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (admin user, centres)...")
	var finalErr error // To collect potential errors without stopping the process

	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin user")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		passwordHash, err := auth.HashPassword("changeme")
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing default admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Email:        defaultAdminEmail,
				PasswordHash: passwordHash,
				FullName:     "Default Admin",
				Role:         appModels.RoleAdmin,
			}
			if _, err := userRepo.Create(ctx, admin); err != nil {
				lgr.Error().Err(err).Msg("Error creating default admin user")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin user created")
			}
		}
	}

	centres := []*appModels.Centre{
		{Name: "Oxford", Address: "Oxford, United Kingdom"},
		{Name: "Cambridge", Address: "Cambridge, United Kingdom"},
		{Name: "Dublin", Address: "Dublin, Ireland"},
	}
	for _, centre := range centres {
		if _, err := centreRepo.Create(ctx, centre); err != nil && !errors.Is(err, apperrors.ErrCentreAlreadyExists) {
			lgr.Error().Err(err).Str("centre", centre.Name).Msg("Error creating starter centre")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check/creation complete.")
	}
	return finalErr
}
