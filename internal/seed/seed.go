package seed

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/studyconnect/backend/internal/app/models"
	appRepos "github.com/studyconnect/backend/internal/app/repositories"
)

// CreateDefaultData provisions the bootstrap admin account when the
// SEED_ADMIN_SUBJECT environment variable is set. Everything else in
// the system is user generated.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	subject := os.Getenv("SEED_ADMIN_SUBJECT")
	if subject == "" {
		lgr.Debug().Msg("SEED_ADMIN_SUBJECT not set, skipping admin seed")
		return nil
	}
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@studyconnect.local"
	}

	userRepo := appRepos.NewUserRepository(dbPool)

	user, err := userRepo.EnsureUser(ctx, subject, email, "Administrator")
	if err != nil {
		lgr.Error().Err(err).Msg("Error provisioning admin account")
		return err
	}
	if user.Role == appModels.RoleAdmin {
		return nil
	}
	if err := userRepo.UpdateRole(ctx, user.ID, appModels.RoleAdmin); err != nil {
		lgr.Error().Err(err).Msg("Error promoting admin account")
		return err
	}

	lgr.Info().Str("subject", subject).Msg("Admin account provisioned")
	return nil
}
