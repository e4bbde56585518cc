package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/deniz/courseboard/internal/app/models"
	appRepos "github.com/deniz/courseboard/internal/app/repositories"
	"github.com/deniz/courseboard/internal/config"
)

// EnsureDefaultAdmin creates the default ADMIN account when it does not
// exist yet. Skipped entirely when no admin password is configured.
func EnsureDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Password == "" {
		lgr.Info().Msg("No admin password configured, skipping default admin creation")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		return fmt.Errorf("error checking if admin user exists: %w", err)
	}
	if exists {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	admin := &appModels.User{
		Name:     "System Administrator",
		Email:    cfg.Admin.Email,
		Password: string(hashedPassword),
		RoleType: appModels.RoleAdmin,
	}

	adminID, err := userRepo.Create(ctx, admin)
	if err != nil {
		return fmt.Errorf("error creating admin user: %w", err)
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default admin user created")
	return nil
}
