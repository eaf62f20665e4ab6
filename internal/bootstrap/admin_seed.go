package bootstrap

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/formastudio/forma-api/internal/config"
	"github.com/formastudio/forma-api/internal/modules/model"
	"github.com/formastudio/forma-api/internal/modules/repo"
)

// EnsureAdminRole promotes the configured bootstrap account to admin when the
// service starts. Accounts are created by the auth provider, so the profile
// may not exist yet on a fresh deployment; that is not an error, the next
// restart after signup will pick it up.
func EnsureAdminRole(ctx context.Context, db *gorm.DB, cfg *config.Config, log *zap.Logger) error {
	email := cfg.Root.BootstrapAdminEmail
	if email == "" {
		return nil
	}

	users := repo.NewUserRepo(db)

	profile, err := users.GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Info("bootstrap admin profile not found yet", zap.String("email", email))
			return nil
		}
		return err
	}

	if err := users.SetRole(ctx, profile.ID, model.RoleAdmin); err != nil {
		return err
	}
	log.Info("bootstrap admin ensured", zap.String("user_id", profile.ID.String()))
	return nil
}
