// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	profilestore "github.com/hodayakashh/studyhub/internal/app/store/profiles"
	"github.com/hodayakashh/studyhub/internal/domain/models"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
//
// StudyHub reconciles the singleton profile document to the canonical
// values from config here, so profile reads never have to self-heal.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	canonical := models.Profile{
		ID:          models.ProfileDocID,
		Name:        appCfg.ProfileName,
		Title:       appCfg.ProfileTitle,
		Bio:         appCfg.ProfileBio,
		GitHubURL:   appCfg.ProfileGitHubURL,
		LinkedInURL: appCfg.ProfileLinkedInURL,
		AvatarURL:   appCfg.ProfileAvatarURL,
	}
	if err := profilestore.New(deps.MongoDatabase).EnsureCanonical(ctx, canonical); err != nil {
		return err
	}
	logger.Info("profile document reconciled", zap.String("name", canonical.Name))
	return nil
}
