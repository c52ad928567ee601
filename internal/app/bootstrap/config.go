// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"

	"github.com/hodayakashh/studyhub/internal/app/system/htmlsanitize"
)

// appConfigKeys defines the configuration keys for StudyHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, storage_type, etc.
//   - Environment variables: STUDYHUB_MONGO_URI, STUDYHUB_STORAGE_TYPE, etc.
//   - Command-line flags: --mongo_uri, --storage_type, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "study_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// File storage configuration
	{Name: "storage_type", Default: "local", Desc: "Storage backend: 'local' or 'gcs'"},
	{Name: "storage_local_path", Default: "./uploads", Desc: "Local storage path for uploaded files"},
	{Name: "storage_local_url", Default: "/files", Desc: "URL prefix for serving local files"},

	// GCS configuration
	{Name: "storage_gcs_bucket", Default: "", Desc: "GCS bucket name"},
	{Name: "storage_gcs_credentials", Default: "", Desc: "Path to a GCS service account key file (blank uses application default credentials)"},

	// Base URL for deriving local file URLs
	{Name: "base_url", Default: "http://localhost:8080", Desc: "Externally visible base URL of this service"},

	// Canonical profile values
	{Name: "profile_name", Default: "Hodaya Kashkash", Desc: "Profile display name"},
	{Name: "profile_title", Default: "Industrial Engineering and Management Student", Desc: "Profile headline"},
	{Name: "profile_bio", Default: "", Desc: "Profile bio (HTML allowed, sanitized)"},
	{Name: "profile_github_url", Default: "", Desc: "Profile GitHub URL"},
	{Name: "profile_linkedin_url", Default: "", Desc: "Profile LinkedIn URL"},
	{Name: "profile_avatar_url", Default: "", Desc: "Profile avatar image URL"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, STUDYHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "STUDYHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		// File storage
		StorageType:      appValues.String("storage_type"),
		StorageLocalPath: appValues.String("storage_local_path"),
		StorageLocalURL:  appValues.String("storage_local_url"),

		// GCS
		StorageGCSBucket:      appValues.String("storage_gcs_bucket"),
		StorageGCSCredentials: appValues.String("storage_gcs_credentials"),

		// Base URL
		BaseURL: appValues.String("base_url"),

		// Canonical profile
		ProfileName:        appValues.String("profile_name"),
		ProfileTitle:       appValues.String("profile_title"),
		ProfileBio:         htmlsanitize.Sanitize(appValues.String("profile_bio")),
		ProfileGitHubURL:   appValues.String("profile_github_url"),
		ProfileLinkedInURL: appValues.String("profile_linkedin_url"),
		ProfileAvatarURL:   appValues.String("profile_avatar_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
//
// StudyHub validates the MongoDB URI format and the storage backend
// selection to catch configuration errors early, before attempting to
// connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	switch appCfg.StorageType {
	case "local":
		if appCfg.StorageLocalPath == "" {
			return fmt.Errorf("storage_type 'local' requires storage_local_path")
		}
	case "gcs":
		if appCfg.StorageGCSBucket == "" {
			return fmt.Errorf("storage_type 'gcs' requires storage_gcs_bucket")
		}
	default:
		return fmt.Errorf("unknown storage_type %q (expected 'local' or 'gcs')", appCfg.StorageType)
	}

	return nil
}
