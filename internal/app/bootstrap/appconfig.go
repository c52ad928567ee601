// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//   - Database connection timeouts
//
// AppConfig is where everything specific to StudyHub lives: the Mongo
// connection, the object storage backend for uploaded material files,
// and the canonical profile values the singleton profile document is
// reconciled to at startup.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// File storage configuration
	StorageType      string // Storage backend: "local" or "gcs"
	StorageLocalPath string // Local storage path (e.g., "./uploads")
	StorageLocalURL  string // URL prefix for serving local files (e.g., "/files")

	// GCS configuration (only used if StorageType is "gcs")
	StorageGCSBucket      string // GCS bucket name
	StorageGCSCredentials string // Path to a service account JSON key (blank uses ADC)

	// BaseURL is the externally visible base URL of this service. Local
	// storage derives absolute file URLs from it.
	BaseURL string // e.g., "https://studyhub.example.com" or "http://localhost:8080"

	// Canonical profile values. The singleton profile document is
	// upserted to these at startup.
	ProfileName        string
	ProfileTitle       string
	ProfileBio         string
	ProfileGitHubURL   string
	ProfileLinkedInURL string
	ProfileAvatarURL   string
}
