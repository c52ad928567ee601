// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	countersfeature "github.com/hodayakashh/studyhub/internal/app/features/counters"
	healthfeature "github.com/hodayakashh/studyhub/internal/app/features/health"
	profilefeature "github.com/hodayakashh/studyhub/internal/app/features/profile"
	statsfeature "github.com/hodayakashh/studyhub/internal/app/features/stats"
	studiesfeature "github.com/hodayakashh/studyhub/internal/app/features/studies"
	coursestore "github.com/hodayakashh/studyhub/internal/app/store/courses"
	counterstore "github.com/hodayakashh/studyhub/internal/app/store/counters"
	materialstore "github.com/hodayakashh/studyhub/internal/app/store/materials"
	profilestore "github.com/hodayakashh/studyhub/internal/app/store/profiles"
	yearstore "github.com/hodayakashh/studyhub/internal/app/store/years"
	"github.com/hodayakashh/studyhub/internal/app/system/ratelimit"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// StudyHub mounts the JSON API under /api plus the health endpoint and,
// when local storage is in use, a static file server for uploaded
// material files.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	years := yearstore.New(deps.MongoDatabase)
	courses := coursestore.New(deps.MongoDatabase)
	materials := materialstore.New(deps.MongoDatabase)
	profiles := profilestore.New(deps.MongoDatabase)
	likes := counterstore.New(deps.MongoDatabase, counterstore.LikesCollection)
	downloads := counterstore.New(deps.MongoDatabase, counterstore.DownloadsCollection)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Uploaded material files, when stored on local disk. GCS objects
	// are served by Google directly.
	if appCfg.StorageType == "local" {
		r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))
	}

	studiesHandler := studiesfeature.NewHandler(years, courses, materials, deps.Files, logger)
	r.Mount("/api/years", studiesfeature.Routes(studiesHandler))
	r.Mount("/api/materials", studiesfeature.MaterialRoutes(studiesHandler))

	profileHandler := profilefeature.NewHandler(profiles, logger)
	r.Mount("/api/profile", profilefeature.Routes(profileHandler))

	statsHandler := statsfeature.NewHandler(years, courses, materials, likes, downloads, logger)
	r.Mount("/api/stats", statsfeature.Routes(statsHandler))

	// Counter increments are public writes, so throttle them per IP.
	incrementLimiter := ratelimit.New(60, time.Minute)
	countersHandler := countersfeature.NewHandler(likes, downloads, incrementLimiter, logger)
	r.Mount("/api/likes", countersfeature.LikeRoutes(countersHandler))
	r.Mount("/api/downloads", countersfeature.DownloadRoutes(countersHandler))

	return r, nil
}
