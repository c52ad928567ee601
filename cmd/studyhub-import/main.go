// Command studyhub-import runs the batch content importer: it reads a
// CSV manifest of years, courses, and material files, uploads each
// file to object storage, and fills the database. Re-running with the
// same manifest reuses existing years and courses.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	coursestore "github.com/hodayakashh/studyhub/internal/app/store/courses"
	materialstore "github.com/hodayakashh/studyhub/internal/app/store/materials"
	yearstore "github.com/hodayakashh/studyhub/internal/app/store/years"
	"github.com/hodayakashh/studyhub/internal/app/system/filestore"
	"github.com/hodayakashh/studyhub/internal/app/system/indexes"
	"github.com/hodayakashh/studyhub/internal/app/system/timeouts"
	"github.com/hodayakashh/studyhub/internal/importer"
)

func main() {
	var (
		csvPath   = flag.String("csv", "", "path to the CSV manifest (required)")
		filesRoot = flag.String("root", ".", "directory localFilePath entries are resolved against")

		mongoURI = flag.String("mongo-uri", envOr("STUDYHUB_MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection URI")
		mongoDB  = flag.String("mongo-db", envOr("STUDYHUB_MONGO_DATABASE", "study_hub"), "MongoDB database name")

		storageType = flag.String("storage", envOr("STUDYHUB_STORAGE_TYPE", "local"), "storage backend: 'local' or 'gcs'")
		localPath   = flag.String("local-path", envOr("STUDYHUB_STORAGE_LOCAL_PATH", "./uploads"), "local storage path")
		baseURL     = flag.String("base-url", envOr("STUDYHUB_BASE_URL", "http://localhost:8080"), "base URL for local file links")
		localURL    = flag.String("local-url", envOr("STUDYHUB_STORAGE_LOCAL_URL", "/files"), "URL prefix for local files")
		gcsBucket   = flag.String("gcs-bucket", envOr("STUDYHUB_STORAGE_GCS_BUCKET", ""), "GCS bucket name")
		gcsCreds    = flag.String("gcs-credentials", envOr("STUDYHUB_STORAGE_GCS_CREDENTIALS", ""), "path to GCS service account key (blank uses ADC)")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *csvPath == "" {
		flag.Usage()
		logger.Fatal("missing required -csv flag")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Batch())
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(*mongoURI))
	if err != nil {
		logger.Fatal("mongo connect failed", zap.Error(err))
	}
	defer func() {
		disconnectCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		_ = client.Disconnect(disconnectCtx)
	}()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal("mongo ping failed", zap.Error(err))
	}
	db := client.Database(*mongoDB)

	if err := indexes.EnsureAll(ctx, db); err != nil {
		logger.Fatal("ensure indexes failed", zap.Error(err))
	}

	var files filestore.Store
	switch *storageType {
	case "gcs":
		if *gcsBucket == "" {
			logger.Fatal("storage 'gcs' requires -gcs-bucket")
		}
		gcs, err := filestore.NewGCS(ctx, *gcsBucket, *gcsCreds)
		if err != nil {
			logger.Fatal("gcs storage init failed", zap.Error(err))
		}
		defer gcs.Close()
		files = gcs
	case "local":
		files = filestore.NewLocal(*localPath, strings.TrimRight(*baseURL, "/")+*localURL)
	default:
		logger.Fatal("unknown storage backend", zap.String("storage", *storageType))
	}

	im := importer.New(importer.Stores{
		Years:     yearstore.New(db),
		Courses:   coursestore.New(db),
		Materials: materialstore.New(db),
	}, files, logger)

	sum, err := im.Run(ctx, *csvPath, *filesRoot)
	if err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}
	if sum.Failed > 0 {
		logger.Warn("import completed with failures",
			zap.Int("succeeded", sum.Succeeded), zap.Int("failed", sum.Failed))
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
