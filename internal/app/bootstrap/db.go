// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/hodayakashh/studyhub/internal/app/system/filestore"
	"github.com/hodayakashh/studyhub/internal/app/system/indexes"
)

// ConnectDB establishes the MongoDB connection and constructs the
// object storage backend selected in config.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	clientOpts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	files, err := buildFileStore(ctx, appCfg, logger)
	if err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, err
	}

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
		Files:         files,
	}, nil
}

func buildFileStore(ctx context.Context, appCfg AppConfig, logger *zap.Logger) (filestore.Store, error) {
	switch appCfg.StorageType {
	case "gcs":
		store, err := filestore.NewGCS(ctx, appCfg.StorageGCSBucket, appCfg.StorageGCSCredentials)
		if err != nil {
			return nil, fmt.Errorf("gcs storage init: %w", err)
		}
		logger.Info("using GCS file storage", zap.String("bucket", appCfg.StorageGCSBucket))
		return store, nil
	default:
		baseURL := strings.TrimRight(appCfg.BaseURL, "/") + appCfg.StorageLocalURL
		logger.Info("using local file storage",
			zap.String("path", appCfg.StorageLocalPath),
			zap.String("base_url", baseURL))
		return filestore.NewLocal(appCfg.StorageLocalPath, baseURL), nil
	}
}

// EnsureSchema creates the collection indexes, including the unique
// name indexes the find-or-create paths rely on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	logger.Info("database indexes ensured")
	return nil
}
