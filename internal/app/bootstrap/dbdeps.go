// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hodayakashh/studyhub/internal/app/system/filestore"
)

// DBDeps holds database/back-end dependencies for the app.
// Extend this struct as the app evolves.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Files is the object storage backend uploaded material files
	// land in (local disk in dev, GCS in production).
	Files filestore.Store
}
