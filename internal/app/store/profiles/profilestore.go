// internal/app/store/profiles/profilestore.go
package profilestore

import (
	"context"

	"github.com/hodayakashh/studyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("profiles")}
}

// Get returns the singleton profile document.
// Returns mongo.ErrNoDocuments if EnsureCanonical has never run.
func (s *Store) Get(ctx context.Context) (models.Profile, error) {
	var p models.Profile
	err := s.c.FindOne(ctx, bson.M{"_id": models.ProfileDocID}).Decode(&p)
	if err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// EnsureCanonical upserts the singleton profile to the canonical value.
// It is idempotent and is called once from the startup hook; page reads
// never write.
func (s *Store) EnsureCanonical(ctx context.Context, p models.Profile) error {
	p.ID = models.ProfileDocID
	opts := options.Replace().SetUpsert(true)
	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": models.ProfileDocID}, p, opts)
	return err
}
