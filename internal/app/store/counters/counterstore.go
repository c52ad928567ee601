// internal/app/store/counters/counterstore.go
package counterstore

import (
	"context"
	"errors"

	"github.com/hodayakashh/studyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is a monotonic counter collection ("likes" or "downloads").
//
// Counters are keyed by the material's English title (_id = title).
// All mutation goes through the store-level atomic $inc, so no
// client-side locking is needed; concurrent increments never lose
// updates.
type Store struct {
	c *mongo.Collection
}

// Collection names for the two counter kinds.
const (
	LikesCollection     = "likes"
	DownloadsCollection = "downloads"
)

func New(db *mongo.Database, collection string) *Store {
	return &Store{c: db.Collection(collection)}
}

// Increment bumps the counter for title by one, creating the document
// with count 1 when the title has never been seen, and returns the
// counter value after the increment.
func (s *Store) Increment(ctx context.Context, title string) (int64, error) {
	if title == "" {
		return 0, mongo.CommandError{Message: "counter title is required"}
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c models.Counter
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": title},
		bson.M{"$inc": bson.M{"count": int64(1)}},
		opts,
	).Decode(&c)
	if err != nil {
		return 0, err
	}
	return c.Count, nil
}

// Get returns the current count for title, or 0 when no counter exists.
func (s *Store) Get(ctx context.Context, title string) (int64, error) {
	var c models.Counter
	err := s.c.FindOne(ctx, bson.M{"_id": title}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return c.Count, nil
}

// Total sums every counter in the collection (the home page's
// "total downloads" stat).
func (s *Store) Total(ctx context.Context) (int64, error) {
	cur, err := s.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$count"}}}},
	})
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var out []struct {
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}
