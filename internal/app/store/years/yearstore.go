// internal/app/store/years/yearstore.go
package yearstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hodayakashh/studyhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateName = errors.New("a study year with this name already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("study_years")}
}

// Create inserts a new StudyYear, setting NameCI and the created timestamp.
// The English name is required; it is the find-or-create match key.
func (s *Store) Create(ctx context.Context, y models.StudyYear) (models.StudyYear, error) {
	if strings.TrimSpace(y.Name.EN) == "" {
		return models.StudyYear{}, mongo.CommandError{Message: "name.en is required"}
	}
	if y.YearNumber <= 0 {
		return models.StudyYear{}, mongo.CommandError{Message: "year_number must be a positive integer"}
	}

	y.ID = primitive.NewObjectID()
	y.NameCI = text.Fold(y.Name.EN)
	y.CreatedAt = time.Now().UTC()

	_, err := s.c.InsertOne(ctx, y)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.StudyYear{}, ErrDuplicateName
		}
		return models.StudyYear{}, err
	}
	return y, nil
}

// List returns all study years sorted ascending by year_number.
func (s *Store) List(ctx context.Context) ([]models.StudyYear, error) {
	opts := options.Find().SetSort(bson.D{{Key: "year_number", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var years []models.StudyYear
	if err := cur.All(ctx, &years); err != nil {
		return nil, err
	}
	return years, nil
}

// GetByID returns a study year by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.StudyYear, error) {
	var y models.StudyYear
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&y); err != nil {
		return models.StudyYear{}, err
	}
	return y, nil
}

// FindOrCreate looks up a year by its folded English name and inserts y
// when no match exists. It returns the resolved id and whether a new
// document was created. The first match wins if duplicates already
// exist in the collection.
//
// The read-then-write pair is not atomic; the unique index on name_ci
// turns a lost race into a duplicate-key error, which is resolved by
// re-reading the winner.
func (s *Store) FindOrCreate(ctx context.Context, y models.StudyYear) (primitive.ObjectID, bool, error) {
	nameCI := text.Fold(y.Name.EN)

	var existing models.StudyYear
	err := s.c.FindOne(ctx, bson.M{"name_ci": nameCI}).Decode(&existing)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return primitive.NilObjectID, false, err
	}

	created, err := s.Create(ctx, y)
	if err == nil {
		return created.ID, true, nil
	}
	if errors.Is(err, ErrDuplicateName) {
		// Lost the race; the winner's document is there now.
		if ferr := s.c.FindOne(ctx, bson.M{"name_ci": nameCI}).Decode(&existing); ferr == nil {
			return existing.ID, false, nil
		}
	}
	return primitive.NilObjectID, false, err
}

// Count returns the number of study years.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
