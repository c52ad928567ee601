// internal/app/store/courses/coursestore.go
package coursestore

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
)

type Store struct {
	c     *mongo.Collection
	years *mongo.Collection
}

var (
	ErrDuplicateName = errors.New("a course with this name already exists in this year")
	ErrYearNotFound  = errors.New("study year not found")
)

func New(db *mongo.Database) *Store {
	return &Store{
		c:     db.Collection("courses"),
		years: db.Collection("study_years"),
	}
}

// Create inserts a new Course under the year named by c.YearID, setting
// NameCI and the created timestamp. The owning year must exist: a course
// never dangles.
func (s *Store) Create(ctx context.Context, c models.Course) (models.Course, error) {
	if strings.TrimSpace(c.Name.EN) == "" {
		return models.Course{}, mongo.CommandError{Message: "name.en is required"}
	}
	if c.YearID.IsZero() {
		return models.Course{}, mongo.CommandError{Message: "year_id is required"}
	}

	if err := s.years.FindOne(ctx, bson.M{"_id": c.YearID}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Course{}, ErrYearNotFound
		}
		return models.Course{}, err
	}

	c.ID = primitive.NewObjectID()
	c.NameCI = text.Fold(c.Name.EN)
	c.CreatedAt = time.Now().UTC()

	_, err := s.c.InsertOne(ctx, c)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Course{}, ErrDuplicateName
		}
		return models.Course{}, err
	}
	return c, nil
}

// ListByYear returns the courses belonging to the given year in the
// store's insertion order; callers that need a particular ordering
// sort for themselves.
func (s *Store) ListByYear(ctx context.Context, yearID primitive.ObjectID) ([]models.Course, error) {
	cur, err := s.c.Find(ctx, bson.M{"year_id": yearID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetByID returns a course by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Course, error) {
	var c models.Course
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return models.Course{}, err
	}
	return c, nil
}

// FindOrCreate looks up a course inside the given year by its folded
// English name and inserts c when no match exists. Returns the resolved
// id and whether a new document was created; first match wins when
// duplicates predate the unique index.
func (s *Store) FindOrCreate(ctx context.Context, yearID primitive.ObjectID, c models.Course) (primitive.ObjectID, bool, error) {
	nameCI := text.Fold(c.Name.EN)
	filter := bson.M{"year_id": yearID, "name_ci": nameCI}

	var existing models.Course
	err := s.c.FindOne(ctx, filter).Decode(&existing)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return primitive.NilObjectID, false, err
	}

	c.YearID = yearID
	created, err := s.Create(ctx, c)
	if err == nil {
		return created.ID, true, nil
	}
	if errors.Is(err, ErrDuplicateName) {
		if ferr := s.c.FindOne(ctx, filter).Decode(&existing); ferr == nil {
			return existing.ID, false, nil
		}
	}
	return primitive.NilObjectID, false, err
}

// Count returns the number of courses across all years.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
