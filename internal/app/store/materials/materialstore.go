// internal/app/store/materials/materialstore.go
package materialstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hodayakashh/studyhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c       *mongo.Collection
	courses *mongo.Collection
}

var ErrCourseNotFound = errors.New("course not found")

func New(db *mongo.Database) *Store {
	return &Store{
		c:       db.Collection("materials"),
		courses: db.Collection("courses"),
	}
}

// Create inserts a new Material under the course named by m.CourseID,
// stamping UploadDate with the server clock. The owning course must
// exist and belong to m.YearID: a material never references a missing
// or foreign course.
func (s *Store) Create(ctx context.Context, m models.Material) (models.Material, error) {
	if strings.TrimSpace(m.Title.EN) == "" {
		return models.Material{}, mongo.CommandError{Message: "title.en is required"}
	}
	if m.Type == "" {
		m.Type = models.DefaultMaterialType
	}
	if !models.IsValidMaterialType(m.Type) {
		return models.Material{}, mongo.CommandError{Message: "type must be one of: " + strings.Join(models.MaterialTypes, ", ")}
	}
	if !urlutil.IsValidAbsHTTPURL(m.FileURL) {
		return models.Material{}, mongo.CommandError{Message: "file_url must be a valid http(s) URL"}
	}
	if m.YearID.IsZero() || m.CourseID.IsZero() {
		return models.Material{}, mongo.CommandError{Message: "year_id and course_id are required"}
	}

	err := s.courses.FindOne(ctx, bson.M{"_id": m.CourseID, "year_id": m.YearID}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Material{}, ErrCourseNotFound
		}
		return models.Material{}, err
	}

	m.ID = primitive.NewObjectID()
	m.UploadDate = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.Material{}, err
	}
	return m, nil
}

// ListByCourse returns the materials of one course, each carrying its
// original server-assigned upload timestamp unmodified. Display
// formatting is the caller's concern.
func (s *Store) ListByCourse(ctx context.Context, yearID, courseID primitive.ObjectID) ([]models.Material, error) {
	cur, err := s.c.Find(ctx, bson.M{"year_id": yearID, "course_id": courseID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var materials []models.Material
	if err := cur.All(ctx, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

// GetByID returns a material by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Material, error) {
	var m models.Material
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return models.Material{}, err
	}
	return m, nil
}

// ListRecent returns the most recently uploaded materials across all
// courses, newest first, for the home page's featured list.
func (s *Store) ListRecent(ctx context.Context, limit int64) ([]models.Material, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "upload_date", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var materials []models.Material
	if err := cur.All(ctx, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

// Count returns the number of materials across all courses.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
