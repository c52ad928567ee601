package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/hodayakashh/studyhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateYear creates a test study year with the given English name and number.
func (f *Fixtures) CreateYear(ctx context.Context, nameEN string, number int) models.StudyYear {
	f.t.Helper()

	y := models.StudyYear{
		ID:         primitive.NewObjectID(),
		Name:       models.Localized{EN: nameEN},
		NameCI:     text.Fold(nameEN),
		YearNumber: number,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := f.db.Collection("study_years").InsertOne(ctx, y); err != nil {
		f.t.Fatalf("failed to create test year: %v", err)
	}
	return y
}

// CreateCourse creates a test course under the given year.
func (f *Fixtures) CreateCourse(ctx context.Context, yearID primitive.ObjectID, nameEN string) models.Course {
	f.t.Helper()

	c := models.Course{
		ID:        primitive.NewObjectID(),
		YearID:    yearID,
		Name:      models.Localized{EN: nameEN},
		NameCI:    text.Fold(nameEN),
		Color:     "#3D52A0",
		Semester:  models.Localized{EN: models.SemesterA, HE: "א"},
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("courses").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}
	return c
}

// CreateMaterial creates a test material under the given course.
func (f *Fixtures) CreateMaterial(ctx context.Context, yearID, courseID primitive.ObjectID, titleEN string) models.Material {
	f.t.Helper()

	m := models.Material{
		ID:         primitive.NewObjectID(),
		YearID:     yearID,
		CourseID:   courseID,
		Title:      models.Localized{EN: titleEN},
		Type:       models.MaterialTypeSummary,
		FileURL:    "https://storage.googleapis.com/test-bucket/materials/" + titleEN + ".pdf",
		Tags:       []string{models.MaterialTypeSummary},
		UploadDate: time.Now().UTC(),
	}

	if _, err := f.db.Collection("materials").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test material: %v", err)
	}
	return m
}
