// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent
(CreateOne with a stable name and identical keys is a no-op on Mongo).
We aggregate errors so any problem is visible and startup can fail fast.

The unique indexes on the folded English names are what turn the
application-level find-or-create uniqueness convention into a real
store-level constraint: a lost read-then-insert race surfaces as a
duplicate-key error instead of a second document.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureStudyYears(ctx, db); err != nil {
		problems = append(problems, "study_years: "+err.Error())
	}
	if err := ensureCourses(ctx, db); err != nil {
		problems = append(problems, "courses: "+err.Error())
	}
	if err := ensureMaterials(ctx, db); err != nil {
		problems = append(problems, "materials: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureStudyYears(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("study_years")
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetName("uniq_years_nameci").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "year_number", Value: 1}},
			Options: options.Index().SetName("idx_years_number"),
		},
	}
	_, err := c.Indexes().CreateMany(ctx, models)
	return err
}

func ensureCourses(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("courses")
	models := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "year_id", Value: 1},
				{Key: "name_ci", Value: 1},
			},
			Options: options.Index().SetName("uniq_courses_year_nameci").SetUnique(true),
		},
	}
	_, err := c.Indexes().CreateMany(ctx, models)
	return err
}

func ensureMaterials(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("materials")
	models := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "year_id", Value: 1},
				{Key: "course_id", Value: 1},
			},
			Options: options.Index().SetName("idx_materials_year_course"),
		},
		{
			Keys:    bson.D{{Key: "upload_date", Value: -1}},
			Options: options.Index().SetName("idx_materials_upload_desc"),
		},
	}
	_, err := c.Indexes().CreateMany(ctx, models)
	return err
}
