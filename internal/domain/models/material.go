// internal/domain/models/material.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Material is a single study resource (a PDF of lecture notes, a
// summary, a formula sheet, a homework solution) belonging to exactly
// one Course.
//
// Title is always a Localized value with a required English form; the
// English title is also the key the like/download counters use, so two
// materials sharing an English title share counters.
type Material struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	YearID   primitive.ObjectID `bson:"year_id" json:"year_id"`
	CourseID primitive.ObjectID `bson:"course_id" json:"course_id"`

	Title Localized `bson:"title" json:"title"`
	Type  string    `bson:"type" json:"type"`

	// FileURL is the public object-storage URL of the uploaded file.
	FileURL string   `bson:"file_url" json:"file_url"`
	Tags    []string `bson:"tags,omitempty" json:"tags,omitempty"`

	// UploadDate is server-assigned at insert time and returned
	// unmodified by list operations; callers format it for display.
	UploadDate time.Time `bson:"upload_date" json:"upload_date"`
}
