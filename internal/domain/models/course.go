// internal/domain/models/course.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Semester display values stored in Course.Semester.EN.
const (
	SemesterA      = "A"
	SemesterB      = "B"
	SemesterSummer = "summer"
)

// Course belongs to exactly one StudyYear. NameCI (folded English name)
// is the find-or-create match key within the owning year.
type Course struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	YearID primitive.ObjectID `bson:"year_id" json:"year_id"`

	Name   Localized `bson:"name" json:"name"`
	NameCI string    `bson:"name_ci" json:"-"`

	// Color is a display hint (hex string) carried through to the UI;
	// it has no semantic meaning server-side.
	Color    string    `bson:"color,omitempty" json:"color,omitempty"`
	Semester Localized `bson:"semester,omitempty" json:"semester,omitempty"`

	Description string `bson:"description,omitempty" json:"description,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
