// internal/domain/models/studyyear.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StudyYear is the top level of the content hierarchy (First Year,
// Second Year, ...). Years own Courses, which own Materials.
//
// YearNumber is a display ordering key only; nothing ties it to the
// year's position in any collection. NameCI (folded English name) is
// the application-level uniqueness key used by find-or-create.
type StudyYear struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   Localized          `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"-"` // folded name.en, match key

	YearNumber  int    `bson:"year_number" json:"year_number"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
