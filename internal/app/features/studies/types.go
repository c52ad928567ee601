// internal/app/features/studies/types.go
package studies

import "github.com/hodayakashh/studyhub/internal/domain/models"

// createYearRequest is the JSON body for POST /api/years.
type createYearRequest struct {
	NameEN      string `json:"name_en"`
	NameHE      string `json:"name_he"`
	YearNumber  int    `json:"year_number"`
	Description string `json:"description"`
}

// createCourseRequest is the JSON body for POST /api/years/{yearID}/courses.
type createCourseRequest struct {
	NameEN      string `json:"name_en"`
	NameHE      string `json:"name_he"`
	Color       string `json:"color"`
	SemesterEN  string `json:"semester_en"`
	SemesterHE  string `json:"semester_he"`
	Description string `json:"description"`
}

// materialView is a material plus the display metadata for its type,
// so clients never need their own type table.
type materialView struct {
	models.Material
	TypeMeta models.TypeMeta `json:"type_meta"`
}

func viewOf(m models.Material) materialView {
	return materialView{Material: m, TypeMeta: models.MetaForType(m.Type)}
}

func viewsOf(ms []models.Material) []materialView {
	views := make([]materialView, 0, len(ms))
	for _, m := range ms {
		views = append(views, viewOf(m))
	}
	return views
}
