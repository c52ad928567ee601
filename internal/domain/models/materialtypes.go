// internal/domain/models/materialtypes.go
package models

// Canonical material type identifiers.
//
// These values are stored in the database in the Material.Type field and are
// used throughout the application as stable, language-agnostic keys.
// Human-facing labels for these types come from TypeMeta.
const (
	MaterialTypeLecture      = "lecture"
	MaterialTypeSummary      = "summary"
	MaterialTypeFormulaSheet = "formula_sheet"
	MaterialTypeHomework     = "homework"
)

// MaterialTypes is the full set of allowed material type identifiers.
//
// This slice is the single source of truth for validation. Any new type
// must be added here (and to materialTypeMeta) to be considered valid.
var MaterialTypes = []string{
	MaterialTypeLecture,
	MaterialTypeSummary,
	MaterialTypeFormulaSheet,
	MaterialTypeHomework,
}

// DefaultMaterialType is used when no specific type is provided.
const DefaultMaterialType = MaterialTypeSummary

// IsValidMaterialType reports whether t is one of the known types.
func IsValidMaterialType(t string) bool {
	for _, v := range MaterialTypes {
		if v == t {
			return true
		}
	}
	return false
}

// TypeMeta carries the display metadata associated with a material type.
// Icon names match the icon set the frontend ships with.
type TypeMeta struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var materialTypeMeta = map[string]TypeMeta{
	MaterialTypeLecture:      {Label: "Lecture Notes", Icon: "book-open", Color: "#3D52A0"},
	MaterialTypeSummary:      {Label: "Summary", Icon: "file-text", Color: "#7091E6"},
	MaterialTypeFormulaSheet: {Label: "Formula Sheet", Icon: "calculator", Color: "#8697C4"},
	MaterialTypeHomework:     {Label: "Homework", Icon: "pen-tool", Color: "#ADBBDA"},
}

// MetaForType returns the display metadata for a material type.
// Unrecognized values get the summary metadata so the UI always has
// something sensible to render.
func MetaForType(t string) TypeMeta {
	if m, ok := materialTypeMeta[t]; ok {
		return m
	}
	return materialTypeMeta[DefaultMaterialType]
}
