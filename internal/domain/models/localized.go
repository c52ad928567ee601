package models

// Localized is a bilingual text value. English is the required canonical
// form and the match key for find-or-create lookups; Hebrew is optional
// display text that falls back to English when empty.
type Localized struct {
	EN string `bson:"en" json:"en"`
	HE string `bson:"he,omitempty" json:"he,omitempty"`
}

// Get returns the value for the given language code ("en" or "he"),
// falling back to English for unknown codes or missing translations.
func (l Localized) Get(lang string) string {
	if lang == "he" && l.HE != "" {
		return l.HE
	}
	return l.EN
}

// IsZero reports whether both translations are empty.
func (l Localized) IsZero() bool {
	return l.EN == "" && l.HE == ""
}
