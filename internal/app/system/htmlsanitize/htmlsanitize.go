// Package htmlsanitize strips unsafe HTML from free-text fields before
// they are written to the database (profile bio, year and course
// descriptions). The admin surface is unauthenticated, so anything it
// accepts must be treated as untrusted input.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// Sanitize returns s with any markup not allowed for user-generated
// content removed.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
