// internal/domain/models/profile.go
package models

// Profile is the site owner's singleton profile document. Exactly one
// exists, stored under the fixed key ProfileDocID; it is reconciled to
// the canonical values once at startup rather than on page reads.
type Profile struct {
	ID          string `bson:"_id" json:"-"`
	Name        string `bson:"name" json:"name"`
	Title       string `bson:"title" json:"title"`
	Bio         string `bson:"bio" json:"bio"`
	GitHubURL   string `bson:"github_url" json:"github_url"`
	LinkedInURL string `bson:"linkedin_url" json:"linkedin_url"`
	AvatarURL   string `bson:"avatar_url" json:"avatar_url"`
}

// ProfileDocID is the fixed _id of the singleton profile document.
const ProfileDocID = "profile"
