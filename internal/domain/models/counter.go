// internal/domain/models/counter.go
package models

// Counter is a like or download tally for one material.
//
// Counters are keyed by the material's English title, not its id, which
// mirrors how the frontend addresses them; two materials with identical
// titles therefore share a counter. Count only ever moves up, via the
// store's atomic increment.
type Counter struct {
	Title string `bson:"_id" json:"title"`
	Count int64  `bson:"count" json:"count"`
}
