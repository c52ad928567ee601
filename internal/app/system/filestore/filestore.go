// Package filestore abstracts the object storage that uploaded material
// files land in. Two backends exist: Local (development and tests) and
// GCS (production). Both serve files by stable public URL; the URL for
// a given path is derived deterministically, never stored state.
package filestore

import (
	"context"
	"io"
)

// PutOptions carries per-object metadata for Put.
type PutOptions struct {
	// ContentType of the object, e.g. "application/pdf".
	ContentType string
	// CacheControl header served with the object. Uploaded materials
	// are immutable, so callers normally pass LongLivedCache.
	CacheControl string
}

// LongLivedCache is the Cache-Control value for uploaded materials
// (one year; files are content-addressed by path and never rewritten).
const LongLivedCache = "public, max-age=31536000"

// Store is an object storage backend.
type Store interface {
	// Put writes the object at path, making it publicly readable.
	Put(ctx context.Context, path string, r io.Reader, opts *PutOptions) error
	// Delete removes the object at path. Deleting a missing object is
	// not an error.
	Delete(ctx context.Context, path string) error
	// URL returns the public URL for the object at path.
	URL(path string) string
}
