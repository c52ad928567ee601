package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCS stores objects in a Google Cloud Storage bucket and serves them
// from the bucket's public endpoint:
//
//	https://storage.googleapis.com/<bucket>/<path>
//
// Objects are uploaded with a long-lived cache header and marked
// publicly readable, matching how the site's files have always been
// served.
type GCS struct {
	client *storage.Client
	bucket string
}

// NewGCS creates a GCS store for the named bucket. Credentials come
// from the environment (application default credentials or an explicit
// service-account key file path).
func NewGCS(ctx context.Context, bucket, credentialsFile string) (*GCS, error) {
	if bucket == "" {
		return nil, errors.New("gcs bucket name is required")
	}

	opts := []option.ClientOption{option.WithScopes(storage.ScopeReadWrite)}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCS{client: client, bucket: bucket}, nil
}

func (g *GCS) Put(ctx context.Context, path string, r io.Reader, opts *PutOptions) error {
	obj := g.client.Bucket(g.bucket).Object(path)

	w := obj.NewWriter(ctx)
	if opts != nil {
		w.ContentType = opts.ContentType
		w.CacheControl = opts.CacheControl
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return fmt.Errorf("write object to gcs: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close gcs writer: %w", err)
	}

	// Serve to anonymous readers; the site links straight at the bucket.
	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return fmt.Errorf("make object public: %w", err)
	}
	return nil
}

func (g *GCS) Delete(ctx context.Context, path string) error {
	err := g.client.Bucket(g.bucket).Object(path).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return err
	}
	return nil
}

func (g *GCS) URL(path string) string {
	return "https://storage.googleapis.com/" + g.bucket + "/" + strings.TrimLeft(path, "/")
}

// Close releases the underlying client.
func (g *GCS) Close() error {
	return g.client.Close()
}
