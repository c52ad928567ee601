package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local stores objects on the local filesystem under a base directory
// and serves them under a URL prefix (the app mounts a file server
// there). Used in development and tests.
type Local struct {
	baseDir string
	baseURL string
}

// NewLocal creates a Local store rooted at baseDir, serving under
// baseURL (e.g. "/files").
func NewLocal(baseDir, baseURL string) *Local {
	return &Local{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (l *Local) fullPath(path string) (string, error) {
	clean := filepath.Clean("/" + path)
	full := filepath.Join(l.baseDir, clean)
	// Clean above anchors the path; a traversal attempt cannot escape baseDir.
	if !strings.HasPrefix(full, filepath.Clean(l.baseDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid object path %q", path)
	}
	return full, nil
}

func (l *Local) Put(ctx context.Context, path string, r io.Reader, opts *PutOptions) error {
	full, err := l.fullPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create object directory: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("create object file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("write object: %w", err)
	}
	return f.Close()
}

func (l *Local) Delete(ctx context.Context, path string) error {
	full, err := l.fullPath(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (l *Local) URL(path string) string {
	return l.baseURL + "/" + strings.TrimLeft(path, "/")
}

// BaseDir returns the root directory objects are written under,
// for mounting a static file server in development.
func (l *Local) BaseDir() string {
	return l.baseDir
}
