// internal/app/features/studies/upload.go
package studies

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hodayakashh/studyhub/internal/app/system/filestore"
)

// uploadFile stores an admin-uploaded file with a unique path and
// returns that path. The path is generated as:
// materials/YYYY/MM/uuid-filename
func uploadFile(ctx context.Context, store filestore.Store, filename string, reader io.Reader, contentType string) (string, error) {
	now := time.Now().UTC()
	dateDir := fmt.Sprintf("materials/%04d/%02d", now.Year(), now.Month())
	uniqueName := fmt.Sprintf("%s-%s", uuid.New().String()[:8], sanitizeFilename(filename))
	path := filepath.ToSlash(filepath.Join(dateDir, uniqueName))

	opts := &filestore.PutOptions{
		ContentType:  contentType,
		CacheControl: filestore.LongLivedCache,
	}
	if err := store.Put(ctx, path, reader, opts); err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return path, nil
}

// sanitizeFilename removes or replaces characters that could be problematic in filenames.
func sanitizeFilename(filename string) string {
	// Get just the filename, not any path components
	filename = filepath.Base(filename)

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		// Truncate but preserve extension if present
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}

	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}

// detectContentType attempts to detect the content type from the file content.
func detectContentType(file io.ReadSeeker) string {
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	file.Seek(0, io.SeekStart) // Reset for later reading

	if n == 0 {
		return "application/octet-stream"
	}
	return http.DetectContentType(buf[:n])
}
