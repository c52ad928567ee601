package filestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocal_PutAndURL(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "/files")
	ctx := context.Background()

	err := store.Put(ctx, "materials/limits.pdf", strings.NewReader("pdf-bytes"), &PutOptions{
		ContentType:  "application/pdf",
		CacheControl: LongLivedCache,
	})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "materials", "limits.pdf"))
	if err != nil {
		t.Fatalf("reading stored object: %v", err)
	}
	if string(data) != "pdf-bytes" {
		t.Errorf("stored content: got %q", data)
	}

	if got := store.URL("materials/limits.pdf"); got != "/files/materials/limits.pdf" {
		t.Errorf("URL: got %q", got)
	}
}

func TestLocal_PutRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "/files")

	err := store.Put(context.Background(), "../escape.pdf", strings.NewReader("x"), nil)
	if err == nil {
		// Clean anchors the path inside baseDir, so the file must not
		// have landed next to the temp dir.
		if _, statErr := os.Stat(filepath.Join(filepath.Dir(dir), "escape.pdf")); statErr == nil {
			t.Fatal("traversal escaped the base directory")
		}
	}
}

func TestLocal_DeleteMissingIsNoError(t *testing.T) {
	store := NewLocal(t.TempDir(), "/files")
	if err := store.Delete(context.Background(), "materials/never-there.pdf"); err != nil {
		t.Errorf("Delete of missing object: %v", err)
	}
}

func TestGCS_URL(t *testing.T) {
	g := &GCS{bucket: "hub-bucket"}
	want := "https://storage.googleapis.com/hub-bucket/materials/limits.pdf"
	if got := g.URL("materials/limits.pdf"); got != want {
		t.Errorf("URL: got %q, want %q", got, want)
	}
	if got := g.URL("/materials/limits.pdf"); got != want {
		t.Errorf("URL with leading slash: got %q, want %q", got, want)
	}
}
