package importer_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	coursestore "github.com/hodayakashh/studyhub/internal/app/store/courses"
	materialstore "github.com/hodayakashh/studyhub/internal/app/store/materials"
	yearstore "github.com/hodayakashh/studyhub/internal/app/store/years"
	"github.com/hodayakashh/studyhub/internal/app/system/filestore"
	"github.com/hodayakashh/studyhub/internal/importer"
	"github.com/hodayakashh/studyhub/internal/testutil"
)

const manifestHeader = "yearName_en,yearName_he,yearNumber,courseName_en,courseName_he,courseColor,courseSemester_en,courseSemester_he,localFilePath,materialTitle_en,materialTitle_he,materialType\n"

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func newImporter(t *testing.T) (*importer.Importer, importer.Stores, *filestore.Local) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	stores := importer.Stores{
		Years:     yearstore.New(db),
		Courses:   coursestore.New(db),
		Materials: materialstore.New(db),
	}
	files := filestore.NewLocal(t.TempDir(), "http://localhost:8080/files")
	return importer.New(stores, files, zap.NewNop()), stores, files
}

func TestRun_BuildsHierarchyOnce(t *testing.T) {
	im, stores, files := newImporter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	root := t.TempDir()
	writeFile(t, root, "calc/limits.pdf", "limits")
	writeFile(t, root, "calc/derivatives.pdf", "derivatives")

	manifest := manifestHeader +
		"First Year,שנה א,1,Calculus 1,,#3D52A0,Semester A,,calc/limits.pdf,Limits Lecture,,lecture\n" +
		"First Year,שנה א,1,Calculus 1,,#3D52A0,Semester A,,calc/derivatives.pdf,Derivatives Summary,,summary\n"
	csvPath := filepath.Join(root, "manifest.csv")
	writeFile(t, root, "manifest.csv", manifest)

	sum, err := im.Run(ctx, csvPath, root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Processed != 2 || sum.Succeeded != 2 || sum.Failed != 0 {
		t.Fatalf("summary = %+v, want 2 processed, 2 succeeded", sum)
	}
	if sum.YearsCreated != 1 {
		t.Errorf("YearsCreated = %d, want 1", sum.YearsCreated)
	}
	if sum.CoursesCreated != 1 {
		t.Errorf("CoursesCreated = %d, want 1", sum.CoursesCreated)
	}
	if sum.MaterialsCreated != 2 {
		t.Errorf("MaterialsCreated = %d, want 2", sum.MaterialsCreated)
	}

	if n, _ := stores.Years.Count(ctx); n != 1 {
		t.Errorf("year count = %d, want 1", n)
	}
	if n, _ := stores.Courses.Count(ctx); n != 1 {
		t.Errorf("course count = %d, want 1", n)
	}
	if n, _ := stores.Materials.Count(ctx); n != 2 {
		t.Errorf("material count = %d, want 2", n)
	}

	// The uploaded object lands under materials/<basename> and the
	// stored URL points at it.
	uploaded := filepath.Join(files.BaseDir(), "materials", "limits.pdf")
	if _, err := os.Stat(uploaded); err != nil {
		t.Errorf("uploaded object missing: %v", err)
	}
	recent, err := stores.Materials.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	want := "http://localhost:8080/files/materials/derivatives.pdf"
	found := false
	for _, m := range recent {
		if m.FileURL == want {
			found = true
		}
	}
	if !found {
		t.Errorf("no material with FileURL %q; got %+v", want, recent)
	}
}

func TestRun_MissingFileSkipsRowOnly(t *testing.T) {
	im, stores, _ := newImporter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	root := t.TempDir()
	writeFile(t, root, "algo/sorting.pdf", "sorting")

	manifest := manifestHeader +
		"Second Year,,2,Algorithms,,,,,algo/missing.pdf,Lost Lecture,,lecture\n" +
		"Second Year,,2,Algorithms,,,,,algo/sorting.pdf,Sorting Lecture,,lecture\n"
	writeFile(t, root, "manifest.csv", manifest)

	sum, err := im.Run(ctx, filepath.Join(root, "manifest.csv"), root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Succeeded != 1 || sum.Failed != 1 {
		t.Fatalf("summary = %+v, want 1 succeeded 1 failed", sum)
	}
	if n, _ := stores.Materials.Count(ctx); n != 1 {
		t.Errorf("material count = %d, want 1", n)
	}
	// The failed row still created its year and course before the
	// file lookup happened.
	if n, _ := stores.Courses.Count(ctx); n != 1 {
		t.Errorf("course count = %d, want 1", n)
	}
}

func TestRun_RerunReusesHierarchy(t *testing.T) {
	im, stores, _ := newImporter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	root := t.TempDir()
	writeFile(t, root, "calc/limits.pdf", "limits")
	manifest := manifestHeader +
		"First Year,,1,Calculus 1,,,,,calc/limits.pdf,Limits Lecture,,lecture\n"
	writeFile(t, root, "manifest.csv", manifest)

	csvPath := filepath.Join(root, "manifest.csv")
	if _, err := im.Run(ctx, csvPath, root); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	sum, err := im.Run(ctx, csvPath, root)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if sum.YearsCreated != 0 || sum.CoursesCreated != 0 {
		t.Errorf("second run created hierarchy: %+v", sum)
	}
	if n, _ := stores.Years.Count(ctx); n != 1 {
		t.Errorf("year count = %d, want 1", n)
	}
	if n, _ := stores.Courses.Count(ctx); n != 1 {
		t.Errorf("course count = %d, want 1", n)
	}
	// Materials are plain inserts, so the second run adds another.
	if n, _ := stores.Materials.Count(ctx); n != 2 {
		t.Errorf("material count = %d, want 2", n)
	}
}

func TestRun_InvalidRowsCountedAsFailed(t *testing.T) {
	im, _, _ := newImporter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	root := t.TempDir()
	writeFile(t, root, "calc/limits.pdf", "limits")
	manifest := manifestHeader +
		",,1,Calculus 1,,,,,calc/limits.pdf,No Year,,lecture\n" +
		"First Year,,1,Calculus 1,,,,,calc/limits.pdf,Good,,lecture\n"
	writeFile(t, root, "manifest.csv", manifest)

	sum, err := im.Run(ctx, filepath.Join(root, "manifest.csv"), root)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Processed != 2 || sum.Succeeded != 1 || sum.Failed != 1 {
		t.Errorf("summary = %+v, want 2/1/1", sum)
	}
}

func TestRun_MissingManifest(t *testing.T) {
	im, _, _ := newImporter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := im.Run(ctx, filepath.Join(t.TempDir(), "nope.csv"), t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing manifest")
	}
}
