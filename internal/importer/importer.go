// Package importer implements the batch content importer: it walks a
// CSV manifest describing years, courses, and material files, creates
// the hierarchy on first sight, uploads each file to object storage,
// and inserts one material document per row. Year and course lookups
// are find-or-create keyed on the English name, so re-running the
// importer never duplicates the hierarchy. Rows are processed strictly
// in order; a failed row is logged and skipped, never fatal.
package importer

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	coursestore "github.com/hodayakashh/studyhub/internal/app/store/courses"
	materialstore "github.com/hodayakashh/studyhub/internal/app/store/materials"
	yearstore "github.com/hodayakashh/studyhub/internal/app/store/years"
	"github.com/hodayakashh/studyhub/internal/app/system/csvutil"
	"github.com/hodayakashh/studyhub/internal/app/system/filestore"
	"github.com/hodayakashh/studyhub/internal/domain/models"
)

// ErrFileNotFound is returned for a row whose localFilePath does not
// resolve to a file under the configured root.
var ErrFileNotFound = errors.New("local file not found")

// Stores bundles the collection stores the importer writes through.
type Stores struct {
	Years     *yearstore.Store
	Courses   *coursestore.Store
	Materials *materialstore.Store
}

// Summary reports what a Run did.
type Summary struct {
	Processed        int // rows read from the CSV, including invalid ones
	Succeeded        int
	Failed           int
	YearsCreated     int
	CoursesCreated   int
	MaterialsCreated int
}

type Importer struct {
	stores Stores
	files  filestore.Store
	log    *zap.Logger
}

func New(stores Stores, files filestore.Store, log *zap.Logger) *Importer {
	return &Importer{stores: stores, files: files, log: log}
}

// Run imports the manifest at csvPath, resolving each row's
// localFilePath against filesRoot. It returns a non-nil error only
// when the manifest itself cannot be read; row failures are counted
// in the Summary and logged with the row's English title.
func (im *Importer) Run(ctx context.Context, csvPath, filesRoot string) (Summary, error) {
	var sum Summary

	f, err := os.Open(csvPath)
	if err != nil {
		return sum, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	parsed, err := csvutil.ParseMaterialsCSV(f, csvutil.DefaultParseOptions())
	if err != nil {
		return sum, fmt.Errorf("parse manifest: %w", err)
	}
	for _, re := range parsed.Errors {
		sum.Processed++
		sum.Failed++
		im.log.Warn("skipping invalid row",
			zap.Int("line", re.Line),
			zap.String("title", re.Title),
			zap.String("reason", re.Reason))
	}

	for _, row := range parsed.Rows {
		sum.Processed++
		if err := im.importRow(ctx, row, filesRoot, &sum); err != nil {
			sum.Failed++
			im.log.Warn("row import failed",
				zap.Int("line", row.Line),
				zap.String("title", row.TitleEN),
				zap.Error(err))
			continue
		}
		sum.Succeeded++
	}

	im.log.Info("import finished",
		zap.Int("processed", sum.Processed),
		zap.Int("succeeded", sum.Succeeded),
		zap.Int("failed", sum.Failed),
		zap.Int("years_created", sum.YearsCreated),
		zap.Int("courses_created", sum.CoursesCreated),
		zap.Int("materials_created", sum.MaterialsCreated))
	return sum, nil
}

func (im *Importer) importRow(ctx context.Context, row csvutil.MaterialCSVRow, filesRoot string, sum *Summary) error {
	yearID, created, err := im.stores.Years.FindOrCreate(ctx, models.StudyYear{
		Name:       models.Localized{EN: row.YearNameEN, HE: row.YearNameHE},
		YearNumber: row.YearNumber,
	})
	if err != nil {
		return fmt.Errorf("year %q: %w", row.YearNameEN, err)
	}
	if created {
		sum.YearsCreated++
	}

	courseID, created, err := im.stores.Courses.FindOrCreate(ctx, yearID, models.Course{
		Name:     models.Localized{EN: row.CourseNameEN, HE: row.CourseNameHE},
		Color:    row.CourseColor,
		Semester: models.Localized{EN: row.CourseSemesterEN, HE: row.CourseSemesterHE},
	})
	if err != nil {
		return fmt.Errorf("course %q: %w", row.CourseNameEN, err)
	}
	if created {
		sum.CoursesCreated++
	}

	localPath := filepath.Join(filesRoot, filepath.FromSlash(row.LocalFilePath))
	src, err := os.Open(localPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, row.LocalFilePath)
		}
		return fmt.Errorf("open %s: %w", row.LocalFilePath, err)
	}
	defer src.Close()

	objectPath := "materials/" + filepath.Base(row.LocalFilePath)
	err = im.files.Put(ctx, objectPath, src, &filestore.PutOptions{
		ContentType:  contentTypeFor(row.LocalFilePath),
		CacheControl: filestore.LongLivedCache,
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", objectPath, err)
	}

	_, err = im.stores.Materials.Create(ctx, models.Material{
		YearID:   yearID,
		CourseID: courseID,
		Title:    models.Localized{EN: row.TitleEN, HE: row.TitleHE},
		Type:     row.MaterialType,
		FileURL:  im.files.URL(objectPath),
		Tags:     []string{row.MaterialType, row.CourseNameEN},
	})
	if err != nil {
		return fmt.Errorf("material %q: %w", row.TitleEN, err)
	}
	sum.MaterialsCreated++
	return nil
}

func contentTypeFor(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
