// internal/app/system/csvutil/materials.go
package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hodayakashh/studyhub/internal/domain/models"
)

// MaterialCSVRow is the normalized row produced by ParseMaterialsCSV.
// Hebrew fields may be empty; the English fields drive identity.
type MaterialCSVRow struct {
	Line int // 1-based line number in the source file

	YearNameEN string
	YearNameHE string
	YearNumber int

	CourseNameEN     string
	CourseNameHE     string
	CourseColor      string
	CourseSemesterEN string
	CourseSemesterHE string

	LocalFilePath string
	TitleEN       string
	TitleHE       string
	MaterialType  string // canonical lower-case
}

// RowError describes a row that failed validation during parsing.
type RowError struct {
	Line   int
	Title  string // English title if present, helps locate the row
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d (%s): %s", e.Line, e.Title, e.Reason)
}

// ParseResult holds the valid rows and any per-row validation errors.
// Parsing never aborts on a bad row; callers decide what to do with Errors.
type ParseResult struct {
	Rows   []MaterialCSVRow
	Errors []RowError
}

func (r *ParseResult) HasErrors() bool { return len(r.Errors) > 0 }

// ParseOptions controls parsing limits.
type ParseOptions struct {
	MaxRows int
}

func DefaultParseOptions() ParseOptions {
	return ParseOptions{MaxRows: MaxRows}
}

// columns in their expected order
var materialColumns = []string{
	"yearName_en", "yearName_he", "yearNumber",
	"courseName_en", "courseName_he", "courseColor",
	"courseSemester_en", "courseSemester_he",
	"localFilePath", "materialTitle_en", "materialTitle_he", "materialType",
}

// ParseMaterialsCSV reads all rows from r, skips a header if present,
// validates each row, and returns normalized rows plus per-row errors.
// It never writes anywhere; it is safe to call before any mutations.
func ParseMaterialsCSV(r io.Reader, opts ParseOptions) (*ParseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	result := &ParseResult{}
	line := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Errors = append(result.Errors, RowError{Line: line, Reason: err.Error()})
			continue
		}
		if line == 1 && isHeader(rec) {
			continue
		}
		if opts.MaxRows > 0 && len(result.Rows) >= opts.MaxRows {
			return result, fmt.Errorf("csv exceeds %d rows", opts.MaxRows)
		}
		row, ok := normalizeRow(line, rec, result)
		if !ok {
			continue
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	first := strings.TrimSpace(strings.TrimPrefix(rec[0], "\ufeff"))
	return strings.EqualFold(first, materialColumns[0]) ||
		strings.EqualFold(first, "year name")
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return strings.TrimSpace(rec[i])
	}
	return ""
}

func normalizeRow(line int, rec []string, result *ParseResult) (MaterialCSVRow, bool) {
	if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
		return MaterialCSVRow{}, false
	}
	row := MaterialCSVRow{
		Line:             line,
		YearNameEN:       strings.TrimPrefix(field(rec, 0), "\ufeff"),
		YearNameHE:       field(rec, 1),
		CourseNameEN:     field(rec, 3),
		CourseNameHE:     field(rec, 4),
		CourseColor:      field(rec, 5),
		CourseSemesterEN: field(rec, 6),
		CourseSemesterHE: field(rec, 7),
		LocalFilePath:    field(rec, 8),
		TitleEN:          field(rec, 9),
		TitleHE:          field(rec, 10),
		MaterialType:     strings.ToLower(field(rec, 11)),
	}

	fail := func(reason string) (MaterialCSVRow, bool) {
		result.Errors = append(result.Errors, RowError{Line: line, Title: row.TitleEN, Reason: reason})
		return MaterialCSVRow{}, false
	}

	if row.YearNameEN == "" {
		return fail("missing yearName_en")
	}
	n, err := strconv.Atoi(field(rec, 2))
	if err != nil || n <= 0 {
		return fail("yearNumber must be a positive integer")
	}
	row.YearNumber = n
	if row.CourseNameEN == "" {
		return fail("missing courseName_en")
	}
	if row.LocalFilePath == "" {
		return fail("missing localFilePath")
	}
	if row.TitleEN == "" {
		return fail("missing materialTitle_en")
	}
	if row.MaterialType == "" {
		row.MaterialType = models.DefaultMaterialType
	}
	if !models.IsValidMaterialType(row.MaterialType) {
		return fail("unknown materialType " + strconv.Quote(row.MaterialType))
	}
	return row, true
}
