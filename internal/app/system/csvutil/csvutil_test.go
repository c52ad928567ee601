package csvutil

import (
	"strings"
	"testing"
)

const sampleHeader = "yearName_en,yearName_he,yearNumber,courseName_en,courseName_he,courseColor,courseSemester_en,courseSemester_he,localFilePath,materialTitle_en,materialTitle_he,materialType"

func TestParseMaterialsCSV_ValidRows(t *testing.T) {
	csv := sampleHeader + `
First Year,שנה א,1,Calculus 1,חדו"א 1,#3D52A0,Semester A,סמסטר א,calc/limits.pdf,Limits Lecture,הרצאת גבולות,lecture
First Year,שנה א,1,Calculus 1,חדו"א 1,#3D52A0,Semester A,סמסטר א,calc/derivatives.pdf,Derivatives Summary,סיכום נגזרות,summary`

	result, err := ParseMaterialsCSV(strings.NewReader(csv), DefaultParseOptions())
	if err != nil {
		t.Fatalf("ParseMaterialsCSV() error = %v", err)
	}
	if result.HasErrors() {
		t.Fatalf("ParseMaterialsCSV() unexpected errors: %v", result.Errors)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("ParseMaterialsCSV() got %d rows, want 2", len(result.Rows))
	}

	row := result.Rows[0]
	if row.YearNameEN != "First Year" {
		t.Errorf("Row 0 YearNameEN = %q, want %q", row.YearNameEN, "First Year")
	}
	if row.YearNumber != 1 {
		t.Errorf("Row 0 YearNumber = %d, want 1", row.YearNumber)
	}
	if row.CourseNameEN != "Calculus 1" {
		t.Errorf("Row 0 CourseNameEN = %q, want %q", row.CourseNameEN, "Calculus 1")
	}
	if row.LocalFilePath != "calc/limits.pdf" {
		t.Errorf("Row 0 LocalFilePath = %q, want %q", row.LocalFilePath, "calc/limits.pdf")
	}
	if row.TitleEN != "Limits Lecture" {
		t.Errorf("Row 0 TitleEN = %q, want %q", row.TitleEN, "Limits Lecture")
	}
	if row.MaterialType != "lecture" {
		t.Errorf("Row 0 MaterialType = %q, want %q", row.MaterialType, "lecture")
	}
}

func TestParseMaterialsCSV_NoHeader(t *testing.T) {
	csv := `First Year,,1,Calculus 1,,,,,calc/a.pdf,Lecture A,,lecture
Second Year,,2,Algorithms,,,,,algo/b.pdf,Lecture B,,lecture`

	result, err := ParseMaterialsCSV(strings.NewReader(csv), DefaultParseOptions())
	if err != nil {
		t.Fatalf("ParseMaterialsCSV() error = %v", err)
	}
	if len(result.Rows) != 2 {
		t.Errorf("ParseMaterialsCSV() got %d rows, want 2", len(result.Rows))
	}
}

func TestParseMaterialsCSV_BOMHandling(t *testing.T) {
	csv := "\ufeff" + sampleHeader + "\nFirst Year,,1,Calculus 1,,,,,calc/a.pdf,Lecture A,,lecture"

	result, err := ParseMaterialsCSV(strings.NewReader(csv), DefaultParseOptions())
	if err != nil {
		t.Fatalf("ParseMaterialsCSV() error = %v", err)
	}
	if result.HasErrors() {
		t.Errorf("ParseMaterialsCSV() unexpected errors with BOM: %v", result.Errors)
	}
	if len(result.Rows) != 1 {
		t.Errorf("ParseMaterialsCSV() got %d rows, want 1", len(result.Rows))
	}
}

func TestParseMaterialsCSV_EmptyFile(t *testing.T) {
	result, err := ParseMaterialsCSV(strings.NewReader(""), DefaultParseOptions())
	if err != nil {
		t.Fatalf("ParseMaterialsCSV() error = %v", err)
	}
	if len(result.Rows) != 0 {
		t.Errorf("ParseMaterialsCSV() got %d rows, want 0", len(result.Rows))
	}
}

func TestParseMaterialsCSV_DefaultsMaterialType(t *testing.T) {
	csv := `First Year,,1,Calculus 1,,,,,calc/a.pdf,Untyped Notes,,`

	result, err := ParseMaterialsCSV(strings.NewReader(csv), DefaultParseOptions())
	if err != nil {
		t.Fatalf("ParseMaterialsCSV() error = %v", err)
	}
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(result.Rows))
	}
	if got := result.Rows[0].MaterialType; got != "summary" {
		t.Errorf("MaterialType = %q, want %q", got, "summary")
	}
}

func TestParseMaterialsCSV_BadRowsReported(t *testing.T) {
	csv := sampleHeader + `
,, 1,Calculus 1,,,,,calc/a.pdf,No Year Row,,lecture
First Year,,zero,Calculus 1,,,,,calc/a.pdf,Bad Number Row,,lecture
First Year,,1,Calculus 1,,,,,,Missing Path Row,,lecture
First Year,,1,Calculus 1,,,,,calc/a.pdf,Bad Type Row,,exam
First Year,,1,Calculus 1,,,,,calc/ok.pdf,Good Row,,lecture`

	result, err := ParseMaterialsCSV(strings.NewReader(csv), DefaultParseOptions())
	if err != nil {
		t.Fatalf("ParseMaterialsCSV() error = %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("got %d valid rows, want 1", len(result.Rows))
	}
	if result.Rows[0].TitleEN != "Good Row" {
		t.Errorf("surviving row TitleEN = %q, want %q", result.Rows[0].TitleEN, "Good Row")
	}
	if len(result.Errors) != 4 {
		t.Fatalf("got %d row errors, want 4: %v", len(result.Errors), result.Errors)
	}
	for _, re := range result.Errors {
		if re.Line < 2 || re.Line > 5 {
			t.Errorf("row error line %d out of expected range", re.Line)
		}
	}
}

func TestParseMaterialsCSV_MaxRows(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 5; i++ {
		b.WriteString("First Year,,1,Calculus 1,,,,,calc/a.pdf,Row,,lecture\n")
	}

	_, err := ParseMaterialsCSV(strings.NewReader(b.String()), ParseOptions{MaxRows: 3})
	if err == nil {
		t.Fatal("expected error when row count exceeds MaxRows")
	}
}
