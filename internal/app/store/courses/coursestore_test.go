package coursestore_test

import (
	"testing"

	coursestore "github.com/hodayakashh/studyhub/internal/app/store/courses"
	"github.com/hodayakashh/studyhub/internal/domain/models"
	"github.com/hodayakashh/studyhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	store := coursestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	year := fix.CreateYear(ctx, "First Year", 1)

	created, err := store.Create(ctx, models.Course{
		YearID:   year.ID,
		Name:     models.Localized{EN: "Linear Algebra", HE: "אלגברה לינארית"},
		Color:    "#7091E6",
		Semester: models.Localized{EN: models.SemesterA, HE: "א"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.NameCI == "" {
		t.Error("expected NameCI to be set")
	}
	if created.YearID != year.ID {
		t.Errorf("YearID: got %v, want %v", created.YearID, year.ID)
	}
}

func TestStore_Create_YearMustExist(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Course{
		YearID: primitive.NewObjectID(),
		Name:   models.Localized{EN: "Orphan Course"},
	})
	if err != coursestore.ErrYearNotFound {
		t.Errorf("expected ErrYearNotFound, got %v", err)
	}
}

func TestStore_ListByYear_ScopedToYear(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	store := coursestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	y1 := fix.CreateYear(ctx, "First Year", 1)
	y2 := fix.CreateYear(ctx, "Second Year", 2)
	fix.CreateCourse(ctx, y1.ID, "Calculus 1")
	fix.CreateCourse(ctx, y1.ID, "Intro to CS")
	fix.CreateCourse(ctx, y2.ID, "Calculus 2")

	courses, err := store.ListByYear(ctx, y1.ID)
	if err != nil {
		t.Fatalf("ListByYear failed: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses for year 1, got %d", len(courses))
	}
	for _, c := range courses {
		if c.YearID != y1.ID {
			t.Errorf("course %q leaked from another year", c.Name.EN)
		}
	}
}

func TestStore_FindOrCreate_ScopedToYear(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	store := coursestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	y1 := fix.CreateYear(ctx, "First Year", 1)
	y2 := fix.CreateYear(ctx, "Second Year", 2)

	course := models.Course{Name: models.Localized{EN: "Calculus"}}

	id1, created, err := store.FindOrCreate(ctx, y1.ID, course)
	if err != nil {
		t.Fatalf("FindOrCreate failed: %v", err)
	}
	if !created {
		t.Error("expected creation in year 1")
	}

	// Same name under a different year is a different course.
	id2, created, err := store.FindOrCreate(ctx, y2.ID, course)
	if err != nil {
		t.Fatalf("FindOrCreate failed: %v", err)
	}
	if !created {
		t.Error("expected creation in year 2: scope is per year")
	}
	if id1 == id2 {
		t.Error("courses in different years must be distinct documents")
	}

	// Second call within year 1 finds the existing course.
	id3, created, err := store.FindOrCreate(ctx, y1.ID, course)
	if err != nil {
		t.Fatalf("FindOrCreate failed: %v", err)
	}
	if created {
		t.Error("expected find, not create")
	}
	if id3 != id1 {
		t.Errorf("ids differ: %v vs %v", id3, id1)
	}
}

func TestStore_FindOrCreate_StampsYearID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	store := coursestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	year := fix.CreateYear(ctx, "First Year", 1)

	id, _, err := store.FindOrCreate(ctx, year.ID, models.Course{
		Name: models.Localized{EN: "Discrete Math"},
	})
	if err != nil {
		t.Fatalf("FindOrCreate failed: %v", err)
	}

	got, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.YearID != year.ID {
		t.Errorf("YearID: got %v, want %v", got.YearID, year.ID)
	}
}
