package yearstore_test

import (
	"testing"

	yearstore "github.com/hodayakashh/studyhub/internal/app/store/years"
	"github.com/hodayakashh/studyhub/internal/domain/models"
	"github.com/hodayakashh/studyhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := yearstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.StudyYear{
		Name:       models.Localized{EN: "First Year", HE: "שנה ראשונה"},
		YearNumber: 1,
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
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Create_MissingEnglishName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := yearstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.StudyYear{
		Name:       models.Localized{HE: "שנה ראשונה"},
		YearNumber: 1,
	})
	if err == nil {
		t.Fatal("expected error for missing name.en")
	}
}

func TestStore_Create_InvalidYearNumber(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := yearstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.StudyYear{
		Name: models.Localized{EN: "No Number"},
	})
	if err == nil {
		t.Fatal("expected error for missing year_number")
	}
}

func TestStore_List_SortedByYearNumber(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := yearstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Insert out of order on purpose.
	for _, y := range []models.StudyYear{
		{Name: models.Localized{EN: "Third Year"}, YearNumber: 3},
		{Name: models.Localized{EN: "First Year"}, YearNumber: 1},
		{Name: models.Localized{EN: "Second Year"}, YearNumber: 2},
	} {
		if _, err := store.Create(ctx, y); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	years, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(years) != 3 {
		t.Fatalf("expected 3 years, got %d", len(years))
	}
	for i := 1; i < len(years); i++ {
		if years[i-1].YearNumber > years[i].YearNumber {
			t.Errorf("years not sorted ascending: %d before %d",
				years[i-1].YearNumber, years[i].YearNumber)
		}
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := yearstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_FindOrCreate_CreatesOnce(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := yearstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	y := models.StudyYear{
		Name:       models.Localized{EN: "First Year", HE: "שנה ראשונה"},
		YearNumber: 1,
	}

	id1, created, err := store.FindOrCreate(ctx, y)
	if err != nil {
		t.Fatalf("first FindOrCreate failed: %v", err)
	}
	if !created {
		t.Error("expected first call to create")
	}

	id2, created, err := store.FindOrCreate(ctx, y)
	if err != nil {
		t.Fatalf("second FindOrCreate failed: %v", err)
	}
	if created {
		t.Error("expected second call to find, not create")
	}
	if id1 != id2 {
		t.Errorf("ids differ between calls: %v vs %v", id1, id2)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 document, got %d", count)
	}
}

func TestStore_FindOrCreate_MatchIsCaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := yearstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id1, _, err := store.FindOrCreate(ctx, models.StudyYear{
		Name:       models.Localized{EN: "First Year"},
		YearNumber: 1,
	})
	if err != nil {
		t.Fatalf("FindOrCreate failed: %v", err)
	}

	id2, created, err := store.FindOrCreate(ctx, models.StudyYear{
		Name:       models.Localized{EN: "first year"},
		YearNumber: 1,
	})
	if err != nil {
		t.Fatalf("FindOrCreate failed: %v", err)
	}
	if created {
		t.Error("folded name should have matched the existing year")
	}
	if id1 != id2 {
		t.Errorf("ids differ: %v vs %v", id1, id2)
	}
}
