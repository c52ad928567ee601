package profile_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/hodayakashh/studyhub/internal/app/features/profile"
	profilestore "github.com/hodayakashh/studyhub/internal/app/store/profiles"
	"github.com/hodayakashh/studyhub/internal/domain/models"
	"github.com/hodayakashh/studyhub/internal/testutil"
)

func TestServeProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := profilestore.New(db)
	canonical := models.Profile{
		ID:        models.ProfileDocID,
		Name:      "Hodaya Kashkash",
		Title:     "Industrial Engineering Student",
		GitHubURL: "https://github.com/hodayakashh",
	}
	if err := store.EnsureCanonical(ctx, canonical); err != nil {
		t.Fatalf("EnsureCanonical: %v", err)
	}

	h := profile.NewHandler(store, zap.NewNop())
	rec := httptest.NewRecorder()
	h.ServeProfile(rec, httptest.NewRequest("GET", "/api/profile", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var got struct {
		Name      string `json:"name"`
		Title     string `json:"title"`
		GitHubURL string `json:"github_url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if got.Name != canonical.Name {
		t.Errorf("name = %q, want %q", got.Name, canonical.Name)
	}
	if got.GitHubURL != canonical.GitHubURL {
		t.Errorf("github_url = %q, want %q", got.GitHubURL, canonical.GitHubURL)
	}
}

func TestServeProfile_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := profile.NewHandler(profilestore.New(db), zap.NewNop())
	rec := httptest.NewRecorder()
	h.ServeProfile(rec, httptest.NewRequest("GET", "/api/profile", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
