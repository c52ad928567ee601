// Package studies serves the study-year / course / material hierarchy:
// public list endpoints plus the admin create endpoints. There is no
// update or delete surface; content is append-only.
package studies

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	coursestore "github.com/hodayakashh/studyhub/internal/app/store/courses"
	materialstore "github.com/hodayakashh/studyhub/internal/app/store/materials"
	yearstore "github.com/hodayakashh/studyhub/internal/app/store/years"
	"github.com/hodayakashh/studyhub/internal/app/system/filestore"
	"github.com/hodayakashh/studyhub/internal/app/system/httpjson"
	"github.com/hodayakashh/studyhub/internal/app/system/timeouts"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 50
)

// Handler holds the stores the studies endpoints read and write.
type Handler struct {
	Years     *yearstore.Store
	Courses   *coursestore.Store
	Materials *materialstore.Store
	Files     filestore.Store
	Log       *zap.Logger
}

func NewHandler(years *yearstore.Store, courses *coursestore.Store, materials *materialstore.Store, files filestore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Years:     years,
		Courses:   courses,
		Materials: materials,
		Files:     files,
		Log:       logger,
	}
}

// ListYears handles GET /api/years. Years come back sorted by
// year_number ascending.
func (h *Handler) ListYears(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	years, err := h.Years.List(ctx)
	if err != nil {
		h.Log.Error("list years failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to list years")
		return
	}
	httpjson.Write(w, http.StatusOK, years)
}

// ListCourses handles GET /api/years/{yearID}/courses.
func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	yearID, ok := h.objectIDParam(w, r, "yearID")
	if !ok {
		return
	}
	if _, err := h.Years.GetByID(ctx, yearID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "study year not found")
			return
		}
		h.Log.Error("get year failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load year")
		return
	}

	courses, err := h.Courses.ListByYear(ctx, yearID)
	if err != nil {
		h.Log.Error("list courses failed", zap.String("year_id", yearID.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to list courses")
		return
	}
	httpjson.Write(w, http.StatusOK, courses)
}

// ListMaterials handles GET /api/years/{yearID}/courses/{courseID}/materials.
// The course must belong to the year in the path or the result is 404.
func (h *Handler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	yearID, ok := h.objectIDParam(w, r, "yearID")
	if !ok {
		return
	}
	courseID, ok := h.objectIDParam(w, r, "courseID")
	if !ok {
		return
	}

	course, err := h.Courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "course not found")
			return
		}
		h.Log.Error("get course failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load course")
		return
	}
	if course.YearID != yearID {
		httpjson.Error(w, http.StatusNotFound, "course not found")
		return
	}

	materials, err := h.Materials.ListByCourse(ctx, yearID, courseID)
	if err != nil {
		h.Log.Error("list materials failed", zap.String("course_id", courseID.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to list materials")
		return
	}
	httpjson.Write(w, http.StatusOK, viewsOf(materials))
}

// RecentMaterials handles GET /api/materials/recent?limit=N, newest
// first. The limit defaults to 10 and is capped at 50.
func (h *Handler) RecentMaterials(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			httpjson.Error(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	materials, err := h.Materials.ListRecent(ctx, int64(limit))
	if err != nil {
		h.Log.Error("list recent materials failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to list recent materials")
		return
	}
	httpjson.Write(w, http.StatusOK, viewsOf(materials))
}

func (h *Handler) objectIDParam(w http.ResponseWriter, r *http.Request, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, name))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}
