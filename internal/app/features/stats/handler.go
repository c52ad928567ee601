// Package stats serves the aggregate site counters shown on the home
// page: how many courses and materials exist and how often files have
// been downloaded.
package stats

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	coursestore "github.com/hodayakashh/studyhub/internal/app/store/courses"
	counterstore "github.com/hodayakashh/studyhub/internal/app/store/counters"
	materialstore "github.com/hodayakashh/studyhub/internal/app/store/materials"
	yearstore "github.com/hodayakashh/studyhub/internal/app/store/years"
	"github.com/hodayakashh/studyhub/internal/app/system/httpjson"
	"github.com/hodayakashh/studyhub/internal/app/system/timeouts"
)

// Handler holds the stores the stats endpoint aggregates over.
type Handler struct {
	Years     *yearstore.Store
	Courses   *coursestore.Store
	Materials *materialstore.Store
	Likes     *counterstore.Store
	Downloads *counterstore.Store
	Log       *zap.Logger
}

func NewHandler(years *yearstore.Store, courses *coursestore.Store, materials *materialstore.Store, likes, downloads *counterstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Years:     years,
		Courses:   courses,
		Materials: materials,
		Likes:     likes,
		Downloads: downloads,
		Log:       logger,
	}
}

type statsResponse struct {
	Years     int64 `json:"years"`
	Courses   int64 `json:"courses"`
	Materials int64 `json:"materials"`
	Likes     int64 `json:"likes"`
	Downloads int64 `json:"downloads"`
}

// ServeStats handles GET /api/stats.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		resp statsResponse
		err  error
	)
	if resp.Years, err = h.Years.Count(ctx); err != nil {
		h.serveError(w, "count years", err)
		return
	}
	if resp.Courses, err = h.Courses.Count(ctx); err != nil {
		h.serveError(w, "count courses", err)
		return
	}
	if resp.Materials, err = h.Materials.Count(ctx); err != nil {
		h.serveError(w, "count materials", err)
		return
	}
	if resp.Likes, err = h.Likes.Total(ctx); err != nil {
		h.serveError(w, "total likes", err)
		return
	}
	if resp.Downloads, err = h.Downloads.Total(ctx); err != nil {
		h.serveError(w, "total downloads", err)
		return
	}

	httpjson.Write(w, http.StatusOK, resp)
}

func (h *Handler) serveError(w http.ResponseWriter, op string, err error) {
	h.Log.Error("stats aggregation failed", zap.String("op", op), zap.Error(err))
	httpjson.Error(w, http.StatusInternalServerError, "failed to compute stats")
}
