// Package counters serves the like and download counters. Counters
// are keyed by a material's English title, so materials sharing a
// title share counts; increments are atomic upserts and a counter
// springs into existence at 1 on first increment.
package counters

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	counterstore "github.com/hodayakashh/studyhub/internal/app/store/counters"
	"github.com/hodayakashh/studyhub/internal/app/system/httpjson"
	"github.com/hodayakashh/studyhub/internal/app/system/ratelimit"
	"github.com/hodayakashh/studyhub/internal/app/system/timeouts"
)

// Handler owns the like and download counter endpoints.
type Handler struct {
	Likes     *counterstore.Store
	Downloads *counterstore.Store
	// Limiter throttles increments per client IP; nil disables limiting.
	Limiter *ratelimit.Limiter
	Log     *zap.Logger
}

func NewHandler(likes, downloads *counterstore.Store, limiter *ratelimit.Limiter, logger *zap.Logger) *Handler {
	return &Handler{
		Likes:     likes,
		Downloads: downloads,
		Limiter:   limiter,
		Log:       logger,
	}
}

type counterResponse struct {
	Title string `json:"title"`
	Count int64  `json:"count"`
}

// IncrementLike handles POST /api/likes/{title}/increment.
func (h *Handler) IncrementLike(w http.ResponseWriter, r *http.Request) {
	h.increment(w, r, h.Likes, "like")
}

// IncrementDownload handles POST /api/downloads/{title}/increment.
func (h *Handler) IncrementDownload(w http.ResponseWriter, r *http.Request) {
	h.increment(w, r, h.Downloads, "download")
}

// GetLike handles GET /api/likes/{title}.
func (h *Handler) GetLike(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, h.Likes)
}

// GetDownload handles GET /api/downloads/{title}.
func (h *Handler) GetDownload(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, h.Downloads)
}

func (h *Handler) increment(w http.ResponseWriter, r *http.Request, store *counterstore.Store, kind string) {
	if h.Limiter != nil && !h.Limiter.Allow(ratelimit.ClientIP(r)) {
		httpjson.Error(w, http.StatusTooManyRequests, "too many requests")
		return
	}
	title, ok := titleParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	count, err := store.Increment(ctx, title)
	if err != nil {
		h.Log.Error("counter increment failed",
			zap.String("kind", kind), zap.String("title", title), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to increment counter")
		return
	}
	httpjson.Write(w, http.StatusOK, counterResponse{Title: title, Count: count})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request, store *counterstore.Store) {
	title, ok := titleParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	count, err := store.Get(ctx, title)
	if err != nil {
		h.Log.Error("counter read failed", zap.String("title", title), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to read counter")
		return
	}
	httpjson.Write(w, http.StatusOK, counterResponse{Title: title, Count: count})
}

// titleParam extracts and decodes the {title} path segment. Counter
// titles are free-form English titles, so they arrive URL-escaped.
func titleParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "title")
	title, err := url.PathUnescape(raw)
	if err != nil {
		title = raw
	}
	title = strings.TrimSpace(title)
	if title == "" {
		httpjson.Error(w, http.StatusBadRequest, "title is required")
		return "", false
	}
	return title, true
}
