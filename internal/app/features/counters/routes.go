// internal/app/features/counters/routes.go
package counters

import "github.com/go-chi/chi/v5"

// LikeRoutes returns the subrouter mounted under /api/likes.
func LikeRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{title}", h.GetLike)
	r.Post("/{title}/increment", h.IncrementLike)
	return r
}

// DownloadRoutes returns the subrouter mounted under /api/downloads.
func DownloadRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{title}", h.GetDownload)
	r.Post("/{title}/increment", h.IncrementDownload)
	return r
}
