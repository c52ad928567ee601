// internal/app/features/stats/routes.go
package stats

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /api/stats.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeStats)
	return r
}
