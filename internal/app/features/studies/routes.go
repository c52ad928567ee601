// internal/app/features/studies/routes.go
package studies

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter for the year/course/material hierarchy.
// It is mounted under /api/years.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListYears)
	r.Post("/", h.CreateYear)
	r.Route("/{yearID}", func(r chi.Router) {
		r.Get("/courses", h.ListCourses)
		r.Post("/courses", h.CreateCourse)
		r.Route("/courses/{courseID}", func(r chi.Router) {
			r.Get("/materials", h.ListMaterials)
			r.Post("/materials", h.CreateMaterial)
		})
	})
	return r
}

// MaterialRoutes returns the subrouter for cross-course material
// endpoints. It is mounted under /api/materials.
func MaterialRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/recent", h.RecentMaterials)
	return r
}
