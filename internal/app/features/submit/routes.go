// internal/app/features/submit/routes.go
package submit

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the submit endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Serve) // this will be mounted under /submit
	return r
}
