// internal/app/features/debug/routes.go
package debug

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the debug endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve) // this will be mounted under /debug
	return r
}
