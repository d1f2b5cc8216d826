// internal/app/features/sectors/routes.go
package sectors

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Delete("/{name}", h.HandleDelete)
	return r
}
