// internal/app/features/labourers/routes.go
package labourers

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/register", h.HandleRegister)
	r.Post("/assign", h.HandleAssign)
	r.Delete("/{id}", h.HandleReject)
	return r
}
