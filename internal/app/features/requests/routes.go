// internal/app/features/requests/routes.go
package requests

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/approve", h.HandleApprove)
	r.Post("/reject", h.HandleReject)
	return r
}
