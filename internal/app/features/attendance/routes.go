// internal/app/features/attendance/routes.go
package attendance

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/mark", h.HandleMark)
	r.Get("/report", h.ServeReport)
	r.Get("/calendar", h.ServeCalendar)
	return r
}
