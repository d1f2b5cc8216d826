// internal/app/features/sectors/handler.go
package sectors

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "labourhub/internal/app/features/errors"
	sectorsstore "labourhub/internal/app/store/sectors"
	"labourhub/internal/app/system/limits"
	"labourhub/internal/app/system/normalize"
	"labourhub/internal/app/system/timeouts"
	"labourhub/internal/domain/models"
)

type Handler struct {
	Sectors *sectorsstore.Store
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(sectors *sectorsstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Sectors: sectors, ErrLog: errLog, Log: logger}
}

type listView struct {
	Sectors []models.Sector `json:"sectors"`
}

// ServeList returns all sectors.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ss, err := h.Sectors.List(ctx)
	if h.ErrLog.Degrade(w, r, err, "list sectors") {
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, listView{Sectors: ss})
}

// HandleCreate adds a sector.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		uierrors.WriteError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	name := normalize.Name(r.FormValue("name"))
	if name == "" {
		uierrors.WriteValidation(w, map[string]string{"name": "sector name is required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Sectors.Create(ctx, name)
	if err != nil {
		h.ErrLog.Handle(w, r, err, "create sector")
		return
	}

	h.Log.Info("sector created", zap.String("name", name))
	uierrors.WriteJSON(w, http.StatusCreated, created)
}

// HandleDelete removes a sector by name; the backend keys sector deletion
// on the name rather than the id.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "name")
	name, err := url.PathUnescape(raw)
	if err != nil || normalize.Name(name) == "" {
		uierrors.WriteError(w, http.StatusBadRequest, "invalid sector name")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Sectors.DeleteByName(ctx, normalize.Name(name)); err != nil {
		h.ErrLog.Handle(w, r, err, "delete sector")
		return
	}

	h.Log.Info("sector deleted", zap.String("name", name))
	uierrors.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
