// internal/app/features/armyunits/handler.go
package armyunits

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "labourhub/internal/app/features/errors"
	armyunitsstore "labourhub/internal/app/store/armyunits"
	"labourhub/internal/app/system/limits"
	"labourhub/internal/app/system/normalize"
	"labourhub/internal/app/system/timeouts"
	"labourhub/internal/domain/models"
)

type Handler struct {
	Units  *armyunitsstore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(units *armyunitsstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Units: units, ErrLog: errLog, Log: logger}
}

type listView struct {
	ArmyUnits []models.ArmyUnit `json:"army_units"`
}

// ServeList returns army units, optionally narrowed to one sector through
// the sector_id query parameter.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		units []models.ArmyUnit
		err   error
	)
	if sectorID := r.URL.Query().Get("sector_id"); sectorID != "" {
		units, err = h.Units.BySector(ctx, sectorID)
	} else {
		units, err = h.Units.List(ctx)
	}
	if h.ErrLog.Degrade(w, r, err, "list army units") {
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, listView{ArmyUnits: units})
}

// HandleCreate adds an army unit inside a sector.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		uierrors.WriteError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	name := normalize.Name(r.FormValue("name"))
	sectorID, _ := strconv.ParseInt(r.FormValue("sector_id"), 10, 64)
	fields := map[string]string{}
	if name == "" {
		fields["name"] = "unit name is required"
	}
	if sectorID == 0 {
		fields["sector_id"] = "select a sector"
	}
	if len(fields) > 0 {
		uierrors.WriteValidation(w, fields)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Units.Create(ctx, name, sectorID)
	if err != nil {
		h.ErrLog.Handle(w, r, err, "create army unit")
		return
	}

	h.Log.Info("army unit created",
		zap.String("name", name),
		zap.Int64("sector_id", sectorID))
	uierrors.WriteJSON(w, http.StatusCreated, created)
}

// HandleDelete removes an army unit.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		uierrors.WriteError(w, http.StatusBadRequest, "invalid unit id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Units.Delete(ctx, id); err != nil {
		h.ErrLog.Handle(w, r, err, "delete army unit")
		return
	}

	h.Log.Info("army unit deleted", zap.Int64("unit_id", id))
	uierrors.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
