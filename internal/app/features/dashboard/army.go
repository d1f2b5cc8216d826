// internal/app/features/dashboard/army.go
package dashboard

import (
	"context"
	"net/http"
	"time"

	uierrors "labourhub/internal/app/features/errors"
	"labourhub/internal/app/system/authz"
	"labourhub/internal/app/system/rollup"
	"labourhub/internal/app/system/timeouts"
)

// serveArmy renders the Army officer dashboard: labourers assigned to the
// officer's unit plus today's attendance summary. Either fetch may degrade
// to its empty state independently.
func (h *Handler) serveArmy(w http.ResponseWriter, r *http.Request, id authz.Identity) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	ls, err := h.Labourers.AssignedToUnit(ctx, id.Mobile)
	if h.ErrLog.Degrade(w, r, err, "labourers assigned to unit") {
		return
	}

	recs, err := h.Attendance.ByUnit(ctx, id.ArmyUnitID)
	if h.ErrLog.Degrade(w, r, err, "unit attendance") {
		return
	}

	today := rollup.Daily(recs, time.Now(), len(ls))
	uierrors.WriteJSON(w, http.StatusOK, armyView{
		Title:     "Dashboard",
		Labourers: projectLabourers(h.API, ls),
		Today: todaySummary{
			Present:      today.Present,
			Absent:       today.Absent,
			TotalRecords: today.TotalRecords,
		},
	})
}
