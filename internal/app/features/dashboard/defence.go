// internal/app/features/dashboard/defence.go
package dashboard

import (
	"context"
	"math"
	"net/http"

	uierrors "labourhub/internal/app/features/errors"
	"labourhub/internal/app/system/authz"
	"labourhub/internal/app/system/normalize"
	"labourhub/internal/app/system/timeouts"
	"labourhub/internal/domain/models"
)

// serveDefence renders the Defence officer dashboard: every labourer this
// officer registered, with assignment counts and Aadhaar coverage. A fetch
// failure renders the empty state rather than an error.
func (h *Handler) serveDefence(w http.ResponseWriter, r *http.Request, id authz.Identity) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ls, err := h.Labourers.ByOfficer(ctx, id.UserID)
	if h.ErrLog.Degrade(w, r, err, "labourers by officer") {
		return
	}

	assigned := 0
	for _, l := range ls {
		if l.Assigned() {
			assigned++
		}
	}

	uierrors.WriteJSON(w, http.StatusOK, defenceView{
		Title:                  "Dashboard",
		Labourers:              projectLabourers(h.API, ls),
		AssignedCount:          assigned,
		UnassignedCount:        len(ls) - assigned,
		AadhaarCoveragePercent: aadhaarCoverage(ls),
	})
}

// aadhaarCoverage is the rounded percentage of labourers whose Aadhaar
// number has at least 12 digits once separators are stripped. Zero for an
// empty list.
func aadhaarCoverage(ls []models.Labourer) int {
	if len(ls) == 0 {
		return 0
	}
	valid := 0
	for _, l := range ls {
		if len(normalize.Digits(l.AadhaarNumber)) >= 12 {
			valid++
		}
	}
	return int(math.Round(100 * float64(valid) / float64(len(ls))))
}
