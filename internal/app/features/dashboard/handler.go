// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	"go.uber.org/zap"

	uierrors "labourhub/internal/app/features/errors"
	"labourhub/internal/app/gateway"
	attendancestore "labourhub/internal/app/store/attendance"
	labourersstore "labourhub/internal/app/store/labourers"
	"labourhub/internal/app/system/authz"
)

type Handler struct {
	Labourers  *labourersstore.Store
	Attendance *attendancestore.Store
	API        *gateway.Client
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(
	labourers *labourersstore.Store,
	attendance *attendancestore.Store,
	api *gateway.Client,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Labourers:  labourers,
		Attendance: attendance,
		API:        api,
		ErrLog:     errLog,
		Log:        logger,
	}
}

// ServeDashboard dispatches to the officer variant for this session. The
// Defence and Army variants are distinct views over different backend
// resources, so each lives in its own file. Admins have no dashboard of
// their own and land on user management instead.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	id := authz.Resolve(r)

	switch {
	case id.Kind == authz.Anonymous:
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case id.Kind == authz.Admin:
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
	case id.ArmyUnitID != "":
		h.serveArmy(w, r, id)
	default:
		h.serveDefence(w, r, id)
	}
}
