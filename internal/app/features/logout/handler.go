// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"go.uber.org/zap"

	"labourhub/internal/app/system/auditlog"
	"labourhub/internal/app/system/auth"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	Audit      *auditlog.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		Audit:      auditlog.New(logger),
	}
}

// ServeLogout handles GET /logout. Clearing never fails the caller: even
// when the cookie will not decode, a deletion cookie still goes out and
// the caller lands back on the login view.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	h.Audit.Logout(r)
	if err := h.SessionMgr.Clear(w, r); err != nil {
		h.Log.Error("logout: clear session", zap.Error(err))
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
