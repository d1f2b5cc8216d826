// internal/app/features/errors/handle.go
package errors

import (
	stderrors "errors"
	"net/http"

	"go.uber.org/zap"

	"labourhub/internal/app/gateway"
)

// Expire clears the session and sends the caller back to the login view.
// This is the single reaction to the backend's session-expiry contract,
// whether it arrived as a 401 or as an `expired: true` body.
func (e *ErrorLogger) Expire(w http.ResponseWriter, r *http.Request) {
	if err := e.sessions.Clear(w, r); err != nil {
		e.log.Warn("session clear on expiry failed", zap.Error(err))
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Handle converts a backend error from a mutation into the response the
// caller sees. Reads that can degrade to an empty view should use Degrade
// instead.
func (e *ErrorLogger) Handle(w http.ResponseWriter, r *http.Request, err error, operation string) {
	if stderrors.Is(err, gateway.ErrSessionExpired) {
		e.log.Info("session expired", zap.String("operation", operation))
		e.Expire(w, r)
		return
	}

	var httpErr *gateway.HTTPError
	if stderrors.As(err, &httpErr) {
		e.log.Warn("backend rejected request",
			zap.String("operation", operation),
			zap.Int("status", httpErr.Status))
		WriteError(w, httpErr.Status, httpErr.Message())
		return
	}

	var netErr *gateway.NetworkError
	if stderrors.As(err, &netErr) {
		e.log.Warn("backend unreachable",
			zap.String("operation", operation),
			zap.Error(netErr))
		WriteError(w, http.StatusBadGateway, "failed to reach the server, please retry")
		return
	}

	e.log.Error("unexpected handler error",
		zap.String("operation", operation),
		zap.Error(err))
	WriteError(w, http.StatusInternalServerError, "something went wrong")
}

// Degrade handles a fetch failure inside a view render. Dashboard and list
// views never error to the user: the failure is logged and the view renders
// its empty state. The only exception is session expiry, which must still
// clear and redirect; Degrade reports true when it already responded.
func (e *ErrorLogger) Degrade(w http.ResponseWriter, r *http.Request, err error, what string) (responded bool) {
	if err == nil {
		return false
	}
	if stderrors.Is(err, gateway.ErrSessionExpired) {
		e.log.Info("session expired", zap.String("fetch", what))
		e.Expire(w, r)
		return true
	}
	e.log.Warn("fetch failed; rendering empty state",
		zap.String("fetch", what),
		zap.Error(err))
	return false
}
