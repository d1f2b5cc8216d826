// internal/app/features/errors/errors.go

// Package errors centralizes how handler failures reach the caller. Every
// response is a JSON envelope; nothing in the app surfaces a raw error or
// an unhandled panic. The one cross-cutting behavior lives here: when any
// backend call reports the session-expiry signal, the session is cleared
// and the caller is sent back to the login view.
package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"labourhub/internal/app/system/auth"
)

// envelope is the JSON error body. Fields carries per-field validation
// messages when present.
type envelope struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// WriteJSON writes any payload with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError writes a plain error envelope.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, envelope{Error: msg})
}

// WriteValidation writes per-field validation messages as a 422.
func WriteValidation(w http.ResponseWriter, fields map[string]string) {
	WriteJSON(w, http.StatusUnprocessableEntity, envelope{
		Error:  "validation failed",
		Fields: fields,
	})
}

// ErrorLogger pairs structured logging with the standard failure
// responses. Handlers get one at construction, mirroring how the stores
// get the gateway client. It holds the session manager so the expiry
// reaction can clear credentials from any handler.
type ErrorLogger struct {
	log      *zap.Logger
	sessions *auth.SessionManager
}

// NewErrorLogger creates an ErrorLogger.
func NewErrorLogger(logger *zap.Logger, sessions *auth.SessionManager) *ErrorLogger {
	return &ErrorLogger{log: logger, sessions: sessions}
}

// Logger exposes the underlying zap logger for ad hoc fields.
func (e *ErrorLogger) Logger() *zap.Logger { return e.log }
