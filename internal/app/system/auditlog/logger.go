// internal/app/system/auditlog/logger.go
package auditlog

import (
	"net/http"

	"go.uber.org/zap"

	"labourhub/internal/app/system/auth"
	"labourhub/internal/app/system/ratelimit"
)

// Event type constants keep audit entries greppable across features.
const (
	EventLoginSuccess     = "login_success"
	EventLoginFailed      = "login_failed"
	EventLogout           = "logout"
	EventLabourRegistered = "labourer_registered"
	EventLabourAssigned   = "labourers_assigned"
	EventLabourRemoved    = "labourer_removed"
	EventAttendanceMarked = "attendance_marked"
	EventUserCreated      = "user_created"
	EventUserDeleted      = "user_deleted"
	EventRequestResolved  = "deletion_request_resolved"
)

// Logger writes audit events as structured log entries. The backend keeps
// the authoritative records; this trail exists so operators can trace who
// did what from this dashboard without querying the backend.
type Logger struct {
	log *zap.Logger
}

// New creates an audit Logger. A nil zap logger yields a no-op Logger.
func New(log *zap.Logger) *Logger {
	if log == nil {
		return nil
	}
	return &Logger{log: log}
}

// Event records an audit entry with the acting session user and client IP
// attached. Safe to call on a nil Logger.
func (l *Logger) Event(r *http.Request, eventType string, fields ...zap.Field) {
	if l == nil {
		return
	}
	entry := []zap.Field{
		zap.Bool("audit", true),
		zap.String("event_type", eventType),
		zap.String("ip", ratelimit.ClientIP(r)),
	}
	if u, ok := auth.CurrentUser(r); ok {
		entry = append(entry,
			zap.String("actor_id", u.UserID),
			zap.String("actor_role", u.Role))
	}
	entry = append(entry, fields...)
	l.log.Info("audit", entry...)
}

func (l *Logger) LoginSuccess(r *http.Request, userID, role string) {
	l.Event(r, EventLoginSuccess,
		zap.String("user_id", userID),
		zap.String("role", role))
}

func (l *Logger) LoginFailed(r *http.Request, mobile, reason string) {
	l.Event(r, EventLoginFailed,
		zap.String("mobile_number", mobile),
		zap.String("failure_reason", reason))
}

func (l *Logger) Logout(r *http.Request) {
	l.Event(r, EventLogout)
}

func (l *Logger) AttendanceMarked(r *http.Request, labourID int64, status int) {
	l.Event(r, EventAttendanceMarked,
		zap.Int64("labour_id", labourID),
		zap.Int("status", status))
}
