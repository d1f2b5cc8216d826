// internal/app/system/auth/auth.go

// Package auth is the single source of truth for who is using the dashboard
// and with what privileges. Identity lives in a signed cookie session under
// the same legacy keys the original deployment persisted; every navigation
// reads it through the SessionManager middleware and every logout or expiry
// signal clears it wholesale.
package auth

import (
	"context"
	"net/http"
	"strings"
)

// Persisted session keys. These names are a compatibility contract with the
// original deployment's client-side storage; do not rename them.
const (
	KeyAuthToken        = "auth_token"
	KeyUserID           = "userId"
	KeyRole             = "role"
	KeyUserType         = "userType"
	KeySectorID         = "sector_id"
	KeyArmyUnitID       = "army_unit_id"
	KeyMobileNumber     = "mobile_number"
	KeyOfficerID        = "officer_id"
	KeyAttendanceMarked = "attendance_marked"
)

// AllKeys lists every persisted session key. Logout removes each one.
var AllKeys = []string{
	KeyAuthToken,
	KeyUserID,
	KeyRole,
	KeyUserType,
	KeySectorID,
	KeyArmyUnitID,
	KeyMobileNumber,
	KeyOfficerID,
	KeyAttendanceMarked,
}

// SessionUser is the identity cached in the session and injected into the
// request context by LoadSessionUser. Values are kept as the strings they
// were persisted as; the string-typed "null" army unit sentinel from the
// legacy storage is tolerated, not repaired.
type SessionUser struct {
	Token      string
	UserID     string
	OfficerID  string
	Mobile     string
	Role       string
	UserType   string
	SectorID   string
	ArmyUnitID string
}

// IsAuthenticated reports whether any identity credential is present.
// Presence of a token, a user ID, or a mobile number all count; the original
// client treated them interchangeably.
func (u *SessionUser) IsAuthenticated() bool {
	if u == nil {
		return false
	}
	return u.Token != "" || u.UserID != "" || u.Mobile != ""
}

// IsAdmin reports admin privileges. The legacy userType field is accepted
// alongside role for backward compatibility with older backend responses.
func (u *SessionUser) IsAdmin() bool {
	if u == nil {
		return false
	}
	return strings.EqualFold(u.Role, "admin") || strings.EqualFold(u.UserType, "admin")
}

// IsArmyContext reports whether the signed-in officer manages an army unit
// (the "Army" dashboard variant) rather than the unassigned labourer pool
// (the "Defence" variant). The literal string "null" is a storage artifact
// of the legacy client and means no unit.
func (u *SessionUser) IsArmyContext() bool {
	if u == nil {
		return false
	}
	return u.ArmyUnitID != "" && u.ArmyUnitID != "null"
}

// DefaultPath resolves the highest-privilege landing view for this session.
// Unknown paths never 404; the router's catch-all sends callers here.
func (u *SessionUser) DefaultPath() string {
	switch {
	case !u.IsAuthenticated():
		return "/login"
	case u.IsAdmin():
		return "/admin/users"
	default:
		return "/dashboard"
	}
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the session user from the request context and a
// found flag. ok=false means the request is anonymous.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok && u.IsAuthenticated()
}

// WithTestUser injects a user into the request context, bypassing the
// session middleware. Tests only.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}
