// internal/app/system/authz/authz.go

// Package authz resolves the request's identity once into a closed variant
// (anonymous, officer, admin) so handlers branch on a typed value instead of
// scattering string comparisons against the session.
package authz

import (
	"net/http"

	"labourhub/internal/app/system/auth"
)

// Kind is the closed set of caller identities.
type Kind int

const (
	Anonymous Kind = iota
	Officer
	Admin
)

// Identity is the resolved caller. For officers, SectorID and ArmyUnitID
// come from the session; ArmyUnitID is empty in Defence context.
type Identity struct {
	Kind       Kind
	UserID     string
	OfficerID  string
	Mobile     string
	SectorID   string
	ArmyUnitID string
}

// Resolve derives the Identity for this request from the session user
// loaded by the auth middleware. Pure and synchronous; safe to call on
// every render.
func Resolve(r *http.Request) Identity {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return Identity{Kind: Anonymous}
	}

	id := Identity{
		UserID:    u.UserID,
		OfficerID: u.OfficerID,
		Mobile:    u.Mobile,
		SectorID:  u.SectorID,
	}
	if u.IsAdmin() {
		id.Kind = Admin
		return id
	}
	id.Kind = Officer
	if u.IsArmyContext() {
		id.ArmyUnitID = u.ArmyUnitID
	}
	return id
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	return Resolve(r).Kind == Admin
}

// IsOfficer reports whether the current request's user is a non-admin
// authenticated officer.
func IsOfficer(r *http.Request) bool {
	return Resolve(r).Kind == Officer
}

// ArmyContext reports whether the current officer manages an army unit and
// returns the unit ID when so.
func ArmyContext(r *http.Request) (string, bool) {
	id := Resolve(r)
	return id.ArmyUnitID, id.Kind == Officer && id.ArmyUnitID != ""
}
