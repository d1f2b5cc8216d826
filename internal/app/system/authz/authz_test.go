package authz

import (
	"net/http/httptest"
	"testing"

	"labourhub/internal/app/system/auth"
)

func TestResolve_Anonymous(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	if got := Resolve(r); got.Kind != Anonymous {
		t.Errorf("kind: got %v, want Anonymous", got.Kind)
	}
}

func TestResolve_Admin(t *testing.T) {
	r := auth.WithTestUser(httptest.NewRequest("GET", "/", nil),
		&auth.SessionUser{UserID: "1", Role: "admin"})

	got := Resolve(r)
	if got.Kind != Admin {
		t.Fatalf("kind: got %v, want Admin", got.Kind)
	}
	if IsOfficer(r) {
		t.Error("admin must not resolve as officer")
	}
}

func TestResolve_DefenceOfficer(t *testing.T) {
	r := auth.WithTestUser(httptest.NewRequest("GET", "/", nil),
		&auth.SessionUser{UserID: "5", Role: "officer", SectorID: "2", ArmyUnitID: "null"})

	got := Resolve(r)
	if got.Kind != Officer {
		t.Fatalf("kind: got %v, want Officer", got.Kind)
	}
	if got.ArmyUnitID != "" {
		t.Errorf(`"null" unit sentinel must resolve to empty, got %q`, got.ArmyUnitID)
	}
	if _, army := ArmyContext(r); army {
		t.Error("defence officer must not be in army context")
	}
}

func TestResolve_ArmyOfficer(t *testing.T) {
	r := auth.WithTestUser(httptest.NewRequest("GET", "/", nil),
		&auth.SessionUser{UserID: "5", Role: "officer", ArmyUnitID: "12"})

	unit, army := ArmyContext(r)
	if !army || unit != "12" {
		t.Errorf("ArmyContext: got (%q, %v), want (12, true)", unit, army)
	}
}
