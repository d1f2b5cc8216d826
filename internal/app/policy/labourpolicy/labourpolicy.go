// internal/app/policy/labourpolicy/labourpolicy.go

// Package labourpolicy decides whether the resolved caller may act on a
// specific labourer record. Role middleware gates the route; this layer
// gates the resource.
package labourpolicy

import (
	"strconv"

	"labourhub/internal/app/system/authz"
	"labourhub/internal/domain/models"
)

// CanManage reports whether the caller may assign, edit, or delete the
// labourer. Admins always can; a Defence officer only for labourers they
// registered.
func CanManage(id authz.Identity, l models.Labourer) bool {
	switch id.Kind {
	case authz.Admin:
		return true
	case authz.Officer:
		return id.UserID == strconv.FormatInt(l.UserID, 10)
	default:
		return false
	}
}

// CanMark reports whether the caller may mark attendance for the labourer:
// an Army officer whose unit matches the labourer's assignment.
func CanMark(id authz.Identity, l models.Labourer) bool {
	if id.Kind != authz.Officer || id.ArmyUnitID == "" {
		return false
	}
	if l.ArmyUnitID == nil {
		return false
	}
	return id.ArmyUnitID == strconv.FormatInt(*l.ArmyUnitID, 10)
}
