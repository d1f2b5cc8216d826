// internal/domain/models/user.go
package models

// User roles as the backend issues them. A user is either an admin or an
// officer; officers further split into Defence and Army presentation by
// whether they carry an army unit, not by role.
const (
	RoleAdmin   = "admin"
	RoleOfficer = "officer"
)

// User is a dashboard account (officer or admin) owned by the backend.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name,omitempty"`
	MobileNumber string `json:"mobile_number"`
	Role         string `json:"role"`

	// UserType is a legacy duplicate of Role still emitted by older backend
	// deployments. Admin checks accept either field.
	UserType string `json:"user_type,omitempty"`

	SectorID int64 `json:"sector_id,omitempty"`

	// ArmyUnitID is null for Defence officers and admins.
	ArmyUnitID *int64 `json:"army_unit_id"`
}

// LoginResult is the body returned by POST /auth/login.
type LoginResult struct {
	OfficerID int64  `json:"officer_id"`
	AuthToken string `json:"auth_token,omitempty"`
	User      User   `json:"user"`
}
