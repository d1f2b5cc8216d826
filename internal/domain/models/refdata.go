// internal/domain/models/refdata.go
package models

// Sector is an administrative region grouping army units.
// Reference data: admins create and delete, everyone else reads.
type Sector struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ArmyUnit is a deployment entity labourers are assigned to for a date range.
type ArmyUnit struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	SectorID int64  `json:"sector_id"`
}
