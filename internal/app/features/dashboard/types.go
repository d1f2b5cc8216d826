// internal/app/features/dashboard/types.go
package dashboard

import (
	"labourhub/internal/app/gateway"
	"labourhub/internal/domain/models"
)

// labourerVM is the projection of a labourer shown on officer dashboards.
type labourerVM struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	FatherName    string `json:"father_name"`
	ContactNumber string `json:"contact_number"`
	AadhaarNumber string `json:"aadhaar_number"`
	SectorID      int64  `json:"sector_id"`
	ArmyUnitID    *int64 `json:"army_unit_id"`
	StartDate     string `json:"start_date,omitempty"`
	EndDate       string `json:"end_date,omitempty"`
	PhotoURL      string `json:"photo_url,omitempty"`
	Assigned      bool   `json:"assigned"`
}

// defenceView is the Defence officer's landing view: the labourers they
// registered plus assignment and Aadhaar coverage figures.
type defenceView struct {
	Title                  string       `json:"title"`
	Labourers              []labourerVM `json:"labourers"`
	AssignedCount          int          `json:"assigned_count"`
	UnassignedCount        int          `json:"unassigned_count"`
	AadhaarCoveragePercent int          `json:"aadhaar_coverage_percent"`
}

// todaySummary is today's attendance rollup for the Army variant.
type todaySummary struct {
	Present      int `json:"present"`
	Absent       int `json:"absent"`
	TotalRecords int `json:"total_records"`
}

// armyView is the Army officer's landing view: labourers assigned to their
// unit plus today's attendance summary.
type armyView struct {
	Title     string       `json:"title"`
	Labourers []labourerVM `json:"labourers"`
	Today     todaySummary `json:"today"`
}

func projectLabourers(api *gateway.Client, ls []models.Labourer) []labourerVM {
	out := make([]labourerVM, 0, len(ls))
	for _, l := range ls {
		out = append(out, labourerVM{
			ID:            l.ID,
			Name:          l.Name,
			FatherName:    l.FatherName,
			ContactNumber: l.ContactNumber,
			AadhaarNumber: l.AadhaarNumber,
			SectorID:      l.SectorID,
			ArmyUnitID:    l.ArmyUnitID,
			StartDate:     l.StartDate,
			EndDate:       l.EndDate,
			PhotoURL:      api.ResolveMediaURL(l.PhotoPath),
			Assigned:      l.Assigned(),
		})
	}
	return out
}
