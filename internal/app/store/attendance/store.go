// internal/app/store/attendance/store.go
package attendance

import (
	"context"
	"net/url"

	"labourhub/internal/app/gateway"
	"labourhub/internal/domain/models"
)

// Store gives typed access to the backend's attendance resource. Records
// are created once by an Army officer's mark action and never edited.
type Store struct {
	api *gateway.Client
}

// New creates an attendance Store over the gateway client.
func New(api *gateway.Client) *Store {
	return &Store{api: api}
}

// ByUnit lists all attendance records for an army unit.
// Backend: GET /attendance/army/:armyUnitId.
func (s *Store) ByUnit(ctx context.Context, armyUnitID string) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	if err := s.api.GetJSON(ctx, "/attendance/army/"+url.PathEscape(armyUnitID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Mark is a daily attendance submission. The photo travels opaquely; the
// dashboard never inspects or stores it.
type Mark struct {
	LabourID   string
	ArmyUnitID string
	Date       string
	Status     string
	Photo      gateway.FilePart
}

// Create submits one daily mark.
// Backend: POST /attendance/mark (multipart).
func (s *Store) Create(ctx context.Context, m Mark) error {
	fields := map[string]string{
		"labour_id":       m.LabourID,
		"army_unit_id":    m.ArmyUnitID,
		"attendance_date": m.Date,
		"status":          m.Status,
	}
	files := map[string]gateway.FilePart{}
	if m.Photo.Reader != nil {
		files["photo"] = m.Photo
	}
	return s.api.PostMultipart(ctx, "/attendance/mark", fields, files, nil)
}

// Range lists attendance records for a unit over an inclusive date range.
// Backend: GET /attendance/report/range.
func (s *Store) Range(ctx context.Context, armyUnitID, startDate, endDate string) ([]models.AttendanceRecord, error) {
	q := url.Values{}
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)
	q.Set("army_unit_id", armyUnitID)

	var out []models.AttendanceRecord
	if err := s.api.GetJSON(ctx, "/attendance/report/range?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}
