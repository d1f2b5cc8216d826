// internal/app/store/labourers/store.go
package labourers

import (
	"context"
	"fmt"
	"net/url"

	"labourhub/internal/app/gateway"
	"labourhub/internal/domain/models"
)

// Store gives typed access to the backend's labour resource. The backend
// owns every record; the store returns ephemeral copies fetched per view.
type Store struct {
	api *gateway.Client
}

// New creates a labourers Store over the gateway client.
func New(api *gateway.Client) *Store {
	return &Store{api: api}
}

// ByOfficer lists the labourers registered by the given officer.
// Backend: GET /labour/:userId.
func (s *Store) ByOfficer(ctx context.Context, userID string) ([]models.Labourer, error) {
	var out []models.Labourer
	if err := s.api.GetJSON(ctx, "/labour/"+url.PathEscape(userID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignedToUnit lists the labourers assigned to the unit managed by the
// officer with the given mobile number.
// Backend: GET /labour/assigned/:mobile.
func (s *Store) AssignedToUnit(ctx context.Context, mobile string) ([]models.Labourer, error) {
	var out []models.Labourer
	if err := s.api.GetJSON(ctx, "/labour/assigned/"+url.PathEscape(mobile), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Registration is the payload for registering a new labourer.
type Registration struct {
	Name          string              `json:"name"`
	FatherName    string              `json:"father_name"`
	ContactNumber string              `json:"contact_number"`
	AadhaarNumber string              `json:"aadhaar_number"`
	PANNumber     string              `json:"pan_number,omitempty"`
	BankDetails   *models.BankDetails `json:"bank_details,omitempty"`
	SectorID      int64               `json:"sector_id"`
	UserID        int64               `json:"user_id"`
}

// Register creates a new labourer record.
// Backend: POST /labour/register.
func (s *Store) Register(ctx context.Context, reg Registration) (models.Labourer, error) {
	var out models.Labourer
	if err := s.api.PostJSON(ctx, "/labour/register", reg, &out); err != nil {
		return models.Labourer{}, err
	}
	return out, nil
}

// Delete removes a labourer outright. The Defence "reject" action lands
// here: there is no soft-reject state server-side.
// Backend: DELETE /labour/:id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/labour/%d", id), nil)
}

// Assignment is the payload for assigning labourers to an army unit with an
// inclusive date range.
type Assignment struct {
	ArmyUnitID int64   `json:"army_unit_id"`
	LabourIDs  []int64 `json:"labour_ids"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
}

// AssignToUnit sets army unit and date range on the selected labourers.
// Backend: POST /labour/assign-army-unit.
func (s *Store) AssignToUnit(ctx context.Context, a Assignment) error {
	return s.api.PostJSON(ctx, "/labour/assign-army-unit", a, nil)
}
