// internal/app/store/armyunits/store.go
package armyunits

import (
	"context"
	"fmt"
	"net/url"

	"labourhub/internal/app/gateway"
	"labourhub/internal/domain/models"
)

// Store gives typed access to army unit reference data.
type Store struct {
	api *gateway.Client
}

func New(api *gateway.Client) *Store {
	return &Store{api: api}
}

// List returns all army units. Backend: GET /dynamic/army_units.
func (s *Store) List(ctx context.Context) ([]models.ArmyUnit, error) {
	var out []models.ArmyUnit
	if err := s.api.GetJSON(ctx, "/dynamic/army_units", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BySector returns the units inside one sector, for the assignment picker.
// Backend: GET /army-units/by-sector?sector_id.
func (s *Store) BySector(ctx context.Context, sectorID string) ([]models.ArmyUnit, error) {
	q := url.Values{}
	q.Set("sector_id", sectorID)

	var out []models.ArmyUnit
	if err := s.api.GetJSON(ctx, "/army-units/by-sector?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create adds an army unit inside a sector. Backend: POST /army-units.
func (s *Store) Create(ctx context.Context, name string, sectorID int64) (models.ArmyUnit, error) {
	var out models.ArmyUnit
	in := map[string]any{"name": name, "sector_id": sectorID}
	if err := s.api.PostJSON(ctx, "/army-units", in, &out); err != nil {
		return models.ArmyUnit{}, err
	}
	return out, nil
}

// Delete removes an army unit. Backend: DELETE /army-units/:id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/army-units/%d", id), nil)
}
