// internal/app/store/sectors/store.go
package sectors

import (
	"context"
	"net/url"

	"labourhub/internal/app/gateway"
	"labourhub/internal/domain/models"
)

// Store gives typed access to sector reference data.
type Store struct {
	api *gateway.Client
}

func New(api *gateway.Client) *Store {
	return &Store{api: api}
}

// List returns all sectors. Backend: GET /dynamic/sectors.
func (s *Store) List(ctx context.Context) ([]models.Sector, error) {
	var out []models.Sector
	if err := s.api.GetJSON(ctx, "/dynamic/sectors", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create adds a sector. Backend: POST /sectors.
func (s *Store) Create(ctx context.Context, name string) (models.Sector, error) {
	var out models.Sector
	in := map[string]string{"name": name}
	if err := s.api.PostJSON(ctx, "/sectors", in, &out); err != nil {
		return models.Sector{}, err
	}
	return out, nil
}

// DeleteByName removes a sector. The backend keys deletion on the name,
// not the ID. Backend: DELETE /sectors/name/:name.
func (s *Store) DeleteByName(ctx context.Context, name string) error {
	return s.api.Delete(ctx, "/sectors/name/"+url.PathEscape(name), nil)
}
