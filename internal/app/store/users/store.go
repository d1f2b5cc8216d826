// internal/app/store/users/store.go
package users

import (
	"context"
	"net/url"

	"labourhub/internal/app/gateway"
	"labourhub/internal/domain/models"
)

// Store gives typed access to the backend's user accounts (officers and
// admins). Admin management views are its only consumer besides login.
type Store struct {
	api *gateway.Client
}

func New(api *gateway.Client) *Store {
	return &Store{api: api}
}

// Login authenticates by mobile number. The backend issues the session
// identity; no password is involved.
// Backend: POST /auth/login.
func (s *Store) Login(ctx context.Context, mobile string) (models.LoginResult, error) {
	var out models.LoginResult
	in := map[string]string{"mobile_number": mobile}
	if err := s.api.PostJSON(ctx, "/auth/login", in, &out); err != nil {
		return models.LoginResult{}, err
	}
	return out, nil
}

// List returns all user accounts. Backend: GET /users.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := s.api.GetJSON(ctx, "/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NewUser is the payload for creating an account.
type NewUser struct {
	Name         string `json:"name"`
	MobileNumber string `json:"mobile_number"`
	Role         string `json:"role"`
	SectorID     int64  `json:"sector_id,omitempty"`
	ArmyUnitID   *int64 `json:"army_unit_id,omitempty"`
}

// Create adds a user account. Backend: POST /users.
func (s *Store) Create(ctx context.Context, u NewUser) (models.User, error) {
	var out models.User
	if err := s.api.PostJSON(ctx, "/users", u, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}

// DeleteByMobile removes the account with the given mobile number.
// Backend: DELETE /users/:mobile.
func (s *Store) DeleteByMobile(ctx context.Context, mobile string) error {
	return s.api.Delete(ctx, "/users/"+url.PathEscape(mobile), nil)
}
