// internal/app/store/requests/store.go
package requests

import (
	"context"

	"labourhub/internal/app/gateway"
	"labourhub/internal/domain/models"
)

// Store gives typed access to the labourer deletion-request workflow: an
// officer's delete request waits server-side until an admin approves
// (record deleted) or rejects it with a comment (record kept).
type Store struct {
	api *gateway.Client
}

func New(api *gateway.Client) *Store {
	return &Store{api: api}
}

// Pending lists requests awaiting an admin decision.
// Backend: POST /labour/pending-requests (the contract uses POST for this
// listing; preserved as-is).
func (s *Store) Pending(ctx context.Context) ([]models.DeletionRequest, error) {
	var out []models.DeletionRequest
	if err := s.api.PostJSON(ctx, "/labour/pending-requests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Approve accepts a deletion request; the backend deletes the labourer.
// Backend: POST /labour/approve-request.
func (s *Store) Approve(ctx context.Context, requestID int64) error {
	in := map[string]int64{"request_id": requestID}
	return s.api.PostJSON(ctx, "/labour/approve-request", in, nil)
}

// Reject declines a deletion request with a mandatory comment; the
// labourer record persists.
// Backend: POST /labour/reject-request.
func (s *Store) Reject(ctx context.Context, requestID int64, comment string) error {
	in := map[string]any{"request_id": requestID, "comment": comment}
	return s.api.PostJSON(ctx, "/labour/reject-request", in, nil)
}
