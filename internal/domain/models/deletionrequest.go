// internal/domain/models/deletionrequest.go
package models

// Deletion request states. The workflow is a single toggle:
// pending -> approved (record deleted) or pending -> rejected (record kept).
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// DeletionRequest is an officer's queued request to delete a labourer,
// resolved by an admin. Rejection carries a mandatory comment.
type DeletionRequest struct {
	ID          int64  `json:"id"`
	LabourID    int64  `json:"labour_id"`
	LabourName  string `json:"labour_name,omitempty"`
	RequestedBy int64  `json:"requested_by"`
	Status      string `json:"status"`
	Comment     string `json:"comment,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}
