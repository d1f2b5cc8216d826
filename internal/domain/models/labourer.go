// internal/domain/models/labourer.go
package models

// BankDetails holds the optional bank account information captured at
// registration. All fields are passed through to the backend verbatim.
type BankDetails struct {
	AccountNumber string `json:"account_number,omitempty"`
	IFSC          string `json:"ifsc,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
}

// Labourer is a registered manual labourer as the backend represents it.
// The dashboard never owns a labourer record; every copy is fetched per view
// and discarded. Dates are wire strings in "2006-01-02" form.
type Labourer struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	FatherName    string       `json:"father_name"`
	ContactNumber string       `json:"contact_number"`
	AadhaarNumber string       `json:"aadhaar_number"`
	PANNumber     string       `json:"pan_number,omitempty"`
	BankDetails   *BankDetails `json:"bank_details,omitempty"`
	PhotoPath     string       `json:"photo_path,omitempty"`

	// UserID is the officer who registered this labourer.
	UserID   int64 `json:"user_id"`
	SectorID int64 `json:"sector_id"`

	// ArmyUnitID is nil until a Defence officer assigns the labourer to a
	// unit, which also sets the assignment date range.
	ArmyUnitID *int64 `json:"army_unit_id"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
}

// Assigned reports whether the labourer has been assigned to an army unit.
func (l Labourer) Assigned() bool {
	return l.ArmyUnitID != nil
}

// HasAssignmentRange reports whether both assignment dates are present.
// Working-day and calendar views are unavailable without them.
func (l Labourer) HasAssignmentRange() bool {
	return l.StartDate != "" && l.EndDate != ""
}
