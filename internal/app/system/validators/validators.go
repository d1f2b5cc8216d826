// internal/app/system/validators/validators.go

// Package validators holds the client-side form checks from the original
// dashboard: required fields, 10-digit mobile, 12-digit Aadhaar, IFSC and
// account-number patterns. Failures surface inline per field, never as a
// server error.
package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"labourhub/internal/app/system/normalize"
)

// ifscPattern: four bank letters, a literal zero, six branch characters.
var ifscPattern = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Aadhaar: 12 digits once separators are stripped.
	_ = v.RegisterValidation("aadhaar", func(fl validator.FieldLevel) bool {
		return len(normalize.Digits(fl.Field().String())) >= 12
	})
	// Indian mobile: exactly 10 digits after normalization.
	_ = v.RegisterValidation("inmobile", func(fl validator.FieldLevel) bool {
		return len(normalize.Mobile(fl.Field().String())) == 10
	})
	// IFSC: bank code, the fixed zero, branch code.
	_ = v.RegisterValidation("ifsc", func(fl validator.FieldLevel) bool {
		return ifscPattern.MatchString(fl.Field().String())
	})
	return v
}

// messages maps struct fields to the inline messages the views show.
// Unlisted fields fall back to a generic message.
var messages = map[string]string{
	"MobileNumber":  "enter a valid 10-digit mobile number",
	"AadhaarNumber": "enter a valid 12-digit aadhaar number",
	"Name":          "name is required",
	"FatherName":    "father's name is required",
	"IFSC":          "enter a valid IFSC code",
	"AccountNumber": "enter a valid account number",
	"Comment":       "a comment is required when rejecting",
	"SectorID":      "select a sector",
	"ArmyUnitID":    "select an army unit",
	"StartDate":     "start date is required",
	"EndDate":       "end date is required",
	"CaptchaAnswer": "answer the captcha",
}

// Check validates a tagged form struct and returns per-field messages.
// nil means the form is valid.
func Check(form any) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": "invalid submission"}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, known := messages[fe.Field()]
		if !known {
			msg = "invalid value"
		}
		fields[fe.Field()] = msg
	}
	return fields
}

// LoginForm is the login submission.
type LoginForm struct {
	MobileNumber  string `validate:"required,inmobile"`
	CaptchaID     string `validate:"required"`
	CaptchaAnswer string `validate:"required"`
}

// RegisterForm is a labourer registration submission. Bank fields are
// optional but validated when present.
type RegisterForm struct {
	Name          string `validate:"required"`
	FatherName    string `validate:"required"`
	ContactNumber string `validate:"required,inmobile"`
	AadhaarNumber string `validate:"required,aadhaar"`
	PANNumber     string `validate:"omitempty,len=10"`
	AccountNumber string `validate:"omitempty,numeric,min=9,max=18"`
	IFSC          string `validate:"omitempty,ifsc"`
	SectorID      int64  `validate:"required"`
}

// AssignForm is the Defence assignment submission: target unit plus the
// inclusive assignment date range.
type AssignForm struct {
	ArmyUnitID int64   `validate:"required"`
	LabourIDs  []int64 `validate:"required,min=1"`
	StartDate  string  `validate:"required,datetime=2006-01-02"`
	EndDate    string  `validate:"required,datetime=2006-01-02"`
}

// RejectRequestForm is an admin's rejection of a deletion request.
// The comment is mandatory.
type RejectRequestForm struct {
	RequestID int64  `validate:"required"`
	Comment   string `validate:"required"`
}
