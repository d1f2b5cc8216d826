// internal/app/system/normalize/normalize.go

// Package normalize cleans user-entered form values before they are
// validated or forwarded to the backend.
package normalize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict strips all markup from free-text fields. Labourer names and
// rejection comments travel to other views verbatim, so they are sanitized
// at the door.
var strict = bluemonday.StrictPolicy()

// Text trims whitespace and strips any HTML from a free-text field.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// Name collapses internal runs of whitespace in a person's name.
func Name(s string) string {
	return strings.Join(strings.Fields(Text(s)), " ")
}

// Digits keeps only ASCII digits. Aadhaar and account numbers are often
// entered with spaces or dashes; validation runs on the stripped form.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Mobile strips non-digits and drops a leading country prefix so that
// "+91 99999 99999" validates as a 10-digit number.
func Mobile(s string) string {
	d := Digits(s)
	if len(d) == 12 && strings.HasPrefix(d, "91") {
		return d[2:]
	}
	if len(d) == 11 && strings.HasPrefix(d, "0") {
		return d[1:]
	}
	return d
}

// IFSC uppercases and trims a bank IFSC code.
func IFSC(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
