// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// loopPaths are destinations that would bounce a fresh session straight
// back out again.
var loopPaths = []string{"/login", "/logout"}

// NextURL extracts and validates a post-login destination from the request.
//
// It checks both the "next" query parameter and form value, rejects anything
// that is not a safe site-relative path (no open redirects), and refuses the
// auth pages themselves to prevent redirect loops. When nothing usable is
// present it returns fallback, normally the session's role-based landing
// page.
func NextURL(r *http.Request, fallback string) string {
	next := urlutil.SafeReturn(query.Get(r, "next"), "", "")
	if next == "" {
		next = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("next")), "", "")
	}
	if next == "" {
		return fallback
	}
	for _, p := range loopPaths {
		if next == p || strings.HasPrefix(next, p+"/") || strings.HasPrefix(next, p+"?") {
			return fallback
		}
	}
	return next
}
