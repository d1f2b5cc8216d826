// internal/app/system/search/search.go
package search

import "strings"

// Matches reports whether the query matches any of the given fields.
// Matching is a case-insensitive substring test; a query made entirely of
// digits is additionally compared against the digit-stripped form of each
// field, so "98765" finds a mobile number entered as "98765 43210".
//
// An empty query matches everything, which lets list handlers apply the
// filter unconditionally.
func Matches(query string, fields ...string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	lower := strings.ToLower(query)
	numeric := isDigits(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lower) {
			return true
		}
		if numeric && strings.Contains(onlyDigits(f), query) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
