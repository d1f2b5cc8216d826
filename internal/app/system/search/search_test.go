package search

import "testing"

func TestMatches(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   bool
	}{
		{"empty query matches", "", []string{"Ram Kumar"}, true},
		{"blank query matches", "   ", []string{"Ram Kumar"}, true},
		{"case-insensitive name", "ram", []string{"Ram Kumar", ""}, true},
		{"substring in second field", "kumar", []string{"", "Shyam Kumar"}, true},
		{"no match", "mohan", []string{"Ram Kumar", "Shyam"}, false},

		// Digit queries match through formatting noise.
		{"digits match spaced mobile", "98765", []string{"98765 43210"}, true},
		{"digits match dashed aadhaar", "123456", []string{"1234-5678-9012"}, true},
		{"digits absent", "0000", []string{"98765 43210"}, false},

		// Mixed queries stay plain substring.
		{"mixed query no digit stripping", "ram9", []string{"Ram", "9123"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.query, tt.fields...); got != tt.want {
				t.Errorf("Matches(%q, %v) = %v, want %v", tt.query, tt.fields, got, tt.want)
			}
		})
	}
}
