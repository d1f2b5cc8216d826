// internal/app/system/paging/paging_test.go
package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParseStart(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want int
	}{
		{"absent", "/list", 1},
		{"valid", "/list?start=51", 51},
		{"zero", "/list?start=0", 1},
		{"negative", "/list?start=-5", 1},
		{"garbage", "/list?start=abc", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if got := ParseStart(r); got != tt.want {
				t.Errorf("ParseStart(%q) = %d, want %d", tt.url, got, tt.want)
			}
		})
	}
}

func rows(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPage(t *testing.T) {
	tests := []struct {
		name                string
		total, start        int
		wantLen             int
		wantFirst, wantLast int
		wantRes             Result
	}{
		{"empty", 0, 1, 0, 0, 0,
			Result{Start: 0, End: 0, Total: 0, PrevStart: 1, NextStart: 1}},
		{"single short page", 10, 1, 10, 1, 10,
			Result{Start: 1, End: 10, Total: 10, PrevStart: 1, NextStart: 1}},
		{"first of many", 120, 1, 50, 1, 50,
			Result{Start: 1, End: 50, Total: 120, PrevStart: 1, NextStart: 51, HasNext: true}},
		{"middle page", 120, 51, 50, 51, 100,
			Result{Start: 51, End: 100, Total: 120, PrevStart: 1, NextStart: 101, HasPrev: true, HasNext: true}},
		{"last partial page", 120, 101, 20, 101, 120,
			Result{Start: 101, End: 120, Total: 120, PrevStart: 51, NextStart: 101, HasPrev: true}},
		{"start past end clamps to last page", 120, 999, 20, 101, 120,
			Result{Start: 101, End: 120, Total: 120, PrevStart: 51, NextStart: 101, HasPrev: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, res := Page(rows(tt.total), tt.start)
			if len(window) != tt.wantLen {
				t.Fatalf("len(window) = %d, want %d", len(window), tt.wantLen)
			}
			if tt.wantLen > 0 {
				if window[0] != tt.wantFirst || window[len(window)-1] != tt.wantLast {
					t.Errorf("window spans %d..%d, want %d..%d",
						window[0], window[len(window)-1], tt.wantFirst, tt.wantLast)
				}
			}
			if res != tt.wantRes {
				t.Errorf("result = %+v, want %+v", res, tt.wantRes)
			}
		})
	}
}
