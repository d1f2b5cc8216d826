// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the default number of rows shown in paged lists.
const PageSize = 50

// ParseStart extracts the human-friendly "start" query parameter (1-based index).
// Returns 1 if not present or invalid.
func ParseStart(r *http.Request) int {
	s := query.Get(r, "start")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Result holds the output of Page for rendering pagination controls.
type Result struct {
	Start     int `json:"start"`      // 1-based index of the first row shown (0 if none)
	End       int `json:"end"`        // 1-based index of the last row shown (0 if none)
	Total     int `json:"total"`      // total rows before windowing
	PrevStart int `json:"prev_start"` // start value for the previous page link
	NextStart int `json:"next_start"` // start value for the next page link

	HasPrev bool `json:"has_prev"`
	HasNext bool `json:"has_next"`
}

// Page windows a full result slice to the page beginning at start (1-based)
// and returns the trimmed slice plus pagination indicators. The backend
// returns complete lists, so windowing happens here rather than in the
// upstream query.
func Page[T any](rows []T, start int) ([]T, Result) {
	return pageWithSize(rows, start, PageSize)
}

func pageWithSize[T any](rows []T, start, pageSize int) ([]T, Result) {
	total := len(rows)
	if start < 1 {
		start = 1
	}
	if start > total {
		// Past the end: show the final page instead of an empty list.
		start = total - (total-1)%pageSize
		if total == 0 {
			start = 1
		}
	}

	lo := start - 1
	hi := lo + pageSize
	if hi > total {
		hi = total
	}
	window := rows[lo:hi]

	res := Result{
		Start:   lo + boolInt(len(window) > 0),
		End:     hi,
		Total:   total,
		HasPrev: lo > 0,
		HasNext: hi < total,
	}
	res.PrevStart = start - pageSize
	if res.PrevStart < 1 {
		res.PrevStart = 1
	}
	res.NextStart = start + pageSize
	if !res.HasNext {
		res.NextStart = start
	}
	return window, res
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
