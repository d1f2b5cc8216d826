// internal/app/system/rollup/rollup.go

// Package rollup derives attendance summaries from raw backend records.
// Everything here is pure: records plus a reference date in, counts out.
// The handlers own fetching and error states; rollup never touches I/O.
package rollup

import (
	"time"

	"labourhub/internal/domain/models"
)

// dateLayout is the wire form of attendance and assignment dates.
const dateLayout = "2006-01-02"

// Summary holds one day's derived attendance counts for a unit.
type Summary struct {
	Present int
	Absent  int
	// TotalRecords counts every record matching the day, before the
	// per-labourer dedup. Useful for spotting duplicate submissions.
	TotalRecords int
}

// Day normalizes t to local midnight. All date comparisons in this package
// go through Day so a record stamped "2025-04-02" matches a reference time
// anywhere within that local day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate parses a wire date string. Timestamps with a time component are
// tolerated by keeping only the leading date part.
func ParseDate(s string) (time.Time, bool) {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Daily computes the present/absent split for the given reference date.
//
// Records whose date does not match the reference day are ignored. When the
// same labourer appears more than once on the day, the last record in input
// order wins; this is a tie-break policy, not a vote. A labourer is present
// iff their resolved status is StatusPresent. Absent is the remainder of
// assignedTotal, clamped at zero so a record set larger than the assigned
// roster cannot produce a negative count.
func Daily(records []models.AttendanceRecord, ref time.Time, assignedTotal int) Summary {
	day := Day(ref)

	resolved := make(map[int64]int)
	total := 0
	for _, rec := range records {
		d, ok := ParseDate(rec.AttendanceDate)
		if !ok || !Day(d).Equal(day) {
			continue
		}
		total++
		resolved[rec.LabourID] = rec.Status // later entries override earlier
	}

	present := 0
	for _, status := range resolved {
		if status == models.StatusPresent {
			present++
		}
	}

	absent := assignedTotal - present
	if absent < 0 {
		absent = 0
	}

	return Summary{Present: present, Absent: absent, TotalRecords: total}
}

// WorkingDays counts the dates in the closed [start, end] range for which at
// least one of the labourer's records matches exactly. This is the
// working-day figure shown in unit and sector reports. Callers must check
// the labourer has an assignment range first; rollup takes concrete dates.
func WorkingDays(start, end time.Time, records []models.AttendanceRecord) int {
	attended := recordDays(records)

	count := 0
	for d := Day(start); !d.After(Day(end)); d = d.AddDate(0, 0, 1) {
		if attended[d] {
			count++
		}
	}
	return count
}

// CalendarDay is one date of a labourer's assignment range with its
// attendance flag, for the admin calendar view.
type CalendarDay struct {
	Date     string `json:"date"`
	Attended bool   `json:"attended"`
}

// Calendar expands the closed [start, end] range into ordered per-date
// attendance flags.
func Calendar(start, end time.Time, records []models.AttendanceRecord) []CalendarDay {
	attended := recordDays(records)

	var days []CalendarDay
	for d := Day(start); !d.After(Day(end)); d = d.AddDate(0, 0, 1) {
		days = append(days, CalendarDay{
			Date:     d.Format(dateLayout),
			Attended: attended[d],
		})
	}
	return days
}

func recordDays(records []models.AttendanceRecord) map[time.Time]bool {
	days := make(map[time.Time]bool, len(records))
	for _, rec := range records {
		if d, ok := ParseDate(rec.AttendanceDate); ok {
			days[Day(d)] = true
		}
	}
	return days
}
