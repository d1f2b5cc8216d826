package rollup

import (
	"testing"
	"time"

	"labourhub/internal/domain/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func rec(labourID int64, day string, status int) models.AttendanceRecord {
	return models.AttendanceRecord{LabourID: labourID, AttendanceDate: day, Status: status}
}

func TestDaily_CountsOnlyReferenceDate(t *testing.T) {
	records := []models.AttendanceRecord{
		rec(1, "2025-04-02", 1),
		rec(2, "2025-04-01", 1), // different day, ignored
		rec(3, "2025-04-02", 0),
	}

	got := Daily(records, date(2025, time.April, 2), 5)

	if got.Present != 1 {
		t.Errorf("Present: got %d, want 1", got.Present)
	}
	if got.Absent != 4 {
		t.Errorf("Absent: got %d, want 4", got.Absent)
	}
	if got.TotalRecords != 2 {
		t.Errorf("TotalRecords: got %d, want 2", got.TotalRecords)
	}
}

func TestDaily_LastRecordWinsPerLabourer(t *testing.T) {
	// Two records for the same labourer on the same day: [1, 0] in array
	// order resolves to 0. Order is the tie-break, not a count.
	records := []models.AttendanceRecord{
		rec(7, "2025-04-02", 1),
		rec(7, "2025-04-02", 0),
	}

	got := Daily(records, date(2025, time.April, 2), 1)

	if got.Present != 0 {
		t.Errorf("Present: got %d, want 0 (last status wins)", got.Present)
	}
	if got.Absent != 1 {
		t.Errorf("Absent: got %d, want 1", got.Absent)
	}
	if got.TotalRecords != 2 {
		t.Errorf("TotalRecords: got %d, want 2 (pre-dedup)", got.TotalRecords)
	}
}

func TestDaily_AbsentClampedAtZero(t *testing.T) {
	// More distinct present labourers than the assigned total. Defensive
	// edge: absent must clamp to zero rather than go negative.
	records := []models.AttendanceRecord{
		rec(1, "2025-04-02", 1),
		rec(2, "2025-04-02", 1),
		rec(3, "2025-04-02", 1),
	}

	got := Daily(records, date(2025, time.April, 2), 2)

	if got.Present != 3 {
		t.Errorf("Present: got %d, want 3", got.Present)
	}
	if got.Absent != 0 {
		t.Errorf("Absent: got %d, want 0 (clamped)", got.Absent)
	}
}

func TestDaily_PresentPlusAbsentEqualsTotal(t *testing.T) {
	records := []models.AttendanceRecord{
		rec(1, "2025-04-02", 1),
		rec(2, "2025-04-02", 0),
		rec(3, "2025-04-02", 1),
	}
	total := 10

	got := Daily(records, date(2025, time.April, 2), total)

	if got.Present+got.Absent != total {
		t.Errorf("present+absent: got %d, want %d", got.Present+got.Absent, total)
	}
}

func TestDaily_NoRecordsNoLabourers(t *testing.T) {
	got := Daily(nil, date(2025, time.April, 2), 0)
	if got.Present != 0 || got.Absent != 0 || got.TotalRecords != 0 {
		t.Errorf("empty input: got %+v, want zeros", got)
	}
}

func TestDaily_TimestampedDatesMatch(t *testing.T) {
	records := []models.AttendanceRecord{
		rec(1, "2025-04-02T09:15:00Z", 1),
	}
	got := Daily(records, date(2025, time.April, 2), 1)
	if got.Present != 1 {
		t.Errorf("Present: got %d, want 1 (time component ignored)", got.Present)
	}
}

func TestWorkingDays(t *testing.T) {
	records := []models.AttendanceRecord{
		rec(1, "2025-04-02", 1),
	}

	got := WorkingDays(date(2025, time.April, 1), date(2025, time.April, 3), records)
	if got != 1 {
		t.Errorf("WorkingDays: got %d, want 1", got)
	}
}

func TestWorkingDays_RangeIsInclusive(t *testing.T) {
	records := []models.AttendanceRecord{
		rec(1, "2025-04-01", 1),
		rec(1, "2025-04-03", 0), // any record counts, status irrelevant here
		rec(1, "2025-03-31", 1), // before range
		rec(1, "2025-04-04", 1), // after range
	}

	got := WorkingDays(date(2025, time.April, 1), date(2025, time.April, 3), records)
	if got != 2 {
		t.Errorf("WorkingDays: got %d, want 2", got)
	}
}

func TestCalendar(t *testing.T) {
	records := []models.AttendanceRecord{
		rec(1, "2025-04-02", 1),
	}

	days := Calendar(date(2025, time.April, 1), date(2025, time.April, 3), records)

	if len(days) != 3 {
		t.Fatalf("days: got %d, want 3", len(days))
	}
	want := []CalendarDay{
		{Date: "2025-04-01", Attended: false},
		{Date: "2025-04-02", Attended: true},
		{Date: "2025-04-03", Attended: false},
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("day %d: got %+v, want %+v", i, days[i], want[i])
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, ok := ParseDate("not-a-date"); ok {
		t.Error("expected failure for malformed date")
	}
	if d, ok := ParseDate("2025-04-02"); !ok || d.Day() != 2 {
		t.Errorf("ParseDate: got %v ok=%v", d, ok)
	}
}
