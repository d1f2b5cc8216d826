// internal/domain/models/attendance.go
package models

// Attendance record status values. The backend stores status as an integer;
// anything other than 1 counts as absent.
const (
	StatusAbsent  = 0
	StatusPresent = 1
)

// AttendanceRecord is a single daily mark made by an Army officer.
// Records are immutable once created; the client never edits them.
type AttendanceRecord struct {
	ID             int64  `json:"id"`
	LabourID       int64  `json:"labour_id"`
	ArmyUnitID     int64  `json:"army_unit_id"`
	AttendanceDate string `json:"attendance_date"`
	AttendanceTime string `json:"attendance_time,omitempty"`
	Status         int    `json:"status"`
	PhotoPath      string `json:"photo_path,omitempty"`
}
