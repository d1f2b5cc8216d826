// internal/app/features/attendance/handler.go
package attendance

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	uierrors "labourhub/internal/app/features/errors"
	"labourhub/internal/app/gateway"
	"labourhub/internal/app/policy/labourpolicy"
	attendancestore "labourhub/internal/app/store/attendance"
	labourersstore "labourhub/internal/app/store/labourers"
	"labourhub/internal/app/system/auditlog"
	"labourhub/internal/app/system/auth"
	"labourhub/internal/app/system/authz"
	"labourhub/internal/app/system/limits"
	"labourhub/internal/app/system/rollup"
	"labourhub/internal/app/system/timeouts"
	"labourhub/internal/domain/models"
)

type Handler struct {
	Attendance *attendancestore.Store
	Labourers  *labourersstore.Store
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
	Audit      *auditlog.Logger
}

func NewHandler(
	attendance *attendancestore.Store,
	labourers *labourersstore.Store,
	sessionMgr *auth.SessionManager,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Attendance: attendance,
		Labourers:  labourers,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Log:        logger,
		Audit:      auditlog.New(logger),
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /attendance/mark                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleMark records one labourer's attendance for a date, photo attached.
// Only an Army officer may mark, only for labourers assigned to their unit,
// and only once per labourer per day; the once-per-day memory lives in the
// session, the backend being the final arbiter.
func (h *Handler) HandleMark(w http.ResponseWriter, r *http.Request) {
	id := authz.Resolve(r)
	if id.ArmyUnitID == "" {
		uierrors.WriteError(w, http.StatusForbidden, "only army officers mark attendance")
		return
	}

	if err := r.ParseMultipartForm(limits.MaxPhotoUploadSize); err != nil {
		uierrors.WriteError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	labourID, err := strconv.ParseInt(r.FormValue("labour_id"), 10, 64)
	if err != nil {
		uierrors.WriteValidation(w, map[string]string{"labour_id": "select a labourer"})
		return
	}

	date := r.FormValue("attendance_date")
	if date == "" {
		date = rollup.Day(time.Now()).Format("2006-01-02")
	}
	if _, ok := rollup.ParseDate(date); !ok {
		uierrors.WriteValidation(w, map[string]string{"attendance_date": "enter a valid date"})
		return
	}

	status := r.FormValue("status")
	if status != "0" && status != "1" {
		uierrors.WriteValidation(w, map[string]string{"status": "mark present or absent"})
		return
	}

	photo, header, err := r.FormFile("photo")
	if err != nil {
		uierrors.WriteValidation(w, map[string]string{"photo": "a photo is required"})
		return
	}
	defer photo.Close()

	labourKey := strconv.FormatInt(labourID, 10)
	if h.SessionMgr.AttendanceMarked(r, labourKey, date) {
		uierrors.WriteError(w, http.StatusConflict, "attendance already marked for this labourer today")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	assigned, err := h.Labourers.AssignedToUnit(ctx, id.Mobile)
	if err != nil {
		h.ErrLog.Handle(w, r, err, "verify unit assignment")
		return
	}
	var target *models.Labourer
	for i := range assigned {
		if assigned[i].ID == labourID {
			target = &assigned[i]
			break
		}
	}
	if target == nil || !labourpolicy.CanMark(id, *target) {
		uierrors.WriteError(w, http.StatusForbidden, "labourer is not assigned to your unit")
		return
	}

	err = h.Attendance.Create(ctx, attendancestore.Mark{
		LabourID:   labourKey,
		ArmyUnitID: id.ArmyUnitID,
		Date:       date,
		Status:     status,
		Photo:      gateway.FilePart{Filename: header.Filename, Reader: photo},
	})
	if err != nil {
		h.ErrLog.Handle(w, r, err, "mark attendance")
		return
	}

	if err := h.SessionMgr.RecordAttendanceMarked(w, r, labourKey, date); err != nil {
		h.Log.Warn("record marked flag failed", zap.Error(err))
	}

	st, _ := strconv.Atoi(status)
	h.Audit.AttendanceMarked(r, labourID, st)
	uierrors.WriteJSON(w, http.StatusOK, map[string]string{"status": "marked"})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /attendance/report                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

type labourReport struct {
	LabourID    int64 `json:"labour_id"`
	WorkingDays int   `json:"working_days"`
	Present     int   `json:"present"`
}

type reportView struct {
	StartDate string                    `json:"start_date"`
	EndDate   string                    `json:"end_date"`
	Records   []models.AttendanceRecord `json:"records"`
	Labourers []labourReport            `json:"labourers"`
}

// ServeReport renders the unit's attendance over an inclusive date range,
// with per-labourer working-day counts.
func (h *Handler) ServeReport(w http.ResponseWriter, r *http.Request) {
	id := authz.Resolve(r)
	if id.ArmyUnitID == "" {
		uierrors.WriteError(w, http.StatusForbidden, "only army officers view unit reports")
		return
	}

	startRaw := r.URL.Query().Get("start_date")
	endRaw := r.URL.Query().Get("end_date")
	start, okS := rollup.ParseDate(startRaw)
	end, okE := rollup.ParseDate(endRaw)
	if !okS || !okE || end.Before(start) {
		uierrors.WriteValidation(w, map[string]string{"start_date": "enter a valid date range"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	recs, err := h.Attendance.Range(ctx, id.ArmyUnitID, startRaw, endRaw)
	if h.ErrLog.Degrade(w, r, err, "attendance range") {
		return
	}

	uierrors.WriteJSON(w, http.StatusOK, reportView{
		StartDate: startRaw,
		EndDate:   endRaw,
		Records:   recs,
		Labourers: perLabourer(start, end, recs),
	})
}

// perLabourer folds the range's records into per-labourer totals, ordered
// by first appearance.
func perLabourer(start, end time.Time, recs []models.AttendanceRecord) []labourReport {
	byLabour := make(map[int64][]models.AttendanceRecord)
	var order []int64
	for _, rec := range recs {
		if _, seen := byLabour[rec.LabourID]; !seen {
			order = append(order, rec.LabourID)
		}
		byLabour[rec.LabourID] = append(byLabour[rec.LabourID], rec)
	}

	out := make([]labourReport, 0, len(order))
	for _, lid := range order {
		own := byLabour[lid]
		present := 0
		for _, rec := range own {
			if rec.Status == models.StatusPresent {
				present++
			}
		}
		out = append(out, labourReport{
			LabourID:    lid,
			WorkingDays: rollup.WorkingDays(start, end, own),
			Present:     present,
		})
	}
	return out
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /attendance/calendar                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

type calendarView struct {
	LabourID  int64                `json:"labour_id"`
	Available bool                 `json:"available"`
	StartDate string               `json:"start_date,omitempty"`
	EndDate   string               `json:"end_date,omitempty"`
	Days      []rollup.CalendarDay `json:"days,omitempty"`
}

// ServeCalendar renders one labourer's attended/missed days over their
// assignment range. Unavailable when the labourer has no range recorded.
func (h *Handler) ServeCalendar(w http.ResponseWriter, r *http.Request) {
	id := authz.Resolve(r)
	if id.ArmyUnitID == "" {
		uierrors.WriteError(w, http.StatusForbidden, "only army officers view labourer calendars")
		return
	}

	labourID, err := strconv.ParseInt(r.URL.Query().Get("labour_id"), 10, 64)
	if err != nil {
		uierrors.WriteError(w, http.StatusBadRequest, "invalid labourer id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	assigned, err := h.Labourers.AssignedToUnit(ctx, id.Mobile)
	if h.ErrLog.Degrade(w, r, err, "labourers assigned to unit") {
		return
	}
	var target *models.Labourer
	for i := range assigned {
		if assigned[i].ID == labourID {
			target = &assigned[i]
			break
		}
	}
	if target == nil {
		uierrors.WriteError(w, http.StatusForbidden, "labourer is not assigned to your unit")
		return
	}

	start, okS := rollup.ParseDate(target.StartDate)
	end, okE := rollup.ParseDate(target.EndDate)
	if !target.HasAssignmentRange() || !okS || !okE {
		uierrors.WriteJSON(w, http.StatusOK, calendarView{LabourID: labourID, Available: false})
		return
	}

	recs, err := h.Attendance.Range(ctx, id.ArmyUnitID, target.StartDate, target.EndDate)
	if h.ErrLog.Degrade(w, r, err, "attendance range") {
		return
	}
	var own []models.AttendanceRecord
	for _, rec := range recs {
		if rec.LabourID == labourID {
			own = append(own, rec)
		}
	}

	uierrors.WriteJSON(w, http.StatusOK, calendarView{
		LabourID:  labourID,
		Available: true,
		StartDate: target.StartDate,
		EndDate:   target.EndDate,
		Days:      rollup.Calendar(start, end, own),
	})
}
