// internal/app/features/labourers/handler.go
package labourers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "labourhub/internal/app/features/errors"
	"labourhub/internal/app/gateway"
	"labourhub/internal/app/policy/labourpolicy"
	labourersstore "labourhub/internal/app/store/labourers"
	"labourhub/internal/app/system/auditlog"
	"labourhub/internal/app/system/authz"
	"labourhub/internal/app/system/limits"
	"labourhub/internal/app/system/normalize"
	"labourhub/internal/app/system/paging"
	"labourhub/internal/app/system/search"
	"labourhub/internal/app/system/timeouts"
	"labourhub/internal/app/system/validators"
	"labourhub/internal/domain/models"
)

type Handler struct {
	Labourers *labourersstore.Store
	API       *gateway.Client
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger
	Audit     *auditlog.Logger
}

func NewHandler(
	labourers *labourersstore.Store,
	api *gateway.Client,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Labourers: labourers,
		API:       api,
		ErrLog:    errLog,
		Log:       logger,
		Audit:     auditlog.New(logger),
	}
}

type listView struct {
	Labourers []models.Labourer `json:"labourers"`
	Query     string            `json:"query,omitempty"`
	Paging    paging.Result     `json:"paging"`
}

func newListView(ls []models.Labourer, q string, start int) listView {
	window, res := paging.Page(ls, start)
	return listView{Labourers: window, Query: q, Paging: res}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /labourers                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeList returns the labourers visible to this officer: those they
// registered (Defence) or those assigned to their unit (Army).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	id := authz.Resolve(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		ls  []models.Labourer
		err error
	)
	if id.ArmyUnitID != "" {
		ls, err = h.Labourers.AssignedToUnit(ctx, id.Mobile)
	} else {
		ls, err = h.Labourers.ByOfficer(ctx, id.UserID)
	}
	if h.ErrLog.Degrade(w, r, err, "list labourers") {
		return
	}

	q := query.Get(r, "q")
	if q != "" {
		filtered := ls[:0:0]
		for _, l := range ls {
			if search.Matches(q, l.Name, l.FatherName, l.ContactNumber, l.AadhaarNumber) {
				filtered = append(filtered, l)
			}
		}
		ls = filtered
	}
	uierrors.WriteJSON(w, http.StatusOK, newListView(ls, q, paging.ParseStart(r)))
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /labourers/register                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleRegister creates a labourer record for the signed-in Defence
// officer. Inputs are normalized before validation; bank details are
// optional but validated when present.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		uierrors.WriteError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	id := authz.Resolve(r)

	sectorID, _ := strconv.ParseInt(r.FormValue("sector_id"), 10, 64)
	form := validators.RegisterForm{
		Name:          normalize.Name(r.FormValue("name")),
		FatherName:    normalize.Name(r.FormValue("father_name")),
		ContactNumber: normalize.Mobile(r.FormValue("contact_number")),
		AadhaarNumber: normalize.Digits(r.FormValue("aadhaar_number")),
		PANNumber:     normalize.Text(r.FormValue("pan_number")),
		AccountNumber: normalize.Digits(r.FormValue("account_number")),
		IFSC:          normalize.IFSC(r.FormValue("ifsc")),
		SectorID:      sectorID,
	}
	if fields := validators.Check(form); fields != nil {
		uierrors.WriteValidation(w, fields)
		return
	}

	userID, _ := strconv.ParseInt(id.UserID, 10, 64)
	reg := labourersstore.Registration{
		Name:          form.Name,
		FatherName:    form.FatherName,
		ContactNumber: form.ContactNumber,
		AadhaarNumber: form.AadhaarNumber,
		PANNumber:     form.PANNumber,
		SectorID:      form.SectorID,
		UserID:        userID,
	}
	if form.AccountNumber != "" || form.IFSC != "" {
		reg.BankDetails = &models.BankDetails{
			AccountNumber: form.AccountNumber,
			IFSC:          form.IFSC,
			BankName:      normalize.Name(r.FormValue("bank_name")),
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Labourers.Register(ctx, reg)
	if err != nil {
		h.ErrLog.Handle(w, r, err, "register labourer")
		return
	}

	h.Audit.Event(r, auditlog.EventLabourRegistered,
		zap.Int64("labour_id", created.ID))
	uierrors.WriteJSON(w, http.StatusCreated, created)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /labourers/assign                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleAssign assigns the selected labourers to an army unit with an
// inclusive date range. Only labourers the officer registered may be
// assigned; after the backend accepts, the list is re-fetched so the
// response reflects server truth rather than an optimistic local update.
func (h *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		uierrors.WriteError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	id := authz.Resolve(r)

	unitID, _ := strconv.ParseInt(r.FormValue("army_unit_id"), 10, 64)
	labourIDs := make([]int64, 0, len(r.Form["labour_ids"]))
	for _, raw := range r.Form["labour_ids"] {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			uierrors.WriteValidation(w, map[string]string{"LabourIDs": "invalid labourer selection"})
			return
		}
		labourIDs = append(labourIDs, n)
	}

	form := validators.AssignForm{
		ArmyUnitID: unitID,
		LabourIDs:  labourIDs,
		StartDate:  r.FormValue("start_date"),
		EndDate:    r.FormValue("end_date"),
	}
	if fields := validators.Check(form); fields != nil {
		uierrors.WriteValidation(w, fields)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	owned, err := h.Labourers.ByOfficer(ctx, id.UserID)
	if err != nil {
		h.ErrLog.Handle(w, r, err, "verify labourer ownership")
		return
	}
	byID := make(map[int64]models.Labourer, len(owned))
	for _, l := range owned {
		byID[l.ID] = l
	}
	for _, lid := range labourIDs {
		l, ok := byID[lid]
		if !ok || !labourpolicy.CanManage(id, l) {
			uierrors.WriteError(w, http.StatusForbidden, "you can only assign labourers you registered")
			return
		}
	}

	err = h.Labourers.AssignToUnit(ctx, labourersstore.Assignment{
		ArmyUnitID: form.ArmyUnitID,
		LabourIDs:  form.LabourIDs,
		StartDate:  form.StartDate,
		EndDate:    form.EndDate,
	})
	if err != nil {
		h.ErrLog.Handle(w, r, err, "assign labourers")
		return
	}

	h.Audit.Event(r, auditlog.EventLabourAssigned,
		zap.Int64("army_unit_id", form.ArmyUnitID),
		zap.Int64s("labour_ids", form.LabourIDs))

	// Re-fetch so the caller sees what the backend actually recorded.
	updated, err := h.Labourers.ByOfficer(ctx, id.UserID)
	if h.ErrLog.Degrade(w, r, err, "labourers after assignment") {
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, newListView(updated, "", 1))
}

/*─────────────────────────────────────────────────────────────────────────────*
| DELETE /labourers/{id}                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleReject removes a labourer record. Deletion is permanent on the
// backend; there is no soft-reject state.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	id := authz.Resolve(r)

	labourID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		uierrors.WriteError(w, http.StatusBadRequest, "invalid labourer id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	owned, err := h.Labourers.ByOfficer(ctx, id.UserID)
	if err != nil {
		h.ErrLog.Handle(w, r, err, "verify labourer ownership")
		return
	}
	var target *models.Labourer
	for i := range owned {
		if owned[i].ID == labourID {
			target = &owned[i]
			break
		}
	}
	if target == nil || !labourpolicy.CanManage(id, *target) {
		uierrors.WriteError(w, http.StatusForbidden, "you can only remove labourers you registered")
		return
	}

	if err := h.Labourers.Delete(ctx, labourID); err != nil {
		h.ErrLog.Handle(w, r, err, "delete labourer")
		return
	}

	h.Audit.Event(r, auditlog.EventLabourRemoved,
		zap.Int64("labour_id", labourID))
	uierrors.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
