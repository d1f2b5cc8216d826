// internal/app/features/users/handler.go
package users

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "labourhub/internal/app/features/errors"
	usersstore "labourhub/internal/app/store/users"
	"labourhub/internal/app/system/auditlog"
	"labourhub/internal/app/system/limits"
	"labourhub/internal/app/system/normalize"
	"labourhub/internal/app/system/timeouts"
	"labourhub/internal/app/system/validators"
	"labourhub/internal/domain/models"
)

type Handler struct {
	Users  *usersstore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
	Audit  *auditlog.Logger
}

func NewHandler(users *usersstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Users: users, ErrLog: errLog, Log: logger, Audit: auditlog.New(logger)}
}

type listView struct {
	Users []models.User `json:"users"`
}

// createForm is the admin's new-account submission. Officers need a
// sector; army officers additionally get a unit.
type createForm struct {
	Name         string `validate:"required"`
	MobileNumber string `validate:"required,inmobile"`
	Role         string `validate:"required,oneof=admin officer"`
}

// ServeList returns every user account.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	us, err := h.Users.List(ctx)
	if h.ErrLog.Degrade(w, r, err, "list users") {
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, listView{Users: us})
}

// HandleCreate adds a user account.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		uierrors.WriteError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	form := createForm{
		Name:         normalize.Name(r.FormValue("name")),
		MobileNumber: normalize.Mobile(r.FormValue("mobile_number")),
		Role:         normalize.Text(r.FormValue("role")),
	}
	if fields := validators.Check(form); fields != nil {
		uierrors.WriteValidation(w, fields)
		return
	}

	nu := usersstore.NewUser{
		Name:         form.Name,
		MobileNumber: form.MobileNumber,
		Role:         form.Role,
	}
	if sectorID, err := strconv.ParseInt(r.FormValue("sector_id"), 10, 64); err == nil {
		nu.SectorID = sectorID
	}
	if unitID, err := strconv.ParseInt(r.FormValue("army_unit_id"), 10, 64); err == nil {
		nu.ArmyUnitID = &unitID
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Users.Create(ctx, nu)
	if err != nil {
		h.ErrLog.Handle(w, r, err, "create user")
		return
	}

	h.Audit.Event(r, auditlog.EventUserCreated,
		zap.Int64("user_id", created.ID),
		zap.String("role", form.Role))
	uierrors.WriteJSON(w, http.StatusCreated, created)
}

// HandleDelete removes an account; the backend keys user deletion on the
// mobile number.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	mobile := normalize.Mobile(chi.URLParam(r, "mobile"))
	if len(mobile) != 10 {
		uierrors.WriteError(w, http.StatusBadRequest, "invalid mobile number")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Users.DeleteByMobile(ctx, mobile); err != nil {
		h.ErrLog.Handle(w, r, err, "delete user")
		return
	}

	h.Audit.Event(r, auditlog.EventUserDeleted, zap.String("mobile_number", mobile))
	uierrors.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
