// internal/app/features/requests/handler.go
package requests

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	uierrors "labourhub/internal/app/features/errors"
	requestsstore "labourhub/internal/app/store/requests"
	"labourhub/internal/app/system/auditlog"
	"labourhub/internal/app/system/limits"
	"labourhub/internal/app/system/normalize"
	"labourhub/internal/app/system/timeouts"
	"labourhub/internal/app/system/validators"
	"labourhub/internal/domain/models"
)

type Handler struct {
	Requests *requestsstore.Store
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
	Audit    *auditlog.Logger
}

func NewHandler(requests *requestsstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Requests: requests, ErrLog: errLog, Log: logger, Audit: auditlog.New(logger)}
}

type listView struct {
	Requests []models.DeletionRequest `json:"requests"`
}

// ServeList returns pending deletion requests awaiting admin review.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rs, err := h.Requests.Pending(ctx)
	if h.ErrLog.Degrade(w, r, err, "pending deletion requests") {
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, listView{Requests: rs})
}

// HandleApprove approves a deletion request; the backend deletes the
// labourer record as part of approval.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		uierrors.WriteError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	requestID, err := strconv.ParseInt(r.FormValue("request_id"), 10, 64)
	if err != nil {
		uierrors.WriteValidation(w, map[string]string{"request_id": "select a request"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Requests.Approve(ctx, requestID); err != nil {
		h.ErrLog.Handle(w, r, err, "approve deletion request")
		return
	}

	h.Audit.Event(r, auditlog.EventRequestResolved,
		zap.Int64("request_id", requestID),
		zap.String("status", models.RequestApproved))
	uierrors.WriteJSON(w, http.StatusOK, map[string]string{"status": models.RequestApproved})
}

// HandleReject rejects a deletion request. The comment is mandatory: the
// requesting officer must see why their request was declined.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		uierrors.WriteError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	requestID, _ := strconv.ParseInt(r.FormValue("request_id"), 10, 64)

	form := validators.RejectRequestForm{
		RequestID: requestID,
		Comment:   normalize.Text(r.FormValue("comment")),
	}
	if fields := validators.Check(form); fields != nil {
		uierrors.WriteValidation(w, fields)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Requests.Reject(ctx, form.RequestID, form.Comment); err != nil {
		h.ErrLog.Handle(w, r, err, "reject deletion request")
		return
	}

	h.Audit.Event(r, auditlog.EventRequestResolved,
		zap.Int64("request_id", form.RequestID),
		zap.String("status", models.RequestRejected))
	uierrors.WriteJSON(w, http.StatusOK, map[string]string{"status": models.RequestRejected})
}
