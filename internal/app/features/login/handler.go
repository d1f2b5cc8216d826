// internal/app/features/login/handler.go
package login

import (
	"context"
	stderrors "errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	uierrors "labourhub/internal/app/features/errors"
	"labourhub/internal/app/gateway"
	usersstore "labourhub/internal/app/store/users"
	"labourhub/internal/app/system/auditlog"
	"labourhub/internal/app/system/auth"
	"labourhub/internal/app/system/limits"
	"labourhub/internal/app/system/navigation"
	"labourhub/internal/app/system/normalize"
	"labourhub/internal/app/system/ratelimit"
	"labourhub/internal/app/system/timeouts"
	"labourhub/internal/app/system/validators"
)

type Handler struct {
	Users      *usersstore.Store
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
	Limiter    *ratelimit.LoginLimiter
	Audit      *auditlog.Logger

	captchaSecret []byte
}

func NewHandler(
	users *usersstore.Store,
	sessionMgr *auth.SessionManager,
	errLog *uierrors.ErrorLogger,
	limiter *ratelimit.LoginLimiter,
	captchaSecret string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Users:         users,
		SessionMgr:    sessionMgr,
		ErrLog:        errLog,
		Log:           logger,
		Limiter:       limiter,
		Audit:         auditlog.New(logger),
		captchaSecret: []byte(captchaSecret),
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| View models                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

type loginView struct {
	Title   string    `json:"title"`
	Captcha Challenge `json:"captcha"`
}

type loginSuccess struct {
	Redirect string `json:"redirect"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeLogin renders the login view. A caller who already holds a valid
// session is sent straight to their landing view instead.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if u, ok := auth.CurrentUser(r); ok && u.IsAuthenticated() {
		http.Redirect(w, r, u.DefaultPath(), http.StatusSeeOther)
		return
	}

	ch, err := NewChallenge(h.captchaSecret)
	if err != nil {
		h.ErrLog.Handle(w, r, err, "issue captcha")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, loginView{Title: "Login", Captcha: ch})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login/captcha                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeCaptcha issues a fresh challenge, e.g. after a failed attempt.
func (h *Handler) ServeCaptcha(w http.ResponseWriter, r *http.Request) {
	ch, err := NewChallenge(h.captchaSecret)
	if err != nil {
		h.ErrLog.Handle(w, r, err, "issue captcha")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, ch)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		uierrors.WriteError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	mobile := normalize.Mobile(r.FormValue("mobile_number"))
	form := validators.LoginForm{
		MobileNumber:  mobile,
		CaptchaID:     r.FormValue("captcha_id"),
		CaptchaAnswer: r.FormValue("captcha_answer"),
	}
	if fields := validators.Check(form); fields != nil {
		uierrors.WriteValidation(w, fields)
		return
	}

	if !VerifyChallenge(h.captchaSecret, form.CaptchaID, form.CaptchaAnswer) {
		uierrors.WriteValidation(w, map[string]string{
			"captcha_answer": "incorrect or expired answer, please try again",
		})
		return
	}

	if ok, reason := h.Limiter.Check(r, mobile); !ok {
		h.Log.Warn("login rate limited",
			zap.String("ip", ratelimit.ClientIP(r)))
		uierrors.WriteError(w, http.StatusTooManyRequests, reason)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.Users.Login(ctx, mobile)
	if err != nil {
		// The backend answers an unknown number with a 401, which the
		// gateway reports as the expiry sentinel. During login that just
		// means the credentials were wrong.
		if stderrors.Is(err, gateway.ErrSessionExpired) {
			h.Audit.LoginFailed(r, mobile, "unknown mobile number")
			uierrors.WriteError(w, http.StatusUnauthorized, "no account found for that mobile number")
			return
		}
		h.ErrLog.Handle(w, r, err, "login")
		return
	}

	role := res.User.Role
	if role == "" {
		role = "officer"
	}

	armyUnit := ""
	if res.User.ArmyUnitID != nil {
		armyUnit = strconv.FormatInt(*res.User.ArmyUnitID, 10)
	}

	fields := auth.LoginFields{
		Token:      res.AuthToken,
		UserID:     strconv.FormatInt(res.User.ID, 10),
		OfficerID:  strconv.FormatInt(res.OfficerID, 10),
		Mobile:     res.User.MobileNumber,
		Role:       role,
		UserType:   res.User.UserType,
		SectorID:   strconv.FormatInt(res.User.SectorID, 10),
		ArmyUnitID: armyUnit,
	}
	if err := h.SessionMgr.Login(w, r, fields); err != nil {
		h.Log.Error("save session failed", zap.Error(err), zap.String("user_id", fields.UserID))
		uierrors.WriteError(w, http.StatusInternalServerError, "unable to create session, please try again")
		return
	}

	h.Limiter.ResetMobile(mobile)
	h.Audit.LoginSuccess(r, fields.UserID, role)

	u := auth.SessionUser{
		Token:      fields.Token,
		UserID:     fields.UserID,
		Role:       fields.Role,
		UserType:   fields.UserType,
		Mobile:     fields.Mobile,
		ArmyUnitID: fields.ArmyUnitID,
	}
	uierrors.WriteJSON(w, http.StatusOK, loginSuccess{
		Redirect: navigation.NextURL(r, u.DefaultPath()),
		Name:     res.User.Name,
		Role:     role,
	})
}
