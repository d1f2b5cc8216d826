// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	armyunitsfeature "labourhub/internal/app/features/armyunits"
	attendancefeature "labourhub/internal/app/features/attendance"
	dashboardfeature "labourhub/internal/app/features/dashboard"
	errorsfeature "labourhub/internal/app/features/errors"
	healthfeature "labourhub/internal/app/features/health"
	labourersfeature "labourhub/internal/app/features/labourers"
	loginfeature "labourhub/internal/app/features/login"
	logoutfeature "labourhub/internal/app/features/logout"
	requestsfeature "labourhub/internal/app/features/requests"
	sectorsfeature "labourhub/internal/app/features/sectors"
	usersfeature "labourhub/internal/app/features/users"
	armyunitsstore "labourhub/internal/app/store/armyunits"
	attendancestore "labourhub/internal/app/store/attendance"
	labourersstore "labourhub/internal/app/store/labourers"
	requestsstore "labourhub/internal/app/store/requests"
	sectorsstore "labourhub/internal/app/store/sectors"
	usersstore "labourhub/internal/app/store/users"
	"labourhub/internal/app/system/auth"
	"labourhub/internal/app/system/ratelimit"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, gateway setup, and any Startup
// hooks have completed. The router enforces the role topology globally:
//   - /login, /logout, /health are open.
//   - /dashboard, /labourers, /attendance require a signed-in officer;
//     admins who land there are sent to /admin/users.
//   - /admin/* requires an admin; officers are sent to /dashboard.
//   - Anything else resolves to the session's default view, never a 404.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Error logger shared by all handlers; it owns the session-expiry
	// reaction, so it needs the session manager.
	errLog := errorsfeature.NewErrorLogger(logger, sessionMgr)

	// Typed stores over the backend gateway.
	labourers := labourersstore.New(deps.API)
	attendance := attendancestore.New(deps.API)
	sectors := sectorsstore.New(deps.API)
	armyUnits := armyunitsstore.New(deps.API)
	users := usersstore.New(deps.API)
	requests := requestsstore.New(deps.API)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in
	// and carries the bearer token into backend calls.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(deps.API, logger)))

	// Authentication.
	loginHandler := loginfeature.NewHandler(users, sessionMgr, errLog, ratelimit.NewLoginLimiter(), appCfg.CaptchaSecret, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))
	r.Mount("/logout", logoutfeature.Routes(logoutfeature.NewHandler(sessionMgr, logger)))

	// Officer views.
	sectorsHandler := sectorsfeature.NewHandler(sectors, errLog, logger)
	armyUnitsHandler := armyunitsfeature.NewHandler(armyUnits, errLog, logger)
	r.Group(func(r chi.Router) {
		r.Use(sessionMgr.RequireSignedIn)
		r.Use(sessionMgr.RequireOfficer)

		r.Mount("/dashboard", dashboardfeature.Routes(
			dashboardfeature.NewHandler(labourers, attendance, deps.API, errLog, logger)))
		r.Mount("/labourers", labourersfeature.Routes(
			labourersfeature.NewHandler(labourers, deps.API, errLog, logger)))
		r.Mount("/attendance", attendancefeature.Routes(
			attendancefeature.NewHandler(attendance, labourers, sessionMgr, errLog, logger)))

		// Reference data for registration and assignment forms.
		r.Get("/sectors", sectorsHandler.ServeList)
		r.Get("/army-units", armyUnitsHandler.ServeList)
	})

	// Admin views.
	r.Route("/admin", func(r chi.Router) {
		r.Use(sessionMgr.RequireAdmin)

		r.Mount("/users", usersfeature.Routes(usersfeature.NewHandler(users, errLog, logger)))
		r.Mount("/sectors", sectorsfeature.Routes(sectorsHandler))
		r.Mount("/army-units", armyunitsfeature.Routes(armyUnitsHandler))
		r.Mount("/requests", requestsfeature.Routes(requestsfeature.NewHandler(requests, errLog, logger)))
	})

	// Unknown paths resolve to the session's landing view, never a 404.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dest := "/login"
		if u, ok := auth.CurrentUser(req); ok {
			dest = u.DefaultPath()
		}
		http.Redirect(w, req, dest, http.StatusSeeOther)
	})

	return r, nil
}
