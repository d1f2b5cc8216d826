// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration: framework-level settings
// like ports, TLS, and log format live in CoreConfig.
//
// LabourHub is a dashboard over a remote labour-management backend, so the
// app config is mostly about where that backend lives and how sessions are
// signed.
type AppConfig struct {
	// Labour-management backend.
	APIBaseURL     string        // Backend base URL (the gateway appends /api)
	MediaBaseURL   string        // Base URL for labourer/attendance photos (blank means APIBaseURL)
	BackendTimeout time.Duration // Per-request HTTP timeout for backend calls

	// Session management configuration.
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: labourhub-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Login hardening.
	CaptchaSecret string // HMAC key for signing login captcha challenges
}
