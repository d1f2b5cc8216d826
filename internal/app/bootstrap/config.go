// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for LabourHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_base_url, session_name, etc.
//   - Environment variables: LABOURHUB_API_BASE_URL, LABOURHUB_SESSION_NAME, etc.
//   - Command-line flags: --api_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_base_url", Default: "http://localhost:8000", Desc: "Labour-management backend base URL"},
	{Name: "media_base_url", Default: "", Desc: "Base URL for backend media (blank means api_base_url)"},
	{Name: "backend_timeout", Default: "15s", Desc: "Per-request timeout for backend calls (e.g., 15s, 1m)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "labourhub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	{Name: "captcha_secret", Default: "", Desc: "HMAC key for login captcha challenges (blank means session_key)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before the backend gateway or handlers are
// built. CoreConfig comes from the shared WAFFLE layer; AppConfig is
// specific to this app.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "LABOURHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIBaseURL:     appValues.String("api_base_url"),
		MediaBaseURL:   appValues.String("media_base_url"),
		BackendTimeout: appValues.Duration("backend_timeout", 15*time.Second),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		CaptchaSecret: appValues.String("captcha_secret"),
	}

	// The captcha HMAC falls back to the session key so a single secret
	// suffices in small deployments.
	if appCfg.CaptchaSecret == "" {
		appCfg.CaptchaSecret = appCfg.SessionKey
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// LabourHub validates the backend URL format here so a misconfigured
// deployment fails at startup rather than on the first request.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	u, err := url.Parse(appCfg.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		logger.Error("invalid backend base URL", zap.String("api_base_url", appCfg.APIBaseURL))
		return fmt.Errorf("api_base_url must be an absolute http(s) URL, got %q", appCfg.APIBaseURL)
	}

	if appCfg.BackendTimeout <= 0 {
		return fmt.Errorf("backend_timeout must be positive, got %s", appCfg.BackendTimeout)
	}

	return nil
}
