// internal/app/system/auth/sessionmanager.go
package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"labourhub/internal/app/gateway"
)

// SessionManager wraps the cookie store and owns the full session
// lifecycle: login writes every identity field in one save, logout (and the
// backend's expiry signal) clears every key unconditionally.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds a SessionManager. An empty key is rejected in
// secure mode; in dev mode a random key is generated so local runs work
// without configuration (sessions then reset on restart).
func NewSessionManager(sessionKey, sessionName, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		if secure {
			return nil, fmt.Errorf("session key is empty; provide >=32 random chars")
		}
		sessionKey = string(securecookie.GenerateRandomKey(32))
		logger.Warn("session key not configured; generated a volatile dev key")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if secure {
		store.Options.SameSite = http.SameSiteNoneMode
	}

	return &SessionManager{store: store, name: sessionName, log: logger}, nil
}

// Store exposes the underlying cookie store (logout needs its options to
// build a matching deletion cookie).
func (sm *SessionManager) Store() *sessions.CookieStore { return sm.store }

// GetSession returns the request's session, creating an empty one if the
// cookie is absent or fails to decode.
func (sm *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	return sm.store.Get(r, sm.name)
}

// LoginFields carries everything a successful authentication call persists.
type LoginFields struct {
	Token      string
	UserID     string
	OfficerID  string
	Mobile     string
	Role       string
	UserType   string
	SectorID   string
	ArmyUnitID string
}

// Login writes all session fields in a single save.
func (sm *SessionManager) Login(w http.ResponseWriter, r *http.Request, f LoginFields) error {
	sess, err := sm.GetSession(r)
	if err != nil {
		sm.log.Warn("session decode failed during login; starting fresh", zap.Error(err))
	}

	sess.Values[KeyAuthToken] = f.Token
	sess.Values[KeyUserID] = f.UserID
	sess.Values[KeyOfficerID] = f.OfficerID
	sess.Values[KeyMobileNumber] = f.Mobile
	sess.Values[KeyRole] = f.Role
	sess.Values[KeyUserType] = f.UserType
	sess.Values[KeySectorID] = f.SectorID
	sess.Values[KeyArmyUnitID] = f.ArmyUnitID
	delete(sess.Values, KeyAttendanceMarked)

	return sess.Save(r, w)
}

// Clear removes every persisted key and expires the cookie. Used by logout
// and by the global reaction to the backend's session-expiry signal.
func (sm *SessionManager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, err := sm.GetSession(r)
	if err != nil {
		sm.log.Warn("session decode failed during clear", zap.Error(err))
	}

	for _, k := range AllKeys {
		delete(sess.Values, k)
	}

	if opts := sm.store.Options; opts != nil {
		sess.Options.Domain = opts.Domain
		sess.Options.Path = opts.Path
		sess.Options.Secure = opts.Secure
		sess.Options.HttpOnly = opts.HttpOnly
		sess.Options.SameSite = opts.SameSite
	}
	sess.Options.MaxAge = -1

	return sess.Save(r, w)
}

// userFromSession rebuilds the SessionUser from persisted values.
func userFromSession(sess *sessions.Session) *SessionUser {
	get := func(key string) string {
		if v, ok := sess.Values[key].(string); ok {
			return v
		}
		return ""
	}
	return &SessionUser{
		Token:      get(KeyAuthToken),
		UserID:     get(KeyUserID),
		OfficerID:  get(KeyOfficerID),
		Mobile:     get(KeyMobileNumber),
		Role:       get(KeyRole),
		UserType:   get(KeyUserType),
		SectorID:   get(KeySectorID),
		ArmyUnitID: get(KeyArmyUnitID),
	}
}

// LoadSessionUser injects the session user into the request context when one
// is present, and makes the auth token available to the gateway client.
// Applied globally; every other guard builds on it.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sm.GetSession(r)
		u := userFromSession(sess)
		if u.IsAuthenticated() {
			r = withUser(r, u)
			r = r.WithContext(gateway.WithToken(r.Context(), u.Token))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn gates views that need any authenticated session.
// Anonymous callers are redirected to the login view.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireOfficer gates officer-only views. Admins are not blocked with an
// error page; they are sent to their own default view.
func (sm *SessionManager) RequireOfficer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := CurrentUser(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if u.IsAdmin() {
			http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates admin management views. Signed-in non-admins land on
// the officer dashboard rather than an error page.
func (sm *SessionManager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := CurrentUser(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if !u.IsAdmin() {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// markedSeparator joins attendance-marked cache entries inside the session.
const markedSeparator = ","

func markedEntry(labourID, date string) string {
	return labourID + "@" + date
}

// AttendanceMarked reports whether this session already marked the given
// labourer on the given date. The cache only prevents duplicate submission
// within one session; the backend remains the authority.
func (sm *SessionManager) AttendanceMarked(r *http.Request, labourID, date string) bool {
	sess, err := sm.GetSession(r)
	if err != nil {
		return false
	}
	raw, _ := sess.Values[KeyAttendanceMarked].(string)
	if raw == "" {
		return false
	}
	entry := markedEntry(labourID, date)
	for _, e := range strings.Split(raw, markedSeparator) {
		if e == entry {
			return true
		}
	}
	return false
}

// RecordAttendanceMarked adds a labourer/date pair to the session cache.
func (sm *SessionManager) RecordAttendanceMarked(w http.ResponseWriter, r *http.Request, labourID, date string) error {
	sess, err := sm.GetSession(r)
	if err != nil {
		sm.log.Warn("session decode failed recording attendance mark", zap.Error(err))
	}
	raw, _ := sess.Values[KeyAttendanceMarked].(string)
	entry := markedEntry(labourID, date)
	if raw == "" {
		raw = entry
	} else {
		raw += markedSeparator + entry
	}
	sess.Values[KeyAttendanceMarked] = raw
	return sess.Save(r, w)
}
