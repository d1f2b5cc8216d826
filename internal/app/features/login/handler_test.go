// internal/app/features/login/handler_test.go
package login

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	uierrors "labourhub/internal/app/features/errors"
	"labourhub/internal/app/gateway"
	usersstore "labourhub/internal/app/store/users"
	"labourhub/internal/app/system/auth"
	"labourhub/internal/app/system/ratelimit"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestHandler(t *testing.T, backend http.HandlerFunc) (*Handler, *auth.SessionManager, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	api, err := gateway.New(srv.URL, "", 5*time.Second, zap.NewNop())
	if err != nil {
		t.Fatalf("gateway.New: %v", err)
	}

	sm, err := auth.NewSessionManager(testSecret, "labour_session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}

	errLog := uierrors.NewErrorLogger(zap.NewNop(), sm)
	h := NewHandler(usersstore.New(api), sm, errLog, ratelimit.NewLoginLimiter(), testSecret, zap.NewNop())
	return h, sm, srv
}

// testChallengeID builds a challenge ID with a known answer.
func testChallengeID(answer string) string {
	expiry := time.Now().Add(time.Minute).Unix()
	tag := challengeMAC([]byte(testSecret), expiry, "cafe", answer)
	raw := fmt.Sprintf("%d.%s.%s", expiry, "cafe", tag)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func postLogin(h *Handler, mobile, captchaID, captchaAnswer string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("mobile_number", mobile)
	form.Set("captcha_id", captchaID)
	form.Set("captcha_answer", captchaAnswer)

	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	h.HandleLoginPost(rec, req)
	return rec
}

func TestCaptchaRoundTrip(t *testing.T) {
	secret := []byte(testSecret)

	ch, err := NewChallenge(secret)
	if err != nil {
		t.Fatalf("NewChallenge: %v", err)
	}
	if ch.ID == "" || ch.Question == "" {
		t.Fatalf("challenge incomplete: %+v", ch)
	}

	id := testChallengeID("7")
	if !VerifyChallenge(secret, id, "7") {
		t.Error("correct answer should verify")
	}
	if !VerifyChallenge(secret, id, " 7 ") {
		t.Error("answer should be trimmed before verification")
	}
	if VerifyChallenge(secret, id, "8") {
		t.Error("wrong answer should fail")
	}
	if VerifyChallenge(secret, "not-base64!", "7") {
		t.Error("malformed id should fail")
	}

	expired := time.Now().Add(-time.Minute).Unix()
	tag := challengeMAC(secret, expired, "cafe", "7")
	staleID := base64.RawURLEncoding.EncodeToString(
		[]byte(fmt.Sprintf("%d.%s.%s", expired, "cafe", tag)))
	if VerifyChallenge(secret, staleID, "7") {
		t.Error("expired challenge should fail")
	}
}

func TestServeLoginIssuesChallenge(t *testing.T) {
	h, _, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("GET", "/login", nil)
	rec := httptest.NewRecorder()
	h.ServeLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var view struct {
		Captcha Challenge `json:"captcha"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Captcha.ID == "" || view.Captcha.Question == "" {
		t.Errorf("login view missing challenge: %+v", view.Captcha)
	}
}

func TestServeLoginRedirectsSignedIn(t *testing.T) {
	h, _, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("GET", "/login", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{UserID: "5", Role: "admin"})
	rec := httptest.NewRecorder()
	h.ServeLogin(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/users" {
		t.Errorf("Location = %q, want /admin/users", loc)
	}
}

func TestLoginPostSuccess(t *testing.T) {
	h, sm, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("backend path = %q", r.URL.Path)
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["mobile_number"] != "9876543210" {
			t.Errorf("mobile = %q", in["mobile_number"])
		}
		fmt.Fprint(w, `{"officer_id":7,"auth_token":"tok123","user":{"id":5,"name":"Asha","mobile_number":"9876543210","role":"officer","sector_id":2,"army_unit_id":null}}`)
	})

	rec := postLogin(h, "9876543210", testChallengeID("4"), "4")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var out loginSuccess
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Redirect != "/dashboard" {
		t.Errorf("redirect = %q, want /dashboard", out.Redirect)
	}

	// Session cookie should carry the identity.
	after := httptest.NewRequest("GET", "/dashboard", nil)
	for _, c := range rec.Result().Cookies() {
		after.AddCookie(c)
	}
	sess, err := sm.GetSession(after)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got, _ := sess.Values[auth.KeyAuthToken].(string); got != "tok123" {
		t.Errorf("auth_token = %q, want tok123", got)
	}
	if got, _ := sess.Values[auth.KeyArmyUnitID].(string); got != "" {
		t.Errorf("army_unit_id = %q, want empty for a Defence officer", got)
	}
	if got, _ := sess.Values[auth.KeyOfficerID].(string); got != "7" {
		t.Errorf("officer_id = %q, want 7", got)
	}
}

func TestLoginPostHonorsNextParam(t *testing.T) {
	backend := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"officer_id":7,"auth_token":"tok123","user":{"id":5,"mobile_number":"9876543210","role":"officer","army_unit_id":null}}`)
	}

	post := func(t *testing.T, next string) loginSuccess {
		t.Helper()
		h, _, _ := newTestHandler(t, backend)
		form := url.Values{}
		form.Set("mobile_number", "9876543210")
		form.Set("captcha_id", testChallengeID("4"))
		form.Set("captcha_answer", "4")
		form.Set("next", next)
		req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.HandleLoginPost(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		var out loginSuccess
		if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return out
	}

	if out := post(t, "/labourers"); out.Redirect != "/labourers" {
		t.Errorf("redirect = %q, want /labourers", out.Redirect)
	}
	// Unsafe destinations fall back to the role landing page.
	if out := post(t, "https://evil.example/phish"); out.Redirect != "/dashboard" {
		t.Errorf("redirect = %q, want /dashboard", out.Redirect)
	}
}

func TestLoginPostUnknownNumber(t *testing.T) {
	h, _, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	rec := postLogin(h, "9876543210", testChallengeID("4"), "4")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no account found") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestLoginPostValidation(t *testing.T) {
	h, _, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called")
	})

	rec := postLogin(h, "12345", testChallengeID("4"), "4")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var out struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Fields["MobileNumber"] == "" {
		t.Errorf("expected a mobile number field message, got %v", out.Fields)
	}
}

func TestLoginPostBadCaptcha(t *testing.T) {
	h, _, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called")
	})

	rec := postLogin(h, "9876543210", testChallengeID("4"), "5")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestLoginPostRateLimited(t *testing.T) {
	h, _, _ := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	for i := 0; i < 5; i++ {
		rec := postLogin(h, "9876543210", testChallengeID("4"), "4")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d status = %d, want 401", i+1, rec.Code)
		}
	}
	rec := postLogin(h, "9876543210", testChallengeID("4"), "4")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429 after repeated failures", rec.Code)
	}
}
