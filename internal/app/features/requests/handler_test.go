// internal/app/features/requests/handler_test.go
package requests

import (
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
	requestsstore "labourhub/internal/app/store/requests"
	"labourhub/internal/app/system/auth"
)

func newTestHandler(t *testing.T, backend http.HandlerFunc) *Handler {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	api, err := gateway.New(srv.URL, "", 5*time.Second, zap.NewNop())
	if err != nil {
		t.Fatalf("gateway.New: %v", err)
	}
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return NewHandler(requestsstore.New(api), uierrors.NewErrorLogger(zap.NewNop(), sm), zap.NewNop())
}

func postForm(h http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestListPending(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		// The backend lists pending requests on a POST.
		if r.Method != "POST" || r.URL.Path != "/api/labour/pending-requests" {
			t.Errorf("call = %s %s", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, `[{"id":1,"labour_id":9,"labour_name":"Ram","requested_by":5,"status":"pending"}]`)
	})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var view listView
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(view.Requests) != 1 || view.Requests[0].Status != "pending" {
		t.Errorf("requests = %+v", view.Requests)
	}
}

func TestApprove(t *testing.T) {
	approved := false
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		approved = true
		if r.URL.Path != "/api/labour/approve-request" {
			t.Errorf("path = %q", r.URL.Path)
		}
		fmt.Fprint(w, `{}`)
	})

	rec := postForm(h.HandleApprove, url.Values{"request_id": {"1"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !approved {
		t.Error("backend approve was never called")
	}
}

func TestRejectRequiresComment(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called")
	})

	rec := postForm(h.HandleReject, url.Values{"request_id": {"1"}, "comment": {"   "}})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var out struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Fields["Comment"] == "" {
		t.Errorf("expected comment field message, got %v", out.Fields)
	}
}

func TestReject(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/labour/reject-request" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var in map[string]any
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["comment"] != "duplicate entry" {
			t.Errorf("comment = %v", in["comment"])
		}
		fmt.Fprint(w, `{}`)
	})

	rec := postForm(h.HandleReject, url.Values{"request_id": {"1"}, "comment": {"duplicate entry"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}
