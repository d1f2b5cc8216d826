// internal/app/features/sectors/handler_test.go
package sectors

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
	sectorsstore "labourhub/internal/app/store/sectors"
	"labourhub/internal/app/system/auth"
	"labourhub/internal/app/system/limits"
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
	return NewHandler(sectorsstore.New(api), uierrors.NewErrorLogger(zap.NewNop(), sm), zap.NewNop())
}

func TestListSectors(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/dynamic/sectors" {
			t.Errorf("path = %q", r.URL.Path)
		}
		fmt.Fprint(w, `[{"id":1,"name":"North"},{"id":2,"name":"South"}]`)
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
	if len(view.Sectors) != 2 {
		t.Errorf("sectors = %d, want 2", len(view.Sectors))
	}
}

func TestCreateSector(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/sectors" || r.Method != "POST" {
			t.Errorf("call = %s %s", r.Method, r.URL.Path)
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["name"] != "East Zone" {
			t.Errorf("name = %q", in["name"])
		}
		fmt.Fprint(w, `{"id":3,"name":"East Zone"}`)
	})

	form := url.Values{"name": {"  East   Zone "}}
	req := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestCreateSectorRequiresName(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called")
	})

	req := httptest.NewRequest("POST", "/", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestDeleteSectorByName(t *testing.T) {
	called := false
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		if r.Method != "DELETE" || r.URL.Path != "/api/sectors/name/North" {
			t.Errorf("call = %s %s", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, `{}`)
	})

	req := httptest.NewRequest("DELETE", "/North", nil)
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !called {
		t.Error("backend delete was never called")
	}
}

func TestCreateSectorRejectsOversizedForm(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called")
	})

	body := "name=" + strings.Repeat("x", limits.MaxFormSize+1)
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
