package requests

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"labourhub/internal/app/gateway"
)

func newTestStore(t *testing.T, backend http.HandlerFunc) *Store {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	api, err := gateway.New(srv.URL, "", 5*time.Second, zap.NewNop())
	if err != nil {
		t.Fatalf("gateway.New failed: %v", err)
	}
	return New(api)
}

func TestPending_UsesPostListing(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/labour/pending-requests" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`[{"id":3,"labour_id":44,"requested_by":5,"status":"pending"}]`))
	})

	got, err := s.Pending(context.Background())
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}
	if len(got) != 1 || got[0].Status != "pending" {
		t.Errorf("pending: got %+v", got)
	}
}

func TestReject_SendsComment(t *testing.T) {
	s := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload struct {
			RequestID int64  `json:"request_id"`
			Comment   string `json:"comment"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload.RequestID != 3 || payload.Comment != "duplicate entry" {
			t.Errorf("payload: got %+v", payload)
		}
		w.Write([]byte(`{"status":"rejected"}`))
	})

	if err := s.Reject(context.Background(), 3, "duplicate entry"); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}
}
