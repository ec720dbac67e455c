package hf_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/daviderapp/travel-aggregator/internal/adapters/hf"
)

func newServer(t *testing.T, h http.HandlerFunc) (*httptest.Server, *hf.Backend) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := hf.New(srv.URL, "test-key", 5*time.Second, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv, c.Backend("test/model-1")
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := hf.New("https://example.invalid", "", 0, 0); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestComplete_ReturnsReplyContent(t *testing.T) {
	var gotAuth, gotPath string
	var gotReq map[string]any
	_, b := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": `Sure! {"destination":"parigi"}`}},
			},
		})
	})

	out, err := b.Complete(context.Background(), "extract travel intent", "weekend a Parigi")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !strings.Contains(out, `"destination":"parigi"`) {
		t.Fatalf("unexpected reply: %q", out)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotPath != "/chat/completions" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotReq["model"] != "test/model-1" || gotReq["stream"] != false {
		t.Fatalf("request body = %v", gotReq)
	}
	msgs, _ := gotReq["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("messages = %v", gotReq["messages"])
	}
}

func TestComplete_StatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, hf.ErrUnauthorized},
		{http.StatusForbidden, hf.ErrForbidden},
		{http.StatusTooManyRequests, hf.ErrRateLimited},
		{http.StatusServiceUnavailable, hf.ErrUnavailable},
		{http.StatusNotFound, hf.ErrNotFound},
	}
	for _, tc := range cases {
		_, b := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})
		if _, err := b.Complete(context.Background(), "s", "u"); !errors.Is(err, tc.want) {
			t.Fatalf("status %d: err = %v, want %v", tc.status, err, tc.want)
		}
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	_, b := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})
	if _, err := b.Complete(context.Background(), "s", "u"); !errors.Is(err, hf.ErrEmptyReply) {
		t.Fatalf("err = %v, want ErrEmptyReply", err)
	}
}

func TestComplete_ContextCancellation(t *testing.T) {
	_, b := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := b.Complete(ctx, "s", "u"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want DeadlineExceeded", err)
	}
}
