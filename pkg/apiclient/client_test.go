package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// newExpiringServer serves /api/data with 401 TOKEN_EXPIRED until a signin
// has happened, then succeeds. It counts signins and data attempts.
func newExpiringServer(signins, attempts *int32, alwaysExpired bool) *httptest.Server {
	var authed atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("/api/user/signin", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(signins, 1)
		authed.Store(true)
		http.SetCookie(w, &http.Cookie{Name: "access_token", Value: "fresh"})
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"currUser":{"email":"u@x.com"}}`))
	})
	mux.HandleFunc("/api/data", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(attempts, 1)
		w.Header().Set("Content-Type", "application/json")
		if alwaysExpired || !authed.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Token expired.","code":"TOKEN_EXPIRED"}`))
			return
		}
		w.Write([]byte(`{"value":42}`))
	})

	return httptest.NewServer(mux)
}

func TestDoRefreshesOnceOnExpiredToken(t *testing.T) {
	var signins, attempts int32
	srv := newExpiringServer(&signins, &attempts, false)
	defer srv.Close()

	client, err := New(srv.URL, Credentials{Email: "u@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var out struct {
		Value int `json:"value"`
	}
	if err := client.Do(context.Background(), http.MethodGet, "/api/data", nil, &out); err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if out.Value != 42 {
		t.Errorf("Value = %d, want 42", out.Value)
	}
	if got := atomic.LoadInt32(&signins); got != 1 {
		t.Errorf("signins = %d, want exactly 1", got)
	}
	if got := atomic.LoadInt32(&attempts); got != 2 {
		t.Errorf("request attempts = %d, want original + one retry", got)
	}
}

func TestDoRetriesAtMostOnce(t *testing.T) {
	var signins, attempts int32
	srv := newExpiringServer(&signins, &attempts, true)
	defer srv.Close()

	client, err := New(srv.URL, Credentials{Email: "u@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	err = client.Do(context.Background(), http.MethodGet, "/api/data", nil, nil)
	if err == nil {
		t.Fatal("Do succeeded, want error when token stays expired")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Code != TokenExpiredCode {
		t.Errorf("Code = %q, want %q", apiErr.Code, TokenExpiredCode)
	}
	if got := atomic.LoadInt32(&signins); got != 1 {
		t.Errorf("signins = %d, want exactly 1 (no retry storm)", got)
	}
	if got := atomic.LoadInt32(&attempts); got != 2 {
		t.Errorf("request attempts = %d, want exactly 2", got)
	}
}

func TestDoPassesThroughOtherErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"Forbidden: Insufficient permissions."}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL, Credentials{Email: "u@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	err = client.Do(context.Background(), http.MethodGet, "/api/data", nil, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", apiErr.StatusCode)
	}
	if apiErr.Message != "Forbidden: Insufficient permissions." {
		t.Errorf("Message = %q", apiErr.Message)
	}
}
