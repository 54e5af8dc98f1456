package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	body, err := NewClient().Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(body) != "hello" {
		t.Errorf("body = %q, want %q", body, "hello")
	}
}

func TestGet_ErrorStatusIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	body, err := NewClient().Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("error status should not be an error, got %v", err)
	}
	if body != nil {
		t.Errorf("body = %q, want nil for error status", body)
	}
}

func TestGet_TransportError(t *testing.T) {
	// Nothing listens here.
	if _, err := NewClient().Get(context.Background(), "http://127.0.0.1:1"); err == nil {
		t.Error("connection failure should be an error")
	}
}

func TestGet_NoCustomHeaders(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	if _, err := NewClient().Get(context.Background(), srv.URL); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if auth != "" {
		t.Errorf("request should carry no Authorization header, got %q", auth)
	}
}
