package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mw "github.com/ThatsCharith/quantum-password-strength-check/internal/api/middlewares"
)

func TestRequestID_GeneratesID(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if mw.GetRequestID(r) == "" {
			t.Error("Expected request ID in context")
		}
		w.WriteHeader(http.StatusOK)
	})

	wrapped := mw.RequestID(handler)

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID in response header")
	}
}

func TestRequestID_UsesProvidedID(t *testing.T) {
	wrapped := mw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "custom-request-id")
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "custom-request-id" {
		t.Errorf("Expected custom-request-id, got %s", got)
	}
}

func TestRequestID_ReplacesInvalidID(t *testing.T) {
	wrapped := mw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "invalid@#$%id")
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	got := rec.Header().Get("X-Request-ID")
	if got == "" || got == "invalid@#$%id" {
		t.Errorf("Expected a fresh request ID, got %q", got)
	}
}
