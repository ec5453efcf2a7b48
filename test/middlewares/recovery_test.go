package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	mw "github.com/ThatsCharith/quantum-password-strength-check/internal/api/middlewares"
)

func TestRecovery_CatchesPanic(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	wrapped := mw.Recovery(zap.NewNop())(handler)

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "Internal Server Error\n" {
		t.Errorf("Internal error details must not leak, got %q", body)
	}
}

func TestRecovery_PassesThrough(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	wrapped := mw.Recovery(zap.NewNop())(handler)

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("Expected 418, got %d", rec.Code)
	}
}
