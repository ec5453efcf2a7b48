package passwords_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/ThatsCharith/quantum-password-strength-check/internal/api/handlers/passwords"
	"github.com/ThatsCharith/quantum-password-strength-check/internal/api/router"
	"github.com/ThatsCharith/quantum-password-strength-check/internal/strength"
)

func newTestServer() http.Handler {
	checker := strength.NewChecker([]string{"password123"}, []string{"hunter2"})
	return router.New(passwords.NewHandler(checker, zap.NewNop()))
}

type checkBody struct {
	Strength    string   `json:"strength"`
	Score       int      `json:"score"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

func TestCheck_OK(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("POST", "/api/check", strings.NewReader(`{"password":"Tr0ub4dor&3"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body checkBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Strength != "Strong" || body.Score != 3 {
		t.Errorf("Unexpected result: %+v", body)
	}
	if len(body.Suggestions) != 1 || body.Suggestions[0] != "Increase length to at least 12 characters" {
		t.Errorf("Unexpected suggestions: %v", body.Suggestions)
	}
}

func TestCheck_WeakListedPassword(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("POST", "/api/check", strings.NewReader(`{"password":"password123"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var body checkBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body.Message, "not a common password") {
		t.Errorf("Expected common-password hint, got %q", body.Message)
	}
	last := body.Suggestions[len(body.Suggestions)-1]
	if last != "Avoid common passwords" {
		t.Errorf("Expected wordlist suggestion last, got %v", body.Suggestions)
	}
}

func TestCheck_MissingPassword(t *testing.T) {
	srv := newTestServer()

	for _, payload := range []string{`{}`, `{"password":""}`, ``, `{"pass":"x"}`} {
		req := httptest.NewRequest("POST", "/api/check", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Payload %q: expected 400, got %d", payload, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
			t.Errorf("Payload %q: expected problem+json, got %q", payload, ct)
		}
	}
}

func TestGenerate_DefaultLength(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/api/generate", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body struct {
		Password string `json:"password"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Password) != strength.DefaultGenerateLength {
		t.Errorf("Generated %d characters, want %d", len(body.Password), strength.DefaultGenerateLength)
	}
}

func TestGenerate_LengthParam(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/api/generate?length=32", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var body struct {
		Password string `json:"password"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Password) != 32 {
		t.Errorf("Generated %d characters, want 32", len(body.Password))
	}
}

func TestGenerate_InvalidLength(t *testing.T) {
	srv := newTestServer()

	for _, q := range []string{"length=0", "length=-5", "length=abc", "length=10000"} {
		req := httptest.NewRequest("GET", "/api/generate?"+q, nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Query %q: expected 400, got %d", q, rec.Code)
		}
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
}
