package router

import (
	"net/http"

	"github.com/ThatsCharith/quantum-password-strength-check/internal/api/handlers/passwords"
)

func New(h *passwords.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.Health)

	mux.HandleFunc("POST /api/check", h.Check)
	mux.HandleFunc("GET /api/generate", h.Generate)

	return mux
}
