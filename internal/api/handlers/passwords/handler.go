// Package passwords exposes the strength checker over HTTP. Transport only;
// all scoring lives in internal/strength.
package passwords

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ThatsCharith/quantum-password-strength-check/internal/api/httpx"
	"github.com/ThatsCharith/quantum-password-strength-check/internal/strength"
)

type Handler struct {
	checker *strength.Checker
	logger  *zap.Logger
}

func NewHandler(checker *strength.Checker, logger *zap.Logger) *Handler {
	return &Handler{checker: checker, logger: logger}
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	httpx.OK(w, map[string]string{"status": "ok"})
}
