package passwords

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/ThatsCharith/quantum-password-strength-check/internal/api/apperr"
	"github.com/ThatsCharith/quantum-password-strength-check/internal/api/httpx"
	"github.com/ThatsCharith/quantum-password-strength-check/internal/strength"
)

// Requests above this are refused; nothing legitimate needs a longer password.
const maxGenerateLength = 256

type generateResponse struct {
	Password string `json:"password"`
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	length := strength.DefaultGenerateLength
	if raw := r.URL.Query().Get("length"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxGenerateLength {
			apperr.WriteStatus(w, r, http.StatusBadRequest, "invalid length",
				"length must be an integer between 1 and "+strconv.Itoa(maxGenerateLength))
			return
		}
		length = n
	}

	pwd, err := strength.Generate(length)
	if err != nil {
		h.logger.Error("password generation failed", zap.Error(err))
		apperr.WriteStatus(w, r, http.StatusInternalServerError, "generation failed", "")
		return
	}
	httpx.OK(w, generateResponse{Password: pwd})
}
