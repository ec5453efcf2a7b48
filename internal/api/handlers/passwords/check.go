package passwords

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ThatsCharith/quantum-password-strength-check/internal/api/apperr"
	"github.com/ThatsCharith/quantum-password-strength-check/internal/api/httpx"
)

type checkRequest struct {
	Password string `json:"password"`
}

type checkResponse struct {
	Strength    string   `json:"strength"`
	Score       int      `json:"score"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		status := http.StatusBadRequest
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			status = http.StatusRequestEntityTooLarge
		}
		apperr.WriteStatus(w, r, status, "invalid request body", err.Error())
		return
	}
	if req.Password == "" {
		apperr.WriteStatus(w, r, http.StatusBadRequest, "invalid request", "password is required")
		return
	}

	res := h.checker.Check(req.Password)
	httpx.OK(w, checkResponse{
		Strength:    res.Strength,
		Score:       res.Score,
		Message:     res.Message,
		Suggestions: h.checker.Suggest(req.Password),
	})
}
