package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/linkvault/linkvault/internal/auth"
	"github.com/linkvault/linkvault/internal/domain"
	"github.com/linkvault/linkvault/internal/logger"
)

type errorResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError maps a domain error onto the HTTP taxonomy. Store and
// infrastructure failures become an opaque 500; the underlying error is
// logged, never sent to the client.
func respondError(w http.ResponseWriter, log logger.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		respondJSON(w, http.StatusConflict, errorResponse{Message: "already exists"})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Message: "not found"})
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Message: "invalid email or password"})
	default:
		log.Error("request failed", logger.Error(err))
		respondJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.Invalid("malformed JSON body")
	}
	return nil
}
