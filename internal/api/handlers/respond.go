package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/collabmatch/backend/internal/domain"
)

// Envelope is the response wrapper used by every handler.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Envelope{Code: status, Message: message, Data: data}); err != nil {
		log.Printf("ERROR [handlers.writeJSON] encode response: %v", err)
	}
}

// writeError maps an error kind to its status code and a stable body.
// The 401/403/404 three-way split is load-bearing: denial is never
// collapsed into not-found.
func writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrResetTokenInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateIdentity):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrEmailDelivery):
		status = http.StatusBadGateway
	default:
		log.Printf("ERROR [handlers.writeError] internal: %v", err)
		writeJSON(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	writeJSON(w, status, err.Error(), nil)
}
