package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/demobistro/ordering/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondErrorMessage(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondError maps the domain's closed set of error kinds onto HTTP status
// codes; anything outside the set is an infrastructure failure and gets a
// generic 500 body.
func respondError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: ve.Message, Field: ve.Field})
		return
	}

	var le *domain.InvalidLineItemError
	if errors.As(err, &le) {
		respondErrorMessage(w, http.StatusBadRequest, le.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrItemNotFound):
		respondErrorMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidStatus):
		respondErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrGracePeriodExpired),
		errors.Is(err, domain.ErrConcurrentUpdate):
		respondErrorMessage(w, http.StatusConflict, err.Error())
	default:
		respondErrorMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}
