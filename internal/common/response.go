package common

import (
	"encoding/json"
	"net/http"
)

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "generic_error", "message": "failed to marshal response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithAPIError re-emits a backend error to the browser in the same
// wire shape, with the status the backend uses for that kind.
func RespondWithAPIError(w http.ResponseWriter, apiErr *APIError) {
	RespondWithJSON(w, HTTPStatusFromKind(apiErr.Kind), apiErr)
}

// HTTPStatusFromKind mirrors the backend's kind-to-status mapping.
func HTTPStatusFromKind(kind ErrorKind) int {
	switch kind {
	case ErrValidation, ErrDeploy, ErrWrongFlag, ErrTeamNameTaken:
		return http.StatusBadRequest
	case ErrInvalidToken, ErrEventNotStarted, ErrEventEnded:
		return http.StatusUnauthorized
	case ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
