package common

import (
	"encoding/json"
	"fmt"
)

// ErrorKind is the closed set of error identifiers the backend reports.
// Adding a kind here requires a matching backend change; do not invent
// client-only kinds.
type ErrorKind string

const (
	ErrDatabase        ErrorKind = "database_error"
	ErrJwt             ErrorKind = "jwt_error"
	ErrValidation      ErrorKind = "validation_error"
	ErrDeploy          ErrorKind = "deploy_error"
	ErrInvalidToken    ErrorKind = "invalid_token"
	ErrNotFound        ErrorKind = "not_found"
	ErrEventNotStarted ErrorKind = "event_not_started"
	ErrEventEnded      ErrorKind = "event_ended"
	ErrWrongFlag       ErrorKind = "wrong_flag"
	ErrTeamNameTaken   ErrorKind = "team_name_taken"
	ErrGeneric         ErrorKind = "generic_error"
)

// APIError is a well-formed error reported by the backend, as opposed to a
// transport or decode fault. Callers pick the two apart with errors.As:
//
//	var apiErr *common.APIError
//	if errors.As(err, &apiErr) { ... backend said no ... }
//
// Data is only populated for event_not_started, where it carries the event
// start time for display. It is opaque to this layer.
type APIError struct {
	Kind    ErrorKind       `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error %s: %s", e.Kind, e.Message)
}

// Is makes errors.Is(err, &APIError{Kind: ...}) match on kind alone.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Kind == e.Kind
}

// IsErrorPayload reports whether a decoded JSON payload is error-shaped:
// an object carrying both an "error" and a "message" field. The test is
// structural rather than status-based because the backend returns error
// bodies with HTTP 200 on some paths (flag submission) and non-200 on
// others. Every backend response must pass through this check before being
// treated as a domain value.
func IsErrorPayload(body []byte) bool {
	var probe struct {
		Error   *string `json:"error"`
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return false
	}
	return probe.Error != nil && probe.Message != nil
}
