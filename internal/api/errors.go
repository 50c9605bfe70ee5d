package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetwork wraps any transport-level failure talking to the marketplace API.
	ErrNetwork = errors.New("marketplace api unreachable")
	// ErrNotFound maps a 404 from the API (missing vehicle, dead inquiry target).
	ErrNotFound = errors.New("not found")
)

// StatusError is a non-2xx answer from the API. Message carries the
// server-supplied `message` field when the payload had one.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("marketplace api: status %d", e.Status)
}

// IsAuthFailure reports whether err is a 401/403 from the API. Callers treat
// these as session-invalid; the client itself never clears a session.
func IsAuthFailure(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && (se.Status == http.StatusUnauthorized || se.Status == http.StatusForbidden)
}

// ServerMessage returns the server-supplied error message, or "" when the
// failure had none (transport errors, bare status codes).
func ServerMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}

// decodeError narrows a non-2xx response into the error taxonomy at this one
// point; call sites never inspect status codes themselves.
func decodeError(resp *http.Response) error {
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return &StatusError{Status: resp.StatusCode, Message: payload.Message}
}
