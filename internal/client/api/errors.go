package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrSessionExpired signals that the stored credentials can no longer be
// used: the refresh token was missing, the refresh call failed, or a
// retried request was still rejected. The client clears the stored session
// before returning it; callers should route the user back to login.
var ErrSessionExpired = errors.New("session expired")

// errNoRefreshToken is internal to the refresh flow; callers only ever see
// ErrSessionExpired.
var errNoRefreshToken = errors.New("no refresh token stored")

// APIError is a non-401 non-2xx server response. Message carries the
// server-provided `message` or `detail` field when present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// NetworkError means the request never produced a response: timeout, DNS
// failure, refused connection.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "connection error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UnknownError wraps failures that fit no other category, e.g. an
// unmarshalable response body.
type UnknownError struct {
	Err error
}

func (e *UnknownError) Error() string {
	return "unexpected error: " + e.Err.Error()
}

func (e *UnknownError) Unwrap() error { return e.Err }

// errorMessage extracts a human-readable message from an error response
// body, preferring `message` over `detail`, falling back to fallback.
func errorMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Detail != "" {
			return payload.Detail
		}
	}
	return fallback
}
