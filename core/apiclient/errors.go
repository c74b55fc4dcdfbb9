package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidBaseURL is returned when the client is constructed without a
	// usable API base URL.
	ErrInvalidBaseURL = errors.New("invalid api base url")
)

// APIError is a structured error response from the marketplace API.
// The backend answers failed requests with a {code, message} JSON body;
// both fields stay empty when the body could not be parsed.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsUnauthorized reports whether the response was a 401. Only this status
// counts as an authorization failure; 4xx/5xx responses with other codes
// are ordinary request errors.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}
