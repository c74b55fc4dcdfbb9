package credstore

import "errors"

var (
	// ErrNotFound is returned when no credential is stored.
	ErrNotFound = errors.New("credential not found")

	// ErrEmptyToken is returned when attempting to save an empty credential.
	ErrEmptyToken = errors.New("empty credential token")

	// ErrInvalidOrigin is returned when the cookie mirror is constructed
	// without a usable API origin.
	ErrInvalidOrigin = errors.New("invalid cookie origin")
)
