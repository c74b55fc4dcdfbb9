package routeguard

import "errors"

var (
	// ErrSourceNil is returned when constructing a guard without a session
	// source.
	ErrSourceNil = errors.New("session source is nil")
)
