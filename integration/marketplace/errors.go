package marketplace

import "errors"

var (
	// ErrAPINil is returned when constructing a client without an API
	// pipeline.
	ErrAPINil = errors.New("api client is nil")
	// ErrInvalidID is returned when an operation receives a nil resource ID.
	ErrInvalidID = errors.New("invalid resource id")
	// ErrInvalidStatus is returned when a status transition names a state
	// the backend does not accept.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrReasonRequired is returned when a document is rejected without a
	// reason. Providers see the reason; rejecting silently is not allowed.
	ErrReasonRequired = errors.New("rejection reason is required")
)
