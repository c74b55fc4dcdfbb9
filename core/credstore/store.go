package credstore

import "context"

// Store is the primary persistence backend for the admin credential.
// Implementations must be safe for concurrent use.
type Store interface {
	// Load returns the stored credential token, or ErrNotFound when
	// nothing is stored.
	Load(ctx context.Context) (string, error)
	// Save persists the credential token, replacing any previous value.
	Save(ctx context.Context, token string) error
	// Delete removes the stored credential. Deleting an absent credential
	// is not an error.
	Delete(ctx context.Context) error
}

// Mirror is the secondary credential location. It shadows the primary store
// so that infrastructure which can only observe cookie presence keeps working.
// Implementations must be safe for concurrent use.
type Mirror interface {
	// Set writes the credential cookie.
	Set(token string)
	// Clear removes the credential cookie.
	Clear()
	// Present reports whether a non-empty credential cookie exists.
	Present() bool
}
