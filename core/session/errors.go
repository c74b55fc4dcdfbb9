package session

import "errors"

var (
	// ErrInvalidCredentials is returned when the backend rejects a login
	// attempt. The wrapped API error carries the backend's own message.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotAdmin is returned when a login or principal fetch resolves to an
	// account without the admin role. No credential is ever persisted for
	// such an account.
	ErrNotAdmin = errors.New("account is not an admin")
	// ErrNoCredential is returned when renewal is requested with an empty
	// credential store.
	ErrNoCredential = errors.New("no credential to renew")
	// ErrRenewalFailed is returned when the renewal exchange was rejected or
	// produced no usable credential. The session has been torn down.
	ErrRenewalFailed = errors.New("credential renewal failed")
	// ErrSessionSuperseded is returned when an operation completed after a
	// logout or newer login replaced the session it belonged to. The result
	// was discarded; the newer session is untouched.
	ErrSessionSuperseded = errors.New("session superseded by a newer operation")
	// ErrManagerNil is returned when constructing a component without a
	// session manager.
	ErrManagerNil = errors.New("session manager is nil")
)
