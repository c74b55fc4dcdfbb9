package session

import (
	"github.com/google/uuid"
)

// RoleAdmin is the only role permitted to hold a console session.
const RoleAdmin = "admin"

// Status is the session lifecycle state.
type Status int

const (
	// StatusInitializing means the stored credential has not been validated
	// yet. This is the zero value: a fresh manager starts unknown.
	StatusInitializing Status = iota
	// StatusUnauthenticated means no usable credential exists.
	StatusUnauthenticated
	// StatusAuthenticated means the credential was accepted and the
	// principal is an admin.
	StatusAuthenticated
	// StatusRenewing means an authenticated session is exchanging its
	// credential for a fresh one. Transient; resolves back to
	// Authenticated or collapses to Unauthenticated.
	StatusRenewing
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	case StatusRenewing:
		return "renewing"
	default:
		return "unknown"
	}
}

// Principal is the authenticated admin's profile as reported by the
// marketplace API.
type Principal struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status,omitempty"`
}

// IsAdmin reports whether the principal may hold a console session.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// FullName returns the principal's display name.
func (p Principal) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// Session is a point-in-time snapshot of the console's authentication state.
// A non-nil User always has role admin; principals with any other role are
// rejected before a session can hold them.
type Session struct {
	User   *Principal
	Status Status
}

// IsAuthenticated reports whether the session holds a validated admin.
// A renewing session still counts: renewal is transparent to consumers.
func (s Session) IsAuthenticated() bool {
	return s.User != nil && (s.Status == StatusAuthenticated || s.Status == StatusRenewing)
}
