package routeguard

import (
	"context"
	"time"

	"github.com/Mbii55/servio-admin-sub000/core/session"
)

// Decision is the guard's three-way verdict on showing protected content.
type Decision int

const (
	// DecisionPending means the session is still resolving; show nothing
	// conclusive yet.
	DecisionPending Decision = iota
	// DecisionRedirect means the session resolved to unauthenticated; send
	// the user to the login surface.
	DecisionRedirect
	// DecisionAllow means the session holds a validated admin; render the
	// protected content.
	DecisionAllow
)

// String implements fmt.Stringer.
func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionRedirect:
		return "redirect"
	case DecisionAllow:
		return "allow"
	default:
		return "unknown"
	}
}

// SessionSource is the guard's view of the session state machine.
// Satisfied by session.Manager.
type SessionSource interface {
	Current() session.Session
}

// Guard gates protected surfaces on session state. It performs no network
// calls and holds no state of its own; every decision is derived from the
// source at the moment of the call.
type Guard struct {
	source       SessionSource
	loginPath    string
	pollInterval time.Duration
}

// Option is a functional option for configuring the guard.
type Option func(*Guard)

// WithLoginPath sets the navigation target for redirect decisions.
func WithLoginPath(path string) Option {
	return func(g *Guard) {
		if path != "" {
			g.loginPath = path
		}
	}
}

// WithPollInterval sets how often Wait re-checks an unresolved session.
// Values <= 0 keep the default.
func WithPollInterval(interval time.Duration) Option {
	return func(g *Guard) {
		if interval > 0 {
			g.pollInterval = interval
		}
	}
}

// New creates a guard observing the given session source.
func New(source SessionSource, opts ...Option) (*Guard, error) {
	if source == nil {
		return nil, ErrSourceNil
	}

	g := &Guard{
		source:       source,
		loginPath:    "/login",
		pollInterval: 25 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// NewFromConfig creates a Guard from configuration. Additional options
// override config values.
func NewFromConfig(cfg Config, source SessionSource, opts ...Option) (*Guard, error) {
	allOpts := append([]Option{
		WithLoginPath(cfg.LoginPath),
	}, opts...)

	return New(source, allOpts...)
}

// Check returns the verdict for the session as it stands right now.
// A renewing session is allowed: reactive renewal is transparent to
// rendering and must not flicker the user back to a loading or login state.
func (g *Guard) Check() Decision {
	current := g.source.Current()
	if current.Status == session.StatusInitializing {
		return DecisionPending
	}
	if current.IsAuthenticated() {
		return DecisionAllow
	}
	return DecisionRedirect
}

// Wait blocks until the session leaves its pending state and returns the
// resolved decision. Returns DecisionPending with the context's error if the
// context ends first.
func (g *Guard) Wait(ctx context.Context) (Decision, error) {
	if d := g.Check(); d != DecisionPending {
		return d, nil
	}

	ticker := time.NewTicker(g.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return DecisionPending, ctx.Err()
		case <-ticker.C:
			if d := g.Check(); d != DecisionPending {
				return d, nil
			}
		}
	}
}

// LoginPath returns the navigation target for redirect decisions.
func (g *Guard) LoginPath() string {
	return g.loginPath
}
