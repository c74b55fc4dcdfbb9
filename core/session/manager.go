package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Mbii55/servio-admin-sub000/core/apiclient"
	"github.com/Mbii55/servio-admin-sub000/core/logger"
)

// CredentialRepository is the dual-location credential storage the manager
// reads and mutates. Satisfied by credstore.Repository.
type CredentialRepository interface {
	Write(ctx context.Context, token string)
	Read(ctx context.Context) (string, bool)
	Clear(ctx context.Context)
}

// APIClient is the authenticated JSON pipeline the manager issues its
// auth calls through. Satisfied by apiclient.Client.
type APIClient interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
}

// Endpoints holds the marketplace auth endpoint paths.
type Endpoints struct {
	Me      string
	Login   string
	Refresh string
}

// DefaultEndpoints returns the marketplace API's standard auth paths.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Me:      "/auth/me",
		Login:   "/auth/login",
		Refresh: "/auth/refresh",
	}
}

// Manager owns the console's authentication state. It validates the stored
// credential at startup, exchanges passwords for credentials at login,
// renews the credential when the API rejects it, and tears everything down
// at logout.
//
// All state transitions and credential writes happen under one lock, and
// every operation that completes after an HTTP round trip re-checks that a
// newer login or logout has not replaced the session in the meantime. A
// stale completion is discarded with ErrSessionSuperseded instead of
// resurrecting a session the user already ended.
//
// Concurrent renewals are coalesced: any number of requests failing
// authorization at once produce a single renewal exchange whose outcome all
// of them share.
type Manager struct {
	creds     CredentialRepository
	client    APIClient
	endpoints Endpoints
	log       *slog.Logger

	mu         sync.RWMutex
	session    Session
	generation uint64

	group singleflight.Group
}

// Option is a functional option for configuring the manager.
type Option func(*Manager)

// WithLogger configures structured logging for session transitions.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithEndpoints overrides the auth endpoint paths. Empty fields keep their
// defaults.
func WithEndpoints(e Endpoints) Option {
	return func(m *Manager) {
		if e.Me != "" {
			m.endpoints.Me = e.Me
		}
		if e.Login != "" {
			m.endpoints.Login = e.Login
		}
		if e.Refresh != "" {
			m.endpoints.Refresh = e.Refresh
		}
	}
}

// NewManager creates a session manager. The zero state is Initializing:
// the session is unknown until Initialize validates the stored credential.
//
// The manager implements the API client's Renewer interface; wire it back
// with client.SetRenewer so rejected credentials trigger renewal.
func NewManager(creds CredentialRepository, client APIClient, opts ...Option) *Manager {
	m := &Manager{
		creds:     creds,
		client:    client,
		endpoints: DefaultEndpoints(),
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns a snapshot of the session. The principal is copied so
// callers cannot mutate shared state.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := m.session
	if snapshot.User != nil {
		user := *snapshot.User
		snapshot.User = &user
	}
	return snapshot
}

// Status returns the current lifecycle state.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Status
}

// Initialize resolves the unknown startup state by validating the stored
// credential against the principal endpoint. Concurrent calls join the
// in-flight attempt instead of issuing a second fetch; calls after the
// state has resolved are no-ops.
//
// An empty store resolves directly to Unauthenticated. A rejected
// credential has already been through the pipeline's renew-and-retry by the
// time the failure surfaces here, so it resolves to Unauthenticated with
// the store cleared. Transport and server faults resolve to Unauthenticated
// but keep the credential: a flaky network must not destroy a session that
// may still be valid, and the error is returned to the caller.
func (m *Manager) Initialize(ctx context.Context) error {
	_, err, _ := m.group.Do("init", func() (any, error) {
		if m.Status() != StatusInitializing {
			return nil, nil
		}
		return nil, m.initialize(ctx)
	})
	return err
}

func (m *Manager) initialize(ctx context.Context) error {
	gen := m.currentGeneration()

	if _, ok := m.creds.Read(ctx); !ok {
		m.resolve(gen, Session{Status: StatusUnauthenticated})
		m.log.DebugContext(ctx, "no stored credential",
			logger.Component("session"),
			logger.Event("initialize"),
		)
		return nil
	}

	var out struct {
		User Principal `json:"user"`
	}
	if err := m.client.Get(ctx, m.endpoints.Me, &out); err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
			m.teardown(ctx, gen)
			m.log.InfoContext(ctx, "stored credential rejected",
				logger.Component("session"),
				logger.Event("initialize"),
			)
			return nil
		}

		m.resolve(gen, Session{Status: StatusUnauthenticated})
		return err
	}

	if !out.User.IsAdmin() {
		m.teardown(ctx, gen)
		m.log.WarnContext(ctx, "stored credential belongs to a non-admin account",
			logger.Key("role", out.User.Role),
			logger.Component("session"),
		)
		return nil
	}

	user := out.User
	if m.resolve(gen, Session{User: &user, Status: StatusAuthenticated}) {
		m.log.InfoContext(ctx, "session restored",
			logger.ID("user_id", user.ID),
			logger.Component("session"),
			logger.Event("initialize"),
		)
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  Principal `json:"user"`
}

// Login exchanges credentials for a session. A principal without the admin
// role is rejected with ErrNotAdmin and nothing is persisted. Transport and
// validation failures pass through unchanged and leave the session exactly
// as it was.
func (m *Manager) Login(ctx context.Context, email, password string) (Session, error) {
	gen := m.currentGeneration()

	var out loginResponse
	err := m.client.Post(apiclient.WithoutRenewal(ctx), m.endpoints.Login, loginRequest{
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
			return Session{}, errors.Join(ErrInvalidCredentials, err)
		}
		return Session{}, err
	}

	if !out.User.IsAdmin() {
		m.log.WarnContext(ctx, "login rejected: non-admin account",
			logger.Key("role", out.User.Role),
			logger.Component("session"),
			logger.Event("login"),
		)
		return Session{}, ErrNotAdmin
	}
	if out.Token == "" {
		return Session{}, fmt.Errorf("login response carried no credential")
	}

	user := out.User
	m.mu.Lock()
	if m.generation != gen {
		m.mu.Unlock()
		return Session{}, ErrSessionSuperseded
	}
	m.generation++
	m.session = Session{User: &user, Status: StatusAuthenticated}
	m.creds.Write(ctx, out.Token)
	m.mu.Unlock()

	m.log.InfoContext(ctx, "login succeeded",
		logger.ID("user_id", user.ID),
		logger.Component("session"),
		logger.Event("login"),
	)
	return m.Current(), nil
}

// Renew exchanges the stored credential for a fresh one. Concurrent calls
// coalesce into a single exchange. Any failure, network included, tears the
// session down: a credential the backend would not renew is treated as
// ended.
//
// Renew implements the pipeline's Renewer interface, so a 401 on any
// authenticated request funnels here.
func (m *Manager) Renew(ctx context.Context) (string, error) {
	token, err, _ := m.group.Do("renew", func() (any, error) {
		return m.renew(ctx)
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

func (m *Manager) renew(ctx context.Context) (string, error) {
	gen := m.currentGeneration()

	if _, ok := m.creds.Read(ctx); !ok {
		m.teardown(ctx, gen)
		return "", ErrNoCredential
	}

	m.markRenewing()

	var out struct {
		Token string `json:"token"`
	}
	err := m.client.Post(apiclient.WithoutRenewal(ctx), m.endpoints.Refresh, nil, &out)
	if err == nil && out.Token == "" {
		err = fmt.Errorf("renewal response carried no credential")
	}
	if err != nil {
		if !m.teardown(ctx, gen) {
			return "", ErrSessionSuperseded
		}
		m.log.InfoContext(ctx, "session ended: renewal failed",
			logger.Error(err),
			logger.Component("session"),
			logger.Event("teardown"),
		)
		return "", errors.Join(ErrRenewalFailed, err)
	}

	m.mu.Lock()
	if m.generation != gen {
		m.mu.Unlock()
		return "", ErrSessionSuperseded
	}
	m.creds.Write(ctx, out.Token)
	if m.session.User != nil {
		m.session.Status = StatusAuthenticated
	}
	m.mu.Unlock()

	m.log.DebugContext(ctx, "credential renewed",
		logger.Component("session"),
		logger.Event("renew"),
	)
	return out.Token, nil
}

// Logout drops the session and clears both credential locations. Callable
// from every state, idempotent, and never fails: clearing an absent
// credential is a no-op at the storage layer. Any in-flight login or
// renewal that completes afterwards finds its generation stale and
// discards its result.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.generation++
	wasAuthenticated := m.session.User != nil
	m.session = Session{Status: StatusUnauthenticated}
	m.creds.Clear(ctx)
	m.mu.Unlock()

	if wasAuthenticated {
		m.log.InfoContext(ctx, "logout",
			logger.Component("session"),
			logger.Event("logout"),
		)
	}
}

func (m *Manager) currentGeneration() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.generation
}

// resolve applies an initialization outcome unless a newer login or logout
// changed the session while the attempt was in flight.
func (m *Manager) resolve(gen uint64, next Session) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.generation != gen {
		return false
	}
	m.session = next
	return true
}

// teardown drops to Unauthenticated and discards the credential. Used when
// the stored credential is terminally unusable: renewal failed, the backend
// rejected it, or it belongs to a non-admin account. It does not bump the
// generation: a failing background renewal must not invalidate a
// user-initiated login racing it.
func (m *Manager) teardown(ctx context.Context, gen uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.generation != gen {
		return false
	}
	m.session = Session{Status: StatusUnauthenticated}
	m.creds.Clear(ctx)
	return true
}

// markRenewing flips an authenticated session into the transient renewing
// state. Other states keep their status: a renewal issued during
// initialization must not fake an authenticated signal.
func (m *Manager) markRenewing() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.Status == StatusAuthenticated {
		m.session.Status = StatusRenewing
	}
}
