package credstore

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/Mbii55/servio-admin-sub000/core/logger"
)

// Repository is the single entry point for credential reads and writes. It
// fans every mutation out to the primary store and the cookie mirror so the
// two locations stay in lockstep: a credential is never observed in one
// without the other.
//
// Storage failures are logged, not returned. The session layer treats the
// credential as best-effort persistence; a failed write degrades to an
// unauthenticated state on the next restart rather than failing the current
// operation.
type Repository struct {
	store  Store
	mirror Mirror
	log    *slog.Logger
}

// RepositoryOption configures a Repository.
type RepositoryOption func(*Repository)

// WithRepositoryLogger configures structured logging for storage failures.
func WithRepositoryLogger(log *slog.Logger) RepositoryOption {
	return func(r *Repository) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRepository creates a credential repository over the given primary store
// and cookie mirror. On construction the mirror is rehydrated from the store:
// a persisted credential repopulates the cookie, an empty store clears it.
// This restores lockstep after a restart, where the in-memory cookie jar
// starts empty while the primary store may still hold a credential.
func NewRepository(ctx context.Context, store Store, mirror Mirror, opts ...RepositoryOption) *Repository {
	r := &Repository{
		store:  store,
		mirror: mirror,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}
	for _, opt := range opts {
		opt(r)
	}

	token, err := store.Load(ctx)
	switch {
	case err == nil:
		mirror.Set(token)
	case errors.Is(err, ErrNotFound):
		mirror.Clear()
	default:
		r.log.WarnContext(ctx, "failed to rehydrate credential cookie",
			logger.Error(err),
			logger.Component("credstore"),
		)
		mirror.Clear()
	}

	return r
}

// Write persists the credential to both locations. The mirror is only
// updated after the primary store accepts the write, so a failed write keeps
// the previous credential pair intact instead of splitting the two locations.
func (r *Repository) Write(ctx context.Context, token string) {
	if err := r.store.Save(ctx, token); err != nil {
		r.log.WarnContext(ctx, "failed to persist credential",
			logger.Error(err),
			logger.Component("credstore"),
		)
		return
	}
	r.mirror.Set(token)
}

// Read returns the credential from the primary store. The boolean is false
// when no credential is stored or the backend failed.
func (r *Repository) Read(ctx context.Context) (string, bool) {
	token, err := r.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.log.WarnContext(ctx, "failed to read credential",
				logger.Error(err),
				logger.Component("credstore"),
			)
		}
		return "", false
	}
	return token, true
}

// Clear removes the credential from both locations. Both removals are
// attempted regardless of individual failures; logout must always drop as
// much credential state as it can reach.
func (r *Repository) Clear(ctx context.Context) {
	if err := r.store.Delete(ctx); err != nil {
		r.log.WarnContext(ctx, "failed to delete credential",
			logger.Error(err),
			logger.Component("credstore"),
		)
	}
	r.mirror.Clear()
}

// CookiePresent reports whether the credential cookie exists. This is the
// coarse signal edge infrastructure keys on; it says nothing about whether
// the credential is still valid.
func (r *Repository) CookiePresent() bool {
	return r.mirror.Present()
}
