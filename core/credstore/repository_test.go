package credstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mbii55/servio-admin-sub000/core/credstore"
)

// brokenStore simulates a failing storage backend.
type brokenStore struct {
	loadErr   error
	saveErr   error
	deleteErr error

	inner *credstore.MemoryStore
}

func newBrokenStore() *brokenStore {
	return &brokenStore{inner: credstore.NewMemoryStore()}
}

func (s *brokenStore) Load(ctx context.Context) (string, error) {
	if s.loadErr != nil {
		return "", s.loadErr
	}
	return s.inner.Load(ctx)
}

func (s *brokenStore) Save(ctx context.Context, token string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	return s.inner.Save(ctx, token)
}

func (s *brokenStore) Delete(ctx context.Context) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	return s.inner.Delete(ctx)
}

func newTestMirror(t *testing.T) *credstore.JarMirror {
	t.Helper()
	mirror, err := credstore.NewJarMirror("https://api.servio.example", "", 0)
	require.NoError(t, err)
	return mirror
}

func TestRepository(t *testing.T) {
	t.Parallel()

	t.Run("write populates store and cookie together", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := credstore.NewMemoryStore()
		mirror := newTestMirror(t)
		repo := credstore.NewRepository(ctx, store, mirror)

		repo.Write(ctx, "tok_abc123")

		token, ok := repo.Read(ctx)
		require.True(t, ok)
		assert.Equal(t, "tok_abc123", token)
		assert.True(t, repo.CookiePresent())
	})

	t.Run("clear empties store and cookie together", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := credstore.NewMemoryStore()
		mirror := newTestMirror(t)
		repo := credstore.NewRepository(ctx, store, mirror)

		repo.Write(ctx, "tok_abc123")
		repo.Clear(ctx)

		_, ok := repo.Read(ctx)
		assert.False(t, ok)
		assert.False(t, repo.CookiePresent())
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		repo := credstore.NewRepository(ctx, credstore.NewMemoryStore(), newTestMirror(t))

		repo.Clear(ctx)
		repo.Clear(ctx)

		_, ok := repo.Read(ctx)
		assert.False(t, ok)
		assert.False(t, repo.CookiePresent())
	})

	t.Run("construction rehydrates cookie from populated store", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := credstore.NewMemoryStore()
		require.NoError(t, store.Save(ctx, "tok_persisted"))

		// A fresh mirror starts empty, as after a process restart.
		mirror := newTestMirror(t)
		require.False(t, mirror.Present())

		repo := credstore.NewRepository(ctx, store, mirror)

		assert.True(t, repo.CookiePresent())
		token, ok := repo.Read(ctx)
		require.True(t, ok)
		assert.Equal(t, "tok_persisted", token)
	})

	t.Run("construction clears stale cookie when store is empty", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		mirror := newTestMirror(t)
		mirror.Set("tok_stale")

		_ = credstore.NewRepository(ctx, credstore.NewMemoryStore(), mirror)

		assert.False(t, mirror.Present())
	})

	t.Run("failed write leaves both locations unchanged", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := newBrokenStore()
		require.NoError(t, store.inner.Save(ctx, "tok_previous"))

		mirror := newTestMirror(t)
		repo := credstore.NewRepository(ctx, store, mirror)
		require.True(t, repo.CookiePresent())

		store.saveErr = errors.New("disk full")
		repo.Write(ctx, "tok_next")

		token, ok := repo.Read(ctx)
		require.True(t, ok)
		assert.Equal(t, "tok_previous", token, "store keeps the old credential")
		assert.True(t, repo.CookiePresent(), "cookie still mirrors the stored credential")
	})

	t.Run("read degrades to absent on backend failure", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := newBrokenStore()
		repo := credstore.NewRepository(ctx, store, newTestMirror(t))

		store.loadErr = errors.New("backend offline")

		token, ok := repo.Read(ctx)
		assert.False(t, ok)
		assert.Empty(t, token)
	})

	t.Run("clear still removes cookie when store delete fails", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := newBrokenStore()
		require.NoError(t, store.inner.Save(ctx, "tok_abc123"))

		mirror := newTestMirror(t)
		repo := credstore.NewRepository(ctx, store, mirror)
		require.True(t, repo.CookiePresent())

		store.deleteErr = errors.New("backend offline")
		repo.Clear(ctx)

		assert.False(t, repo.CookiePresent(), "logout always drops the cookie")
	})
}
