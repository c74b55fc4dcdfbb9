package session_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mbii55/servio-admin-sub000/core/session"
)

// authenticate scripts a successful login so tests start from an
// authenticated session holding tok_t1.
func authenticate(t *testing.T, mgr *session.Manager, api *fakeAPI) {
	t.Helper()

	api.mu.Lock()
	api.postFunc = func(ctx context.Context, path string, body, out any) error {
		return decodeInto(out, map[string]any{"token": "tok_t1", "user": adminUser("ava@servio.test")})
	}
	api.mu.Unlock()

	_, err := mgr.Login(context.Background(), "ava@servio.test", "secret")
	require.NoError(t, err)
}

// TestConcurrentRenewalsCoalesce verifies that any number of simultaneous
// renewal requests produce exactly one exchange whose result they all share.
func TestConcurrentRenewalsCoalesce(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	repo := newTestRepo(t)
	mgr := session.NewManager(repo, api)
	authenticate(t, mgr, api)

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	api.mu.Lock()
	api.postFunc = func(ctx context.Context, path string, body, out any) error {
		once.Do(func() { close(entered) })
		<-release
		return decodeInto(out, map[string]any{"token": "tok_t2"})
	}
	api.mu.Unlock()

	const workers = 16
	tokens := make([]string, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		tokens[0], errs[0] = mgr.Renew(context.Background())
	}()
	<-entered

	// The exchange is now blocked in flight; every renewal issued from here
	// joins it instead of starting its own.
	wg.Add(workers - 1)
	for i := 1; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = mgr.Renew(context.Background())
		}(i)
	}
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "tok_t2", tokens[i])
	}
	assert.Equal(t, 1, api.posts("/auth/refresh"), "coalesced renewals share one exchange")

	stored, ok := repo.Read(context.Background())
	require.True(t, ok)
	assert.Equal(t, "tok_t2", stored)
}

// TestConcurrentInitializeJoins verifies that simultaneous Initialize calls
// share a single principal fetch.
func TestConcurrentInitializeJoins(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	api := &fakeAPI{
		getFunc: func(ctx context.Context, path string, out any) error {
			once.Do(func() { close(entered) })
			<-release
			return decodeInto(out, map[string]any{"user": adminUser("ava@servio.test")})
		},
	}
	repo := seededRepo(t, "tok_valid")
	mgr := session.NewManager(repo, api)

	const workers = 8
	errs := make([]error, workers)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		errs[0] = mgr.Initialize(context.Background())
	}()
	<-entered

	wg.Add(workers - 1)
	for i := 1; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = mgr.Initialize(context.Background())
		}(i)
	}
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
	}
	assert.Equal(t, 1, api.gets("/auth/me"))
	assert.Equal(t, session.StatusAuthenticated, mgr.Status())
}

// TestLogoutDuringRenewalDiscardsResult verifies that a renewal completing
// after a logout cannot resurrect the dead session or re-persist its
// credential.
func TestLogoutDuringRenewalDiscardsResult(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	repo := newTestRepo(t)
	mgr := session.NewManager(repo, api)
	authenticate(t, mgr, api)

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	api.mu.Lock()
	api.postFunc = func(ctx context.Context, path string, body, out any) error {
		once.Do(func() { close(entered) })
		<-release
		return decodeInto(out, map[string]any{"token": "tok_t2"})
	}
	api.mu.Unlock()

	var renewErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, renewErr = mgr.Renew(context.Background())
	}()
	<-entered

	// The user logs out while the exchange is in flight.
	mgr.Logout(context.Background())
	close(release)
	wg.Wait()

	require.ErrorIs(t, renewErr, session.ErrSessionSuperseded)
	assert.Equal(t, session.StatusUnauthenticated, mgr.Status())
	assert.Nil(t, mgr.Current().User)

	_, ok := repo.Read(context.Background())
	assert.False(t, ok, "the renewed credential must not outlive the logout")
	assert.False(t, repo.CookiePresent())
}

// TestLoginSurvivesFailingRenewal verifies that a fresh login racing a
// failing background renewal keeps its session: the renewal's teardown is
// discarded as stale rather than wiping the newer credential.
func TestLoginSurvivesFailingRenewal(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	repo := newTestRepo(t)
	mgr := session.NewManager(repo, api)
	authenticate(t, mgr, api)

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	errDown := errors.New("connection reset by peer")

	api.mu.Lock()
	api.postFunc = func(ctx context.Context, path string, body, out any) error {
		switch path {
		case "/auth/refresh":
			once.Do(func() { close(entered) })
			<-release
			return errDown
		case "/auth/login":
			return decodeInto(out, map[string]any{"token": "tok_t9", "user": adminUser("zoe@servio.test")})
		}
		return fmt.Errorf("unexpected POST %s", path)
	}
	api.mu.Unlock()

	var renewErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, renewErr = mgr.Renew(context.Background())
	}()
	<-entered

	// A new login lands while the doomed renewal is still in flight.
	_, err := mgr.Login(context.Background(), "zoe@servio.test", "secret")
	require.NoError(t, err)

	close(release)
	wg.Wait()

	require.ErrorIs(t, renewErr, session.ErrSessionSuperseded)
	assert.NotErrorIs(t, renewErr, session.ErrRenewalFailed)

	assert.Equal(t, session.StatusAuthenticated, mgr.Status())
	require.NotNil(t, mgr.Current().User)
	assert.Equal(t, "zoe@servio.test", mgr.Current().User.Email)

	token, ok := repo.Read(context.Background())
	require.True(t, ok, "the newer login's credential must survive the stale teardown")
	assert.Equal(t, "tok_t9", token)
	assert.True(t, repo.CookiePresent())
}

// TestConcurrentStateAccess hammers readers against login/renew/logout
// churn. The assertions are minimal; the value is running under -race.
func TestConcurrentStateAccess(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{
		postFunc: func(ctx context.Context, path string, body, out any) error {
			switch path {
			case "/auth/login":
				return decodeInto(out, map[string]any{"token": "tok_t1", "user": adminUser("ava@servio.test")})
			case "/auth/refresh":
				return decodeInto(out, map[string]any{"token": "tok_t2"})
			}
			return fmt.Errorf("unexpected POST %s", path)
		},
	}
	repo := newTestRepo(t)
	mgr := session.NewManager(repo, api)

	const readers = 8
	const iterations = 50

	var wg sync.WaitGroup
	wg.Add(readers + 2)

	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				_ = mgr.Status()
				_ = mgr.Current().IsAuthenticated()
			}
		}()
	}

	go func() {
		defer wg.Done()
		for j := 0; j < iterations; j++ {
			_, _ = mgr.Login(context.Background(), "ava@servio.test", "secret")
			_, _ = mgr.Renew(context.Background())
		}
	}()
	go func() {
		defer wg.Done()
		for j := 0; j < iterations; j++ {
			mgr.Logout(context.Background())
		}
	}()

	wg.Wait()

	// Whatever interleaving happened, the session must land in a coherent
	// state: authenticated with a principal or unauthenticated without one.
	current := mgr.Current()
	if current.IsAuthenticated() {
		assert.NotNil(t, current.User)
	} else {
		assert.Nil(t, current.User)
		assert.Equal(t, session.StatusUnauthenticated, current.Status)
	}
}
