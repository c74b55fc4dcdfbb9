// Package session manages the admin console's authentication lifecycle:
// login, logout, credential renewal, and restoring a session from a
// previously stored credential.
//
// A single Manager owns the session state machine. It talks to the backend
// through an API client, persists the bearer credential through a
// repository, and only ever grants an authenticated session to accounts
// with the admin role.
//
// # Session Lifecycle
//
// A session is always in exactly one of four states:
//
//   - StatusInitializing: startup state, stored credential not yet verified
//   - StatusUnauthenticated: no usable credential, login required
//   - StatusAuthenticated: verified admin principal attached
//   - StatusRenewing: authenticated, credential renewal in flight
//
// StatusInitializing is the zero value, so a freshly constructed Manager is
// already in the right state. Initialize resolves it exactly once; the
// outcome is either a restored authenticated session or an unauthenticated
// one. IsAuthenticated treats StatusRenewing as still signed in, so a
// renewal in progress never flickers the UI to logged out.
//
// # Basic Usage
//
// Construct a Manager with a credential repository and an API client:
//
//	import "github.com/Mbii55/servio-admin-sub000/core/session"
//
//	manager := session.NewManager(repo, client,
//		session.WithLogger(log),
//	)
//	client.SetRenewer(manager)
//
//	// Verify any stored credential before first use.
//	if err := manager.Initialize(ctx); err != nil {
//		log.Warn("could not reach backend", "error", err)
//	}
//
//	switch manager.Status() {
//	case session.StatusAuthenticated:
//		fmt.Println("signed in as", manager.Current().User.Email)
//	case session.StatusUnauthenticated:
//		// prompt for login
//	}
//
// Login and logout:
//
//	user, err := manager.Login(ctx, email, password)
//	switch {
//	case errors.Is(err, session.ErrInvalidCredentials):
//		// wrong email or password
//	case errors.Is(err, session.ErrNotAdmin):
//		// valid account, but not an admin
//	case err != nil:
//		// backend unreachable, nothing changed
//	default:
//		fmt.Println("welcome,", user.FullName())
//	}
//
//	manager.Logout(ctx) // never fails, always lands on Unauthenticated
//
// # Credential Renewal
//
// Renew exchanges the stored credential for a fresh one. The Manager
// implements the API client's Renewer interface, so mounting it with
// SetRenewer lets any request that hits a 401 trigger one renewal and one
// retry transparently:
//
//	client.SetRenewer(manager)
//
// Concurrent renewal requests are coalesced: whoever asks while a renewal
// is in flight receives the same result. A renewal that fails tears the
// session down to Unauthenticated and clears the stored credential, because
// a credential the backend refuses to renew is not worth keeping.
//
// # Background Renewal
//
// RefreshScheduler keeps a long-lived process signed in by renewing on a
// fixed interval. It follows the Start/Stop/Run lifecycle:
//
//	scheduler, err := session.NewRefreshScheduler(manager,
//		session.WithRefreshInterval(45*time.Minute),
//		session.WithSchedulerLogger(log),
//	)
//	if err != nil {
//		log.Error("scheduler setup failed", "error", err)
//		return
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(scheduler.Run(ctx))
//
// Ticks are inert while no credential is stored, so the scheduler can be
// started before the user logs in.
//
// # Concurrency
//
// All Manager methods are safe for concurrent use. Initialize and Renew are
// deduplicated, so racing callers share one network exchange. Completions
// of stale operations are discarded: if a logout or a fresh login lands
// while a renewal is in flight, the renewal's result is dropped and the
// caller receives ErrSessionSuperseded instead of having an old credential
// resurrect a dead session.
//
// # Error Handling
//
// The package defines sentinel errors for the distinguishable outcomes:
//
//   - ErrInvalidCredentials: backend rejected the login
//   - ErrNotAdmin: account authenticated but lacks the admin role
//   - ErrNoCredential: renewal requested with an empty credential store
//   - ErrRenewalFailed: renewal exchange failed, session torn down
//   - ErrSessionSuperseded: result discarded, a newer login or logout won
//
// All are matched with errors.Is; wrapped API errors retain the backend's
// own code and message.
package session
