// Package credstore manages the admin credential across its two storage
// locations: a primary store and a shadow cookie.
//
// The marketplace API issues an opaque bearer token at login. The console
// keeps that token in a primary store (file, Redis, or memory) for reads and
// writes, and simultaneously mirrors it into a cookie jar scoped to the API
// origin. Edge infrastructure only sees the cookie; the console only trusts
// the primary store. The Repository keeps both locations in lockstep so
// neither is ever observed populated without the other.
//
// # Stores
//
// Three primary store implementations cover the deployment modes:
//
//	// Local single-user console: credential file under the home directory
//	store, err := credstore.NewFileStore("")
//
//	// Shared credential across console instances
//	store := credstore.NewRedisStore(client, "servio:admin:credential", 0)
//
//	// Tests and ephemeral runs
//	store := credstore.NewMemoryStore()
//
// The file store creates its parent directory with 0700, writes the file
// with 0600, and replaces it atomically via a temp file and rename.
//
// # Cookie Mirror
//
// The JarMirror holds the credential cookie in an http.CookieJar. Mount the
// jar on the API client so the cookie accompanies every request:
//
//	mirror, err := credstore.NewJarMirror("https://api.servio.example", "", 0)
//	httpClient := &http.Client{Jar: mirror.Jar()}
//
// The cookie uses Path=/, SameSite=Lax, a 7-day expiry, and the Secure flag
// when the origin is https.
//
// # Repository
//
// All credential mutations go through the Repository, which fans out to both
// locations and rehydrates the cookie from the primary store at construction:
//
//	repo := credstore.NewRepository(ctx, store, mirror,
//		credstore.WithRepositoryLogger(log),
//	)
//
//	repo.Write(ctx, token) // store + cookie
//	token, ok := repo.Read(ctx)
//	repo.Clear(ctx)        // store + cookie
//	repo.CookiePresent()   // edge-visible signal
//
// Repository methods do not return errors. Storage failures are logged and
// the console degrades to an unauthenticated state on the next restart; they
// never fail the login or logout that triggered the write.
package credstore
