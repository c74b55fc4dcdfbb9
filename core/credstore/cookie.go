package credstore

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

const (
	// DefaultCookieName is the credential cookie name expected by the
	// marketplace edge.
	DefaultCookieName = "servio_admin_token"

	// DefaultCookieTTL matches the credential cookie lifetime set by the
	// admin console (7 days).
	DefaultCookieTTL = 7 * 24 * time.Hour
)

// JarMirror shadows the credential into an http.CookieJar scoped to the API
// origin. Mounting the jar on the HTTP client makes the cookie ride along
// with every request the way a browser would send it, which keeps
// cookie-presence checks at the marketplace edge working.
type JarMirror struct {
	jar    http.CookieJar
	origin *url.URL
	name   string
	ttl    time.Duration
	secure bool
}

// NewJarMirror creates a cookie mirror for the given API origin. The cookie
// is scoped to Path=/, uses SameSite=Lax, and is marked Secure when the
// origin uses https. A zero ttl falls back to DefaultCookieTTL, an empty
// name to DefaultCookieName.
func NewJarMirror(origin string, name string, ttl time.Duration) (*JarMirror, error) {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ErrInvalidOrigin
	}
	// Scope the jar lookup to the origin root so path-specific requests
	// still match the credential cookie.
	u = &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}

	if name == "" {
		name = DefaultCookieName
	}
	if ttl <= 0 {
		ttl = DefaultCookieTTL
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &JarMirror{
		jar:    jar,
		origin: u,
		name:   name,
		ttl:    ttl,
		secure: u.Scheme == "https",
	}, nil
}

// Jar exposes the underlying cookie jar for mounting on an http.Client.
func (m *JarMirror) Jar() http.CookieJar {
	return m.jar
}

// Set writes the credential cookie. An empty token clears instead.
func (m *JarMirror) Set(token string) {
	if token == "" {
		m.Clear()
		return
	}

	m.jar.SetCookies(m.origin, []*http.Cookie{{
		Name:     m.name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(m.ttl),
		MaxAge:   int(m.ttl / time.Second),
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}})
}

// Clear removes the credential cookie.
func (m *JarMirror) Clear() {
	m.jar.SetCookies(m.origin, []*http.Cookie{{
		Name:   m.name,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	}})
}

// Present reports whether a non-empty credential cookie exists for the origin.
func (m *JarMirror) Present() bool {
	for _, c := range m.jar.Cookies(m.origin) {
		if c.Name == m.name && c.Value != "" {
			return true
		}
	}
	return false
}
