package routeguard

// CookiePresence is the single signal the edge layer may consume. Satisfied
// by credstore.Repository. Presence says nothing about validity; every API
// call re-proves authorization through its bearer header.
type CookiePresence interface {
	CookiePresent() bool
}

// CookieGate is the contract for the edge-routing collaborator that gates
// browser navigation outside this process. It sees only the credential
// cookie's presence and the requested path, and answers with a navigation
// decision: admin paths without the cookie redirect to login, the login
// path with the cookie redirects back into the console, everything else is
// allowed through.
//
// The gate is deliberately coarse and non-cryptographic. It exists to spare
// unauthenticated browsers a render-then-bounce trip, not to authorize
// anything. Implementations must never inspect the token value.
type CookieGate interface {
	Route(path string, cookiePresent bool) Decision
}
