// Package routeguard gates protected surfaces on session state.
//
// The guard is a pure observer: it reads the session state machine and
// answers one of three verdicts, performing no network calls and holding no
// state of its own.
//
//   - DecisionPending: the session is still resolving, show nothing conclusive
//   - DecisionRedirect: unauthenticated, navigate to the login surface
//   - DecisionAllow: validated admin, render the protected content
//
// # Basic Usage
//
//	guard, err := routeguard.New(manager,
//		routeguard.WithLoginPath("/login"),
//	)
//	if err != nil {
//		log.Error("guard setup failed", "error", err)
//		return
//	}
//
//	switch guard.Check() {
//	case routeguard.DecisionPending:
//		showSpinner()
//	case routeguard.DecisionRedirect:
//		navigate(guard.LoginPath())
//	case routeguard.DecisionAllow:
//		render()
//	}
//
// # Waiting Out Initialization
//
// At startup the session resolves in the background while the guard reports
// pending. Wait blocks until the state settles and returns the final verdict:
//
//	decision, err := guard.Wait(ctx)
//	if err != nil {
//		return err // context ended before the session resolved
//	}
//	if decision == routeguard.DecisionRedirect {
//		return promptLogin()
//	}
//
// # Edge Gate Contract
//
// Browser navigation is additionally gated outside this process by an edge
// layer that can read the credential cookie but not the primary store. That
// collaborator is fixed here as the CookieGate interface: cookie presence
// in, navigation decision out. It is intentionally not implemented in this
// module; presence is a coarse convenience signal, and real authorization
// happens on every API call via the bearer header.
package routeguard
