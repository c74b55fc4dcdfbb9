// Package console assembles the Servio admin console from its parts: the
// credential store and cookie mirror, the authenticated API client, the
// session state machine, the route guard, and the typed marketplace clients.
//
// The package exists so the binary's main stays a thin argument parser and
// tests can stand up a fully wired console against a fake backend.
//
// # Usage
//
//	app, err := console.New(ctx, console.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	defer app.Close()
//
//	// Session initialization runs in the background; wait for a verdict.
//	decision, err := app.Guard().Wait(ctx)
//	if err != nil {
//		return err
//	}
//	if decision == routeguard.DecisionAllow {
//		me := app.Manager().Current().User
//		fmt.Println("signed in as", me.Email)
//	}
//
// Configuration comes from the environment (and a .env file during
// development). SERVIO_API_BASE_URL is the only required variable; the
// credential store defaults to a file under the user's home directory.
package console
