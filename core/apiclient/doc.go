// Package apiclient provides the authenticated JSON client for the
// marketplace API.
//
// Every admin console request flows through one pipeline: the stored bearer
// credential is attached, the mirror cookie rides along via the mounted
// cookie jar, and a 401 response triggers a single renew-and-retry cycle
// before the failure surfaces to the caller.
//
// # Construction
//
//	client, err := apiclient.New("https://api.servio.example", repo,
//		apiclient.WithCookieJar(mirror.Jar()),
//		apiclient.WithLogger(log),
//	)
//
// The credential source is read on every request, so storage updates take
// effect immediately. The renewer is wired afterwards, once the session
// manager exists:
//
//	client.SetRenewer(manager)
//
// # Renewal Cycle
//
// A 401 means the API rejected the credential. The transport asks the
// renewer for a fresh credential and replays the request exactly once:
//
//   - renewal succeeds: the retried request's outcome is returned, whatever
//     it is
//   - renewal fails: the renewer has already torn the session down and the
//     caller receives the original 401
//   - the retried request is marked WithoutRenewal, so a second 401 cannot
//     start another cycle
//
// The session manager marks its own login and renewal requests with
// WithoutRenewal for the same reason: a rejected renewal must not recurse.
//
// Network errors never enter the cycle. Only a 401 response counts as an
// authorization failure; a timeout or connection failure propagates to the
// caller unchanged.
//
// # Error Handling
//
// Failed responses decode the API's {code, message} body into *APIError:
//
//	var out BookingList
//	err := client.Get(ctx, "/admin/bookings", &out)
//
//	var apiErr *apiclient.APIError
//	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
//		// credential rejected even after renewal
//	}
package apiclient
