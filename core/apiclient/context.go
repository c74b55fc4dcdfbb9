package apiclient

import "context"

type noRenewalKey struct{}

type requestIDKey struct{}

// WithoutRenewal marks a request context so a 401 response passes through
// without triggering credential renewal. The session manager uses this on
// its own login and renewal calls, and the transport sets it on the single
// retried request. Both uses bound the renewal cycle to one extra round trip.
func WithoutRenewal(ctx context.Context) context.Context {
	return context.WithValue(ctx, noRenewalKey{}, true)
}

func renewalDisabled(ctx context.Context) bool {
	disabled, _ := ctx.Value(noRenewalKey{}).(bool)
	return disabled
}

// RequestIDFromContext returns the request ID the client attached to an
// outgoing request. Intended for logger context extractors.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}
