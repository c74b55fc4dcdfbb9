package apiclient

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/Mbii55/servio-admin-sub000/core/logger"
)

// CredentialSource provides the currently stored credential.
type CredentialSource interface {
	Read(ctx context.Context) (string, bool)
}

// Renewer exchanges the current credential for a fresh one after the API
// rejected it. Implementations are responsible for their own teardown on
// failure; the transport only consumes the outcome.
type Renewer interface {
	Renew(ctx context.Context) (string, error)
}

// AuthTransport is an http.RoundTripper that attaches the stored bearer
// credential to every request and performs a single renew-and-retry cycle
// when the API answers 401.
//
// The retried request carries the WithoutRenewal marker, so a second 401 is
// returned as-is. Requests that already carry the marker (the session's own
// login and renewal calls) never trigger renewal. Network errors propagate
// unchanged; only a 401 response means the credential was rejected.
type AuthTransport struct {
	base  http.RoundTripper
	creds CredentialSource
	log   *slog.Logger

	mu      sync.RWMutex
	renewer Renewer
}

// TransportOption configures an AuthTransport.
type TransportOption func(*AuthTransport)

// WithBaseTransport sets the underlying round tripper. Defaults to
// http.DefaultTransport.
func WithBaseTransport(rt http.RoundTripper) TransportOption {
	return func(t *AuthTransport) {
		if rt != nil {
			t.base = rt
		}
	}
}

// WithTransportLogger configures structured logging for renewal cycles.
func WithTransportLogger(log *slog.Logger) TransportOption {
	return func(t *AuthTransport) {
		if log != nil {
			t.log = log
		}
	}
}

// NewAuthTransport creates the credential-attaching round tripper.
// The renewer is injected later via SetRenewer because the session manager
// that implements it is itself built on top of this transport.
func NewAuthTransport(creds CredentialSource, opts ...TransportOption) *AuthTransport {
	t := &AuthTransport{
		base:  http.DefaultTransport,
		creds: creds,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetRenewer wires the credential renewer. Safe to call while requests are
// in flight; until set, 401 responses pass through untouched.
func (t *AuthTransport) SetRenewer(r Renewer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.renewer = r
}

func (t *AuthTransport) currentRenewer() Renewer {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.renewer
}

// RoundTrip implements http.RoundTripper.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	out := req.Clone(ctx)
	if token, ok := t.creds.Read(ctx); ok {
		out.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized || renewalDisabled(ctx) {
		return resp, nil
	}

	renewer := t.currentRenewer()
	if renewer == nil {
		return resp, nil
	}

	t.log.DebugContext(ctx, "credential rejected, attempting renewal",
		logger.Method(req.Method),
		logger.Path(req.URL.Path),
	)

	token, renewErr := renewer.Renew(ctx)
	if renewErr != nil {
		// The renewer has already torn the session down; the caller gets
		// the original rejection, not the renewal failure.
		t.log.DebugContext(ctx, "credential renewal failed",
			logger.Error(renewErr),
			logger.Path(req.URL.Path),
		)
		return resp, nil
	}

	retry, ok := t.replayableRequest(req, token)
	if !ok {
		return resp, nil
	}

	// The original response is abandoned in favor of the retry; drain it
	// so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	return t.base.RoundTrip(retry)
}

// replayableRequest clones the original request for the retry, marking it so
// another 401 cannot trigger a second renewal. Requests with one-shot bodies
// that cannot be re-materialized are not retried.
func (t *AuthTransport) replayableRequest(req *http.Request, token string) (*http.Request, bool) {
	retry := req.Clone(WithoutRenewal(req.Context()))
	retry.Header.Set("Authorization", "Bearer "+token)

	if req.Body == nil || req.Body == http.NoBody {
		retry.Body = nil
		return retry, true
	}
	if req.GetBody == nil {
		return nil, false
	}

	body, err := req.GetBody()
	if err != nil {
		return nil, false
	}
	retry.Body = body
	return retry, true
}
