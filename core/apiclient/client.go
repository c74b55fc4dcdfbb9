package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Mbii55/servio-admin-sub000/core/logger"
)

// maxErrorBodySize caps how much of an error response is read when decoding
// the {code, message} body.
const maxErrorBodySize = 64 << 10

// Client is the JSON API client for the marketplace backend. All admin
// console traffic flows through it: requests pick up the stored bearer
// credential and the mirror cookie, and 401 responses trigger the single
// renew-and-retry cycle in the underlying AuthTransport.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	transport *AuthTransport
	log       *slog.Logger
}

// Option is a functional option for configuring the client.
type Option func(*Client)

// WithHTTPTimeout bounds a full request attempt, including the renewal cycle
// on a rejected credential. Zero means no client-side timeout; per-request
// contexts still apply.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.http.Timeout = d
		}
	}
}

// WithCookieJar mounts a cookie jar on the client so the credential cookie
// accompanies every request.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) {
		if jar != nil {
			c.http.Jar = jar
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger configures structured logging for request outcomes.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithTransportOptions forwards options to the underlying AuthTransport.
func WithTransportOptions(opts ...TransportOption) Option {
	return func(c *Client) {
		for _, opt := range opts {
			opt(c.transport)
		}
	}
}

// New creates an API client for the given base URL. The credential source
// feeds the Authorization header; call SetRenewer once the session manager
// exists to enable the 401 renewal cycle.
func New(baseURL string, creds CredentialSource, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ErrInvalidBaseURL
	}

	transport := NewAuthTransport(creds)
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "servio-admin/1.0",
		transport: transport,
		http:      &http.Client{Transport: transport},
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewFromConfig creates a client from environment configuration.
func NewFromConfig(cfg Config, creds CredentialSource, opts ...Option) (*Client, error) {
	configOpts := []Option{
		WithHTTPTimeout(cfg.Timeout),
	}
	if cfg.UserAgent != "" {
		configOpts = append(configOpts, WithUserAgent(cfg.UserAgent))
	}

	// User-provided options override config.
	configOpts = append(configOpts, opts...)

	return New(cfg.BaseURL, creds, configOpts...)
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetRenewer wires the credential renewer into the transport.
func (c *Client) SetRenewer(r Renewer) {
	c.transport.SetRenewer(r)
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete performs a DELETE request. Pass a non-nil out to decode a response
// body.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	requestID := uuid.NewString()
	ctx = withRequestID(ctx, requestID)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		// Transport failures are not authorization failures; they reach the
		// caller without translation.
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.DebugContext(ctx, "request completed",
		logger.Method(method),
		logger.Path(path),
		logger.StatusCode(resp.StatusCode),
		logger.Duration(time.Since(start)),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// decodeAPIError reads a failed response into an APIError. The body decode
// is best effort; an unparsable body still yields the status code.
func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err == nil && len(data) > 0 {
		_ = json.Unmarshal(data, apiErr)
	}
	return apiErr
}
