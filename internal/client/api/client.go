// Package api implements the authenticated HTTP client for the Escalator
// REST API: bearer-token injection, one-shot token refresh and retry on
// 401, and a uniform error taxonomy. All real business logic lives on the
// server; this layer only makes its JSON surface callable.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/escalatorhq/escalator-cli/internal/client/credentials"
	"github.com/escalatorhq/escalator-cli/internal/logging"
)

// DefaultTimeout bounds every network call unless overridden.
const DefaultTimeout = 10 * time.Second

// Client performs authenticated calls against the Escalator API. Tokens are
// re-read from the credential store per request, never cached in memory, so
// a refresh performed by a concurrent request is picked up immediately.
//
// Construct it once with its dependencies and pass it by reference; there
// is no package-level instance.
type Client struct {
	baseURL string
	http    *http.Client
	store   credentials.Store
	log     logging.Logger
}

type Option func(*Client)

// WithHTTPClient substitutes the underlying *http.Client. The caller is
// responsible for its timeout.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger attaches a structured logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New builds a Client for the given API root, e.g.
// "http://127.0.0.1:8000/api".
func New(baseURL string, store credentials.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		store:   store,
		log:     logging.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Do performs one logical request and returns the raw JSON response body.
//
// Pipeline: attach the stored access token, send, and on a 401 first
// attempt refresh the access token and resend the identical request exactly
// once. A 401 on the resent request, a missing refresh token, or a failed
// refresh call all clear the stored session and surface ErrSessionExpired.
func (c *Client) Do(ctx context.Context, method, path string, opts *RequestOptions) (json.RawMessage, error) {
	preq, err := c.newPendingRequest(method, path, opts)
	if err != nil {
		return nil, &UnknownError{Err: err}
	}
	return c.send(ctx, preq, 0)
}

// DoJSON is Do plus decoding of the response body into out (skipped when
// out is nil or the body is empty, as for 204 responses).
func (c *Client) DoJSON(ctx context.Context, method, path string, opts *RequestOptions, out any) error {
	raw, err := c.Do(ctx, method, path, opts)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &UnknownError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

func (c *Client) Get(ctx context.Context, path string, opts *RequestOptions, out any) error {
	return c.DoJSON(ctx, http.MethodGet, path, opts, out)
}

func (c *Client) Post(ctx context.Context, path string, opts *RequestOptions, out any) error {
	return c.DoJSON(ctx, http.MethodPost, path, opts, out)
}

func (c *Client) Patch(ctx context.Context, path string, opts *RequestOptions, out any) error {
	return c.DoJSON(ctx, http.MethodPatch, path, opts, out)
}

func (c *Client) Delete(ctx context.Context, path string, opts *RequestOptions) error {
	return c.DoJSON(ctx, http.MethodDelete, path, opts, nil)
}

// send executes one attempt. attempt > 0 means the request was already
// replayed after a refresh; a second 401 must not trigger another refresh.
func (c *Client) send(ctx context.Context, preq *pendingRequest, attempt int) (json.RawMessage, error) {
	token, err := c.store.Get(ctx, credentials.KeyAccessToken)
	if err != nil {
		// A broken store must not fail the call; proceed unauthenticated.
		c.log.Warn(ctx, "failed to read access token", "error", err)
	}

	req, err := preq.build(ctx, token)
	if err != nil {
		return nil, &UnknownError{Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil

	case resp.StatusCode == http.StatusUnauthorized:
		if attempt > 0 {
			c.log.Warn(ctx, "retried request rejected again, dropping session", "url", preq.url)
			c.clearSession(ctx)
			return nil, ErrSessionExpired
		}
		if err := c.refreshAccessToken(ctx); err != nil {
			c.log.Warn(ctx, "token refresh failed, dropping session", "error", err)
			c.clearSession(ctx)
			return nil, ErrSessionExpired
		}
		c.log.Debug(ctx, "access token refreshed, replaying request", "url", preq.url)
		return c.send(ctx, preq, attempt+1)

	default:
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(body, "API error")}
	}
}

// refreshAccessToken exchanges the stored refresh token for a new access
// token and persists it. The call goes straight to the transport, outside
// the authenticated pipeline, so it can never recurse into another refresh.
func (c *Client) refreshAccessToken(ctx context.Context) error {
	refresh, err := c.store.Get(ctx, credentials.KeyRefreshToken)
	if err != nil {
		return err
	}
	if refresh == "" {
		return errNoRefreshToken
	}

	payload, err := json.Marshal(map[string]string{"refresh": refresh})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/token/refresh/", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("refresh call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("refresh call failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("refresh rejected (status %d): %s", resp.StatusCode, errorMessage(body, "refresh failed"))
	}

	var out struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("failed to decode refresh response: %w", err)
	}
	if out.Access == "" {
		return fmt.Errorf("refresh response contained no access token")
	}

	return c.store.Set(ctx, credentials.KeyAccessToken, out.Access)
}

// clearSession removes the stored token pair and user record. Best effort:
// failures are logged, never returned.
func (c *Client) clearSession(ctx context.Context) {
	if err := c.store.Remove(ctx, credentials.SessionKeys...); err != nil {
		c.log.Warn(ctx, "failed to clear stored session", "error", err)
	}
}
