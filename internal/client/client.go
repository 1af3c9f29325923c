// ABOUTME: HTTP client for the Acasa real-estate API
// ABOUTME: Injects the stored bearer token and centralizes 401 handling

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// TokenSource provides the bearer token and the means to discard it.
// *token.Store satisfies it.
type TokenSource interface {
	AdminToken() string
	LogoutAll()
}

// Client is the API client for the Acasa backend
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// OnUnauthorized installs the hook invoked whenever a request fails for
// auth reasons (missing token or 401). Installed once at startup; every
// caller gets the same behavior regardless of which call tripped it.
func OnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New creates an API client rooted at baseURL using tokens for auth
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base URL the client was built with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetUnauthorizedHook replaces the unauthorized hook. Call before issuing
// requests; it exists so an interactive frontend can take over 401
// handling from whatever was wired at construction.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

// Do performs an authenticated JSON request and returns the raw 2xx body.
// A missing token fails immediately without touching the network; a 401
// clears the token store and invokes the unauthorized hook. No retries,
// no caching.
func (c *Client) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, reader, contentType, true)
}

// DoMultipart performs an authenticated request with a prebuilt multipart
// body. The Content-Type carries the writer's boundary, so the JSON
// content type is deliberately not set.
func (c *Client) DoMultipart(ctx context.Context, method, path string, body io.Reader, contentType string) (json.RawMessage, error) {
	return c.do(ctx, method, path, body, contentType, true)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, authenticated bool) (json.RawMessage, error) {
	tok := ""
	if authenticated {
		tok = c.tokens.AdminToken()
		if tok == "" {
			c.unauthorized()
			return nil, ErrNoToken
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		slog.Debug("request rejected with 401, clearing session", "method", method, "path", path)
		c.tokens.LogoutAll()
		c.unauthorized()
		return nil, ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.handleErrorResponse(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return raw, nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled: %w", ctx.Err())
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out: %w", ctx.Err())
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse normalizes non-2xx responses into an APIError
func (c *Client) handleErrorResponse(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		} else if body.Error != "" {
			apiErr.Message = body.Error
		}
	}
	return apiErr
}

func (c *Client) unauthorized() {
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}
