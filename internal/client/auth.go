// ABOUTME: Authentication endpoints of the Acasa API
// ABOUTME: Login, Google sign-in exchange, token verification, and logout

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	loginPath       = "/api/v1/users/login"
	googleLoginPath = "/api/v1/users/google-login"
	logoutPath      = "/api/v1/users/logout"
	verifyTokenPath = "/api/v1/users/admin/verify-token"
)

// loginResponse covers both token placements the backend uses:
// top-level {token} and nested {data:{token}}.
type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	Data    struct {
		Token string `json:"token"`
	} `json:"data"`
}

// Login exchanges credentials for a bearer token. The token is returned,
// not stored; the caller decides which session slot it belongs in after
// inspecting its claims.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	raw, err := c.doUnauthenticated(ctx, http.MethodPost, loginPath, body)
	if err != nil {
		return "", err
	}
	return extractToken(raw)
}

// LoginWithGoogle exchanges a Google ID token for an Acasa bearer token
func (c *Client) LoginWithGoogle(ctx context.Context, idToken, clientID string) (string, error) {
	body := map[string]string{"idToken": idToken, "clientId": clientID}
	raw, err := c.doUnauthenticated(ctx, http.MethodPost, googleLoginPath, body)
	if err != nil {
		return "", err
	}
	return extractToken(raw)
}

// VerifyToken asks the backend whether the stored admin token is still
// accepted. Any non-2xx (including the 401 short-circuit in Do) is an error.
func (c *Client) VerifyToken(ctx context.Context) error {
	raw, err := c.Do(ctx, http.MethodGet, verifyTokenPath, nil)
	if err != nil {
		return err
	}

	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("invalid verify-token response: %w", err)
	}
	if !resp.Success {
		return fmt.Errorf("token rejected by backend")
	}
	return nil
}

// Logout tells the backend to end the session. Best effort: the local
// store is the source of truth for logout, so callers clear it regardless
// of whether this call succeeds.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.Do(ctx, http.MethodPost, logoutPath, nil)
	return err
}

// doUnauthenticated issues a request without requiring a stored token.
// Only the login endpoints use this path.
func (c *Client) doUnauthenticated(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.do(ctx, method, path, bytes.NewReader(data), "application/json", false)
}

func extractToken(raw json.RawMessage) (string, error) {
	var resp loginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("invalid login response: %w", err)
	}
	if resp.Token != "" {
		return resp.Token, nil
	}
	if resp.Data.Token != "" {
		return resp.Data.Token, nil
	}
	return "", fmt.Errorf("login response carried no token")
}
