// ABOUTME: Backend reachability probe
// ABOUTME: Unauthenticated check used by the health command and TUI startup

package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Ping probes the backend without credentials. Any HTTP response, even an
// error status, counts as reachable; only transport failures are reported.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return nil
}
