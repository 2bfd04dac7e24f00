// package api implements typed request/response wrappers for the Flint backend.
//
// Every operation is a single JSON-over-HTTP round trip; the package does pure
// translation between Go types and the wire shapes and holds no business logic.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"
)

// Client talks to the Flint backend. All endpoints respond with a {"data": ...}
// envelope which the client unwraps before decoding.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	token      string
}

// NewClient creates a backend client for the given base URL.
//
// searchRate caps catalog searches per second; pass 0 to disable throttling.
func NewClient(baseURL string, client *http.Client, searchRate float64) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080/api/v1"
	}
	if client == nil {
		client = http.DefaultClient
	}

	var limiter *rate.Limiter
	if searchRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(searchRate), 1)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    limiter,
	}
}

// SetToken sets the bearer token attached to authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// envelope is the common response wrapper used by every backend endpoint.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// StatusError is returned for non-2xx responses. Callers translate it to a
// user-facing message; the raw body is kept only for logging.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// doRequest performs one round trip and decodes the enveloped response into result.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: respBody}
	}

	if result == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if env.Data == nil {
		// Some endpoints respond without the envelope (e.g. logout).
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}

	if err := json.Unmarshal(env.Data, result); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}

	return nil
}
