// Package api implements the HTTP client for the remote warehouse
// store. The server is the single source of record; this client only
// executes authenticated requests and hands raw records to the mapper.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultTimeout bounds every remote call. No request may hang
// indefinitely.
const DefaultTimeout = 30 * time.Second

// ErrSessionInvalid is returned on a 401 or 403 response. The caller
// reports it and re-authenticates; it is never retried.
var ErrSessionInvalid = errors.New("session is invalid or expired")

// APIError is a structured non-2xx response from the remote store.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote store returned %d: %s", e.Status, e.Message)
}

// Client talks to the remote warehouse store.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client for the store at baseURL. The bearer token may
// be empty until Login succeeds.
func New(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken replaces the bearer credential, typically after Login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// do executes one request. A nil body sends no payload; a non-nil out
// receives the decoded JSON response body.
func (c *Client) do(ctx context.Context, method, path string, body any, out any, authed bool) error {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("api: failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	requestID, _ := uuid.NewV4()
	req.Header.Set("X-Request-Id", requestID.String())
	log.Debug().Str("request_id", requestID.String()).Str("method", method).Str("path", path).Msg("api: request")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrSessionInvalid
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("api: failed to decode response: %w", err)
		}
	}
	return nil
}

// readErrorMessage extracts the server's error field, falling back to
// the raw body.
func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "no error detail"
	}
	var structured struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &structured); err == nil && structured.Error != "" {
		return structured.Error
	}
	return string(raw)
}
