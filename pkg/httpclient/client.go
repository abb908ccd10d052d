// Package httpclient fetches JSON documents from HTTP endpoints so
// suites can be evaluated against live API responses.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a whole request including the body read.
const DefaultTimeout = 30 * time.Second

// ClientOption configures a Client via functional options.
type ClientOption func(*Client)

// Client wraps net/http.Client with bearer authentication and
// fixed request headers. NewClient() with zero options is ready to
// use.
type Client struct {
	token      string
	headers    http.Header
	httpClient *http.Client
}

// NewClient creates a document client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		headers: http.Header{"Accept": {"application/json"}},
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithTimeout overrides DefaultTimeout. Zero or negative values
// keep the default.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithToken sends token as a bearer Authorization header.
func WithToken(token string) ClientOption {
	return func(c *Client) { c.token = token }
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) { c.headers.Add(key, value) }
}

// WithHTTPClient replaces the underlying client, keeping its own
// timeout.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// IsURL reports whether name should be fetched rather than read
// from disk.
func IsURL(name string) bool {
	return strings.HasPrefix(name, "http://") ||
		strings.HasPrefix(name, "https://")
}

// Get performs a GET request and returns the raw body. Responses
// outside the 2xx range are errors carrying the status and a
// truncated body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: truncate(string(data), 200)}
	}
	return data, nil
}

// StatusError is returned by Get for non-2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d", e.Code)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Body)
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
