package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/piresc/onestop/internal/pkg/circuitbreaker"
	"github.com/piresc/onestop/internal/pkg/logger"
)

// Config configures a Client
type Config struct {
	BaseURL string
	APIKey  string // sent as the "key" query parameter when set
	Timeout time.Duration
	Breaker *circuitbreaker.CircuitBreaker
}

// Client is a JSON HTTP client for upstream APIs
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// NewClient creates a new HTTP client
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimSuffix(config.BaseURL, "/"),
		apiKey:     config.APIKey,
		httpClient: &http.Client{Timeout: config.Timeout},
		breaker:    config.Breaker,
	}
}

// Get performs a GET request against endpoint with the given query
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values) (*http.Response, error) {
	params := url.Values{}
	for k, v := range query {
		params[k] = v
	}
	query = params
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}

	target := c.baseURL + endpoint
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if requestID := logger.RequestIDFrom(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// GetJSON performs a GET and decodes a 2xx JSON body into result.
// When a breaker is configured, failures count against it.
func (c *Client) GetJSON(ctx context.Context, endpoint string, query url.Values, result interface{}) error {
	call := func(ctx context.Context) error {
		resp, err := c.Get(ctx, endpoint, query)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
		}

		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}

	if c.breaker == nil {
		return call(ctx)
	}
	return c.breaker.Execute(ctx, call)
}
