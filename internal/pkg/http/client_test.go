package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/piresc/onestop/internal/pkg/circuitbreaker"
	"github.com/piresc/onestop/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name            string
		config          Config
		expectedBase    string
		expectedTimeout time.Duration
	}{
		{
			name:            "Valid configuration",
			config:          Config{BaseURL: "https://maps.example.com", Timeout: 3 * time.Second},
			expectedBase:    "https://maps.example.com",
			expectedTimeout: 3 * time.Second,
		},
		{
			name:            "Trailing slash and default timeout",
			config:          Config{BaseURL: "https://maps.example.com/"},
			expectedBase:    "https://maps.example.com",
			expectedTimeout: 10 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.config)

			assert.Equal(t, tt.expectedBase, client.baseURL)
			assert.Equal(t, tt.expectedTimeout, client.httpClient.Timeout)
		})
	}
}

func TestClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		assert.Equal(t, "12.97,77.57", r.URL.Query().Get("origins"))
		assert.Equal(t, "req-7", r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "secret", Timeout: time.Second})

	var out struct {
		Status string `json:"status"`
	}
	ctx := logger.WithRequestID(context.Background(), "req-7")
	err := client.GetJSON(ctx, "/json", url.Values{"origins": {"12.97,77.57"}}, &out)

	require.NoError(t, err)
	assert.Equal(t, "OK", out.Status)
}

func TestClient_GetJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
			},
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "failed to decode response")
			},
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
			},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "request failed")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond})

			var out map[string]interface{}
			err := client.GetJSON(context.Background(), "/json", nil, &out)

			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClient_GetJSON_BreakerOpens(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	breaker := circuitbreaker.New(circuitbreaker.Config{
		Name:             "distance-api",
		Timeout:          time.Minute,
		FailureThreshold: 2,
	}, nil)
	client := NewClient(Config{BaseURL: server.URL, Timeout: time.Second, Breaker: breaker})

	var out map[string]interface{}
	for i := 0; i < 3; i++ {
		_ = client.GetJSON(context.Background(), "/json", nil, &out)
	}

	assert.Equal(t, 2, hits)
	assert.Equal(t, circuitbreaker.StateOpen, breaker.State())
	assert.ErrorIs(t, client.GetJSON(context.Background(), "/json", nil, &out), circuitbreaker.ErrCircuitBreakerOpen)
}
