package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/piresc/onestop/internal/pkg/http"
	"github.com/piresc/onestop/internal/pkg/models"
	"github.com/piresc/onestop/services/transit"
)

const okPayload = `{
	"status": "OK",
	"rows": [{"elements": [{"status": "OK", "distance": {"text": "1.8 km", "value": 1834}, "duration": {"text": "6 mins", "value": 352}}]}]
}`

func newTestDistanceGW(t *testing.T, handler http.HandlerFunc) transit.DistanceGW {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := httpclient.NewClient(httpclient.Config{
		BaseURL: server.URL + "/maps/api/distancematrix/json",
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	})
	return NewDistanceGW(client)
}

func TestEstimate_Success(t *testing.T) {
	gw := newTestDistanceGW(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/distancematrix/json", r.URL.Path)
		assert.Equal(t, "12.9767,77.5732", r.URL.Query().Get("origins"))
		assert.Equal(t, "12.9699,77.588", r.URL.Query().Get("destinations"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(okPayload))
	})

	estimate, err := gw.Estimate(context.Background(),
		models.Coordinates{Lat: 12.9767, Lon: 77.5732},
		models.Coordinates{Lat: 12.9699, Lon: 77.5880})

	require.NoError(t, err)
	assert.Equal(t, 1834.0, estimate.Distance)
	assert.Equal(t, 352.0, estimate.Duration)
}

func TestEstimate_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		payload string
	}{
		{name: "Upstream 500", status: http.StatusInternalServerError, payload: `oops`},
		{name: "Request Denied", status: http.StatusOK, payload: `{"status":"REQUEST_DENIED","error_message":"bad key","rows":[]}`},
		{name: "No Rows", status: http.StatusOK, payload: `{"status":"OK","rows":[]}`},
		{name: "No Elements", status: http.StatusOK, payload: `{"status":"OK","rows":[{"elements":[]}]}`},
		{name: "Zero Results", status: http.StatusOK, payload: `{"status":"OK","rows":[{"elements":[{"status":"ZERO_RESULTS"}]}]}`},
		{name: "Malformed Body", status: http.StatusOK, payload: `{"status":`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gw := newTestDistanceGW(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.payload))
			})

			estimate, err := gw.Estimate(context.Background(), models.Coordinates{Lat: 1, Lon: 2}, models.Coordinates{Lat: 3, Lon: 4})

			assert.ErrorIs(t, err, transit.ErrUpstreamUnavailable)
			assert.Nil(t, estimate)
		})
	}
}

func TestEstimate_Unreachable(t *testing.T) {
	client := httpclient.NewClient(httpclient.Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	gw := NewDistanceGW(client)

	_, err := gw.Estimate(context.Background(), models.Coordinates{}, models.Coordinates{})
	assert.ErrorIs(t, err, transit.ErrUpstreamUnavailable)
}
