package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{
			name:       "Success with string data",
			statusCode: http.StatusOK,
			message:    "Stop added",
			data:       "S1",
		},
		{
			name:       "Success with nil data",
			statusCode: http.StatusCreated,
			message:    "Route added",
			data:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			err := SuccessResponse(c, tt.statusCode, tt.message, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
			assert.Equal(t, tt.data, response.Data)
		})
	}
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name         string
		call         func(c echo.Context) error
		expectedCode int
		expectedErr  string
	}{
		{
			name:         "Bad request",
			call:         func(c echo.Context) error { return BadRequestResponse(c, "userLat is required") },
			expectedCode: http.StatusBadRequest,
			expectedErr:  "userLat is required",
		},
		{
			name:         "Not found default message",
			call:         func(c echo.Context) error { return NotFoundResponse(c, "") },
			expectedCode: http.StatusNotFound,
			expectedErr:  "Resource not found",
		},
		{
			name:         "Internal error default message",
			call:         func(c echo.Context) error { return InternalServerErrorResponse(c, "") },
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.expectedCode, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, tt.expectedErr, response.Error)
			assert.Equal(t, tt.expectedCode, response.Code)
		})
	}
}

func TestTooManyRequestsResponse(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, TooManyRequestsResponse(c))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"Too many requests. Please try again later."}`, rec.Body.String())
}
