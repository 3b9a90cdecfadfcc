package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/resilience"
	"github.com/taskwire/taskwire/pkg/services"
)

// decodeError unmarshals the error envelope written to rec.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("title", "required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeValidationFailed,
			wantMsg:    "required",
		},
		{
			name:       "wrapped not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   CodeNotFound,
			wantMsg:    "resource not found",
		},
		{
			name:       "wrapped already exists maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrAlreadyExists),
			wantStatus: http.StatusConflict,
			wantCode:   CodeDuplicateEntry,
			wantMsg:    "resource already exists",
		},
		{
			name:       "invalid transition maps to 409",
			err:        fmt.Errorf("%w: cannot cancel task in status completed", services.ErrInvalidTransition),
			wantStatus: http.StatusConflict,
			wantCode:   CodeInvalidParameter,
			wantMsg:    "cannot cancel task",
		},
		{
			name:       "open circuit maps to 503",
			err:        fmt.Errorf("invoke coder: %w", resilience.ErrCircuitOpen),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   CodeCircuitOpen,
			wantMsg:    "circuit is open",
		},
		{
			name:       "deadline exceeded maps to 504",
			err:        fmt.Errorf("generate: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   CodeAgentTimeout,
			wantMsg:    "timed out",
		},
		{
			name:       "transient error maps to 503",
			err:        resilience.NewTransientError(errors.New("dial tcp: connection refused"), "llm sidecar unreachable"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   CodeServiceUnavailable,
			wantMsg:    "downstream service unavailable",
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("something unexpected happened"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   CodeInternalError,
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, mapServiceError(c, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Contains(t, resp.Message, tt.wantMsg)
		})
	}
}

func TestValidationErrorCarriesField(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, mapServiceError(c, services.NewValidationError("deadline", "must be in the future")))

	resp := decodeError(t, rec)
	details, ok := resp.Details.(map[string]interface{})
	require.True(t, ok, "expected structured details")
	assert.Equal(t, "deadline", details["field"])
}
