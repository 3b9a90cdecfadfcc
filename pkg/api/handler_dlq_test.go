package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDeadLettersHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{
			name:   "invalid status",
			query:  "status=parked",
			errMsg: "invalid status",
		},
		{
			name:   "limit zero",
			query:  "limit=0",
			errMsg: "invalid limit",
		},
		{
			name:   "limit too large",
			query:  "limit=101",
			errMsg: "invalid limit",
		},
		{
			name:   "negative offset",
			query:  "offset=-5",
			errMsg: "invalid offset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/dlq?"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, s.listDeadLettersHandler(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, CodeInvalidParameter, resp.Code)
			assert.Contains(t, resp.Message, tt.errMsg)
		})
	}
}

func TestDLQRetryHandler_Validation(t *testing.T) {
	s := &Server{}

	t.Run("max out of range", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dlq/retry",
			strings.NewReader(`{"max": 1000}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, s.dlqRetryHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, CodeInvalidParameter, resp.Code)
		assert.Contains(t, resp.Message, "invalid max")
	})

	t.Run("malformed body", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dlq/retry",
			strings.NewReader("{max"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, s.dlqRetryHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, CodeValidationFailed, decodeError(t, rec).Code)
	})
}

func TestDLQAbandonHandler_Validation(t *testing.T) {
	s := &Server{}

	t.Run("missing entry id returns 400", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dlq//abandon", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, s.dlqAbandonHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, CodeMissingParameter, resp.Code)
		assert.Contains(t, resp.Message, "entry id")
	})

	t.Run("missing reason returns 400", func(t *testing.T) {
		e := echo.New()
		e.POST("/api/v1/dlq/:id/abandon", s.dlqAbandonHandler)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/dlq/dl-1/abandon",
			strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, CodeMissingParameter, resp.Code)
		assert.Contains(t, resp.Message, "reason")
	})
}
