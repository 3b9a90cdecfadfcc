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

func TestListTasksHandler_Validation(t *testing.T) {
	// We only test parameter validation (returns 400 before hitting the
	// service). Happy-path is covered by integration/e2e tests that have a
	// real service.
	s := &Server{}

	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{
			name:   "invalid status",
			query:  "status=bogus",
			errMsg: "invalid status: bogus",
		},
		{
			name:   "invalid priority",
			query:  "priority=asap",
			errMsg: "invalid priority",
		},
		{
			name:   "invalid task_type",
			query:  "task_type=haiku",
			errMsg: "invalid task_type: haiku",
		},
		{
			name:   "invalid created_after",
			query:  "created_after=yesterday",
			errMsg: "invalid created_after",
		},
		{
			name:   "created_before wrong format (not RFC3339)",
			query:  "created_before=2026-01-01",
			errMsg: "invalid created_before",
		},
		{
			name:   "limit zero",
			query:  "limit=0",
			errMsg: "invalid limit",
		},
		{
			name:   "limit too large",
			query:  "limit=500",
			errMsg: "invalid limit",
		},
		{
			name:   "limit not a number",
			query:  "limit=ten",
			errMsg: "invalid limit",
		},
		{
			name:   "negative offset",
			query:  "offset=-1",
			errMsg: "invalid offset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, s.listTasksHandler(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, CodeInvalidParameter, resp.Code)
			assert.Contains(t, resp.Message, tt.errMsg)
		})
	}
}

func TestGetTaskHandler_Validation(t *testing.T) {
	s := &Server{}

	t.Run("missing task id returns 400", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks//", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, s.getTaskHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, CodeMissingParameter, resp.Code)
		assert.Contains(t, resp.Message, "task id")
	})
}

func TestTaskNotesHandler_Validation(t *testing.T) {
	s := &Server{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks//notes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, s.taskNotesHandler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "task id")
}

func TestCancelTaskHandler_Validation(t *testing.T) {
	s := &Server{}

	t.Run("missing task id returns 400", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks//cancel", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, s.cancelTaskHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, CodeMissingParameter, resp.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		e := echo.New()
		e.POST("/api/v1/tasks/:id/cancel", s.cancelTaskHandler)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/task-1/cancel",
			strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, CodeValidationFailed, resp.Code)
	})
}
