package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/taskwire/taskwire/pkg/models"
)

// listTasksHandler handles GET /api/v1/tasks.
func (s *Server) listTasksHandler(c *echo.Context) error {
	var filters models.TaskFilters

	if v := c.QueryParam("status"); v != "" {
		if !validStatusFilter(v) {
			return apiError(c, http.StatusBadRequest, CodeInvalidParameter, "invalid status: "+v)
		}
		filters.Status = v
	}
	if v := c.QueryParam("priority"); v != "" {
		if !models.Priority(v).Valid() {
			return apiError(c, http.StatusBadRequest, CodeInvalidParameter,
				"invalid priority: must be urgent, high, medium, or low")
		}
		filters.Priority = v
	}
	if v := c.QueryParam("task_type"); v != "" {
		if !models.TaskType(v).Valid() {
			return apiError(c, http.StatusBadRequest, CodeInvalidParameter, "invalid task_type: "+v)
		}
		filters.TaskType = v
	}
	filters.PrimaryAgent = c.QueryParam("primary_agent")
	filters.Sender = c.QueryParam("sender")

	if v := c.QueryParam("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return apiError(c, http.StatusBadRequest, CodeInvalidParameter,
				"invalid created_after: must be RFC3339")
		}
		filters.CreatedAfter = &t
	}
	if v := c.QueryParam("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return apiError(c, http.StatusBadRequest, CodeInvalidParameter,
				"invalid created_before: must be RFC3339")
		}
		filters.CreatedBefore = &t
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			return apiError(c, http.StatusBadRequest, CodeInvalidParameter,
				"invalid limit: must be between 1 and 100")
		}
		filters.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return apiError(c, http.StatusBadRequest, CodeInvalidParameter,
				"invalid offset: must be a non-negative integer")
		}
		filters.Offset = n
	}

	result, err := s.taskService.ListTasks(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return apiError(c, http.StatusBadRequest, CodeMissingParameter, "task id is required")
	}

	row, err := s.taskService.GetTask(c.Request().Context(), taskID, false)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, row)
}

// taskNotesHandler handles GET /api/v1/tasks/:id/notes.
func (s *Server) taskNotesHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return apiError(c, http.StatusBadRequest, CodeMissingParameter, "task id is required")
	}

	notes, err := s.taskService.ListNotes(c.Request().Context(), taskID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, &TaskNotesResponse{TaskID: taskID, Notes: notes})
}

// taskConversationHandler handles GET /api/v1/tasks/:id/conversation.
func (s *Server) taskConversationHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return apiError(c, http.StatusBadRequest, CodeMissingParameter, "task id is required")
	}

	entries, err := s.taskService.ListConversation(c.Request().Context(), taskID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, &ConversationResponse{TaskID: taskID, Conversation: entries})
}

// cancelTaskHandler handles POST /api/v1/tasks/:id/cancel.
func (s *Server) cancelTaskHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return apiError(c, http.StatusBadRequest, CodeMissingParameter, "task id is required")
	}

	var req CancelTaskRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return apiError(c, http.StatusBadRequest, CodeValidationFailed, "malformed request body")
		}
	}

	// Record the terminal outcome first, then interrupt in-flight work on
	// this pod. A task already running on another pod is interrupted when
	// its worker observes the status change on finalize.
	_, svcErr := s.taskService.CancelTask(c.Request().Context(), taskID, req.Reason)

	interrupted := false
	if s.workerPool != nil {
		interrupted = s.workerPool.CancelTask(taskID)
	}

	if svcErr != nil && !interrupted {
		return mapServiceError(c, svcErr)
	}

	return c.JSON(http.StatusOK, &CancelResponse{
		TaskID:  taskID,
		Message: "Task cancellation requested",
	})
}

// validStatusFilter reports whether v names a task lifecycle status.
func validStatusFilter(v string) bool {
	switch models.TaskStatus(v) {
	case models.StatusPending, models.StatusQueued, models.StatusRunning,
		models.StatusDispatched, models.StatusCompleted, models.StatusFailed,
		models.StatusAbandoned:
		return true
	}
	return false
}
