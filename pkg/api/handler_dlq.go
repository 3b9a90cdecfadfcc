package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// listDeadLettersHandler handles GET /api/v1/dlq.
func (s *Server) listDeadLettersHandler(c *echo.Context) error {
	status := c.QueryParam("status")
	switch status {
	case "", "pending", "retrying", "abandoned":
	default:
		return apiError(c, http.StatusBadRequest, CodeInvalidParameter,
			"invalid status: must be pending, retrying, or abandoned")
	}

	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			return apiError(c, http.StatusBadRequest, CodeInvalidParameter,
				"invalid limit: must be between 1 and 100")
		}
		limit = n
	}
	offset := 0
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return apiError(c, http.StatusBadRequest, CodeInvalidParameter,
				"invalid offset: must be a non-negative integer")
		}
		offset = n
	}

	entries, err := s.dlqService.List(c.Request().Context(), status, limit, offset)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, &DeadLetterListResponse{Entries: entries, Limit: limit, Offset: offset})
}

// dlqStatsHandler handles GET /api/v1/dlq/stats.
func (s *Server) dlqStatsHandler(c *echo.Context) error {
	stats, err := s.dlqService.Stats(c.Request().Context())
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// dlqRetryHandler handles POST /api/v1/dlq/retry: redrive up to max pending
// entries immediately instead of waiting for the background interval.
func (s *Server) dlqRetryHandler(c *echo.Context) error {
	req := DLQRetryRequest{Max: 10}
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return apiError(c, http.StatusBadRequest, CodeValidationFailed, "malformed request body")
		}
	}
	if req.Max <= 0 || req.Max > 100 {
		return apiError(c, http.StatusBadRequest, CodeInvalidParameter,
			"invalid max: must be between 1 and 100")
	}

	entries, err := s.dlqService.RetryNext(c.Request().Context(), req.Max)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, &DLQRetryResponse{Processed: len(entries), Entries: entries})
}

// dlqAbandonHandler handles POST /api/v1/dlq/:id/abandon.
func (s *Server) dlqAbandonHandler(c *echo.Context) error {
	entryID := c.Param("id")
	if entryID == "" {
		return apiError(c, http.StatusBadRequest, CodeMissingParameter, "entry id is required")
	}

	var req DLQAbandonRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return apiError(c, http.StatusBadRequest, CodeValidationFailed, "malformed request body")
		}
	}
	if req.Reason == "" {
		return apiError(c, http.StatusBadRequest, CodeMissingParameter, "reason is required")
	}

	entry, err := s.dlqService.Abandon(c.Request().Context(), entryID, req.Reason)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, entry)
}
