package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

// systemWarningsHandler handles GET /api/v1/system/warnings.
func (s *Server) systemWarningsHandler(c *echo.Context) error {
	response := SystemWarningsResponse{
		Warnings: []SystemWarningItem{},
	}

	if s.warningService != nil {
		for _, w := range s.warningService.GetWarnings() {
			response.Warnings = append(response.Warnings, SystemWarningItem{
				ID:        w.ID,
				Category:  w.Category,
				Message:   w.Message,
				Details:   w.Details,
				Source:    w.Source,
				CreatedAt: w.CreatedAt.Format(time.RFC3339),
			})
		}
	}

	return c.JSON(http.StatusOK, response)
}

// cacheStatsHandler handles GET /api/v1/system/cache.
func (s *Server) cacheStatsHandler(c *echo.Context) error {
	response := CacheStatsResponse{Result: nil}

	if s.resultCache != nil {
		response.Result = s.resultCache.Stats()
	}
	if s.replayCache != nil {
		stats := s.replayCache.Stats()
		response.Replay = &stats
	}

	return c.JSON(http.StatusOK, response)
}

// breakerStatusHandler handles GET /api/v1/system/breakers.
func (s *Server) breakerStatusHandler(c *echo.Context) error {
	response := BreakerStatusResponse{Breakers: nil}
	if s.breakers != nil {
		response.Breakers = s.breakers.Snapshots()
	}
	return c.JSON(http.StatusOK, response)
}

// breakerResetHandler handles POST /api/v1/system/breakers/reset: force
// every circuit closed after an upstream incident is resolved.
func (s *Server) breakerResetHandler(c *echo.Context) error {
	if s.breakers == nil {
		return apiError(c, http.StatusServiceUnavailable, CodeServiceUnavailable,
			"breaker manager is not configured")
	}
	s.breakers.ResetAll()
	return c.JSON(http.StatusOK, &BreakerResetResponse{
		Status:  "ok",
		Message: "all circuit breakers reset",
	})
}
