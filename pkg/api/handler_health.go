package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/taskwire/taskwire/pkg/database"
	"github.com/taskwire/taskwire/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health. The database is essential: when it is
// unreachable the probe reports unhealthy with 503. A degraded worker pool
// lowers the status but keeps 200, so orchestrators do not restart the
// process over a condition it is already recovering from. Cache and breaker
// components are informational.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]ComponentHealth)
	status := healthStatusHealthy

	if s.dbClient == nil {
		status = healthStatusUnhealthy
		components["database"] = ComponentHealth{Status: healthStatusUnhealthy, Message: "database client not configured"}
	} else if dbHealth, err := database.Health(reqCtx, s.dbClient.DB()); err != nil {
		status = healthStatusUnhealthy
		components["database"] = ComponentHealth{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		components["database"] = ComponentHealth{Status: healthStatusHealthy, Details: dbHealth}
	}

	if s.workerPool != nil {
		poolHealth := s.workerPool.Health()
		if poolHealth != nil && !poolHealth.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := "worker pool degraded"
			if poolHealth.DBError != "" {
				msg = poolHealth.DBError
			}
			components["worker_pool"] = ComponentHealth{Status: healthStatusDegraded, Message: msg, Details: poolHealth}
		} else {
			components["worker_pool"] = ComponentHealth{Status: healthStatusHealthy, Details: poolHealth}
		}
	}

	if s.resultCache != nil {
		components["cache"] = ComponentHealth{Status: healthStatusHealthy, Details: s.resultCache.Stats()}
	}

	if s.breakers != nil {
		snapshots := s.breakers.Snapshots()
		var open []string
		for _, snap := range snapshots {
			if snap.State == "open" {
				open = append(open, snap.Target)
			}
		}
		breakerComponent := ComponentHealth{Status: healthStatusHealthy, Details: snapshots}
		if len(open) > 0 {
			breakerComponent.Status = healthStatusDegraded
			breakerComponent.Message = "open circuits: " + strings.Join(open, ", ")
		}
		components["circuit_breakers"] = breakerComponent
	}

	resp := &HealthResponse{
		Status:     status,
		Version:    version.GitCommit,
		Components: components,
	}
	if s.warningService != nil {
		resp.Warnings = s.warningService.GetWarnings()
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	return c.JSON(httpStatus, resp)
}
