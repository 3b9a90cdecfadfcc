package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/resilience"
	"github.com/taskwire/taskwire/pkg/services"
)

func getHealth(t *testing.T, s *Server) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, s.healthHandler(c))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestHealthHandler_DatabaseUnavailable(t *testing.T) {
	s := &Server{}
	rec, resp := getHealth(t, s)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, healthStatusUnhealthy, resp.Status)

	db, ok := resp.Components["database"]
	require.True(t, ok)
	assert.Equal(t, healthStatusUnhealthy, db.Status)
	assert.Contains(t, db.Message, "not configured")
}

func TestHealthHandler_OpenBreakersDegradeComponent(t *testing.T) {
	manager := resilience.NewBreakerManager(config.BreakerConfig{
		FailureThreshold: 1,
		RecoveryTimeout:  time.Minute,
	})
	manager.Get("agent:devops").Mark(errors.New("boom"))

	s := &Server{breakers: manager}
	rec, resp := getHealth(t, s)

	// Database still decides the overall verdict.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	breakers, ok := resp.Components["circuit_breakers"]
	require.True(t, ok)
	assert.Equal(t, healthStatusDegraded, breakers.Status)
	assert.Contains(t, breakers.Message, "agent:devops")
}

func TestHealthHandler_IncludesWarnings(t *testing.T) {
	warnings := services.NewSystemWarningsService()
	warnings.AddWarning(services.WarningCategoryCacheBackend,
		"redis unreachable, caching disabled", "dial tcp: connection refused", "redis")

	s := &Server{warningService: warnings}
	_, resp := getHealth(t, s)

	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, services.WarningCategoryCacheBackend, resp.Warnings[0].Category)
	assert.NotEmpty(t, resp.Version)
}
