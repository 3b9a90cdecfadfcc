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
	"github.com/taskwire/taskwire/pkg/webhook"
)

func getSystem(t *testing.T, s *Server, handler echo.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	return rec
}

func TestSystemWarningsHandler(t *testing.T) {
	t.Run("no service returns empty list", func(t *testing.T) {
		s := &Server{}
		rec := getSystem(t, s, s.systemWarningsHandler, "/api/v1/system/warnings")

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp SystemWarningsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotNil(t, resp.Warnings)
		assert.Empty(t, resp.Warnings)
	})

	t.Run("reports recorded warnings", func(t *testing.T) {
		warnings := services.NewSystemWarningsService()
		warnings.AddWarning(services.WarningCategoryMailDelivery,
			"delivery to ada@example.com failing", "smtp 5xx", "example.com")

		s := &Server{warningService: warnings}
		rec := getSystem(t, s, s.systemWarningsHandler, "/api/v1/system/warnings")

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp SystemWarningsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Warnings, 1)
		assert.Equal(t, services.WarningCategoryMailDelivery, resp.Warnings[0].Category)
		assert.Equal(t, "example.com", resp.Warnings[0].Source)
		assert.NotEmpty(t, resp.Warnings[0].ID)
		assert.NotEmpty(t, resp.Warnings[0].CreatedAt)
	})
}

func TestCacheStatsHandler(t *testing.T) {
	t.Run("nothing attached", func(t *testing.T) {
		s := &Server{}
		rec := getSystem(t, s, s.cacheStatsHandler, "/api/v1/system/cache")

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp CacheStatsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Nil(t, resp.Replay)
	})

	t.Run("reports replay cache stats", func(t *testing.T) {
		replay := webhook.NewMemoryReplayCache(time.Minute)
		t.Cleanup(replay.Close)

		s := &Server{replayCache: replay}
		rec := getSystem(t, s, s.cacheStatsHandler, "/api/v1/system/cache")

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp CacheStatsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Replay)
		assert.Equal(t, "memory", resp.Replay.Type)
	})
}

func TestBreakerStatusHandler(t *testing.T) {
	t.Run("no manager returns empty", func(t *testing.T) {
		s := &Server{}
		rec := getSystem(t, s, s.breakerStatusHandler, "/api/v1/system/breakers")

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp BreakerStatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Breakers)
	})

	t.Run("reports per-target state", func(t *testing.T) {
		manager := resilience.NewBreakerManager(config.BreakerConfig{
			FailureThreshold: 1,
			RecoveryTimeout:  time.Minute,
		})
		manager.Get("agent:coder").Mark(errors.New("boom"))

		s := &Server{breakers: manager}
		rec := getSystem(t, s, s.breakerStatusHandler, "/api/v1/system/breakers")

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp BreakerStatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Breakers, 1)
		assert.Equal(t, "agent:coder", resp.Breakers[0].Target)
		assert.Equal(t, "open", resp.Breakers[0].State)
	})
}

func TestBreakerResetHandler(t *testing.T) {
	t.Run("no manager returns 503", func(t *testing.T) {
		s := &Server{}
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/system/breakers/reset", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, s.breakerResetHandler(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, CodeServiceUnavailable, decodeError(t, rec).Code)
	})

	t.Run("closes every tripped breaker", func(t *testing.T) {
		manager := resilience.NewBreakerManager(config.BreakerConfig{
			FailureThreshold: 1,
			RecoveryTimeout:  time.Minute,
		})
		breaker := manager.Get("agent:bug")
		breaker.Mark(errors.New("boom"))
		require.Equal(t, resilience.StateOpen, breaker.State())

		s := &Server{breakers: manager}
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/system/breakers/reset", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, s.breakerResetHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, resilience.StateClosed, breaker.State())

		var resp BreakerResetResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
	})
}
