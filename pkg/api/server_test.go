package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/database"
	"github.com/taskwire/taskwire/pkg/parser"
	"github.com/taskwire/taskwire/pkg/router"
	"github.com/taskwire/taskwire/pkg/services"
	"github.com/taskwire/taskwire/pkg/webhook"
)

func testServerConfig(adminToken string) *config.Config {
	builtin := config.GetBuiltinConfig()
	return &config.Config{
		Defaults:         &config.Defaults{TaskType: "general", Priority: "medium"},
		Keywords:         config.DefaultKeywordConfig(),
		AgentRegistry:    config.NewAgentRegistry(builtin.Agents),
		Assignments:      config.NewAssignmentMap(builtin.Assignments),
		TemplateRegistry: config.NewTemplateRegistry(builtin.Templates),
		Server: &config.ServerConfig{
			AdminToken:   adminToken,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
	}
}

func TestNewServerRouteRegistration(t *testing.T) {
	t.Run("admin routes absent without a token", func(t *testing.T) {
		s := NewServer(testServerConfig(""), nil, nil, nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/dispatch", nil)
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("health route answers with security headers", func(t *testing.T) {
		s := NewServer(testServerConfig(""), nil, nil, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)

		// No database attached, so the probe reports unhealthy.
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := NewServer(testServerConfig("sekrit"), nil, nil, nil, nil)

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dispatch", nil)
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dispatch", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/dispatch",
			strings.NewReader(`{"parameters": {}}`))
		req.Header.Set("Authorization", "Bearer sekrit")
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)

		// Past auth: the handler rejects the body for its missing action.
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, CodeMissingParameter, resp.Code)
		assert.Contains(t, resp.Message, "action")
	})

	t.Run("read endpoints stay open", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/system/warnings", nil)
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestValidateWiring(t *testing.T) {
	t.Run("reports every missing collaborator", func(t *testing.T) {
		s := NewServer(nil, nil, nil, nil, nil)

		err := s.ValidateWiring()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config")
		assert.Contains(t, err.Error(), "database client")
		assert.Contains(t, err.Error(), "task service")
		assert.Contains(t, err.Error(), "dlq service")
		assert.Contains(t, err.Error(), "webhook verifier")
		assert.Contains(t, err.Error(), "replay cache")
		assert.Contains(t, err.Error(), "parser")
		assert.Contains(t, err.Error(), "router")
	})

	t.Run("passes once everything is attached", func(t *testing.T) {
		cfg := testServerConfig("")
		s := NewServer(cfg, &database.Client{},
			services.NewTaskService(nil, nil),
			services.NewDLQService(nil, 0), nil)

		replay := webhook.NewMemoryReplayCache(time.Minute)
		t.Cleanup(replay.Close)

		s.SetWebhookVerifier(webhook.NewVerifier("key", 0))
		s.SetReplayCache(replay)
		s.SetParser(parser.NewParser(cfg))
		s.SetRouter(router.NewRouter(cfg))

		assert.NoError(t, s.ValidateWiring())
	})
}
