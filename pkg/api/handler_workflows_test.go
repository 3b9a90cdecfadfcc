package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/cache"
	"github.com/taskwire/taskwire/pkg/config"
)

func getWorkflows(t *testing.T, s *Server) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/workflows", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, s.workflowCatalogHandler(c))
	return rec
}

func TestWorkflowCatalogHandler(t *testing.T) {
	t.Run("empty registry returns empty array", func(t *testing.T) {
		s := &Server{cfg: &config.Config{}}
		rec := getWorkflows(t, s)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("returns builtin templates sorted by id", func(t *testing.T) {
		builtin := config.GetBuiltinConfig()
		s := &Server{cfg: &config.Config{
			TemplateRegistry: config.NewTemplateRegistry(builtin.Templates),
		}}
		rec := getWorkflows(t, s)

		assert.Equal(t, http.StatusOK, rec.Code)
		var catalog []*config.WorkflowTemplate
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog))
		require.NotEmpty(t, catalog)
		for i := 1; i < len(catalog); i++ {
			assert.LessOrEqual(t, catalog[i-1].ID, catalog[i].ID)
		}
	})

	t.Run("caches the rendered catalog", func(t *testing.T) {
		builtin := config.GetBuiltinConfig()
		mem, err := cache.NewMemoryCache(&config.CacheConfig{MaxEntries: 16})
		require.NoError(t, err)

		s := &Server{
			cfg: &config.Config{
				TemplateRegistry: config.NewTemplateRegistry(builtin.Templates),
			},
			resultCache: mem,
		}

		rec := getWorkflows(t, s)
		assert.Equal(t, http.StatusOK, rec.Code)

		var cached []*config.WorkflowTemplate
		ok, err := cache.GetJSON(context.Background(), mem, cache.NamespaceWorkflows, catalogCacheKey, &cached)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Len(t, cached, len(builtin.Templates))

		// Second request is served from the cache.
		rec = getWorkflows(t, s)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
