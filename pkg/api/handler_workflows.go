package api

import (
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/taskwire/taskwire/pkg/cache"
	"github.com/taskwire/taskwire/pkg/config"
)

// catalogCacheKey keys the rendered template catalog in the workflows
// namespace. The catalog is immutable per process, so one key suffices.
const catalogCacheKey = "catalog"

// workflowCatalogHandler handles GET /api/v1/workflows: the read-only
// template catalog, served through the result cache when one is attached.
func (s *Server) workflowCatalogHandler(c *echo.Context) error {
	ctx := c.Request().Context()

	if s.resultCache != nil {
		var cached []*config.WorkflowTemplate
		if ok, err := cache.GetJSON(ctx, s.resultCache, cache.NamespaceWorkflows, catalogCacheKey, &cached); err == nil && ok {
			return c.JSON(http.StatusOK, cached)
		}
	}

	catalog := []*config.WorkflowTemplate{}
	if s.cfg != nil && s.cfg.TemplateRegistry != nil {
		catalog = s.cfg.TemplateRegistry.GetAll()
	}

	if s.resultCache != nil {
		if err := cache.SetJSON(ctx, s.resultCache, cache.NamespaceWorkflows, catalogCacheKey, catalog); err != nil {
			slog.Warn("Failed to cache workflow catalog", "error", err)
		}
	}

	return c.JSON(http.StatusOK, catalog)
}
