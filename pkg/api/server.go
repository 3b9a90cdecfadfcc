package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/taskwire/taskwire/pkg/agent"
	"github.com/taskwire/taskwire/pkg/cache"
	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/database"
	"github.com/taskwire/taskwire/pkg/parser"
	"github.com/taskwire/taskwire/pkg/queue"
	"github.com/taskwire/taskwire/pkg/resilience"
	"github.com/taskwire/taskwire/pkg/router"
	"github.com/taskwire/taskwire/pkg/services"
	"github.com/taskwire/taskwire/pkg/webhook"
)

// Server is the HTTP surface: the inbound webhook, the task/DLQ read API,
// the admin dispatch API, and the health probe. Collaborators are injected
// by the composition root; handlers nil-guard the optional ones.
type Server struct {
	cfg  *config.Config
	echo *echo.Echo
	http *http.Server

	dbClient    *database.Client
	taskService *services.TaskService
	dlqService  *services.DLQService
	workerPool  *queue.WorkerPool

	verifier       *webhook.Verifier
	replayCache    webhook.ReplayCache
	parser         *parser.Parser
	router         *router.Router
	warningService *services.SystemWarningsService
	auditService   *services.AuditService
	resultCache    cache.Cache
	breakers       *resilience.BreakerManager
	llmClient      agent.LLMClient
}

// NewServer creates the API server and registers its routes. Remaining
// collaborators are attached with the Set* methods before Start.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	taskService *services.TaskService,
	dlqService *services.DLQService,
	workerPool *queue.WorkerPool,
) *Server {
	s := &Server{
		cfg:         cfg,
		dbClient:    dbClient,
		taskService: taskService,
		dlqService:  dlqService,
		workerPool:  workerPool,
	}

	e := echo.New()
	e.Use(requestID(), securityHeaders())
	s.echo = e
	s.routes()

	s.http = &http.Server{Handler: e}
	if cfg != nil && cfg.Server != nil {
		s.http.ReadTimeout = cfg.Server.ReadTimeout
		s.http.WriteTimeout = cfg.Server.WriteTimeout
	}
	return s
}

// SetWebhookVerifier attaches the inbound signature verifier.
func (s *Server) SetWebhookVerifier(v *webhook.Verifier) { s.verifier = v }

// SetReplayCache attaches the webhook replay cache.
func (s *Server) SetReplayCache(rc webhook.ReplayCache) { s.replayCache = rc }

// SetParser attaches the email parser.
func (s *Server) SetParser(p *parser.Parser) { s.parser = p }

// SetRouter attaches the NLU router used by the dispatch API.
func (s *Server) SetRouter(r *router.Router) { s.router = r }

// SetWarningsService attaches the system warnings service.
func (s *Server) SetWarningsService(w *services.SystemWarningsService) { s.warningService = w }

// SetAuditService attaches the audit trail service.
func (s *Server) SetAuditService(a *services.AuditService) { s.auditService = a }

// SetResultCache attaches the result cache used for catalog reads and stats.
func (s *Server) SetResultCache(c cache.Cache) { s.resultCache = c }

// SetBreakerManager attaches the shared circuit breaker manager.
func (s *Server) SetBreakerManager(m *resilience.BreakerManager) { s.breakers = m }

// SetLLMClient attaches the LLM backend used by the compose_draft action.
func (s *Server) SetLLMClient(client agent.LLMClient) { s.llmClient = client }

// ValidateWiring verifies every collaborator the serving path requires is
// attached. The composition root calls it before Start so a forgotten Set*
// fails loudly instead of as a nil dereference under traffic.
func (s *Server) ValidateWiring() error {
	var missing []string
	if s.cfg == nil {
		missing = append(missing, "config")
	}
	if s.dbClient == nil {
		missing = append(missing, "database client")
	}
	if s.taskService == nil {
		missing = append(missing, "task service")
	}
	if s.dlqService == nil {
		missing = append(missing, "dlq service")
	}
	if s.verifier == nil {
		missing = append(missing, "webhook verifier")
	}
	if s.replayCache == nil {
		missing = append(missing, "replay cache")
	}
	if s.parser == nil {
		missing = append(missing, "parser")
	}
	if s.router == nil {
		missing = append(missing, "router")
	}
	if len(missing) > 0 {
		return fmt.Errorf("server missing required wiring: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (s *Server) routes() {
	s.echo.GET("/health", s.healthHandler)
	s.echo.POST("/webhooks/email", s.webhookHandler)

	v1 := s.echo.Group("/api/v1")
	v1.GET("/tasks", s.listTasksHandler)
	v1.GET("/tasks/:id", s.getTaskHandler)
	v1.GET("/tasks/:id/notes", s.taskNotesHandler)
	v1.GET("/tasks/:id/conversation", s.taskConversationHandler)
	v1.POST("/tasks/:id/cancel", s.cancelTaskHandler)
	v1.GET("/workflows", s.workflowCatalogHandler)
	v1.GET("/dlq", s.listDeadLettersHandler)
	v1.GET("/dlq/stats", s.dlqStatsHandler)
	v1.GET("/system/warnings", s.systemWarningsHandler)
	v1.GET("/system/cache", s.cacheStatsHandler)
	v1.GET("/system/breakers", s.breakerStatusHandler)

	// Mutating admin surface. An empty token disables these routes entirely
	// rather than leaving them open.
	if s.cfg != nil && s.cfg.Server != nil && s.cfg.Server.AdminToken != "" {
		admin := s.echo.Group("/api/v1", adminAuth(s.cfg.Server.AdminToken))
		admin.POST("/dispatch", s.dispatchHandler)
		admin.POST("/dlq/retry", s.dlqRetryHandler)
		admin.POST("/dlq/:id/abandon", s.dlqAbandonHandler)
		admin.POST("/system/breakers/reset", s.breakerResetHandler)
	}
}

// Start serves HTTP on addr until Shutdown or a listener failure. It blocks,
// returning http.ErrServerClosed after a clean Shutdown.
func (s *Server) Start(addr string) error {
	s.http.Addr = addr
	return s.http.ListenAndServe()
}

// StartWithListener serves on a caller-provided listener. Tests use it to
// bind an ephemeral port.
func (s *Server) StartWithListener(ln net.Listener) error {
	return s.http.Serve(ln)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
