// Package e2e provides end-to-end test infrastructure for the taskwire
// pipeline: a full instance wired against a per-test Postgres schema, a
// scripted LLM backend, and a capturing mailer.
package e2e

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/pkg/api"
	"github.com/taskwire/taskwire/pkg/cache"
	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/database"
	"github.com/taskwire/taskwire/pkg/events"
	"github.com/taskwire/taskwire/pkg/mailer"
	"github.com/taskwire/taskwire/pkg/parser"
	"github.com/taskwire/taskwire/pkg/queue"
	"github.com/taskwire/taskwire/pkg/resilience"
	"github.com/taskwire/taskwire/pkg/router"
	"github.com/taskwire/taskwire/pkg/services"
	"github.com/taskwire/taskwire/pkg/webhook"
	testdb "github.com/taskwire/taskwire/test/database"
	"github.com/taskwire/taskwire/test/util"
)

const (
	// testSigningKey signs inbound webhook envelopes built by the helpers.
	testSigningKey = "e2e-webhook-signing-key"

	// testAdminToken authorizes the admin-gated endpoints.
	testAdminToken = "e2e-admin-token"

	// testMailFrom is the sender identity of the capturing mailer.
	testMailFrom = "taskwire@example.test"
)

// TestApp boots a complete taskwire instance for e2e testing.
type TestApp struct {
	// Core
	Config    *config.Config
	DBClient  *database.Client
	EntClient *ent.Client

	// Mocks / test wiring
	LLMClient *ScriptedLLMClient
	Mailer    *CapturingMailer

	// Real infrastructure
	EventPublisher *events.EventPublisher
	NotifyListener *events.NotifyListener
	WorkerPool     *queue.WorkerPool
	Breakers       *resilience.BreakerManager
	TaskService    *services.TaskService
	DLQService     *services.DLQService
	Warnings       *services.SystemWarningsService
	Server         *api.Server

	// Runtime
	BaseURL string // e.g. "http://127.0.0.1:54321"

	notifications *notificationLog
	t             *testing.T
}

// notification is one NOTIFY broadcast observed by the test listener.
type notification struct {
	Channel string
	Payload []byte
}

// notificationLog collects NOTIFY broadcasts. The test database is shared
// across parallel tests, so assertions must filter by task id.
type notificationLog struct {
	mu      sync.Mutex
	entries []notification
}

func (l *notificationLog) add(channel string, payload []byte) {
	buf := make([]byte, len(payload))
	copy(buf, payload)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, notification{Channel: channel, Payload: buf})
}

func (l *notificationLog) snapshot() []notification {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]notification, len(l.entries))
	copy(out, l.entries)
	return out
}

// Notifications returns a copy of every NOTIFY broadcast observed so far.
func (app *TestApp) Notifications() []notification {
	return app.notifications.snapshot()
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	cfg                *config.Config
	llmClient          *ScriptedLLMClient
	workerCount        int
	maxConcurrentTasks int
	taskTimeout        time.Duration
	dlqRedriveInterval time.Duration
	dbClient           *database.Client // injected DB client (for multi-replica tests)
	podID              string           // custom pod ID (for multi-replica tests)
	withoutMailer      bool
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithConfig sets a custom config.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(c *testAppConfig) { c.cfg = cfg }
}

// WithLLMClient sets a pre-scripted LLM client.
func WithLLMClient(client *ScriptedLLMClient) TestAppOption {
	return func(c *testAppConfig) { c.llmClient = client }
}

// WithWorkerCount sets the number of worker pool goroutines.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithMaxConcurrentTasks sets the global in-flight task cap enforced at
// claim time.
func WithMaxConcurrentTasks(n int) TestAppOption {
	return func(c *testAppConfig) { c.maxConcurrentTasks = n }
}

// WithTaskTimeout bounds a single task's execution.
func WithTaskTimeout(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.taskTimeout = d }
}

// WithDLQRedriveInterval enables the worker pool's automatic redrive loop.
// The default is off so tests drive redrives through the admin API.
func WithDLQRedriveInterval(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.dlqRedriveInterval = d }
}

// WithDBClient injects a pre-created database client, skipping the default
// per-test schema creation. Used for multi-replica tests where multiple
// TestApp instances share the same database schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// WithPodID overrides the auto-generated pod ID. Required for multi-replica
// tests so each replica gets a distinct identity for worker claiming and
// orphan detection.
func WithPodID(id string) TestAppOption {
	return func(c *testAppConfig) { c.podID = id }
}

// WithoutMailer disables outbound delivery entirely; finished tasks stay
// completed instead of moving to dispatched.
func WithoutMailer() TestAppOption {
	return func(c *testAppConfig) { c.withoutMailer = true }
}

// NewTestApp creates and starts a full taskwire test instance.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	// Apply options.
	tc := &testAppConfig{
		workerCount: 1,
		taskTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.maxConcurrentTasks == 0 {
		tc.maxConcurrentTasks = 8
	}

	// Default config if not provided.
	if tc.cfg == nil {
		tc.cfg = defaultTestConfig()
	}

	// Ensure QueueConfig exists with test-appropriate settings.
	if tc.cfg.Queue == nil {
		tc.cfg.Queue = &config.QueueConfig{}
	}
	tc.cfg.Queue.WorkerCount = tc.workerCount
	tc.cfg.Queue.MaxConcurrentTasks = tc.maxConcurrentTasks
	tc.cfg.Queue.PollInterval = 100 * time.Millisecond
	tc.cfg.Queue.PollIntervalJitter = 50 * time.Millisecond
	tc.cfg.Queue.TaskTimeout = tc.taskTimeout
	tc.cfg.Queue.HeartbeatInterval = 5 * time.Second
	tc.cfg.Queue.GracefulShutdownTimeout = 10 * time.Second
	tc.cfg.Queue.OrphanDetectionInterval = 1 * time.Minute
	tc.cfg.Queue.OrphanThreshold = 1 * time.Minute
	tc.cfg.Queue.OrphanMaxRequeues = 3
	tc.cfg.Queue.DLQRedriveInterval = tc.dlqRedriveInterval
	tc.cfg.Queue.DLQMaxAttempts = 3

	// Default LLM client if not provided.
	if tc.llmClient == nil {
		tc.llmClient = NewScriptedLLMClient()
	}

	// 1. Database — need both *database.Client (for the API server) and
	// *ent.Client (for services and the worker pool).
	var dbClient *database.Client
	if tc.dbClient != nil {
		dbClient = tc.dbClient
	} else {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client

	// 2. Caches — memory result cache plus memory replay cache.
	resultCache, err := cache.NewMemoryCache(tc.cfg.Cache)
	require.NoError(t, err)
	replayCache := webhook.NewMemoryReplayCache(tc.cfg.Cache.ReplayTTL)

	// 3. Event publishing — real, backed by the test DB.
	eventPublisher := events.NewEventPublisher(dbClient.DB())

	// 4. NotifyListener — real, dedicated pgx connection, recording every
	// broadcast for assertions.
	notifications := &notificationLog{}
	notifyListener := events.NewNotifyListener(util.GetBaseConnectionString(t), notifications.add)
	ctx := context.Background()
	require.NoError(t, notifyListener.Start(ctx))
	require.NoError(t, notifyListener.Subscribe(ctx, events.GlobalTasksChannel))
	require.NoError(t, notifyListener.Subscribe(ctx, events.DeadLetterChannel))

	// 5. Domain services.
	taskService := services.NewTaskService(entClient, resultCache)
	dlqService := services.NewDLQService(entClient, tc.cfg.Queue.DLQMaxAttempts)
	auditService := services.NewAuditService(entClient)
	warnings := services.NewSystemWarningsService()

	// 6. Outbound mail — capturing mailer unless disabled.
	capturingMailer := NewCapturingMailer()
	var mailerService *mailer.Service
	if !tc.withoutMailer {
		mailerService = mailer.NewServiceWithMailer(capturingMailer, testMailFrom)
	}

	// 7. Breakers and executor.
	breakers := resilience.NewBreakerManager(tc.cfg.Resilience.Breaker)
	executor := queue.NewRealTaskExecutor(
		tc.cfg, tc.llmClient, taskService, dlqService,
		breakers, resultCache, mailerService, eventPublisher, warnings,
	)

	// 8. Worker pool.
	podID := tc.podID
	if podID == "" {
		podID = fmt.Sprintf("e2e-test-%s", t.Name())
	}
	workerPool := queue.NewWorkerPool(podID, entClient, tc.cfg.Queue, executor, taskService, dlqService, eventPublisher)
	require.NoError(t, workerPool.Start(ctx))

	// 9. HTTP server on a random port.
	server := api.NewServer(tc.cfg, dbClient, taskService, dlqService, workerPool)
	server.SetWebhookVerifier(webhook.NewVerifier(tc.cfg.Webhook.SigningKey, tc.cfg.Webhook.MaxAge))
	server.SetReplayCache(replayCache)
	server.SetParser(parser.NewParser(tc.cfg))
	server.SetRouter(router.NewRouter(tc.cfg))
	server.SetWarningsService(warnings)
	server.SetAuditService(auditService)
	server.SetResultCache(resultCache)
	server.SetBreakerManager(breakers)
	server.SetLLMClient(tc.llmClient)

	require.NoError(t, server.ValidateWiring(), "server wiring incomplete, missing a Set* call?")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = server.StartWithListener(ln)
	}()

	app := &TestApp{
		Config:         tc.cfg,
		DBClient:       dbClient,
		EntClient:      entClient,
		LLMClient:      tc.llmClient,
		Mailer:         capturingMailer,
		EventPublisher: eventPublisher,
		NotifyListener: notifyListener,
		WorkerPool:     workerPool,
		Breakers:       breakers,
		TaskService:    taskService,
		DLQService:     dlqService,
		Warnings:       warnings,
		Server:         server,
		BaseURL:        fmt.Sprintf("http://%s", ln.Addr().String()),
		notifications:  notifications,
		t:              t,
	}

	// Register cleanup in reverse-creation order.
	t.Cleanup(func() {
		workerPool.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		notifyListener.Stop(context.Background())
		replayCache.Close()
		_ = resultCache.Close()
		// DB cleanup handled by testdb.NewTestClient/SetupTestDatabase
	})

	return app
}

// defaultTestConfig creates a config backed by the built-in registries with
// retry delays collapsed to keep failure-path tests fast. Tests override it
// via WithConfig when they need different tuning.
func defaultTestConfig() *config.Config {
	builtin := config.GetBuiltinConfig()

	resilienceCfg := config.DefaultResilienceConfig()
	resilienceCfg.AgentRetry = config.RetryConfig{MaxAttempts: 2, BaseDelay: 5 * time.Millisecond, MaxDelay: 25 * time.Millisecond, ExpBase: 2}
	resilienceCfg.RemoteRetry = config.RetryConfig{MaxAttempts: 2, BaseDelay: 5 * time.Millisecond, MaxDelay: 25 * time.Millisecond, ExpBase: 2}
	// High threshold keeps breakers closed through scripted failures;
	// breaker-focused tests tighten it via WithConfig.
	resilienceCfg.Breaker = config.BreakerConfig{FailureThreshold: 50, RecoveryTimeout: 250 * time.Millisecond}

	return &config.Config{
		Defaults: &config.Defaults{
			TaskType: builtin.DefaultTaskType,
			Priority: builtin.DefaultPriority,
			Masking:  config.DefaultMaskingConfig(),
		},
		Keywords:   config.DefaultKeywordConfig(),
		Queue:      config.DefaultQueueConfig(),
		Resilience: resilienceCfg,
		Cache:      config.DefaultCacheConfig(),
		Server: &config.ServerConfig{
			Host:         "127.0.0.1",
			AdminToken:   testAdminToken,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Webhook: &config.WebhookConfig{
			SigningKey: testSigningKey,
			MaxAge:     2 * time.Minute,
		},
		Mailer: config.DefaultMailerConfig(),
		LLM: &config.LLMConfig{
			Address:      "passthrough:e2e",
			DefaultModel: "scripted-model",
			CallTimeout:  10 * time.Second,
			MaxTokens:    512,
		},
		AgentRegistry:    config.NewAgentRegistry(builtin.Agents),
		Assignments:      config.NewAssignmentMap(builtin.Assignments),
		TemplateRegistry: config.NewTemplateRegistry(builtin.Templates),
	}
}
