// Taskwire orchestrator server — accepts signed email webhooks, manages
// queue workers, and orchestrates multi-agent task processing.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/taskwire/taskwire/pkg/agent"
	"github.com/taskwire/taskwire/pkg/api"
	"github.com/taskwire/taskwire/pkg/cache"
	"github.com/taskwire/taskwire/pkg/cleanup"
	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/database"
	"github.com/taskwire/taskwire/pkg/events"
	"github.com/taskwire/taskwire/pkg/mailer"
	"github.com/taskwire/taskwire/pkg/parser"
	"github.com/taskwire/taskwire/pkg/queue"
	"github.com/taskwire/taskwire/pkg/resilience"
	"github.com/taskwire/taskwire/pkg/router"
	"github.com/taskwire/taskwire/pkg/services"
	"github.com/taskwire/taskwire/pkg/version"
	"github.com/taskwire/taskwire/pkg/webhook"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()

	slog.Info("Starting taskwire",
		"version", version.GitCommit,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Initialize caches. The result cache and the webhook replay cache
	// share the Redis client when the shared backend is configured.
	var (
		resultCache cache.Cache
		replayCache webhook.ReplayCache
	)
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			slog.Error("Failed to connect to redis", "addr", cfg.Cache.RedisAddr, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Error closing redis client", "error", err)
			}
		}()
		resultCache = cache.NewRedisCacheWithClient(redisClient, cfg.Cache)
		replayCache = webhook.NewRedisReplayCache(redisClient, cfg.Cache.ReplayTTL, slog.Default())
	default:
		memCache, err := cache.NewMemoryCache(cfg.Cache)
		if err != nil {
			slog.Error("Failed to initialize memory cache", "error", err)
			os.Exit(1)
		}
		memReplay := webhook.NewMemoryReplayCache(cfg.Cache.ReplayTTL)
		defer memReplay.Close()
		resultCache, replayCache = memCache, memReplay
	}
	slog.Info("Cache initialized", "backend", string(cfg.Cache.Backend))

	// 4. Initialize domain services
	taskService := services.NewTaskService(dbClient.Client, resultCache)
	dlqService := services.NewDLQService(dbClient.Client, cfg.Queue.DLQMaxAttempts)
	auditService := services.NewAuditService(dbClient.Client)
	warningsService := services.NewSystemWarningsService()
	slog.Info("Services initialized")

	// 5. One-time startup orphan recovery, before the worker pool begins
	// polling, so a crashed run's tasks rejoin the queue immediately.
	if err := queue.RecoverStartupOrphans(ctx, dbClient.Client, taskService, podID, cfg.Queue.OrphanMaxRequeues); err != nil {
		slog.Error("Failed to recover startup orphans", "error", err)
		// Non-fatal: the periodic orphan sweep picks up whatever this missed
	}

	// 6. Create LLM client
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on first RPC call
	llmClient, err := agent.NewGRPCLLMClient(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Address, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", cfg.LLM.Address)

	// 7. Initialize event infrastructure. The NOTIFY listener taps the
	// broadcast channels so operators can observe the live feed in the logs.
	eventPublisher := events.NewEventPublisher(dbClient.DB())

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), func(channel string, payload []byte) {
		slog.Debug("Event notification", "channel", channel, "payload_bytes", len(payload))
	})
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	for _, channel := range []string{events.GlobalTasksChannel, events.DeadLetterChannel} {
		if err := notifyListener.Subscribe(ctx, channel); err != nil {
			slog.Warn("Failed to subscribe to NOTIFY channel", "channel", channel, "error", err)
		}
	}
	slog.Info("Event infrastructure initialized")

	// 8. Mail delivery is optional; without a provider, results are stored
	// and retrievable over the API only.
	mailerService := mailer.NewService(cfg.Mailer)
	if mailerService.Enabled() {
		slog.Info("Mail delivery enabled", "domain", cfg.Mailer.Domain)
	} else {
		slog.Info("Mail delivery disabled, results are stored only")
	}

	// 9. Create executor and start worker pool (before HTTP server)
	breakers := resilience.NewBreakerManager(cfg.Resilience.Breaker)
	executor := queue.NewRealTaskExecutor(cfg, llmClient, taskService, dlqService,
		breakers, resultCache, mailerService, eventPublisher, warningsService)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor,
		taskService, dlqService, eventPublisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 10. Start retention cleanup
	var cleanupService *cleanup.Service
	if cfg.Retention.RetentionEnabled() {
		cleanupService = cleanup.NewService(cfg.Retention, taskService, auditService)
		cleanupService.Start(ctx)
	} else {
		slog.Info("Retention cleanup disabled")
	}

	// 11. Create HTTP server
	if cfg.Webhook.SigningKey == "" {
		slog.Warn("Webhook signing key not configured, inbound deliveries will be rejected")
	}

	httpServer := api.NewServer(cfg, dbClient, taskService, dlqService, workerPool)
	httpServer.SetWebhookVerifier(webhook.NewVerifier(cfg.Webhook.SigningKey, cfg.Webhook.MaxAge))
	httpServer.SetReplayCache(replayCache)
	httpServer.SetParser(parser.NewParser(cfg))
	httpServer.SetRouter(router.NewRouter(cfg))
	httpServer.SetWarningsService(warningsService)
	httpServer.SetAuditService(auditService)
	httpServer.SetResultCache(resultCache)
	httpServer.SetBreakerManager(breakers)
	httpServer.SetLLMClient(llmClient)

	if err := httpServer.ValidateWiring(); err != nil {
		slog.Error("HTTP server wiring incomplete", "error", err)
		os.Exit(1)
	}

	// 12. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Taskwire started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 13. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 14. Graceful shutdown
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	// Stop accepting new cleanup runs first; they are short and cheap.
	if cleanupService != nil {
		cleanupService.Stop()
	}

	// Stop worker pool (wait for active tasks to complete)
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete tasks will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
