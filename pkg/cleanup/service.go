// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/services"
)

// Service periodically enforces retention policies:
//   - Hard-deletes terminal tasks past the task retention window
//     (their notes, conversation entries, dead letters, and audit
//     events cascade)
//   - Removes audit events past their own, shorter window
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config       *config.RetentionConfig
	taskService  *services.TaskService
	auditService *services.AuditService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, taskService *services.TaskService, auditService *services.AuditService) *Service {
	return &Service{
		config:       cfg,
		taskService:  taskService,
		auditService: auditService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.loop(ctx)

	slog.Info("Cleanup service started",
		"task_max_age", s.config.TaskMaxAge,
		"event_max_age", s.config.EventMaxAge,
		"interval", s.config.CheckInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

// loop sweeps once on startup, then once per interval.
func (s *Service) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.config.CheckInterval)
	defer ticker.Stop()

	for {
		s.sweep()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// sweep runs one pass of every retention policy. Each pass gets a fresh
// context so shutdown does not abort deletes already in flight.
func (s *Service) sweep() {
	ctx := context.Background()
	s.purgeOldTasks(ctx)
	s.cleanupExpiredEvents(ctx)
}

func (s *Service) purgeOldTasks(ctx context.Context) {
	count, err := s.taskService.PurgeTerminalTasks(ctx, s.config.TaskMaxAge)
	if err != nil {
		slog.Error("Retention: task purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old terminal tasks", "count", count)
	}
}

func (s *Service) cleanupExpiredEvents(ctx context.Context) {
	count, err := s.auditService.CleanupExpiredEvents(ctx, s.config.EventMaxAge)
	if err != nil {
		slog.Error("Retention: audit event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up expired audit events", "count", count)
	}
}
