package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/ent/task"
	"github.com/taskwire/taskwire/pkg/events"
	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/services"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned tasks.
// All pods run this independently — recovery is idempotent because
// RequeueOrphan re-checks the row state under a lock.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running tasks with stale heartbeats and
// requeues them while the requeue budget lasts; past the budget they fail.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	orphans, err := p.taskService.FindOrphanedTasks(ctx, p.config.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("failed to query orphaned tasks: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned tasks", "count", len(orphans))

	recovered := 0
	for _, orphan := range orphans {
		if err := p.recoverOrphanedTask(ctx, orphan); err != nil {
			slog.Error("Failed to recover orphaned task",
				"task_id", orphan.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedTask requeues a single orphaned task (or fails it once the
// requeue budget is exhausted) and publishes the resulting status.
func (p *WorkerPool) recoverOrphanedTask(ctx context.Context, orphan *ent.Task) error {
	lastHeartbeat := "unknown"
	if orphan.LastHeartbeatAt != nil {
		lastHeartbeat = orphan.LastHeartbeatAt.Format(time.RFC3339)
	}

	workerID := "unknown"
	if orphan.WorkerID != nil {
		workerID = *orphan.WorkerID
	}

	recovered, err := p.taskService.RequeueOrphan(ctx, orphan.ID, p.config.OrphanMaxRequeues)
	if err != nil {
		return err
	}
	if recovered == nil {
		// Another pod got there first, or the worker finished after all.
		return nil
	}

	slog.Warn("Orphaned task recovered",
		"task_id", orphan.ID,
		"old_worker_id", workerID,
		"last_heartbeat", lastHeartbeat,
		"new_status", recovered.Status,
		"requeue_count", recovered.RequeueCount)

	p.publishOrphanStatus(ctx, recovered)
	return nil
}

// publishOrphanStatus emits a status event for a recovered orphan.
func (p *WorkerPool) publishOrphanStatus(ctx context.Context, recovered *ent.Task) {
	if p.eventPublisher == nil {
		return
	}
	var errMsg string
	if recovered.ErrorMessage != nil {
		errMsg = *recovered.ErrorMessage
	}
	if err := p.eventPublisher.PublishTaskStatus(ctx, recovered.ID, events.TaskStatusPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeTaskStatus,
			TaskID:    recovered.ID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Status:         string(recovered.Status),
		PreviousStatus: string(models.StatusRunning),
		ErrorMessage:   errMsg,
	}); err != nil {
		slog.Warn("Failed to publish orphan recovery status",
			"task_id", recovered.ID, "error", err)
	}
}

// RecoverStartupOrphans requeues tasks this pod was running when it previously
// crashed. Called once during startup, before the worker pool begins polling,
// so the crashed run's tasks rejoin the queue without waiting a full orphan
// sweep interval.
func RecoverStartupOrphans(ctx context.Context, client *ent.Client, taskService *services.TaskService, podID string, maxRequeues int) error {
	orphans, err := client.Task.Query().
		Where(
			task.StatusEQ(task.StatusRunning),
			task.WorkerIDHasPrefix(podID+"-worker-"),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, orphan := range orphans {
		recovered, err := taskService.RequeueOrphan(ctx, orphan.ID, maxRequeues)
		if err != nil {
			slog.Error("Failed to recover startup orphan",
				"task_id", orphan.ID,
				"error", err)
			continue
		}
		if recovered == nil {
			continue
		}
		slog.Info("Startup orphan recovered",
			"task_id", orphan.ID,
			"new_status", recovered.Status,
			"requeue_count", recovered.RequeueCount)
	}

	return nil
}
