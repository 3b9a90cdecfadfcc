package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/ent/task"
	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/events"
	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// EventPublisher publishes task lifecycle events for live consumers.
// Implemented by events.EventPublisher; defined as an interface here to
// keep the queue testable with fakes.
type EventPublisher interface {
	PublishTaskStatus(ctx context.Context, taskID string, payload events.TaskStatusPayload) error
	PublishTaskProgress(ctx context.Context, taskID string, payload events.TaskProgressPayload) error
	PublishConversationAppended(ctx context.Context, taskID string, payload events.ConversationAppendedPayload) error
	PublishDeadLetterStatus(ctx context.Context, taskID string, payload events.DeadLetterStatusPayload) error
}

// Worker is a single queue worker that polls for and processes tasks.
type Worker struct {
	id             string
	podID          string
	client         *ent.Client
	config         *config.QueueConfig
	taskExecutor   TaskExecutor
	taskService    *services.TaskService
	eventPublisher EventPublisher
	pool           TaskRegistry
	stopCh         chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// NewWorker creates a new queue worker.
// eventPublisher may be nil (live event delivery disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor TaskExecutor, taskService *services.TaskService, pool TaskRegistry, eventPublisher EventPublisher) *Worker {
	return &Worker{
		id:             id,
		podID:          podID,
		client:         client,
		config:         cfg,
		taskExecutor:   executor,
		taskService:    taskService,
		eventPublisher: eventPublisher,
		pool:           pool,
		stopCh:         make(chan struct{}),
		status:         WorkerStatusIdle,
		lastActivity:   time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a task, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Task.Query().
		Where(task.StatusEQ(task.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking running tasks: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentTasks {
		return ErrAtCapacity
	}

	// 2. Claim next task
	claimed, err := w.claimNextTask(ctx)
	if err != nil {
		return err
	}

	log := slog.With("task_id", claimed.ID, "worker_id", w.id)
	log.Info("Task claimed", "priority", claimed.Priority, "task_type", claimed.TaskType)

	// Publish task status "running" to both task and global channels
	w.publishTaskStatus(ctx, claimed.ID, models.StatusRunning, models.StatusQueued, "")

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create task context with timeout
	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.TaskTimeout)
	defer cancelTask()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterTask(claimed.ID, cancelTask)
	defer w.pool.UnregisterTask(claimed.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(taskCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, claimed.ID)

	// 6. Execute task
	result := w.taskExecutor.Execute(taskCtx, claimed)

	// 6a. Nil-guard: synthesize a safe result if executor returned nil
	if result == nil {
		switch {
		case errors.Is(taskCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status: models.StatusFailed,
				Error:  fmt.Errorf("task timed out after %v", w.config.TaskTimeout),
			}
		case errors.Is(taskCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status: models.StatusFailed,
				Error:  context.Canceled,
			}
		default:
			result = &ExecutionResult{
				Status: models.StatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}

	// 7. Handle timeout
	if result.Status == "" && errors.Is(taskCtx.Err(), context.DeadlineExceeded) {
		result = &ExecutionResult{
			Status: models.StatusFailed,
			Error:  fmt.Errorf("task timed out after %v", w.config.TaskTimeout),
		}
	}

	// 8. Handle cancellation
	if result.Status == "" && errors.Is(taskCtx.Err(), context.Canceled) {
		result = &ExecutionResult{
			Status: models.StatusFailed,
			Error:  context.Canceled,
		}
	}

	// 9. Stop heartbeat
	cancelHeartbeat()

	// 10. Update terminal status (use background context — task ctx may be cancelled)
	if err := w.finalizeTask(context.Background(), claimed.ID, result); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			// Task was finalized elsewhere (API cancellation writes failed
			// directly); keep whatever state won the race.
			log.Info("Task already finalized", "status", result.Status)
		} else {
			log.Error("Failed to update task terminal status", "error", err)
			return err
		}
	} else {
		// 10a. Publish terminal task status event
		var errMsg string
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		w.publishTaskStatus(context.Background(), claimed.ID, result.Status, models.StatusRunning, errMsg)
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task processing complete", "status", result.Status)
	return nil
}

// claimNextTask atomically claims the next queued task using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextTask(ctx context.Context) (*ent.Task, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Highest priority class first, FIFO within a class (matches the partial
	// claim index on the tasks table).
	claimed, err := tx.Task.Query().
		Where(task.StatusEQ(task.StatusQueued)).
		Order(ent.Desc(task.FieldPriorityRank), ent.Asc(task.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksAvailable
		}
		return nil, fmt.Errorf("failed to query queued task: %w", err)
	}

	// Claim: set running, worker_id, started_at, last_heartbeat_at.
	// started_at is preserved across orphan requeues (first claim wins).
	now := time.Now()
	update := claimed.Update().
		SetStatus(task.StatusRunning).
		SetWorkerID(w.id).
		SetLastHeartbeatAt(now)
	if claimed.StartedAt == nil {
		update = update.SetStartedAt(now)
	}
	claimed, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return claimed, nil
}

// runHeartbeat periodically updates last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Task.UpdateOneID(taskID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// finalizeTask writes the terminal task status through the task service so
// the status machine, processed flag, and cache invalidation all apply.
func (w *Worker) finalizeTask(ctx context.Context, taskID string, result *ExecutionResult) error {
	var errMsg string
	if result.Error != nil {
		errMsg = result.Error.Error()
	}
	_, err := w.taskService.UpdateStatus(ctx, taskID, result.Status, errMsg)
	return err
}

// publishTaskStatus publishes a task status event to both the task-specific
// and global channels. Non-blocking: errors are logged.
func (w *Worker) publishTaskStatus(ctx context.Context, taskID string, status, previous models.TaskStatus, errMsg string) {
	if w.eventPublisher == nil {
		return
	}
	if err := w.eventPublisher.PublishTaskStatus(ctx, taskID, events.TaskStatusPayload{
		BasePayload: events.BasePayload{
			Type:      events.EventTypeTaskStatus,
			TaskID:    taskID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Status:         string(status),
		PreviousStatus: string(previous),
		WorkerID:       w.id,
		ErrorMessage:   errMsg,
	}); err != nil {
		slog.Warn("Failed to publish task status",
			"task_id", taskID, "status", status, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
