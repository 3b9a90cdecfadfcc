package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/ent/task"
	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/services"
)

// WorkerPool owns the queue workers for one pod plus the background loops
// that keep the queue healthy: orphan detection and dead-letter redrive.
// It also keeps the cancel registry that lets the cancel API reach a task
// running on this pod.
type WorkerPool struct {
	podID          string
	client         *ent.Client
	config         *config.QueueConfig
	taskExecutor   TaskExecutor
	taskService    *services.TaskService
	dlqService     *services.DLQService
	eventPublisher EventPublisher
	workers        []*Worker
	stopCh         chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup

	// Cancel registry, task id to cancel function.
	activeTasks map[string]context.CancelFunc
	mu          sync.RWMutex
	started     bool

	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
// dlqService may be nil (redrive disabled); eventPublisher may be nil.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor TaskExecutor, taskService *services.TaskService, dlqService *services.DLQService, eventPublisher EventPublisher) *WorkerPool {
	return &WorkerPool{
		podID:          podID,
		client:         client,
		config:         cfg,
		taskExecutor:   executor,
		taskService:    taskService,
		dlqService:     dlqService,
		eventPublisher: eventPublisher,
		workers:        make([]*Worker, 0, cfg.WorkerCount),
		stopCh:         make(chan struct{}),
		activeTasks:    make(map[string]context.CancelFunc),
	}
}

// Start spawns the worker goroutines and the background loops. Calling it
// on a started pool is a logged no-op.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.taskExecutor, p.taskService, p, p.eventPublisher)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.spawn(ctx, p.runOrphanDetection)
	if p.dlqService != nil && p.config.DLQRedriveInterval > 0 {
		p.spawn(ctx, p.runDeadLetterRedrive)
	}

	slog.Info("Worker pool started")
	return nil
}

// spawn runs a background loop under the pool's WaitGroup so Stop can wait
// for it.
func (p *WorkerPool) spawn(ctx context.Context, loop func(context.Context)) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		loop(ctx)
	}()
}

// Stop tells every worker to stop and blocks until they and the background
// loops exit. Workers finish the task they hold before returning.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	if active := p.getActiveTaskIDs(); len(active) > 0 {
		slog.Info("Waiting for active tasks to complete",
			"count", len(active),
			"task_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterTask stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterTask(taskID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeTasks[taskID] = cancel
}

// UnregisterTask removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterTask(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeTasks, taskID)
}

// CancelTask fires the registered cancel function for a task running on
// this pod. Reports whether the task was found here; a false return means
// another pod holds it.
func (p *WorkerPool) CancelTask(taskID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeTasks[taskID]; ok {
		cancel()
		return true
	}
	return false
}

// Health reports pool status. An unreachable database marks the pool
// unhealthy since workers cannot claim without it.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	var dbErr error
	queueDepth, err := p.client.Task.Query().
		Where(task.StatusEQ(task.StatusQueued)).
		Count(ctx)
	if err != nil {
		dbErr = fmt.Errorf("queue depth query failed: %w", err)
	}

	activeTasks, err := p.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusRunning),
			task.WorkerIDHasPrefix(p.podID+"-worker-"),
		).
		Count(ctx)
	if err != nil && dbErr == nil {
		dbErr = fmt.Errorf("active tasks query failed: %w", err)
	}
	if dbErr != nil {
		slog.Error("Queue health check could not reach the database",
			"pod_id", p.podID,
			"error", dbErr)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		workerStats[i] = worker.Health()
		if workerStats[i].Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	p.orphans.mu.Lock()
	lastScan := p.orphans.lastOrphanScan
	recovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if dbErr != nil {
		dbError = dbErr.Error()
	}

	return &PoolHealth{
		IsHealthy:        dbErr == nil && len(p.workers) > 0 && activeTasks <= p.config.MaxConcurrentTasks,
		DBReachable:      dbErr == nil,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveTasks:      activeTasks,
		MaxConcurrent:    p.config.MaxConcurrentTasks,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastScan,
		OrphansRecovered: recovered,
	}
}

// getActiveTaskIDs snapshots the cancel registry for shutdown logging.
func (p *WorkerPool) getActiveTaskIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeTasks))
	for id := range p.activeTasks {
		ids = append(ids, id)
	}
	return ids
}
