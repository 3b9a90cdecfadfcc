// Package queue provides the durable task queue: worker pool, claiming,
// heartbeats, orphan recovery, dead-letter redrive, and task execution.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/workflow"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no queued tasks are ready to claim.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrAtCapacity indicates this pod has reached its concurrent task limit.
	ErrAtCapacity = errors.New("at capacity")
)

// TaskExecutor is the interface for task processing.
//
// The executor owns the ENTIRE task lifecycle after the claim:
//   - Routes the task into an execution plan and materializes the workflow
//   - Runs every step (parallel, sequential, or staged per the template)
//   - Writes conversation entries, notes, and progress PROGRESSIVELY
//   - Renders the result summary and attempts mail delivery
//
// The worker only handles: claiming, heartbeat, and the terminal status update.
type TaskExecutor interface {
	Execute(ctx context.Context, task *ent.Task) *ExecutionResult
}

// ExecutionResult is lightweight — just the terminal state. All intermediate
// state (conversation entries, notes, progress) was already written to the
// database by the executor during processing.
type ExecutionResult struct {
	Status  models.TaskStatus // completed, dispatched, or failed
	Summary string            // result summary text (if the run succeeded)
	Report  *workflow.Report  // per-step report (if a workflow ran)
	Error   error             // error details (if failed)
}

// TaskRegistry lets workers register running tasks with the pool so they can
// be cancelled by ID.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveTasks      int            `json:"active_tasks"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
