package queue

import (
	"context"
	"log/slog"

	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/pkg/models"
)

// StubExecutor is a TaskExecutor that completes every task without running
// any workflow. Used in tests and when the service runs without an agent
// backend (dry-run deployments).
type StubExecutor struct{}

// NewStubExecutor creates a new stub executor.
func NewStubExecutor() *StubExecutor {
	return &StubExecutor{}
}

// Execute returns a completed result immediately.
func (e *StubExecutor) Execute(ctx context.Context, task *ent.Task) *ExecutionResult {
	taskID := ""
	taskType := ""
	if task != nil {
		taskID = task.ID
		taskType = task.TaskType
	}
	slog.Info("Stub executor: task processing (no-op)",
		"task_id", taskID,
		"task_type", taskType,
	)

	// Check if context is already cancelled
	if ctx.Err() != nil {
		return &ExecutionResult{
			Status: models.StatusFailed,
			Error:  ctx.Err(),
		}
	}

	return &ExecutionResult{
		Status:  models.StatusCompleted,
		Summary: "Stub executor: no workflow executed",
	}
}
