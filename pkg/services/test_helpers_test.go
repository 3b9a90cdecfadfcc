package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/pkg/models"
)

// newParsedTask builds a minimal valid task the way the email parser would.
func newParsedTask(title string) *models.Task {
	return &models.Task{
		TaskID:      uuid.New().String(),
		Title:       title,
		Description: "Something is broken and needs attention",
		TaskType:    models.TaskTypeBugReport,
		Priority:    models.PriorityHigh,
		CreatedAt:   time.Now(),
	}
}

// failedTask creates a task and drives it to failed, the state every
// dead-letter entry hangs off.
func failedTask(t *testing.T, tasks *TaskService, title string) *ent.Task {
	t.Helper()
	ctx := context.Background()

	parsed := newParsedTask(title)
	parsed.EmailMetadata = &models.EmailMetadata{
		MessageID: "<" + parsed.TaskID + "@example.com>",
		Sender:    "reporter@example.com",
	}
	created, err := tasks.CreateTask(ctx, parsed)
	require.NoError(t, err)

	failed, err := tasks.UpdateStatus(ctx, created.ID, models.StatusFailed, "agent exploded")
	require.NoError(t, err)
	return failed
}
