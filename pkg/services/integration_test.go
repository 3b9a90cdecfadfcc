package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/ent/deadletter"
	"github.com/taskwire/taskwire/ent/task"
	"github.com/taskwire/taskwire/pkg/models"
	testdb "github.com/taskwire/taskwire/test/database"
)

// TestServiceIntegration tests multiple services working together
func TestServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	taskService := NewTaskService(client.Client, nil)
	dlqService := NewDLQService(client.Client, 5)

	t.Run("full task lifecycle into dead-letter and back", func(t *testing.T) {
		// 1. Ingest a parsed task
		parsed := newParsedTask("Checkout page crashes on submit")
		parsed.EmailMetadata = &models.EmailMetadata{
			MessageID: "<crash-1@example.com>",
			Sender:    "support@example.com",
			Subject:   "Checkout page crashes on submit",
		}
		created, err := taskService.CreateTask(ctx, parsed)
		require.NoError(t, err)
		assert.Equal(t, task.StatusQueued, created.Status)

		// 2. A worker claims it
		running, err := taskService.UpdateStatus(ctx, created.ID, models.StatusRunning, "")
		require.NoError(t, err)
		require.NotNil(t, running.StartedAt)

		// 3. Execution produces conversation and progress
		_, err = taskService.AppendConversation(ctx, models.AppendConversationRequest{
			TaskID:  created.ID,
			AgentID: "bug",
			Role:    string(models.RoleRequest),
			Content: "Analyze the crash report",
		})
		require.NoError(t, err)
		_, err = taskService.AppendConversation(ctx, models.AppendConversationRequest{
			TaskID:  created.ID,
			AgentID: "bug",
			Role:    string(models.RoleError),
			Content: "agent timed out after 120s",
		})
		require.NoError(t, err)
		require.NoError(t, taskService.UpdateProgress(ctx, created.ID, 35))

		// 4. Terminal failure parks it in the dead-letter queue
		failed, err := taskService.UpdateStatus(ctx, created.ID, models.StatusFailed, "all fallbacks exhausted")
		require.NoError(t, err)
		entry, err := dlqService.Add(ctx, failed.ID, "bug", SnapshotTask(failed), "all fallbacks exhausted", 0, failed.Priority)
		require.NoError(t, err)

		// 5. Redrive queues a fresh task carrying the same work
		drained, err := dlqService.RetryNext(ctx, 1)
		require.NoError(t, err)
		require.Len(t, drained, 1)
		assert.Equal(t, deadletter.StatusRetrying, drained[0].Status)

		redrive := findRedrive(t, client, failed.ID)
		assert.Equal(t, created.Title, redrive.Title)
		assert.Equal(t, entry.ID, redrive.Context["dlq_entry_id"])

		// 6. The redrive run completes and the entry is resolved
		_, err = taskService.UpdateStatus(ctx, redrive.ID, models.StatusRunning, "")
		require.NoError(t, err)
		require.NoError(t, taskService.SetResult(ctx, redrive.ID, "Fixed null cart reference"))
		_, err = taskService.UpdateStatus(ctx, redrive.ID, models.StatusCompleted, "")
		require.NoError(t, err)
		require.NoError(t, dlqService.Resolve(ctx, entry.ID))

		stats, err := dlqService.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Total)

		// 7. The full history is on the task rows
		detail, err := taskService.GetTask(ctx, created.ID, true)
		require.NoError(t, err)
		assert.Len(t, detail.Edges.ConversationEntries, 2)
		assert.GreaterOrEqual(t, len(detail.Edges.Notes), 1)
		assert.Equal(t, 35, detail.Progress)
	})
}
