package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/ent/deadletter"
	"github.com/taskwire/taskwire/ent/task"
	"github.com/taskwire/taskwire/pkg/database"
	testdb "github.com/taskwire/taskwire/test/database"
)

func TestDLQService_Add(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := NewTaskService(client.Client, nil)
	dlq := NewDLQService(client.Client, 5)
	ctx := context.Background()

	t.Run("records a pending entry", func(t *testing.T) {
		failed := failedTask(t, tasks, "Exploded dispatch")

		entry, err := dlq.Add(ctx, failed.ID, "coder", SnapshotTask(failed), "circuit open after retries", 0, failed.Priority)
		require.NoError(t, err)
		assert.Equal(t, deadletter.StatusPending, entry.Status)
		assert.Equal(t, failed.ID, entry.TaskID)
		assert.Equal(t, "coder", entry.AgentID)
		assert.Equal(t, 0, entry.Attempts)
		assert.Equal(t, "high", entry.Priority)
		assert.Equal(t, "Exploded dispatch", entry.Payload["title"])
	})

	t.Run("falls back to medium on unknown priority", func(t *testing.T) {
		failed := failedTask(t, tasks, "Odd priority")

		entry, err := dlq.Add(ctx, failed.ID, "coder", nil, "boom", 0, "catastrophic")
		require.NoError(t, err)
		assert.Equal(t, "medium", entry.Priority)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := dlq.Add(ctx, "", "coder", nil, "boom", 0, "high")
		assert.True(t, IsValidationError(err))

		_, err = dlq.Add(ctx, "task-1", "coder", nil, "", 0, "high")
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := dlq.Add(ctx, "no-such-task", "coder", nil, "boom", 0, "high")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDLQService_RetryNext(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := NewTaskService(client.Client, nil)
	dlq := NewDLQService(client.Client, 5)
	ctx := context.Background()

	t.Run("queues a redrive task and marks the entry retrying", func(t *testing.T) {
		failed := failedTask(t, tasks, "Redrive candidate")
		entry, err := dlq.Add(ctx, failed.ID, "coder", SnapshotTask(failed), "timeout", 0, failed.Priority)
		require.NoError(t, err)

		drained, err := dlq.RetryNext(ctx, 1)
		require.NoError(t, err)
		require.Len(t, drained, 1)
		assert.Equal(t, deadletter.StatusRetrying, drained[0].Status)
		assert.Equal(t, 1, drained[0].Attempts)
		require.NotNil(t, drained[0].LastRetryAt)

		// The original row stays failed; the redrive is a fresh task.
		original, err := client.Task.Get(ctx, failed.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, original.Status)

		redrive := findRedrive(t, client, failed.ID)
		assert.Equal(t, task.StatusQueued, redrive.Status)
		assert.Equal(t, "Redrive candidate", redrive.Title)
		assert.Equal(t, "high", redrive.Priority)
		assert.Equal(t, entry.ID, redrive.Context["dlq_entry_id"])
		assert.EqualValues(t, 1, redrive.Context["redrive_attempt"])
		// Email metadata is carried for delivery, but not the ingest
		// message_id column.
		assert.Equal(t, "reporter@example.com", redrive.EmailMetadata["sender"])
		assert.Empty(t, redrive.MessageID)

		notes, err := tasks.ListNotes(ctx, redrive.ID)
		require.NoError(t, err)
		require.NotEmpty(t, notes)
		assert.Equal(t, "Redriven from dead-letter queue (attempt 1/5)", notes[len(notes)-1].Note)
	})

	t.Run("drains oldest first", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		tasks := NewTaskService(client.Client, nil)
		dlq := NewDLQService(client.Client, 5)

		first := failedTask(t, tasks, "Older failure")
		_, err := dlq.Add(ctx, first.ID, "coder", SnapshotTask(first), "boom", 0, first.Priority)
		require.NoError(t, err)

		second := failedTask(t, tasks, "Newer failure")
		_, err = dlq.Add(ctx, second.ID, "coder", SnapshotTask(second), "boom", 0, second.Priority)
		require.NoError(t, err)

		drained, err := dlq.RetryNext(ctx, 1)
		require.NoError(t, err)
		require.Len(t, drained, 1)
		assert.Equal(t, first.ID, drained[0].TaskID)
	})

	t.Run("abandons entries at the attempt ceiling", func(t *testing.T) {
		failed := failedTask(t, tasks, "Hopeless case")
		_, err := dlq.Add(ctx, failed.ID, "coder", SnapshotTask(failed), "boom", 5, failed.Priority)
		require.NoError(t, err)

		drained, err := dlq.RetryNext(ctx, 10)
		require.NoError(t, err)
		require.NotEmpty(t, drained)

		var abandoned *ent.DeadLetter
		for _, entry := range drained {
			if entry.TaskID == failed.ID {
				abandoned = entry
			}
		}
		require.NotNil(t, abandoned)
		assert.Equal(t, deadletter.StatusAbandoned, abandoned.Status)
		require.NotNil(t, abandoned.AbandonReason)
		assert.Contains(t, *abandoned.AbandonReason, "retry ceiling")

		original, err := client.Task.Get(ctx, failed.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusAbandoned, original.Status)
	})

	t.Run("empty queue drains nothing", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		dlq := NewDLQService(client.Client, 5)

		drained, err := dlq.RetryNext(ctx, 3)
		require.NoError(t, err)
		assert.Empty(t, drained)
	})
}

func TestDLQService_Abandon(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := NewTaskService(client.Client, nil)
	dlq := NewDLQService(client.Client, 5)
	ctx := context.Background()

	failed := failedTask(t, tasks, "Operator gives up")
	entry, err := dlq.Add(ctx, failed.ID, "coder", SnapshotTask(failed), "boom", 2, failed.Priority)
	require.NoError(t, err)

	t.Run("abandons entry and source task", func(t *testing.T) {
		abandoned, err := dlq.Abandon(ctx, entry.ID, "not reproducible")
		require.NoError(t, err)
		assert.Equal(t, deadletter.StatusAbandoned, abandoned.Status)
		require.NotNil(t, abandoned.AbandonReason)
		assert.Equal(t, "not reproducible", *abandoned.AbandonReason)

		original, err := client.Task.Get(ctx, failed.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusAbandoned, original.Status)

		notes, err := tasks.ListNotes(ctx, failed.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dead-letter entry abandoned: not reproducible", notes[len(notes)-1].Note)
	})

	t.Run("is idempotent", func(t *testing.T) {
		again, err := dlq.Abandon(ctx, entry.ID, "still not reproducible")
		require.NoError(t, err)
		assert.Equal(t, deadletter.StatusAbandoned, again.Status)
		// First reason wins.
		assert.Equal(t, "not reproducible", *again.AbandonReason)
	})

	t.Run("unknown entry", func(t *testing.T) {
		_, err := dlq.Abandon(ctx, "no-such-entry", "whatever")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDLQService_ResolveAndMarkRetryFailed(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := NewTaskService(client.Client, nil)
	dlq := NewDLQService(client.Client, 5)
	ctx := context.Background()

	failed := failedTask(t, tasks, "Round trip")
	entry, err := dlq.Add(ctx, failed.ID, "coder", SnapshotTask(failed), "boom", 0, failed.Priority)
	require.NoError(t, err)

	drained, err := dlq.RetryNext(ctx, 1)
	require.NoError(t, err)
	require.Len(t, drained, 1)

	t.Run("failed redrive returns the entry to pending", func(t *testing.T) {
		err := dlq.MarkRetryFailed(ctx, entry.ID, "still timing out")
		require.NoError(t, err)

		row, err := client.DeadLetter.Get(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, deadletter.StatusPending, row.Status)
		assert.Equal(t, "still timing out", row.LastError)
		assert.Equal(t, 1, row.Attempts)
	})

	t.Run("successful redrive deletes the entry", func(t *testing.T) {
		err := dlq.Resolve(ctx, entry.ID)
		require.NoError(t, err)

		_, err = client.DeadLetter.Get(ctx, entry.ID)
		assert.True(t, ent.IsNotFound(err))

		assert.ErrorIs(t, dlq.Resolve(ctx, entry.ID), ErrNotFound)
	})
}

func TestDLQService_Stats(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := NewTaskService(client.Client, nil)
	dlq := NewDLQService(client.Client, 5)
	ctx := context.Background()

	t.Run("empty queue", func(t *testing.T) {
		stats, err := dlq.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.Total)
		assert.Nil(t, stats.Oldest)
	})

	t.Run("counts by status with oldest pending", func(t *testing.T) {
		first := failedTask(t, tasks, "Oldest pending")
		firstEntry, err := dlq.Add(ctx, first.ID, "coder", SnapshotTask(first), "boom", 0, first.Priority)
		require.NoError(t, err)

		second := failedTask(t, tasks, "Newer pending")
		_, err = dlq.Add(ctx, second.ID, "coder", SnapshotTask(second), "boom", 0, second.Priority)
		require.NoError(t, err)

		third := failedTask(t, tasks, "Given up")
		thirdEntry, err := dlq.Add(ctx, third.ID, "coder", SnapshotTask(third), "boom", 0, third.Priority)
		require.NoError(t, err)
		_, err = dlq.Abandon(ctx, thirdEntry.ID, "noise")
		require.NoError(t, err)

		stats, err := dlq.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Pending)
		assert.Equal(t, 0, stats.Retrying)
		assert.Equal(t, 1, stats.Abandoned)
		assert.Equal(t, 3, stats.Total)
		require.NotNil(t, stats.Oldest)
		assert.WithinDuration(t, firstEntry.FirstSeenAt, *stats.Oldest, time.Second)
	})
}

func TestDLQService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := NewTaskService(client.Client, nil)
	dlq := NewDLQService(client.Client, 5)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		failed := failedTask(t, tasks, "Listed failure")
		_, err := dlq.Add(ctx, failed.ID, "coder", SnapshotTask(failed), "boom", 0, failed.Priority)
		require.NoError(t, err)
	}

	entries, err := dlq.List(ctx, "pending", 2, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	all, err := dlq.List(ctx, "", 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := dlq.List(ctx, "abandoned", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

// findRedrive locates the queued task created by a redrive of origID.
func findRedrive(t *testing.T, client *database.Client, origID string) *ent.Task {
	t.Helper()
	rows, err := client.Task.Query().
		Where(task.StatusEQ(task.StatusQueued)).
		All(context.Background())
	require.NoError(t, err)
	for _, row := range rows {
		if row.Context["redrive_of"] == origID {
			return row
		}
	}
	t.Fatalf("no redrive task found for %s", origID)
	return nil
}
