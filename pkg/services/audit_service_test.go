package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/taskwire/taskwire/test/database"
)

func TestAuditService_RecordEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := NewTaskService(client.Client, nil)
	audit := NewAuditService(client.Client)
	ctx := context.Background()

	created, err := tasks.CreateTask(ctx, newParsedTask("Audit lifecycle"))
	require.NoError(t, err)

	t.Run("records event with cursor id", func(t *testing.T) {
		evt, err := audit.RecordEvent(ctx, created.ID, "tasks", `{"type":"task.status_changed","status":"running"}`)
		require.NoError(t, err)
		assert.Greater(t, evt.ID, 0)
		assert.Equal(t, created.ID, evt.TaskID)
		assert.Equal(t, "tasks", evt.Channel)
		assert.NotZero(t, evt.CreatedAt)
	})

	t.Run("rejects missing task id", func(t *testing.T) {
		_, err := audit.RecordEvent(ctx, "", "tasks", "{}")
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects missing channel", func(t *testing.T) {
		_, err := audit.RecordEvent(ctx, created.ID, "", "{}")
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown task violates foreign key", func(t *testing.T) {
		_, err := audit.RecordEvent(ctx, "no-such-task", "tasks", "{}")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAuditService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := NewTaskService(client.Client, nil)
	audit := NewAuditService(client.Client)
	ctx := context.Background()

	created, err := tasks.CreateTask(ctx, newParsedTask("Catchup window"))
	require.NoError(t, err)

	var ids []int
	for i := 1; i <= 5; i++ {
		evt, err := audit.RecordEvent(ctx, created.ID, "tasks", fmt.Sprintf(`{"seq":%d}`, i))
		require.NoError(t, err)
		ids = append(ids, evt.ID)
	}
	// Events on another channel must not leak into the tasks catchup.
	_, err = audit.RecordEvent(ctx, created.ID, "dlq", `{"type":"dlq.entry_added"}`)
	require.NoError(t, err)

	t.Run("returns everything after cursor in id order", func(t *testing.T) {
		events, err := audit.GetEventsSince(ctx, "tasks", ids[1])
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, ids[2], events[0].ID)
		assert.Equal(t, ids[3], events[1].ID)
		assert.Equal(t, ids[4], events[2].ID)
	})

	t.Run("cursor zero returns full channel history", func(t *testing.T) {
		events, err := audit.GetEventsSince(ctx, "tasks", 0)
		require.NoError(t, err)
		assert.Len(t, events, 5)
	})

	t.Run("cursor at head returns nothing", func(t *testing.T) {
		events, err := audit.GetEventsSince(ctx, "tasks", ids[4])
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("filters by channel", func(t *testing.T) {
		events, err := audit.GetEventsSince(ctx, "dlq", 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, `{"type":"dlq.entry_added"}`, events[0].Payload)
	})
}

func TestAuditService_CleanupExpiredEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	tasks := NewTaskService(client.Client, nil)
	audit := NewAuditService(client.Client)
	ctx := context.Background()

	created, err := tasks.CreateTask(ctx, newParsedTask("Cleanup survivor"))
	require.NoError(t, err)

	_, err = audit.RecordEvent(ctx, created.ID, "tasks", "{}")
	require.NoError(t, err)

	t.Run("rejects non-positive max age", func(t *testing.T) {
		_, err := audit.CleanupExpiredEvents(ctx, 0)
		assert.True(t, IsValidationError(err))
	})

	t.Run("removes only events past max age", func(t *testing.T) {
		// Create an event directly with an old created_at, bypassing the service.
		oldTime := time.Now().Add(-8 * 24 * time.Hour)
		_, err := client.AuditEvent.Create().
			SetTaskID(created.ID).
			SetChannel("tasks").
			SetPayload("{}").
			SetCreatedAt(oldTime).
			Save(ctx)
		require.NoError(t, err)

		count, err := audit.CleanupExpiredEvents(ctx, 7*24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		// The fresh event survives the sweep.
		remaining, err := audit.GetEventsSince(ctx, "tasks", 0)
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})
}
