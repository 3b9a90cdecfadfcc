package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/ent/conversationentry"
	"github.com/taskwire/taskwire/ent/task"
	"github.com/taskwire/taskwire/ent/tasknote"
	"github.com/taskwire/taskwire/pkg/models"
	testdb "github.com/taskwire/taskwire/test/database"
)

func TestTaskService_CreateTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, nil)
	ctx := context.Background()

	t.Run("creates queued task with note trail", func(t *testing.T) {
		parsed := newParsedTask("Login broken on production")
		parsed.EmailMetadata = &models.EmailMetadata{
			MessageID: "<msg-1@example.com>",
			Sender:    "alice@example.com",
			Subject:   "Login broken on production",
		}
		parsed.AddNote("Parsed email from alice@example.com")
		parsed.Tags = []string{"project:auth"}

		created, err := service.CreateTask(ctx, parsed)
		require.NoError(t, err)
		assert.Equal(t, parsed.TaskID, created.ID)
		assert.Equal(t, task.StatusQueued, created.Status)
		assert.Equal(t, "high", created.Priority)
		assert.Equal(t, 3, created.PriorityRank)
		assert.Equal(t, "<msg-1@example.com>", created.MessageID)
		assert.Equal(t, "alice@example.com", created.EmailMetadata["sender"])
		assert.Equal(t, []string{"project:auth"}, created.Tags)

		notes, err := client.TaskNote.Query().
			Where(tasknote.TaskIDEQ(created.ID)).
			Order(ent.Asc(tasknote.FieldCreatedAt)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "Parsed email from alice@example.com", notes[0].Note)
		assert.Equal(t, "Task queued for execution", notes[1].Note)
	})

	t.Run("generates task id when absent", func(t *testing.T) {
		parsed := newParsedTask("No id supplied")
		parsed.TaskID = ""

		created, err := service.CreateTask(ctx, parsed)
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("rejects duplicate task id", func(t *testing.T) {
		parsed := newParsedTask("First write wins")
		_, err := service.CreateTask(ctx, parsed)
		require.NoError(t, err)

		_, err = service.CreateTask(ctx, parsed)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates the task", func(t *testing.T) {
		_, err := service.CreateTask(ctx, nil)
		assert.True(t, IsValidationError(err))

		bad := newParsedTask("Bad type")
		bad.TaskType = "paper_shredding"
		_, err = service.CreateTask(ctx, bad)
		assert.True(t, IsValidationError(err))
	})
}

func TestTaskService_UpdateStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, nil)
	ctx := context.Background()

	t.Run("walks the lifecycle with stamps", func(t *testing.T) {
		created, err := service.CreateTask(ctx, newParsedTask("Lifecycle walk"))
		require.NoError(t, err)

		running, err := service.UpdateStatus(ctx, created.ID, models.StatusRunning, "")
		require.NoError(t, err)
		assert.Equal(t, task.StatusRunning, running.Status)
		require.NotNil(t, running.StartedAt)
		require.NotNil(t, running.LastHeartbeatAt)
		assert.False(t, running.Processed)

		completed, err := service.UpdateStatus(ctx, created.ID, models.StatusCompleted, "")
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, completed.Status)
		assert.True(t, completed.Processed)
		require.NotNil(t, completed.CompletedAt)
	})

	t.Run("rejects illegal transitions", func(t *testing.T) {
		created, err := service.CreateTask(ctx, newParsedTask("Illegal move"))
		require.NoError(t, err)
		_, err = service.UpdateStatus(ctx, created.ID, models.StatusCompleted, "")
		require.NoError(t, err)

		_, err = service.UpdateStatus(ctx, created.ID, models.StatusRunning, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("failed to queued stays illegal", func(t *testing.T) {
		created, err := service.CreateTask(ctx, newParsedTask("No resurrection"))
		require.NoError(t, err)
		_, err = service.UpdateStatus(ctx, created.ID, models.StatusFailed, "agent exploded")
		require.NoError(t, err)

		_, err = service.UpdateStatus(ctx, created.ID, models.StatusQueued, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("records error message on failure", func(t *testing.T) {
		created, err := service.CreateTask(ctx, newParsedTask("Will fail"))
		require.NoError(t, err)

		failed, err := service.UpdateStatus(ctx, created.ID, models.StatusFailed, "all fallbacks exhausted")
		require.NoError(t, err)
		require.NotNil(t, failed.ErrorMessage)
		assert.Equal(t, "all fallbacks exhausted", *failed.ErrorMessage)
		assert.True(t, failed.Processed)
	})

	t.Run("running to queued clears the claim", func(t *testing.T) {
		created, err := service.CreateTask(ctx, newParsedTask("Orphan path"))
		require.NoError(t, err)
		_, err = service.UpdateStatus(ctx, created.ID, models.StatusRunning, "")
		require.NoError(t, err)

		err = client.Task.UpdateOneID(created.ID).SetWorkerID("worker-gone").Exec(ctx)
		require.NoError(t, err)

		requeued, err := service.UpdateStatus(ctx, created.ID, models.StatusQueued, "")
		require.NoError(t, err)
		assert.Equal(t, task.StatusQueued, requeued.Status)
		assert.Nil(t, requeued.WorkerID)
		assert.Nil(t, requeued.LastHeartbeatAt)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := service.UpdateStatus(ctx, "no-such-task", models.StatusRunning, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskService_UpdateProgress(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, nil)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, newParsedTask("Progress bar"))
	require.NoError(t, err)

	t.Run("is monotonic", func(t *testing.T) {
		require.NoError(t, service.UpdateProgress(ctx, created.ID, 40))

		// Stale update from a racing step is dropped silently.
		require.NoError(t, service.UpdateProgress(ctx, created.ID, 30))

		row, err := client.Task.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 40, row.Progress)

		require.NoError(t, service.UpdateProgress(ctx, created.ID, 70))
		row, err = client.Task.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 70, row.Progress)
	})

	t.Run("rejects values outside the range", func(t *testing.T) {
		assert.True(t, IsValidationError(service.UpdateProgress(ctx, created.ID, -1)))
		assert.True(t, IsValidationError(service.UpdateProgress(ctx, created.ID, 101)))
	})

	t.Run("unknown task", func(t *testing.T) {
		assert.ErrorIs(t, service.UpdateProgress(ctx, "no-such-task", 10), ErrNotFound)
	})
}

func TestTaskService_GetTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, nil)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, newParsedTask("Edge loading"))
	require.NoError(t, err)

	_, err = service.AppendConversation(ctx, models.AppendConversationRequest{
		TaskID:  created.ID,
		AgentID: "coder",
		Role:    string(models.RoleRequest),
		Content: "Fix the login flow",
	})
	require.NoError(t, err)

	t.Run("loads edges in order when asked", func(t *testing.T) {
		row, err := service.GetTask(ctx, created.ID, true)
		require.NoError(t, err)
		require.Len(t, row.Edges.Notes, 1)
		require.Len(t, row.Edges.ConversationEntries, 1)
		assert.Equal(t, "coder", row.Edges.ConversationEntries[0].AgentID)
	})

	t.Run("plain read skips edges", func(t *testing.T) {
		row, err := service.GetTask(ctx, created.ID, false)
		require.NoError(t, err)
		assert.Empty(t, row.Edges.Notes)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := service.GetTask(ctx, "no-such-task", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskService_GetTaskByMessageID(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, nil)
	ctx := context.Background()

	older := newParsedTask("First ingest")
	older.CreatedAt = time.Now().Add(-1 * time.Hour)
	older.EmailMetadata = &models.EmailMetadata{MessageID: "<dup@example.com>", Sender: "a@example.com"}
	_, err := service.CreateTask(ctx, older)
	require.NoError(t, err)

	newer := newParsedTask("Second ingest")
	newer.EmailMetadata = &models.EmailMetadata{MessageID: "<dup@example.com>", Sender: "a@example.com"}
	created, err := service.CreateTask(ctx, newer)
	require.NoError(t, err)

	t.Run("returns the most recent ingest", func(t *testing.T) {
		row, err := service.GetTaskByMessageID(ctx, "<dup@example.com>")
		require.NoError(t, err)
		assert.Equal(t, created.ID, row.ID)
	})

	t.Run("unknown message id", func(t *testing.T) {
		_, err := service.GetTaskByMessageID(ctx, "<missing@example.com>")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("requires a message id", func(t *testing.T) {
		_, err := service.GetTaskByMessageID(ctx, "")
		assert.True(t, IsValidationError(err))
	})
}

func TestTaskService_ListTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, nil)
	ctx := context.Background()

	urgent := newParsedTask("Urgent outage")
	urgent.Priority = models.PriorityUrgent
	urgent.EmailMetadata = &models.EmailMetadata{MessageID: "<u@example.com>", Sender: "ops@example.com"}
	created, err := service.CreateTask(ctx, urgent)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		parsed := newParsedTask("Routine work")
		parsed.Priority = models.PriorityMedium
		parsed.EmailMetadata = &models.EmailMetadata{Sender: "dev@example.com"}
		_, err := service.CreateTask(ctx, parsed)
		require.NoError(t, err)
	}
	_, err = service.UpdateStatus(ctx, created.ID, models.StatusRunning, "")
	require.NoError(t, err)

	t.Run("filters by status", func(t *testing.T) {
		resp, err := service.ListTasks(ctx, models.TaskFilters{Status: "running"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, created.ID, resp.Tasks[0].ID)
	})

	t.Run("filters by priority", func(t *testing.T) {
		resp, err := service.ListTasks(ctx, models.TaskFilters{Priority: "medium"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
	})

	t.Run("filters by sender inside email metadata", func(t *testing.T) {
		resp, err := service.ListTasks(ctx, models.TaskFilters{Sender: "ops@example.com"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, created.ID, resp.Tasks[0].ID)
	})

	t.Run("paginates with defaults", func(t *testing.T) {
		resp, err := service.ListTasks(ctx, models.TaskFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Tasks, 2)
		assert.Equal(t, 2, resp.Limit)
		assert.Equal(t, 0, resp.Offset)
	})
}

func TestTaskService_ListActive(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, nil)
	ctx := context.Background()

	low := newParsedTask("Low priority chore")
	low.Priority = models.PriorityLow
	low.CreatedAt = time.Now().Add(-2 * time.Hour)
	lowRow, err := service.CreateTask(ctx, low)
	require.NoError(t, err)

	urgent := newParsedTask("Urgent incident")
	urgent.Priority = models.PriorityUrgent
	urgentRow, err := service.CreateTask(ctx, urgent)
	require.NoError(t, err)

	done := newParsedTask("Already done")
	doneRow, err := service.CreateTask(ctx, done)
	require.NoError(t, err)
	_, err = service.UpdateStatus(ctx, doneRow.ID, models.StatusCompleted, "")
	require.NoError(t, err)

	active, err := service.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	// Queue order: priority class first, FIFO within a class.
	assert.Equal(t, urgentRow.ID, active[0].ID)
	assert.Equal(t, lowRow.ID, active[1].ID)
}

func TestTaskService_AppendNote(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, nil)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, newParsedTask("Note taking"))
	require.NoError(t, err)

	t.Run("appends and lists chronologically", func(t *testing.T) {
		_, err := service.AppendNote(ctx, created.ID, "Routing selected bug_fix_workflow")
		require.NoError(t, err)
		_, err = service.AppendNote(ctx, created.ID, "Execution started")
		require.NoError(t, err)

		notes, err := service.ListNotes(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, notes, 3) // creation note + two appended
		assert.Equal(t, "Execution started", notes[2].Note)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := service.AppendNote(ctx, "no-such-task", "orphan note")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects empty note", func(t *testing.T) {
		_, err := service.AppendNote(ctx, created.ID, "   ")
		assert.True(t, IsValidationError(err))
	})
}

func TestTaskService_AppendConversation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, nil)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, newParsedTask("Conversation log"))
	require.NoError(t, err)

	t.Run("allocates increasing sequence numbers", func(t *testing.T) {
		first, err := service.AppendConversation(ctx, models.AppendConversationRequest{
			TaskID:  created.ID,
			AgentID: "bug",
			Role:    string(models.RoleRequest),
			Content: "Analyze the stack trace",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, first.Sequence)

		second, err := service.AppendConversation(ctx, models.AppendConversationRequest{
			TaskID:   created.ID,
			AgentID:  "bug",
			Role:     string(models.RoleResponse),
			Content:  "Null pointer in session refresh",
			Metadata: map[string]interface{}{"model": "large", "tokens": 512},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, second.Sequence)
		assert.Equal(t, "large", second.Metadata["model"])

		entries, err := service.ListConversation(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, conversationentry.RoleRequest, entries[0].Role)
		assert.Equal(t, conversationentry.RoleResponse, entries[1].Role)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := service.AppendConversation(ctx, models.AppendConversationRequest{
			TaskID:  created.ID,
			AgentID: "bug",
			Role:    "monologue",
			Content: "nope",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := service.AppendConversation(ctx, models.AppendConversationRequest{
			TaskID:  "no-such-task",
			AgentID: "bug",
			Role:    string(models.RoleRequest),
			Content: "hello?",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskService_ResultAndDispatch(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, nil)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, newParsedTask("Deliverable"))
	require.NoError(t, err)
	_, err = service.UpdateStatus(ctx, created.ID, models.StatusRunning, "")
	require.NoError(t, err)

	require.NoError(t, service.SetResult(ctx, created.ID, "Patched session refresh, added regression test"))

	dispatched, err := service.MarkDispatched(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusDispatched, dispatched.Status)
	assert.True(t, dispatched.Processed)
	require.NotNil(t, dispatched.ResultSummary)
	assert.Contains(t, *dispatched.ResultSummary, "session refresh")
}

func TestTaskService_CancelTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, nil)
	ctx := context.Background()

	t.Run("cancels a queued task with a note", func(t *testing.T) {
		created, err := service.CreateTask(ctx, newParsedTask("Cancel me"))
		require.NoError(t, err)

		cancelled, err := service.CancelTask(ctx, created.ID, "requester withdrew the ask")
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, cancelled.Status)
		require.NotNil(t, cancelled.ErrorMessage)
		assert.Equal(t, "cancelled: requester withdrew the ask", *cancelled.ErrorMessage)

		notes, err := service.ListNotes(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Task cancelled: requester withdrew the ask", notes[len(notes)-1].Note)
	})

	t.Run("rejects cancelling a terminal task", func(t *testing.T) {
		created, err := service.CreateTask(ctx, newParsedTask("Too late"))
		require.NoError(t, err)
		_, err = service.UpdateStatus(ctx, created.ID, models.StatusCompleted, "")
		require.NoError(t, err)

		_, err = service.CancelTask(ctx, created.ID, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestTaskService_OrphanRecovery(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client, nil)
	ctx := context.Background()

	makeStaleRunner := func(t *testing.T, title string) string {
		created, err := service.CreateTask(ctx, newParsedTask(title))
		require.NoError(t, err)
		_, err = service.UpdateStatus(ctx, created.ID, models.StatusRunning, "")
		require.NoError(t, err)
		err = client.Task.UpdateOneID(created.ID).
			SetWorkerID("worker-dead").
			SetLastHeartbeatAt(time.Now().Add(-30 * time.Minute)).
			Exec(ctx)
		require.NoError(t, err)
		return created.ID
	}

	t.Run("finds stale runners only", func(t *testing.T) {
		staleID := makeStaleRunner(t, "Stale runner")

		healthy, err := service.CreateTask(ctx, newParsedTask("Healthy runner"))
		require.NoError(t, err)
		_, err = service.UpdateStatus(ctx, healthy.ID, models.StatusRunning, "")
		require.NoError(t, err)

		orphans, err := service.FindOrphanedTasks(ctx, 5*time.Minute)
		require.NoError(t, err)
		require.Len(t, orphans, 1)
		assert.Equal(t, staleID, orphans[0].ID)
	})

	t.Run("requeues while budget remains", func(t *testing.T) {
		staleID := makeStaleRunner(t, "Requeue me")

		requeued, err := service.RequeueOrphan(ctx, staleID, 3)
		require.NoError(t, err)
		require.NotNil(t, requeued)
		assert.Equal(t, task.StatusQueued, requeued.Status)
		assert.Equal(t, 1, requeued.RequeueCount)
		assert.Nil(t, requeued.WorkerID)
		assert.Nil(t, requeued.LastHeartbeatAt)
	})

	t.Run("fails once the budget is spent", func(t *testing.T) {
		staleID := makeStaleRunner(t, "Budget spent")
		err := client.Task.UpdateOneID(staleID).SetRequeueCount(3).Exec(ctx)
		require.NoError(t, err)

		failed, err := service.RequeueOrphan(ctx, staleID, 3)
		require.NoError(t, err)
		require.NotNil(t, failed)
		assert.Equal(t, task.StatusFailed, failed.Status)
		require.NotNil(t, failed.ErrorMessage)
		assert.Contains(t, *failed.ErrorMessage, "requeue budget exhausted")
	})

	t.Run("skips tasks another sweep already handled", func(t *testing.T) {
		created, err := service.CreateTask(ctx, newParsedTask("Already recovered"))
		require.NoError(t, err)

		recovered, err := service.RequeueOrphan(ctx, created.ID, 3)
		require.NoError(t, err)
		assert.Nil(t, recovered)
	})
}
