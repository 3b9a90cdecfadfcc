package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/ent/task"
	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/database"
	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/services"
	testdb "github.com/taskwire/taskwire/test/database"
)

func setupServices(t *testing.T) (*database.Client, *services.TaskService, *services.AuditService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, services.NewTaskService(client.Client, nil), services.NewAuditService(client.Client)
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		TaskMaxAge:    90 * 24 * time.Hour,
		EventMaxAge:   1 * time.Hour,
		CheckInterval: 1 * time.Hour,
	}
}

func createTask(t *testing.T, tasks *services.TaskService, title string) string {
	t.Helper()
	created, err := tasks.CreateTask(context.Background(), &models.Task{
		TaskID:      uuid.New().String(),
		Title:       title,
		Description: "Something is broken and needs attention",
		TaskType:    models.TaskTypeBugReport,
		Priority:    models.PriorityHigh,
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)
	return created.ID
}

func TestService_PurgesOldTerminalTasks(t *testing.T) {
	client, taskService, auditService := setupServices(t)
	ctx := context.Background()

	taskID := createTask(t, taskService, "Old completed task")
	err := client.Task.UpdateOneID(taskID).
		SetStatus(task.StatusCompleted).
		SetProcessed(true).
		SetCompletedAt(time.Now().Add(-120 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), taskService, auditService)
	svc.sweep()

	_, err = taskService.GetTask(ctx, taskID, false)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestService_PreservesRecentAndActiveTasks(t *testing.T) {
	client, taskService, auditService := setupServices(t)
	ctx := context.Background()

	recentID := createTask(t, taskService, "Recently completed task")
	err := client.Task.UpdateOneID(recentID).
		SetStatus(task.StatusCompleted).
		SetProcessed(true).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	// Queued for ages but never finished; retention must not touch it.
	staleActiveID := createTask(t, taskService, "Long queued task")
	err = client.Task.UpdateOneID(staleActiveID).
		SetCreatedAt(time.Now().Add(-120 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), taskService, auditService)
	svc.sweep()

	_, err = taskService.GetTask(ctx, recentID, false)
	assert.NoError(t, err)
	_, err = taskService.GetTask(ctx, staleActiveID, false)
	assert.NoError(t, err)
}

func TestService_CleansUpExpiredAuditEvents(t *testing.T) {
	client, taskService, auditService := setupServices(t)
	ctx := context.Background()

	taskID := createTask(t, taskService, "Audit retention task")

	_, err := client.AuditEvent.Create().
		SetTaskID(taskID).
		SetChannel("tasks").
		SetPayload("{}").
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.AuditEvent.Create().
		SetTaskID(taskID).
		SetChannel("tasks").
		SetPayload("{}").
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), taskService, auditService)
	svc.sweep()

	events, err := auditService.GetEventsSince(ctx, "tasks", 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "old event should be deleted, recent event preserved")
}

func TestService_StartStop(t *testing.T) {
	_, taskService, auditService := setupServices(t)

	svc := NewService(retentionConfig(), taskService, auditService)
	svc.Start(context.Background())
	svc.Stop()

	// Stop again is a no-op rather than a deadlock.
	svc.Stop()
}
