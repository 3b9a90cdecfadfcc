package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskwire/taskwire/ent"
	"github.com/taskwire/taskwire/ent/deadletter"
	"github.com/taskwire/taskwire/ent/task"
	"github.com/taskwire/taskwire/pkg/config"
	"github.com/taskwire/taskwire/pkg/events"
	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/services"
	testdb "github.com/taskwire/taskwire/test/database"
)

// createQueuedTask inserts a task directly in queued status, bypassing the
// parse pipeline.
func createQueuedTask(ctx context.Context, t *testing.T, client *ent.Client, priority models.Priority) *ent.Task {
	t.Helper()
	row, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetTitle("Fix the login crash").
		SetDescription("Users are kicked back to the login page after signing in.").
		SetTaskType(string(models.TaskTypeBugReport)).
		SetPriority(string(priority)).
		SetPriorityRank(priority.Rank()).
		SetStatus(task.StatusQueued).
		Save(ctx)
	require.NoError(t, err)
	return row
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentTasks:      10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		TaskTimeout:             30 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		OrphanThreshold:         2 * time.Second,
		OrphanMaxRequeues:       3,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// TestForUpdateSkipLockedClaiming tests that a worker can atomically claim a
// queued task.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// Create a queued task
	row := createQueuedTask(ctx, t, client, models.PriorityMedium)

	// Create worker and claim
	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil, nil)

	claimed, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the queued task")
	assert.Equal(t, row.ID, claimed.ID)
	assert.Equal(t, task.StatusRunning, claimed.Status)
	require.NotNil(t, claimed.WorkerID)
	assert.Equal(t, "test-worker-0", *claimed.WorkerID)
	assert.NotNil(t, claimed.StartedAt, "first claim should record started_at")
	assert.NotNil(t, claimed.LastHeartbeatAt)

	// Second claim should return ErrNoTasksAvailable
	claimed2, err := w.claimNextTask(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
	assert.Nil(t, claimed2, "no more queued tasks should be available")
}

// TestClaimOrderFollowsPriorityThenAge tests that the claim query dequeues the
// highest priority class first and is FIFO within a class.
func TestClaimOrderFollowsPriorityThenAge(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	base := time.Now().Add(-time.Minute)
	mk := func(priority models.Priority, age time.Duration) string {
		row, err := client.Task.Create().
			SetID(uuid.New().String()).
			SetTitle(fmt.Sprintf("%s task", priority)).
			SetDescription("claim ordering fixture").
			SetTaskType(string(models.TaskTypeGeneral)).
			SetPriority(string(priority)).
			SetPriorityRank(priority.Rank()).
			SetStatus(task.StatusQueued).
			SetCreatedAt(base.Add(age)).
			Save(ctx)
		require.NoError(t, err)
		return row.ID
	}

	// Insert out of dequeue order on purpose.
	low := mk(models.PriorityLow, 0)
	urgentOld := mk(models.PriorityUrgent, 10*time.Second)
	medium := mk(models.PriorityMedium, 20*time.Second)
	urgentNew := mk(models.PriorityUrgent, 30*time.Second)
	high := mk(models.PriorityHigh, 40*time.Second)

	cfg := intTestQueueConfig()
	w := NewWorker("order-worker", "test-pod", client, cfg, nil, nil, nil, nil)

	var got []string
	for i := 0; i < 5; i++ {
		claimed, err := w.claimNextTask(ctx)
		require.NoError(t, err)
		got = append(got, claimed.ID)
	}

	assert.Equal(t, []string{urgentOld, urgentNew, high, medium, low}, got)

	_, err := w.claimNextTask(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

// TestConcurrentClaimsDistinctTasks tests that concurrent workers claim
// different tasks.
func TestConcurrentClaimsDistinctTasks(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// Create multiple queued tasks
	taskIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		row := createQueuedTask(ctx, t, client, models.PriorityMedium)
		taskIDs[row.ID] = struct{}{}
	}

	// Spawn multiple workers concurrently
	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client, cfg, nil, nil, nil, nil)
			row, err := w.claimNextTask(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			if row != nil {
				mu.Lock()
				claimed = append(claimed, row.ID)
				mu.Unlock()
			} else {
				errCh <- fmt.Errorf("worker-%d got nil task without error", workerID)
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	// Check for errors from goroutines
	for err := range errCh {
		require.NoError(t, err)
	}

	// All 5 tasks should be claimed, each by exactly one worker (no duplicates)
	assert.Len(t, claimed, 5, "all 5 tasks should be claimed")

	// Verify no duplicates
	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "task %s claimed by multiple workers", id)
		seen[id] = struct{}{}
	}

	// All claimed tasks should be from the original set
	for _, id := range claimed {
		_, ok := taskIDs[id]
		assert.True(t, ok, "claimed task %s was not in original set", id)
	}
}

// TestOrphanRecovery tests that orphaned tasks are detected and requeued, and
// that the requeue budget fails them once exhausted.
func TestOrphanRecovery(t *testing.T) {
	t.Run("stale heartbeat returns the task to the queue", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		// Simulate a crash: running with an old heartbeat
		staleBeat := time.Now().Add(-10 * time.Minute)
		row, err := client.Task.Create().
			SetID(uuid.New().String()).
			SetTitle("Orphaned task").
			SetDescription("worker died mid-run").
			SetTaskType(string(models.TaskTypeGeneral)).
			SetStatus(task.StatusRunning).
			SetWorkerID("crashed-pod-worker-0").
			SetStartedAt(staleBeat).
			SetLastHeartbeatAt(staleBeat).
			Save(ctx)
		require.NoError(t, err)

		cfg := intTestQueueConfig()
		cfg.OrphanThreshold = 1 * time.Second

		pool := &WorkerPool{
			podID:       "test-pod",
			client:      client,
			config:      cfg,
			taskService: services.NewTaskService(client, nil),
		}

		require.NoError(t, pool.detectAndRecoverOrphans(ctx))

		// Back in the queue with the dead worker's claim released
		updated, err := client.Task.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusQueued, updated.Status)
		assert.Nil(t, updated.WorkerID)
		assert.Nil(t, updated.LastHeartbeatAt)
		assert.Equal(t, 1, updated.RequeueCount)
		assert.NotNil(t, updated.StartedAt, "started_at survives requeues")

		// Verify orphan metrics tracked
		pool.orphans.mu.Lock()
		assert.Equal(t, 1, pool.orphans.orphansRecovered)
		pool.orphans.mu.Unlock()
	})

	t.Run("exhausted requeue budget fails the task", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		staleBeat := time.Now().Add(-10 * time.Minute)
		row, err := client.Task.Create().
			SetID(uuid.New().String()).
			SetTitle("Repeatedly orphaned task").
			SetDescription("keeps losing its worker").
			SetTaskType(string(models.TaskTypeGeneral)).
			SetStatus(task.StatusRunning).
			SetWorkerID("crashed-pod-worker-1").
			SetLastHeartbeatAt(staleBeat).
			SetRequeueCount(3).
			Save(ctx)
		require.NoError(t, err)

		cfg := intTestQueueConfig()
		cfg.OrphanThreshold = 1 * time.Second
		cfg.OrphanMaxRequeues = 3

		pool := &WorkerPool{
			podID:       "test-pod",
			client:      client,
			config:      cfg,
			taskService: services.NewTaskService(client, nil),
		}

		require.NoError(t, pool.detectAndRecoverOrphans(ctx))

		updated, err := client.Task.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, updated.Status)
		assert.True(t, updated.Processed)
		assert.NotNil(t, updated.CompletedAt)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "requeue budget exhausted")
	})
}

// TestStartupOrphanRecovery tests the one-time startup sweep that requeues
// tasks the previous run of this pod left behind.
func TestStartupOrphanRecovery(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	podID := "startup-test-pod"

	// Tasks this pod was running when it crashed
	var ownIDs []string
	for i := 0; i < 3; i++ {
		row, err := client.Task.Create().
			SetID(uuid.New().String()).
			SetTitle("Startup orphan").
			SetDescription("left running by the previous process").
			SetTaskType(string(models.TaskTypeGeneral)).
			SetStatus(task.StatusRunning).
			SetWorkerID(fmt.Sprintf("%s-worker-%d", podID, i)).
			SetLastHeartbeatAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
		ownIDs = append(ownIDs, row.ID)
	}

	// A task owned by another pod (should not be touched)
	otherRow, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetTitle("Other pod's task").
		SetDescription("still actively running elsewhere").
		SetTaskType(string(models.TaskTypeGeneral)).
		SetStatus(task.StatusRunning).
		SetWorkerID("other-pod-worker-0").
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	taskService := services.NewTaskService(client, nil)
	require.NoError(t, RecoverStartupOrphans(ctx, client, taskService, podID, 3))

	// This pod's tasks are back in the queue
	for _, id := range ownIDs {
		row, err := client.Task.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, task.StatusQueued, row.Status, "task %s should be requeued", id)
		assert.Nil(t, row.WorkerID)
		assert.Equal(t, 1, row.RequeueCount)
	}

	// Other pod's task is untouched
	other, err := client.Task.Get(ctx, otherRow.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusRunning, other.Status, "other pod's task should be untouched")
	require.NotNil(t, other.WorkerID)
	assert.Equal(t, "other-pod-worker-0", *other.WorkerID)
}

// mockExecutor counts executions and tracks which tasks were processed.
type mockExecutor struct {
	processed  atomic.Int64
	tasks      sync.Map // string → struct{}
	inProgress atomic.Int64
	releaseCh  chan struct{} // optional: blocks execution until closed
}

func (m *mockExecutor) Execute(ctx context.Context, row *ent.Task) *ExecutionResult {
	m.processed.Add(1)
	if row != nil {
		m.tasks.Store(row.ID, struct{}{})
	}

	// Track in-progress tasks
	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)

	// If releaseCh is set, block until it's closed (for deterministic tests)
	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
			// Released, continue
		case <-ctx.Done():
			return &ExecutionResult{
				Status: models.StatusFailed,
				Error:  ctx.Err(),
			}
		}
	} else {
		// Default behavior: simulate short processing
		select {
		case <-time.After(50 * time.Millisecond):
		case <-ctx.Done():
			return &ExecutionResult{
				Status: models.StatusFailed,
				Error:  ctx.Err(),
			}
		}
	}

	return &ExecutionResult{
		Status:  models.StatusCompleted,
		Summary: "Mock workflow complete",
	}
}

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	mu          sync.Mutex
	statuses    []events.TaskStatusPayload
	deadLetters []events.DeadLetterStatusPayload
}

func (c *capturingPublisher) PublishTaskStatus(_ context.Context, _ string, payload events.TaskStatusPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statuses = append(c.statuses, payload)
	return nil
}

func (c *capturingPublisher) PublishTaskProgress(context.Context, string, events.TaskProgressPayload) error {
	return nil
}

func (c *capturingPublisher) PublishConversationAppended(context.Context, string, events.ConversationAppendedPayload) error {
	return nil
}

func (c *capturingPublisher) PublishDeadLetterStatus(_ context.Context, _ string, payload events.DeadLetterStatusPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deadLetters = append(c.deadLetters, payload)
	return nil
}

// statusesFor returns the published status sequence for one task.
func (c *capturingPublisher) statusesFor(taskID string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, p := range c.statuses {
		if p.TaskID == taskID {
			out = append(out, p.Status)
		}
	}
	return out
}

// TestPoolEndToEndWithMockExecutor tests the full worker pool lifecycle.
func TestPoolEndToEndWithMockExecutor(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// Create queued tasks
	var ids []string
	for i := 0; i < 3; i++ {
		row := createQueuedTask(ctx, t, client, models.PriorityMedium)
		ids = append(ids, row.ID)
	}

	// Create pool with mock executor
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond

	executor := &mockExecutor{}
	publisher := &capturingPublisher{}
	taskService := services.NewTaskService(client, nil)
	pool := NewWorkerPool("test-pod", client, cfg, executor, taskService, nil, publisher)

	err := pool.Start(ctx)
	require.NoError(t, err)

	// Wait for tasks to be processed
	awaitCondition(t, 10*time.Second, 100*time.Millisecond,
		fmt.Sprintf("waiting for tasks to be processed, processed: %d", executor.processed.Load()),
		func() bool { return executor.processed.Load() >= 3 })

	// Stop the pool gracefully
	pool.Stop()

	// All tasks should be completed with terminal bookkeeping applied
	for _, id := range ids {
		row, err := client.Task.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, row.Status, "task %s should be completed", id)
		assert.True(t, row.Processed)
		assert.NotNil(t, row.CompletedAt)
	}

	// Each task's lifecycle was published: claimed then terminal
	statuses := publisher.statusesFor(ids[0])
	assert.Contains(t, statuses, string(models.StatusRunning))
	assert.Contains(t, statuses, string(models.StatusCompleted))

	// Health should show all workers and an empty queue
	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Equal(t, 0, health.QueueDepth)
}

// TestCapacityLimits tests that the global max concurrent limit is enforced.
func TestCapacityLimits(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// Create multiple queued tasks
	for i := 0; i < 5; i++ {
		createQueuedTask(ctx, t, client, models.PriorityMedium)
	}

	// Configure pool: use 2 workers matching MaxConcurrentTasks to avoid races
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 2        // Match MaxConcurrentTasks to avoid startup races
	cfg.MaxConcurrentTasks = 2 // Global limit
	cfg.PollInterval = 50 * time.Millisecond
	cfg.OrphanDetectionInterval = 1 * time.Hour // Disable orphan detection during test

	// Mock executor with release channel for deterministic control
	releaseCh := make(chan struct{})
	executor := &mockExecutor{
		releaseCh: releaseCh,
	}
	taskService := services.NewTaskService(client, nil)
	pool := NewWorkerPool("test-pod", client, cfg, executor, taskService, nil, nil)

	err := pool.Start(ctx)
	require.NoError(t, err)

	// Wait until exactly MaxConcurrentTasks tasks are in progress
	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		fmt.Sprintf("waiting for %d tasks in progress, got: %d", cfg.MaxConcurrentTasks, executor.inProgress.Load()),
		func() bool { return executor.inProgress.Load() == int64(cfg.MaxConcurrentTasks) })

	// Give the system a moment to stabilize
	time.Sleep(100 * time.Millisecond)

	// Verify exactly MaxConcurrentTasks are in progress (no races with 2 workers)
	assert.Equal(t, int64(cfg.MaxConcurrentTasks), executor.inProgress.Load(),
		"should have exactly MaxConcurrentTasks in progress")

	// Verify the database also shows MaxConcurrentTasks running
	dbRunning, err := client.Task.Query().
		Where(task.StatusEQ(task.StatusRunning)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxConcurrentTasks, dbRunning, "DB should show MaxConcurrentTasks running")

	// Release executions to complete
	close(releaseCh)

	// Wait for first batch to complete
	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		fmt.Sprintf("waiting for first batch to complete, in_progress: %d", executor.inProgress.Load()),
		func() bool { return executor.inProgress.Load() == 0 })

	// Workers should now claim remaining tasks (3 more)
	// Wait for all 5 tasks to be processed
	awaitCondition(t, 5*time.Second, 50*time.Millisecond,
		fmt.Sprintf("waiting for all tasks to be processed, processed: %d", executor.processed.Load()),
		func() bool { return executor.processed.Load() >= 5 })

	// Stop the pool
	pool.Stop()

	// Verify all 5 tasks completed
	completedCount, err := client.Task.Query().
		Where(task.StatusEQ(task.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, completedCount, "all 5 tasks should complete")
}

// TestHeartbeatUpdates tests that heartbeats update last_heartbeat_at.
func TestHeartbeatUpdates(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	ctx := context.Background()

	// Create a queued task
	row := createQueuedTask(ctx, t, client, models.PriorityMedium)

	// Configure pool with short heartbeat interval and blocking executor
	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 50 * time.Millisecond
	cfg.HeartbeatInterval = 100 * time.Millisecond // Short interval for testing

	// Mock executor that blocks until released (to keep the task running)
	releaseCh := make(chan struct{})
	executor := &mockExecutor{
		releaseCh: releaseCh,
	}
	taskService := services.NewTaskService(client, nil)
	pool := NewWorkerPool("test-pod", client, cfg, executor, taskService, nil, nil)

	err := pool.Start(ctx)
	require.NoError(t, err)

	// Wait for the task to be claimed
	awaitCondition(t, 5*time.Second, 10*time.Millisecond,
		"waiting for task to be claimed",
		func() bool {
			row, err := client.Task.Get(ctx, row.ID)
			require.NoError(t, err)
			return row.Status == task.StatusRunning && row.LastHeartbeatAt != nil
		})

	// Get initial last_heartbeat_at
	s1, err := client.Task.Get(ctx, row.ID)
	require.NoError(t, err)
	require.Equal(t, task.StatusRunning, s1.Status)
	require.NotNil(t, s1.LastHeartbeatAt)
	initialBeat := *s1.LastHeartbeatAt

	// Wait for at least one heartbeat to occur (heartbeat interval is 100ms)
	time.Sleep(250 * time.Millisecond)

	// Get updated last_heartbeat_at
	s2, err := client.Task.Get(ctx, row.ID)
	require.NoError(t, err)
	require.Equal(t, task.StatusRunning, s2.Status, "task should still be running")
	require.NotNil(t, s2.LastHeartbeatAt)

	// Verify heartbeat actually updated the timestamp
	assert.True(t, s2.LastHeartbeatAt.After(initialBeat), "last_heartbeat_at should be updated by heartbeat")

	// Release executor and stop pool
	close(releaseCh)
	pool.Stop()
}

// nilExecutor returns a nil *ExecutionResult for testing the nil-guard.
type nilExecutor struct {
	blockUntilCtxDone bool
	processed         atomic.Int64
}

func (e *nilExecutor) Execute(ctx context.Context, _ *ent.Task) *ExecutionResult {
	e.processed.Add(1)
	if e.blockUntilCtxDone {
		<-ctx.Done()
	}
	return nil
}

// TestNilExecutionResultGuard tests that a nil *ExecutionResult from
// TaskExecutor.Execute does not panic and is translated into the correct
// terminal status.
func TestNilExecutionResultGuard(t *testing.T) {
	t.Run("nil result without context error marks task failed", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		row := createQueuedTask(ctx, t, client, models.PriorityMedium)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: false}
		taskService := services.NewTaskService(client, nil)
		pool := NewWorkerPool("test-pod", client, cfg, executor, taskService, nil, nil)

		require.NoError(t, pool.Start(ctx))

		// Wait until the terminal status is persisted
		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for task to reach terminal status",
			func() bool {
				r, err := client.Task.Get(ctx, row.ID)
				require.NoError(t, err)
				return r.Status == task.StatusFailed
			})

		pool.Stop()

		updated, err := client.Task.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "executor returned nil result")
	})

	t.Run("nil result with deadline exceeded records the timeout", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		row := createQueuedTask(ctx, t, client, models.PriorityMedium)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.TaskTimeout = 200 * time.Millisecond

		executor := &nilExecutor{blockUntilCtxDone: true}
		taskService := services.NewTaskService(client, nil)
		pool := NewWorkerPool("test-pod", client, cfg, executor, taskService, nil, nil)

		require.NoError(t, pool.Start(ctx))

		// Wait for processing (must exceed the 200ms timeout)
		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for task to reach terminal status",
			func() bool {
				r, err := client.Task.Get(ctx, row.ID)
				require.NoError(t, err)
				return r.Status == task.StatusFailed
			})

		pool.Stop()

		updated, err := client.Task.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "timed out")
		assert.Contains(t, *updated.ErrorMessage, "200ms")
	})

	t.Run("cancellation through the pool marks task failed", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		row := createQueuedTask(ctx, t, client, models.PriorityMedium)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.TaskTimeout = 30 * time.Second // Long timeout so cancellation wins

		executor := &nilExecutor{blockUntilCtxDone: true}
		taskService := services.NewTaskService(client, nil)
		pool := NewWorkerPool("test-pod", client, cfg, executor, taskService, nil, nil)

		require.NoError(t, pool.Start(ctx))

		// Wait for the task to be claimed
		awaitCondition(t, 5*time.Second, 10*time.Millisecond,
			"waiting for task to be claimed",
			func() bool {
				r, err := client.Task.Get(ctx, row.ID)
				require.NoError(t, err)
				return r.Status == task.StatusRunning
			})

		// Cancel via the pool (same path the API uses)
		cancelled := pool.CancelTask(row.ID)
		require.True(t, cancelled, "CancelTask should find the active task")

		// Wait for the executor to finish and status to be persisted
		awaitCondition(t, 5*time.Second, 50*time.Millisecond,
			"waiting for task to reach terminal status",
			func() bool {
				r, err := client.Task.Get(ctx, row.ID)
				require.NoError(t, err)
				return r.Status == task.StatusFailed
			})

		pool.Stop()

		updated, err := client.Task.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorMessage)
		assert.Contains(t, *updated.ErrorMessage, "context canceled")
	})
}

// TestDeadLetterRedrive tests the background drain: pending entries come back
// as fresh queued tasks, entries at the attempt ceiling are abandoned.
func TestDeadLetterRedrive(t *testing.T) {
	t.Run("pending entry is redriven as a fresh task", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		// A task that already failed, dead-lettered with its snapshot
		source, err := client.Task.Create().
			SetID(uuid.New().String()).
			SetTitle("Deploy the staging environment").
			SetDescription("Terraform apply against staging.").
			SetTaskType(string(models.TaskTypeDeployment)).
			SetPriority(string(models.PriorityHigh)).
			SetPriorityRank(models.PriorityHigh.Rank()).
			SetStatus(task.StatusFailed).
			SetProcessed(true).
			Save(ctx)
		require.NoError(t, err)

		dlq := services.NewDLQService(client, 0)
		entry, err := dlq.Add(ctx, source.ID, "devops", services.SnapshotTask(source), "agent devops failed after 3 attempts", 0, string(models.PriorityHigh))
		require.NoError(t, err)

		cfg := intTestQueueConfig()
		cfg.WorkerCount = 1
		cfg.PollInterval = 50 * time.Millisecond
		cfg.DLQRedriveInterval = 100 * time.Millisecond

		executor := &mockExecutor{}
		publisher := &capturingPublisher{}
		taskService := services.NewTaskService(client, nil)
		pool := NewWorkerPool("test-pod", client, cfg, executor, taskService, dlq, publisher)

		require.NoError(t, pool.Start(ctx))

		// The drain queues a fresh task; the worker picks it up and completes it
		awaitCondition(t, 10*time.Second, 100*time.Millisecond,
			fmt.Sprintf("waiting for redrive task to be processed, processed: %d", executor.processed.Load()),
			func() bool { return executor.processed.Load() >= 1 })

		pool.Stop()

		// The redrive task carries markers back to the entry and source task
		redriven, err := client.Task.Query().
			Where(task.StatusEQ(task.StatusCompleted)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, source.Title, redriven.Title)
		assert.Equal(t, string(models.PriorityHigh), redriven.Priority)
		assert.Equal(t, source.ID, redriven.Context["redrive_of"])
		assert.Equal(t, entry.ID, redriven.Context["dlq_entry_id"])
		assert.EqualValues(t, 1, redriven.Context["redrive_attempt"])

		// The entry counted the attempt and is waiting on the run's outcome
		updatedEntry, err := client.DeadLetter.Get(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, deadletter.StatusRetrying, updatedEntry.Status)
		assert.Equal(t, 1, updatedEntry.Attempts)
		assert.NotNil(t, updatedEntry.LastRetryAt)

		// The source task row is untouched by the redrive
		sourceAfter, err := client.Task.Get(ctx, source.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, sourceAfter.Status)

		// The drain published the entry transition
		publisher.mu.Lock()
		defer publisher.mu.Unlock()
		require.Len(t, publisher.deadLetters, 1)
		assert.Equal(t, entry.ID, publisher.deadLetters[0].EntryID)
		assert.Equal(t, events.DeadLetterRedriven, publisher.deadLetters[0].Status)
		assert.Equal(t, 1, publisher.deadLetters[0].Attempts)
	})

	t.Run("entry at the attempt ceiling is abandoned", func(t *testing.T) {
		dbClient := testdb.NewTestClient(t)
		client := dbClient.Client
		ctx := context.Background()

		source, err := client.Task.Create().
			SetID(uuid.New().String()).
			SetTitle("Hopeless task").
			SetDescription("failed every redrive so far").
			SetTaskType(string(models.TaskTypeGeneral)).
			SetStatus(task.StatusFailed).
			SetProcessed(true).
			Save(ctx)
		require.NoError(t, err)

		dlq := services.NewDLQService(client, 0)
		entry, err := dlq.Add(ctx, source.ID, "general", services.SnapshotTask(source), "still failing", services.DefaultDLQMaxAttempts, string(models.PriorityMedium))
		require.NoError(t, err)

		// Drain directly; no workers needed since nothing is requeued
		publisher := &capturingPublisher{}
		pool := &WorkerPool{
			dlqService:     dlq,
			eventPublisher: publisher,
		}
		pool.redriveDeadLetters(ctx)

		updatedEntry, err := client.DeadLetter.Get(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, deadletter.StatusAbandoned, updatedEntry.Status)
		require.NotNil(t, updatedEntry.AbandonReason)
		assert.Contains(t, *updatedEntry.AbandonReason, "retry ceiling reached")

		// The source task follows the entry out of the queue
		sourceAfter, err := client.Task.Get(ctx, source.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusAbandoned, sourceAfter.Status)

		// No new task was queued
		queued, err := client.Task.Query().
			Where(task.StatusEQ(task.StatusQueued)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, queued)

		publisher.mu.Lock()
		defer publisher.mu.Unlock()
		require.Len(t, publisher.deadLetters, 1)
		assert.Equal(t, events.DeadLetterAbandoned, publisher.deadLetters[0].Status)
		assert.Contains(t, publisher.deadLetters[0].Reason, "retry ceiling reached")
	})
}
