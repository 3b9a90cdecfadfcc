package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/models"
)

// barePool builds a pool with just the cancel registry wired, enough for
// exercising registration without workers or a database.
func barePool() *WorkerPool {
	return &WorkerPool{
		stopCh:      make(chan struct{}),
		activeTasks: make(map[string]context.CancelFunc),
	}
}

func TestPoolRegisterAndCancelTask(t *testing.T) {
	pool := barePool()

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterTask("task-1", cancel)

	assert.True(t, pool.CancelTask("task-1"))
	assert.Error(t, ctx.Err(), "cancel must fire the registered function")

	assert.False(t, pool.CancelTask("unknown"), "unregistered ids report not found")
}

func TestPoolUnregisterTask(t *testing.T) {
	pool := barePool()

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterTask("task-1", cancel)
	assert.True(t, pool.CancelTask("task-1"))

	pool.UnregisterTask("task-1")
	assert.False(t, pool.CancelTask("task-1"), "unregister must drop the entry")
}

func TestPoolGetActiveTaskIDs(t *testing.T) {
	pool := barePool()
	assert.Empty(t, pool.getActiveTaskIDs())

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterTask("task-a", cancel1)
	pool.RegisterTask("task-b", cancel2)

	ids := pool.getActiveTaskIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "task-a")
	assert.Contains(t, ids, "task-b")
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := barePool()

	pool.Stop()
	// sync.Once guards the channel close.
	assert.NotPanics(t, func() { pool.Stop() })
}

func TestStubExecutor(t *testing.T) {
	result := NewStubExecutor().Execute(context.Background(), nil)

	assert.Equal(t, models.StatusCompleted, result.Status)
	assert.NotEmpty(t, result.Summary)
	assert.Nil(t, result.Error)
}

func TestStubExecutorCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := NewStubExecutor().Execute(ctx, nil)
	assert.Equal(t, models.StatusFailed, result.Status)
	assert.Error(t, result.Error)
}
