package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwire/taskwire/pkg/database"
	"github.com/taskwire/taskwire/pkg/models"
	"github.com/taskwire/taskwire/pkg/services"
	testdb "github.com/taskwire/taskwire/test/database"
	"github.com/taskwire/taskwire/test/util"
)

// feedTestEnv holds all wired-up components for an integration test.
type feedTestEnv struct {
	dbClient  *database.Client
	publisher *EventPublisher
	audit     *services.AuditService
	listener  *NotifyListener
	received  chan notification
	taskID    string // Pre-created task (satisfies FK on audit_events)
	channel   string // task:<taskID>
}

type notification struct {
	channel string
	payload map[string]any
}

// setupFeedTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupFeedTest(t *testing.T) *feedTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create a task to satisfy the FK on audit_events
	taskID := uuid.New().String()
	tasks := services.NewTaskService(dbClient.Client, nil)
	parsed := &models.Task{
		TaskID:      taskID,
		Title:       "Event feed task",
		Description: "integration test task",
		TaskType:    models.TaskTypeBugReport,
		Priority:    models.PriorityMedium,
		CreatedAt:   time.Now(),
	}
	_, err := tasks.CreateTask(ctx, parsed)
	require.NoError(t, err)

	channel := TaskChannel(taskID)

	publisher := NewEventPublisher(dbClient.DB())
	audit := services.NewAuditService(dbClient.Client)

	// The listener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	received := make(chan notification, 32)
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, func(ch string, payload []byte) {
		var m map[string]any
		if err := json.Unmarshal(payload, &m); err != nil {
			t.Logf("bad NOTIFY payload: %v", err)
			return
		}
		received <- notification{channel: ch, payload: m}
	})
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })

	return &feedTestEnv{
		dbClient:  dbClient,
		publisher: publisher,
		audit:     audit,
		listener:  listener,
		received:  received,
		taskID:    taskID,
		channel:   channel,
	}
}

// subscribeAndWait subscribes to the env's task channel and waits for the
// LISTEN to take effect on the dedicated connection.
func (env *feedTestEnv) subscribeAndWait(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, env.listener.Subscribe(ctx, env.channel))
	require.Eventually(t, func() bool {
		return env.listener.subscribed(env.channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", env.channel)
}

// readNotification waits for the next notification with a timeout.
func readNotification(t *testing.T, ch chan notification, timeout time.Duration) notification {
	t.Helper()
	select {
	case n := <-ch:
		return n
	case <-time.After(timeout):
		t.Fatal("timed out waiting for NOTIFY")
		return notification{}
	}
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupFeedTest(t)
	ctx := context.Background()

	err := env.publisher.PublishTaskStatus(ctx, env.taskID, TaskStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeTaskStatus,
			TaskID:    env.taskID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Status:         "running",
		PreviousStatus: "queued",
	})
	require.NoError(t, err)

	err = env.publisher.PublishConversationAppended(ctx, env.taskID, ConversationAppendedPayload{
		BasePayload: BasePayload{
			Type:      EventTypeConversationAppended,
			TaskID:    env.taskID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Sequence: 1,
		AgentID:  "coder",
		Role:     "request",
	})
	require.NoError(t, err)

	// Query persisted events via AuditService
	events, err := env.audit.GetEventsSince(ctx, env.channel, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify order and content
	assert.Equal(t, env.taskID, events[0].TaskID)
	assert.Equal(t, env.channel, events[0].Channel)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(events[0].Payload), &first))
	assert.Equal(t, EventTypeTaskStatus, first["type"])
	assert.Equal(t, "running", first["status"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(events[1].Payload), &second))
	assert.Equal(t, EventTypeConversationAppended, second["type"])
	assert.Equal(t, "coder", second["agent_id"])

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupFeedTest(t)
	ctx := context.Background()

	err := env.publisher.PublishTaskProgress(ctx, env.taskID, TaskProgressPayload{
		BasePayload: BasePayload{
			Type:      EventTypeTaskProgress,
			TaskID:    env.taskID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Progress: 40,
		StepName: "execute",
	})
	require.NoError(t, err)

	events, err := env.audit.GetEventsSince(ctx, env.channel, 0)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted in DB")
}

func TestIntegration_NotifyDelivery(t *testing.T) {
	env := setupFeedTest(t)
	ctx := context.Background()

	env.subscribeAndWait(t)

	// Persistent event arrives via pg_notify → listener → handler
	err := env.publisher.PublishTaskStatus(ctx, env.taskID, TaskStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeTaskStatus,
			TaskID:    env.taskID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Status: "completed",
	})
	require.NoError(t, err)

	n := readNotification(t, env.received, 5*time.Second)
	assert.Equal(t, env.channel, n.channel)
	assert.Equal(t, EventTypeTaskStatus, n.payload["type"])
	assert.Equal(t, "completed", n.payload["status"])
	// db_event_id is stamped onto the wire copy after the audit INSERT
	assert.NotNil(t, n.payload["db_event_id"])

	// Transient event is delivered too, without a db_event_id
	err = env.publisher.PublishTaskProgress(ctx, env.taskID, TaskProgressPayload{
		BasePayload: BasePayload{
			Type:      EventTypeTaskProgress,
			TaskID:    env.taskID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Progress:   75,
		StatusText: "Running step: verify",
	})
	require.NoError(t, err)

	n = readNotification(t, env.received, 5*time.Second)
	assert.Equal(t, EventTypeTaskProgress, n.payload["type"])
	assert.Equal(t, float64(75), n.payload["progress"])
	assert.Nil(t, n.payload["db_event_id"])
}

func TestIntegration_OversizedPayloadTruncatedOnNotify(t *testing.T) {
	env := setupFeedTest(t)
	ctx := context.Background()

	env.subscribeAndWait(t)

	longError := make([]byte, 9000)
	for i := range longError {
		longError[i] = 'e'
	}
	err := env.publisher.PublishTaskStatus(ctx, env.taskID, TaskStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeTaskStatus,
			TaskID:    env.taskID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Status:       "failed",
		ErrorMessage: string(longError),
	})
	require.NoError(t, err)

	// The NOTIFY carries the truncation envelope with routing fields only.
	n := readNotification(t, env.received, 5*time.Second)
	assert.Equal(t, EventTypeTaskStatus, n.payload["type"])
	assert.Equal(t, true, n.payload["truncated"])
	assert.NotNil(t, n.payload["db_event_id"])

	// The full payload is still in the audit log for catchup.
	events, err := env.audit.GetEventsSince(ctx, env.channel, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Payload, "eeee")
}

func TestIntegration_CatchupCursor(t *testing.T) {
	env := setupFeedTest(t)
	ctx := context.Background()

	// Pre-populate the audit log with 3 persistent events
	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishConversationAppended(ctx, env.taskID, ConversationAppendedPayload{
			BasePayload: BasePayload{
				Type:      EventTypeConversationAppended,
				TaskID:    env.taskID,
				Timestamp: time.Now().Format(time.RFC3339Nano),
			},
			Sequence: i,
			AgentID:  "coder",
			Role:     "response",
		})
		require.NoError(t, err)
	}

	all, err := env.audit.GetEventsSince(ctx, env.channel, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// A consumer that saw the first event catches up with the remaining two.
	rest, err := env.audit.GetEventsSince(ctx, env.channel, all[0].ID)
	require.NoError(t, err)
	require.Len(t, rest, 2)

	var p map[string]any
	require.NoError(t, json.Unmarshal([]byte(rest[0].Payload), &p))
	assert.Equal(t, float64(2), p["sequence"])
}
