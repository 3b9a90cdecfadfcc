package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusPayloadJSON(t *testing.T, taskID, status, errMsg string) string {
	t.Helper()
	raw, err := json.Marshal(TaskStatusPayload{
		BasePayload:  BasePayload{Type: EventTypeTaskStatus, TaskID: taskID},
		Status:       status,
		ErrorMessage: errMsg,
	})
	require.NoError(t, err)
	return string(raw)
}

func TestFitNotifyLimit(t *testing.T) {
	t.Run("small payload passes through unchanged", func(t *testing.T) {
		payload := statusPayloadJSON(t, "task-123", "running", "")

		result, err := fitNotifyLimit(payload)
		require.NoError(t, err)
		assert.Equal(t, payload, result)
	})

	t.Run("oversized payload collapses to routing stub", func(t *testing.T) {
		payload := statusPayloadJSON(t, "task-789", "failed", strings.Repeat("x", 8000))

		result, err := fitNotifyLimit(payload)
		require.NoError(t, err)
		assert.Less(t, len(result), notifyByteLimit)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, EventTypeTaskStatus)
		assert.Contains(t, result, "task-789")
		assert.NotContains(t, result, "xxxx", "stub must drop the oversized field")
	})

	t.Run("payload just under the limit is kept whole", func(t *testing.T) {
		// Measure the envelope first so the filler lands the total a hair
		// under the wire limit regardless of field-name lengths.
		envelope := statusPayloadJSON(t, "", "", "")
		fill := strings.Repeat("b", notifyByteLimit-len(envelope)-20)
		payload := statusPayloadJSON(t, "", "", fill)
		require.LessOrEqual(t, len(payload), notifyByteLimit, "filler miscalculated")

		result, err := fitNotifyLimit(payload)
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty object", func(t *testing.T) {
		result, err := fitNotifyLimit("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestStampEventID(t *testing.T) {
	t.Run("adds db_event_id to the wire payload", func(t *testing.T) {
		result, err := stampEventID([]byte(statusPayloadJSON(t, "task-1", "queued", "")), 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "task-1")
	})

	t.Run("stamp survives truncation", func(t *testing.T) {
		oversized := statusPayloadJSON(t, "task-789", "failed", strings.Repeat("x", 8000))

		result, err := stampEventID([]byte(oversized), 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "task-789")
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestTaskStatusPayload_JSON(t *testing.T) {
	payload := TaskStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeTaskStatus,
			TaskID:    "task-123",
			Timestamp: "2026-08-10T12:00:00Z",
		},
		Status:         "running",
		PreviousStatus: "queued",
		WorkerID:       "worker-2",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded TaskStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeTaskStatus, decoded.Type)
	assert.Equal(t, "task-123", decoded.TaskID)
	assert.Equal(t, "running", decoded.Status)
	assert.Equal(t, "queued", decoded.PreviousStatus)
	assert.Equal(t, "worker-2", decoded.WorkerID)
	assert.Equal(t, "2026-08-10T12:00:00Z", decoded.Timestamp)
}

func TestTaskStatusPayload_OmitsEmptyOptionals(t *testing.T) {
	data, err := json.Marshal(TaskStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeTaskStatus,
			TaskID:    "task-123",
			Timestamp: "2026-08-10T12:00:00Z",
		},
		Status: "queued",
	})
	require.NoError(t, err)

	assert.NotContains(t, string(data), "previous_status")
	assert.NotContains(t, string(data), "worker_id")
	assert.NotContains(t, string(data), "error_message")
}

func TestDeadLetterStatusPayload_JSON(t *testing.T) {
	payload := DeadLetterStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeDeadLetterStatus,
			TaskID:    "task-456",
			Timestamp: "2026-08-10T12:00:00Z",
		},
		EntryID:  "entry-1",
		Status:   DeadLetterRedriven,
		Attempts: 2,
		AgentID:  "coder",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded DeadLetterStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeDeadLetterStatus, decoded.Type)
	assert.Equal(t, "entry-1", decoded.EntryID)
	assert.Equal(t, DeadLetterRedriven, decoded.Status)
	assert.Equal(t, 2, decoded.Attempts)
	assert.Equal(t, "coder", decoded.AgentID)
}

func TestConversationAppendedPayload_JSON(t *testing.T) {
	payload := ConversationAppendedPayload{
		BasePayload: BasePayload{
			Type:      EventTypeConversationAppended,
			TaskID:    "task-200",
			Timestamp: "2026-08-13T10:00:00Z",
		},
		Sequence: 3,
		AgentID:  "tester",
		Role:     "response",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded ConversationAppendedPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeConversationAppended, decoded.Type)
	assert.Equal(t, "task-200", decoded.TaskID)
	assert.Equal(t, 3, decoded.Sequence)
	assert.Equal(t, "tester", decoded.AgentID)
	assert.Equal(t, "response", decoded.Role)
	// Content is never included; consumers fetch the entry from the API.
	assert.NotContains(t, string(data), "content")
}

func TestChannelNames(t *testing.T) {
	assert.Equal(t, "task:abc-123", TaskChannel("abc-123"))
	assert.Equal(t, "tasks", GlobalTasksChannel)
	assert.Equal(t, "dead_letters", DeadLetterChannel)
}
