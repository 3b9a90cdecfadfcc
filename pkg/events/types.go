// Package events provides the persist-and-notify audit feed.
//
// Every lifecycle transition is written to the audit_events table and
// broadcast via PostgreSQL NOTIFY in the same transaction, so the table is
// simultaneously the audit log and the catchup source for consumers that
// missed notifications. External dashboards subscribe with LISTEN; nothing
// in-process depends on receiving the broadcasts.
//
// Two delivery classes:
//
//   - Persistent (stored in DB + NOTIFY): task status transitions,
//     conversation appends, dead-letter transitions. Survive restarts and
//     are queryable by cursor via services.AuditService.GetEventsSince.
//
//   - Transient (NOTIFY only): task progress updates. High-frequency and
//     ephemeral; a consumer that reconnects reads the current progress from
//     the task row instead.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Task lifecycle — single event type for all status transitions.
	EventTypeTaskStatus = "task.status"

	// Agent exchange appended to a task's conversation log.
	EventTypeConversationAppended = "conversation.appended"

	// Dead-letter lifecycle — single event type for all entry transitions.
	EventTypeDeadLetterStatus = "dead_letter.status"
)

// Dead-letter lifecycle status values (used in DeadLetterStatusPayload.Status).
const (
	DeadLetterAdded     = "added"
	DeadLetterRedriven  = "redriven"
	DeadLetterAbandoned = "abandoned"
	DeadLetterResolved  = "resolved"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Executor progress updates — high-frequency, ephemeral.
	EventTypeTaskProgress = "task.progress"
)

// GlobalTasksChannel carries task-level status events for all tasks.
// Dashboards showing the active task list subscribe here.
const GlobalTasksChannel = "tasks"

// DeadLetterChannel carries dead-letter entry transitions.
const DeadLetterChannel = "dead_letters"

// TaskChannel returns the channel name for a specific task's events.
// Format: "task:{task_id}"
func TaskChannel(taskID string) string {
	return "task:" + taskID
}
