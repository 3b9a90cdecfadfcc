package events

// BasePayload carries the fields every event shares. Type identifies the
// event for consumers, TaskID routes it, Timestamp is RFC3339Nano.
type BasePayload struct {
	Type      string `json:"type"`
	TaskID    string `json:"task_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

// TaskStatusPayload is the payload for task.status events.
// Published on every task lifecycle transition.
type TaskStatusPayload struct {
	BasePayload
	Status         string `json:"status"`                    // pending, queued, running, dispatched, completed, failed, abandoned
	PreviousStatus string `json:"previous_status,omitempty"` // empty on creation
	WorkerID       string `json:"worker_id,omitempty"`       // set while claimed
	ErrorMessage   string `json:"error_message,omitempty"`   // set on failed / abandoned
}

// TaskProgressPayload is the payload for task.progress transient events.
// Published by the executor as workflow steps advance; never persisted.
type TaskProgressPayload struct {
	BasePayload
	Progress   int    `json:"progress"`            // 0-100
	StepName   string `json:"step_name,omitempty"` // workflow step currently running
	AgentID    string `json:"agent_id,omitempty"`
	StatusText string `json:"status_text,omitempty"` // human-readable, e.g. "Running step: execute"
}

// ConversationAppendedPayload is the payload for conversation.appended events.
// Content is deliberately omitted: entries can be large and the NOTIFY limit
// is 8000 bytes, so consumers fetch the entry from the API instead.
type ConversationAppendedPayload struct {
	BasePayload
	Sequence int    `json:"sequence"`
	AgentID  string `json:"agent_id"`
	Role     string `json:"role"` // request, response, synthesis, error
}

// DeadLetterStatusPayload is the payload for dead_letter.status events.
// Single event type for all entry transitions (added, redriven, abandoned,
// resolved).
type DeadLetterStatusPayload struct {
	BasePayload
	EntryID  string `json:"entry_id"`
	Status   string `json:"status"`
	Attempts int    `json:"attempts"`
	AgentID  string `json:"agent_id,omitempty"`
	Reason   string `json:"reason,omitempty"` // abandon reason or last error
}
