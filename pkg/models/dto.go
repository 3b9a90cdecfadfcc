package models

import (
	"time"

	"github.com/taskwire/taskwire/ent"
)

// TaskFilters contains filtering options for listing tasks.
type TaskFilters struct {
	Status        string     `json:"status,omitempty"`
	Priority      string     `json:"priority,omitempty"`
	TaskType      string     `json:"task_type,omitempty"`
	PrimaryAgent  string     `json:"primary_agent,omitempty"`
	Sender        string     `json:"sender,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// TaskListResponse contains a paginated task list.
type TaskListResponse struct {
	Tasks      []*ent.Task `json:"tasks"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

// ConversationRole identifies who produced a conversation entry.
type ConversationRole string

const (
	RoleRequest   ConversationRole = "request"
	RoleResponse  ConversationRole = "response"
	RoleSynthesis ConversationRole = "synthesis"
	RoleError     ConversationRole = "error"
)

// AppendConversationRequest describes one agent exchange to record on a
// task's conversation log. Sequence numbers are allocated server-side.
type AppendConversationRequest struct {
	TaskID   string                 `json:"task_id"`
	AgentID  string                 `json:"agent_id"`
	Role     string                 `json:"role"`
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// DeadLetterStatus is the lifecycle state of a dead-letter entry.
type DeadLetterStatus string

const (
	DeadLetterPending   DeadLetterStatus = "pending"
	DeadLetterRetrying  DeadLetterStatus = "retrying"
	DeadLetterAbandoned DeadLetterStatus = "abandoned"
)

// DeadLetterStats summarizes the dead-letter queue. Oldest is the first-seen
// time of the oldest pending entry, nil when the backlog is empty.
type DeadLetterStats struct {
	Pending   int        `json:"pending"`
	Retrying  int        `json:"retrying"`
	Abandoned int        `json:"abandoned"`
	Total     int        `json:"total"`
	Oldest    *time.Time `json:"oldest,omitempty"`
}
