package models

import (
	"fmt"
	"strings"
	"time"
)

// Priority represents task urgency. Values are ordered: Urgent > High > Medium > Low.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// priorityRank orders priorities for comparison and queue ordering.
// Higher rank dequeues first.
var priorityRank = map[Priority]int{
	PriorityUrgent: 4,
	PriorityHigh:   3,
	PriorityMedium: 2,
	PriorityLow:    1,
}

// Rank returns the numeric ordering of the priority (urgent=4 .. low=1).
// Unknown values rank as medium.
func (p Priority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return priorityRank[PriorityMedium]
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	_, ok := priorityRank[p]
	return ok
}

// ParsePriority normalizes a string into a Priority, defaulting to medium.
func ParsePriority(s string) Priority {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if p.Valid() {
		return p
	}
	return PriorityMedium
}

// TaskType classifies what kind of work an email asks for.
type TaskType string

const (
	TaskTypeCodeReview     TaskType = "code_review"
	TaskTypeBugReport      TaskType = "bug_report"
	TaskTypeFeatureRequest TaskType = "feature_request"
	TaskTypeDocumentation  TaskType = "documentation"
	TaskTypeDeployment     TaskType = "deployment"
	TaskTypeInvestigation  TaskType = "investigation"
	TaskTypeCalendarEvent  TaskType = "calendar_event"
	TaskTypeGeneral        TaskType = "general"
)

// TaskTypes lists every known task type.
func TaskTypes() []TaskType {
	return []TaskType{
		TaskTypeCodeReview,
		TaskTypeBugReport,
		TaskTypeFeatureRequest,
		TaskTypeDocumentation,
		TaskTypeDeployment,
		TaskTypeInvestigation,
		TaskTypeCalendarEvent,
		TaskTypeGeneral,
	}
}

// Valid reports whether t is one of the known task types.
func (t TaskType) Valid() bool {
	for _, known := range TaskTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// TaskStatus is the task lifecycle state.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusQueued     TaskStatus = "queued"
	StatusRunning    TaskStatus = "running"
	StatusDispatched TaskStatus = "dispatched"
	StatusCompleted  TaskStatus = "completed"
	StatusFailed     TaskStatus = "failed"
	StatusAbandoned  TaskStatus = "abandoned"
)

// statusTransitions encodes the lifecycle machine:
// pending → (queued|running|failed) → (dispatched|completed|failed) → abandoned (from failed only).
// running → queued is the orphan-requeue path after a worker dies mid-claim;
// failed → queued stays illegal (dead-letter redrives create a new task).
// Terminal states except failed admit no further transitions.
var statusTransitions = map[TaskStatus][]TaskStatus{
	StatusPending:    {StatusQueued, StatusRunning, StatusFailed},
	StatusQueued:     {StatusRunning, StatusDispatched, StatusCompleted, StatusFailed},
	StatusRunning:    {StatusQueued, StatusDispatched, StatusCompleted, StatusFailed},
	StatusDispatched: {},
	StatusCompleted:  {},
	StatusFailed:     {StatusAbandoned},
	StatusAbandoned:  {},
}

// CanTransition reports whether from → to is a legal status transition.
func CanTransition(from, to TaskStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns a descriptive error when from → to is illegal.
func ValidateTransition(from, to TaskStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("illegal task status transition %q → %q", from, to)
	}
	return nil
}

// IsTerminal reports whether the status admits no further transitions
// (failed is not terminal: it may still be abandoned).
func (s TaskStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// ProcessingNote is one append-only annotation on a task.
type ProcessingNote struct {
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
}

// Task is the canonical unit of work derived from an email.
// The parser produces it fully populated with status=pending; the task
// service persists it and owns every later mutation.
type Task struct {
	TaskID      string    `json:"task_id"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TaskType    TaskType  `json:"task_type"`
	Priority    Priority  `json:"priority"`

	EmailMetadata *EmailMetadata `json:"email_metadata,omitempty"`

	Deadline        *time.Time `json:"deadline,omitempty"`
	Dependencies    []string   `json:"dependencies,omitempty"`
	SuccessCriteria []string   `json:"success_criteria,omitempty"`
	Constraints     []string   `json:"constraints,omitempty"`
	Deliverables    []string   `json:"deliverables,omitempty"`

	PrimaryAgent     string   `json:"primary_agent"`
	SupportingAgents []string `json:"supporting_agents,omitempty"`
	AssignmentReason string   `json:"assignment_reason,omitempty"`

	Status          TaskStatus       `json:"status"`
	Processed       bool             `json:"processed"`
	Progress        int              `json:"progress"`
	ProcessingNotes []ProcessingNote `json:"processing_notes,omitempty"`

	Tags    []string       `json:"tags,omitempty"`
	Context map[string]any `json:"context,omitempty"`
}

// AddNote appends a processing note with a UTC timestamp.
func (t *Task) AddNote(note string) {
	t.ProcessingNotes = append(t.ProcessingNotes, ProcessingNote{
		Timestamp: time.Now().UTC(),
		Note:      note,
	})
}

// SetContext lazily initializes the context map and stores a value.
func (t *Task) SetContext(key string, value any) {
	if t.Context == nil {
		t.Context = make(map[string]any)
	}
	t.Context[key] = value
}

// Validate checks the task invariants that must hold at creation time.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title must not be empty")
	}
	if !t.TaskType.Valid() {
		return fmt.Errorf("unknown task type %q", t.TaskType)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("unknown priority %q", t.Priority)
	}
	if t.Deadline != nil && !t.Deadline.After(t.CreatedAt) {
		return fmt.Errorf("deadline %s is not after created_at %s", t.Deadline, t.CreatedAt)
	}
	for _, agent := range t.SupportingAgents {
		if agent == t.PrimaryAgent {
			return fmt.Errorf("supporting agents must not contain primary agent %q", t.PrimaryAgent)
		}
	}
	if t.Progress < 0 || t.Progress > 100 {
		return fmt.Errorf("progress %d outside [0,100]", t.Progress)
	}
	return nil
}
