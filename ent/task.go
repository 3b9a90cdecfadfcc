// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/taskwire/taskwire/ent/task"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Short human-readable summary derived from the email subject
	Title string `json:"title,omitempty"`
	// Cleaned email body (full-text searchable)
	Description string `json:"description,omitempty"`
	// Classification (e.g. 'bug_report', 'feature_request')
	TaskType string `json:"task_type,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority string `json:"priority,omitempty"`
	// Numeric priority for queue ordering (urgent=4 .. low=1)
	PriorityRank int `json:"priority_rank,omitempty"`
	// RFC 5322 Message-ID of the originating email
	MessageID string `json:"message_id,omitempty"`
	// Sender, recipient, subject, received_at, attachment names
	EmailMetadata map[string]interface{} `json:"email_metadata,omitempty"`
	// Deadline holds the value of the "deadline" field.
	Deadline *time.Time `json:"deadline,omitempty"`
	// Dependencies holds the value of the "dependencies" field.
	Dependencies []string `json:"dependencies,omitempty"`
	// SuccessCriteria holds the value of the "success_criteria" field.
	SuccessCriteria []string `json:"success_criteria,omitempty"`
	// Constraints holds the value of the "constraints" field.
	Constraints []string `json:"constraints,omitempty"`
	// Deliverables holds the value of the "deliverables" field.
	Deliverables []string `json:"deliverables,omitempty"`
	// Agent profile assigned by routing
	PrimaryAgent string `json:"primary_agent,omitempty"`
	// SupportingAgents holds the value of the "supporting_agents" field.
	SupportingAgents []string `json:"supporting_agents,omitempty"`
	// AssignmentReason holds the value of the "assignment_reason" field.
	AssignmentReason string `json:"assignment_reason,omitempty"`
	// Status holds the value of the "status" field.
	Status task.Status `json:"status,omitempty"`
	// True once execution reached a terminal outcome
	Processed bool `json:"processed,omitempty"`
	// 0-100, monotonically non-decreasing
	Progress int `json:"progress,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Final synthesized output (full-text searchable)
	ResultSummary *string `json:"result_summary,omitempty"`
	// For multi-replica coordination
	WorkerID *string `json:"worker_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Times the task was requeued after orphan recovery
	RequeueCount int `json:"requeue_count,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// Free-form execution context (workflow hints, redrive links)
	Context map[string]interface{} `json:"context,omitempty"`
	// When the task was ingested
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// When a worker claimed the task (queued to running)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Notes holds the value of the notes edge.
	Notes []*TaskNote `json:"notes,omitempty"`
	// ConversationEntries holds the value of the conversation_entries edge.
	ConversationEntries []*ConversationEntry `json:"conversation_entries,omitempty"`
	// DeadLetters holds the value of the dead_letters edge.
	DeadLetters []*DeadLetter `json:"dead_letters,omitempty"`
	// AuditEvents holds the value of the audit_events edge.
	AuditEvents []*AuditEvent `json:"audit_events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// NotesOrErr returns the Notes value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) NotesOrErr() ([]*TaskNote, error) {
	if e.loadedTypes[0] {
		return e.Notes, nil
	}
	return nil, &NotLoadedError{edge: "notes"}
}

// ConversationEntriesOrErr returns the ConversationEntries value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) ConversationEntriesOrErr() ([]*ConversationEntry, error) {
	if e.loadedTypes[1] {
		return e.ConversationEntries, nil
	}
	return nil, &NotLoadedError{edge: "conversation_entries"}
}

// DeadLettersOrErr returns the DeadLetters value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) DeadLettersOrErr() ([]*DeadLetter, error) {
	if e.loadedTypes[2] {
		return e.DeadLetters, nil
	}
	return nil, &NotLoadedError{edge: "dead_letters"}
}

// AuditEventsOrErr returns the AuditEvents value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) AuditEventsOrErr() ([]*AuditEvent, error) {
	if e.loadedTypes[3] {
		return e.AuditEvents, nil
	}
	return nil, &NotLoadedError{edge: "audit_events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldEmailMetadata, task.FieldDependencies, task.FieldSuccessCriteria, task.FieldConstraints, task.FieldDeliverables, task.FieldSupportingAgents, task.FieldTags, task.FieldContext:
			values[i] = new([]byte)
		case task.FieldProcessed:
			values[i] = new(sql.NullBool)
		case task.FieldPriorityRank, task.FieldProgress, task.FieldRequeueCount:
			values[i] = new(sql.NullInt64)
		case task.FieldID, task.FieldTitle, task.FieldDescription, task.FieldTaskType, task.FieldPriority, task.FieldMessageID, task.FieldPrimaryAgent, task.FieldAssignmentReason, task.FieldStatus, task.FieldErrorMessage, task.FieldResultSummary, task.FieldWorkerID:
			values[i] = new(sql.NullString)
		case task.FieldDeadline, task.FieldLastHeartbeatAt, task.FieldCreatedAt, task.FieldUpdatedAt, task.FieldStartedAt, task.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case task.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case task.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case task.FieldTaskType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_type", values[i])
			} else if value.Valid {
				_m.TaskType = value.String
			}
		case task.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = value.String
			}
		case task.FieldPriorityRank:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority_rank", values[i])
			} else if value.Valid {
				_m.PriorityRank = int(value.Int64)
			}
		case task.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case task.FieldEmailMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field email_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EmailMetadata); err != nil {
					return fmt.Errorf("unmarshal field email_metadata: %w", err)
				}
			}
		case task.FieldDeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deadline", values[i])
			} else if value.Valid {
				_m.Deadline = new(time.Time)
				*_m.Deadline = value.Time
			}
		case task.FieldDependencies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dependencies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dependencies); err != nil {
					return fmt.Errorf("unmarshal field dependencies: %w", err)
				}
			}
		case task.FieldSuccessCriteria:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field success_criteria", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SuccessCriteria); err != nil {
					return fmt.Errorf("unmarshal field success_criteria: %w", err)
				}
			}
		case task.FieldConstraints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field constraints", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Constraints); err != nil {
					return fmt.Errorf("unmarshal field constraints: %w", err)
				}
			}
		case task.FieldDeliverables:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field deliverables", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Deliverables); err != nil {
					return fmt.Errorf("unmarshal field deliverables: %w", err)
				}
			}
		case task.FieldPrimaryAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_agent", values[i])
			} else if value.Valid {
				_m.PrimaryAgent = value.String
			}
		case task.FieldSupportingAgents:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field supporting_agents", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SupportingAgents); err != nil {
					return fmt.Errorf("unmarshal field supporting_agents: %w", err)
				}
			}
		case task.FieldAssignmentReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_reason", values[i])
			} else if value.Valid {
				_m.AssignmentReason = value.String
			}
		case task.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = task.Status(value.String)
			}
		case task.FieldProcessed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field processed", values[i])
			} else if value.Valid {
				_m.Processed = value.Bool
			}
		case task.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = int(value.Int64)
			}
		case task.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case task.FieldResultSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_summary", values[i])
			} else if value.Valid {
				_m.ResultSummary = new(string)
				*_m.ResultSummary = value.String
			}
		case task.FieldWorkerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field worker_id", values[i])
			} else if value.Valid {
				_m.WorkerID = new(string)
				*_m.WorkerID = value.String
			}
		case task.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case task.FieldRequeueCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field requeue_count", values[i])
			} else if value.Valid {
				_m.RequeueCount = int(value.Int64)
			}
		case task.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case task.FieldContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Context); err != nil {
					return fmt.Errorf("unmarshal field context: %w", err)
				}
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case task.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case task.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case task.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNotes queries the "notes" edge of the Task entity.
func (_m *Task) QueryNotes() *TaskNoteQuery {
	return NewTaskClient(_m.config).QueryNotes(_m)
}

// QueryConversationEntries queries the "conversation_entries" edge of the Task entity.
func (_m *Task) QueryConversationEntries() *ConversationEntryQuery {
	return NewTaskClient(_m.config).QueryConversationEntries(_m)
}

// QueryDeadLetters queries the "dead_letters" edge of the Task entity.
func (_m *Task) QueryDeadLetters() *DeadLetterQuery {
	return NewTaskClient(_m.config).QueryDeadLetters(_m)
}

// QueryAuditEvents queries the "audit_events" edge of the Task entity.
func (_m *Task) QueryAuditEvents() *AuditEventQuery {
	return NewTaskClient(_m.config).QueryAuditEvents(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("task_type=")
	builder.WriteString(_m.TaskType)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(_m.Priority)
	builder.WriteString(", ")
	builder.WriteString("priority_rank=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityRank))
	builder.WriteString(", ")
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("email_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailMetadata))
	builder.WriteString(", ")
	if v := _m.Deadline; v != nil {
		builder.WriteString("deadline=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("dependencies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dependencies))
	builder.WriteString(", ")
	builder.WriteString("success_criteria=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessCriteria))
	builder.WriteString(", ")
	builder.WriteString("constraints=")
	builder.WriteString(fmt.Sprintf("%v", _m.Constraints))
	builder.WriteString(", ")
	builder.WriteString("deliverables=")
	builder.WriteString(fmt.Sprintf("%v", _m.Deliverables))
	builder.WriteString(", ")
	builder.WriteString("primary_agent=")
	builder.WriteString(_m.PrimaryAgent)
	builder.WriteString(", ")
	builder.WriteString("supporting_agents=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupportingAgents))
	builder.WriteString(", ")
	builder.WriteString("assignment_reason=")
	builder.WriteString(_m.AssignmentReason)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("processed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Processed))
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ResultSummary; v != nil {
		builder.WriteString("result_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WorkerID; v != nil {
		builder.WriteString("worker_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("requeue_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequeueCount))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(fmt.Sprintf("%v", _m.Context))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
