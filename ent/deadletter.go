// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/taskwire/taskwire/ent/deadletter"
	"github.com/taskwire/taskwire/ent/task"
)

// DeadLetter is the model entity for the DeadLetter schema.
type DeadLetter struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Agent whose execution failed
	AgentID string `json:"agent_id,omitempty"`
	// Task snapshot sufficient to rebuild a redrive task
	Payload map[string]interface{} `json:"payload,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError string `json:"last_error,omitempty"`
	// Redrive attempts consumed
	Attempts int `json:"attempts,omitempty"`
	// Carried from the task so redrives keep their queue class
	Priority string `json:"priority,omitempty"`
	// Status holds the value of the "status" field.
	Status deadletter.Status `json:"status,omitempty"`
	// AbandonReason holds the value of the "abandon_reason" field.
	AbandonReason *string `json:"abandon_reason,omitempty"`
	// FirstSeenAt holds the value of the "first_seen_at" field.
	FirstSeenAt time.Time `json:"first_seen_at,omitempty"`
	// LastRetryAt holds the value of the "last_retry_at" field.
	LastRetryAt *time.Time `json:"last_retry_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DeadLetterQuery when eager-loading is set.
	Edges        DeadLetterEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DeadLetterEdges holds the relations/edges for other nodes in the graph.
type DeadLetterEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeadLetterEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeadLetter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deadletter.FieldPayload:
			values[i] = new([]byte)
		case deadletter.FieldAttempts:
			values[i] = new(sql.NullInt64)
		case deadletter.FieldID, deadletter.FieldTaskID, deadletter.FieldAgentID, deadletter.FieldLastError, deadletter.FieldPriority, deadletter.FieldStatus, deadletter.FieldAbandonReason:
			values[i] = new(sql.NullString)
		case deadletter.FieldFirstSeenAt, deadletter.FieldLastRetryAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeadLetter fields.
func (_m *DeadLetter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deadletter.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case deadletter.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case deadletter.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case deadletter.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case deadletter.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = value.String
			}
		case deadletter.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case deadletter.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = value.String
			}
		case deadletter.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = deadletter.Status(value.String)
			}
		case deadletter.FieldAbandonReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field abandon_reason", values[i])
			} else if value.Valid {
				_m.AbandonReason = new(string)
				*_m.AbandonReason = value.String
			}
		case deadletter.FieldFirstSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_at", values[i])
			} else if value.Valid {
				_m.FirstSeenAt = value.Time
			}
		case deadletter.FieldLastRetryAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_retry_at", values[i])
			} else if value.Valid {
				_m.LastRetryAt = new(time.Time)
				*_m.LastRetryAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeadLetter.
// This includes values selected through modifiers, order, etc.
func (_m *DeadLetter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the DeadLetter entity.
func (_m *DeadLetter) QueryTask() *TaskQuery {
	return NewDeadLetterClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this DeadLetter.
// Note that you need to call DeadLetter.Unwrap() before calling this method if this DeadLetter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeadLetter) Update() *DeadLetterUpdateOne {
	return NewDeadLetterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeadLetter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeadLetter) Unwrap() *DeadLetter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeadLetter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeadLetter) String() string {
	var builder strings.Builder
	builder.WriteString("DeadLetter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("last_error=")
	builder.WriteString(_m.LastError)
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(_m.Priority)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.AbandonReason; v != nil {
		builder.WriteString("abandon_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("first_seen_at=")
	builder.WriteString(_m.FirstSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastRetryAt; v != nil {
		builder.WriteString("last_retry_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// DeadLetters is a parsable slice of DeadLetter.
type DeadLetters []*DeadLetter
