// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldTaskType holds the string denoting the task_type field in the database.
	FieldTaskType = "task_type"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldPriorityRank holds the string denoting the priority_rank field in the database.
	FieldPriorityRank = "priority_rank"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldEmailMetadata holds the string denoting the email_metadata field in the database.
	FieldEmailMetadata = "email_metadata"
	// FieldDeadline holds the string denoting the deadline field in the database.
	FieldDeadline = "deadline"
	// FieldDependencies holds the string denoting the dependencies field in the database.
	FieldDependencies = "dependencies"
	// FieldSuccessCriteria holds the string denoting the success_criteria field in the database.
	FieldSuccessCriteria = "success_criteria"
	// FieldConstraints holds the string denoting the constraints field in the database.
	FieldConstraints = "constraints"
	// FieldDeliverables holds the string denoting the deliverables field in the database.
	FieldDeliverables = "deliverables"
	// FieldPrimaryAgent holds the string denoting the primary_agent field in the database.
	FieldPrimaryAgent = "primary_agent"
	// FieldSupportingAgents holds the string denoting the supporting_agents field in the database.
	FieldSupportingAgents = "supporting_agents"
	// FieldAssignmentReason holds the string denoting the assignment_reason field in the database.
	FieldAssignmentReason = "assignment_reason"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProcessed holds the string denoting the processed field in the database.
	FieldProcessed = "processed"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldResultSummary holds the string denoting the result_summary field in the database.
	FieldResultSummary = "result_summary"
	// FieldWorkerID holds the string denoting the worker_id field in the database.
	FieldWorkerID = "worker_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldRequeueCount holds the string denoting the requeue_count field in the database.
	FieldRequeueCount = "requeue_count"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeNotes holds the string denoting the notes edge name in mutations.
	EdgeNotes = "notes"
	// EdgeConversationEntries holds the string denoting the conversation_entries edge name in mutations.
	EdgeConversationEntries = "conversation_entries"
	// EdgeDeadLetters holds the string denoting the dead_letters edge name in mutations.
	EdgeDeadLetters = "dead_letters"
	// EdgeAuditEvents holds the string denoting the audit_events edge name in mutations.
	EdgeAuditEvents = "audit_events"
	// TaskNoteFieldID holds the string denoting the ID field of the TaskNote.
	TaskNoteFieldID = "note_id"
	// ConversationEntryFieldID holds the string denoting the ID field of the ConversationEntry.
	ConversationEntryFieldID = "entry_id"
	// DeadLetterFieldID holds the string denoting the ID field of the DeadLetter.
	DeadLetterFieldID = "entry_id"
	// AuditEventFieldID holds the string denoting the ID field of the AuditEvent.
	AuditEventFieldID = "id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// NotesTable is the table that holds the notes relation/edge.
	NotesTable = "task_notes"
	// NotesInverseTable is the table name for the TaskNote entity.
	// It exists in this package in order to avoid circular dependency with the "tasknote" package.
	NotesInverseTable = "task_notes"
	// NotesColumn is the table column denoting the notes relation/edge.
	NotesColumn = "task_id"
	// ConversationEntriesTable is the table that holds the conversation_entries relation/edge.
	ConversationEntriesTable = "conversation_entries"
	// ConversationEntriesInverseTable is the table name for the ConversationEntry entity.
	// It exists in this package in order to avoid circular dependency with the "conversationentry" package.
	ConversationEntriesInverseTable = "conversation_entries"
	// ConversationEntriesColumn is the table column denoting the conversation_entries relation/edge.
	ConversationEntriesColumn = "task_id"
	// DeadLettersTable is the table that holds the dead_letters relation/edge.
	DeadLettersTable = "dead_letters"
	// DeadLettersInverseTable is the table name for the DeadLetter entity.
	// It exists in this package in order to avoid circular dependency with the "deadletter" package.
	DeadLettersInverseTable = "dead_letters"
	// DeadLettersColumn is the table column denoting the dead_letters relation/edge.
	DeadLettersColumn = "task_id"
	// AuditEventsTable is the table that holds the audit_events relation/edge.
	AuditEventsTable = "audit_events"
	// AuditEventsInverseTable is the table name for the AuditEvent entity.
	// It exists in this package in order to avoid circular dependency with the "auditevent" package.
	AuditEventsInverseTable = "audit_events"
	// AuditEventsColumn is the table column denoting the audit_events relation/edge.
	AuditEventsColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldTaskType,
	FieldPriority,
	FieldPriorityRank,
	FieldMessageID,
	FieldEmailMetadata,
	FieldDeadline,
	FieldDependencies,
	FieldSuccessCriteria,
	FieldConstraints,
	FieldDeliverables,
	FieldPrimaryAgent,
	FieldSupportingAgents,
	FieldAssignmentReason,
	FieldStatus,
	FieldProcessed,
	FieldProgress,
	FieldErrorMessage,
	FieldResultSummary,
	FieldWorkerID,
	FieldLastHeartbeatAt,
	FieldRequeueCount,
	FieldTags,
	FieldContext,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTaskType holds the default value on creation for the "task_type" field.
	DefaultTaskType string
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority string
	// DefaultPriorityRank holds the default value on creation for the "priority_rank" field.
	DefaultPriorityRank int
	// DefaultProcessed holds the default value on creation for the "processed" field.
	DefaultProcessed bool
	// DefaultProgress holds the default value on creation for the "progress" field.
	DefaultProgress int
	// DefaultRequeueCount holds the default value on creation for the "requeue_count" field.
	DefaultRequeueCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusQueued     Status = "queued"
	StatusRunning    Status = "running"
	StatusDispatched Status = "dispatched"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusAbandoned  Status = "abandoned"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusQueued, StatusRunning, StatusDispatched, StatusCompleted, StatusFailed, StatusAbandoned:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByTaskType orders the results by the task_type field.
func ByTaskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskType, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByPriorityRank orders the results by the priority_rank field.
func ByPriorityRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityRank, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByDeadline orders the results by the deadline field.
func ByDeadline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeadline, opts...).ToFunc()
}

// ByPrimaryAgent orders the results by the primary_agent field.
func ByPrimaryAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryAgent, opts...).ToFunc()
}

// ByAssignmentReason orders the results by the assignment_reason field.
func ByAssignmentReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignmentReason, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProcessed orders the results by the processed field.
func ByProcessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessed, opts...).ToFunc()
}

// ByProgress orders the results by the progress field.
func ByProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgress, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByResultSummary orders the results by the result_summary field.
func ByResultSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultSummary, opts...).ToFunc()
}

// ByWorkerID orders the results by the worker_id field.
func ByWorkerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkerID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByRequeueCount orders the results by the requeue_count field.
func ByRequeueCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequeueCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByNotesCount orders the results by notes count.
func ByNotesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNotesStep(), opts...)
	}
}

// ByNotes orders the results by notes terms.
func ByNotes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNotesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByConversationEntriesCount orders the results by conversation_entries count.
func ByConversationEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConversationEntriesStep(), opts...)
	}
}

// ByConversationEntries orders the results by conversation_entries terms.
func ByConversationEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDeadLettersCount orders the results by dead_letters count.
func ByDeadLettersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDeadLettersStep(), opts...)
	}
}

// ByDeadLetters orders the results by dead_letters terms.
func ByDeadLetters(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDeadLettersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAuditEventsCount orders the results by audit_events count.
func ByAuditEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditEventsStep(), opts...)
	}
}

// ByAuditEvents orders the results by audit_events terms.
func ByAuditEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newNotesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NotesInverseTable, TaskNoteFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NotesTable, NotesColumn),
	)
}
func newConversationEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationEntriesInverseTable, ConversationEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConversationEntriesTable, ConversationEntriesColumn),
	)
}
func newDeadLettersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DeadLettersInverseTable, DeadLetterFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DeadLettersTable, DeadLettersColumn),
	)
}
func newAuditEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditEventsInverseTable, AuditEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditEventsTable, AuditEventsColumn),
	)
}
