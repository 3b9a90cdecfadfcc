// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditEventsColumns holds the columns for the "audit_events" table.
	AuditEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// AuditEventsTable holds the schema information for the "audit_events" table.
	AuditEventsTable = &schema.Table{
		Name:       "audit_events",
		Columns:    AuditEventsColumns,
		PrimaryKey: []*schema.Column{AuditEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_events_tasks_audit_events",
				Columns:    []*schema.Column{AuditEventsColumns[4]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditevent_channel",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[1]},
			},
			{
				Name:    "auditevent_task_id",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[4]},
			},
			{
				Name:    "auditevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[3]},
			},
		},
	}
	// ConversationEntriesColumns holds the columns for the "conversation_entries" table.
	ConversationEntriesColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"request", "response", "synthesis", "error"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// ConversationEntriesTable holds the schema information for the "conversation_entries" table.
	ConversationEntriesTable = &schema.Table{
		Name:       "conversation_entries",
		Columns:    ConversationEntriesColumns,
		PrimaryKey: []*schema.Column{ConversationEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversation_entries_tasks_conversation_entries",
				Columns:    []*schema.Column{ConversationEntriesColumns[7]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversationentry_task_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{ConversationEntriesColumns[7], ConversationEntriesColumns[5]},
			},
			{
				Name:    "conversationentry_task_id_agent_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationEntriesColumns[7], ConversationEntriesColumns[1]},
			},
		},
	}
	// DeadLettersColumns holds the columns for the "dead_letters" table.
	DeadLettersColumns = []*schema.Column{
		{Name: "entry_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "last_error", Type: field.TypeString, Size: 2147483647},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "priority", Type: field.TypeString, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "retrying", "abandoned"}, Default: "pending"},
		{Name: "abandon_reason", Type: field.TypeString, Nullable: true},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "last_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "task_id", Type: field.TypeString},
	}
	// DeadLettersTable holds the schema information for the "dead_letters" table.
	DeadLettersTable = &schema.Table{
		Name:       "dead_letters",
		Columns:    DeadLettersColumns,
		PrimaryKey: []*schema.Column{DeadLettersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dead_letters_tasks_dead_letters",
				Columns:    []*schema.Column{DeadLettersColumns[10]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deadletter_status",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[6]},
			},
			{
				Name:    "deadletter_status_first_seen_at",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[6], DeadLettersColumns[8]},
			},
			{
				Name:    "deadletter_task_id",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[10]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "task_type", Type: field.TypeString, Default: "general"},
		{Name: "priority", Type: field.TypeString, Default: "medium"},
		{Name: "priority_rank", Type: field.TypeInt, Default: 2},
		{Name: "message_id", Type: field.TypeString, Nullable: true},
		{Name: "email_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "deadline", Type: field.TypeTime, Nullable: true},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "success_criteria", Type: field.TypeJSON, Nullable: true},
		{Name: "constraints", Type: field.TypeJSON, Nullable: true},
		{Name: "deliverables", Type: field.TypeJSON, Nullable: true},
		{Name: "primary_agent", Type: field.TypeString, Nullable: true},
		{Name: "supporting_agents", Type: field.TypeJSON, Nullable: true},
		{Name: "assignment_reason", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "queued", "running", "dispatched", "completed", "failed", "abandoned"}, Default: "pending"},
		{Name: "processed", Type: field.TypeBool, Default: false},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "result_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "requeue_count", Type: field.TypeInt, Default: 0},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[16]},
			},
			{
				Name:    "task_task_type",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3]},
			},
			{
				Name:    "task_primary_agent",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[13]},
			},
			{
				Name:    "task_message_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[16], TasksColumns[26]},
			},
			{
				Name:    "task_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[16], TasksColumns[22]},
			},
			{
				Name:    "task_status_priority_rank_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[16], TasksColumns[5], TasksColumns[26]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'queued'",
				},
			},
		},
	}
	// TaskNotesColumns holds the columns for the "task_notes" table.
	TaskNotesColumns = []*schema.Column{
		{Name: "note_id", Type: field.TypeString, Unique: true},
		{Name: "note", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// TaskNotesTable holds the schema information for the "task_notes" table.
	TaskNotesTable = &schema.Table{
		Name:       "task_notes",
		Columns:    TaskNotesColumns,
		PrimaryKey: []*schema.Column{TaskNotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_notes_tasks_notes",
				Columns:    []*schema.Column{TaskNotesColumns[3]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tasknote_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TaskNotesColumns[3], TaskNotesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditEventsTable,
		ConversationEntriesTable,
		DeadLettersTable,
		TasksTable,
		TaskNotesTable,
	}
)

func init() {
	AuditEventsTable.ForeignKeys[0].RefTable = TasksTable
	ConversationEntriesTable.ForeignKeys[0].RefTable = TasksTable
	DeadLettersTable.ForeignKeys[0].RefTable = TasksTable
	TaskNotesTable.ForeignKeys[0].RefTable = TasksTable
}
