package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Mixin for custom ID field.
func (Task) Mixin() []ent.Mixin {
	return []ent.Mixin{}
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("title").
			Comment("Short human-readable summary derived from the email subject"),
		field.Text("description").
			Comment("Cleaned email body (full-text searchable)"),
		field.String("task_type").
			Default("general").
			Comment("Classification (e.g. 'bug_report', 'feature_request')"),
		field.String("priority").
			Default("medium"),
		field.Int("priority_rank").
			Default(2).
			Comment("Numeric priority for queue ordering (urgent=4 .. low=1)"),
		field.String("message_id").
			Optional().
			Comment("RFC 5322 Message-ID of the originating email"),
		field.JSON("email_metadata", map[string]interface{}{}).
			Optional().
			Comment("Sender, recipient, subject, received_at, attachment names"),
		field.Time("deadline").
			Optional().
			Nillable(),
		field.JSON("dependencies", []string{}).
			Optional(),
		field.JSON("success_criteria", []string{}).
			Optional(),
		field.JSON("constraints", []string{}).
			Optional(),
		field.JSON("deliverables", []string{}).
			Optional(),
		field.String("primary_agent").
			Optional().
			Comment("Agent profile assigned by routing"),
		field.JSON("supporting_agents", []string{}).
			Optional(),
		field.String("assignment_reason").
			Optional(),
		field.Enum("status").
			Values("pending", "queued", "running", "dispatched", "completed", "failed", "abandoned").
			Default("pending"),
		field.Bool("processed").
			Default(false).
			Comment("True once execution reached a terminal outcome"),
		field.Int("progress").
			Default(0).
			Comment("0-100, monotonically non-decreasing"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Text("result_summary").
			Optional().
			Nillable().
			Comment("Final synthesized output (full-text searchable)"),
		field.String("worker_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Int("requeue_count").
			Default(0).
			Comment("Times the task was requeued after orphan recovery"),
		field.JSON("tags", []string{}).
			Optional(),
		field.JSON("context", map[string]interface{}{}).
			Optional().
			Comment("Free-form execution context (workflow hints, redrive links)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the task was ingested"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the task (queued to running)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("notes", TaskNote.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("conversation_entries", ConversationEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("dead_letters", DeadLetter.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("audit_events", AuditEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Single field indexes
		index.Fields("status"),
		index.Fields("task_type"),
		index.Fields("primary_agent"),
		index.Fields("message_id"),

		// Composite indexes
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),

		// Claim ordering: highest priority class first, FIFO within a class.
		// Partial so the index stays tiny once the backlog drains.
		index.Fields("status", "priority_rank", "created_at").
			Annotations(entsql.IndexWhere("status = 'queued'")),
	}
}

// Annotations for PostgreSQL-specific features.
// Note: GIN indexes for full-text search are created via migration hooks
// in pkg/database/migrations.go
func (Task) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}
