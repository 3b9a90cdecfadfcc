package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeadLetter holds the schema definition for the DeadLetter entity.
// Terminally-failed task executions parked for inspection and redrive.
type DeadLetter struct {
	ent.Schema
}

// Fields of the DeadLetter.
func (DeadLetter) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("agent_id").
			Comment("Agent whose execution failed"),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Task snapshot sufficient to rebuild a redrive task"),
		field.Text("last_error"),
		field.Int("attempts").
			Default(0).
			Comment("Redrive attempts consumed"),
		field.String("priority").
			Default("medium").
			Comment("Carried from the task so redrives keep their queue class"),
		field.Enum("status").
			Values("pending", "retrying", "abandoned").
			Default("pending"),
		field.String("abandon_reason").
			Optional().
			Nillable(),
		field.Time("first_seen_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_retry_at").
			Optional().
			Nillable(),
	}
}

// Edges of the DeadLetter.
func (DeadLetter) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("dead_letters").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DeadLetter.
func (DeadLetter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		// Redrive scans oldest pending entries first
		index.Fields("status", "first_seen_at"),
		index.Fields("task_id"),
	}
}
