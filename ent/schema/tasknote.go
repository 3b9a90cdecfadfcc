package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskNote holds the schema definition for the TaskNote entity.
// Append-only audit trail of processing milestones on a task.
type TaskNote struct {
	ent.Schema
}

// Fields of the TaskNote.
func (TaskNote) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("note_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Text("note").
			Comment("Human-readable milestone (e.g. 'Task queued for execution')"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskNote.
func (TaskNote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("notes").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TaskNote.
func (TaskNote) Indexes() []ent.Index {
	return []ent.Index{
		// Chronological listing per task
		index.Fields("task_id", "created_at"),
	}
}
