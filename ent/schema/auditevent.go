package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEvent holds the schema definition for the AuditEvent entity.
// Rows are written by the event publisher inside the same transaction as the
// pg_notify broadcast, so the table doubles as a catchup log for consumers
// that reconnect after missing notifications.
type AuditEvent struct {
	ent.Schema
}

// Fields of the AuditEvent.
// The default auto-increment integer ID gives consumers a monotonic cursor.
func (AuditEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			Immutable(),
		field.String("channel").
			Comment("NOTIFY channel the event was broadcast on"),
		field.Text("payload").
			Comment("JSON event payload as broadcast"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AuditEvent.
func (AuditEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("audit_events").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AuditEvent.
func (AuditEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Catchup queries filter by channel and paginate by ID
		index.Fields("channel"),
		index.Fields("task_id"),
		index.Fields("created_at"),
	}
}
