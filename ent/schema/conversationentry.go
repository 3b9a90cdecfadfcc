package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConversationEntry holds the schema definition for the ConversationEntry entity.
// Ordered record of every agent exchange during task execution: the prompt
// sent to an agent, the response it produced, and synthesis output.
type ConversationEntry struct {
	ent.Schema
}

// Fields of the ConversationEntry.
func (ConversationEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("agent_id").
			Immutable().
			Comment("Agent profile that produced or received this entry"),
		field.Enum("role").
			Values("request", "response", "synthesis", "error"),
		field.Text("content"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Step id, model, token usage, cache/degraded markers"),
		field.Int("sequence").
			Comment("Order within the task conversation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ConversationEntry.
func (ConversationEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("conversation_entries").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ConversationEntry.
func (ConversationEntry) Indexes() []ent.Index {
	return []ent.Index{
		// Conversation ordering; unique so concurrent appends cannot collide
		index.Fields("task_id", "sequence").
			Unique(),
		index.Fields("task_id", "agent_id"),
	}
}
