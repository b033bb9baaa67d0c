package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunEvent is an append-only journal record, ordered per-run by seq
// starting at 1. seq is allocated as max(seq)+1 under the run row lock,
// so (run_id, seq) is gap-free and unique across concurrent writers.
type RunEvent struct {
	ent.Schema
}

// Fields of the RunEvent.
func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("seq").
			Immutable(),
		field.String("event_type").
			NotEmpty().
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.String("correlation_id").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RunEvent.
func (RunEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", AgentRun.Type).
			Ref("events").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunEvent.
func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "seq").
			Unique(),
		index.Fields("event_type", "created_at"),
	}
}
