package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentStep is an append-only record of one unit of run progress,
// indexed 1..N per run. (run_id, step_index) is unique.
type AgentStep struct {
	ent.Schema
}

// Fields of the AgentStep.
func (AgentStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("step_index").
			Immutable(),
		field.Enum("kind").
			Values(
				"plan",
				"model_call",
				"tool_call",
				"observation",
				"message",
				"subrun_spawn",
			).
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

// Edges of the AgentStep.
func (AgentStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", AgentRun.Type).
			Ref("steps").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.To("tool_call", ToolCall.Type).
			Unique(),
	}
}

// Indexes of the AgentStep.
func (AgentStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "step_index").
			Unique(),
	}
}
