package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolCall records one tool invocation requested by a run, from approval
// through execution to its captured result. Unique per originating step.
type ToolCall struct {
	ent.Schema
}

// Fields of the ToolCall.
func (ToolCall) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tool_call_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("step_id").
			Unique().
			Immutable(),
		field.String("tool_name").
			NotEmpty().
			Immutable(),
		field.JSON("args", map[string]interface{}{}).
			Optional(),
		field.Enum("risk_level").
			Values("low", "medium", "high").
			Default("low"),
		field.Bool("requires_approval").
			Default(false),
		field.Enum("status").
			Values("pending", "approved", "running", "succeeded", "failed", "canceled").
			Default("pending"),
		field.String("approved_by").
			Optional().
			Nillable(),
		field.Time("approved_at").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Int("exit_code").
			Optional().
			Nillable(),
		field.Text("stdout").
			Default(""),
		field.Text("stderr").
			Default(""),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ToolCall.
func (ToolCall) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", AgentRun.Type).
			Ref("tool_calls").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.From("step", AgentStep.Type).
			Ref("tool_call").
			Field("step_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ToolCall.
func (ToolCall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "status"),
		index.Fields("status", "created_at"),
	}
}
