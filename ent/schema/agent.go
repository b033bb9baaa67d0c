package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent is a run template bound to a workspace. Immutable from the
// orchestration engine's viewpoint; runs snapshot nothing from it and
// resolve it live by ID.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Text("system_prompt").
			Default(""),
		field.String("default_model").
			Default(""),
		field.Float("temperature").
			Default(0.7),
		field.JSON("tool_policy", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("agents").
			Field("workspace_id").
			Unique().
			Required().
			Immutable(),
		edge.To("runs", AgentRun.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "name").
			Unique(),
	}
}
