package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolDefinition declares a tool available to runs in a workspace, with a
// JSON-schema for its arguments and default risk/approval policy.
type ToolDefinition struct {
	ent.Schema
}

// Fields of the ToolDefinition.
func (ToolDefinition) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tool_definition_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.JSON("args_schema", map[string]interface{}{}).
			Optional().
			Comment("JSON Schema validated against tool call args at request time"),
		field.Enum("default_risk_level").
			Values("low", "medium", "high").
			Default("low"),
		field.Bool("default_requires_approval").
			Default(false),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ToolDefinition.
func (ToolDefinition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("tool_definitions").
			Field("workspace_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ToolDefinition.
func (ToolDefinition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "name").
			Unique(),
	}
}
