package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRun holds the schema definition for the AgentRun entity; the
// central stateful computation of the engine.
//
// Invariants enforced by the surrounding services (not the schema):
//   - status transitions follow the runstate legal-edge table
//   - current_step_index increases by exactly one per appended step
//   - a run is terminal iff ended_at is set; terminal is final
//   - while a non-stale lease is held, no other worker mutates the run
type AgentRun struct {
	ent.Schema
}

// Fields of the AgentRun.
func (AgentRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("parent_run_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Set for subruns; the spawning parent"),
		field.String("started_by").
			Optional().
			Nillable().
			Comment("User who started the run (empty for system-spawned)"),
		field.String("correlation_id").
			Comment("Stable identifier propagated across related runs/steps/events"),
		field.Enum("status").
			Values(
				"pending",
				"running",
				"paused",
				"waiting_for_approval",
				"waiting_for_tool",
				"waiting_for_subrun",
				"waiting_for_user",
				"completed",
				"failed",
				"canceled",
			).
			Default("pending"),
		field.Enum("channel").
			Values("dashboard", "telegram", "api").
			Default("api"),
		field.Bool("cancel_requested").
			Default(false),
		field.Int("max_steps").
			Default(50),
		field.Int("max_tool_calls").
			Default(20),
		field.Int("current_step_index").
			Default(0).
			Comment("Progress cursor; equals max(step_index) of appended steps"),

		// Worker lease. Any worker may reclaim an expired lease.
		field.String("locked_by").
			Optional().
			Nillable(),
		field.Time("locked_at").
			Optional().
			Nillable(),
		field.Time("lock_expires_at").
			Optional().
			Nillable(),
		field.String("locked_task_id").
			Optional().
			Nillable().
			Comment("External scheduler task handle, used only for revocation on cancel"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("Set exactly when the run enters a terminal status"),
		field.Time("archived_at").
			Optional().
			Nillable(),
		field.String("error_summary").
			Optional().
			Nillable(),

		field.Text("input_text").
			Default(""),
		field.Text("final_text").
			Optional().
			Nillable(),
	}
}

// Edges of the AgentRun.
func (AgentRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("runs").
			Field("workspace_id").
			Unique().
			Required().
			Immutable(),
		edge.From("agent", Agent.Type).
			Ref("runs").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
		edge.To("steps", AgentStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", RunEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tool_calls", ToolCall.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("child_links", SubrunLink.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("archives", RunArchive.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentRun.
func (AgentRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "status"),
		index.Fields("parent_run_id"),
		index.Fields("status", "created_at"),
		// Stale-lease reclaim scans
		index.Fields("locked_at").
			Annotations(entsql.IndexWhere("locked_at IS NOT NULL")),
		// Archival sweep: terminal, ended long ago, not yet archived
		index.Fields("status", "ended_at").
			Annotations(entsql.IndexWhere("archived_at IS NULL")),
	}
}
