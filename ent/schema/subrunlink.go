package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubrunLink joins a parent run to one spawned child. Siblings sharing a
// group_id form one join set evaluated together by the subrun controller.
type SubrunLink struct {
	ent.Schema
}

// Fields of the SubrunLink.
func (SubrunLink) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("link_id").
			Unique().
			Immutable(),
		field.String("parent_run_id").
			Immutable(),
		field.String("child_run_id").
			Unique().
			Immutable(),
		field.String("group_id").
			Immutable(),
		field.Enum("join_policy").
			Values("wait_all", "wait_any", "quorum", "timeout").
			Default("wait_all"),
		field.Int("quorum").
			Optional().
			Nillable().
			Comment("Required completions for join_policy=quorum"),
		field.Int("timeout_seconds").
			Optional().
			Nillable().
			Comment("Join deadline for join_policy=timeout, measured from the oldest link in the group"),
		field.Enum("failure_policy").
			Values("fail_fast", "cancel_siblings", "continue").
			Default("fail_fast"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SubrunLink.
func (SubrunLink) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("parent", AgentRun.Type).
			Ref("child_links").
			Field("parent_run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SubrunLink.
func (SubrunLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id"),
		index.Fields("parent_run_id"),
	}
}
