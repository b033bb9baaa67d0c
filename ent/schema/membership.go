package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Membership binds a user to a workspace with a role. Roles owner, admin
// and operator may approve tool calls and issue run controls; viewer is
// read-only.
type Membership struct {
	ent.Schema
}

// Fields of the Membership.
func (Membership) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("membership_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("role").
			Values("owner", "admin", "operator", "viewer"),
		field.Bool("active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Membership.
func (Membership) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("memberships").
			Field("workspace_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Membership.
func (Membership) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "user_id").
			Unique(),
		index.Fields("user_id"),
	}
}
