package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserActionLog is an audit row for user-issued controls: tool call
// approvals, run cancel/pause/resume, subrun spawns.
type UserActionLog struct {
	ent.Schema
}

// Fields of the UserActionLog.
func (UserActionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("action_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("action").
			NotEmpty().
			Immutable(),
		field.String("target_type").
			Immutable(),
		field.String("target_id").
			Immutable(),
		field.JSON("detail", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the UserActionLog.
func (UserActionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "created_at"),
		index.Fields("target_type", "target_id"),
	}
}
