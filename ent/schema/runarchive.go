package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunArchive records one on-disk snapshot bundle created for a terminal run.
type RunArchive struct {
	ent.Schema
}

// Fields of the RunArchive.
func (RunArchive) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("archive_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("archive_path").
			NotEmpty().
			Immutable(),
		field.Text("summary").
			Default(""),
		field.Text("notes").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RunArchive.
func (RunArchive) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", AgentRun.Type).
			Ref("archives").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunArchive.
func (RunArchive) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("created_at"),
	}
}
