package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutlineNote holds the schema definition for the OutlineNote entity —
// planner guidance attached to one outline section.
type OutlineNote struct {
	ent.Schema
}

// Fields of the OutlineNote.
func (OutlineNote) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("section_id").
			Immutable(),
		field.JSON("key_points", []string{}),
		field.JSON("evidence_themes", []string{}).
			Comment("Suggested evidence themes used to form the evidence query"),
	}
}

// Edges of the OutlineNote.
func (OutlineNote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("outline_notes").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the OutlineNote.
func (OutlineNote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "section_id").
			Unique(),
	}
}
