package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunSection holds the schema definition for the RunSection entity — one
// outline section of a run. section_order forms a contiguous 1..N sequence;
// the first section_id is "intro" and the last is "conclusion".
type RunSection struct {
	ent.Schema
}

// Fields of the RunSection.
func (RunSection) Fields() []ent.Field {
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
		field.String("title"),
		field.Text("goal").
			Comment("2-3 sentences describing what the section must cover"),
		field.Int("section_order"),
	}
}

// Edges of the RunSection.
func (RunSection) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("sections").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunSection.
func (RunSection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "section_id").
			Unique(),
		index.Fields("run_id", "section_order"),
	}
}
