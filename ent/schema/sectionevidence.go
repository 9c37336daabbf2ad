package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SectionEvidence holds the schema definition for the SectionEvidence entity.
// The set of rows for (run_id, section_id) is the section's evidence pack:
// the only snippet ids the Writer may cite in that section.
type SectionEvidence struct {
	ent.Schema
}

// Fields of the SectionEvidence.
func (SectionEvidence) Fields() []ent.Field {
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
		field.String("snippet_id").
			Immutable(),
		field.Int("rank").
			Default(0),
		field.Float("similarity").
			Default(0).
			Comment("Cosine similarity of the snippet to the section query"),
	}
}

// Edges of the SectionEvidence.
func (SectionEvidence) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("section_evidence").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SectionEvidence.
func (SectionEvidence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "section_id", "snippet_id").
			Unique(),
		index.Fields("run_id", "section_id", "rank"),
	}
}
