package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SectionReview holds the schema definition for the SectionReview entity —
// the evaluator verdict for one drafted section.
type SectionReview struct {
	ent.Schema
}

// Fields of the SectionReview.
func (SectionReview) Fields() []ent.Field {
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
		field.Enum("verdict").
			Values("pass", "fail"),
		field.JSON("issues", []map[string]interface{}{}).
			Optional().
			Comment("Normalized issue list: sentence_index, problem, notes, citations"),
		field.Time("reviewed_at").
			Default(time.Now),
	}
}

// Edges of the SectionReview.
func (SectionReview) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("section_reviews").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SectionReview.
func (SectionReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "section_id").
			Unique(),
	}
}
