package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DraftSection holds the schema definition for the DraftSection entity — the
// written body of one section. Text always passes the citation validators
// before it is persisted; the summary is 1-3 citation-free sentences.
type DraftSection struct {
	ent.Schema
}

// Fields of the DraftSection.
func (DraftSection) Fields() []ent.Field {
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
		field.Text("text"),
		field.Text("section_summary").
			Optional().
			Comment("Micro-summary carried into the next section's prompt"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the DraftSection.
func (DraftSection) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("draft_sections").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DraftSection.
func (DraftSection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "section_id").
			Unique(),
	}
}
