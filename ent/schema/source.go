package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Source holds the schema definition for the Source entity — one academic
// source deduplicated across connectors by canonical id
// (priority DOI > arXiv > OpenAlex > URL).
type Source struct {
	ent.Schema
}

// Fields of the Source.
func (Source) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("source_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("canonical_id").
			Comment("doi:… | arxiv:… | openalex:… | url:…"),
		field.String("doi").
			Optional().
			Nillable(),
		field.String("arxiv_id").
			Optional().
			Nillable(),
		field.String("openalex_id").
			Optional().
			Nillable(),
		field.String("url").
			Optional().
			Nillable(),
		field.Text("title"),
		field.JSON("authors", []string{}).
			Optional(),
		field.Int("year").
			Optional().
			Nillable(),
		field.Text("abstract").
			Optional(),
		field.String("pdf_url").
			Optional().
			Nillable(),
		field.String("source_type").
			Default("paper"),
		field.String("connector").
			Comment("Connector that first retrieved the source"),
		field.Int("citations_count").
			Optional().
			Nillable(),
		field.JSON("extra_metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Source.
func (Source) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("snapshots", SourceSnapshot.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("snippets", SourceSnippet.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Source.
func (Source) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "canonical_id").
			Unique(),
	}
}
