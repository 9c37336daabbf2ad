package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	pgvector "github.com/pgvector/pgvector-go"
)

// SourceEmbedding holds the schema definition for the SourceEmbedding entity —
// the document-level embedding cache used by the Retrieve rerank. Rows are
// upserted idempotently keyed by (tenant_id, canonical_id, embedding_model)
// and refreshed when text_hash changes.
type SourceEmbedding struct {
	ent.Schema
}

// Fields of the SourceEmbedding.
func (SourceEmbedding) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("canonical_id").
			Immutable(),
		field.String("embedding_model").
			Immutable(),
		field.Other("embedding", pgvector.Vector{}).
			SchemaType(map[string]string{
				dialect.Postgres: "vector(1536)",
			}),
		field.String("text_hash").
			Comment("SHA-256 of title+abstract at embedding time"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SourceEmbedding.
func (SourceEmbedding) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "canonical_id", "embedding_model").
			Unique(),
	}
}
