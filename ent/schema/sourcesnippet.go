package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	pgvector "github.com/pgvector/pgvector-go"
)

// SourceSnippet holds the schema definition for the SourceSnippet entity —
// one embedded chunk of a source snapshot, the unit of citation.
// The cosine vector index over embedding is created in pkg/database/indexes.go.
type SourceSnippet struct {
	ent.Schema
}

// Fields of the SourceSnippet.
func (SourceSnippet) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("snippet_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("source_id").
			Immutable(),
		field.String("snapshot_id").
			Immutable(),
		field.Int("ord").
			Comment("Chunk position within the snapshot"),
		field.Text("text"),
		field.Other("embedding", pgvector.Vector{}).
			SchemaType(map[string]string{
				dialect.Postgres: "vector(1536)",
			}),
		field.String("embedding_model"),
	}
}

// Edges of the SourceSnippet.
func (SourceSnippet) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("source", Source.Type).
			Ref("snippets").
			Field("source_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SourceSnippet.
func (SourceSnippet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "source_id"),
		index.Fields("snapshot_id", "ord"),
	}
}
