package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SourceSnapshot holds the schema definition for the SourceSnapshot entity —
// one sanitized ingestion of a source's text, the parent of its snippets.
type SourceSnapshot struct {
	ent.Schema
}

// Fields of the SourceSnapshot.
func (SourceSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("snapshot_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("source_id").
			Immutable(),
		field.String("content_hash").
			Comment("SHA-256 of the sanitized text"),
		field.Int("snippet_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SourceSnapshot.
func (SourceSnapshot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("source", Source.Type).
			Ref("snapshots").
			Field("source_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SourceSnapshot.
func (SourceSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "source_id"),
		index.Fields("source_id", "content_hash"),
	}
}
