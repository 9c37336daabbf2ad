package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Artifact holds the schema definition for the Artifact entity — an exported
// deliverable such as report.md. Content is never mutated in place, only
// replaced via upsert keyed by (tenant_id, run_id, type).
type Artifact struct {
	ent.Schema
}

// Fields of the Artifact.
func (Artifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("run_id").
			Optional().
			Nillable().
			Comment("Set to NULL if the owning run is removed"),
		field.String("type").
			Comment("e.g. report_md"),
		field.String("blob_ref").
			Comment("Inline content reference (inline:<artifact_id>) or external blob key"),
		field.String("mime_type").
			Default("text/markdown"),
		field.Int64("size_bytes").
			Default(0),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Full text under \"content\" for inline artifacts, plus counts"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Artifact.
func (Artifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("artifacts").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.From("run", Run.Type).
			Ref("artifacts").
			Field("run_id").
			Unique(),
	}
}

// Indexes of the Artifact.
func (Artifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "run_id", "type").
			Unique(),
		index.Fields("tenant_id", "project_id"),
	}
}
