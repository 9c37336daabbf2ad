package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunSource holds the schema definition for the RunSource entity — the link
// between a run and one of its selected sources, with retrieval provenance.
type RunSource struct {
	ent.Schema
}

// Fields of the RunSource.
func (RunSource) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("source_id").
			Immutable(),
		field.String("intent").
			Optional().
			Comment("Query-plan intent that best matched the source"),
		field.Text("query").
			Optional().
			Comment("Query string behind the best match"),
		field.Int("rank").
			Default(0),
		field.Float("score").
			Default(0).
			Comment("Final rerank score at selection time"),
	}
}

// Edges of the RunSource.
func (RunSource) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("run_sources").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunSource.
func (RunSource) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "source_id").
			Unique(),
		index.Fields("run_id", "rank"),
	}
}
