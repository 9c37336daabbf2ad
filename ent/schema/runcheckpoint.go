package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunCheckpoint holds the schema definition for the RunCheckpoint entity —
// stage summaries and the orchestrator-state snapshot used by resume.
type RunCheckpoint struct {
	ent.Schema
}

// Fields of the RunCheckpoint.
func (RunCheckpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("stage").
			Comment("retrieval_summary | orchestrator | …"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the RunCheckpoint.
func (RunCheckpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("checkpoints").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunCheckpoint.
func (RunCheckpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "run_id", "stage").
			Unique(),
	}
}
