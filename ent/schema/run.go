package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds the schema definition for the Run entity — one end-to-end report
// generation instance tied to a project and a user question.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.Enum("status").
			Values("created", "queued", "running", "blocked", "failed", "succeeded", "canceled").
			Default("created"),
		field.String("current_stage").
			Optional().
			Nillable().
			Comment("Pipeline stage currently executing (retrieve..export)"),
		field.Text("question").
			Comment("User question driving the report"),
		field.String("output_type").
			Default("report"),
		field.String("llm_provider").
			Optional().
			Nillable(),
		field.String("llm_model").
			Optional().
			Nillable(),
		field.JSON("budgets", map[string]interface{}{}).
			Optional().
			Comment("External budgets enforced by individual stages"),
		field.JSON("usage", map[string]interface{}{}).
			Optional().
			Comment("Token/source counters and exporter warnings"),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.String("error_code").
			Optional().
			Nillable(),
		field.String("client_request_id").
			Optional().
			Nillable().
			Comment("Idempotency key for run creation, unique per project when set"),
		field.Int("retry_count").
			Default(0),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Time("cancel_requested_at").
			Optional().
			Nillable().
			Comment("Cooperative cancellation flag, polled at stage boundaries"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("runs").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("jobs", Job.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", RunEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sections", RunSection.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("outline_notes", OutlineNote.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("section_evidence", SectionEvidence.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("draft_sections", DraftSection.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("section_reviews", SectionReview.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("run_sources", RunSource.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("checkpoints", RunCheckpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		// Artifacts survive run deletion; run_id transitions to NULL.
		edge.To("artifacts", Artifact.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Indexes of the Run.
// The partial unique index on (tenant_id, project_id, client_request_id)
// WHERE client_request_id IS NOT NULL is created in pkg/database/indexes.go.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "project_id"),
		index.Fields("status", "created_at"),
		index.Fields("tenant_id", "status"),
	}
}
