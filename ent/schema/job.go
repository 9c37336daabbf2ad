package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity — a durable work claim
// for a run, dequeued FIFO with FOR UPDATE SKIP LOCKED.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("job_type").
			Default("run_pipeline"),
		field.Enum("status").
			Values("queued", "running", "failed", "succeeded").
			Default("queued"),
		field.Int("attempts").
			Default(0).
			Comment("Incremented on every claim"),
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Worker replica that claimed the job, for orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Doubles as the worker heartbeat while running"),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("jobs").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		// FIFO dequeue scan.
		index.Fields("status", "created_at"),
		// At-most-one non-terminal job per run is enforced by JobService under
		// a run row lock; this index serves its existence check.
		index.Fields("run_id", "status"),
		// Orphan detection by stale heartbeat.
		index.Fields("status", "updated_at"),
	}
}
