package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunEvent holds the schema definition for the RunEvent entity — the
// append-only observability log of a run. Rows are immutable once written.
//
// event_number is dense and strictly increasing per run starting at 1. It is
// allocated under a row lock on the owning run inside the append's own short
// transaction (see services.EventService), so events become visible to
// readers before the surrounding stage transaction commits.
type RunEvent struct {
	ent.Schema
}

// Fields of the RunEvent.
func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("event_number").
			Immutable().
			Comment("Dense monotonic sequence per run, 1..N"),
		field.Time("ts").
			Default(time.Now).
			Immutable(),
		field.String("stage").
			Optional().
			Nillable().
			Immutable(),
		field.String("event_type").
			Immutable().
			Comment("state | stage_start | stage_finish | log | error | progress | ..."),
		field.String("level").
			Default("info").
			Immutable().
			Comment("debug | info | warn | error"),
		field.Text("message").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
	}
}

// Edges of the RunEvent.
func (RunEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("events").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunEvent.
func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "event_number").
			Unique(),
		index.Fields("tenant_id", "run_id"),
	}
}
