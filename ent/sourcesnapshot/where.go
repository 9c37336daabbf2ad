// Code generated by ent, DO NOT EDIT.

package sourcesnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/inquiro-ai/inquiro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldEQ(FieldTenantID, v))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldEQ(FieldSourceID, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldEQ(FieldContentHash, v))
}

// SnippetCount applies equality check predicate on the "snippet_count" field. It's identical to SnippetCountEQ.
func SnippetCount(v int) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldEQ(FieldSnippetCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldContainsFold(FieldTenantID, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldContainsFold(FieldSourceID, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldContainsFold(FieldContentHash, v))
}

// SnippetCountEQ applies the EQ predicate on the "snippet_count" field.
func SnippetCountEQ(v int) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldEQ(FieldSnippetCount, v))
}

// SnippetCountNEQ applies the NEQ predicate on the "snippet_count" field.
func SnippetCountNEQ(v int) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldNEQ(FieldSnippetCount, v))
}

// SnippetCountIn applies the In predicate on the "snippet_count" field.
func SnippetCountIn(vs ...int) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldIn(FieldSnippetCount, vs...))
}

// SnippetCountNotIn applies the NotIn predicate on the "snippet_count" field.
func SnippetCountNotIn(vs ...int) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldNotIn(FieldSnippetCount, vs...))
}

// SnippetCountGT applies the GT predicate on the "snippet_count" field.
func SnippetCountGT(v int) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldGT(FieldSnippetCount, v))
}

// SnippetCountGTE applies the GTE predicate on the "snippet_count" field.
func SnippetCountGTE(v int) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldGTE(FieldSnippetCount, v))
}

// SnippetCountLT applies the LT predicate on the "snippet_count" field.
func SnippetCountLT(v int) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldLT(FieldSnippetCount, v))
}

// SnippetCountLTE applies the LTE predicate on the "snippet_count" field.
func SnippetCountLTE(v int) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldLTE(FieldSnippetCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSource applies the HasEdge predicate on the "source" edge.
func HasSource() predicate.SourceSnapshot {
	return predicate.SourceSnapshot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SourceTable, SourceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceWith applies the HasEdge predicate on the "source" edge with a given conditions (other predicates).
func HasSourceWith(preds ...predicate.Source) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(func(s *sql.Selector) {
		step := newSourceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SourceSnapshot) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SourceSnapshot) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SourceSnapshot) predicate.SourceSnapshot {
	return predicate.SourceSnapshot(sql.NotPredicates(p))
}
