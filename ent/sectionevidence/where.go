// Code generated by ent, DO NOT EDIT.

package sectionevidence

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/inquiro-ai/inquiro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEQ(FieldTenantID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEQ(FieldRunID, v))
}

// SectionID applies equality check predicate on the "section_id" field. It's identical to SectionIDEQ.
func SectionID(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEQ(FieldSectionID, v))
}

// SnippetID applies equality check predicate on the "snippet_id" field. It's identical to SnippetIDEQ.
func SnippetID(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEQ(FieldSnippetID, v))
}

// Rank applies equality check predicate on the "rank" field. It's identical to RankEQ.
func Rank(v int) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEQ(FieldRank, v))
}

// Similarity applies equality check predicate on the "similarity" field. It's identical to SimilarityEQ.
func Similarity(v float64) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEQ(FieldSimilarity, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldContainsFold(FieldTenantID, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldContainsFold(FieldRunID, v))
}

// SectionIDEQ applies the EQ predicate on the "section_id" field.
func SectionIDEQ(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEQ(FieldSectionID, v))
}

// SectionIDNEQ applies the NEQ predicate on the "section_id" field.
func SectionIDNEQ(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldNEQ(FieldSectionID, v))
}

// SectionIDIn applies the In predicate on the "section_id" field.
func SectionIDIn(vs ...string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldIn(FieldSectionID, vs...))
}

// SectionIDNotIn applies the NotIn predicate on the "section_id" field.
func SectionIDNotIn(vs ...string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldNotIn(FieldSectionID, vs...))
}

// SectionIDGT applies the GT predicate on the "section_id" field.
func SectionIDGT(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldGT(FieldSectionID, v))
}

// SectionIDGTE applies the GTE predicate on the "section_id" field.
func SectionIDGTE(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldGTE(FieldSectionID, v))
}

// SectionIDLT applies the LT predicate on the "section_id" field.
func SectionIDLT(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldLT(FieldSectionID, v))
}

// SectionIDLTE applies the LTE predicate on the "section_id" field.
func SectionIDLTE(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldLTE(FieldSectionID, v))
}

// SectionIDContains applies the Contains predicate on the "section_id" field.
func SectionIDContains(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldContains(FieldSectionID, v))
}

// SectionIDHasPrefix applies the HasPrefix predicate on the "section_id" field.
func SectionIDHasPrefix(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldHasPrefix(FieldSectionID, v))
}

// SectionIDHasSuffix applies the HasSuffix predicate on the "section_id" field.
func SectionIDHasSuffix(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldHasSuffix(FieldSectionID, v))
}

// SectionIDEqualFold applies the EqualFold predicate on the "section_id" field.
func SectionIDEqualFold(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEqualFold(FieldSectionID, v))
}

// SectionIDContainsFold applies the ContainsFold predicate on the "section_id" field.
func SectionIDContainsFold(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldContainsFold(FieldSectionID, v))
}

// SnippetIDEQ applies the EQ predicate on the "snippet_id" field.
func SnippetIDEQ(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEQ(FieldSnippetID, v))
}

// SnippetIDNEQ applies the NEQ predicate on the "snippet_id" field.
func SnippetIDNEQ(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldNEQ(FieldSnippetID, v))
}

// SnippetIDIn applies the In predicate on the "snippet_id" field.
func SnippetIDIn(vs ...string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldIn(FieldSnippetID, vs...))
}

// SnippetIDNotIn applies the NotIn predicate on the "snippet_id" field.
func SnippetIDNotIn(vs ...string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldNotIn(FieldSnippetID, vs...))
}

// SnippetIDGT applies the GT predicate on the "snippet_id" field.
func SnippetIDGT(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldGT(FieldSnippetID, v))
}

// SnippetIDGTE applies the GTE predicate on the "snippet_id" field.
func SnippetIDGTE(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldGTE(FieldSnippetID, v))
}

// SnippetIDLT applies the LT predicate on the "snippet_id" field.
func SnippetIDLT(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldLT(FieldSnippetID, v))
}

// SnippetIDLTE applies the LTE predicate on the "snippet_id" field.
func SnippetIDLTE(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldLTE(FieldSnippetID, v))
}

// SnippetIDContains applies the Contains predicate on the "snippet_id" field.
func SnippetIDContains(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldContains(FieldSnippetID, v))
}

// SnippetIDHasPrefix applies the HasPrefix predicate on the "snippet_id" field.
func SnippetIDHasPrefix(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldHasPrefix(FieldSnippetID, v))
}

// SnippetIDHasSuffix applies the HasSuffix predicate on the "snippet_id" field.
func SnippetIDHasSuffix(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldHasSuffix(FieldSnippetID, v))
}

// SnippetIDEqualFold applies the EqualFold predicate on the "snippet_id" field.
func SnippetIDEqualFold(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEqualFold(FieldSnippetID, v))
}

// SnippetIDContainsFold applies the ContainsFold predicate on the "snippet_id" field.
func SnippetIDContainsFold(v string) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldContainsFold(FieldSnippetID, v))
}

// RankEQ applies the EQ predicate on the "rank" field.
func RankEQ(v int) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEQ(FieldRank, v))
}

// RankNEQ applies the NEQ predicate on the "rank" field.
func RankNEQ(v int) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldNEQ(FieldRank, v))
}

// RankIn applies the In predicate on the "rank" field.
func RankIn(vs ...int) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldIn(FieldRank, vs...))
}

// RankNotIn applies the NotIn predicate on the "rank" field.
func RankNotIn(vs ...int) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldNotIn(FieldRank, vs...))
}

// RankGT applies the GT predicate on the "rank" field.
func RankGT(v int) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldGT(FieldRank, v))
}

// RankGTE applies the GTE predicate on the "rank" field.
func RankGTE(v int) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldGTE(FieldRank, v))
}

// RankLT applies the LT predicate on the "rank" field.
func RankLT(v int) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldLT(FieldRank, v))
}

// RankLTE applies the LTE predicate on the "rank" field.
func RankLTE(v int) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldLTE(FieldRank, v))
}

// SimilarityEQ applies the EQ predicate on the "similarity" field.
func SimilarityEQ(v float64) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldEQ(FieldSimilarity, v))
}

// SimilarityNEQ applies the NEQ predicate on the "similarity" field.
func SimilarityNEQ(v float64) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldNEQ(FieldSimilarity, v))
}

// SimilarityIn applies the In predicate on the "similarity" field.
func SimilarityIn(vs ...float64) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldIn(FieldSimilarity, vs...))
}

// SimilarityNotIn applies the NotIn predicate on the "similarity" field.
func SimilarityNotIn(vs ...float64) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldNotIn(FieldSimilarity, vs...))
}

// SimilarityGT applies the GT predicate on the "similarity" field.
func SimilarityGT(v float64) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldGT(FieldSimilarity, v))
}

// SimilarityGTE applies the GTE predicate on the "similarity" field.
func SimilarityGTE(v float64) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldGTE(FieldSimilarity, v))
}

// SimilarityLT applies the LT predicate on the "similarity" field.
func SimilarityLT(v float64) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldLT(FieldSimilarity, v))
}

// SimilarityLTE applies the LTE predicate on the "similarity" field.
func SimilarityLTE(v float64) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.FieldLTE(FieldSimilarity, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.SectionEvidence {
	return predicate.SectionEvidence(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.SectionEvidence {
	return predicate.SectionEvidence(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SectionEvidence) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SectionEvidence) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SectionEvidence) predicate.SectionEvidence {
	return predicate.SectionEvidence(sql.NotPredicates(p))
}
