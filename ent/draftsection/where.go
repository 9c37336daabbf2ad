// Code generated by ent, DO NOT EDIT.

package draftsection

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/inquiro-ai/inquiro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEQ(FieldTenantID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEQ(FieldRunID, v))
}

// SectionID applies equality check predicate on the "section_id" field. It's identical to SectionIDEQ.
func SectionID(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEQ(FieldSectionID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEQ(FieldText, v))
}

// SectionSummary applies equality check predicate on the "section_summary" field. It's identical to SectionSummaryEQ.
func SectionSummary(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEQ(FieldSectionSummary, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldContainsFold(FieldTenantID, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldContainsFold(FieldRunID, v))
}

// SectionIDEQ applies the EQ predicate on the "section_id" field.
func SectionIDEQ(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEQ(FieldSectionID, v))
}

// SectionIDNEQ applies the NEQ predicate on the "section_id" field.
func SectionIDNEQ(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldNEQ(FieldSectionID, v))
}

// SectionIDIn applies the In predicate on the "section_id" field.
func SectionIDIn(vs ...string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldIn(FieldSectionID, vs...))
}

// SectionIDNotIn applies the NotIn predicate on the "section_id" field.
func SectionIDNotIn(vs ...string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldNotIn(FieldSectionID, vs...))
}

// SectionIDGT applies the GT predicate on the "section_id" field.
func SectionIDGT(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldGT(FieldSectionID, v))
}

// SectionIDGTE applies the GTE predicate on the "section_id" field.
func SectionIDGTE(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldGTE(FieldSectionID, v))
}

// SectionIDLT applies the LT predicate on the "section_id" field.
func SectionIDLT(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldLT(FieldSectionID, v))
}

// SectionIDLTE applies the LTE predicate on the "section_id" field.
func SectionIDLTE(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldLTE(FieldSectionID, v))
}

// SectionIDContains applies the Contains predicate on the "section_id" field.
func SectionIDContains(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldContains(FieldSectionID, v))
}

// SectionIDHasPrefix applies the HasPrefix predicate on the "section_id" field.
func SectionIDHasPrefix(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldHasPrefix(FieldSectionID, v))
}

// SectionIDHasSuffix applies the HasSuffix predicate on the "section_id" field.
func SectionIDHasSuffix(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldHasSuffix(FieldSectionID, v))
}

// SectionIDEqualFold applies the EqualFold predicate on the "section_id" field.
func SectionIDEqualFold(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEqualFold(FieldSectionID, v))
}

// SectionIDContainsFold applies the ContainsFold predicate on the "section_id" field.
func SectionIDContainsFold(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldContainsFold(FieldSectionID, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldContainsFold(FieldText, v))
}

// SectionSummaryEQ applies the EQ predicate on the "section_summary" field.
func SectionSummaryEQ(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEQ(FieldSectionSummary, v))
}

// SectionSummaryNEQ applies the NEQ predicate on the "section_summary" field.
func SectionSummaryNEQ(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldNEQ(FieldSectionSummary, v))
}

// SectionSummaryIn applies the In predicate on the "section_summary" field.
func SectionSummaryIn(vs ...string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldIn(FieldSectionSummary, vs...))
}

// SectionSummaryNotIn applies the NotIn predicate on the "section_summary" field.
func SectionSummaryNotIn(vs ...string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldNotIn(FieldSectionSummary, vs...))
}

// SectionSummaryGT applies the GT predicate on the "section_summary" field.
func SectionSummaryGT(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldGT(FieldSectionSummary, v))
}

// SectionSummaryGTE applies the GTE predicate on the "section_summary" field.
func SectionSummaryGTE(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldGTE(FieldSectionSummary, v))
}

// SectionSummaryLT applies the LT predicate on the "section_summary" field.
func SectionSummaryLT(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldLT(FieldSectionSummary, v))
}

// SectionSummaryLTE applies the LTE predicate on the "section_summary" field.
func SectionSummaryLTE(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldLTE(FieldSectionSummary, v))
}

// SectionSummaryContains applies the Contains predicate on the "section_summary" field.
func SectionSummaryContains(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldContains(FieldSectionSummary, v))
}

// SectionSummaryHasPrefix applies the HasPrefix predicate on the "section_summary" field.
func SectionSummaryHasPrefix(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldHasPrefix(FieldSectionSummary, v))
}

// SectionSummaryHasSuffix applies the HasSuffix predicate on the "section_summary" field.
func SectionSummaryHasSuffix(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldHasSuffix(FieldSectionSummary, v))
}

// SectionSummaryIsNil applies the IsNil predicate on the "section_summary" field.
func SectionSummaryIsNil() predicate.DraftSection {
	return predicate.DraftSection(sql.FieldIsNull(FieldSectionSummary))
}

// SectionSummaryNotNil applies the NotNil predicate on the "section_summary" field.
func SectionSummaryNotNil() predicate.DraftSection {
	return predicate.DraftSection(sql.FieldNotNull(FieldSectionSummary))
}

// SectionSummaryEqualFold applies the EqualFold predicate on the "section_summary" field.
func SectionSummaryEqualFold(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEqualFold(FieldSectionSummary, v))
}

// SectionSummaryContainsFold applies the ContainsFold predicate on the "section_summary" field.
func SectionSummaryContainsFold(v string) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldContainsFold(FieldSectionSummary, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DraftSection {
	return predicate.DraftSection(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.DraftSection {
	return predicate.DraftSection(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.DraftSection {
	return predicate.DraftSection(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DraftSection) predicate.DraftSection {
	return predicate.DraftSection(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DraftSection) predicate.DraftSection {
	return predicate.DraftSection(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DraftSection) predicate.DraftSection {
	return predicate.DraftSection(sql.NotPredicates(p))
}
