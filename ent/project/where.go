// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/inquiro-ai/inquiro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldTenantID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// LastRunID applies equality check predicate on the "last_run_id" field. It's identical to LastRunIDEQ.
func LastRunID(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldLastRunID, v))
}

// LastRunStatus applies equality check predicate on the "last_run_status" field. It's identical to LastRunStatusEQ.
func LastRunStatus(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldLastRunStatus, v))
}

// LastActivityAt applies equality check predicate on the "last_activity_at" field. It's identical to LastActivityAtEQ.
func LastActivityAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldLastActivityAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldTenantID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldName, v))
}

// LastRunIDEQ applies the EQ predicate on the "last_run_id" field.
func LastRunIDEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldLastRunID, v))
}

// LastRunIDNEQ applies the NEQ predicate on the "last_run_id" field.
func LastRunIDNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldLastRunID, v))
}

// LastRunIDIn applies the In predicate on the "last_run_id" field.
func LastRunIDIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldLastRunID, vs...))
}

// LastRunIDNotIn applies the NotIn predicate on the "last_run_id" field.
func LastRunIDNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldLastRunID, vs...))
}

// LastRunIDGT applies the GT predicate on the "last_run_id" field.
func LastRunIDGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldLastRunID, v))
}

// LastRunIDGTE applies the GTE predicate on the "last_run_id" field.
func LastRunIDGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldLastRunID, v))
}

// LastRunIDLT applies the LT predicate on the "last_run_id" field.
func LastRunIDLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldLastRunID, v))
}

// LastRunIDLTE applies the LTE predicate on the "last_run_id" field.
func LastRunIDLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldLastRunID, v))
}

// LastRunIDContains applies the Contains predicate on the "last_run_id" field.
func LastRunIDContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldLastRunID, v))
}

// LastRunIDHasPrefix applies the HasPrefix predicate on the "last_run_id" field.
func LastRunIDHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldLastRunID, v))
}

// LastRunIDHasSuffix applies the HasSuffix predicate on the "last_run_id" field.
func LastRunIDHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldLastRunID, v))
}

// LastRunIDIsNil applies the IsNil predicate on the "last_run_id" field.
func LastRunIDIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldLastRunID))
}

// LastRunIDNotNil applies the NotNil predicate on the "last_run_id" field.
func LastRunIDNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldLastRunID))
}

// LastRunIDEqualFold applies the EqualFold predicate on the "last_run_id" field.
func LastRunIDEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldLastRunID, v))
}

// LastRunIDContainsFold applies the ContainsFold predicate on the "last_run_id" field.
func LastRunIDContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldLastRunID, v))
}

// LastRunStatusEQ applies the EQ predicate on the "last_run_status" field.
func LastRunStatusEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldLastRunStatus, v))
}

// LastRunStatusNEQ applies the NEQ predicate on the "last_run_status" field.
func LastRunStatusNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldLastRunStatus, v))
}

// LastRunStatusIn applies the In predicate on the "last_run_status" field.
func LastRunStatusIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldLastRunStatus, vs...))
}

// LastRunStatusNotIn applies the NotIn predicate on the "last_run_status" field.
func LastRunStatusNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldLastRunStatus, vs...))
}

// LastRunStatusGT applies the GT predicate on the "last_run_status" field.
func LastRunStatusGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldLastRunStatus, v))
}

// LastRunStatusGTE applies the GTE predicate on the "last_run_status" field.
func LastRunStatusGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldLastRunStatus, v))
}

// LastRunStatusLT applies the LT predicate on the "last_run_status" field.
func LastRunStatusLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldLastRunStatus, v))
}

// LastRunStatusLTE applies the LTE predicate on the "last_run_status" field.
func LastRunStatusLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldLastRunStatus, v))
}

// LastRunStatusContains applies the Contains predicate on the "last_run_status" field.
func LastRunStatusContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldLastRunStatus, v))
}

// LastRunStatusHasPrefix applies the HasPrefix predicate on the "last_run_status" field.
func LastRunStatusHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldLastRunStatus, v))
}

// LastRunStatusHasSuffix applies the HasSuffix predicate on the "last_run_status" field.
func LastRunStatusHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldLastRunStatus, v))
}

// LastRunStatusIsNil applies the IsNil predicate on the "last_run_status" field.
func LastRunStatusIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldLastRunStatus))
}

// LastRunStatusNotNil applies the NotNil predicate on the "last_run_status" field.
func LastRunStatusNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldLastRunStatus))
}

// LastRunStatusEqualFold applies the EqualFold predicate on the "last_run_status" field.
func LastRunStatusEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldLastRunStatus, v))
}

// LastRunStatusContainsFold applies the ContainsFold predicate on the "last_run_status" field.
func LastRunStatusContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldLastRunStatus, v))
}

// LastActivityAtEQ applies the EQ predicate on the "last_activity_at" field.
func LastActivityAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastActivityAtNEQ applies the NEQ predicate on the "last_activity_at" field.
func LastActivityAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldLastActivityAt, v))
}

// LastActivityAtIn applies the In predicate on the "last_activity_at" field.
func LastActivityAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldLastActivityAt, vs...))
}

// LastActivityAtNotIn applies the NotIn predicate on the "last_activity_at" field.
func LastActivityAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldLastActivityAt, vs...))
}

// LastActivityAtGT applies the GT predicate on the "last_activity_at" field.
func LastActivityAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldLastActivityAt, v))
}

// LastActivityAtGTE applies the GTE predicate on the "last_activity_at" field.
func LastActivityAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldLastActivityAt, v))
}

// LastActivityAtLT applies the LT predicate on the "last_activity_at" field.
func LastActivityAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldLastActivityAt, v))
}

// LastActivityAtLTE applies the LTE predicate on the "last_activity_at" field.
func LastActivityAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldLastActivityAt, v))
}

// LastActivityAtIsNil applies the IsNil predicate on the "last_activity_at" field.
func LastActivityAtIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldLastActivityAt))
}

// LastActivityAtNotNil applies the NotNil predicate on the "last_activity_at" field.
func LastActivityAtNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldLastActivityAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRuns applies the HasEdge predicate on the "runs" edge.
func HasRuns() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunsWith applies the HasEdge predicate on the "runs" edge with a given conditions (other predicates).
func HasRunsWith(preds ...predicate.Run) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArtifacts applies the HasEdge predicate on the "artifacts" edge.
func HasArtifacts() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArtifactsWith applies the HasEdge predicate on the "artifacts" edge with a given conditions (other predicates).
func HasArtifactsWith(preds ...predicate.Artifact) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newArtifactsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
