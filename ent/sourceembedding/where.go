// Code generated by ent, DO NOT EDIT.

package sourceembedding

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/inquiro-ai/inquiro/ent/predicate"
	pgvector "github.com/pgvector/pgvector-go"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEQ(FieldTenantID, v))
}

// CanonicalID applies equality check predicate on the "canonical_id" field. It's identical to CanonicalIDEQ.
func CanonicalID(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEQ(FieldCanonicalID, v))
}

// EmbeddingModel applies equality check predicate on the "embedding_model" field. It's identical to EmbeddingModelEQ.
func EmbeddingModel(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEQ(FieldEmbeddingModel, v))
}

// Embedding applies equality check predicate on the "embedding" field. It's identical to EmbeddingEQ.
func Embedding(v pgvector.Vector) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEQ(FieldEmbedding, v))
}

// TextHash applies equality check predicate on the "text_hash" field. It's identical to TextHashEQ.
func TextHash(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEQ(FieldTextHash, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldContainsFold(FieldTenantID, v))
}

// CanonicalIDEQ applies the EQ predicate on the "canonical_id" field.
func CanonicalIDEQ(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEQ(FieldCanonicalID, v))
}

// CanonicalIDNEQ applies the NEQ predicate on the "canonical_id" field.
func CanonicalIDNEQ(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldNEQ(FieldCanonicalID, v))
}

// CanonicalIDIn applies the In predicate on the "canonical_id" field.
func CanonicalIDIn(vs ...string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldIn(FieldCanonicalID, vs...))
}

// CanonicalIDNotIn applies the NotIn predicate on the "canonical_id" field.
func CanonicalIDNotIn(vs ...string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldNotIn(FieldCanonicalID, vs...))
}

// CanonicalIDGT applies the GT predicate on the "canonical_id" field.
func CanonicalIDGT(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldGT(FieldCanonicalID, v))
}

// CanonicalIDGTE applies the GTE predicate on the "canonical_id" field.
func CanonicalIDGTE(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldGTE(FieldCanonicalID, v))
}

// CanonicalIDLT applies the LT predicate on the "canonical_id" field.
func CanonicalIDLT(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldLT(FieldCanonicalID, v))
}

// CanonicalIDLTE applies the LTE predicate on the "canonical_id" field.
func CanonicalIDLTE(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldLTE(FieldCanonicalID, v))
}

// CanonicalIDContains applies the Contains predicate on the "canonical_id" field.
func CanonicalIDContains(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldContains(FieldCanonicalID, v))
}

// CanonicalIDHasPrefix applies the HasPrefix predicate on the "canonical_id" field.
func CanonicalIDHasPrefix(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldHasPrefix(FieldCanonicalID, v))
}

// CanonicalIDHasSuffix applies the HasSuffix predicate on the "canonical_id" field.
func CanonicalIDHasSuffix(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldHasSuffix(FieldCanonicalID, v))
}

// CanonicalIDEqualFold applies the EqualFold predicate on the "canonical_id" field.
func CanonicalIDEqualFold(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEqualFold(FieldCanonicalID, v))
}

// CanonicalIDContainsFold applies the ContainsFold predicate on the "canonical_id" field.
func CanonicalIDContainsFold(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldContainsFold(FieldCanonicalID, v))
}

// EmbeddingModelEQ applies the EQ predicate on the "embedding_model" field.
func EmbeddingModelEQ(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEQ(FieldEmbeddingModel, v))
}

// EmbeddingModelNEQ applies the NEQ predicate on the "embedding_model" field.
func EmbeddingModelNEQ(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldNEQ(FieldEmbeddingModel, v))
}

// EmbeddingModelIn applies the In predicate on the "embedding_model" field.
func EmbeddingModelIn(vs ...string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldIn(FieldEmbeddingModel, vs...))
}

// EmbeddingModelNotIn applies the NotIn predicate on the "embedding_model" field.
func EmbeddingModelNotIn(vs ...string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldNotIn(FieldEmbeddingModel, vs...))
}

// EmbeddingModelGT applies the GT predicate on the "embedding_model" field.
func EmbeddingModelGT(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldGT(FieldEmbeddingModel, v))
}

// EmbeddingModelGTE applies the GTE predicate on the "embedding_model" field.
func EmbeddingModelGTE(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldGTE(FieldEmbeddingModel, v))
}

// EmbeddingModelLT applies the LT predicate on the "embedding_model" field.
func EmbeddingModelLT(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldLT(FieldEmbeddingModel, v))
}

// EmbeddingModelLTE applies the LTE predicate on the "embedding_model" field.
func EmbeddingModelLTE(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldLTE(FieldEmbeddingModel, v))
}

// EmbeddingModelContains applies the Contains predicate on the "embedding_model" field.
func EmbeddingModelContains(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldContains(FieldEmbeddingModel, v))
}

// EmbeddingModelHasPrefix applies the HasPrefix predicate on the "embedding_model" field.
func EmbeddingModelHasPrefix(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldHasPrefix(FieldEmbeddingModel, v))
}

// EmbeddingModelHasSuffix applies the HasSuffix predicate on the "embedding_model" field.
func EmbeddingModelHasSuffix(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldHasSuffix(FieldEmbeddingModel, v))
}

// EmbeddingModelEqualFold applies the EqualFold predicate on the "embedding_model" field.
func EmbeddingModelEqualFold(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEqualFold(FieldEmbeddingModel, v))
}

// EmbeddingModelContainsFold applies the ContainsFold predicate on the "embedding_model" field.
func EmbeddingModelContainsFold(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldContainsFold(FieldEmbeddingModel, v))
}

// EmbeddingEQ applies the EQ predicate on the "embedding" field.
func EmbeddingEQ(v pgvector.Vector) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEQ(FieldEmbedding, v))
}

// EmbeddingNEQ applies the NEQ predicate on the "embedding" field.
func EmbeddingNEQ(v pgvector.Vector) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldNEQ(FieldEmbedding, v))
}

// EmbeddingIn applies the In predicate on the "embedding" field.
func EmbeddingIn(vs ...pgvector.Vector) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldIn(FieldEmbedding, vs...))
}

// EmbeddingNotIn applies the NotIn predicate on the "embedding" field.
func EmbeddingNotIn(vs ...pgvector.Vector) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldNotIn(FieldEmbedding, vs...))
}

// EmbeddingGT applies the GT predicate on the "embedding" field.
func EmbeddingGT(v pgvector.Vector) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldGT(FieldEmbedding, v))
}

// EmbeddingGTE applies the GTE predicate on the "embedding" field.
func EmbeddingGTE(v pgvector.Vector) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldGTE(FieldEmbedding, v))
}

// EmbeddingLT applies the LT predicate on the "embedding" field.
func EmbeddingLT(v pgvector.Vector) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldLT(FieldEmbedding, v))
}

// EmbeddingLTE applies the LTE predicate on the "embedding" field.
func EmbeddingLTE(v pgvector.Vector) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldLTE(FieldEmbedding, v))
}

// TextHashEQ applies the EQ predicate on the "text_hash" field.
func TextHashEQ(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEQ(FieldTextHash, v))
}

// TextHashNEQ applies the NEQ predicate on the "text_hash" field.
func TextHashNEQ(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldNEQ(FieldTextHash, v))
}

// TextHashIn applies the In predicate on the "text_hash" field.
func TextHashIn(vs ...string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldIn(FieldTextHash, vs...))
}

// TextHashNotIn applies the NotIn predicate on the "text_hash" field.
func TextHashNotIn(vs ...string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldNotIn(FieldTextHash, vs...))
}

// TextHashGT applies the GT predicate on the "text_hash" field.
func TextHashGT(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldGT(FieldTextHash, v))
}

// TextHashGTE applies the GTE predicate on the "text_hash" field.
func TextHashGTE(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldGTE(FieldTextHash, v))
}

// TextHashLT applies the LT predicate on the "text_hash" field.
func TextHashLT(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldLT(FieldTextHash, v))
}

// TextHashLTE applies the LTE predicate on the "text_hash" field.
func TextHashLTE(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldLTE(FieldTextHash, v))
}

// TextHashContains applies the Contains predicate on the "text_hash" field.
func TextHashContains(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldContains(FieldTextHash, v))
}

// TextHashHasPrefix applies the HasPrefix predicate on the "text_hash" field.
func TextHashHasPrefix(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldHasPrefix(FieldTextHash, v))
}

// TextHashHasSuffix applies the HasSuffix predicate on the "text_hash" field.
func TextHashHasSuffix(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldHasSuffix(FieldTextHash, v))
}

// TextHashEqualFold applies the EqualFold predicate on the "text_hash" field.
func TextHashEqualFold(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEqualFold(FieldTextHash, v))
}

// TextHashContainsFold applies the ContainsFold predicate on the "text_hash" field.
func TextHashContainsFold(v string) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldContainsFold(FieldTextHash, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SourceEmbedding) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SourceEmbedding) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SourceEmbedding) predicate.SourceEmbedding {
	return predicate.SourceEmbedding(sql.NotPredicates(p))
}
