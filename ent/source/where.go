// Code generated by ent, DO NOT EDIT.

package source

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/inquiro-ai/inquiro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldTenantID, v))
}

// CanonicalID applies equality check predicate on the "canonical_id" field. It's identical to CanonicalIDEQ.
func CanonicalID(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCanonicalID, v))
}

// Doi applies equality check predicate on the "doi" field. It's identical to DoiEQ.
func Doi(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldDoi, v))
}

// ArxivID applies equality check predicate on the "arxiv_id" field. It's identical to ArxivIDEQ.
func ArxivID(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldArxivID, v))
}

// OpenalexID applies equality check predicate on the "openalex_id" field. It's identical to OpenalexIDEQ.
func OpenalexID(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldOpenalexID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldURL, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldTitle, v))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldYear, v))
}

// Abstract applies equality check predicate on the "abstract" field. It's identical to AbstractEQ.
func Abstract(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldAbstract, v))
}

// PdfURL applies equality check predicate on the "pdf_url" field. It's identical to PdfURLEQ.
func PdfURL(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldPdfURL, v))
}

// SourceType applies equality check predicate on the "source_type" field. It's identical to SourceTypeEQ.
func SourceType(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldSourceType, v))
}

// Connector applies equality check predicate on the "connector" field. It's identical to ConnectorEQ.
func Connector(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldConnector, v))
}

// CitationsCount applies equality check predicate on the "citations_count" field. It's identical to CitationsCountEQ.
func CitationsCount(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCitationsCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldTenantID, v))
}

// CanonicalIDEQ applies the EQ predicate on the "canonical_id" field.
func CanonicalIDEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCanonicalID, v))
}

// CanonicalIDNEQ applies the NEQ predicate on the "canonical_id" field.
func CanonicalIDNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldCanonicalID, v))
}

// CanonicalIDIn applies the In predicate on the "canonical_id" field.
func CanonicalIDIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldCanonicalID, vs...))
}

// CanonicalIDNotIn applies the NotIn predicate on the "canonical_id" field.
func CanonicalIDNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldCanonicalID, vs...))
}

// CanonicalIDGT applies the GT predicate on the "canonical_id" field.
func CanonicalIDGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldCanonicalID, v))
}

// CanonicalIDGTE applies the GTE predicate on the "canonical_id" field.
func CanonicalIDGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldCanonicalID, v))
}

// CanonicalIDLT applies the LT predicate on the "canonical_id" field.
func CanonicalIDLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldCanonicalID, v))
}

// CanonicalIDLTE applies the LTE predicate on the "canonical_id" field.
func CanonicalIDLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldCanonicalID, v))
}

// CanonicalIDContains applies the Contains predicate on the "canonical_id" field.
func CanonicalIDContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldCanonicalID, v))
}

// CanonicalIDHasPrefix applies the HasPrefix predicate on the "canonical_id" field.
func CanonicalIDHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldCanonicalID, v))
}

// CanonicalIDHasSuffix applies the HasSuffix predicate on the "canonical_id" field.
func CanonicalIDHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldCanonicalID, v))
}

// CanonicalIDEqualFold applies the EqualFold predicate on the "canonical_id" field.
func CanonicalIDEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldCanonicalID, v))
}

// CanonicalIDContainsFold applies the ContainsFold predicate on the "canonical_id" field.
func CanonicalIDContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldCanonicalID, v))
}

// DoiEQ applies the EQ predicate on the "doi" field.
func DoiEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldDoi, v))
}

// DoiNEQ applies the NEQ predicate on the "doi" field.
func DoiNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldDoi, v))
}

// DoiIn applies the In predicate on the "doi" field.
func DoiIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldDoi, vs...))
}

// DoiNotIn applies the NotIn predicate on the "doi" field.
func DoiNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldDoi, vs...))
}

// DoiGT applies the GT predicate on the "doi" field.
func DoiGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldDoi, v))
}

// DoiGTE applies the GTE predicate on the "doi" field.
func DoiGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldDoi, v))
}

// DoiLT applies the LT predicate on the "doi" field.
func DoiLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldDoi, v))
}

// DoiLTE applies the LTE predicate on the "doi" field.
func DoiLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldDoi, v))
}

// DoiContains applies the Contains predicate on the "doi" field.
func DoiContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldDoi, v))
}

// DoiHasPrefix applies the HasPrefix predicate on the "doi" field.
func DoiHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldDoi, v))
}

// DoiHasSuffix applies the HasSuffix predicate on the "doi" field.
func DoiHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldDoi, v))
}

// DoiIsNil applies the IsNil predicate on the "doi" field.
func DoiIsNil() predicate.Source {
	return predicate.Source(sql.FieldIsNull(FieldDoi))
}

// DoiNotNil applies the NotNil predicate on the "doi" field.
func DoiNotNil() predicate.Source {
	return predicate.Source(sql.FieldNotNull(FieldDoi))
}

// DoiEqualFold applies the EqualFold predicate on the "doi" field.
func DoiEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldDoi, v))
}

// DoiContainsFold applies the ContainsFold predicate on the "doi" field.
func DoiContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldDoi, v))
}

// ArxivIDEQ applies the EQ predicate on the "arxiv_id" field.
func ArxivIDEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldArxivID, v))
}

// ArxivIDNEQ applies the NEQ predicate on the "arxiv_id" field.
func ArxivIDNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldArxivID, v))
}

// ArxivIDIn applies the In predicate on the "arxiv_id" field.
func ArxivIDIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldArxivID, vs...))
}

// ArxivIDNotIn applies the NotIn predicate on the "arxiv_id" field.
func ArxivIDNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldArxivID, vs...))
}

// ArxivIDGT applies the GT predicate on the "arxiv_id" field.
func ArxivIDGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldArxivID, v))
}

// ArxivIDGTE applies the GTE predicate on the "arxiv_id" field.
func ArxivIDGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldArxivID, v))
}

// ArxivIDLT applies the LT predicate on the "arxiv_id" field.
func ArxivIDLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldArxivID, v))
}

// ArxivIDLTE applies the LTE predicate on the "arxiv_id" field.
func ArxivIDLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldArxivID, v))
}

// ArxivIDContains applies the Contains predicate on the "arxiv_id" field.
func ArxivIDContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldArxivID, v))
}

// ArxivIDHasPrefix applies the HasPrefix predicate on the "arxiv_id" field.
func ArxivIDHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldArxivID, v))
}

// ArxivIDHasSuffix applies the HasSuffix predicate on the "arxiv_id" field.
func ArxivIDHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldArxivID, v))
}

// ArxivIDIsNil applies the IsNil predicate on the "arxiv_id" field.
func ArxivIDIsNil() predicate.Source {
	return predicate.Source(sql.FieldIsNull(FieldArxivID))
}

// ArxivIDNotNil applies the NotNil predicate on the "arxiv_id" field.
func ArxivIDNotNil() predicate.Source {
	return predicate.Source(sql.FieldNotNull(FieldArxivID))
}

// ArxivIDEqualFold applies the EqualFold predicate on the "arxiv_id" field.
func ArxivIDEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldArxivID, v))
}

// ArxivIDContainsFold applies the ContainsFold predicate on the "arxiv_id" field.
func ArxivIDContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldArxivID, v))
}

// OpenalexIDEQ applies the EQ predicate on the "openalex_id" field.
func OpenalexIDEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldOpenalexID, v))
}

// OpenalexIDNEQ applies the NEQ predicate on the "openalex_id" field.
func OpenalexIDNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldOpenalexID, v))
}

// OpenalexIDIn applies the In predicate on the "openalex_id" field.
func OpenalexIDIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldOpenalexID, vs...))
}

// OpenalexIDNotIn applies the NotIn predicate on the "openalex_id" field.
func OpenalexIDNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldOpenalexID, vs...))
}

// OpenalexIDGT applies the GT predicate on the "openalex_id" field.
func OpenalexIDGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldOpenalexID, v))
}

// OpenalexIDGTE applies the GTE predicate on the "openalex_id" field.
func OpenalexIDGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldOpenalexID, v))
}

// OpenalexIDLT applies the LT predicate on the "openalex_id" field.
func OpenalexIDLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldOpenalexID, v))
}

// OpenalexIDLTE applies the LTE predicate on the "openalex_id" field.
func OpenalexIDLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldOpenalexID, v))
}

// OpenalexIDContains applies the Contains predicate on the "openalex_id" field.
func OpenalexIDContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldOpenalexID, v))
}

// OpenalexIDHasPrefix applies the HasPrefix predicate on the "openalex_id" field.
func OpenalexIDHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldOpenalexID, v))
}

// OpenalexIDHasSuffix applies the HasSuffix predicate on the "openalex_id" field.
func OpenalexIDHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldOpenalexID, v))
}

// OpenalexIDIsNil applies the IsNil predicate on the "openalex_id" field.
func OpenalexIDIsNil() predicate.Source {
	return predicate.Source(sql.FieldIsNull(FieldOpenalexID))
}

// OpenalexIDNotNil applies the NotNil predicate on the "openalex_id" field.
func OpenalexIDNotNil() predicate.Source {
	return predicate.Source(sql.FieldNotNull(FieldOpenalexID))
}

// OpenalexIDEqualFold applies the EqualFold predicate on the "openalex_id" field.
func OpenalexIDEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldOpenalexID, v))
}

// OpenalexIDContainsFold applies the ContainsFold predicate on the "openalex_id" field.
func OpenalexIDContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldOpenalexID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldURL, v))
}

// URLIsNil applies the IsNil predicate on the "url" field.
func URLIsNil() predicate.Source {
	return predicate.Source(sql.FieldIsNull(FieldURL))
}

// URLNotNil applies the NotNil predicate on the "url" field.
func URLNotNil() predicate.Source {
	return predicate.Source(sql.FieldNotNull(FieldURL))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldURL, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldTitle, v))
}

// AuthorsIsNil applies the IsNil predicate on the "authors" field.
func AuthorsIsNil() predicate.Source {
	return predicate.Source(sql.FieldIsNull(FieldAuthors))
}

// AuthorsNotNil applies the NotNil predicate on the "authors" field.
func AuthorsNotNil() predicate.Source {
	return predicate.Source(sql.FieldNotNull(FieldAuthors))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldYear, v))
}

// YearIsNil applies the IsNil predicate on the "year" field.
func YearIsNil() predicate.Source {
	return predicate.Source(sql.FieldIsNull(FieldYear))
}

// YearNotNil applies the NotNil predicate on the "year" field.
func YearNotNil() predicate.Source {
	return predicate.Source(sql.FieldNotNull(FieldYear))
}

// AbstractEQ applies the EQ predicate on the "abstract" field.
func AbstractEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldAbstract, v))
}

// AbstractNEQ applies the NEQ predicate on the "abstract" field.
func AbstractNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldAbstract, v))
}

// AbstractIn applies the In predicate on the "abstract" field.
func AbstractIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldAbstract, vs...))
}

// AbstractNotIn applies the NotIn predicate on the "abstract" field.
func AbstractNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldAbstract, vs...))
}

// AbstractGT applies the GT predicate on the "abstract" field.
func AbstractGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldAbstract, v))
}

// AbstractGTE applies the GTE predicate on the "abstract" field.
func AbstractGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldAbstract, v))
}

// AbstractLT applies the LT predicate on the "abstract" field.
func AbstractLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldAbstract, v))
}

// AbstractLTE applies the LTE predicate on the "abstract" field.
func AbstractLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldAbstract, v))
}

// AbstractContains applies the Contains predicate on the "abstract" field.
func AbstractContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldAbstract, v))
}

// AbstractHasPrefix applies the HasPrefix predicate on the "abstract" field.
func AbstractHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldAbstract, v))
}

// AbstractHasSuffix applies the HasSuffix predicate on the "abstract" field.
func AbstractHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldAbstract, v))
}

// AbstractIsNil applies the IsNil predicate on the "abstract" field.
func AbstractIsNil() predicate.Source {
	return predicate.Source(sql.FieldIsNull(FieldAbstract))
}

// AbstractNotNil applies the NotNil predicate on the "abstract" field.
func AbstractNotNil() predicate.Source {
	return predicate.Source(sql.FieldNotNull(FieldAbstract))
}

// AbstractEqualFold applies the EqualFold predicate on the "abstract" field.
func AbstractEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldAbstract, v))
}

// AbstractContainsFold applies the ContainsFold predicate on the "abstract" field.
func AbstractContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldAbstract, v))
}

// PdfURLEQ applies the EQ predicate on the "pdf_url" field.
func PdfURLEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldPdfURL, v))
}

// PdfURLNEQ applies the NEQ predicate on the "pdf_url" field.
func PdfURLNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldPdfURL, v))
}

// PdfURLIn applies the In predicate on the "pdf_url" field.
func PdfURLIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldPdfURL, vs...))
}

// PdfURLNotIn applies the NotIn predicate on the "pdf_url" field.
func PdfURLNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldPdfURL, vs...))
}

// PdfURLGT applies the GT predicate on the "pdf_url" field.
func PdfURLGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldPdfURL, v))
}

// PdfURLGTE applies the GTE predicate on the "pdf_url" field.
func PdfURLGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldPdfURL, v))
}

// PdfURLLT applies the LT predicate on the "pdf_url" field.
func PdfURLLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldPdfURL, v))
}

// PdfURLLTE applies the LTE predicate on the "pdf_url" field.
func PdfURLLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldPdfURL, v))
}

// PdfURLContains applies the Contains predicate on the "pdf_url" field.
func PdfURLContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldPdfURL, v))
}

// PdfURLHasPrefix applies the HasPrefix predicate on the "pdf_url" field.
func PdfURLHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldPdfURL, v))
}

// PdfURLHasSuffix applies the HasSuffix predicate on the "pdf_url" field.
func PdfURLHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldPdfURL, v))
}

// PdfURLIsNil applies the IsNil predicate on the "pdf_url" field.
func PdfURLIsNil() predicate.Source {
	return predicate.Source(sql.FieldIsNull(FieldPdfURL))
}

// PdfURLNotNil applies the NotNil predicate on the "pdf_url" field.
func PdfURLNotNil() predicate.Source {
	return predicate.Source(sql.FieldNotNull(FieldPdfURL))
}

// PdfURLEqualFold applies the EqualFold predicate on the "pdf_url" field.
func PdfURLEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldPdfURL, v))
}

// PdfURLContainsFold applies the ContainsFold predicate on the "pdf_url" field.
func PdfURLContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldPdfURL, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceTypeGT applies the GT predicate on the "source_type" field.
func SourceTypeGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldSourceType, v))
}

// SourceTypeGTE applies the GTE predicate on the "source_type" field.
func SourceTypeGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldSourceType, v))
}

// SourceTypeLT applies the LT predicate on the "source_type" field.
func SourceTypeLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldSourceType, v))
}

// SourceTypeLTE applies the LTE predicate on the "source_type" field.
func SourceTypeLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldSourceType, v))
}

// SourceTypeContains applies the Contains predicate on the "source_type" field.
func SourceTypeContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldSourceType, v))
}

// SourceTypeHasPrefix applies the HasPrefix predicate on the "source_type" field.
func SourceTypeHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldSourceType, v))
}

// SourceTypeHasSuffix applies the HasSuffix predicate on the "source_type" field.
func SourceTypeHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldSourceType, v))
}

// SourceTypeEqualFold applies the EqualFold predicate on the "source_type" field.
func SourceTypeEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldSourceType, v))
}

// SourceTypeContainsFold applies the ContainsFold predicate on the "source_type" field.
func SourceTypeContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldSourceType, v))
}

// ConnectorEQ applies the EQ predicate on the "connector" field.
func ConnectorEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldConnector, v))
}

// ConnectorNEQ applies the NEQ predicate on the "connector" field.
func ConnectorNEQ(v string) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldConnector, v))
}

// ConnectorIn applies the In predicate on the "connector" field.
func ConnectorIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldConnector, vs...))
}

// ConnectorNotIn applies the NotIn predicate on the "connector" field.
func ConnectorNotIn(vs ...string) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldConnector, vs...))
}

// ConnectorGT applies the GT predicate on the "connector" field.
func ConnectorGT(v string) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldConnector, v))
}

// ConnectorGTE applies the GTE predicate on the "connector" field.
func ConnectorGTE(v string) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldConnector, v))
}

// ConnectorLT applies the LT predicate on the "connector" field.
func ConnectorLT(v string) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldConnector, v))
}

// ConnectorLTE applies the LTE predicate on the "connector" field.
func ConnectorLTE(v string) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldConnector, v))
}

// ConnectorContains applies the Contains predicate on the "connector" field.
func ConnectorContains(v string) predicate.Source {
	return predicate.Source(sql.FieldContains(FieldConnector, v))
}

// ConnectorHasPrefix applies the HasPrefix predicate on the "connector" field.
func ConnectorHasPrefix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasPrefix(FieldConnector, v))
}

// ConnectorHasSuffix applies the HasSuffix predicate on the "connector" field.
func ConnectorHasSuffix(v string) predicate.Source {
	return predicate.Source(sql.FieldHasSuffix(FieldConnector, v))
}

// ConnectorEqualFold applies the EqualFold predicate on the "connector" field.
func ConnectorEqualFold(v string) predicate.Source {
	return predicate.Source(sql.FieldEqualFold(FieldConnector, v))
}

// ConnectorContainsFold applies the ContainsFold predicate on the "connector" field.
func ConnectorContainsFold(v string) predicate.Source {
	return predicate.Source(sql.FieldContainsFold(FieldConnector, v))
}

// CitationsCountEQ applies the EQ predicate on the "citations_count" field.
func CitationsCountEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCitationsCount, v))
}

// CitationsCountNEQ applies the NEQ predicate on the "citations_count" field.
func CitationsCountNEQ(v int) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldCitationsCount, v))
}

// CitationsCountIn applies the In predicate on the "citations_count" field.
func CitationsCountIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldCitationsCount, vs...))
}

// CitationsCountNotIn applies the NotIn predicate on the "citations_count" field.
func CitationsCountNotIn(vs ...int) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldCitationsCount, vs...))
}

// CitationsCountGT applies the GT predicate on the "citations_count" field.
func CitationsCountGT(v int) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldCitationsCount, v))
}

// CitationsCountGTE applies the GTE predicate on the "citations_count" field.
func CitationsCountGTE(v int) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldCitationsCount, v))
}

// CitationsCountLT applies the LT predicate on the "citations_count" field.
func CitationsCountLT(v int) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldCitationsCount, v))
}

// CitationsCountLTE applies the LTE predicate on the "citations_count" field.
func CitationsCountLTE(v int) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldCitationsCount, v))
}

// CitationsCountIsNil applies the IsNil predicate on the "citations_count" field.
func CitationsCountIsNil() predicate.Source {
	return predicate.Source(sql.FieldIsNull(FieldCitationsCount))
}

// CitationsCountNotNil applies the NotNil predicate on the "citations_count" field.
func CitationsCountNotNil() predicate.Source {
	return predicate.Source(sql.FieldNotNull(FieldCitationsCount))
}

// ExtraMetadataIsNil applies the IsNil predicate on the "extra_metadata" field.
func ExtraMetadataIsNil() predicate.Source {
	return predicate.Source(sql.FieldIsNull(FieldExtraMetadata))
}

// ExtraMetadataNotNil applies the NotNil predicate on the "extra_metadata" field.
func ExtraMetadataNotNil() predicate.Source {
	return predicate.Source(sql.FieldNotNull(FieldExtraMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Source {
	return predicate.Source(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Source {
	return predicate.Source(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSnapshots applies the HasEdge predicate on the "snapshots" edge.
func HasSnapshots() predicate.Source {
	return predicate.Source(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SnapshotsTable, SnapshotsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSnapshotsWith applies the HasEdge predicate on the "snapshots" edge with a given conditions (other predicates).
func HasSnapshotsWith(preds ...predicate.SourceSnapshot) predicate.Source {
	return predicate.Source(func(s *sql.Selector) {
		step := newSnapshotsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSnippets applies the HasEdge predicate on the "snippets" edge.
func HasSnippets() predicate.Source {
	return predicate.Source(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SnippetsTable, SnippetsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSnippetsWith applies the HasEdge predicate on the "snippets" edge with a given conditions (other predicates).
func HasSnippetsWith(preds ...predicate.SourceSnippet) predicate.Source {
	return predicate.Source(func(s *sql.Selector) {
		step := newSnippetsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Source) predicate.Source {
	return predicate.Source(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Source) predicate.Source {
	return predicate.Source(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Source) predicate.Source {
	return predicate.Source(sql.NotPredicates(p))
}
