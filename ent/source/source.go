// Code generated by ent, DO NOT EDIT.

package source

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the source type in the database.
	Label = "source"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "source_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldCanonicalID holds the string denoting the canonical_id field in the database.
	FieldCanonicalID = "canonical_id"
	// FieldDoi holds the string denoting the doi field in the database.
	FieldDoi = "doi"
	// FieldArxivID holds the string denoting the arxiv_id field in the database.
	FieldArxivID = "arxiv_id"
	// FieldOpenalexID holds the string denoting the openalex_id field in the database.
	FieldOpenalexID = "openalex_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldAuthors holds the string denoting the authors field in the database.
	FieldAuthors = "authors"
	// FieldYear holds the string denoting the year field in the database.
	FieldYear = "year"
	// FieldAbstract holds the string denoting the abstract field in the database.
	FieldAbstract = "abstract"
	// FieldPdfURL holds the string denoting the pdf_url field in the database.
	FieldPdfURL = "pdf_url"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldConnector holds the string denoting the connector field in the database.
	FieldConnector = "connector"
	// FieldCitationsCount holds the string denoting the citations_count field in the database.
	FieldCitationsCount = "citations_count"
	// FieldExtraMetadata holds the string denoting the extra_metadata field in the database.
	FieldExtraMetadata = "extra_metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSnapshots holds the string denoting the snapshots edge name in mutations.
	EdgeSnapshots = "snapshots"
	// EdgeSnippets holds the string denoting the snippets edge name in mutations.
	EdgeSnippets = "snippets"
	// SourceSnapshotFieldID holds the string denoting the ID field of the SourceSnapshot.
	SourceSnapshotFieldID = "snapshot_id"
	// SourceSnippetFieldID holds the string denoting the ID field of the SourceSnippet.
	SourceSnippetFieldID = "snippet_id"
	// Table holds the table name of the source in the database.
	Table = "sources"
	// SnapshotsTable is the table that holds the snapshots relation/edge.
	SnapshotsTable = "source_snapshots"
	// SnapshotsInverseTable is the table name for the SourceSnapshot entity.
	// It exists in this package in order to avoid circular dependency with the "sourcesnapshot" package.
	SnapshotsInverseTable = "source_snapshots"
	// SnapshotsColumn is the table column denoting the snapshots relation/edge.
	SnapshotsColumn = "source_id"
	// SnippetsTable is the table that holds the snippets relation/edge.
	SnippetsTable = "source_snippets"
	// SnippetsInverseTable is the table name for the SourceSnippet entity.
	// It exists in this package in order to avoid circular dependency with the "sourcesnippet" package.
	SnippetsInverseTable = "source_snippets"
	// SnippetsColumn is the table column denoting the snippets relation/edge.
	SnippetsColumn = "source_id"
)

// Columns holds all SQL columns for source fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldCanonicalID,
	FieldDoi,
	FieldArxivID,
	FieldOpenalexID,
	FieldURL,
	FieldTitle,
	FieldAuthors,
	FieldYear,
	FieldAbstract,
	FieldPdfURL,
	FieldSourceType,
	FieldConnector,
	FieldCitationsCount,
	FieldExtraMetadata,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSourceType holds the default value on creation for the "source_type" field.
	DefaultSourceType string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Source queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByCanonicalID orders the results by the canonical_id field.
func ByCanonicalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalID, opts...).ToFunc()
}

// ByDoi orders the results by the doi field.
func ByDoi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoi, opts...).ToFunc()
}

// ByArxivID orders the results by the arxiv_id field.
func ByArxivID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArxivID, opts...).ToFunc()
}

// ByOpenalexID orders the results by the openalex_id field.
func ByOpenalexID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpenalexID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByYear orders the results by the year field.
func ByYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYear, opts...).ToFunc()
}

// ByAbstract orders the results by the abstract field.
func ByAbstract(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAbstract, opts...).ToFunc()
}

// ByPdfURL orders the results by the pdf_url field.
func ByPdfURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPdfURL, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// ByConnector orders the results by the connector field.
func ByConnector(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnector, opts...).ToFunc()
}

// ByCitationsCount orders the results by the citations_count field.
func ByCitationsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCitationsCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySnapshotsCount orders the results by snapshots count.
func BySnapshotsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSnapshotsStep(), opts...)
	}
}

// BySnapshots orders the results by snapshots terms.
func BySnapshots(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSnapshotsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySnippetsCount orders the results by snippets count.
func BySnippetsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSnippetsStep(), opts...)
	}
}

// BySnippets orders the results by snippets terms.
func BySnippets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSnippetsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSnapshotsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SnapshotsInverseTable, SourceSnapshotFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SnapshotsTable, SnapshotsColumn),
	)
}
func newSnippetsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SnippetsInverseTable, SourceSnippetFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SnippetsTable, SnippetsColumn),
	)
}
