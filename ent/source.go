// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/inquiro-ai/inquiro/ent/source"
)

// Source is the model entity for the Source schema.
type Source struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// doi:… | arxiv:… | openalex:… | url:…
	CanonicalID string `json:"canonical_id,omitempty"`
	// Doi holds the value of the "doi" field.
	Doi *string `json:"doi,omitempty"`
	// ArxivID holds the value of the "arxiv_id" field.
	ArxivID *string `json:"arxiv_id,omitempty"`
	// OpenalexID holds the value of the "openalex_id" field.
	OpenalexID *string `json:"openalex_id,omitempty"`
	// URL holds the value of the "url" field.
	URL *string `json:"url,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Authors holds the value of the "authors" field.
	Authors []string `json:"authors,omitempty"`
	// Year holds the value of the "year" field.
	Year *int `json:"year,omitempty"`
	// Abstract holds the value of the "abstract" field.
	Abstract string `json:"abstract,omitempty"`
	// PdfURL holds the value of the "pdf_url" field.
	PdfURL *string `json:"pdf_url,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType string `json:"source_type,omitempty"`
	// Connector that first retrieved the source
	Connector string `json:"connector,omitempty"`
	// CitationsCount holds the value of the "citations_count" field.
	CitationsCount *int `json:"citations_count,omitempty"`
	// ExtraMetadata holds the value of the "extra_metadata" field.
	ExtraMetadata map[string]interface{} `json:"extra_metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SourceQuery when eager-loading is set.
	Edges        SourceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SourceEdges holds the relations/edges for other nodes in the graph.
type SourceEdges struct {
	// Snapshots holds the value of the snapshots edge.
	Snapshots []*SourceSnapshot `json:"snapshots,omitempty"`
	// Snippets holds the value of the snippets edge.
	Snippets []*SourceSnippet `json:"snippets,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SnapshotsOrErr returns the Snapshots value or an error if the edge
// was not loaded in eager-loading.
func (e SourceEdges) SnapshotsOrErr() ([]*SourceSnapshot, error) {
	if e.loadedTypes[0] {
		return e.Snapshots, nil
	}
	return nil, &NotLoadedError{edge: "snapshots"}
}

// SnippetsOrErr returns the Snippets value or an error if the edge
// was not loaded in eager-loading.
func (e SourceEdges) SnippetsOrErr() ([]*SourceSnippet, error) {
	if e.loadedTypes[1] {
		return e.Snippets, nil
	}
	return nil, &NotLoadedError{edge: "snippets"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Source) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case source.FieldAuthors, source.FieldExtraMetadata:
			values[i] = new([]byte)
		case source.FieldYear, source.FieldCitationsCount:
			values[i] = new(sql.NullInt64)
		case source.FieldID, source.FieldTenantID, source.FieldCanonicalID, source.FieldDoi, source.FieldArxivID, source.FieldOpenalexID, source.FieldURL, source.FieldTitle, source.FieldAbstract, source.FieldPdfURL, source.FieldSourceType, source.FieldConnector:
			values[i] = new(sql.NullString)
		case source.FieldCreatedAt, source.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Source fields.
func (_m *Source) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case source.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case source.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case source.FieldCanonicalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_id", values[i])
			} else if value.Valid {
				_m.CanonicalID = value.String
			}
		case source.FieldDoi:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doi", values[i])
			} else if value.Valid {
				_m.Doi = new(string)
				*_m.Doi = value.String
			}
		case source.FieldArxivID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field arxiv_id", values[i])
			} else if value.Valid {
				_m.ArxivID = new(string)
				*_m.ArxivID = value.String
			}
		case source.FieldOpenalexID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field openalex_id", values[i])
			} else if value.Valid {
				_m.OpenalexID = new(string)
				*_m.OpenalexID = value.String
			}
		case source.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = new(string)
				*_m.URL = value.String
			}
		case source.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case source.FieldAuthors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field authors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Authors); err != nil {
					return fmt.Errorf("unmarshal field authors: %w", err)
				}
			}
		case source.FieldYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = new(int)
				*_m.Year = int(value.Int64)
			}
		case source.FieldAbstract:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field abstract", values[i])
			} else if value.Valid {
				_m.Abstract = value.String
			}
		case source.FieldPdfURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pdf_url", values[i])
			} else if value.Valid {
				_m.PdfURL = new(string)
				*_m.PdfURL = value.String
			}
		case source.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = value.String
			}
		case source.FieldConnector:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector", values[i])
			} else if value.Valid {
				_m.Connector = value.String
			}
		case source.FieldCitationsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field citations_count", values[i])
			} else if value.Valid {
				_m.CitationsCount = new(int)
				*_m.CitationsCount = int(value.Int64)
			}
		case source.FieldExtraMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extra_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtraMetadata); err != nil {
					return fmt.Errorf("unmarshal field extra_metadata: %w", err)
				}
			}
		case source.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case source.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Source.
// This includes values selected through modifiers, order, etc.
func (_m *Source) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySnapshots queries the "snapshots" edge of the Source entity.
func (_m *Source) QuerySnapshots() *SourceSnapshotQuery {
	return NewSourceClient(_m.config).QuerySnapshots(_m)
}

// QuerySnippets queries the "snippets" edge of the Source entity.
func (_m *Source) QuerySnippets() *SourceSnippetQuery {
	return NewSourceClient(_m.config).QuerySnippets(_m)
}

// Update returns a builder for updating this Source.
// Note that you need to call Source.Unwrap() before calling this method if this Source
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Source) Update() *SourceUpdateOne {
	return NewSourceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Source entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Source) Unwrap() *Source {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Source is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Source) String() string {
	var builder strings.Builder
	builder.WriteString("Source(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("canonical_id=")
	builder.WriteString(_m.CanonicalID)
	builder.WriteString(", ")
	if v := _m.Doi; v != nil {
		builder.WriteString("doi=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ArxivID; v != nil {
		builder.WriteString("arxiv_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OpenalexID; v != nil {
		builder.WriteString("openalex_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.URL; v != nil {
		builder.WriteString("url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("authors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Authors))
	builder.WriteString(", ")
	if v := _m.Year; v != nil {
		builder.WriteString("year=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("abstract=")
	builder.WriteString(_m.Abstract)
	builder.WriteString(", ")
	if v := _m.PdfURL; v != nil {
		builder.WriteString("pdf_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(_m.SourceType)
	builder.WriteString(", ")
	builder.WriteString("connector=")
	builder.WriteString(_m.Connector)
	builder.WriteString(", ")
	if v := _m.CitationsCount; v != nil {
		builder.WriteString("citations_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("extra_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtraMetadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Sources is a parsable slice of Source.
type Sources []*Source
