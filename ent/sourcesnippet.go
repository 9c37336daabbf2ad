// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/inquiro-ai/inquiro/ent/source"
	"github.com/inquiro-ai/inquiro/ent/sourcesnippet"
	pgvector "github.com/pgvector/pgvector-go"
)

// SourceSnippet is the model entity for the SourceSnippet schema.
type SourceSnippet struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// SourceID holds the value of the "source_id" field.
	SourceID string `json:"source_id,omitempty"`
	// SnapshotID holds the value of the "snapshot_id" field.
	SnapshotID string `json:"snapshot_id,omitempty"`
	// Chunk position within the snapshot
	Ord int `json:"ord,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding pgvector.Vector `json:"embedding,omitempty"`
	// EmbeddingModel holds the value of the "embedding_model" field.
	EmbeddingModel string `json:"embedding_model,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SourceSnippetQuery when eager-loading is set.
	Edges        SourceSnippetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SourceSnippetEdges holds the relations/edges for other nodes in the graph.
type SourceSnippetEdges struct {
	// Source holds the value of the source edge.
	Source *Source `json:"source,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SourceOrErr returns the Source value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SourceSnippetEdges) SourceOrErr() (*Source, error) {
	if e.Source != nil {
		return e.Source, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: source.Label}
	}
	return nil, &NotLoadedError{edge: "source"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SourceSnippet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sourcesnippet.FieldEmbedding:
			values[i] = new(pgvector.Vector)
		case sourcesnippet.FieldOrd:
			values[i] = new(sql.NullInt64)
		case sourcesnippet.FieldID, sourcesnippet.FieldTenantID, sourcesnippet.FieldSourceID, sourcesnippet.FieldSnapshotID, sourcesnippet.FieldText, sourcesnippet.FieldEmbeddingModel:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SourceSnippet fields.
func (_m *SourceSnippet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sourcesnippet.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sourcesnippet.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case sourcesnippet.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.String
			}
		case sourcesnippet.FieldSnapshotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot_id", values[i])
			} else if value.Valid {
				_m.SnapshotID = value.String
			}
		case sourcesnippet.FieldOrd:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ord", values[i])
			} else if value.Valid {
				_m.Ord = int(value.Int64)
			}
		case sourcesnippet.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case sourcesnippet.FieldEmbedding:
			if value, ok := values[i].(*pgvector.Vector); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil {
				_m.Embedding = *value
			}
		case sourcesnippet.FieldEmbeddingModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field embedding_model", values[i])
			} else if value.Valid {
				_m.EmbeddingModel = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SourceSnippet.
// This includes values selected through modifiers, order, etc.
func (_m *SourceSnippet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySource queries the "source" edge of the SourceSnippet entity.
func (_m *SourceSnippet) QuerySource() *SourceQuery {
	return NewSourceSnippetClient(_m.config).QuerySource(_m)
}

// Update returns a builder for updating this SourceSnippet.
// Note that you need to call SourceSnippet.Unwrap() before calling this method if this SourceSnippet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SourceSnippet) Update() *SourceSnippetUpdateOne {
	return NewSourceSnippetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SourceSnippet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SourceSnippet) Unwrap() *SourceSnippet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SourceSnippet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SourceSnippet) String() string {
	var builder strings.Builder
	builder.WriteString("SourceSnippet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("source_id=")
	builder.WriteString(_m.SourceID)
	builder.WriteString(", ")
	builder.WriteString("snapshot_id=")
	builder.WriteString(_m.SnapshotID)
	builder.WriteString(", ")
	builder.WriteString("ord=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ord))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("embedding_model=")
	builder.WriteString(_m.EmbeddingModel)
	builder.WriteByte(')')
	return builder.String()
}

// SourceSnippets is a parsable slice of SourceSnippet.
type SourceSnippets []*SourceSnippet
