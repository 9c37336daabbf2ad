// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/inquiro-ai/inquiro/ent/source"
	"github.com/inquiro-ai/inquiro/ent/sourcesnapshot"
)

// SourceSnapshot is the model entity for the SourceSnapshot schema.
type SourceSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// SourceID holds the value of the "source_id" field.
	SourceID string `json:"source_id,omitempty"`
	// SHA-256 of the sanitized text
	ContentHash string `json:"content_hash,omitempty"`
	// SnippetCount holds the value of the "snippet_count" field.
	SnippetCount int `json:"snippet_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SourceSnapshotQuery when eager-loading is set.
	Edges        SourceSnapshotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SourceSnapshotEdges holds the relations/edges for other nodes in the graph.
type SourceSnapshotEdges struct {
	// Source holds the value of the source edge.
	Source *Source `json:"source,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SourceOrErr returns the Source value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SourceSnapshotEdges) SourceOrErr() (*Source, error) {
	if e.Source != nil {
		return e.Source, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: source.Label}
	}
	return nil, &NotLoadedError{edge: "source"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SourceSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sourcesnapshot.FieldSnippetCount:
			values[i] = new(sql.NullInt64)
		case sourcesnapshot.FieldID, sourcesnapshot.FieldTenantID, sourcesnapshot.FieldSourceID, sourcesnapshot.FieldContentHash:
			values[i] = new(sql.NullString)
		case sourcesnapshot.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SourceSnapshot fields.
func (_m *SourceSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sourcesnapshot.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sourcesnapshot.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case sourcesnapshot.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.String
			}
		case sourcesnapshot.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case sourcesnapshot.FieldSnippetCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field snippet_count", values[i])
			} else if value.Valid {
				_m.SnippetCount = int(value.Int64)
			}
		case sourcesnapshot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SourceSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *SourceSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySource queries the "source" edge of the SourceSnapshot entity.
func (_m *SourceSnapshot) QuerySource() *SourceQuery {
	return NewSourceSnapshotClient(_m.config).QuerySource(_m)
}

// Update returns a builder for updating this SourceSnapshot.
// Note that you need to call SourceSnapshot.Unwrap() before calling this method if this SourceSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SourceSnapshot) Update() *SourceSnapshotUpdateOne {
	return NewSourceSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SourceSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SourceSnapshot) Unwrap() *SourceSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SourceSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SourceSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("SourceSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("source_id=")
	builder.WriteString(_m.SourceID)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("snippet_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SnippetCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SourceSnapshots is a parsable slice of SourceSnapshot.
type SourceSnapshots []*SourceSnapshot
