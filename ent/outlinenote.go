// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/inquiro-ai/inquiro/ent/outlinenote"
	"github.com/inquiro-ai/inquiro/ent/run"
)

// OutlineNote is the model entity for the OutlineNote schema.
type OutlineNote struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// SectionID holds the value of the "section_id" field.
	SectionID string `json:"section_id,omitempty"`
	// KeyPoints holds the value of the "key_points" field.
	KeyPoints []string `json:"key_points,omitempty"`
	// Suggested evidence themes used to form the evidence query
	EvidenceThemes []string `json:"evidence_themes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OutlineNoteQuery when eager-loading is set.
	Edges        OutlineNoteEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OutlineNoteEdges holds the relations/edges for other nodes in the graph.
type OutlineNoteEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OutlineNoteEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OutlineNote) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case outlinenote.FieldKeyPoints, outlinenote.FieldEvidenceThemes:
			values[i] = new([]byte)
		case outlinenote.FieldID, outlinenote.FieldTenantID, outlinenote.FieldRunID, outlinenote.FieldSectionID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OutlineNote fields.
func (_m *OutlineNote) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case outlinenote.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case outlinenote.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case outlinenote.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case outlinenote.FieldSectionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section_id", values[i])
			} else if value.Valid {
				_m.SectionID = value.String
			}
		case outlinenote.FieldKeyPoints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field key_points", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.KeyPoints); err != nil {
					return fmt.Errorf("unmarshal field key_points: %w", err)
				}
			}
		case outlinenote.FieldEvidenceThemes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_themes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EvidenceThemes); err != nil {
					return fmt.Errorf("unmarshal field evidence_themes: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OutlineNote.
// This includes values selected through modifiers, order, etc.
func (_m *OutlineNote) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the OutlineNote entity.
func (_m *OutlineNote) QueryRun() *RunQuery {
	return NewOutlineNoteClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this OutlineNote.
// Note that you need to call OutlineNote.Unwrap() before calling this method if this OutlineNote
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OutlineNote) Update() *OutlineNoteUpdateOne {
	return NewOutlineNoteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OutlineNote entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OutlineNote) Unwrap() *OutlineNote {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OutlineNote is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OutlineNote) String() string {
	var builder strings.Builder
	builder.WriteString("OutlineNote(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("section_id=")
	builder.WriteString(_m.SectionID)
	builder.WriteString(", ")
	builder.WriteString("key_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeyPoints))
	builder.WriteString(", ")
	builder.WriteString("evidence_themes=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvidenceThemes))
	builder.WriteByte(')')
	return builder.String()
}

// OutlineNotes is a parsable slice of OutlineNote.
type OutlineNotes []*OutlineNote
