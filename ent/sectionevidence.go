// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/ent/sectionevidence"
)

// SectionEvidence is the model entity for the SectionEvidence schema.
type SectionEvidence struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// SectionID holds the value of the "section_id" field.
	SectionID string `json:"section_id,omitempty"`
	// SnippetID holds the value of the "snippet_id" field.
	SnippetID string `json:"snippet_id,omitempty"`
	// Rank holds the value of the "rank" field.
	Rank int `json:"rank,omitempty"`
	// Cosine similarity of the snippet to the section query
	Similarity float64 `json:"similarity,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SectionEvidenceQuery when eager-loading is set.
	Edges        SectionEvidenceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SectionEvidenceEdges holds the relations/edges for other nodes in the graph.
type SectionEvidenceEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SectionEvidenceEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SectionEvidence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sectionevidence.FieldSimilarity:
			values[i] = new(sql.NullFloat64)
		case sectionevidence.FieldRank:
			values[i] = new(sql.NullInt64)
		case sectionevidence.FieldID, sectionevidence.FieldTenantID, sectionevidence.FieldRunID, sectionevidence.FieldSectionID, sectionevidence.FieldSnippetID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SectionEvidence fields.
func (_m *SectionEvidence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sectionevidence.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sectionevidence.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case sectionevidence.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case sectionevidence.FieldSectionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section_id", values[i])
			} else if value.Valid {
				_m.SectionID = value.String
			}
		case sectionevidence.FieldSnippetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snippet_id", values[i])
			} else if value.Valid {
				_m.SnippetID = value.String
			}
		case sectionevidence.FieldRank:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rank", values[i])
			} else if value.Valid {
				_m.Rank = int(value.Int64)
			}
		case sectionevidence.FieldSimilarity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field similarity", values[i])
			} else if value.Valid {
				_m.Similarity = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SectionEvidence.
// This includes values selected through modifiers, order, etc.
func (_m *SectionEvidence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the SectionEvidence entity.
func (_m *SectionEvidence) QueryRun() *RunQuery {
	return NewSectionEvidenceClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this SectionEvidence.
// Note that you need to call SectionEvidence.Unwrap() before calling this method if this SectionEvidence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SectionEvidence) Update() *SectionEvidenceUpdateOne {
	return NewSectionEvidenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SectionEvidence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SectionEvidence) Unwrap() *SectionEvidence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SectionEvidence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SectionEvidence) String() string {
	var builder strings.Builder
	builder.WriteString("SectionEvidence(")
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
	builder.WriteString("snippet_id=")
	builder.WriteString(_m.SnippetID)
	builder.WriteString(", ")
	builder.WriteString("rank=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rank))
	builder.WriteString(", ")
	builder.WriteString("similarity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Similarity))
	builder.WriteByte(')')
	return builder.String()
}

// SectionEvidences is a parsable slice of SectionEvidence.
type SectionEvidences []*SectionEvidence
