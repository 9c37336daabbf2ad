// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/inquiro-ai/inquiro/ent/sourceembedding"
	pgvector "github.com/pgvector/pgvector-go"
)

// SourceEmbedding is the model entity for the SourceEmbedding schema.
type SourceEmbedding struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// CanonicalID holds the value of the "canonical_id" field.
	CanonicalID string `json:"canonical_id,omitempty"`
	// EmbeddingModel holds the value of the "embedding_model" field.
	EmbeddingModel string `json:"embedding_model,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding pgvector.Vector `json:"embedding,omitempty"`
	// SHA-256 of title+abstract at embedding time
	TextHash string `json:"text_hash,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SourceEmbedding) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sourceembedding.FieldEmbedding:
			values[i] = new(pgvector.Vector)
		case sourceembedding.FieldID, sourceembedding.FieldTenantID, sourceembedding.FieldCanonicalID, sourceembedding.FieldEmbeddingModel, sourceembedding.FieldTextHash:
			values[i] = new(sql.NullString)
		case sourceembedding.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SourceEmbedding fields.
func (_m *SourceEmbedding) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sourceembedding.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sourceembedding.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case sourceembedding.FieldCanonicalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_id", values[i])
			} else if value.Valid {
				_m.CanonicalID = value.String
			}
		case sourceembedding.FieldEmbeddingModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field embedding_model", values[i])
			} else if value.Valid {
				_m.EmbeddingModel = value.String
			}
		case sourceembedding.FieldEmbedding:
			if value, ok := values[i].(*pgvector.Vector); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil {
				_m.Embedding = *value
			}
		case sourceembedding.FieldTextHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_hash", values[i])
			} else if value.Valid {
				_m.TextHash = value.String
			}
		case sourceembedding.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SourceEmbedding.
// This includes values selected through modifiers, order, etc.
func (_m *SourceEmbedding) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SourceEmbedding.
// Note that you need to call SourceEmbedding.Unwrap() before calling this method if this SourceEmbedding
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SourceEmbedding) Update() *SourceEmbeddingUpdateOne {
	return NewSourceEmbeddingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SourceEmbedding entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SourceEmbedding) Unwrap() *SourceEmbedding {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SourceEmbedding is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SourceEmbedding) String() string {
	var builder strings.Builder
	builder.WriteString("SourceEmbedding(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("canonical_id=")
	builder.WriteString(_m.CanonicalID)
	builder.WriteString(", ")
	builder.WriteString("embedding_model=")
	builder.WriteString(_m.EmbeddingModel)
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("text_hash=")
	builder.WriteString(_m.TextHash)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SourceEmbeddings is a parsable slice of SourceEmbedding.
type SourceEmbeddings []*SourceEmbedding
