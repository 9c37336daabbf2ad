// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/inquiro-ai/inquiro/ent/predicate"
	"github.com/inquiro-ai/inquiro/ent/sourceembedding"
	pgvector "github.com/pgvector/pgvector-go"
)

// SourceEmbeddingUpdate is the builder for updating SourceEmbedding entities.
type SourceEmbeddingUpdate struct {
	config
	hooks     []Hook
	mutation  *SourceEmbeddingMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the SourceEmbeddingUpdate builder.
func (_u *SourceEmbeddingUpdate) Where(ps ...predicate.SourceEmbedding) *SourceEmbeddingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *SourceEmbeddingUpdate) SetEmbedding(v pgvector.Vector) *SourceEmbeddingUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *SourceEmbeddingUpdate) SetNillableEmbedding(v *pgvector.Vector) *SourceEmbeddingUpdate {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// SetTextHash sets the "text_hash" field.
func (_u *SourceEmbeddingUpdate) SetTextHash(v string) *SourceEmbeddingUpdate {
	_u.mutation.SetTextHash(v)
	return _u
}

// SetNillableTextHash sets the "text_hash" field if the given value is not nil.
func (_u *SourceEmbeddingUpdate) SetNillableTextHash(v *string) *SourceEmbeddingUpdate {
	if v != nil {
		_u.SetTextHash(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SourceEmbeddingUpdate) SetUpdatedAt(v time.Time) *SourceEmbeddingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SourceEmbeddingMutation object of the builder.
func (_u *SourceEmbeddingUpdate) Mutation() *SourceEmbeddingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceEmbeddingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceEmbeddingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceEmbeddingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceEmbeddingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceEmbeddingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sourceembedding.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SourceEmbeddingUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SourceEmbeddingUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SourceEmbeddingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sourceembedding.Table, sourceembedding.Columns, sqlgraph.NewFieldSpec(sourceembedding.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(sourceembedding.FieldEmbedding, field.TypeOther, value)
	}
	if value, ok := _u.mutation.TextHash(); ok {
		_spec.SetField(sourceembedding.FieldTextHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sourceembedding.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourceembedding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceEmbeddingUpdateOne is the builder for updating a single SourceEmbedding entity.
type SourceEmbeddingUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *SourceEmbeddingMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetEmbedding sets the "embedding" field.
func (_u *SourceEmbeddingUpdateOne) SetEmbedding(v pgvector.Vector) *SourceEmbeddingUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *SourceEmbeddingUpdateOne) SetNillableEmbedding(v *pgvector.Vector) *SourceEmbeddingUpdateOne {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// SetTextHash sets the "text_hash" field.
func (_u *SourceEmbeddingUpdateOne) SetTextHash(v string) *SourceEmbeddingUpdateOne {
	_u.mutation.SetTextHash(v)
	return _u
}

// SetNillableTextHash sets the "text_hash" field if the given value is not nil.
func (_u *SourceEmbeddingUpdateOne) SetNillableTextHash(v *string) *SourceEmbeddingUpdateOne {
	if v != nil {
		_u.SetTextHash(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SourceEmbeddingUpdateOne) SetUpdatedAt(v time.Time) *SourceEmbeddingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SourceEmbeddingMutation object of the builder.
func (_u *SourceEmbeddingUpdateOne) Mutation() *SourceEmbeddingMutation {
	return _u.mutation
}

// Where appends a list predicates to the SourceEmbeddingUpdate builder.
func (_u *SourceEmbeddingUpdateOne) Where(ps ...predicate.SourceEmbedding) *SourceEmbeddingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceEmbeddingUpdateOne) Select(field string, fields ...string) *SourceEmbeddingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SourceEmbedding entity.
func (_u *SourceEmbeddingUpdateOne) Save(ctx context.Context) (*SourceEmbedding, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceEmbeddingUpdateOne) SaveX(ctx context.Context) *SourceEmbedding {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceEmbeddingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceEmbeddingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceEmbeddingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sourceembedding.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SourceEmbeddingUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SourceEmbeddingUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SourceEmbeddingUpdateOne) sqlSave(ctx context.Context) (_node *SourceEmbedding, err error) {
	_spec := sqlgraph.NewUpdateSpec(sourceembedding.Table, sourceembedding.Columns, sqlgraph.NewFieldSpec(sourceembedding.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SourceEmbedding.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sourceembedding.FieldID)
		for _, f := range fields {
			if !sourceembedding.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sourceembedding.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(sourceembedding.FieldEmbedding, field.TypeOther, value)
	}
	if value, ok := _u.mutation.TextHash(); ok {
		_spec.SetField(sourceembedding.FieldTextHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sourceembedding.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &SourceEmbedding{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourceembedding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
