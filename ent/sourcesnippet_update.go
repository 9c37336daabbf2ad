// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/inquiro-ai/inquiro/ent/predicate"
	"github.com/inquiro-ai/inquiro/ent/sourcesnippet"
	pgvector "github.com/pgvector/pgvector-go"
)

// SourceSnippetUpdate is the builder for updating SourceSnippet entities.
type SourceSnippetUpdate struct {
	config
	hooks     []Hook
	mutation  *SourceSnippetMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the SourceSnippetUpdate builder.
func (_u *SourceSnippetUpdate) Where(ps ...predicate.SourceSnippet) *SourceSnippetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrd sets the "ord" field.
func (_u *SourceSnippetUpdate) SetOrd(v int) *SourceSnippetUpdate {
	_u.mutation.ResetOrd()
	_u.mutation.SetOrd(v)
	return _u
}

// SetNillableOrd sets the "ord" field if the given value is not nil.
func (_u *SourceSnippetUpdate) SetNillableOrd(v *int) *SourceSnippetUpdate {
	if v != nil {
		_u.SetOrd(*v)
	}
	return _u
}

// AddOrd adds value to the "ord" field.
func (_u *SourceSnippetUpdate) AddOrd(v int) *SourceSnippetUpdate {
	_u.mutation.AddOrd(v)
	return _u
}

// SetText sets the "text" field.
func (_u *SourceSnippetUpdate) SetText(v string) *SourceSnippetUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *SourceSnippetUpdate) SetNillableText(v *string) *SourceSnippetUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *SourceSnippetUpdate) SetEmbedding(v pgvector.Vector) *SourceSnippetUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *SourceSnippetUpdate) SetNillableEmbedding(v *pgvector.Vector) *SourceSnippetUpdate {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// SetEmbeddingModel sets the "embedding_model" field.
func (_u *SourceSnippetUpdate) SetEmbeddingModel(v string) *SourceSnippetUpdate {
	_u.mutation.SetEmbeddingModel(v)
	return _u
}

// SetNillableEmbeddingModel sets the "embedding_model" field if the given value is not nil.
func (_u *SourceSnippetUpdate) SetNillableEmbeddingModel(v *string) *SourceSnippetUpdate {
	if v != nil {
		_u.SetEmbeddingModel(*v)
	}
	return _u
}

// Mutation returns the SourceSnippetMutation object of the builder.
func (_u *SourceSnippetUpdate) Mutation() *SourceSnippetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceSnippetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceSnippetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceSnippetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceSnippetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceSnippetUpdate) check() error {
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceSnippet.source"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SourceSnippetUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SourceSnippetUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SourceSnippetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcesnippet.Table, sourcesnippet.Columns, sqlgraph.NewFieldSpec(sourcesnippet.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ord(); ok {
		_spec.SetField(sourcesnippet.FieldOrd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrd(); ok {
		_spec.AddField(sourcesnippet.FieldOrd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(sourcesnippet.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(sourcesnippet.FieldEmbedding, field.TypeOther, value)
	}
	if value, ok := _u.mutation.EmbeddingModel(); ok {
		_spec.SetField(sourcesnippet.FieldEmbeddingModel, field.TypeString, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcesnippet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceSnippetUpdateOne is the builder for updating a single SourceSnippet entity.
type SourceSnippetUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *SourceSnippetMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetOrd sets the "ord" field.
func (_u *SourceSnippetUpdateOne) SetOrd(v int) *SourceSnippetUpdateOne {
	_u.mutation.ResetOrd()
	_u.mutation.SetOrd(v)
	return _u
}

// SetNillableOrd sets the "ord" field if the given value is not nil.
func (_u *SourceSnippetUpdateOne) SetNillableOrd(v *int) *SourceSnippetUpdateOne {
	if v != nil {
		_u.SetOrd(*v)
	}
	return _u
}

// AddOrd adds value to the "ord" field.
func (_u *SourceSnippetUpdateOne) AddOrd(v int) *SourceSnippetUpdateOne {
	_u.mutation.AddOrd(v)
	return _u
}

// SetText sets the "text" field.
func (_u *SourceSnippetUpdateOne) SetText(v string) *SourceSnippetUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *SourceSnippetUpdateOne) SetNillableText(v *string) *SourceSnippetUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *SourceSnippetUpdateOne) SetEmbedding(v pgvector.Vector) *SourceSnippetUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *SourceSnippetUpdateOne) SetNillableEmbedding(v *pgvector.Vector) *SourceSnippetUpdateOne {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// SetEmbeddingModel sets the "embedding_model" field.
func (_u *SourceSnippetUpdateOne) SetEmbeddingModel(v string) *SourceSnippetUpdateOne {
	_u.mutation.SetEmbeddingModel(v)
	return _u
}

// SetNillableEmbeddingModel sets the "embedding_model" field if the given value is not nil.
func (_u *SourceSnippetUpdateOne) SetNillableEmbeddingModel(v *string) *SourceSnippetUpdateOne {
	if v != nil {
		_u.SetEmbeddingModel(*v)
	}
	return _u
}

// Mutation returns the SourceSnippetMutation object of the builder.
func (_u *SourceSnippetUpdateOne) Mutation() *SourceSnippetMutation {
	return _u.mutation
}

// Where appends a list predicates to the SourceSnippetUpdate builder.
func (_u *SourceSnippetUpdateOne) Where(ps ...predicate.SourceSnippet) *SourceSnippetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceSnippetUpdateOne) Select(field string, fields ...string) *SourceSnippetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SourceSnippet entity.
func (_u *SourceSnippetUpdateOne) Save(ctx context.Context) (*SourceSnippet, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceSnippetUpdateOne) SaveX(ctx context.Context) *SourceSnippet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceSnippetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceSnippetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceSnippetUpdateOne) check() error {
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceSnippet.source"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SourceSnippetUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SourceSnippetUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SourceSnippetUpdateOne) sqlSave(ctx context.Context) (_node *SourceSnippet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcesnippet.Table, sourcesnippet.Columns, sqlgraph.NewFieldSpec(sourcesnippet.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SourceSnippet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sourcesnippet.FieldID)
		for _, f := range fields {
			if !sourcesnippet.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sourcesnippet.FieldID {
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
	if value, ok := _u.mutation.Ord(); ok {
		_spec.SetField(sourcesnippet.FieldOrd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrd(); ok {
		_spec.AddField(sourcesnippet.FieldOrd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(sourcesnippet.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(sourcesnippet.FieldEmbedding, field.TypeOther, value)
	}
	if value, ok := _u.mutation.EmbeddingModel(); ok {
		_spec.SetField(sourcesnippet.FieldEmbeddingModel, field.TypeString, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &SourceSnippet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcesnippet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
