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
	"github.com/inquiro-ai/inquiro/ent/sourcesnapshot"
)

// SourceSnapshotUpdate is the builder for updating SourceSnapshot entities.
type SourceSnapshotUpdate struct {
	config
	hooks     []Hook
	mutation  *SourceSnapshotMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the SourceSnapshotUpdate builder.
func (_u *SourceSnapshotUpdate) Where(ps ...predicate.SourceSnapshot) *SourceSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *SourceSnapshotUpdate) SetContentHash(v string) *SourceSnapshotUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *SourceSnapshotUpdate) SetNillableContentHash(v *string) *SourceSnapshotUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetSnippetCount sets the "snippet_count" field.
func (_u *SourceSnapshotUpdate) SetSnippetCount(v int) *SourceSnapshotUpdate {
	_u.mutation.ResetSnippetCount()
	_u.mutation.SetSnippetCount(v)
	return _u
}

// SetNillableSnippetCount sets the "snippet_count" field if the given value is not nil.
func (_u *SourceSnapshotUpdate) SetNillableSnippetCount(v *int) *SourceSnapshotUpdate {
	if v != nil {
		_u.SetSnippetCount(*v)
	}
	return _u
}

// AddSnippetCount adds value to the "snippet_count" field.
func (_u *SourceSnapshotUpdate) AddSnippetCount(v int) *SourceSnapshotUpdate {
	_u.mutation.AddSnippetCount(v)
	return _u
}

// Mutation returns the SourceSnapshotMutation object of the builder.
func (_u *SourceSnapshotUpdate) Mutation() *SourceSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceSnapshotUpdate) check() error {
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceSnapshot.source"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SourceSnapshotUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SourceSnapshotUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SourceSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcesnapshot.Table, sourcesnapshot.Columns, sqlgraph.NewFieldSpec(sourcesnapshot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(sourcesnapshot.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.SnippetCount(); ok {
		_spec.SetField(sourcesnapshot.FieldSnippetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSnippetCount(); ok {
		_spec.AddField(sourcesnapshot.FieldSnippetCount, field.TypeInt, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceSnapshotUpdateOne is the builder for updating a single SourceSnapshot entity.
type SourceSnapshotUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *SourceSnapshotMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetContentHash sets the "content_hash" field.
func (_u *SourceSnapshotUpdateOne) SetContentHash(v string) *SourceSnapshotUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *SourceSnapshotUpdateOne) SetNillableContentHash(v *string) *SourceSnapshotUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetSnippetCount sets the "snippet_count" field.
func (_u *SourceSnapshotUpdateOne) SetSnippetCount(v int) *SourceSnapshotUpdateOne {
	_u.mutation.ResetSnippetCount()
	_u.mutation.SetSnippetCount(v)
	return _u
}

// SetNillableSnippetCount sets the "snippet_count" field if the given value is not nil.
func (_u *SourceSnapshotUpdateOne) SetNillableSnippetCount(v *int) *SourceSnapshotUpdateOne {
	if v != nil {
		_u.SetSnippetCount(*v)
	}
	return _u
}

// AddSnippetCount adds value to the "snippet_count" field.
func (_u *SourceSnapshotUpdateOne) AddSnippetCount(v int) *SourceSnapshotUpdateOne {
	_u.mutation.AddSnippetCount(v)
	return _u
}

// Mutation returns the SourceSnapshotMutation object of the builder.
func (_u *SourceSnapshotUpdateOne) Mutation() *SourceSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the SourceSnapshotUpdate builder.
func (_u *SourceSnapshotUpdateOne) Where(ps ...predicate.SourceSnapshot) *SourceSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceSnapshotUpdateOne) Select(field string, fields ...string) *SourceSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SourceSnapshot entity.
func (_u *SourceSnapshotUpdateOne) Save(ctx context.Context) (*SourceSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceSnapshotUpdateOne) SaveX(ctx context.Context) *SourceSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceSnapshotUpdateOne) check() error {
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceSnapshot.source"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SourceSnapshotUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SourceSnapshotUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SourceSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *SourceSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcesnapshot.Table, sourcesnapshot.Columns, sqlgraph.NewFieldSpec(sourcesnapshot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SourceSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sourcesnapshot.FieldID)
		for _, f := range fields {
			if !sourcesnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sourcesnapshot.FieldID {
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
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(sourcesnapshot.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.SnippetCount(); ok {
		_spec.SetField(sourcesnapshot.FieldSnippetCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSnippetCount(); ok {
		_spec.AddField(sourcesnapshot.FieldSnippetCount, field.TypeInt, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &SourceSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
