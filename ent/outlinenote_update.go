// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/inquiro-ai/inquiro/ent/outlinenote"
	"github.com/inquiro-ai/inquiro/ent/predicate"
)

// OutlineNoteUpdate is the builder for updating OutlineNote entities.
type OutlineNoteUpdate struct {
	config
	hooks     []Hook
	mutation  *OutlineNoteMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the OutlineNoteUpdate builder.
func (_u *OutlineNoteUpdate) Where(ps ...predicate.OutlineNote) *OutlineNoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKeyPoints sets the "key_points" field.
func (_u *OutlineNoteUpdate) SetKeyPoints(v []string) *OutlineNoteUpdate {
	_u.mutation.SetKeyPoints(v)
	return _u
}

// AppendKeyPoints appends value to the "key_points" field.
func (_u *OutlineNoteUpdate) AppendKeyPoints(v []string) *OutlineNoteUpdate {
	_u.mutation.AppendKeyPoints(v)
	return _u
}

// SetEvidenceThemes sets the "evidence_themes" field.
func (_u *OutlineNoteUpdate) SetEvidenceThemes(v []string) *OutlineNoteUpdate {
	_u.mutation.SetEvidenceThemes(v)
	return _u
}

// AppendEvidenceThemes appends value to the "evidence_themes" field.
func (_u *OutlineNoteUpdate) AppendEvidenceThemes(v []string) *OutlineNoteUpdate {
	_u.mutation.AppendEvidenceThemes(v)
	return _u
}

// Mutation returns the OutlineNoteMutation object of the builder.
func (_u *OutlineNoteUpdate) Mutation() *OutlineNoteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OutlineNoteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutlineNoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OutlineNoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutlineNoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutlineNoteUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OutlineNote.run"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *OutlineNoteUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *OutlineNoteUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *OutlineNoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outlinenote.Table, outlinenote.Columns, sqlgraph.NewFieldSpec(outlinenote.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.KeyPoints(); ok {
		_spec.SetField(outlinenote.FieldKeyPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, outlinenote.FieldKeyPoints, value)
		})
	}
	if value, ok := _u.mutation.EvidenceThemes(); ok {
		_spec.SetField(outlinenote.FieldEvidenceThemes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidenceThemes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, outlinenote.FieldEvidenceThemes, value)
		})
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outlinenote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OutlineNoteUpdateOne is the builder for updating a single OutlineNote entity.
type OutlineNoteUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *OutlineNoteMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetKeyPoints sets the "key_points" field.
func (_u *OutlineNoteUpdateOne) SetKeyPoints(v []string) *OutlineNoteUpdateOne {
	_u.mutation.SetKeyPoints(v)
	return _u
}

// AppendKeyPoints appends value to the "key_points" field.
func (_u *OutlineNoteUpdateOne) AppendKeyPoints(v []string) *OutlineNoteUpdateOne {
	_u.mutation.AppendKeyPoints(v)
	return _u
}

// SetEvidenceThemes sets the "evidence_themes" field.
func (_u *OutlineNoteUpdateOne) SetEvidenceThemes(v []string) *OutlineNoteUpdateOne {
	_u.mutation.SetEvidenceThemes(v)
	return _u
}

// AppendEvidenceThemes appends value to the "evidence_themes" field.
func (_u *OutlineNoteUpdateOne) AppendEvidenceThemes(v []string) *OutlineNoteUpdateOne {
	_u.mutation.AppendEvidenceThemes(v)
	return _u
}

// Mutation returns the OutlineNoteMutation object of the builder.
func (_u *OutlineNoteUpdateOne) Mutation() *OutlineNoteMutation {
	return _u.mutation
}

// Where appends a list predicates to the OutlineNoteUpdate builder.
func (_u *OutlineNoteUpdateOne) Where(ps ...predicate.OutlineNote) *OutlineNoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OutlineNoteUpdateOne) Select(field string, fields ...string) *OutlineNoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OutlineNote entity.
func (_u *OutlineNoteUpdateOne) Save(ctx context.Context) (*OutlineNote, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutlineNoteUpdateOne) SaveX(ctx context.Context) *OutlineNote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OutlineNoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutlineNoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutlineNoteUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OutlineNote.run"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *OutlineNoteUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *OutlineNoteUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *OutlineNoteUpdateOne) sqlSave(ctx context.Context) (_node *OutlineNote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outlinenote.Table, outlinenote.Columns, sqlgraph.NewFieldSpec(outlinenote.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OutlineNote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outlinenote.FieldID)
		for _, f := range fields {
			if !outlinenote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != outlinenote.FieldID {
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
	if value, ok := _u.mutation.KeyPoints(); ok {
		_spec.SetField(outlinenote.FieldKeyPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, outlinenote.FieldKeyPoints, value)
		})
	}
	if value, ok := _u.mutation.EvidenceThemes(); ok {
		_spec.SetField(outlinenote.FieldEvidenceThemes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvidenceThemes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, outlinenote.FieldEvidenceThemes, value)
		})
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &OutlineNote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outlinenote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
