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
	"github.com/inquiro-ai/inquiro/ent/runsection"
)

// RunSectionUpdate is the builder for updating RunSection entities.
type RunSectionUpdate struct {
	config
	hooks     []Hook
	mutation  *RunSectionMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the RunSectionUpdate builder.
func (_u *RunSectionUpdate) Where(ps ...predicate.RunSection) *RunSectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *RunSectionUpdate) SetTitle(v string) *RunSectionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RunSectionUpdate) SetNillableTitle(v *string) *RunSectionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *RunSectionUpdate) SetGoal(v string) *RunSectionUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *RunSectionUpdate) SetNillableGoal(v *string) *RunSectionUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetSectionOrder sets the "section_order" field.
func (_u *RunSectionUpdate) SetSectionOrder(v int) *RunSectionUpdate {
	_u.mutation.ResetSectionOrder()
	_u.mutation.SetSectionOrder(v)
	return _u
}

// SetNillableSectionOrder sets the "section_order" field if the given value is not nil.
func (_u *RunSectionUpdate) SetNillableSectionOrder(v *int) *RunSectionUpdate {
	if v != nil {
		_u.SetSectionOrder(*v)
	}
	return _u
}

// AddSectionOrder adds value to the "section_order" field.
func (_u *RunSectionUpdate) AddSectionOrder(v int) *RunSectionUpdate {
	_u.mutation.AddSectionOrder(v)
	return _u
}

// Mutation returns the RunSectionMutation object of the builder.
func (_u *RunSectionUpdate) Mutation() *RunSectionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunSectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunSectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunSectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunSectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunSectionUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunSection.run"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *RunSectionUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *RunSectionUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *RunSectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runsection.Table, runsection.Columns, sqlgraph.NewFieldSpec(runsection.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(runsection.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(runsection.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionOrder(); ok {
		_spec.SetField(runsection.FieldSectionOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionOrder(); ok {
		_spec.AddField(runsection.FieldSectionOrder, field.TypeInt, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runsection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunSectionUpdateOne is the builder for updating a single RunSection entity.
type RunSectionUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *RunSectionMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetTitle sets the "title" field.
func (_u *RunSectionUpdateOne) SetTitle(v string) *RunSectionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RunSectionUpdateOne) SetNillableTitle(v *string) *RunSectionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *RunSectionUpdateOne) SetGoal(v string) *RunSectionUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *RunSectionUpdateOne) SetNillableGoal(v *string) *RunSectionUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetSectionOrder sets the "section_order" field.
func (_u *RunSectionUpdateOne) SetSectionOrder(v int) *RunSectionUpdateOne {
	_u.mutation.ResetSectionOrder()
	_u.mutation.SetSectionOrder(v)
	return _u
}

// SetNillableSectionOrder sets the "section_order" field if the given value is not nil.
func (_u *RunSectionUpdateOne) SetNillableSectionOrder(v *int) *RunSectionUpdateOne {
	if v != nil {
		_u.SetSectionOrder(*v)
	}
	return _u
}

// AddSectionOrder adds value to the "section_order" field.
func (_u *RunSectionUpdateOne) AddSectionOrder(v int) *RunSectionUpdateOne {
	_u.mutation.AddSectionOrder(v)
	return _u
}

// Mutation returns the RunSectionMutation object of the builder.
func (_u *RunSectionUpdateOne) Mutation() *RunSectionMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunSectionUpdate builder.
func (_u *RunSectionUpdateOne) Where(ps ...predicate.RunSection) *RunSectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunSectionUpdateOne) Select(field string, fields ...string) *RunSectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunSection entity.
func (_u *RunSectionUpdateOne) Save(ctx context.Context) (*RunSection, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunSectionUpdateOne) SaveX(ctx context.Context) *RunSection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunSectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunSectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunSectionUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunSection.run"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *RunSectionUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *RunSectionUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *RunSectionUpdateOne) sqlSave(ctx context.Context) (_node *RunSection, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runsection.Table, runsection.Columns, sqlgraph.NewFieldSpec(runsection.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunSection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runsection.FieldID)
		for _, f := range fields {
			if !runsection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runsection.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(runsection.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(runsection.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionOrder(); ok {
		_spec.SetField(runsection.FieldSectionOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionOrder(); ok {
		_spec.AddField(runsection.FieldSectionOrder, field.TypeInt, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &RunSection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runsection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
