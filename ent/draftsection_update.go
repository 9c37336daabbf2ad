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
	"github.com/inquiro-ai/inquiro/ent/draftsection"
	"github.com/inquiro-ai/inquiro/ent/predicate"
)

// DraftSectionUpdate is the builder for updating DraftSection entities.
type DraftSectionUpdate struct {
	config
	hooks     []Hook
	mutation  *DraftSectionMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the DraftSectionUpdate builder.
func (_u *DraftSectionUpdate) Where(ps ...predicate.DraftSection) *DraftSectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *DraftSectionUpdate) SetText(v string) *DraftSectionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *DraftSectionUpdate) SetNillableText(v *string) *DraftSectionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetSectionSummary sets the "section_summary" field.
func (_u *DraftSectionUpdate) SetSectionSummary(v string) *DraftSectionUpdate {
	_u.mutation.SetSectionSummary(v)
	return _u
}

// SetNillableSectionSummary sets the "section_summary" field if the given value is not nil.
func (_u *DraftSectionUpdate) SetNillableSectionSummary(v *string) *DraftSectionUpdate {
	if v != nil {
		_u.SetSectionSummary(*v)
	}
	return _u
}

// ClearSectionSummary clears the value of the "section_summary" field.
func (_u *DraftSectionUpdate) ClearSectionSummary() *DraftSectionUpdate {
	_u.mutation.ClearSectionSummary()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DraftSectionUpdate) SetUpdatedAt(v time.Time) *DraftSectionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DraftSectionMutation object of the builder.
func (_u *DraftSectionUpdate) Mutation() *DraftSectionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DraftSectionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DraftSectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DraftSectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DraftSectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DraftSectionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := draftsection.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DraftSectionUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DraftSection.run"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *DraftSectionUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *DraftSectionUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *DraftSectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(draftsection.Table, draftsection.Columns, sqlgraph.NewFieldSpec(draftsection.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(draftsection.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionSummary(); ok {
		_spec.SetField(draftsection.FieldSectionSummary, field.TypeString, value)
	}
	if _u.mutation.SectionSummaryCleared() {
		_spec.ClearField(draftsection.FieldSectionSummary, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(draftsection.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{draftsection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DraftSectionUpdateOne is the builder for updating a single DraftSection entity.
type DraftSectionUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *DraftSectionMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetText sets the "text" field.
func (_u *DraftSectionUpdateOne) SetText(v string) *DraftSectionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *DraftSectionUpdateOne) SetNillableText(v *string) *DraftSectionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetSectionSummary sets the "section_summary" field.
func (_u *DraftSectionUpdateOne) SetSectionSummary(v string) *DraftSectionUpdateOne {
	_u.mutation.SetSectionSummary(v)
	return _u
}

// SetNillableSectionSummary sets the "section_summary" field if the given value is not nil.
func (_u *DraftSectionUpdateOne) SetNillableSectionSummary(v *string) *DraftSectionUpdateOne {
	if v != nil {
		_u.SetSectionSummary(*v)
	}
	return _u
}

// ClearSectionSummary clears the value of the "section_summary" field.
func (_u *DraftSectionUpdateOne) ClearSectionSummary() *DraftSectionUpdateOne {
	_u.mutation.ClearSectionSummary()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DraftSectionUpdateOne) SetUpdatedAt(v time.Time) *DraftSectionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DraftSectionMutation object of the builder.
func (_u *DraftSectionUpdateOne) Mutation() *DraftSectionMutation {
	return _u.mutation
}

// Where appends a list predicates to the DraftSectionUpdate builder.
func (_u *DraftSectionUpdateOne) Where(ps ...predicate.DraftSection) *DraftSectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DraftSectionUpdateOne) Select(field string, fields ...string) *DraftSectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DraftSection entity.
func (_u *DraftSectionUpdateOne) Save(ctx context.Context) (*DraftSection, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DraftSectionUpdateOne) SaveX(ctx context.Context) *DraftSection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DraftSectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DraftSectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DraftSectionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := draftsection.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DraftSectionUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DraftSection.run"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *DraftSectionUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *DraftSectionUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *DraftSectionUpdateOne) sqlSave(ctx context.Context) (_node *DraftSection, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(draftsection.Table, draftsection.Columns, sqlgraph.NewFieldSpec(draftsection.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DraftSection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, draftsection.FieldID)
		for _, f := range fields {
			if !draftsection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != draftsection.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(draftsection.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SectionSummary(); ok {
		_spec.SetField(draftsection.FieldSectionSummary, field.TypeString, value)
	}
	if _u.mutation.SectionSummaryCleared() {
		_spec.ClearField(draftsection.FieldSectionSummary, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(draftsection.FieldUpdatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &DraftSection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{draftsection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
