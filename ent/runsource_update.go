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
	"github.com/inquiro-ai/inquiro/ent/runsource"
)

// RunSourceUpdate is the builder for updating RunSource entities.
type RunSourceUpdate struct {
	config
	hooks     []Hook
	mutation  *RunSourceMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the RunSourceUpdate builder.
func (_u *RunSourceUpdate) Where(ps ...predicate.RunSource) *RunSourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIntent sets the "intent" field.
func (_u *RunSourceUpdate) SetIntent(v string) *RunSourceUpdate {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *RunSourceUpdate) SetNillableIntent(v *string) *RunSourceUpdate {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// ClearIntent clears the value of the "intent" field.
func (_u *RunSourceUpdate) ClearIntent() *RunSourceUpdate {
	_u.mutation.ClearIntent()
	return _u
}

// SetQuery sets the "query" field.
func (_u *RunSourceUpdate) SetQuery(v string) *RunSourceUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *RunSourceUpdate) SetNillableQuery(v *string) *RunSourceUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// ClearQuery clears the value of the "query" field.
func (_u *RunSourceUpdate) ClearQuery() *RunSourceUpdate {
	_u.mutation.ClearQuery()
	return _u
}

// SetRank sets the "rank" field.
func (_u *RunSourceUpdate) SetRank(v int) *RunSourceUpdate {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *RunSourceUpdate) SetNillableRank(v *int) *RunSourceUpdate {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *RunSourceUpdate) AddRank(v int) *RunSourceUpdate {
	_u.mutation.AddRank(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *RunSourceUpdate) SetScore(v float64) *RunSourceUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RunSourceUpdate) SetNillableScore(v *float64) *RunSourceUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RunSourceUpdate) AddScore(v float64) *RunSourceUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the RunSourceMutation object of the builder.
func (_u *RunSourceUpdate) Mutation() *RunSourceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunSourceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunSourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunSourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunSourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunSourceUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunSource.run"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *RunSourceUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *RunSourceUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *RunSourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runsource.Table, runsource.Columns, sqlgraph.NewFieldSpec(runsource.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(runsource.FieldIntent, field.TypeString, value)
	}
	if _u.mutation.IntentCleared() {
		_spec.ClearField(runsource.FieldIntent, field.TypeString)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(runsource.FieldQuery, field.TypeString, value)
	}
	if _u.mutation.QueryCleared() {
		_spec.ClearField(runsource.FieldQuery, field.TypeString)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(runsource.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(runsource.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(runsource.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(runsource.FieldScore, field.TypeFloat64, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runsource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunSourceUpdateOne is the builder for updating a single RunSource entity.
type RunSourceUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *RunSourceMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetIntent sets the "intent" field.
func (_u *RunSourceUpdateOne) SetIntent(v string) *RunSourceUpdateOne {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *RunSourceUpdateOne) SetNillableIntent(v *string) *RunSourceUpdateOne {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// ClearIntent clears the value of the "intent" field.
func (_u *RunSourceUpdateOne) ClearIntent() *RunSourceUpdateOne {
	_u.mutation.ClearIntent()
	return _u
}

// SetQuery sets the "query" field.
func (_u *RunSourceUpdateOne) SetQuery(v string) *RunSourceUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *RunSourceUpdateOne) SetNillableQuery(v *string) *RunSourceUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// ClearQuery clears the value of the "query" field.
func (_u *RunSourceUpdateOne) ClearQuery() *RunSourceUpdateOne {
	_u.mutation.ClearQuery()
	return _u
}

// SetRank sets the "rank" field.
func (_u *RunSourceUpdateOne) SetRank(v int) *RunSourceUpdateOne {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *RunSourceUpdateOne) SetNillableRank(v *int) *RunSourceUpdateOne {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *RunSourceUpdateOne) AddRank(v int) *RunSourceUpdateOne {
	_u.mutation.AddRank(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *RunSourceUpdateOne) SetScore(v float64) *RunSourceUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RunSourceUpdateOne) SetNillableScore(v *float64) *RunSourceUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RunSourceUpdateOne) AddScore(v float64) *RunSourceUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the RunSourceMutation object of the builder.
func (_u *RunSourceUpdateOne) Mutation() *RunSourceMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunSourceUpdate builder.
func (_u *RunSourceUpdateOne) Where(ps ...predicate.RunSource) *RunSourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunSourceUpdateOne) Select(field string, fields ...string) *RunSourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunSource entity.
func (_u *RunSourceUpdateOne) Save(ctx context.Context) (*RunSource, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunSourceUpdateOne) SaveX(ctx context.Context) *RunSource {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunSourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunSourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunSourceUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RunSource.run"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *RunSourceUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *RunSourceUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *RunSourceUpdateOne) sqlSave(ctx context.Context) (_node *RunSource, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runsource.Table, runsource.Columns, sqlgraph.NewFieldSpec(runsource.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunSource.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runsource.FieldID)
		for _, f := range fields {
			if !runsource.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runsource.FieldID {
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
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(runsource.FieldIntent, field.TypeString, value)
	}
	if _u.mutation.IntentCleared() {
		_spec.ClearField(runsource.FieldIntent, field.TypeString)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(runsource.FieldQuery, field.TypeString, value)
	}
	if _u.mutation.QueryCleared() {
		_spec.ClearField(runsource.FieldQuery, field.TypeString)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(runsource.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(runsource.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(runsource.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(runsource.FieldScore, field.TypeFloat64, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &RunSource{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runsource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
