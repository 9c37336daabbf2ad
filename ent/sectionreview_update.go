// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/inquiro-ai/inquiro/ent/predicate"
	"github.com/inquiro-ai/inquiro/ent/sectionreview"
)

// SectionReviewUpdate is the builder for updating SectionReview entities.
type SectionReviewUpdate struct {
	config
	hooks     []Hook
	mutation  *SectionReviewMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the SectionReviewUpdate builder.
func (_u *SectionReviewUpdate) Where(ps ...predicate.SectionReview) *SectionReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *SectionReviewUpdate) SetVerdict(v sectionreview.Verdict) *SectionReviewUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *SectionReviewUpdate) SetNillableVerdict(v *sectionreview.Verdict) *SectionReviewUpdate {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetIssues sets the "issues" field.
func (_u *SectionReviewUpdate) SetIssues(v []map[string]interface{}) *SectionReviewUpdate {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *SectionReviewUpdate) AppendIssues(v []map[string]interface{}) *SectionReviewUpdate {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *SectionReviewUpdate) ClearIssues() *SectionReviewUpdate {
	_u.mutation.ClearIssues()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *SectionReviewUpdate) SetReviewedAt(v time.Time) *SectionReviewUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *SectionReviewUpdate) SetNillableReviewedAt(v *time.Time) *SectionReviewUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// Mutation returns the SectionReviewMutation object of the builder.
func (_u *SectionReviewUpdate) Mutation() *SectionReviewMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SectionReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SectionReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SectionReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SectionReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SectionReviewUpdate) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := sectionreview.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "SectionReview.verdict": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SectionReview.run"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SectionReviewUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SectionReviewUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SectionReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sectionreview.Table, sectionreview.Columns, sqlgraph.NewFieldSpec(sectionreview.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(sectionreview.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(sectionreview.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sectionreview.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(sectionreview.FieldIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(sectionreview.FieldReviewedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sectionreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SectionReviewUpdateOne is the builder for updating a single SectionReview entity.
type SectionReviewUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *SectionReviewMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetVerdict sets the "verdict" field.
func (_u *SectionReviewUpdateOne) SetVerdict(v sectionreview.Verdict) *SectionReviewUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *SectionReviewUpdateOne) SetNillableVerdict(v *sectionreview.Verdict) *SectionReviewUpdateOne {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetIssues sets the "issues" field.
func (_u *SectionReviewUpdateOne) SetIssues(v []map[string]interface{}) *SectionReviewUpdateOne {
	_u.mutation.SetIssues(v)
	return _u
}

// AppendIssues appends value to the "issues" field.
func (_u *SectionReviewUpdateOne) AppendIssues(v []map[string]interface{}) *SectionReviewUpdateOne {
	_u.mutation.AppendIssues(v)
	return _u
}

// ClearIssues clears the value of the "issues" field.
func (_u *SectionReviewUpdateOne) ClearIssues() *SectionReviewUpdateOne {
	_u.mutation.ClearIssues()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *SectionReviewUpdateOne) SetReviewedAt(v time.Time) *SectionReviewUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *SectionReviewUpdateOne) SetNillableReviewedAt(v *time.Time) *SectionReviewUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// Mutation returns the SectionReviewMutation object of the builder.
func (_u *SectionReviewUpdateOne) Mutation() *SectionReviewMutation {
	return _u.mutation
}

// Where appends a list predicates to the SectionReviewUpdate builder.
func (_u *SectionReviewUpdateOne) Where(ps ...predicate.SectionReview) *SectionReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SectionReviewUpdateOne) Select(field string, fields ...string) *SectionReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SectionReview entity.
func (_u *SectionReviewUpdateOne) Save(ctx context.Context) (*SectionReview, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SectionReviewUpdateOne) SaveX(ctx context.Context) *SectionReview {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SectionReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SectionReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SectionReviewUpdateOne) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := sectionreview.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "SectionReview.verdict": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SectionReview.run"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SectionReviewUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SectionReviewUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SectionReviewUpdateOne) sqlSave(ctx context.Context) (_node *SectionReview, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sectionreview.Table, sectionreview.Columns, sqlgraph.NewFieldSpec(sectionreview.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SectionReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sectionreview.FieldID)
		for _, f := range fields {
			if !sectionreview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sectionreview.FieldID {
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
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(sectionreview.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Issues(); ok {
		_spec.SetField(sectionreview.FieldIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sectionreview.FieldIssues, value)
		})
	}
	if _u.mutation.IssuesCleared() {
		_spec.ClearField(sectionreview.FieldIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(sectionreview.FieldReviewedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &SectionReview{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sectionreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
