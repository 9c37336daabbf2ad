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
	"github.com/inquiro-ai/inquiro/ent/sectionevidence"
)

// SectionEvidenceUpdate is the builder for updating SectionEvidence entities.
type SectionEvidenceUpdate struct {
	config
	hooks     []Hook
	mutation  *SectionEvidenceMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the SectionEvidenceUpdate builder.
func (_u *SectionEvidenceUpdate) Where(ps ...predicate.SectionEvidence) *SectionEvidenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRank sets the "rank" field.
func (_u *SectionEvidenceUpdate) SetRank(v int) *SectionEvidenceUpdate {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *SectionEvidenceUpdate) SetNillableRank(v *int) *SectionEvidenceUpdate {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *SectionEvidenceUpdate) AddRank(v int) *SectionEvidenceUpdate {
	_u.mutation.AddRank(v)
	return _u
}

// SetSimilarity sets the "similarity" field.
func (_u *SectionEvidenceUpdate) SetSimilarity(v float64) *SectionEvidenceUpdate {
	_u.mutation.ResetSimilarity()
	_u.mutation.SetSimilarity(v)
	return _u
}

// SetNillableSimilarity sets the "similarity" field if the given value is not nil.
func (_u *SectionEvidenceUpdate) SetNillableSimilarity(v *float64) *SectionEvidenceUpdate {
	if v != nil {
		_u.SetSimilarity(*v)
	}
	return _u
}

// AddSimilarity adds value to the "similarity" field.
func (_u *SectionEvidenceUpdate) AddSimilarity(v float64) *SectionEvidenceUpdate {
	_u.mutation.AddSimilarity(v)
	return _u
}

// Mutation returns the SectionEvidenceMutation object of the builder.
func (_u *SectionEvidenceUpdate) Mutation() *SectionEvidenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SectionEvidenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SectionEvidenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SectionEvidenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SectionEvidenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SectionEvidenceUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SectionEvidence.run"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SectionEvidenceUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SectionEvidenceUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SectionEvidenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sectionevidence.Table, sectionevidence.Columns, sqlgraph.NewFieldSpec(sectionevidence.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(sectionevidence.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(sectionevidence.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Similarity(); ok {
		_spec.SetField(sectionevidence.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarity(); ok {
		_spec.AddField(sectionevidence.FieldSimilarity, field.TypeFloat64, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sectionevidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SectionEvidenceUpdateOne is the builder for updating a single SectionEvidence entity.
type SectionEvidenceUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *SectionEvidenceMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetRank sets the "rank" field.
func (_u *SectionEvidenceUpdateOne) SetRank(v int) *SectionEvidenceUpdateOne {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *SectionEvidenceUpdateOne) SetNillableRank(v *int) *SectionEvidenceUpdateOne {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *SectionEvidenceUpdateOne) AddRank(v int) *SectionEvidenceUpdateOne {
	_u.mutation.AddRank(v)
	return _u
}

// SetSimilarity sets the "similarity" field.
func (_u *SectionEvidenceUpdateOne) SetSimilarity(v float64) *SectionEvidenceUpdateOne {
	_u.mutation.ResetSimilarity()
	_u.mutation.SetSimilarity(v)
	return _u
}

// SetNillableSimilarity sets the "similarity" field if the given value is not nil.
func (_u *SectionEvidenceUpdateOne) SetNillableSimilarity(v *float64) *SectionEvidenceUpdateOne {
	if v != nil {
		_u.SetSimilarity(*v)
	}
	return _u
}

// AddSimilarity adds value to the "similarity" field.
func (_u *SectionEvidenceUpdateOne) AddSimilarity(v float64) *SectionEvidenceUpdateOne {
	_u.mutation.AddSimilarity(v)
	return _u
}

// Mutation returns the SectionEvidenceMutation object of the builder.
func (_u *SectionEvidenceUpdateOne) Mutation() *SectionEvidenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the SectionEvidenceUpdate builder.
func (_u *SectionEvidenceUpdateOne) Where(ps ...predicate.SectionEvidence) *SectionEvidenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SectionEvidenceUpdateOne) Select(field string, fields ...string) *SectionEvidenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SectionEvidence entity.
func (_u *SectionEvidenceUpdateOne) Save(ctx context.Context) (*SectionEvidence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SectionEvidenceUpdateOne) SaveX(ctx context.Context) *SectionEvidence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SectionEvidenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SectionEvidenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SectionEvidenceUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SectionEvidence.run"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SectionEvidenceUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SectionEvidenceUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SectionEvidenceUpdateOne) sqlSave(ctx context.Context) (_node *SectionEvidence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sectionevidence.Table, sectionevidence.Columns, sqlgraph.NewFieldSpec(sectionevidence.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SectionEvidence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sectionevidence.FieldID)
		for _, f := range fields {
			if !sectionevidence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sectionevidence.FieldID {
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
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(sectionevidence.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(sectionevidence.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Similarity(); ok {
		_spec.SetField(sectionevidence.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarity(); ok {
		_spec.AddField(sectionevidence.FieldSimilarity, field.TypeFloat64, value)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &SectionEvidence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sectionevidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
