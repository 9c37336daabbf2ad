// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/ent/sectionreview"
)

// SectionReviewCreate is the builder for creating a SectionReview entity.
type SectionReviewCreate struct {
	config
	mutation *SectionReviewMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *SectionReviewCreate) SetTenantID(v string) *SectionReviewCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *SectionReviewCreate) SetRunID(v string) *SectionReviewCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSectionID sets the "section_id" field.
func (_c *SectionReviewCreate) SetSectionID(v string) *SectionReviewCreate {
	_c.mutation.SetSectionID(v)
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *SectionReviewCreate) SetVerdict(v sectionreview.Verdict) *SectionReviewCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetIssues sets the "issues" field.
func (_c *SectionReviewCreate) SetIssues(v []map[string]interface{}) *SectionReviewCreate {
	_c.mutation.SetIssues(v)
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *SectionReviewCreate) SetReviewedAt(v time.Time) *SectionReviewCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *SectionReviewCreate) SetNillableReviewedAt(v *time.Time) *SectionReviewCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SectionReviewCreate) SetID(v string) *SectionReviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *SectionReviewCreate) SetRun(v *Run) *SectionReviewCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the SectionReviewMutation object of the builder.
func (_c *SectionReviewCreate) Mutation() *SectionReviewMutation {
	return _c.mutation
}

// Save creates the SectionReview in the database.
func (_c *SectionReviewCreate) Save(ctx context.Context) (*SectionReview, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SectionReviewCreate) SaveX(ctx context.Context) *SectionReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SectionReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SectionReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SectionReviewCreate) defaults() {
	if _, ok := _c.mutation.ReviewedAt(); !ok {
		v := sectionreview.DefaultReviewedAt()
		_c.mutation.SetReviewedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SectionReviewCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "SectionReview.tenant_id"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "SectionReview.run_id"`)}
	}
	if _, ok := _c.mutation.SectionID(); !ok {
		return &ValidationError{Name: "section_id", err: errors.New(`ent: missing required field "SectionReview.section_id"`)}
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "SectionReview.verdict"`)}
	}
	if v, ok := _c.mutation.Verdict(); ok {
		if err := sectionreview.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "SectionReview.verdict": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewedAt(); !ok {
		return &ValidationError{Name: "reviewed_at", err: errors.New(`ent: missing required field "SectionReview.reviewed_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "SectionReview.run"`)}
	}
	return nil
}

func (_c *SectionReviewCreate) sqlSave(ctx context.Context) (*SectionReview, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SectionReview.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SectionReviewCreate) createSpec() (*SectionReview, *sqlgraph.CreateSpec) {
	var (
		_node = &SectionReview{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sectionreview.Table, sqlgraph.NewFieldSpec(sectionreview.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(sectionreview.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.SectionID(); ok {
		_spec.SetField(sectionreview.FieldSectionID, field.TypeString, value)
		_node.SectionID = value
	}
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(sectionreview.FieldVerdict, field.TypeEnum, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.Issues(); ok {
		_spec.SetField(sectionreview.FieldIssues, field.TypeJSON, value)
		_node.Issues = value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(sectionreview.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sectionreview.RunTable,
			Columns: []string{sectionreview.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SectionReview.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SectionReviewUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *SectionReviewCreate) OnConflict(opts ...sql.ConflictOption) *SectionReviewUpsertOne {
	_c.conflict = opts
	return &SectionReviewUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SectionReview.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SectionReviewCreate) OnConflictColumns(columns ...string) *SectionReviewUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SectionReviewUpsertOne{
		create: _c,
	}
}

type (
	// SectionReviewUpsertOne is the builder for "upsert"-ing
	//  one SectionReview node.
	SectionReviewUpsertOne struct {
		create *SectionReviewCreate
	}

	// SectionReviewUpsert is the "OnConflict" setter.
	SectionReviewUpsert struct {
		*sql.UpdateSet
	}
)

// SetVerdict sets the "verdict" field.
func (u *SectionReviewUpsert) SetVerdict(v sectionreview.Verdict) *SectionReviewUpsert {
	u.Set(sectionreview.FieldVerdict, v)
	return u
}

// UpdateVerdict sets the "verdict" field to the value that was provided on create.
func (u *SectionReviewUpsert) UpdateVerdict() *SectionReviewUpsert {
	u.SetExcluded(sectionreview.FieldVerdict)
	return u
}

// SetIssues sets the "issues" field.
func (u *SectionReviewUpsert) SetIssues(v []map[string]interface{}) *SectionReviewUpsert {
	u.Set(sectionreview.FieldIssues, v)
	return u
}

// UpdateIssues sets the "issues" field to the value that was provided on create.
func (u *SectionReviewUpsert) UpdateIssues() *SectionReviewUpsert {
	u.SetExcluded(sectionreview.FieldIssues)
	return u
}

// ClearIssues clears the value of the "issues" field.
func (u *SectionReviewUpsert) ClearIssues() *SectionReviewUpsert {
	u.SetNull(sectionreview.FieldIssues)
	return u
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *SectionReviewUpsert) SetReviewedAt(v time.Time) *SectionReviewUpsert {
	u.Set(sectionreview.FieldReviewedAt, v)
	return u
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *SectionReviewUpsert) UpdateReviewedAt() *SectionReviewUpsert {
	u.SetExcluded(sectionreview.FieldReviewedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SectionReview.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sectionreview.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SectionReviewUpsertOne) UpdateNewValues() *SectionReviewUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sectionreview.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(sectionreview.FieldTenantID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(sectionreview.FieldRunID)
		}
		if _, exists := u.create.mutation.SectionID(); exists {
			s.SetIgnore(sectionreview.FieldSectionID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SectionReview.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SectionReviewUpsertOne) Ignore() *SectionReviewUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SectionReviewUpsertOne) DoNothing() *SectionReviewUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SectionReviewCreate.OnConflict
// documentation for more info.
func (u *SectionReviewUpsertOne) Update(set func(*SectionReviewUpsert)) *SectionReviewUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SectionReviewUpsert{UpdateSet: update})
	}))
	return u
}

// SetVerdict sets the "verdict" field.
func (u *SectionReviewUpsertOne) SetVerdict(v sectionreview.Verdict) *SectionReviewUpsertOne {
	return u.Update(func(s *SectionReviewUpsert) {
		s.SetVerdict(v)
	})
}

// UpdateVerdict sets the "verdict" field to the value that was provided on create.
func (u *SectionReviewUpsertOne) UpdateVerdict() *SectionReviewUpsertOne {
	return u.Update(func(s *SectionReviewUpsert) {
		s.UpdateVerdict()
	})
}

// SetIssues sets the "issues" field.
func (u *SectionReviewUpsertOne) SetIssues(v []map[string]interface{}) *SectionReviewUpsertOne {
	return u.Update(func(s *SectionReviewUpsert) {
		s.SetIssues(v)
	})
}

// UpdateIssues sets the "issues" field to the value that was provided on create.
func (u *SectionReviewUpsertOne) UpdateIssues() *SectionReviewUpsertOne {
	return u.Update(func(s *SectionReviewUpsert) {
		s.UpdateIssues()
	})
}

// ClearIssues clears the value of the "issues" field.
func (u *SectionReviewUpsertOne) ClearIssues() *SectionReviewUpsertOne {
	return u.Update(func(s *SectionReviewUpsert) {
		s.ClearIssues()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *SectionReviewUpsertOne) SetReviewedAt(v time.Time) *SectionReviewUpsertOne {
	return u.Update(func(s *SectionReviewUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *SectionReviewUpsertOne) UpdateReviewedAt() *SectionReviewUpsertOne {
	return u.Update(func(s *SectionReviewUpsert) {
		s.UpdateReviewedAt()
	})
}

// Exec executes the query.
func (u *SectionReviewUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SectionReviewCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SectionReviewUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SectionReviewUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SectionReviewUpsertOne.ID is not supported by MySQL driver. Use SectionReviewUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SectionReviewUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SectionReviewCreateBulk is the builder for creating many SectionReview entities in bulk.
type SectionReviewCreateBulk struct {
	config
	err      error
	builders []*SectionReviewCreate
	conflict []sql.ConflictOption
}

// Save creates the SectionReview entities in the database.
func (_c *SectionReviewCreateBulk) Save(ctx context.Context) ([]*SectionReview, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SectionReview, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SectionReviewMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SectionReviewCreateBulk) SaveX(ctx context.Context) []*SectionReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SectionReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SectionReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SectionReview.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SectionReviewUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *SectionReviewCreateBulk) OnConflict(opts ...sql.ConflictOption) *SectionReviewUpsertBulk {
	_c.conflict = opts
	return &SectionReviewUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SectionReview.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SectionReviewCreateBulk) OnConflictColumns(columns ...string) *SectionReviewUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SectionReviewUpsertBulk{
		create: _c,
	}
}

// SectionReviewUpsertBulk is the builder for "upsert"-ing
// a bulk of SectionReview nodes.
type SectionReviewUpsertBulk struct {
	create *SectionReviewCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SectionReview.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sectionreview.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SectionReviewUpsertBulk) UpdateNewValues() *SectionReviewUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sectionreview.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(sectionreview.FieldTenantID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(sectionreview.FieldRunID)
			}
			if _, exists := b.mutation.SectionID(); exists {
				s.SetIgnore(sectionreview.FieldSectionID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SectionReview.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SectionReviewUpsertBulk) Ignore() *SectionReviewUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SectionReviewUpsertBulk) DoNothing() *SectionReviewUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SectionReviewCreateBulk.OnConflict
// documentation for more info.
func (u *SectionReviewUpsertBulk) Update(set func(*SectionReviewUpsert)) *SectionReviewUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SectionReviewUpsert{UpdateSet: update})
	}))
	return u
}

// SetVerdict sets the "verdict" field.
func (u *SectionReviewUpsertBulk) SetVerdict(v sectionreview.Verdict) *SectionReviewUpsertBulk {
	return u.Update(func(s *SectionReviewUpsert) {
		s.SetVerdict(v)
	})
}

// UpdateVerdict sets the "verdict" field to the value that was provided on create.
func (u *SectionReviewUpsertBulk) UpdateVerdict() *SectionReviewUpsertBulk {
	return u.Update(func(s *SectionReviewUpsert) {
		s.UpdateVerdict()
	})
}

// SetIssues sets the "issues" field.
func (u *SectionReviewUpsertBulk) SetIssues(v []map[string]interface{}) *SectionReviewUpsertBulk {
	return u.Update(func(s *SectionReviewUpsert) {
		s.SetIssues(v)
	})
}

// UpdateIssues sets the "issues" field to the value that was provided on create.
func (u *SectionReviewUpsertBulk) UpdateIssues() *SectionReviewUpsertBulk {
	return u.Update(func(s *SectionReviewUpsert) {
		s.UpdateIssues()
	})
}

// ClearIssues clears the value of the "issues" field.
func (u *SectionReviewUpsertBulk) ClearIssues() *SectionReviewUpsertBulk {
	return u.Update(func(s *SectionReviewUpsert) {
		s.ClearIssues()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *SectionReviewUpsertBulk) SetReviewedAt(v time.Time) *SectionReviewUpsertBulk {
	return u.Update(func(s *SectionReviewUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *SectionReviewUpsertBulk) UpdateReviewedAt() *SectionReviewUpsertBulk {
	return u.Update(func(s *SectionReviewUpsert) {
		s.UpdateReviewedAt()
	})
}

// Exec executes the query.
func (u *SectionReviewUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SectionReviewCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SectionReviewCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SectionReviewUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
