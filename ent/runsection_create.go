// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/ent/runsection"
)

// RunSectionCreate is the builder for creating a RunSection entity.
type RunSectionCreate struct {
	config
	mutation *RunSectionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *RunSectionCreate) SetTenantID(v string) *RunSectionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *RunSectionCreate) SetRunID(v string) *RunSectionCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSectionID sets the "section_id" field.
func (_c *RunSectionCreate) SetSectionID(v string) *RunSectionCreate {
	_c.mutation.SetSectionID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *RunSectionCreate) SetTitle(v string) *RunSectionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetGoal sets the "goal" field.
func (_c *RunSectionCreate) SetGoal(v string) *RunSectionCreate {
	_c.mutation.SetGoal(v)
	return _c
}

// SetSectionOrder sets the "section_order" field.
func (_c *RunSectionCreate) SetSectionOrder(v int) *RunSectionCreate {
	_c.mutation.SetSectionOrder(v)
	return _c
}

// SetID sets the "id" field.
func (_c *RunSectionCreate) SetID(v string) *RunSectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *RunSectionCreate) SetRun(v *Run) *RunSectionCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the RunSectionMutation object of the builder.
func (_c *RunSectionCreate) Mutation() *RunSectionMutation {
	return _c.mutation
}

// Save creates the RunSection in the database.
func (_c *RunSectionCreate) Save(ctx context.Context) (*RunSection, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunSectionCreate) SaveX(ctx context.Context) *RunSection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunSectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunSectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunSectionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "RunSection.tenant_id"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunSection.run_id"`)}
	}
	if _, ok := _c.mutation.SectionID(); !ok {
		return &ValidationError{Name: "section_id", err: errors.New(`ent: missing required field "RunSection.section_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "RunSection.title"`)}
	}
	if _, ok := _c.mutation.Goal(); !ok {
		return &ValidationError{Name: "goal", err: errors.New(`ent: missing required field "RunSection.goal"`)}
	}
	if _, ok := _c.mutation.SectionOrder(); !ok {
		return &ValidationError{Name: "section_order", err: errors.New(`ent: missing required field "RunSection.section_order"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "RunSection.run"`)}
	}
	return nil
}

func (_c *RunSectionCreate) sqlSave(ctx context.Context) (*RunSection, error) {
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
			return nil, fmt.Errorf("unexpected RunSection.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunSectionCreate) createSpec() (*RunSection, *sqlgraph.CreateSpec) {
	var (
		_node = &RunSection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runsection.Table, sqlgraph.NewFieldSpec(runsection.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(runsection.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.SectionID(); ok {
		_spec.SetField(runsection.FieldSectionID, field.TypeString, value)
		_node.SectionID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(runsection.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Goal(); ok {
		_spec.SetField(runsection.FieldGoal, field.TypeString, value)
		_node.Goal = value
	}
	if value, ok := _c.mutation.SectionOrder(); ok {
		_spec.SetField(runsection.FieldSectionOrder, field.TypeInt, value)
		_node.SectionOrder = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runsection.RunTable,
			Columns: []string{runsection.RunColumn},
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
//	client.RunSection.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunSectionUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunSectionCreate) OnConflict(opts ...sql.ConflictOption) *RunSectionUpsertOne {
	_c.conflict = opts
	return &RunSectionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunSection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunSectionCreate) OnConflictColumns(columns ...string) *RunSectionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunSectionUpsertOne{
		create: _c,
	}
}

type (
	// RunSectionUpsertOne is the builder for "upsert"-ing
	//  one RunSection node.
	RunSectionUpsertOne struct {
		create *RunSectionCreate
	}

	// RunSectionUpsert is the "OnConflict" setter.
	RunSectionUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *RunSectionUpsert) SetTitle(v string) *RunSectionUpsert {
	u.Set(runsection.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RunSectionUpsert) UpdateTitle() *RunSectionUpsert {
	u.SetExcluded(runsection.FieldTitle)
	return u
}

// SetGoal sets the "goal" field.
func (u *RunSectionUpsert) SetGoal(v string) *RunSectionUpsert {
	u.Set(runsection.FieldGoal, v)
	return u
}

// UpdateGoal sets the "goal" field to the value that was provided on create.
func (u *RunSectionUpsert) UpdateGoal() *RunSectionUpsert {
	u.SetExcluded(runsection.FieldGoal)
	return u
}

// SetSectionOrder sets the "section_order" field.
func (u *RunSectionUpsert) SetSectionOrder(v int) *RunSectionUpsert {
	u.Set(runsection.FieldSectionOrder, v)
	return u
}

// UpdateSectionOrder sets the "section_order" field to the value that was provided on create.
func (u *RunSectionUpsert) UpdateSectionOrder() *RunSectionUpsert {
	u.SetExcluded(runsection.FieldSectionOrder)
	return u
}

// AddSectionOrder adds v to the "section_order" field.
func (u *RunSectionUpsert) AddSectionOrder(v int) *RunSectionUpsert {
	u.Add(runsection.FieldSectionOrder, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RunSection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(runsection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunSectionUpsertOne) UpdateNewValues() *RunSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(runsection.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(runsection.FieldTenantID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(runsection.FieldRunID)
		}
		if _, exists := u.create.mutation.SectionID(); exists {
			s.SetIgnore(runsection.FieldSectionID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunSection.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunSectionUpsertOne) Ignore() *RunSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunSectionUpsertOne) DoNothing() *RunSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunSectionCreate.OnConflict
// documentation for more info.
func (u *RunSectionUpsertOne) Update(set func(*RunSectionUpsert)) *RunSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunSectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *RunSectionUpsertOne) SetTitle(v string) *RunSectionUpsertOne {
	return u.Update(func(s *RunSectionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RunSectionUpsertOne) UpdateTitle() *RunSectionUpsertOne {
	return u.Update(func(s *RunSectionUpsert) {
		s.UpdateTitle()
	})
}

// SetGoal sets the "goal" field.
func (u *RunSectionUpsertOne) SetGoal(v string) *RunSectionUpsertOne {
	return u.Update(func(s *RunSectionUpsert) {
		s.SetGoal(v)
	})
}

// UpdateGoal sets the "goal" field to the value that was provided on create.
func (u *RunSectionUpsertOne) UpdateGoal() *RunSectionUpsertOne {
	return u.Update(func(s *RunSectionUpsert) {
		s.UpdateGoal()
	})
}

// SetSectionOrder sets the "section_order" field.
func (u *RunSectionUpsertOne) SetSectionOrder(v int) *RunSectionUpsertOne {
	return u.Update(func(s *RunSectionUpsert) {
		s.SetSectionOrder(v)
	})
}

// AddSectionOrder adds v to the "section_order" field.
func (u *RunSectionUpsertOne) AddSectionOrder(v int) *RunSectionUpsertOne {
	return u.Update(func(s *RunSectionUpsert) {
		s.AddSectionOrder(v)
	})
}

// UpdateSectionOrder sets the "section_order" field to the value that was provided on create.
func (u *RunSectionUpsertOne) UpdateSectionOrder() *RunSectionUpsertOne {
	return u.Update(func(s *RunSectionUpsert) {
		s.UpdateSectionOrder()
	})
}

// Exec executes the query.
func (u *RunSectionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunSectionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunSectionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunSectionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RunSectionUpsertOne.ID is not supported by MySQL driver. Use RunSectionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunSectionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunSectionCreateBulk is the builder for creating many RunSection entities in bulk.
type RunSectionCreateBulk struct {
	config
	err      error
	builders []*RunSectionCreate
	conflict []sql.ConflictOption
}

// Save creates the RunSection entities in the database.
func (_c *RunSectionCreateBulk) Save(ctx context.Context) ([]*RunSection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunSection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunSectionMutation)
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
func (_c *RunSectionCreateBulk) SaveX(ctx context.Context) []*RunSection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunSectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunSectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunSection.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunSectionUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunSectionCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunSectionUpsertBulk {
	_c.conflict = opts
	return &RunSectionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunSection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunSectionCreateBulk) OnConflictColumns(columns ...string) *RunSectionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunSectionUpsertBulk{
		create: _c,
	}
}

// RunSectionUpsertBulk is the builder for "upsert"-ing
// a bulk of RunSection nodes.
type RunSectionUpsertBulk struct {
	create *RunSectionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RunSection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(runsection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunSectionUpsertBulk) UpdateNewValues() *RunSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(runsection.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(runsection.FieldTenantID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(runsection.FieldRunID)
			}
			if _, exists := b.mutation.SectionID(); exists {
				s.SetIgnore(runsection.FieldSectionID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunSection.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunSectionUpsertBulk) Ignore() *RunSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunSectionUpsertBulk) DoNothing() *RunSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunSectionCreateBulk.OnConflict
// documentation for more info.
func (u *RunSectionUpsertBulk) Update(set func(*RunSectionUpsert)) *RunSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunSectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *RunSectionUpsertBulk) SetTitle(v string) *RunSectionUpsertBulk {
	return u.Update(func(s *RunSectionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RunSectionUpsertBulk) UpdateTitle() *RunSectionUpsertBulk {
	return u.Update(func(s *RunSectionUpsert) {
		s.UpdateTitle()
	})
}

// SetGoal sets the "goal" field.
func (u *RunSectionUpsertBulk) SetGoal(v string) *RunSectionUpsertBulk {
	return u.Update(func(s *RunSectionUpsert) {
		s.SetGoal(v)
	})
}

// UpdateGoal sets the "goal" field to the value that was provided on create.
func (u *RunSectionUpsertBulk) UpdateGoal() *RunSectionUpsertBulk {
	return u.Update(func(s *RunSectionUpsert) {
		s.UpdateGoal()
	})
}

// SetSectionOrder sets the "section_order" field.
func (u *RunSectionUpsertBulk) SetSectionOrder(v int) *RunSectionUpsertBulk {
	return u.Update(func(s *RunSectionUpsert) {
		s.SetSectionOrder(v)
	})
}

// AddSectionOrder adds v to the "section_order" field.
func (u *RunSectionUpsertBulk) AddSectionOrder(v int) *RunSectionUpsertBulk {
	return u.Update(func(s *RunSectionUpsert) {
		s.AddSectionOrder(v)
	})
}

// UpdateSectionOrder sets the "section_order" field to the value that was provided on create.
func (u *RunSectionUpsertBulk) UpdateSectionOrder() *RunSectionUpsertBulk {
	return u.Update(func(s *RunSectionUpsert) {
		s.UpdateSectionOrder()
	})
}

// Exec executes the query.
func (u *RunSectionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunSectionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunSectionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunSectionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
