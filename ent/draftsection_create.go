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
	"github.com/inquiro-ai/inquiro/ent/draftsection"
	"github.com/inquiro-ai/inquiro/ent/run"
)

// DraftSectionCreate is the builder for creating a DraftSection entity.
type DraftSectionCreate struct {
	config
	mutation *DraftSectionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *DraftSectionCreate) SetTenantID(v string) *DraftSectionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *DraftSectionCreate) SetRunID(v string) *DraftSectionCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSectionID sets the "section_id" field.
func (_c *DraftSectionCreate) SetSectionID(v string) *DraftSectionCreate {
	_c.mutation.SetSectionID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *DraftSectionCreate) SetText(v string) *DraftSectionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetSectionSummary sets the "section_summary" field.
func (_c *DraftSectionCreate) SetSectionSummary(v string) *DraftSectionCreate {
	_c.mutation.SetSectionSummary(v)
	return _c
}

// SetNillableSectionSummary sets the "section_summary" field if the given value is not nil.
func (_c *DraftSectionCreate) SetNillableSectionSummary(v *string) *DraftSectionCreate {
	if v != nil {
		_c.SetSectionSummary(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DraftSectionCreate) SetUpdatedAt(v time.Time) *DraftSectionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DraftSectionCreate) SetNillableUpdatedAt(v *time.Time) *DraftSectionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DraftSectionCreate) SetID(v string) *DraftSectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *DraftSectionCreate) SetRun(v *Run) *DraftSectionCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the DraftSectionMutation object of the builder.
func (_c *DraftSectionCreate) Mutation() *DraftSectionMutation {
	return _c.mutation
}

// Save creates the DraftSection in the database.
func (_c *DraftSectionCreate) Save(ctx context.Context) (*DraftSection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DraftSectionCreate) SaveX(ctx context.Context) *DraftSection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DraftSectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DraftSectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DraftSectionCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := draftsection.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DraftSectionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "DraftSection.tenant_id"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "DraftSection.run_id"`)}
	}
	if _, ok := _c.mutation.SectionID(); !ok {
		return &ValidationError{Name: "section_id", err: errors.New(`ent: missing required field "DraftSection.section_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "DraftSection.text"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DraftSection.updated_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "DraftSection.run"`)}
	}
	return nil
}

func (_c *DraftSectionCreate) sqlSave(ctx context.Context) (*DraftSection, error) {
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
			return nil, fmt.Errorf("unexpected DraftSection.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DraftSectionCreate) createSpec() (*DraftSection, *sqlgraph.CreateSpec) {
	var (
		_node = &DraftSection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(draftsection.Table, sqlgraph.NewFieldSpec(draftsection.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(draftsection.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.SectionID(); ok {
		_spec.SetField(draftsection.FieldSectionID, field.TypeString, value)
		_node.SectionID = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(draftsection.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.SectionSummary(); ok {
		_spec.SetField(draftsection.FieldSectionSummary, field.TypeString, value)
		_node.SectionSummary = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(draftsection.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   draftsection.RunTable,
			Columns: []string{draftsection.RunColumn},
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
//	client.DraftSection.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DraftSectionUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *DraftSectionCreate) OnConflict(opts ...sql.ConflictOption) *DraftSectionUpsertOne {
	_c.conflict = opts
	return &DraftSectionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DraftSection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DraftSectionCreate) OnConflictColumns(columns ...string) *DraftSectionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DraftSectionUpsertOne{
		create: _c,
	}
}

type (
	// DraftSectionUpsertOne is the builder for "upsert"-ing
	//  one DraftSection node.
	DraftSectionUpsertOne struct {
		create *DraftSectionCreate
	}

	// DraftSectionUpsert is the "OnConflict" setter.
	DraftSectionUpsert struct {
		*sql.UpdateSet
	}
)

// SetText sets the "text" field.
func (u *DraftSectionUpsert) SetText(v string) *DraftSectionUpsert {
	u.Set(draftsection.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *DraftSectionUpsert) UpdateText() *DraftSectionUpsert {
	u.SetExcluded(draftsection.FieldText)
	return u
}

// SetSectionSummary sets the "section_summary" field.
func (u *DraftSectionUpsert) SetSectionSummary(v string) *DraftSectionUpsert {
	u.Set(draftsection.FieldSectionSummary, v)
	return u
}

// UpdateSectionSummary sets the "section_summary" field to the value that was provided on create.
func (u *DraftSectionUpsert) UpdateSectionSummary() *DraftSectionUpsert {
	u.SetExcluded(draftsection.FieldSectionSummary)
	return u
}

// ClearSectionSummary clears the value of the "section_summary" field.
func (u *DraftSectionUpsert) ClearSectionSummary() *DraftSectionUpsert {
	u.SetNull(draftsection.FieldSectionSummary)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DraftSectionUpsert) SetUpdatedAt(v time.Time) *DraftSectionUpsert {
	u.Set(draftsection.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DraftSectionUpsert) UpdateUpdatedAt() *DraftSectionUpsert {
	u.SetExcluded(draftsection.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DraftSection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(draftsection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DraftSectionUpsertOne) UpdateNewValues() *DraftSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(draftsection.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(draftsection.FieldTenantID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(draftsection.FieldRunID)
		}
		if _, exists := u.create.mutation.SectionID(); exists {
			s.SetIgnore(draftsection.FieldSectionID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DraftSection.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DraftSectionUpsertOne) Ignore() *DraftSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DraftSectionUpsertOne) DoNothing() *DraftSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DraftSectionCreate.OnConflict
// documentation for more info.
func (u *DraftSectionUpsertOne) Update(set func(*DraftSectionUpsert)) *DraftSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DraftSectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetText sets the "text" field.
func (u *DraftSectionUpsertOne) SetText(v string) *DraftSectionUpsertOne {
	return u.Update(func(s *DraftSectionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *DraftSectionUpsertOne) UpdateText() *DraftSectionUpsertOne {
	return u.Update(func(s *DraftSectionUpsert) {
		s.UpdateText()
	})
}

// SetSectionSummary sets the "section_summary" field.
func (u *DraftSectionUpsertOne) SetSectionSummary(v string) *DraftSectionUpsertOne {
	return u.Update(func(s *DraftSectionUpsert) {
		s.SetSectionSummary(v)
	})
}

// UpdateSectionSummary sets the "section_summary" field to the value that was provided on create.
func (u *DraftSectionUpsertOne) UpdateSectionSummary() *DraftSectionUpsertOne {
	return u.Update(func(s *DraftSectionUpsert) {
		s.UpdateSectionSummary()
	})
}

// ClearSectionSummary clears the value of the "section_summary" field.
func (u *DraftSectionUpsertOne) ClearSectionSummary() *DraftSectionUpsertOne {
	return u.Update(func(s *DraftSectionUpsert) {
		s.ClearSectionSummary()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DraftSectionUpsertOne) SetUpdatedAt(v time.Time) *DraftSectionUpsertOne {
	return u.Update(func(s *DraftSectionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DraftSectionUpsertOne) UpdateUpdatedAt() *DraftSectionUpsertOne {
	return u.Update(func(s *DraftSectionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DraftSectionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DraftSectionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DraftSectionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DraftSectionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DraftSectionUpsertOne.ID is not supported by MySQL driver. Use DraftSectionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DraftSectionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DraftSectionCreateBulk is the builder for creating many DraftSection entities in bulk.
type DraftSectionCreateBulk struct {
	config
	err      error
	builders []*DraftSectionCreate
	conflict []sql.ConflictOption
}

// Save creates the DraftSection entities in the database.
func (_c *DraftSectionCreateBulk) Save(ctx context.Context) ([]*DraftSection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DraftSection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DraftSectionMutation)
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
func (_c *DraftSectionCreateBulk) SaveX(ctx context.Context) []*DraftSection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DraftSectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DraftSectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DraftSection.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DraftSectionUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *DraftSectionCreateBulk) OnConflict(opts ...sql.ConflictOption) *DraftSectionUpsertBulk {
	_c.conflict = opts
	return &DraftSectionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DraftSection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DraftSectionCreateBulk) OnConflictColumns(columns ...string) *DraftSectionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DraftSectionUpsertBulk{
		create: _c,
	}
}

// DraftSectionUpsertBulk is the builder for "upsert"-ing
// a bulk of DraftSection nodes.
type DraftSectionUpsertBulk struct {
	create *DraftSectionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DraftSection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(draftsection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DraftSectionUpsertBulk) UpdateNewValues() *DraftSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(draftsection.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(draftsection.FieldTenantID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(draftsection.FieldRunID)
			}
			if _, exists := b.mutation.SectionID(); exists {
				s.SetIgnore(draftsection.FieldSectionID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DraftSection.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DraftSectionUpsertBulk) Ignore() *DraftSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DraftSectionUpsertBulk) DoNothing() *DraftSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DraftSectionCreateBulk.OnConflict
// documentation for more info.
func (u *DraftSectionUpsertBulk) Update(set func(*DraftSectionUpsert)) *DraftSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DraftSectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetText sets the "text" field.
func (u *DraftSectionUpsertBulk) SetText(v string) *DraftSectionUpsertBulk {
	return u.Update(func(s *DraftSectionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *DraftSectionUpsertBulk) UpdateText() *DraftSectionUpsertBulk {
	return u.Update(func(s *DraftSectionUpsert) {
		s.UpdateText()
	})
}

// SetSectionSummary sets the "section_summary" field.
func (u *DraftSectionUpsertBulk) SetSectionSummary(v string) *DraftSectionUpsertBulk {
	return u.Update(func(s *DraftSectionUpsert) {
		s.SetSectionSummary(v)
	})
}

// UpdateSectionSummary sets the "section_summary" field to the value that was provided on create.
func (u *DraftSectionUpsertBulk) UpdateSectionSummary() *DraftSectionUpsertBulk {
	return u.Update(func(s *DraftSectionUpsert) {
		s.UpdateSectionSummary()
	})
}

// ClearSectionSummary clears the value of the "section_summary" field.
func (u *DraftSectionUpsertBulk) ClearSectionSummary() *DraftSectionUpsertBulk {
	return u.Update(func(s *DraftSectionUpsert) {
		s.ClearSectionSummary()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DraftSectionUpsertBulk) SetUpdatedAt(v time.Time) *DraftSectionUpsertBulk {
	return u.Update(func(s *DraftSectionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DraftSectionUpsertBulk) UpdateUpdatedAt() *DraftSectionUpsertBulk {
	return u.Update(func(s *DraftSectionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DraftSectionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DraftSectionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DraftSectionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DraftSectionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
