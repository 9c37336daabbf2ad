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
	"github.com/inquiro-ai/inquiro/ent/runcheckpoint"
)

// RunCheckpointCreate is the builder for creating a RunCheckpoint entity.
type RunCheckpointCreate struct {
	config
	mutation *RunCheckpointMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *RunCheckpointCreate) SetTenantID(v string) *RunCheckpointCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *RunCheckpointCreate) SetRunID(v string) *RunCheckpointCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *RunCheckpointCreate) SetStage(v string) *RunCheckpointCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *RunCheckpointCreate) SetPayload(v map[string]interface{}) *RunCheckpointCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunCheckpointCreate) SetCreatedAt(v time.Time) *RunCheckpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunCheckpointCreate) SetNillableCreatedAt(v *time.Time) *RunCheckpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RunCheckpointCreate) SetUpdatedAt(v time.Time) *RunCheckpointCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RunCheckpointCreate) SetNillableUpdatedAt(v *time.Time) *RunCheckpointCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCheckpointCreate) SetID(v string) *RunCheckpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *RunCheckpointCreate) SetRun(v *Run) *RunCheckpointCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the RunCheckpointMutation object of the builder.
func (_c *RunCheckpointCreate) Mutation() *RunCheckpointMutation {
	return _c.mutation
}

// Save creates the RunCheckpoint in the database.
func (_c *RunCheckpointCreate) Save(ctx context.Context) (*RunCheckpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCheckpointCreate) SaveX(ctx context.Context) *RunCheckpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCheckpointCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := runcheckpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := runcheckpoint.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCheckpointCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "RunCheckpoint.tenant_id"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunCheckpoint.run_id"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "RunCheckpoint.stage"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "RunCheckpoint.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RunCheckpoint.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RunCheckpoint.updated_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "RunCheckpoint.run"`)}
	}
	return nil
}

func (_c *RunCheckpointCreate) sqlSave(ctx context.Context) (*RunCheckpoint, error) {
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
			return nil, fmt.Errorf("unexpected RunCheckpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCheckpointCreate) createSpec() (*RunCheckpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &RunCheckpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runcheckpoint.Table, sqlgraph.NewFieldSpec(runcheckpoint.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(runcheckpoint.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(runcheckpoint.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(runcheckpoint.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(runcheckpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(runcheckpoint.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runcheckpoint.RunTable,
			Columns: []string{runcheckpoint.RunColumn},
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
//	client.RunCheckpoint.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunCheckpointUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunCheckpointCreate) OnConflict(opts ...sql.ConflictOption) *RunCheckpointUpsertOne {
	_c.conflict = opts
	return &RunCheckpointUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunCheckpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunCheckpointCreate) OnConflictColumns(columns ...string) *RunCheckpointUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunCheckpointUpsertOne{
		create: _c,
	}
}

type (
	// RunCheckpointUpsertOne is the builder for "upsert"-ing
	//  one RunCheckpoint node.
	RunCheckpointUpsertOne struct {
		create *RunCheckpointCreate
	}

	// RunCheckpointUpsert is the "OnConflict" setter.
	RunCheckpointUpsert struct {
		*sql.UpdateSet
	}
)

// SetStage sets the "stage" field.
func (u *RunCheckpointUpsert) SetStage(v string) *RunCheckpointUpsert {
	u.Set(runcheckpoint.FieldStage, v)
	return u
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *RunCheckpointUpsert) UpdateStage() *RunCheckpointUpsert {
	u.SetExcluded(runcheckpoint.FieldStage)
	return u
}

// SetPayload sets the "payload" field.
func (u *RunCheckpointUpsert) SetPayload(v map[string]interface{}) *RunCheckpointUpsert {
	u.Set(runcheckpoint.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *RunCheckpointUpsert) UpdatePayload() *RunCheckpointUpsert {
	u.SetExcluded(runcheckpoint.FieldPayload)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RunCheckpointUpsert) SetUpdatedAt(v time.Time) *RunCheckpointUpsert {
	u.Set(runcheckpoint.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RunCheckpointUpsert) UpdateUpdatedAt() *RunCheckpointUpsert {
	u.SetExcluded(runcheckpoint.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RunCheckpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(runcheckpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunCheckpointUpsertOne) UpdateNewValues() *RunCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(runcheckpoint.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(runcheckpoint.FieldTenantID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(runcheckpoint.FieldRunID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(runcheckpoint.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunCheckpoint.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunCheckpointUpsertOne) Ignore() *RunCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunCheckpointUpsertOne) DoNothing() *RunCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunCheckpointCreate.OnConflict
// documentation for more info.
func (u *RunCheckpointUpsertOne) Update(set func(*RunCheckpointUpsert)) *RunCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunCheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetStage sets the "stage" field.
func (u *RunCheckpointUpsertOne) SetStage(v string) *RunCheckpointUpsertOne {
	return u.Update(func(s *RunCheckpointUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *RunCheckpointUpsertOne) UpdateStage() *RunCheckpointUpsertOne {
	return u.Update(func(s *RunCheckpointUpsert) {
		s.UpdateStage()
	})
}

// SetPayload sets the "payload" field.
func (u *RunCheckpointUpsertOne) SetPayload(v map[string]interface{}) *RunCheckpointUpsertOne {
	return u.Update(func(s *RunCheckpointUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *RunCheckpointUpsertOne) UpdatePayload() *RunCheckpointUpsertOne {
	return u.Update(func(s *RunCheckpointUpsert) {
		s.UpdatePayload()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RunCheckpointUpsertOne) SetUpdatedAt(v time.Time) *RunCheckpointUpsertOne {
	return u.Update(func(s *RunCheckpointUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RunCheckpointUpsertOne) UpdateUpdatedAt() *RunCheckpointUpsertOne {
	return u.Update(func(s *RunCheckpointUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RunCheckpointUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunCheckpointCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunCheckpointUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunCheckpointUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RunCheckpointUpsertOne.ID is not supported by MySQL driver. Use RunCheckpointUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunCheckpointUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunCheckpointCreateBulk is the builder for creating many RunCheckpoint entities in bulk.
type RunCheckpointCreateBulk struct {
	config
	err      error
	builders []*RunCheckpointCreate
	conflict []sql.ConflictOption
}

// Save creates the RunCheckpoint entities in the database.
func (_c *RunCheckpointCreateBulk) Save(ctx context.Context) ([]*RunCheckpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunCheckpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunCheckpointMutation)
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
func (_c *RunCheckpointCreateBulk) SaveX(ctx context.Context) []*RunCheckpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunCheckpoint.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunCheckpointUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunCheckpointCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunCheckpointUpsertBulk {
	_c.conflict = opts
	return &RunCheckpointUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunCheckpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunCheckpointCreateBulk) OnConflictColumns(columns ...string) *RunCheckpointUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunCheckpointUpsertBulk{
		create: _c,
	}
}

// RunCheckpointUpsertBulk is the builder for "upsert"-ing
// a bulk of RunCheckpoint nodes.
type RunCheckpointUpsertBulk struct {
	create *RunCheckpointCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RunCheckpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(runcheckpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunCheckpointUpsertBulk) UpdateNewValues() *RunCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(runcheckpoint.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(runcheckpoint.FieldTenantID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(runcheckpoint.FieldRunID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(runcheckpoint.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunCheckpoint.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunCheckpointUpsertBulk) Ignore() *RunCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunCheckpointUpsertBulk) DoNothing() *RunCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunCheckpointCreateBulk.OnConflict
// documentation for more info.
func (u *RunCheckpointUpsertBulk) Update(set func(*RunCheckpointUpsert)) *RunCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunCheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetStage sets the "stage" field.
func (u *RunCheckpointUpsertBulk) SetStage(v string) *RunCheckpointUpsertBulk {
	return u.Update(func(s *RunCheckpointUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *RunCheckpointUpsertBulk) UpdateStage() *RunCheckpointUpsertBulk {
	return u.Update(func(s *RunCheckpointUpsert) {
		s.UpdateStage()
	})
}

// SetPayload sets the "payload" field.
func (u *RunCheckpointUpsertBulk) SetPayload(v map[string]interface{}) *RunCheckpointUpsertBulk {
	return u.Update(func(s *RunCheckpointUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *RunCheckpointUpsertBulk) UpdatePayload() *RunCheckpointUpsertBulk {
	return u.Update(func(s *RunCheckpointUpsert) {
		s.UpdatePayload()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RunCheckpointUpsertBulk) SetUpdatedAt(v time.Time) *RunCheckpointUpsertBulk {
	return u.Update(func(s *RunCheckpointUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RunCheckpointUpsertBulk) UpdateUpdatedAt() *RunCheckpointUpsertBulk {
	return u.Update(func(s *RunCheckpointUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RunCheckpointUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunCheckpointCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunCheckpointCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunCheckpointUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
