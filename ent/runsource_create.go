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
	"github.com/inquiro-ai/inquiro/ent/runsource"
)

// RunSourceCreate is the builder for creating a RunSource entity.
type RunSourceCreate struct {
	config
	mutation *RunSourceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *RunSourceCreate) SetTenantID(v string) *RunSourceCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *RunSourceCreate) SetRunID(v string) *RunSourceCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *RunSourceCreate) SetSourceID(v string) *RunSourceCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetIntent sets the "intent" field.
func (_c *RunSourceCreate) SetIntent(v string) *RunSourceCreate {
	_c.mutation.SetIntent(v)
	return _c
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_c *RunSourceCreate) SetNillableIntent(v *string) *RunSourceCreate {
	if v != nil {
		_c.SetIntent(*v)
	}
	return _c
}

// SetQuery sets the "query" field.
func (_c *RunSourceCreate) SetQuery(v string) *RunSourceCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_c *RunSourceCreate) SetNillableQuery(v *string) *RunSourceCreate {
	if v != nil {
		_c.SetQuery(*v)
	}
	return _c
}

// SetRank sets the "rank" field.
func (_c *RunSourceCreate) SetRank(v int) *RunSourceCreate {
	_c.mutation.SetRank(v)
	return _c
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_c *RunSourceCreate) SetNillableRank(v *int) *RunSourceCreate {
	if v != nil {
		_c.SetRank(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *RunSourceCreate) SetScore(v float64) *RunSourceCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *RunSourceCreate) SetNillableScore(v *float64) *RunSourceCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunSourceCreate) SetID(v string) *RunSourceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *RunSourceCreate) SetRun(v *Run) *RunSourceCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the RunSourceMutation object of the builder.
func (_c *RunSourceCreate) Mutation() *RunSourceMutation {
	return _c.mutation
}

// Save creates the RunSource in the database.
func (_c *RunSourceCreate) Save(ctx context.Context) (*RunSource, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunSourceCreate) SaveX(ctx context.Context) *RunSource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunSourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunSourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunSourceCreate) defaults() {
	if _, ok := _c.mutation.Rank(); !ok {
		v := runsource.DefaultRank
		_c.mutation.SetRank(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := runsource.DefaultScore
		_c.mutation.SetScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunSourceCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "RunSource.tenant_id"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunSource.run_id"`)}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "RunSource.source_id"`)}
	}
	if _, ok := _c.mutation.Rank(); !ok {
		return &ValidationError{Name: "rank", err: errors.New(`ent: missing required field "RunSource.rank"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "RunSource.score"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "RunSource.run"`)}
	}
	return nil
}

func (_c *RunSourceCreate) sqlSave(ctx context.Context) (*RunSource, error) {
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
			return nil, fmt.Errorf("unexpected RunSource.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunSourceCreate) createSpec() (*RunSource, *sqlgraph.CreateSpec) {
	var (
		_node = &RunSource{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runsource.Table, sqlgraph.NewFieldSpec(runsource.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(runsource.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(runsource.FieldSourceID, field.TypeString, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.Intent(); ok {
		_spec.SetField(runsource.FieldIntent, field.TypeString, value)
		_node.Intent = value
	}
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(runsource.FieldQuery, field.TypeString, value)
		_node.Query = value
	}
	if value, ok := _c.mutation.Rank(); ok {
		_spec.SetField(runsource.FieldRank, field.TypeInt, value)
		_node.Rank = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(runsource.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   runsource.RunTable,
			Columns: []string{runsource.RunColumn},
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
//	client.RunSource.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunSourceUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunSourceCreate) OnConflict(opts ...sql.ConflictOption) *RunSourceUpsertOne {
	_c.conflict = opts
	return &RunSourceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunSource.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunSourceCreate) OnConflictColumns(columns ...string) *RunSourceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunSourceUpsertOne{
		create: _c,
	}
}

type (
	// RunSourceUpsertOne is the builder for "upsert"-ing
	//  one RunSource node.
	RunSourceUpsertOne struct {
		create *RunSourceCreate
	}

	// RunSourceUpsert is the "OnConflict" setter.
	RunSourceUpsert struct {
		*sql.UpdateSet
	}
)

// SetIntent sets the "intent" field.
func (u *RunSourceUpsert) SetIntent(v string) *RunSourceUpsert {
	u.Set(runsource.FieldIntent, v)
	return u
}

// UpdateIntent sets the "intent" field to the value that was provided on create.
func (u *RunSourceUpsert) UpdateIntent() *RunSourceUpsert {
	u.SetExcluded(runsource.FieldIntent)
	return u
}

// ClearIntent clears the value of the "intent" field.
func (u *RunSourceUpsert) ClearIntent() *RunSourceUpsert {
	u.SetNull(runsource.FieldIntent)
	return u
}

// SetQuery sets the "query" field.
func (u *RunSourceUpsert) SetQuery(v string) *RunSourceUpsert {
	u.Set(runsource.FieldQuery, v)
	return u
}

// UpdateQuery sets the "query" field to the value that was provided on create.
func (u *RunSourceUpsert) UpdateQuery() *RunSourceUpsert {
	u.SetExcluded(runsource.FieldQuery)
	return u
}

// ClearQuery clears the value of the "query" field.
func (u *RunSourceUpsert) ClearQuery() *RunSourceUpsert {
	u.SetNull(runsource.FieldQuery)
	return u
}

// SetRank sets the "rank" field.
func (u *RunSourceUpsert) SetRank(v int) *RunSourceUpsert {
	u.Set(runsource.FieldRank, v)
	return u
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *RunSourceUpsert) UpdateRank() *RunSourceUpsert {
	u.SetExcluded(runsource.FieldRank)
	return u
}

// AddRank adds v to the "rank" field.
func (u *RunSourceUpsert) AddRank(v int) *RunSourceUpsert {
	u.Add(runsource.FieldRank, v)
	return u
}

// SetScore sets the "score" field.
func (u *RunSourceUpsert) SetScore(v float64) *RunSourceUpsert {
	u.Set(runsource.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *RunSourceUpsert) UpdateScore() *RunSourceUpsert {
	u.SetExcluded(runsource.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *RunSourceUpsert) AddScore(v float64) *RunSourceUpsert {
	u.Add(runsource.FieldScore, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RunSource.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(runsource.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunSourceUpsertOne) UpdateNewValues() *RunSourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(runsource.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(runsource.FieldTenantID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(runsource.FieldRunID)
		}
		if _, exists := u.create.mutation.SourceID(); exists {
			s.SetIgnore(runsource.FieldSourceID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunSource.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunSourceUpsertOne) Ignore() *RunSourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunSourceUpsertOne) DoNothing() *RunSourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunSourceCreate.OnConflict
// documentation for more info.
func (u *RunSourceUpsertOne) Update(set func(*RunSourceUpsert)) *RunSourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunSourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetIntent sets the "intent" field.
func (u *RunSourceUpsertOne) SetIntent(v string) *RunSourceUpsertOne {
	return u.Update(func(s *RunSourceUpsert) {
		s.SetIntent(v)
	})
}

// UpdateIntent sets the "intent" field to the value that was provided on create.
func (u *RunSourceUpsertOne) UpdateIntent() *RunSourceUpsertOne {
	return u.Update(func(s *RunSourceUpsert) {
		s.UpdateIntent()
	})
}

// ClearIntent clears the value of the "intent" field.
func (u *RunSourceUpsertOne) ClearIntent() *RunSourceUpsertOne {
	return u.Update(func(s *RunSourceUpsert) {
		s.ClearIntent()
	})
}

// SetQuery sets the "query" field.
func (u *RunSourceUpsertOne) SetQuery(v string) *RunSourceUpsertOne {
	return u.Update(func(s *RunSourceUpsert) {
		s.SetQuery(v)
	})
}

// UpdateQuery sets the "query" field to the value that was provided on create.
func (u *RunSourceUpsertOne) UpdateQuery() *RunSourceUpsertOne {
	return u.Update(func(s *RunSourceUpsert) {
		s.UpdateQuery()
	})
}

// ClearQuery clears the value of the "query" field.
func (u *RunSourceUpsertOne) ClearQuery() *RunSourceUpsertOne {
	return u.Update(func(s *RunSourceUpsert) {
		s.ClearQuery()
	})
}

// SetRank sets the "rank" field.
func (u *RunSourceUpsertOne) SetRank(v int) *RunSourceUpsertOne {
	return u.Update(func(s *RunSourceUpsert) {
		s.SetRank(v)
	})
}

// AddRank adds v to the "rank" field.
func (u *RunSourceUpsertOne) AddRank(v int) *RunSourceUpsertOne {
	return u.Update(func(s *RunSourceUpsert) {
		s.AddRank(v)
	})
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *RunSourceUpsertOne) UpdateRank() *RunSourceUpsertOne {
	return u.Update(func(s *RunSourceUpsert) {
		s.UpdateRank()
	})
}

// SetScore sets the "score" field.
func (u *RunSourceUpsertOne) SetScore(v float64) *RunSourceUpsertOne {
	return u.Update(func(s *RunSourceUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *RunSourceUpsertOne) AddScore(v float64) *RunSourceUpsertOne {
	return u.Update(func(s *RunSourceUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *RunSourceUpsertOne) UpdateScore() *RunSourceUpsertOne {
	return u.Update(func(s *RunSourceUpsert) {
		s.UpdateScore()
	})
}

// Exec executes the query.
func (u *RunSourceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunSourceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunSourceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunSourceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RunSourceUpsertOne.ID is not supported by MySQL driver. Use RunSourceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunSourceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunSourceCreateBulk is the builder for creating many RunSource entities in bulk.
type RunSourceCreateBulk struct {
	config
	err      error
	builders []*RunSourceCreate
	conflict []sql.ConflictOption
}

// Save creates the RunSource entities in the database.
func (_c *RunSourceCreateBulk) Save(ctx context.Context) ([]*RunSource, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunSource, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunSourceMutation)
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
func (_c *RunSourceCreateBulk) SaveX(ctx context.Context) []*RunSource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunSourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunSourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunSource.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunSourceUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunSourceCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunSourceUpsertBulk {
	_c.conflict = opts
	return &RunSourceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunSource.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunSourceCreateBulk) OnConflictColumns(columns ...string) *RunSourceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunSourceUpsertBulk{
		create: _c,
	}
}

// RunSourceUpsertBulk is the builder for "upsert"-ing
// a bulk of RunSource nodes.
type RunSourceUpsertBulk struct {
	create *RunSourceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RunSource.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(runsource.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunSourceUpsertBulk) UpdateNewValues() *RunSourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(runsource.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(runsource.FieldTenantID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(runsource.FieldRunID)
			}
			if _, exists := b.mutation.SourceID(); exists {
				s.SetIgnore(runsource.FieldSourceID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunSource.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunSourceUpsertBulk) Ignore() *RunSourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunSourceUpsertBulk) DoNothing() *RunSourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunSourceCreateBulk.OnConflict
// documentation for more info.
func (u *RunSourceUpsertBulk) Update(set func(*RunSourceUpsert)) *RunSourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunSourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetIntent sets the "intent" field.
func (u *RunSourceUpsertBulk) SetIntent(v string) *RunSourceUpsertBulk {
	return u.Update(func(s *RunSourceUpsert) {
		s.SetIntent(v)
	})
}

// UpdateIntent sets the "intent" field to the value that was provided on create.
func (u *RunSourceUpsertBulk) UpdateIntent() *RunSourceUpsertBulk {
	return u.Update(func(s *RunSourceUpsert) {
		s.UpdateIntent()
	})
}

// ClearIntent clears the value of the "intent" field.
func (u *RunSourceUpsertBulk) ClearIntent() *RunSourceUpsertBulk {
	return u.Update(func(s *RunSourceUpsert) {
		s.ClearIntent()
	})
}

// SetQuery sets the "query" field.
func (u *RunSourceUpsertBulk) SetQuery(v string) *RunSourceUpsertBulk {
	return u.Update(func(s *RunSourceUpsert) {
		s.SetQuery(v)
	})
}

// UpdateQuery sets the "query" field to the value that was provided on create.
func (u *RunSourceUpsertBulk) UpdateQuery() *RunSourceUpsertBulk {
	return u.Update(func(s *RunSourceUpsert) {
		s.UpdateQuery()
	})
}

// ClearQuery clears the value of the "query" field.
func (u *RunSourceUpsertBulk) ClearQuery() *RunSourceUpsertBulk {
	return u.Update(func(s *RunSourceUpsert) {
		s.ClearQuery()
	})
}

// SetRank sets the "rank" field.
func (u *RunSourceUpsertBulk) SetRank(v int) *RunSourceUpsertBulk {
	return u.Update(func(s *RunSourceUpsert) {
		s.SetRank(v)
	})
}

// AddRank adds v to the "rank" field.
func (u *RunSourceUpsertBulk) AddRank(v int) *RunSourceUpsertBulk {
	return u.Update(func(s *RunSourceUpsert) {
		s.AddRank(v)
	})
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *RunSourceUpsertBulk) UpdateRank() *RunSourceUpsertBulk {
	return u.Update(func(s *RunSourceUpsert) {
		s.UpdateRank()
	})
}

// SetScore sets the "score" field.
func (u *RunSourceUpsertBulk) SetScore(v float64) *RunSourceUpsertBulk {
	return u.Update(func(s *RunSourceUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *RunSourceUpsertBulk) AddScore(v float64) *RunSourceUpsertBulk {
	return u.Update(func(s *RunSourceUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *RunSourceUpsertBulk) UpdateScore() *RunSourceUpsertBulk {
	return u.Update(func(s *RunSourceUpsert) {
		s.UpdateScore()
	})
}

// Exec executes the query.
func (u *RunSourceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunSourceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunSourceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunSourceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
