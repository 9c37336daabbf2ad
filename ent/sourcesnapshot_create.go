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
	"github.com/inquiro-ai/inquiro/ent/source"
	"github.com/inquiro-ai/inquiro/ent/sourcesnapshot"
)

// SourceSnapshotCreate is the builder for creating a SourceSnapshot entity.
type SourceSnapshotCreate struct {
	config
	mutation *SourceSnapshotMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *SourceSnapshotCreate) SetTenantID(v string) *SourceSnapshotCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *SourceSnapshotCreate) SetSourceID(v string) *SourceSnapshotCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *SourceSnapshotCreate) SetContentHash(v string) *SourceSnapshotCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetSnippetCount sets the "snippet_count" field.
func (_c *SourceSnapshotCreate) SetSnippetCount(v int) *SourceSnapshotCreate {
	_c.mutation.SetSnippetCount(v)
	return _c
}

// SetNillableSnippetCount sets the "snippet_count" field if the given value is not nil.
func (_c *SourceSnapshotCreate) SetNillableSnippetCount(v *int) *SourceSnapshotCreate {
	if v != nil {
		_c.SetSnippetCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SourceSnapshotCreate) SetCreatedAt(v time.Time) *SourceSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SourceSnapshotCreate) SetNillableCreatedAt(v *time.Time) *SourceSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SourceSnapshotCreate) SetID(v string) *SourceSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSource sets the "source" edge to the Source entity.
func (_c *SourceSnapshotCreate) SetSource(v *Source) *SourceSnapshotCreate {
	return _c.SetSourceID(v.ID)
}

// Mutation returns the SourceSnapshotMutation object of the builder.
func (_c *SourceSnapshotCreate) Mutation() *SourceSnapshotMutation {
	return _c.mutation
}

// Save creates the SourceSnapshot in the database.
func (_c *SourceSnapshotCreate) Save(ctx context.Context) (*SourceSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceSnapshotCreate) SaveX(ctx context.Context) *SourceSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceSnapshotCreate) defaults() {
	if _, ok := _c.mutation.SnippetCount(); !ok {
		v := sourcesnapshot.DefaultSnippetCount
		_c.mutation.SetSnippetCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sourcesnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceSnapshotCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "SourceSnapshot.tenant_id"`)}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "SourceSnapshot.source_id"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "SourceSnapshot.content_hash"`)}
	}
	if _, ok := _c.mutation.SnippetCount(); !ok {
		return &ValidationError{Name: "snippet_count", err: errors.New(`ent: missing required field "SourceSnapshot.snippet_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SourceSnapshot.created_at"`)}
	}
	if len(_c.mutation.SourceIDs()) == 0 {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required edge "SourceSnapshot.source"`)}
	}
	return nil
}

func (_c *SourceSnapshotCreate) sqlSave(ctx context.Context) (*SourceSnapshot, error) {
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
			return nil, fmt.Errorf("unexpected SourceSnapshot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SourceSnapshotCreate) createSpec() (*SourceSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &SourceSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sourcesnapshot.Table, sqlgraph.NewFieldSpec(sourcesnapshot.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(sourcesnapshot.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(sourcesnapshot.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.SnippetCount(); ok {
		_spec.SetField(sourcesnapshot.FieldSnippetCount, field.TypeInt, value)
		_node.SnippetCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sourcesnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SourceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sourcesnapshot.SourceTable,
			Columns: []string{sourcesnapshot.SourceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(source.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SourceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SourceSnapshot.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceSnapshotUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceSnapshotCreate) OnConflict(opts ...sql.ConflictOption) *SourceSnapshotUpsertOne {
	_c.conflict = opts
	return &SourceSnapshotUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SourceSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceSnapshotCreate) OnConflictColumns(columns ...string) *SourceSnapshotUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceSnapshotUpsertOne{
		create: _c,
	}
}

type (
	// SourceSnapshotUpsertOne is the builder for "upsert"-ing
	//  one SourceSnapshot node.
	SourceSnapshotUpsertOne struct {
		create *SourceSnapshotCreate
	}

	// SourceSnapshotUpsert is the "OnConflict" setter.
	SourceSnapshotUpsert struct {
		*sql.UpdateSet
	}
)

// SetContentHash sets the "content_hash" field.
func (u *SourceSnapshotUpsert) SetContentHash(v string) *SourceSnapshotUpsert {
	u.Set(sourcesnapshot.FieldContentHash, v)
	return u
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *SourceSnapshotUpsert) UpdateContentHash() *SourceSnapshotUpsert {
	u.SetExcluded(sourcesnapshot.FieldContentHash)
	return u
}

// SetSnippetCount sets the "snippet_count" field.
func (u *SourceSnapshotUpsert) SetSnippetCount(v int) *SourceSnapshotUpsert {
	u.Set(sourcesnapshot.FieldSnippetCount, v)
	return u
}

// UpdateSnippetCount sets the "snippet_count" field to the value that was provided on create.
func (u *SourceSnapshotUpsert) UpdateSnippetCount() *SourceSnapshotUpsert {
	u.SetExcluded(sourcesnapshot.FieldSnippetCount)
	return u
}

// AddSnippetCount adds v to the "snippet_count" field.
func (u *SourceSnapshotUpsert) AddSnippetCount(v int) *SourceSnapshotUpsert {
	u.Add(sourcesnapshot.FieldSnippetCount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SourceSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sourcesnapshot.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceSnapshotUpsertOne) UpdateNewValues() *SourceSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sourcesnapshot.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(sourcesnapshot.FieldTenantID)
		}
		if _, exists := u.create.mutation.SourceID(); exists {
			s.SetIgnore(sourcesnapshot.FieldSourceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sourcesnapshot.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SourceSnapshot.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SourceSnapshotUpsertOne) Ignore() *SourceSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceSnapshotUpsertOne) DoNothing() *SourceSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceSnapshotCreate.OnConflict
// documentation for more info.
func (u *SourceSnapshotUpsertOne) Update(set func(*SourceSnapshotUpsert)) *SourceSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *SourceSnapshotUpsertOne) SetContentHash(v string) *SourceSnapshotUpsertOne {
	return u.Update(func(s *SourceSnapshotUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *SourceSnapshotUpsertOne) UpdateContentHash() *SourceSnapshotUpsertOne {
	return u.Update(func(s *SourceSnapshotUpsert) {
		s.UpdateContentHash()
	})
}

// SetSnippetCount sets the "snippet_count" field.
func (u *SourceSnapshotUpsertOne) SetSnippetCount(v int) *SourceSnapshotUpsertOne {
	return u.Update(func(s *SourceSnapshotUpsert) {
		s.SetSnippetCount(v)
	})
}

// AddSnippetCount adds v to the "snippet_count" field.
func (u *SourceSnapshotUpsertOne) AddSnippetCount(v int) *SourceSnapshotUpsertOne {
	return u.Update(func(s *SourceSnapshotUpsert) {
		s.AddSnippetCount(v)
	})
}

// UpdateSnippetCount sets the "snippet_count" field to the value that was provided on create.
func (u *SourceSnapshotUpsertOne) UpdateSnippetCount() *SourceSnapshotUpsertOne {
	return u.Update(func(s *SourceSnapshotUpsert) {
		s.UpdateSnippetCount()
	})
}

// Exec executes the query.
func (u *SourceSnapshotUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceSnapshotCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceSnapshotUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SourceSnapshotUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SourceSnapshotUpsertOne.ID is not supported by MySQL driver. Use SourceSnapshotUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SourceSnapshotUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SourceSnapshotCreateBulk is the builder for creating many SourceSnapshot entities in bulk.
type SourceSnapshotCreateBulk struct {
	config
	err      error
	builders []*SourceSnapshotCreate
	conflict []sql.ConflictOption
}

// Save creates the SourceSnapshot entities in the database.
func (_c *SourceSnapshotCreateBulk) Save(ctx context.Context) ([]*SourceSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SourceSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceSnapshotMutation)
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
func (_c *SourceSnapshotCreateBulk) SaveX(ctx context.Context) []*SourceSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SourceSnapshot.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceSnapshotUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceSnapshotCreateBulk) OnConflict(opts ...sql.ConflictOption) *SourceSnapshotUpsertBulk {
	_c.conflict = opts
	return &SourceSnapshotUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SourceSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceSnapshotCreateBulk) OnConflictColumns(columns ...string) *SourceSnapshotUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceSnapshotUpsertBulk{
		create: _c,
	}
}

// SourceSnapshotUpsertBulk is the builder for "upsert"-ing
// a bulk of SourceSnapshot nodes.
type SourceSnapshotUpsertBulk struct {
	create *SourceSnapshotCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SourceSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sourcesnapshot.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceSnapshotUpsertBulk) UpdateNewValues() *SourceSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sourcesnapshot.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(sourcesnapshot.FieldTenantID)
			}
			if _, exists := b.mutation.SourceID(); exists {
				s.SetIgnore(sourcesnapshot.FieldSourceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sourcesnapshot.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SourceSnapshot.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SourceSnapshotUpsertBulk) Ignore() *SourceSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceSnapshotUpsertBulk) DoNothing() *SourceSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceSnapshotCreateBulk.OnConflict
// documentation for more info.
func (u *SourceSnapshotUpsertBulk) Update(set func(*SourceSnapshotUpsert)) *SourceSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *SourceSnapshotUpsertBulk) SetContentHash(v string) *SourceSnapshotUpsertBulk {
	return u.Update(func(s *SourceSnapshotUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *SourceSnapshotUpsertBulk) UpdateContentHash() *SourceSnapshotUpsertBulk {
	return u.Update(func(s *SourceSnapshotUpsert) {
		s.UpdateContentHash()
	})
}

// SetSnippetCount sets the "snippet_count" field.
func (u *SourceSnapshotUpsertBulk) SetSnippetCount(v int) *SourceSnapshotUpsertBulk {
	return u.Update(func(s *SourceSnapshotUpsert) {
		s.SetSnippetCount(v)
	})
}

// AddSnippetCount adds v to the "snippet_count" field.
func (u *SourceSnapshotUpsertBulk) AddSnippetCount(v int) *SourceSnapshotUpsertBulk {
	return u.Update(func(s *SourceSnapshotUpsert) {
		s.AddSnippetCount(v)
	})
}

// UpdateSnippetCount sets the "snippet_count" field to the value that was provided on create.
func (u *SourceSnapshotUpsertBulk) UpdateSnippetCount() *SourceSnapshotUpsertBulk {
	return u.Update(func(s *SourceSnapshotUpsert) {
		s.UpdateSnippetCount()
	})
}

// Exec executes the query.
func (u *SourceSnapshotUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SourceSnapshotCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceSnapshotCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceSnapshotUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
