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
	"github.com/inquiro-ai/inquiro/ent/sourceembedding"
	pgvector "github.com/pgvector/pgvector-go"
)

// SourceEmbeddingCreate is the builder for creating a SourceEmbedding entity.
type SourceEmbeddingCreate struct {
	config
	mutation *SourceEmbeddingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *SourceEmbeddingCreate) SetTenantID(v string) *SourceEmbeddingCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetCanonicalID sets the "canonical_id" field.
func (_c *SourceEmbeddingCreate) SetCanonicalID(v string) *SourceEmbeddingCreate {
	_c.mutation.SetCanonicalID(v)
	return _c
}

// SetEmbeddingModel sets the "embedding_model" field.
func (_c *SourceEmbeddingCreate) SetEmbeddingModel(v string) *SourceEmbeddingCreate {
	_c.mutation.SetEmbeddingModel(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *SourceEmbeddingCreate) SetEmbedding(v pgvector.Vector) *SourceEmbeddingCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetTextHash sets the "text_hash" field.
func (_c *SourceEmbeddingCreate) SetTextHash(v string) *SourceEmbeddingCreate {
	_c.mutation.SetTextHash(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SourceEmbeddingCreate) SetUpdatedAt(v time.Time) *SourceEmbeddingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SourceEmbeddingCreate) SetNillableUpdatedAt(v *time.Time) *SourceEmbeddingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SourceEmbeddingCreate) SetID(v string) *SourceEmbeddingCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SourceEmbeddingMutation object of the builder.
func (_c *SourceEmbeddingCreate) Mutation() *SourceEmbeddingMutation {
	return _c.mutation
}

// Save creates the SourceEmbedding in the database.
func (_c *SourceEmbeddingCreate) Save(ctx context.Context) (*SourceEmbedding, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceEmbeddingCreate) SaveX(ctx context.Context) *SourceEmbedding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceEmbeddingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceEmbeddingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceEmbeddingCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sourceembedding.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceEmbeddingCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "SourceEmbedding.tenant_id"`)}
	}
	if _, ok := _c.mutation.CanonicalID(); !ok {
		return &ValidationError{Name: "canonical_id", err: errors.New(`ent: missing required field "SourceEmbedding.canonical_id"`)}
	}
	if _, ok := _c.mutation.EmbeddingModel(); !ok {
		return &ValidationError{Name: "embedding_model", err: errors.New(`ent: missing required field "SourceEmbedding.embedding_model"`)}
	}
	if _, ok := _c.mutation.Embedding(); !ok {
		return &ValidationError{Name: "embedding", err: errors.New(`ent: missing required field "SourceEmbedding.embedding"`)}
	}
	if _, ok := _c.mutation.TextHash(); !ok {
		return &ValidationError{Name: "text_hash", err: errors.New(`ent: missing required field "SourceEmbedding.text_hash"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SourceEmbedding.updated_at"`)}
	}
	return nil
}

func (_c *SourceEmbeddingCreate) sqlSave(ctx context.Context) (*SourceEmbedding, error) {
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
			return nil, fmt.Errorf("unexpected SourceEmbedding.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SourceEmbeddingCreate) createSpec() (*SourceEmbedding, *sqlgraph.CreateSpec) {
	var (
		_node = &SourceEmbedding{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sourceembedding.Table, sqlgraph.NewFieldSpec(sourceembedding.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(sourceembedding.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.CanonicalID(); ok {
		_spec.SetField(sourceembedding.FieldCanonicalID, field.TypeString, value)
		_node.CanonicalID = value
	}
	if value, ok := _c.mutation.EmbeddingModel(); ok {
		_spec.SetField(sourceembedding.FieldEmbeddingModel, field.TypeString, value)
		_node.EmbeddingModel = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(sourceembedding.FieldEmbedding, field.TypeOther, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.TextHash(); ok {
		_spec.SetField(sourceembedding.FieldTextHash, field.TypeString, value)
		_node.TextHash = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sourceembedding.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SourceEmbedding.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceEmbeddingUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceEmbeddingCreate) OnConflict(opts ...sql.ConflictOption) *SourceEmbeddingUpsertOne {
	_c.conflict = opts
	return &SourceEmbeddingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SourceEmbedding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceEmbeddingCreate) OnConflictColumns(columns ...string) *SourceEmbeddingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceEmbeddingUpsertOne{
		create: _c,
	}
}

type (
	// SourceEmbeddingUpsertOne is the builder for "upsert"-ing
	//  one SourceEmbedding node.
	SourceEmbeddingUpsertOne struct {
		create *SourceEmbeddingCreate
	}

	// SourceEmbeddingUpsert is the "OnConflict" setter.
	SourceEmbeddingUpsert struct {
		*sql.UpdateSet
	}
)

// SetEmbedding sets the "embedding" field.
func (u *SourceEmbeddingUpsert) SetEmbedding(v pgvector.Vector) *SourceEmbeddingUpsert {
	u.Set(sourceembedding.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *SourceEmbeddingUpsert) UpdateEmbedding() *SourceEmbeddingUpsert {
	u.SetExcluded(sourceembedding.FieldEmbedding)
	return u
}

// SetTextHash sets the "text_hash" field.
func (u *SourceEmbeddingUpsert) SetTextHash(v string) *SourceEmbeddingUpsert {
	u.Set(sourceembedding.FieldTextHash, v)
	return u
}

// UpdateTextHash sets the "text_hash" field to the value that was provided on create.
func (u *SourceEmbeddingUpsert) UpdateTextHash() *SourceEmbeddingUpsert {
	u.SetExcluded(sourceembedding.FieldTextHash)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SourceEmbeddingUpsert) SetUpdatedAt(v time.Time) *SourceEmbeddingUpsert {
	u.Set(sourceembedding.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SourceEmbeddingUpsert) UpdateUpdatedAt() *SourceEmbeddingUpsert {
	u.SetExcluded(sourceembedding.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SourceEmbedding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sourceembedding.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceEmbeddingUpsertOne) UpdateNewValues() *SourceEmbeddingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sourceembedding.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(sourceembedding.FieldTenantID)
		}
		if _, exists := u.create.mutation.CanonicalID(); exists {
			s.SetIgnore(sourceembedding.FieldCanonicalID)
		}
		if _, exists := u.create.mutation.EmbeddingModel(); exists {
			s.SetIgnore(sourceembedding.FieldEmbeddingModel)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SourceEmbedding.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SourceEmbeddingUpsertOne) Ignore() *SourceEmbeddingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceEmbeddingUpsertOne) DoNothing() *SourceEmbeddingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceEmbeddingCreate.OnConflict
// documentation for more info.
func (u *SourceEmbeddingUpsertOne) Update(set func(*SourceEmbeddingUpsert)) *SourceEmbeddingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceEmbeddingUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *SourceEmbeddingUpsertOne) SetEmbedding(v pgvector.Vector) *SourceEmbeddingUpsertOne {
	return u.Update(func(s *SourceEmbeddingUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *SourceEmbeddingUpsertOne) UpdateEmbedding() *SourceEmbeddingUpsertOne {
	return u.Update(func(s *SourceEmbeddingUpsert) {
		s.UpdateEmbedding()
	})
}

// SetTextHash sets the "text_hash" field.
func (u *SourceEmbeddingUpsertOne) SetTextHash(v string) *SourceEmbeddingUpsertOne {
	return u.Update(func(s *SourceEmbeddingUpsert) {
		s.SetTextHash(v)
	})
}

// UpdateTextHash sets the "text_hash" field to the value that was provided on create.
func (u *SourceEmbeddingUpsertOne) UpdateTextHash() *SourceEmbeddingUpsertOne {
	return u.Update(func(s *SourceEmbeddingUpsert) {
		s.UpdateTextHash()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SourceEmbeddingUpsertOne) SetUpdatedAt(v time.Time) *SourceEmbeddingUpsertOne {
	return u.Update(func(s *SourceEmbeddingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SourceEmbeddingUpsertOne) UpdateUpdatedAt() *SourceEmbeddingUpsertOne {
	return u.Update(func(s *SourceEmbeddingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SourceEmbeddingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceEmbeddingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceEmbeddingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SourceEmbeddingUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SourceEmbeddingUpsertOne.ID is not supported by MySQL driver. Use SourceEmbeddingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SourceEmbeddingUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SourceEmbeddingCreateBulk is the builder for creating many SourceEmbedding entities in bulk.
type SourceEmbeddingCreateBulk struct {
	config
	err      error
	builders []*SourceEmbeddingCreate
	conflict []sql.ConflictOption
}

// Save creates the SourceEmbedding entities in the database.
func (_c *SourceEmbeddingCreateBulk) Save(ctx context.Context) ([]*SourceEmbedding, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SourceEmbedding, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceEmbeddingMutation)
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
func (_c *SourceEmbeddingCreateBulk) SaveX(ctx context.Context) []*SourceEmbedding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceEmbeddingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceEmbeddingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SourceEmbedding.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceEmbeddingUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceEmbeddingCreateBulk) OnConflict(opts ...sql.ConflictOption) *SourceEmbeddingUpsertBulk {
	_c.conflict = opts
	return &SourceEmbeddingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SourceEmbedding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceEmbeddingCreateBulk) OnConflictColumns(columns ...string) *SourceEmbeddingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceEmbeddingUpsertBulk{
		create: _c,
	}
}

// SourceEmbeddingUpsertBulk is the builder for "upsert"-ing
// a bulk of SourceEmbedding nodes.
type SourceEmbeddingUpsertBulk struct {
	create *SourceEmbeddingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SourceEmbedding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sourceembedding.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceEmbeddingUpsertBulk) UpdateNewValues() *SourceEmbeddingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sourceembedding.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(sourceembedding.FieldTenantID)
			}
			if _, exists := b.mutation.CanonicalID(); exists {
				s.SetIgnore(sourceembedding.FieldCanonicalID)
			}
			if _, exists := b.mutation.EmbeddingModel(); exists {
				s.SetIgnore(sourceembedding.FieldEmbeddingModel)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SourceEmbedding.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SourceEmbeddingUpsertBulk) Ignore() *SourceEmbeddingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceEmbeddingUpsertBulk) DoNothing() *SourceEmbeddingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceEmbeddingCreateBulk.OnConflict
// documentation for more info.
func (u *SourceEmbeddingUpsertBulk) Update(set func(*SourceEmbeddingUpsert)) *SourceEmbeddingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceEmbeddingUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *SourceEmbeddingUpsertBulk) SetEmbedding(v pgvector.Vector) *SourceEmbeddingUpsertBulk {
	return u.Update(func(s *SourceEmbeddingUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *SourceEmbeddingUpsertBulk) UpdateEmbedding() *SourceEmbeddingUpsertBulk {
	return u.Update(func(s *SourceEmbeddingUpsert) {
		s.UpdateEmbedding()
	})
}

// SetTextHash sets the "text_hash" field.
func (u *SourceEmbeddingUpsertBulk) SetTextHash(v string) *SourceEmbeddingUpsertBulk {
	return u.Update(func(s *SourceEmbeddingUpsert) {
		s.SetTextHash(v)
	})
}

// UpdateTextHash sets the "text_hash" field to the value that was provided on create.
func (u *SourceEmbeddingUpsertBulk) UpdateTextHash() *SourceEmbeddingUpsertBulk {
	return u.Update(func(s *SourceEmbeddingUpsert) {
		s.UpdateTextHash()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SourceEmbeddingUpsertBulk) SetUpdatedAt(v time.Time) *SourceEmbeddingUpsertBulk {
	return u.Update(func(s *SourceEmbeddingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SourceEmbeddingUpsertBulk) UpdateUpdatedAt() *SourceEmbeddingUpsertBulk {
	return u.Update(func(s *SourceEmbeddingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SourceEmbeddingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SourceEmbeddingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceEmbeddingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceEmbeddingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
