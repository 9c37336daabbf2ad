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
	"github.com/inquiro-ai/inquiro/ent/source"
	"github.com/inquiro-ai/inquiro/ent/sourcesnippet"
	pgvector "github.com/pgvector/pgvector-go"
)

// SourceSnippetCreate is the builder for creating a SourceSnippet entity.
type SourceSnippetCreate struct {
	config
	mutation *SourceSnippetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *SourceSnippetCreate) SetTenantID(v string) *SourceSnippetCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *SourceSnippetCreate) SetSourceID(v string) *SourceSnippetCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetSnapshotID sets the "snapshot_id" field.
func (_c *SourceSnippetCreate) SetSnapshotID(v string) *SourceSnippetCreate {
	_c.mutation.SetSnapshotID(v)
	return _c
}

// SetOrd sets the "ord" field.
func (_c *SourceSnippetCreate) SetOrd(v int) *SourceSnippetCreate {
	_c.mutation.SetOrd(v)
	return _c
}

// SetText sets the "text" field.
func (_c *SourceSnippetCreate) SetText(v string) *SourceSnippetCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *SourceSnippetCreate) SetEmbedding(v pgvector.Vector) *SourceSnippetCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetEmbeddingModel sets the "embedding_model" field.
func (_c *SourceSnippetCreate) SetEmbeddingModel(v string) *SourceSnippetCreate {
	_c.mutation.SetEmbeddingModel(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SourceSnippetCreate) SetID(v string) *SourceSnippetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSource sets the "source" edge to the Source entity.
func (_c *SourceSnippetCreate) SetSource(v *Source) *SourceSnippetCreate {
	return _c.SetSourceID(v.ID)
}

// Mutation returns the SourceSnippetMutation object of the builder.
func (_c *SourceSnippetCreate) Mutation() *SourceSnippetMutation {
	return _c.mutation
}

// Save creates the SourceSnippet in the database.
func (_c *SourceSnippetCreate) Save(ctx context.Context) (*SourceSnippet, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceSnippetCreate) SaveX(ctx context.Context) *SourceSnippet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceSnippetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceSnippetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceSnippetCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "SourceSnippet.tenant_id"`)}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "SourceSnippet.source_id"`)}
	}
	if _, ok := _c.mutation.SnapshotID(); !ok {
		return &ValidationError{Name: "snapshot_id", err: errors.New(`ent: missing required field "SourceSnippet.snapshot_id"`)}
	}
	if _, ok := _c.mutation.Ord(); !ok {
		return &ValidationError{Name: "ord", err: errors.New(`ent: missing required field "SourceSnippet.ord"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "SourceSnippet.text"`)}
	}
	if _, ok := _c.mutation.Embedding(); !ok {
		return &ValidationError{Name: "embedding", err: errors.New(`ent: missing required field "SourceSnippet.embedding"`)}
	}
	if _, ok := _c.mutation.EmbeddingModel(); !ok {
		return &ValidationError{Name: "embedding_model", err: errors.New(`ent: missing required field "SourceSnippet.embedding_model"`)}
	}
	if len(_c.mutation.SourceIDs()) == 0 {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required edge "SourceSnippet.source"`)}
	}
	return nil
}

func (_c *SourceSnippetCreate) sqlSave(ctx context.Context) (*SourceSnippet, error) {
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
			return nil, fmt.Errorf("unexpected SourceSnippet.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SourceSnippetCreate) createSpec() (*SourceSnippet, *sqlgraph.CreateSpec) {
	var (
		_node = &SourceSnippet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sourcesnippet.Table, sqlgraph.NewFieldSpec(sourcesnippet.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(sourcesnippet.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.SnapshotID(); ok {
		_spec.SetField(sourcesnippet.FieldSnapshotID, field.TypeString, value)
		_node.SnapshotID = value
	}
	if value, ok := _c.mutation.Ord(); ok {
		_spec.SetField(sourcesnippet.FieldOrd, field.TypeInt, value)
		_node.Ord = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(sourcesnippet.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(sourcesnippet.FieldEmbedding, field.TypeOther, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.EmbeddingModel(); ok {
		_spec.SetField(sourcesnippet.FieldEmbeddingModel, field.TypeString, value)
		_node.EmbeddingModel = value
	}
	if nodes := _c.mutation.SourceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sourcesnippet.SourceTable,
			Columns: []string{sourcesnippet.SourceColumn},
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
//	client.SourceSnippet.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceSnippetUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceSnippetCreate) OnConflict(opts ...sql.ConflictOption) *SourceSnippetUpsertOne {
	_c.conflict = opts
	return &SourceSnippetUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SourceSnippet.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceSnippetCreate) OnConflictColumns(columns ...string) *SourceSnippetUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceSnippetUpsertOne{
		create: _c,
	}
}

type (
	// SourceSnippetUpsertOne is the builder for "upsert"-ing
	//  one SourceSnippet node.
	SourceSnippetUpsertOne struct {
		create *SourceSnippetCreate
	}

	// SourceSnippetUpsert is the "OnConflict" setter.
	SourceSnippetUpsert struct {
		*sql.UpdateSet
	}
)

// SetOrd sets the "ord" field.
func (u *SourceSnippetUpsert) SetOrd(v int) *SourceSnippetUpsert {
	u.Set(sourcesnippet.FieldOrd, v)
	return u
}

// UpdateOrd sets the "ord" field to the value that was provided on create.
func (u *SourceSnippetUpsert) UpdateOrd() *SourceSnippetUpsert {
	u.SetExcluded(sourcesnippet.FieldOrd)
	return u
}

// AddOrd adds v to the "ord" field.
func (u *SourceSnippetUpsert) AddOrd(v int) *SourceSnippetUpsert {
	u.Add(sourcesnippet.FieldOrd, v)
	return u
}

// SetText sets the "text" field.
func (u *SourceSnippetUpsert) SetText(v string) *SourceSnippetUpsert {
	u.Set(sourcesnippet.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *SourceSnippetUpsert) UpdateText() *SourceSnippetUpsert {
	u.SetExcluded(sourcesnippet.FieldText)
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *SourceSnippetUpsert) SetEmbedding(v pgvector.Vector) *SourceSnippetUpsert {
	u.Set(sourcesnippet.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *SourceSnippetUpsert) UpdateEmbedding() *SourceSnippetUpsert {
	u.SetExcluded(sourcesnippet.FieldEmbedding)
	return u
}

// SetEmbeddingModel sets the "embedding_model" field.
func (u *SourceSnippetUpsert) SetEmbeddingModel(v string) *SourceSnippetUpsert {
	u.Set(sourcesnippet.FieldEmbeddingModel, v)
	return u
}

// UpdateEmbeddingModel sets the "embedding_model" field to the value that was provided on create.
func (u *SourceSnippetUpsert) UpdateEmbeddingModel() *SourceSnippetUpsert {
	u.SetExcluded(sourcesnippet.FieldEmbeddingModel)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SourceSnippet.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sourcesnippet.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceSnippetUpsertOne) UpdateNewValues() *SourceSnippetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sourcesnippet.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(sourcesnippet.FieldTenantID)
		}
		if _, exists := u.create.mutation.SourceID(); exists {
			s.SetIgnore(sourcesnippet.FieldSourceID)
		}
		if _, exists := u.create.mutation.SnapshotID(); exists {
			s.SetIgnore(sourcesnippet.FieldSnapshotID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SourceSnippet.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SourceSnippetUpsertOne) Ignore() *SourceSnippetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceSnippetUpsertOne) DoNothing() *SourceSnippetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceSnippetCreate.OnConflict
// documentation for more info.
func (u *SourceSnippetUpsertOne) Update(set func(*SourceSnippetUpsert)) *SourceSnippetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceSnippetUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrd sets the "ord" field.
func (u *SourceSnippetUpsertOne) SetOrd(v int) *SourceSnippetUpsertOne {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.SetOrd(v)
	})
}

// AddOrd adds v to the "ord" field.
func (u *SourceSnippetUpsertOne) AddOrd(v int) *SourceSnippetUpsertOne {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.AddOrd(v)
	})
}

// UpdateOrd sets the "ord" field to the value that was provided on create.
func (u *SourceSnippetUpsertOne) UpdateOrd() *SourceSnippetUpsertOne {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.UpdateOrd()
	})
}

// SetText sets the "text" field.
func (u *SourceSnippetUpsertOne) SetText(v string) *SourceSnippetUpsertOne {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *SourceSnippetUpsertOne) UpdateText() *SourceSnippetUpsertOne {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.UpdateText()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *SourceSnippetUpsertOne) SetEmbedding(v pgvector.Vector) *SourceSnippetUpsertOne {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *SourceSnippetUpsertOne) UpdateEmbedding() *SourceSnippetUpsertOne {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.UpdateEmbedding()
	})
}

// SetEmbeddingModel sets the "embedding_model" field.
func (u *SourceSnippetUpsertOne) SetEmbeddingModel(v string) *SourceSnippetUpsertOne {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.SetEmbeddingModel(v)
	})
}

// UpdateEmbeddingModel sets the "embedding_model" field to the value that was provided on create.
func (u *SourceSnippetUpsertOne) UpdateEmbeddingModel() *SourceSnippetUpsertOne {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.UpdateEmbeddingModel()
	})
}

// Exec executes the query.
func (u *SourceSnippetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceSnippetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceSnippetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SourceSnippetUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SourceSnippetUpsertOne.ID is not supported by MySQL driver. Use SourceSnippetUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SourceSnippetUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SourceSnippetCreateBulk is the builder for creating many SourceSnippet entities in bulk.
type SourceSnippetCreateBulk struct {
	config
	err      error
	builders []*SourceSnippetCreate
	conflict []sql.ConflictOption
}

// Save creates the SourceSnippet entities in the database.
func (_c *SourceSnippetCreateBulk) Save(ctx context.Context) ([]*SourceSnippet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SourceSnippet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceSnippetMutation)
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
func (_c *SourceSnippetCreateBulk) SaveX(ctx context.Context) []*SourceSnippet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceSnippetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceSnippetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SourceSnippet.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceSnippetUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceSnippetCreateBulk) OnConflict(opts ...sql.ConflictOption) *SourceSnippetUpsertBulk {
	_c.conflict = opts
	return &SourceSnippetUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SourceSnippet.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceSnippetCreateBulk) OnConflictColumns(columns ...string) *SourceSnippetUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceSnippetUpsertBulk{
		create: _c,
	}
}

// SourceSnippetUpsertBulk is the builder for "upsert"-ing
// a bulk of SourceSnippet nodes.
type SourceSnippetUpsertBulk struct {
	create *SourceSnippetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SourceSnippet.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sourcesnippet.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceSnippetUpsertBulk) UpdateNewValues() *SourceSnippetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sourcesnippet.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(sourcesnippet.FieldTenantID)
			}
			if _, exists := b.mutation.SourceID(); exists {
				s.SetIgnore(sourcesnippet.FieldSourceID)
			}
			if _, exists := b.mutation.SnapshotID(); exists {
				s.SetIgnore(sourcesnippet.FieldSnapshotID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SourceSnippet.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SourceSnippetUpsertBulk) Ignore() *SourceSnippetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceSnippetUpsertBulk) DoNothing() *SourceSnippetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceSnippetCreateBulk.OnConflict
// documentation for more info.
func (u *SourceSnippetUpsertBulk) Update(set func(*SourceSnippetUpsert)) *SourceSnippetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceSnippetUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrd sets the "ord" field.
func (u *SourceSnippetUpsertBulk) SetOrd(v int) *SourceSnippetUpsertBulk {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.SetOrd(v)
	})
}

// AddOrd adds v to the "ord" field.
func (u *SourceSnippetUpsertBulk) AddOrd(v int) *SourceSnippetUpsertBulk {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.AddOrd(v)
	})
}

// UpdateOrd sets the "ord" field to the value that was provided on create.
func (u *SourceSnippetUpsertBulk) UpdateOrd() *SourceSnippetUpsertBulk {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.UpdateOrd()
	})
}

// SetText sets the "text" field.
func (u *SourceSnippetUpsertBulk) SetText(v string) *SourceSnippetUpsertBulk {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *SourceSnippetUpsertBulk) UpdateText() *SourceSnippetUpsertBulk {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.UpdateText()
	})
}

// SetEmbedding sets the "embedding" field.
func (u *SourceSnippetUpsertBulk) SetEmbedding(v pgvector.Vector) *SourceSnippetUpsertBulk {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *SourceSnippetUpsertBulk) UpdateEmbedding() *SourceSnippetUpsertBulk {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.UpdateEmbedding()
	})
}

// SetEmbeddingModel sets the "embedding_model" field.
func (u *SourceSnippetUpsertBulk) SetEmbeddingModel(v string) *SourceSnippetUpsertBulk {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.SetEmbeddingModel(v)
	})
}

// UpdateEmbeddingModel sets the "embedding_model" field to the value that was provided on create.
func (u *SourceSnippetUpsertBulk) UpdateEmbeddingModel() *SourceSnippetUpsertBulk {
	return u.Update(func(s *SourceSnippetUpsert) {
		s.UpdateEmbeddingModel()
	})
}

// Exec executes the query.
func (u *SourceSnippetUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SourceSnippetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceSnippetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceSnippetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
