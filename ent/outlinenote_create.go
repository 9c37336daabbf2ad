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
	"github.com/inquiro-ai/inquiro/ent/outlinenote"
	"github.com/inquiro-ai/inquiro/ent/run"
)

// OutlineNoteCreate is the builder for creating a OutlineNote entity.
type OutlineNoteCreate struct {
	config
	mutation *OutlineNoteMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *OutlineNoteCreate) SetTenantID(v string) *OutlineNoteCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *OutlineNoteCreate) SetRunID(v string) *OutlineNoteCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSectionID sets the "section_id" field.
func (_c *OutlineNoteCreate) SetSectionID(v string) *OutlineNoteCreate {
	_c.mutation.SetSectionID(v)
	return _c
}

// SetKeyPoints sets the "key_points" field.
func (_c *OutlineNoteCreate) SetKeyPoints(v []string) *OutlineNoteCreate {
	_c.mutation.SetKeyPoints(v)
	return _c
}

// SetEvidenceThemes sets the "evidence_themes" field.
func (_c *OutlineNoteCreate) SetEvidenceThemes(v []string) *OutlineNoteCreate {
	_c.mutation.SetEvidenceThemes(v)
	return _c
}

// SetID sets the "id" field.
func (_c *OutlineNoteCreate) SetID(v string) *OutlineNoteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *OutlineNoteCreate) SetRun(v *Run) *OutlineNoteCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the OutlineNoteMutation object of the builder.
func (_c *OutlineNoteCreate) Mutation() *OutlineNoteMutation {
	return _c.mutation
}

// Save creates the OutlineNote in the database.
func (_c *OutlineNoteCreate) Save(ctx context.Context) (*OutlineNote, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OutlineNoteCreate) SaveX(ctx context.Context) *OutlineNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutlineNoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutlineNoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OutlineNoteCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "OutlineNote.tenant_id"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "OutlineNote.run_id"`)}
	}
	if _, ok := _c.mutation.SectionID(); !ok {
		return &ValidationError{Name: "section_id", err: errors.New(`ent: missing required field "OutlineNote.section_id"`)}
	}
	if _, ok := _c.mutation.KeyPoints(); !ok {
		return &ValidationError{Name: "key_points", err: errors.New(`ent: missing required field "OutlineNote.key_points"`)}
	}
	if _, ok := _c.mutation.EvidenceThemes(); !ok {
		return &ValidationError{Name: "evidence_themes", err: errors.New(`ent: missing required field "OutlineNote.evidence_themes"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "OutlineNote.run"`)}
	}
	return nil
}

func (_c *OutlineNoteCreate) sqlSave(ctx context.Context) (*OutlineNote, error) {
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
			return nil, fmt.Errorf("unexpected OutlineNote.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OutlineNoteCreate) createSpec() (*OutlineNote, *sqlgraph.CreateSpec) {
	var (
		_node = &OutlineNote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(outlinenote.Table, sqlgraph.NewFieldSpec(outlinenote.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(outlinenote.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.SectionID(); ok {
		_spec.SetField(outlinenote.FieldSectionID, field.TypeString, value)
		_node.SectionID = value
	}
	if value, ok := _c.mutation.KeyPoints(); ok {
		_spec.SetField(outlinenote.FieldKeyPoints, field.TypeJSON, value)
		_node.KeyPoints = value
	}
	if value, ok := _c.mutation.EvidenceThemes(); ok {
		_spec.SetField(outlinenote.FieldEvidenceThemes, field.TypeJSON, value)
		_node.EvidenceThemes = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   outlinenote.RunTable,
			Columns: []string{outlinenote.RunColumn},
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
//	client.OutlineNote.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OutlineNoteUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *OutlineNoteCreate) OnConflict(opts ...sql.ConflictOption) *OutlineNoteUpsertOne {
	_c.conflict = opts
	return &OutlineNoteUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OutlineNote.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OutlineNoteCreate) OnConflictColumns(columns ...string) *OutlineNoteUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OutlineNoteUpsertOne{
		create: _c,
	}
}

type (
	// OutlineNoteUpsertOne is the builder for "upsert"-ing
	//  one OutlineNote node.
	OutlineNoteUpsertOne struct {
		create *OutlineNoteCreate
	}

	// OutlineNoteUpsert is the "OnConflict" setter.
	OutlineNoteUpsert struct {
		*sql.UpdateSet
	}
)

// SetKeyPoints sets the "key_points" field.
func (u *OutlineNoteUpsert) SetKeyPoints(v []string) *OutlineNoteUpsert {
	u.Set(outlinenote.FieldKeyPoints, v)
	return u
}

// UpdateKeyPoints sets the "key_points" field to the value that was provided on create.
func (u *OutlineNoteUpsert) UpdateKeyPoints() *OutlineNoteUpsert {
	u.SetExcluded(outlinenote.FieldKeyPoints)
	return u
}

// SetEvidenceThemes sets the "evidence_themes" field.
func (u *OutlineNoteUpsert) SetEvidenceThemes(v []string) *OutlineNoteUpsert {
	u.Set(outlinenote.FieldEvidenceThemes, v)
	return u
}

// UpdateEvidenceThemes sets the "evidence_themes" field to the value that was provided on create.
func (u *OutlineNoteUpsert) UpdateEvidenceThemes() *OutlineNoteUpsert {
	u.SetExcluded(outlinenote.FieldEvidenceThemes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.OutlineNote.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(outlinenote.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OutlineNoteUpsertOne) UpdateNewValues() *OutlineNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(outlinenote.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(outlinenote.FieldTenantID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(outlinenote.FieldRunID)
		}
		if _, exists := u.create.mutation.SectionID(); exists {
			s.SetIgnore(outlinenote.FieldSectionID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OutlineNote.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OutlineNoteUpsertOne) Ignore() *OutlineNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OutlineNoteUpsertOne) DoNothing() *OutlineNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OutlineNoteCreate.OnConflict
// documentation for more info.
func (u *OutlineNoteUpsertOne) Update(set func(*OutlineNoteUpsert)) *OutlineNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OutlineNoteUpsert{UpdateSet: update})
	}))
	return u
}

// SetKeyPoints sets the "key_points" field.
func (u *OutlineNoteUpsertOne) SetKeyPoints(v []string) *OutlineNoteUpsertOne {
	return u.Update(func(s *OutlineNoteUpsert) {
		s.SetKeyPoints(v)
	})
}

// UpdateKeyPoints sets the "key_points" field to the value that was provided on create.
func (u *OutlineNoteUpsertOne) UpdateKeyPoints() *OutlineNoteUpsertOne {
	return u.Update(func(s *OutlineNoteUpsert) {
		s.UpdateKeyPoints()
	})
}

// SetEvidenceThemes sets the "evidence_themes" field.
func (u *OutlineNoteUpsertOne) SetEvidenceThemes(v []string) *OutlineNoteUpsertOne {
	return u.Update(func(s *OutlineNoteUpsert) {
		s.SetEvidenceThemes(v)
	})
}

// UpdateEvidenceThemes sets the "evidence_themes" field to the value that was provided on create.
func (u *OutlineNoteUpsertOne) UpdateEvidenceThemes() *OutlineNoteUpsertOne {
	return u.Update(func(s *OutlineNoteUpsert) {
		s.UpdateEvidenceThemes()
	})
}

// Exec executes the query.
func (u *OutlineNoteUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OutlineNoteCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OutlineNoteUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OutlineNoteUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: OutlineNoteUpsertOne.ID is not supported by MySQL driver. Use OutlineNoteUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OutlineNoteUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OutlineNoteCreateBulk is the builder for creating many OutlineNote entities in bulk.
type OutlineNoteCreateBulk struct {
	config
	err      error
	builders []*OutlineNoteCreate
	conflict []sql.ConflictOption
}

// Save creates the OutlineNote entities in the database.
func (_c *OutlineNoteCreateBulk) Save(ctx context.Context) ([]*OutlineNote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OutlineNote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OutlineNoteMutation)
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
func (_c *OutlineNoteCreateBulk) SaveX(ctx context.Context) []*OutlineNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutlineNoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutlineNoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OutlineNote.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OutlineNoteUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *OutlineNoteCreateBulk) OnConflict(opts ...sql.ConflictOption) *OutlineNoteUpsertBulk {
	_c.conflict = opts
	return &OutlineNoteUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OutlineNote.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OutlineNoteCreateBulk) OnConflictColumns(columns ...string) *OutlineNoteUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OutlineNoteUpsertBulk{
		create: _c,
	}
}

// OutlineNoteUpsertBulk is the builder for "upsert"-ing
// a bulk of OutlineNote nodes.
type OutlineNoteUpsertBulk struct {
	create *OutlineNoteCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OutlineNote.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(outlinenote.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OutlineNoteUpsertBulk) UpdateNewValues() *OutlineNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(outlinenote.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(outlinenote.FieldTenantID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(outlinenote.FieldRunID)
			}
			if _, exists := b.mutation.SectionID(); exists {
				s.SetIgnore(outlinenote.FieldSectionID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OutlineNote.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OutlineNoteUpsertBulk) Ignore() *OutlineNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OutlineNoteUpsertBulk) DoNothing() *OutlineNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OutlineNoteCreateBulk.OnConflict
// documentation for more info.
func (u *OutlineNoteUpsertBulk) Update(set func(*OutlineNoteUpsert)) *OutlineNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OutlineNoteUpsert{UpdateSet: update})
	}))
	return u
}

// SetKeyPoints sets the "key_points" field.
func (u *OutlineNoteUpsertBulk) SetKeyPoints(v []string) *OutlineNoteUpsertBulk {
	return u.Update(func(s *OutlineNoteUpsert) {
		s.SetKeyPoints(v)
	})
}

// UpdateKeyPoints sets the "key_points" field to the value that was provided on create.
func (u *OutlineNoteUpsertBulk) UpdateKeyPoints() *OutlineNoteUpsertBulk {
	return u.Update(func(s *OutlineNoteUpsert) {
		s.UpdateKeyPoints()
	})
}

// SetEvidenceThemes sets the "evidence_themes" field.
func (u *OutlineNoteUpsertBulk) SetEvidenceThemes(v []string) *OutlineNoteUpsertBulk {
	return u.Update(func(s *OutlineNoteUpsert) {
		s.SetEvidenceThemes(v)
	})
}

// UpdateEvidenceThemes sets the "evidence_themes" field to the value that was provided on create.
func (u *OutlineNoteUpsertBulk) UpdateEvidenceThemes() *OutlineNoteUpsertBulk {
	return u.Update(func(s *OutlineNoteUpsert) {
		s.UpdateEvidenceThemes()
	})
}

// Exec executes the query.
func (u *OutlineNoteUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OutlineNoteCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OutlineNoteCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OutlineNoteUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
