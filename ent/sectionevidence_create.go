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
	"github.com/inquiro-ai/inquiro/ent/sectionevidence"
)

// SectionEvidenceCreate is the builder for creating a SectionEvidence entity.
type SectionEvidenceCreate struct {
	config
	mutation *SectionEvidenceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *SectionEvidenceCreate) SetTenantID(v string) *SectionEvidenceCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *SectionEvidenceCreate) SetRunID(v string) *SectionEvidenceCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSectionID sets the "section_id" field.
func (_c *SectionEvidenceCreate) SetSectionID(v string) *SectionEvidenceCreate {
	_c.mutation.SetSectionID(v)
	return _c
}

// SetSnippetID sets the "snippet_id" field.
func (_c *SectionEvidenceCreate) SetSnippetID(v string) *SectionEvidenceCreate {
	_c.mutation.SetSnippetID(v)
	return _c
}

// SetRank sets the "rank" field.
func (_c *SectionEvidenceCreate) SetRank(v int) *SectionEvidenceCreate {
	_c.mutation.SetRank(v)
	return _c
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_c *SectionEvidenceCreate) SetNillableRank(v *int) *SectionEvidenceCreate {
	if v != nil {
		_c.SetRank(*v)
	}
	return _c
}

// SetSimilarity sets the "similarity" field.
func (_c *SectionEvidenceCreate) SetSimilarity(v float64) *SectionEvidenceCreate {
	_c.mutation.SetSimilarity(v)
	return _c
}

// SetNillableSimilarity sets the "similarity" field if the given value is not nil.
func (_c *SectionEvidenceCreate) SetNillableSimilarity(v *float64) *SectionEvidenceCreate {
	if v != nil {
		_c.SetSimilarity(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SectionEvidenceCreate) SetID(v string) *SectionEvidenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *SectionEvidenceCreate) SetRun(v *Run) *SectionEvidenceCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the SectionEvidenceMutation object of the builder.
func (_c *SectionEvidenceCreate) Mutation() *SectionEvidenceMutation {
	return _c.mutation
}

// Save creates the SectionEvidence in the database.
func (_c *SectionEvidenceCreate) Save(ctx context.Context) (*SectionEvidence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SectionEvidenceCreate) SaveX(ctx context.Context) *SectionEvidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SectionEvidenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SectionEvidenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SectionEvidenceCreate) defaults() {
	if _, ok := _c.mutation.Rank(); !ok {
		v := sectionevidence.DefaultRank
		_c.mutation.SetRank(v)
	}
	if _, ok := _c.mutation.Similarity(); !ok {
		v := sectionevidence.DefaultSimilarity
		_c.mutation.SetSimilarity(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SectionEvidenceCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "SectionEvidence.tenant_id"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "SectionEvidence.run_id"`)}
	}
	if _, ok := _c.mutation.SectionID(); !ok {
		return &ValidationError{Name: "section_id", err: errors.New(`ent: missing required field "SectionEvidence.section_id"`)}
	}
	if _, ok := _c.mutation.SnippetID(); !ok {
		return &ValidationError{Name: "snippet_id", err: errors.New(`ent: missing required field "SectionEvidence.snippet_id"`)}
	}
	if _, ok := _c.mutation.Rank(); !ok {
		return &ValidationError{Name: "rank", err: errors.New(`ent: missing required field "SectionEvidence.rank"`)}
	}
	if _, ok := _c.mutation.Similarity(); !ok {
		return &ValidationError{Name: "similarity", err: errors.New(`ent: missing required field "SectionEvidence.similarity"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "SectionEvidence.run"`)}
	}
	return nil
}

func (_c *SectionEvidenceCreate) sqlSave(ctx context.Context) (*SectionEvidence, error) {
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
			return nil, fmt.Errorf("unexpected SectionEvidence.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SectionEvidenceCreate) createSpec() (*SectionEvidence, *sqlgraph.CreateSpec) {
	var (
		_node = &SectionEvidence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sectionevidence.Table, sqlgraph.NewFieldSpec(sectionevidence.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(sectionevidence.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.SectionID(); ok {
		_spec.SetField(sectionevidence.FieldSectionID, field.TypeString, value)
		_node.SectionID = value
	}
	if value, ok := _c.mutation.SnippetID(); ok {
		_spec.SetField(sectionevidence.FieldSnippetID, field.TypeString, value)
		_node.SnippetID = value
	}
	if value, ok := _c.mutation.Rank(); ok {
		_spec.SetField(sectionevidence.FieldRank, field.TypeInt, value)
		_node.Rank = value
	}
	if value, ok := _c.mutation.Similarity(); ok {
		_spec.SetField(sectionevidence.FieldSimilarity, field.TypeFloat64, value)
		_node.Similarity = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sectionevidence.RunTable,
			Columns: []string{sectionevidence.RunColumn},
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
//	client.SectionEvidence.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SectionEvidenceUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *SectionEvidenceCreate) OnConflict(opts ...sql.ConflictOption) *SectionEvidenceUpsertOne {
	_c.conflict = opts
	return &SectionEvidenceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SectionEvidence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SectionEvidenceCreate) OnConflictColumns(columns ...string) *SectionEvidenceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SectionEvidenceUpsertOne{
		create: _c,
	}
}

type (
	// SectionEvidenceUpsertOne is the builder for "upsert"-ing
	//  one SectionEvidence node.
	SectionEvidenceUpsertOne struct {
		create *SectionEvidenceCreate
	}

	// SectionEvidenceUpsert is the "OnConflict" setter.
	SectionEvidenceUpsert struct {
		*sql.UpdateSet
	}
)

// SetRank sets the "rank" field.
func (u *SectionEvidenceUpsert) SetRank(v int) *SectionEvidenceUpsert {
	u.Set(sectionevidence.FieldRank, v)
	return u
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *SectionEvidenceUpsert) UpdateRank() *SectionEvidenceUpsert {
	u.SetExcluded(sectionevidence.FieldRank)
	return u
}

// AddRank adds v to the "rank" field.
func (u *SectionEvidenceUpsert) AddRank(v int) *SectionEvidenceUpsert {
	u.Add(sectionevidence.FieldRank, v)
	return u
}

// SetSimilarity sets the "similarity" field.
func (u *SectionEvidenceUpsert) SetSimilarity(v float64) *SectionEvidenceUpsert {
	u.Set(sectionevidence.FieldSimilarity, v)
	return u
}

// UpdateSimilarity sets the "similarity" field to the value that was provided on create.
func (u *SectionEvidenceUpsert) UpdateSimilarity() *SectionEvidenceUpsert {
	u.SetExcluded(sectionevidence.FieldSimilarity)
	return u
}

// AddSimilarity adds v to the "similarity" field.
func (u *SectionEvidenceUpsert) AddSimilarity(v float64) *SectionEvidenceUpsert {
	u.Add(sectionevidence.FieldSimilarity, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SectionEvidence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sectionevidence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SectionEvidenceUpsertOne) UpdateNewValues() *SectionEvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sectionevidence.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(sectionevidence.FieldTenantID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(sectionevidence.FieldRunID)
		}
		if _, exists := u.create.mutation.SectionID(); exists {
			s.SetIgnore(sectionevidence.FieldSectionID)
		}
		if _, exists := u.create.mutation.SnippetID(); exists {
			s.SetIgnore(sectionevidence.FieldSnippetID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SectionEvidence.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SectionEvidenceUpsertOne) Ignore() *SectionEvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SectionEvidenceUpsertOne) DoNothing() *SectionEvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SectionEvidenceCreate.OnConflict
// documentation for more info.
func (u *SectionEvidenceUpsertOne) Update(set func(*SectionEvidenceUpsert)) *SectionEvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SectionEvidenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetRank sets the "rank" field.
func (u *SectionEvidenceUpsertOne) SetRank(v int) *SectionEvidenceUpsertOne {
	return u.Update(func(s *SectionEvidenceUpsert) {
		s.SetRank(v)
	})
}

// AddRank adds v to the "rank" field.
func (u *SectionEvidenceUpsertOne) AddRank(v int) *SectionEvidenceUpsertOne {
	return u.Update(func(s *SectionEvidenceUpsert) {
		s.AddRank(v)
	})
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *SectionEvidenceUpsertOne) UpdateRank() *SectionEvidenceUpsertOne {
	return u.Update(func(s *SectionEvidenceUpsert) {
		s.UpdateRank()
	})
}

// SetSimilarity sets the "similarity" field.
func (u *SectionEvidenceUpsertOne) SetSimilarity(v float64) *SectionEvidenceUpsertOne {
	return u.Update(func(s *SectionEvidenceUpsert) {
		s.SetSimilarity(v)
	})
}

// AddSimilarity adds v to the "similarity" field.
func (u *SectionEvidenceUpsertOne) AddSimilarity(v float64) *SectionEvidenceUpsertOne {
	return u.Update(func(s *SectionEvidenceUpsert) {
		s.AddSimilarity(v)
	})
}

// UpdateSimilarity sets the "similarity" field to the value that was provided on create.
func (u *SectionEvidenceUpsertOne) UpdateSimilarity() *SectionEvidenceUpsertOne {
	return u.Update(func(s *SectionEvidenceUpsert) {
		s.UpdateSimilarity()
	})
}

// Exec executes the query.
func (u *SectionEvidenceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SectionEvidenceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SectionEvidenceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SectionEvidenceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SectionEvidenceUpsertOne.ID is not supported by MySQL driver. Use SectionEvidenceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SectionEvidenceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SectionEvidenceCreateBulk is the builder for creating many SectionEvidence entities in bulk.
type SectionEvidenceCreateBulk struct {
	config
	err      error
	builders []*SectionEvidenceCreate
	conflict []sql.ConflictOption
}

// Save creates the SectionEvidence entities in the database.
func (_c *SectionEvidenceCreateBulk) Save(ctx context.Context) ([]*SectionEvidence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SectionEvidence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SectionEvidenceMutation)
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
func (_c *SectionEvidenceCreateBulk) SaveX(ctx context.Context) []*SectionEvidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SectionEvidenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SectionEvidenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SectionEvidence.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SectionEvidenceUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *SectionEvidenceCreateBulk) OnConflict(opts ...sql.ConflictOption) *SectionEvidenceUpsertBulk {
	_c.conflict = opts
	return &SectionEvidenceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SectionEvidence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SectionEvidenceCreateBulk) OnConflictColumns(columns ...string) *SectionEvidenceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SectionEvidenceUpsertBulk{
		create: _c,
	}
}

// SectionEvidenceUpsertBulk is the builder for "upsert"-ing
// a bulk of SectionEvidence nodes.
type SectionEvidenceUpsertBulk struct {
	create *SectionEvidenceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SectionEvidence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sectionevidence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SectionEvidenceUpsertBulk) UpdateNewValues() *SectionEvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sectionevidence.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(sectionevidence.FieldTenantID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(sectionevidence.FieldRunID)
			}
			if _, exists := b.mutation.SectionID(); exists {
				s.SetIgnore(sectionevidence.FieldSectionID)
			}
			if _, exists := b.mutation.SnippetID(); exists {
				s.SetIgnore(sectionevidence.FieldSnippetID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SectionEvidence.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SectionEvidenceUpsertBulk) Ignore() *SectionEvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SectionEvidenceUpsertBulk) DoNothing() *SectionEvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SectionEvidenceCreateBulk.OnConflict
// documentation for more info.
func (u *SectionEvidenceUpsertBulk) Update(set func(*SectionEvidenceUpsert)) *SectionEvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SectionEvidenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetRank sets the "rank" field.
func (u *SectionEvidenceUpsertBulk) SetRank(v int) *SectionEvidenceUpsertBulk {
	return u.Update(func(s *SectionEvidenceUpsert) {
		s.SetRank(v)
	})
}

// AddRank adds v to the "rank" field.
func (u *SectionEvidenceUpsertBulk) AddRank(v int) *SectionEvidenceUpsertBulk {
	return u.Update(func(s *SectionEvidenceUpsert) {
		s.AddRank(v)
	})
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *SectionEvidenceUpsertBulk) UpdateRank() *SectionEvidenceUpsertBulk {
	return u.Update(func(s *SectionEvidenceUpsert) {
		s.UpdateRank()
	})
}

// SetSimilarity sets the "similarity" field.
func (u *SectionEvidenceUpsertBulk) SetSimilarity(v float64) *SectionEvidenceUpsertBulk {
	return u.Update(func(s *SectionEvidenceUpsert) {
		s.SetSimilarity(v)
	})
}

// AddSimilarity adds v to the "similarity" field.
func (u *SectionEvidenceUpsertBulk) AddSimilarity(v float64) *SectionEvidenceUpsertBulk {
	return u.Update(func(s *SectionEvidenceUpsert) {
		s.AddSimilarity(v)
	})
}

// UpdateSimilarity sets the "similarity" field to the value that was provided on create.
func (u *SectionEvidenceUpsertBulk) UpdateSimilarity() *SectionEvidenceUpsertBulk {
	return u.Update(func(s *SectionEvidenceUpsert) {
		s.UpdateSimilarity()
	})
}

// Exec executes the query.
func (u *SectionEvidenceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SectionEvidenceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SectionEvidenceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SectionEvidenceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
