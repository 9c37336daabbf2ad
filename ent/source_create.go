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
	"github.com/inquiro-ai/inquiro/ent/sourcesnippet"
)

// SourceCreate is the builder for creating a Source entity.
type SourceCreate struct {
	config
	mutation *SourceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *SourceCreate) SetTenantID(v string) *SourceCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetCanonicalID sets the "canonical_id" field.
func (_c *SourceCreate) SetCanonicalID(v string) *SourceCreate {
	_c.mutation.SetCanonicalID(v)
	return _c
}

// SetDoi sets the "doi" field.
func (_c *SourceCreate) SetDoi(v string) *SourceCreate {
	_c.mutation.SetDoi(v)
	return _c
}

// SetNillableDoi sets the "doi" field if the given value is not nil.
func (_c *SourceCreate) SetNillableDoi(v *string) *SourceCreate {
	if v != nil {
		_c.SetDoi(*v)
	}
	return _c
}

// SetArxivID sets the "arxiv_id" field.
func (_c *SourceCreate) SetArxivID(v string) *SourceCreate {
	_c.mutation.SetArxivID(v)
	return _c
}

// SetNillableArxivID sets the "arxiv_id" field if the given value is not nil.
func (_c *SourceCreate) SetNillableArxivID(v *string) *SourceCreate {
	if v != nil {
		_c.SetArxivID(*v)
	}
	return _c
}

// SetOpenalexID sets the "openalex_id" field.
func (_c *SourceCreate) SetOpenalexID(v string) *SourceCreate {
	_c.mutation.SetOpenalexID(v)
	return _c
}

// SetNillableOpenalexID sets the "openalex_id" field if the given value is not nil.
func (_c *SourceCreate) SetNillableOpenalexID(v *string) *SourceCreate {
	if v != nil {
		_c.SetOpenalexID(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *SourceCreate) SetURL(v string) *SourceCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *SourceCreate) SetNillableURL(v *string) *SourceCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *SourceCreate) SetTitle(v string) *SourceCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetAuthors sets the "authors" field.
func (_c *SourceCreate) SetAuthors(v []string) *SourceCreate {
	_c.mutation.SetAuthors(v)
	return _c
}

// SetYear sets the "year" field.
func (_c *SourceCreate) SetYear(v int) *SourceCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_c *SourceCreate) SetNillableYear(v *int) *SourceCreate {
	if v != nil {
		_c.SetYear(*v)
	}
	return _c
}

// SetAbstract sets the "abstract" field.
func (_c *SourceCreate) SetAbstract(v string) *SourceCreate {
	_c.mutation.SetAbstract(v)
	return _c
}

// SetNillableAbstract sets the "abstract" field if the given value is not nil.
func (_c *SourceCreate) SetNillableAbstract(v *string) *SourceCreate {
	if v != nil {
		_c.SetAbstract(*v)
	}
	return _c
}

// SetPdfURL sets the "pdf_url" field.
func (_c *SourceCreate) SetPdfURL(v string) *SourceCreate {
	_c.mutation.SetPdfURL(v)
	return _c
}

// SetNillablePdfURL sets the "pdf_url" field if the given value is not nil.
func (_c *SourceCreate) SetNillablePdfURL(v *string) *SourceCreate {
	if v != nil {
		_c.SetPdfURL(*v)
	}
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *SourceCreate) SetSourceType(v string) *SourceCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_c *SourceCreate) SetNillableSourceType(v *string) *SourceCreate {
	if v != nil {
		_c.SetSourceType(*v)
	}
	return _c
}

// SetConnector sets the "connector" field.
func (_c *SourceCreate) SetConnector(v string) *SourceCreate {
	_c.mutation.SetConnector(v)
	return _c
}

// SetCitationsCount sets the "citations_count" field.
func (_c *SourceCreate) SetCitationsCount(v int) *SourceCreate {
	_c.mutation.SetCitationsCount(v)
	return _c
}

// SetNillableCitationsCount sets the "citations_count" field if the given value is not nil.
func (_c *SourceCreate) SetNillableCitationsCount(v *int) *SourceCreate {
	if v != nil {
		_c.SetCitationsCount(*v)
	}
	return _c
}

// SetExtraMetadata sets the "extra_metadata" field.
func (_c *SourceCreate) SetExtraMetadata(v map[string]interface{}) *SourceCreate {
	_c.mutation.SetExtraMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SourceCreate) SetCreatedAt(v time.Time) *SourceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SourceCreate) SetNillableCreatedAt(v *time.Time) *SourceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SourceCreate) SetUpdatedAt(v time.Time) *SourceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SourceCreate) SetNillableUpdatedAt(v *time.Time) *SourceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SourceCreate) SetID(v string) *SourceCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSnapshotIDs adds the "snapshots" edge to the SourceSnapshot entity by IDs.
func (_c *SourceCreate) AddSnapshotIDs(ids ...string) *SourceCreate {
	_c.mutation.AddSnapshotIDs(ids...)
	return _c
}

// AddSnapshots adds the "snapshots" edges to the SourceSnapshot entity.
func (_c *SourceCreate) AddSnapshots(v ...*SourceSnapshot) *SourceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSnapshotIDs(ids...)
}

// AddSnippetIDs adds the "snippets" edge to the SourceSnippet entity by IDs.
func (_c *SourceCreate) AddSnippetIDs(ids ...string) *SourceCreate {
	_c.mutation.AddSnippetIDs(ids...)
	return _c
}

// AddSnippets adds the "snippets" edges to the SourceSnippet entity.
func (_c *SourceCreate) AddSnippets(v ...*SourceSnippet) *SourceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSnippetIDs(ids...)
}

// Mutation returns the SourceMutation object of the builder.
func (_c *SourceCreate) Mutation() *SourceMutation {
	return _c.mutation
}

// Save creates the Source in the database.
func (_c *SourceCreate) Save(ctx context.Context) (*Source, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceCreate) SaveX(ctx context.Context) *Source {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceCreate) defaults() {
	if _, ok := _c.mutation.SourceType(); !ok {
		v := source.DefaultSourceType
		_c.mutation.SetSourceType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := source.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := source.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Source.tenant_id"`)}
	}
	if _, ok := _c.mutation.CanonicalID(); !ok {
		return &ValidationError{Name: "canonical_id", err: errors.New(`ent: missing required field "Source.canonical_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Source.title"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "Source.source_type"`)}
	}
	if _, ok := _c.mutation.Connector(); !ok {
		return &ValidationError{Name: "connector", err: errors.New(`ent: missing required field "Source.connector"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Source.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Source.updated_at"`)}
	}
	return nil
}

func (_c *SourceCreate) sqlSave(ctx context.Context) (*Source, error) {
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
			return nil, fmt.Errorf("unexpected Source.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SourceCreate) createSpec() (*Source, *sqlgraph.CreateSpec) {
	var (
		_node = &Source{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(source.Table, sqlgraph.NewFieldSpec(source.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(source.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.CanonicalID(); ok {
		_spec.SetField(source.FieldCanonicalID, field.TypeString, value)
		_node.CanonicalID = value
	}
	if value, ok := _c.mutation.Doi(); ok {
		_spec.SetField(source.FieldDoi, field.TypeString, value)
		_node.Doi = &value
	}
	if value, ok := _c.mutation.ArxivID(); ok {
		_spec.SetField(source.FieldArxivID, field.TypeString, value)
		_node.ArxivID = &value
	}
	if value, ok := _c.mutation.OpenalexID(); ok {
		_spec.SetField(source.FieldOpenalexID, field.TypeString, value)
		_node.OpenalexID = &value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(source.FieldURL, field.TypeString, value)
		_node.URL = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(source.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Authors(); ok {
		_spec.SetField(source.FieldAuthors, field.TypeJSON, value)
		_node.Authors = value
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(source.FieldYear, field.TypeInt, value)
		_node.Year = &value
	}
	if value, ok := _c.mutation.Abstract(); ok {
		_spec.SetField(source.FieldAbstract, field.TypeString, value)
		_node.Abstract = value
	}
	if value, ok := _c.mutation.PdfURL(); ok {
		_spec.SetField(source.FieldPdfURL, field.TypeString, value)
		_node.PdfURL = &value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(source.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.Connector(); ok {
		_spec.SetField(source.FieldConnector, field.TypeString, value)
		_node.Connector = value
	}
	if value, ok := _c.mutation.CitationsCount(); ok {
		_spec.SetField(source.FieldCitationsCount, field.TypeInt, value)
		_node.CitationsCount = &value
	}
	if value, ok := _c.mutation.ExtraMetadata(); ok {
		_spec.SetField(source.FieldExtraMetadata, field.TypeJSON, value)
		_node.ExtraMetadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(source.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(source.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SnapshotsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   source.SnapshotsTable,
			Columns: []string{source.SnapshotsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcesnapshot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SnippetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   source.SnippetsTable,
			Columns: []string{source.SnippetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcesnippet.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Source.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceCreate) OnConflict(opts ...sql.ConflictOption) *SourceUpsertOne {
	_c.conflict = opts
	return &SourceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceCreate) OnConflictColumns(columns ...string) *SourceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceUpsertOne{
		create: _c,
	}
}

type (
	// SourceUpsertOne is the builder for "upsert"-ing
	//  one Source node.
	SourceUpsertOne struct {
		create *SourceCreate
	}

	// SourceUpsert is the "OnConflict" setter.
	SourceUpsert struct {
		*sql.UpdateSet
	}
)

// SetCanonicalID sets the "canonical_id" field.
func (u *SourceUpsert) SetCanonicalID(v string) *SourceUpsert {
	u.Set(source.FieldCanonicalID, v)
	return u
}

// UpdateCanonicalID sets the "canonical_id" field to the value that was provided on create.
func (u *SourceUpsert) UpdateCanonicalID() *SourceUpsert {
	u.SetExcluded(source.FieldCanonicalID)
	return u
}

// SetDoi sets the "doi" field.
func (u *SourceUpsert) SetDoi(v string) *SourceUpsert {
	u.Set(source.FieldDoi, v)
	return u
}

// UpdateDoi sets the "doi" field to the value that was provided on create.
func (u *SourceUpsert) UpdateDoi() *SourceUpsert {
	u.SetExcluded(source.FieldDoi)
	return u
}

// ClearDoi clears the value of the "doi" field.
func (u *SourceUpsert) ClearDoi() *SourceUpsert {
	u.SetNull(source.FieldDoi)
	return u
}

// SetArxivID sets the "arxiv_id" field.
func (u *SourceUpsert) SetArxivID(v string) *SourceUpsert {
	u.Set(source.FieldArxivID, v)
	return u
}

// UpdateArxivID sets the "arxiv_id" field to the value that was provided on create.
func (u *SourceUpsert) UpdateArxivID() *SourceUpsert {
	u.SetExcluded(source.FieldArxivID)
	return u
}

// ClearArxivID clears the value of the "arxiv_id" field.
func (u *SourceUpsert) ClearArxivID() *SourceUpsert {
	u.SetNull(source.FieldArxivID)
	return u
}

// SetOpenalexID sets the "openalex_id" field.
func (u *SourceUpsert) SetOpenalexID(v string) *SourceUpsert {
	u.Set(source.FieldOpenalexID, v)
	return u
}

// UpdateOpenalexID sets the "openalex_id" field to the value that was provided on create.
func (u *SourceUpsert) UpdateOpenalexID() *SourceUpsert {
	u.SetExcluded(source.FieldOpenalexID)
	return u
}

// ClearOpenalexID clears the value of the "openalex_id" field.
func (u *SourceUpsert) ClearOpenalexID() *SourceUpsert {
	u.SetNull(source.FieldOpenalexID)
	return u
}

// SetURL sets the "url" field.
func (u *SourceUpsert) SetURL(v string) *SourceUpsert {
	u.Set(source.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *SourceUpsert) UpdateURL() *SourceUpsert {
	u.SetExcluded(source.FieldURL)
	return u
}

// ClearURL clears the value of the "url" field.
func (u *SourceUpsert) ClearURL() *SourceUpsert {
	u.SetNull(source.FieldURL)
	return u
}

// SetTitle sets the "title" field.
func (u *SourceUpsert) SetTitle(v string) *SourceUpsert {
	u.Set(source.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SourceUpsert) UpdateTitle() *SourceUpsert {
	u.SetExcluded(source.FieldTitle)
	return u
}

// SetAuthors sets the "authors" field.
func (u *SourceUpsert) SetAuthors(v []string) *SourceUpsert {
	u.Set(source.FieldAuthors, v)
	return u
}

// UpdateAuthors sets the "authors" field to the value that was provided on create.
func (u *SourceUpsert) UpdateAuthors() *SourceUpsert {
	u.SetExcluded(source.FieldAuthors)
	return u
}

// ClearAuthors clears the value of the "authors" field.
func (u *SourceUpsert) ClearAuthors() *SourceUpsert {
	u.SetNull(source.FieldAuthors)
	return u
}

// SetYear sets the "year" field.
func (u *SourceUpsert) SetYear(v int) *SourceUpsert {
	u.Set(source.FieldYear, v)
	return u
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *SourceUpsert) UpdateYear() *SourceUpsert {
	u.SetExcluded(source.FieldYear)
	return u
}

// AddYear adds v to the "year" field.
func (u *SourceUpsert) AddYear(v int) *SourceUpsert {
	u.Add(source.FieldYear, v)
	return u
}

// ClearYear clears the value of the "year" field.
func (u *SourceUpsert) ClearYear() *SourceUpsert {
	u.SetNull(source.FieldYear)
	return u
}

// SetAbstract sets the "abstract" field.
func (u *SourceUpsert) SetAbstract(v string) *SourceUpsert {
	u.Set(source.FieldAbstract, v)
	return u
}

// UpdateAbstract sets the "abstract" field to the value that was provided on create.
func (u *SourceUpsert) UpdateAbstract() *SourceUpsert {
	u.SetExcluded(source.FieldAbstract)
	return u
}

// ClearAbstract clears the value of the "abstract" field.
func (u *SourceUpsert) ClearAbstract() *SourceUpsert {
	u.SetNull(source.FieldAbstract)
	return u
}

// SetPdfURL sets the "pdf_url" field.
func (u *SourceUpsert) SetPdfURL(v string) *SourceUpsert {
	u.Set(source.FieldPdfURL, v)
	return u
}

// UpdatePdfURL sets the "pdf_url" field to the value that was provided on create.
func (u *SourceUpsert) UpdatePdfURL() *SourceUpsert {
	u.SetExcluded(source.FieldPdfURL)
	return u
}

// ClearPdfURL clears the value of the "pdf_url" field.
func (u *SourceUpsert) ClearPdfURL() *SourceUpsert {
	u.SetNull(source.FieldPdfURL)
	return u
}

// SetSourceType sets the "source_type" field.
func (u *SourceUpsert) SetSourceType(v string) *SourceUpsert {
	u.Set(source.FieldSourceType, v)
	return u
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *SourceUpsert) UpdateSourceType() *SourceUpsert {
	u.SetExcluded(source.FieldSourceType)
	return u
}

// SetConnector sets the "connector" field.
func (u *SourceUpsert) SetConnector(v string) *SourceUpsert {
	u.Set(source.FieldConnector, v)
	return u
}

// UpdateConnector sets the "connector" field to the value that was provided on create.
func (u *SourceUpsert) UpdateConnector() *SourceUpsert {
	u.SetExcluded(source.FieldConnector)
	return u
}

// SetCitationsCount sets the "citations_count" field.
func (u *SourceUpsert) SetCitationsCount(v int) *SourceUpsert {
	u.Set(source.FieldCitationsCount, v)
	return u
}

// UpdateCitationsCount sets the "citations_count" field to the value that was provided on create.
func (u *SourceUpsert) UpdateCitationsCount() *SourceUpsert {
	u.SetExcluded(source.FieldCitationsCount)
	return u
}

// AddCitationsCount adds v to the "citations_count" field.
func (u *SourceUpsert) AddCitationsCount(v int) *SourceUpsert {
	u.Add(source.FieldCitationsCount, v)
	return u
}

// ClearCitationsCount clears the value of the "citations_count" field.
func (u *SourceUpsert) ClearCitationsCount() *SourceUpsert {
	u.SetNull(source.FieldCitationsCount)
	return u
}

// SetExtraMetadata sets the "extra_metadata" field.
func (u *SourceUpsert) SetExtraMetadata(v map[string]interface{}) *SourceUpsert {
	u.Set(source.FieldExtraMetadata, v)
	return u
}

// UpdateExtraMetadata sets the "extra_metadata" field to the value that was provided on create.
func (u *SourceUpsert) UpdateExtraMetadata() *SourceUpsert {
	u.SetExcluded(source.FieldExtraMetadata)
	return u
}

// ClearExtraMetadata clears the value of the "extra_metadata" field.
func (u *SourceUpsert) ClearExtraMetadata() *SourceUpsert {
	u.SetNull(source.FieldExtraMetadata)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SourceUpsert) SetUpdatedAt(v time.Time) *SourceUpsert {
	u.Set(source.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SourceUpsert) UpdateUpdatedAt() *SourceUpsert {
	u.SetExcluded(source.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(source.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceUpsertOne) UpdateNewValues() *SourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(source.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(source.FieldTenantID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(source.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Source.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SourceUpsertOne) Ignore() *SourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceUpsertOne) DoNothing() *SourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceCreate.OnConflict
// documentation for more info.
func (u *SourceUpsertOne) Update(set func(*SourceUpsert)) *SourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetCanonicalID sets the "canonical_id" field.
func (u *SourceUpsertOne) SetCanonicalID(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetCanonicalID(v)
	})
}

// UpdateCanonicalID sets the "canonical_id" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateCanonicalID() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateCanonicalID()
	})
}

// SetDoi sets the "doi" field.
func (u *SourceUpsertOne) SetDoi(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetDoi(v)
	})
}

// UpdateDoi sets the "doi" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateDoi() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateDoi()
	})
}

// ClearDoi clears the value of the "doi" field.
func (u *SourceUpsertOne) ClearDoi() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.ClearDoi()
	})
}

// SetArxivID sets the "arxiv_id" field.
func (u *SourceUpsertOne) SetArxivID(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetArxivID(v)
	})
}

// UpdateArxivID sets the "arxiv_id" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateArxivID() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateArxivID()
	})
}

// ClearArxivID clears the value of the "arxiv_id" field.
func (u *SourceUpsertOne) ClearArxivID() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.ClearArxivID()
	})
}

// SetOpenalexID sets the "openalex_id" field.
func (u *SourceUpsertOne) SetOpenalexID(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetOpenalexID(v)
	})
}

// UpdateOpenalexID sets the "openalex_id" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateOpenalexID() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateOpenalexID()
	})
}

// ClearOpenalexID clears the value of the "openalex_id" field.
func (u *SourceUpsertOne) ClearOpenalexID() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.ClearOpenalexID()
	})
}

// SetURL sets the "url" field.
func (u *SourceUpsertOne) SetURL(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateURL() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateURL()
	})
}

// ClearURL clears the value of the "url" field.
func (u *SourceUpsertOne) ClearURL() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.ClearURL()
	})
}

// SetTitle sets the "title" field.
func (u *SourceUpsertOne) SetTitle(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateTitle() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateTitle()
	})
}

// SetAuthors sets the "authors" field.
func (u *SourceUpsertOne) SetAuthors(v []string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetAuthors(v)
	})
}

// UpdateAuthors sets the "authors" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateAuthors() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateAuthors()
	})
}

// ClearAuthors clears the value of the "authors" field.
func (u *SourceUpsertOne) ClearAuthors() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.ClearAuthors()
	})
}

// SetYear sets the "year" field.
func (u *SourceUpsertOne) SetYear(v int) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetYear(v)
	})
}

// AddYear adds v to the "year" field.
func (u *SourceUpsertOne) AddYear(v int) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.AddYear(v)
	})
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateYear() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateYear()
	})
}

// ClearYear clears the value of the "year" field.
func (u *SourceUpsertOne) ClearYear() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.ClearYear()
	})
}

// SetAbstract sets the "abstract" field.
func (u *SourceUpsertOne) SetAbstract(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetAbstract(v)
	})
}

// UpdateAbstract sets the "abstract" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateAbstract() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateAbstract()
	})
}

// ClearAbstract clears the value of the "abstract" field.
func (u *SourceUpsertOne) ClearAbstract() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.ClearAbstract()
	})
}

// SetPdfURL sets the "pdf_url" field.
func (u *SourceUpsertOne) SetPdfURL(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetPdfURL(v)
	})
}

// UpdatePdfURL sets the "pdf_url" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdatePdfURL() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdatePdfURL()
	})
}

// ClearPdfURL clears the value of the "pdf_url" field.
func (u *SourceUpsertOne) ClearPdfURL() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.ClearPdfURL()
	})
}

// SetSourceType sets the "source_type" field.
func (u *SourceUpsertOne) SetSourceType(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetSourceType(v)
	})
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateSourceType() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateSourceType()
	})
}

// SetConnector sets the "connector" field.
func (u *SourceUpsertOne) SetConnector(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetConnector(v)
	})
}

// UpdateConnector sets the "connector" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateConnector() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateConnector()
	})
}

// SetCitationsCount sets the "citations_count" field.
func (u *SourceUpsertOne) SetCitationsCount(v int) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetCitationsCount(v)
	})
}

// AddCitationsCount adds v to the "citations_count" field.
func (u *SourceUpsertOne) AddCitationsCount(v int) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.AddCitationsCount(v)
	})
}

// UpdateCitationsCount sets the "citations_count" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateCitationsCount() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateCitationsCount()
	})
}

// ClearCitationsCount clears the value of the "citations_count" field.
func (u *SourceUpsertOne) ClearCitationsCount() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.ClearCitationsCount()
	})
}

// SetExtraMetadata sets the "extra_metadata" field.
func (u *SourceUpsertOne) SetExtraMetadata(v map[string]interface{}) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetExtraMetadata(v)
	})
}

// UpdateExtraMetadata sets the "extra_metadata" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateExtraMetadata() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateExtraMetadata()
	})
}

// ClearExtraMetadata clears the value of the "extra_metadata" field.
func (u *SourceUpsertOne) ClearExtraMetadata() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.ClearExtraMetadata()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SourceUpsertOne) SetUpdatedAt(v time.Time) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateUpdatedAt() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SourceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SourceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SourceUpsertOne.ID is not supported by MySQL driver. Use SourceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SourceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SourceCreateBulk is the builder for creating many Source entities in bulk.
type SourceCreateBulk struct {
	config
	err      error
	builders []*SourceCreate
	conflict []sql.ConflictOption
}

// Save creates the Source entities in the database.
func (_c *SourceCreateBulk) Save(ctx context.Context) ([]*Source, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Source, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceMutation)
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
func (_c *SourceCreateBulk) SaveX(ctx context.Context) []*Source {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Source.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceCreateBulk) OnConflict(opts ...sql.ConflictOption) *SourceUpsertBulk {
	_c.conflict = opts
	return &SourceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceCreateBulk) OnConflictColumns(columns ...string) *SourceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceUpsertBulk{
		create: _c,
	}
}

// SourceUpsertBulk is the builder for "upsert"-ing
// a bulk of Source nodes.
type SourceUpsertBulk struct {
	create *SourceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(source.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceUpsertBulk) UpdateNewValues() *SourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(source.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(source.FieldTenantID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(source.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SourceUpsertBulk) Ignore() *SourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceUpsertBulk) DoNothing() *SourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceCreateBulk.OnConflict
// documentation for more info.
func (u *SourceUpsertBulk) Update(set func(*SourceUpsert)) *SourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetCanonicalID sets the "canonical_id" field.
func (u *SourceUpsertBulk) SetCanonicalID(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetCanonicalID(v)
	})
}

// UpdateCanonicalID sets the "canonical_id" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateCanonicalID() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateCanonicalID()
	})
}

// SetDoi sets the "doi" field.
func (u *SourceUpsertBulk) SetDoi(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetDoi(v)
	})
}

// UpdateDoi sets the "doi" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateDoi() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateDoi()
	})
}

// ClearDoi clears the value of the "doi" field.
func (u *SourceUpsertBulk) ClearDoi() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.ClearDoi()
	})
}

// SetArxivID sets the "arxiv_id" field.
func (u *SourceUpsertBulk) SetArxivID(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetArxivID(v)
	})
}

// UpdateArxivID sets the "arxiv_id" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateArxivID() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateArxivID()
	})
}

// ClearArxivID clears the value of the "arxiv_id" field.
func (u *SourceUpsertBulk) ClearArxivID() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.ClearArxivID()
	})
}

// SetOpenalexID sets the "openalex_id" field.
func (u *SourceUpsertBulk) SetOpenalexID(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetOpenalexID(v)
	})
}

// UpdateOpenalexID sets the "openalex_id" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateOpenalexID() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateOpenalexID()
	})
}

// ClearOpenalexID clears the value of the "openalex_id" field.
func (u *SourceUpsertBulk) ClearOpenalexID() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.ClearOpenalexID()
	})
}

// SetURL sets the "url" field.
func (u *SourceUpsertBulk) SetURL(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateURL() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateURL()
	})
}

// ClearURL clears the value of the "url" field.
func (u *SourceUpsertBulk) ClearURL() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.ClearURL()
	})
}

// SetTitle sets the "title" field.
func (u *SourceUpsertBulk) SetTitle(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateTitle() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateTitle()
	})
}

// SetAuthors sets the "authors" field.
func (u *SourceUpsertBulk) SetAuthors(v []string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetAuthors(v)
	})
}

// UpdateAuthors sets the "authors" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateAuthors() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateAuthors()
	})
}

// ClearAuthors clears the value of the "authors" field.
func (u *SourceUpsertBulk) ClearAuthors() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.ClearAuthors()
	})
}

// SetYear sets the "year" field.
func (u *SourceUpsertBulk) SetYear(v int) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetYear(v)
	})
}

// AddYear adds v to the "year" field.
func (u *SourceUpsertBulk) AddYear(v int) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.AddYear(v)
	})
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateYear() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateYear()
	})
}

// ClearYear clears the value of the "year" field.
func (u *SourceUpsertBulk) ClearYear() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.ClearYear()
	})
}

// SetAbstract sets the "abstract" field.
func (u *SourceUpsertBulk) SetAbstract(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetAbstract(v)
	})
}

// UpdateAbstract sets the "abstract" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateAbstract() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateAbstract()
	})
}

// ClearAbstract clears the value of the "abstract" field.
func (u *SourceUpsertBulk) ClearAbstract() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.ClearAbstract()
	})
}

// SetPdfURL sets the "pdf_url" field.
func (u *SourceUpsertBulk) SetPdfURL(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetPdfURL(v)
	})
}

// UpdatePdfURL sets the "pdf_url" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdatePdfURL() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdatePdfURL()
	})
}

// ClearPdfURL clears the value of the "pdf_url" field.
func (u *SourceUpsertBulk) ClearPdfURL() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.ClearPdfURL()
	})
}

// SetSourceType sets the "source_type" field.
func (u *SourceUpsertBulk) SetSourceType(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetSourceType(v)
	})
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateSourceType() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateSourceType()
	})
}

// SetConnector sets the "connector" field.
func (u *SourceUpsertBulk) SetConnector(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetConnector(v)
	})
}

// UpdateConnector sets the "connector" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateConnector() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateConnector()
	})
}

// SetCitationsCount sets the "citations_count" field.
func (u *SourceUpsertBulk) SetCitationsCount(v int) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetCitationsCount(v)
	})
}

// AddCitationsCount adds v to the "citations_count" field.
func (u *SourceUpsertBulk) AddCitationsCount(v int) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.AddCitationsCount(v)
	})
}

// UpdateCitationsCount sets the "citations_count" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateCitationsCount() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateCitationsCount()
	})
}

// ClearCitationsCount clears the value of the "citations_count" field.
func (u *SourceUpsertBulk) ClearCitationsCount() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.ClearCitationsCount()
	})
}

// SetExtraMetadata sets the "extra_metadata" field.
func (u *SourceUpsertBulk) SetExtraMetadata(v map[string]interface{}) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetExtraMetadata(v)
	})
}

// UpdateExtraMetadata sets the "extra_metadata" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateExtraMetadata() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateExtraMetadata()
	})
}

// ClearExtraMetadata clears the value of the "extra_metadata" field.
func (u *SourceUpsertBulk) ClearExtraMetadata() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.ClearExtraMetadata()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SourceUpsertBulk) SetUpdatedAt(v time.Time) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateUpdatedAt() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SourceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SourceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
