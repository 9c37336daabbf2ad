// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/inquiro-ai/inquiro/ent/predicate"
	"github.com/inquiro-ai/inquiro/ent/source"
	"github.com/inquiro-ai/inquiro/ent/sourcesnapshot"
	"github.com/inquiro-ai/inquiro/ent/sourcesnippet"
)

// SourceUpdate is the builder for updating Source entities.
type SourceUpdate struct {
	config
	hooks     []Hook
	mutation  *SourceMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the SourceUpdate builder.
func (_u *SourceUpdate) Where(ps ...predicate.Source) *SourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCanonicalID sets the "canonical_id" field.
func (_u *SourceUpdate) SetCanonicalID(v string) *SourceUpdate {
	_u.mutation.SetCanonicalID(v)
	return _u
}

// SetNillableCanonicalID sets the "canonical_id" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableCanonicalID(v *string) *SourceUpdate {
	if v != nil {
		_u.SetCanonicalID(*v)
	}
	return _u
}

// SetDoi sets the "doi" field.
func (_u *SourceUpdate) SetDoi(v string) *SourceUpdate {
	_u.mutation.SetDoi(v)
	return _u
}

// SetNillableDoi sets the "doi" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableDoi(v *string) *SourceUpdate {
	if v != nil {
		_u.SetDoi(*v)
	}
	return _u
}

// ClearDoi clears the value of the "doi" field.
func (_u *SourceUpdate) ClearDoi() *SourceUpdate {
	_u.mutation.ClearDoi()
	return _u
}

// SetArxivID sets the "arxiv_id" field.
func (_u *SourceUpdate) SetArxivID(v string) *SourceUpdate {
	_u.mutation.SetArxivID(v)
	return _u
}

// SetNillableArxivID sets the "arxiv_id" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableArxivID(v *string) *SourceUpdate {
	if v != nil {
		_u.SetArxivID(*v)
	}
	return _u
}

// ClearArxivID clears the value of the "arxiv_id" field.
func (_u *SourceUpdate) ClearArxivID() *SourceUpdate {
	_u.mutation.ClearArxivID()
	return _u
}

// SetOpenalexID sets the "openalex_id" field.
func (_u *SourceUpdate) SetOpenalexID(v string) *SourceUpdate {
	_u.mutation.SetOpenalexID(v)
	return _u
}

// SetNillableOpenalexID sets the "openalex_id" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableOpenalexID(v *string) *SourceUpdate {
	if v != nil {
		_u.SetOpenalexID(*v)
	}
	return _u
}

// ClearOpenalexID clears the value of the "openalex_id" field.
func (_u *SourceUpdate) ClearOpenalexID() *SourceUpdate {
	_u.mutation.ClearOpenalexID()
	return _u
}

// SetURL sets the "url" field.
func (_u *SourceUpdate) SetURL(v string) *SourceUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableURL(v *string) *SourceUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *SourceUpdate) ClearURL() *SourceUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetTitle sets the "title" field.
func (_u *SourceUpdate) SetTitle(v string) *SourceUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableTitle(v *string) *SourceUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAuthors sets the "authors" field.
func (_u *SourceUpdate) SetAuthors(v []string) *SourceUpdate {
	_u.mutation.SetAuthors(v)
	return _u
}

// AppendAuthors appends value to the "authors" field.
func (_u *SourceUpdate) AppendAuthors(v []string) *SourceUpdate {
	_u.mutation.AppendAuthors(v)
	return _u
}

// ClearAuthors clears the value of the "authors" field.
func (_u *SourceUpdate) ClearAuthors() *SourceUpdate {
	_u.mutation.ClearAuthors()
	return _u
}

// SetYear sets the "year" field.
func (_u *SourceUpdate) SetYear(v int) *SourceUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableYear(v *int) *SourceUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *SourceUpdate) AddYear(v int) *SourceUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *SourceUpdate) ClearYear() *SourceUpdate {
	_u.mutation.ClearYear()
	return _u
}

// SetAbstract sets the "abstract" field.
func (_u *SourceUpdate) SetAbstract(v string) *SourceUpdate {
	_u.mutation.SetAbstract(v)
	return _u
}

// SetNillableAbstract sets the "abstract" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableAbstract(v *string) *SourceUpdate {
	if v != nil {
		_u.SetAbstract(*v)
	}
	return _u
}

// ClearAbstract clears the value of the "abstract" field.
func (_u *SourceUpdate) ClearAbstract() *SourceUpdate {
	_u.mutation.ClearAbstract()
	return _u
}

// SetPdfURL sets the "pdf_url" field.
func (_u *SourceUpdate) SetPdfURL(v string) *SourceUpdate {
	_u.mutation.SetPdfURL(v)
	return _u
}

// SetNillablePdfURL sets the "pdf_url" field if the given value is not nil.
func (_u *SourceUpdate) SetNillablePdfURL(v *string) *SourceUpdate {
	if v != nil {
		_u.SetPdfURL(*v)
	}
	return _u
}

// ClearPdfURL clears the value of the "pdf_url" field.
func (_u *SourceUpdate) ClearPdfURL() *SourceUpdate {
	_u.mutation.ClearPdfURL()
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *SourceUpdate) SetSourceType(v string) *SourceUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableSourceType(v *string) *SourceUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetConnector sets the "connector" field.
func (_u *SourceUpdate) SetConnector(v string) *SourceUpdate {
	_u.mutation.SetConnector(v)
	return _u
}

// SetNillableConnector sets the "connector" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableConnector(v *string) *SourceUpdate {
	if v != nil {
		_u.SetConnector(*v)
	}
	return _u
}

// SetCitationsCount sets the "citations_count" field.
func (_u *SourceUpdate) SetCitationsCount(v int) *SourceUpdate {
	_u.mutation.ResetCitationsCount()
	_u.mutation.SetCitationsCount(v)
	return _u
}

// SetNillableCitationsCount sets the "citations_count" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableCitationsCount(v *int) *SourceUpdate {
	if v != nil {
		_u.SetCitationsCount(*v)
	}
	return _u
}

// AddCitationsCount adds value to the "citations_count" field.
func (_u *SourceUpdate) AddCitationsCount(v int) *SourceUpdate {
	_u.mutation.AddCitationsCount(v)
	return _u
}

// ClearCitationsCount clears the value of the "citations_count" field.
func (_u *SourceUpdate) ClearCitationsCount() *SourceUpdate {
	_u.mutation.ClearCitationsCount()
	return _u
}

// SetExtraMetadata sets the "extra_metadata" field.
func (_u *SourceUpdate) SetExtraMetadata(v map[string]interface{}) *SourceUpdate {
	_u.mutation.SetExtraMetadata(v)
	return _u
}

// ClearExtraMetadata clears the value of the "extra_metadata" field.
func (_u *SourceUpdate) ClearExtraMetadata() *SourceUpdate {
	_u.mutation.ClearExtraMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SourceUpdate) SetUpdatedAt(v time.Time) *SourceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSnapshotIDs adds the "snapshots" edge to the SourceSnapshot entity by IDs.
func (_u *SourceUpdate) AddSnapshotIDs(ids ...string) *SourceUpdate {
	_u.mutation.AddSnapshotIDs(ids...)
	return _u
}

// AddSnapshots adds the "snapshots" edges to the SourceSnapshot entity.
func (_u *SourceUpdate) AddSnapshots(v ...*SourceSnapshot) *SourceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnapshotIDs(ids...)
}

// AddSnippetIDs adds the "snippets" edge to the SourceSnippet entity by IDs.
func (_u *SourceUpdate) AddSnippetIDs(ids ...string) *SourceUpdate {
	_u.mutation.AddSnippetIDs(ids...)
	return _u
}

// AddSnippets adds the "snippets" edges to the SourceSnippet entity.
func (_u *SourceUpdate) AddSnippets(v ...*SourceSnippet) *SourceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnippetIDs(ids...)
}

// Mutation returns the SourceMutation object of the builder.
func (_u *SourceUpdate) Mutation() *SourceMutation {
	return _u.mutation
}

// ClearSnapshots clears all "snapshots" edges to the SourceSnapshot entity.
func (_u *SourceUpdate) ClearSnapshots() *SourceUpdate {
	_u.mutation.ClearSnapshots()
	return _u
}

// RemoveSnapshotIDs removes the "snapshots" edge to SourceSnapshot entities by IDs.
func (_u *SourceUpdate) RemoveSnapshotIDs(ids ...string) *SourceUpdate {
	_u.mutation.RemoveSnapshotIDs(ids...)
	return _u
}

// RemoveSnapshots removes "snapshots" edges to SourceSnapshot entities.
func (_u *SourceUpdate) RemoveSnapshots(v ...*SourceSnapshot) *SourceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnapshotIDs(ids...)
}

// ClearSnippets clears all "snippets" edges to the SourceSnippet entity.
func (_u *SourceUpdate) ClearSnippets() *SourceUpdate {
	_u.mutation.ClearSnippets()
	return _u
}

// RemoveSnippetIDs removes the "snippets" edge to SourceSnippet entities by IDs.
func (_u *SourceUpdate) RemoveSnippetIDs(ids ...string) *SourceUpdate {
	_u.mutation.RemoveSnippetIDs(ids...)
	return _u
}

// RemoveSnippets removes "snippets" edges to SourceSnippet entities.
func (_u *SourceUpdate) RemoveSnippets(v ...*SourceSnippet) *SourceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnippetIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := source.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SourceUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SourceUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(source.Table, source.Columns, sqlgraph.NewFieldSpec(source.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CanonicalID(); ok {
		_spec.SetField(source.FieldCanonicalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Doi(); ok {
		_spec.SetField(source.FieldDoi, field.TypeString, value)
	}
	if _u.mutation.DoiCleared() {
		_spec.ClearField(source.FieldDoi, field.TypeString)
	}
	if value, ok := _u.mutation.ArxivID(); ok {
		_spec.SetField(source.FieldArxivID, field.TypeString, value)
	}
	if _u.mutation.ArxivIDCleared() {
		_spec.ClearField(source.FieldArxivID, field.TypeString)
	}
	if value, ok := _u.mutation.OpenalexID(); ok {
		_spec.SetField(source.FieldOpenalexID, field.TypeString, value)
	}
	if _u.mutation.OpenalexIDCleared() {
		_spec.ClearField(source.FieldOpenalexID, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(source.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(source.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(source.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Authors(); ok {
		_spec.SetField(source.FieldAuthors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAuthors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, source.FieldAuthors, value)
		})
	}
	if _u.mutation.AuthorsCleared() {
		_spec.ClearField(source.FieldAuthors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(source.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(source.FieldYear, field.TypeInt, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(source.FieldYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Abstract(); ok {
		_spec.SetField(source.FieldAbstract, field.TypeString, value)
	}
	if _u.mutation.AbstractCleared() {
		_spec.ClearField(source.FieldAbstract, field.TypeString)
	}
	if value, ok := _u.mutation.PdfURL(); ok {
		_spec.SetField(source.FieldPdfURL, field.TypeString, value)
	}
	if _u.mutation.PdfURLCleared() {
		_spec.ClearField(source.FieldPdfURL, field.TypeString)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(source.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Connector(); ok {
		_spec.SetField(source.FieldConnector, field.TypeString, value)
	}
	if value, ok := _u.mutation.CitationsCount(); ok {
		_spec.SetField(source.FieldCitationsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCitationsCount(); ok {
		_spec.AddField(source.FieldCitationsCount, field.TypeInt, value)
	}
	if _u.mutation.CitationsCountCleared() {
		_spec.ClearField(source.FieldCitationsCount, field.TypeInt)
	}
	if value, ok := _u.mutation.ExtraMetadata(); ok {
		_spec.SetField(source.FieldExtraMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ExtraMetadataCleared() {
		_spec.ClearField(source.FieldExtraMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(source.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnapshotsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SnippetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnippetsIDs(); len(nodes) > 0 && !_u.mutation.SnippetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnippetsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{source.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceUpdateOne is the builder for updating a single Source entity.
type SourceUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *SourceMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetCanonicalID sets the "canonical_id" field.
func (_u *SourceUpdateOne) SetCanonicalID(v string) *SourceUpdateOne {
	_u.mutation.SetCanonicalID(v)
	return _u
}

// SetNillableCanonicalID sets the "canonical_id" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableCanonicalID(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetCanonicalID(*v)
	}
	return _u
}

// SetDoi sets the "doi" field.
func (_u *SourceUpdateOne) SetDoi(v string) *SourceUpdateOne {
	_u.mutation.SetDoi(v)
	return _u
}

// SetNillableDoi sets the "doi" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableDoi(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetDoi(*v)
	}
	return _u
}

// ClearDoi clears the value of the "doi" field.
func (_u *SourceUpdateOne) ClearDoi() *SourceUpdateOne {
	_u.mutation.ClearDoi()
	return _u
}

// SetArxivID sets the "arxiv_id" field.
func (_u *SourceUpdateOne) SetArxivID(v string) *SourceUpdateOne {
	_u.mutation.SetArxivID(v)
	return _u
}

// SetNillableArxivID sets the "arxiv_id" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableArxivID(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetArxivID(*v)
	}
	return _u
}

// ClearArxivID clears the value of the "arxiv_id" field.
func (_u *SourceUpdateOne) ClearArxivID() *SourceUpdateOne {
	_u.mutation.ClearArxivID()
	return _u
}

// SetOpenalexID sets the "openalex_id" field.
func (_u *SourceUpdateOne) SetOpenalexID(v string) *SourceUpdateOne {
	_u.mutation.SetOpenalexID(v)
	return _u
}

// SetNillableOpenalexID sets the "openalex_id" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableOpenalexID(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetOpenalexID(*v)
	}
	return _u
}

// ClearOpenalexID clears the value of the "openalex_id" field.
func (_u *SourceUpdateOne) ClearOpenalexID() *SourceUpdateOne {
	_u.mutation.ClearOpenalexID()
	return _u
}

// SetURL sets the "url" field.
func (_u *SourceUpdateOne) SetURL(v string) *SourceUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableURL(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *SourceUpdateOne) ClearURL() *SourceUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetTitle sets the "title" field.
func (_u *SourceUpdateOne) SetTitle(v string) *SourceUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableTitle(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetAuthors sets the "authors" field.
func (_u *SourceUpdateOne) SetAuthors(v []string) *SourceUpdateOne {
	_u.mutation.SetAuthors(v)
	return _u
}

// AppendAuthors appends value to the "authors" field.
func (_u *SourceUpdateOne) AppendAuthors(v []string) *SourceUpdateOne {
	_u.mutation.AppendAuthors(v)
	return _u
}

// ClearAuthors clears the value of the "authors" field.
func (_u *SourceUpdateOne) ClearAuthors() *SourceUpdateOne {
	_u.mutation.ClearAuthors()
	return _u
}

// SetYear sets the "year" field.
func (_u *SourceUpdateOne) SetYear(v int) *SourceUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableYear(v *int) *SourceUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *SourceUpdateOne) AddYear(v int) *SourceUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *SourceUpdateOne) ClearYear() *SourceUpdateOne {
	_u.mutation.ClearYear()
	return _u
}

// SetAbstract sets the "abstract" field.
func (_u *SourceUpdateOne) SetAbstract(v string) *SourceUpdateOne {
	_u.mutation.SetAbstract(v)
	return _u
}

// SetNillableAbstract sets the "abstract" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableAbstract(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetAbstract(*v)
	}
	return _u
}

// ClearAbstract clears the value of the "abstract" field.
func (_u *SourceUpdateOne) ClearAbstract() *SourceUpdateOne {
	_u.mutation.ClearAbstract()
	return _u
}

// SetPdfURL sets the "pdf_url" field.
func (_u *SourceUpdateOne) SetPdfURL(v string) *SourceUpdateOne {
	_u.mutation.SetPdfURL(v)
	return _u
}

// SetNillablePdfURL sets the "pdf_url" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillablePdfURL(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetPdfURL(*v)
	}
	return _u
}

// ClearPdfURL clears the value of the "pdf_url" field.
func (_u *SourceUpdateOne) ClearPdfURL() *SourceUpdateOne {
	_u.mutation.ClearPdfURL()
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *SourceUpdateOne) SetSourceType(v string) *SourceUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableSourceType(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetConnector sets the "connector" field.
func (_u *SourceUpdateOne) SetConnector(v string) *SourceUpdateOne {
	_u.mutation.SetConnector(v)
	return _u
}

// SetNillableConnector sets the "connector" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableConnector(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetConnector(*v)
	}
	return _u
}

// SetCitationsCount sets the "citations_count" field.
func (_u *SourceUpdateOne) SetCitationsCount(v int) *SourceUpdateOne {
	_u.mutation.ResetCitationsCount()
	_u.mutation.SetCitationsCount(v)
	return _u
}

// SetNillableCitationsCount sets the "citations_count" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableCitationsCount(v *int) *SourceUpdateOne {
	if v != nil {
		_u.SetCitationsCount(*v)
	}
	return _u
}

// AddCitationsCount adds value to the "citations_count" field.
func (_u *SourceUpdateOne) AddCitationsCount(v int) *SourceUpdateOne {
	_u.mutation.AddCitationsCount(v)
	return _u
}

// ClearCitationsCount clears the value of the "citations_count" field.
func (_u *SourceUpdateOne) ClearCitationsCount() *SourceUpdateOne {
	_u.mutation.ClearCitationsCount()
	return _u
}

// SetExtraMetadata sets the "extra_metadata" field.
func (_u *SourceUpdateOne) SetExtraMetadata(v map[string]interface{}) *SourceUpdateOne {
	_u.mutation.SetExtraMetadata(v)
	return _u
}

// ClearExtraMetadata clears the value of the "extra_metadata" field.
func (_u *SourceUpdateOne) ClearExtraMetadata() *SourceUpdateOne {
	_u.mutation.ClearExtraMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SourceUpdateOne) SetUpdatedAt(v time.Time) *SourceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSnapshotIDs adds the "snapshots" edge to the SourceSnapshot entity by IDs.
func (_u *SourceUpdateOne) AddSnapshotIDs(ids ...string) *SourceUpdateOne {
	_u.mutation.AddSnapshotIDs(ids...)
	return _u
}

// AddSnapshots adds the "snapshots" edges to the SourceSnapshot entity.
func (_u *SourceUpdateOne) AddSnapshots(v ...*SourceSnapshot) *SourceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnapshotIDs(ids...)
}

// AddSnippetIDs adds the "snippets" edge to the SourceSnippet entity by IDs.
func (_u *SourceUpdateOne) AddSnippetIDs(ids ...string) *SourceUpdateOne {
	_u.mutation.AddSnippetIDs(ids...)
	return _u
}

// AddSnippets adds the "snippets" edges to the SourceSnippet entity.
func (_u *SourceUpdateOne) AddSnippets(v ...*SourceSnippet) *SourceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSnippetIDs(ids...)
}

// Mutation returns the SourceMutation object of the builder.
func (_u *SourceUpdateOne) Mutation() *SourceMutation {
	return _u.mutation
}

// ClearSnapshots clears all "snapshots" edges to the SourceSnapshot entity.
func (_u *SourceUpdateOne) ClearSnapshots() *SourceUpdateOne {
	_u.mutation.ClearSnapshots()
	return _u
}

// RemoveSnapshotIDs removes the "snapshots" edge to SourceSnapshot entities by IDs.
func (_u *SourceUpdateOne) RemoveSnapshotIDs(ids ...string) *SourceUpdateOne {
	_u.mutation.RemoveSnapshotIDs(ids...)
	return _u
}

// RemoveSnapshots removes "snapshots" edges to SourceSnapshot entities.
func (_u *SourceUpdateOne) RemoveSnapshots(v ...*SourceSnapshot) *SourceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnapshotIDs(ids...)
}

// ClearSnippets clears all "snippets" edges to the SourceSnippet entity.
func (_u *SourceUpdateOne) ClearSnippets() *SourceUpdateOne {
	_u.mutation.ClearSnippets()
	return _u
}

// RemoveSnippetIDs removes the "snippets" edge to SourceSnippet entities by IDs.
func (_u *SourceUpdateOne) RemoveSnippetIDs(ids ...string) *SourceUpdateOne {
	_u.mutation.RemoveSnippetIDs(ids...)
	return _u
}

// RemoveSnippets removes "snippets" edges to SourceSnippet entities.
func (_u *SourceUpdateOne) RemoveSnippets(v ...*SourceSnippet) *SourceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSnippetIDs(ids...)
}

// Where appends a list predicates to the SourceUpdate builder.
func (_u *SourceUpdateOne) Where(ps ...predicate.Source) *SourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceUpdateOne) Select(field string, fields ...string) *SourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Source entity.
func (_u *SourceUpdateOne) Save(ctx context.Context) (*Source, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceUpdateOne) SaveX(ctx context.Context) *Source {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := source.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *SourceUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *SourceUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *SourceUpdateOne) sqlSave(ctx context.Context) (_node *Source, err error) {
	_spec := sqlgraph.NewUpdateSpec(source.Table, source.Columns, sqlgraph.NewFieldSpec(source.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Source.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, source.FieldID)
		for _, f := range fields {
			if !source.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != source.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CanonicalID(); ok {
		_spec.SetField(source.FieldCanonicalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Doi(); ok {
		_spec.SetField(source.FieldDoi, field.TypeString, value)
	}
	if _u.mutation.DoiCleared() {
		_spec.ClearField(source.FieldDoi, field.TypeString)
	}
	if value, ok := _u.mutation.ArxivID(); ok {
		_spec.SetField(source.FieldArxivID, field.TypeString, value)
	}
	if _u.mutation.ArxivIDCleared() {
		_spec.ClearField(source.FieldArxivID, field.TypeString)
	}
	if value, ok := _u.mutation.OpenalexID(); ok {
		_spec.SetField(source.FieldOpenalexID, field.TypeString, value)
	}
	if _u.mutation.OpenalexIDCleared() {
		_spec.ClearField(source.FieldOpenalexID, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(source.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(source.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(source.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Authors(); ok {
		_spec.SetField(source.FieldAuthors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAuthors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, source.FieldAuthors, value)
		})
	}
	if _u.mutation.AuthorsCleared() {
		_spec.ClearField(source.FieldAuthors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(source.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(source.FieldYear, field.TypeInt, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(source.FieldYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Abstract(); ok {
		_spec.SetField(source.FieldAbstract, field.TypeString, value)
	}
	if _u.mutation.AbstractCleared() {
		_spec.ClearField(source.FieldAbstract, field.TypeString)
	}
	if value, ok := _u.mutation.PdfURL(); ok {
		_spec.SetField(source.FieldPdfURL, field.TypeString, value)
	}
	if _u.mutation.PdfURLCleared() {
		_spec.ClearField(source.FieldPdfURL, field.TypeString)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(source.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Connector(); ok {
		_spec.SetField(source.FieldConnector, field.TypeString, value)
	}
	if value, ok := _u.mutation.CitationsCount(); ok {
		_spec.SetField(source.FieldCitationsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCitationsCount(); ok {
		_spec.AddField(source.FieldCitationsCount, field.TypeInt, value)
	}
	if _u.mutation.CitationsCountCleared() {
		_spec.ClearField(source.FieldCitationsCount, field.TypeInt)
	}
	if value, ok := _u.mutation.ExtraMetadata(); ok {
		_spec.SetField(source.FieldExtraMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ExtraMetadataCleared() {
		_spec.ClearField(source.FieldExtraMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(source.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnapshotsIDs(); len(nodes) > 0 && !_u.mutation.SnapshotsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnapshotsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SnippetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSnippetsIDs(); len(nodes) > 0 && !_u.mutation.SnippetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SnippetsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &Source{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{source.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
