// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/inquiro-ai/inquiro/ent/artifact"
	"github.com/inquiro-ai/inquiro/ent/draftsection"
	"github.com/inquiro-ai/inquiro/ent/job"
	"github.com/inquiro-ai/inquiro/ent/outlinenote"
	"github.com/inquiro-ai/inquiro/ent/predicate"
	"github.com/inquiro-ai/inquiro/ent/project"
	"github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/ent/runcheckpoint"
	"github.com/inquiro-ai/inquiro/ent/runevent"
	"github.com/inquiro-ai/inquiro/ent/runsection"
	"github.com/inquiro-ai/inquiro/ent/runsource"
	"github.com/inquiro-ai/inquiro/ent/sectionevidence"
	"github.com/inquiro-ai/inquiro/ent/sectionreview"
	"github.com/inquiro-ai/inquiro/ent/source"
	"github.com/inquiro-ai/inquiro/ent/sourceembedding"
	"github.com/inquiro-ai/inquiro/ent/sourcesnapshot"
	"github.com/inquiro-ai/inquiro/ent/sourcesnippet"
	pgvector "github.com/pgvector/pgvector-go"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArtifact        = "Artifact"
	TypeDraftSection    = "DraftSection"
	TypeJob             = "Job"
	TypeOutlineNote     = "OutlineNote"
	TypeProject         = "Project"
	TypeRun             = "Run"
	TypeRunCheckpoint   = "RunCheckpoint"
	TypeRunEvent        = "RunEvent"
	TypeRunSection      = "RunSection"
	TypeRunSource       = "RunSource"
	TypeSectionEvidence = "SectionEvidence"
	TypeSectionReview   = "SectionReview"
	TypeSource          = "Source"
	TypeSourceEmbedding = "SourceEmbedding"
	TypeSourceSnapshot  = "SourceSnapshot"
	TypeSourceSnippet   = "SourceSnippet"
)

// ArtifactMutation represents an operation that mutates the Artifact nodes in the graph.
type ArtifactMutation struct {
	config
	op             Op
	typ            string
	id             *string
	tenant_id      *string
	_type          *string
	blob_ref       *string
	mime_type      *string
	size_bytes     *int64
	addsize_bytes  *int64
	metadata       *map[string]interface{}
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	project        *string
	clearedproject bool
	run            *string
	clearedrun     bool
	done           bool
	oldValue       func(context.Context) (*Artifact, error)
	predicates     []predicate.Artifact
}

var _ ent.Mutation = (*ArtifactMutation)(nil)

// artifactOption allows management of the mutation configuration using functional options.
type artifactOption func(*ArtifactMutation)

// newArtifactMutation creates new mutation for the Artifact entity.
func newArtifactMutation(c config, op Op, opts ...artifactOption) *ArtifactMutation {
	m := &ArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArtifactID sets the ID field of the mutation.
func withArtifactID(id string) artifactOption {
	return func(m *ArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *Artifact
		)
		m.oldValue = func(ctx context.Context) (*Artifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Artifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArtifact sets the old Artifact of the mutation.
func withArtifact(node *Artifact) artifactOption {
	return func(m *ArtifactMutation) {
		m.oldValue = func(context.Context) (*Artifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Artifact entities.
func (m *ArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Artifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ArtifactMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ArtifactMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ArtifactMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *ArtifactMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ArtifactMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ArtifactMutation) ResetProjectID() {
	m.project = nil
}

// SetRunID sets the "run_id" field.
func (m *ArtifactMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ArtifactMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *ArtifactMutation) ClearRunID() {
	m.run = nil
	m.clearedFields[artifact.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *ArtifactMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[artifact.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ArtifactMutation) ResetRunID() {
	m.run = nil
	delete(m.clearedFields, artifact.FieldRunID)
}

// SetType sets the "type" field.
func (m *ArtifactMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *ArtifactMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ArtifactMutation) ResetType() {
	m._type = nil
}

// SetBlobRef sets the "blob_ref" field.
func (m *ArtifactMutation) SetBlobRef(s string) {
	m.blob_ref = &s
}

// BlobRef returns the value of the "blob_ref" field in the mutation.
func (m *ArtifactMutation) BlobRef() (r string, exists bool) {
	v := m.blob_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobRef returns the old "blob_ref" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldBlobRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobRef: %w", err)
	}
	return oldValue.BlobRef, nil
}

// ResetBlobRef resets all changes to the "blob_ref" field.
func (m *ArtifactMutation) ResetBlobRef() {
	m.blob_ref = nil
}

// SetMimeType sets the "mime_type" field.
func (m *ArtifactMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *ArtifactMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *ArtifactMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *ArtifactMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *ArtifactMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *ArtifactMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *ArtifactMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *ArtifactMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetMetadata sets the "metadata" field.
func (m *ArtifactMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ArtifactMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ArtifactMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[artifact.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ArtifactMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[artifact.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ArtifactMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, artifact.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ArtifactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ArtifactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ArtifactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ArtifactMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[artifact.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ArtifactMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ArtifactMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ArtifactMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearRun clears the "run" edge to the Run entity.
func (m *ArtifactMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[artifact.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *ArtifactMutation) RunCleared() bool {
	return m.RunIDCleared() || m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *ArtifactMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *ArtifactMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the ArtifactMutation builder.
func (m *ArtifactMutation) Where(ps ...predicate.Artifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Artifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Artifact).
func (m *ArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArtifactMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tenant_id != nil {
		fields = append(fields, artifact.FieldTenantID)
	}
	if m.project != nil {
		fields = append(fields, artifact.FieldProjectID)
	}
	if m.run != nil {
		fields = append(fields, artifact.FieldRunID)
	}
	if m._type != nil {
		fields = append(fields, artifact.FieldType)
	}
	if m.blob_ref != nil {
		fields = append(fields, artifact.FieldBlobRef)
	}
	if m.mime_type != nil {
		fields = append(fields, artifact.FieldMimeType)
	}
	if m.size_bytes != nil {
		fields = append(fields, artifact.FieldSizeBytes)
	}
	if m.metadata != nil {
		fields = append(fields, artifact.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, artifact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, artifact.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldTenantID:
		return m.TenantID()
	case artifact.FieldProjectID:
		return m.ProjectID()
	case artifact.FieldRunID:
		return m.RunID()
	case artifact.FieldType:
		return m.GetType()
	case artifact.FieldBlobRef:
		return m.BlobRef()
	case artifact.FieldMimeType:
		return m.MimeType()
	case artifact.FieldSizeBytes:
		return m.SizeBytes()
	case artifact.FieldMetadata:
		return m.Metadata()
	case artifact.FieldCreatedAt:
		return m.CreatedAt()
	case artifact.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case artifact.FieldTenantID:
		return m.OldTenantID(ctx)
	case artifact.FieldProjectID:
		return m.OldProjectID(ctx)
	case artifact.FieldRunID:
		return m.OldRunID(ctx)
	case artifact.FieldType:
		return m.OldType(ctx)
	case artifact.FieldBlobRef:
		return m.OldBlobRef(ctx)
	case artifact.FieldMimeType:
		return m.OldMimeType(ctx)
	case artifact.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case artifact.FieldMetadata:
		return m.OldMetadata(ctx)
	case artifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case artifact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Artifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case artifact.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case artifact.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case artifact.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case artifact.FieldBlobRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobRef(v)
		return nil
	case artifact.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case artifact.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case artifact.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case artifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case artifact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArtifactMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, artifact.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArtifactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArtifactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(artifact.FieldRunID) {
		fields = append(fields, artifact.FieldRunID)
	}
	if m.FieldCleared(artifact.FieldMetadata) {
		fields = append(fields, artifact.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArtifactMutation) ClearField(name string) error {
	switch name {
	case artifact.FieldRunID:
		m.ClearRunID()
		return nil
	case artifact.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Artifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArtifactMutation) ResetField(name string) error {
	switch name {
	case artifact.FieldTenantID:
		m.ResetTenantID()
		return nil
	case artifact.FieldProjectID:
		m.ResetProjectID()
		return nil
	case artifact.FieldRunID:
		m.ResetRunID()
		return nil
	case artifact.FieldType:
		m.ResetType()
		return nil
	case artifact.FieldBlobRef:
		m.ResetBlobRef()
		return nil
	case artifact.FieldMimeType:
		m.ResetMimeType()
		return nil
	case artifact.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case artifact.FieldMetadata:
		m.ResetMetadata()
		return nil
	case artifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case artifact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, artifact.EdgeProject)
	}
	if m.run != nil {
		edges = append(edges, artifact.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArtifactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case artifact.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case artifact.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, artifact.EdgeProject)
	}
	if m.clearedrun {
		edges = append(edges, artifact.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArtifactMutation) EdgeCleared(name string) bool {
	switch name {
	case artifact.EdgeProject:
		return m.clearedproject
	case artifact.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArtifactMutation) ClearEdge(name string) error {
	switch name {
	case artifact.EdgeProject:
		m.ClearProject()
		return nil
	case artifact.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown Artifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArtifactMutation) ResetEdge(name string) error {
	switch name {
	case artifact.EdgeProject:
		m.ResetProject()
		return nil
	case artifact.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown Artifact edge %s", name)
}

// DraftSectionMutation represents an operation that mutates the DraftSection nodes in the graph.
type DraftSectionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	tenant_id       *string
	section_id      *string
	text            *string
	section_summary *string
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	run             *string
	clearedrun      bool
	done            bool
	oldValue        func(context.Context) (*DraftSection, error)
	predicates      []predicate.DraftSection
}

var _ ent.Mutation = (*DraftSectionMutation)(nil)

// draftsectionOption allows management of the mutation configuration using functional options.
type draftsectionOption func(*DraftSectionMutation)

// newDraftSectionMutation creates new mutation for the DraftSection entity.
func newDraftSectionMutation(c config, op Op, opts ...draftsectionOption) *DraftSectionMutation {
	m := &DraftSectionMutation{
		config:        c,
		op:            op,
		typ:           TypeDraftSection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDraftSectionID sets the ID field of the mutation.
func withDraftSectionID(id string) draftsectionOption {
	return func(m *DraftSectionMutation) {
		var (
			err   error
			once  sync.Once
			value *DraftSection
		)
		m.oldValue = func(ctx context.Context) (*DraftSection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DraftSection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDraftSection sets the old DraftSection of the mutation.
func withDraftSection(node *DraftSection) draftsectionOption {
	return func(m *DraftSectionMutation) {
		m.oldValue = func(context.Context) (*DraftSection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DraftSectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DraftSectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DraftSection entities.
func (m *DraftSectionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DraftSectionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DraftSectionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DraftSection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *DraftSectionMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *DraftSectionMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the DraftSection entity.
// If the DraftSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftSectionMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *DraftSectionMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetRunID sets the "run_id" field.
func (m *DraftSectionMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *DraftSectionMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the DraftSection entity.
// If the DraftSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftSectionMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *DraftSectionMutation) ResetRunID() {
	m.run = nil
}

// SetSectionID sets the "section_id" field.
func (m *DraftSectionMutation) SetSectionID(s string) {
	m.section_id = &s
}

// SectionID returns the value of the "section_id" field in the mutation.
func (m *DraftSectionMutation) SectionID() (r string, exists bool) {
	v := m.section_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionID returns the old "section_id" field's value of the DraftSection entity.
// If the DraftSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftSectionMutation) OldSectionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionID: %w", err)
	}
	return oldValue.SectionID, nil
}

// ResetSectionID resets all changes to the "section_id" field.
func (m *DraftSectionMutation) ResetSectionID() {
	m.section_id = nil
}

// SetText sets the "text" field.
func (m *DraftSectionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *DraftSectionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the DraftSection entity.
// If the DraftSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftSectionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *DraftSectionMutation) ResetText() {
	m.text = nil
}

// SetSectionSummary sets the "section_summary" field.
func (m *DraftSectionMutation) SetSectionSummary(s string) {
	m.section_summary = &s
}

// SectionSummary returns the value of the "section_summary" field in the mutation.
func (m *DraftSectionMutation) SectionSummary() (r string, exists bool) {
	v := m.section_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionSummary returns the old "section_summary" field's value of the DraftSection entity.
// If the DraftSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftSectionMutation) OldSectionSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionSummary: %w", err)
	}
	return oldValue.SectionSummary, nil
}

// ClearSectionSummary clears the value of the "section_summary" field.
func (m *DraftSectionMutation) ClearSectionSummary() {
	m.section_summary = nil
	m.clearedFields[draftsection.FieldSectionSummary] = struct{}{}
}

// SectionSummaryCleared returns if the "section_summary" field was cleared in this mutation.
func (m *DraftSectionMutation) SectionSummaryCleared() bool {
	_, ok := m.clearedFields[draftsection.FieldSectionSummary]
	return ok
}

// ResetSectionSummary resets all changes to the "section_summary" field.
func (m *DraftSectionMutation) ResetSectionSummary() {
	m.section_summary = nil
	delete(m.clearedFields, draftsection.FieldSectionSummary)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DraftSectionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DraftSectionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DraftSection entity.
// If the DraftSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DraftSectionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DraftSectionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *DraftSectionMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[draftsection.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *DraftSectionMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *DraftSectionMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *DraftSectionMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the DraftSectionMutation builder.
func (m *DraftSectionMutation) Where(ps ...predicate.DraftSection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DraftSectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DraftSectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DraftSection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DraftSectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DraftSectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DraftSection).
func (m *DraftSectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DraftSectionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, draftsection.FieldTenantID)
	}
	if m.run != nil {
		fields = append(fields, draftsection.FieldRunID)
	}
	if m.section_id != nil {
		fields = append(fields, draftsection.FieldSectionID)
	}
	if m.text != nil {
		fields = append(fields, draftsection.FieldText)
	}
	if m.section_summary != nil {
		fields = append(fields, draftsection.FieldSectionSummary)
	}
	if m.updated_at != nil {
		fields = append(fields, draftsection.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DraftSectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case draftsection.FieldTenantID:
		return m.TenantID()
	case draftsection.FieldRunID:
		return m.RunID()
	case draftsection.FieldSectionID:
		return m.SectionID()
	case draftsection.FieldText:
		return m.Text()
	case draftsection.FieldSectionSummary:
		return m.SectionSummary()
	case draftsection.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DraftSectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case draftsection.FieldTenantID:
		return m.OldTenantID(ctx)
	case draftsection.FieldRunID:
		return m.OldRunID(ctx)
	case draftsection.FieldSectionID:
		return m.OldSectionID(ctx)
	case draftsection.FieldText:
		return m.OldText(ctx)
	case draftsection.FieldSectionSummary:
		return m.OldSectionSummary(ctx)
	case draftsection.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DraftSection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DraftSectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case draftsection.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case draftsection.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case draftsection.FieldSectionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionID(v)
		return nil
	case draftsection.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case draftsection.FieldSectionSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionSummary(v)
		return nil
	case draftsection.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DraftSection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DraftSectionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DraftSectionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DraftSectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DraftSection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DraftSectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(draftsection.FieldSectionSummary) {
		fields = append(fields, draftsection.FieldSectionSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DraftSectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DraftSectionMutation) ClearField(name string) error {
	switch name {
	case draftsection.FieldSectionSummary:
		m.ClearSectionSummary()
		return nil
	}
	return fmt.Errorf("unknown DraftSection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DraftSectionMutation) ResetField(name string) error {
	switch name {
	case draftsection.FieldTenantID:
		m.ResetTenantID()
		return nil
	case draftsection.FieldRunID:
		m.ResetRunID()
		return nil
	case draftsection.FieldSectionID:
		m.ResetSectionID()
		return nil
	case draftsection.FieldText:
		m.ResetText()
		return nil
	case draftsection.FieldSectionSummary:
		m.ResetSectionSummary()
		return nil
	case draftsection.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DraftSection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DraftSectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, draftsection.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DraftSectionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case draftsection.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DraftSectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DraftSectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DraftSectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, draftsection.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DraftSectionMutation) EdgeCleared(name string) bool {
	switch name {
	case draftsection.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DraftSectionMutation) ClearEdge(name string) error {
	switch name {
	case draftsection.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown DraftSection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DraftSectionMutation) ResetEdge(name string) error {
	switch name {
	case draftsection.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown DraftSection edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	job_type      *string
	status        *job.Status
	attempts      *int
	addattempts   *int
	last_error    *string
	pod_id        *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*Job, error)
	predicates    []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *JobMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *JobMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *JobMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetRunID sets the "run_id" field.
func (m *JobMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *JobMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *JobMutation) ResetRunID() {
	m.run = nil
}

// SetJobType sets the "job_type" field.
func (m *JobMutation) SetJobType(s string) {
	m.job_type = &s
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *JobMutation) JobType() (r string, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldJobType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *JobMutation) ResetJobType() {
	m.job_type = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *JobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *JobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *JobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *JobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *JobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLastError sets the "last_error" field.
func (m *JobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *JobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *JobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[job.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *JobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *JobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, job.FieldLastError)
}

// SetPodID sets the "pod_id" field.
func (m *JobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *JobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *JobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[job.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *JobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[job.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *JobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, job.FieldPodID)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *JobMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[job.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *JobMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *JobMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *JobMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant_id != nil {
		fields = append(fields, job.FieldTenantID)
	}
	if m.run != nil {
		fields = append(fields, job.FieldRunID)
	}
	if m.job_type != nil {
		fields = append(fields, job.FieldJobType)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.last_error != nil {
		fields = append(fields, job.FieldLastError)
	}
	if m.pod_id != nil {
		fields = append(fields, job.FieldPodID)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldTenantID:
		return m.TenantID()
	case job.FieldRunID:
		return m.RunID()
	case job.FieldJobType:
		return m.JobType()
	case job.FieldStatus:
		return m.Status()
	case job.FieldAttempts:
		return m.Attempts()
	case job.FieldLastError:
		return m.LastError()
	case job.FieldPodID:
		return m.PodID()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldTenantID:
		return m.OldTenantID(ctx)
	case job.FieldRunID:
		return m.OldRunID(ctx)
	case job.FieldJobType:
		return m.OldJobType(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldAttempts:
		return m.OldAttempts(ctx)
	case job.FieldLastError:
		return m.OldLastError(ctx)
	case job.FieldPodID:
		return m.OldPodID(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case job.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case job.FieldJobType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case job.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case job.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldLastError) {
		fields = append(fields, job.FieldLastError)
	}
	if m.FieldCleared(job.FieldPodID) {
		fields = append(fields, job.FieldPodID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldLastError:
		m.ClearLastError()
		return nil
	case job.FieldPodID:
		m.ClearPodID()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldTenantID:
		m.ResetTenantID()
		return nil
	case job.FieldRunID:
		m.ResetRunID()
		return nil
	case job.FieldJobType:
		m.ResetJobType()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldAttempts:
		m.ResetAttempts()
		return nil
	case job.FieldLastError:
		m.ResetLastError()
		return nil
	case job.FieldPodID:
		m.ResetPodID()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, job.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, job.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// OutlineNoteMutation represents an operation that mutates the OutlineNote nodes in the graph.
type OutlineNoteMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	tenant_id             *string
	section_id            *string
	key_points            *[]string
	appendkey_points      []string
	evidence_themes       *[]string
	appendevidence_themes []string
	clearedFields         map[string]struct{}
	run                   *string
	clearedrun            bool
	done                  bool
	oldValue              func(context.Context) (*OutlineNote, error)
	predicates            []predicate.OutlineNote
}

var _ ent.Mutation = (*OutlineNoteMutation)(nil)

// outlinenoteOption allows management of the mutation configuration using functional options.
type outlinenoteOption func(*OutlineNoteMutation)

// newOutlineNoteMutation creates new mutation for the OutlineNote entity.
func newOutlineNoteMutation(c config, op Op, opts ...outlinenoteOption) *OutlineNoteMutation {
	m := &OutlineNoteMutation{
		config:        c,
		op:            op,
		typ:           TypeOutlineNote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutlineNoteID sets the ID field of the mutation.
func withOutlineNoteID(id string) outlinenoteOption {
	return func(m *OutlineNoteMutation) {
		var (
			err   error
			once  sync.Once
			value *OutlineNote
		)
		m.oldValue = func(ctx context.Context) (*OutlineNote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OutlineNote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOutlineNote sets the old OutlineNote of the mutation.
func withOutlineNote(node *OutlineNote) outlinenoteOption {
	return func(m *OutlineNoteMutation) {
		m.oldValue = func(context.Context) (*OutlineNote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutlineNoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutlineNoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OutlineNote entities.
func (m *OutlineNoteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutlineNoteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutlineNoteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OutlineNote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *OutlineNoteMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *OutlineNoteMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the OutlineNote entity.
// If the OutlineNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutlineNoteMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *OutlineNoteMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetRunID sets the "run_id" field.
func (m *OutlineNoteMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *OutlineNoteMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the OutlineNote entity.
// If the OutlineNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutlineNoteMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *OutlineNoteMutation) ResetRunID() {
	m.run = nil
}

// SetSectionID sets the "section_id" field.
func (m *OutlineNoteMutation) SetSectionID(s string) {
	m.section_id = &s
}

// SectionID returns the value of the "section_id" field in the mutation.
func (m *OutlineNoteMutation) SectionID() (r string, exists bool) {
	v := m.section_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionID returns the old "section_id" field's value of the OutlineNote entity.
// If the OutlineNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutlineNoteMutation) OldSectionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionID: %w", err)
	}
	return oldValue.SectionID, nil
}

// ResetSectionID resets all changes to the "section_id" field.
func (m *OutlineNoteMutation) ResetSectionID() {
	m.section_id = nil
}

// SetKeyPoints sets the "key_points" field.
func (m *OutlineNoteMutation) SetKeyPoints(s []string) {
	m.key_points = &s
	m.appendkey_points = nil
}

// KeyPoints returns the value of the "key_points" field in the mutation.
func (m *OutlineNoteMutation) KeyPoints() (r []string, exists bool) {
	v := m.key_points
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyPoints returns the old "key_points" field's value of the OutlineNote entity.
// If the OutlineNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutlineNoteMutation) OldKeyPoints(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyPoints: %w", err)
	}
	return oldValue.KeyPoints, nil
}

// AppendKeyPoints adds s to the "key_points" field.
func (m *OutlineNoteMutation) AppendKeyPoints(s []string) {
	m.appendkey_points = append(m.appendkey_points, s...)
}

// AppendedKeyPoints returns the list of values that were appended to the "key_points" field in this mutation.
func (m *OutlineNoteMutation) AppendedKeyPoints() ([]string, bool) {
	if len(m.appendkey_points) == 0 {
		return nil, false
	}
	return m.appendkey_points, true
}

// ResetKeyPoints resets all changes to the "key_points" field.
func (m *OutlineNoteMutation) ResetKeyPoints() {
	m.key_points = nil
	m.appendkey_points = nil
}

// SetEvidenceThemes sets the "evidence_themes" field.
func (m *OutlineNoteMutation) SetEvidenceThemes(s []string) {
	m.evidence_themes = &s
	m.appendevidence_themes = nil
}

// EvidenceThemes returns the value of the "evidence_themes" field in the mutation.
func (m *OutlineNoteMutation) EvidenceThemes() (r []string, exists bool) {
	v := m.evidence_themes
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceThemes returns the old "evidence_themes" field's value of the OutlineNote entity.
// If the OutlineNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutlineNoteMutation) OldEvidenceThemes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceThemes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceThemes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceThemes: %w", err)
	}
	return oldValue.EvidenceThemes, nil
}

// AppendEvidenceThemes adds s to the "evidence_themes" field.
func (m *OutlineNoteMutation) AppendEvidenceThemes(s []string) {
	m.appendevidence_themes = append(m.appendevidence_themes, s...)
}

// AppendedEvidenceThemes returns the list of values that were appended to the "evidence_themes" field in this mutation.
func (m *OutlineNoteMutation) AppendedEvidenceThemes() ([]string, bool) {
	if len(m.appendevidence_themes) == 0 {
		return nil, false
	}
	return m.appendevidence_themes, true
}

// ResetEvidenceThemes resets all changes to the "evidence_themes" field.
func (m *OutlineNoteMutation) ResetEvidenceThemes() {
	m.evidence_themes = nil
	m.appendevidence_themes = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *OutlineNoteMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[outlinenote.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *OutlineNoteMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *OutlineNoteMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *OutlineNoteMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the OutlineNoteMutation builder.
func (m *OutlineNoteMutation) Where(ps ...predicate.OutlineNote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutlineNoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutlineNoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OutlineNote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutlineNoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutlineNoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OutlineNote).
func (m *OutlineNoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutlineNoteMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.tenant_id != nil {
		fields = append(fields, outlinenote.FieldTenantID)
	}
	if m.run != nil {
		fields = append(fields, outlinenote.FieldRunID)
	}
	if m.section_id != nil {
		fields = append(fields, outlinenote.FieldSectionID)
	}
	if m.key_points != nil {
		fields = append(fields, outlinenote.FieldKeyPoints)
	}
	if m.evidence_themes != nil {
		fields = append(fields, outlinenote.FieldEvidenceThemes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutlineNoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outlinenote.FieldTenantID:
		return m.TenantID()
	case outlinenote.FieldRunID:
		return m.RunID()
	case outlinenote.FieldSectionID:
		return m.SectionID()
	case outlinenote.FieldKeyPoints:
		return m.KeyPoints()
	case outlinenote.FieldEvidenceThemes:
		return m.EvidenceThemes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutlineNoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outlinenote.FieldTenantID:
		return m.OldTenantID(ctx)
	case outlinenote.FieldRunID:
		return m.OldRunID(ctx)
	case outlinenote.FieldSectionID:
		return m.OldSectionID(ctx)
	case outlinenote.FieldKeyPoints:
		return m.OldKeyPoints(ctx)
	case outlinenote.FieldEvidenceThemes:
		return m.OldEvidenceThemes(ctx)
	}
	return nil, fmt.Errorf("unknown OutlineNote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutlineNoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outlinenote.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case outlinenote.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case outlinenote.FieldSectionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionID(v)
		return nil
	case outlinenote.FieldKeyPoints:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyPoints(v)
		return nil
	case outlinenote.FieldEvidenceThemes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceThemes(v)
		return nil
	}
	return fmt.Errorf("unknown OutlineNote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutlineNoteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutlineNoteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutlineNoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OutlineNote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutlineNoteMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutlineNoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutlineNoteMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OutlineNote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutlineNoteMutation) ResetField(name string) error {
	switch name {
	case outlinenote.FieldTenantID:
		m.ResetTenantID()
		return nil
	case outlinenote.FieldRunID:
		m.ResetRunID()
		return nil
	case outlinenote.FieldSectionID:
		m.ResetSectionID()
		return nil
	case outlinenote.FieldKeyPoints:
		m.ResetKeyPoints()
		return nil
	case outlinenote.FieldEvidenceThemes:
		m.ResetEvidenceThemes()
		return nil
	}
	return fmt.Errorf("unknown OutlineNote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutlineNoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, outlinenote.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutlineNoteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case outlinenote.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutlineNoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutlineNoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutlineNoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, outlinenote.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutlineNoteMutation) EdgeCleared(name string) bool {
	switch name {
	case outlinenote.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutlineNoteMutation) ClearEdge(name string) error {
	switch name {
	case outlinenote.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown OutlineNote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutlineNoteMutation) ResetEdge(name string) error {
	switch name {
	case outlinenote.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown OutlineNote edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	name             *string
	last_run_id      *string
	last_run_status  *string
	last_activity_at *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	runs             map[string]struct{}
	removedruns      map[string]struct{}
	clearedruns      bool
	artifacts        map[string]struct{}
	removedartifacts map[string]struct{}
	clearedartifacts bool
	done             bool
	oldValue         func(context.Context) (*Project, error)
	predicates       []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ProjectMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ProjectMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ProjectMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetLastRunID sets the "last_run_id" field.
func (m *ProjectMutation) SetLastRunID(s string) {
	m.last_run_id = &s
}

// LastRunID returns the value of the "last_run_id" field in the mutation.
func (m *ProjectMutation) LastRunID() (r string, exists bool) {
	v := m.last_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunID returns the old "last_run_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldLastRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunID: %w", err)
	}
	return oldValue.LastRunID, nil
}

// ClearLastRunID clears the value of the "last_run_id" field.
func (m *ProjectMutation) ClearLastRunID() {
	m.last_run_id = nil
	m.clearedFields[project.FieldLastRunID] = struct{}{}
}

// LastRunIDCleared returns if the "last_run_id" field was cleared in this mutation.
func (m *ProjectMutation) LastRunIDCleared() bool {
	_, ok := m.clearedFields[project.FieldLastRunID]
	return ok
}

// ResetLastRunID resets all changes to the "last_run_id" field.
func (m *ProjectMutation) ResetLastRunID() {
	m.last_run_id = nil
	delete(m.clearedFields, project.FieldLastRunID)
}

// SetLastRunStatus sets the "last_run_status" field.
func (m *ProjectMutation) SetLastRunStatus(s string) {
	m.last_run_status = &s
}

// LastRunStatus returns the value of the "last_run_status" field in the mutation.
func (m *ProjectMutation) LastRunStatus() (r string, exists bool) {
	v := m.last_run_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunStatus returns the old "last_run_status" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldLastRunStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunStatus: %w", err)
	}
	return oldValue.LastRunStatus, nil
}

// ClearLastRunStatus clears the value of the "last_run_status" field.
func (m *ProjectMutation) ClearLastRunStatus() {
	m.last_run_status = nil
	m.clearedFields[project.FieldLastRunStatus] = struct{}{}
}

// LastRunStatusCleared returns if the "last_run_status" field was cleared in this mutation.
func (m *ProjectMutation) LastRunStatusCleared() bool {
	_, ok := m.clearedFields[project.FieldLastRunStatus]
	return ok
}

// ResetLastRunStatus resets all changes to the "last_run_status" field.
func (m *ProjectMutation) ResetLastRunStatus() {
	m.last_run_status = nil
	delete(m.clearedFields, project.FieldLastRunStatus)
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *ProjectMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *ProjectMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldLastActivityAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (m *ProjectMutation) ClearLastActivityAt() {
	m.last_activity_at = nil
	m.clearedFields[project.FieldLastActivityAt] = struct{}{}
}

// LastActivityAtCleared returns if the "last_activity_at" field was cleared in this mutation.
func (m *ProjectMutation) LastActivityAtCleared() bool {
	_, ok := m.clearedFields[project.FieldLastActivityAt]
	return ok
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *ProjectMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
	delete(m.clearedFields, project.FieldLastActivityAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddRunIDs adds the "runs" edge to the Run entity by ids.
func (m *ProjectMutation) AddRunIDs(ids ...string) {
	if m.runs == nil {
		m.runs = make(map[string]struct{})
	}
	for i := range ids {
		m.runs[ids[i]] = struct{}{}
	}
}

// ClearRuns clears the "runs" edge to the Run entity.
func (m *ProjectMutation) ClearRuns() {
	m.clearedruns = true
}

// RunsCleared reports if the "runs" edge to the Run entity was cleared.
func (m *ProjectMutation) RunsCleared() bool {
	return m.clearedruns
}

// RemoveRunIDs removes the "runs" edge to the Run entity by IDs.
func (m *ProjectMutation) RemoveRunIDs(ids ...string) {
	if m.removedruns == nil {
		m.removedruns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.runs, ids[i])
		m.removedruns[ids[i]] = struct{}{}
	}
}

// RemovedRuns returns the removed IDs of the "runs" edge to the Run entity.
func (m *ProjectMutation) RemovedRunsIDs() (ids []string) {
	for id := range m.removedruns {
		ids = append(ids, id)
	}
	return
}

// RunsIDs returns the "runs" edge IDs in the mutation.
func (m *ProjectMutation) RunsIDs() (ids []string) {
	for id := range m.runs {
		ids = append(ids, id)
	}
	return
}

// ResetRuns resets all changes to the "runs" edge.
func (m *ProjectMutation) ResetRuns() {
	m.runs = nil
	m.clearedruns = false
	m.removedruns = nil
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by ids.
func (m *ProjectMutation) AddArtifactIDs(ids ...string) {
	if m.artifacts == nil {
		m.artifacts = make(map[string]struct{})
	}
	for i := range ids {
		m.artifacts[ids[i]] = struct{}{}
	}
}

// ClearArtifacts clears the "artifacts" edge to the Artifact entity.
func (m *ProjectMutation) ClearArtifacts() {
	m.clearedartifacts = true
}

// ArtifactsCleared reports if the "artifacts" edge to the Artifact entity was cleared.
func (m *ProjectMutation) ArtifactsCleared() bool {
	return m.clearedartifacts
}

// RemoveArtifactIDs removes the "artifacts" edge to the Artifact entity by IDs.
func (m *ProjectMutation) RemoveArtifactIDs(ids ...string) {
	if m.removedartifacts == nil {
		m.removedartifacts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.artifacts, ids[i])
		m.removedartifacts[ids[i]] = struct{}{}
	}
}

// RemovedArtifacts returns the removed IDs of the "artifacts" edge to the Artifact entity.
func (m *ProjectMutation) RemovedArtifactsIDs() (ids []string) {
	for id := range m.removedartifacts {
		ids = append(ids, id)
	}
	return
}

// ArtifactsIDs returns the "artifacts" edge IDs in the mutation.
func (m *ProjectMutation) ArtifactsIDs() (ids []string) {
	for id := range m.artifacts {
		ids = append(ids, id)
	}
	return
}

// ResetArtifacts resets all changes to the "artifacts" edge.
func (m *ProjectMutation) ResetArtifacts() {
	m.artifacts = nil
	m.clearedartifacts = false
	m.removedartifacts = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant_id != nil {
		fields = append(fields, project.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.last_run_id != nil {
		fields = append(fields, project.FieldLastRunID)
	}
	if m.last_run_status != nil {
		fields = append(fields, project.FieldLastRunStatus)
	}
	if m.last_activity_at != nil {
		fields = append(fields, project.FieldLastActivityAt)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldTenantID:
		return m.TenantID()
	case project.FieldName:
		return m.Name()
	case project.FieldLastRunID:
		return m.LastRunID()
	case project.FieldLastRunStatus:
		return m.LastRunStatus()
	case project.FieldLastActivityAt:
		return m.LastActivityAt()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldTenantID:
		return m.OldTenantID(ctx)
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldLastRunID:
		return m.OldLastRunID(ctx)
	case project.FieldLastRunStatus:
		return m.OldLastRunStatus(ctx)
	case project.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldLastRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunID(v)
		return nil
	case project.FieldLastRunStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunStatus(v)
		return nil
	case project.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldLastRunID) {
		fields = append(fields, project.FieldLastRunID)
	}
	if m.FieldCleared(project.FieldLastRunStatus) {
		fields = append(fields, project.FieldLastRunStatus)
	}
	if m.FieldCleared(project.FieldLastActivityAt) {
		fields = append(fields, project.FieldLastActivityAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldLastRunID:
		m.ClearLastRunID()
		return nil
	case project.FieldLastRunStatus:
		m.ClearLastRunStatus()
		return nil
	case project.FieldLastActivityAt:
		m.ClearLastActivityAt()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldTenantID:
		m.ResetTenantID()
		return nil
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldLastRunID:
		m.ResetLastRunID()
		return nil
	case project.FieldLastRunStatus:
		m.ResetLastRunStatus()
		return nil
	case project.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.runs != nil {
		edges = append(edges, project.EdgeRuns)
	}
	if m.artifacts != nil {
		edges = append(edges, project.EdgeArtifacts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.runs))
		for id := range m.runs {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.artifacts))
		for id := range m.artifacts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedruns != nil {
		edges = append(edges, project.EdgeRuns)
	}
	if m.removedartifacts != nil {
		edges = append(edges, project.EdgeArtifacts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeRuns:
		ids := make([]ent.Value, 0, len(m.removedruns))
		for id := range m.removedruns {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.removedartifacts))
		for id := range m.removedartifacts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedruns {
		edges = append(edges, project.EdgeRuns)
	}
	if m.clearedartifacts {
		edges = append(edges, project.EdgeArtifacts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeRuns:
		return m.clearedruns
	case project.EdgeArtifacts:
		return m.clearedartifacts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeRuns:
		m.ResetRuns()
		return nil
	case project.EdgeArtifacts:
		m.ResetArtifacts()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	tenant_id               *string
	status                  *run.Status
	current_stage           *string
	question                *string
	output_type             *string
	llm_provider            *string
	llm_model               *string
	budgets                 *map[string]interface{}
	usage                   *map[string]interface{}
	failure_reason          *string
	error_code              *string
	client_request_id       *string
	retry_count             *int
	addretry_count          *int
	started_at              *time.Time
	finished_at             *time.Time
	cancel_requested_at     *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	project                 *string
	clearedproject          bool
	jobs                    map[string]struct{}
	removedjobs             map[string]struct{}
	clearedjobs             bool
	events                  map[string]struct{}
	removedevents           map[string]struct{}
	clearedevents           bool
	sections                map[string]struct{}
	removedsections         map[string]struct{}
	clearedsections         bool
	outline_notes           map[string]struct{}
	removedoutline_notes    map[string]struct{}
	clearedoutline_notes    bool
	section_evidence        map[string]struct{}
	removedsection_evidence map[string]struct{}
	clearedsection_evidence bool
	draft_sections          map[string]struct{}
	removeddraft_sections   map[string]struct{}
	cleareddraft_sections   bool
	section_reviews         map[string]struct{}
	removedsection_reviews  map[string]struct{}
	clearedsection_reviews  bool
	run_sources             map[string]struct{}
	removedrun_sources      map[string]struct{}
	clearedrun_sources      bool
	checkpoints             map[string]struct{}
	removedcheckpoints      map[string]struct{}
	clearedcheckpoints      bool
	artifacts               map[string]struct{}
	removedartifacts        map[string]struct{}
	clearedartifacts        bool
	done                    bool
	oldValue                func(context.Context) (*Run, error)
	predicates              []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id string) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *RunMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *RunMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *RunMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *RunMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *RunMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *RunMutation) ResetProjectID() {
	m.project = nil
}

// SetStatus sets the "status" field.
func (m *RunMutation) SetStatus(r run.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunMutation) Status() (r run.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatus(ctx context.Context) (v run.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentStage sets the "current_stage" field.
func (m *RunMutation) SetCurrentStage(s string) {
	m.current_stage = &s
}

// CurrentStage returns the value of the "current_stage" field in the mutation.
func (m *RunMutation) CurrentStage() (r string, exists bool) {
	v := m.current_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStage returns the old "current_stage" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCurrentStage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStage: %w", err)
	}
	return oldValue.CurrentStage, nil
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (m *RunMutation) ClearCurrentStage() {
	m.current_stage = nil
	m.clearedFields[run.FieldCurrentStage] = struct{}{}
}

// CurrentStageCleared returns if the "current_stage" field was cleared in this mutation.
func (m *RunMutation) CurrentStageCleared() bool {
	_, ok := m.clearedFields[run.FieldCurrentStage]
	return ok
}

// ResetCurrentStage resets all changes to the "current_stage" field.
func (m *RunMutation) ResetCurrentStage() {
	m.current_stage = nil
	delete(m.clearedFields, run.FieldCurrentStage)
}

// SetQuestion sets the "question" field.
func (m *RunMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *RunMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *RunMutation) ResetQuestion() {
	m.question = nil
}

// SetOutputType sets the "output_type" field.
func (m *RunMutation) SetOutputType(s string) {
	m.output_type = &s
}

// OutputType returns the value of the "output_type" field in the mutation.
func (m *RunMutation) OutputType() (r string, exists bool) {
	v := m.output_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputType returns the old "output_type" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldOutputType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputType: %w", err)
	}
	return oldValue.OutputType, nil
}

// ResetOutputType resets all changes to the "output_type" field.
func (m *RunMutation) ResetOutputType() {
	m.output_type = nil
}

// SetLlmProvider sets the "llm_provider" field.
func (m *RunMutation) SetLlmProvider(s string) {
	m.llm_provider = &s
}

// LlmProvider returns the value of the "llm_provider" field in the mutation.
func (m *RunMutation) LlmProvider() (r string, exists bool) {
	v := m.llm_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmProvider returns the old "llm_provider" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldLlmProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmProvider: %w", err)
	}
	return oldValue.LlmProvider, nil
}

// ClearLlmProvider clears the value of the "llm_provider" field.
func (m *RunMutation) ClearLlmProvider() {
	m.llm_provider = nil
	m.clearedFields[run.FieldLlmProvider] = struct{}{}
}

// LlmProviderCleared returns if the "llm_provider" field was cleared in this mutation.
func (m *RunMutation) LlmProviderCleared() bool {
	_, ok := m.clearedFields[run.FieldLlmProvider]
	return ok
}

// ResetLlmProvider resets all changes to the "llm_provider" field.
func (m *RunMutation) ResetLlmProvider() {
	m.llm_provider = nil
	delete(m.clearedFields, run.FieldLlmProvider)
}

// SetLlmModel sets the "llm_model" field.
func (m *RunMutation) SetLlmModel(s string) {
	m.llm_model = &s
}

// LlmModel returns the value of the "llm_model" field in the mutation.
func (m *RunMutation) LlmModel() (r string, exists bool) {
	v := m.llm_model
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmModel returns the old "llm_model" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldLlmModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmModel: %w", err)
	}
	return oldValue.LlmModel, nil
}

// ClearLlmModel clears the value of the "llm_model" field.
func (m *RunMutation) ClearLlmModel() {
	m.llm_model = nil
	m.clearedFields[run.FieldLlmModel] = struct{}{}
}

// LlmModelCleared returns if the "llm_model" field was cleared in this mutation.
func (m *RunMutation) LlmModelCleared() bool {
	_, ok := m.clearedFields[run.FieldLlmModel]
	return ok
}

// ResetLlmModel resets all changes to the "llm_model" field.
func (m *RunMutation) ResetLlmModel() {
	m.llm_model = nil
	delete(m.clearedFields, run.FieldLlmModel)
}

// SetBudgets sets the "budgets" field.
func (m *RunMutation) SetBudgets(value map[string]interface{}) {
	m.budgets = &value
}

// Budgets returns the value of the "budgets" field in the mutation.
func (m *RunMutation) Budgets() (r map[string]interface{}, exists bool) {
	v := m.budgets
	if v == nil {
		return
	}
	return *v, true
}

// OldBudgets returns the old "budgets" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldBudgets(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudgets is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudgets requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudgets: %w", err)
	}
	return oldValue.Budgets, nil
}

// ClearBudgets clears the value of the "budgets" field.
func (m *RunMutation) ClearBudgets() {
	m.budgets = nil
	m.clearedFields[run.FieldBudgets] = struct{}{}
}

// BudgetsCleared returns if the "budgets" field was cleared in this mutation.
func (m *RunMutation) BudgetsCleared() bool {
	_, ok := m.clearedFields[run.FieldBudgets]
	return ok
}

// ResetBudgets resets all changes to the "budgets" field.
func (m *RunMutation) ResetBudgets() {
	m.budgets = nil
	delete(m.clearedFields, run.FieldBudgets)
}

// SetUsage sets the "usage" field.
func (m *RunMutation) SetUsage(value map[string]interface{}) {
	m.usage = &value
}

// Usage returns the value of the "usage" field in the mutation.
func (m *RunMutation) Usage() (r map[string]interface{}, exists bool) {
	v := m.usage
	if v == nil {
		return
	}
	return *v, true
}

// OldUsage returns the old "usage" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldUsage(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsage: %w", err)
	}
	return oldValue.Usage, nil
}

// ClearUsage clears the value of the "usage" field.
func (m *RunMutation) ClearUsage() {
	m.usage = nil
	m.clearedFields[run.FieldUsage] = struct{}{}
}

// UsageCleared returns if the "usage" field was cleared in this mutation.
func (m *RunMutation) UsageCleared() bool {
	_, ok := m.clearedFields[run.FieldUsage]
	return ok
}

// ResetUsage resets all changes to the "usage" field.
func (m *RunMutation) ResetUsage() {
	m.usage = nil
	delete(m.clearedFields, run.FieldUsage)
}

// SetFailureReason sets the "failure_reason" field.
func (m *RunMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *RunMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *RunMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[run.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *RunMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[run.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *RunMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, run.FieldFailureReason)
}

// SetErrorCode sets the "error_code" field.
func (m *RunMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *RunMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *RunMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[run.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *RunMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[run.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *RunMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, run.FieldErrorCode)
}

// SetClientRequestID sets the "client_request_id" field.
func (m *RunMutation) SetClientRequestID(s string) {
	m.client_request_id = &s
}

// ClientRequestID returns the value of the "client_request_id" field in the mutation.
func (m *RunMutation) ClientRequestID() (r string, exists bool) {
	v := m.client_request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientRequestID returns the old "client_request_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldClientRequestID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientRequestID: %w", err)
	}
	return oldValue.ClientRequestID, nil
}

// ClearClientRequestID clears the value of the "client_request_id" field.
func (m *RunMutation) ClearClientRequestID() {
	m.client_request_id = nil
	m.clearedFields[run.FieldClientRequestID] = struct{}{}
}

// ClientRequestIDCleared returns if the "client_request_id" field was cleared in this mutation.
func (m *RunMutation) ClientRequestIDCleared() bool {
	_, ok := m.clearedFields[run.FieldClientRequestID]
	return ok
}

// ResetClientRequestID resets all changes to the "client_request_id" field.
func (m *RunMutation) ResetClientRequestID() {
	m.client_request_id = nil
	delete(m.clearedFields, run.FieldClientRequestID)
}

// SetRetryCount sets the "retry_count" field.
func (m *RunMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *RunMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *RunMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *RunMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *RunMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[run.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, run.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *RunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *RunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *RunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[run.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *RunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *RunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, run.FieldFinishedAt)
}

// SetCancelRequestedAt sets the "cancel_requested_at" field.
func (m *RunMutation) SetCancelRequestedAt(t time.Time) {
	m.cancel_requested_at = &t
}

// CancelRequestedAt returns the value of the "cancel_requested_at" field in the mutation.
func (m *RunMutation) CancelRequestedAt() (r time.Time, exists bool) {
	v := m.cancel_requested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequestedAt returns the old "cancel_requested_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCancelRequestedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequestedAt: %w", err)
	}
	return oldValue.CancelRequestedAt, nil
}

// ClearCancelRequestedAt clears the value of the "cancel_requested_at" field.
func (m *RunMutation) ClearCancelRequestedAt() {
	m.cancel_requested_at = nil
	m.clearedFields[run.FieldCancelRequestedAt] = struct{}{}
}

// CancelRequestedAtCleared returns if the "cancel_requested_at" field was cleared in this mutation.
func (m *RunMutation) CancelRequestedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldCancelRequestedAt]
	return ok
}

// ResetCancelRequestedAt resets all changes to the "cancel_requested_at" field.
func (m *RunMutation) ResetCancelRequestedAt() {
	m.cancel_requested_at = nil
	delete(m.clearedFields, run.FieldCancelRequestedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RunMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RunMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RunMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *RunMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[run.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *RunMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *RunMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *RunMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddJobIDs adds the "jobs" edge to the Job entity by ids.
func (m *RunMutation) AddJobIDs(ids ...string) {
	if m.jobs == nil {
		m.jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the Job entity.
func (m *RunMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the Job entity was cleared.
func (m *RunMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the Job entity by IDs.
func (m *RunMutation) RemoveJobIDs(ids ...string) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the Job entity.
func (m *RunMutation) RemovedJobsIDs() (ids []string) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *RunMutation) JobsIDs() (ids []string) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *RunMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// AddEventIDs adds the "events" edge to the RunEvent entity by ids.
func (m *RunMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the RunEvent entity.
func (m *RunMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the RunEvent entity was cleared.
func (m *RunMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the RunEvent entity by IDs.
func (m *RunMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the RunEvent entity.
func (m *RunMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *RunMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *RunMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddSectionIDs adds the "sections" edge to the RunSection entity by ids.
func (m *RunMutation) AddSectionIDs(ids ...string) {
	if m.sections == nil {
		m.sections = make(map[string]struct{})
	}
	for i := range ids {
		m.sections[ids[i]] = struct{}{}
	}
}

// ClearSections clears the "sections" edge to the RunSection entity.
func (m *RunMutation) ClearSections() {
	m.clearedsections = true
}

// SectionsCleared reports if the "sections" edge to the RunSection entity was cleared.
func (m *RunMutation) SectionsCleared() bool {
	return m.clearedsections
}

// RemoveSectionIDs removes the "sections" edge to the RunSection entity by IDs.
func (m *RunMutation) RemoveSectionIDs(ids ...string) {
	if m.removedsections == nil {
		m.removedsections = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sections, ids[i])
		m.removedsections[ids[i]] = struct{}{}
	}
}

// RemovedSections returns the removed IDs of the "sections" edge to the RunSection entity.
func (m *RunMutation) RemovedSectionsIDs() (ids []string) {
	for id := range m.removedsections {
		ids = append(ids, id)
	}
	return
}

// SectionsIDs returns the "sections" edge IDs in the mutation.
func (m *RunMutation) SectionsIDs() (ids []string) {
	for id := range m.sections {
		ids = append(ids, id)
	}
	return
}

// ResetSections resets all changes to the "sections" edge.
func (m *RunMutation) ResetSections() {
	m.sections = nil
	m.clearedsections = false
	m.removedsections = nil
}

// AddOutlineNoteIDs adds the "outline_notes" edge to the OutlineNote entity by ids.
func (m *RunMutation) AddOutlineNoteIDs(ids ...string) {
	if m.outline_notes == nil {
		m.outline_notes = make(map[string]struct{})
	}
	for i := range ids {
		m.outline_notes[ids[i]] = struct{}{}
	}
}

// ClearOutlineNotes clears the "outline_notes" edge to the OutlineNote entity.
func (m *RunMutation) ClearOutlineNotes() {
	m.clearedoutline_notes = true
}

// OutlineNotesCleared reports if the "outline_notes" edge to the OutlineNote entity was cleared.
func (m *RunMutation) OutlineNotesCleared() bool {
	return m.clearedoutline_notes
}

// RemoveOutlineNoteIDs removes the "outline_notes" edge to the OutlineNote entity by IDs.
func (m *RunMutation) RemoveOutlineNoteIDs(ids ...string) {
	if m.removedoutline_notes == nil {
		m.removedoutline_notes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.outline_notes, ids[i])
		m.removedoutline_notes[ids[i]] = struct{}{}
	}
}

// RemovedOutlineNotes returns the removed IDs of the "outline_notes" edge to the OutlineNote entity.
func (m *RunMutation) RemovedOutlineNotesIDs() (ids []string) {
	for id := range m.removedoutline_notes {
		ids = append(ids, id)
	}
	return
}

// OutlineNotesIDs returns the "outline_notes" edge IDs in the mutation.
func (m *RunMutation) OutlineNotesIDs() (ids []string) {
	for id := range m.outline_notes {
		ids = append(ids, id)
	}
	return
}

// ResetOutlineNotes resets all changes to the "outline_notes" edge.
func (m *RunMutation) ResetOutlineNotes() {
	m.outline_notes = nil
	m.clearedoutline_notes = false
	m.removedoutline_notes = nil
}

// AddSectionEvidenceIDs adds the "section_evidence" edge to the SectionEvidence entity by ids.
func (m *RunMutation) AddSectionEvidenceIDs(ids ...string) {
	if m.section_evidence == nil {
		m.section_evidence = make(map[string]struct{})
	}
	for i := range ids {
		m.section_evidence[ids[i]] = struct{}{}
	}
}

// ClearSectionEvidence clears the "section_evidence" edge to the SectionEvidence entity.
func (m *RunMutation) ClearSectionEvidence() {
	m.clearedsection_evidence = true
}

// SectionEvidenceCleared reports if the "section_evidence" edge to the SectionEvidence entity was cleared.
func (m *RunMutation) SectionEvidenceCleared() bool {
	return m.clearedsection_evidence
}

// RemoveSectionEvidenceIDs removes the "section_evidence" edge to the SectionEvidence entity by IDs.
func (m *RunMutation) RemoveSectionEvidenceIDs(ids ...string) {
	if m.removedsection_evidence == nil {
		m.removedsection_evidence = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.section_evidence, ids[i])
		m.removedsection_evidence[ids[i]] = struct{}{}
	}
}

// RemovedSectionEvidence returns the removed IDs of the "section_evidence" edge to the SectionEvidence entity.
func (m *RunMutation) RemovedSectionEvidenceIDs() (ids []string) {
	for id := range m.removedsection_evidence {
		ids = append(ids, id)
	}
	return
}

// SectionEvidenceIDs returns the "section_evidence" edge IDs in the mutation.
func (m *RunMutation) SectionEvidenceIDs() (ids []string) {
	for id := range m.section_evidence {
		ids = append(ids, id)
	}
	return
}

// ResetSectionEvidence resets all changes to the "section_evidence" edge.
func (m *RunMutation) ResetSectionEvidence() {
	m.section_evidence = nil
	m.clearedsection_evidence = false
	m.removedsection_evidence = nil
}

// AddDraftSectionIDs adds the "draft_sections" edge to the DraftSection entity by ids.
func (m *RunMutation) AddDraftSectionIDs(ids ...string) {
	if m.draft_sections == nil {
		m.draft_sections = make(map[string]struct{})
	}
	for i := range ids {
		m.draft_sections[ids[i]] = struct{}{}
	}
}

// ClearDraftSections clears the "draft_sections" edge to the DraftSection entity.
func (m *RunMutation) ClearDraftSections() {
	m.cleareddraft_sections = true
}

// DraftSectionsCleared reports if the "draft_sections" edge to the DraftSection entity was cleared.
func (m *RunMutation) DraftSectionsCleared() bool {
	return m.cleareddraft_sections
}

// RemoveDraftSectionIDs removes the "draft_sections" edge to the DraftSection entity by IDs.
func (m *RunMutation) RemoveDraftSectionIDs(ids ...string) {
	if m.removeddraft_sections == nil {
		m.removeddraft_sections = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.draft_sections, ids[i])
		m.removeddraft_sections[ids[i]] = struct{}{}
	}
}

// RemovedDraftSections returns the removed IDs of the "draft_sections" edge to the DraftSection entity.
func (m *RunMutation) RemovedDraftSectionsIDs() (ids []string) {
	for id := range m.removeddraft_sections {
		ids = append(ids, id)
	}
	return
}

// DraftSectionsIDs returns the "draft_sections" edge IDs in the mutation.
func (m *RunMutation) DraftSectionsIDs() (ids []string) {
	for id := range m.draft_sections {
		ids = append(ids, id)
	}
	return
}

// ResetDraftSections resets all changes to the "draft_sections" edge.
func (m *RunMutation) ResetDraftSections() {
	m.draft_sections = nil
	m.cleareddraft_sections = false
	m.removeddraft_sections = nil
}

// AddSectionReviewIDs adds the "section_reviews" edge to the SectionReview entity by ids.
func (m *RunMutation) AddSectionReviewIDs(ids ...string) {
	if m.section_reviews == nil {
		m.section_reviews = make(map[string]struct{})
	}
	for i := range ids {
		m.section_reviews[ids[i]] = struct{}{}
	}
}

// ClearSectionReviews clears the "section_reviews" edge to the SectionReview entity.
func (m *RunMutation) ClearSectionReviews() {
	m.clearedsection_reviews = true
}

// SectionReviewsCleared reports if the "section_reviews" edge to the SectionReview entity was cleared.
func (m *RunMutation) SectionReviewsCleared() bool {
	return m.clearedsection_reviews
}

// RemoveSectionReviewIDs removes the "section_reviews" edge to the SectionReview entity by IDs.
func (m *RunMutation) RemoveSectionReviewIDs(ids ...string) {
	if m.removedsection_reviews == nil {
		m.removedsection_reviews = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.section_reviews, ids[i])
		m.removedsection_reviews[ids[i]] = struct{}{}
	}
}

// RemovedSectionReviews returns the removed IDs of the "section_reviews" edge to the SectionReview entity.
func (m *RunMutation) RemovedSectionReviewsIDs() (ids []string) {
	for id := range m.removedsection_reviews {
		ids = append(ids, id)
	}
	return
}

// SectionReviewsIDs returns the "section_reviews" edge IDs in the mutation.
func (m *RunMutation) SectionReviewsIDs() (ids []string) {
	for id := range m.section_reviews {
		ids = append(ids, id)
	}
	return
}

// ResetSectionReviews resets all changes to the "section_reviews" edge.
func (m *RunMutation) ResetSectionReviews() {
	m.section_reviews = nil
	m.clearedsection_reviews = false
	m.removedsection_reviews = nil
}

// AddRunSourceIDs adds the "run_sources" edge to the RunSource entity by ids.
func (m *RunMutation) AddRunSourceIDs(ids ...string) {
	if m.run_sources == nil {
		m.run_sources = make(map[string]struct{})
	}
	for i := range ids {
		m.run_sources[ids[i]] = struct{}{}
	}
}

// ClearRunSources clears the "run_sources" edge to the RunSource entity.
func (m *RunMutation) ClearRunSources() {
	m.clearedrun_sources = true
}

// RunSourcesCleared reports if the "run_sources" edge to the RunSource entity was cleared.
func (m *RunMutation) RunSourcesCleared() bool {
	return m.clearedrun_sources
}

// RemoveRunSourceIDs removes the "run_sources" edge to the RunSource entity by IDs.
func (m *RunMutation) RemoveRunSourceIDs(ids ...string) {
	if m.removedrun_sources == nil {
		m.removedrun_sources = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.run_sources, ids[i])
		m.removedrun_sources[ids[i]] = struct{}{}
	}
}

// RemovedRunSources returns the removed IDs of the "run_sources" edge to the RunSource entity.
func (m *RunMutation) RemovedRunSourcesIDs() (ids []string) {
	for id := range m.removedrun_sources {
		ids = append(ids, id)
	}
	return
}

// RunSourcesIDs returns the "run_sources" edge IDs in the mutation.
func (m *RunMutation) RunSourcesIDs() (ids []string) {
	for id := range m.run_sources {
		ids = append(ids, id)
	}
	return
}

// ResetRunSources resets all changes to the "run_sources" edge.
func (m *RunMutation) ResetRunSources() {
	m.run_sources = nil
	m.clearedrun_sources = false
	m.removedrun_sources = nil
}

// AddCheckpointIDs adds the "checkpoints" edge to the RunCheckpoint entity by ids.
func (m *RunMutation) AddCheckpointIDs(ids ...string) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the RunCheckpoint entity.
func (m *RunMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the RunCheckpoint entity was cleared.
func (m *RunMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the RunCheckpoint entity by IDs.
func (m *RunMutation) RemoveCheckpointIDs(ids ...string) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the RunCheckpoint entity.
func (m *RunMutation) RemovedCheckpointsIDs() (ids []string) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *RunMutation) CheckpointsIDs() (ids []string) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *RunMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by ids.
func (m *RunMutation) AddArtifactIDs(ids ...string) {
	if m.artifacts == nil {
		m.artifacts = make(map[string]struct{})
	}
	for i := range ids {
		m.artifacts[ids[i]] = struct{}{}
	}
}

// ClearArtifacts clears the "artifacts" edge to the Artifact entity.
func (m *RunMutation) ClearArtifacts() {
	m.clearedartifacts = true
}

// ArtifactsCleared reports if the "artifacts" edge to the Artifact entity was cleared.
func (m *RunMutation) ArtifactsCleared() bool {
	return m.clearedartifacts
}

// RemoveArtifactIDs removes the "artifacts" edge to the Artifact entity by IDs.
func (m *RunMutation) RemoveArtifactIDs(ids ...string) {
	if m.removedartifacts == nil {
		m.removedartifacts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.artifacts, ids[i])
		m.removedartifacts[ids[i]] = struct{}{}
	}
}

// RemovedArtifacts returns the removed IDs of the "artifacts" edge to the Artifact entity.
func (m *RunMutation) RemovedArtifactsIDs() (ids []string) {
	for id := range m.removedartifacts {
		ids = append(ids, id)
	}
	return
}

// ArtifactsIDs returns the "artifacts" edge IDs in the mutation.
func (m *RunMutation) ArtifactsIDs() (ids []string) {
	for id := range m.artifacts {
		ids = append(ids, id)
	}
	return
}

// ResetArtifacts resets all changes to the "artifacts" edge.
func (m *RunMutation) ResetArtifacts() {
	m.artifacts = nil
	m.clearedartifacts = false
	m.removedartifacts = nil
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.tenant_id != nil {
		fields = append(fields, run.FieldTenantID)
	}
	if m.project != nil {
		fields = append(fields, run.FieldProjectID)
	}
	if m.status != nil {
		fields = append(fields, run.FieldStatus)
	}
	if m.current_stage != nil {
		fields = append(fields, run.FieldCurrentStage)
	}
	if m.question != nil {
		fields = append(fields, run.FieldQuestion)
	}
	if m.output_type != nil {
		fields = append(fields, run.FieldOutputType)
	}
	if m.llm_provider != nil {
		fields = append(fields, run.FieldLlmProvider)
	}
	if m.llm_model != nil {
		fields = append(fields, run.FieldLlmModel)
	}
	if m.budgets != nil {
		fields = append(fields, run.FieldBudgets)
	}
	if m.usage != nil {
		fields = append(fields, run.FieldUsage)
	}
	if m.failure_reason != nil {
		fields = append(fields, run.FieldFailureReason)
	}
	if m.error_code != nil {
		fields = append(fields, run.FieldErrorCode)
	}
	if m.client_request_id != nil {
		fields = append(fields, run.FieldClientRequestID)
	}
	if m.retry_count != nil {
		fields = append(fields, run.FieldRetryCount)
	}
	if m.started_at != nil {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, run.FieldFinishedAt)
	}
	if m.cancel_requested_at != nil {
		fields = append(fields, run.FieldCancelRequestedAt)
	}
	if m.created_at != nil {
		fields = append(fields, run.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, run.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldTenantID:
		return m.TenantID()
	case run.FieldProjectID:
		return m.ProjectID()
	case run.FieldStatus:
		return m.Status()
	case run.FieldCurrentStage:
		return m.CurrentStage()
	case run.FieldQuestion:
		return m.Question()
	case run.FieldOutputType:
		return m.OutputType()
	case run.FieldLlmProvider:
		return m.LlmProvider()
	case run.FieldLlmModel:
		return m.LlmModel()
	case run.FieldBudgets:
		return m.Budgets()
	case run.FieldUsage:
		return m.Usage()
	case run.FieldFailureReason:
		return m.FailureReason()
	case run.FieldErrorCode:
		return m.ErrorCode()
	case run.FieldClientRequestID:
		return m.ClientRequestID()
	case run.FieldRetryCount:
		return m.RetryCount()
	case run.FieldStartedAt:
		return m.StartedAt()
	case run.FieldFinishedAt:
		return m.FinishedAt()
	case run.FieldCancelRequestedAt:
		return m.CancelRequestedAt()
	case run.FieldCreatedAt:
		return m.CreatedAt()
	case run.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldTenantID:
		return m.OldTenantID(ctx)
	case run.FieldProjectID:
		return m.OldProjectID(ctx)
	case run.FieldStatus:
		return m.OldStatus(ctx)
	case run.FieldCurrentStage:
		return m.OldCurrentStage(ctx)
	case run.FieldQuestion:
		return m.OldQuestion(ctx)
	case run.FieldOutputType:
		return m.OldOutputType(ctx)
	case run.FieldLlmProvider:
		return m.OldLlmProvider(ctx)
	case run.FieldLlmModel:
		return m.OldLlmModel(ctx)
	case run.FieldBudgets:
		return m.OldBudgets(ctx)
	case run.FieldUsage:
		return m.OldUsage(ctx)
	case run.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case run.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case run.FieldClientRequestID:
		return m.OldClientRequestID(ctx)
	case run.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case run.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case run.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case run.FieldCancelRequestedAt:
		return m.OldCancelRequestedAt(ctx)
	case run.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case run.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case run.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case run.FieldStatus:
		v, ok := value.(run.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case run.FieldCurrentStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStage(v)
		return nil
	case run.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case run.FieldOutputType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputType(v)
		return nil
	case run.FieldLlmProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmProvider(v)
		return nil
	case run.FieldLlmModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmModel(v)
		return nil
	case run.FieldBudgets:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudgets(v)
		return nil
	case run.FieldUsage:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsage(v)
		return nil
	case run.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case run.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case run.FieldClientRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientRequestID(v)
		return nil
	case run.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case run.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case run.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case run.FieldCancelRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequestedAt(v)
		return nil
	case run.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case run.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, run.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case run.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case run.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldCurrentStage) {
		fields = append(fields, run.FieldCurrentStage)
	}
	if m.FieldCleared(run.FieldLlmProvider) {
		fields = append(fields, run.FieldLlmProvider)
	}
	if m.FieldCleared(run.FieldLlmModel) {
		fields = append(fields, run.FieldLlmModel)
	}
	if m.FieldCleared(run.FieldBudgets) {
		fields = append(fields, run.FieldBudgets)
	}
	if m.FieldCleared(run.FieldUsage) {
		fields = append(fields, run.FieldUsage)
	}
	if m.FieldCleared(run.FieldFailureReason) {
		fields = append(fields, run.FieldFailureReason)
	}
	if m.FieldCleared(run.FieldErrorCode) {
		fields = append(fields, run.FieldErrorCode)
	}
	if m.FieldCleared(run.FieldClientRequestID) {
		fields = append(fields, run.FieldClientRequestID)
	}
	if m.FieldCleared(run.FieldStartedAt) {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.FieldCleared(run.FieldFinishedAt) {
		fields = append(fields, run.FieldFinishedAt)
	}
	if m.FieldCleared(run.FieldCancelRequestedAt) {
		fields = append(fields, run.FieldCancelRequestedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldCurrentStage:
		m.ClearCurrentStage()
		return nil
	case run.FieldLlmProvider:
		m.ClearLlmProvider()
		return nil
	case run.FieldLlmModel:
		m.ClearLlmModel()
		return nil
	case run.FieldBudgets:
		m.ClearBudgets()
		return nil
	case run.FieldUsage:
		m.ClearUsage()
		return nil
	case run.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case run.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case run.FieldClientRequestID:
		m.ClearClientRequestID()
		return nil
	case run.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case run.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case run.FieldCancelRequestedAt:
		m.ClearCancelRequestedAt()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldTenantID:
		m.ResetTenantID()
		return nil
	case run.FieldProjectID:
		m.ResetProjectID()
		return nil
	case run.FieldStatus:
		m.ResetStatus()
		return nil
	case run.FieldCurrentStage:
		m.ResetCurrentStage()
		return nil
	case run.FieldQuestion:
		m.ResetQuestion()
		return nil
	case run.FieldOutputType:
		m.ResetOutputType()
		return nil
	case run.FieldLlmProvider:
		m.ResetLlmProvider()
		return nil
	case run.FieldLlmModel:
		m.ResetLlmModel()
		return nil
	case run.FieldBudgets:
		m.ResetBudgets()
		return nil
	case run.FieldUsage:
		m.ResetUsage()
		return nil
	case run.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case run.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case run.FieldClientRequestID:
		m.ResetClientRequestID()
		return nil
	case run.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case run.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case run.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case run.FieldCancelRequestedAt:
		m.ResetCancelRequestedAt()
		return nil
	case run.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case run.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 11)
	if m.project != nil {
		edges = append(edges, run.EdgeProject)
	}
	if m.jobs != nil {
		edges = append(edges, run.EdgeJobs)
	}
	if m.events != nil {
		edges = append(edges, run.EdgeEvents)
	}
	if m.sections != nil {
		edges = append(edges, run.EdgeSections)
	}
	if m.outline_notes != nil {
		edges = append(edges, run.EdgeOutlineNotes)
	}
	if m.section_evidence != nil {
		edges = append(edges, run.EdgeSectionEvidence)
	}
	if m.draft_sections != nil {
		edges = append(edges, run.EdgeDraftSections)
	}
	if m.section_reviews != nil {
		edges = append(edges, run.EdgeSectionReviews)
	}
	if m.run_sources != nil {
		edges = append(edges, run.EdgeRunSources)
	}
	if m.checkpoints != nil {
		edges = append(edges, run.EdgeCheckpoints)
	}
	if m.artifacts != nil {
		edges = append(edges, run.EdgeArtifacts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case run.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeSections:
		ids := make([]ent.Value, 0, len(m.sections))
		for id := range m.sections {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeOutlineNotes:
		ids := make([]ent.Value, 0, len(m.outline_notes))
		for id := range m.outline_notes {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeSectionEvidence:
		ids := make([]ent.Value, 0, len(m.section_evidence))
		for id := range m.section_evidence {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeDraftSections:
		ids := make([]ent.Value, 0, len(m.draft_sections))
		for id := range m.draft_sections {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeSectionReviews:
		ids := make([]ent.Value, 0, len(m.section_reviews))
		for id := range m.section_reviews {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeRunSources:
		ids := make([]ent.Value, 0, len(m.run_sources))
		for id := range m.run_sources {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.artifacts))
		for id := range m.artifacts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 11)
	if m.removedjobs != nil {
		edges = append(edges, run.EdgeJobs)
	}
	if m.removedevents != nil {
		edges = append(edges, run.EdgeEvents)
	}
	if m.removedsections != nil {
		edges = append(edges, run.EdgeSections)
	}
	if m.removedoutline_notes != nil {
		edges = append(edges, run.EdgeOutlineNotes)
	}
	if m.removedsection_evidence != nil {
		edges = append(edges, run.EdgeSectionEvidence)
	}
	if m.removeddraft_sections != nil {
		edges = append(edges, run.EdgeDraftSections)
	}
	if m.removedsection_reviews != nil {
		edges = append(edges, run.EdgeSectionReviews)
	}
	if m.removedrun_sources != nil {
		edges = append(edges, run.EdgeRunSources)
	}
	if m.removedcheckpoints != nil {
		edges = append(edges, run.EdgeCheckpoints)
	}
	if m.removedartifacts != nil {
		edges = append(edges, run.EdgeArtifacts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeSections:
		ids := make([]ent.Value, 0, len(m.removedsections))
		for id := range m.removedsections {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeOutlineNotes:
		ids := make([]ent.Value, 0, len(m.removedoutline_notes))
		for id := range m.removedoutline_notes {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeSectionEvidence:
		ids := make([]ent.Value, 0, len(m.removedsection_evidence))
		for id := range m.removedsection_evidence {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeDraftSections:
		ids := make([]ent.Value, 0, len(m.removeddraft_sections))
		for id := range m.removeddraft_sections {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeSectionReviews:
		ids := make([]ent.Value, 0, len(m.removedsection_reviews))
		for id := range m.removedsection_reviews {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeRunSources:
		ids := make([]ent.Value, 0, len(m.removedrun_sources))
		for id := range m.removedrun_sources {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.removedartifacts))
		for id := range m.removedartifacts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 11)
	if m.clearedproject {
		edges = append(edges, run.EdgeProject)
	}
	if m.clearedjobs {
		edges = append(edges, run.EdgeJobs)
	}
	if m.clearedevents {
		edges = append(edges, run.EdgeEvents)
	}
	if m.clearedsections {
		edges = append(edges, run.EdgeSections)
	}
	if m.clearedoutline_notes {
		edges = append(edges, run.EdgeOutlineNotes)
	}
	if m.clearedsection_evidence {
		edges = append(edges, run.EdgeSectionEvidence)
	}
	if m.cleareddraft_sections {
		edges = append(edges, run.EdgeDraftSections)
	}
	if m.clearedsection_reviews {
		edges = append(edges, run.EdgeSectionReviews)
	}
	if m.clearedrun_sources {
		edges = append(edges, run.EdgeRunSources)
	}
	if m.clearedcheckpoints {
		edges = append(edges, run.EdgeCheckpoints)
	}
	if m.clearedartifacts {
		edges = append(edges, run.EdgeArtifacts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	switch name {
	case run.EdgeProject:
		return m.clearedproject
	case run.EdgeJobs:
		return m.clearedjobs
	case run.EdgeEvents:
		return m.clearedevents
	case run.EdgeSections:
		return m.clearedsections
	case run.EdgeOutlineNotes:
		return m.clearedoutline_notes
	case run.EdgeSectionEvidence:
		return m.clearedsection_evidence
	case run.EdgeDraftSections:
		return m.cleareddraft_sections
	case run.EdgeSectionReviews:
		return m.clearedsection_reviews
	case run.EdgeRunSources:
		return m.clearedrun_sources
	case run.EdgeCheckpoints:
		return m.clearedcheckpoints
	case run.EdgeArtifacts:
		return m.clearedartifacts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	switch name {
	case run.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	switch name {
	case run.EdgeProject:
		m.ResetProject()
		return nil
	case run.EdgeJobs:
		m.ResetJobs()
		return nil
	case run.EdgeEvents:
		m.ResetEvents()
		return nil
	case run.EdgeSections:
		m.ResetSections()
		return nil
	case run.EdgeOutlineNotes:
		m.ResetOutlineNotes()
		return nil
	case run.EdgeSectionEvidence:
		m.ResetSectionEvidence()
		return nil
	case run.EdgeDraftSections:
		m.ResetDraftSections()
		return nil
	case run.EdgeSectionReviews:
		m.ResetSectionReviews()
		return nil
	case run.EdgeRunSources:
		m.ResetRunSources()
		return nil
	case run.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	case run.EdgeArtifacts:
		m.ResetArtifacts()
		return nil
	}
	return fmt.Errorf("unknown Run edge %s", name)
}

// RunCheckpointMutation represents an operation that mutates the RunCheckpoint nodes in the graph.
type RunCheckpointMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	stage         *string
	payload       *map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*RunCheckpoint, error)
	predicates    []predicate.RunCheckpoint
}

var _ ent.Mutation = (*RunCheckpointMutation)(nil)

// runcheckpointOption allows management of the mutation configuration using functional options.
type runcheckpointOption func(*RunCheckpointMutation)

// newRunCheckpointMutation creates new mutation for the RunCheckpoint entity.
func newRunCheckpointMutation(c config, op Op, opts ...runcheckpointOption) *RunCheckpointMutation {
	m := &RunCheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeRunCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunCheckpointID sets the ID field of the mutation.
func withRunCheckpointID(id string) runcheckpointOption {
	return func(m *RunCheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *RunCheckpoint
		)
		m.oldValue = func(ctx context.Context) (*RunCheckpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunCheckpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunCheckpoint sets the old RunCheckpoint of the mutation.
func withRunCheckpoint(node *RunCheckpoint) runcheckpointOption {
	return func(m *RunCheckpointMutation) {
		m.oldValue = func(context.Context) (*RunCheckpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunCheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunCheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunCheckpoint entities.
func (m *RunCheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunCheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunCheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunCheckpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *RunCheckpointMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *RunCheckpointMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the RunCheckpoint entity.
// If the RunCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunCheckpointMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *RunCheckpointMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetRunID sets the "run_id" field.
func (m *RunCheckpointMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunCheckpointMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunCheckpoint entity.
// If the RunCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunCheckpointMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunCheckpointMutation) ResetRunID() {
	m.run = nil
}

// SetStage sets the "stage" field.
func (m *RunCheckpointMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *RunCheckpointMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the RunCheckpoint entity.
// If the RunCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunCheckpointMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *RunCheckpointMutation) ResetStage() {
	m.stage = nil
}

// SetPayload sets the "payload" field.
func (m *RunCheckpointMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *RunCheckpointMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the RunCheckpoint entity.
// If the RunCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunCheckpointMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *RunCheckpointMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RunCheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunCheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RunCheckpoint entity.
// If the RunCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunCheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunCheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RunCheckpointMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RunCheckpointMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RunCheckpoint entity.
// If the RunCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunCheckpointMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RunCheckpointMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *RunCheckpointMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runcheckpoint.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *RunCheckpointMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunCheckpointMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunCheckpointMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunCheckpointMutation builder.
func (m *RunCheckpointMutation) Where(ps ...predicate.RunCheckpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunCheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunCheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunCheckpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunCheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunCheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunCheckpoint).
func (m *RunCheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunCheckpointMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, runcheckpoint.FieldTenantID)
	}
	if m.run != nil {
		fields = append(fields, runcheckpoint.FieldRunID)
	}
	if m.stage != nil {
		fields = append(fields, runcheckpoint.FieldStage)
	}
	if m.payload != nil {
		fields = append(fields, runcheckpoint.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, runcheckpoint.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, runcheckpoint.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunCheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runcheckpoint.FieldTenantID:
		return m.TenantID()
	case runcheckpoint.FieldRunID:
		return m.RunID()
	case runcheckpoint.FieldStage:
		return m.Stage()
	case runcheckpoint.FieldPayload:
		return m.Payload()
	case runcheckpoint.FieldCreatedAt:
		return m.CreatedAt()
	case runcheckpoint.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunCheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runcheckpoint.FieldTenantID:
		return m.OldTenantID(ctx)
	case runcheckpoint.FieldRunID:
		return m.OldRunID(ctx)
	case runcheckpoint.FieldStage:
		return m.OldStage(ctx)
	case runcheckpoint.FieldPayload:
		return m.OldPayload(ctx)
	case runcheckpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case runcheckpoint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunCheckpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunCheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runcheckpoint.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case runcheckpoint.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runcheckpoint.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case runcheckpoint.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case runcheckpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case runcheckpoint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunCheckpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunCheckpointMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunCheckpointMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunCheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RunCheckpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunCheckpointMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunCheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunCheckpointMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RunCheckpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunCheckpointMutation) ResetField(name string) error {
	switch name {
	case runcheckpoint.FieldTenantID:
		m.ResetTenantID()
		return nil
	case runcheckpoint.FieldRunID:
		m.ResetRunID()
		return nil
	case runcheckpoint.FieldStage:
		m.ResetStage()
		return nil
	case runcheckpoint.FieldPayload:
		m.ResetPayload()
		return nil
	case runcheckpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case runcheckpoint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RunCheckpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunCheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runcheckpoint.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunCheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runcheckpoint.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunCheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunCheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunCheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runcheckpoint.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunCheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case runcheckpoint.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunCheckpointMutation) ClearEdge(name string) error {
	switch name {
	case runcheckpoint.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunCheckpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunCheckpointMutation) ResetEdge(name string) error {
	switch name {
	case runcheckpoint.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunCheckpoint edge %s", name)
}

// RunEventMutation represents an operation that mutates the RunEvent nodes in the graph.
type RunEventMutation struct {
	config
	op              Op
	typ             string
	id              *string
	tenant_id       *string
	event_number    *int
	addevent_number *int
	ts              *time.Time
	stage           *string
	event_type      *string
	level           *string
	message         *string
	payload         *map[string]interface{}
	clearedFields   map[string]struct{}
	run             *string
	clearedrun      bool
	done            bool
	oldValue        func(context.Context) (*RunEvent, error)
	predicates      []predicate.RunEvent
}

var _ ent.Mutation = (*RunEventMutation)(nil)

// runeventOption allows management of the mutation configuration using functional options.
type runeventOption func(*RunEventMutation)

// newRunEventMutation creates new mutation for the RunEvent entity.
func newRunEventMutation(c config, op Op, opts ...runeventOption) *RunEventMutation {
	m := &RunEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRunEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunEventID sets the ID field of the mutation.
func withRunEventID(id string) runeventOption {
	return func(m *RunEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RunEvent
		)
		m.oldValue = func(ctx context.Context) (*RunEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunEvent sets the old RunEvent of the mutation.
func withRunEvent(node *RunEvent) runeventOption {
	return func(m *RunEventMutation) {
		m.oldValue = func(context.Context) (*RunEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunEvent entities.
func (m *RunEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *RunEventMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *RunEventMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *RunEventMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetRunID sets the "run_id" field.
func (m *RunEventMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunEventMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunEventMutation) ResetRunID() {
	m.run = nil
}

// SetEventNumber sets the "event_number" field.
func (m *RunEventMutation) SetEventNumber(i int) {
	m.event_number = &i
	m.addevent_number = nil
}

// EventNumber returns the value of the "event_number" field in the mutation.
func (m *RunEventMutation) EventNumber() (r int, exists bool) {
	v := m.event_number
	if v == nil {
		return
	}
	return *v, true
}

// OldEventNumber returns the old "event_number" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldEventNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventNumber: %w", err)
	}
	return oldValue.EventNumber, nil
}

// AddEventNumber adds i to the "event_number" field.
func (m *RunEventMutation) AddEventNumber(i int) {
	if m.addevent_number != nil {
		*m.addevent_number += i
	} else {
		m.addevent_number = &i
	}
}

// AddedEventNumber returns the value that was added to the "event_number" field in this mutation.
func (m *RunEventMutation) AddedEventNumber() (r int, exists bool) {
	v := m.addevent_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetEventNumber resets all changes to the "event_number" field.
func (m *RunEventMutation) ResetEventNumber() {
	m.event_number = nil
	m.addevent_number = nil
}

// SetTs sets the "ts" field.
func (m *RunEventMutation) SetTs(t time.Time) {
	m.ts = &t
}

// Ts returns the value of the "ts" field in the mutation.
func (m *RunEventMutation) Ts() (r time.Time, exists bool) {
	v := m.ts
	if v == nil {
		return
	}
	return *v, true
}

// OldTs returns the old "ts" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldTs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTs: %w", err)
	}
	return oldValue.Ts, nil
}

// ResetTs resets all changes to the "ts" field.
func (m *RunEventMutation) ResetTs() {
	m.ts = nil
}

// SetStage sets the "stage" field.
func (m *RunEventMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *RunEventMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldStage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ClearStage clears the value of the "stage" field.
func (m *RunEventMutation) ClearStage() {
	m.stage = nil
	m.clearedFields[runevent.FieldStage] = struct{}{}
}

// StageCleared returns if the "stage" field was cleared in this mutation.
func (m *RunEventMutation) StageCleared() bool {
	_, ok := m.clearedFields[runevent.FieldStage]
	return ok
}

// ResetStage resets all changes to the "stage" field.
func (m *RunEventMutation) ResetStage() {
	m.stage = nil
	delete(m.clearedFields, runevent.FieldStage)
}

// SetEventType sets the "event_type" field.
func (m *RunEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *RunEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *RunEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetLevel sets the "level" field.
func (m *RunEventMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *RunEventMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *RunEventMutation) ResetLevel() {
	m.level = nil
}

// SetMessage sets the "message" field.
func (m *RunEventMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *RunEventMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *RunEventMutation) ResetMessage() {
	m.message = nil
}

// SetPayload sets the "payload" field.
func (m *RunEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *RunEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *RunEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[runevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *RunEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[runevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *RunEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, runevent.FieldPayload)
}

// ClearRun clears the "run" edge to the Run entity.
func (m *RunEventMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runevent.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *RunEventMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunEventMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunEventMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunEventMutation builder.
func (m *RunEventMutation) Where(ps ...predicate.RunEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunEvent).
func (m *RunEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant_id != nil {
		fields = append(fields, runevent.FieldTenantID)
	}
	if m.run != nil {
		fields = append(fields, runevent.FieldRunID)
	}
	if m.event_number != nil {
		fields = append(fields, runevent.FieldEventNumber)
	}
	if m.ts != nil {
		fields = append(fields, runevent.FieldTs)
	}
	if m.stage != nil {
		fields = append(fields, runevent.FieldStage)
	}
	if m.event_type != nil {
		fields = append(fields, runevent.FieldEventType)
	}
	if m.level != nil {
		fields = append(fields, runevent.FieldLevel)
	}
	if m.message != nil {
		fields = append(fields, runevent.FieldMessage)
	}
	if m.payload != nil {
		fields = append(fields, runevent.FieldPayload)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldTenantID:
		return m.TenantID()
	case runevent.FieldRunID:
		return m.RunID()
	case runevent.FieldEventNumber:
		return m.EventNumber()
	case runevent.FieldTs:
		return m.Ts()
	case runevent.FieldStage:
		return m.Stage()
	case runevent.FieldEventType:
		return m.EventType()
	case runevent.FieldLevel:
		return m.Level()
	case runevent.FieldMessage:
		return m.Message()
	case runevent.FieldPayload:
		return m.Payload()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runevent.FieldTenantID:
		return m.OldTenantID(ctx)
	case runevent.FieldRunID:
		return m.OldRunID(ctx)
	case runevent.FieldEventNumber:
		return m.OldEventNumber(ctx)
	case runevent.FieldTs:
		return m.OldTs(ctx)
	case runevent.FieldStage:
		return m.OldStage(ctx)
	case runevent.FieldEventType:
		return m.OldEventType(ctx)
	case runevent.FieldLevel:
		return m.OldLevel(ctx)
	case runevent.FieldMessage:
		return m.OldMessage(ctx)
	case runevent.FieldPayload:
		return m.OldPayload(ctx)
	}
	return nil, fmt.Errorf("unknown RunEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case runevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runevent.FieldEventNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventNumber(v)
		return nil
	case runevent.FieldTs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTs(v)
		return nil
	case runevent.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case runevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case runevent.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case runevent.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case runevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunEventMutation) AddedFields() []string {
	var fields []string
	if m.addevent_number != nil {
		fields = append(fields, runevent.FieldEventNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldEventNumber:
		return m.AddedEventNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldEventNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventNumber(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runevent.FieldStage) {
		fields = append(fields, runevent.FieldStage)
	}
	if m.FieldCleared(runevent.FieldPayload) {
		fields = append(fields, runevent.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunEventMutation) ClearField(name string) error {
	switch name {
	case runevent.FieldStage:
		m.ClearStage()
		return nil
	case runevent.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown RunEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunEventMutation) ResetField(name string) error {
	switch name {
	case runevent.FieldTenantID:
		m.ResetTenantID()
		return nil
	case runevent.FieldRunID:
		m.ResetRunID()
		return nil
	case runevent.FieldEventNumber:
		m.ResetEventNumber()
		return nil
	case runevent.FieldTs:
		m.ResetTs()
		return nil
	case runevent.FieldStage:
		m.ResetStage()
		return nil
	case runevent.FieldEventType:
		m.ResetEventType()
		return nil
	case runevent.FieldLevel:
		m.ResetLevel()
		return nil
	case runevent.FieldMessage:
		m.ResetMessage()
		return nil
	case runevent.FieldPayload:
		m.ResetPayload()
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runevent.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runevent.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunEventMutation) EdgeCleared(name string) bool {
	switch name {
	case runevent.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunEventMutation) ClearEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunEventMutation) ResetEdge(name string) error {
	switch name {
	case runevent.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunEvent edge %s", name)
}

// RunSectionMutation represents an operation that mutates the RunSection nodes in the graph.
type RunSectionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	section_id       *string
	title            *string
	goal             *string
	section_order    *int
	addsection_order *int
	clearedFields    map[string]struct{}
	run              *string
	clearedrun       bool
	done             bool
	oldValue         func(context.Context) (*RunSection, error)
	predicates       []predicate.RunSection
}

var _ ent.Mutation = (*RunSectionMutation)(nil)

// runsectionOption allows management of the mutation configuration using functional options.
type runsectionOption func(*RunSectionMutation)

// newRunSectionMutation creates new mutation for the RunSection entity.
func newRunSectionMutation(c config, op Op, opts ...runsectionOption) *RunSectionMutation {
	m := &RunSectionMutation{
		config:        c,
		op:            op,
		typ:           TypeRunSection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunSectionID sets the ID field of the mutation.
func withRunSectionID(id string) runsectionOption {
	return func(m *RunSectionMutation) {
		var (
			err   error
			once  sync.Once
			value *RunSection
		)
		m.oldValue = func(ctx context.Context) (*RunSection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunSection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunSection sets the old RunSection of the mutation.
func withRunSection(node *RunSection) runsectionOption {
	return func(m *RunSectionMutation) {
		m.oldValue = func(context.Context) (*RunSection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunSectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunSectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunSection entities.
func (m *RunSectionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunSectionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunSectionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunSection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *RunSectionMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *RunSectionMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the RunSection entity.
// If the RunSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSectionMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *RunSectionMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetRunID sets the "run_id" field.
func (m *RunSectionMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunSectionMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunSection entity.
// If the RunSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSectionMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunSectionMutation) ResetRunID() {
	m.run = nil
}

// SetSectionID sets the "section_id" field.
func (m *RunSectionMutation) SetSectionID(s string) {
	m.section_id = &s
}

// SectionID returns the value of the "section_id" field in the mutation.
func (m *RunSectionMutation) SectionID() (r string, exists bool) {
	v := m.section_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionID returns the old "section_id" field's value of the RunSection entity.
// If the RunSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSectionMutation) OldSectionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionID: %w", err)
	}
	return oldValue.SectionID, nil
}

// ResetSectionID resets all changes to the "section_id" field.
func (m *RunSectionMutation) ResetSectionID() {
	m.section_id = nil
}

// SetTitle sets the "title" field.
func (m *RunSectionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RunSectionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the RunSection entity.
// If the RunSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSectionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *RunSectionMutation) ResetTitle() {
	m.title = nil
}

// SetGoal sets the "goal" field.
func (m *RunSectionMutation) SetGoal(s string) {
	m.goal = &s
}

// Goal returns the value of the "goal" field in the mutation.
func (m *RunSectionMutation) Goal() (r string, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the RunSection entity.
// If the RunSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSectionMutation) OldGoal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ResetGoal resets all changes to the "goal" field.
func (m *RunSectionMutation) ResetGoal() {
	m.goal = nil
}

// SetSectionOrder sets the "section_order" field.
func (m *RunSectionMutation) SetSectionOrder(i int) {
	m.section_order = &i
	m.addsection_order = nil
}

// SectionOrder returns the value of the "section_order" field in the mutation.
func (m *RunSectionMutation) SectionOrder() (r int, exists bool) {
	v := m.section_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionOrder returns the old "section_order" field's value of the RunSection entity.
// If the RunSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSectionMutation) OldSectionOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionOrder: %w", err)
	}
	return oldValue.SectionOrder, nil
}

// AddSectionOrder adds i to the "section_order" field.
func (m *RunSectionMutation) AddSectionOrder(i int) {
	if m.addsection_order != nil {
		*m.addsection_order += i
	} else {
		m.addsection_order = &i
	}
}

// AddedSectionOrder returns the value that was added to the "section_order" field in this mutation.
func (m *RunSectionMutation) AddedSectionOrder() (r int, exists bool) {
	v := m.addsection_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSectionOrder resets all changes to the "section_order" field.
func (m *RunSectionMutation) ResetSectionOrder() {
	m.section_order = nil
	m.addsection_order = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *RunSectionMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runsection.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *RunSectionMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunSectionMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunSectionMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunSectionMutation builder.
func (m *RunSectionMutation) Where(ps ...predicate.RunSection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunSectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunSectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunSection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunSectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunSectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunSection).
func (m *RunSectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunSectionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, runsection.FieldTenantID)
	}
	if m.run != nil {
		fields = append(fields, runsection.FieldRunID)
	}
	if m.section_id != nil {
		fields = append(fields, runsection.FieldSectionID)
	}
	if m.title != nil {
		fields = append(fields, runsection.FieldTitle)
	}
	if m.goal != nil {
		fields = append(fields, runsection.FieldGoal)
	}
	if m.section_order != nil {
		fields = append(fields, runsection.FieldSectionOrder)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunSectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runsection.FieldTenantID:
		return m.TenantID()
	case runsection.FieldRunID:
		return m.RunID()
	case runsection.FieldSectionID:
		return m.SectionID()
	case runsection.FieldTitle:
		return m.Title()
	case runsection.FieldGoal:
		return m.Goal()
	case runsection.FieldSectionOrder:
		return m.SectionOrder()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunSectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runsection.FieldTenantID:
		return m.OldTenantID(ctx)
	case runsection.FieldRunID:
		return m.OldRunID(ctx)
	case runsection.FieldSectionID:
		return m.OldSectionID(ctx)
	case runsection.FieldTitle:
		return m.OldTitle(ctx)
	case runsection.FieldGoal:
		return m.OldGoal(ctx)
	case runsection.FieldSectionOrder:
		return m.OldSectionOrder(ctx)
	}
	return nil, fmt.Errorf("unknown RunSection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunSectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runsection.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case runsection.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runsection.FieldSectionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionID(v)
		return nil
	case runsection.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case runsection.FieldGoal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case runsection.FieldSectionOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionOrder(v)
		return nil
	}
	return fmt.Errorf("unknown RunSection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunSectionMutation) AddedFields() []string {
	var fields []string
	if m.addsection_order != nil {
		fields = append(fields, runsection.FieldSectionOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunSectionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runsection.FieldSectionOrder:
		return m.AddedSectionOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunSectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runsection.FieldSectionOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSectionOrder(v)
		return nil
	}
	return fmt.Errorf("unknown RunSection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunSectionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunSectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunSectionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RunSection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunSectionMutation) ResetField(name string) error {
	switch name {
	case runsection.FieldTenantID:
		m.ResetTenantID()
		return nil
	case runsection.FieldRunID:
		m.ResetRunID()
		return nil
	case runsection.FieldSectionID:
		m.ResetSectionID()
		return nil
	case runsection.FieldTitle:
		m.ResetTitle()
		return nil
	case runsection.FieldGoal:
		m.ResetGoal()
		return nil
	case runsection.FieldSectionOrder:
		m.ResetSectionOrder()
		return nil
	}
	return fmt.Errorf("unknown RunSection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunSectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runsection.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunSectionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runsection.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunSectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunSectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunSectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runsection.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunSectionMutation) EdgeCleared(name string) bool {
	switch name {
	case runsection.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunSectionMutation) ClearEdge(name string) error {
	switch name {
	case runsection.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunSection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunSectionMutation) ResetEdge(name string) error {
	switch name {
	case runsection.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunSection edge %s", name)
}

// RunSourceMutation represents an operation that mutates the RunSource nodes in the graph.
type RunSourceMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	source_id     *string
	intent        *string
	query         *string
	rank          *int
	addrank       *int
	score         *float64
	addscore      *float64
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*RunSource, error)
	predicates    []predicate.RunSource
}

var _ ent.Mutation = (*RunSourceMutation)(nil)

// runsourceOption allows management of the mutation configuration using functional options.
type runsourceOption func(*RunSourceMutation)

// newRunSourceMutation creates new mutation for the RunSource entity.
func newRunSourceMutation(c config, op Op, opts ...runsourceOption) *RunSourceMutation {
	m := &RunSourceMutation{
		config:        c,
		op:            op,
		typ:           TypeRunSource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunSourceID sets the ID field of the mutation.
func withRunSourceID(id string) runsourceOption {
	return func(m *RunSourceMutation) {
		var (
			err   error
			once  sync.Once
			value *RunSource
		)
		m.oldValue = func(ctx context.Context) (*RunSource, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunSource.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunSource sets the old RunSource of the mutation.
func withRunSource(node *RunSource) runsourceOption {
	return func(m *RunSourceMutation) {
		m.oldValue = func(context.Context) (*RunSource, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunSourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunSourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunSource entities.
func (m *RunSourceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunSourceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunSourceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunSource.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *RunSourceMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *RunSourceMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the RunSource entity.
// If the RunSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSourceMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *RunSourceMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetRunID sets the "run_id" field.
func (m *RunSourceMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunSourceMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunSource entity.
// If the RunSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSourceMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunSourceMutation) ResetRunID() {
	m.run = nil
}

// SetSourceID sets the "source_id" field.
func (m *RunSourceMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *RunSourceMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the RunSource entity.
// If the RunSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSourceMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *RunSourceMutation) ResetSourceID() {
	m.source_id = nil
}

// SetIntent sets the "intent" field.
func (m *RunSourceMutation) SetIntent(s string) {
	m.intent = &s
}

// Intent returns the value of the "intent" field in the mutation.
func (m *RunSourceMutation) Intent() (r string, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntent returns the old "intent" field's value of the RunSource entity.
// If the RunSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSourceMutation) OldIntent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntent: %w", err)
	}
	return oldValue.Intent, nil
}

// ClearIntent clears the value of the "intent" field.
func (m *RunSourceMutation) ClearIntent() {
	m.intent = nil
	m.clearedFields[runsource.FieldIntent] = struct{}{}
}

// IntentCleared returns if the "intent" field was cleared in this mutation.
func (m *RunSourceMutation) IntentCleared() bool {
	_, ok := m.clearedFields[runsource.FieldIntent]
	return ok
}

// ResetIntent resets all changes to the "intent" field.
func (m *RunSourceMutation) ResetIntent() {
	m.intent = nil
	delete(m.clearedFields, runsource.FieldIntent)
}

// SetQuery sets the "query" field.
func (m *RunSourceMutation) SetQuery(s string) {
	m.query = &s
}

// Query returns the value of the "query" field in the mutation.
func (m *RunSourceMutation) Query() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQuery returns the old "query" field's value of the RunSource entity.
// If the RunSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSourceMutation) OldQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuery: %w", err)
	}
	return oldValue.Query, nil
}

// ClearQuery clears the value of the "query" field.
func (m *RunSourceMutation) ClearQuery() {
	m.query = nil
	m.clearedFields[runsource.FieldQuery] = struct{}{}
}

// QueryCleared returns if the "query" field was cleared in this mutation.
func (m *RunSourceMutation) QueryCleared() bool {
	_, ok := m.clearedFields[runsource.FieldQuery]
	return ok
}

// ResetQuery resets all changes to the "query" field.
func (m *RunSourceMutation) ResetQuery() {
	m.query = nil
	delete(m.clearedFields, runsource.FieldQuery)
}

// SetRank sets the "rank" field.
func (m *RunSourceMutation) SetRank(i int) {
	m.rank = &i
	m.addrank = nil
}

// Rank returns the value of the "rank" field in the mutation.
func (m *RunSourceMutation) Rank() (r int, exists bool) {
	v := m.rank
	if v == nil {
		return
	}
	return *v, true
}

// OldRank returns the old "rank" field's value of the RunSource entity.
// If the RunSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSourceMutation) OldRank(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRank: %w", err)
	}
	return oldValue.Rank, nil
}

// AddRank adds i to the "rank" field.
func (m *RunSourceMutation) AddRank(i int) {
	if m.addrank != nil {
		*m.addrank += i
	} else {
		m.addrank = &i
	}
}

// AddedRank returns the value that was added to the "rank" field in this mutation.
func (m *RunSourceMutation) AddedRank() (r int, exists bool) {
	v := m.addrank
	if v == nil {
		return
	}
	return *v, true
}

// ResetRank resets all changes to the "rank" field.
func (m *RunSourceMutation) ResetRank() {
	m.rank = nil
	m.addrank = nil
}

// SetScore sets the "score" field.
func (m *RunSourceMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *RunSourceMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the RunSource entity.
// If the RunSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunSourceMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *RunSourceMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *RunSourceMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *RunSourceMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *RunSourceMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[runsource.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *RunSourceMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RunSourceMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RunSourceMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RunSourceMutation builder.
func (m *RunSourceMutation) Where(ps ...predicate.RunSource) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunSourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunSourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunSource, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunSourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunSourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunSource).
func (m *RunSourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunSourceMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant_id != nil {
		fields = append(fields, runsource.FieldTenantID)
	}
	if m.run != nil {
		fields = append(fields, runsource.FieldRunID)
	}
	if m.source_id != nil {
		fields = append(fields, runsource.FieldSourceID)
	}
	if m.intent != nil {
		fields = append(fields, runsource.FieldIntent)
	}
	if m.query != nil {
		fields = append(fields, runsource.FieldQuery)
	}
	if m.rank != nil {
		fields = append(fields, runsource.FieldRank)
	}
	if m.score != nil {
		fields = append(fields, runsource.FieldScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunSourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runsource.FieldTenantID:
		return m.TenantID()
	case runsource.FieldRunID:
		return m.RunID()
	case runsource.FieldSourceID:
		return m.SourceID()
	case runsource.FieldIntent:
		return m.Intent()
	case runsource.FieldQuery:
		return m.Query()
	case runsource.FieldRank:
		return m.Rank()
	case runsource.FieldScore:
		return m.Score()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunSourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runsource.FieldTenantID:
		return m.OldTenantID(ctx)
	case runsource.FieldRunID:
		return m.OldRunID(ctx)
	case runsource.FieldSourceID:
		return m.OldSourceID(ctx)
	case runsource.FieldIntent:
		return m.OldIntent(ctx)
	case runsource.FieldQuery:
		return m.OldQuery(ctx)
	case runsource.FieldRank:
		return m.OldRank(ctx)
	case runsource.FieldScore:
		return m.OldScore(ctx)
	}
	return nil, fmt.Errorf("unknown RunSource field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunSourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runsource.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case runsource.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runsource.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case runsource.FieldIntent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntent(v)
		return nil
	case runsource.FieldQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuery(v)
		return nil
	case runsource.FieldRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRank(v)
		return nil
	case runsource.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	}
	return fmt.Errorf("unknown RunSource field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunSourceMutation) AddedFields() []string {
	var fields []string
	if m.addrank != nil {
		fields = append(fields, runsource.FieldRank)
	}
	if m.addscore != nil {
		fields = append(fields, runsource.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunSourceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runsource.FieldRank:
		return m.AddedRank()
	case runsource.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunSourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runsource.FieldRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRank(v)
		return nil
	case runsource.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown RunSource numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunSourceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(runsource.FieldIntent) {
		fields = append(fields, runsource.FieldIntent)
	}
	if m.FieldCleared(runsource.FieldQuery) {
		fields = append(fields, runsource.FieldQuery)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunSourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunSourceMutation) ClearField(name string) error {
	switch name {
	case runsource.FieldIntent:
		m.ClearIntent()
		return nil
	case runsource.FieldQuery:
		m.ClearQuery()
		return nil
	}
	return fmt.Errorf("unknown RunSource nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunSourceMutation) ResetField(name string) error {
	switch name {
	case runsource.FieldTenantID:
		m.ResetTenantID()
		return nil
	case runsource.FieldRunID:
		m.ResetRunID()
		return nil
	case runsource.FieldSourceID:
		m.ResetSourceID()
		return nil
	case runsource.FieldIntent:
		m.ResetIntent()
		return nil
	case runsource.FieldQuery:
		m.ResetQuery()
		return nil
	case runsource.FieldRank:
		m.ResetRank()
		return nil
	case runsource.FieldScore:
		m.ResetScore()
		return nil
	}
	return fmt.Errorf("unknown RunSource field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunSourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, runsource.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunSourceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runsource.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunSourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunSourceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunSourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, runsource.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunSourceMutation) EdgeCleared(name string) bool {
	switch name {
	case runsource.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunSourceMutation) ClearEdge(name string) error {
	switch name {
	case runsource.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RunSource unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunSourceMutation) ResetEdge(name string) error {
	switch name {
	case runsource.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RunSource edge %s", name)
}

// SectionEvidenceMutation represents an operation that mutates the SectionEvidence nodes in the graph.
type SectionEvidenceMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	section_id    *string
	snippet_id    *string
	rank          *int
	addrank       *int
	similarity    *float64
	addsimilarity *float64
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*SectionEvidence, error)
	predicates    []predicate.SectionEvidence
}

var _ ent.Mutation = (*SectionEvidenceMutation)(nil)

// sectionevidenceOption allows management of the mutation configuration using functional options.
type sectionevidenceOption func(*SectionEvidenceMutation)

// newSectionEvidenceMutation creates new mutation for the SectionEvidence entity.
func newSectionEvidenceMutation(c config, op Op, opts ...sectionevidenceOption) *SectionEvidenceMutation {
	m := &SectionEvidenceMutation{
		config:        c,
		op:            op,
		typ:           TypeSectionEvidence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSectionEvidenceID sets the ID field of the mutation.
func withSectionEvidenceID(id string) sectionevidenceOption {
	return func(m *SectionEvidenceMutation) {
		var (
			err   error
			once  sync.Once
			value *SectionEvidence
		)
		m.oldValue = func(ctx context.Context) (*SectionEvidence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SectionEvidence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSectionEvidence sets the old SectionEvidence of the mutation.
func withSectionEvidence(node *SectionEvidence) sectionevidenceOption {
	return func(m *SectionEvidenceMutation) {
		m.oldValue = func(context.Context) (*SectionEvidence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SectionEvidenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SectionEvidenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SectionEvidence entities.
func (m *SectionEvidenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SectionEvidenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SectionEvidenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SectionEvidence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *SectionEvidenceMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *SectionEvidenceMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the SectionEvidence entity.
// If the SectionEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionEvidenceMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *SectionEvidenceMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetRunID sets the "run_id" field.
func (m *SectionEvidenceMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *SectionEvidenceMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the SectionEvidence entity.
// If the SectionEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionEvidenceMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *SectionEvidenceMutation) ResetRunID() {
	m.run = nil
}

// SetSectionID sets the "section_id" field.
func (m *SectionEvidenceMutation) SetSectionID(s string) {
	m.section_id = &s
}

// SectionID returns the value of the "section_id" field in the mutation.
func (m *SectionEvidenceMutation) SectionID() (r string, exists bool) {
	v := m.section_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionID returns the old "section_id" field's value of the SectionEvidence entity.
// If the SectionEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionEvidenceMutation) OldSectionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionID: %w", err)
	}
	return oldValue.SectionID, nil
}

// ResetSectionID resets all changes to the "section_id" field.
func (m *SectionEvidenceMutation) ResetSectionID() {
	m.section_id = nil
}

// SetSnippetID sets the "snippet_id" field.
func (m *SectionEvidenceMutation) SetSnippetID(s string) {
	m.snippet_id = &s
}

// SnippetID returns the value of the "snippet_id" field in the mutation.
func (m *SectionEvidenceMutation) SnippetID() (r string, exists bool) {
	v := m.snippet_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSnippetID returns the old "snippet_id" field's value of the SectionEvidence entity.
// If the SectionEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionEvidenceMutation) OldSnippetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnippetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnippetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnippetID: %w", err)
	}
	return oldValue.SnippetID, nil
}

// ResetSnippetID resets all changes to the "snippet_id" field.
func (m *SectionEvidenceMutation) ResetSnippetID() {
	m.snippet_id = nil
}

// SetRank sets the "rank" field.
func (m *SectionEvidenceMutation) SetRank(i int) {
	m.rank = &i
	m.addrank = nil
}

// Rank returns the value of the "rank" field in the mutation.
func (m *SectionEvidenceMutation) Rank() (r int, exists bool) {
	v := m.rank
	if v == nil {
		return
	}
	return *v, true
}

// OldRank returns the old "rank" field's value of the SectionEvidence entity.
// If the SectionEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionEvidenceMutation) OldRank(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRank: %w", err)
	}
	return oldValue.Rank, nil
}

// AddRank adds i to the "rank" field.
func (m *SectionEvidenceMutation) AddRank(i int) {
	if m.addrank != nil {
		*m.addrank += i
	} else {
		m.addrank = &i
	}
}

// AddedRank returns the value that was added to the "rank" field in this mutation.
func (m *SectionEvidenceMutation) AddedRank() (r int, exists bool) {
	v := m.addrank
	if v == nil {
		return
	}
	return *v, true
}

// ResetRank resets all changes to the "rank" field.
func (m *SectionEvidenceMutation) ResetRank() {
	m.rank = nil
	m.addrank = nil
}

// SetSimilarity sets the "similarity" field.
func (m *SectionEvidenceMutation) SetSimilarity(f float64) {
	m.similarity = &f
	m.addsimilarity = nil
}

// Similarity returns the value of the "similarity" field in the mutation.
func (m *SectionEvidenceMutation) Similarity() (r float64, exists bool) {
	v := m.similarity
	if v == nil {
		return
	}
	return *v, true
}

// OldSimilarity returns the old "similarity" field's value of the SectionEvidence entity.
// If the SectionEvidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionEvidenceMutation) OldSimilarity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimilarity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimilarity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimilarity: %w", err)
	}
	return oldValue.Similarity, nil
}

// AddSimilarity adds f to the "similarity" field.
func (m *SectionEvidenceMutation) AddSimilarity(f float64) {
	if m.addsimilarity != nil {
		*m.addsimilarity += f
	} else {
		m.addsimilarity = &f
	}
}

// AddedSimilarity returns the value that was added to the "similarity" field in this mutation.
func (m *SectionEvidenceMutation) AddedSimilarity() (r float64, exists bool) {
	v := m.addsimilarity
	if v == nil {
		return
	}
	return *v, true
}

// ResetSimilarity resets all changes to the "similarity" field.
func (m *SectionEvidenceMutation) ResetSimilarity() {
	m.similarity = nil
	m.addsimilarity = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *SectionEvidenceMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[sectionevidence.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *SectionEvidenceMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *SectionEvidenceMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *SectionEvidenceMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the SectionEvidenceMutation builder.
func (m *SectionEvidenceMutation) Where(ps ...predicate.SectionEvidence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SectionEvidenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SectionEvidenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SectionEvidence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SectionEvidenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SectionEvidenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SectionEvidence).
func (m *SectionEvidenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SectionEvidenceMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, sectionevidence.FieldTenantID)
	}
	if m.run != nil {
		fields = append(fields, sectionevidence.FieldRunID)
	}
	if m.section_id != nil {
		fields = append(fields, sectionevidence.FieldSectionID)
	}
	if m.snippet_id != nil {
		fields = append(fields, sectionevidence.FieldSnippetID)
	}
	if m.rank != nil {
		fields = append(fields, sectionevidence.FieldRank)
	}
	if m.similarity != nil {
		fields = append(fields, sectionevidence.FieldSimilarity)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SectionEvidenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sectionevidence.FieldTenantID:
		return m.TenantID()
	case sectionevidence.FieldRunID:
		return m.RunID()
	case sectionevidence.FieldSectionID:
		return m.SectionID()
	case sectionevidence.FieldSnippetID:
		return m.SnippetID()
	case sectionevidence.FieldRank:
		return m.Rank()
	case sectionevidence.FieldSimilarity:
		return m.Similarity()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SectionEvidenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sectionevidence.FieldTenantID:
		return m.OldTenantID(ctx)
	case sectionevidence.FieldRunID:
		return m.OldRunID(ctx)
	case sectionevidence.FieldSectionID:
		return m.OldSectionID(ctx)
	case sectionevidence.FieldSnippetID:
		return m.OldSnippetID(ctx)
	case sectionevidence.FieldRank:
		return m.OldRank(ctx)
	case sectionevidence.FieldSimilarity:
		return m.OldSimilarity(ctx)
	}
	return nil, fmt.Errorf("unknown SectionEvidence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SectionEvidenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sectionevidence.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case sectionevidence.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case sectionevidence.FieldSectionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionID(v)
		return nil
	case sectionevidence.FieldSnippetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnippetID(v)
		return nil
	case sectionevidence.FieldRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRank(v)
		return nil
	case sectionevidence.FieldSimilarity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimilarity(v)
		return nil
	}
	return fmt.Errorf("unknown SectionEvidence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SectionEvidenceMutation) AddedFields() []string {
	var fields []string
	if m.addrank != nil {
		fields = append(fields, sectionevidence.FieldRank)
	}
	if m.addsimilarity != nil {
		fields = append(fields, sectionevidence.FieldSimilarity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SectionEvidenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sectionevidence.FieldRank:
		return m.AddedRank()
	case sectionevidence.FieldSimilarity:
		return m.AddedSimilarity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SectionEvidenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sectionevidence.FieldRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRank(v)
		return nil
	case sectionevidence.FieldSimilarity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSimilarity(v)
		return nil
	}
	return fmt.Errorf("unknown SectionEvidence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SectionEvidenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SectionEvidenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SectionEvidenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SectionEvidence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SectionEvidenceMutation) ResetField(name string) error {
	switch name {
	case sectionevidence.FieldTenantID:
		m.ResetTenantID()
		return nil
	case sectionevidence.FieldRunID:
		m.ResetRunID()
		return nil
	case sectionevidence.FieldSectionID:
		m.ResetSectionID()
		return nil
	case sectionevidence.FieldSnippetID:
		m.ResetSnippetID()
		return nil
	case sectionevidence.FieldRank:
		m.ResetRank()
		return nil
	case sectionevidence.FieldSimilarity:
		m.ResetSimilarity()
		return nil
	}
	return fmt.Errorf("unknown SectionEvidence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SectionEvidenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, sectionevidence.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SectionEvidenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sectionevidence.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SectionEvidenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SectionEvidenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SectionEvidenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, sectionevidence.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SectionEvidenceMutation) EdgeCleared(name string) bool {
	switch name {
	case sectionevidence.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SectionEvidenceMutation) ClearEdge(name string) error {
	switch name {
	case sectionevidence.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown SectionEvidence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SectionEvidenceMutation) ResetEdge(name string) error {
	switch name {
	case sectionevidence.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown SectionEvidence edge %s", name)
}

// SectionReviewMutation represents an operation that mutates the SectionReview nodes in the graph.
type SectionReviewMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	section_id    *string
	verdict       *sectionreview.Verdict
	issues        *[]map[string]interface{}
	appendissues  []map[string]interface{}
	reviewed_at   *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*SectionReview, error)
	predicates    []predicate.SectionReview
}

var _ ent.Mutation = (*SectionReviewMutation)(nil)

// sectionreviewOption allows management of the mutation configuration using functional options.
type sectionreviewOption func(*SectionReviewMutation)

// newSectionReviewMutation creates new mutation for the SectionReview entity.
func newSectionReviewMutation(c config, op Op, opts ...sectionreviewOption) *SectionReviewMutation {
	m := &SectionReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeSectionReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSectionReviewID sets the ID field of the mutation.
func withSectionReviewID(id string) sectionreviewOption {
	return func(m *SectionReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *SectionReview
		)
		m.oldValue = func(ctx context.Context) (*SectionReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SectionReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSectionReview sets the old SectionReview of the mutation.
func withSectionReview(node *SectionReview) sectionreviewOption {
	return func(m *SectionReviewMutation) {
		m.oldValue = func(context.Context) (*SectionReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SectionReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SectionReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SectionReview entities.
func (m *SectionReviewMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SectionReviewMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SectionReviewMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SectionReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *SectionReviewMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *SectionReviewMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the SectionReview entity.
// If the SectionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionReviewMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *SectionReviewMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetRunID sets the "run_id" field.
func (m *SectionReviewMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *SectionReviewMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the SectionReview entity.
// If the SectionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionReviewMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *SectionReviewMutation) ResetRunID() {
	m.run = nil
}

// SetSectionID sets the "section_id" field.
func (m *SectionReviewMutation) SetSectionID(s string) {
	m.section_id = &s
}

// SectionID returns the value of the "section_id" field in the mutation.
func (m *SectionReviewMutation) SectionID() (r string, exists bool) {
	v := m.section_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionID returns the old "section_id" field's value of the SectionReview entity.
// If the SectionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionReviewMutation) OldSectionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionID: %w", err)
	}
	return oldValue.SectionID, nil
}

// ResetSectionID resets all changes to the "section_id" field.
func (m *SectionReviewMutation) ResetSectionID() {
	m.section_id = nil
}

// SetVerdict sets the "verdict" field.
func (m *SectionReviewMutation) SetVerdict(s sectionreview.Verdict) {
	m.verdict = &s
}

// Verdict returns the value of the "verdict" field in the mutation.
func (m *SectionReviewMutation) Verdict() (r sectionreview.Verdict, exists bool) {
	v := m.verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdict returns the old "verdict" field's value of the SectionReview entity.
// If the SectionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionReviewMutation) OldVerdict(ctx context.Context) (v sectionreview.Verdict, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdict: %w", err)
	}
	return oldValue.Verdict, nil
}

// ResetVerdict resets all changes to the "verdict" field.
func (m *SectionReviewMutation) ResetVerdict() {
	m.verdict = nil
}

// SetIssues sets the "issues" field.
func (m *SectionReviewMutation) SetIssues(value []map[string]interface{}) {
	m.issues = &value
	m.appendissues = nil
}

// Issues returns the value of the "issues" field in the mutation.
func (m *SectionReviewMutation) Issues() (r []map[string]interface{}, exists bool) {
	v := m.issues
	if v == nil {
		return
	}
	return *v, true
}

// OldIssues returns the old "issues" field's value of the SectionReview entity.
// If the SectionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionReviewMutation) OldIssues(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssues: %w", err)
	}
	return oldValue.Issues, nil
}

// AppendIssues adds value to the "issues" field.
func (m *SectionReviewMutation) AppendIssues(value []map[string]interface{}) {
	m.appendissues = append(m.appendissues, value...)
}

// AppendedIssues returns the list of values that were appended to the "issues" field in this mutation.
func (m *SectionReviewMutation) AppendedIssues() ([]map[string]interface{}, bool) {
	if len(m.appendissues) == 0 {
		return nil, false
	}
	return m.appendissues, true
}

// ClearIssues clears the value of the "issues" field.
func (m *SectionReviewMutation) ClearIssues() {
	m.issues = nil
	m.appendissues = nil
	m.clearedFields[sectionreview.FieldIssues] = struct{}{}
}

// IssuesCleared returns if the "issues" field was cleared in this mutation.
func (m *SectionReviewMutation) IssuesCleared() bool {
	_, ok := m.clearedFields[sectionreview.FieldIssues]
	return ok
}

// ResetIssues resets all changes to the "issues" field.
func (m *SectionReviewMutation) ResetIssues() {
	m.issues = nil
	m.appendissues = nil
	delete(m.clearedFields, sectionreview.FieldIssues)
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *SectionReviewMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *SectionReviewMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the SectionReview entity.
// If the SectionReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SectionReviewMutation) OldReviewedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *SectionReviewMutation) ResetReviewedAt() {
	m.reviewed_at = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *SectionReviewMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[sectionreview.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *SectionReviewMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *SectionReviewMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *SectionReviewMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the SectionReviewMutation builder.
func (m *SectionReviewMutation) Where(ps ...predicate.SectionReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SectionReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SectionReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SectionReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SectionReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SectionReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SectionReview).
func (m *SectionReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SectionReviewMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, sectionreview.FieldTenantID)
	}
	if m.run != nil {
		fields = append(fields, sectionreview.FieldRunID)
	}
	if m.section_id != nil {
		fields = append(fields, sectionreview.FieldSectionID)
	}
	if m.verdict != nil {
		fields = append(fields, sectionreview.FieldVerdict)
	}
	if m.issues != nil {
		fields = append(fields, sectionreview.FieldIssues)
	}
	if m.reviewed_at != nil {
		fields = append(fields, sectionreview.FieldReviewedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SectionReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sectionreview.FieldTenantID:
		return m.TenantID()
	case sectionreview.FieldRunID:
		return m.RunID()
	case sectionreview.FieldSectionID:
		return m.SectionID()
	case sectionreview.FieldVerdict:
		return m.Verdict()
	case sectionreview.FieldIssues:
		return m.Issues()
	case sectionreview.FieldReviewedAt:
		return m.ReviewedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SectionReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sectionreview.FieldTenantID:
		return m.OldTenantID(ctx)
	case sectionreview.FieldRunID:
		return m.OldRunID(ctx)
	case sectionreview.FieldSectionID:
		return m.OldSectionID(ctx)
	case sectionreview.FieldVerdict:
		return m.OldVerdict(ctx)
	case sectionreview.FieldIssues:
		return m.OldIssues(ctx)
	case sectionreview.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SectionReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SectionReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sectionreview.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case sectionreview.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case sectionreview.FieldSectionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionID(v)
		return nil
	case sectionreview.FieldVerdict:
		v, ok := value.(sectionreview.Verdict)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdict(v)
		return nil
	case sectionreview.FieldIssues:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssues(v)
		return nil
	case sectionreview.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SectionReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SectionReviewMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SectionReviewMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SectionReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SectionReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SectionReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sectionreview.FieldIssues) {
		fields = append(fields, sectionreview.FieldIssues)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SectionReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SectionReviewMutation) ClearField(name string) error {
	switch name {
	case sectionreview.FieldIssues:
		m.ClearIssues()
		return nil
	}
	return fmt.Errorf("unknown SectionReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SectionReviewMutation) ResetField(name string) error {
	switch name {
	case sectionreview.FieldTenantID:
		m.ResetTenantID()
		return nil
	case sectionreview.FieldRunID:
		m.ResetRunID()
		return nil
	case sectionreview.FieldSectionID:
		m.ResetSectionID()
		return nil
	case sectionreview.FieldVerdict:
		m.ResetVerdict()
		return nil
	case sectionreview.FieldIssues:
		m.ResetIssues()
		return nil
	case sectionreview.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown SectionReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SectionReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, sectionreview.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SectionReviewMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sectionreview.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SectionReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SectionReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SectionReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, sectionreview.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SectionReviewMutation) EdgeCleared(name string) bool {
	switch name {
	case sectionreview.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SectionReviewMutation) ClearEdge(name string) error {
	switch name {
	case sectionreview.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown SectionReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SectionReviewMutation) ResetEdge(name string) error {
	switch name {
	case sectionreview.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown SectionReview edge %s", name)
}

// SourceMutation represents an operation that mutates the Source nodes in the graph.
type SourceMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	tenant_id          *string
	canonical_id       *string
	doi                *string
	arxiv_id           *string
	openalex_id        *string
	url                *string
	title              *string
	authors            *[]string
	appendauthors      []string
	year               *int
	addyear            *int
	abstract           *string
	pdf_url            *string
	source_type        *string
	connector          *string
	citations_count    *int
	addcitations_count *int
	extra_metadata     *map[string]interface{}
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	snapshots          map[string]struct{}
	removedsnapshots   map[string]struct{}
	clearedsnapshots   bool
	snippets           map[string]struct{}
	removedsnippets    map[string]struct{}
	clearedsnippets    bool
	done               bool
	oldValue           func(context.Context) (*Source, error)
	predicates         []predicate.Source
}

var _ ent.Mutation = (*SourceMutation)(nil)

// sourceOption allows management of the mutation configuration using functional options.
type sourceOption func(*SourceMutation)

// newSourceMutation creates new mutation for the Source entity.
func newSourceMutation(c config, op Op, opts ...sourceOption) *SourceMutation {
	m := &SourceMutation{
		config:        c,
		op:            op,
		typ:           TypeSource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceID sets the ID field of the mutation.
func withSourceID(id string) sourceOption {
	return func(m *SourceMutation) {
		var (
			err   error
			once  sync.Once
			value *Source
		)
		m.oldValue = func(ctx context.Context) (*Source, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Source.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSource sets the old Source of the mutation.
func withSource(node *Source) sourceOption {
	return func(m *SourceMutation) {
		m.oldValue = func(context.Context) (*Source, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Source entities.
func (m *SourceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Source.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *SourceMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *SourceMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *SourceMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetCanonicalID sets the "canonical_id" field.
func (m *SourceMutation) SetCanonicalID(s string) {
	m.canonical_id = &s
}

// CanonicalID returns the value of the "canonical_id" field in the mutation.
func (m *SourceMutation) CanonicalID() (r string, exists bool) {
	v := m.canonical_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalID returns the old "canonical_id" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldCanonicalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalID: %w", err)
	}
	return oldValue.CanonicalID, nil
}

// ResetCanonicalID resets all changes to the "canonical_id" field.
func (m *SourceMutation) ResetCanonicalID() {
	m.canonical_id = nil
}

// SetDoi sets the "doi" field.
func (m *SourceMutation) SetDoi(s string) {
	m.doi = &s
}

// Doi returns the value of the "doi" field in the mutation.
func (m *SourceMutation) Doi() (r string, exists bool) {
	v := m.doi
	if v == nil {
		return
	}
	return *v, true
}

// OldDoi returns the old "doi" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldDoi(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoi: %w", err)
	}
	return oldValue.Doi, nil
}

// ClearDoi clears the value of the "doi" field.
func (m *SourceMutation) ClearDoi() {
	m.doi = nil
	m.clearedFields[source.FieldDoi] = struct{}{}
}

// DoiCleared returns if the "doi" field was cleared in this mutation.
func (m *SourceMutation) DoiCleared() bool {
	_, ok := m.clearedFields[source.FieldDoi]
	return ok
}

// ResetDoi resets all changes to the "doi" field.
func (m *SourceMutation) ResetDoi() {
	m.doi = nil
	delete(m.clearedFields, source.FieldDoi)
}

// SetArxivID sets the "arxiv_id" field.
func (m *SourceMutation) SetArxivID(s string) {
	m.arxiv_id = &s
}

// ArxivID returns the value of the "arxiv_id" field in the mutation.
func (m *SourceMutation) ArxivID() (r string, exists bool) {
	v := m.arxiv_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArxivID returns the old "arxiv_id" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldArxivID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArxivID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArxivID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArxivID: %w", err)
	}
	return oldValue.ArxivID, nil
}

// ClearArxivID clears the value of the "arxiv_id" field.
func (m *SourceMutation) ClearArxivID() {
	m.arxiv_id = nil
	m.clearedFields[source.FieldArxivID] = struct{}{}
}

// ArxivIDCleared returns if the "arxiv_id" field was cleared in this mutation.
func (m *SourceMutation) ArxivIDCleared() bool {
	_, ok := m.clearedFields[source.FieldArxivID]
	return ok
}

// ResetArxivID resets all changes to the "arxiv_id" field.
func (m *SourceMutation) ResetArxivID() {
	m.arxiv_id = nil
	delete(m.clearedFields, source.FieldArxivID)
}

// SetOpenalexID sets the "openalex_id" field.
func (m *SourceMutation) SetOpenalexID(s string) {
	m.openalex_id = &s
}

// OpenalexID returns the value of the "openalex_id" field in the mutation.
func (m *SourceMutation) OpenalexID() (r string, exists bool) {
	v := m.openalex_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenalexID returns the old "openalex_id" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldOpenalexID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenalexID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenalexID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenalexID: %w", err)
	}
	return oldValue.OpenalexID, nil
}

// ClearOpenalexID clears the value of the "openalex_id" field.
func (m *SourceMutation) ClearOpenalexID() {
	m.openalex_id = nil
	m.clearedFields[source.FieldOpenalexID] = struct{}{}
}

// OpenalexIDCleared returns if the "openalex_id" field was cleared in this mutation.
func (m *SourceMutation) OpenalexIDCleared() bool {
	_, ok := m.clearedFields[source.FieldOpenalexID]
	return ok
}

// ResetOpenalexID resets all changes to the "openalex_id" field.
func (m *SourceMutation) ResetOpenalexID() {
	m.openalex_id = nil
	delete(m.clearedFields, source.FieldOpenalexID)
}

// SetURL sets the "url" field.
func (m *SourceMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *SourceMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *SourceMutation) ClearURL() {
	m.url = nil
	m.clearedFields[source.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *SourceMutation) URLCleared() bool {
	_, ok := m.clearedFields[source.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *SourceMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, source.FieldURL)
}

// SetTitle sets the "title" field.
func (m *SourceMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SourceMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SourceMutation) ResetTitle() {
	m.title = nil
}

// SetAuthors sets the "authors" field.
func (m *SourceMutation) SetAuthors(s []string) {
	m.authors = &s
	m.appendauthors = nil
}

// Authors returns the value of the "authors" field in the mutation.
func (m *SourceMutation) Authors() (r []string, exists bool) {
	v := m.authors
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthors returns the old "authors" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldAuthors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthors: %w", err)
	}
	return oldValue.Authors, nil
}

// AppendAuthors adds s to the "authors" field.
func (m *SourceMutation) AppendAuthors(s []string) {
	m.appendauthors = append(m.appendauthors, s...)
}

// AppendedAuthors returns the list of values that were appended to the "authors" field in this mutation.
func (m *SourceMutation) AppendedAuthors() ([]string, bool) {
	if len(m.appendauthors) == 0 {
		return nil, false
	}
	return m.appendauthors, true
}

// ClearAuthors clears the value of the "authors" field.
func (m *SourceMutation) ClearAuthors() {
	m.authors = nil
	m.appendauthors = nil
	m.clearedFields[source.FieldAuthors] = struct{}{}
}

// AuthorsCleared returns if the "authors" field was cleared in this mutation.
func (m *SourceMutation) AuthorsCleared() bool {
	_, ok := m.clearedFields[source.FieldAuthors]
	return ok
}

// ResetAuthors resets all changes to the "authors" field.
func (m *SourceMutation) ResetAuthors() {
	m.authors = nil
	m.appendauthors = nil
	delete(m.clearedFields, source.FieldAuthors)
}

// SetYear sets the "year" field.
func (m *SourceMutation) SetYear(i int) {
	m.year = &i
	m.addyear = nil
}

// Year returns the value of the "year" field in the mutation.
func (m *SourceMutation) Year() (r int, exists bool) {
	v := m.year
	if v == nil {
		return
	}
	return *v, true
}

// OldYear returns the old "year" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldYear(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYear: %w", err)
	}
	return oldValue.Year, nil
}

// AddYear adds i to the "year" field.
func (m *SourceMutation) AddYear(i int) {
	if m.addyear != nil {
		*m.addyear += i
	} else {
		m.addyear = &i
	}
}

// AddedYear returns the value that was added to the "year" field in this mutation.
func (m *SourceMutation) AddedYear() (r int, exists bool) {
	v := m.addyear
	if v == nil {
		return
	}
	return *v, true
}

// ClearYear clears the value of the "year" field.
func (m *SourceMutation) ClearYear() {
	m.year = nil
	m.addyear = nil
	m.clearedFields[source.FieldYear] = struct{}{}
}

// YearCleared returns if the "year" field was cleared in this mutation.
func (m *SourceMutation) YearCleared() bool {
	_, ok := m.clearedFields[source.FieldYear]
	return ok
}

// ResetYear resets all changes to the "year" field.
func (m *SourceMutation) ResetYear() {
	m.year = nil
	m.addyear = nil
	delete(m.clearedFields, source.FieldYear)
}

// SetAbstract sets the "abstract" field.
func (m *SourceMutation) SetAbstract(s string) {
	m.abstract = &s
}

// Abstract returns the value of the "abstract" field in the mutation.
func (m *SourceMutation) Abstract() (r string, exists bool) {
	v := m.abstract
	if v == nil {
		return
	}
	return *v, true
}

// OldAbstract returns the old "abstract" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldAbstract(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbstract is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbstract requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbstract: %w", err)
	}
	return oldValue.Abstract, nil
}

// ClearAbstract clears the value of the "abstract" field.
func (m *SourceMutation) ClearAbstract() {
	m.abstract = nil
	m.clearedFields[source.FieldAbstract] = struct{}{}
}

// AbstractCleared returns if the "abstract" field was cleared in this mutation.
func (m *SourceMutation) AbstractCleared() bool {
	_, ok := m.clearedFields[source.FieldAbstract]
	return ok
}

// ResetAbstract resets all changes to the "abstract" field.
func (m *SourceMutation) ResetAbstract() {
	m.abstract = nil
	delete(m.clearedFields, source.FieldAbstract)
}

// SetPdfURL sets the "pdf_url" field.
func (m *SourceMutation) SetPdfURL(s string) {
	m.pdf_url = &s
}

// PdfURL returns the value of the "pdf_url" field in the mutation.
func (m *SourceMutation) PdfURL() (r string, exists bool) {
	v := m.pdf_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfURL returns the old "pdf_url" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldPdfURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfURL: %w", err)
	}
	return oldValue.PdfURL, nil
}

// ClearPdfURL clears the value of the "pdf_url" field.
func (m *SourceMutation) ClearPdfURL() {
	m.pdf_url = nil
	m.clearedFields[source.FieldPdfURL] = struct{}{}
}

// PdfURLCleared returns if the "pdf_url" field was cleared in this mutation.
func (m *SourceMutation) PdfURLCleared() bool {
	_, ok := m.clearedFields[source.FieldPdfURL]
	return ok
}

// ResetPdfURL resets all changes to the "pdf_url" field.
func (m *SourceMutation) ResetPdfURL() {
	m.pdf_url = nil
	delete(m.clearedFields, source.FieldPdfURL)
}

// SetSourceType sets the "source_type" field.
func (m *SourceMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *SourceMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *SourceMutation) ResetSourceType() {
	m.source_type = nil
}

// SetConnector sets the "connector" field.
func (m *SourceMutation) SetConnector(s string) {
	m.connector = &s
}

// Connector returns the value of the "connector" field in the mutation.
func (m *SourceMutation) Connector() (r string, exists bool) {
	v := m.connector
	if v == nil {
		return
	}
	return *v, true
}

// OldConnector returns the old "connector" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldConnector(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnector: %w", err)
	}
	return oldValue.Connector, nil
}

// ResetConnector resets all changes to the "connector" field.
func (m *SourceMutation) ResetConnector() {
	m.connector = nil
}

// SetCitationsCount sets the "citations_count" field.
func (m *SourceMutation) SetCitationsCount(i int) {
	m.citations_count = &i
	m.addcitations_count = nil
}

// CitationsCount returns the value of the "citations_count" field in the mutation.
func (m *SourceMutation) CitationsCount() (r int, exists bool) {
	v := m.citations_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCitationsCount returns the old "citations_count" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldCitationsCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCitationsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCitationsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCitationsCount: %w", err)
	}
	return oldValue.CitationsCount, nil
}

// AddCitationsCount adds i to the "citations_count" field.
func (m *SourceMutation) AddCitationsCount(i int) {
	if m.addcitations_count != nil {
		*m.addcitations_count += i
	} else {
		m.addcitations_count = &i
	}
}

// AddedCitationsCount returns the value that was added to the "citations_count" field in this mutation.
func (m *SourceMutation) AddedCitationsCount() (r int, exists bool) {
	v := m.addcitations_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearCitationsCount clears the value of the "citations_count" field.
func (m *SourceMutation) ClearCitationsCount() {
	m.citations_count = nil
	m.addcitations_count = nil
	m.clearedFields[source.FieldCitationsCount] = struct{}{}
}

// CitationsCountCleared returns if the "citations_count" field was cleared in this mutation.
func (m *SourceMutation) CitationsCountCleared() bool {
	_, ok := m.clearedFields[source.FieldCitationsCount]
	return ok
}

// ResetCitationsCount resets all changes to the "citations_count" field.
func (m *SourceMutation) ResetCitationsCount() {
	m.citations_count = nil
	m.addcitations_count = nil
	delete(m.clearedFields, source.FieldCitationsCount)
}

// SetExtraMetadata sets the "extra_metadata" field.
func (m *SourceMutation) SetExtraMetadata(value map[string]interface{}) {
	m.extra_metadata = &value
}

// ExtraMetadata returns the value of the "extra_metadata" field in the mutation.
func (m *SourceMutation) ExtraMetadata() (r map[string]interface{}, exists bool) {
	v := m.extra_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldExtraMetadata returns the old "extra_metadata" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldExtraMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtraMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtraMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtraMetadata: %w", err)
	}
	return oldValue.ExtraMetadata, nil
}

// ClearExtraMetadata clears the value of the "extra_metadata" field.
func (m *SourceMutation) ClearExtraMetadata() {
	m.extra_metadata = nil
	m.clearedFields[source.FieldExtraMetadata] = struct{}{}
}

// ExtraMetadataCleared returns if the "extra_metadata" field was cleared in this mutation.
func (m *SourceMutation) ExtraMetadataCleared() bool {
	_, ok := m.clearedFields[source.FieldExtraMetadata]
	return ok
}

// ResetExtraMetadata resets all changes to the "extra_metadata" field.
func (m *SourceMutation) ResetExtraMetadata() {
	m.extra_metadata = nil
	delete(m.clearedFields, source.FieldExtraMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *SourceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SourceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SourceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SourceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SourceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Source entity.
// If the Source object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SourceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddSnapshotIDs adds the "snapshots" edge to the SourceSnapshot entity by ids.
func (m *SourceMutation) AddSnapshotIDs(ids ...string) {
	if m.snapshots == nil {
		m.snapshots = make(map[string]struct{})
	}
	for i := range ids {
		m.snapshots[ids[i]] = struct{}{}
	}
}

// ClearSnapshots clears the "snapshots" edge to the SourceSnapshot entity.
func (m *SourceMutation) ClearSnapshots() {
	m.clearedsnapshots = true
}

// SnapshotsCleared reports if the "snapshots" edge to the SourceSnapshot entity was cleared.
func (m *SourceMutation) SnapshotsCleared() bool {
	return m.clearedsnapshots
}

// RemoveSnapshotIDs removes the "snapshots" edge to the SourceSnapshot entity by IDs.
func (m *SourceMutation) RemoveSnapshotIDs(ids ...string) {
	if m.removedsnapshots == nil {
		m.removedsnapshots = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.snapshots, ids[i])
		m.removedsnapshots[ids[i]] = struct{}{}
	}
}

// RemovedSnapshots returns the removed IDs of the "snapshots" edge to the SourceSnapshot entity.
func (m *SourceMutation) RemovedSnapshotsIDs() (ids []string) {
	for id := range m.removedsnapshots {
		ids = append(ids, id)
	}
	return
}

// SnapshotsIDs returns the "snapshots" edge IDs in the mutation.
func (m *SourceMutation) SnapshotsIDs() (ids []string) {
	for id := range m.snapshots {
		ids = append(ids, id)
	}
	return
}

// ResetSnapshots resets all changes to the "snapshots" edge.
func (m *SourceMutation) ResetSnapshots() {
	m.snapshots = nil
	m.clearedsnapshots = false
	m.removedsnapshots = nil
}

// AddSnippetIDs adds the "snippets" edge to the SourceSnippet entity by ids.
func (m *SourceMutation) AddSnippetIDs(ids ...string) {
	if m.snippets == nil {
		m.snippets = make(map[string]struct{})
	}
	for i := range ids {
		m.snippets[ids[i]] = struct{}{}
	}
}

// ClearSnippets clears the "snippets" edge to the SourceSnippet entity.
func (m *SourceMutation) ClearSnippets() {
	m.clearedsnippets = true
}

// SnippetsCleared reports if the "snippets" edge to the SourceSnippet entity was cleared.
func (m *SourceMutation) SnippetsCleared() bool {
	return m.clearedsnippets
}

// RemoveSnippetIDs removes the "snippets" edge to the SourceSnippet entity by IDs.
func (m *SourceMutation) RemoveSnippetIDs(ids ...string) {
	if m.removedsnippets == nil {
		m.removedsnippets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.snippets, ids[i])
		m.removedsnippets[ids[i]] = struct{}{}
	}
}

// RemovedSnippets returns the removed IDs of the "snippets" edge to the SourceSnippet entity.
func (m *SourceMutation) RemovedSnippetsIDs() (ids []string) {
	for id := range m.removedsnippets {
		ids = append(ids, id)
	}
	return
}

// SnippetsIDs returns the "snippets" edge IDs in the mutation.
func (m *SourceMutation) SnippetsIDs() (ids []string) {
	for id := range m.snippets {
		ids = append(ids, id)
	}
	return
}

// ResetSnippets resets all changes to the "snippets" edge.
func (m *SourceMutation) ResetSnippets() {
	m.snippets = nil
	m.clearedsnippets = false
	m.removedsnippets = nil
}

// Where appends a list predicates to the SourceMutation builder.
func (m *SourceMutation) Where(ps ...predicate.Source) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Source, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Source).
func (m *SourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.tenant_id != nil {
		fields = append(fields, source.FieldTenantID)
	}
	if m.canonical_id != nil {
		fields = append(fields, source.FieldCanonicalID)
	}
	if m.doi != nil {
		fields = append(fields, source.FieldDoi)
	}
	if m.arxiv_id != nil {
		fields = append(fields, source.FieldArxivID)
	}
	if m.openalex_id != nil {
		fields = append(fields, source.FieldOpenalexID)
	}
	if m.url != nil {
		fields = append(fields, source.FieldURL)
	}
	if m.title != nil {
		fields = append(fields, source.FieldTitle)
	}
	if m.authors != nil {
		fields = append(fields, source.FieldAuthors)
	}
	if m.year != nil {
		fields = append(fields, source.FieldYear)
	}
	if m.abstract != nil {
		fields = append(fields, source.FieldAbstract)
	}
	if m.pdf_url != nil {
		fields = append(fields, source.FieldPdfURL)
	}
	if m.source_type != nil {
		fields = append(fields, source.FieldSourceType)
	}
	if m.connector != nil {
		fields = append(fields, source.FieldConnector)
	}
	if m.citations_count != nil {
		fields = append(fields, source.FieldCitationsCount)
	}
	if m.extra_metadata != nil {
		fields = append(fields, source.FieldExtraMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, source.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, source.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case source.FieldTenantID:
		return m.TenantID()
	case source.FieldCanonicalID:
		return m.CanonicalID()
	case source.FieldDoi:
		return m.Doi()
	case source.FieldArxivID:
		return m.ArxivID()
	case source.FieldOpenalexID:
		return m.OpenalexID()
	case source.FieldURL:
		return m.URL()
	case source.FieldTitle:
		return m.Title()
	case source.FieldAuthors:
		return m.Authors()
	case source.FieldYear:
		return m.Year()
	case source.FieldAbstract:
		return m.Abstract()
	case source.FieldPdfURL:
		return m.PdfURL()
	case source.FieldSourceType:
		return m.SourceType()
	case source.FieldConnector:
		return m.Connector()
	case source.FieldCitationsCount:
		return m.CitationsCount()
	case source.FieldExtraMetadata:
		return m.ExtraMetadata()
	case source.FieldCreatedAt:
		return m.CreatedAt()
	case source.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case source.FieldTenantID:
		return m.OldTenantID(ctx)
	case source.FieldCanonicalID:
		return m.OldCanonicalID(ctx)
	case source.FieldDoi:
		return m.OldDoi(ctx)
	case source.FieldArxivID:
		return m.OldArxivID(ctx)
	case source.FieldOpenalexID:
		return m.OldOpenalexID(ctx)
	case source.FieldURL:
		return m.OldURL(ctx)
	case source.FieldTitle:
		return m.OldTitle(ctx)
	case source.FieldAuthors:
		return m.OldAuthors(ctx)
	case source.FieldYear:
		return m.OldYear(ctx)
	case source.FieldAbstract:
		return m.OldAbstract(ctx)
	case source.FieldPdfURL:
		return m.OldPdfURL(ctx)
	case source.FieldSourceType:
		return m.OldSourceType(ctx)
	case source.FieldConnector:
		return m.OldConnector(ctx)
	case source.FieldCitationsCount:
		return m.OldCitationsCount(ctx)
	case source.FieldExtraMetadata:
		return m.OldExtraMetadata(ctx)
	case source.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case source.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Source field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case source.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case source.FieldCanonicalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalID(v)
		return nil
	case source.FieldDoi:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoi(v)
		return nil
	case source.FieldArxivID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArxivID(v)
		return nil
	case source.FieldOpenalexID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenalexID(v)
		return nil
	case source.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case source.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case source.FieldAuthors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthors(v)
		return nil
	case source.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYear(v)
		return nil
	case source.FieldAbstract:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbstract(v)
		return nil
	case source.FieldPdfURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfURL(v)
		return nil
	case source.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case source.FieldConnector:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnector(v)
		return nil
	case source.FieldCitationsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCitationsCount(v)
		return nil
	case source.FieldExtraMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtraMetadata(v)
		return nil
	case source.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case source.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Source field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceMutation) AddedFields() []string {
	var fields []string
	if m.addyear != nil {
		fields = append(fields, source.FieldYear)
	}
	if m.addcitations_count != nil {
		fields = append(fields, source.FieldCitationsCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case source.FieldYear:
		return m.AddedYear()
	case source.FieldCitationsCount:
		return m.AddedCitationsCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case source.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYear(v)
		return nil
	case source.FieldCitationsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCitationsCount(v)
		return nil
	}
	return fmt.Errorf("unknown Source numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(source.FieldDoi) {
		fields = append(fields, source.FieldDoi)
	}
	if m.FieldCleared(source.FieldArxivID) {
		fields = append(fields, source.FieldArxivID)
	}
	if m.FieldCleared(source.FieldOpenalexID) {
		fields = append(fields, source.FieldOpenalexID)
	}
	if m.FieldCleared(source.FieldURL) {
		fields = append(fields, source.FieldURL)
	}
	if m.FieldCleared(source.FieldAuthors) {
		fields = append(fields, source.FieldAuthors)
	}
	if m.FieldCleared(source.FieldYear) {
		fields = append(fields, source.FieldYear)
	}
	if m.FieldCleared(source.FieldAbstract) {
		fields = append(fields, source.FieldAbstract)
	}
	if m.FieldCleared(source.FieldPdfURL) {
		fields = append(fields, source.FieldPdfURL)
	}
	if m.FieldCleared(source.FieldCitationsCount) {
		fields = append(fields, source.FieldCitationsCount)
	}
	if m.FieldCleared(source.FieldExtraMetadata) {
		fields = append(fields, source.FieldExtraMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceMutation) ClearField(name string) error {
	switch name {
	case source.FieldDoi:
		m.ClearDoi()
		return nil
	case source.FieldArxivID:
		m.ClearArxivID()
		return nil
	case source.FieldOpenalexID:
		m.ClearOpenalexID()
		return nil
	case source.FieldURL:
		m.ClearURL()
		return nil
	case source.FieldAuthors:
		m.ClearAuthors()
		return nil
	case source.FieldYear:
		m.ClearYear()
		return nil
	case source.FieldAbstract:
		m.ClearAbstract()
		return nil
	case source.FieldPdfURL:
		m.ClearPdfURL()
		return nil
	case source.FieldCitationsCount:
		m.ClearCitationsCount()
		return nil
	case source.FieldExtraMetadata:
		m.ClearExtraMetadata()
		return nil
	}
	return fmt.Errorf("unknown Source nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceMutation) ResetField(name string) error {
	switch name {
	case source.FieldTenantID:
		m.ResetTenantID()
		return nil
	case source.FieldCanonicalID:
		m.ResetCanonicalID()
		return nil
	case source.FieldDoi:
		m.ResetDoi()
		return nil
	case source.FieldArxivID:
		m.ResetArxivID()
		return nil
	case source.FieldOpenalexID:
		m.ResetOpenalexID()
		return nil
	case source.FieldURL:
		m.ResetURL()
		return nil
	case source.FieldTitle:
		m.ResetTitle()
		return nil
	case source.FieldAuthors:
		m.ResetAuthors()
		return nil
	case source.FieldYear:
		m.ResetYear()
		return nil
	case source.FieldAbstract:
		m.ResetAbstract()
		return nil
	case source.FieldPdfURL:
		m.ResetPdfURL()
		return nil
	case source.FieldSourceType:
		m.ResetSourceType()
		return nil
	case source.FieldConnector:
		m.ResetConnector()
		return nil
	case source.FieldCitationsCount:
		m.ResetCitationsCount()
		return nil
	case source.FieldExtraMetadata:
		m.ResetExtraMetadata()
		return nil
	case source.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case source.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Source field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.snapshots != nil {
		edges = append(edges, source.EdgeSnapshots)
	}
	if m.snippets != nil {
		edges = append(edges, source.EdgeSnippets)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case source.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.snapshots))
		for id := range m.snapshots {
			ids = append(ids, id)
		}
		return ids
	case source.EdgeSnippets:
		ids := make([]ent.Value, 0, len(m.snippets))
		for id := range m.snippets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsnapshots != nil {
		edges = append(edges, source.EdgeSnapshots)
	}
	if m.removedsnippets != nil {
		edges = append(edges, source.EdgeSnippets)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case source.EdgeSnapshots:
		ids := make([]ent.Value, 0, len(m.removedsnapshots))
		for id := range m.removedsnapshots {
			ids = append(ids, id)
		}
		return ids
	case source.EdgeSnippets:
		ids := make([]ent.Value, 0, len(m.removedsnippets))
		for id := range m.removedsnippets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsnapshots {
		edges = append(edges, source.EdgeSnapshots)
	}
	if m.clearedsnippets {
		edges = append(edges, source.EdgeSnippets)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceMutation) EdgeCleared(name string) bool {
	switch name {
	case source.EdgeSnapshots:
		return m.clearedsnapshots
	case source.EdgeSnippets:
		return m.clearedsnippets
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Source unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceMutation) ResetEdge(name string) error {
	switch name {
	case source.EdgeSnapshots:
		m.ResetSnapshots()
		return nil
	case source.EdgeSnippets:
		m.ResetSnippets()
		return nil
	}
	return fmt.Errorf("unknown Source edge %s", name)
}

// SourceEmbeddingMutation represents an operation that mutates the SourceEmbedding nodes in the graph.
type SourceEmbeddingMutation struct {
	config
	op              Op
	typ             string
	id              *string
	tenant_id       *string
	canonical_id    *string
	embedding_model *string
	embedding       *pgvector.Vector
	text_hash       *string
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*SourceEmbedding, error)
	predicates      []predicate.SourceEmbedding
}

var _ ent.Mutation = (*SourceEmbeddingMutation)(nil)

// sourceembeddingOption allows management of the mutation configuration using functional options.
type sourceembeddingOption func(*SourceEmbeddingMutation)

// newSourceEmbeddingMutation creates new mutation for the SourceEmbedding entity.
func newSourceEmbeddingMutation(c config, op Op, opts ...sourceembeddingOption) *SourceEmbeddingMutation {
	m := &SourceEmbeddingMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceEmbedding,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceEmbeddingID sets the ID field of the mutation.
func withSourceEmbeddingID(id string) sourceembeddingOption {
	return func(m *SourceEmbeddingMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceEmbedding
		)
		m.oldValue = func(ctx context.Context) (*SourceEmbedding, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceEmbedding.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceEmbedding sets the old SourceEmbedding of the mutation.
func withSourceEmbedding(node *SourceEmbedding) sourceembeddingOption {
	return func(m *SourceEmbeddingMutation) {
		m.oldValue = func(context.Context) (*SourceEmbedding, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceEmbeddingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceEmbeddingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SourceEmbedding entities.
func (m *SourceEmbeddingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceEmbeddingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceEmbeddingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceEmbedding.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *SourceEmbeddingMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *SourceEmbeddingMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the SourceEmbedding entity.
// If the SourceEmbedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceEmbeddingMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *SourceEmbeddingMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetCanonicalID sets the "canonical_id" field.
func (m *SourceEmbeddingMutation) SetCanonicalID(s string) {
	m.canonical_id = &s
}

// CanonicalID returns the value of the "canonical_id" field in the mutation.
func (m *SourceEmbeddingMutation) CanonicalID() (r string, exists bool) {
	v := m.canonical_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalID returns the old "canonical_id" field's value of the SourceEmbedding entity.
// If the SourceEmbedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceEmbeddingMutation) OldCanonicalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalID: %w", err)
	}
	return oldValue.CanonicalID, nil
}

// ResetCanonicalID resets all changes to the "canonical_id" field.
func (m *SourceEmbeddingMutation) ResetCanonicalID() {
	m.canonical_id = nil
}

// SetEmbeddingModel sets the "embedding_model" field.
func (m *SourceEmbeddingMutation) SetEmbeddingModel(s string) {
	m.embedding_model = &s
}

// EmbeddingModel returns the value of the "embedding_model" field in the mutation.
func (m *SourceEmbeddingMutation) EmbeddingModel() (r string, exists bool) {
	v := m.embedding_model
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbeddingModel returns the old "embedding_model" field's value of the SourceEmbedding entity.
// If the SourceEmbedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceEmbeddingMutation) OldEmbeddingModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbeddingModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbeddingModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbeddingModel: %w", err)
	}
	return oldValue.EmbeddingModel, nil
}

// ResetEmbeddingModel resets all changes to the "embedding_model" field.
func (m *SourceEmbeddingMutation) ResetEmbeddingModel() {
	m.embedding_model = nil
}

// SetEmbedding sets the "embedding" field.
func (m *SourceEmbeddingMutation) SetEmbedding(pg pgvector.Vector) {
	m.embedding = &pg
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *SourceEmbeddingMutation) Embedding() (r pgvector.Vector, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the SourceEmbedding entity.
// If the SourceEmbedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceEmbeddingMutation) OldEmbedding(ctx context.Context) (v pgvector.Vector, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *SourceEmbeddingMutation) ResetEmbedding() {
	m.embedding = nil
}

// SetTextHash sets the "text_hash" field.
func (m *SourceEmbeddingMutation) SetTextHash(s string) {
	m.text_hash = &s
}

// TextHash returns the value of the "text_hash" field in the mutation.
func (m *SourceEmbeddingMutation) TextHash() (r string, exists bool) {
	v := m.text_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldTextHash returns the old "text_hash" field's value of the SourceEmbedding entity.
// If the SourceEmbedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceEmbeddingMutation) OldTextHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextHash: %w", err)
	}
	return oldValue.TextHash, nil
}

// ResetTextHash resets all changes to the "text_hash" field.
func (m *SourceEmbeddingMutation) ResetTextHash() {
	m.text_hash = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SourceEmbeddingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SourceEmbeddingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SourceEmbedding entity.
// If the SourceEmbedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceEmbeddingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SourceEmbeddingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SourceEmbeddingMutation builder.
func (m *SourceEmbeddingMutation) Where(ps ...predicate.SourceEmbedding) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceEmbeddingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceEmbeddingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceEmbedding, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceEmbeddingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceEmbeddingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceEmbedding).
func (m *SourceEmbeddingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceEmbeddingMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.tenant_id != nil {
		fields = append(fields, sourceembedding.FieldTenantID)
	}
	if m.canonical_id != nil {
		fields = append(fields, sourceembedding.FieldCanonicalID)
	}
	if m.embedding_model != nil {
		fields = append(fields, sourceembedding.FieldEmbeddingModel)
	}
	if m.embedding != nil {
		fields = append(fields, sourceembedding.FieldEmbedding)
	}
	if m.text_hash != nil {
		fields = append(fields, sourceembedding.FieldTextHash)
	}
	if m.updated_at != nil {
		fields = append(fields, sourceembedding.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceEmbeddingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourceembedding.FieldTenantID:
		return m.TenantID()
	case sourceembedding.FieldCanonicalID:
		return m.CanonicalID()
	case sourceembedding.FieldEmbeddingModel:
		return m.EmbeddingModel()
	case sourceembedding.FieldEmbedding:
		return m.Embedding()
	case sourceembedding.FieldTextHash:
		return m.TextHash()
	case sourceembedding.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceEmbeddingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourceembedding.FieldTenantID:
		return m.OldTenantID(ctx)
	case sourceembedding.FieldCanonicalID:
		return m.OldCanonicalID(ctx)
	case sourceembedding.FieldEmbeddingModel:
		return m.OldEmbeddingModel(ctx)
	case sourceembedding.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case sourceembedding.FieldTextHash:
		return m.OldTextHash(ctx)
	case sourceembedding.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SourceEmbedding field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceEmbeddingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourceembedding.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case sourceembedding.FieldCanonicalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalID(v)
		return nil
	case sourceembedding.FieldEmbeddingModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbeddingModel(v)
		return nil
	case sourceembedding.FieldEmbedding:
		v, ok := value.(pgvector.Vector)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case sourceembedding.FieldTextHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextHash(v)
		return nil
	case sourceembedding.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SourceEmbedding field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceEmbeddingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceEmbeddingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceEmbeddingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SourceEmbedding numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceEmbeddingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceEmbeddingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceEmbeddingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SourceEmbedding nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceEmbeddingMutation) ResetField(name string) error {
	switch name {
	case sourceembedding.FieldTenantID:
		m.ResetTenantID()
		return nil
	case sourceembedding.FieldCanonicalID:
		m.ResetCanonicalID()
		return nil
	case sourceembedding.FieldEmbeddingModel:
		m.ResetEmbeddingModel()
		return nil
	case sourceembedding.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case sourceembedding.FieldTextHash:
		m.ResetTextHash()
		return nil
	case sourceembedding.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SourceEmbedding field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceEmbeddingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceEmbeddingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceEmbeddingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceEmbeddingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceEmbeddingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceEmbeddingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceEmbeddingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SourceEmbedding unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceEmbeddingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SourceEmbedding edge %s", name)
}

// SourceSnapshotMutation represents an operation that mutates the SourceSnapshot nodes in the graph.
type SourceSnapshotMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	content_hash     *string
	snippet_count    *int
	addsnippet_count *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	source           *string
	clearedsource    bool
	done             bool
	oldValue         func(context.Context) (*SourceSnapshot, error)
	predicates       []predicate.SourceSnapshot
}

var _ ent.Mutation = (*SourceSnapshotMutation)(nil)

// sourcesnapshotOption allows management of the mutation configuration using functional options.
type sourcesnapshotOption func(*SourceSnapshotMutation)

// newSourceSnapshotMutation creates new mutation for the SourceSnapshot entity.
func newSourceSnapshotMutation(c config, op Op, opts ...sourcesnapshotOption) *SourceSnapshotMutation {
	m := &SourceSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceSnapshotID sets the ID field of the mutation.
func withSourceSnapshotID(id string) sourcesnapshotOption {
	return func(m *SourceSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceSnapshot
		)
		m.oldValue = func(ctx context.Context) (*SourceSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceSnapshot sets the old SourceSnapshot of the mutation.
func withSourceSnapshot(node *SourceSnapshot) sourcesnapshotOption {
	return func(m *SourceSnapshotMutation) {
		m.oldValue = func(context.Context) (*SourceSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SourceSnapshot entities.
func (m *SourceSnapshotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceSnapshotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceSnapshotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *SourceSnapshotMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *SourceSnapshotMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the SourceSnapshot entity.
// If the SourceSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSnapshotMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *SourceSnapshotMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetSourceID sets the "source_id" field.
func (m *SourceSnapshotMutation) SetSourceID(s string) {
	m.source = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *SourceSnapshotMutation) SourceID() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the SourceSnapshot entity.
// If the SourceSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSnapshotMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *SourceSnapshotMutation) ResetSourceID() {
	m.source = nil
}

// SetContentHash sets the "content_hash" field.
func (m *SourceSnapshotMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *SourceSnapshotMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the SourceSnapshot entity.
// If the SourceSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSnapshotMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *SourceSnapshotMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetSnippetCount sets the "snippet_count" field.
func (m *SourceSnapshotMutation) SetSnippetCount(i int) {
	m.snippet_count = &i
	m.addsnippet_count = nil
}

// SnippetCount returns the value of the "snippet_count" field in the mutation.
func (m *SourceSnapshotMutation) SnippetCount() (r int, exists bool) {
	v := m.snippet_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSnippetCount returns the old "snippet_count" field's value of the SourceSnapshot entity.
// If the SourceSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSnapshotMutation) OldSnippetCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnippetCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnippetCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnippetCount: %w", err)
	}
	return oldValue.SnippetCount, nil
}

// AddSnippetCount adds i to the "snippet_count" field.
func (m *SourceSnapshotMutation) AddSnippetCount(i int) {
	if m.addsnippet_count != nil {
		*m.addsnippet_count += i
	} else {
		m.addsnippet_count = &i
	}
}

// AddedSnippetCount returns the value that was added to the "snippet_count" field in this mutation.
func (m *SourceSnapshotMutation) AddedSnippetCount() (r int, exists bool) {
	v := m.addsnippet_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSnippetCount resets all changes to the "snippet_count" field.
func (m *SourceSnapshotMutation) ResetSnippetCount() {
	m.snippet_count = nil
	m.addsnippet_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SourceSnapshotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SourceSnapshotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SourceSnapshot entity.
// If the SourceSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSnapshotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SourceSnapshotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSource clears the "source" edge to the Source entity.
func (m *SourceSnapshotMutation) ClearSource() {
	m.clearedsource = true
	m.clearedFields[sourcesnapshot.FieldSourceID] = struct{}{}
}

// SourceCleared reports if the "source" edge to the Source entity was cleared.
func (m *SourceSnapshotMutation) SourceCleared() bool {
	return m.clearedsource
}

// SourceIDs returns the "source" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceID instead. It exists only for internal usage by the builders.
func (m *SourceSnapshotMutation) SourceIDs() (ids []string) {
	if id := m.source; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSource resets all changes to the "source" edge.
func (m *SourceSnapshotMutation) ResetSource() {
	m.source = nil
	m.clearedsource = false
}

// Where appends a list predicates to the SourceSnapshotMutation builder.
func (m *SourceSnapshotMutation) Where(ps ...predicate.SourceSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceSnapshot).
func (m *SourceSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.tenant_id != nil {
		fields = append(fields, sourcesnapshot.FieldTenantID)
	}
	if m.source != nil {
		fields = append(fields, sourcesnapshot.FieldSourceID)
	}
	if m.content_hash != nil {
		fields = append(fields, sourcesnapshot.FieldContentHash)
	}
	if m.snippet_count != nil {
		fields = append(fields, sourcesnapshot.FieldSnippetCount)
	}
	if m.created_at != nil {
		fields = append(fields, sourcesnapshot.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourcesnapshot.FieldTenantID:
		return m.TenantID()
	case sourcesnapshot.FieldSourceID:
		return m.SourceID()
	case sourcesnapshot.FieldContentHash:
		return m.ContentHash()
	case sourcesnapshot.FieldSnippetCount:
		return m.SnippetCount()
	case sourcesnapshot.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourcesnapshot.FieldTenantID:
		return m.OldTenantID(ctx)
	case sourcesnapshot.FieldSourceID:
		return m.OldSourceID(ctx)
	case sourcesnapshot.FieldContentHash:
		return m.OldContentHash(ctx)
	case sourcesnapshot.FieldSnippetCount:
		return m.OldSnippetCount(ctx)
	case sourcesnapshot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SourceSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourcesnapshot.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case sourcesnapshot.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case sourcesnapshot.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case sourcesnapshot.FieldSnippetCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnippetCount(v)
		return nil
	case sourcesnapshot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SourceSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsnippet_count != nil {
		fields = append(fields, sourcesnapshot.FieldSnippetCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sourcesnapshot.FieldSnippetCount:
		return m.AddedSnippetCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sourcesnapshot.FieldSnippetCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSnippetCount(v)
		return nil
	}
	return fmt.Errorf("unknown SourceSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SourceSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceSnapshotMutation) ResetField(name string) error {
	switch name {
	case sourcesnapshot.FieldTenantID:
		m.ResetTenantID()
		return nil
	case sourcesnapshot.FieldSourceID:
		m.ResetSourceID()
		return nil
	case sourcesnapshot.FieldContentHash:
		m.ResetContentHash()
		return nil
	case sourcesnapshot.FieldSnippetCount:
		m.ResetSnippetCount()
		return nil
	case sourcesnapshot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SourceSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.source != nil {
		edges = append(edges, sourcesnapshot.EdgeSource)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceSnapshotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sourcesnapshot.EdgeSource:
		if id := m.source; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsource {
		edges = append(edges, sourcesnapshot.EdgeSource)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceSnapshotMutation) EdgeCleared(name string) bool {
	switch name {
	case sourcesnapshot.EdgeSource:
		return m.clearedsource
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceSnapshotMutation) ClearEdge(name string) error {
	switch name {
	case sourcesnapshot.EdgeSource:
		m.ClearSource()
		return nil
	}
	return fmt.Errorf("unknown SourceSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceSnapshotMutation) ResetEdge(name string) error {
	switch name {
	case sourcesnapshot.EdgeSource:
		m.ResetSource()
		return nil
	}
	return fmt.Errorf("unknown SourceSnapshot edge %s", name)
}

// SourceSnippetMutation represents an operation that mutates the SourceSnippet nodes in the graph.
type SourceSnippetMutation struct {
	config
	op              Op
	typ             string
	id              *string
	tenant_id       *string
	snapshot_id     *string
	ord             *int
	addord          *int
	text            *string
	embedding       *pgvector.Vector
	embedding_model *string
	clearedFields   map[string]struct{}
	source          *string
	clearedsource   bool
	done            bool
	oldValue        func(context.Context) (*SourceSnippet, error)
	predicates      []predicate.SourceSnippet
}

var _ ent.Mutation = (*SourceSnippetMutation)(nil)

// sourcesnippetOption allows management of the mutation configuration using functional options.
type sourcesnippetOption func(*SourceSnippetMutation)

// newSourceSnippetMutation creates new mutation for the SourceSnippet entity.
func newSourceSnippetMutation(c config, op Op, opts ...sourcesnippetOption) *SourceSnippetMutation {
	m := &SourceSnippetMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceSnippet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceSnippetID sets the ID field of the mutation.
func withSourceSnippetID(id string) sourcesnippetOption {
	return func(m *SourceSnippetMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceSnippet
		)
		m.oldValue = func(ctx context.Context) (*SourceSnippet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceSnippet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceSnippet sets the old SourceSnippet of the mutation.
func withSourceSnippet(node *SourceSnippet) sourcesnippetOption {
	return func(m *SourceSnippetMutation) {
		m.oldValue = func(context.Context) (*SourceSnippet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceSnippetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceSnippetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SourceSnippet entities.
func (m *SourceSnippetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceSnippetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceSnippetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceSnippet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *SourceSnippetMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *SourceSnippetMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the SourceSnippet entity.
// If the SourceSnippet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSnippetMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *SourceSnippetMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetSourceID sets the "source_id" field.
func (m *SourceSnippetMutation) SetSourceID(s string) {
	m.source = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *SourceSnippetMutation) SourceID() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the SourceSnippet entity.
// If the SourceSnippet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSnippetMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *SourceSnippetMutation) ResetSourceID() {
	m.source = nil
}

// SetSnapshotID sets the "snapshot_id" field.
func (m *SourceSnippetMutation) SetSnapshotID(s string) {
	m.snapshot_id = &s
}

// SnapshotID returns the value of the "snapshot_id" field in the mutation.
func (m *SourceSnippetMutation) SnapshotID() (r string, exists bool) {
	v := m.snapshot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshotID returns the old "snapshot_id" field's value of the SourceSnippet entity.
// If the SourceSnippet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSnippetMutation) OldSnapshotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshotID: %w", err)
	}
	return oldValue.SnapshotID, nil
}

// ResetSnapshotID resets all changes to the "snapshot_id" field.
func (m *SourceSnippetMutation) ResetSnapshotID() {
	m.snapshot_id = nil
}

// SetOrd sets the "ord" field.
func (m *SourceSnippetMutation) SetOrd(i int) {
	m.ord = &i
	m.addord = nil
}

// Ord returns the value of the "ord" field in the mutation.
func (m *SourceSnippetMutation) Ord() (r int, exists bool) {
	v := m.ord
	if v == nil {
		return
	}
	return *v, true
}

// OldOrd returns the old "ord" field's value of the SourceSnippet entity.
// If the SourceSnippet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSnippetMutation) OldOrd(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrd: %w", err)
	}
	return oldValue.Ord, nil
}

// AddOrd adds i to the "ord" field.
func (m *SourceSnippetMutation) AddOrd(i int) {
	if m.addord != nil {
		*m.addord += i
	} else {
		m.addord = &i
	}
}

// AddedOrd returns the value that was added to the "ord" field in this mutation.
func (m *SourceSnippetMutation) AddedOrd() (r int, exists bool) {
	v := m.addord
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrd resets all changes to the "ord" field.
func (m *SourceSnippetMutation) ResetOrd() {
	m.ord = nil
	m.addord = nil
}

// SetText sets the "text" field.
func (m *SourceSnippetMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *SourceSnippetMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the SourceSnippet entity.
// If the SourceSnippet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSnippetMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *SourceSnippetMutation) ResetText() {
	m.text = nil
}

// SetEmbedding sets the "embedding" field.
func (m *SourceSnippetMutation) SetEmbedding(pg pgvector.Vector) {
	m.embedding = &pg
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *SourceSnippetMutation) Embedding() (r pgvector.Vector, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the SourceSnippet entity.
// If the SourceSnippet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSnippetMutation) OldEmbedding(ctx context.Context) (v pgvector.Vector, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *SourceSnippetMutation) ResetEmbedding() {
	m.embedding = nil
}

// SetEmbeddingModel sets the "embedding_model" field.
func (m *SourceSnippetMutation) SetEmbeddingModel(s string) {
	m.embedding_model = &s
}

// EmbeddingModel returns the value of the "embedding_model" field in the mutation.
func (m *SourceSnippetMutation) EmbeddingModel() (r string, exists bool) {
	v := m.embedding_model
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbeddingModel returns the old "embedding_model" field's value of the SourceSnippet entity.
// If the SourceSnippet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceSnippetMutation) OldEmbeddingModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbeddingModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbeddingModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbeddingModel: %w", err)
	}
	return oldValue.EmbeddingModel, nil
}

// ResetEmbeddingModel resets all changes to the "embedding_model" field.
func (m *SourceSnippetMutation) ResetEmbeddingModel() {
	m.embedding_model = nil
}

// ClearSource clears the "source" edge to the Source entity.
func (m *SourceSnippetMutation) ClearSource() {
	m.clearedsource = true
	m.clearedFields[sourcesnippet.FieldSourceID] = struct{}{}
}

// SourceCleared reports if the "source" edge to the Source entity was cleared.
func (m *SourceSnippetMutation) SourceCleared() bool {
	return m.clearedsource
}

// SourceIDs returns the "source" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceID instead. It exists only for internal usage by the builders.
func (m *SourceSnippetMutation) SourceIDs() (ids []string) {
	if id := m.source; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSource resets all changes to the "source" edge.
func (m *SourceSnippetMutation) ResetSource() {
	m.source = nil
	m.clearedsource = false
}

// Where appends a list predicates to the SourceSnippetMutation builder.
func (m *SourceSnippetMutation) Where(ps ...predicate.SourceSnippet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceSnippetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceSnippetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceSnippet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceSnippetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceSnippetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceSnippet).
func (m *SourceSnippetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceSnippetMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant_id != nil {
		fields = append(fields, sourcesnippet.FieldTenantID)
	}
	if m.source != nil {
		fields = append(fields, sourcesnippet.FieldSourceID)
	}
	if m.snapshot_id != nil {
		fields = append(fields, sourcesnippet.FieldSnapshotID)
	}
	if m.ord != nil {
		fields = append(fields, sourcesnippet.FieldOrd)
	}
	if m.text != nil {
		fields = append(fields, sourcesnippet.FieldText)
	}
	if m.embedding != nil {
		fields = append(fields, sourcesnippet.FieldEmbedding)
	}
	if m.embedding_model != nil {
		fields = append(fields, sourcesnippet.FieldEmbeddingModel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceSnippetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourcesnippet.FieldTenantID:
		return m.TenantID()
	case sourcesnippet.FieldSourceID:
		return m.SourceID()
	case sourcesnippet.FieldSnapshotID:
		return m.SnapshotID()
	case sourcesnippet.FieldOrd:
		return m.Ord()
	case sourcesnippet.FieldText:
		return m.Text()
	case sourcesnippet.FieldEmbedding:
		return m.Embedding()
	case sourcesnippet.FieldEmbeddingModel:
		return m.EmbeddingModel()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceSnippetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourcesnippet.FieldTenantID:
		return m.OldTenantID(ctx)
	case sourcesnippet.FieldSourceID:
		return m.OldSourceID(ctx)
	case sourcesnippet.FieldSnapshotID:
		return m.OldSnapshotID(ctx)
	case sourcesnippet.FieldOrd:
		return m.OldOrd(ctx)
	case sourcesnippet.FieldText:
		return m.OldText(ctx)
	case sourcesnippet.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case sourcesnippet.FieldEmbeddingModel:
		return m.OldEmbeddingModel(ctx)
	}
	return nil, fmt.Errorf("unknown SourceSnippet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceSnippetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourcesnippet.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case sourcesnippet.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case sourcesnippet.FieldSnapshotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshotID(v)
		return nil
	case sourcesnippet.FieldOrd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrd(v)
		return nil
	case sourcesnippet.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case sourcesnippet.FieldEmbedding:
		v, ok := value.(pgvector.Vector)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case sourcesnippet.FieldEmbeddingModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbeddingModel(v)
		return nil
	}
	return fmt.Errorf("unknown SourceSnippet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceSnippetMutation) AddedFields() []string {
	var fields []string
	if m.addord != nil {
		fields = append(fields, sourcesnippet.FieldOrd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceSnippetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sourcesnippet.FieldOrd:
		return m.AddedOrd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceSnippetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sourcesnippet.FieldOrd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrd(v)
		return nil
	}
	return fmt.Errorf("unknown SourceSnippet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceSnippetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceSnippetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceSnippetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SourceSnippet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceSnippetMutation) ResetField(name string) error {
	switch name {
	case sourcesnippet.FieldTenantID:
		m.ResetTenantID()
		return nil
	case sourcesnippet.FieldSourceID:
		m.ResetSourceID()
		return nil
	case sourcesnippet.FieldSnapshotID:
		m.ResetSnapshotID()
		return nil
	case sourcesnippet.FieldOrd:
		m.ResetOrd()
		return nil
	case sourcesnippet.FieldText:
		m.ResetText()
		return nil
	case sourcesnippet.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case sourcesnippet.FieldEmbeddingModel:
		m.ResetEmbeddingModel()
		return nil
	}
	return fmt.Errorf("unknown SourceSnippet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceSnippetMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.source != nil {
		edges = append(edges, sourcesnippet.EdgeSource)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceSnippetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sourcesnippet.EdgeSource:
		if id := m.source; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceSnippetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceSnippetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceSnippetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsource {
		edges = append(edges, sourcesnippet.EdgeSource)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceSnippetMutation) EdgeCleared(name string) bool {
	switch name {
	case sourcesnippet.EdgeSource:
		return m.clearedsource
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceSnippetMutation) ClearEdge(name string) error {
	switch name {
	case sourcesnippet.EdgeSource:
		m.ClearSource()
		return nil
	}
	return fmt.Errorf("unknown SourceSnippet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceSnippetMutation) ResetEdge(name string) error {
	switch name {
	case sourcesnippet.EdgeSource:
		m.ResetSource()
		return nil
	}
	return fmt.Errorf("unknown SourceSnippet edge %s", name)
}
