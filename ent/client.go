// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/inquiro-ai/inquiro/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/inquiro-ai/inquiro/ent/artifact"
	"github.com/inquiro-ai/inquiro/ent/draftsection"
	"github.com/inquiro-ai/inquiro/ent/job"
	"github.com/inquiro-ai/inquiro/ent/outlinenote"
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
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Artifact is the client for interacting with the Artifact builders.
	Artifact *ArtifactClient
	// DraftSection is the client for interacting with the DraftSection builders.
	DraftSection *DraftSectionClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// OutlineNote is the client for interacting with the OutlineNote builders.
	OutlineNote *OutlineNoteClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// Run is the client for interacting with the Run builders.
	Run *RunClient
	// RunCheckpoint is the client for interacting with the RunCheckpoint builders.
	RunCheckpoint *RunCheckpointClient
	// RunEvent is the client for interacting with the RunEvent builders.
	RunEvent *RunEventClient
	// RunSection is the client for interacting with the RunSection builders.
	RunSection *RunSectionClient
	// RunSource is the client for interacting with the RunSource builders.
	RunSource *RunSourceClient
	// SectionEvidence is the client for interacting with the SectionEvidence builders.
	SectionEvidence *SectionEvidenceClient
	// SectionReview is the client for interacting with the SectionReview builders.
	SectionReview *SectionReviewClient
	// Source is the client for interacting with the Source builders.
	Source *SourceClient
	// SourceEmbedding is the client for interacting with the SourceEmbedding builders.
	SourceEmbedding *SourceEmbeddingClient
	// SourceSnapshot is the client for interacting with the SourceSnapshot builders.
	SourceSnapshot *SourceSnapshotClient
	// SourceSnippet is the client for interacting with the SourceSnippet builders.
	SourceSnippet *SourceSnippetClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Artifact = NewArtifactClient(c.config)
	c.DraftSection = NewDraftSectionClient(c.config)
	c.Job = NewJobClient(c.config)
	c.OutlineNote = NewOutlineNoteClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.Run = NewRunClient(c.config)
	c.RunCheckpoint = NewRunCheckpointClient(c.config)
	c.RunEvent = NewRunEventClient(c.config)
	c.RunSection = NewRunSectionClient(c.config)
	c.RunSource = NewRunSourceClient(c.config)
	c.SectionEvidence = NewSectionEvidenceClient(c.config)
	c.SectionReview = NewSectionReviewClient(c.config)
	c.Source = NewSourceClient(c.config)
	c.SourceEmbedding = NewSourceEmbeddingClient(c.config)
	c.SourceSnapshot = NewSourceSnapshotClient(c.config)
	c.SourceSnippet = NewSourceSnippetClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Artifact:        NewArtifactClient(cfg),
		DraftSection:    NewDraftSectionClient(cfg),
		Job:             NewJobClient(cfg),
		OutlineNote:     NewOutlineNoteClient(cfg),
		Project:         NewProjectClient(cfg),
		Run:             NewRunClient(cfg),
		RunCheckpoint:   NewRunCheckpointClient(cfg),
		RunEvent:        NewRunEventClient(cfg),
		RunSection:      NewRunSectionClient(cfg),
		RunSource:       NewRunSourceClient(cfg),
		SectionEvidence: NewSectionEvidenceClient(cfg),
		SectionReview:   NewSectionReviewClient(cfg),
		Source:          NewSourceClient(cfg),
		SourceEmbedding: NewSourceEmbeddingClient(cfg),
		SourceSnapshot:  NewSourceSnapshotClient(cfg),
		SourceSnippet:   NewSourceSnippetClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Artifact:        NewArtifactClient(cfg),
		DraftSection:    NewDraftSectionClient(cfg),
		Job:             NewJobClient(cfg),
		OutlineNote:     NewOutlineNoteClient(cfg),
		Project:         NewProjectClient(cfg),
		Run:             NewRunClient(cfg),
		RunCheckpoint:   NewRunCheckpointClient(cfg),
		RunEvent:        NewRunEventClient(cfg),
		RunSection:      NewRunSectionClient(cfg),
		RunSource:       NewRunSourceClient(cfg),
		SectionEvidence: NewSectionEvidenceClient(cfg),
		SectionReview:   NewSectionReviewClient(cfg),
		Source:          NewSourceClient(cfg),
		SourceEmbedding: NewSourceEmbeddingClient(cfg),
		SourceSnapshot:  NewSourceSnapshotClient(cfg),
		SourceSnippet:   NewSourceSnippetClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Artifact.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Artifact, c.DraftSection, c.Job, c.OutlineNote, c.Project, c.Run,
		c.RunCheckpoint, c.RunEvent, c.RunSection, c.RunSource, c.SectionEvidence,
		c.SectionReview, c.Source, c.SourceEmbedding, c.SourceSnapshot,
		c.SourceSnippet,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Artifact, c.DraftSection, c.Job, c.OutlineNote, c.Project, c.Run,
		c.RunCheckpoint, c.RunEvent, c.RunSection, c.RunSource, c.SectionEvidence,
		c.SectionReview, c.Source, c.SourceEmbedding, c.SourceSnapshot,
		c.SourceSnippet,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ArtifactMutation:
		return c.Artifact.mutate(ctx, m)
	case *DraftSectionMutation:
		return c.DraftSection.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *OutlineNoteMutation:
		return c.OutlineNote.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *RunMutation:
		return c.Run.mutate(ctx, m)
	case *RunCheckpointMutation:
		return c.RunCheckpoint.mutate(ctx, m)
	case *RunEventMutation:
		return c.RunEvent.mutate(ctx, m)
	case *RunSectionMutation:
		return c.RunSection.mutate(ctx, m)
	case *RunSourceMutation:
		return c.RunSource.mutate(ctx, m)
	case *SectionEvidenceMutation:
		return c.SectionEvidence.mutate(ctx, m)
	case *SectionReviewMutation:
		return c.SectionReview.mutate(ctx, m)
	case *SourceMutation:
		return c.Source.mutate(ctx, m)
	case *SourceEmbeddingMutation:
		return c.SourceEmbedding.mutate(ctx, m)
	case *SourceSnapshotMutation:
		return c.SourceSnapshot.mutate(ctx, m)
	case *SourceSnippetMutation:
		return c.SourceSnippet.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ArtifactClient is a client for the Artifact schema.
type ArtifactClient struct {
	config
}

// NewArtifactClient returns a client for the Artifact from the given config.
func NewArtifactClient(c config) *ArtifactClient {
	return &ArtifactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `artifact.Hooks(f(g(h())))`.
func (c *ArtifactClient) Use(hooks ...Hook) {
	c.hooks.Artifact = append(c.hooks.Artifact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `artifact.Intercept(f(g(h())))`.
func (c *ArtifactClient) Intercept(interceptors ...Interceptor) {
	c.inters.Artifact = append(c.inters.Artifact, interceptors...)
}

// Create returns a builder for creating a Artifact entity.
func (c *ArtifactClient) Create() *ArtifactCreate {
	mutation := newArtifactMutation(c.config, OpCreate)
	return &ArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Artifact entities.
func (c *ArtifactClient) CreateBulk(builders ...*ArtifactCreate) *ArtifactCreateBulk {
	return &ArtifactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArtifactClient) MapCreateBulk(slice any, setFunc func(*ArtifactCreate, int)) *ArtifactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArtifactCreateBulk{err: fmt.Errorf("calling to ArtifactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArtifactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArtifactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Artifact.
func (c *ArtifactClient) Update() *ArtifactUpdate {
	mutation := newArtifactMutation(c.config, OpUpdate)
	return &ArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArtifactClient) UpdateOne(_m *Artifact) *ArtifactUpdateOne {
	mutation := newArtifactMutation(c.config, OpUpdateOne, withArtifact(_m))
	return &ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArtifactClient) UpdateOneID(id string) *ArtifactUpdateOne {
	mutation := newArtifactMutation(c.config, OpUpdateOne, withArtifactID(id))
	return &ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Artifact.
func (c *ArtifactClient) Delete() *ArtifactDelete {
	mutation := newArtifactMutation(c.config, OpDelete)
	return &ArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArtifactClient) DeleteOne(_m *Artifact) *ArtifactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArtifactClient) DeleteOneID(id string) *ArtifactDeleteOne {
	builder := c.Delete().Where(artifact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArtifactDeleteOne{builder}
}

// Query returns a query builder for Artifact.
func (c *ArtifactClient) Query() *ArtifactQuery {
	return &ArtifactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArtifact},
		inters: c.Interceptors(),
	}
}

// Get returns a Artifact entity by its id.
func (c *ArtifactClient) Get(ctx context.Context, id string) (*Artifact, error) {
	return c.Query().Where(artifact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArtifactClient) GetX(ctx context.Context, id string) *Artifact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Artifact.
func (c *ArtifactClient) QueryProject(_m *Artifact) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(artifact.Table, artifact.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, artifact.ProjectTable, artifact.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRun queries the run edge of a Artifact.
func (c *ArtifactClient) QueryRun(_m *Artifact) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(artifact.Table, artifact.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, artifact.RunTable, artifact.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ArtifactClient) Hooks() []Hook {
	return c.hooks.Artifact
}

// Interceptors returns the client interceptors.
func (c *ArtifactClient) Interceptors() []Interceptor {
	return c.inters.Artifact
}

func (c *ArtifactClient) mutate(ctx context.Context, m *ArtifactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Artifact mutation op: %q", m.Op())
	}
}

// DraftSectionClient is a client for the DraftSection schema.
type DraftSectionClient struct {
	config
}

// NewDraftSectionClient returns a client for the DraftSection from the given config.
func NewDraftSectionClient(c config) *DraftSectionClient {
	return &DraftSectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `draftsection.Hooks(f(g(h())))`.
func (c *DraftSectionClient) Use(hooks ...Hook) {
	c.hooks.DraftSection = append(c.hooks.DraftSection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `draftsection.Intercept(f(g(h())))`.
func (c *DraftSectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.DraftSection = append(c.inters.DraftSection, interceptors...)
}

// Create returns a builder for creating a DraftSection entity.
func (c *DraftSectionClient) Create() *DraftSectionCreate {
	mutation := newDraftSectionMutation(c.config, OpCreate)
	return &DraftSectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DraftSection entities.
func (c *DraftSectionClient) CreateBulk(builders ...*DraftSectionCreate) *DraftSectionCreateBulk {
	return &DraftSectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DraftSectionClient) MapCreateBulk(slice any, setFunc func(*DraftSectionCreate, int)) *DraftSectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DraftSectionCreateBulk{err: fmt.Errorf("calling to DraftSectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DraftSectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DraftSectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DraftSection.
func (c *DraftSectionClient) Update() *DraftSectionUpdate {
	mutation := newDraftSectionMutation(c.config, OpUpdate)
	return &DraftSectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DraftSectionClient) UpdateOne(_m *DraftSection) *DraftSectionUpdateOne {
	mutation := newDraftSectionMutation(c.config, OpUpdateOne, withDraftSection(_m))
	return &DraftSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DraftSectionClient) UpdateOneID(id string) *DraftSectionUpdateOne {
	mutation := newDraftSectionMutation(c.config, OpUpdateOne, withDraftSectionID(id))
	return &DraftSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DraftSection.
func (c *DraftSectionClient) Delete() *DraftSectionDelete {
	mutation := newDraftSectionMutation(c.config, OpDelete)
	return &DraftSectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DraftSectionClient) DeleteOne(_m *DraftSection) *DraftSectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DraftSectionClient) DeleteOneID(id string) *DraftSectionDeleteOne {
	builder := c.Delete().Where(draftsection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DraftSectionDeleteOne{builder}
}

// Query returns a query builder for DraftSection.
func (c *DraftSectionClient) Query() *DraftSectionQuery {
	return &DraftSectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDraftSection},
		inters: c.Interceptors(),
	}
}

// Get returns a DraftSection entity by its id.
func (c *DraftSectionClient) Get(ctx context.Context, id string) (*DraftSection, error) {
	return c.Query().Where(draftsection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DraftSectionClient) GetX(ctx context.Context, id string) *DraftSection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a DraftSection.
func (c *DraftSectionClient) QueryRun(_m *DraftSection) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(draftsection.Table, draftsection.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, draftsection.RunTable, draftsection.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DraftSectionClient) Hooks() []Hook {
	return c.hooks.DraftSection
}

// Interceptors returns the client interceptors.
func (c *DraftSectionClient) Interceptors() []Interceptor {
	return c.inters.DraftSection
}

func (c *DraftSectionClient) mutate(ctx context.Context, m *DraftSectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DraftSectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DraftSectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DraftSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DraftSectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DraftSection mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a Job.
func (c *JobClient) QueryRun(_m *Job) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, job.RunTable, job.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// OutlineNoteClient is a client for the OutlineNote schema.
type OutlineNoteClient struct {
	config
}

// NewOutlineNoteClient returns a client for the OutlineNote from the given config.
func NewOutlineNoteClient(c config) *OutlineNoteClient {
	return &OutlineNoteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outlinenote.Hooks(f(g(h())))`.
func (c *OutlineNoteClient) Use(hooks ...Hook) {
	c.hooks.OutlineNote = append(c.hooks.OutlineNote, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outlinenote.Intercept(f(g(h())))`.
func (c *OutlineNoteClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutlineNote = append(c.inters.OutlineNote, interceptors...)
}

// Create returns a builder for creating a OutlineNote entity.
func (c *OutlineNoteClient) Create() *OutlineNoteCreate {
	mutation := newOutlineNoteMutation(c.config, OpCreate)
	return &OutlineNoteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutlineNote entities.
func (c *OutlineNoteClient) CreateBulk(builders ...*OutlineNoteCreate) *OutlineNoteCreateBulk {
	return &OutlineNoteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutlineNoteClient) MapCreateBulk(slice any, setFunc func(*OutlineNoteCreate, int)) *OutlineNoteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutlineNoteCreateBulk{err: fmt.Errorf("calling to OutlineNoteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutlineNoteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutlineNoteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutlineNote.
func (c *OutlineNoteClient) Update() *OutlineNoteUpdate {
	mutation := newOutlineNoteMutation(c.config, OpUpdate)
	return &OutlineNoteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutlineNoteClient) UpdateOne(_m *OutlineNote) *OutlineNoteUpdateOne {
	mutation := newOutlineNoteMutation(c.config, OpUpdateOne, withOutlineNote(_m))
	return &OutlineNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutlineNoteClient) UpdateOneID(id string) *OutlineNoteUpdateOne {
	mutation := newOutlineNoteMutation(c.config, OpUpdateOne, withOutlineNoteID(id))
	return &OutlineNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutlineNote.
func (c *OutlineNoteClient) Delete() *OutlineNoteDelete {
	mutation := newOutlineNoteMutation(c.config, OpDelete)
	return &OutlineNoteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutlineNoteClient) DeleteOne(_m *OutlineNote) *OutlineNoteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutlineNoteClient) DeleteOneID(id string) *OutlineNoteDeleteOne {
	builder := c.Delete().Where(outlinenote.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutlineNoteDeleteOne{builder}
}

// Query returns a query builder for OutlineNote.
func (c *OutlineNoteClient) Query() *OutlineNoteQuery {
	return &OutlineNoteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutlineNote},
		inters: c.Interceptors(),
	}
}

// Get returns a OutlineNote entity by its id.
func (c *OutlineNoteClient) Get(ctx context.Context, id string) (*OutlineNote, error) {
	return c.Query().Where(outlinenote.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutlineNoteClient) GetX(ctx context.Context, id string) *OutlineNote {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a OutlineNote.
func (c *OutlineNoteClient) QueryRun(_m *OutlineNote) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(outlinenote.Table, outlinenote.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, outlinenote.RunTable, outlinenote.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OutlineNoteClient) Hooks() []Hook {
	return c.hooks.OutlineNote
}

// Interceptors returns the client interceptors.
func (c *OutlineNoteClient) Interceptors() []Interceptor {
	return c.inters.OutlineNote
}

func (c *OutlineNoteClient) mutate(ctx context.Context, m *OutlineNoteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutlineNoteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutlineNoteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutlineNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutlineNoteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OutlineNote mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRuns queries the runs edge of a Project.
func (c *ProjectClient) QueryRuns(_m *Project) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.RunsTable, project.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryArtifacts queries the artifacts edge of a Project.
func (c *ProjectClient) QueryArtifacts(_m *Project) *ArtifactQuery {
	query := (&ArtifactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(artifact.Table, artifact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.ArtifactsTable, project.ArtifactsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// RunClient is a client for the Run schema.
type RunClient struct {
	config
}

// NewRunClient returns a client for the Run from the given config.
func NewRunClient(c config) *RunClient {
	return &RunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `run.Hooks(f(g(h())))`.
func (c *RunClient) Use(hooks ...Hook) {
	c.hooks.Run = append(c.hooks.Run, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `run.Intercept(f(g(h())))`.
func (c *RunClient) Intercept(interceptors ...Interceptor) {
	c.inters.Run = append(c.inters.Run, interceptors...)
}

// Create returns a builder for creating a Run entity.
func (c *RunClient) Create() *RunCreate {
	mutation := newRunMutation(c.config, OpCreate)
	return &RunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Run entities.
func (c *RunClient) CreateBulk(builders ...*RunCreate) *RunCreateBulk {
	return &RunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunClient) MapCreateBulk(slice any, setFunc func(*RunCreate, int)) *RunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunCreateBulk{err: fmt.Errorf("calling to RunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Run.
func (c *RunClient) Update() *RunUpdate {
	mutation := newRunMutation(c.config, OpUpdate)
	return &RunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunClient) UpdateOne(_m *Run) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRun(_m))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunClient) UpdateOneID(id string) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRunID(id))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Run.
func (c *RunClient) Delete() *RunDelete {
	mutation := newRunMutation(c.config, OpDelete)
	return &RunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunClient) DeleteOne(_m *Run) *RunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunClient) DeleteOneID(id string) *RunDeleteOne {
	builder := c.Delete().Where(run.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunDeleteOne{builder}
}

// Query returns a query builder for Run.
func (c *RunClient) Query() *RunQuery {
	return &RunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRun},
		inters: c.Interceptors(),
	}
}

// Get returns a Run entity by its id.
func (c *RunClient) Get(ctx context.Context, id string) (*Run, error) {
	return c.Query().Where(run.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunClient) GetX(ctx context.Context, id string) *Run {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Run.
func (c *RunClient) QueryProject(_m *Run) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, run.ProjectTable, run.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Run.
func (c *RunClient) QueryJobs(_m *Run) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.JobsTable, run.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Run.
func (c *RunClient) QueryEvents(_m *Run) *RunEventQuery {
	query := (&RunEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(runevent.Table, runevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.EventsTable, run.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySections queries the sections edge of a Run.
func (c *RunClient) QuerySections(_m *Run) *RunSectionQuery {
	query := (&RunSectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(runsection.Table, runsection.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.SectionsTable, run.SectionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOutlineNotes queries the outline_notes edge of a Run.
func (c *RunClient) QueryOutlineNotes(_m *Run) *OutlineNoteQuery {
	query := (&OutlineNoteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(outlinenote.Table, outlinenote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.OutlineNotesTable, run.OutlineNotesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySectionEvidence queries the section_evidence edge of a Run.
func (c *RunClient) QuerySectionEvidence(_m *Run) *SectionEvidenceQuery {
	query := (&SectionEvidenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(sectionevidence.Table, sectionevidence.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.SectionEvidenceTable, run.SectionEvidenceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDraftSections queries the draft_sections edge of a Run.
func (c *RunClient) QueryDraftSections(_m *Run) *DraftSectionQuery {
	query := (&DraftSectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(draftsection.Table, draftsection.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.DraftSectionsTable, run.DraftSectionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySectionReviews queries the section_reviews edge of a Run.
func (c *RunClient) QuerySectionReviews(_m *Run) *SectionReviewQuery {
	query := (&SectionReviewClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(sectionreview.Table, sectionreview.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.SectionReviewsTable, run.SectionReviewsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRunSources queries the run_sources edge of a Run.
func (c *RunClient) QueryRunSources(_m *Run) *RunSourceQuery {
	query := (&RunSourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(runsource.Table, runsource.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.RunSourcesTable, run.RunSourcesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCheckpoints queries the checkpoints edge of a Run.
func (c *RunClient) QueryCheckpoints(_m *Run) *RunCheckpointQuery {
	query := (&RunCheckpointClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(runcheckpoint.Table, runcheckpoint.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.CheckpointsTable, run.CheckpointsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryArtifacts queries the artifacts edge of a Run.
func (c *RunClient) QueryArtifacts(_m *Run) *ArtifactQuery {
	query := (&ArtifactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(artifact.Table, artifact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.ArtifactsTable, run.ArtifactsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunClient) Hooks() []Hook {
	return c.hooks.Run
}

// Interceptors returns the client interceptors.
func (c *RunClient) Interceptors() []Interceptor {
	return c.inters.Run
}

func (c *RunClient) mutate(ctx context.Context, m *RunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Run mutation op: %q", m.Op())
	}
}

// RunCheckpointClient is a client for the RunCheckpoint schema.
type RunCheckpointClient struct {
	config
}

// NewRunCheckpointClient returns a client for the RunCheckpoint from the given config.
func NewRunCheckpointClient(c config) *RunCheckpointClient {
	return &RunCheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runcheckpoint.Hooks(f(g(h())))`.
func (c *RunCheckpointClient) Use(hooks ...Hook) {
	c.hooks.RunCheckpoint = append(c.hooks.RunCheckpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runcheckpoint.Intercept(f(g(h())))`.
func (c *RunCheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunCheckpoint = append(c.inters.RunCheckpoint, interceptors...)
}

// Create returns a builder for creating a RunCheckpoint entity.
func (c *RunCheckpointClient) Create() *RunCheckpointCreate {
	mutation := newRunCheckpointMutation(c.config, OpCreate)
	return &RunCheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunCheckpoint entities.
func (c *RunCheckpointClient) CreateBulk(builders ...*RunCheckpointCreate) *RunCheckpointCreateBulk {
	return &RunCheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunCheckpointClient) MapCreateBulk(slice any, setFunc func(*RunCheckpointCreate, int)) *RunCheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunCheckpointCreateBulk{err: fmt.Errorf("calling to RunCheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunCheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunCheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunCheckpoint.
func (c *RunCheckpointClient) Update() *RunCheckpointUpdate {
	mutation := newRunCheckpointMutation(c.config, OpUpdate)
	return &RunCheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunCheckpointClient) UpdateOne(_m *RunCheckpoint) *RunCheckpointUpdateOne {
	mutation := newRunCheckpointMutation(c.config, OpUpdateOne, withRunCheckpoint(_m))
	return &RunCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunCheckpointClient) UpdateOneID(id string) *RunCheckpointUpdateOne {
	mutation := newRunCheckpointMutation(c.config, OpUpdateOne, withRunCheckpointID(id))
	return &RunCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunCheckpoint.
func (c *RunCheckpointClient) Delete() *RunCheckpointDelete {
	mutation := newRunCheckpointMutation(c.config, OpDelete)
	return &RunCheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunCheckpointClient) DeleteOne(_m *RunCheckpoint) *RunCheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunCheckpointClient) DeleteOneID(id string) *RunCheckpointDeleteOne {
	builder := c.Delete().Where(runcheckpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunCheckpointDeleteOne{builder}
}

// Query returns a query builder for RunCheckpoint.
func (c *RunCheckpointClient) Query() *RunCheckpointQuery {
	return &RunCheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a RunCheckpoint entity by its id.
func (c *RunCheckpointClient) Get(ctx context.Context, id string) (*RunCheckpoint, error) {
	return c.Query().Where(runcheckpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunCheckpointClient) GetX(ctx context.Context, id string) *RunCheckpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunCheckpoint.
func (c *RunCheckpointClient) QueryRun(_m *RunCheckpoint) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runcheckpoint.Table, runcheckpoint.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runcheckpoint.RunTable, runcheckpoint.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunCheckpointClient) Hooks() []Hook {
	return c.hooks.RunCheckpoint
}

// Interceptors returns the client interceptors.
func (c *RunCheckpointClient) Interceptors() []Interceptor {
	return c.inters.RunCheckpoint
}

func (c *RunCheckpointClient) mutate(ctx context.Context, m *RunCheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunCheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunCheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunCheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunCheckpoint mutation op: %q", m.Op())
	}
}

// RunEventClient is a client for the RunEvent schema.
type RunEventClient struct {
	config
}

// NewRunEventClient returns a client for the RunEvent from the given config.
func NewRunEventClient(c config) *RunEventClient {
	return &RunEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runevent.Hooks(f(g(h())))`.
func (c *RunEventClient) Use(hooks ...Hook) {
	c.hooks.RunEvent = append(c.hooks.RunEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runevent.Intercept(f(g(h())))`.
func (c *RunEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunEvent = append(c.inters.RunEvent, interceptors...)
}

// Create returns a builder for creating a RunEvent entity.
func (c *RunEventClient) Create() *RunEventCreate {
	mutation := newRunEventMutation(c.config, OpCreate)
	return &RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunEvent entities.
func (c *RunEventClient) CreateBulk(builders ...*RunEventCreate) *RunEventCreateBulk {
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunEventClient) MapCreateBulk(slice any, setFunc func(*RunEventCreate, int)) *RunEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunEventCreateBulk{err: fmt.Errorf("calling to RunEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunEvent.
func (c *RunEventClient) Update() *RunEventUpdate {
	mutation := newRunEventMutation(c.config, OpUpdate)
	return &RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunEventClient) UpdateOne(_m *RunEvent) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEvent(_m))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunEventClient) UpdateOneID(id string) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEventID(id))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunEvent.
func (c *RunEventClient) Delete() *RunEventDelete {
	mutation := newRunEventMutation(c.config, OpDelete)
	return &RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunEventClient) DeleteOne(_m *RunEvent) *RunEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunEventClient) DeleteOneID(id string) *RunEventDeleteOne {
	builder := c.Delete().Where(runevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunEventDeleteOne{builder}
}

// Query returns a query builder for RunEvent.
func (c *RunEventClient) Query() *RunEventQuery {
	return &RunEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RunEvent entity by its id.
func (c *RunEventClient) Get(ctx context.Context, id string) (*RunEvent, error) {
	return c.Query().Where(runevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunEventClient) GetX(ctx context.Context, id string) *RunEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunEvent.
func (c *RunEventClient) QueryRun(_m *RunEvent) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runevent.Table, runevent.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runevent.RunTable, runevent.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunEventClient) Hooks() []Hook {
	return c.hooks.RunEvent
}

// Interceptors returns the client interceptors.
func (c *RunEventClient) Interceptors() []Interceptor {
	return c.inters.RunEvent
}

func (c *RunEventClient) mutate(ctx context.Context, m *RunEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunEvent mutation op: %q", m.Op())
	}
}

// RunSectionClient is a client for the RunSection schema.
type RunSectionClient struct {
	config
}

// NewRunSectionClient returns a client for the RunSection from the given config.
func NewRunSectionClient(c config) *RunSectionClient {
	return &RunSectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runsection.Hooks(f(g(h())))`.
func (c *RunSectionClient) Use(hooks ...Hook) {
	c.hooks.RunSection = append(c.hooks.RunSection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runsection.Intercept(f(g(h())))`.
func (c *RunSectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunSection = append(c.inters.RunSection, interceptors...)
}

// Create returns a builder for creating a RunSection entity.
func (c *RunSectionClient) Create() *RunSectionCreate {
	mutation := newRunSectionMutation(c.config, OpCreate)
	return &RunSectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunSection entities.
func (c *RunSectionClient) CreateBulk(builders ...*RunSectionCreate) *RunSectionCreateBulk {
	return &RunSectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunSectionClient) MapCreateBulk(slice any, setFunc func(*RunSectionCreate, int)) *RunSectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunSectionCreateBulk{err: fmt.Errorf("calling to RunSectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunSectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunSectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunSection.
func (c *RunSectionClient) Update() *RunSectionUpdate {
	mutation := newRunSectionMutation(c.config, OpUpdate)
	return &RunSectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunSectionClient) UpdateOne(_m *RunSection) *RunSectionUpdateOne {
	mutation := newRunSectionMutation(c.config, OpUpdateOne, withRunSection(_m))
	return &RunSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunSectionClient) UpdateOneID(id string) *RunSectionUpdateOne {
	mutation := newRunSectionMutation(c.config, OpUpdateOne, withRunSectionID(id))
	return &RunSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunSection.
func (c *RunSectionClient) Delete() *RunSectionDelete {
	mutation := newRunSectionMutation(c.config, OpDelete)
	return &RunSectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunSectionClient) DeleteOne(_m *RunSection) *RunSectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunSectionClient) DeleteOneID(id string) *RunSectionDeleteOne {
	builder := c.Delete().Where(runsection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunSectionDeleteOne{builder}
}

// Query returns a query builder for RunSection.
func (c *RunSectionClient) Query() *RunSectionQuery {
	return &RunSectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunSection},
		inters: c.Interceptors(),
	}
}

// Get returns a RunSection entity by its id.
func (c *RunSectionClient) Get(ctx context.Context, id string) (*RunSection, error) {
	return c.Query().Where(runsection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunSectionClient) GetX(ctx context.Context, id string) *RunSection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunSection.
func (c *RunSectionClient) QueryRun(_m *RunSection) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runsection.Table, runsection.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runsection.RunTable, runsection.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunSectionClient) Hooks() []Hook {
	return c.hooks.RunSection
}

// Interceptors returns the client interceptors.
func (c *RunSectionClient) Interceptors() []Interceptor {
	return c.inters.RunSection
}

func (c *RunSectionClient) mutate(ctx context.Context, m *RunSectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunSectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunSectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunSectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunSection mutation op: %q", m.Op())
	}
}

// RunSourceClient is a client for the RunSource schema.
type RunSourceClient struct {
	config
}

// NewRunSourceClient returns a client for the RunSource from the given config.
func NewRunSourceClient(c config) *RunSourceClient {
	return &RunSourceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runsource.Hooks(f(g(h())))`.
func (c *RunSourceClient) Use(hooks ...Hook) {
	c.hooks.RunSource = append(c.hooks.RunSource, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runsource.Intercept(f(g(h())))`.
func (c *RunSourceClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunSource = append(c.inters.RunSource, interceptors...)
}

// Create returns a builder for creating a RunSource entity.
func (c *RunSourceClient) Create() *RunSourceCreate {
	mutation := newRunSourceMutation(c.config, OpCreate)
	return &RunSourceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunSource entities.
func (c *RunSourceClient) CreateBulk(builders ...*RunSourceCreate) *RunSourceCreateBulk {
	return &RunSourceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunSourceClient) MapCreateBulk(slice any, setFunc func(*RunSourceCreate, int)) *RunSourceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunSourceCreateBulk{err: fmt.Errorf("calling to RunSourceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunSourceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunSourceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunSource.
func (c *RunSourceClient) Update() *RunSourceUpdate {
	mutation := newRunSourceMutation(c.config, OpUpdate)
	return &RunSourceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunSourceClient) UpdateOne(_m *RunSource) *RunSourceUpdateOne {
	mutation := newRunSourceMutation(c.config, OpUpdateOne, withRunSource(_m))
	return &RunSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunSourceClient) UpdateOneID(id string) *RunSourceUpdateOne {
	mutation := newRunSourceMutation(c.config, OpUpdateOne, withRunSourceID(id))
	return &RunSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunSource.
func (c *RunSourceClient) Delete() *RunSourceDelete {
	mutation := newRunSourceMutation(c.config, OpDelete)
	return &RunSourceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunSourceClient) DeleteOne(_m *RunSource) *RunSourceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunSourceClient) DeleteOneID(id string) *RunSourceDeleteOne {
	builder := c.Delete().Where(runsource.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunSourceDeleteOne{builder}
}

// Query returns a query builder for RunSource.
func (c *RunSourceClient) Query() *RunSourceQuery {
	return &RunSourceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunSource},
		inters: c.Interceptors(),
	}
}

// Get returns a RunSource entity by its id.
func (c *RunSourceClient) Get(ctx context.Context, id string) (*RunSource, error) {
	return c.Query().Where(runsource.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunSourceClient) GetX(ctx context.Context, id string) *RunSource {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunSource.
func (c *RunSourceClient) QueryRun(_m *RunSource) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runsource.Table, runsource.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runsource.RunTable, runsource.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunSourceClient) Hooks() []Hook {
	return c.hooks.RunSource
}

// Interceptors returns the client interceptors.
func (c *RunSourceClient) Interceptors() []Interceptor {
	return c.inters.RunSource
}

func (c *RunSourceClient) mutate(ctx context.Context, m *RunSourceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunSourceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunSourceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunSourceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunSource mutation op: %q", m.Op())
	}
}

// SectionEvidenceClient is a client for the SectionEvidence schema.
type SectionEvidenceClient struct {
	config
}

// NewSectionEvidenceClient returns a client for the SectionEvidence from the given config.
func NewSectionEvidenceClient(c config) *SectionEvidenceClient {
	return &SectionEvidenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sectionevidence.Hooks(f(g(h())))`.
func (c *SectionEvidenceClient) Use(hooks ...Hook) {
	c.hooks.SectionEvidence = append(c.hooks.SectionEvidence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sectionevidence.Intercept(f(g(h())))`.
func (c *SectionEvidenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.SectionEvidence = append(c.inters.SectionEvidence, interceptors...)
}

// Create returns a builder for creating a SectionEvidence entity.
func (c *SectionEvidenceClient) Create() *SectionEvidenceCreate {
	mutation := newSectionEvidenceMutation(c.config, OpCreate)
	return &SectionEvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SectionEvidence entities.
func (c *SectionEvidenceClient) CreateBulk(builders ...*SectionEvidenceCreate) *SectionEvidenceCreateBulk {
	return &SectionEvidenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SectionEvidenceClient) MapCreateBulk(slice any, setFunc func(*SectionEvidenceCreate, int)) *SectionEvidenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SectionEvidenceCreateBulk{err: fmt.Errorf("calling to SectionEvidenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SectionEvidenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SectionEvidenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SectionEvidence.
func (c *SectionEvidenceClient) Update() *SectionEvidenceUpdate {
	mutation := newSectionEvidenceMutation(c.config, OpUpdate)
	return &SectionEvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SectionEvidenceClient) UpdateOne(_m *SectionEvidence) *SectionEvidenceUpdateOne {
	mutation := newSectionEvidenceMutation(c.config, OpUpdateOne, withSectionEvidence(_m))
	return &SectionEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SectionEvidenceClient) UpdateOneID(id string) *SectionEvidenceUpdateOne {
	mutation := newSectionEvidenceMutation(c.config, OpUpdateOne, withSectionEvidenceID(id))
	return &SectionEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SectionEvidence.
func (c *SectionEvidenceClient) Delete() *SectionEvidenceDelete {
	mutation := newSectionEvidenceMutation(c.config, OpDelete)
	return &SectionEvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SectionEvidenceClient) DeleteOne(_m *SectionEvidence) *SectionEvidenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SectionEvidenceClient) DeleteOneID(id string) *SectionEvidenceDeleteOne {
	builder := c.Delete().Where(sectionevidence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SectionEvidenceDeleteOne{builder}
}

// Query returns a query builder for SectionEvidence.
func (c *SectionEvidenceClient) Query() *SectionEvidenceQuery {
	return &SectionEvidenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSectionEvidence},
		inters: c.Interceptors(),
	}
}

// Get returns a SectionEvidence entity by its id.
func (c *SectionEvidenceClient) Get(ctx context.Context, id string) (*SectionEvidence, error) {
	return c.Query().Where(sectionevidence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SectionEvidenceClient) GetX(ctx context.Context, id string) *SectionEvidence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a SectionEvidence.
func (c *SectionEvidenceClient) QueryRun(_m *SectionEvidence) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sectionevidence.Table, sectionevidence.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sectionevidence.RunTable, sectionevidence.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SectionEvidenceClient) Hooks() []Hook {
	return c.hooks.SectionEvidence
}

// Interceptors returns the client interceptors.
func (c *SectionEvidenceClient) Interceptors() []Interceptor {
	return c.inters.SectionEvidence
}

func (c *SectionEvidenceClient) mutate(ctx context.Context, m *SectionEvidenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SectionEvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SectionEvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SectionEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SectionEvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SectionEvidence mutation op: %q", m.Op())
	}
}

// SectionReviewClient is a client for the SectionReview schema.
type SectionReviewClient struct {
	config
}

// NewSectionReviewClient returns a client for the SectionReview from the given config.
func NewSectionReviewClient(c config) *SectionReviewClient {
	return &SectionReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sectionreview.Hooks(f(g(h())))`.
func (c *SectionReviewClient) Use(hooks ...Hook) {
	c.hooks.SectionReview = append(c.hooks.SectionReview, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sectionreview.Intercept(f(g(h())))`.
func (c *SectionReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.SectionReview = append(c.inters.SectionReview, interceptors...)
}

// Create returns a builder for creating a SectionReview entity.
func (c *SectionReviewClient) Create() *SectionReviewCreate {
	mutation := newSectionReviewMutation(c.config, OpCreate)
	return &SectionReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SectionReview entities.
func (c *SectionReviewClient) CreateBulk(builders ...*SectionReviewCreate) *SectionReviewCreateBulk {
	return &SectionReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SectionReviewClient) MapCreateBulk(slice any, setFunc func(*SectionReviewCreate, int)) *SectionReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SectionReviewCreateBulk{err: fmt.Errorf("calling to SectionReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SectionReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SectionReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SectionReview.
func (c *SectionReviewClient) Update() *SectionReviewUpdate {
	mutation := newSectionReviewMutation(c.config, OpUpdate)
	return &SectionReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SectionReviewClient) UpdateOne(_m *SectionReview) *SectionReviewUpdateOne {
	mutation := newSectionReviewMutation(c.config, OpUpdateOne, withSectionReview(_m))
	return &SectionReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SectionReviewClient) UpdateOneID(id string) *SectionReviewUpdateOne {
	mutation := newSectionReviewMutation(c.config, OpUpdateOne, withSectionReviewID(id))
	return &SectionReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SectionReview.
func (c *SectionReviewClient) Delete() *SectionReviewDelete {
	mutation := newSectionReviewMutation(c.config, OpDelete)
	return &SectionReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SectionReviewClient) DeleteOne(_m *SectionReview) *SectionReviewDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SectionReviewClient) DeleteOneID(id string) *SectionReviewDeleteOne {
	builder := c.Delete().Where(sectionreview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SectionReviewDeleteOne{builder}
}

// Query returns a query builder for SectionReview.
func (c *SectionReviewClient) Query() *SectionReviewQuery {
	return &SectionReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSectionReview},
		inters: c.Interceptors(),
	}
}

// Get returns a SectionReview entity by its id.
func (c *SectionReviewClient) Get(ctx context.Context, id string) (*SectionReview, error) {
	return c.Query().Where(sectionreview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SectionReviewClient) GetX(ctx context.Context, id string) *SectionReview {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a SectionReview.
func (c *SectionReviewClient) QueryRun(_m *SectionReview) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sectionreview.Table, sectionreview.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sectionreview.RunTable, sectionreview.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SectionReviewClient) Hooks() []Hook {
	return c.hooks.SectionReview
}

// Interceptors returns the client interceptors.
func (c *SectionReviewClient) Interceptors() []Interceptor {
	return c.inters.SectionReview
}

func (c *SectionReviewClient) mutate(ctx context.Context, m *SectionReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SectionReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SectionReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SectionReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SectionReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SectionReview mutation op: %q", m.Op())
	}
}

// SourceClient is a client for the Source schema.
type SourceClient struct {
	config
}

// NewSourceClient returns a client for the Source from the given config.
func NewSourceClient(c config) *SourceClient {
	return &SourceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `source.Hooks(f(g(h())))`.
func (c *SourceClient) Use(hooks ...Hook) {
	c.hooks.Source = append(c.hooks.Source, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `source.Intercept(f(g(h())))`.
func (c *SourceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Source = append(c.inters.Source, interceptors...)
}

// Create returns a builder for creating a Source entity.
func (c *SourceClient) Create() *SourceCreate {
	mutation := newSourceMutation(c.config, OpCreate)
	return &SourceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Source entities.
func (c *SourceClient) CreateBulk(builders ...*SourceCreate) *SourceCreateBulk {
	return &SourceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceClient) MapCreateBulk(slice any, setFunc func(*SourceCreate, int)) *SourceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceCreateBulk{err: fmt.Errorf("calling to SourceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Source.
func (c *SourceClient) Update() *SourceUpdate {
	mutation := newSourceMutation(c.config, OpUpdate)
	return &SourceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceClient) UpdateOne(_m *Source) *SourceUpdateOne {
	mutation := newSourceMutation(c.config, OpUpdateOne, withSource(_m))
	return &SourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceClient) UpdateOneID(id string) *SourceUpdateOne {
	mutation := newSourceMutation(c.config, OpUpdateOne, withSourceID(id))
	return &SourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Source.
func (c *SourceClient) Delete() *SourceDelete {
	mutation := newSourceMutation(c.config, OpDelete)
	return &SourceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceClient) DeleteOne(_m *Source) *SourceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceClient) DeleteOneID(id string) *SourceDeleteOne {
	builder := c.Delete().Where(source.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceDeleteOne{builder}
}

// Query returns a query builder for Source.
func (c *SourceClient) Query() *SourceQuery {
	return &SourceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSource},
		inters: c.Interceptors(),
	}
}

// Get returns a Source entity by its id.
func (c *SourceClient) Get(ctx context.Context, id string) (*Source, error) {
	return c.Query().Where(source.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceClient) GetX(ctx context.Context, id string) *Source {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySnapshots queries the snapshots edge of a Source.
func (c *SourceClient) QuerySnapshots(_m *Source) *SourceSnapshotQuery {
	query := (&SourceSnapshotClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(source.Table, source.FieldID, id),
			sqlgraph.To(sourcesnapshot.Table, sourcesnapshot.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, source.SnapshotsTable, source.SnapshotsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySnippets queries the snippets edge of a Source.
func (c *SourceClient) QuerySnippets(_m *Source) *SourceSnippetQuery {
	query := (&SourceSnippetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(source.Table, source.FieldID, id),
			sqlgraph.To(sourcesnippet.Table, sourcesnippet.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, source.SnippetsTable, source.SnippetsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SourceClient) Hooks() []Hook {
	return c.hooks.Source
}

// Interceptors returns the client interceptors.
func (c *SourceClient) Interceptors() []Interceptor {
	return c.inters.Source
}

func (c *SourceClient) mutate(ctx context.Context, m *SourceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Source mutation op: %q", m.Op())
	}
}

// SourceEmbeddingClient is a client for the SourceEmbedding schema.
type SourceEmbeddingClient struct {
	config
}

// NewSourceEmbeddingClient returns a client for the SourceEmbedding from the given config.
func NewSourceEmbeddingClient(c config) *SourceEmbeddingClient {
	return &SourceEmbeddingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sourceembedding.Hooks(f(g(h())))`.
func (c *SourceEmbeddingClient) Use(hooks ...Hook) {
	c.hooks.SourceEmbedding = append(c.hooks.SourceEmbedding, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sourceembedding.Intercept(f(g(h())))`.
func (c *SourceEmbeddingClient) Intercept(interceptors ...Interceptor) {
	c.inters.SourceEmbedding = append(c.inters.SourceEmbedding, interceptors...)
}

// Create returns a builder for creating a SourceEmbedding entity.
func (c *SourceEmbeddingClient) Create() *SourceEmbeddingCreate {
	mutation := newSourceEmbeddingMutation(c.config, OpCreate)
	return &SourceEmbeddingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SourceEmbedding entities.
func (c *SourceEmbeddingClient) CreateBulk(builders ...*SourceEmbeddingCreate) *SourceEmbeddingCreateBulk {
	return &SourceEmbeddingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceEmbeddingClient) MapCreateBulk(slice any, setFunc func(*SourceEmbeddingCreate, int)) *SourceEmbeddingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceEmbeddingCreateBulk{err: fmt.Errorf("calling to SourceEmbeddingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceEmbeddingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceEmbeddingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SourceEmbedding.
func (c *SourceEmbeddingClient) Update() *SourceEmbeddingUpdate {
	mutation := newSourceEmbeddingMutation(c.config, OpUpdate)
	return &SourceEmbeddingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceEmbeddingClient) UpdateOne(_m *SourceEmbedding) *SourceEmbeddingUpdateOne {
	mutation := newSourceEmbeddingMutation(c.config, OpUpdateOne, withSourceEmbedding(_m))
	return &SourceEmbeddingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceEmbeddingClient) UpdateOneID(id string) *SourceEmbeddingUpdateOne {
	mutation := newSourceEmbeddingMutation(c.config, OpUpdateOne, withSourceEmbeddingID(id))
	return &SourceEmbeddingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SourceEmbedding.
func (c *SourceEmbeddingClient) Delete() *SourceEmbeddingDelete {
	mutation := newSourceEmbeddingMutation(c.config, OpDelete)
	return &SourceEmbeddingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceEmbeddingClient) DeleteOne(_m *SourceEmbedding) *SourceEmbeddingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceEmbeddingClient) DeleteOneID(id string) *SourceEmbeddingDeleteOne {
	builder := c.Delete().Where(sourceembedding.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceEmbeddingDeleteOne{builder}
}

// Query returns a query builder for SourceEmbedding.
func (c *SourceEmbeddingClient) Query() *SourceEmbeddingQuery {
	return &SourceEmbeddingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSourceEmbedding},
		inters: c.Interceptors(),
	}
}

// Get returns a SourceEmbedding entity by its id.
func (c *SourceEmbeddingClient) Get(ctx context.Context, id string) (*SourceEmbedding, error) {
	return c.Query().Where(sourceembedding.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceEmbeddingClient) GetX(ctx context.Context, id string) *SourceEmbedding {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SourceEmbeddingClient) Hooks() []Hook {
	return c.hooks.SourceEmbedding
}

// Interceptors returns the client interceptors.
func (c *SourceEmbeddingClient) Interceptors() []Interceptor {
	return c.inters.SourceEmbedding
}

func (c *SourceEmbeddingClient) mutate(ctx context.Context, m *SourceEmbeddingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceEmbeddingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceEmbeddingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceEmbeddingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceEmbeddingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SourceEmbedding mutation op: %q", m.Op())
	}
}

// SourceSnapshotClient is a client for the SourceSnapshot schema.
type SourceSnapshotClient struct {
	config
}

// NewSourceSnapshotClient returns a client for the SourceSnapshot from the given config.
func NewSourceSnapshotClient(c config) *SourceSnapshotClient {
	return &SourceSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sourcesnapshot.Hooks(f(g(h())))`.
func (c *SourceSnapshotClient) Use(hooks ...Hook) {
	c.hooks.SourceSnapshot = append(c.hooks.SourceSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sourcesnapshot.Intercept(f(g(h())))`.
func (c *SourceSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.SourceSnapshot = append(c.inters.SourceSnapshot, interceptors...)
}

// Create returns a builder for creating a SourceSnapshot entity.
func (c *SourceSnapshotClient) Create() *SourceSnapshotCreate {
	mutation := newSourceSnapshotMutation(c.config, OpCreate)
	return &SourceSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SourceSnapshot entities.
func (c *SourceSnapshotClient) CreateBulk(builders ...*SourceSnapshotCreate) *SourceSnapshotCreateBulk {
	return &SourceSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceSnapshotClient) MapCreateBulk(slice any, setFunc func(*SourceSnapshotCreate, int)) *SourceSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceSnapshotCreateBulk{err: fmt.Errorf("calling to SourceSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SourceSnapshot.
func (c *SourceSnapshotClient) Update() *SourceSnapshotUpdate {
	mutation := newSourceSnapshotMutation(c.config, OpUpdate)
	return &SourceSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceSnapshotClient) UpdateOne(_m *SourceSnapshot) *SourceSnapshotUpdateOne {
	mutation := newSourceSnapshotMutation(c.config, OpUpdateOne, withSourceSnapshot(_m))
	return &SourceSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceSnapshotClient) UpdateOneID(id string) *SourceSnapshotUpdateOne {
	mutation := newSourceSnapshotMutation(c.config, OpUpdateOne, withSourceSnapshotID(id))
	return &SourceSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SourceSnapshot.
func (c *SourceSnapshotClient) Delete() *SourceSnapshotDelete {
	mutation := newSourceSnapshotMutation(c.config, OpDelete)
	return &SourceSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceSnapshotClient) DeleteOne(_m *SourceSnapshot) *SourceSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceSnapshotClient) DeleteOneID(id string) *SourceSnapshotDeleteOne {
	builder := c.Delete().Where(sourcesnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceSnapshotDeleteOne{builder}
}

// Query returns a query builder for SourceSnapshot.
func (c *SourceSnapshotClient) Query() *SourceSnapshotQuery {
	return &SourceSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSourceSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a SourceSnapshot entity by its id.
func (c *SourceSnapshotClient) Get(ctx context.Context, id string) (*SourceSnapshot, error) {
	return c.Query().Where(sourcesnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceSnapshotClient) GetX(ctx context.Context, id string) *SourceSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySource queries the source edge of a SourceSnapshot.
func (c *SourceSnapshotClient) QuerySource(_m *SourceSnapshot) *SourceQuery {
	query := (&SourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sourcesnapshot.Table, sourcesnapshot.FieldID, id),
			sqlgraph.To(source.Table, source.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sourcesnapshot.SourceTable, sourcesnapshot.SourceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SourceSnapshotClient) Hooks() []Hook {
	return c.hooks.SourceSnapshot
}

// Interceptors returns the client interceptors.
func (c *SourceSnapshotClient) Interceptors() []Interceptor {
	return c.inters.SourceSnapshot
}

func (c *SourceSnapshotClient) mutate(ctx context.Context, m *SourceSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SourceSnapshot mutation op: %q", m.Op())
	}
}

// SourceSnippetClient is a client for the SourceSnippet schema.
type SourceSnippetClient struct {
	config
}

// NewSourceSnippetClient returns a client for the SourceSnippet from the given config.
func NewSourceSnippetClient(c config) *SourceSnippetClient {
	return &SourceSnippetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sourcesnippet.Hooks(f(g(h())))`.
func (c *SourceSnippetClient) Use(hooks ...Hook) {
	c.hooks.SourceSnippet = append(c.hooks.SourceSnippet, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sourcesnippet.Intercept(f(g(h())))`.
func (c *SourceSnippetClient) Intercept(interceptors ...Interceptor) {
	c.inters.SourceSnippet = append(c.inters.SourceSnippet, interceptors...)
}

// Create returns a builder for creating a SourceSnippet entity.
func (c *SourceSnippetClient) Create() *SourceSnippetCreate {
	mutation := newSourceSnippetMutation(c.config, OpCreate)
	return &SourceSnippetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SourceSnippet entities.
func (c *SourceSnippetClient) CreateBulk(builders ...*SourceSnippetCreate) *SourceSnippetCreateBulk {
	return &SourceSnippetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceSnippetClient) MapCreateBulk(slice any, setFunc func(*SourceSnippetCreate, int)) *SourceSnippetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceSnippetCreateBulk{err: fmt.Errorf("calling to SourceSnippetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceSnippetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceSnippetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SourceSnippet.
func (c *SourceSnippetClient) Update() *SourceSnippetUpdate {
	mutation := newSourceSnippetMutation(c.config, OpUpdate)
	return &SourceSnippetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceSnippetClient) UpdateOne(_m *SourceSnippet) *SourceSnippetUpdateOne {
	mutation := newSourceSnippetMutation(c.config, OpUpdateOne, withSourceSnippet(_m))
	return &SourceSnippetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceSnippetClient) UpdateOneID(id string) *SourceSnippetUpdateOne {
	mutation := newSourceSnippetMutation(c.config, OpUpdateOne, withSourceSnippetID(id))
	return &SourceSnippetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SourceSnippet.
func (c *SourceSnippetClient) Delete() *SourceSnippetDelete {
	mutation := newSourceSnippetMutation(c.config, OpDelete)
	return &SourceSnippetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceSnippetClient) DeleteOne(_m *SourceSnippet) *SourceSnippetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceSnippetClient) DeleteOneID(id string) *SourceSnippetDeleteOne {
	builder := c.Delete().Where(sourcesnippet.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceSnippetDeleteOne{builder}
}

// Query returns a query builder for SourceSnippet.
func (c *SourceSnippetClient) Query() *SourceSnippetQuery {
	return &SourceSnippetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSourceSnippet},
		inters: c.Interceptors(),
	}
}

// Get returns a SourceSnippet entity by its id.
func (c *SourceSnippetClient) Get(ctx context.Context, id string) (*SourceSnippet, error) {
	return c.Query().Where(sourcesnippet.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceSnippetClient) GetX(ctx context.Context, id string) *SourceSnippet {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySource queries the source edge of a SourceSnippet.
func (c *SourceSnippetClient) QuerySource(_m *SourceSnippet) *SourceQuery {
	query := (&SourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sourcesnippet.Table, sourcesnippet.FieldID, id),
			sqlgraph.To(source.Table, source.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sourcesnippet.SourceTable, sourcesnippet.SourceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SourceSnippetClient) Hooks() []Hook {
	return c.hooks.SourceSnippet
}

// Interceptors returns the client interceptors.
func (c *SourceSnippetClient) Interceptors() []Interceptor {
	return c.inters.SourceSnippet
}

func (c *SourceSnippetClient) mutate(ctx context.Context, m *SourceSnippetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceSnippetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceSnippetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceSnippetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceSnippetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SourceSnippet mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Artifact, DraftSection, Job, OutlineNote, Project, Run, RunCheckpoint, RunEvent,
		RunSection, RunSource, SectionEvidence, SectionReview, Source, SourceEmbedding,
		SourceSnapshot, SourceSnippet []ent.Hook
	}
	inters struct {
		Artifact, DraftSection, Job, OutlineNote, Project, Run, RunCheckpoint, RunEvent,
		RunSection, RunSource, SectionEvidence, SectionReview, Source, SourceEmbedding,
		SourceSnapshot, SourceSnippet []ent.Interceptor
	}
)
