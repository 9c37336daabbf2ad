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
)

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *RunCreate) SetTenantID(v string) *RunCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *RunCreate) SetProjectID(v string) *RunCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunCreate) SetStatus(v run.Status) *RunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunCreate) SetNillableStatus(v *run.Status) *RunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentStage sets the "current_stage" field.
func (_c *RunCreate) SetCurrentStage(v string) *RunCreate {
	_c.mutation.SetCurrentStage(v)
	return _c
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_c *RunCreate) SetNillableCurrentStage(v *string) *RunCreate {
	if v != nil {
		_c.SetCurrentStage(*v)
	}
	return _c
}

// SetQuestion sets the "question" field.
func (_c *RunCreate) SetQuestion(v string) *RunCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetOutputType sets the "output_type" field.
func (_c *RunCreate) SetOutputType(v string) *RunCreate {
	_c.mutation.SetOutputType(v)
	return _c
}

// SetNillableOutputType sets the "output_type" field if the given value is not nil.
func (_c *RunCreate) SetNillableOutputType(v *string) *RunCreate {
	if v != nil {
		_c.SetOutputType(*v)
	}
	return _c
}

// SetLlmProvider sets the "llm_provider" field.
func (_c *RunCreate) SetLlmProvider(v string) *RunCreate {
	_c.mutation.SetLlmProvider(v)
	return _c
}

// SetNillableLlmProvider sets the "llm_provider" field if the given value is not nil.
func (_c *RunCreate) SetNillableLlmProvider(v *string) *RunCreate {
	if v != nil {
		_c.SetLlmProvider(*v)
	}
	return _c
}

// SetLlmModel sets the "llm_model" field.
func (_c *RunCreate) SetLlmModel(v string) *RunCreate {
	_c.mutation.SetLlmModel(v)
	return _c
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_c *RunCreate) SetNillableLlmModel(v *string) *RunCreate {
	if v != nil {
		_c.SetLlmModel(*v)
	}
	return _c
}

// SetBudgets sets the "budgets" field.
func (_c *RunCreate) SetBudgets(v map[string]interface{}) *RunCreate {
	_c.mutation.SetBudgets(v)
	return _c
}

// SetUsage sets the "usage" field.
func (_c *RunCreate) SetUsage(v map[string]interface{}) *RunCreate {
	_c.mutation.SetUsage(v)
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *RunCreate) SetFailureReason(v string) *RunCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *RunCreate) SetNillableFailureReason(v *string) *RunCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *RunCreate) SetErrorCode(v string) *RunCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *RunCreate) SetNillableErrorCode(v *string) *RunCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetClientRequestID sets the "client_request_id" field.
func (_c *RunCreate) SetClientRequestID(v string) *RunCreate {
	_c.mutation.SetClientRequestID(v)
	return _c
}

// SetNillableClientRequestID sets the "client_request_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableClientRequestID(v *string) *RunCreate {
	if v != nil {
		_c.SetClientRequestID(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *RunCreate) SetRetryCount(v int) *RunCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *RunCreate) SetNillableRetryCount(v *int) *RunCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunCreate) SetStartedAt(v time.Time) *RunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableStartedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *RunCreate) SetFinishedAt(v time.Time) *RunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableFinishedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetCancelRequestedAt sets the "cancel_requested_at" field.
func (_c *RunCreate) SetCancelRequestedAt(v time.Time) *RunCreate {
	_c.mutation.SetCancelRequestedAt(v)
	return _c
}

// SetNillableCancelRequestedAt sets the "cancel_requested_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCancelRequestedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCancelRequestedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunCreate) SetCreatedAt(v time.Time) *RunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RunCreate) SetUpdatedAt(v time.Time) *RunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableUpdatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v string) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *RunCreate) SetProject(v *Project) *RunCreate {
	return _c.SetProjectID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_c *RunCreate) AddJobIDs(ids ...string) *RunCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_c *RunCreate) AddJobs(v ...*Job) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_c *RunCreate) AddEventIDs(ids ...string) *RunCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_c *RunCreate) AddEvents(v ...*RunEvent) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddSectionIDs adds the "sections" edge to the RunSection entity by IDs.
func (_c *RunCreate) AddSectionIDs(ids ...string) *RunCreate {
	_c.mutation.AddSectionIDs(ids...)
	return _c
}

// AddSections adds the "sections" edges to the RunSection entity.
func (_c *RunCreate) AddSections(v ...*RunSection) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSectionIDs(ids...)
}

// AddOutlineNoteIDs adds the "outline_notes" edge to the OutlineNote entity by IDs.
func (_c *RunCreate) AddOutlineNoteIDs(ids ...string) *RunCreate {
	_c.mutation.AddOutlineNoteIDs(ids...)
	return _c
}

// AddOutlineNotes adds the "outline_notes" edges to the OutlineNote entity.
func (_c *RunCreate) AddOutlineNotes(v ...*OutlineNote) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutlineNoteIDs(ids...)
}

// AddSectionEvidenceIDs adds the "section_evidence" edge to the SectionEvidence entity by IDs.
func (_c *RunCreate) AddSectionEvidenceIDs(ids ...string) *RunCreate {
	_c.mutation.AddSectionEvidenceIDs(ids...)
	return _c
}

// AddSectionEvidence adds the "section_evidence" edges to the SectionEvidence entity.
func (_c *RunCreate) AddSectionEvidence(v ...*SectionEvidence) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSectionEvidenceIDs(ids...)
}

// AddDraftSectionIDs adds the "draft_sections" edge to the DraftSection entity by IDs.
func (_c *RunCreate) AddDraftSectionIDs(ids ...string) *RunCreate {
	_c.mutation.AddDraftSectionIDs(ids...)
	return _c
}

// AddDraftSections adds the "draft_sections" edges to the DraftSection entity.
func (_c *RunCreate) AddDraftSections(v ...*DraftSection) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDraftSectionIDs(ids...)
}

// AddSectionReviewIDs adds the "section_reviews" edge to the SectionReview entity by IDs.
func (_c *RunCreate) AddSectionReviewIDs(ids ...string) *RunCreate {
	_c.mutation.AddSectionReviewIDs(ids...)
	return _c
}

// AddSectionReviews adds the "section_reviews" edges to the SectionReview entity.
func (_c *RunCreate) AddSectionReviews(v ...*SectionReview) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSectionReviewIDs(ids...)
}

// AddRunSourceIDs adds the "run_sources" edge to the RunSource entity by IDs.
func (_c *RunCreate) AddRunSourceIDs(ids ...string) *RunCreate {
	_c.mutation.AddRunSourceIDs(ids...)
	return _c
}

// AddRunSources adds the "run_sources" edges to the RunSource entity.
func (_c *RunCreate) AddRunSources(v ...*RunSource) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunSourceIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the RunCheckpoint entity by IDs.
func (_c *RunCreate) AddCheckpointIDs(ids ...string) *RunCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the RunCheckpoint entity.
func (_c *RunCreate) AddCheckpoints(v ...*RunCheckpoint) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_c *RunCreate) AddArtifactIDs(ids ...string) *RunCreate {
	_c.mutation.AddArtifactIDs(ids...)
	return _c
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_c *RunCreate) AddArtifacts(v ...*Artifact) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddArtifactIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := run.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.OutputType(); !ok {
		v := run.DefaultOutputType
		_c.mutation.SetOutputType(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := run.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := run.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := run.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Run.tenant_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Run.project_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Run.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Run.question"`)}
	}
	if _, ok := _c.mutation.OutputType(); !ok {
		return &ValidationError{Name: "output_type", err: errors.New(`ent: missing required field "Run.output_type"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Run.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Run.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Run.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Run.project"`)}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
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
			return nil, fmt.Errorf("unexpected Run.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(run.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentStage(); ok {
		_spec.SetField(run.FieldCurrentStage, field.TypeString, value)
		_node.CurrentStage = &value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(run.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.OutputType(); ok {
		_spec.SetField(run.FieldOutputType, field.TypeString, value)
		_node.OutputType = value
	}
	if value, ok := _c.mutation.LlmProvider(); ok {
		_spec.SetField(run.FieldLlmProvider, field.TypeString, value)
		_node.LlmProvider = &value
	}
	if value, ok := _c.mutation.LlmModel(); ok {
		_spec.SetField(run.FieldLlmModel, field.TypeString, value)
		_node.LlmModel = &value
	}
	if value, ok := _c.mutation.Budgets(); ok {
		_spec.SetField(run.FieldBudgets, field.TypeJSON, value)
		_node.Budgets = value
	}
	if value, ok := _c.mutation.Usage(); ok {
		_spec.SetField(run.FieldUsage, field.TypeJSON, value)
		_node.Usage = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(run.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(run.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.ClientRequestID(); ok {
		_spec.SetField(run.FieldClientRequestID, field.TypeString, value)
		_node.ClientRequestID = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(run.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(run.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.CancelRequestedAt(); ok {
		_spec.SetField(run.FieldCancelRequestedAt, field.TypeTime, value)
		_node.CancelRequestedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(run.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   run.ProjectTable,
			Columns: []string{run.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.JobsTable,
			Columns: []string{run.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.EventsTable,
			Columns: []string{run.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.SectionsTable,
			Columns: []string{run.SectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runsection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OutlineNotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.OutlineNotesTable,
			Columns: []string{run.OutlineNotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outlinenote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SectionEvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.SectionEvidenceTable,
			Columns: []string{run.SectionEvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sectionevidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DraftSectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.DraftSectionsTable,
			Columns: []string{run.DraftSectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(draftsection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SectionReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.SectionReviewsTable,
			Columns: []string{run.SectionReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sectionreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RunSourcesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RunSourcesTable,
			Columns: []string{run.RunSourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runsource.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.CheckpointsTable,
			Columns: []string{run.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runcheckpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ArtifactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ArtifactsTable,
			Columns: []string{run.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
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
//	client.Run.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunCreate) OnConflict(opts ...sql.ConflictOption) *RunUpsertOne {
	_c.conflict = opts
	return &RunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunCreate) OnConflictColumns(columns ...string) *RunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunUpsertOne{
		create: _c,
	}
}

type (
	// RunUpsertOne is the builder for "upsert"-ing
	//  one Run node.
	RunUpsertOne struct {
		create *RunCreate
	}

	// RunUpsert is the "OnConflict" setter.
	RunUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *RunUpsert) SetStatus(v run.Status) *RunUpsert {
	u.Set(run.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunUpsert) UpdateStatus() *RunUpsert {
	u.SetExcluded(run.FieldStatus)
	return u
}

// SetCurrentStage sets the "current_stage" field.
func (u *RunUpsert) SetCurrentStage(v string) *RunUpsert {
	u.Set(run.FieldCurrentStage, v)
	return u
}

// UpdateCurrentStage sets the "current_stage" field to the value that was provided on create.
func (u *RunUpsert) UpdateCurrentStage() *RunUpsert {
	u.SetExcluded(run.FieldCurrentStage)
	return u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (u *RunUpsert) ClearCurrentStage() *RunUpsert {
	u.SetNull(run.FieldCurrentStage)
	return u
}

// SetQuestion sets the "question" field.
func (u *RunUpsert) SetQuestion(v string) *RunUpsert {
	u.Set(run.FieldQuestion, v)
	return u
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *RunUpsert) UpdateQuestion() *RunUpsert {
	u.SetExcluded(run.FieldQuestion)
	return u
}

// SetOutputType sets the "output_type" field.
func (u *RunUpsert) SetOutputType(v string) *RunUpsert {
	u.Set(run.FieldOutputType, v)
	return u
}

// UpdateOutputType sets the "output_type" field to the value that was provided on create.
func (u *RunUpsert) UpdateOutputType() *RunUpsert {
	u.SetExcluded(run.FieldOutputType)
	return u
}

// SetLlmProvider sets the "llm_provider" field.
func (u *RunUpsert) SetLlmProvider(v string) *RunUpsert {
	u.Set(run.FieldLlmProvider, v)
	return u
}

// UpdateLlmProvider sets the "llm_provider" field to the value that was provided on create.
func (u *RunUpsert) UpdateLlmProvider() *RunUpsert {
	u.SetExcluded(run.FieldLlmProvider)
	return u
}

// ClearLlmProvider clears the value of the "llm_provider" field.
func (u *RunUpsert) ClearLlmProvider() *RunUpsert {
	u.SetNull(run.FieldLlmProvider)
	return u
}

// SetLlmModel sets the "llm_model" field.
func (u *RunUpsert) SetLlmModel(v string) *RunUpsert {
	u.Set(run.FieldLlmModel, v)
	return u
}

// UpdateLlmModel sets the "llm_model" field to the value that was provided on create.
func (u *RunUpsert) UpdateLlmModel() *RunUpsert {
	u.SetExcluded(run.FieldLlmModel)
	return u
}

// ClearLlmModel clears the value of the "llm_model" field.
func (u *RunUpsert) ClearLlmModel() *RunUpsert {
	u.SetNull(run.FieldLlmModel)
	return u
}

// SetBudgets sets the "budgets" field.
func (u *RunUpsert) SetBudgets(v map[string]interface{}) *RunUpsert {
	u.Set(run.FieldBudgets, v)
	return u
}

// UpdateBudgets sets the "budgets" field to the value that was provided on create.
func (u *RunUpsert) UpdateBudgets() *RunUpsert {
	u.SetExcluded(run.FieldBudgets)
	return u
}

// ClearBudgets clears the value of the "budgets" field.
func (u *RunUpsert) ClearBudgets() *RunUpsert {
	u.SetNull(run.FieldBudgets)
	return u
}

// SetUsage sets the "usage" field.
func (u *RunUpsert) SetUsage(v map[string]interface{}) *RunUpsert {
	u.Set(run.FieldUsage, v)
	return u
}

// UpdateUsage sets the "usage" field to the value that was provided on create.
func (u *RunUpsert) UpdateUsage() *RunUpsert {
	u.SetExcluded(run.FieldUsage)
	return u
}

// ClearUsage clears the value of the "usage" field.
func (u *RunUpsert) ClearUsage() *RunUpsert {
	u.SetNull(run.FieldUsage)
	return u
}

// SetFailureReason sets the "failure_reason" field.
func (u *RunUpsert) SetFailureReason(v string) *RunUpsert {
	u.Set(run.FieldFailureReason, v)
	return u
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *RunUpsert) UpdateFailureReason() *RunUpsert {
	u.SetExcluded(run.FieldFailureReason)
	return u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *RunUpsert) ClearFailureReason() *RunUpsert {
	u.SetNull(run.FieldFailureReason)
	return u
}

// SetErrorCode sets the "error_code" field.
func (u *RunUpsert) SetErrorCode(v string) *RunUpsert {
	u.Set(run.FieldErrorCode, v)
	return u
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *RunUpsert) UpdateErrorCode() *RunUpsert {
	u.SetExcluded(run.FieldErrorCode)
	return u
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *RunUpsert) ClearErrorCode() *RunUpsert {
	u.SetNull(run.FieldErrorCode)
	return u
}

// SetClientRequestID sets the "client_request_id" field.
func (u *RunUpsert) SetClientRequestID(v string) *RunUpsert {
	u.Set(run.FieldClientRequestID, v)
	return u
}

// UpdateClientRequestID sets the "client_request_id" field to the value that was provided on create.
func (u *RunUpsert) UpdateClientRequestID() *RunUpsert {
	u.SetExcluded(run.FieldClientRequestID)
	return u
}

// ClearClientRequestID clears the value of the "client_request_id" field.
func (u *RunUpsert) ClearClientRequestID() *RunUpsert {
	u.SetNull(run.FieldClientRequestID)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *RunUpsert) SetRetryCount(v int) *RunUpsert {
	u.Set(run.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *RunUpsert) UpdateRetryCount() *RunUpsert {
	u.SetExcluded(run.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *RunUpsert) AddRetryCount(v int) *RunUpsert {
	u.Add(run.FieldRetryCount, v)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsert) SetStartedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateStartedAt() *RunUpsert {
	u.SetExcluded(run.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsert) ClearStartedAt() *RunUpsert {
	u.SetNull(run.FieldStartedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *RunUpsert) SetFinishedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateFinishedAt() *RunUpsert {
	u.SetExcluded(run.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *RunUpsert) ClearFinishedAt() *RunUpsert {
	u.SetNull(run.FieldFinishedAt)
	return u
}

// SetCancelRequestedAt sets the "cancel_requested_at" field.
func (u *RunUpsert) SetCancelRequestedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldCancelRequestedAt, v)
	return u
}

// UpdateCancelRequestedAt sets the "cancel_requested_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateCancelRequestedAt() *RunUpsert {
	u.SetExcluded(run.FieldCancelRequestedAt)
	return u
}

// ClearCancelRequestedAt clears the value of the "cancel_requested_at" field.
func (u *RunUpsert) ClearCancelRequestedAt() *RunUpsert {
	u.SetNull(run.FieldCancelRequestedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RunUpsert) SetUpdatedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateUpdatedAt() *RunUpsert {
	u.SetExcluded(run.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(run.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunUpsertOne) UpdateNewValues() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(run.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(run.FieldTenantID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(run.FieldProjectID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(run.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunUpsertOne) Ignore() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunUpsertOne) DoNothing() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunCreate.OnConflict
// documentation for more info.
func (u *RunUpsertOne) Update(set func(*RunUpsert)) *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *RunUpsertOne) SetStatus(v run.Status) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateStatus() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentStage sets the "current_stage" field.
func (u *RunUpsertOne) SetCurrentStage(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetCurrentStage(v)
	})
}

// UpdateCurrentStage sets the "current_stage" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateCurrentStage() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCurrentStage()
	})
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (u *RunUpsertOne) ClearCurrentStage() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearCurrentStage()
	})
}

// SetQuestion sets the "question" field.
func (u *RunUpsertOne) SetQuestion(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateQuestion() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateQuestion()
	})
}

// SetOutputType sets the "output_type" field.
func (u *RunUpsertOne) SetOutputType(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetOutputType(v)
	})
}

// UpdateOutputType sets the "output_type" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateOutputType() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateOutputType()
	})
}

// SetLlmProvider sets the "llm_provider" field.
func (u *RunUpsertOne) SetLlmProvider(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetLlmProvider(v)
	})
}

// UpdateLlmProvider sets the "llm_provider" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateLlmProvider() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateLlmProvider()
	})
}

// ClearLlmProvider clears the value of the "llm_provider" field.
func (u *RunUpsertOne) ClearLlmProvider() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearLlmProvider()
	})
}

// SetLlmModel sets the "llm_model" field.
func (u *RunUpsertOne) SetLlmModel(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetLlmModel(v)
	})
}

// UpdateLlmModel sets the "llm_model" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateLlmModel() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateLlmModel()
	})
}

// ClearLlmModel clears the value of the "llm_model" field.
func (u *RunUpsertOne) ClearLlmModel() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearLlmModel()
	})
}

// SetBudgets sets the "budgets" field.
func (u *RunUpsertOne) SetBudgets(v map[string]interface{}) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetBudgets(v)
	})
}

// UpdateBudgets sets the "budgets" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateBudgets() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateBudgets()
	})
}

// ClearBudgets clears the value of the "budgets" field.
func (u *RunUpsertOne) ClearBudgets() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearBudgets()
	})
}

// SetUsage sets the "usage" field.
func (u *RunUpsertOne) SetUsage(v map[string]interface{}) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetUsage(v)
	})
}

// UpdateUsage sets the "usage" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateUsage() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateUsage()
	})
}

// ClearUsage clears the value of the "usage" field.
func (u *RunUpsertOne) ClearUsage() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearUsage()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *RunUpsertOne) SetFailureReason(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateFailureReason() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *RunUpsertOne) ClearFailureReason() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearFailureReason()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *RunUpsertOne) SetErrorCode(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateErrorCode() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *RunUpsertOne) ClearErrorCode() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearErrorCode()
	})
}

// SetClientRequestID sets the "client_request_id" field.
func (u *RunUpsertOne) SetClientRequestID(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetClientRequestID(v)
	})
}

// UpdateClientRequestID sets the "client_request_id" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateClientRequestID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateClientRequestID()
	})
}

// ClearClientRequestID clears the value of the "client_request_id" field.
func (u *RunUpsertOne) ClearClientRequestID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearClientRequestID()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *RunUpsertOne) SetRetryCount(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *RunUpsertOne) AddRetryCount(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateRetryCount() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateRetryCount()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsertOne) SetStartedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateStartedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsertOne) ClearStartedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *RunUpsertOne) SetFinishedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateFinishedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *RunUpsertOne) ClearFinishedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearFinishedAt()
	})
}

// SetCancelRequestedAt sets the "cancel_requested_at" field.
func (u *RunUpsertOne) SetCancelRequestedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetCancelRequestedAt(v)
	})
}

// UpdateCancelRequestedAt sets the "cancel_requested_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateCancelRequestedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCancelRequestedAt()
	})
}

// ClearCancelRequestedAt clears the value of the "cancel_requested_at" field.
func (u *RunUpsertOne) ClearCancelRequestedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearCancelRequestedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RunUpsertOne) SetUpdatedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateUpdatedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RunUpsertOne.ID is not supported by MySQL driver. Use RunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
	conflict []sql.ConflictOption
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
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
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Run.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunUpsertBulk {
	_c.conflict = opts
	return &RunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunCreateBulk) OnConflictColumns(columns ...string) *RunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunUpsertBulk{
		create: _c,
	}
}

// RunUpsertBulk is the builder for "upsert"-ing
// a bulk of Run nodes.
type RunUpsertBulk struct {
	create *RunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(run.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunUpsertBulk) UpdateNewValues() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(run.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(run.FieldTenantID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(run.FieldProjectID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(run.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunUpsertBulk) Ignore() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunUpsertBulk) DoNothing() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunCreateBulk.OnConflict
// documentation for more info.
func (u *RunUpsertBulk) Update(set func(*RunUpsert)) *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *RunUpsertBulk) SetStatus(v run.Status) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateStatus() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentStage sets the "current_stage" field.
func (u *RunUpsertBulk) SetCurrentStage(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetCurrentStage(v)
	})
}

// UpdateCurrentStage sets the "current_stage" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateCurrentStage() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCurrentStage()
	})
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (u *RunUpsertBulk) ClearCurrentStage() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearCurrentStage()
	})
}

// SetQuestion sets the "question" field.
func (u *RunUpsertBulk) SetQuestion(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateQuestion() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateQuestion()
	})
}

// SetOutputType sets the "output_type" field.
func (u *RunUpsertBulk) SetOutputType(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetOutputType(v)
	})
}

// UpdateOutputType sets the "output_type" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateOutputType() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateOutputType()
	})
}

// SetLlmProvider sets the "llm_provider" field.
func (u *RunUpsertBulk) SetLlmProvider(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetLlmProvider(v)
	})
}

// UpdateLlmProvider sets the "llm_provider" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateLlmProvider() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateLlmProvider()
	})
}

// ClearLlmProvider clears the value of the "llm_provider" field.
func (u *RunUpsertBulk) ClearLlmProvider() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearLlmProvider()
	})
}

// SetLlmModel sets the "llm_model" field.
func (u *RunUpsertBulk) SetLlmModel(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetLlmModel(v)
	})
}

// UpdateLlmModel sets the "llm_model" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateLlmModel() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateLlmModel()
	})
}

// ClearLlmModel clears the value of the "llm_model" field.
func (u *RunUpsertBulk) ClearLlmModel() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearLlmModel()
	})
}

// SetBudgets sets the "budgets" field.
func (u *RunUpsertBulk) SetBudgets(v map[string]interface{}) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetBudgets(v)
	})
}

// UpdateBudgets sets the "budgets" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateBudgets() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateBudgets()
	})
}

// ClearBudgets clears the value of the "budgets" field.
func (u *RunUpsertBulk) ClearBudgets() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearBudgets()
	})
}

// SetUsage sets the "usage" field.
func (u *RunUpsertBulk) SetUsage(v map[string]interface{}) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetUsage(v)
	})
}

// UpdateUsage sets the "usage" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateUsage() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateUsage()
	})
}

// ClearUsage clears the value of the "usage" field.
func (u *RunUpsertBulk) ClearUsage() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearUsage()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *RunUpsertBulk) SetFailureReason(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateFailureReason() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *RunUpsertBulk) ClearFailureReason() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearFailureReason()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *RunUpsertBulk) SetErrorCode(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateErrorCode() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateErrorCode()
	})
}

// ClearErrorCode clears the value of the "error_code" field.
func (u *RunUpsertBulk) ClearErrorCode() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearErrorCode()
	})
}

// SetClientRequestID sets the "client_request_id" field.
func (u *RunUpsertBulk) SetClientRequestID(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetClientRequestID(v)
	})
}

// UpdateClientRequestID sets the "client_request_id" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateClientRequestID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateClientRequestID()
	})
}

// ClearClientRequestID clears the value of the "client_request_id" field.
func (u *RunUpsertBulk) ClearClientRequestID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearClientRequestID()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *RunUpsertBulk) SetRetryCount(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *RunUpsertBulk) AddRetryCount(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateRetryCount() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateRetryCount()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsertBulk) SetStartedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateStartedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsertBulk) ClearStartedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *RunUpsertBulk) SetFinishedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateFinishedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *RunUpsertBulk) ClearFinishedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearFinishedAt()
	})
}

// SetCancelRequestedAt sets the "cancel_requested_at" field.
func (u *RunUpsertBulk) SetCancelRequestedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetCancelRequestedAt(v)
	})
}

// UpdateCancelRequestedAt sets the "cancel_requested_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateCancelRequestedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCancelRequestedAt()
	})
}

// ClearCancelRequestedAt clears the value of the "cancel_requested_at" field.
func (u *RunUpsertBulk) ClearCancelRequestedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearCancelRequestedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RunUpsertBulk) SetUpdatedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateUpdatedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
