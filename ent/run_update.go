// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/inquiro-ai/inquiro/ent/artifact"
	"github.com/inquiro-ai/inquiro/ent/draftsection"
	"github.com/inquiro-ai/inquiro/ent/job"
	"github.com/inquiro-ai/inquiro/ent/outlinenote"
	"github.com/inquiro-ai/inquiro/ent/predicate"
	"github.com/inquiro-ai/inquiro/ent/run"
	"github.com/inquiro-ai/inquiro/ent/runcheckpoint"
	"github.com/inquiro-ai/inquiro/ent/runevent"
	"github.com/inquiro-ai/inquiro/ent/runsection"
	"github.com/inquiro-ai/inquiro/ent/runsource"
	"github.com/inquiro-ai/inquiro/ent/sectionevidence"
	"github.com/inquiro-ai/inquiro/ent/sectionreview"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks     []Hook
	mutation  *RunMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdate) SetStatus(v run.Status) *RunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStatus(v *run.Status) *RunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *RunUpdate) SetCurrentStage(v string) *RunUpdate {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCurrentStage(v *string) *RunUpdate {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *RunUpdate) ClearCurrentStage() *RunUpdate {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetQuestion sets the "question" field.
func (_u *RunUpdate) SetQuestion(v string) *RunUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *RunUpdate) SetNillableQuestion(v *string) *RunUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetOutputType sets the "output_type" field.
func (_u *RunUpdate) SetOutputType(v string) *RunUpdate {
	_u.mutation.SetOutputType(v)
	return _u
}

// SetNillableOutputType sets the "output_type" field if the given value is not nil.
func (_u *RunUpdate) SetNillableOutputType(v *string) *RunUpdate {
	if v != nil {
		_u.SetOutputType(*v)
	}
	return _u
}

// SetLlmProvider sets the "llm_provider" field.
func (_u *RunUpdate) SetLlmProvider(v string) *RunUpdate {
	_u.mutation.SetLlmProvider(v)
	return _u
}

// SetNillableLlmProvider sets the "llm_provider" field if the given value is not nil.
func (_u *RunUpdate) SetNillableLlmProvider(v *string) *RunUpdate {
	if v != nil {
		_u.SetLlmProvider(*v)
	}
	return _u
}

// ClearLlmProvider clears the value of the "llm_provider" field.
func (_u *RunUpdate) ClearLlmProvider() *RunUpdate {
	_u.mutation.ClearLlmProvider()
	return _u
}

// SetLlmModel sets the "llm_model" field.
func (_u *RunUpdate) SetLlmModel(v string) *RunUpdate {
	_u.mutation.SetLlmModel(v)
	return _u
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_u *RunUpdate) SetNillableLlmModel(v *string) *RunUpdate {
	if v != nil {
		_u.SetLlmModel(*v)
	}
	return _u
}

// ClearLlmModel clears the value of the "llm_model" field.
func (_u *RunUpdate) ClearLlmModel() *RunUpdate {
	_u.mutation.ClearLlmModel()
	return _u
}

// SetBudgets sets the "budgets" field.
func (_u *RunUpdate) SetBudgets(v map[string]interface{}) *RunUpdate {
	_u.mutation.SetBudgets(v)
	return _u
}

// ClearBudgets clears the value of the "budgets" field.
func (_u *RunUpdate) ClearBudgets() *RunUpdate {
	_u.mutation.ClearBudgets()
	return _u
}

// SetUsage sets the "usage" field.
func (_u *RunUpdate) SetUsage(v map[string]interface{}) *RunUpdate {
	_u.mutation.SetUsage(v)
	return _u
}

// ClearUsage clears the value of the "usage" field.
func (_u *RunUpdate) ClearUsage() *RunUpdate {
	_u.mutation.ClearUsage()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *RunUpdate) SetFailureReason(v string) *RunUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *RunUpdate) SetNillableFailureReason(v *string) *RunUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *RunUpdate) ClearFailureReason() *RunUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *RunUpdate) SetErrorCode(v string) *RunUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *RunUpdate) SetNillableErrorCode(v *string) *RunUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *RunUpdate) ClearErrorCode() *RunUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetClientRequestID sets the "client_request_id" field.
func (_u *RunUpdate) SetClientRequestID(v string) *RunUpdate {
	_u.mutation.SetClientRequestID(v)
	return _u
}

// SetNillableClientRequestID sets the "client_request_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableClientRequestID(v *string) *RunUpdate {
	if v != nil {
		_u.SetClientRequestID(*v)
	}
	return _u
}

// ClearClientRequestID clears the value of the "client_request_id" field.
func (_u *RunUpdate) ClearClientRequestID() *RunUpdate {
	_u.mutation.ClearClientRequestID()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *RunUpdate) SetRetryCount(v int) *RunUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *RunUpdate) SetNillableRetryCount(v *int) *RunUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *RunUpdate) AddRetryCount(v int) *RunUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdate) SetStartedAt(v time.Time) *RunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStartedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdate) ClearStartedAt() *RunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RunUpdate) SetFinishedAt(v time.Time) *RunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableFinishedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RunUpdate) ClearFinishedAt() *RunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetCancelRequestedAt sets the "cancel_requested_at" field.
func (_u *RunUpdate) SetCancelRequestedAt(v time.Time) *RunUpdate {
	_u.mutation.SetCancelRequestedAt(v)
	return _u
}

// SetNillableCancelRequestedAt sets the "cancel_requested_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCancelRequestedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetCancelRequestedAt(*v)
	}
	return _u
}

// ClearCancelRequestedAt clears the value of the "cancel_requested_at" field.
func (_u *RunUpdate) ClearCancelRequestedAt() *RunUpdate {
	_u.mutation.ClearCancelRequestedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RunUpdate) SetUpdatedAt(v time.Time) *RunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *RunUpdate) AddJobIDs(ids ...string) *RunUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *RunUpdate) AddJobs(v ...*Job) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *RunUpdate) AddEventIDs(ids ...string) *RunUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *RunUpdate) AddEvents(v ...*RunEvent) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddSectionIDs adds the "sections" edge to the RunSection entity by IDs.
func (_u *RunUpdate) AddSectionIDs(ids ...string) *RunUpdate {
	_u.mutation.AddSectionIDs(ids...)
	return _u
}

// AddSections adds the "sections" edges to the RunSection entity.
func (_u *RunUpdate) AddSections(v ...*RunSection) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSectionIDs(ids...)
}

// AddOutlineNoteIDs adds the "outline_notes" edge to the OutlineNote entity by IDs.
func (_u *RunUpdate) AddOutlineNoteIDs(ids ...string) *RunUpdate {
	_u.mutation.AddOutlineNoteIDs(ids...)
	return _u
}

// AddOutlineNotes adds the "outline_notes" edges to the OutlineNote entity.
func (_u *RunUpdate) AddOutlineNotes(v ...*OutlineNote) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutlineNoteIDs(ids...)
}

// AddSectionEvidenceIDs adds the "section_evidence" edge to the SectionEvidence entity by IDs.
func (_u *RunUpdate) AddSectionEvidenceIDs(ids ...string) *RunUpdate {
	_u.mutation.AddSectionEvidenceIDs(ids...)
	return _u
}

// AddSectionEvidence adds the "section_evidence" edges to the SectionEvidence entity.
func (_u *RunUpdate) AddSectionEvidence(v ...*SectionEvidence) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSectionEvidenceIDs(ids...)
}

// AddDraftSectionIDs adds the "draft_sections" edge to the DraftSection entity by IDs.
func (_u *RunUpdate) AddDraftSectionIDs(ids ...string) *RunUpdate {
	_u.mutation.AddDraftSectionIDs(ids...)
	return _u
}

// AddDraftSections adds the "draft_sections" edges to the DraftSection entity.
func (_u *RunUpdate) AddDraftSections(v ...*DraftSection) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDraftSectionIDs(ids...)
}

// AddSectionReviewIDs adds the "section_reviews" edge to the SectionReview entity by IDs.
func (_u *RunUpdate) AddSectionReviewIDs(ids ...string) *RunUpdate {
	_u.mutation.AddSectionReviewIDs(ids...)
	return _u
}

// AddSectionReviews adds the "section_reviews" edges to the SectionReview entity.
func (_u *RunUpdate) AddSectionReviews(v ...*SectionReview) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSectionReviewIDs(ids...)
}

// AddRunSourceIDs adds the "run_sources" edge to the RunSource entity by IDs.
func (_u *RunUpdate) AddRunSourceIDs(ids ...string) *RunUpdate {
	_u.mutation.AddRunSourceIDs(ids...)
	return _u
}

// AddRunSources adds the "run_sources" edges to the RunSource entity.
func (_u *RunUpdate) AddRunSources(v ...*RunSource) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunSourceIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the RunCheckpoint entity by IDs.
func (_u *RunUpdate) AddCheckpointIDs(ids ...string) *RunUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the RunCheckpoint entity.
func (_u *RunUpdate) AddCheckpoints(v ...*RunCheckpoint) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_u *RunUpdate) AddArtifactIDs(ids ...string) *RunUpdate {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_u *RunUpdate) AddArtifacts(v ...*Artifact) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *RunUpdate) ClearJobs() *RunUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *RunUpdate) RemoveJobIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *RunUpdate) RemoveJobs(v ...*Job) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *RunUpdate) ClearEvents() *RunUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *RunUpdate) RemoveEventIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *RunUpdate) RemoveEvents(v ...*RunEvent) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearSections clears all "sections" edges to the RunSection entity.
func (_u *RunUpdate) ClearSections() *RunUpdate {
	_u.mutation.ClearSections()
	return _u
}

// RemoveSectionIDs removes the "sections" edge to RunSection entities by IDs.
func (_u *RunUpdate) RemoveSectionIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveSectionIDs(ids...)
	return _u
}

// RemoveSections removes "sections" edges to RunSection entities.
func (_u *RunUpdate) RemoveSections(v ...*RunSection) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSectionIDs(ids...)
}

// ClearOutlineNotes clears all "outline_notes" edges to the OutlineNote entity.
func (_u *RunUpdate) ClearOutlineNotes() *RunUpdate {
	_u.mutation.ClearOutlineNotes()
	return _u
}

// RemoveOutlineNoteIDs removes the "outline_notes" edge to OutlineNote entities by IDs.
func (_u *RunUpdate) RemoveOutlineNoteIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveOutlineNoteIDs(ids...)
	return _u
}

// RemoveOutlineNotes removes "outline_notes" edges to OutlineNote entities.
func (_u *RunUpdate) RemoveOutlineNotes(v ...*OutlineNote) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutlineNoteIDs(ids...)
}

// ClearSectionEvidence clears all "section_evidence" edges to the SectionEvidence entity.
func (_u *RunUpdate) ClearSectionEvidence() *RunUpdate {
	_u.mutation.ClearSectionEvidence()
	return _u
}

// RemoveSectionEvidenceIDs removes the "section_evidence" edge to SectionEvidence entities by IDs.
func (_u *RunUpdate) RemoveSectionEvidenceIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveSectionEvidenceIDs(ids...)
	return _u
}

// RemoveSectionEvidence removes "section_evidence" edges to SectionEvidence entities.
func (_u *RunUpdate) RemoveSectionEvidence(v ...*SectionEvidence) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSectionEvidenceIDs(ids...)
}

// ClearDraftSections clears all "draft_sections" edges to the DraftSection entity.
func (_u *RunUpdate) ClearDraftSections() *RunUpdate {
	_u.mutation.ClearDraftSections()
	return _u
}

// RemoveDraftSectionIDs removes the "draft_sections" edge to DraftSection entities by IDs.
func (_u *RunUpdate) RemoveDraftSectionIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveDraftSectionIDs(ids...)
	return _u
}

// RemoveDraftSections removes "draft_sections" edges to DraftSection entities.
func (_u *RunUpdate) RemoveDraftSections(v ...*DraftSection) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDraftSectionIDs(ids...)
}

// ClearSectionReviews clears all "section_reviews" edges to the SectionReview entity.
func (_u *RunUpdate) ClearSectionReviews() *RunUpdate {
	_u.mutation.ClearSectionReviews()
	return _u
}

// RemoveSectionReviewIDs removes the "section_reviews" edge to SectionReview entities by IDs.
func (_u *RunUpdate) RemoveSectionReviewIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveSectionReviewIDs(ids...)
	return _u
}

// RemoveSectionReviews removes "section_reviews" edges to SectionReview entities.
func (_u *RunUpdate) RemoveSectionReviews(v ...*SectionReview) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSectionReviewIDs(ids...)
}

// ClearRunSources clears all "run_sources" edges to the RunSource entity.
func (_u *RunUpdate) ClearRunSources() *RunUpdate {
	_u.mutation.ClearRunSources()
	return _u
}

// RemoveRunSourceIDs removes the "run_sources" edge to RunSource entities by IDs.
func (_u *RunUpdate) RemoveRunSourceIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveRunSourceIDs(ids...)
	return _u
}

// RemoveRunSources removes "run_sources" edges to RunSource entities.
func (_u *RunUpdate) RemoveRunSources(v ...*RunSource) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunSourceIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the RunCheckpoint entity.
func (_u *RunUpdate) ClearCheckpoints() *RunUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to RunCheckpoint entities by IDs.
func (_u *RunUpdate) RemoveCheckpointIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to RunCheckpoint entities.
func (_u *RunUpdate) RemoveCheckpoints(v ...*RunCheckpoint) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearArtifacts clears all "artifacts" edges to the Artifact entity.
func (_u *RunUpdate) ClearArtifacts() *RunUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to Artifact entities by IDs.
func (_u *RunUpdate) RemoveArtifactIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to Artifact entities.
func (_u *RunUpdate) RemoveArtifacts(v ...*Artifact) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := run.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Run.project"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *RunUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *RunUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(run.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(run.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(run.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputType(); ok {
		_spec.SetField(run.FieldOutputType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LlmProvider(); ok {
		_spec.SetField(run.FieldLlmProvider, field.TypeString, value)
	}
	if _u.mutation.LlmProviderCleared() {
		_spec.ClearField(run.FieldLlmProvider, field.TypeString)
	}
	if value, ok := _u.mutation.LlmModel(); ok {
		_spec.SetField(run.FieldLlmModel, field.TypeString, value)
	}
	if _u.mutation.LlmModelCleared() {
		_spec.ClearField(run.FieldLlmModel, field.TypeString)
	}
	if value, ok := _u.mutation.Budgets(); ok {
		_spec.SetField(run.FieldBudgets, field.TypeJSON, value)
	}
	if _u.mutation.BudgetsCleared() {
		_spec.ClearField(run.FieldBudgets, field.TypeJSON)
	}
	if value, ok := _u.mutation.Usage(); ok {
		_spec.SetField(run.FieldUsage, field.TypeJSON, value)
	}
	if _u.mutation.UsageCleared() {
		_spec.ClearField(run.FieldUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(run.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(run.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(run.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(run.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ClientRequestID(); ok {
		_spec.SetField(run.FieldClientRequestID, field.TypeString, value)
	}
	if _u.mutation.ClientRequestIDCleared() {
		_spec.ClearField(run.FieldClientRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(run.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(run.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(run.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(run.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelRequestedAt(); ok {
		_spec.SetField(run.FieldCancelRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.CancelRequestedAtCleared() {
		_spec.ClearField(run.FieldCancelRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(run.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSectionsIDs(); len(nodes) > 0 && !_u.mutation.SectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutlineNotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutlineNotesIDs(); len(nodes) > 0 && !_u.mutation.OutlineNotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutlineNotesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SectionEvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSectionEvidenceIDs(); len(nodes) > 0 && !_u.mutation.SectionEvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionEvidenceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DraftSectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDraftSectionsIDs(); len(nodes) > 0 && !_u.mutation.DraftSectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DraftSectionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SectionReviewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSectionReviewsIDs(); len(nodes) > 0 && !_u.mutation.SectionReviewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionReviewsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RunSourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunSourcesIDs(); len(nodes) > 0 && !_u.mutation.RunSourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunSourcesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *RunMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetStatus sets the "status" field.
func (_u *RunUpdateOne) SetStatus(v run.Status) *RunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStatus(v *run.Status) *RunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStage sets the "current_stage" field.
func (_u *RunUpdateOne) SetCurrentStage(v string) *RunUpdateOne {
	_u.mutation.SetCurrentStage(v)
	return _u
}

// SetNillableCurrentStage sets the "current_stage" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCurrentStage(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetCurrentStage(*v)
	}
	return _u
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (_u *RunUpdateOne) ClearCurrentStage() *RunUpdateOne {
	_u.mutation.ClearCurrentStage()
	return _u
}

// SetQuestion sets the "question" field.
func (_u *RunUpdateOne) SetQuestion(v string) *RunUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableQuestion(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetOutputType sets the "output_type" field.
func (_u *RunUpdateOne) SetOutputType(v string) *RunUpdateOne {
	_u.mutation.SetOutputType(v)
	return _u
}

// SetNillableOutputType sets the "output_type" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableOutputType(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetOutputType(*v)
	}
	return _u
}

// SetLlmProvider sets the "llm_provider" field.
func (_u *RunUpdateOne) SetLlmProvider(v string) *RunUpdateOne {
	_u.mutation.SetLlmProvider(v)
	return _u
}

// SetNillableLlmProvider sets the "llm_provider" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableLlmProvider(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetLlmProvider(*v)
	}
	return _u
}

// ClearLlmProvider clears the value of the "llm_provider" field.
func (_u *RunUpdateOne) ClearLlmProvider() *RunUpdateOne {
	_u.mutation.ClearLlmProvider()
	return _u
}

// SetLlmModel sets the "llm_model" field.
func (_u *RunUpdateOne) SetLlmModel(v string) *RunUpdateOne {
	_u.mutation.SetLlmModel(v)
	return _u
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableLlmModel(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetLlmModel(*v)
	}
	return _u
}

// ClearLlmModel clears the value of the "llm_model" field.
func (_u *RunUpdateOne) ClearLlmModel() *RunUpdateOne {
	_u.mutation.ClearLlmModel()
	return _u
}

// SetBudgets sets the "budgets" field.
func (_u *RunUpdateOne) SetBudgets(v map[string]interface{}) *RunUpdateOne {
	_u.mutation.SetBudgets(v)
	return _u
}

// ClearBudgets clears the value of the "budgets" field.
func (_u *RunUpdateOne) ClearBudgets() *RunUpdateOne {
	_u.mutation.ClearBudgets()
	return _u
}

// SetUsage sets the "usage" field.
func (_u *RunUpdateOne) SetUsage(v map[string]interface{}) *RunUpdateOne {
	_u.mutation.SetUsage(v)
	return _u
}

// ClearUsage clears the value of the "usage" field.
func (_u *RunUpdateOne) ClearUsage() *RunUpdateOne {
	_u.mutation.ClearUsage()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *RunUpdateOne) SetFailureReason(v string) *RunUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableFailureReason(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *RunUpdateOne) ClearFailureReason() *RunUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *RunUpdateOne) SetErrorCode(v string) *RunUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableErrorCode(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *RunUpdateOne) ClearErrorCode() *RunUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetClientRequestID sets the "client_request_id" field.
func (_u *RunUpdateOne) SetClientRequestID(v string) *RunUpdateOne {
	_u.mutation.SetClientRequestID(v)
	return _u
}

// SetNillableClientRequestID sets the "client_request_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableClientRequestID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetClientRequestID(*v)
	}
	return _u
}

// ClearClientRequestID clears the value of the "client_request_id" field.
func (_u *RunUpdateOne) ClearClientRequestID() *RunUpdateOne {
	_u.mutation.ClearClientRequestID()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *RunUpdateOne) SetRetryCount(v int) *RunUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableRetryCount(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *RunUpdateOne) AddRetryCount(v int) *RunUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdateOne) SetStartedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStartedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdateOne) ClearStartedAt() *RunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RunUpdateOne) SetFinishedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableFinishedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RunUpdateOne) ClearFinishedAt() *RunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetCancelRequestedAt sets the "cancel_requested_at" field.
func (_u *RunUpdateOne) SetCancelRequestedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetCancelRequestedAt(v)
	return _u
}

// SetNillableCancelRequestedAt sets the "cancel_requested_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCancelRequestedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetCancelRequestedAt(*v)
	}
	return _u
}

// ClearCancelRequestedAt clears the value of the "cancel_requested_at" field.
func (_u *RunUpdateOne) ClearCancelRequestedAt() *RunUpdateOne {
	_u.mutation.ClearCancelRequestedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RunUpdateOne) SetUpdatedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *RunUpdateOne) AddJobIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *RunUpdateOne) AddJobs(v ...*Job) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// AddEventIDs adds the "events" edge to the RunEvent entity by IDs.
func (_u *RunUpdateOne) AddEventIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the RunEvent entity.
func (_u *RunUpdateOne) AddEvents(v ...*RunEvent) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddSectionIDs adds the "sections" edge to the RunSection entity by IDs.
func (_u *RunUpdateOne) AddSectionIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddSectionIDs(ids...)
	return _u
}

// AddSections adds the "sections" edges to the RunSection entity.
func (_u *RunUpdateOne) AddSections(v ...*RunSection) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSectionIDs(ids...)
}

// AddOutlineNoteIDs adds the "outline_notes" edge to the OutlineNote entity by IDs.
func (_u *RunUpdateOne) AddOutlineNoteIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddOutlineNoteIDs(ids...)
	return _u
}

// AddOutlineNotes adds the "outline_notes" edges to the OutlineNote entity.
func (_u *RunUpdateOne) AddOutlineNotes(v ...*OutlineNote) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutlineNoteIDs(ids...)
}

// AddSectionEvidenceIDs adds the "section_evidence" edge to the SectionEvidence entity by IDs.
func (_u *RunUpdateOne) AddSectionEvidenceIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddSectionEvidenceIDs(ids...)
	return _u
}

// AddSectionEvidence adds the "section_evidence" edges to the SectionEvidence entity.
func (_u *RunUpdateOne) AddSectionEvidence(v ...*SectionEvidence) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSectionEvidenceIDs(ids...)
}

// AddDraftSectionIDs adds the "draft_sections" edge to the DraftSection entity by IDs.
func (_u *RunUpdateOne) AddDraftSectionIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddDraftSectionIDs(ids...)
	return _u
}

// AddDraftSections adds the "draft_sections" edges to the DraftSection entity.
func (_u *RunUpdateOne) AddDraftSections(v ...*DraftSection) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDraftSectionIDs(ids...)
}

// AddSectionReviewIDs adds the "section_reviews" edge to the SectionReview entity by IDs.
func (_u *RunUpdateOne) AddSectionReviewIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddSectionReviewIDs(ids...)
	return _u
}

// AddSectionReviews adds the "section_reviews" edges to the SectionReview entity.
func (_u *RunUpdateOne) AddSectionReviews(v ...*SectionReview) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSectionReviewIDs(ids...)
}

// AddRunSourceIDs adds the "run_sources" edge to the RunSource entity by IDs.
func (_u *RunUpdateOne) AddRunSourceIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddRunSourceIDs(ids...)
	return _u
}

// AddRunSources adds the "run_sources" edges to the RunSource entity.
func (_u *RunUpdateOne) AddRunSources(v ...*RunSource) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunSourceIDs(ids...)
}

// AddCheckpointIDs adds the "checkpoints" edge to the RunCheckpoint entity by IDs.
func (_u *RunUpdateOne) AddCheckpointIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the RunCheckpoint entity.
func (_u *RunUpdateOne) AddCheckpoints(v ...*RunCheckpoint) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_u *RunUpdateOne) AddArtifactIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_u *RunUpdateOne) AddArtifacts(v ...*Artifact) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *RunUpdateOne) ClearJobs() *RunUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *RunUpdateOne) RemoveJobIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *RunUpdateOne) RemoveJobs(v ...*Job) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearEvents clears all "events" edges to the RunEvent entity.
func (_u *RunUpdateOne) ClearEvents() *RunUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to RunEvent entities by IDs.
func (_u *RunUpdateOne) RemoveEventIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to RunEvent entities.
func (_u *RunUpdateOne) RemoveEvents(v ...*RunEvent) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearSections clears all "sections" edges to the RunSection entity.
func (_u *RunUpdateOne) ClearSections() *RunUpdateOne {
	_u.mutation.ClearSections()
	return _u
}

// RemoveSectionIDs removes the "sections" edge to RunSection entities by IDs.
func (_u *RunUpdateOne) RemoveSectionIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveSectionIDs(ids...)
	return _u
}

// RemoveSections removes "sections" edges to RunSection entities.
func (_u *RunUpdateOne) RemoveSections(v ...*RunSection) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSectionIDs(ids...)
}

// ClearOutlineNotes clears all "outline_notes" edges to the OutlineNote entity.
func (_u *RunUpdateOne) ClearOutlineNotes() *RunUpdateOne {
	_u.mutation.ClearOutlineNotes()
	return _u
}

// RemoveOutlineNoteIDs removes the "outline_notes" edge to OutlineNote entities by IDs.
func (_u *RunUpdateOne) RemoveOutlineNoteIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveOutlineNoteIDs(ids...)
	return _u
}

// RemoveOutlineNotes removes "outline_notes" edges to OutlineNote entities.
func (_u *RunUpdateOne) RemoveOutlineNotes(v ...*OutlineNote) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutlineNoteIDs(ids...)
}

// ClearSectionEvidence clears all "section_evidence" edges to the SectionEvidence entity.
func (_u *RunUpdateOne) ClearSectionEvidence() *RunUpdateOne {
	_u.mutation.ClearSectionEvidence()
	return _u
}

// RemoveSectionEvidenceIDs removes the "section_evidence" edge to SectionEvidence entities by IDs.
func (_u *RunUpdateOne) RemoveSectionEvidenceIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveSectionEvidenceIDs(ids...)
	return _u
}

// RemoveSectionEvidence removes "section_evidence" edges to SectionEvidence entities.
func (_u *RunUpdateOne) RemoveSectionEvidence(v ...*SectionEvidence) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSectionEvidenceIDs(ids...)
}

// ClearDraftSections clears all "draft_sections" edges to the DraftSection entity.
func (_u *RunUpdateOne) ClearDraftSections() *RunUpdateOne {
	_u.mutation.ClearDraftSections()
	return _u
}

// RemoveDraftSectionIDs removes the "draft_sections" edge to DraftSection entities by IDs.
func (_u *RunUpdateOne) RemoveDraftSectionIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveDraftSectionIDs(ids...)
	return _u
}

// RemoveDraftSections removes "draft_sections" edges to DraftSection entities.
func (_u *RunUpdateOne) RemoveDraftSections(v ...*DraftSection) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDraftSectionIDs(ids...)
}

// ClearSectionReviews clears all "section_reviews" edges to the SectionReview entity.
func (_u *RunUpdateOne) ClearSectionReviews() *RunUpdateOne {
	_u.mutation.ClearSectionReviews()
	return _u
}

// RemoveSectionReviewIDs removes the "section_reviews" edge to SectionReview entities by IDs.
func (_u *RunUpdateOne) RemoveSectionReviewIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveSectionReviewIDs(ids...)
	return _u
}

// RemoveSectionReviews removes "section_reviews" edges to SectionReview entities.
func (_u *RunUpdateOne) RemoveSectionReviews(v ...*SectionReview) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSectionReviewIDs(ids...)
}

// ClearRunSources clears all "run_sources" edges to the RunSource entity.
func (_u *RunUpdateOne) ClearRunSources() *RunUpdateOne {
	_u.mutation.ClearRunSources()
	return _u
}

// RemoveRunSourceIDs removes the "run_sources" edge to RunSource entities by IDs.
func (_u *RunUpdateOne) RemoveRunSourceIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveRunSourceIDs(ids...)
	return _u
}

// RemoveRunSources removes "run_sources" edges to RunSource entities.
func (_u *RunUpdateOne) RemoveRunSources(v ...*RunSource) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunSourceIDs(ids...)
}

// ClearCheckpoints clears all "checkpoints" edges to the RunCheckpoint entity.
func (_u *RunUpdateOne) ClearCheckpoints() *RunUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to RunCheckpoint entities by IDs.
func (_u *RunUpdateOne) RemoveCheckpointIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to RunCheckpoint entities.
func (_u *RunUpdateOne) RemoveCheckpoints(v ...*RunCheckpoint) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearArtifacts clears all "artifacts" edges to the Artifact entity.
func (_u *RunUpdateOne) ClearArtifacts() *RunUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to Artifact entities by IDs.
func (_u *RunUpdateOne) RemoveArtifactIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to Artifact entities.
func (_u *RunUpdateOne) RemoveArtifacts(v ...*Artifact) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := run.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Run.project"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *RunUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *RunUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStage(); ok {
		_spec.SetField(run.FieldCurrentStage, field.TypeString, value)
	}
	if _u.mutation.CurrentStageCleared() {
		_spec.ClearField(run.FieldCurrentStage, field.TypeString)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(run.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputType(); ok {
		_spec.SetField(run.FieldOutputType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LlmProvider(); ok {
		_spec.SetField(run.FieldLlmProvider, field.TypeString, value)
	}
	if _u.mutation.LlmProviderCleared() {
		_spec.ClearField(run.FieldLlmProvider, field.TypeString)
	}
	if value, ok := _u.mutation.LlmModel(); ok {
		_spec.SetField(run.FieldLlmModel, field.TypeString, value)
	}
	if _u.mutation.LlmModelCleared() {
		_spec.ClearField(run.FieldLlmModel, field.TypeString)
	}
	if value, ok := _u.mutation.Budgets(); ok {
		_spec.SetField(run.FieldBudgets, field.TypeJSON, value)
	}
	if _u.mutation.BudgetsCleared() {
		_spec.ClearField(run.FieldBudgets, field.TypeJSON)
	}
	if value, ok := _u.mutation.Usage(); ok {
		_spec.SetField(run.FieldUsage, field.TypeJSON, value)
	}
	if _u.mutation.UsageCleared() {
		_spec.ClearField(run.FieldUsage, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(run.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(run.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(run.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(run.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ClientRequestID(); ok {
		_spec.SetField(run.FieldClientRequestID, field.TypeString, value)
	}
	if _u.mutation.ClientRequestIDCleared() {
		_spec.ClearField(run.FieldClientRequestID, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(run.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(run.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(run.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(run.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelRequestedAt(); ok {
		_spec.SetField(run.FieldCancelRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.CancelRequestedAtCleared() {
		_spec.ClearField(run.FieldCancelRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(run.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSectionsIDs(); len(nodes) > 0 && !_u.mutation.SectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutlineNotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutlineNotesIDs(); len(nodes) > 0 && !_u.mutation.OutlineNotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutlineNotesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SectionEvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSectionEvidenceIDs(); len(nodes) > 0 && !_u.mutation.SectionEvidenceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionEvidenceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DraftSectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDraftSectionsIDs(); len(nodes) > 0 && !_u.mutation.DraftSectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DraftSectionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SectionReviewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSectionReviewsIDs(); len(nodes) > 0 && !_u.mutation.SectionReviewsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionReviewsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RunSourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunSourcesIDs(); len(nodes) > 0 && !_u.mutation.RunSourcesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunSourcesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
