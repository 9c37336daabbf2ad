// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/inquiro-ai/inquiro/ent/project"
	"github.com/inquiro-ai/inquiro/ent/run"
)

// Run is the model entity for the Run schema.
type Run struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Status holds the value of the "status" field.
	Status run.Status `json:"status,omitempty"`
	// Pipeline stage currently executing (retrieve..export)
	CurrentStage *string `json:"current_stage,omitempty"`
	// User question driving the report
	Question string `json:"question,omitempty"`
	// OutputType holds the value of the "output_type" field.
	OutputType string `json:"output_type,omitempty"`
	// LlmProvider holds the value of the "llm_provider" field.
	LlmProvider *string `json:"llm_provider,omitempty"`
	// LlmModel holds the value of the "llm_model" field.
	LlmModel *string `json:"llm_model,omitempty"`
	// External budgets enforced by individual stages
	Budgets map[string]interface{} `json:"budgets,omitempty"`
	// Token/source counters and exporter warnings
	Usage map[string]interface{} `json:"usage,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason *string `json:"failure_reason,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode *string `json:"error_code,omitempty"`
	// Idempotency key for run creation, unique per project when set
	ClientRequestID *string `json:"client_request_id,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Cooperative cancellation flag, polled at stage boundaries
	CancelRequestedAt *time.Time `json:"cancel_requested_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunQuery when eager-loading is set.
	Edges        RunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunEdges holds the relations/edges for other nodes in the graph.
type RunEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*Job `json:"jobs,omitempty"`
	// Events holds the value of the events edge.
	Events []*RunEvent `json:"events,omitempty"`
	// Sections holds the value of the sections edge.
	Sections []*RunSection `json:"sections,omitempty"`
	// OutlineNotes holds the value of the outline_notes edge.
	OutlineNotes []*OutlineNote `json:"outline_notes,omitempty"`
	// SectionEvidence holds the value of the section_evidence edge.
	SectionEvidence []*SectionEvidence `json:"section_evidence,omitempty"`
	// DraftSections holds the value of the draft_sections edge.
	DraftSections []*DraftSection `json:"draft_sections,omitempty"`
	// SectionReviews holds the value of the section_reviews edge.
	SectionReviews []*SectionReview `json:"section_reviews,omitempty"`
	// RunSources holds the value of the run_sources edge.
	RunSources []*RunSource `json:"run_sources,omitempty"`
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*RunCheckpoint `json:"checkpoints,omitempty"`
	// Artifacts holds the value of the artifacts edge.
	Artifacts []*Artifact `json:"artifacts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [11]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RunEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) JobsOrErr() ([]*Job, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) EventsOrErr() ([]*RunEvent, error) {
	if e.loadedTypes[2] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// SectionsOrErr returns the Sections value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) SectionsOrErr() ([]*RunSection, error) {
	if e.loadedTypes[3] {
		return e.Sections, nil
	}
	return nil, &NotLoadedError{edge: "sections"}
}

// OutlineNotesOrErr returns the OutlineNotes value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) OutlineNotesOrErr() ([]*OutlineNote, error) {
	if e.loadedTypes[4] {
		return e.OutlineNotes, nil
	}
	return nil, &NotLoadedError{edge: "outline_notes"}
}

// SectionEvidenceOrErr returns the SectionEvidence value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) SectionEvidenceOrErr() ([]*SectionEvidence, error) {
	if e.loadedTypes[5] {
		return e.SectionEvidence, nil
	}
	return nil, &NotLoadedError{edge: "section_evidence"}
}

// DraftSectionsOrErr returns the DraftSections value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) DraftSectionsOrErr() ([]*DraftSection, error) {
	if e.loadedTypes[6] {
		return e.DraftSections, nil
	}
	return nil, &NotLoadedError{edge: "draft_sections"}
}

// SectionReviewsOrErr returns the SectionReviews value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) SectionReviewsOrErr() ([]*SectionReview, error) {
	if e.loadedTypes[7] {
		return e.SectionReviews, nil
	}
	return nil, &NotLoadedError{edge: "section_reviews"}
}

// RunSourcesOrErr returns the RunSources value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) RunSourcesOrErr() ([]*RunSource, error) {
	if e.loadedTypes[8] {
		return e.RunSources, nil
	}
	return nil, &NotLoadedError{edge: "run_sources"}
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) CheckpointsOrErr() ([]*RunCheckpoint, error) {
	if e.loadedTypes[9] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// ArtifactsOrErr returns the Artifacts value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) ArtifactsOrErr() ([]*Artifact, error) {
	if e.loadedTypes[10] {
		return e.Artifacts, nil
	}
	return nil, &NotLoadedError{edge: "artifacts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Run) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case run.FieldBudgets, run.FieldUsage:
			values[i] = new([]byte)
		case run.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case run.FieldID, run.FieldTenantID, run.FieldProjectID, run.FieldStatus, run.FieldCurrentStage, run.FieldQuestion, run.FieldOutputType, run.FieldLlmProvider, run.FieldLlmModel, run.FieldFailureReason, run.FieldErrorCode, run.FieldClientRequestID:
			values[i] = new(sql.NullString)
		case run.FieldStartedAt, run.FieldFinishedAt, run.FieldCancelRequestedAt, run.FieldCreatedAt, run.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Run fields.
func (_m *Run) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case run.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case run.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case run.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case run.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = run.Status(value.String)
			}
		case run.FieldCurrentStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage", values[i])
			} else if value.Valid {
				_m.CurrentStage = new(string)
				*_m.CurrentStage = value.String
			}
		case run.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case run.FieldOutputType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_type", values[i])
			} else if value.Valid {
				_m.OutputType = value.String
			}
		case run.FieldLlmProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_provider", values[i])
			} else if value.Valid {
				_m.LlmProvider = new(string)
				*_m.LlmProvider = value.String
			}
		case run.FieldLlmModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_model", values[i])
			} else if value.Valid {
				_m.LlmModel = new(string)
				*_m.LlmModel = value.String
			}
		case run.FieldBudgets:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field budgets", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Budgets); err != nil {
					return fmt.Errorf("unmarshal field budgets: %w", err)
				}
			}
		case run.FieldUsage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field usage", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Usage); err != nil {
					return fmt.Errorf("unmarshal field usage: %w", err)
				}
			}
		case run.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		case run.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case run.FieldClientRequestID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_request_id", values[i])
			} else if value.Valid {
				_m.ClientRequestID = new(string)
				*_m.ClientRequestID = value.String
			}
		case run.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case run.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case run.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case run.FieldCancelRequestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested_at", values[i])
			} else if value.Valid {
				_m.CancelRequestedAt = new(time.Time)
				*_m.CancelRequestedAt = value.Time
			}
		case run.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case run.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Run.
// This includes values selected through modifiers, order, etc.
func (_m *Run) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Run entity.
func (_m *Run) QueryProject() *ProjectQuery {
	return NewRunClient(_m.config).QueryProject(_m)
}

// QueryJobs queries the "jobs" edge of the Run entity.
func (_m *Run) QueryJobs() *JobQuery {
	return NewRunClient(_m.config).QueryJobs(_m)
}

// QueryEvents queries the "events" edge of the Run entity.
func (_m *Run) QueryEvents() *RunEventQuery {
	return NewRunClient(_m.config).QueryEvents(_m)
}

// QuerySections queries the "sections" edge of the Run entity.
func (_m *Run) QuerySections() *RunSectionQuery {
	return NewRunClient(_m.config).QuerySections(_m)
}

// QueryOutlineNotes queries the "outline_notes" edge of the Run entity.
func (_m *Run) QueryOutlineNotes() *OutlineNoteQuery {
	return NewRunClient(_m.config).QueryOutlineNotes(_m)
}

// QuerySectionEvidence queries the "section_evidence" edge of the Run entity.
func (_m *Run) QuerySectionEvidence() *SectionEvidenceQuery {
	return NewRunClient(_m.config).QuerySectionEvidence(_m)
}

// QueryDraftSections queries the "draft_sections" edge of the Run entity.
func (_m *Run) QueryDraftSections() *DraftSectionQuery {
	return NewRunClient(_m.config).QueryDraftSections(_m)
}

// QuerySectionReviews queries the "section_reviews" edge of the Run entity.
func (_m *Run) QuerySectionReviews() *SectionReviewQuery {
	return NewRunClient(_m.config).QuerySectionReviews(_m)
}

// QueryRunSources queries the "run_sources" edge of the Run entity.
func (_m *Run) QueryRunSources() *RunSourceQuery {
	return NewRunClient(_m.config).QueryRunSources(_m)
}

// QueryCheckpoints queries the "checkpoints" edge of the Run entity.
func (_m *Run) QueryCheckpoints() *RunCheckpointQuery {
	return NewRunClient(_m.config).QueryCheckpoints(_m)
}

// QueryArtifacts queries the "artifacts" edge of the Run entity.
func (_m *Run) QueryArtifacts() *ArtifactQuery {
	return NewRunClient(_m.config).QueryArtifacts(_m)
}

// Update returns a builder for updating this Run.
// Note that you need to call Run.Unwrap() before calling this method if this Run
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Run) Update() *RunUpdateOne {
	return NewRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Run entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Run) Unwrap() *Run {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Run is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Run) String() string {
	var builder strings.Builder
	builder.WriteString("Run(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.CurrentStage; v != nil {
		builder.WriteString("current_stage=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("output_type=")
	builder.WriteString(_m.OutputType)
	builder.WriteString(", ")
	if v := _m.LlmProvider; v != nil {
		builder.WriteString("llm_provider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LlmModel; v != nil {
		builder.WriteString("llm_model=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("budgets=")
	builder.WriteString(fmt.Sprintf("%v", _m.Budgets))
	builder.WriteString(", ")
	builder.WriteString("usage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Usage))
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClientRequestID; v != nil {
		builder.WriteString("client_request_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CancelRequestedAt; v != nil {
		builder.WriteString("cancel_requested_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Runs is a parsable slice of Run.
type Runs []*Run
