// Code generated by ent, DO NOT EDIT.

package run

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the run type in the database.
	Label = "run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentStage holds the string denoting the current_stage field in the database.
	FieldCurrentStage = "current_stage"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldOutputType holds the string denoting the output_type field in the database.
	FieldOutputType = "output_type"
	// FieldLlmProvider holds the string denoting the llm_provider field in the database.
	FieldLlmProvider = "llm_provider"
	// FieldLlmModel holds the string denoting the llm_model field in the database.
	FieldLlmModel = "llm_model"
	// FieldBudgets holds the string denoting the budgets field in the database.
	FieldBudgets = "budgets"
	// FieldUsage holds the string denoting the usage field in the database.
	FieldUsage = "usage"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// FieldClientRequestID holds the string denoting the client_request_id field in the database.
	FieldClientRequestID = "client_request_id"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldCancelRequestedAt holds the string denoting the cancel_requested_at field in the database.
	FieldCancelRequestedAt = "cancel_requested_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeSections holds the string denoting the sections edge name in mutations.
	EdgeSections = "sections"
	// EdgeOutlineNotes holds the string denoting the outline_notes edge name in mutations.
	EdgeOutlineNotes = "outline_notes"
	// EdgeSectionEvidence holds the string denoting the section_evidence edge name in mutations.
	EdgeSectionEvidence = "section_evidence"
	// EdgeDraftSections holds the string denoting the draft_sections edge name in mutations.
	EdgeDraftSections = "draft_sections"
	// EdgeSectionReviews holds the string denoting the section_reviews edge name in mutations.
	EdgeSectionReviews = "section_reviews"
	// EdgeRunSources holds the string denoting the run_sources edge name in mutations.
	EdgeRunSources = "run_sources"
	// EdgeCheckpoints holds the string denoting the checkpoints edge name in mutations.
	EdgeCheckpoints = "checkpoints"
	// EdgeArtifacts holds the string denoting the artifacts edge name in mutations.
	EdgeArtifacts = "artifacts"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// JobFieldID holds the string denoting the ID field of the Job.
	JobFieldID = "job_id"
	// RunEventFieldID holds the string denoting the ID field of the RunEvent.
	RunEventFieldID = "event_id"
	// RunSectionFieldID holds the string denoting the ID field of the RunSection.
	RunSectionFieldID = "id"
	// OutlineNoteFieldID holds the string denoting the ID field of the OutlineNote.
	OutlineNoteFieldID = "id"
	// SectionEvidenceFieldID holds the string denoting the ID field of the SectionEvidence.
	SectionEvidenceFieldID = "id"
	// DraftSectionFieldID holds the string denoting the ID field of the DraftSection.
	DraftSectionFieldID = "id"
	// SectionReviewFieldID holds the string denoting the ID field of the SectionReview.
	SectionReviewFieldID = "id"
	// RunSourceFieldID holds the string denoting the ID field of the RunSource.
	RunSourceFieldID = "id"
	// RunCheckpointFieldID holds the string denoting the ID field of the RunCheckpoint.
	RunCheckpointFieldID = "id"
	// ArtifactFieldID holds the string denoting the ID field of the Artifact.
	ArtifactFieldID = "artifact_id"
	// Table holds the table name of the run in the database.
	Table = "runs"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "runs"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "jobs"
	// JobsInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobsInverseTable = "jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "run_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "run_events"
	// EventsInverseTable is the table name for the RunEvent entity.
	// It exists in this package in order to avoid circular dependency with the "runevent" package.
	EventsInverseTable = "run_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "run_id"
	// SectionsTable is the table that holds the sections relation/edge.
	SectionsTable = "run_sections"
	// SectionsInverseTable is the table name for the RunSection entity.
	// It exists in this package in order to avoid circular dependency with the "runsection" package.
	SectionsInverseTable = "run_sections"
	// SectionsColumn is the table column denoting the sections relation/edge.
	SectionsColumn = "run_id"
	// OutlineNotesTable is the table that holds the outline_notes relation/edge.
	OutlineNotesTable = "outline_notes"
	// OutlineNotesInverseTable is the table name for the OutlineNote entity.
	// It exists in this package in order to avoid circular dependency with the "outlinenote" package.
	OutlineNotesInverseTable = "outline_notes"
	// OutlineNotesColumn is the table column denoting the outline_notes relation/edge.
	OutlineNotesColumn = "run_id"
	// SectionEvidenceTable is the table that holds the section_evidence relation/edge.
	SectionEvidenceTable = "section_evidences"
	// SectionEvidenceInverseTable is the table name for the SectionEvidence entity.
	// It exists in this package in order to avoid circular dependency with the "sectionevidence" package.
	SectionEvidenceInverseTable = "section_evidences"
	// SectionEvidenceColumn is the table column denoting the section_evidence relation/edge.
	SectionEvidenceColumn = "run_id"
	// DraftSectionsTable is the table that holds the draft_sections relation/edge.
	DraftSectionsTable = "draft_sections"
	// DraftSectionsInverseTable is the table name for the DraftSection entity.
	// It exists in this package in order to avoid circular dependency with the "draftsection" package.
	DraftSectionsInverseTable = "draft_sections"
	// DraftSectionsColumn is the table column denoting the draft_sections relation/edge.
	DraftSectionsColumn = "run_id"
	// SectionReviewsTable is the table that holds the section_reviews relation/edge.
	SectionReviewsTable = "section_reviews"
	// SectionReviewsInverseTable is the table name for the SectionReview entity.
	// It exists in this package in order to avoid circular dependency with the "sectionreview" package.
	SectionReviewsInverseTable = "section_reviews"
	// SectionReviewsColumn is the table column denoting the section_reviews relation/edge.
	SectionReviewsColumn = "run_id"
	// RunSourcesTable is the table that holds the run_sources relation/edge.
	RunSourcesTable = "run_sources"
	// RunSourcesInverseTable is the table name for the RunSource entity.
	// It exists in this package in order to avoid circular dependency with the "runsource" package.
	RunSourcesInverseTable = "run_sources"
	// RunSourcesColumn is the table column denoting the run_sources relation/edge.
	RunSourcesColumn = "run_id"
	// CheckpointsTable is the table that holds the checkpoints relation/edge.
	CheckpointsTable = "run_checkpoints"
	// CheckpointsInverseTable is the table name for the RunCheckpoint entity.
	// It exists in this package in order to avoid circular dependency with the "runcheckpoint" package.
	CheckpointsInverseTable = "run_checkpoints"
	// CheckpointsColumn is the table column denoting the checkpoints relation/edge.
	CheckpointsColumn = "run_id"
	// ArtifactsTable is the table that holds the artifacts relation/edge.
	ArtifactsTable = "artifacts"
	// ArtifactsInverseTable is the table name for the Artifact entity.
	// It exists in this package in order to avoid circular dependency with the "artifact" package.
	ArtifactsInverseTable = "artifacts"
	// ArtifactsColumn is the table column denoting the artifacts relation/edge.
	ArtifactsColumn = "run_id"
)

// Columns holds all SQL columns for run fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldProjectID,
	FieldStatus,
	FieldCurrentStage,
	FieldQuestion,
	FieldOutputType,
	FieldLlmProvider,
	FieldLlmModel,
	FieldBudgets,
	FieldUsage,
	FieldFailureReason,
	FieldErrorCode,
	FieldClientRequestID,
	FieldRetryCount,
	FieldStartedAt,
	FieldFinishedAt,
	FieldCancelRequestedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultOutputType holds the default value on creation for the "output_type" field.
	DefaultOutputType string
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusCreated is the default value of the Status enum.
const DefaultStatus = StatusCreated

// Status values.
const (
	StatusCreated   Status = "created"
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusBlocked   Status = "blocked"
	StatusFailed    Status = "failed"
	StatusSucceeded Status = "succeeded"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCreated, StatusQueued, StatusRunning, StatusBlocked, StatusFailed, StatusSucceeded, StatusCanceled:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Run queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentStage orders the results by the current_stage field.
func ByCurrentStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStage, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByOutputType orders the results by the output_type field.
func ByOutputType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputType, opts...).ToFunc()
}

// ByLlmProvider orders the results by the llm_provider field.
func ByLlmProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmProvider, opts...).ToFunc()
}

// ByLlmModel orders the results by the llm_model field.
func ByLlmModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmModel, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}

// ByClientRequestID orders the results by the client_request_id field.
func ByClientRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientRequestID, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByCancelRequestedAt orders the results by the cancel_requested_at field.
func ByCancelRequestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelRequestedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySectionsCount orders the results by sections count.
func BySectionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSectionsStep(), opts...)
	}
}

// BySections orders the results by sections terms.
func BySections(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSectionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOutlineNotesCount orders the results by outline_notes count.
func ByOutlineNotesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOutlineNotesStep(), opts...)
	}
}

// ByOutlineNotes orders the results by outline_notes terms.
func ByOutlineNotes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutlineNotesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySectionEvidenceCount orders the results by section_evidence count.
func BySectionEvidenceCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSectionEvidenceStep(), opts...)
	}
}

// BySectionEvidence orders the results by section_evidence terms.
func BySectionEvidence(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSectionEvidenceStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDraftSectionsCount orders the results by draft_sections count.
func ByDraftSectionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDraftSectionsStep(), opts...)
	}
}

// ByDraftSections orders the results by draft_sections terms.
func ByDraftSections(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDraftSectionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySectionReviewsCount orders the results by section_reviews count.
func BySectionReviewsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSectionReviewsStep(), opts...)
	}
}

// BySectionReviews orders the results by section_reviews terms.
func BySectionReviews(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSectionReviewsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRunSourcesCount orders the results by run_sources count.
func ByRunSourcesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRunSourcesStep(), opts...)
	}
}

// ByRunSources orders the results by run_sources terms.
func ByRunSources(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunSourcesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCheckpointsCount orders the results by checkpoints count.
func ByCheckpointsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCheckpointsStep(), opts...)
	}
}

// ByCheckpoints orders the results by checkpoints terms.
func ByCheckpoints(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCheckpointsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByArtifactsCount orders the results by artifacts count.
func ByArtifactsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newArtifactsStep(), opts...)
	}
}

// ByArtifacts orders the results by artifacts terms.
func ByArtifacts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArtifactsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, JobFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, RunEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newSectionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SectionsInverseTable, RunSectionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SectionsTable, SectionsColumn),
	)
}
func newOutlineNotesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutlineNotesInverseTable, OutlineNoteFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutlineNotesTable, OutlineNotesColumn),
	)
}
func newSectionEvidenceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SectionEvidenceInverseTable, SectionEvidenceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SectionEvidenceTable, SectionEvidenceColumn),
	)
}
func newDraftSectionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DraftSectionsInverseTable, DraftSectionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DraftSectionsTable, DraftSectionsColumn),
	)
}
func newSectionReviewsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SectionReviewsInverseTable, SectionReviewFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SectionReviewsTable, SectionReviewsColumn),
	)
}
func newRunSourcesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunSourcesInverseTable, RunSourceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RunSourcesTable, RunSourcesColumn),
	)
}
func newCheckpointsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CheckpointsInverseTable, RunCheckpointFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
	)
}
func newArtifactsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArtifactsInverseTable, ArtifactFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
	)
}
