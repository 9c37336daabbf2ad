// Package models holds request/response types and domain value objects shared
// between the API, services, and pipeline layers.
package models

import "time"

// Pipeline stage names, in DAG order.
const (
	StageRetrieve     = "retrieve"
	StageEvidencePack = "evidence_pack"
	StageOutline      = "outline"
	StageDraft        = "draft"
	StageEvaluate     = "evaluate"
	StageRepair       = "repair"
	StageExport       = "export"
)

// Error codes persisted on failed runs.
const (
	ErrorCodeWorkerError      = "worker_error"
	ErrorCodeEvaluationFailed = "evaluation_failed"
	ErrorCodeWorkerLost       = "worker_lost"
)

// CreateRunRequest is the body of POST /projects/:project_id/runs.
type CreateRunRequest struct {
	Question        string                 `json:"question"`
	OutputType      string                 `json:"output_type,omitempty"`
	ClientRequestID string                 `json:"client_request_id,omitempty"`
	LLMProvider     string                 `json:"llm_provider,omitempty"`
	LLMModel        string                 `json:"llm_model,omitempty"`
	BudgetOverride  map[string]interface{} `json:"budget_override,omitempty"`
}

// TransitionInput carries the optional field updates applied atomically with
// a run status transition. Nil pointers leave fields untouched.
type TransitionInput struct {
	Stage             *string
	FailureReason     *string
	ErrorCode         *string
	StartedAt         *time.Time
	FinishedAt        *time.Time
	CancelRequestedAt *time.Time

	// ClearFailure resets failure_reason/error_code (retry path).
	ClearFailure bool
	// ClearCancel resets cancel_requested_at (retry path).
	ClearCancel bool
	// IncrementRetry bumps retry_count by one.
	IncrementRetry bool
	// SkipEvent suppresses the state event emission.
	SkipEvent bool
}

// CreateProjectRequest is the body of POST /projects.
type CreateProjectRequest struct {
	Name string `json:"name"`
}
