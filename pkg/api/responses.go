package api

import (
	"time"

	"github.com/inquiro-ai/inquiro/ent"
)

// RunResponse is the run snapshot returned by run endpoints.
type RunResponse struct {
	ID                string                 `json:"id"`
	ProjectID         string                 `json:"project_id"`
	Status            string                 `json:"status"`
	CurrentStage      string                 `json:"current_stage,omitempty"`
	Question          string                 `json:"question"`
	OutputType        string                 `json:"output_type"`
	LLMProvider       string                 `json:"llm_provider,omitempty"`
	LLMModel          string                 `json:"llm_model,omitempty"`
	Budgets           map[string]interface{} `json:"budgets,omitempty"`
	Usage             map[string]interface{} `json:"usage,omitempty"`
	FailureReason     string                 `json:"failure_reason,omitempty"`
	ErrorCode         string                 `json:"error_code,omitempty"`
	RetryCount        int                    `json:"retry_count"`
	StartedAt         *time.Time             `json:"started_at,omitempty"`
	FinishedAt        *time.Time             `json:"finished_at,omitempty"`
	CancelRequestedAt *time.Time             `json:"cancel_requested_at,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
}

func toRunResponse(r *ent.Run) *RunResponse {
	resp := &RunResponse{
		ID:                r.ID,
		ProjectID:         r.ProjectID,
		Status:            string(r.Status),
		Question:          r.Question,
		OutputType:        r.OutputType,
		Budgets:           r.Budgets,
		Usage:             r.Usage,
		RetryCount:        r.RetryCount,
		StartedAt:         r.StartedAt,
		FinishedAt:        r.FinishedAt,
		CancelRequestedAt: r.CancelRequestedAt,
		CreatedAt:         r.CreatedAt,
	}
	if r.CurrentStage != nil {
		resp.CurrentStage = *r.CurrentStage
	}
	if r.LlmProvider != nil {
		resp.LLMProvider = *r.LlmProvider
	}
	if r.LlmModel != nil {
		resp.LLMModel = *r.LlmModel
	}
	if r.FailureReason != nil {
		resp.FailureReason = *r.FailureReason
	}
	if r.ErrorCode != nil {
		resp.ErrorCode = *r.ErrorCode
	}
	return resp
}

// ProjectResponse is the project representation returned by project endpoints.
type ProjectResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	LastRunID      string     `json:"last_run_id,omitempty"`
	LastRunStatus  string     `json:"last_run_status,omitempty"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toProjectResponse(p *ent.Project) *ProjectResponse {
	resp := &ProjectResponse{
		ID:             p.ID,
		Name:           p.Name,
		LastActivityAt: p.LastActivityAt,
		CreatedAt:      p.CreatedAt,
	}
	if p.LastRunID != nil {
		resp.LastRunID = *p.LastRunID
	}
	if p.LastRunStatus != nil {
		resp.LastRunStatus = *p.LastRunStatus
	}
	return resp
}

// ArtifactResponse is one artifact row, inline content included.
type ArtifactResponse struct {
	ID        string                 `json:"id"`
	RunID     string                 `json:"run_id,omitempty"`
	Type      string                 `json:"type"`
	BlobRef   string                 `json:"blob_ref"`
	MimeType  string                 `json:"mime_type"`
	SizeBytes int64                  `json:"size_bytes"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

func toArtifactResponse(a *ent.Artifact) *ArtifactResponse {
	resp := &ArtifactResponse{
		ID:        a.ID,
		Type:      a.Type,
		BlobRef:   a.BlobRef,
		MimeType:  a.MimeType,
		SizeBytes: a.SizeBytes,
		Metadata:  a.Metadata,
		CreatedAt: a.CreatedAt,
	}
	if a.RunID != nil {
		resp.RunID = *a.RunID
	}
	return resp
}
