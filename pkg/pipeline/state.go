// Package pipeline runs the staged report pipeline for one claimed run:
// retrieve, outline, evidence_pack, draft, evaluate, repair (at most once),
// export. The Coordinator owns all run status transitions while it holds the
// claim; stage progress is visible through the run's event log.
package pipeline

import (
	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/textutil"
)

// State is the in-memory orchestrator state threaded through the stages.
// Stage outputs land here first; persistence happens through the services as
// each stage completes.
type State struct {
	TenantID  string `json:"tenant_id"`
	RunID     string `json:"run_id"`
	ProjectID string `json:"project_id"`

	UserQuery   string `json:"user_query"`
	OutputType  string `json:"output_type"`
	LLMProvider string `json:"llm_provider"`
	LLMModel    string `json:"llm_model"`

	QueryPlan []models.PlannedQuery `json:"query_plan,omitempty"`

	// SelectedSources maps source id (sources table) to its merged metadata,
	// SourceOrder preserving rank order.
	SelectedSources map[string]models.Source `json:"selected_sources,omitempty"`
	SourceOrder     []string                 `json:"source_order,omitempty"`

	Outline []models.OutlineSection `json:"outline,omitempty"`

	// SectionEvidence is the per-section evidence pack keyed by section id.
	SectionEvidence map[string][]models.EvidenceSnippet `json:"section_evidence,omitempty"`

	// Drafts keyed by section id.
	Drafts map[string]models.DraftedSection `json:"drafts,omitempty"`

	Reviews  []models.SectionReviewResult `json:"reviews,omitempty"`
	Decision string                       `json:"decision,omitempty"`

	RepairAttempts int `json:"repair_attempts"`
	Iteration      int `json:"iteration"`

	Warnings []string `json:"warnings,omitempty"`

	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// newState seeds the orchestrator state from the claimed run row.
func newState(r *ent.Run) *State {
	s := &State{
		TenantID:        r.TenantID,
		RunID:           r.ID,
		ProjectID:       r.ProjectID,
		UserQuery:       r.Question,
		OutputType:      r.OutputType,
		SelectedSources: map[string]models.Source{},
		SectionEvidence: map[string][]models.EvidenceSnippet{},
		Drafts:          map[string]models.DraftedSection{},
	}
	if r.LlmProvider != nil {
		s.LLMProvider = *r.LlmProvider
	}
	if r.LlmModel != nil {
		s.LLMModel = *r.LlmModel
	}
	return s
}

// addUsage accumulates LLM token counts for the final usage merge.
func (s *State) addUsage(prompt, completion int) {
	s.PromptTokens += prompt
	s.CompletionTokens += completion
}

// warn records a non-fatal problem surfaced to run.usage.warnings.
func (s *State) warn(msg string) {
	s.Warnings = append(s.Warnings, msg)
}

// evidenceIDs returns the snippet ids allowed for a section.
func (s *State) evidenceIDs(sectionID string) []string {
	snippets := s.SectionEvidence[sectionID]
	ids := make([]string, len(snippets))
	for i, sn := range snippets {
		ids[i] = sn.SnippetID
	}
	return ids
}

// summary produces the compact state description attached to stage_start and
// stage_finish events. Fixed attributes only, no deep copies.
func (s *State) summary() map[string]interface{} {
	draftWords := 0
	for _, d := range s.Drafts {
		draftWords += textutil.WordCount(d.Text)
	}
	snippets := 0
	for _, pack := range s.SectionEvidence {
		snippets += len(pack)
	}
	sum := map[string]interface{}{
		"query_count":     len(s.QueryPlan),
		"source_count":    len(s.SourceOrder),
		"section_count":   len(s.Outline),
		"snippet_count":   snippets,
		"draft_words":     draftWords,
		"repair_attempts": s.RepairAttempts,
	}
	if s.Decision != "" {
		sum["decision"] = s.Decision
	}
	return sum
}
