package models

// Evaluator decisions aggregated over all section reviews.
const (
	DecisionStopSuccess     = "STOP_SUCCESS"
	DecisionContinueRewrite = "CONTINUE_REWRITE"
)

// Issue problem codes accepted from the evaluator; anything else is dropped
// during normalization.
var ReviewProblemCodes = map[string]bool{
	"unsupported":      true,
	"contradicted":     true,
	"missing_citation": true,
	"invalid_citation": true,
	"not_in_pack":      true,
	"overstated":       true,
}

// ReviewIssue is one normalized evaluator finding scoped to a sentence.
type ReviewIssue struct {
	SentenceIndex int      `json:"sentence_index"`
	Problem       string   `json:"problem"`
	Notes         string   `json:"notes,omitempty"`
	Citations     []string `json:"citations,omitempty"`
}

// SectionReviewResult is the evaluator verdict for one section.
type SectionReviewResult struct {
	SectionID string        `json:"section_id"`
	Verdict   string        `json:"verdict"`
	Issues    []ReviewIssue `json:"issues,omitempty"`
}
