package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/inquiro-ai/inquiro/pkg/llm"
	"github.com/inquiro-ai/inquiro/pkg/models"
)

const evaluatorSystemPrompt = `You are reviewing one section of a research report against its evidence snippets.
Flag sentences that are unsupported, contradicted, missing a citation, carrying an invalid citation, citing outside the evidence pack, or overstated.
Respond with strict JSON:
{"section_id": "...", "verdict": "pass" | "fail",
 "issues": [{"sentence_index": 0, "problem": "unsupported|contradicted|missing_citation|invalid_citation|not_in_pack|overstated", "notes": "...", "citations": ["snippet_id"]}]}.
An empty issues list means the section passes. No prose, no markdown.`

// evaluate reviews every drafted section, normalizes the verdicts, persists
// SectionReviews, and aggregates the decision: any fail means
// CONTINUE_REWRITE, otherwise STOP_SUCCESS.
func (c *Coordinator) evaluate(ctx context.Context, state *State, client llm.Client) error {
	reviews := make([]models.SectionReviewResult, 0, len(state.Outline))

	for _, section := range state.Outline {
		draft, ok := state.Drafts[section.SectionID]
		if !ok {
			reviews = append(reviews, models.SectionReviewResult{
				SectionID: section.SectionID,
				Verdict:   "fail",
				Issues: []models.ReviewIssue{{
					SentenceIndex: 0,
					Problem:       "unsupported",
					Notes:         "no draft was produced for this section",
				}},
			})
			continue
		}

		resp, err := client.Generate(ctx, llm.Request{
			System:      evaluatorSystemPrompt,
			User:        evaluatorUserPrompt(section, draft, state.SectionEvidence[section.SectionID]),
			MaxTokens:   1024,
			Temperature: 0,
			ForceJSON:   true,
		})
		if err != nil {
			return err
		}
		state.addUsage(resp.PromptTokens, resp.CompletionTokens)

		var raw rawReview
		if err := decodeJSONBlock(resp.Content, &raw); err != nil {
			return fmt.Errorf("section %s review: %w", section.SectionID, err)
		}
		reviews = append(reviews, normalizeReview(section.SectionID, raw, state.evidenceIDs(section.SectionID)))
	}

	if err := c.sections.SaveReviews(ctx, state.TenantID, state.RunID, reviews); err != nil {
		return err
	}
	state.Reviews = reviews

	state.Decision = models.DecisionStopSuccess
	failed := 0
	for _, r := range reviews {
		if r.Verdict == "fail" {
			failed++
			state.Decision = models.DecisionContinueRewrite
		}
	}

	_, err := c.events.Append(ctx, state.TenantID, state.RunID, models.AppendEventInput{
		Stage:     models.StageEvaluate,
		EventType: models.EventTypeLog,
		Message:   fmt.Sprintf("Evaluated %d sections, %d failing: %s", len(reviews), failed, state.Decision),
		Payload: map[string]interface{}{
			"decision":         state.Decision,
			"failing_sections": failed,
		},
	})
	return err
}

// rawReview is the untrusted evaluator output. sentence_index arrives as
// arbitrary JSON and is coerced during normalization.
type rawReview struct {
	SectionID string `json:"section_id"`
	Verdict   string `json:"verdict"`
	Issues    []struct {
		SentenceIndex json.Number `json:"sentence_index"`
		Problem       string      `json:"problem"`
		Notes         string      `json:"notes"`
		Citations     []string    `json:"citations"`
	} `json:"issues"`
}

// normalizeReview filters unknown problem codes, coerces sentence indexes,
// drops citations outside the evidence pack, and forces the verdict to fail
// when issues remain.
func normalizeReview(sectionID string, raw rawReview, allowedIDs []string) models.SectionReviewResult {
	allowed := make(map[string]bool, len(allowedIDs))
	for _, id := range allowedIDs {
		allowed[id] = true
	}

	review := models.SectionReviewResult{
		SectionID: sectionID,
		Verdict:   strings.ToLower(strings.TrimSpace(raw.Verdict)),
	}
	if review.Verdict != "fail" {
		review.Verdict = "pass"
	}

	for _, issue := range raw.Issues {
		problem := strings.ToLower(strings.TrimSpace(issue.Problem))
		if !models.ReviewProblemCodes[problem] {
			continue
		}

		idx := 0
		if f, err := issue.SentenceIndex.Float64(); err == nil {
			idx = int(math.Max(f, 0))
		}

		var citations []string
		for _, id := range issue.Citations {
			if allowed[id] {
				citations = append(citations, id)
			}
		}

		review.Issues = append(review.Issues, models.ReviewIssue{
			SentenceIndex: idx,
			Problem:       problem,
			Notes:         strings.TrimSpace(issue.Notes),
			Citations:     citations,
		})
	}

	if len(review.Issues) > 0 {
		review.Verdict = "fail"
	}
	return review
}

func evaluatorUserPrompt(section models.OutlineSection, draft models.DraftedSection, pack []models.EvidenceSnippet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Section %s: %s\n\nSection text:\n%s\n\nEvidence snippets:\n", section.SectionID, section.Title, draft.Text)
	for _, sn := range pack {
		entry, _ := json.Marshal(map[string]string{"snippet_id": sn.SnippetID, "text": sn.Text})
		b.Write(entry)
		b.WriteByte('\n')
	}
	return b.String()
}
