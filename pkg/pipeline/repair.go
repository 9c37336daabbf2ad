package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/inquiro-ai/inquiro/pkg/llm"
	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/textutil"
)

// errRepairExhausted is the fixed error for a second repair attempt.
var errRepairExhausted = errors.New("repair already attempted for this run")

const repairSystemPrompt = `You are repairing flagged sentences in one section of a research report.
Only the sentences listed in the issues may change; every other sentence must be reproduced byte-identically by leaving it untouched.
Respond with strict JSON:
{"repaired_section_edits": [{"sentence_index": 0, "text": "replacement sentence with [CITE:snippet_id]."}],
 "continuity_patch": ["first transition sentence.", "second transition sentence."],
 "section_summary": "optional replacement summary."}
An edit with empty text drops that sentence. continuity_patch replaces only the first two sentences of the NEXT section and may be empty to leave it unchanged.`

// repair rewrites the failing sections' flagged sentences, patching each next
// section's opening for continuity. Runs at most once per run.
func (c *Coordinator) repair(ctx context.Context, state *State, client llm.Client) error {
	if state.RepairAttempts > 0 {
		return errRepairExhausted
	}

	failing := map[string]models.SectionReviewResult{}
	for _, r := range state.Reviews {
		if r.Verdict == "fail" {
			failing[r.SectionID] = r
		}
	}

	touched := map[string]bool{}
	for i, section := range state.Outline {
		review, ok := failing[section.SectionID]
		if !ok {
			continue
		}
		draft, ok := state.Drafts[section.SectionID]
		if !ok {
			return fmt.Errorf("section %s failed review but has no draft", section.SectionID)
		}

		issueIdx := map[int]bool{}
		for _, issue := range review.Issues {
			issueIdx[issue.SentenceIndex] = true
		}

		var nextSection *models.OutlineSection
		var nextDraft *models.DraftedSection
		if i+1 < len(state.Outline) {
			ns := state.Outline[i+1]
			if nd, ok := state.Drafts[ns.SectionID]; ok {
				nextSection, nextDraft = &ns, &nd
			}
		}

		priorSummary := ""
		if i > 0 {
			priorSummary = state.Drafts[state.Outline[i-1].SectionID].Summary
		}

		var repaired models.DraftedSection
		var patchedNext *models.DraftedSection
		var err error
		if pack := state.SectionEvidence[section.SectionID]; len(pack) == 0 {
			repaired, patchedNext = mechanicalRepair(draft, issueIdx, nextSection, nextDraft)
		} else {
			repaired, patchedNext, err = c.llmRepair(ctx, state, client, section, draft, review, priorSummary, nextSection, nextDraft)
			if err != nil {
				return err
			}
		}

		state.Drafts[repaired.SectionID] = repaired
		touched[repaired.SectionID] = true
		if patchedNext != nil {
			state.Drafts[patchedNext.SectionID] = *patchedNext
			touched[patchedNext.SectionID] = true
		}
	}

	// All edits land in one transaction after every failing section repaired
	// cleanly; a failure above leaves the round-one drafts untouched.
	if len(touched) > 0 {
		batch := make([]models.DraftedSection, 0, len(touched))
		for _, section := range state.Outline {
			if touched[section.SectionID] {
				batch = append(batch, state.Drafts[section.SectionID])
			}
		}
		if err := c.sections.SaveDrafts(ctx, state.TenantID, state.RunID, batch); err != nil {
			return err
		}
	}

	state.RepairAttempts++
	return nil
}

// mechanicalRepair handles sections without an evidence pack: drop every
// flagged sentence, synthesize a two-line summary from what remains, and
// patch the next section's opening to a generic transition.
func mechanicalRepair(draft models.DraftedSection, issueIdx map[int]bool, nextSection *models.OutlineSection, nextDraft *models.DraftedSection) (models.DraftedSection, *models.DraftedSection) {
	sentences := textutil.SplitSentences(draft.Text)
	kept := make([]string, 0, len(sentences))
	for i, s := range sentences {
		if !issueIdx[i] {
			kept = append(kept, s)
		}
	}

	repaired := models.DraftedSection{
		SectionID: draft.SectionID,
		Text:      strings.Join(kept, " "),
		Summary:   synthesizeSummary(kept),
	}

	var patched *models.DraftedSection
	if nextSection != nil && nextDraft != nil {
		patched = patchNextSection(*nextDraft, []string{
			fmt.Sprintf("Building on the discussion above, this section turns to %s.", strings.ToLower(nextSection.Title)),
		})
	}
	return repaired, patched
}

// synthesizeSummary builds a citation-free two-line summary from the first
// and last surviving sentences.
func synthesizeSummary(sentences []string) string {
	strip := func(s string) string {
		s = textutil.CollapseWhitespace(citationRE.ReplaceAllString(s, ""))
		s = strings.ReplaceAll(s, " .", ".")
		if s != "" && !strings.ContainsAny(s[len(s)-1:], ".!?") {
			s += "."
		}
		return s
	}
	switch len(sentences) {
	case 0:
		return "This section was shortened during review."
	case 1:
		return strip(sentences[0])
	default:
		return strip(sentences[0]) + " " + strip(sentences[len(sentences)-1])
	}
}

// patchNextSection replaces the next section's first two sentences with the
// given transition sentences, keeping everything after byte-identical.
func patchNextSection(next models.DraftedSection, transitions []string) *models.DraftedSection {
	sentences := textutil.SplitSentences(next.Text)
	head := 2
	if head > len(sentences) {
		head = len(sentences)
	}
	revised := append(append([]string{}, transitions...), sentences[head:]...)
	next.Text = strings.Join(revised, " ")
	return &next
}

// llmRepair asks the LLM for scoped sentence edits and validates that the
// revision stays within them.
func (c *Coordinator) llmRepair(ctx context.Context, state *State, client llm.Client, section models.OutlineSection, draft models.DraftedSection, review models.SectionReviewResult, priorSummary string, nextSection *models.OutlineSection, nextDraft *models.DraftedSection) (models.DraftedSection, *models.DraftedSection, error) {
	resp, err := client.Generate(ctx, llm.Request{
		System:      repairSystemPrompt,
		User:        repairUserPrompt(state, section, draft, review, priorSummary, nextSection, nextDraft),
		MaxTokens:   c.cfg.Draft.SectionMaxTokens,
		Temperature: 0.2,
		ForceJSON:   true,
	})
	if err != nil {
		return models.DraftedSection{}, nil, err
	}
	state.addUsage(resp.PromptTokens, resp.CompletionTokens)

	var out struct {
		Edits []struct {
			SentenceIndex int    `json:"sentence_index"`
			Text          string `json:"text"`
		} `json:"repaired_section_edits"`
		ContinuityPatch []string `json:"continuity_patch"`
		Summary         string   `json:"section_summary"`
	}
	if err := decodeJSONBlock(resp.Content, &out); err != nil {
		return models.DraftedSection{}, nil, fmt.Errorf("section %s repair: %w", section.SectionID, err)
	}

	issueIdx := map[int]bool{}
	for _, issue := range review.Issues {
		issueIdx[issue.SentenceIndex] = true
	}

	original := textutil.SplitSentences(draft.Text)
	edits := map[int]string{}
	for _, e := range out.Edits {
		if !issueIdx[e.SentenceIndex] {
			return models.DraftedSection{}, nil, fmt.Errorf(
				"section %s: repair edited sentence %d outside the issue scope", section.SectionID, e.SentenceIndex)
		}
		if e.SentenceIndex >= len(original) {
			return models.DraftedSection{}, nil, fmt.Errorf(
				"section %s: repair edit index %d out of range", section.SectionID, e.SentenceIndex)
		}
		edits[e.SentenceIndex] = strings.TrimSpace(e.Text)
	}

	revised := make([]string, 0, len(original))
	for i, s := range original {
		if text, ok := edits[i]; ok {
			if text != "" {
				revised = append(revised, text)
			}
			continue
		}
		revised = append(revised, s)
	}
	if err := validateRepairScope(original, revised, issueIdx); err != nil {
		return models.DraftedSection{}, nil, fmt.Errorf("section %s: %w", section.SectionID, err)
	}

	summary := draft.Summary
	if strings.TrimSpace(out.Summary) != "" {
		summary = out.Summary
	}
	repaired, err := c.validateDraft(section.SectionID, strings.Join(revised, " "), summary, state.evidenceIDs(section.SectionID))
	if err != nil {
		return models.DraftedSection{}, nil, err
	}

	var patched *models.DraftedSection
	if len(out.ContinuityPatch) > 0 {
		if nextSection == nil || nextDraft == nil {
			return models.DraftedSection{}, nil, fmt.Errorf(
				"section %s: continuity patch provided but there is no next section", section.SectionID)
		}
		if len(out.ContinuityPatch) > 2 {
			return models.DraftedSection{}, nil, fmt.Errorf(
				"section %s: continuity patch may replace at most the first two sentences", section.SectionID)
		}
		candidate := patchNextSection(*nextDraft, out.ContinuityPatch)

		validated, err := c.validateDraft(candidate.SectionID, candidate.Text, candidate.Summary, state.evidenceIDs(candidate.SectionID))
		if err != nil {
			return models.DraftedSection{}, nil, err
		}
		patched = &validated
	}

	return repaired, patched, nil
}

func repairUserPrompt(state *State, section models.OutlineSection, draft models.DraftedSection, review models.SectionReviewResult, priorSummary string, nextSection *models.OutlineSection, nextDraft *models.DraftedSection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Section %s: %s\n\nCurrent text (sentences are indexed from 0):\n", section.SectionID, section.Title)
	for i, s := range textutil.SplitSentences(draft.Text) {
		fmt.Fprintf(&b, "[%d] %s\n", i, s)
	}
	if priorSummary != "" {
		fmt.Fprintf(&b, "\nPrior section summary: %s\n", priorSummary)
	}

	b.WriteString("\nIssues:\n")
	for _, issue := range review.Issues {
		entry, _ := json.Marshal(issue)
		b.Write(entry)
		b.WriteByte('\n')
	}

	b.WriteString("\nEvidence snippets:\n")
	for _, sn := range state.SectionEvidence[section.SectionID] {
		entry, _ := json.Marshal(map[string]string{"snippet_id": sn.SnippetID, "text": sn.Text})
		b.Write(entry)
		b.WriteByte('\n')
	}

	if nextSection != nil && nextDraft != nil {
		fmt.Fprintf(&b, "\nNext section %s text:\n%s\nNext section summary: %s\n",
			nextSection.SectionID, nextDraft.Text, nextDraft.Summary)
		b.WriteString("Next section evidence snippets:\n")
		for _, sn := range state.SectionEvidence[nextSection.SectionID] {
			entry, _ := json.Marshal(map[string]string{"snippet_id": sn.SnippetID, "text": sn.Text})
			b.Write(entry)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
