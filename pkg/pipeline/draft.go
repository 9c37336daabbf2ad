package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/inquiro-ai/inquiro/pkg/llm"
	"github.com/inquiro-ai/inquiro/pkg/models"
)

const writerSystemPrompt = `You are writing one section of a research report.
Rules:
- Every factual sentence ends with one or more [CITE:<snippet_id>] tokens referencing the provided evidence snippets.
- Citations appear only at the end of a sentence, never mid-sentence.
- No headings, no bullet lists; flowing prose only.
- The first 1-2 sentences are a narrative transition from the prior section summary.
- The last sentence bridges to the next section.
Respond with strict JSON: {"section_id": "...", "section_text": "...", "section_summary": "...", "status": "ok"}.
section_summary is exactly 1-3 sentences, no citations, each ending in terminal punctuation.`

// draft writes every section in outline order, carrying a rolling prior
// summary, and validates citations, placement, length, and summary shape.
// Sections persist together in one transaction once every one validates, so
// a mid-stage failure leaves no partial drafts.
func (c *Coordinator) draft(ctx context.Context, state *State, client llm.Client) error {
	priorSummary := ""
	drafts := make([]models.DraftedSection, 0, len(state.Outline))
	for i, section := range state.Outline {
		pack := state.SectionEvidence[section.SectionID]
		next := ""
		if i+1 < len(state.Outline) {
			next = state.Outline[i+1].Title
		}

		resp, err := client.Generate(ctx, llm.Request{
			System:      writerSystemPrompt,
			User:        writerUserPrompt(state.UserQuery, section, priorSummary, next, pack),
			MaxTokens:   c.cfg.Draft.SectionMaxTokens,
			Temperature: 0.4,
			ForceJSON:   true,
		})
		if err != nil {
			return err
		}
		state.addUsage(resp.PromptTokens, resp.CompletionTokens)

		var out struct {
			SectionID string `json:"section_id"`
			Text      string `json:"section_text"`
			Summary   string `json:"section_summary"`
			Status    string `json:"status"`
		}
		if err := decodeJSONBlock(resp.Content, &out); err != nil {
			return fmt.Errorf("section %s: %w", section.SectionID, err)
		}

		drafted, err := c.validateDraft(section.SectionID, out.Text, out.Summary, state.evidenceIDs(section.SectionID))
		if err != nil {
			return err
		}

		drafts = append(drafts, drafted)
		state.Drafts[section.SectionID] = drafted
		priorSummary = drafted.Summary
	}
	return c.sections.SaveDrafts(ctx, state.TenantID, state.RunID, drafts)
}

// validateDraft runs the writer validation chain on one section's output.
func (c *Coordinator) validateDraft(sectionID, text, summary string, allowedIDs []string) (models.DraftedSection, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.DraftedSection{}, fmt.Errorf("section %s: empty section_text", sectionID)
	}

	resolved, err := resolveCitations(text, allowedIDs)
	if err != nil {
		return models.DraftedSection{}, fmt.Errorf("section %s: %w", sectionID, err)
	}
	if err := checkCitationPlacement(resolved); err != nil {
		return models.DraftedSection{}, fmt.Errorf("section %s: %w", sectionID, err)
	}
	if err := checkDraftLength(resolved, c.cfg.Draft.SectionMinWords); err != nil {
		return models.DraftedSection{}, fmt.Errorf("section %s: %w", sectionID, err)
	}
	if err := checkSectionSummary(summary); err != nil {
		return models.DraftedSection{}, fmt.Errorf("section %s: %w", sectionID, err)
	}

	return models.DraftedSection{
		SectionID: sectionID,
		Text:      resolved,
		Summary:   strings.TrimSpace(summary),
	}, nil
}

// writerUserPrompt assembles the per-section writer input.
func writerUserPrompt(question string, section models.OutlineSection, priorSummary, nextTitle string, pack []models.EvidenceSnippet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Report question: %s\n\n", question)
	fmt.Fprintf(&b, "Section %d: %s (id: %s)\nGoal: %s\n", section.Order, section.Title, section.SectionID, section.Goal)
	if len(section.KeyPoints) > 0 {
		fmt.Fprintf(&b, "Key points:\n- %s\n", strings.Join(section.KeyPoints, "\n- "))
	}
	if priorSummary != "" {
		fmt.Fprintf(&b, "\nPrior section summary: %s\n", priorSummary)
	}
	if nextTitle != "" {
		fmt.Fprintf(&b, "Next section: %s\n", nextTitle)
	}

	b.WriteString("\nEvidence snippets:\n")
	if len(pack) == 0 {
		b.WriteString("(none available; write cautiously and cite nothing)\n")
	}
	for _, sn := range pack {
		entry, _ := json.Marshal(map[string]string{"snippet_id": sn.SnippetID, "text": sn.Text})
		b.Write(entry)
		b.WriteByte('\n')
	}
	return b.String()
}
