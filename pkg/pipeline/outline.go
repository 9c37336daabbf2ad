package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/inquiro-ai/inquiro/pkg/llm"
	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/textutil"
)

const outlineSystemPrompt = `You are a research editor planning the structure of a written report.
Respond with strict JSON: {"sections": [{"section_id": "...", "title": "...", "goal": "...", "key_points": ["..."], "suggested_evidence_themes": ["..."], "section_order": 1}]}.
Rules: the first section is the introduction, the last is the conclusion; every goal is 2-3 sentences; every section has 6-10 key points; titles are unique. No prose, no markdown.`

// outline asks the LLM for the section plan, normalizes and validates it,
// allows one corrective call, and persists run_sections and outline_notes.
func (c *Coordinator) outline(ctx context.Context, state *State, client llm.Client) error {
	minSections, maxSections := 6, 10
	if len(state.SourceOrder) < 10 {
		minSections, maxSections = 4, 6
	}

	user := c.outlineUserPrompt(state, minSections, maxSections)
	outline, err := c.requestOutline(ctx, state, client, user)
	if err != nil {
		return err
	}

	normalizeOutline(&outline)
	if violations := validateOutline(outline, minSections, maxSections); len(violations) > 0 {
		// One corrective call with the violated rules, then give up.
		corrective := fmt.Sprintf("%s\n\nYour previous outline violated these rules:\n- %s\n\nProduce a corrected outline.",
			user, strings.Join(violations, "\n- "))
		outline, err = c.requestOutline(ctx, state, client, corrective)
		if err != nil {
			return err
		}
		normalizeOutline(&outline)
		if violations := validateOutline(outline, minSections, maxSections); len(violations) > 0 {
			return fmt.Errorf("outline invalid after correction: %s", strings.Join(violations, "; "))
		}
	}

	if err := c.sections.ReplaceOutline(ctx, state.TenantID, state.RunID, outline); err != nil {
		return err
	}
	state.Outline = outline.Sections
	return nil
}

func (c *Coordinator) outlineUserPrompt(state *State, minSections, maxSections int) string {
	var titles []string
	for _, id := range state.SourceOrder {
		src := state.SelectedSources[id]
		titles = append(titles, fmt.Sprintf("- %s (%d)", src.Title, src.Year))
	}
	return fmt.Sprintf("Research question: %s\n\nAvailable sources (%d):\n%s\n\nPlan %d to %d sections.",
		state.UserQuery, len(titles), strings.Join(titles, "\n"), minSections, maxSections)
}

func (c *Coordinator) requestOutline(ctx context.Context, state *State, client llm.Client, user string) (models.Outline, error) {
	resp, err := client.Generate(ctx, llm.Request{
		System:      outlineSystemPrompt,
		User:        user,
		MaxTokens:   2048,
		Temperature: 0.3,
		ForceJSON:   true,
	})
	if err != nil {
		return models.Outline{}, err
	}
	state.addUsage(resp.PromptTokens, resp.CompletionTokens)

	var outline models.Outline
	if err := decodeJSONBlock(resp.Content, &outline); err != nil {
		return models.Outline{}, fmt.Errorf("outline response: %w", err)
	}
	return outline, nil
}

// normalizeOutline pins the first section id to "intro" and the last to
// "conclusion", and renumbers section_order to 1..N in list order.
func normalizeOutline(outline *models.Outline) {
	n := len(outline.Sections)
	if n == 0 {
		return
	}
	outline.Sections[0].SectionID = models.SectionIDIntro
	outline.Sections[n-1].SectionID = models.SectionIDConclusion
	for i := range outline.Sections {
		outline.Sections[i].Order = i + 1
	}
}

// validateOutline returns the list of violated structural rules, empty when
// the outline is acceptable.
func validateOutline(outline models.Outline, minSections, maxSections int) []string {
	var violations []string
	sections := outline.Sections

	if len(sections) < 2 {
		return []string{"outline must contain at least an intro and a conclusion section"}
	}
	if n := len(sections); n < minSections || n > maxSections {
		violations = append(violations,
			fmt.Sprintf("outline must have %d-%d sections, got %d", minSections, maxSections, n))
	}
	if sections[0].SectionID != models.SectionIDIntro {
		violations = append(violations, `the first section_id must be "intro"`)
	}
	if sections[len(sections)-1].SectionID != models.SectionIDConclusion {
		violations = append(violations, `the last section_id must be "conclusion"`)
	}

	ids := map[string]bool{}
	titles := map[string]bool{}
	for _, s := range sections {
		if ids[s.SectionID] {
			violations = append(violations, fmt.Sprintf("duplicate section_id %q", s.SectionID))
		}
		ids[s.SectionID] = true

		key := strings.ToLower(strings.TrimSpace(s.Title))
		if titles[key] {
			violations = append(violations, fmt.Sprintf("duplicate title %q", s.Title))
		}
		titles[key] = true

		if n := len(textutil.SplitSentences(s.Goal)); n < 2 || n > 3 {
			violations = append(violations,
				fmt.Sprintf("section %q: goal must be 2-3 sentences, got %d", s.SectionID, n))
		}
		if n := len(s.KeyPoints); n < 6 || n > 10 {
			violations = append(violations,
				fmt.Sprintf("section %q: key_points must have 6-10 entries, got %d", s.SectionID, n))
		}
	}

	for i, s := range sections {
		if s.Order != i+1 {
			violations = append(violations,
				fmt.Sprintf("section %q: section_order %d breaks the contiguous 1..N sequence", s.SectionID, s.Order))
			break
		}
	}
	return violations
}
