package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/services"
)

// export assembles the final Markdown report, resolves citation tokens to
// sequential footnotes, upserts the report_md artifact, and records usage
// counters and warnings on the run. Missing drafts become warnings rather
// than failures.
func (c *Coordinator) export(ctx context.Context, state *State) error {
	report, sourcesCited := c.assembleReport(ctx, state)

	artifact, err := c.artifacts.Upsert(ctx, state.TenantID, state.ProjectID, state.RunID, services.UpsertInput{
		Type:     "report_md",
		MimeType: "text/markdown",
		Content:  report,
		Metadata: map[string]interface{}{
			"section_count": len(state.Outline),
			"source_count":  len(state.SourceOrder),
			"sources_cited": sourcesCited,
		},
	})
	if err != nil {
		return err
	}

	usage := map[string]interface{}{
		"prompt_tokens":     state.PromptTokens,
		"completion_tokens": state.CompletionTokens,
		"source_count":      len(state.SourceOrder),
		"repair_attempts":   state.RepairAttempts,
	}
	if len(state.Warnings) > 0 {
		usage["warnings"] = state.Warnings
		usage["with_warnings"] = true
	}
	if _, err := c.runs.MergeUsage(ctx, state.TenantID, state.RunID, usage); err != nil {
		return err
	}

	_, err = c.events.Append(ctx, state.TenantID, state.RunID, models.AppendEventInput{
		Stage:     models.StageExport,
		EventType: models.EventTypeLog,
		Message:   "export.completed",
		Payload: map[string]interface{}{
			"artifact_id":   artifact.ID,
			"size_bytes":    artifact.SizeBytes,
			"warning_count": len(state.Warnings),
		},
	})
	return err
}

// assembleReport renders the report body and returns it with the count of
// distinct sources cited.
func (c *Coordinator) assembleReport(ctx context.Context, state *State) (string, int) {
	footnotes := newFootnoteTable(state, c.snippetSourceLookup(ctx, state))

	var b strings.Builder
	fmt.Fprintf(&b, "# Research Report: %s\n", state.UserQuery)

	for _, section := range state.Outline {
		fmt.Fprintf(&b, "\n## %d. %s\n\n", section.Order, section.Title)

		draft, ok := state.Drafts[section.SectionID]
		if !ok {
			state.warn(fmt.Sprintf("missing draft for section %s", section.SectionID))
			b.WriteString("_This section could not be drafted._\n")
			continue
		}
		b.WriteString(footnotes.substitute(draft.Text))
		b.WriteByte('\n')
	}

	if refs := footnotes.references(); refs != "" {
		b.WriteString("\n## References\n\n")
		b.WriteString(refs)
	}
	return b.String(), len(footnotes.order)
}

// snippetSourceLookup maps every cited snippet id to its source id, using
// the in-memory evidence packs first and the store for anything missed.
func (c *Coordinator) snippetSourceLookup(ctx context.Context, state *State) map[string]string {
	bySnippet := map[string]string{}
	var unknown []string
	for _, pack := range state.SectionEvidence {
		for _, sn := range pack {
			bySnippet[sn.SnippetID] = sn.SourceID
		}
	}
	for _, draft := range state.Drafts {
		for _, id := range citationIDs(draft.Text) {
			if _, ok := bySnippet[id]; !ok {
				unknown = append(unknown, id)
			}
		}
	}
	if len(unknown) > 0 {
		rows, err := c.ingest.SnippetsByIDs(ctx, state.TenantID, unknown)
		if err != nil {
			c.logger.Warn("failed to resolve cited snippets", "run_id", state.RunID, "error", err)
		} else {
			for id, row := range rows {
				bySnippet[id] = row.SourceID
			}
		}
	}
	return bySnippet
}

// footnoteTable numbers sources in order of first citation.
type footnoteTable struct {
	state     *State
	bySnippet map[string]string
	numbers   map[string]int // source id -> footnote number
	order     []string       // source ids in footnote order
}

func newFootnoteTable(state *State, bySnippet map[string]string) *footnoteTable {
	return &footnoteTable{
		state:     state,
		bySnippet: bySnippet,
		numbers:   map[string]int{},
	}
}

// substitute replaces every [CITE:<snippet_id>] with its source's footnote
// marker, allocating numbers on first sight. Unresolvable citations degrade
// to nothing and record a warning.
func (t *footnoteTable) substitute(text string) string {
	return citationRE.ReplaceAllStringFunc(text, func(tok string) string {
		snippetID := citationRE.FindStringSubmatch(tok)[1]
		sourceID, ok := t.bySnippet[snippetID]
		if !ok {
			t.state.warn(fmt.Sprintf("citation %s could not be resolved to a source", snippetID))
			return ""
		}
		n, ok := t.numbers[sourceID]
		if !ok {
			n = len(t.order) + 1
			t.numbers[sourceID] = n
			t.order = append(t.order, sourceID)
		}
		return fmt.Sprintf("[^%d]", n)
	})
}

// references renders the footnote list for every cited source.
func (t *footnoteTable) references() string {
	var b strings.Builder
	for i, sourceID := range t.order {
		src, ok := t.state.SelectedSources[sourceID]
		if !ok {
			fmt.Fprintf(&b, "[^%d]: (source %s)\n", i+1, sourceID)
			continue
		}
		fmt.Fprintf(&b, "[^%d]: %s", i+1, src.Title)
		if len(src.Authors) > 0 {
			fmt.Fprintf(&b, ", %s", strings.Join(src.Authors, ", "))
		}
		if src.Year > 0 {
			fmt.Fprintf(&b, " (%d)", src.Year)
		}
		if src.URL != "" {
			fmt.Fprintf(&b, ". %s", src.URL)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
