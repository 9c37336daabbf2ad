package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-ai/inquiro/pkg/models"
	testdb "github.com/inquiro-ai/inquiro/test/database"
)

func setupSectionFixture(t *testing.T) (*SectionService, string) {
	client := testdb.NewTestClient(t)
	events := NewEventService(client.Client)
	runs := NewRunService(client.Client, events)

	p, err := NewProjectService(client.Client).Create(context.Background(), testTenant, "sections-project")
	require.NoError(t, err)
	r, _, err := runs.Create(context.Background(), testTenant, p.ID, models.CreateRunRequest{Question: "q"})
	require.NoError(t, err)

	return NewSectionService(client.Client), r.ID
}

func testOutline() models.Outline {
	return models.Outline{Sections: []models.OutlineSection{
		{SectionID: "intro", Title: "Introduction", Goal: "Frame the question.", KeyPoints: []string{"scope"}, EvidenceThemes: []string{"overview"}, Order: 1},
		{SectionID: "mechanisms", Title: "Mechanisms", Goal: "Explain the mechanisms.", KeyPoints: []string{"consolidation"}, EvidenceThemes: []string{"hippocampus"}, Order: 2},
		{SectionID: "conclusion", Title: "Conclusion", Goal: "Summarize findings.", KeyPoints: []string{"synthesis"}, EvidenceThemes: []string{"open questions"}, Order: 3},
	}}
}

func TestSectionService_ReplaceOutline(t *testing.T) {
	ctx := context.Background()
	sections, runID := setupSectionFixture(t)

	require.NoError(t, sections.ReplaceOutline(ctx, testTenant, runID, testOutline()))

	got, err := sections.ListSections(ctx, testTenant, runID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "intro", got[0].SectionID)
	assert.Equal(t, "conclusion", got[2].SectionID)

	note, err := sections.GetOutlineNote(ctx, testTenant, runID, "mechanisms")
	require.NoError(t, err)
	assert.Equal(t, []string{"consolidation"}, note.KeyPoints)

	// A repaired outline replaces the old one wholesale.
	repaired := testOutline()
	repaired.Sections = repaired.Sections[:2]
	repaired.Sections[1] = models.OutlineSection{
		SectionID: "conclusion", Title: "Conclusion", Goal: "Wrap up.",
		KeyPoints: []string{"summary"}, EvidenceThemes: []string{"gaps"}, Order: 2,
	}
	require.NoError(t, sections.ReplaceOutline(ctx, testTenant, runID, repaired))

	got, err = sections.ListSections(ctx, testTenant, runID)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestSectionService_EvidenceAndDrafts(t *testing.T) {
	ctx := context.Background()
	sections, runID := setupSectionFixture(t)

	require.NoError(t, sections.ReplaceEvidence(ctx, testTenant, runID, []models.SectionEvidencePack{
		{SectionID: "intro", Snippets: []models.EvidenceSnippet{
			{SnippetID: "sn-1", Similarity: 0.9},
			{SnippetID: "sn-2", Similarity: 0.8},
		}},
		{SectionID: "mechanisms", Snippets: []models.EvidenceSnippet{
			{SnippetID: "sn-3", Similarity: 0.7},
		}},
	}))

	pack, err := sections.ListSectionEvidence(ctx, testTenant, runID, "intro")
	require.NoError(t, err)
	require.Len(t, pack, 2)
	assert.Equal(t, 1, pack[0].Rank)
	assert.Equal(t, "sn-1", pack[0].SnippetID)

	// A second pass replaces every pack wholesale.
	require.NoError(t, sections.ReplaceEvidence(ctx, testTenant, runID, []models.SectionEvidencePack{
		{SectionID: "intro", Snippets: []models.EvidenceSnippet{
			{SnippetID: "sn-4", Similarity: 0.95},
		}},
	}))
	pack, err = sections.ListSectionEvidence(ctx, testTenant, runID, "intro")
	require.NoError(t, err)
	require.Len(t, pack, 1)
	assert.Equal(t, "sn-4", pack[0].SnippetID)
	stale, err := sections.ListSectionEvidence(ctx, testTenant, runID, "mechanisms")
	require.NoError(t, err)
	assert.Empty(t, stale)

	// A draft batch upserts over prior text for the same sections.
	require.NoError(t, sections.SaveDrafts(ctx, testTenant, runID, []models.DraftedSection{
		{SectionID: "intro", Text: "first [CITE:sn-1].", Summary: "First pass."},
		{SectionID: "mechanisms", Text: "mechanisms [CITE:sn-3].", Summary: "Mechanisms."},
	}))
	require.NoError(t, sections.SaveDrafts(ctx, testTenant, runID, []models.DraftedSection{
		{SectionID: "intro", Text: "second [CITE:sn-2].", Summary: "Repaired."},
	}))

	d, err := sections.GetDraft(ctx, testTenant, runID, "intro")
	require.NoError(t, err)
	assert.Equal(t, "second [CITE:sn-2].", d.Text)

	drafts, err := sections.ListDrafts(ctx, testTenant, runID)
	require.NoError(t, err)
	assert.Len(t, drafts, 2)
	assert.Equal(t, "mechanisms [CITE:sn-3].", drafts["mechanisms"].Text)
}

// A fresh outline drops every downstream per-section row, so a retried run
// cannot accumulate evidence, drafts, or reviews keyed by defunct sections.
func TestSectionService_ReplaceOutlinePurgesSectionState(t *testing.T) {
	ctx := context.Background()
	sections, runID := setupSectionFixture(t)

	require.NoError(t, sections.ReplaceOutline(ctx, testTenant, runID, testOutline()))
	require.NoError(t, sections.ReplaceEvidence(ctx, testTenant, runID, []models.SectionEvidencePack{
		{SectionID: "mechanisms", Snippets: []models.EvidenceSnippet{{SnippetID: "sn-1", Similarity: 0.9}}},
	}))
	require.NoError(t, sections.SaveDrafts(ctx, testTenant, runID, []models.DraftedSection{
		{SectionID: "mechanisms", Text: "old text [CITE:sn-1].", Summary: "Old."},
	}))
	require.NoError(t, sections.SaveReviews(ctx, testTenant, runID, []models.SectionReviewResult{
		{SectionID: "mechanisms", Verdict: "fail"},
	}))

	require.NoError(t, sections.ReplaceOutline(ctx, testTenant, runID, testOutline()))

	stale, err := sections.ListSectionEvidence(ctx, testTenant, runID, "mechanisms")
	require.NoError(t, err)
	assert.Empty(t, stale)
	drafts, err := sections.ListDrafts(ctx, testTenant, runID)
	require.NoError(t, err)
	assert.Empty(t, drafts)
	reviews, err := sections.ListReviews(ctx, testTenant, runID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestSectionService_SaveReviews(t *testing.T) {
	ctx := context.Background()
	sections, runID := setupSectionFixture(t)

	require.NoError(t, sections.SaveReviews(ctx, testTenant, runID, []models.SectionReviewResult{
		{SectionID: "intro", Verdict: "fail", Issues: []models.ReviewIssue{
			{SentenceIndex: 2, Problem: "unsupported", Notes: "claim lacks a citation"},
		}},
		{SectionID: "conclusion", Verdict: "pass"},
	}))

	reviews, err := sections.ListReviews(ctx, testTenant, runID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	// Second evaluator pass replaces all verdicts.
	require.NoError(t, sections.SaveReviews(ctx, testTenant, runID, []models.SectionReviewResult{
		{SectionID: "intro", Verdict: "pass"},
	}))
	reviews, err = sections.ListReviews(ctx, testTenant, runID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "pass", string(reviews[0].Verdict))
}
