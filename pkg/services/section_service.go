package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/ent/draftsection"
	"github.com/inquiro-ai/inquiro/ent/outlinenote"
	"github.com/inquiro-ai/inquiro/ent/runsection"
	"github.com/inquiro-ai/inquiro/ent/sectionevidence"
	"github.com/inquiro-ai/inquiro/ent/sectionreview"
	"github.com/inquiro-ai/inquiro/pkg/models"
)

// SectionService persists per-section pipeline state: the outline, evidence
// packs, drafts, and evaluator reviews.
type SectionService struct {
	client *ent.Client
}

// NewSectionService creates a new SectionService
func NewSectionService(client *ent.Client) *SectionService {
	return &SectionService{client: client}
}

// ReplaceOutline persists a validated outline, deleting any prior sections
// and notes for the run first so a repaired outline fully replaces the old.
// Downstream per-section rows (evidence packs, drafts, reviews) are keyed by
// section_id, so a new outline also purges them: a retried run starts its
// section state from nothing.
func (s *SectionService) ReplaceOutline(ctx context.Context, tenantID, runID string, outline models.Outline) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start outline transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.RunSection.Delete().Where(runsection.RunID(runID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete prior sections: %w", err)
	}
	if _, err := tx.OutlineNote.Delete().Where(outlinenote.RunID(runID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete prior outline notes: %w", err)
	}
	if _, err := tx.SectionEvidence.Delete().Where(sectionevidence.RunID(runID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete prior evidence: %w", err)
	}
	if _, err := tx.DraftSection.Delete().Where(draftsection.RunID(runID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete prior drafts: %w", err)
	}
	if _, err := tx.SectionReview.Delete().Where(sectionreview.RunID(runID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete prior reviews: %w", err)
	}

	for _, sec := range outline.Sections {
		if err := tx.RunSection.Create().
			SetID(uuid.NewString()).
			SetTenantID(tenantID).
			SetRunID(runID).
			SetSectionID(sec.SectionID).
			SetTitle(sec.Title).
			SetGoal(sec.Goal).
			SetSectionOrder(sec.Order).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create section %s: %w", sec.SectionID, err)
		}
		if err := tx.OutlineNote.Create().
			SetID(uuid.NewString()).
			SetTenantID(tenantID).
			SetRunID(runID).
			SetSectionID(sec.SectionID).
			SetKeyPoints(sec.KeyPoints).
			SetEvidenceThemes(sec.EvidenceThemes).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create outline note for %s: %w", sec.SectionID, err)
		}
	}

	return tx.Commit()
}

// ListSections returns the run's sections in outline order.
func (s *SectionService) ListSections(ctx context.Context, tenantID, runID string) ([]*ent.RunSection, error) {
	sections, err := s.client.RunSection.Query().
		Where(runsection.TenantID(tenantID), runsection.RunID(runID)).
		Order(ent.Asc(runsection.FieldSectionOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	return sections, nil
}

// GetOutlineNote returns the planner note for one section.
func (s *SectionService) GetOutlineNote(ctx context.Context, tenantID, runID, sectionID string) (*ent.OutlineNote, error) {
	note, err := s.client.OutlineNote.Query().
		Where(
			outlinenote.TenantID(tenantID),
			outlinenote.RunID(runID),
			outlinenote.SectionID(sectionID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("outline note for section %s: %w", sectionID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get outline note: %w", err)
	}
	return note, nil
}

// ReplaceEvidence stores every section's evidence pack in one transaction,
// dropping all prior packs for the run first. A failed pass leaves no
// partial packs behind.
func (s *SectionService) ReplaceEvidence(ctx context.Context, tenantID, runID string, packs []models.SectionEvidencePack) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start evidence transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.SectionEvidence.Delete().
		Where(sectionevidence.RunID(runID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete prior evidence: %w", err)
	}

	for _, pack := range packs {
		for i, sn := range pack.Snippets {
			if err := tx.SectionEvidence.Create().
				SetID(uuid.NewString()).
				SetTenantID(tenantID).
				SetRunID(runID).
				SetSectionID(pack.SectionID).
				SetSnippetID(sn.SnippetID).
				SetRank(i + 1).
				SetSimilarity(sn.Similarity).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to create evidence row for %s: %w", sn.SnippetID, err)
			}
		}
	}

	return tx.Commit()
}

// ListSectionEvidence returns a section's evidence pack in rank order.
func (s *SectionService) ListSectionEvidence(ctx context.Context, tenantID, runID, sectionID string) ([]*ent.SectionEvidence, error) {
	rows, err := s.client.SectionEvidence.Query().
		Where(
			sectionevidence.TenantID(tenantID),
			sectionevidence.RunID(runID),
			sectionevidence.SectionID(sectionID),
		).
		Order(ent.Asc(sectionevidence.FieldRank)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list section evidence: %w", err)
	}
	return rows, nil
}

// SaveDrafts upserts a batch of drafted sections in one transaction: either
// every section's text lands, or none does. Prior drafts for the same
// (run, section) pairs are replaced; untouched sections keep theirs.
func (s *SectionService) SaveDrafts(ctx context.Context, tenantID, runID string, drafts []models.DraftedSection) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start draft transaction: %w", err)
	}
	defer tx.Rollback()

	for _, draft := range drafts {
		if err := tx.DraftSection.Create().
			SetID(uuid.NewString()).
			SetTenantID(tenantID).
			SetRunID(runID).
			SetSectionID(draft.SectionID).
			SetText(draft.Text).
			SetSectionSummary(draft.Summary).
			OnConflictColumns(draftsection.FieldRunID, draftsection.FieldSectionID).
			Update(func(u *ent.DraftSectionUpsert) {
				u.SetText(draft.Text)
				u.SetSectionSummary(draft.Summary)
			}).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to upsert draft for section %s: %w", draft.SectionID, err)
		}
	}

	return tx.Commit()
}

// GetDraft returns the draft for one section, or ErrNotFound.
func (s *SectionService) GetDraft(ctx context.Context, tenantID, runID, sectionID string) (*ent.DraftSection, error) {
	d, err := s.client.DraftSection.Query().
		Where(
			draftsection.TenantID(tenantID),
			draftsection.RunID(runID),
			draftsection.SectionID(sectionID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("draft for section %s: %w", sectionID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	return d, nil
}

// ListDrafts returns all drafts for a run keyed by section_id.
func (s *SectionService) ListDrafts(ctx context.Context, tenantID, runID string) (map[string]*ent.DraftSection, error) {
	drafts, err := s.client.DraftSection.Query().
		Where(draftsection.TenantID(tenantID), draftsection.RunID(runID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}

	byID := make(map[string]*ent.DraftSection, len(drafts))
	for _, d := range drafts {
		byID[d.SectionID] = d
	}
	return byID, nil
}

// SaveReviews replaces the evaluator verdicts for a run. Each evaluator pass
// reviews every section, so prior verdicts are dropped wholesale.
func (s *SectionService) SaveReviews(ctx context.Context, tenantID, runID string, reviews []models.SectionReviewResult) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start review transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.SectionReview.Delete().Where(sectionreview.RunID(runID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete prior reviews: %w", err)
	}

	for _, rv := range reviews {
		issues := make([]map[string]interface{}, 0, len(rv.Issues))
		for _, is := range rv.Issues {
			issues = append(issues, map[string]interface{}{
				"sentence_index": is.SentenceIndex,
				"problem":        is.Problem,
				"notes":          is.Notes,
				"citations":      is.Citations,
			})
		}
		if err := tx.SectionReview.Create().
			SetID(uuid.NewString()).
			SetTenantID(tenantID).
			SetRunID(runID).
			SetSectionID(rv.SectionID).
			SetVerdict(sectionreview.Verdict(rv.Verdict)).
			SetIssues(issues).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to save review for section %s: %w", rv.SectionID, err)
		}
	}

	return tx.Commit()
}

// ListReviews returns the current evaluator verdicts for a run.
func (s *SectionService) ListReviews(ctx context.Context, tenantID, runID string) ([]*ent.SectionReview, error) {
	reviews, err := s.client.SectionReview.Query().
		Where(sectionreview.TenantID(tenantID), sectionreview.RunID(runID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
