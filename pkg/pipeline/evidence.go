package pipeline

import (
	"context"
	"fmt"
	"strings"

	entsql "entgo.io/ent/dialect/sql"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/inquiro-ai/inquiro/ent/sourcesnippet"
	"github.com/inquiro-ai/inquiro/pkg/config"
	"github.com/inquiro-ai/inquiro/pkg/models"
	"github.com/inquiro-ai/inquiro/pkg/retrieval"
)

// snippetSearchLimit bounds one vector search; selection trims further.
const snippetSearchLimit = 100

// evidencePack builds the per-section evidence pack: embed a section query,
// vector-search the run's snippet corpus, select a diverse pack, and persist
// it. Sections come up in outline order; a progress event follows each one.
func (c *Coordinator) evidencePack(ctx context.Context, state *State) error {
	if len(state.Outline) == 0 {
		return fmt.Errorf("no outline sections to pack evidence for")
	}

	// Abstract-only sources that never produced snippets get one synthesized
	// from title+abstract so vector search can reach them.
	for _, id := range state.SourceOrder {
		n, err := c.ingest.SnippetCount(ctx, state.TenantID, []string{id})
		if err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		src := state.SelectedSources[id]
		text := strings.TrimSpace(src.Title + "\n" + src.Abstract)
		if text == "" {
			state.warn(fmt.Sprintf("source %s has no text to snippet", id))
			continue
		}
		if _, err := c.ingest.IngestText(ctx, state.TenantID, id, text); err != nil {
			return err
		}
	}

	queries := make([]string, len(state.Outline))
	for i, section := range state.Outline {
		queries[i] = sectionQuery(section)
	}
	vecs, err := c.embedder.EmbedTexts(ctx, queries)
	if err != nil {
		return fmt.Errorf("failed to embed section queries: %w", err)
	}

	packs := make([]models.SectionEvidencePack, 0, len(state.Outline))
	for i, section := range state.Outline {
		pack, err := c.packSection(ctx, state, vecs[i])
		if err != nil {
			return fmt.Errorf("section %s: %w", section.SectionID, err)
		}
		if len(pack) == 0 {
			state.warn(fmt.Sprintf("section %s: no evidence met the similarity floor", section.SectionID))
		}

		packs = append(packs, models.SectionEvidencePack{SectionID: section.SectionID, Snippets: pack})
		state.SectionEvidence[section.SectionID] = pack

		if _, err := c.events.Append(ctx, state.TenantID, state.RunID, models.AppendEventInput{
			Stage:     models.StageEvidencePack,
			EventType: models.EventTypeProgress,
			Message:   fmt.Sprintf("Packed evidence for section %s (%d/%d)", section.SectionID, i+1, len(state.Outline)),
			Payload: map[string]interface{}{
				"section_id":    section.SectionID,
				"snippet_count": len(pack),
			},
		}); err != nil {
			return err
		}
	}

	// One transaction for the whole stage: a failure above leaves no
	// partially written packs.
	return c.sections.ReplaceEvidence(ctx, state.TenantID, state.RunID, packs)
}

// packSection selects the evidence snippets for one section query vector.
// When the similarity floor yields too few snippets it is relaxed once.
func (c *Coordinator) packSection(ctx context.Context, state *State, queryVec []float32) ([]models.EvidenceSnippet, error) {
	minSim := c.cfg.Evidence.MinSimilarity

	pack, err := c.searchSnippets(ctx, state, queryVec, minSim)
	if err != nil {
		return nil, err
	}
	if len(pack) < c.cfg.Evidence.SnippetMin {
		pack, err = c.searchSnippets(ctx, state, queryVec, minSim-config.SimilarityRelaxStep)
		if err != nil {
			return nil, err
		}
	}
	return pack, nil
}

// searchSnippets runs one vector search over the run's selected sources and
// applies the pack selection rules: similarity floor, per-source cap, pack
// size bounds.
func (c *Coordinator) searchSnippets(ctx context.Context, state *State, queryVec []float32, minSim float64) ([]models.EvidenceSnippet, error) {
	if len(state.SourceOrder) == 0 {
		return nil, nil
	}

	vec := pgvector.NewVector(queryVec)
	rows, err := c.client.SourceSnippet.Query().
		Where(
			sourcesnippet.TenantID(state.TenantID),
			sourcesnippet.SourceIDIn(state.SourceOrder...),
		).
		Order(func(s *entsql.Selector) {
			s.OrderExpr(entsql.ExprFunc(func(b *entsql.Builder) {
				b.WriteString("embedding <=> ").Arg(vec)
			}))
		}).
		Limit(snippetSearchLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("snippet search failed: %w", err)
	}

	var pack []models.EvidenceSnippet
	perSource := map[string]int{}
	seen := map[string]bool{}
	for _, row := range rows {
		if len(pack) >= c.cfg.Evidence.SnippetMax {
			break
		}
		if seen[row.ID] {
			continue
		}
		sim := retrieval.CosineSimilarity(queryVec, row.Embedding.Slice())
		if sim < minSim {
			// Rows arrive in distance order, nothing further qualifies.
			break
		}
		if perSource[row.SourceID] >= c.cfg.Evidence.PerSourceCap {
			continue
		}
		seen[row.ID] = true
		perSource[row.SourceID]++
		pack = append(pack, models.EvidenceSnippet{
			SnippetID:  row.ID,
			SourceID:   row.SourceID,
			Text:       row.Text,
			Similarity: sim,
		})
	}
	return pack, nil
}

// sectionQuery forms the vector-search query text for a section.
func sectionQuery(section models.OutlineSection) string {
	parts := []string{section.Title, section.Goal}
	parts = append(parts, section.KeyPoints...)
	parts = append(parts, section.EvidenceThemes...)
	return strings.Join(parts, "\n")
}
