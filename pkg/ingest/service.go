// Package ingest persists sources and their embedded snippet corpus.
package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/ent/source"
	"github.com/inquiro-ai/inquiro/ent/sourcesnapshot"
	"github.com/inquiro-ai/inquiro/ent/sourcesnippet"
	"github.com/inquiro-ai/inquiro/pkg/embedding"
	"github.com/inquiro-ai/inquiro/pkg/models"
)

// Service ingests sources: canonical upsert, sanitize, chunk, embed, store.
type Service struct {
	client   *ent.Client
	embedder embedding.Client
	chunking ChunkOptions
}

// NewService creates an ingest service.
func NewService(client *ent.Client, embedder embedding.Client) *Service {
	return &Service{client: client, embedder: embedder, chunking: DefaultChunkOptions}
}

// UpsertSource stores a source keyed by its canonical id, merging metadata
// when the source was already seen: prefer more-complete fields and the
// larger citation count.
func (s *Service) UpsertSource(ctx context.Context, tenantID string, src models.Source) (*ent.Source, error) {
	key := src.CanonicalID.Key()
	if key == "" {
		return nil, fmt.Errorf("source %q has no canonical identifier", src.Title)
	}

	existing, err := s.client.Source.Query().
		Where(source.TenantID(tenantID), source.CanonicalIDEQ(key)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query source: %w", err)
	}

	if ent.IsNotFound(err) {
		create := s.client.Source.Create().
			SetID(uuid.NewString()).
			SetTenantID(tenantID).
			SetCanonicalID(key).
			SetTitle(src.Title).
			SetAuthors(src.Authors).
			SetAbstract(src.Abstract).
			SetSourceType(src.SourceType).
			SetConnector(src.Connector)
		if src.CanonicalID.DOI != "" {
			create = create.SetDoi(src.CanonicalID.DOI)
		}
		if src.CanonicalID.ArxivID != "" {
			create = create.SetArxivID(src.CanonicalID.ArxivID)
		}
		if src.CanonicalID.OpenAlexID != "" {
			create = create.SetOpenalexID(src.CanonicalID.OpenAlexID)
		}
		if src.URL != "" {
			create = create.SetURL(src.URL)
		}
		if src.Year > 0 {
			create = create.SetYear(src.Year)
		}
		if src.PDFURL != "" {
			create = create.SetPdfURL(src.PDFURL)
		}
		if src.CitationsCount > 0 {
			create = create.SetCitationsCount(src.CitationsCount)
		}
		if src.ExtraMetadata != nil {
			create = create.SetExtraMetadata(src.ExtraMetadata)
		}
		created, err := create.Save(ctx)
		if err != nil {
			// Lost a race on (tenant_id, canonical_id); merge into the winner.
			if ent.IsConstraintError(err) {
				winner, qerr := s.client.Source.Query().
					Where(source.TenantID(tenantID), source.CanonicalIDEQ(key)).
					Only(ctx)
				if qerr != nil {
					return nil, fmt.Errorf("failed to load racing source: %w", qerr)
				}
				return s.mergeSource(ctx, winner, src)
			}
			return nil, fmt.Errorf("failed to create source: %w", err)
		}
		return created, nil
	}

	return s.mergeSource(ctx, existing, src)
}

// mergeSource folds new metadata into an existing row.
func (s *Service) mergeSource(ctx context.Context, existing *ent.Source, src models.Source) (*ent.Source, error) {
	update := existing.Update()
	changed := false

	if existing.Title == "" && src.Title != "" {
		update = update.SetTitle(src.Title)
		changed = true
	}
	if len(existing.Authors) == 0 && len(src.Authors) > 0 {
		update = update.SetAuthors(src.Authors)
		changed = true
	}
	if len(src.Abstract) > len(existing.Abstract) {
		update = update.SetAbstract(src.Abstract)
		changed = true
	}
	if existing.Doi == nil && src.CanonicalID.DOI != "" {
		update = update.SetDoi(src.CanonicalID.DOI)
		changed = true
	}
	if existing.ArxivID == nil && src.CanonicalID.ArxivID != "" {
		update = update.SetArxivID(src.CanonicalID.ArxivID)
		changed = true
	}
	if existing.OpenalexID == nil && src.CanonicalID.OpenAlexID != "" {
		update = update.SetOpenalexID(src.CanonicalID.OpenAlexID)
		changed = true
	}
	if existing.URL == nil && src.URL != "" {
		update = update.SetURL(src.URL)
		changed = true
	}
	if existing.Year == nil && src.Year > 0 {
		update = update.SetYear(src.Year)
		changed = true
	}
	if existing.PdfURL == nil && src.PDFURL != "" {
		update = update.SetPdfURL(src.PDFURL)
		changed = true
	}
	if src.CitationsCount > 0 && (existing.CitationsCount == nil || src.CitationsCount > *existing.CitationsCount) {
		update = update.SetCitationsCount(src.CitationsCount)
		changed = true
	}
	if !changed {
		return existing, nil
	}

	merged, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to merge source %s: %w", existing.ID, err)
	}
	return merged, nil
}

// IngestText sanitizes, chunks, embeds, and stores one source text. A repeat
// ingestion of identical text returns the existing snapshot without calling
// the embedder.
func (s *Service) IngestText(ctx context.Context, tenantID, sourceID, text string) (*ent.SourceSnapshot, error) {
	clean := Sanitize(text)
	if clean == "" {
		return nil, fmt.Errorf("source %s: no text after sanitization", sourceID)
	}

	sum := sha256.Sum256([]byte(clean))
	contentHash := hex.EncodeToString(sum[:])

	existing, err := s.client.SourceSnapshot.Query().
		Where(
			sourcesnapshot.SourceID(sourceID),
			sourcesnapshot.ContentHashEQ(contentHash),
		).
		First(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check snapshot: %w", err)
	}

	chunks := Chunk(clean, s.chunking)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("source %s: chunker produced no snippets", sourceID)
	}

	vectors, err := s.embedder.EmbedTexts(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("failed to embed snippets for source %s: %w", sourceID, err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start ingest transaction: %w", err)
	}
	defer tx.Rollback()

	snapshot, err := tx.SourceSnapshot.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetSourceID(sourceID).
		SetContentHash(contentHash).
		SetSnippetCount(len(chunks)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot: %w", err)
	}

	for i, chunk := range chunks {
		if err := tx.SourceSnippet.Create().
			SetID(uuid.NewString()).
			SetTenantID(tenantID).
			SetSourceID(sourceID).
			SetSnapshotID(snapshot.ID).
			SetOrd(i).
			SetText(chunk).
			SetEmbedding(pgvector.NewVector(vectors[i])).
			SetEmbeddingModel(s.embedder.ModelName()).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to create snippet %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ingest: %w", err)
	}

	return snapshot, nil
}

// SnippetsByIDs loads snippets by id, keyed by snippet id.
func (s *Service) SnippetsByIDs(ctx context.Context, tenantID string, ids []string) (map[string]*ent.SourceSnippet, error) {
	if len(ids) == 0 {
		return map[string]*ent.SourceSnippet{}, nil
	}
	rows, err := s.client.SourceSnippet.Query().
		Where(sourcesnippet.TenantID(tenantID), sourcesnippet.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snippets: %w", err)
	}
	byID := make(map[string]*ent.SourceSnippet, len(rows))
	for _, sn := range rows {
		byID[sn.ID] = sn
	}
	return byID, nil
}

// SnippetCount reports how many snippets exist for the given sources.
func (s *Service) SnippetCount(ctx context.Context, tenantID string, sourceIDs []string) (int, error) {
	if len(sourceIDs) == 0 {
		return 0, nil
	}
	n, err := s.client.SourceSnippet.Query().
		Where(sourcesnippet.TenantID(tenantID), sourcesnippet.SourceIDIn(sourceIDs...)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count snippets: %w", err)
	}
	return n, nil
}
