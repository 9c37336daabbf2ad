package retrieval

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/inquiro-ai/inquiro/ent"
	"github.com/inquiro-ai/inquiro/ent/sourceembedding"
	"github.com/inquiro-ai/inquiro/pkg/config"
	"github.com/inquiro-ai/inquiro/pkg/embedding"
	"github.com/inquiro-ai/inquiro/pkg/models"
)

// ScoredSource is one source with its rerank breakdown.
type ScoredSource struct {
	Source models.Source
	Score  float64
	BM25   float64
	CosSim float64
}

// Reranker orders deduplicated sources by a weighted blend of BM25,
// embedding similarity to the user query, recency, and citation count.
// Document embeddings are cached in source_embeddings keyed by
// (tenant_id, canonical_id, embedding_model) and refreshed when the
// title+abstract hash changes.
type Reranker struct {
	client   *ent.Client
	embedder embedding.Client
	cfg      *config.RetrieverConfig
}

// NewReranker creates a reranker.
func NewReranker(client *ent.Client, embedder embedding.Client, cfg *config.RetrieverConfig) *Reranker {
	if cfg == nil {
		cfg = config.DefaultRetrieverConfig()
	}
	return &Reranker{client: client, embedder: embedder, cfg: cfg}
}

// Rank scores sources against the query plan and the user query. Each
// returned source carries the intent and query of its best-scoring planned
// query. Results are sorted by blended score, best first.
func (r *Reranker) Rank(ctx context.Context, tenantID, userQuery string, plan []models.PlannedQuery, sources []models.Source) ([]ScoredSource, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	docs := make([]string, len(sources))
	for i, src := range sources {
		docs[i] = src.Title + "\n" + src.Abstract
	}
	idx := newBM25Index(docs)

	scored := make([]ScoredSource, len(sources))
	for i, src := range sources {
		best := -1.0
		for _, q := range plan {
			s := idx.score(i, q.Query)
			if s > best {
				best = s
				src.Intent = q.Intent
				src.Query = q.Query
			}
		}
		scored[i] = ScoredSource{Source: src, BM25: math.Max(best, 0)}
	}

	sort.SliceStable(scored, func(a, b int) bool { return scored[a].BM25 > scored[b].BM25 })

	topK := r.cfg.RerankTopK
	if topK > config.RerankTopKMax {
		topK = config.RerankTopKMax
	}
	if topK > len(scored) {
		topK = len(scored)
	}
	top := scored[:topK]

	docVecs, err := r.resolveEmbeddings(ctx, tenantID, top)
	if err != nil {
		return nil, err
	}

	queryVecs, err := r.embedder.EmbedTexts(ctx, []string{userQuery})
	if err != nil {
		return nil, fmt.Errorf("failed to embed user query: %w", err)
	}
	queryVec := queryVecs[0]

	for i := range top {
		if vec, ok := docVecs[top[i].Source.CanonicalID.Key()]; ok {
			top[i].CosSim = CosineSimilarity(queryVec, vec)
		}
	}

	r.blendScores(top)
	sort.SliceStable(top, func(a, b int) bool { return top[a].Score > top[b].Score })
	return top, nil
}

// resolveEmbeddings returns a document vector per canonical key, serving
// cache hits whose text_hash still matches and batch-embedding the rest.
func (r *Reranker) resolveEmbeddings(ctx context.Context, tenantID string, top []ScoredSource) (map[string][]float32, error) {
	model := r.embedder.ModelName()

	keys := make([]string, 0, len(top))
	hashes := make(map[string]string, len(top))
	texts := make(map[string]string, len(top))
	for _, s := range top {
		key := s.Source.CanonicalID.Key()
		text := s.Source.Title + "\n" + s.Source.Abstract
		sum := sha256.Sum256([]byte(text))
		keys = append(keys, key)
		hashes[key] = hex.EncodeToString(sum[:])
		texts[key] = text
	}

	cached, err := r.client.SourceEmbedding.Query().
		Where(
			sourceembedding.TenantID(tenantID),
			sourceembedding.CanonicalIDIn(keys...),
			sourceembedding.EmbeddingModel(model),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query embedding cache: %w", err)
	}

	vecs := make(map[string][]float32, len(keys))
	for _, row := range cached {
		if row.TextHash == hashes[row.CanonicalID] {
			vecs[row.CanonicalID] = row.Embedding.Slice()
		}
	}

	var missing []string
	for _, key := range keys {
		if _, ok := vecs[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return vecs, nil
	}

	batch := make([]string, len(missing))
	for i, key := range missing {
		batch[i] = texts[key]
	}
	embedded, err := r.embedder.EmbedTexts(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to embed %d sources: %w", len(missing), err)
	}

	for i, key := range missing {
		vecs[key] = embedded[i]
		err := r.client.SourceEmbedding.Create().
			SetID(uuid.NewString()).
			SetTenantID(tenantID).
			SetCanonicalID(key).
			SetEmbeddingModel(model).
			SetEmbedding(pgvector.NewVector(embedded[i])).
			SetTextHash(hashes[key]).
			OnConflictColumns(
				sourceembedding.FieldTenantID,
				sourceembedding.FieldCanonicalID,
				sourceembedding.FieldEmbeddingModel,
			).
			Update(func(u *ent.SourceEmbeddingUpsert) {
				u.SetEmbedding(pgvector.NewVector(embedded[i]))
				u.SetTextHash(hashes[key])
				u.SetUpdatedAt(time.Now())
			}).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert embedding cache for %s: %w", key, err)
		}
	}
	return vecs, nil
}

// blendScores fills Score with the weighted, min-max-normalized blend.
func (r *Reranker) blendScores(top []ScoredSource) {
	bm25 := make([]float64, len(top))
	cos := make([]float64, len(top))
	recency := make([]float64, len(top))
	citation := make([]float64, len(top))
	for i, s := range top {
		bm25[i] = s.BM25
		cos[i] = s.CosSim
		recency[i] = float64(s.Source.Year)
		citation[i] = math.Log1p(float64(s.Source.CitationsCount))
	}
	normalize(bm25)
	normalize(cos)
	normalize(recency)
	normalize(citation)

	wSum := r.cfg.WeightBM25 + r.cfg.WeightEmbed + r.cfg.WeightRecency + r.cfg.WeightCitation
	if wSum <= 0 {
		wSum = 1
	}
	for i := range top {
		top[i].Score = (r.cfg.WeightBM25*bm25[i] +
			r.cfg.WeightEmbed*cos[i] +
			r.cfg.WeightRecency*recency[i] +
			r.cfg.WeightCitation*citation[i]) / wSum
	}
}

// normalize rescales values to [0, 1] in place. A constant series maps to 1
// so the component neither rewards nor penalizes anyone.
func normalize(vals []float64) {
	if len(vals) == 0 {
		return
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		for i := range vals {
			vals[i] = 1
		}
		return
	}
	for i := range vals {
		vals[i] = (vals[i] - lo) / (hi - lo)
	}
}

// CosineSimilarity computes the cosine similarity of two vectors, 0 when
// shapes mismatch or either vector is zero.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
