package retrieval

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-ai/inquiro/ent/sourceembedding"
	"github.com/inquiro-ai/inquiro/pkg/config"
	"github.com/inquiro-ai/inquiro/pkg/models"
	testdb "github.com/inquiro-ai/inquiro/test/database"
)

const testTenant = "tenant-1"

// countingEmbedder returns deterministic unit vectors and counts how many
// texts it was asked to embed.
type countingEmbedder struct {
	calls int
	texts int
}

func (e *countingEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	e.calls++
	e.texts += len(texts)
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, 1536)
		// Bucket by first byte so different texts get different directions.
		if len(text) > 0 {
			vec[int(text[0])%8] = 1
		} else {
			vec[0] = 1
		}
		out[i] = vec
	}
	return out, nil
}

func (e *countingEmbedder) ModelName() string { return "test-embed-small" }
func (e *countingEmbedder) Dimensions() int   { return 1536 }

func testSources(n int) []models.Source {
	out := make([]models.Source, n)
	for i := range out {
		out[i] = models.Source{
			CanonicalID:    models.CanonicalID{DOI: fmt.Sprintf("10.1/doc-%d", i)},
			Title:          fmt.Sprintf("Sleep study %d on memory consolidation", i),
			Abstract:       "Sleep consolidates memory. Evidence from randomized trials.",
			Year:           2015 + i%10,
			CitationsCount: i * 3,
		}
	}
	return out
}

func TestReranker_Rank(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	embedder := &countingEmbedder{}
	reranker := NewReranker(client.Client, embedder, config.DefaultRetrieverConfig())

	plan := []models.PlannedQuery{
		{Intent: "survey", Query: "sleep memory consolidation survey"},
		{Intent: "methods", Query: "randomized trial methodology"},
	}
	sources := testSources(6)

	ranked, err := reranker.Rank(ctx, testTenant, "how does sleep affect memory", plan, sources)
	require.NoError(t, err)
	require.Len(t, ranked, 6)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
	for _, s := range ranked {
		assert.NotEmpty(t, s.Source.Intent, "best-query intent should be tagged")
		assert.NotEmpty(t, s.Source.Query)
	}

	// All six documents plus the user query were embedded.
	assert.Equal(t, 7, embedder.texts)

	cached, err := client.Client.SourceEmbedding.Query().
		Where(sourceembedding.TenantID(testTenant)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, cached)
}

func TestReranker_Rank_CacheHit(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	embedder := &countingEmbedder{}
	reranker := NewReranker(client.Client, embedder, config.DefaultRetrieverConfig())

	plan := []models.PlannedQuery{{Intent: "survey", Query: "sleep memory"}}
	sources := testSources(4)

	_, err := reranker.Rank(ctx, testTenant, "sleep and memory", plan, sources)
	require.NoError(t, err)
	warm := embedder.texts

	// Second rank over the same sources embeds only the user query.
	_, err = reranker.Rank(ctx, testTenant, "sleep and memory", plan, sources)
	require.NoError(t, err)
	assert.Equal(t, warm+1, embedder.texts)
}

func TestReranker_Rank_CacheRefreshOnTextChange(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	embedder := &countingEmbedder{}
	reranker := NewReranker(client.Client, embedder, config.DefaultRetrieverConfig())

	plan := []models.PlannedQuery{{Intent: "survey", Query: "sleep memory"}}
	sources := testSources(2)

	_, err := reranker.Rank(ctx, testTenant, "sleep", plan, sources)
	require.NoError(t, err)
	warm := embedder.texts

	// A changed abstract invalidates that source's cache entry.
	sources[0].Abstract = "Revised abstract with new findings."
	_, err = reranker.Rank(ctx, testTenant, "sleep", plan, sources)
	require.NoError(t, err)
	assert.Equal(t, warm+2, embedder.texts, "one refreshed doc plus the user query")
}

func TestReranker_Rank_TopKCap(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	embedder := &countingEmbedder{}
	cfg := config.DefaultRetrieverConfig()
	cfg.RerankTopK = 3
	reranker := NewReranker(client.Client, embedder, cfg)

	plan := []models.PlannedQuery{{Intent: "survey", Query: "sleep memory"}}
	ranked, err := reranker.Rank(ctx, testTenant, "sleep", plan, testSources(10))
	require.NoError(t, err)

	assert.Len(t, ranked, 3)
	assert.Equal(t, 4, embedder.texts, "three docs plus the user query")
}
