package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-ai/inquiro/pkg/models"
)

func TestDeduplicate(t *testing.T) {
	t.Run("merges sources sharing a DOI", func(t *testing.T) {
		sources := []models.Source{
			{
				CanonicalID: models.CanonicalID{DOI: "10.1/x", OpenAlexID: "W1"},
				Title:       "Sleep and memory",
				Abstract:    "short",
			},
			{
				CanonicalID:    models.CanonicalID{DOI: "10.1/x", ArxivID: "2401.00001"},
				Title:          "Sleep and memory",
				Abstract:       "a much longer abstract with detail",
				CitationsCount: 42,
			},
		}

		merged := Deduplicate(sources)
		require.Len(t, merged, 1)
		assert.Equal(t, "W1", merged[0].CanonicalID.OpenAlexID)
		assert.Equal(t, "2401.00001", merged[0].CanonicalID.ArxivID)
		assert.Equal(t, "a much longer abstract with detail", merged[0].Abstract)
		assert.Equal(t, 42, merged[0].CitationsCount)
	})

	t.Run("transitive identity via later identifier", func(t *testing.T) {
		// Third source shares the arXiv id the second source added to the
		// first record.
		sources := []models.Source{
			{CanonicalID: models.CanonicalID{DOI: "10.1/y"}, Title: "A"},
			{CanonicalID: models.CanonicalID{DOI: "10.1/y", ArxivID: "2402.1"}, Title: "A"},
			{CanonicalID: models.CanonicalID{ArxivID: "2402.1"}, Title: "A"},
		}
		assert.Len(t, Deduplicate(sources), 1)
	})

	t.Run("distinct sources survive", func(t *testing.T) {
		sources := []models.Source{
			{CanonicalID: models.CanonicalID{DOI: "10.1/a"}, Title: "A"},
			{CanonicalID: models.CanonicalID{URL: "https://example.com/b"}, Title: "B"},
		}
		assert.Len(t, Deduplicate(sources), 2)
	})

	t.Run("source without identifiers is dropped", func(t *testing.T) {
		assert.Empty(t, Deduplicate([]models.Source{{Title: "no ids"}}))
	})
}

func TestBM25Index(t *testing.T) {
	docs := []string{
		"Sleep consolidates declarative memory in adults",
		"Convolutional networks for image classification",
		"Sleep deprivation impairs memory consolidation and recall",
	}
	idx := newBM25Index(docs)

	q := "sleep memory consolidation"
	s0 := idx.score(0, q)
	s1 := idx.score(1, q)
	s2 := idx.score(2, q)

	assert.Greater(t, s0, 0.0)
	assert.Zero(t, s1)
	assert.Greater(t, s2, s0, "doc matching all three terms should outrank partial match")
}

func TestTokenize(t *testing.T) {
	assert.Equal(t,
		[]string{"bm25", "ranking", "works", "fine"},
		tokenize("BM25 ranking, works (fine)!"))
	assert.Empty(t, tokenize("a b c"))
}

func TestNormalize(t *testing.T) {
	vals := []float64{2, 4, 6}
	normalize(vals)
	assert.Equal(t, []float64{0, 0.5, 1}, vals)

	flat := []float64{3, 3}
	normalize(flat)
	assert.Equal(t, []float64{1, 1}, flat)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Zero(t, CosineSimilarity([]float32{1}, []float32{1, 2}))
}

func TestDiversify(t *testing.T) {
	ranked := func(intents ...string) []ScoredSource {
		out := make([]ScoredSource, len(intents))
		for i, intent := range intents {
			out[i] = ScoredSource{
				Source: models.Source{
					CanonicalID: models.CanonicalID{DOI: string(rune('a' + i))},
					Intent:      intent,
				},
				Score: 1 - float64(i)*0.01,
			}
		}
		return out
	}

	t.Run("caps per-intent share", func(t *testing.T) {
		// 8 survey docs lead the ranking, but two intents exist, so the cap
		// is ceil(4/2)=2 per intent.
		rs := ranked("survey", "survey", "survey", "survey",
			"survey", "survey", "survey", "survey",
			"methods", "methods", "methods")
		sel := Diversify(rs, 2, 4)
		require.Len(t, sel, 4)

		counts := map[string]int{}
		for _, s := range sel {
			counts[s.Source.Intent]++
		}
		assert.Equal(t, 2, counts["survey"])
		assert.Equal(t, 2, counts["methods"])
	})

	t.Run("tops up below minimum ignoring cap", func(t *testing.T) {
		// Two intents make the cap ceil(6/2)=3, which yields only 4 picks;
		// the top-up pass fills to the minimum from the remaining survey docs.
		rs := ranked("survey", "survey", "survey", "survey",
			"survey", "survey", "methods")
		sel := Diversify(rs, 5, 6)
		require.Len(t, sel, 5)

		counts := map[string]int{}
		for _, s := range sel {
			counts[s.Source.Intent]++
		}
		assert.Equal(t, 4, counts["survey"])
		assert.Equal(t, 1, counts["methods"])
	})

	t.Run("respects maximum", func(t *testing.T) {
		rs := ranked("survey", "methods", "benchmarks", "survey", "methods",
			"benchmarks", "survey", "methods")
		sel := Diversify(rs, 2, 5)
		assert.Len(t, sel, 5)
	})

	t.Run("fewer candidates than minimum returns all", func(t *testing.T) {
		rs := ranked("survey", "methods")
		assert.Len(t, Diversify(rs, 10, 20), 2)
	})
}
