package config

// RetrieverConfig bounds the Retrieve stage: query planning, connector
// fan-out, rerank weighting, and final source selection.
type RetrieverConfig struct {
	// QueryCount is the soft upper bound on planned search queries
	// (RETRIEVER_QUERY_COUNT).
	QueryCount int

	// MaxPerConnector caps results requested from each connector per query.
	MaxPerConnector int

	// RerankTopK is the embedding fan-out cap (RETRIEVER_RERANK_TOPK),
	// hard-capped at RerankTopKMax.
	RerankTopK int

	// Rerank weights (RETRIEVER_WEIGHT_*). Normalized before use.
	WeightBM25     float64
	WeightEmbed    float64
	WeightRecency  float64
	WeightCitation float64

	// Selection bounds (RETRIEVER_MIN_SOURCES / RETRIEVER_MAX_SOURCES).
	MinSources int
	MaxSources int
}

// RerankTopKMax is the hard cap on embedding fan-out regardless of config.
const RerankTopKMax = 200

// LoadRetrieverConfig reads retriever configuration from the environment.
func LoadRetrieverConfig() *RetrieverConfig {
	cfg := DefaultRetrieverConfig()
	cfg.QueryCount = envInt("RETRIEVER_QUERY_COUNT", cfg.QueryCount)
	cfg.MaxPerConnector = envInt("RETRIEVER_MAX_PER_CONNECTOR", cfg.MaxPerConnector)
	cfg.RerankTopK = envInt("RETRIEVER_RERANK_TOPK", cfg.RerankTopK)
	if cfg.RerankTopK > RerankTopKMax {
		cfg.RerankTopK = RerankTopKMax
	}
	cfg.WeightBM25 = envFloat("RETRIEVER_WEIGHT_BM25", cfg.WeightBM25)
	cfg.WeightEmbed = envFloat("RETRIEVER_WEIGHT_EMBED", cfg.WeightEmbed)
	cfg.WeightRecency = envFloat("RETRIEVER_WEIGHT_RECENCY", cfg.WeightRecency)
	cfg.WeightCitation = envFloat("RETRIEVER_WEIGHT_CITATION", cfg.WeightCitation)
	cfg.MinSources = envInt("RETRIEVER_MIN_SOURCES", cfg.MinSources)
	cfg.MaxSources = envInt("RETRIEVER_MAX_SOURCES", cfg.MaxSources)
	return cfg
}

// DefaultRetrieverConfig returns the built-in retriever defaults.
func DefaultRetrieverConfig() *RetrieverConfig {
	return &RetrieverConfig{
		QueryCount:      8,
		MaxPerConnector: 25,
		RerankTopK:      120,
		WeightBM25:      0.55,
		WeightEmbed:     0.30,
		WeightRecency:   0.10,
		WeightCitation:  0.05,
		MinSources:      10,
		MaxSources:      20,
	}
}

// EvidenceConfig bounds the Evidence-Pack stage's per-section selection.
type EvidenceConfig struct {
	// SnippetMin / SnippetMax bound the evidence pack size per section
	// (EVIDENCE_SNIPPET_MIN / EVIDENCE_SNIPPET_MAX).
	SnippetMin int
	SnippetMax int

	// PerSourceCap limits snippets per source for diversity
	// (EVIDENCE_PER_SOURCE_CAP).
	PerSourceCap int

	// MinSimilarity is the cosine floor for vector search
	// (EVIDENCE_MIN_SIMILARITY). Relaxed by SimilarityRelaxStep once when a
	// section comes up short.
	MinSimilarity float64
}

// SimilarityRelaxStep is subtracted from MinSimilarity on the retry query.
const SimilarityRelaxStep = 0.15

// LoadEvidenceConfig reads evidence configuration from the environment.
func LoadEvidenceConfig() *EvidenceConfig {
	cfg := DefaultEvidenceConfig()
	cfg.SnippetMin = envInt("EVIDENCE_SNIPPET_MIN", cfg.SnippetMin)
	cfg.SnippetMax = envInt("EVIDENCE_SNIPPET_MAX", cfg.SnippetMax)
	cfg.PerSourceCap = envInt("EVIDENCE_PER_SOURCE_CAP", cfg.PerSourceCap)
	cfg.MinSimilarity = envFloat("EVIDENCE_MIN_SIMILARITY", cfg.MinSimilarity)
	return cfg
}

// DefaultEvidenceConfig returns the built-in evidence defaults.
func DefaultEvidenceConfig() *EvidenceConfig {
	return &EvidenceConfig{
		SnippetMin:    8,
		SnippetMax:    20,
		PerSourceCap:  3,
		MinSimilarity: 0.35,
	}
}

// DraftConfig bounds the Writer stage.
type DraftConfig struct {
	// SectionMinWords is the minimum word count per drafted section
	// (DRAFT_SECTION_MIN_WORDS).
	SectionMinWords int

	// SectionMaxTokens caps the LLM response per section
	// (DRAFT_SECTION_MAX_TOKENS).
	SectionMaxTokens int
}

// LoadDraftConfig reads draft configuration from the environment.
func LoadDraftConfig() *DraftConfig {
	cfg := DefaultDraftConfig()
	cfg.SectionMinWords = envInt("DRAFT_SECTION_MIN_WORDS", cfg.SectionMinWords)
	cfg.SectionMaxTokens = envInt("DRAFT_SECTION_MAX_TOKENS", cfg.SectionMaxTokens)
	return cfg
}

// DefaultDraftConfig returns the built-in draft defaults.
func DefaultDraftConfig() *DraftConfig {
	return &DraftConfig{
		SectionMinWords:  50,
		SectionMaxTokens: 2048,
	}
}
