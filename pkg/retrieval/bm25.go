package retrieval

import (
	"math"
	"strings"
	"unicode"
)

// BM25 parameters, standard values.
const (
	bm25K1 = 1.5
	bm25B  = 0.75
)

// bm25Index scores documents against tokenized queries using Okapi BM25.
type bm25Index struct {
	docTokens []map[string]int // term frequency per doc
	docLen    []int
	avgDocLen float64
	docFreq   map[string]int
	n         int
}

// newBM25Index builds an index over the given documents.
func newBM25Index(docs []string) *bm25Index {
	idx := &bm25Index{
		docTokens: make([]map[string]int, len(docs)),
		docLen:    make([]int, len(docs)),
		docFreq:   make(map[string]int),
		n:         len(docs),
	}

	total := 0
	for i, doc := range docs {
		tokens := tokenize(doc)
		tf := make(map[string]int, len(tokens))
		for _, t := range tokens {
			tf[t]++
		}
		idx.docTokens[i] = tf
		idx.docLen[i] = len(tokens)
		total += len(tokens)
		for t := range tf {
			idx.docFreq[t]++
		}
	}
	if idx.n > 0 {
		idx.avgDocLen = float64(total) / float64(idx.n)
	}
	return idx
}

// score computes the BM25 score of document i against the query.
func (idx *bm25Index) score(i int, query string) float64 {
	if idx.n == 0 || idx.docLen[i] == 0 || idx.avgDocLen == 0 {
		return 0
	}

	tf := idx.docTokens[i]
	lenNorm := 1 - bm25B + bm25B*float64(idx.docLen[i])/idx.avgDocLen

	var s float64
	for _, term := range tokenize(query) {
		f, ok := tf[term]
		if !ok {
			continue
		}
		df := idx.docFreq[term]
		idf := math.Log(1 + (float64(idx.n)-float64(df)+0.5)/(float64(df)+0.5))
		s += idf * float64(f) * (bm25K1 + 1) / (float64(f) + bm25K1*lenNorm)
	}
	return s
}

// tokenize lowercases and splits on non-alphanumeric runes, dropping
// single-character tokens.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
