// Package retrieval ranks and selects connector results for a run:
// cross-connector deduplication, BM25 scoring against the query plan,
// embedding rerank with a persistent cache, and intent-diverse selection.
package retrieval

import (
	"github.com/inquiro-ai/inquiro/pkg/models"
)

// Deduplicate merges sources that share any identifier (DOI, arXiv id,
// OpenAlex id, or URL). Metadata from duplicates is folded into one record,
// preferring more-complete fields and the larger citation count. Order of
// first appearance is preserved.
func Deduplicate(sources []models.Source) []models.Source {
	var merged []models.Source
	// Identifier key -> index into merged.
	byKey := make(map[string]int)

	for _, src := range sources {
		keys := identifierKeys(src.CanonicalID)
		if len(keys) == 0 {
			continue
		}

		idx := -1
		for _, k := range keys {
			if i, ok := byKey[k]; ok {
				idx = i
				break
			}
		}

		if idx < 0 {
			merged = append(merged, src)
			idx = len(merged) - 1
		} else {
			merged[idx] = mergeSources(merged[idx], src)
		}

		// Register every identifier, including ones the duplicate added.
		for _, k := range identifierKeys(merged[idx].CanonicalID) {
			byKey[k] = idx
		}
	}
	return merged
}

func identifierKeys(id models.CanonicalID) []string {
	var keys []string
	if id.DOI != "" {
		keys = append(keys, "doi:"+id.DOI)
	}
	if id.ArxivID != "" {
		keys = append(keys, "arxiv:"+id.ArxivID)
	}
	if id.OpenAlexID != "" {
		keys = append(keys, "openalex:"+id.OpenAlexID)
	}
	if id.URL != "" {
		keys = append(keys, "url:"+id.URL)
	}
	return keys
}

// mergeSources folds b into a, keeping the more complete value per field.
func mergeSources(a, b models.Source) models.Source {
	if a.CanonicalID.DOI == "" {
		a.CanonicalID.DOI = b.CanonicalID.DOI
	}
	if a.CanonicalID.ArxivID == "" {
		a.CanonicalID.ArxivID = b.CanonicalID.ArxivID
	}
	if a.CanonicalID.OpenAlexID == "" {
		a.CanonicalID.OpenAlexID = b.CanonicalID.OpenAlexID
	}
	if a.CanonicalID.URL == "" {
		a.CanonicalID.URL = b.CanonicalID.URL
	}
	if a.Title == "" {
		a.Title = b.Title
	}
	if len(b.Authors) > len(a.Authors) {
		a.Authors = b.Authors
	}
	if len(b.Abstract) > len(a.Abstract) {
		a.Abstract = b.Abstract
	}
	if a.Year == 0 {
		a.Year = b.Year
	}
	if a.URL == "" {
		a.URL = b.URL
	}
	if a.PDFURL == "" {
		a.PDFURL = b.PDFURL
	}
	if b.CitationsCount > a.CitationsCount {
		a.CitationsCount = b.CitationsCount
	}
	if a.SourceType == "" {
		a.SourceType = b.SourceType
	}
	return a
}
