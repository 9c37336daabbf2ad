package models

// CanonicalID identifies a source across connectors.
// Priority when canonicalizing: DOI > arXiv > OpenAlex > URL.
type CanonicalID struct {
	DOI        string `json:"doi,omitempty"`
	ArxivID    string `json:"arxiv_id,omitempty"`
	OpenAlexID string `json:"openalex_id,omitempty"`
	URL        string `json:"url,omitempty"`
}

// Key returns the highest-priority identifier prefixed with its scheme,
// or "" when the id is empty.
func (c CanonicalID) Key() string {
	switch {
	case c.DOI != "":
		return "doi:" + c.DOI
	case c.ArxivID != "":
		return "arxiv:" + c.ArxivID
	case c.OpenAlexID != "":
		return "openalex:" + c.OpenAlexID
	case c.URL != "":
		return "url:" + c.URL
	}
	return ""
}

// Source is one retrieved academic source as returned by a connector.
type Source struct {
	CanonicalID    CanonicalID            `json:"canonical_id"`
	Title          string                 `json:"title"`
	Authors        []string               `json:"authors"`
	Year           int                    `json:"year,omitempty"`
	Abstract       string                 `json:"abstract,omitempty"`
	URL            string                 `json:"url,omitempty"`
	PDFURL         string                 `json:"pdf_url,omitempty"`
	SourceType     string                 `json:"source_type"`
	Connector      string                 `json:"connector"`
	CitationsCount int                    `json:"citations_count,omitempty"`
	ExtraMetadata  map[string]interface{} `json:"extra_metadata,omitempty"`

	// Retrieval provenance set by the Retrieve stage fan-out.
	Intent string `json:"intent,omitempty"`
	Query  string `json:"query,omitempty"`
}

// PlannedQuery is one entry of the LLM query plan.
type PlannedQuery struct {
	Intent string `json:"intent"`
	Query  string `json:"query"`
}

// QueryIntents enumerates the allowed query-plan intents.
var QueryIntents = []string{
	"survey",
	"methods",
	"benchmarks",
	"failure modes",
	"future directions",
	"recent work",
}
