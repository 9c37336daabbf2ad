package models

// EvidenceSnippet is one snippet admitted into a section's evidence pack.
type EvidenceSnippet struct {
	SnippetID  string  `json:"snippet_id"`
	SourceID   string  `json:"source_id"`
	Text       string  `json:"text"`
	Similarity float64 `json:"similarity"`
}

// SectionEvidencePack pairs a section with its selected snippets.
type SectionEvidencePack struct {
	SectionID string            `json:"section_id"`
	Snippets  []EvidenceSnippet `json:"snippets"`
}

// DraftedSection is the writer output for one section after validation.
type DraftedSection struct {
	SectionID string `json:"section_id"`
	Text      string `json:"section_text"`
	Summary   string `json:"section_summary"`
}
