package models

// Canonical section ids pinned by the outline normalizer.
const (
	SectionIDIntro      = "intro"
	SectionIDConclusion = "conclusion"
)

// OutlineSection is one planned report section.
type OutlineSection struct {
	SectionID      string   `json:"section_id"`
	Title          string   `json:"title"`
	Goal           string   `json:"goal"`
	KeyPoints      []string `json:"key_points"`
	EvidenceThemes []string `json:"suggested_evidence_themes"`
	Order          int      `json:"section_order"`
}

// Outline is the full section plan for a run, ordered 1..N with the first
// section "intro" and the last "conclusion".
type Outline struct {
	Sections []OutlineSection `json:"sections"`
}
