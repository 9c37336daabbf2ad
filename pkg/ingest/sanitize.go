package ingest

import (
	"strings"
	"unicode"
)

// Sanitize normalizes raw source text before chunking: drops control and
// zero-width characters, normalizes unicode spaces, and collapses whitespace
// runs while preserving paragraph breaks.
func Sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case r == '\n':
			b.WriteRune(r)
		case r == '\u200b' || r == '\ufeff':
			// zero-width space / BOM
		case unicode.IsControl(r):
			b.WriteRune(' ')
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}

	paragraphs := strings.Split(b.String(), "\n")
	cleaned := paragraphs[:0]
	for _, p := range paragraphs {
		p = strings.Join(strings.Fields(p), " ")
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return strings.Join(cleaned, "\n")
}
