// Package textutil provides sentence splitting and text normalization shared
// by ingestion chunking and the citation validators.
package textutil

import (
	"strings"
	"unicode"
)

// abbreviations that end with a period but do not terminate a sentence.
var abbreviations = map[string]bool{
	"e.g.": true,
	"i.e.": true,
	"et al.": true,
	"vs.":  true,
	"cf.":  true,
	"fig.": true,
	"Fig.": true,
	"Dr.":  true,
	"Prof.": true,
	"No.":  true,
	"pp.":  true,
}

// SplitSentences splits text into sentences on '.', '!' and '?' boundaries,
// keeping the terminator (and anything attached to it, like a trailing
// citation token) with its sentence. Decimal points and common abbreviations
// do not split.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// Decimal point: digit on both sides.
		if r == '.' && i > 0 && i+1 < len(runes) &&
			unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
			continue
		}

		// Abbreviation guard: check the trailing token of the candidate.
		candidate := strings.TrimSpace(string(runes[start : i+1]))
		if r == '.' {
			fields := strings.Fields(candidate)
			if len(fields) > 0 && isAbbreviation(fields, len(fields)-1) {
				continue
			}
		}

		// Absorb closing quotes/brackets and a trailing citation token.
		end := i + 1
		for end < len(runes) && (runes[end] == '"' || runes[end] == '\'' || runes[end] == ')' || runes[end] == ']') {
			end++
		}
		if tail := citationTail(runes, end); tail > end {
			end = tail
		}

		sentence := strings.TrimSpace(string(runes[start:end]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = end
		i = end - 1
	}

	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}

	return sentences
}

// isAbbreviation reports whether fields[idx] (possibly together with the word
// before it, as in "et al.") is a known abbreviation.
func isAbbreviation(fields []string, idx int) bool {
	last := fields[idx]
	if abbreviations[last] {
		return true
	}
	if idx > 0 && abbreviations[fields[idx-1]+" "+last] {
		return true
	}
	// Single-letter initials like "J."
	if len([]rune(last)) == 2 && unicode.IsUpper([]rune(last)[0]) {
		return true
	}
	return false
}

// citationTail returns the index just past a run of whitespace-separated
// [CITE:…] tokens starting at pos, or pos if none.
func citationTail(runes []rune, pos int) int {
	i := pos
	for {
		j := i
		for j < len(runes) && runes[j] == ' ' {
			j++
		}
		if !hasPrefixAt(runes, j, "[CITE:") {
			return i
		}
		for j < len(runes) && runes[j] != ']' {
			j++
		}
		if j >= len(runes) {
			return i
		}
		i = j + 1
	}
}

func hasPrefixAt(runes []rune, pos int, prefix string) bool {
	p := []rune(prefix)
	if pos+len(p) > len(runes) {
		return false
	}
	for k, r := range p {
		if runes[pos+k] != r {
			return false
		}
	}
	return true
}

// CollapseWhitespace normalizes all whitespace runs to single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// WordCount counts whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
