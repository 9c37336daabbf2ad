package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/inquiro-ai/inquiro/pkg/textutil"
)

// citationRE matches one [CITE:<snippet_id>] token.
var citationRE = regexp.MustCompile(`\[CITE:([^\]\s]+)\]`)

// citationTailRE accepts the end of a sentence after the first citation
// token: one or more citation tokens, optionally closed by terminal
// punctuation.
var citationTailRE = regexp.MustCompile(`^(\[CITE:[^\]\s]+\]\s*)+[.!?]?$`)

// resolveCitations rewrites every [CITE:X] token to a full snippet id from
// the allowed set. X may be a short prefix as long as it matches exactly one
// allowed id; unknown or ambiguous references are errors.
func resolveCitations(text string, allowedIDs []string) (string, error) {
	allowed := make(map[string]bool, len(allowedIDs))
	for _, id := range allowedIDs {
		allowed[id] = true
	}

	var resolveErr error
	resolved := citationRE.ReplaceAllStringFunc(text, func(tok string) string {
		id := citationRE.FindStringSubmatch(tok)[1]
		if allowed[id] {
			return tok
		}

		var match string
		for _, full := range allowedIDs {
			if strings.HasPrefix(full, id) {
				if match != "" {
					resolveErr = fmt.Errorf("citation %q is ambiguous", id)
					return tok
				}
				match = full
			}
		}
		if match == "" {
			if resolveErr == nil {
				resolveErr = fmt.Errorf("citation %q is not in the evidence pack", id)
			}
			return tok
		}
		return "[CITE:" + match + "]"
	})
	if resolveErr != nil {
		return "", resolveErr
	}
	return resolved, nil
}

// checkCitationPlacement verifies that within every sentence, citation
// tokens appear only at the end (optionally with terminal punctuation after
// the last token).
func checkCitationPlacement(text string) error {
	for i, sentence := range textutil.SplitSentences(text) {
		loc := citationRE.FindStringIndex(sentence)
		if loc == nil {
			continue
		}
		tail := strings.TrimSpace(sentence[loc[0]:])
		if !citationTailRE.MatchString(tail) {
			return fmt.Errorf("sentence %d: citations must appear at the end of the sentence", i)
		}
		// The text before the first citation must not hide another token
		// (FindStringIndex already found the first, so this is implied) but
		// must end the claim cleanly.
		head := strings.TrimSpace(sentence[:loc[0]])
		if head == "" {
			return fmt.Errorf("sentence %d: citation-only sentence", i)
		}
	}
	return nil
}

// checkSectionSummary verifies a section summary: present, 1-3 sentences,
// each closed by terminal punctuation, no citation tokens.
func checkSectionSummary(summary string) error {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return fmt.Errorf("section_summary is empty")
	}
	if citationRE.MatchString(summary) {
		return fmt.Errorf("section_summary must not contain citations")
	}
	sentences := textutil.SplitSentences(summary)
	if len(sentences) < 1 || len(sentences) > 3 {
		return fmt.Errorf("section_summary must be 1-3 sentences, got %d", len(sentences))
	}
	for _, s := range sentences {
		if !strings.ContainsAny(s[len(s)-1:], ".!?") {
			return fmt.Errorf("section_summary sentence %q lacks terminal punctuation", s)
		}
	}
	return nil
}

// checkDraftLength enforces the minimum word count, citations excluded.
func checkDraftLength(text string, minWords int) error {
	stripped := citationRE.ReplaceAllString(text, "")
	if n := textutil.WordCount(stripped); n < minWords {
		return fmt.Errorf("section text has %d words, minimum is %d", n, minWords)
	}
	return nil
}

// validateRepairScope verifies that revised preserves, byte-identically,
// every original sentence whose index is outside the allowed edit set.
// Dropped sentences (allowed indexes only) are tolerated.
func validateRepairScope(original, revised []string, editable map[int]bool) error {
	ri := 0
	for oi, sentence := range original {
		if editable[oi] {
			// The edited sentence may have been rewritten or dropped; accept
			// whatever stands at this position and resync on the next fixed
			// sentence.
			continue
		}
		found := false
		for ; ri < len(revised); ri++ {
			if revised[ri] == sentence {
				found = true
				ri++
				break
			}
		}
		if !found {
			return fmt.Errorf("sentence %d was modified outside the repair scope", oi)
		}
	}
	return nil
}

// citationIDs extracts the snippet ids referenced by a text, in order.
func citationIDs(text string) []string {
	var ids []string
	for _, m := range citationRE.FindAllStringSubmatch(text, -1) {
		ids = append(ids, m[1])
	}
	return ids
}
