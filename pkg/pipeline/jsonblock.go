package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// stripFences removes a surrounding markdown code fence (``` or ```json) so
// fenced LLM output still parses as JSON.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		// Drop the language tag line.
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// decodeJSONBlock parses LLM output into dst, tolerating code fences and
// leading prose before the first brace.
func decodeJSONBlock(raw string, dst interface{}) error {
	s := stripFences(raw)
	if i := strings.IndexAny(s, "{["); i > 0 {
		s = s[i:]
	}
	if err := json.Unmarshal([]byte(s), dst); err != nil {
		return fmt.Errorf("invalid JSON response: %w", err)
	}
	return nil
}
