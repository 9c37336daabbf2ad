package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeReview(t *testing.T) {
	allowed := []string{"sn-1", "sn-2"}

	t.Run("unknown problem codes dropped", func(t *testing.T) {
		var raw rawReview
		require.NoError(t, json.Unmarshal([]byte(`{
			"section_id": "body-1", "verdict": "fail",
			"issues": [
				{"sentence_index": 2, "problem": "unsupported", "notes": "no evidence"},
				{"sentence_index": 3, "problem": "too_boring", "notes": "made up code"}
			]}`), &raw))

		review := normalizeReview("body-1", raw, allowed)
		assert.Equal(t, "fail", review.Verdict)
		require.Len(t, review.Issues, 1)
		assert.Equal(t, "unsupported", review.Issues[0].Problem)
		assert.Equal(t, 2, review.Issues[0].SentenceIndex)
	})

	t.Run("float sentence_index coerced", func(t *testing.T) {
		var raw rawReview
		require.NoError(t, json.Unmarshal([]byte(`{
			"verdict": "fail",
			"issues": [{"sentence_index": 1.0, "problem": "overstated"}]}`), &raw))

		review := normalizeReview("body-1", raw, allowed)
		require.Len(t, review.Issues, 1)
		assert.Equal(t, 1, review.Issues[0].SentenceIndex)
	})

	t.Run("out-of-pack citations dropped", func(t *testing.T) {
		var raw rawReview
		require.NoError(t, json.Unmarshal([]byte(`{
			"verdict": "fail",
			"issues": [{"sentence_index": 0, "problem": "contradicted", "citations": ["sn-1", "sn-99"]}]}`), &raw))

		review := normalizeReview("body-1", raw, allowed)
		require.Len(t, review.Issues, 1)
		assert.Equal(t, []string{"sn-1"}, review.Issues[0].Citations)
	})

	t.Run("remaining issues force fail", func(t *testing.T) {
		var raw rawReview
		require.NoError(t, json.Unmarshal([]byte(`{
			"verdict": "pass",
			"issues": [{"sentence_index": 0, "problem": "missing_citation"}]}`), &raw))

		review := normalizeReview("body-1", raw, allowed)
		assert.Equal(t, "fail", review.Verdict)
	})

	t.Run("all issues filtered yields pass verdict", func(t *testing.T) {
		var raw rawReview
		require.NoError(t, json.Unmarshal([]byte(`{
			"verdict": "pass",
			"issues": [{"sentence_index": 0, "problem": "nonsense"}]}`), &raw))

		review := normalizeReview("body-1", raw, allowed)
		assert.Equal(t, "pass", review.Verdict)
		assert.Empty(t, review.Issues)
	})

	t.Run("weird verdict normalizes to pass without issues", func(t *testing.T) {
		var raw rawReview
		require.NoError(t, json.Unmarshal([]byte(`{"verdict": "LGTM", "issues": []}`), &raw))
		assert.Equal(t, "pass", normalizeReview("x", raw, allowed).Verdict)
	})
}
