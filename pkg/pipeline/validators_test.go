package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCitations(t *testing.T) {
	allowed := []string{"sn-aaa111", "sn-bbb222", "sn-abc333"}

	t.Run("full ids pass through", func(t *testing.T) {
		text := "Sleep helps [CITE:sn-aaa111]."
		out, err := resolveCitations(text, allowed)
		require.NoError(t, err)
		assert.Equal(t, text, out)
	})

	t.Run("unique prefix is expanded", func(t *testing.T) {
		out, err := resolveCitations("Sleep helps [CITE:sn-b].", allowed)
		require.NoError(t, err)
		assert.Equal(t, "Sleep helps [CITE:sn-bbb222].", out)
	})

	t.Run("ambiguous prefix fails", func(t *testing.T) {
		_, err := resolveCitations("Sleep helps [CITE:sn-a].", allowed)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ambiguous")
	})

	t.Run("unknown id fails", func(t *testing.T) {
		_, err := resolveCitations("Sleep helps [CITE:sn-zzz].", allowed)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not in the evidence pack")
	})
}

func TestCheckCitationPlacement(t *testing.T) {
	t.Run("end of sentence accepted", func(t *testing.T) {
		assert.NoError(t, checkCitationPlacement(
			"Sleep consolidates memory [CITE:sn-1]. REM matters [CITE:sn-2] [CITE:sn-3]."))
	})

	t.Run("citation after terminal punctuation accepted", func(t *testing.T) {
		assert.NoError(t, checkCitationPlacement("Sleep consolidates memory. [CITE:sn-1]"))
	})

	t.Run("mid-sentence citation rejected", func(t *testing.T) {
		err := checkCitationPlacement("Sleep [CITE:sn-1] consolidates memory.")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "end of the sentence")
	})

	t.Run("uncited text passes", func(t *testing.T) {
		assert.NoError(t, checkCitationPlacement("No claims here. Just prose."))
	})
}

func TestCheckSectionSummary(t *testing.T) {
	assert.NoError(t, checkSectionSummary("Sleep consolidates memory. Effects are strongest for declarative recall."))

	err := checkSectionSummary("")
	assert.Error(t, err)

	err = checkSectionSummary("Has a citation [CITE:sn-1].")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not contain citations")

	err = checkSectionSummary("One. Two. Three. Four.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1-3 sentences")

	err = checkSectionSummary("No terminal punctuation")
	assert.Error(t, err)
}

func TestCheckDraftLength(t *testing.T) {
	assert.Error(t, checkDraftLength("Too short [CITE:sn-1].", 50))
	assert.NoError(t, checkDraftLength("word word word word word word.", 5))
}

func TestValidateRepairScope(t *testing.T) {
	original := []string{"First.", "Second.", "Third.", "Fourth."}

	t.Run("edit within scope", func(t *testing.T) {
		revised := []string{"First.", "Second rewritten.", "Third.", "Fourth."}
		assert.NoError(t, validateRepairScope(original, revised, map[int]bool{1: true}))
	})

	t.Run("drop within scope", func(t *testing.T) {
		revised := []string{"First.", "Third.", "Fourth."}
		assert.NoError(t, validateRepairScope(original, revised, map[int]bool{1: true}))
	})

	t.Run("out-of-scope change rejected", func(t *testing.T) {
		revised := []string{"First.", "Second.", "Third rewritten.", "Fourth."}
		err := validateRepairScope(original, revised, map[int]bool{1: true})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "outside the repair scope")
	})

	t.Run("out-of-scope drop rejected", func(t *testing.T) {
		revised := []string{"First.", "Second.", "Third."}
		err := validateRepairScope(original, revised, map[int]bool{1: true})
		assert.Error(t, err)
	})
}

func TestCitationIDs(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, citationIDs("One [CITE:a]. Two [CITE:b]."))
	assert.Nil(t, citationIDs("none"))
}

func TestDecodeJSONBlock(t *testing.T) {
	var out struct {
		X int `json:"x"`
	}
	require.NoError(t, decodeJSONBlock("{\"x\": 1}", &out))
	assert.Equal(t, 1, out.X)

	require.NoError(t, decodeJSONBlock("```json\n{\"x\": 2}\n```", &out))
	assert.Equal(t, 2, out.X)

	require.NoError(t, decodeJSONBlock("Here you go:\n{\"x\": 3}", &out))
	assert.Equal(t, 3, out.X)

	assert.Error(t, decodeJSONBlock("not json at all", &out))
}
