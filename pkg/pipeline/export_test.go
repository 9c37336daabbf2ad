package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-ai/inquiro/pkg/models"
)

func TestFootnoteTable(t *testing.T) {
	state := &State{
		SelectedSources: map[string]models.Source{
			"src-1": {Title: "Sleep and Memory", Authors: []string{"Doe"}, Year: 2021, URL: "https://example.org/1"},
			"src-2": {Title: "REM Dynamics", Year: 2023},
		},
	}
	bySnippet := map[string]string{
		"sn-a": "src-1",
		"sn-b": "src-2",
		"sn-c": "src-1",
	}
	table := newFootnoteTable(state, bySnippet)

	out := table.substitute("Claim one [CITE:sn-a]. Claim two [CITE:sn-b]. Claim three [CITE:sn-c].")
	assert.Equal(t, "Claim one [^1]. Claim two [^2]. Claim three [^1].", out)

	refs := table.references()
	assert.Contains(t, refs, "[^1]: Sleep and Memory, Doe (2021). https://example.org/1")
	assert.Contains(t, refs, "[^2]: REM Dynamics (2023)")

	t.Run("unresolvable citation degrades to warning", func(t *testing.T) {
		out := table.substitute("Mystery claim [CITE:sn-unknown].")
		assert.Equal(t, "Mystery claim .", out)
		require.NotEmpty(t, state.Warnings)
		assert.Contains(t, state.Warnings[0], "sn-unknown")
	})
}

func TestFootnoteTable_NumbersByFirstCitation(t *testing.T) {
	state := &State{SelectedSources: map[string]models.Source{}}
	table := newFootnoteTable(state, map[string]string{"x": "s2", "y": "s1"})

	_ = table.substitute("A [CITE:x]. B [CITE:y].")
	assert.Equal(t, []string{"s2", "s1"}, table.order)
}
