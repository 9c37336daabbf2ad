package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-ai/inquiro/pkg/models"
)

func TestMechanicalRepair(t *testing.T) {
	draft := models.DraftedSection{
		SectionID: "body-1",
		Text:      "First claim stands. Second claim is bad. Third claim stands.",
		Summary:   "Old summary.",
	}
	next := models.DraftedSection{
		SectionID: "body-2",
		Text:      "Old opening one. Old opening two. Kept third sentence. Kept fourth sentence.",
		Summary:   "Next summary.",
	}
	nextSection := models.OutlineSection{SectionID: "body-2", Title: "Mechanisms"}

	repaired, patched := mechanicalRepair(draft, map[int]bool{1: true}, &nextSection, &next)

	assert.Equal(t, "First claim stands. Third claim stands.", repaired.Text)
	assert.NotContains(t, repaired.Summary, "[CITE:")
	assert.NotEmpty(t, repaired.Summary)

	require.NotNil(t, patched)
	assert.True(t, strings.HasSuffix(patched.Text, "Kept third sentence. Kept fourth sentence."),
		"sentences beyond the first two must be byte-identical")
	assert.NotContains(t, patched.Text, "Old opening")
	assert.Equal(t, "Next summary.", patched.Summary)
}

func TestMechanicalRepair_LastSection(t *testing.T) {
	draft := models.DraftedSection{
		SectionID: "conclusion",
		Text:      "Good close. Bad close.",
	}
	repaired, patched := mechanicalRepair(draft, map[int]bool{1: true}, nil, nil)
	assert.Equal(t, "Good close.", repaired.Text)
	assert.Nil(t, patched)
}

func TestSynthesizeSummary(t *testing.T) {
	s := synthesizeSummary([]string{
		"Sleep matters for recall [CITE:sn-1].",
		"Middle sentence.",
		"Effects persist for days [CITE:sn-2].",
	})
	assert.Equal(t, "Sleep matters for recall. Effects persist for days.", s)

	assert.NotEmpty(t, synthesizeSummary(nil))
	assert.Equal(t, "Only one.", synthesizeSummary([]string{"Only one."}))
}

func TestPatchNextSection(t *testing.T) {
	next := models.DraftedSection{
		SectionID: "body-2",
		Text:      "One. Two. Three. Four.",
	}
	patched := patchNextSection(next, []string{"New one.", "New two."})
	assert.Equal(t, "New one. New two. Three. Four.", patched.Text)

	short := models.DraftedSection{SectionID: "body-3", Text: "Only."}
	patched = patchNextSection(short, []string{"Replacement."})
	assert.Equal(t, "Replacement.", patched.Text)
}
