package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple sentences",
			text: "Sleep matters. Memory improves!",
			want: []string{"Sleep matters.", "Memory improves!"},
		},
		{
			name: "decimal points do not split",
			text: "Accuracy rose by 3.5 points. That is notable.",
			want: []string{"Accuracy rose by 3.5 points.", "That is notable."},
		},
		{
			name: "abbreviations do not split",
			text: "Several studies, e.g. randomized trials, agree. Smith et al. disagree.",
			want: []string{"Several studies, e.g. randomized trials, agree.", "Smith et al. disagree."},
		},
		{
			name: "citation tokens stay attached",
			text: "Sleep consolidates memory [CITE:sn-1]. REM matters [CITE:sn-2] [CITE:sn-3]. Done.",
			want: []string{
				"Sleep consolidates memory [CITE:sn-1].",
				"REM matters [CITE:sn-2] [CITE:sn-3].",
				"Done.",
			},
		},
		{
			name: "trailing text without terminator",
			text: "First. And a dangling fragment",
			want: []string{"First.", "And a dangling fragment"},
		},
		{
			name: "empty",
			text: "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.text))
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("  a \n b\t\tc "))
}
