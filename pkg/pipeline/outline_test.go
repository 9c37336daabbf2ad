package pipeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-ai/inquiro/pkg/models"
)

func validTestOutline(n int) models.Outline {
	sections := make([]models.OutlineSection, n)
	for i := range sections {
		sections[i] = models.OutlineSection{
			SectionID: fmt.Sprintf("sec-%d", i),
			Title:     fmt.Sprintf("Section %d", i),
			Goal:      "Explains the topic in context. Sets up the evidence that follows.",
			KeyPoints: []string{"a", "b", "c", "d", "e", "f"},
			Order:     i + 1,
		}
	}
	return models.Outline{Sections: sections}
}

func TestNormalizeOutline(t *testing.T) {
	outline := validTestOutline(4)
	outline.Sections[0].SectionID = "introduction"
	outline.Sections[3].SectionID = "wrap-up"
	outline.Sections[2].Order = 99

	normalizeOutline(&outline)

	assert.Equal(t, models.SectionIDIntro, outline.Sections[0].SectionID)
	assert.Equal(t, models.SectionIDConclusion, outline.Sections[3].SectionID)
	for i, s := range outline.Sections {
		assert.Equal(t, i+1, s.Order)
	}
}

func TestValidateOutline(t *testing.T) {
	valid := func() models.Outline {
		o := validTestOutline(5)
		normalizeOutline(&o)
		return o
	}

	t.Run("valid outline has no violations", func(t *testing.T) {
		assert.Empty(t, validateOutline(valid(), 4, 6))
	})

	t.Run("too few sections flagged", func(t *testing.T) {
		o := validTestOutline(3)
		normalizeOutline(&o)
		violations := validateOutline(o, 4, 6)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "4-6 sections")
	})

	t.Run("too many sections flagged", func(t *testing.T) {
		o := validTestOutline(7)
		normalizeOutline(&o)
		violations := validateOutline(o, 4, 6)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "4-6 sections")
	})

	t.Run("duplicate titles flagged", func(t *testing.T) {
		o := valid()
		o.Sections[2].Title = o.Sections[1].Title
		violations := validateOutline(o, 4, 6)
		require.NotEmpty(t, violations)
		assert.Contains(t, violations[0], "duplicate title")
	})

	t.Run("one-sentence goal flagged", func(t *testing.T) {
		o := valid()
		o.Sections[1].Goal = "Single sentence only."
		violations := validateOutline(o, 4, 6)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "2-3 sentences")
	})

	t.Run("too few key points flagged", func(t *testing.T) {
		o := valid()
		o.Sections[1].KeyPoints = []string{"a", "b"}
		violations := validateOutline(o, 4, 6)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "key_points")
	})

	t.Run("broken order sequence flagged", func(t *testing.T) {
		o := valid()
		o.Sections[2].Order = 7
		violations := validateOutline(o, 4, 6)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "contiguous")
	})

	t.Run("too-small outline", func(t *testing.T) {
		violations := validateOutline(models.Outline{}, 4, 6)
		require.Len(t, violations, 1)
	})
}

func TestParseQueryPlan(t *testing.T) {
	t.Run("strict JSON", func(t *testing.T) {
		plan := parseQueryPlan(`{"queries": [{"intent": "Survey", "query": "sleep memory"}]}`)
		require.Len(t, plan, 1)
		assert.Equal(t, "survey", plan[0].Intent)
		assert.Equal(t, "sleep memory", plan[0].Query)
	})

	t.Run("fenced JSON array", func(t *testing.T) {
		plan := parseQueryPlan("```json\n[{\"intent\": \"methods\", \"query\": \"rct design\"}]\n```")
		require.Len(t, plan, 1)
		assert.Equal(t, "methods", plan[0].Intent)
	})

	t.Run("permissive colon lines", func(t *testing.T) {
		plan := parseQueryPlan("Here are the queries:\n- survey: sleep and memory review\n- recent work: sleep consolidation 2025")
		require.Len(t, plan, 2)
		assert.Equal(t, "survey", plan[0].Intent)
		assert.Equal(t, "sleep and memory review", plan[0].Query)
		assert.Equal(t, "recent work", plan[1].Intent)
	})

	t.Run("permissive dash lines", func(t *testing.T) {
		plan := parseQueryPlan("benchmarks - memory task benchmarks")
		require.Len(t, plan, 1)
		assert.Equal(t, "benchmarks", plan[0].Intent)
		assert.Equal(t, "memory task benchmarks", plan[0].Query)
	})

	t.Run("unparseable yields empty", func(t *testing.T) {
		assert.Empty(t, parseQueryPlan("I could not produce queries"))
	})

	t.Run("caps at ten entries", func(t *testing.T) {
		raw := `{"queries": [`
		for i := 0; i < 14; i++ {
			if i > 0 {
				raw += ","
			}
			raw += fmt.Sprintf(`{"intent": "survey", "query": "q%d"}`, i)
		}
		raw += `]}`
		assert.Len(t, parseQueryPlan(raw), 10)
	})
}
