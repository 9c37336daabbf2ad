package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	in := "Title​ here.\r\n\r\nSecond\tparagraph  with   gaps.\x00"
	out := Sanitize(in)
	assert.Equal(t, "Title here.\nSecond paragraph with gaps.", out)
}

func TestChunk(t *testing.T) {
	t.Run("short text is one chunk", func(t *testing.T) {
		chunks := Chunk("One sentence. Two sentence.", DefaultChunkOptions)
		require.Len(t, chunks, 1)
		assert.Equal(t, "One sentence. Two sentence.", chunks[0])
	})

	t.Run("windows respect max words with sentence overlap", func(t *testing.T) {
		var sentences []string
		for i := 0; i < 10; i++ {
			sentences = append(sentences, strings.TrimSpace(strings.Repeat("word ", 10))+".")
		}
		text := strings.Join(sentences, " ")

		chunks := Chunk(text, ChunkOptions{MaxWords: 25, OverlapSentences: 1})
		require.Greater(t, len(chunks), 1)

		for _, c := range chunks {
			assert.LessOrEqual(t, len(strings.Fields(c)), 25)
		}
		// Overlap: each chunk after the first starts with the previous
		// chunk's last sentence.
		for i := 1; i < len(chunks); i++ {
			prev := chunks[i-1]
			lastDot := strings.LastIndex(strings.TrimSuffix(prev, "."), ".")
			tail := strings.TrimSpace(prev[lastDot+1:])
			assert.True(t, strings.HasPrefix(chunks[i], tail))
		}
	})

	t.Run("paragraph break ends a chunk", func(t *testing.T) {
		chunks := Chunk("First paragraph here.\nSecond paragraph here.", DefaultChunkOptions)
		require.Len(t, chunks, 2)
	})

	t.Run("overlong sentence still chunks", func(t *testing.T) {
		long := strings.TrimSpace(strings.Repeat("w ", 300)) + "."
		chunks := Chunk(long, ChunkOptions{MaxWords: 100, OverlapSentences: 1})
		require.Len(t, chunks, 1)
	})
}
