package ingest

import (
	"strings"

	"github.com/inquiro-ai/inquiro/pkg/textutil"
)

// ChunkOptions bounds the sentence-window chunker.
type ChunkOptions struct {
	// MaxWords caps one chunk; a single overlong sentence still forms its
	// own chunk.
	MaxWords int
	// OverlapSentences carries the trailing sentences of a chunk into the
	// next one for context continuity.
	OverlapSentences int
}

// DefaultChunkOptions matches the snippet sizes the evidence packer expects.
var DefaultChunkOptions = ChunkOptions{
	MaxWords:         180,
	OverlapSentences: 1,
}

// Chunk splits sanitized text into sentence-window chunks. Paragraph breaks
// always end a chunk.
func Chunk(text string, opts ChunkOptions) []string {
	if opts.MaxWords <= 0 {
		opts.MaxWords = DefaultChunkOptions.MaxWords
	}
	if opts.OverlapSentences < 0 {
		opts.OverlapSentences = 0
	}

	var chunks []string
	for _, paragraph := range strings.Split(text, "\n") {
		sentences := textutil.SplitSentences(paragraph)
		if len(sentences) == 0 {
			continue
		}

		var window []string
		words := 0
		flush := func() {
			if len(window) == 0 {
				return
			}
			chunks = append(chunks, strings.Join(window, " "))
			// Seed the next window with the overlap tail.
			overlap := opts.OverlapSentences
			if overlap > len(window) {
				overlap = len(window)
			}
			tail := window[len(window)-overlap:]
			window = append([]string(nil), tail...)
			words = 0
			for _, s := range window {
				words += textutil.WordCount(s)
			}
		}

		for _, s := range sentences {
			w := textutil.WordCount(s)
			if words+w > opts.MaxWords && len(window) > 0 {
				flush()
			}
			window = append(window, s)
			words += w
		}
		if len(window) > 0 {
			// Do not emit an overlap-only tail: it duplicates the prior chunk.
			if len(chunks) == 0 || !isOverlapOnly(window, opts.OverlapSentences, chunks[len(chunks)-1]) {
				chunks = append(chunks, strings.Join(window, " "))
			}
		}
	}
	return chunks
}

func isOverlapOnly(window []string, overlap int, prevChunk string) bool {
	return len(window) <= overlap && strings.HasSuffix(prevChunk, strings.Join(window, " "))
}
