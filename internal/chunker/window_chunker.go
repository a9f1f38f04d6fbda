package chunker

import (
	"strings"

	"videorag/internal/domain"
)

// WindowChunker splits a transcript into word-bounded windows with overlap,
// so a fact spanning a boundary is not lost to either neighboring chunk.
type WindowChunker struct {
	maxWords     int
	overlapWords int
}

func NewWindowChunker(maxWords, overlapWords int) *WindowChunker {
	if maxWords <= 0 {
		maxWords = 600
	}
	if overlapWords < 0 {
		overlapWords = 0
	}
	return &WindowChunker{maxWords: maxWords, overlapWords: overlapWords}
}

// Chunk accumulates segments into a running window. When appending the next
// segment would push the running word count past maxWords and the window is
// non-empty, the window is closed and the next one is seeded with trailing
// segments of the closed window whose cumulative word count reaches
// overlapWords (at least one segment). A single oversized segment is never
// split; a trailing partial window is flushed unconditionally.
func (c *WindowChunker) Chunk(segments []domain.Segment) []domain.Chunk {
	var chunks []domain.Chunk
	var current []domain.Segment
	currentWords := 0

	for _, seg := range segments {
		words := wordCount(seg.Text)
		if currentWords+words > c.maxWords && len(current) > 0 {
			chunks = append(chunks, newChunk(current))

			start := len(current)
			overlap := 0
			for start > 0 {
				start--
				overlap += wordCount(current[start].Text)
				if overlap >= c.overlapWords {
					break
				}
			}
			current = append([]domain.Segment(nil), current[start:]...)
			currentWords = overlap
		}
		current = append(current, seg)
		currentWords += words
	}
	if len(current) > 0 {
		chunks = append(chunks, newChunk(current))
	}
	return chunks
}

func newChunk(segments []domain.Segment) domain.Chunk {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = s.Text
	}
	return domain.Chunk{
		Segments:  segments,
		Text:      strings.Join(parts, " "),
		TimeRange: segments[0].Time + " - " + segments[len(segments)-1].Time,
	}
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
