package chunker

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"videorag/internal/domain"
)

func segmentWithWords(n int, label string) domain.Segment {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	return domain.Segment{Text: strings.Join(words, " "), Time: label}
}

func TestChunkEmptyInput(t *testing.T) {
	c := NewWindowChunker(600, 100)
	if got := c.Chunk(nil); len(got) != 0 {
		t.Fatalf("expected no chunks, got %d", len(got))
	}
}

func TestChunkSingleOversizedSegment(t *testing.T) {
	c := NewWindowChunker(10, 2)
	seg := segmentWithWords(50, "0:00")
	chunks := c.Chunk([]domain.Segment{seg})
	if len(chunks) != 1 {
		t.Fatalf("oversized segment must stay in one chunk, got %d chunks", len(chunks))
	}
	if chunks[0].Text != seg.Text {
		t.Errorf("chunk text does not match segment text")
	}
}

func TestChunkTwelveSegments(t *testing.T) {
	// 12 segments of 80 words each with max 600 / overlap 100 must produce
	// exactly 2 chunks, the second seeded with the last 2 segments of the first.
	segments := make([]domain.Segment, 12)
	for i := range segments {
		segments[i] = segmentWithWords(80, fmt.Sprintf("%d:00", i))
	}
	c := NewWindowChunker(600, 100)
	chunks := c.Chunk(segments)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	first, second := chunks[0], chunks[1]
	if len(first.Segments) != 7 {
		t.Errorf("first chunk has %d segments, expected 7", len(first.Segments))
	}
	if !reflect.DeepEqual(second.Segments[:2], first.Segments[len(first.Segments)-2:]) {
		t.Errorf("second chunk does not begin with the last 2 segments of the first")
	}
	if first.TimeRange != "0:00 - 6:00" {
		t.Errorf("first chunk time range = %q", first.TimeRange)
	}
	if second.TimeRange != "5:00 - 11:00" {
		t.Errorf("second chunk time range = %q", second.TimeRange)
	}
}

func TestChunkCoversEverySegment(t *testing.T) {
	segments := make([]domain.Segment, 40)
	for i := range segments {
		segments[i] = segmentWithWords(25+i%7, fmt.Sprintf("%d:30", i))
	}
	c := NewWindowChunker(120, 30)
	chunks := c.Chunk(segments)
	covered := map[string]bool{}
	for _, ch := range chunks {
		for _, s := range ch.Segments {
			covered[s.Time] = true
		}
	}
	for _, s := range segments {
		if !covered[s.Time] {
			t.Errorf("segment %s belongs to no chunk", s.Time)
		}
	}
}

func TestChunkOverlapIsSuffixOfPrevious(t *testing.T) {
	segments := make([]domain.Segment, 30)
	for i := range segments {
		segments[i] = segmentWithWords(40, fmt.Sprintf("%d:00", i))
	}
	c := NewWindowChunker(200, 60)
	chunks := c.Chunk(segments)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i := 1; i < len(chunks); i++ {
		prev, cur := chunks[i-1], chunks[i]
		words := 0
		shared := 0
		for j := 0; j < len(cur.Segments) && j < len(prev.Segments); j++ {
			prevSeg := prev.Segments[len(prev.Segments)-1-j]
			found := false
			for k := range cur.Segments {
				if cur.Segments[k].Time == prevSeg.Time {
					found = true
					break
				}
			}
			if !found {
				break
			}
			shared++
			words += wordCount(prevSeg.Text)
		}
		if shared == 0 {
			t.Errorf("chunk %d shares no segments with its predecessor", i)
		}
		if words < 60 && shared < len(prev.Segments) {
			t.Errorf("chunk %d overlap only %d words", i, words)
		}
	}
}

func TestChunkIdempotent(t *testing.T) {
	segments := make([]domain.Segment, 25)
	for i := range segments {
		segments[i] = segmentWithWords(33, fmt.Sprintf("%d:05", i))
	}
	c := NewWindowChunker(150, 40)
	a := c.Chunk(segments)
	b := c.Chunk(segments)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("chunking the same input twice produced different results")
	}
}

func TestChunkTextJoinsSegmentsInOrder(t *testing.T) {
	segments := []domain.Segment{
		{Text: "hello there", Time: "0:00"},
		{Text: "general kenobi", Time: "0:05"},
	}
	chunks := NewWindowChunker(600, 100).Chunk(segments)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != "hello there general kenobi" {
		t.Errorf("chunk text = %q", chunks[0].Text)
	}
	if chunks[0].TimeRange != "0:00 - 0:05" {
		t.Errorf("time range = %q", chunks[0].TimeRange)
	}
}
