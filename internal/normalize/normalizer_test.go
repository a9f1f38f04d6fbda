package normalize

import (
	"context"
	"errors"
	"testing"
	"time"

	"videorag/internal/domain"
	"videorag/internal/logger"
)

type fakeTranslator struct {
	out  string
	err  error
	seen []string
}

func (f *fakeTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	f.seen = append(f.seen, text)
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

type fixedDetector struct{ lang string }

func (d fixedDetector) Detect(sample string) string { return d.lang }

func testChunks() []domain.Chunk {
	return []domain.Chunk{
		{Text: "hola mundo", TimeRange: "0:00 - 0:30"},
		{Text: "adios mundo", TimeRange: "0:30 - 1:00"},
	}
}

func TestNormalizeEnglishPassthrough(t *testing.T) {
	tr := &fakeTranslator{out: "translated"}
	n := New(tr, fixedDetector{"en"}, time.Millisecond, logger.Nop())
	chunks := testChunks()
	got := n.Normalize(context.Background(), chunks, "en")
	if len(tr.seen) != 0 {
		t.Errorf("translator called for English input")
	}
	if got[0].Text != "hola mundo" {
		t.Errorf("chunk text changed: %q", got[0].Text)
	}
}

func TestNormalizeTranslatesEachChunk(t *testing.T) {
	tr := &fakeTranslator{out: "hello world"}
	n := New(tr, fixedDetector{"es"}, time.Millisecond, logger.Nop())
	got := n.Normalize(context.Background(), testChunks(), "es")
	if len(tr.seen) != 2 {
		t.Fatalf("translator called %d times, want 2", len(tr.seen))
	}
	for i, ch := range got {
		if ch.Text != "hello world" {
			t.Errorf("chunk %d text = %q", i, ch.Text)
		}
	}
	if got[1].TimeRange != "0:30 - 1:00" {
		t.Errorf("time range lost during translation: %q", got[1].TimeRange)
	}
}

func TestNormalizeKeepsOriginalOnFailure(t *testing.T) {
	tr := &fakeTranslator{err: errors.New("quota exceeded")}
	n := New(tr, fixedDetector{"es"}, time.Millisecond, logger.Nop())
	got := n.Normalize(context.Background(), testChunks(), "es")
	if got[0].Text != "hola mundo" || got[1].Text != "adios mundo" {
		t.Errorf("failed translation must keep the original text: %+v", got)
	}
}

func TestDetectLanguageSamplesLeadingSegments(t *testing.T) {
	n := New(&fakeTranslator{}, WhatlangDetector{}, time.Millisecond, logger.Nop())
	if lang := n.DetectLanguage(nil); lang != "en" {
		t.Errorf("empty transcript detected as %q, want en", lang)
	}
	segments := []domain.Segment{
		{Text: "the quick brown fox jumps over the lazy dog and keeps running", Time: "0:00"},
		{Text: "because it is late and everyone has gone home for the evening", Time: "0:10"},
	}
	if lang := n.DetectLanguage(segments); lang != "en" {
		t.Errorf("English sample detected as %q", lang)
	}
}
