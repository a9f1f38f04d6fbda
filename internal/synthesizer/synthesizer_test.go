package synthesizer

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"videorag/internal/domain"
	"videorag/internal/llm"
)

type fakeModel struct {
	out     string
	err     error
	lastReq llm.GenerateRequest
}

func (f *fakeModel) Generate(ctx context.Context, credential string, req llm.GenerateRequest) (string, error) {
	f.lastReq = req
	return f.out, f.err
}

func retrievedDocs() []domain.Document {
	return []domain.Document{
		{Content: "the speaker introduces goroutines", TimeRange: "00:00 - 01:20"},
		{Content: "channels are explained with examples", TimeRange: "03:15 - 04:30"},
	}
}

func TestSynthesizeReturnsSourcesInOrder(t *testing.T) {
	m := &fakeModel{out: "Goroutines come first [00:00 - 01:20], then channels [03:15 - 04:30]."}
	got, err := New(m).Synthesize(context.Background(), "token", "what is covered", retrievedDocs(), "concise")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"00:00 - 01:20", "03:15 - 04:30"}
	if !reflect.DeepEqual(got.Sources, want) {
		t.Errorf("sources = %v, want %v", got.Sources, want)
	}
	if got.Answer == "" {
		t.Error("answer is empty")
	}
}

func TestSynthesizeNotFoundSentinel(t *testing.T) {
	m := &fakeModel{out: "[NO_SOURCES] I'm sorry, that information is not in the video."}
	got, err := New(m).Synthesize(context.Background(), "token", "q", retrievedDocs(), "concise")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Sources) != 0 {
		t.Errorf("sources must be empty on a not-found answer: %v", got.Sources)
	}
	if strings.Contains(got.Answer, NotFoundSentinel) {
		t.Errorf("sentinel not stripped: %q", got.Answer)
	}
	if got.Answer != "I'm sorry, that information is not in the video." {
		t.Errorf("answer = %q", got.Answer)
	}
}

func TestSynthesizeMisplacedSentinelIsError(t *testing.T) {
	m := &fakeModel{out: "Some text [NO_SOURCES] more text."}
	_, err := New(m).Synthesize(context.Background(), "token", "q", retrievedDocs(), "concise")
	if domain.KindOf(err) != domain.KindSynthesis {
		t.Errorf("error kind = %v, want synthesis", domain.KindOf(err))
	}
}

func TestSynthesizeModelFailure(t *testing.T) {
	m := &fakeModel{err: errors.New("endpoint unreachable")}
	_, err := New(m).Synthesize(context.Background(), "token", "q", retrievedDocs(), "concise")
	if domain.KindOf(err) != domain.KindSynthesis {
		t.Errorf("error kind = %v, want synthesis", domain.KindOf(err))
	}
}

func TestSynthesizePromptLayout(t *testing.T) {
	m := &fakeModel{out: "fine"}
	if _, err := New(m).Synthesize(context.Background(), "token", "the question", retrievedDocs(), "detailed"); err != nil {
		t.Fatal(err)
	}
	prompt := m.lastReq.Prompt
	if !strings.Contains(prompt, "[00:00 - 01:20]: the speaker introduces goroutines") {
		t.Errorf("context block missing rendered document: %q", prompt)
	}
	first := strings.Index(prompt, "00:00 - 01:20")
	second := strings.Index(prompt, "03:15 - 04:30")
	if first < 0 || second < 0 || first > second {
		t.Error("documents not rendered in retrieval order")
	}
	if !strings.Contains(prompt, "Question: the question") {
		t.Errorf("question missing from prompt: %q", prompt)
	}
}

func TestSynthesizeModeTokenLimits(t *testing.T) {
	tests := []struct {
		mode      string
		maxTokens int
	}{
		{"concise", conciseMaxTokens},
		{"detailed", detailedMaxTokens},
		{"", detailedMaxTokens},
	}
	for _, tt := range tests {
		t.Run("mode "+tt.mode, func(t *testing.T) {
			m := &fakeModel{out: "ok"}
			if _, err := New(m).Synthesize(context.Background(), "token", "q", retrievedDocs(), tt.mode); err != nil {
				t.Fatal(err)
			}
			if m.lastReq.MaxTokens != tt.maxTokens {
				t.Errorf("max tokens = %d, want %d", m.lastReq.MaxTokens, tt.maxTokens)
			}
		})
	}
}
