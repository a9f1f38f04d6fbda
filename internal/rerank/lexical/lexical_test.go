package lexical

import (
	"context"
	"testing"
)

func TestScoreRanksOverlapHigher(t *testing.T) {
	r := NewReranker()
	scores, err := r.Score(context.Background(), "how does the garbage collector work", []string{
		"the garbage collector runs concurrently with the program",
		"today we bake sourdough bread",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 {
		t.Fatalf("got %d scores, want 2", len(scores))
	}
	if scores[0] <= scores[1] {
		t.Errorf("relevant candidate scored %f, irrelevant %f", scores[0], scores[1])
	}
}

func TestScoreEmptyInputs(t *testing.T) {
	r := NewReranker()
	scores, err := r.Score(context.Background(), "", []string{"anything", ""})
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range scores {
		if s != 0 {
			t.Errorf("score %d = %f, want 0 for empty query", i, s)
		}
	}
}
