package lexical

import (
	"context"
	"math"
	"regexp"
	"strings"
)

// Reranker scores candidates by token-set overlap with the query using the
// Ochiai coefficient. It is the offline stand-in for a cross-encoder.
type Reranker struct {
	wordRe *regexp.Regexp
}

func NewReranker() *Reranker {
	return &Reranker{wordRe: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)}
}

func (r *Reranker) Score(ctx context.Context, query string, candidates []string) ([]float64, error) {
	qset := r.tokenSet(query)
	scores := make([]float64, len(candidates))
	for i, text := range candidates {
		scores[i] = ochiai(qset, r.tokenSet(text))
	}
	return scores, nil
}

func (r *Reranker) tokenSet(s string) map[string]struct{} {
	tokens := r.wordRe.FindAllString(strings.ToLower(s), -1)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// ochiai is |A∩B| / sqrt(|A||B|).
func ochiai(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	return float64(inter) / (math.Sqrt(float64(len(a))) * math.Sqrt(float64(len(b))))
}
