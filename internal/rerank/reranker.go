package rerank

import "context"

// Reranker scores (query, candidate) pairs with a model more precise than
// the retrieval embedder. Scores align with candidates by index; a failed
// call is terminal for the current request.
type Reranker interface {
	Score(ctx context.Context, query string, candidates []string) ([]float64, error)
}
