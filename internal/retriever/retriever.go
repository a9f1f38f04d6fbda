package retriever

import (
	"context"
	"sort"

	"videorag/internal/domain"
	"videorag/internal/embedding"
	"videorag/internal/rerank"
	"videorag/internal/vectorstore"
)

const (
	candidateK = 10
	detailTopK = 3
	summaryK   = 5
)

// Retriever selects the context documents for one question. Detail requests
// run similarity search over-sampled to candidateK and reranked down to
// detailTopK; summary requests stride-sample the whole corpus instead of
// searching.
type Retriever struct {
	embedder embedding.Embedder
	reranker rerank.Reranker
}

func New(embedder embedding.Embedder, reranker rerank.Reranker) *Retriever {
	return &Retriever{embedder: embedder, reranker: reranker}
}

// Retrieve returns at most summaryK documents in corpus order for summary
// requests, or at most detailTopK documents in relevance order otherwise.
// A corpus of detailTopK or fewer documents always takes the similarity
// path, whatever the intent.
func (r *Retriever) Retrieve(ctx context.Context, query string, intent domain.Intent, store vectorstore.Storage, docs []domain.Document) ([]domain.Document, error) {
	if intent == domain.IntentSummary && len(docs) > detailTopK {
		return strideSample(docs, summaryK), nil
	}

	vec, err := r.embedder.Embed(query)
	if err != nil {
		return nil, domain.Wrap(domain.KindRetrieval, "embed query", err)
	}
	results, err := store.Search(vec, candidateK)
	if err != nil {
		return nil, domain.Wrap(domain.KindRetrieval, "vector search failed", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	candidates := make([]string, len(results))
	for i, res := range results {
		candidates[i] = res.Document.Content
	}
	scores, err := r.reranker.Score(ctx, query, candidates)
	if err != nil {
		return nil, domain.Wrap(domain.KindRetrieval, "rerank failed", err)
	}
	if len(scores) != len(results) {
		return nil, domain.E(domain.KindRetrieval, "reranker returned a mismatched score count")
	}

	// Stable sort keeps retrieval order among equal scores.
	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	top := detailTopK
	if top > len(order) {
		top = len(order)
	}
	out := make([]domain.Document, 0, top)
	for _, idx := range order[:top] {
		out = append(out, results[idx].Document)
	}
	return out, nil
}

// strideSample picks up to k documents at fixed index intervals starting at
// zero, approximating uniform coverage of the whole transcript.
func strideSample(docs []domain.Document, k int) []domain.Document {
	stride := len(docs) / k
	if stride < 1 {
		stride = 1
	}
	out := make([]domain.Document, 0, k)
	for i := 0; i < len(docs) && len(out) < k; i += stride {
		out = append(out, docs[i])
	}
	return out
}
