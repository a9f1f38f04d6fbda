package vectorstore

import "videorag/internal/domain"

// SearchResult is a matching document with its similarity score.
type SearchResult struct {
	Document domain.Document
	Score    float64
}

// Storage persists document vectors and supports similarity search.
// One Storage instance backs exactly one session's indexed corpus.
type Storage interface {
	Init(dimension int) error
	Upsert(docs []domain.Document, vectors [][]float64) error
	Search(vector []float64, topK int) ([]SearchResult, error)
	Clear() error
}
