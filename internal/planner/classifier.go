package planner

import (
	"strings"

	"videorag/internal/domain"
)

// Classifier decides whether a query asks for a global summary or a
// specific detail. It is an interface so the keyword heuristic can be
// swapped for a model-based classifier without touching the pipeline.
type Classifier interface {
	Classify(query string) domain.Intent
}

// KeywordClassifier matches a fixed set of summary phrases against the
// lower-cased query.
type KeywordClassifier struct {
	keywords []string
}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		keywords: []string{"summarize", "summary", "overview", "recap", "tldr", "entire video", "main points"},
	}
}

func (c *KeywordClassifier) Classify(query string) domain.Intent {
	lower := strings.ToLower(query)
	for _, kw := range c.keywords {
		if strings.Contains(lower, kw) {
			return domain.IntentSummary
		}
	}
	return domain.IntentDetail
}
