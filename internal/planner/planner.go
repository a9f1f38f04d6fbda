package planner

import (
	"context"
	"strings"

	"videorag/internal/domain"
	"videorag/internal/llm"
	"videorag/internal/logger"
)

const rewriteSystemPrompt = `You are a strict query analysis AI.
RULES:
1. If the user's query contains explicit, harmful, or dangerous content, output exactly the word REJECT and absolutely nothing else.
2. Otherwise, fix any typos, expand synonyms, and output a highly optimized search query to find information in a video transcript.
3. DO NOT output conversational text. ONLY output the new query or REJECT.`

const rewriteMaxTokens = 128

// Planner rewrites a raw question into a search query and classifies it as
// a summary or detail request.
type Planner struct {
	model      llm.ChatModel
	classifier Classifier
	logger     logger.Logger
}

func New(model llm.ChatModel, classifier Classifier, log logger.Logger) *Planner {
	return &Planner{
		model:      model,
		classifier: classifier,
		logger:     log.Named("planner"),
	}
}

// Plan sends the raw question through the rewrite guardrail and classifies
// the result. When the rewriter refuses (REJECT) or produces nothing, the
// raw question is reused verbatim as the search query; the refusal is not
// enforced as a hard block.
func (p *Planner) Plan(ctx context.Context, credential, rawQuestion string) (domain.Plan, error) {
	rewritten, err := p.model.Generate(ctx, credential, llm.GenerateRequest{
		System:      rewriteSystemPrompt,
		Prompt:      "Query: " + rawQuestion,
		MaxTokens:   rewriteMaxTokens,
		Temperature: 0.2,
	})
	if err != nil {
		return domain.Plan{}, domain.Wrap(domain.KindSynthesis, "query rewrite failed", err)
	}

	searchQuery := strings.TrimSpace(rewritten)
	if searchQuery == "" || strings.Contains(strings.ToUpper(searchQuery), "REJECT") {
		p.logger.Debug(ctx, "rewriter refused or returned nothing, searching with the raw question")
		searchQuery = rawQuestion
	}

	plan := domain.Plan{
		SearchQuery: searchQuery,
		Intent:      p.classifier.Classify(searchQuery),
	}
	p.logger.Debug(ctx, "planned %s query: %q", plan.Intent, plan.SearchQuery)
	return plan, nil
}
