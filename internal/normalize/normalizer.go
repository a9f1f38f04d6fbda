package normalize

import (
	"context"
	"strings"
	"time"

	"videorag/internal/domain"
	"videorag/internal/logger"
	"videorag/internal/translate"
)

const detectionSampleSegments = 10

// Normalizer rewrites non-English chunk text into English before indexing.
// Translation is best-effort per chunk: a failed call keeps the original
// text instead of failing the whole save.
type Normalizer struct {
	translator translate.Translator
	detector   Detector
	pace       time.Duration
	logger     logger.Logger
}

func New(translator translate.Translator, detector Detector, pace time.Duration, log logger.Logger) *Normalizer {
	if pace <= 0 {
		pace = time.Second
	}
	return &Normalizer{
		translator: translator,
		detector:   detector,
		pace:       pace,
		logger:     log.Named("normalize"),
	}
}

// DetectLanguage samples the first few segments and returns an ISO 639-1
// code, defaulting to "en" when detection is not possible.
func (n *Normalizer) DetectLanguage(segments []domain.Segment) string {
	limit := detectionSampleSegments
	if len(segments) < limit {
		limit = len(segments)
	}
	parts := make([]string, 0, limit)
	for _, s := range segments[:limit] {
		parts = append(parts, s.Text)
	}
	return n.detector.Detect(strings.Join(parts, " "))
}

// Normalize translates each chunk independently, in order, observing a fixed
// pacing delay between calls to respect the translation endpoint's rate
// limits. When lang is already "en" the chunks pass through untouched.
func (n *Normalizer) Normalize(ctx context.Context, chunks []domain.Chunk, lang string) []domain.Chunk {
	if lang == "en" || len(chunks) == 0 {
		return chunks
	}
	out := make([]domain.Chunk, len(chunks))
	for i, ch := range chunks {
		if i > 0 {
			select {
			case <-time.After(n.pace):
			case <-ctx.Done():
				copy(out[i:], chunks[i:])
				return out
			}
		}
		translated, err := n.translator.Translate(ctx, ch.Text, "auto", "en")
		if err != nil {
			n.logger.Warn(ctx, "translation failed for %s, keeping original text: %v", ch.TimeRange, err)
			out[i] = ch
			continue
		}
		ch.Text = translated
		out[i] = ch
	}
	return out
}
