package synthesizer

import (
	"context"
	"fmt"
	"strings"

	"videorag/internal/domain"
	"videorag/internal/llm"
)

// NotFoundSentinel is the exact prefix the model must emit when the answer
// is not supported by the provided context.
const NotFoundSentinel = "[NO_SOURCES]"

const answerSystemPrompt = `You are an expert video assistant.
STRICT RULES:
1. Answer based ONLY on the provided Context.
2. MULTIPLE INLINE CITATIONS REQUIRED: include a citation immediately after EVERY specific fact, topic change, or summary point. Do NOT group them all at the end.
3. USE EXACT FORMAT: [MM:SS - MM:SS] strictly as seen in the Context metadata.
4. EXAMPLE OUTPUT: "The video begins by introducing Python [00:00 - 01:20]. Later, it explains data types [03:15 - 04:30], and finally shows a web server example [08:00 - 09:15]."
5. COMPLETION: write a complete, naturally finished answer. Do not let your text get cut off. Keep it within the requested length.
6. If the answer is not in the context, output exactly: "[NO_SOURCES] I'm sorry, that information is not in the video."`

const (
	conciseInstructions  = "Provide a concise 3 to 4 sentence answer. You MUST complete your final sentence and wrap up your response quickly to fit within limits. Cite multiple timestamps."
	detailedInstructions = "Provide a detailed, comprehensive explanation. You MUST complete your final sentence perfectly and wrap up naturally. Cite multiple timestamps."

	conciseMaxTokens  = 512
	detailedMaxTokens = 900
)

// Synthesizer turns the retrieved documents into a citation-constrained
// answer. Sources mirror the retrieved time ranges unless the model reports
// the answer is not in the transcript.
type Synthesizer struct {
	model llm.ChatModel
}

func New(model llm.ChatModel) *Synthesizer {
	return &Synthesizer{model: model}
}

// Synthesize builds the context block from the retrieved documents in order
// and asks the model for an answer sized by mode ("concise" or anything
// else for a longer reply).
func (s *Synthesizer) Synthesize(ctx context.Context, credential, query string, retrieved []domain.Document, mode string) (domain.AnswerResult, error) {
	blocks := make([]string, len(retrieved))
	for i, doc := range retrieved {
		blocks[i] = fmt.Sprintf("[%s]: %s", doc.TimeRange, doc.Content)
	}

	instructions := detailedInstructions
	maxTokens := detailedMaxTokens
	if mode == "concise" {
		instructions = conciseInstructions
		maxTokens = conciseMaxTokens
	}

	prompt := fmt.Sprintf("Context:\n%s\n\nQuestion: %s\n\nInstructions: %s",
		strings.Join(blocks, "\n\n"), query, instructions)

	answer, err := s.model.Generate(ctx, credential, llm.GenerateRequest{
		System:      answerSystemPrompt,
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: 0.2,
	})
	if err != nil {
		return domain.AnswerResult{}, domain.Wrap(domain.KindSynthesis, "answer generation failed", err)
	}

	answer = strings.TrimSpace(answer)
	if strings.HasPrefix(answer, NotFoundSentinel) {
		return domain.AnswerResult{
			Answer:  strings.TrimSpace(strings.TrimPrefix(answer, NotFoundSentinel)),
			Sources: []string{},
		}, nil
	}
	// The sentinel is only valid as an exact prefix; anywhere else the
	// output is malformed rather than a genuine not-found report.
	if strings.Contains(answer, NotFoundSentinel) {
		return domain.AnswerResult{}, domain.E(domain.KindSynthesis, "malformed model output: misplaced not-found marker")
	}

	sources := make([]string, len(retrieved))
	for i, doc := range retrieved {
		sources[i] = doc.TimeRange
	}
	return domain.AnswerResult{Answer: answer, Sources: sources}, nil
}
