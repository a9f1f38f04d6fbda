package llm

import "context"

// GenerateRequest describes one chat-completion style call.
type GenerateRequest struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// ChatModel produces text from a system instruction and user content.
// The credential is supplied per call by the requester and never stored;
// an empty credential is a precondition failure handled by the caller.
type ChatModel interface {
	Generate(ctx context.Context, credential string, req GenerateRequest) (string, error)
}
