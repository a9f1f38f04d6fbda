package openai

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"videorag/internal/llm"
)

// Client runs chat completions against any OpenAI-compatible inference
// endpoint. The API key arrives per request, so the underlying client is
// constructed per call.
type Client struct {
	baseURL string
	model   string
}

type Config struct {
	BaseURL string
	Model   string
}

func NewClient(cfg Config) *Client {
	return &Client{baseURL: cfg.BaseURL, model: cfg.Model}
}

func (c *Client) Generate(ctx context.Context, credential string, req llm.GenerateRequest) (string, error) {
	if credential == "" {
		return "", errors.New("missing API credential")
	}
	opts := []option.RequestOption{option.WithAPIKey(credential)}
	if c.baseURL != "" {
		opts = append(opts, option.WithBaseURL(c.baseURL))
	}
	client := openai.NewClient(opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.Prompt),
		},
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
		Temperature: openai.Float(req.Temperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
