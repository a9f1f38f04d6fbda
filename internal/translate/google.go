package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Translator rewrites text into a target language.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Client calls the public Google Translate endpoint used by browser clients.
// Best-effort: callers are expected to keep the original text on failure.
type Client struct {
	baseURL string
	client  *http.Client
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://translate.googleapis.com"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Translate returns the translation of text from source to target.
// Source "auto" lets the endpoint detect the input language.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	if source == "" {
		source = "auto"
	}
	if target == "" {
		target = "en"
	}
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", source)
	q.Set("tl", target)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/translate_a/single?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate failed: %s", resp.Status)
	}

	// The endpoint answers with nested arrays; the first element lists
	// sentence pairs whose first entry is the translated text.
	var payload []any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if len(payload) == 0 {
		return "", errors.New("empty translate response")
	}
	sentences, ok := payload[0].([]any)
	if !ok {
		return "", errors.New("unexpected translate response shape")
	}
	var b strings.Builder
	for _, s := range sentences {
		parts, ok := s.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if t, ok := parts[0].(string); ok {
			b.WriteString(t)
		}
	}
	if b.Len() == 0 {
		return "", errors.New("no translated text in response")
	}
	return b.String(), nil
}
