package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client scores query/candidate pairs against a cross-encoder served over
// the text-embeddings-inference rerank REST API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// Score returns one relevance score per candidate, aligned by index.
func (c *Client) Score(ctx context.Context, query string, candidates []string) ([]float64, error) {
	body, _ := json.Marshal(map[string]any{
		"query": query,
		"texts": candidates,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rerank", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("rerank request failed: %s", resp.Status)
	}

	var out []struct {
		Index int     `json:"index"`
		Score float64 `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out) != len(candidates) {
		return nil, fmt.Errorf("reranker returned %d scores for %d candidates", len(out), len(candidates))
	}
	scores := make([]float64, len(candidates))
	for _, r := range out {
		if r.Index < 0 || r.Index >= len(scores) {
			return nil, fmt.Errorf("reranker returned out-of-range index %d", r.Index)
		}
		scores[r.Index] = r.Score
	}
	return scores, nil
}
