package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ChunkerConfig configures how transcripts are split into chunks.
type ChunkerConfig struct {
	MaxWords     int `yaml:"max_words"`
	OverlapWords int `yaml:"overlap_words"`
}

// OpenAIEmbedderConfig holds configuration for the OpenAI-compatible embedder.
type OpenAIEmbedderConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// EmbedderConfig selects and configures the text embedder implementation.
type EmbedderConfig struct {
	Type   string                `yaml:"type"`
	OpenAI *OpenAIEmbedderConfig `yaml:"openai,omitempty"`
}

// QdrantConfig contains connection details for a Qdrant vector store.
type QdrantConfig struct {
	URL         string `yaml:"url"`
	APIKey      string `yaml:"api_key"`
	Collection  string `yaml:"collection"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// VectorStoreConfig selects and configures the vector store implementation.
type VectorStoreConfig struct {
	Type   string        `yaml:"type"`
	Qdrant *QdrantConfig `yaml:"qdrant,omitempty"`
}

// HTTPRerankerConfig points at a cross-encoder rerank endpoint.
type HTTPRerankerConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// RerankerConfig selects and configures the reranker implementation.
type RerankerConfig struct {
	Type string              `yaml:"type"`
	HTTP *HTTPRerankerConfig `yaml:"http,omitempty"`
}

// LLMConfig selects the chat model backend used for query rewriting and
// answer synthesis. The credential itself is read from CredentialEnv and
// passed through per request.
type LLMConfig struct {
	Provider      string `yaml:"provider"`
	Model         string `yaml:"model"`
	BaseURL       string `yaml:"base_url"`
	CredentialEnv string `yaml:"credential_env"`
}

// TranslatorConfig configures the best-effort translation client.
type TranslatorConfig struct {
	BaseURL     string `yaml:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs"`
	PaceMillis  int    `yaml:"pace_millis"`
}

// WatcherConfig tunes the transcript file watcher.
type WatcherConfig struct {
	DebounceMillis int `yaml:"debounce_millis"`
}

// LoggingConfig sets the minimum log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Chunker     ChunkerConfig     `yaml:"chunker"`
	Embedder    EmbedderConfig    `yaml:"embedder"`
	VectorStore VectorStoreConfig `yaml:"vector_store"`
	Reranker    RerankerConfig    `yaml:"reranker"`
	LLM         LLMConfig         `yaml:"llm"`
	Translator  TranslatorConfig  `yaml:"translator"`
	Watcher     WatcherConfig     `yaml:"watcher"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/videorag/config.yaml.
// If neither exists, it writes defaults to the latter and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks cross-field requirements that defaults cannot repair.
func (c *AppConfig) Validate() error {
	switch c.Embedder.Type {
	case "tfidf", "openai", "":
	default:
		return fmt.Errorf("unknown embedder type %q", c.Embedder.Type)
	}
	switch c.VectorStore.Type {
	case "memory", "qdrant", "":
	default:
		return fmt.Errorf("unknown vector store type %q", c.VectorStore.Type)
	}
	if c.VectorStore.Type == "qdrant" {
		if c.VectorStore.Qdrant == nil || c.VectorStore.Qdrant.URL == "" {
			return fmt.Errorf("vector_store.qdrant.url is required")
		}
	}
	switch c.Reranker.Type {
	case "lexical", "http", "":
	default:
		return fmt.Errorf("unknown reranker type %q", c.Reranker.Type)
	}
	if c.Reranker.Type == "http" {
		if c.Reranker.HTTP == nil || c.Reranker.HTTP.BaseURL == "" {
			return fmt.Errorf("reranker.http.base_url is required")
		}
	}
	switch c.LLM.Provider {
	case "openai", "gemini", "":
	default:
		return fmt.Errorf("unknown llm provider %q", c.LLM.Provider)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "videorag", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Chunker:     ChunkerConfig{MaxWords: 600, OverlapWords: 100},
		Embedder:    EmbedderConfig{Type: "tfidf"},
		VectorStore: VectorStoreConfig{Type: "memory"},
		Reranker:    RerankerConfig{Type: "lexical"},
		LLM: LLMConfig{
			Provider:      "openai",
			Model:         "Qwen/Qwen2.5-7B-Instruct",
			BaseURL:       "https://router.huggingface.co/v1",
			CredentialEnv: "HF_TOKEN",
		},
		Translator: TranslatorConfig{TimeoutSecs: 10, PaceMillis: 1000},
		Watcher:    WatcherConfig{DebounceMillis: 500},
		Logging:    LoggingConfig{Level: "info"},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if cfg.Chunker.MaxWords == 0 {
		cfg.Chunker.MaxWords = def.Chunker.MaxWords
	}
	if cfg.Chunker.OverlapWords == 0 {
		cfg.Chunker.OverlapWords = def.Chunker.OverlapWords
	}
	if cfg.Embedder.Type == "" {
		cfg.Embedder.Type = def.Embedder.Type
	}
	if cfg.Embedder.Type == "openai" && cfg.Embedder.OpenAI != nil {
		if cfg.Embedder.OpenAI.APIKeyEnv == "" {
			cfg.Embedder.OpenAI.APIKeyEnv = "EMBEDDINGS_API_KEY"
		}
		if cfg.Embedder.OpenAI.TimeoutSecs == 0 {
			cfg.Embedder.OpenAI.TimeoutSecs = 30
		}
	}
	if cfg.VectorStore.Type == "" {
		cfg.VectorStore.Type = def.VectorStore.Type
	}
	if cfg.VectorStore.Qdrant != nil && cfg.VectorStore.Qdrant.Collection == "" {
		cfg.VectorStore.Qdrant.Collection = "videorag"
	}
	if cfg.Reranker.Type == "" {
		cfg.Reranker.Type = def.Reranker.Type
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = def.LLM.Provider
	}
	if cfg.LLM.Model == "" {
		if cfg.LLM.Provider == "gemini" {
			cfg.LLM.Model = "gemini-2.5-flash"
		} else {
			cfg.LLM.Model = def.LLM.Model
		}
	}
	if cfg.LLM.Provider == "openai" && cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = def.LLM.BaseURL
	}
	if cfg.LLM.CredentialEnv == "" {
		cfg.LLM.CredentialEnv = def.LLM.CredentialEnv
	}
	if cfg.Translator.TimeoutSecs == 0 {
		cfg.Translator.TimeoutSecs = def.Translator.TimeoutSecs
	}
	if cfg.Translator.PaceMillis == 0 {
		cfg.Translator.PaceMillis = def.Translator.PaceMillis
	}
	if cfg.Watcher.DebounceMillis == 0 {
		cfg.Watcher.DebounceMillis = def.Watcher.DebounceMillis
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
}
