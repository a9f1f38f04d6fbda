package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Chunker.MaxWords != 600 || cfg.Chunker.OverlapWords != 100 {
		t.Errorf("chunker defaults = %+v", cfg.Chunker)
	}
	if cfg.Embedder.Type != "tfidf" || cfg.VectorStore.Type != "memory" || cfg.Reranker.Type != "lexical" {
		t.Errorf("component defaults wrong: %+v", cfg)
	}
	if cfg.LLM.CredentialEnv != "HF_TOKEN" {
		t.Errorf("credential env = %q", cfg.LLM.CredentialEnv)
	}
	if cfg.Watcher.DebounceMillis != 500 {
		t.Errorf("watcher debounce = %d", cfg.Watcher.DebounceMillis)
	}
}

func TestLoadAppliesDefaultsToPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
llm:
  provider: gemini
vector_store:
  type: qdrant
  qdrant:
    url: http://localhost:6333
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LLM.Model != "gemini-2.5-flash" {
		t.Errorf("gemini default model = %q", cfg.LLM.Model)
	}
	if cfg.VectorStore.Qdrant.Collection != "videorag" {
		t.Errorf("qdrant default collection = %q", cfg.VectorStore.Qdrant.Collection)
	}
	if cfg.Chunker.MaxWords != 600 {
		t.Errorf("chunker max words = %d", cfg.Chunker.MaxWords)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"defaults are valid", func(c *AppConfig) {}, false},
		{"unknown embedder", func(c *AppConfig) { c.Embedder.Type = "word2vec" }, true},
		{"unknown store", func(c *AppConfig) { c.VectorStore.Type = "pinecone" }, true},
		{"qdrant without url", func(c *AppConfig) {
			c.VectorStore.Type = "qdrant"
			c.VectorStore.Qdrant = &QdrantConfig{}
		}, true},
		{"http reranker without url", func(c *AppConfig) {
			c.Reranker.Type = "http"
			c.Reranker.HTTP = &HTTPRerankerConfig{}
		}, true},
		{"unknown llm provider", func(c *AppConfig) { c.LLM.Provider = "llama-local" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultConfig()
	cfg.Chunker.MaxWords = 300
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Chunker.MaxWords != 300 {
		t.Errorf("round trip lost value: %d", got.Chunker.MaxWords)
	}
}
