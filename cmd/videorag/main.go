package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"videorag/internal/chunker"
	"videorag/internal/config"
	"videorag/internal/domain"
	"videorag/internal/embedding"
	openaiembed "videorag/internal/embedding/openai"
	"videorag/internal/embedding/tfidf"
	"videorag/internal/llm"
	"videorag/internal/llm/gemini"
	openaillm "videorag/internal/llm/openai"
	"videorag/internal/logger"
	"videorag/internal/normalize"
	"videorag/internal/planner"
	"videorag/internal/rerank"
	"videorag/internal/rerank/httpapi"
	"videorag/internal/rerank/lexical"
	"videorag/internal/retriever"
	"videorag/internal/service"
	"videorag/internal/session"
	"videorag/internal/synthesizer"
	"videorag/internal/transcript"
	"videorag/internal/translate"
	"videorag/internal/tui"
	"videorag/internal/vectorstore"
	"videorag/internal/vectorstore/memory"
	"videorag/internal/vectorstore/qdrant"
	"videorag/internal/watcher"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to config.yaml (default: ./config.yaml or ~/.config/videorag/config.yaml)")
	transcriptPath := flag.String("transcript", "", "path to the transcript file (.json or .srt)")
	watch := flag.Bool("watch", false, "re-index when the transcript file changes")
	mode := flag.String("mode", "concise", "initial answer mode: concise or detailed")
	flag.Parse()

	if *transcriptPath == "" {
		return fmt.Errorf("-transcript is required")
	}
	if *mode != "concise" && *mode != "detailed" {
		return fmt.Errorf("unknown mode %q", *mode)
	}

	var cfg *config.AppConfig
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, _, err = config.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)
	ctx := context.Background()

	embedder, err := buildEmbedder(cfg)
	if err != nil {
		return err
	}
	newStore, err := buildStoreFactory(cfg)
	if err != nil {
		return err
	}
	reranker, err := buildReranker(cfg)
	if err != nil {
		return err
	}
	model, err := buildChatModel(cfg)
	if err != nil {
		return err
	}

	translator := translate.NewClient(translate.Config{
		BaseURL: cfg.Translator.BaseURL,
		Timeout: time.Duration(cfg.Translator.TimeoutSecs) * time.Second,
	})
	normalizer := normalize.New(
		translator,
		normalize.WhatlangDetector{},
		time.Duration(cfg.Translator.PaceMillis)*time.Millisecond,
		log,
	)

	svc := service.New(
		chunker.NewWindowChunker(cfg.Chunker.MaxWords, cfg.Chunker.OverlapWords),
		normalizer,
		embedder,
		newStore,
		planner.New(model, planner.NewKeywordClassifier(), log),
		retriever.New(embedder, reranker),
		synthesizer.New(model),
		log,
	)

	sessions := session.NewStore()
	sess := sessions.Create()

	index := func(ctx context.Context, path string) error {
		segments, err := transcript.Load(path)
		if err != nil {
			return err
		}
		return svc.Save(ctx, sess, segments)
	}
	if err := index(ctx, *transcriptPath); err != nil {
		return fmt.Errorf("index transcript: %w", err)
	}

	if *watch {
		w, err := watcher.New(*transcriptPath, index,
			time.Duration(cfg.Watcher.DebounceMillis)*time.Millisecond, log)
		if err != nil {
			return fmt.Errorf("watch transcript: %w", err)
		}
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		defer w.Stop()
		go func() {
			if err := w.Start(watchCtx); err != nil {
				log.Error(watchCtx, "watcher stopped: %v", err)
			}
		}()
	}

	credential := os.Getenv(cfg.LLM.CredentialEnv)
	port := &chatPort{svc: svc, sess: sess, credential: credential}

	app := tui.New(port, filepath.Base(*transcriptPath), *mode)
	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

// chatPort adapts the ask pipeline to the TUI, binding one session and the
// caller's model credential.
type chatPort struct {
	svc        *service.AskService
	sess       *session.Session
	credential string
}

func (p *chatPort) Ask(ctx context.Context, question, mode string) (domain.AnswerResult, error) {
	return p.svc.Ask(ctx, p.sess, service.AskRequest{
		Question:   question,
		Mode:       mode,
		Credential: p.credential,
	})
}

func (p *chatPort) Clear(ctx context.Context) {
	p.svc.Clear(ctx, p.sess)
}

func buildEmbedder(cfg *config.AppConfig) (embedding.Embedder, error) {
	switch cfg.Embedder.Type {
	case "openai":
		oc := cfg.Embedder.OpenAI
		if oc == nil {
			return nil, fmt.Errorf("embedder.openai section is required for the openai embedder")
		}
		return openaiembed.NewClient(openaiembed.Config{
			BaseURL:   oc.BaseURL,
			APIKeyEnv: oc.APIKeyEnv,
			Model:     oc.Model,
			Timeout:   time.Duration(oc.TimeoutSecs) * time.Second,
		})
	default:
		return tfidf.NewEmbedder(), nil
	}
}

func buildStoreFactory(cfg *config.AppConfig) (service.StoreFactory, error) {
	switch cfg.VectorStore.Type {
	case "qdrant":
		qc := cfg.VectorStore.Qdrant
		if qc == nil {
			return nil, fmt.Errorf("vector_store.qdrant section is required for the qdrant store")
		}
		return func(sessionID string) vectorstore.Storage {
			return qdrant.NewStorage(qdrant.Config{
				URL:        qc.URL,
				APIKey:     qc.APIKey,
				Collection: qc.Collection + "_" + sessionID,
				Timeout:    time.Duration(qc.TimeoutSecs) * time.Second,
			})
		}, nil
	default:
		return func(string) vectorstore.Storage { return memory.NewStorage() }, nil
	}
}

func buildReranker(cfg *config.AppConfig) (rerank.Reranker, error) {
	switch cfg.Reranker.Type {
	case "http":
		hc := cfg.Reranker.HTTP
		if hc == nil {
			return nil, fmt.Errorf("reranker.http section is required for the http reranker")
		}
		return httpapi.NewClient(httpapi.Config{
			BaseURL: hc.BaseURL,
			APIKey:  os.Getenv(hc.APIKeyEnv),
			Timeout: time.Duration(hc.TimeoutSecs) * time.Second,
		}), nil
	default:
		return lexical.NewReranker(), nil
	}
}

func buildChatModel(cfg *config.AppConfig) (llm.ChatModel, error) {
	switch cfg.LLM.Provider {
	case "gemini":
		return gemini.NewClient(cfg.LLM.Model), nil
	default:
		return openaillm.NewClient(openaillm.Config{
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
		}), nil
	}
}
