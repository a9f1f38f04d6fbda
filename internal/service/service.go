package service

import (
	"context"
	"strings"

	"videorag/internal/domain"
	"videorag/internal/embedding"
	"videorag/internal/logger"
	"videorag/internal/normalize"
	"videorag/internal/planner"
	"videorag/internal/retriever"
	"videorag/internal/session"
	"videorag/internal/synthesizer"
	"videorag/internal/vectorstore"
)

// StoreFactory builds a fresh vector store for one session's corpus.
type StoreFactory func(sessionID string) vectorstore.Storage

// AskRequest carries one question through the pipeline. The credential is
// the caller's model API token, passed through and never stored.
type AskRequest struct {
	Question   string
	Mode       string
	Credential string
}

// AskService wires the full pipeline: Save chunks, normalizes and indexes a
// transcript into a session; Ask plans, retrieves and synthesizes an answer
// against that session; Clear wipes the session corpus.
type AskService struct {
	chunker     domain.Chunker
	normalizer  *normalize.Normalizer
	embedder    embedding.Embedder
	newStore    StoreFactory
	planner     *planner.Planner
	retriever   *retriever.Retriever
	synthesizer *synthesizer.Synthesizer
	logger      logger.Logger
}

func New(
	chunker domain.Chunker,
	normalizer *normalize.Normalizer,
	embedder embedding.Embedder,
	newStore StoreFactory,
	pl *planner.Planner,
	rt *retriever.Retriever,
	sy *synthesizer.Synthesizer,
	log logger.Logger,
) *AskService {
	return &AskService{
		chunker:     chunker,
		normalizer:  normalizer,
		embedder:    embedder,
		newStore:    newStore,
		planner:     pl,
		retriever:   rt,
		synthesizer: sy,
		logger:      log.Named("service"),
	}
}

// Save chunks, normalizes, embeds and indexes the transcript, then swaps
// the finished corpus into the session. The session keeps serving its old
// corpus until the swap.
func (s *AskService) Save(ctx context.Context, sess *session.Session, segments []domain.Segment) error {
	if len(segments) == 0 {
		return domain.E(domain.KindInput, "no transcript provided")
	}

	lang := s.normalizer.DetectLanguage(segments)
	chunks := s.chunker.Chunk(segments)
	if len(chunks) == 0 {
		return domain.E(domain.KindIndexing, "transcript produced no chunks")
	}
	chunks = s.normalizer.Normalize(ctx, chunks, lang)

	docs := make([]domain.Document, len(chunks))
	texts := make([]string, len(chunks))
	for i, ch := range chunks {
		docs[i] = domain.Document{Content: ch.Text, TimeRange: ch.TimeRange}
		texts[i] = ch.Text
	}

	if err := s.embedder.Prepare(texts); err != nil {
		return domain.Wrap(domain.KindIndexing, "prepare embedder", err)
	}
	vectors := make([][]float64, len(docs))
	for i := range docs {
		vec, err := s.embedder.Embed(docs[i].Content)
		if err != nil {
			return domain.Wrap(domain.KindIndexing, "embed chunk", err)
		}
		vectors[i] = vec
	}

	store := s.newStore(sess.ID)
	if err := store.Init(s.embedder.Dimension()); err != nil {
		return domain.Wrap(domain.KindIndexing, "init vector store", err)
	}
	if err := store.Upsert(docs, vectors); err != nil {
		return domain.Wrap(domain.KindIndexing, "index documents", err)
	}

	sess.Replace(store, docs, lang)
	s.logger.Info(ctx, "indexed %d chunks (lang=%s) into session %s", len(docs), lang, sess.ID)
	return nil
}

// Ask answers one question against the session's indexed corpus.
func (s *AskService) Ask(ctx context.Context, sess *session.Session, req AskRequest) (domain.AnswerResult, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return domain.AnswerResult{}, domain.E(domain.KindInput, "no question provided")
	}
	store, docs := sess.Snapshot()
	if store == nil {
		return domain.AnswerResult{}, domain.E(domain.KindInput, "no video indexed")
	}
	if req.Credential == "" {
		return domain.AnswerResult{}, domain.E(domain.KindAuth, "missing model credential")
	}

	plan, err := s.planner.Plan(ctx, req.Credential, question)
	if err != nil {
		return domain.AnswerResult{}, err
	}
	retrieved, err := s.retriever.Retrieve(ctx, plan.SearchQuery, plan.Intent, store, docs)
	if err != nil {
		return domain.AnswerResult{}, err
	}
	return s.synthesizer.Synthesize(ctx, req.Credential, plan.SearchQuery, retrieved, req.Mode)
}

// Clear wipes the session's indexed corpus.
func (s *AskService) Clear(ctx context.Context, sess *session.Session) {
	sess.Clear()
	s.logger.Info(ctx, "session %s cleared", sess.ID)
}
