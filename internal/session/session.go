package session

import (
	"sync"

	"github.com/google/uuid"

	"videorag/internal/domain"
	"videorag/internal/vectorstore"
)

// Session owns one indexed transcript corpus: the vector store handle and
// the full ordered document list. State is replaced as a whole under the
// write lock, so readers always see a matching store/document pair.
type Session struct {
	ID string

	mu       sync.RWMutex
	store    vectorstore.Storage
	docs     []domain.Document
	language string
}

// Replace installs a freshly built corpus, superseding any previous one.
func (s *Session) Replace(store vectorstore.Storage, docs []domain.Document, language string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = store
	s.docs = docs
	s.language = language
}

// Snapshot returns the current store and document list. The store is nil
// when nothing has been indexed yet.
func (s *Session) Snapshot() (vectorstore.Storage, []domain.Document) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store, s.docs
}

// Language reports the detected source language of the indexed transcript.
func (s *Session) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// Indexed reports whether the session holds a live corpus.
func (s *Session) Indexed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store != nil
}

// Clear wipes the session state.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store != nil {
		_ = s.store.Clear()
	}
	s.store = nil
	s.docs = nil
	s.language = ""
}

// Store tracks live sessions by ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers and returns a new empty session.
func (s *Store) Create() *Session {
	sess := &Session{ID: uuid.NewString()}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session with the given ID.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Remove clears and forgets the session with the given ID.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if ok {
		sess.Clear()
	}
}
