package session

import (
	"testing"

	"videorag/internal/domain"
	"videorag/internal/vectorstore/memory"
)

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore()
	a := store.Create()
	b := store.Create()
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("sessions must get distinct non-empty IDs: %q, %q", a.ID, b.ID)
	}
	got, ok := store.Get(a.ID)
	if !ok || got != a {
		t.Errorf("Get(%q) did not return the created session", a.ID)
	}
	if _, ok := store.Get("missing"); ok {
		t.Error("Get returned a session for an unknown ID")
	}
}

func TestSessionReplaceAndSnapshot(t *testing.T) {
	sess := NewStore().Create()
	if sess.Indexed() {
		t.Error("fresh session reports an index")
	}
	vs := memory.NewStorage()
	docs := []domain.Document{{Content: "a", TimeRange: "0:00 - 1:00"}}
	sess.Replace(vs, docs, "en")

	store, snap := sess.Snapshot()
	if store == nil || len(snap) != 1 {
		t.Fatalf("snapshot lost state: store=%v docs=%d", store, len(snap))
	}
	if sess.Language() != "en" {
		t.Errorf("language = %q", sess.Language())
	}
}

func TestSessionClear(t *testing.T) {
	store := NewStore()
	sess := store.Create()
	sess.Replace(memory.NewStorage(), []domain.Document{{Content: "a"}}, "en")
	sess.Clear()
	if sess.Indexed() {
		t.Error("session still indexed after Clear")
	}
	if _, docs := sess.Snapshot(); docs != nil {
		t.Error("documents survive Clear")
	}

	store.Remove(sess.ID)
	if _, ok := store.Get(sess.ID); ok {
		t.Error("session still registered after Remove")
	}
}
