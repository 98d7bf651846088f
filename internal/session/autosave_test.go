package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/tabletop/internal/storage"
)

type fakeStore struct {
	mu       sync.Mutex
	puts     [][]byte
	failWith error
}

func (f *fakeStore) Put(ctx context.Context, system, id string, doc []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.puts = append(f.puts, append([]byte{}, doc...))
	return nil
}

func (f *fakeStore) Get(ctx context.Context, system, id string) ([]byte, error) {
	return nil, storage.ErrNotFound
}

func (f *fakeStore) Delete(ctx context.Context, system, id string) error { return nil }

func (f *fakeStore) List(ctx context.Context, system string) ([]string, error) { return nil, nil }

func (f *fakeStore) saved() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte{}, f.puts...)
}

// TestQueueCoalescesEdits ensures a later edit replaces the pending save
// so only the final document is written.
func TestQueueCoalescesEdits(t *testing.T) {
	store := &fakeStore{}
	saver := NewAutosaver(store, 10*time.Millisecond, nil)

	saver.Queue("fate", "zird", []byte("v1"))
	saver.Queue("fate", "zird", []byte("v2"))

	deadline := time.Now().Add(time.Second)
	for len(store.saved()) == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	saved := store.saved()
	if len(saved) != 1 {
		t.Fatalf("expected a single coalesced write, got %d", len(saved))
	}
	if string(saved[0]) != "v2" {
		t.Fatalf("expected latest document, got %s", saved[0])
	}
}

// TestCloseFlushesPendingSave ensures page unload never loses the final
// edit to the debounce.
func TestCloseFlushesPendingSave(t *testing.T) {
	store := &fakeStore{}
	saver := NewAutosaver(store, time.Hour, nil)

	saver.Queue("fate", "zird", []byte("final"))
	if err := saver.Close(context.Background()); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	saved := store.saved()
	if len(saved) != 1 || string(saved[0]) != "final" {
		t.Fatalf("expected flushed document, got %v", saved)
	}
}

// TestFlushWithoutPendingIsNoOp ensures a second flush writes nothing.
func TestFlushWithoutPendingIsNoOp(t *testing.T) {
	store := &fakeStore{}
	saver := NewAutosaver(store, time.Hour, nil)

	saver.Queue("fate", "zird", []byte("doc"))
	if err := saver.Flush(context.Background()); err != nil {
		t.Fatalf("Flush returned error: %v", err)
	}
	if err := saver.Flush(context.Background()); err != nil {
		t.Fatalf("second Flush returned error: %v", err)
	}
	if len(store.saved()) != 1 {
		t.Fatalf("expected one write, got %d", len(store.saved()))
	}
}

// TestQuotaWarningIsSticky ensures quota failures flip the blocking
// warning until acknowledged.
func TestQuotaWarningIsSticky(t *testing.T) {
	store := &fakeStore{failWith: storage.ErrQuotaExceeded}
	saver := NewAutosaver(store, time.Hour, nil)

	saver.Queue("fate", "zird", []byte("doc"))
	if err := saver.Flush(context.Background()); err == nil {
		t.Fatal("expected quota error")
	}
	if !saver.QuotaWarning() {
		t.Fatal("expected quota warning set")
	}
	if saver.LastError() == nil {
		t.Fatal("expected last error recorded")
	}

	saver.ClearQuotaWarning()
	if saver.QuotaWarning() {
		t.Fatal("expected quota warning cleared")
	}
}

// TestSessionCharacterIDCounter ensures the counter is monotonic and
// restorable from a loaded tracker.
func TestSessionCharacterIDCounter(t *testing.T) {
	s := New(nil, nil)
	if id := s.NextCharacterID(); id != 1 {
		t.Fatalf("expected first id 1, got %d", id)
	}
	s.RestoreCharacterID(10)
	if id := s.NextCharacterID(); id != 11 {
		t.Fatalf("expected restored counter to continue at 11, got %d", id)
	}
	s.RestoreCharacterID(3) // never rolls back
	if id := s.NextCharacterID(); id != 12 {
		t.Fatalf("expected counter to stay monotonic, got %d", id)
	}
}

// TestSessionCollapseState ensures shared collapse state round-trips.
func TestSessionCollapseState(t *testing.T) {
	s := New(nil, nil)
	s.SetCollapsed("stunts", true)
	if !s.Collapsed("stunts") || s.Collapsed("skills") {
		t.Fatal("expected only stunts collapsed")
	}
	sections := s.CollapsedSections()
	if len(sections) != 1 || !sections["stunts"] {
		t.Fatalf("expected copied collapse state, got %v", sections)
	}
}
