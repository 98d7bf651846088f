package session

import (
	"context"
	"sync"

	"github.com/louisbranch/tabletop/internal/storage"
)

// Session is the explicit application-session object handlers receive.
// It owns the state the original kept in module globals: the autosave
// timer, the character id counter, and the shared collapse state.
type Session struct {
	Autosaver *Autosaver
	Transfers *Transfers

	mu        sync.Mutex
	idCounter int
	collapsed map[string]bool
}

// New returns a session wired to the provided store.
func New(autosaver *Autosaver, transfers *Transfers) *Session {
	return &Session{
		Autosaver: autosaver,
		Transfers: transfers,
		collapsed: map[string]bool{},
	}
}

// NextCharacterID returns the next tracker character id.
func (s *Session) NextCharacterID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idCounter++
	return s.idCounter
}

// RestoreCharacterID seeds the counter from a loaded tracker document.
func (s *Session) RestoreCharacterID(counter int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if counter > s.idCounter {
		s.idCounter = counter
	}
}

// CharacterIDCounter returns the current counter for serialization.
func (s *Session) CharacterIDCounter() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idCounter
}

// SetCollapsed records the shared collapse state for a tracker section.
func (s *Session) SetCollapsed(section string, collapsed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collapsed[section] = collapsed
}

// Collapsed reports the shared collapse state for a tracker section.
func (s *Session) Collapsed(section string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collapsed[section]
}

// CollapsedSections returns a copy of the collapse state for
// serialization.
func (s *Session) CollapsedSections() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool, len(s.collapsed))
	for section, collapsed := range s.collapsed {
		out[section] = collapsed
	}
	return out
}

// Transfers moves sheet documents between pages through consume-once
// storage slots.
type Transfers struct {
	store storage.TransferStore
}

// NewTransfers returns a transfer handoff over the provided store.
func NewTransfers(store storage.TransferStore) *Transfers {
	return &Transfers{store: store}
}

// Put stages a document for the receiving page.
func (t *Transfers) Put(ctx context.Context, slot string, doc []byte) error {
	return t.store.PutTransfer(ctx, slot, doc)
}

// Take consumes a staged document. A second read of the same slot, or a
// read after back-navigation to a page whose handoff already happened,
// returns ok=false with no error.
func (t *Transfers) Take(ctx context.Context, slot string) ([]byte, bool, error) {
	return t.store.TakeTransfer(ctx, slot)
}
