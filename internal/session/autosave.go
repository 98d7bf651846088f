// Package session holds the per-page application session: the debounced
// autosaver, the one-shot transfer handoff, and the mutable UI state that
// would otherwise live in module globals.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/louisbranch/tabletop/internal/storage"
)

// DefaultAutosaveDelay is the debounce window for coalescing edits.
const DefaultAutosaveDelay = 2 * time.Second

type pendingSave struct {
	system string
	id     string
	doc    []byte
}

// Autosaver coalesces sheet writes behind a debounce delay. A later edit
// replaces the pending document and reschedules the timer; Flush (and
// Close, for page unload) writes the pending document immediately so no
// edit is lost.
type Autosaver struct {
	store storage.SheetStore
	delay time.Duration
	log   *zap.SugaredLogger

	mu           sync.Mutex
	timer        *time.Timer
	pending      *pendingSave
	lastErr      error
	quotaWarning bool
}

// NewAutosaver returns an autosaver writing to the provided store.
func NewAutosaver(store storage.SheetStore, delay time.Duration, log *zap.SugaredLogger) *Autosaver {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Autosaver{store: store, delay: delay, log: log}
}

// Queue schedules a save of the document, replacing any pending save and
// restarting the debounce timer.
func (a *Autosaver) Queue(system, id string, doc []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pending = &pendingSave{system: system, id: id, doc: doc}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, func() {
		if err := a.Flush(context.Background()); err != nil {
			a.log.Errorw("autosave failed", "system", system, "id", id, "error", err)
		}
	})
}

// Flush writes any pending save immediately. Quota failures flip the
// blocking warning so the UI can urge an export before more edits are
// lost; other failures are recorded and surfaced via LastError.
func (a *Autosaver) Flush(ctx context.Context) error {
	a.mu.Lock()
	pending := a.pending
	a.pending = nil
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()

	if pending == nil {
		return nil
	}

	err := a.store.Put(ctx, pending.system, pending.id, pending.doc)

	a.mu.Lock()
	a.lastErr = err
	if errors.Is(err, storage.ErrQuotaExceeded) {
		a.quotaWarning = true
	}
	a.mu.Unlock()
	return err
}

// Close flushes any pending save. Call on page unload so the debounce
// never swallows the final edit.
func (a *Autosaver) Close(ctx context.Context) error {
	return a.Flush(ctx)
}

// LastError returns the result of the most recent save attempt.
func (a *Autosaver) LastError() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// QuotaWarning reports whether a save has failed for lack of space. The
// warning is sticky until ClearQuotaWarning; the user should export a
// backup before continuing.
func (a *Autosaver) QuotaWarning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.quotaWarning
}

// ClearQuotaWarning resets the quota warning after the user acknowledges
// it.
func (a *Autosaver) ClearQuotaWarning() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.quotaWarning = false
}
