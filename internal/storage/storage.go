// Package storage defines the persistence interfaces for sheet documents
// and the one-shot transfer slots used for page-to-page handoffs.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrQuotaExceeded indicates the store refused a write for lack of space.
// Callers surface this as a blocking warning: further edits risk silent
// data loss until the user exports a backup.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// SheetStore persists raw sheet documents keyed by game system and id.
type SheetStore interface {
	Put(ctx context.Context, system, id string, doc []byte) error
	Get(ctx context.Context, system, id string) ([]byte, error)
	Delete(ctx context.Context, system, id string) error
	List(ctx context.Context, system string) ([]string, error)
}

// TransferStore persists one-shot handoff slots with consume-once reads.
type TransferStore interface {
	PutTransfer(ctx context.Context, slot string, doc []byte) error
	// TakeTransfer reads and clears a slot in one step. A second read, or
	// a read of a slot never written, returns ok=false with no error.
	TakeTransfer(ctx context.Context, slot string) (doc []byte, ok bool, err error)
}

// Store combines the persistence surfaces the application needs.
type Store interface {
	SheetStore
	TransferStore
	Close() error
}
