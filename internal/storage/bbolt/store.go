// Package bbolt provides the BoltDB-backed sheet and transfer store.
package bbolt

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/louisbranch/tabletop/internal/storage"
)

const (
	sheetBucket    = "sheet"
	transferBucket = "transfer"
)

// Store provides a BoltDB-backed document store.
type Store struct {
	db *bbolt.DB
}

// Open opens a BoltDB-backed store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put persists a sheet document.
func (s *Store) Put(ctx context.Context, system, id string, doc []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(system) == "" || strings.TrimSpace(id) == "" {
		return fmt.Errorf("system and id are required")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sheetBucket))
		if bucket == nil {
			return fmt.Errorf("sheet bucket is missing")
		}
		return bucket.Put(sheetKey(system, id), doc)
	})
}

// Get fetches a sheet document.
func (s *Store) Get(ctx context.Context, system, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	var doc []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sheetBucket))
		if bucket == nil {
			return fmt.Errorf("sheet bucket is missing")
		}
		payload := bucket.Get(sheetKey(system, id))
		if payload == nil {
			return storage.ErrNotFound
		}
		doc = append([]byte{}, payload...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes a sheet document. Deleting a missing document is a no-op.
func (s *Store) Delete(ctx context.Context, system, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sheetBucket))
		if bucket == nil {
			return fmt.Errorf("sheet bucket is missing")
		}
		return bucket.Delete(sheetKey(system, id))
	})
}

// List returns the ids of all sheets stored for a system.
func (s *Store) List(ctx context.Context, system string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	prefix := sheetKey(system, "")
	ids := []string{}
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sheetBucket))
		if bucket == nil {
			return fmt.Errorf("sheet bucket is missing")
		}
		cursor := bucket.Cursor()
		for key, _ := cursor.Seek(prefix); key != nil && strings.HasPrefix(string(key), string(prefix)); key, _ = cursor.Next() {
			ids = append(ids, strings.TrimPrefix(string(key), string(prefix)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// PutTransfer writes a one-shot handoff slot.
func (s *Store) PutTransfer(ctx context.Context, slot string, doc []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(slot) == "" {
		return fmt.Errorf("slot is required")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(transferBucket))
		if bucket == nil {
			return fmt.Errorf("transfer bucket is missing")
		}
		return bucket.Put([]byte(slot), doc)
	})
}

// TakeTransfer reads and clears a handoff slot in a single transaction.
// A slot that was never written, or was already consumed, returns ok=false
// with no error so stale back-navigation reads stay silent.
func (s *Store) TakeTransfer(ctx context.Context, slot string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if s == nil || s.db == nil {
		return nil, false, fmt.Errorf("storage is not configured")
	}

	var doc []byte
	found := false
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(transferBucket))
		if bucket == nil {
			return fmt.Errorf("transfer bucket is missing")
		}
		payload := bucket.Get([]byte(slot))
		if payload == nil {
			return nil
		}
		doc = append([]byte{}, payload...)
		found = true
		return bucket.Delete([]byte(slot))
	})
	if err != nil {
		return nil, false, err
	}
	return doc, found, nil
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{sheetBucket, transferBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

func sheetKey(system, id string) []byte {
	return []byte(system + "/" + id)
}
