// Package namegen provides the SQLite-backed random name generator.
package namegen

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/valyala/fastrand"
	_ "modernc.org/sqlite"

	"github.com/louisbranch/tabletop/internal/platform/storage/sqlitemigrate"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrNoMatches indicates no stored name satisfies the query filters.
var ErrNoMatches = errors.New("no names match the query")

// ErrInvalidCount indicates a non-positive requested name count.
var ErrInvalidCount = errors.New("count must be at least 1")

// candidateCacheSize bounds the per-filter candidate list cache.
const candidateCacheSize = 128

// Query filters the name pool. Empty fields match everything.
type Query struct {
	Kind   string
	Origin string
	Count  int
}

// Store provides SQLite-backed name persistence and random picks.
type Store struct {
	sqlDB *sql.DB
	cache *lru.Cache
}

// Open opens and migrates a name database at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrationsFS, "migrations"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	cache, err := lru.New(candidateCacheSize)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create cache: %w", err)
	}

	return &Store{sqlDB: sqlDB, cache: cache}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Random returns Count names drawn uniformly (with replacement) from the
// pool matching the query.
func (s *Store) Random(ctx context.Context, q Query) ([]string, error) {
	if q.Count < 1 {
		return nil, ErrInvalidCount
	}

	candidates, err := s.candidates(ctx, q.Kind, q.Origin)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoMatches
	}

	names := make([]string, q.Count)
	for i := range names {
		names[i] = candidates[fastrand.Uint32n(uint32(len(candidates)))]
	}
	return names, nil
}

// Add inserts a single name into the pool.
func (s *Store) Add(ctx context.Context, name, kind, origin string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if _, err := s.sqlDB.ExecContext(
		ctx,
		"INSERT INTO names (name, kind, origin) VALUES (?, ?, ?)",
		name, strings.TrimSpace(kind), strings.TrimSpace(origin),
	); err != nil {
		return fmt.Errorf("insert name: %w", err)
	}
	s.cache.Purge()
	return nil
}

// Count returns the number of names matching the filters.
func (s *Store) Count(ctx context.Context, kind, origin string) (int, error) {
	row := s.sqlDB.QueryRowContext(
		ctx,
		"SELECT COUNT(*) FROM names WHERE (kind = ? OR ? = '') AND (origin = ? OR ? = '')",
		kind, kind, origin, origin,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count names: %w", err)
	}
	return count, nil
}

// candidates returns the matching name list, caching per filter pair so
// repeated rolls against the same filters skip the query.
func (s *Store) candidates(ctx context.Context, kind, origin string) ([]string, error) {
	cacheKey := kind + "\x00" + origin
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.([]string), nil
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		"SELECT name FROM names WHERE (kind = ? OR ? = '') AND (origin = ? OR ? = '') ORDER BY id",
		kind, kind, origin, origin,
	)
	if err != nil {
		return nil, fmt.Errorf("query names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate names: %w", err)
	}

	s.cache.Add(cacheKey, names)
	return names, nil
}
