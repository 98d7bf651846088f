package namegen

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidRow indicates a CSV row without a name column.
var ErrInvalidRow = errors.New("csv row must have a name column")

// ImportCSV loads name rows from a "name,kind,origin" CSV stream. The
// kind and origin columns are optional per row; a header row named "name"
// is skipped. Returns the number of names imported. The whole import is
// one transaction, so a bad row leaves the pool untouched.
func ImportCSV(ctx context.Context, s *Store, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import transaction: %w", err)
	}

	imported := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("read csv: %w", err)
		}

		name := ""
		kind := ""
		origin := ""
		if len(record) > 0 {
			name = strings.TrimSpace(record[0])
		}
		if len(record) > 1 {
			kind = strings.TrimSpace(record[1])
		}
		if len(record) > 2 {
			origin = strings.TrimSpace(record[2])
		}

		if imported == 0 && strings.EqualFold(name, "name") {
			continue // header row
		}
		if name == "" {
			_ = tx.Rollback()
			return 0, ErrInvalidRow
		}

		if _, err := tx.ExecContext(
			ctx,
			"INSERT INTO names (name, kind, origin) VALUES (?, ?, ?)",
			name, kind, origin,
		); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert name %q: %w", name, err)
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	s.cache.Purge()
	return imported, nil
}
