// Package sqlite stores the hexagram dataset in a SQLite content database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/qrzn23/iching/internal/hexagram"
	apperrors "github.com/qrzn23/iching/internal/platform/errors"
	"github.com/qrzn23/iching/internal/platform/storage/sqlitemigrate"
	"github.com/qrzn23/iching/internal/storage/sqlite/migrations"
)

// Store is a SQLite-backed hexagram content store.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Meta describes the most recent import.
type Meta struct {
	Checksum   string
	EntryCount int
	ImportedAt time.Time
}

// Open opens (creating if needed) the content database at path and applies
// its migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, apperrors.New(apperrors.CodeStorageUnavailable, "storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorageUnavailable, "open sqlite db", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, apperrors.Wrap(apperrors.CodeStorageUnavailable, "ping sqlite db", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, migrations.Root); err != nil {
		_ = sqlDB.Close()
		return nil, apperrors.Wrap(apperrors.CodeStorageUnavailable, "run migrations", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the database. It is nil-safe.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutEntries replaces the stored dataset with entries and records checksum.
// Entries are validated first; nothing is written when validation fails.
func (s *Store) PutEntries(ctx context.Context, entries []hexagram.Entry, checksum string) error {
	if err := hexagram.Validate(entries); err != nil {
		return err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM hexagrams"); err != nil {
		return fmt.Errorf("clear hexagrams: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO hexagrams (
    key_primary, king_wen, name, description, judgment, image,
    lines_json, lines_commentary_json, trigram_lower, trigram_upper
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		linesJSON, err := json.Marshal(entry.Lines)
		if err != nil {
			return fmt.Errorf("encode lines for key %d: %w", entry.KeyPrimary, err)
		}
		commentaryJSON, err := json.Marshal(entry.LinesCommentary)
		if err != nil {
			return fmt.Errorf("encode commentary for key %d: %w", entry.KeyPrimary, err)
		}
		var lower, upper sql.NullString
		if entry.Trigrams != nil {
			lower = sql.NullString{String: entry.Trigrams.Lower, Valid: true}
			upper = sql.NullString{String: entry.Trigrams.Upper, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			entry.KeyPrimary, entry.KingWen, entry.Name, entry.Description, entry.Judgment, entry.Image,
			string(linesJSON), string(commentaryJSON), lower, upper,
		); err != nil {
			return fmt.Errorf("insert key %d: %w", entry.KeyPrimary, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO dataset_meta (id, checksum, entry_count, imported_at)
VALUES (1, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET checksum = excluded.checksum,
    entry_count = excluded.entry_count,
    imported_at = excluded.imported_at`,
		checksum, len(entries), s.now().UTC().UnixMilli(),
	); err != nil {
		return fmt.Errorf("record dataset meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// ListEntries returns the stored entries ordered by King Wen ordinal.
func (s *Store) ListEntries(ctx context.Context) ([]hexagram.Entry, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT
    key_primary, king_wen, name, description, judgment, image,
    lines_json, lines_commentary_json, trigram_lower, trigram_upper
FROM hexagrams ORDER BY king_wen`)
	if err != nil {
		return nil, fmt.Errorf("list hexagrams: %w", err)
	}
	defer rows.Close()

	var entries []hexagram.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list hexagrams: %w", err)
	}
	return entries, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM hexagrams").Scan(&n); err != nil {
		return 0, fmt.Errorf("count hexagrams: %w", err)
	}
	return n, nil
}

// Meta returns the last import record. ok is false before the first import.
func (s *Store) Meta(ctx context.Context) (meta Meta, ok bool, err error) {
	var importedAt int64
	err = s.sqlDB.QueryRowContext(ctx,
		"SELECT checksum, entry_count, imported_at FROM dataset_meta WHERE id = 1",
	).Scan(&meta.Checksum, &meta.EntryCount, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Meta{}, false, nil
	}
	if err != nil {
		return Meta{}, false, fmt.Errorf("read dataset meta: %w", err)
	}
	meta.ImportedAt = time.UnixMilli(importedAt).UTC()
	return meta, true, nil
}

// LoadDataset reads every stored entry into a validated Dataset. An empty
// store reports a missing dataset.
func (s *Store) LoadDataset(ctx context.Context) (*hexagram.Dataset, error) {
	entries, err := s.ListEntries(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorageUnavailable, "read dataset", err)
	}
	if len(entries) == 0 {
		return nil, apperrors.New(apperrors.CodeDatasetMissing, "content database has no hexagrams")
	}
	return hexagram.NewDataset(entries)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (hexagram.Entry, error) {
	var (
		entry          hexagram.Entry
		linesJSON      string
		commentaryJSON string
		lower, upper   sql.NullString
	)
	if err := row.Scan(
		&entry.KeyPrimary, &entry.KingWen, &entry.Name, &entry.Description, &entry.Judgment, &entry.Image,
		&linesJSON, &commentaryJSON, &lower, &upper,
	); err != nil {
		return hexagram.Entry{}, fmt.Errorf("scan hexagram: %w", err)
	}
	if err := json.Unmarshal([]byte(linesJSON), &entry.Lines); err != nil {
		return hexagram.Entry{}, apperrors.Wrap(apperrors.CodeDatasetMalformed,
			fmt.Sprintf("decode lines for key %d", entry.KeyPrimary), err)
	}
	if err := json.Unmarshal([]byte(commentaryJSON), &entry.LinesCommentary); err != nil {
		return hexagram.Entry{}, apperrors.Wrap(apperrors.CodeDatasetMalformed,
			fmt.Sprintf("decode commentary for key %d", entry.KeyPrimary), err)
	}
	if lower.Valid || upper.Valid {
		entry.Trigrams = &hexagram.Trigrams{Lower: lower.String, Upper: upper.String}
	}
	return entry, nil
}
