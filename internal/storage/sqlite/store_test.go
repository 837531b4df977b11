package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/qrzn23/iching/internal/hexagram"
	"github.com/qrzn23/iching/internal/hexagram/data"
	apperrors "github.com/qrzn23/iching/internal/platform/errors"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func embeddedEntries(t *testing.T) []hexagram.Entry {
	t.Helper()
	ds, err := hexagram.LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	return ds.Entries()
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	if !apperrors.IsCode(err, apperrors.CodeStorageUnavailable) {
		t.Fatalf("expected storage unavailable, got %v", err)
	}
}

func TestPutAndLoadDataset(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	entries := embeddedEntries(t)
	checksum := hexagram.Checksum(data.IChingJSON)
	if err := store.PutEntries(ctx, entries, checksum); err != nil {
		t.Fatalf("put entries: %v", err)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != hexagram.EntryCount {
		t.Fatalf("count = %d, want %d", n, hexagram.EntryCount)
	}

	ds, err := store.LoadDataset(ctx)
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	for _, want := range entries {
		got, ok := ds.ByKey(want.KeyPrimary)
		if !ok {
			t.Fatalf("missing key %d", want.KeyPrimary)
		}
		if got.KingWen != want.KingWen || got.Name != want.Name || got.Judgment != want.Judgment {
			t.Fatalf("key %d round trip mismatch: %+v", want.KeyPrimary, got)
		}
		if len(got.Lines) != 6 || got.LinesCommentary[5] != want.LinesCommentary[5] {
			t.Fatalf("key %d lines mismatch", want.KeyPrimary)
		}
		if (want.Trigrams == nil) != (got.Trigrams == nil) {
			t.Fatalf("key %d trigram hints mismatch", want.KeyPrimary)
		}
	}

	meta, ok, err := store.Meta(ctx)
	if err != nil || !ok {
		t.Fatalf("meta: ok=%v err=%v", ok, err)
	}
	if meta.Checksum != checksum || meta.EntryCount != 64 || !meta.ImportedAt.Equal(fixed) {
		t.Fatalf("unexpected meta %+v", meta)
	}
}

func TestPutEntriesReplacesPreviousImport(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	entries := embeddedEntries(t)

	if err := store.PutEntries(ctx, entries, "first"); err != nil {
		t.Fatalf("first import: %v", err)
	}
	entries[0].Name = "Renamed"
	if err := store.PutEntries(ctx, entries, "second"); err != nil {
		t.Fatalf("second import: %v", err)
	}

	listed, err := store.ListEntries(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 64 {
		t.Fatalf("expected 64 entries, got %d", len(listed))
	}
	if listed[0].KingWen != 1 || listed[63].KingWen != 64 {
		t.Fatalf("entries not ordered by king wen")
	}
	found := false
	for _, e := range listed {
		if e.KeyPrimary == entries[0].KeyPrimary {
			found = e.Name == "Renamed"
		}
	}
	if !found {
		t.Fatal("expected second import to win")
	}
	meta, _, err := store.Meta(ctx)
	if err != nil || meta.Checksum != "second" {
		t.Fatalf("meta = %+v, %v", meta, err)
	}
}

func TestPutEntriesRejectsInvalidDataset(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	err := store.PutEntries(ctx, embeddedEntries(t)[:10], "bad")
	if !apperrors.IsCode(err, apperrors.CodeDatasetInvalid) {
		t.Fatalf("expected invalid dataset, got %v", err)
	}
	if n, _ := store.Count(ctx); n != 0 {
		t.Fatalf("expected nothing written, got %d rows", n)
	}
}

func TestLoadDatasetEmptyStore(t *testing.T) {
	store := openTestStore(t)
	_, err := store.LoadDataset(context.Background())
	if !apperrors.IsCode(err, apperrors.CodeDatasetMissing) {
		t.Fatalf("expected missing dataset, got %v", err)
	}
	if _, ok, err := store.Meta(context.Background()); ok || err != nil {
		t.Fatalf("expected no meta, got ok=%v err=%v", ok, err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.db")
	ctx := context.Background()

	store, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.PutEntries(ctx, embeddedEntries(t), "x"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if n, err := reopened.Count(ctx); err != nil || n != 64 {
		t.Fatalf("count after reopen = %d, %v", n, err)
	}
}

func TestCloseNilSafe(t *testing.T) {
	var s *Store
	if err := s.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}
