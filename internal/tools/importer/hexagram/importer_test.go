package hexagramimporter

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qrzn23/iching/internal/hexagram"
	"github.com/qrzn23/iching/internal/hexagram/data"
	apperrors "github.com/qrzn23/iching/internal/platform/errors"
	storagesqlite "github.com/qrzn23/iching/internal/storage/sqlite"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(flag.NewFlagSet("import", flag.ContinueOnError), []string{"-path", "x.json", "-dry-run"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Path != "x.json" || !cfg.DryRun {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.DBPath != filepath.Join("data", "iching-content.db") {
		t.Fatalf("unexpected default db path %q", cfg.DBPath)
	}

	if _, err := ParseConfig(flag.NewFlagSet("import", flag.ContinueOnError), []string{"-db-path", ""}); err == nil {
		t.Fatal("expected db-path error")
	}
}

func TestRunDryRunEmbedded(t *testing.T) {
	var out bytes.Buffer
	dbPath := filepath.Join(t.TempDir(), "content.db")
	if err := Run(context.Background(), Config{DBPath: dbPath, DryRun: true}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "validated 64 hexagram(s) from "+data.Path) {
		t.Fatalf("unexpected output %q", out.String())
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatalf("dry run should not create the database, stat err = %v", err)
	}
}

func TestRunImportsAndSkipsUnchanged(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "content.db")
	jsonPath := writeDataset(t, mustEntries(t))

	var out bytes.Buffer
	if err := Run(ctx, Config{Path: jsonPath, DBPath: dbPath}, &out); err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out.String(), "imported 64 hexagram(s) into "+dbPath) {
		t.Fatalf("unexpected output %q", out.String())
	}

	out.Reset()
	if err := Run(ctx, Config{Path: jsonPath, DBPath: dbPath}, &out); err != nil {
		t.Fatalf("second import: %v", err)
	}
	if !strings.Contains(out.String(), "already imported") {
		t.Fatalf("expected unchanged notice, got %q", out.String())
	}

	out.Reset()
	if err := Run(ctx, Config{Path: jsonPath, DBPath: dbPath, Force: true}, &out); err != nil {
		t.Fatalf("forced import: %v", err)
	}
	if !strings.Contains(out.String(), "imported 64") {
		t.Fatalf("expected forced import, got %q", out.String())
	}

	store, err := storagesqlite.Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	ds, err := store.LoadDataset(ctx)
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	if ds.Len() != 64 {
		t.Fatalf("dataset len = %d", ds.Len())
	}
}

func TestRunRejectsInvalidDataset(t *testing.T) {
	entries := mustEntries(t)
	entries[1].KeyPrimary = entries[0].KeyPrimary
	jsonPath := writeDataset(t, entries)
	dbPath := filepath.Join(t.TempDir(), "content.db")

	var out bytes.Buffer
	err := Run(context.Background(), Config{Path: jsonPath, DBPath: dbPath}, &out)
	if !apperrors.IsCode(err, apperrors.CodeDatasetInvalid) {
		t.Fatalf("expected invalid dataset, got %v", err)
	}
	if !strings.Contains(out.String(), "violation(s)") {
		t.Fatalf("expected violation summary, got %q", out.String())
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatal("invalid dataset should not create the database")
	}
}

func TestRunMissingAndMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	err := Run(context.Background(), Config{Path: filepath.Join(dir, "nope.json"), DryRun: true}, nil)
	if !apperrors.IsCode(err, apperrors.CodeDatasetMissing) {
		t.Fatalf("expected missing dataset, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	err = Run(context.Background(), Config{Path: bad, DryRun: true}, nil)
	if !apperrors.IsCode(err, apperrors.CodeDatasetMalformed) {
		t.Fatalf("expected malformed dataset, got %v", err)
	}
}

func mustEntries(t *testing.T) []hexagram.Entry {
	t.Helper()
	entries, err := hexagram.Parse(data.IChingJSON)
	if err != nil {
		t.Fatalf("parse embedded: %v", err)
	}
	return entries
}

func writeDataset(t *testing.T, entries []hexagram.Entry) string {
	t.Helper()
	raw, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "iching.json")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}
