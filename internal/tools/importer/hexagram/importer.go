// Package hexagramimporter validates a hexagram dataset and loads it into
// the SQLite content store.
package hexagramimporter

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/qrzn23/iching/internal/hexagram"
	"github.com/qrzn23/iching/internal/hexagram/data"
	apperrors "github.com/qrzn23/iching/internal/platform/errors"
	storagesqlite "github.com/qrzn23/iching/internal/storage/sqlite"
)

// Config holds configuration for the hexagram importer.
type Config struct {
	// Path is the dataset JSON file. Empty imports the packaged dataset.
	Path   string
	DBPath string
	DryRun bool
	Force  bool
}

// ParseConfig parses CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		DBPath: filepath.Join("data", "iching-content.db"),
	}

	fs.StringVar(&cfg.Path, "path", "", "dataset JSON file (default: packaged dataset)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "content database path")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	fs.BoolVar(&cfg.Force, "force", false, "import even when the stored checksum matches")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if !cfg.DryRun && strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, errors.New("db-path is required")
	}
	return cfg, nil
}

// Run executes the importer using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	raw, source, err := readDataset(cfg.Path)
	if err != nil {
		return err
	}
	entries, err := hexagram.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", source, err)
	}
	if err := hexagram.Validate(entries); err != nil {
		writeViolations(out, err)
		return fmt.Errorf("validate %s: %w", source, err)
	}
	checksum := hexagram.Checksum(raw)

	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d hexagram(s) from %s (checksum %s)\n", len(entries), source, shortChecksum(checksum))
		return err
	}

	store, err := storagesqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open content store: %w", err)
	}
	defer store.Close()

	if !cfg.Force {
		meta, ok, err := store.Meta(ctx)
		if err != nil {
			return err
		}
		if ok && meta.Checksum == checksum {
			_, err = fmt.Fprintf(out, "%s already imported into %s (checksum %s)\n", source, cfg.DBPath, shortChecksum(checksum))
			return err
		}
	}

	if err := store.PutEntries(ctx, entries, checksum); err != nil {
		return fmt.Errorf("import %s: %w", source, err)
	}
	_, err = fmt.Fprintf(out, "imported %d hexagram(s) into %s\n", len(entries), cfg.DBPath)
	return err
}

func readDataset(path string) ([]byte, string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return data.IChingJSON, data.Path, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, path, apperrors.WrapWithMetadata(apperrors.CodeDatasetMissing,
			"missing dataset", map[string]string{"path": path}, err)
	}
	return raw, path, nil
}

func writeViolations(out io.Writer, err error) {
	if n := apperrors.GetMetadata(err)["violations"]; n != "" {
		fmt.Fprintf(out, "found %s violation(s)\n", n)
	}
}

func shortChecksum(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}
