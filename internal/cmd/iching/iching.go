// Package iching parses iching command flags and prints a cast or a viewed
// hexagram.
package iching

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/qrzn23/iching/internal/hexagram"
	"github.com/qrzn23/iching/internal/hexagram/data"
	entrypoint "github.com/qrzn23/iching/internal/platform/cmd"
	"github.com/qrzn23/iching/internal/random"
	"github.com/qrzn23/iching/internal/reading"
	"github.com/qrzn23/iching/internal/reading/render"
	storagesqlite "github.com/qrzn23/iching/internal/storage/sqlite"
)

// Settings are the env-backed defaults, read from ICHING_* variables.
type Settings struct {
	DatasetPath string `env:"DATASET_PATH"`
	DatasetDB   string `env:"DATASET_DB"`
	Format      string `env:"FORMAT" envDefault:"text"`
	SeedSource  string `env:"SEED_SOURCE" envDefault:"clock"`
	Verbose     bool   `env:"VERBOSE"`
}

// Config holds iching command configuration.
type Config struct {
	Settings
	// Seed is set only when -seed was given.
	Seed *int64
	View reading.ViewRequest
	// Now supplies the clock for clock seeds. Nil means time.Now.
	Now func() time.Time
}

// Viewing reports whether the command should view a hexagram instead of casting.
func (c Config) Viewing() bool {
	v := c.View
	return v.Key != nil || v.KingWen != nil || v.Lower != "" || v.Upper != ""
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	bind := func(fs *flag.FlagSet, s *Settings) {
		fs.Func("seed", "cast with this int64 seed instead of a fresh one", func(value string) error {
			seed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed %q", value)
			}
			cfg.Seed = &seed
			return nil
		})
		fs.StringVar(&s.Format, "format", s.Format, "output format: text or json")
		fs.StringVar(&s.DatasetPath, "dataset", s.DatasetPath, "dataset JSON file (default: packaged dataset)")
		fs.StringVar(&s.DatasetDB, "dataset-db", s.DatasetDB, "SQLite content database written by hexagram-importer")
		fs.StringVar(&s.SeedSource, "seed-source", s.SeedSource, "fresh seed source: clock or crypto")
		fs.Func("view-key", "view the hexagram with this key (0-63)", intFlag(&cfg.View.Key))
		fs.Func("view-king-wen", "view the hexagram with this King Wen ordinal (1-64)", intFlag(&cfg.View.KingWen))
		fs.StringVar(&cfg.View.Lower, "lower", "", "view by lower trigram (use with -upper)")
		fs.StringVar(&cfg.View.Upper, "upper", "", "view by upper trigram (use with -lower)")
		fs.BoolVar(&s.Verbose, "v", s.Verbose, "log the dataset source and seed to stderr")
	}
	if err := entrypoint.Load(&cfg.Settings, fs, args, bind); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(cfg.DatasetPath) != "" && strings.TrimSpace(cfg.DatasetDB) != "" {
		return Config{}, errors.New("dataset and dataset-db are mutually exclusive")
	}
	if cfg.Seed != nil && cfg.Viewing() {
		return Config{}, errors.New("seed cannot be combined with a view selector")
	}
	return cfg, nil
}

func intFlag(target **int) func(string) error {
	return func(value string) error {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid integer %q", value)
		}
		*target = &n
		return nil
	}
}

// Run loads the dataset and writes one reading or view to stdout. Logs go to
// stderr when verbose.
func Run(ctx context.Context, cfg Config, stdout, stderr io.Writer) error {
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	source, err := random.ParseSeedSource(cfg.SeedSource)
	if err != nil {
		return err
	}
	logger := entrypoint.NewLogger(stderr, entrypoint.ServiceIChing, cfg.Verbose)

	return entrypoint.Run(ctx, entrypoint.ServiceIChing, func(ctx context.Context) error {
		ds, err := loadDataset(ctx, cfg.Settings, logger)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}
		svc := reading.NewService(ds)

		if cfg.Viewing() {
			v, err := svc.View(ctx, cfg.View)
			if err != nil {
				return err
			}
			logger.Printf("viewing key %d", v.Key)
			return format.View(stdout, v)
		}

		seed, used, err := random.ResolveSeed(cfg.Seed, source, cfg.Now)
		if err != nil {
			return err
		}
		logger.Printf("casting with %s seed %d", used, seed)
		r, err := svc.Cast(ctx, seed)
		if err != nil {
			return err
		}
		return format.Reading(stdout, r)
	}, entrypoint.WithLogger(entrypoint.NewLogger(stderr, entrypoint.ServiceIChing, true)))
}

func loadDataset(ctx context.Context, settings Settings, logger *log.Logger) (*hexagram.Dataset, error) {
	switch {
	case strings.TrimSpace(settings.DatasetDB) != "":
		logger.Printf("dataset from sqlite %s", settings.DatasetDB)
		store, err := storagesqlite.Open(ctx, settings.DatasetDB)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.LoadDataset(ctx)
	case strings.TrimSpace(settings.DatasetPath) != "":
		logger.Printf("dataset from file %s", settings.DatasetPath)
		return hexagram.LoadFile(settings.DatasetPath)
	default:
		logger.Printf("dataset from packaged %s", data.Path)
		return hexagram.LoadEmbedded()
	}
}
