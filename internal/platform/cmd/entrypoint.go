// Package cmd holds startup helpers shared by the iching commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"strings"
	"time"

	"github.com/qrzn23/iching/internal/platform/config"
	"github.com/qrzn23/iching/internal/platform/otel"
)

const defaultShutdownTimeout = 5 * time.Second

// Service names used for telemetry resources and log prefixes.
const (
	ServiceIChing   = "iching"
	ServiceImporter = "hexagram-importer"
)

// NewLogger returns a logger prefixed with the service name. When verbose is
// false the logger discards its output.
func NewLogger(w io.Writer, service string, verbose bool) *log.Logger {
	if !verbose || w == nil {
		w = io.Discard
	}
	return log.New(w, strings.TrimSpace(service)+": ", 0)
}

// Load fills cfg from the environment, hands fs to bind so flags can use the
// env values as their defaults, then parses args. bind may be nil.
func Load[T any](cfg *T, fs *flag.FlagSet, args []string, bind func(*flag.FlagSet, *T)) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if err := config.ParseEnv(cfg); err != nil {
		return err
	}
	if bind != nil {
		bind(fs, cfg)
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// Option adjusts Run.
type Option func(*runOptions)

type runOptions struct {
	shutdownTimeout time.Duration
	logger          *log.Logger
}

// WithShutdownTimeout bounds how long telemetry may take to flush.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *runOptions) {
		if d > 0 {
			o.shutdownTimeout = d
		}
	}
}

// WithLogger sets where telemetry shutdown failures are logged.
func WithLogger(logger *log.Logger) Option {
	return func(o *runOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Run starts tracing for service, executes run and flushes tracing before
// returning run's error.
func Run(ctx context.Context, service string, run func(context.Context) error, opts ...Option) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	options := runOptions{shutdownTimeout: defaultShutdownTimeout, logger: log.Default()}
	for _, opt := range opts {
		opt(&options)
	}

	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), options.shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			options.logger.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
