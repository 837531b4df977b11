package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"testing"
	"time"
)

type testConfig struct {
	Format string `env:"CMD_TEST_FORMAT" envDefault:"text"`
	Source string `env:"CMD_TEST_SOURCE" envDefault:"clock"`
}

func bindTestFlags(fs *flag.FlagSet, cfg *testConfig) {
	fs.StringVar(&cfg.Format, "format", cfg.Format, "format")
	fs.StringVar(&cfg.Source, "source", cfg.Source, "source")
}

func TestLoadReadsEnvThenFlags(t *testing.T) {
	t.Setenv("ICHING_CMD_TEST_FORMAT", "json")
	t.Setenv("ICHING_CMD_TEST_SOURCE", "crypto")

	var cfg testConfig
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := Load(&cfg, fs, []string{"-format", "text"}, bindTestFlags); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Format != "text" {
		t.Fatalf("expected flag value for format, got %q", cfg.Format)
	}
	if cfg.Source != "crypto" {
		t.Fatalf("expected env source, got %q", cfg.Source)
	}
}

func TestLoadUsesDefaults(t *testing.T) {
	var cfg testConfig
	if err := Load(&cfg, flag.NewFlagSet("test", flag.ContinueOnError), nil, nil); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Format != "text" || cfg.Source != "clock" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadRejectsMissingInputs(t *testing.T) {
	if err := Load[testConfig](nil, flag.NewFlagSet("test", flag.ContinueOnError), nil, nil); err == nil {
		t.Fatal("expected nil target error")
	}
	if err := Load(&testConfig{}, nil, nil, nil); err == nil {
		t.Fatal("expected nil parser error")
	}
}

func TestLoadRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	if err := Load(&testConfig{}, fs, []string{"-colour", "red"}, bindTestFlags); err == nil {
		t.Fatal("expected unknown flag error")
	}
}

func TestRunRejectsMissingInputs(t *testing.T) {
	if err := Run(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := Run(context.Background(), ServiceIChing, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunReturnsRunError(t *testing.T) {
	t.Setenv("ICHING_OTEL_ENDPOINT", "")
	want := errors.New("cast failed")

	called := false
	err := Run(context.Background(), ServiceIChing, func(context.Context) error {
		called = true
		return want
	}, WithShutdownTimeout(time.Second), WithLogger(nil))
	if !called {
		t.Fatal("expected run to be called")
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected run error, got %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, ServiceIChing, true).Printf("seed %d", 42)
	if got := buf.String(); got != "iching: seed 42\n" {
		t.Fatalf("unexpected log line %q", got)
	}

	buf.Reset()
	NewLogger(&buf, ServiceIChing, false).Printf("seed %d", 42)
	if buf.Len() != 0 {
		t.Fatalf("expected quiet logger, got %q", buf.String())
	}
}
