package config

import (
	"fmt"
	"os"

	apperrors "github.com/qrzn23/iching/internal/platform/errors"
)

// Exit codes reported by ExitCode.
const (
	ExitFailure       = 1
	ExitConfiguration = 2
	ExitIntegrity     = 3
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(ExitFailure)
}

// ExitCode maps err to a process exit code by its error class. A nil error
// maps to 0.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case apperrors.IsConfiguration(err):
		return ExitConfiguration
	case apperrors.IsIntegrity(err):
		return ExitIntegrity
	default:
		return ExitFailure
	}
}

// ExitErr writes "prefix: err" to stderr and exits with ExitCode(err).
func ExitErr(prefix string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", prefix, err)
	os.Exit(ExitCode(err))
}
