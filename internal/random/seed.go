// Package random provides seed sources for casting.
//
// Casts are reproducible from their seed alone, so the only job of this
// package is choosing a fresh seed when the caller did not supply one.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

// SeedSource names where a cast seed came from.
type SeedSource string

const (
	// SeedSourceExplicit means the caller supplied the seed.
	SeedSourceExplicit SeedSource = "explicit"
	// SeedSourceClock derives the seed from wall-clock milliseconds.
	SeedSourceClock SeedSource = "clock"
	// SeedSourceCrypto draws the seed from crypto/rand.
	SeedSourceCrypto SeedSource = "crypto"
)

// ParseSeedSource resolves a configured seed source name.
func ParseSeedSource(value string) (SeedSource, error) {
	switch SeedSource(strings.ToLower(strings.TrimSpace(value))) {
	case "", SeedSourceClock:
		return SeedSourceClock, nil
	case SeedSourceCrypto:
		return SeedSourceCrypto, nil
	default:
		return "", fmt.Errorf("unknown seed source %q", value)
	}
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ClockSeed returns now in Unix milliseconds.
func ClockSeed(now time.Time) int64 {
	return now.UnixMilli()
}

// ResolveSeed returns explicit when set, otherwise a fresh seed from source.
// A nil now falls back to time.Now.
func ResolveSeed(explicit *int64, source SeedSource, now func() time.Time) (int64, SeedSource, error) {
	if explicit != nil {
		return *explicit, SeedSourceExplicit, nil
	}
	switch source {
	case SeedSourceCrypto:
		seed, err := NewSeed()
		if err != nil {
			return 0, "", err
		}
		return seed, SeedSourceCrypto, nil
	case SeedSourceClock, "":
		if now == nil {
			now = time.Now
		}
		return ClockSeed(now()), SeedSourceClock, nil
	default:
		return 0, "", fmt.Errorf("unknown seed source %q", source)
	}
}
