package hexagram

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Checksum returns the hex BLAKE2b-256 digest of a raw dataset document.
func Checksum(raw []byte) string {
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
