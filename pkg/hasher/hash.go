package hasher

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the hex-encoded SHA-256 of s.
func Hash(s string) string {
	return SumBytes([]byte(s))
}

// SumBytes returns the hex-encoded SHA-256 of b. Used to fingerprint history
// snapshots: identical snapshots hash identically, so boundary callers can
// detect unchanged results without diffing payloads.
func SumBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
