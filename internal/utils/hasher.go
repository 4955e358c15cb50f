package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash generates a SHA-256 hash of the input string
func Hash(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// URLKey hashes a URL after trimming surrounding whitespace, so equivalent inputs share a key.
func URLKey(rawURL string) string {
	return Hash(strings.TrimSpace(rawURL))
}
