package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentHash returns the hex encoded sha256 of data.
// Used to detect whether a career file really changed between two write events.
func ContentHash(data []byte) string {
	hasher := sha256.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}
