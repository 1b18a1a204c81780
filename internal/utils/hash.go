package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString returns the hex encoded SHA-256 digest of data.
//
// With an empty hashKey the digest is plain SHA-256, which is the format
// stored for every account so far. A non-empty key turns it into
// HMAC-SHA256 (a server-side pepper). The output is deterministic either
// way: equal inputs always give equal digests.
//
// Example usage:
//
//	digest := utils.HashString("secret", "")
func HashString(data string, hashKey string) string {
	if hashKey == "" {
		sum := sha256.Sum256([]byte(data))
		return hex.EncodeToString(sum[:])
	}

	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
