package gateway

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Signature hashes the concatenated parts plus the pre-shared integrity
// secret, proving to the provider that the charge request was not tampered
// with. Deterministic for identical inputs.
func Signature(parts []string, secret string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "") + secret))
	return hex.EncodeToString(sum[:])
}

// Reference derives the opaque per-attempt identifier sent to the provider
// from the customer email and a millisecond timestamp. The timestamp seed
// keeps references unique across attempts.
func Reference(email string, timestampMillis int64) string {
	sum := sha256.Sum256([]byte(email + strconv.FormatInt(timestampMillis, 10)))
	return hex.EncodeToString(sum[:])
}
