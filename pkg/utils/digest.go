package utils

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
)

// SHA1Hex returns the lowercase hex SHA-1 digest of s. Access codes and the
// admin delete code are stored in this form.
func SHA1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// DigestEqual compares two hex digests in constant time.
func DigestEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
