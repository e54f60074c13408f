package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a "prefix:digest" cache key from the given components. The
// components are JSON-encoded before hashing so that values of different
// types (scene hashes, dimensions, option flags) mix into the digest without
// ambiguity.
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	digest := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(digest[:]))
}

// Hash returns the SHA-256 digest of data as a 64-character hex string. The
// pipeline uses it to content-address scene bytes.
func Hash(data []byte) string {
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:])
}
