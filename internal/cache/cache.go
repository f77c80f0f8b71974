// Package cache provides byte-value caching used to memoize embedding
// calls. The embedding provider is pure (same text, same vector), so
// cached vectors never go stale within their TTL.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface shared by the memory, disk, and
// layered implementations.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// EmbeddingKey derives the cache key for an embedding of text under a
// given model. The model name is part of the key so switching models
// never serves vectors of the wrong dimensionality.
func EmbeddingKey(model, text string) string {
	hash := sha256.Sum256([]byte(model + "\x00" + text))
	return "veritas:emb:v1:" + hex.EncodeToString(hash[:])
}
