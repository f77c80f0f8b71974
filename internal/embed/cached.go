package embed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/veritaslabs/veritas/internal/cache"
)

// CachedEmbedder memoizes another embedder. Embedding is pure, so a
// cache hit is always equivalent to a provider call.
type CachedEmbedder struct {
	inner Embedder
	model string
	store cache.Cache
	ttl   time.Duration
}

// NewCachedEmbedder wraps inner with a cache. model is part of the
// cache key; pass the provider's model name.
func NewCachedEmbedder(inner Embedder, model string, store cache.Cache, ttl time.Duration) *CachedEmbedder {
	return &CachedEmbedder{
		inner: inner,
		model: model,
		store: store,
		ttl:   ttl,
	}
}

// Name returns the wrapped provider's name.
func (e *CachedEmbedder) Name() string {
	return e.inner.Name()
}

// Embed returns a cached vector when present, otherwise calls the
// wrapped provider and stores the result.
func (e *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	key := cache.EmbeddingKey(e.model, text)

	if raw, found := e.store.Get(key); found {
		var vec []float32
		if err := json.Unmarshal(raw, &vec); err == nil && len(vec) > 0 {
			return vec, nil
		}
		// Corrupt entry: drop it and fall through to the provider.
		_ = e.store.Delete(key)
	}

	vec, err := e.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(vec)
	if err != nil {
		return nil, fmt.Errorf("encode embedding: %w", err)
	}
	_ = e.store.Set(key, raw, e.ttl)

	return vec, nil
}
