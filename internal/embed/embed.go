// Package embed provides text embedding providers and vector
// similarity. Providers are treated as pure functions over text, so
// results may be memoized safely.
package embed

import (
	"context"
	"math"
)

// Embedder converts text into a fixed-length numeric vector.
type Embedder interface {
	// Name returns the provider name.
	Name() string

	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Cosine computes cosine similarity between two vectors in [-1, 1].
// Stored vectors carry no normalization guarantee, so magnitudes are
// divided out here rather than assumed away. Mismatched lengths and
// zero vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
