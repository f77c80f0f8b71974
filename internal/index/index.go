// Package index implements an in-memory nearest-neighbor store over
// (id, text, embedding, metadata) entries. It is populated once at
// startup or serially during ingestion, then read concurrently:
// queries share a read lock, adds take the write lock.
package index

import (
	"sort"
	"sync"

	"github.com/veritaslabs/veritas/internal/embed"
)

// Result is a retrieval hit.
type Result struct {
	ID         string
	Text       string
	Metadata   map[string]any
	Similarity float64
}

type entry struct {
	id        string
	text      string
	embedding []float32
	metadata  map[string]any
}

// Index is a brute-force cosine-similarity index.
type Index struct {
	mu      sync.RWMutex
	entries []entry
}

// New creates an empty index.
func New() *Index {
	return &Index{}
}

// Add appends an entry. IDs are not deduplicated; that is the caller's
// responsibility.
func (x *Index) Add(id, text string, embedding []float32, metadata map[string]any) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.entries = append(x.entries, entry{
		id:        id,
		text:      text,
		embedding: embedding,
		metadata:  metadata,
	})
}

// Len returns the number of stored entries.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.entries)
}

// Query returns up to k entries sorted by descending cosine similarity
// to the query embedding, ties broken by insertion order. Querying an
// empty index returns an empty result, never an error.
func (x *Index) Query(embedding []float32, k int) []Result {
	if k <= 0 {
		return nil
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	results := make([]Result, 0, len(x.entries))
	for _, e := range x.entries {
		results = append(results, Result{
			ID:         e.id,
			Text:       e.text,
			Metadata:   e.metadata,
			Similarity: embed.Cosine(embedding, e.embedding),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > k {
		results = results[:k]
	}
	return results
}
