// Package corpus holds the curated trusted-news corpus used for
// fallback scoring when retrieval finds nothing. Entries are known in
// advance, embedded once, and read concurrently afterwards.
package corpus

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/veritaslabs/veritas/internal/embed"
)

// Entry is one trusted reference item.
type Entry struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// Match is the result of a fallback lookup.
type Match struct {
	Entry      Entry
	Similarity float64
}

// Corpus is a small set of trusted entries with precomputed
// embeddings. Safe for concurrent Best calls once built.
type Corpus struct {
	mu      sync.RWMutex
	entries []Entry
	vectors [][]float32
}

// New creates a corpus from the given entries. Embeddings are built
// separately via Build.
func New(entries []Entry) *Corpus {
	return &Corpus{entries: entries}
}

// Load reads a YAML corpus file: a list of {title, content} entries.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus file %s: %w", path, err)
	}

	return New(entries), nil
}

// Default returns the built-in trusted corpus, used when no corpus
// file is configured.
func Default() *Corpus {
	return New([]Entry{
		{
			Title: "RBI halts daily variable rate repo auctions",
			Content: "RBI halts daily variable rate repo auctions citing surplus liquidity of 2.45 lakh crore.\n" +
				"The central bank said the overnight operations would resume if liquidity conditions warrant, " +
				"and that the weighted average call rate remains within the policy corridor.",
		},
		{
			Title: "Government extends deadline for income tax returns",
			Content: "The finance ministry extended the due date for filing income tax returns for the assessment year by one month.\n" +
				"The extension applies to individual taxpayers not subject to audit.",
		},
		{
			Title: "ISRO completes launch of earth observation satellite",
			Content: "ISRO placed an earth observation satellite into sun-synchronous orbit aboard the PSLV.\n" +
				"The satellite will support agriculture, forestry, and disaster management applications.",
		},
		{
			Title: "Election commission announces poll schedule for state assemblies",
			Content: "The election commission announced a multi-phase polling schedule for the upcoming state assembly elections.\n" +
				"Counting of votes will take place on a single day across all states.",
		},
	})
}

// Len returns the number of entries.
func (c *Corpus) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Build computes one embedding per entry. Entries are embedded as
// title plus content so a title-only match still ranks.
func (c *Corpus) Build(ctx context.Context, embedder embed.Embedder) error {
	c.mu.RLock()
	entries := c.entries
	c.mu.RUnlock()

	vectors := make([][]float32, len(entries))
	for i, e := range entries {
		vec, err := embedder.Embed(ctx, e.Title+"\n"+e.Content)
		if err != nil {
			return fmt.Errorf("embed corpus entry %q: %w", e.Title, err)
		}
		vectors[i] = vec
	}

	c.mu.Lock()
	c.vectors = vectors
	c.mu.Unlock()
	return nil
}

// Best returns the entry whose embedding is most similar to the query
// embedding. ok is false when the corpus is empty or Build has not
// run.
func (c *Corpus) Best(queryEmbedding []float32) (Match, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.entries) == 0 || len(c.vectors) != len(c.entries) {
		return Match{}, false
	}

	bestIdx := 0
	bestSim := embed.Cosine(queryEmbedding, c.vectors[0])
	for i := 1; i < len(c.vectors); i++ {
		if sim := embed.Cosine(queryEmbedding, c.vectors[i]); sim > bestSim {
			bestIdx, bestSim = i, sim
		}
	}

	return Match{Entry: c.entries[bestIdx], Similarity: bestSim}, true
}

// Replace swaps the entry set. Embeddings must be rebuilt via Build
// before the next Best call sees the new entries.
func (c *Corpus) Replace(entries []Entry) {
	c.mu.Lock()
	c.entries = entries
	c.vectors = nil
	c.mu.Unlock()
}

// Entries returns a copy of the entry set.
func (c *Corpus) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// FirstLine returns the first non-empty line of s, trimmed. Used as
// the corrective statement when a fallback match scores below the
// trust thresholds.
func FirstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
