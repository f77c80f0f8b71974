// Package chunker splits long text into overlapping, sentence-aware
// segments for retrieval indexing. Overlap gives the retriever context
// continuity across chunk boundaries.
package chunker

import (
	"fmt"
	"strings"
)

const (
	// DefaultSize is the chunk size in characters.
	DefaultSize = 1000
	// DefaultOverlap is the number of characters adjacent chunks share.
	DefaultOverlap = 200
)

// sentence-ending punctuation followed by a space or newline
var boundaries = []string{". ", ".\n", "! ", "!\n", "? ", "?\n"}

// Chunker segments text into overlapping windows, preferring to cut at
// sentence boundaries.
type Chunker struct {
	size    int
	overlap int
}

// New creates a chunker. overlap must be strictly smaller than size.
func New(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("overlap must be in [0, size), got overlap=%d size=%d", overlap, size)
	}
	return &Chunker{size: size, overlap: overlap}, nil
}

// Chunk splits text into segments of at most the configured size. Size
// and overlap count runes, not bytes, so multi-byte characters are
// never severed at window edges. Text shorter than one window is
// returned as a single chunk. Each window is cut at the nearest
// sentence boundary in its second half when one exists, so sentences
// are not severed and degenerate micro-chunks are avoided; a single
// sentence longer than the window is emitted whole. Chunks are
// whitespace-trimmed and never empty. Empty or whitespace input yields
// nil.
func (c *Chunker) Chunk(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	runes := []rune(text)
	if len(runes) < c.size {
		return []string{strings.TrimSpace(text)}
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + c.size
		if end >= len(runes) {
			end = len(runes)
		} else {
			mid := start + c.size/2
			// Walk backward through the second half of the window
			// looking for sentence-ending punctuation.
			for i := end - 2; i > mid; i-- {
				if isBoundary(runes[i], runes[i+1]) {
					end = i + 1
					break
				}
			}
		}

		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end >= len(runes) {
			break
		}

		next := end - c.overlap
		if next <= start {
			next = start + 1
		}
		start = next
	}

	return chunks
}

func isBoundary(punct, follow rune) bool {
	for _, b := range boundaries {
		if punct == rune(b[0]) && follow == rune(b[1]) {
			return true
		}
	}
	return false
}
