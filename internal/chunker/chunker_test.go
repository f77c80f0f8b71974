package chunker

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNew_RejectsInvalidParams(t *testing.T) {
	if _, err := New(0, 0); err == nil {
		t.Error("expected error for zero size")
	}
	if _, err := New(100, 100); err == nil {
		t.Error("expected error for overlap == size")
	}
	if _, err := New(100, 150); err == nil {
		t.Error("expected error for overlap > size")
	}
	if _, err := New(100, -1); err == nil {
		t.Error("expected error for negative overlap")
	}
	if _, err := New(1000, 200); err != nil {
		t.Errorf("valid params rejected: %v", err)
	}
}

func TestChunk_ShortTextSingleChunk(t *testing.T) {
	c, _ := New(1000, 200)

	text := "  A short announcement about market liquidity.  "
	got := c.Chunk(text)

	if len(got) != 1 {
		t.Fatalf("expected one chunk, got %d", len(got))
	}
	if got[0] != strings.TrimSpace(text) {
		t.Errorf("chunk should equal the stripped input, got %q", got[0])
	}
}

func TestChunk_EmptyInput(t *testing.T) {
	c, _ := New(1000, 200)

	if got := c.Chunk(""); got != nil {
		t.Errorf("empty input should yield nil, got %v", got)
	}
	if got := c.Chunk(" \n\t "); got != nil {
		t.Errorf("whitespace input should yield nil, got %v", got)
	}
}

func TestChunk_CutsAtSentenceBoundary(t *testing.T) {
	c, _ := New(100, 20)

	// Sentences of ~30 chars each; a boundary falls inside the second
	// half of the first window, so the cut should land after a period.
	sentence := "The market closed higher today. "
	text := strings.Repeat(sentence, 10)

	got := c.Chunk(text)
	if len(got) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(got))
	}
	if !strings.HasSuffix(got[0], ".") {
		t.Errorf("first chunk should end at a sentence boundary, got %q", got[0])
	}
}

func TestChunk_CoverageAndOverlap(t *testing.T) {
	size, overlap := 120, 30
	c, _ := New(size, overlap)

	var sb strings.Builder
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&sb, "Sentence number %02d has filler words in it. ", i)
	}
	text := sb.String()

	got := c.Chunk(text)
	if len(got) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(got))
	}

	// No chunk exceeds the window and none is empty.
	for i, chunk := range got {
		if len(chunk) > size {
			t.Errorf("chunk %d length %d exceeds size %d", i, len(chunk), size)
		}
		if strings.TrimSpace(chunk) == "" {
			t.Errorf("chunk %d is empty", i)
		}
	}

	// Consecutive chunks must abut or overlap (no gaps), and the
	// overlap never exceeds the configured amount.
	prevEnd := -1
	searchFrom := 0
	for i, chunk := range got {
		idx := strings.Index(text[searchFrom:], chunk)
		if idx < 0 {
			t.Fatalf("chunk %d not found in source text", i)
		}
		start := searchFrom + idx
		end := start + len(chunk)
		if i > 0 {
			if start > prevEnd {
				t.Errorf("gap of %d chars before chunk %d", start-prevEnd, i)
			}
			if prevEnd-start > overlap {
				t.Errorf("chunks %d/%d overlap by %d, configured max %d", i-1, i, prevEnd-start, overlap)
			}
		}
		prevEnd = end
		searchFrom = start + 1
	}
}

func TestChunk_MultiByteRunesSurviveWindowEdges(t *testing.T) {
	c, _ := New(50, 10)

	// Currency signs and em dashes land on window boundaries for these
	// parameters; every chunk must still be well-formed UTF-8.
	text := strings.Repeat("Surplus liquidity of ₹2.45 lakh crore reported—again ", 6)

	got := c.Chunk(text)
	if len(got) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(got))
	}
	for i, chunk := range got {
		if !utf8.ValidString(chunk) {
			t.Errorf("chunk %d is not valid UTF-8: %q", i, chunk)
		}
		if n := utf8.RuneCountInString(chunk); n > 50 {
			t.Errorf("chunk %d has %d runes, window is 50", i, n)
		}
	}
}

func TestChunk_OversizedSentenceEmittedWhole(t *testing.T) {
	c, _ := New(50, 10)

	// One long sentence with no internal boundaries.
	text := strings.Repeat("liquidity-surplus-banking-system-", 5) + "end. Short tail here to force a second window."

	got := c.Chunk(text)
	if len(got) == 0 {
		t.Fatal("expected chunks")
	}
	for i, chunk := range got {
		if chunk == "" {
			t.Errorf("chunk %d is empty", i)
		}
	}
}

func TestChunk_Terminates(t *testing.T) {
	// Tight parameters that would loop forever without the progress
	// guard on the next window start.
	c, _ := New(10, 8)

	text := strings.Repeat("abcdefghij", 20)
	got := c.Chunk(text)

	if len(got) == 0 {
		t.Fatal("expected chunks")
	}
}
