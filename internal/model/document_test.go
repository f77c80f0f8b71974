package model

import "testing"

func TestChunkID(t *testing.T) {
	ck := Chunk{SourceID: "https://example.org/press/42", Index: 3, Total: 5, Text: "body"}
	if got, want := ck.ID(), "https://example.org/press/42:3"; got != want {
		t.Errorf("ID() = %q, want %q", got, want)
	}
}
