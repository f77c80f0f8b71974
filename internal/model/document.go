package model

import "fmt"

// Document is a reference text ingested from a source.
// Metadata is an open string-keyed map; recognized keys depend on the
// source type:
//
//	"source"  - source identifier (e.g. "rbi", "sebi", "web")
//	"title"   - document or press-release title
//	"url"     - provenance URL
//	"date"    - publication date as reported by the source
//
// Documents are immutable after creation and only discarded by an
// explicit index rebuild.
type Document struct {
	ID       string         `json:"id"`
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Chunk is a bounded, overlap-linked segment of a Document used as the
// retrieval unit.
type Chunk struct {
	SourceID string `json:"source_id"`
	Index    int    `json:"index"`
	Total    int    `json:"total"`
	Text     string `json:"text"`
}

// ID returns the chunk's index key, the source document ID qualified by
// the chunk position.
func (c Chunk) ID() string {
	return fmt.Sprintf("%s:%d", c.SourceID, c.Index)
}

// RelevanceResult describes how strongly a text matches a topic.
type RelevanceResult struct {
	Related      bool     `json:"is_related"`
	Score        float64  `json:"score"`
	MatchedTerms []string `json:"matched_terms,omitempty"`
}
