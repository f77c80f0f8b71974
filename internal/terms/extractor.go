// Package terms derives the key terms of a news topic for literal
// matching during relevance screening.
package terms

import (
	"regexp"
	"strings"
)

var (
	wordPattern     = regexp.MustCompile(`\w+`)
	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

// stopWords is the fixed stop-word set shared by all sources. The same
// set screens unigrams and bigram members.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "while": {}, "from": {}, "about": {},
	"over": {}, "their": {}, "various": {}, "amid": {}, "also": {},
}

// Extractor derives normalized key terms from a topic string.
type Extractor struct{}

// NewExtractor creates a term extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the topic's key terms in first-seen order: lower-cased
// unigrams with stop words and tokens shorter than three characters
// dropped, followed by two-word phrases built from adjacent
// non-stop-word tokens within each sentence. The result contains no
// duplicates. An empty topic yields nil.
func (e *Extractor) Extract(topic string) []string {
	lower := strings.ToLower(topic)

	var candidates []string
	for _, word := range wordPattern.FindAllString(lower, -1) {
		if isStopWord(word) || len(word) <= 2 {
			continue
		}
		candidates = append(candidates, word)
	}

	for _, sentence := range sentencePattern.Split(lower, -1) {
		tokens := wordPattern.FindAllString(sentence, -1)
		for i := 0; i+1 < len(tokens); i++ {
			if isStopWord(tokens[i]) || isStopWord(tokens[i+1]) {
				continue
			}
			candidates = append(candidates, tokens[i]+" "+tokens[i+1])
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	var unique []string
	for _, term := range candidates {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		unique = append(unique, term)
	}

	return unique
}

func isStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}
