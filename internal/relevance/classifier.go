// Package relevance scores arbitrary text against a news topic. It
// combines high-precision literal term hits with a fuzzy similarity
// ratio that recovers paraphrases and near-duplicate titles. A single
// classifier serves all sources, parameterized by threshold.
package relevance

import (
	"strings"

	"github.com/veritaslabs/veritas/internal/model"
)

// DefaultThreshold is the score above which text with no literal term
// hits still counts as related.
const DefaultThreshold = 0.3

// Classifier screens text for relatedness to a topic.
type Classifier struct {
	threshold float64
}

// NewClassifier creates a classifier with the given score threshold.
// Non-positive thresholds fall back to DefaultThreshold.
func NewClassifier(threshold float64) *Classifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Classifier{threshold: threshold}
}

// Classify scores text against a topic. matched_terms holds every key
// term present verbatim in the lower-cased text; the score is the
// maximum similarity ratio between the text and the full topic or any
// individual term. The text is related when it has at least one literal
// hit or its score clears the threshold. Empty text is never related.
func (c *Classifier) Classify(text string, topicTerms []string, topic string) model.RelevanceResult {
	if strings.TrimSpace(text) == "" {
		return model.RelevanceResult{}
	}

	lower := strings.ToLower(text)

	var matched []string
	for _, term := range topicTerms {
		if strings.Contains(lower, term) {
			matched = append(matched, term)
		}
	}

	score := Ratio(lower, strings.ToLower(topic))
	for _, term := range topicTerms {
		if r := Ratio(lower, term); r > score {
			score = r
		}
	}

	return model.RelevanceResult{
		Related:      len(matched) > 0 || score >= c.threshold,
		Score:        score,
		MatchedTerms: matched,
	}
}
