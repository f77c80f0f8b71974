package relevance

import (
	"testing"
)

func TestClassifier_LiteralTermHit(t *testing.T) {
	c := NewClassifier(0.3)
	terms := []string{"repo", "liquidity", "repo auctions"}

	got := c.Classify("RBI halts daily variable rate repo auctions", terms, "RBI stops repo auctions due to excess liquidity")

	if !got.Related {
		t.Error("text containing key terms should be related")
	}
	if len(got.MatchedTerms) == 0 {
		t.Error("expected matched terms")
	}
	if !containsTerm(got.MatchedTerms, "repo auctions") {
		t.Errorf("expected literal phrase match, got %v", got.MatchedTerms)
	}
}

func TestClassifier_MonotonicOnTermAddition(t *testing.T) {
	c := NewClassifier(0.3)
	terms := []string{"liquidity"}
	topic := "RBI stops repo auctions due to excess liquidity"

	base := c.Classify("completely unrelated migratory bird patterns", terms, topic)
	withTerm := c.Classify("completely unrelated migratory bird patterns liquidity", terms, topic)

	if base.Related && !withTerm.Related {
		t.Error("adding an exact term match must never decrease relatedness")
	}
	if !withTerm.Related {
		t.Error("text with a literal term hit must be related regardless of ratio")
	}
}

func TestClassifier_FuzzyScoreAboveThreshold(t *testing.T) {
	c := NewClassifier(0.3)
	topic := "central bank halts repo auctions"

	// Near-duplicate of the topic with no configured terms at all.
	got := c.Classify("central bank halts repo auction", nil, topic)

	if got.Score < 0.3 {
		t.Errorf("near-duplicate should score above threshold, got %v", got.Score)
	}
	if !got.Related {
		t.Error("high-ratio text should be related without literal hits")
	}
}

func TestClassifier_EmptyText(t *testing.T) {
	c := NewClassifier(0.3)

	got := c.Classify("", []string{"repo"}, "repo auctions")

	if got.Related || got.Score != 0 || len(got.MatchedTerms) != 0 {
		t.Errorf("empty text must yield zero result, got %+v", got)
	}

	got = c.Classify("   \n\t", []string{"repo"}, "repo auctions")
	if got.Related {
		t.Error("whitespace-only text must not be related")
	}
}

func TestClassifier_ScoreBounded(t *testing.T) {
	c := NewClassifier(0.3)

	got := c.Classify("some text about markets", []string{"markets", "text"}, "markets text")
	if got.Score < 0 || got.Score > 1 {
		t.Errorf("score out of [0,1]: %v", got.Score)
	}
}

func containsTerm(terms []string, want string) bool {
	for _, term := range terms {
		if term == want {
			return true
		}
	}
	return false
}
