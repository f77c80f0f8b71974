package terms

import (
	"strings"
	"testing"
)

func TestExtractor_Basic(t *testing.T) {
	e := NewExtractor()

	got := e.Extract("RBI stops repo auctions due to excess liquidity")

	want := []string{"rbi", "stops", "repo", "auctions", "due", "excess", "liquidity"}
	for _, term := range want {
		if !containsTerm(got, term) {
			t.Errorf("expected unigram %q in %v", term, got)
		}
	}

	// Adjacent non-stop-word pairs become phrases.
	if !containsTerm(got, "repo auctions") {
		t.Errorf("expected phrase 'repo auctions' in %v", got)
	}
	if !containsTerm(got, "excess liquidity") {
		t.Errorf("expected phrase 'excess liquidity' in %v", got)
	}

	// "to" is a stop word, so no phrase should bridge it.
	if containsTerm(got, "due to") || containsTerm(got, "to excess") {
		t.Errorf("phrases must not contain stop words: %v", got)
	}
}

func TestExtractor_NoStopWordsOrShortTokens(t *testing.T) {
	e := NewExtractor()

	got := e.Extract("The RBI is about to do an IT check on a big bank")

	for _, term := range got {
		for _, word := range strings.Fields(term) {
			if isStopWord(word) {
				t.Errorf("term %q contains stop word %q", term, word)
			}
		}
		if !strings.Contains(term, " ") && len(term) <= 2 {
			t.Errorf("unigram %q shorter than 3 characters", term)
		}
	}
}

func TestExtractor_DeduplicatesPreservingOrder(t *testing.T) {
	e := NewExtractor()

	got := e.Extract("liquidity surplus liquidity surplus liquidity")

	seen := make(map[string]int)
	for _, term := range got {
		seen[term]++
		if seen[term] > 1 {
			t.Errorf("duplicate term %q in %v", term, got)
		}
	}
	if len(got) == 0 || got[0] != "liquidity" {
		t.Errorf("expected first-seen order starting with 'liquidity', got %v", got)
	}
}

func TestExtractor_SentenceBoundedPhrases(t *testing.T) {
	e := NewExtractor()

	got := e.Extract("Markets rallied. Banks gained.")

	// No phrase should span the sentence boundary.
	if containsTerm(got, "rallied banks") {
		t.Errorf("phrase crossed sentence boundary: %v", got)
	}
	if !containsTerm(got, "markets rallied") || !containsTerm(got, "banks gained") {
		t.Errorf("expected per-sentence phrases, got %v", got)
	}
}

func TestExtractor_EmptyTopic(t *testing.T) {
	e := NewExtractor()

	if got := e.Extract(""); len(got) != 0 {
		t.Errorf("empty topic should yield no terms, got %v", got)
	}
	if got := e.Extract("   "); len(got) != 0 {
		t.Errorf("blank topic should yield no terms, got %v", got)
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
