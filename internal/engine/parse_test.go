package engine

import (
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	raw := `Sure! Here is my assessment: {"trust_score":0.9,"verdict":"Highly Trustworthy","trusted_news":"x"} hope that helps`

	parsed, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if parsed.TrustScore == nil || *parsed.TrustScore != 0.9 {
		t.Errorf("TrustScore = %v, want 0.9", parsed.TrustScore)
	}
	if parsed.Verdict != "Highly Trustworthy" {
		t.Errorf("Verdict = %q", parsed.Verdict)
	}
	if parsed.TrustedNews != "x" {
		t.Errorf("TrustedNews = %q", parsed.TrustedNews)
	}
}

func TestExtractJSONMarkdownFence(t *testing.T) {
	raw := "```json\n{\"trust_score\": 0.5, \"verdict\": \"Likely Trustworthy\", \"trusted_news\": \"summary\"}\n```"

	parsed, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if parsed.TrustScore == nil || *parsed.TrustScore != 0.5 {
		t.Errorf("TrustScore = %v, want 0.5", parsed.TrustScore)
	}
}

func TestExtractJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind ParseKind
	}{
		{"no braces", "no braces here", ParseNoJSON},
		{"empty", "", ParseNoJSON},
		{"only close brace", "} nothing opens", ParseNoJSON},
		{"close before open", "} then {", ParseMalformed},
		{"unclosed object", "{ broken", ParseMalformed},
		{"invalid json", `{"trust_score": not a number}`, ParseMalformed},
		{"two objects merged", `{"a":1} and {"b":2}`, ParseMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractJSON(tt.raw)
			if err == nil {
				t.Fatal("expected error")
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error is %T, want *ParseError", err)
			}
			if pe.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", pe.Kind, tt.kind)
			}
			if pe.Raw != tt.raw {
				t.Errorf("Raw not preserved: %q", pe.Raw)
			}
		})
	}
}
