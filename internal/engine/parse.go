package engine

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseKind classifies why a completion could not be parsed.
type ParseKind string

const (
	// ParseNoJSON means the completion contained no JSON object at all.
	ParseNoJSON ParseKind = "no_json_found"
	// ParseMalformed means a brace-delimited region was present but did
	// not parse as JSON.
	ParseMalformed ParseKind = "malformed_json"
)

// ParseError reports a failed extraction, keeping the raw completion
// for the caller's reasoning field.
type ParseError struct {
	Kind ParseKind
	Raw  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse completion: %s", e.Kind)
}

// ParsedVerdict is the JSON contract the generative backend is
// prompted to honor.
type ParsedVerdict struct {
	TrustScore  *float64 `json:"trust_score"`
	Verdict     string   `json:"verdict"`
	TrustedNews string   `json:"trusted_news"`
}

// ExtractJSON pulls the JSON object out of a raw completion. Models
// wrap their answer in prose or markdown fences, so the object is
// taken as the span from the first '{' to the last '}'. No brace
// balancing: the completion is assumed to contain at most one object.
func ExtractJSON(raw string) (ParsedVerdict, error) {
	var payload ParsedVerdict

	start := strings.Index(raw, "{")
	if start == -1 {
		return payload, &ParseError{Kind: ParseNoJSON, Raw: raw}
	}

	// An opening brace means the model attempted a JSON object; a
	// missing or misplaced closing brace is a malformed one, not an
	// absent one.
	end := strings.LastIndex(raw, "}")
	if end < start {
		return payload, &ParseError{Kind: ParseMalformed, Raw: raw}
	}

	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return payload, &ParseError{Kind: ParseMalformed, Raw: raw}
	}

	return payload, nil
}
