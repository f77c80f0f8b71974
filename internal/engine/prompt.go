package engine

import (
	"fmt"
	"strings"
)

// BuildPrompt assembles the fact-verification prompt from retrieved
// context chunks and the statement under test. The JSON contract in
// the tail must stay in sync with ParsedVerdict.
func BuildPrompt(contexts []string, topic string) string {
	var sb strings.Builder

	sb.WriteString("Use the following trusted context to verify the news statement.\n\n")
	sb.WriteString("Context:\n")
	for _, c := range contexts {
		sb.WriteString(strings.TrimSpace(c))
		sb.WriteString("\n\n")
	}

	fmt.Fprintf(&sb, "News statement: %q\n\n", topic)

	sb.WriteString("Compare the statement against the context and rate how trustworthy it is.\n")
	sb.WriteString("Respond with ONLY a JSON object in exactly this format, no other text:\n")
	sb.WriteString(`{"trust_score": <number between 0 and 1>, "verdict": "<Highly Trustworthy|Likely Trustworthy|Not Trustworthy>", "trusted_news": "<one-sentence summary of what the context actually supports>"}`)
	sb.WriteString("\n")

	return sb.String()
}
