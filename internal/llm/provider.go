// Package llm provides provider-agnostic access to generative
// backends. The engine makes a single completion call per verification
// request; retries, if desired, are a caller policy layered outside
// this package.
package llm

import (
	"context"
)

// Provider is the generative backend contract: one prompt in, one
// free-text completion out.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Complete generates a completion for the prompt. Implementations
	// honor ctx cancellation and their configured timeout.
	Complete(ctx context.Context, prompt string) (string, error)

	// IsAvailable checks if the provider is properly configured and
	// reachable.
	IsAvailable(ctx context.Context) bool
}

// Config holds generative backend configuration.
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g. Ollama)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// Temperature; low values keep fact-verification output focused
	Temperature float64

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:     60,
		MaxTokens:   1000,
		Temperature: 0.3,
	}
}

const systemPrompt = "You are a fact verification assistant. You compare news statements against trusted reference context and respond only in the requested JSON format."
