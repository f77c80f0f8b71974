package llm

import (
	"fmt"
	"strings"

	"github.com/veritaslabs/veritas/internal/model"
)

// NewProvider creates a generative backend based on configuration. An
// empty provider name returns (nil, nil): generation disabled, the
// engine can only use its fallback path.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config.
func ConfigFromModel(c model.LLMConfig, httpProxy, httpsProxy, noProxy string) Config {
	return Config{
		Provider:    c.Provider,
		Model:       c.Model,
		APIKey:      c.APIKey,
		BaseURL:     c.BaseURL,
		Timeout:     int(c.Timeout.Seconds()),
		MaxTokens:   c.MaxTokens,
		Temperature: c.Temperature,
		HTTPProxy:   httpProxy,
		HTTPSProxy:  httpsProxy,
		NoProxy:     noProxy,
	}
}
