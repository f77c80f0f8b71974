package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/veritaslabs/veritas/internal/cache"
	"github.com/veritaslabs/veritas/internal/corpus"
	"github.com/veritaslabs/veritas/internal/embed"
	"github.com/veritaslabs/veritas/internal/engine"
	"github.com/veritaslabs/veritas/internal/index"
	"github.com/veritaslabs/veritas/internal/ingest"
	"github.com/veritaslabs/veritas/internal/llm"
	"github.com/veritaslabs/veritas/internal/model"
)

// loadConfig builds the effective configuration: defaults, overlaid
// with config file values, then API keys from the environment. Flags
// are applied by the individual commands on top.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	overlayString("http.user_agent", &cfg.HTTP.UserAgent)
	overlayString("embedding.provider", &cfg.Embedding.Provider)
	overlayString("embedding.model", &cfg.Embedding.Model)
	overlayString("embedding.base_url", &cfg.Embedding.BaseURL)
	overlayString("embedding.cache_dir", &cfg.Embedding.CacheDir)
	overlayString("llm.provider", &cfg.LLM.Provider)
	overlayString("llm.model", &cfg.LLM.Model)
	overlayString("llm.base_url", &cfg.LLM.BaseURL)
	overlayInt("llm.max_tokens", &cfg.LLM.MaxTokens)
	overlayInt("index.top_k", &cfg.Index.TopK)
	overlayInt("chunking.size", &cfg.Chunking.Size)
	overlayInt("chunking.overlap", &cfg.Chunking.Overlap)
	overlayFloat("relevance.title_threshold", &cfg.Relevance.TitleThreshold)
	overlayFloat("relevance.content_threshold", &cfg.Relevance.ContentThreshold)
	overlayString("corpus.path", &cfg.Corpus.Path)
	overlayInt("concurrency.ingest_workers", &cfg.Concurrency.IngestWorkers)
	overlayString("server.addr", &cfg.Server.Addr)

	// API keys come from the environment, never the config file.
	cfg.Embedding.APIKey = os.Getenv("OPENAI_API_KEY")
	switch cfg.LLM.Provider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
		if cfg.LLM.Provider == "ollama" {
			cfg.LLM.BaseURL = baseURL
		}
		if cfg.Embedding.Provider == "ollama" {
			cfg.Embedding.BaseURL = baseURL
		}
	}

	return cfg
}

func overlayString(key string, dst *string) {
	if viper.IsSet(key) {
		*dst = viper.GetString(key)
	}
}

func overlayInt(key string, dst *int) {
	if viper.IsSet(key) {
		*dst = viper.GetInt(key)
	}
}

func overlayFloat(key string, dst *float64) {
	if viper.IsSet(key) {
		*dst = viper.GetFloat64(key)
	}
}

// buildEmbedder creates the configured embedding provider, wrapped in
// a cache so repeated chunks and topics are embedded once.
func buildEmbedder(cfg *model.Config) (embed.Embedder, error) {
	var inner embed.Embedder
	switch cfg.Embedding.Provider {
	case "openai":
		e, err := embed.NewOpenAIEmbedder(cfg.Embedding.APIKey, cfg.Embedding.BaseURL, cfg.Embedding.Model, cfg.Embedding.Timeout)
		if err != nil {
			return nil, fmt.Errorf("configure openai embedder: %w", err)
		}
		inner = e
	case "ollama", "":
		inner = embed.NewOllamaEmbedder(cfg.Embedding.BaseURL, cfg.Embedding.Model, cfg.Embedding.Timeout)
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s (supported: openai, ollama)", cfg.Embedding.Provider)
	}

	var store cache.Cache
	if cfg.Embedding.CacheDir != "" {
		store = cache.NewLayeredCache(cfg.Embedding.CacheTTL, cfg.Embedding.CacheDir, 7*24*time.Hour)
	} else {
		store = cache.NewMemoryCache(cfg.Embedding.CacheTTL, 10*time.Minute)
	}

	return embed.NewCachedEmbedder(inner, cfg.Embedding.Model, store, cfg.Embedding.CacheTTL), nil
}

// buildCorpus loads the trusted corpus (configured file or built-in)
// and embeds its entries.
func buildCorpus(ctx context.Context, cfg *model.Config, embedder embed.Embedder) (*corpus.Corpus, error) {
	var c *corpus.Corpus
	if cfg.Corpus.Path != "" {
		loaded, err := corpus.Load(cfg.Corpus.Path)
		if err != nil {
			return nil, err
		}
		c = loaded
	} else {
		c = corpus.Default()
	}

	if err := c.Build(ctx, embedder); err != nil {
		return nil, fmt.Errorf("embed trusted corpus: %w", err)
	}
	return c, nil
}

// preflightProvider checks the generative backend once at startup. An
// unreachable or misconfigured provider is dropped with a warning so
// verification degrades to corpus similarity scoring instead of failing
// every request.
func preflightProvider(ctx context.Context, provider llm.Provider) llm.Provider {
	if provider == nil {
		return nil
	}
	if !provider.IsAvailable(ctx) {
		fmt.Fprintf(os.Stderr, "Warning: %s backend is not reachable, falling back to corpus similarity scoring\n", provider.Name())
		return nil
	}
	return provider
}

// stack is the wired verification stack shared by verify and serve.
type stack struct {
	engine   *engine.Engine
	index    *index.Index
	embedder embed.Embedder
	corpus   *corpus.Corpus
}

// buildStack wires the full verification stack. dataPath, when
// non-empty, preloads the index from a CSV snapshot written by
// `veritas ingest`.
func buildStack(ctx context.Context, cfg *model.Config, dataPath string) (*stack, error) {
	embedder, err := buildEmbedder(cfg)
	if err != nil {
		return nil, err
	}

	c, err := buildCorpus(ctx, cfg, embedder)
	if err != nil {
		return nil, err
	}

	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM, cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy))
	if err != nil {
		return nil, err
	}
	provider = preflightProvider(ctx, provider)

	idx := index.New()
	if dataPath != "" {
		docs, err := ingest.LoadCSV(dataPath)
		if err != nil {
			return nil, err
		}
		p, err := ingest.NewPipeline(cfg, embedder, idx)
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			if _, err := p.IndexDocument(ctx, doc); err != nil {
				return nil, err
			}
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Loaded %d documents (%d chunks) from %s\n", len(docs), idx.Len(), dataPath)
		}
	}

	return &stack{
		engine:   engine.New(embedder, provider, idx, c, cfg.Index.TopK),
		index:    idx,
		embedder: embedder,
		corpus:   c,
	}, nil
}
