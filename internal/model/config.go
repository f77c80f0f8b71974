package model

import "time"

// Config holds the complete runtime configuration.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Embedding   EmbeddingConfig   `yaml:"embedding"`
	LLM         LLMConfig         `yaml:"llm"`
	Index       IndexConfig       `yaml:"index"`
	Chunking    ChunkingConfig    `yaml:"chunking"`
	Relevance   RelevanceConfig   `yaml:"relevance"`
	Corpus      CorpusConfig      `yaml:"corpus"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Server      ServerConfig      `yaml:"server"`
}

// HTTPConfig controls outbound fetching during ingestion.
type HTTPConfig struct {
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"user_agent"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	HTTPProxy         string        `yaml:"http_proxy"`
	HTTPSProxy        string        `yaml:"https_proxy"`
	NoProxy           string        `yaml:"no_proxy"`
}

// EmbeddingConfig selects and tunes the embedding provider.
type EmbeddingConfig struct {
	Provider string        `yaml:"provider"` // "openai" or "ollama"
	Model    string        `yaml:"model"`
	APIKey   string        `yaml:"api_key,omitempty"`
	BaseURL  string        `yaml:"base_url,omitempty"`
	Timeout  time.Duration `yaml:"timeout"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
	CacheDir string        `yaml:"cache_dir,omitempty"`
}

// LLMConfig selects and tunes the generative backend.
type LLMConfig struct {
	Provider    string        `yaml:"provider"` // "openai", "anthropic", "ollama"
	Model       string        `yaml:"model"`
	APIKey      string        `yaml:"api_key,omitempty"`
	BaseURL     string        `yaml:"base_url,omitempty"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxTokens   int           `yaml:"max_tokens"`
	Temperature float64       `yaml:"temperature"`
}

// IndexConfig tunes retrieval.
type IndexConfig struct {
	TopK int `yaml:"top_k"`
}

// ChunkingConfig tunes document segmentation for indexing.
type ChunkingConfig struct {
	Size    int `yaml:"size"`
	Overlap int `yaml:"overlap"`
}

// RelevanceConfig holds the screening thresholds. Title screening and
// content screening may use different thresholds.
type RelevanceConfig struct {
	TitleThreshold   float64 `yaml:"title_threshold"`
	ContentThreshold float64 `yaml:"content_threshold"`
}

// CorpusConfig locates the trusted fallback corpus.
type CorpusConfig struct {
	Path string `yaml:"path,omitempty"`
}

// ConcurrencyConfig tunes the ingestion worker pool.
type ConcurrencyConfig struct {
	IngestWorkers int `yaml:"ingest_workers"`
}

// ServerConfig tunes the HTTP verification endpoint.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns the built-in defaults. Config file, environment
// variables, and flags layer on top of these.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:           30 * time.Second,
			UserAgent:         "Veritas/0.1 (+https://github.com/veritaslabs/veritas)",
			MaxBodyBytes:      2_000_000,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Embedding: EmbeddingConfig{
			Provider: "ollama",
			Model:    "nomic-embed-text",
			BaseURL:  "http://localhost:11434",
			Timeout:  30 * time.Second,
			CacheTTL: 24 * time.Hour,
		},
		LLM: LLMConfig{
			Provider:    "ollama",
			Model:       "llama3",
			BaseURL:     "http://localhost:11434",
			Timeout:     60 * time.Second,
			MaxTokens:   1000,
			Temperature: 0.3,
		},
		Index: IndexConfig{
			TopK: 4,
		},
		Chunking: ChunkingConfig{
			Size:    1000,
			Overlap: 200,
		},
		Relevance: RelevanceConfig{
			TitleThreshold:   0.3,
			ContentThreshold: 0.3,
		},
		Concurrency: ConcurrencyConfig{
			IngestWorkers: 4,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
