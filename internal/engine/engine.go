// Package engine orchestrates a verification request: retrieve
// evidence from the index, generate a structured verdict, or fall
// back to direct similarity scoring against the trusted corpus.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/veritaslabs/veritas/internal/corpus"
	"github.com/veritaslabs/veritas/internal/embed"
	"github.com/veritaslabs/veritas/internal/index"
	"github.com/veritaslabs/veritas/internal/llm"
	"github.com/veritaslabs/veritas/internal/model"
)

// DefaultTopK is the number of chunks retrieved per request.
const DefaultTopK = 4

// Engine scores news statements. It holds no per-request state: the
// index and corpus are read-only after startup, so concurrent Verify
// calls are safe.
type Engine struct {
	embedder embed.Embedder
	provider llm.Provider // nil disables generation
	index    *index.Index
	corpus   *corpus.Corpus
	topK     int
}

// New creates an engine. provider may be nil, in which case every
// request uses fallback scoring against the trusted corpus.
func New(embedder embed.Embedder, provider llm.Provider, idx *index.Index, c *corpus.Corpus, topK int) *Engine {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Engine{
		embedder: embedder,
		provider: provider,
		index:    idx,
		corpus:   c,
		topK:     topK,
	}
}

// Verify assesses a news statement. It always returns a well-formed
// Assessment: either a verdict or a structured error, never a panic
// or a bare error.
func (e *Engine) Verify(ctx context.Context, topic string) model.Assessment {
	queryVec, err := e.embedder.Embed(ctx, topic)
	if err != nil {
		return errorResult(model.ErrEmbeddingFailure, fmt.Sprintf("embed topic: %v", err))
	}

	if e.index.Len() == 0 && (e.corpus == nil || e.corpus.Len() == 0) {
		return errorResult(model.ErrEmptyCorpus, "index is empty and no trusted corpus is configured")
	}

	results := e.index.Query(queryVec, e.topK)
	if len(results) == 0 || e.provider == nil {
		return e.fallback(queryVec, len(results))
	}

	return e.generate(ctx, topic, results)
}

// generate builds the evidence prompt from retrieved chunks, makes a
// single completion call, and converts the raw output into an
// assessment.
func (e *Engine) generate(ctx context.Context, topic string, results []index.Result) model.Assessment {
	contexts := make([]string, len(results))
	for i, r := range results {
		contexts[i] = r.Text
	}

	raw, err := e.provider.Complete(ctx, BuildPrompt(contexts, topic))
	if err != nil {
		return errorResult(model.ErrGenerativeBackendFailure, fmt.Sprintf("%s completion: %v", e.provider.Name(), err))
	}

	parsed, err := ExtractJSON(raw)
	if err != nil {
		a := parseErrorResult(err)
		a.RetrievedCount = len(results)
		return a
	}

	if parsed.TrustScore == nil {
		a := errorResult(model.ErrMalformedJSON, "completion is missing trust_score")
		a.Reasoning = raw
		a.RetrievedCount = len(results)
		return a
	}
	if parsed.TrustedNews == "" {
		a := errorResult(model.ErrMalformedJSON, "completion is missing trusted_news")
		a.Reasoning = raw
		a.RetrievedCount = len(results)
		return a
	}

	score := model.ClampScore(*parsed.TrustScore)
	return model.Assessment{
		TrustScore:     &score,
		Verdict:        model.VerdictForScore(score),
		TrustedNews:    parsed.TrustedNews,
		RetrievedCount: len(results),
	}
}

// fallback scores the topic directly against the trusted corpus. The
// raw cosine similarity stands in for the trust score, so an
// off-topic statement lands below the trust thresholds.
func (e *Engine) fallback(queryVec []float32, retrieved int) model.Assessment {
	if e.corpus == nil {
		return errorResult(model.ErrEmptyCorpus, "no trusted corpus is configured")
	}

	match, ok := e.corpus.Best(queryVec)
	if !ok {
		return errorResult(model.ErrEmptyCorpus, "trusted corpus has no embedded entries")
	}

	score := model.ClampScore(match.Similarity)
	a := model.Assessment{
		TrustScore:     &score,
		Verdict:        model.VerdictForScore(score),
		TrustedNews:    match.Entry.Title,
		Reasoning:      fmt.Sprintf("scored against trusted corpus entry %q by embedding similarity", match.Entry.Title),
		RetrievedCount: retrieved,
	}
	if a.Verdict == model.VerdictNotTrustworthy {
		a.CorrectInformation = corpus.FirstLine(match.Entry.Content)
	}
	return a
}

// parseErrorResult converts a ParseError into a degraded assessment
// that keeps the raw completion as reasoning.
func parseErrorResult(err error) model.Assessment {
	var pe *ParseError
	if errors.As(err, &pe) {
		a := errorResult(model.ErrorKind(pe.Kind), err.Error())
		a.Reasoning = pe.Raw
		return a
	}
	return errorResult(model.ErrMalformedJSON, err.Error())
}

func errorResult(kind model.ErrorKind, detail string) model.Assessment {
	return model.Assessment{
		Error:  kind,
		Detail: detail,
	}
}
