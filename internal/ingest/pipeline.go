package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/veritaslabs/veritas/internal/chunker"
	"github.com/veritaslabs/veritas/internal/embed"
	"github.com/veritaslabs/veritas/internal/index"
	"github.com/veritaslabs/veritas/internal/model"
	"github.com/veritaslabs/veritas/internal/relevance"
	"github.com/veritaslabs/veritas/internal/terms"
	"github.com/veritaslabs/veritas/internal/worker"
)

// fetchTimeout bounds a single page fetch inside a larger ingestion
// context.
const fetchTimeout = 45 * time.Second

// Stats summarizes one ingestion run. Documents holds the accepted
// pages so callers can snapshot them with SaveCSV.
type Stats struct {
	Fetched   int
	Skipped   int
	Indexed   int
	Failures  []error
	Documents []model.Document
}

// Pipeline fetches pages, screens them for topic relevance, and loads
// the survivors into the index as embedded chunks.
type Pipeline struct {
	fetcher   *Fetcher
	extractor *terms.Extractor
	title     *relevance.Classifier
	content   *relevance.Classifier
	chunker   *chunker.Chunker
	embedder  embed.Embedder
	index     *index.Index
	workers   int
}

// NewPipeline wires an ingestion pipeline from configuration.
func NewPipeline(cfg *model.Config, embedder embed.Embedder, idx *index.Index) (*Pipeline, error) {
	ch, err := chunker.New(cfg.Chunking.Size, cfg.Chunking.Overlap)
	if err != nil {
		return nil, fmt.Errorf("configure chunker: %w", err)
	}

	return &Pipeline{
		fetcher:   NewFetcher(cfg.HTTP),
		extractor: terms.NewExtractor(),
		title:     relevance.NewClassifier(cfg.Relevance.TitleThreshold),
		content:   relevance.NewClassifier(cfg.Relevance.ContentThreshold),
		chunker:   ch,
		embedder:  embedder,
		index:     idx,
		workers:   cfg.Concurrency.IngestWorkers,
	}, nil
}

type fetchOutcome struct {
	doc model.Document
	err error
	// skipped pages are neither failures nor documents
	skipped bool
}

// Run ingests the given URLs for a topic. Fetches run concurrently;
// indexing is serialized through the index's own lock. Per-URL
// failures are collected in Stats, not returned as an error.
func (p *Pipeline) Run(ctx context.Context, topic string, urls []string) (Stats, error) {
	topicTerms := p.extractor.Extract(topic)

	outcomes := worker.Map(ctx, p.workers, urls, func(ctx context.Context, rawURL string) fetchOutcome {
		return p.fetchOne(ctx, topic, topicTerms, rawURL)
	})

	var stats Stats
	for _, out := range outcomes {
		switch {
		case out.err != nil:
			stats.Failures = append(stats.Failures, out.err)
		case out.skipped:
			stats.Skipped++
		default:
			stats.Fetched++
			stats.Documents = append(stats.Documents, out.doc)
			n, err := p.IndexDocument(ctx, out.doc)
			if err != nil {
				stats.Failures = append(stats.Failures, err)
				continue
			}
			stats.Indexed += n
		}
	}

	if err := ctx.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}

func (p *Pipeline) fetchOne(ctx context.Context, topic string, topicTerms []string, rawURL string) fetchOutcome {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	page, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return fetchOutcome{err: err}
	}

	article, err := ExtractArticle(page.HTML)
	if err != nil {
		return fetchOutcome{err: fmt.Errorf("extract %s: %w", rawURL, err)}
	}

	// Screen the title first: a cheap reject before scoring the full
	// text.
	titleResult := p.title.Classify(article.Title, topicTerms, topic)
	contentResult := p.content.Classify(article.Text, topicTerms, topic)
	if !titleResult.Related && !contentResult.Related {
		return fetchOutcome{skipped: true}
	}

	return fetchOutcome{doc: model.Document{
		ID:   page.FinalURL,
		Text: article.Text,
		Metadata: map[string]any{
			"source": page.FinalURL,
			"title":  article.Title,
			"url":    rawURL,
			"date":   time.Now().UTC().Format("2006-01-02"),
		},
	}}
}

// IndexDocument chunks, embeds, and stores one document, returning the
// number of chunks indexed.
func (p *Pipeline) IndexDocument(ctx context.Context, doc model.Document) (int, error) {
	texts := p.chunker.Chunk(doc.Text)
	for i, text := range texts {
		ck := model.Chunk{SourceID: doc.ID, Index: i, Total: len(texts), Text: text}
		vec, err := p.embedder.Embed(ctx, ck.Text)
		if err != nil {
			return i, fmt.Errorf("embed chunk %d of %s: %w", ck.Index, doc.ID, err)
		}
		p.index.Add(ck.ID(), ck.Text, vec, doc.Metadata)
	}
	return len(texts), nil
}
