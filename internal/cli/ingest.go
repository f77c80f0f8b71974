package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/veritaslabs/veritas/internal/index"
	"github.com/veritaslabs/veritas/internal/ingest"
)

var (
	ingestTimeout time.Duration
	ingestSources []string
	ingestOut     string
	ingestWorkers int
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest <topic>",
	Short: "Fetch and screen evidence pages for a topic",
	Long: `Ingest fetches the given URLs, extracts their readable text, keeps
the pages relevant to the topic, and writes them to a CSV snapshot
that 'veritas verify --data' can load without refetching.

Fetching is polite: robots.txt is honored and requests are
rate-limited per host.

Example:
  veritas ingest "RBI repo auctions" --sources https://example.com/a,https://example.com/b --out docs.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().DurationVar(&ingestTimeout, "timeout", 5*time.Minute, "overall ingestion timeout")
	ingestCmd.Flags().StringSliceVar(&ingestSources, "sources", nil, "URLs to fetch (required)")
	ingestCmd.Flags().StringVar(&ingestOut, "out", "docs.csv", "output CSV snapshot path")
	ingestCmd.Flags().IntVar(&ingestWorkers, "workers", 0, "concurrent fetches (default from config)")
	_ = ingestCmd.MarkFlagRequired("sources")
}

func runIngest(cmd *cobra.Command, args []string) error {
	topic := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout)
	defer cancel()

	cfg := loadConfig()
	if ingestWorkers > 0 {
		cfg.Concurrency.IngestWorkers = ingestWorkers
	}

	embedder, err := buildEmbedder(cfg)
	if err != nil {
		return err
	}

	p, err := ingest.NewPipeline(cfg, embedder, index.New())
	if err != nil {
		return err
	}

	stats, err := p.Run(ctx, topic, ingestSources)
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}

	for _, ferr := range stats.Failures {
		fmt.Fprintf(os.Stderr, "warning: %v\n", ferr)
	}
	fmt.Printf("Fetched %d pages (%d skipped as off-topic, %d failed), %d chunks embedded\n",
		stats.Fetched, stats.Skipped, len(stats.Failures), stats.Indexed)

	if len(stats.Documents) == 0 {
		return fmt.Errorf("no relevant pages to save")
	}

	if err := ingest.SaveCSV(ingestOut, stats.Documents); err != nil {
		return err
	}
	fmt.Printf("Saved %d documents to %s\n", len(stats.Documents), ingestOut)

	return nil
}
