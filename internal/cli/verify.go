package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/veritaslabs/veritas/internal/ingest"
)

var (
	verifyTimeout time.Duration
	verifySources []string
	verifyData    string
	verifyTopK    int
	verifyNoLLM   bool
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <statement>",
	Short: "Verify a news statement against reference evidence",
	Long: `Verify scores a short news statement:
- Evidence pages (from --sources or a --data snapshot) are screened
  for relevance, chunked, embedded, and indexed
- The closest chunks become context for a single generative
  fact-verification call
- With no retrievable evidence, the statement is scored directly
  against the trusted corpus by embedding similarity

The result is printed as JSON: a trust score in [0,1], a verdict
label, and the supporting evidence summary.

Example:
  veritas verify "RBI stops repo auctions due to excess liquidity"
  veritas verify "..." --sources https://example.com/article
  veritas verify "..." --data docs.csv --top-k 2`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().DurationVar(&verifyTimeout, "timeout", 3*time.Minute, "overall request timeout")
	verifyCmd.Flags().StringSliceVar(&verifySources, "sources", nil, "URLs to ingest as evidence before verifying")
	verifyCmd.Flags().StringVar(&verifyData, "data", "", "CSV snapshot to load into the index (from 'veritas ingest')")
	verifyCmd.Flags().IntVar(&verifyTopK, "top-k", 0, "number of chunks to retrieve (default from config)")
	verifyCmd.Flags().BoolVar(&verifyNoLLM, "no-llm", false, "skip generation; score against the trusted corpus only")
}

func runVerify(cmd *cobra.Command, args []string) error {
	statement := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
	defer cancel()

	cfg := loadConfig()
	if verifyTopK > 0 {
		cfg.Index.TopK = verifyTopK
	}
	if verifyNoLLM {
		cfg.LLM.Provider = ""
	}

	st, err := buildStack(ctx, cfg, verifyData)
	if err != nil {
		return err
	}

	if len(verifySources) > 0 {
		p, err := ingest.NewPipeline(cfg, st.embedder, st.index)
		if err != nil {
			return err
		}

		stats, err := p.Run(ctx, statement, verifySources)
		if err != nil {
			return fmt.Errorf("ingest sources: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Ingested %d pages, skipped %d, indexed %d chunks\n",
				stats.Fetched, stats.Skipped, stats.Indexed)
			for _, ferr := range stats.Failures {
				fmt.Fprintf(os.Stderr, "  warning: %v\n", ferr)
			}
		}
	}

	assessment := st.engine.Verify(ctx, statement)

	out, err := json.MarshalIndent(assessment, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))

	if !assessment.OK() {
		os.Exit(1)
	}
	return nil
}
