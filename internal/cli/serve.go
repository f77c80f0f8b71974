package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veritaslabs/veritas/internal/server"
)

var (
	serveAddr  string
	serveData  string
	serveWatch bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve verification over HTTP",
	Long: `Serve starts an HTTP server exposing:
  POST /verify   {"text": "<statement>"} -> assessment JSON
  GET  /healthz  liveness check

The index is preloaded from a CSV snapshot when --data is given; with
--watch, the trusted corpus file is reloaded on change.

Example:
  veritas serve --addr :8080 --data docs.csv`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	serveCmd.Flags().StringVar(&serveData, "data", "", "CSV snapshot to load into the index (from 'veritas ingest')")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload the corpus file on change (requires corpus.path)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := buildStack(ctx, cfg, serveData)
	if err != nil {
		return err
	}

	if serveWatch {
		if cfg.Corpus.Path == "" {
			return fmt.Errorf("--watch requires corpus.path to be configured")
		}
		go func() {
			if err := st.corpus.Watch(ctx, cfg.Corpus.Path, st.embedder); err != nil && ctx.Err() == nil {
				fmt.Fprintf(os.Stderr, "corpus watcher stopped: %v\n", err)
			}
		}()
	}

	fmt.Fprintf(os.Stderr, "Listening on %s (%d indexed chunks)\n", cfg.Server.Addr, st.index.Len())
	return server.New(st.engine).Run(cfg.Server.Addr)
}
