package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/veritaslabs/veritas/internal/cli"
)

func main() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
