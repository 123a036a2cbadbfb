package main

import (
	"os"

	"github.com/spf13/cobra"
)

const app = "matchdex"

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "matchdex is a job and candidate matching API backed by a full-text search index",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
