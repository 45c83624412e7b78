// Package main provides the entry point for the assesscat CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "assesscat",
	Short: "Identify reassessment candidates in a category",
	Long:  "assesscat lists the articles in a category whose ORES-predicted quality class sits well below a target class, as a wikitext table sorted by the probability each article in fact exceeds the target.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
