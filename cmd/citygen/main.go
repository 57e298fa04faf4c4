// Package main is the entry point for the citygen CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "citygen",
	Short: "Procedural city generation pipeline",
	Long:  `citygen drives the modular city generation pipeline: terrain, walls, streets, and buildings placed through a shared collision manager.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
