// Package main is the entry point for the pokeforge API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pokeforge-api",
	Short: "PokéForge API server",
	Long:  `PokéForge provides an HTTP API for browsing the pokemon catalog and creating custom pokemon.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
