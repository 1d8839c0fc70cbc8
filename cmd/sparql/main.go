// Command sparql runs SPARQL queries against HTTP endpoints from the
// command line. SELECT results stream as they arrive and render as a table;
// ASK results print their boolean.
package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "sparql",
	Short:         "Query SPARQL endpoints from the command line",
	Long:          `sparql is a command-line client for SPARQL 1.1 Protocol endpoints. It validates the query form locally, streams SELECT results as tab-separated values, and renders rows as they arrive.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(queryCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
