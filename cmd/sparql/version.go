package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/geoknoesis/sparql-go/sparql"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the client version",
	Run: func(cmd *cobra.Command, args []string) {
		pterm.Printf("sparql %s\n", sparql.Version)
	},
}
