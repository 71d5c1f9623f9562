// Package main provides the entry point for the kiroku server and tools.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yukikurage/kiroku/cmd/kiroku/commands"
)

func main() {
	serveCmd := commands.NewServeCommand()

	rootCmd := &cobra.Command{
		Use:   "kiroku",
		Short: "Kiroku - symptom tracking log",
		Long: `Kiroku records numbness and stiffness symptoms and reports them over time.

Commands:
  serve     Run the HTTP API (default)
  init-db   Create tables and indexes
  report    Print a date-range report for one user`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(commands.NewInitDBCommand())
	rootCmd.AddCommand(commands.NewReportCommand())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
