// Package cli implements the arkhamd command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	jsonOutput bool

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "arkhamd",
	Short: "arkhamd is the Arkham Asylum records server",
	Long: `arkhamd serves the asylum's inmate, staff, treatment, and incident
records over a JSON HTTP API. All records live in memory; a seed roster
file (YAML or JSON) defines the starting state, and the state endpoints
can reset collections back to it at any time.

By default arkhamd listens on 127.0.0.1:8000 with the built-in example
roster.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
}
