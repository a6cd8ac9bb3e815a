package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "attribute",
		Short: "Shapley-style multi-touch marketing attribution",
		Long: `attribute fits channel credit from user journeys and outcome values.

Journeys are read from a header-less CSV (one row per user, one column per
touch position, empty or NA for no touch). Values are read from a CSV with
one outcome per row, aligned with the journeys.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("format", "", "Report format: yaml or json")
	rootCmd.PersistentFlags().String("journeys", "", "Journey CSV path")
	rootCmd.PersistentFlags().String("values", "", "Outcome values CSV path")

	rootCmd.AddCommand(
		newVersionCmd(),
		newFitCmd(),
		newScoreCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "attribute version %s\n", version)
		},
	}
}
