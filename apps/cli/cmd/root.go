package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tapir",
	Short: "Plain text test protocol. No magic.",
	Long: `tapir produces Test Anything Protocol (TAP) streams. The library
does the real work; this CLI showcases its surface: plans, TODO and
SKIP directives, pluggable equality matchers, pattern and error
assertions, and nested subtests.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitUsageError)
	}
}

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)
}
