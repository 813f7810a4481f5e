package iacguard

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagSARIF   bool
	flagTable   bool
	flagNoColor bool
	flagThreads int

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the iacguard CLI.
var rootCmd = &cobra.Command{
	Use:           "iacguard",
	Short:         "Review infrastructure-as-code for risky patterns",
	Long:          "iacguard scans configuration sources for known risky patterns and applies organization waivers and fail-on thresholds to produce a stable, severity-ranked report.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the iacguard CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit the report as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output findings as a bordered table")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
}
