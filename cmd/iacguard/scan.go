package iacguard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iacguard/iacguard/internal/engine"
	"github.com/iacguard/iacguard/internal/report"
	"github.com/iacguard/iacguard/internal/types"
	"github.com/iacguard/iacguard/internal/validate"
)

var (
	flagInclude         string
	flagExclude         string
	flagMaxBytes        int64
	flagConfig          string
	flagFailOn          string
	flagBaseline        string
	flagUpdateBaseline  bool
	flagValidator       string
	flagValidateTimeout time.Duration
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan configuration sources for risky patterns",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().StringVar(&flagConfig, "config", "", "explicit review config file (skips discovery)")
	cmd.Flags().StringVar(&flagFailOn, "fail-on", "", "fail when active findings have any of these severities (comma-separated)")
	cmd.Flags().StringVar(&flagBaseline, "baseline", "", "baseline file; previously accepted findings are filtered out")
	cmd.Flags().BoolVar(&flagUpdateBaseline, "update-baseline", false, "write the current findings to the baseline file")
	cmd.Flags().StringVar(&flagValidator, "validator", "", "external validator binary for full syntax validation")
	cmd.Flags().DurationVar(&flagValidateTimeout, "validate-timeout", 30*time.Second, "timeout for the external validator")
}

func runScan(cmd *cobra.Command, args []string) error {
	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	cfg := engine.Config{
		Roots:        roots,
		IncludeGlobs: flagInclude,
		ExcludeGlobs: flagExclude,
		MaxBytes:     flagMaxBytes,
		Threads:      flagThreads,
		ConfigPath:   flagConfig,
		FailOn:       splitList(flagFailOn),
	}
	if flagValidator != "" {
		cfg.Validator = validate.CommandRunner{
			Binary:  flagValidator,
			Timeout: flagValidateTimeout,
		}
	}
	if flagBaseline != "" && !flagUpdateBaseline {
		if base, err := report.LoadBaseline(flagBaseline); err == nil {
			cfg.BaselineFilter = func(fs []types.Finding) []types.Finding {
				return report.FilterNew(fs, base)
			}
		}
	}

	res, err := engine.ScanWithStats(cfg)
	if err != nil {
		return err
	}
	rep := res.Report

	if flagBaseline != "" && flagUpdateBaseline {
		if err := report.SaveBaseline(flagBaseline, rep.Findings); err != nil {
			return fmt.Errorf("write baseline: %w", err)
		}
	}

	if n := len(res.Diagnostics); n > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d detector invocation(s) failed and were skipped\n", n)
	}

	switch {
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, rep, version); err != nil {
			return err
		}
	case flagJSON:
		if err := report.WriteJSON(os.Stdout, rep); err != nil {
			return err
		}
	case flagTable:
		report.PrintTable(os.Stdout, rep)
	default:
		report.PrintText(os.Stdout, rep, report.PrintOptions{
			NoColor:  flagNoColor,
			Duration: res.Duration,
		})
	}

	if rep.Summary.Thresholds != nil && rep.Summary.Thresholds.Triggered {
		os.Exit(1)
	}
	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
