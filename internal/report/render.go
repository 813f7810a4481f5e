package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/iacguard/iacguard/internal/types"
)

type PrintOptions struct {
	NoColor  bool
	Duration time.Duration
}

// PrintText writes the plain columnar report. Findings arrive already in the
// report's stable order and are printed as-is.
func PrintText(w io.Writer, rep types.ScanReport, opts PrintOptions) {
	if len(rep.Findings) == 0 {
		fmt.Fprintln(w, "No issues found ✅")
	} else {
		maxRule := 8
		for _, f := range rep.Findings {
			if l := len(f.Rule); l > maxRule {
				maxRule = l
			}
		}
		for _, f := range rep.Findings {
			sev := string(f.Severity)
			if !opts.NoColor {
				sev = colorSeverity(f.Severity)
			}
			fmt.Fprintf(w, "%-8s %-*s %s:%d  %s\n", sev, maxRule, f.Rule, f.File, f.Line, f.Title)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Files scanned: %d\n", rep.Summary.FilesScanned)
	fmt.Fprintf(w, "Issues found: %d", rep.Summary.IssuesFound)
	if len(rep.Summary.SeverityCounts) > 0 {
		fmt.Fprint(w, " (")
		first := true
		for _, lv := range types.Levels() {
			n := rep.Summary.SeverityCounts[lv]
			if n == 0 {
				continue
			}
			if !first {
				fmt.Fprint(w, ", ")
			}
			first = false
			fmt.Fprintf(w, "%s: %d", lv, n)
		}
		fmt.Fprint(w, ")")
	}
	fmt.Fprintln(w)
	if rep.Summary.Waived > 0 {
		fmt.Fprintf(w, "Waived: %d\n", rep.Summary.Waived)
	}
	if rep.Summary.Thresholds != nil && rep.Summary.Thresholds.Triggered {
		fmt.Fprintf(w, "Thresholds triggered: %v\n", rep.Summary.Thresholds.FailOn)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
}

// PrintTable writes the findings as a bordered table.
func PrintTable(w io.Writer, rep types.ScanReport) {
	if len(rep.Findings) == 0 {
		fmt.Fprintln(w, "No issues found ✅")
		return
	}
	table := tablewriter.NewTable(w)
	table.Header([]string{"Severity", "Rule", "Location", "Title"})
	for _, f := range rep.Findings {
		table.Append([]string{
			string(f.Severity),
			f.Rule,
			fmt.Sprintf("%s:%d", f.File, f.Line),
			f.Title,
		})
	}
	table.Render()
}

func colorSeverity(s types.Severity) string {
	switch s {
	case types.SevCritical:
		return color.New(color.FgRed, color.Bold).Sprint(string(s))
	case types.SevHigh:
		return color.New(color.FgRed).Sprint(string(s))
	case types.SevMedium:
		return color.New(color.FgYellow).Sprint(string(s))
	case types.SevLow:
		return color.New(color.FgCyan).Sprint(string(s))
	default:
		return color.New(color.FgWhite).Sprint(string(s))
	}
}
