package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iacguard/iacguard/internal/assemble"
	"github.com/iacguard/iacguard/internal/detectors"
	"github.com/iacguard/iacguard/internal/kb"
	"github.com/iacguard/iacguard/internal/policy"
	"github.com/iacguard/iacguard/internal/reviewcfg"
	"github.com/iacguard/iacguard/internal/rules"
	"github.com/iacguard/iacguard/internal/types"
	"github.com/iacguard/iacguard/internal/validate"
)

// Config controls one scan: scope, filters, concurrency, and collaborators.
type Config struct {
	Roots        []string
	IncludeGlobs string
	ExcludeGlobs string
	MaxBytes     int64
	Threads      int

	// ConfigPath pins the review config; when empty it is discovered by
	// walking from each root's directory toward WorkDir. FailOn, when set,
	// replaces the config's thresholds (CLI wins over discovered config).
	ConfigPath string
	WorkDir    string
	FailOn     []string

	// Validator is the optional external full-validate collaborator,
	// invoked once per scan. Knowledge resolves best-effort explanations.
	Validator validate.Runner
	Knowledge kb.Knowledge

	// BaselineFilter, when set, drops previously accepted findings after
	// assembly and before the review policy runs, so waivers, severity
	// counts, and thresholds see only what the baseline does not cover.
	BaselineFilter func([]types.Finding) []types.Finding

	// Registry and Detectors default to the built-in sets; tests substitute
	// alternates here.
	Registry  *rules.Registry
	Detectors []detectors.Detector
}

// Diagnostic records one suppressed detector failure. Failures are isolated
// per invocation and counted rather than silently discarded.
type Diagnostic struct {
	Rule string
	File string
	Err  error
}

// Result is a report plus scan-level stats that do not belong in the report.
type Result struct {
	Report      types.ScanReport
	Duration    time.Duration
	Diagnostics []Diagnostic
}

// Scan runs a scan and returns only the report.
func Scan(cfg Config) (types.ScanReport, error) {
	res, err := ScanWithStats(cfg)
	return res.Report, err
}

// ScanWithStats runs the full pipeline: discover files, run every detector
// over every file (parallel by file, merged back in discovery order), fold in
// the external validator, assemble findings, and apply the review policy.
// The scan always completes with a well-formed report; per-detector failures
// surface only as diagnostics.
func ScanWithStats(cfg Config) (Result, error) {
	started := time.Now()
	var result Result

	if cfg.Registry == nil {
		cfg.Registry = rules.NewRegistry()
	}
	if cfg.Knowledge == nil {
		cfg.Knowledge = kb.Default()
	}
	dets := cfg.Detectors
	if dets == nil {
		dets = detectors.All()
	}
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	files := DiscoverFiles(cfg)

	type fileResult struct {
		text  string
		ok    bool
		cands []types.Candidate
		diags []Diagnostic
	}
	results := make([]fileResult, len(files))

	g := new(errgroup.Group)
	g.SetLimit(threads)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			b, err := os.ReadFile(path)
			if err != nil || looksBinary(b) {
				return nil
			}
			fr := fileResult{text: string(b), ok: true}
			for _, d := range dets {
				cands, derr := runDetector(d, path, fr.text)
				if derr != nil {
					fr.diags = append(fr.diags, Diagnostic{Rule: d.Rule, File: path, Err: derr})
					continue
				}
				fr.cands = append(fr.cands, cands...)
			}
			results[i] = fr
			return nil
		})
	}
	_ = g.Wait()

	texts := make(map[string]string, len(files))
	var candidates []types.Candidate
	filesScanned := 0
	for i := range results {
		fr := &results[i]
		if !fr.ok {
			continue
		}
		filesScanned++
		texts[files[i]] = fr.text
		candidates = append(candidates, fr.cands...)
		result.Diagnostics = append(result.Diagnostics, fr.diags...)
	}

	if cfg.Validator != nil {
		vcands, err := cfg.Validator.Validate(context.Background(), cfg.Roots)
		if err != nil {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{Rule: detectors.SyntaxRule, Err: err})
		} else {
			candidates = append(candidates, vcands...)
		}
	}

	rcfg := resolveReviewConfig(cfg)

	findings := make([]types.Finding, 0, len(candidates))
	for _, c := range candidates {
		findings = append(findings, assemble.Assemble(c, texts[c.Unit], cfg.Registry, cfg.Knowledge))
	}
	if cfg.BaselineFilter != nil {
		findings = cfg.BaselineFilter(findings)
	}

	decision := policy.Apply(findings, rcfg)

	summary := types.Summary{
		FilesScanned: filesScanned,
		IssuesFound:  len(decision.Active),
		Waived:       len(decision.Waived),
	}
	if len(decision.SeverityCounts) > 0 {
		summary.SeverityCounts = decision.SeverityCounts
	}
	if decision.Thresholds.Configured {
		st := decision.Thresholds
		summary.Thresholds = &st
	}

	active := decision.Active
	if active == nil {
		active = []types.Finding{}
	}
	result.Report = types.ScanReport{
		Summary:        summary,
		Findings:       active,
		WaivedFindings: decision.Waived,
		Config:         rcfg.SourceFile,
	}
	result.Duration = time.Since(started)
	return result, nil
}

// runDetector isolates one detector invocation: a panic becomes an error at
// the call site so sibling detectors still run against the same file.
func runDetector(d detectors.Detector, unit, src string) (cands []types.Candidate, err error) {
	defer func() {
		if r := recover(); r != nil {
			cands = nil
			err = fmt.Errorf("detector %s failed on %s: %v", d.Rule, unit, r)
		}
	}()
	return d.Scan(unit, src), nil
}

// resolveReviewConfig loads the review config once per scan: an explicit path
// wins; otherwise each root's directory is searched upward toward WorkDir and
// the first match across roots is used. Absence yields the zero config.
func resolveReviewConfig(cfg Config) reviewcfg.Config {
	rcfg := discoverReviewConfig(cfg)
	if len(cfg.FailOn) > 0 {
		rcfg.Thresholds.FailOn = cfg.FailOn
	}
	return rcfg
}

func discoverReviewConfig(cfg Config) reviewcfg.Config {
	if cfg.ConfigPath != "" {
		rcfg, _ := reviewcfg.Load(cfg.ConfigPath)
		return rcfg
	}
	stop := cfg.WorkDir
	if stop == "" {
		stop, _ = os.Getwd()
	}
	for _, root := range cfg.Roots {
		st, err := os.Stat(root)
		if err != nil {
			continue
		}
		dir := root
		if !st.IsDir() {
			dir = filepath.Dir(root)
		}
		if c, ok := reviewcfg.Discover(dir, stop); ok {
			return c
		}
	}
	return reviewcfg.Config{}
}
