// Package validate integrates an external full-validation collaborator. Its
// output is folded into the scan as one more detector under the dedicated
// syntax rule; unavailability, failure, or timeout degrade to no additional
// candidates and never abort the scan.
package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/iacguard/iacguard/internal/detectors"
	"github.com/iacguard/iacguard/internal/types"
)

// Runner produces syntax-validation candidates for the scanned roots.
type Runner interface {
	Validate(ctx context.Context, roots []string) ([]types.Candidate, error)
}

// CommandRunner shells out to a validator binary (terraform-compatible
// "validate -json" output) once per scan, bounded by Timeout.
type CommandRunner struct {
	Binary  string
	Args    []string
	Timeout time.Duration
}

// diagnostics mirrors the subset of the validator's JSON output we consume.
type validateOutput struct {
	Diagnostics []struct {
		Severity string `json:"severity"`
		Summary  string `json:"summary"`
		Detail   string `json:"detail"`
		Range    *struct {
			Filename string `json:"filename"`
			Start    struct {
				Line int `json:"line"`
			} `json:"start"`
		} `json:"range"`
	} `json:"diagnostics"`
}

func (r CommandRunner) Validate(ctx context.Context, roots []string) ([]types.Candidate, error) {
	if r.Binary == "" {
		return nil, nil
	}
	bin, err := exec.LookPath(r.Binary)
	if err != nil {
		return nil, fmt.Errorf("validator not found: %w", err)
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := r.Args
	if len(args) == 0 {
		args = []string{"validate", "-json"}
	}

	var out []types.Candidate
	for _, root := range roots {
		dir := root
		if st, err := os.Stat(root); err != nil {
			continue
		} else if !st.IsDir() {
			dir = filepath.Dir(root)
		}
		cmd := exec.CommandContext(cctx, bin, args...)
		cmd.Dir = dir
		// The validator exits nonzero when diagnostics exist but still
		// prints well-formed JSON, so the output matters more than err.
		raw, runErr := cmd.Output()
		if len(raw) == 0 {
			if runErr != nil {
				return nil, fmt.Errorf("validator failed in %s: %w", dir, runErr)
			}
			continue
		}
		out = append(out, parseDiagnostics(raw, dir)...)
	}
	return out, nil
}

// parseDiagnostics converts validator JSON into candidates. Filenames in the
// output are relative to the directory the validator ran in; they are resolved
// against dir so they line up with the paths the scan walk produced.
func parseDiagnostics(raw []byte, dir string) []types.Candidate {
	var doc validateOutput
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	var out []types.Candidate
	for _, d := range doc.Diagnostics {
		if d.Severity != "error" {
			continue
		}
		unit := ""
		line := 0
		if d.Range != nil {
			unit = d.Range.Filename
			line = d.Range.Start.Line
			if unit != "" && !filepath.IsAbs(unit) {
				unit = filepath.Join(dir, unit)
			}
		}
		detail := d.Summary
		if d.Detail != "" {
			detail = d.Summary + ": " + d.Detail
		}
		out = append(out, types.Candidate{
			Rule:     detectors.SyntaxRule,
			Unit:     unit,
			Line:     line,
			Context:  map[string]string{"detail": detail},
			UniqueID: fmt.Sprintf("%s::%s:%d", detectors.SyntaxRule, unit, line),
		})
	}
	return out
}
