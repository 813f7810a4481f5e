// Package policy partitions findings by waivers and evaluates fail-on
// thresholds. Apply is a pure function over its inputs; given the same
// findings and config it always returns the same decision.
package policy

import (
	"strings"

	"github.com/iacguard/iacguard/internal/reviewcfg"
	"github.com/iacguard/iacguard/internal/types"
)

// Decision is the outcome of applying a review config to a set of findings.
// Active and Waived preserve the relative order of the input.
type Decision struct {
	Active         []types.Finding
	Waived         []types.WaivedFinding
	SeverityCounts map[types.Severity]int
	Thresholds     types.ThresholdStatus
}

// Apply partitions findings into active and waived sets and computes severity
// counts and threshold status over the active set. Waiver matching is exact
// string comparison on the finding id or rule; fail_on membership is compared
// case-insensitively.
func Apply(findings []types.Finding, cfg reviewcfg.Config) Decision {
	d := Decision{SeverityCounts: map[types.Severity]int{}}

	for _, f := range findings {
		if w, ok := matchWaiver(f, cfg.Waivers); ok {
			d.Waived = append(d.Waived, types.WaivedFinding{
				ID:       f.ID,
				Rule:     f.Rule,
				Title:    f.Title,
				Severity: f.Severity,
				File:     f.File,
				Line:     f.Line,
				Reason:   w.Reason,
			})
			continue
		}
		d.Active = append(d.Active, f)
		d.SeverityCounts[f.Severity]++
	}

	st := types.ThresholdStatus{
		Configured:  len(cfg.Thresholds.FailOn) > 0,
		FailOn:      append([]string(nil), cfg.Thresholds.FailOn...),
		ViolatedIDs: []string{},
	}
	if st.Configured {
		for _, f := range d.Active {
			if failsOn(f.Severity, cfg.Thresholds.FailOn) {
				st.Triggered = true
				st.ViolatedIDs = append(st.ViolatedIDs, f.ID)
			}
		}
	}
	d.Thresholds = st
	return d
}

func matchWaiver(f types.Finding, waivers []reviewcfg.Waiver) (reviewcfg.Waiver, bool) {
	for _, w := range waivers {
		switch w.Scope {
		case reviewcfg.ScopeID:
			if w.Value == f.ID {
				return w, true
			}
		case reviewcfg.ScopeRule:
			if w.Value == f.Rule {
				return w, true
			}
		}
	}
	return reviewcfg.Waiver{}, false
}

func failsOn(sev types.Severity, failOn []string) bool {
	for _, s := range failOn {
		if strings.EqualFold(string(sev), s) {
			return true
		}
	}
	return false
}
