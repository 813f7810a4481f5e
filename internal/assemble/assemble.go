// Package assemble turns raw candidates into report-ready findings.
package assemble

import (
	"path/filepath"
	"strings"

	"github.com/iacguard/iacguard/internal/kb"
	"github.com/iacguard/iacguard/internal/rules"
	"github.com/iacguard/iacguard/internal/types"
)

// Assemble merges a candidate with its rendered metadata. The id is the
// candidate's own unique id when set, else "rule::resource" (file stem when
// the candidate has no resource context) so repeated scans of unchanged
// source produce the same id.
//
// When both snippet and fix are present and the snippet occurs exactly once
// verbatim in fileText, a unified diff previewing the single-occurrence
// replacement is attached. A snippet that no longer matches (already
// remediated, reformatted) yields an empty diff, never an error.
func Assemble(cand types.Candidate, fileText string, reg *rules.Registry, know kb.Knowledge) types.Finding {
	meta := reg.Lookup(cand.Rule)
	r := rules.Render(meta, cand.Context, cand.Overrides)

	id := cand.UniqueID
	if id == "" {
		res := cand.Context["resource"]
		if res == "" {
			res = fileStem(cand.Unit)
		}
		id = cand.Rule + "::" + res
	}

	var diff string
	if cand.Snippet != "" && cand.SuggestedFix != "" &&
		strings.Count(fileText, cand.Snippet) == 1 {
		after := strings.Replace(fileText, cand.Snippet, cand.SuggestedFix, 1)
		diff = unifiedDiff(cand.Unit, fileText, after)
	}

	var explanation string
	if know != nil {
		if e, err := know.Explain(cand.Rule); err == nil {
			explanation = e
		}
	}

	return types.Finding{
		ID:             id,
		Rule:           r.Rule,
		Title:          r.Title,
		Severity:       r.Severity,
		Description:    r.Description,
		Recommendation: r.Recommendation,
		File:           cand.Unit,
		Line:           cand.Line,
		Snippet:        cand.Snippet,
		SuggestedFix:   cand.SuggestedFix,
		DocsURL:        r.DocsURL,
		Context:        cand.Context,
		UnifiedDiff:    diff,
		Explanation:    explanation,
	}
}

func fileStem(unit string) string {
	base := filepath.Base(unit)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
