package assemble

import "github.com/pmezard/go-difflib/difflib"

// unifiedDiff renders a line-based unified diff of the whole-file before and
// after text. Errors degrade to an empty diff; the preview is advisory only.
func unifiedDiff(path, before, after string) string {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return ""
	}
	return text
}
